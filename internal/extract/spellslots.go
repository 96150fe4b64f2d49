package extract

import (
	"github.com/KirkDiggler/ddb-importer/internal/entities/ddb"
	"github.com/KirkDiggler/ddb-importer/internal/entities/vtt"
)

// fullCasterSlots[level-1][spellLevel-1] is the slot count of a full caster
var fullCasterSlots = [20][vtt.MaxSpellLevel]int{
	{2},
	{3},
	{4, 2},
	{4, 3},
	{4, 3, 2},
	{4, 3, 3},
	{4, 3, 3, 1},
	{4, 3, 3, 2},
	{4, 3, 3, 3, 1},
	{4, 3, 3, 3, 2},
	{4, 3, 3, 3, 2, 1},
	{4, 3, 3, 3, 2, 1},
	{4, 3, 3, 3, 2, 1, 1},
	{4, 3, 3, 3, 2, 1, 1},
	{4, 3, 3, 3, 2, 1, 1, 1},
	{4, 3, 3, 3, 2, 1, 1, 1},
	{4, 3, 3, 3, 2, 1, 1, 1, 1},
	{4, 3, 3, 3, 3, 1, 1, 1, 1},
	{4, 3, 3, 3, 3, 2, 1, 1, 1},
	{4, 3, 3, 3, 3, 2, 2, 1, 1},
}

// FullCasterSlots returns slot counts by spell level for a full caster of the
// given class level. Levels outside 1-20 have no slots.
func FullCasterSlots(level int) map[int]int {
	slots := map[int]int{}
	if level < 1 || level > len(fullCasterSlots) {
		return slots
	}
	for i, n := range fullCasterSlots[level-1] {
		if n > 0 {
			slots[i+1] = n
		}
	}
	return slots
}

// SpellSlots builds spell1..spell9 from the first class that can cast
// spells, treating it as a full caster. Multiclass slots are not combined.
// A character without a caster class gets an empty table.
func SpellSlots(classes []ddb.Class) vtt.SpellSlots {
	slots := vtt.SpellSlots{}

	var caster *ddb.Class
	for i := range classes {
		if classes[i].Definition != nil && classes[i].Definition.CanCastSpells {
			caster = &classes[i]
			break
		}
	}
	if caster == nil {
		return slots
	}

	for level := 1; level <= vtt.MaxSpellLevel; level++ {
		slots[vtt.SpellSlotKey(level)] = vtt.SlotCount{}
	}
	for level, n := range FullCasterSlots(caster.Level) {
		slots[vtt.SpellSlotKey(level)] = vtt.SlotCount{Value: n, Max: n}
	}
	return slots
}
