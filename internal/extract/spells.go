package extract

import (
	"github.com/KirkDiggler/ddb-importer/internal/entities/ddb"
	"github.com/KirkDiggler/ddb-importer/internal/entities/vtt"
	"github.com/KirkDiggler/ddb-importer/internal/lookup"
)

// SpellComponents maps component ids and the ritual/concentration tags
func SpellComponents(def *ddb.SpellDefinition) *vtt.Components {
	return &vtt.Components{
		Vocal:         def.HasComponent(ddb.ComponentVerbal),
		Somatic:       def.HasComponent(ddb.ComponentSomatic),
		Material:      def.HasComponent(ddb.ComponentMaterial),
		Ritual:        def.Ritual,
		Concentration: def.Concentration,
	}
}

// SpellActionType is msak/rsak by attack type, save when a save DC ability
// is set, else util.
func SpellActionType(def *ddb.SpellDefinition) lookup.ActionType {
	return lookup.SpellActionType(def.AttackType, def.SaveDCAbilityID != 0)
}

// SpellDamage returns the damage parts; a spell without damage has none
func SpellDamage(def *ddb.SpellDefinition) *vtt.Damage {
	if def.Damage == nil {
		return &vtt.Damage{Parts: []vtt.DamagePart{}}
	}
	return &vtt.Damage{
		Parts: []vtt.DamagePart{{def.Damage.DiceString, lookup.DamageTypeForName(def.DamageType)}},
	}
}

// SpellSave returns the save block. Without a save DC ability the ability
// is empty; otherwise unknown ids fall back to dexterity and the DC scales
// with the caster.
func SpellSave(def *ddb.SpellDefinition) *vtt.Save {
	if def.SaveDCAbilityID == 0 {
		return &vtt.Save{Ability: lookup.AbilityNone}
	}
	return &vtt.Save{
		Ability: lookup.SaveAbilityForID(def.SaveDCAbilityID),
		Scaling: "spell",
	}
}

// SpellDuration maps the duration; zero intervals become null
func SpellDuration(def *ddb.SpellDefinition) *vtt.Duration {
	if def.Duration == nil {
		return &vtt.Duration{Units: lookup.DurationInstantaneous}
	}
	return &vtt.Duration{
		Value: positive(def.Duration.DurationInterval),
		Units: lookup.DurationUnitForName(def.Duration.DurationUnit),
	}
}

// SpellRange maps the range; zero values become null
func SpellRange(def *ddb.SpellDefinition) *vtt.Range {
	if def.Range == nil {
		return &vtt.Range{Units: lookup.RangeFeet}
	}
	return &vtt.Range{
		Value: positive(def.Range.RangeValue),
		Units: lookup.RangeUnitForOrigin(def.Range.Origin),
	}
}

// SpellTarget maps the area of effect
func SpellTarget(def *ddb.SpellDefinition) *vtt.Target {
	if def.Range == nil {
		return &vtt.Target{Type: lookup.AreaNone}
	}
	return &vtt.Target{
		Value: positive(def.Range.AoeValue),
		Type:  lookup.AreaTypeForID(def.Range.AoeType),
	}
}

// SpellPreparation is "always" for always-prepared spells
func SpellPreparation(spell ddb.Spell) *vtt.Preparation {
	mode := vtt.PreparationPrepared
	if spell.AlwaysPrepared {
		mode = vtt.PreparationAlways
	}
	return &vtt.Preparation{
		Mode:     mode,
		Prepared: spell.Prepared,
	}
}

func positive(n int) *int {
	if n <= 0 {
		return nil
	}
	return &n
}
