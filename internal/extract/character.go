package extract

import (
	"strings"

	"github.com/KirkDiggler/ddb-importer/internal/entities/ddb"
	"github.com/KirkDiggler/ddb-importer/internal/entities/vtt"
	"github.com/KirkDiggler/ddb-importer/internal/lookup"
)

// MovementUnits is the unit every speed is expressed in
const MovementUnits = "ft"

// Sheet computes the full normalized character document
func Sheet(c *ddb.Character) *vtt.ActorSystem {
	if c == nil {
		c = &ddb.Character{}
	}
	race := c.RaceOrEmpty()
	level := TotalLevel(c.Classes)

	return &vtt.ActorSystem{
		Abilities: Abilities(c.Stats),
		Attributes: vtt.Attributes{
			HP:           HitPoints(c),
			AC:           vtt.ArmorClass{Value: c.ArmorClassOrDefault()},
			Movement:     Movement(c),
			Prof:         ProficiencyBonus(level),
			Spellcasting: PrimarySpellcastingAbility(c.Classes),
		},
		Details: vtt.Details{
			Race:       race.DisplayName(),
			Background: c.BackgroundName(),
			Alignment:  lookup.AlignmentForID(c.AlignmentID),
			Level:      level,
			XP:         vtt.Experience{Value: c.CurrentXP},
		},
		Traits: vtt.Traits{
			Size:      Size(race),
			DI:        vtt.TraitList{Value: Defenses(c.Modifiers, ddb.ModifierTypeImmunity)},
			DR:        vtt.TraitList{Value: Defenses(c.Modifiers, ddb.ModifierTypeResistance)},
			DV:        vtt.TraitList{Value: Defenses(c.Modifiers, ddb.ModifierTypeVulnerability)},
			CI:        vtt.TraitList{Value: []string{}},
			Languages: vtt.TraitList{Value: Languages(c.Modifiers)},
			Skills:    Skills(c.Modifiers),
		},
		Currency: vtt.Currency{
			CP: c.Currencies.CP,
			SP: c.Currencies.SP,
			EP: c.Currencies.EP,
			GP: c.Currencies.GP,
			PP: c.Currencies.PP,
		},
		Spells: SpellSlots(c.Classes),
	}
}

// Abilities maps stat ids 1-6 to ability scores. Unknown ids are dropped.
func Abilities(stats []ddb.Stat) map[lookup.Ability]vtt.AbilityScore {
	abilities := make(map[lookup.Ability]vtt.AbilityScore, len(stats))
	for _, stat := range stats {
		ability := lookup.AbilityForID(stat.ID)
		if ability == lookup.AbilityNone {
			continue
		}
		abilities[ability] = vtt.AbilityScore{Value: stat.ValueOrDefault()}
	}
	return abilities
}

// HitPoints computes current = base + bonus - removed, max = base + bonus
func HitPoints(c *ddb.Character) vtt.HitPoints {
	maxHP := c.BaseHitPoints + c.BonusHitPoints
	return vtt.HitPoints{
		Value: maxHP - c.RemovedHitPoints,
		Max:   maxHP,
		Temp:  c.TemporaryHitPoints,
	}
}

// TotalLevel sums the class levels
func TotalLevel(classes []ddb.Class) int {
	total := 0
	for _, cls := range classes {
		total += cls.Level
	}
	return total
}

// ProficiencyBonus is ceil(level/4)+1
func ProficiencyBonus(level int) int {
	if level < 0 {
		level = 0
	}
	return (level+3)/4 + 1
}

// PrimarySpellcastingAbility is the ability of the first class carrying a
// spellcasting ability id, else intelligence.
func PrimarySpellcastingAbility(classes []ddb.Class) lookup.Ability {
	for _, cls := range classes {
		if cls.Definition != nil && cls.Definition.SpellCastingAbilityID != 0 {
			return lookup.SpellcastingAbilityForID(cls.Definition.SpellCastingAbilityID)
		}
	}
	return lookup.AbilityIntelligence
}

// Movement collects speeds; walk falls back to the race and then 30 ft.
func Movement(c *ddb.Character) vtt.Movement {
	m := vtt.Movement{
		Walk:  c.WalkSpeed(),
		Units: MovementUnits,
	}
	if c.Speed != nil {
		m.Fly = c.Speed.Fly
		m.Swim = c.Speed.Swim
		m.Climb = c.Speed.Climb
		m.Burrow = c.Speed.Burrow
	}
	return m
}

// Size maps the race size id; a race without size data is medium.
func Size(race *ddb.Race) lookup.Size {
	if race == nil || !race.HasSize() {
		return lookup.SizeMedium
	}
	return lookup.SizeForID(race.SizeID)
}

// Defenses collects the lowercased names of modifiers whose type matches
// exactly (immunity, resistance, vulnerability), without duplicates.
func Defenses(mods ddb.Modifiers, modifierType string) []string {
	out := []string{}
	seen := map[string]bool{}
	for _, group := range mods.Character() {
		for _, mod := range group {
			if mod.Type != modifierType || mod.FriendlySubtypeName == "" {
				continue
			}
			name := strings.ToLower(mod.FriendlySubtypeName)
			if seen[name] {
				continue
			}
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}

// Languages collects the language grants, race first
func Languages(mods ddb.Modifiers) []string {
	out := []string{}
	seen := map[string]bool{}
	for _, group := range mods.Character() {
		for _, mod := range group {
			if mod.SubType != ddb.ModifierTypeLanguage || mod.FriendlySubtypeName == "" {
				continue
			}
			if seen[mod.FriendlySubtypeName] {
				continue
			}
			seen[mod.FriendlySubtypeName] = true
			out = append(out, mod.FriendlySubtypeName)
		}
	}
	return out
}

// Skills maps skill proficiency and expertise grants. Expertise wins.
func Skills(mods ddb.Modifiers) map[lookup.Skill]vtt.SkillProficiency {
	skills := map[lookup.Skill]vtt.SkillProficiency{}
	for _, group := range mods.Character() {
		for _, mod := range group {
			if mod.EntityTypeID != ddb.SkillEntityTypeID {
				continue
			}
			skill := lookup.SkillForID(mod.EntityID)
			if skill == lookup.SkillNone {
				continue
			}
			switch mod.Type {
			case ddb.ModifierTypeExpertise:
				skills[skill] = vtt.SkillProficiency{Value: vtt.SkillExpertise}
			case ddb.ModifierTypeProficiency:
				if skills[skill].Value < vtt.SkillProficient {
					skills[skill] = vtt.SkillProficiency{Value: vtt.SkillProficient}
				}
			}
		}
	}
	if len(skills) == 0 {
		return nil
	}
	return skills
}
