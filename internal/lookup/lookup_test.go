package lookup_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/ddb-importer/internal/lookup"
)

type LookupTestSuite struct {
	suite.Suite
}

func TestLookupSuite(t *testing.T) {
	suite.Run(t, new(LookupTestSuite))
}

func (s *LookupTestSuite) TestAbilities() {
	s.Equal(lookup.AbilityStrength, lookup.AbilityForID(1))
	s.Equal(lookup.AbilityCharisma, lookup.AbilityForID(6))
	s.Equal(lookup.AbilityNone, lookup.AbilityForID(7))
	s.Equal(lookup.AbilityNone, lookup.AbilityForID(0))

	s.Equal(lookup.AbilityWisdom, lookup.SpellcastingAbilityForID(5))
	s.Equal(lookup.AbilityIntelligence, lookup.SpellcastingAbilityForID(0))
	s.Equal(lookup.AbilityIntelligence, lookup.SpellcastingAbilityForID(99))

	s.Equal(lookup.AbilityConstitution, lookup.SaveAbilityForID(3))
	s.Equal(lookup.AbilityDexterity, lookup.SaveAbilityForID(42))
}

func (s *LookupTestSuite) TestFallbacks() {
	testCases := []struct {
		name     string
		got      string
		expected string
	}{
		{name: "unknown alignment", got: string(lookup.AlignmentForID(10)), expected: ""},
		{name: "known alignment", got: string(lookup.AlignmentForID(5)), expected: "tn"},
		{name: "unknown size", got: string(lookup.SizeForID(1)), expected: "med"},
		{name: "small size", got: string(lookup.SizeForID(3)), expected: "sm"},
		{name: "unknown rarity id", got: string(lookup.RarityForID(0)), expected: "common"},
		{name: "very rare id", got: string(lookup.RarityForID(4)), expected: "veryRare"},
		{name: "very rare name", got: string(lookup.RarityForName("Very Rare")), expected: "veryRare"},
		{name: "unknown rarity name", got: string(lookup.RarityForName("Mythic")), expected: "common"},
		{name: "unknown school", got: string(lookup.SchoolForName("Chronurgy")), expected: "evo"},
		{name: "necromancy", got: string(lookup.SchoolForName("Necromancy")), expected: "nec"},
		{name: "unknown duration", got: string(lookup.DurationUnitForName("")), expected: "inst"},
		{name: "round duration", got: string(lookup.DurationUnitForName("Round")), expected: "round"},
		{name: "self range", got: string(lookup.RangeUnitForOrigin("Self")), expected: "self"},
		{name: "ranged origin", got: string(lookup.RangeUnitForOrigin("Ranged")), expected: "ft"},
		{name: "cone", got: string(lookup.AreaTypeForID(3)), expected: "cone"},
		{name: "unknown area", got: string(lookup.AreaTypeForID(9)), expected: ""},
		{name: "bonus action", got: string(lookup.ActivationForID(2)), expected: "bonus"},
		{name: "no action", got: string(lookup.ActivationForID(5)), expected: ""},
		{name: "long rest", got: string(lookup.UsesPeriodForResetType(2)), expected: "lr"},
		{name: "unknown reset", got: string(lookup.UsesPeriodForResetType(4)), expected: ""},
		{name: "stealth", got: string(lookup.SkillForID(10)), expected: "ste"},
		{name: "unknown skill", got: string(lookup.SkillForID(19)), expected: ""},
		{name: "shield", got: string(lookup.ArmorTypeForName("Shield")), expected: "shield"},
		{name: "unknown armor", got: string(lookup.ArmorTypeForName("Robe")), expected: "light"},
		{name: "srd medium armor", got: string(lookup.ArmorTypeForCategory("Medium")), expected: "medium"},
		{name: "srd shield", got: string(lookup.ArmorTypeForCategory("Shield")), expected: "shield"},
		{name: "damage type", got: lookup.DamageTypeForName(" Slashing "), expected: "slashing"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, tc.got)
		})
	}
}

func (s *LookupTestSuite) TestItemTypeForFilter() {
	testCases := []struct {
		filter   string
		expected lookup.ItemType
	}{
		{filter: "Weapon", expected: lookup.ItemTypeWeapon},
		{filter: "Armor", expected: lookup.ItemTypeEquipment},
		{filter: "Potion", expected: lookup.ItemTypeConsumable},
		{filter: "Scroll", expected: lookup.ItemTypeConsumable},
		{filter: "Wondrous item", expected: lookup.ItemTypeLoot},
		{filter: "", expected: lookup.ItemTypeLoot},
	}

	for _, tc := range testCases {
		s.Run(tc.filter, func() {
			s.Equal(tc.expected, lookup.ItemTypeForFilter(tc.filter))
		})
	}
}

func (s *LookupTestSuite) TestWeaponProperties() {
	s.Equal(lookup.WeaponPropertyTwoHanded, lookup.WeaponPropertyForName("Two-Handed"))
	s.Equal(lookup.WeaponPropertyFinesse, lookup.WeaponPropertyForName("finesse"))
	s.Equal(lookup.WeaponPropertyNone, lookup.WeaponPropertyForName("Special"))
}

func (s *LookupTestSuite) TestSpellActionType() {
	s.Equal(lookup.ActionMeleeSpellAttack, lookup.SpellActionType(1, true))
	s.Equal(lookup.ActionRangedSpellAttack, lookup.SpellActionType(2, false))
	s.Equal(lookup.ActionSave, lookup.SpellActionType(0, true))
	s.Equal(lookup.ActionUtility, lookup.SpellActionType(0, false))
}
