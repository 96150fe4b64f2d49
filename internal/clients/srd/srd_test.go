package srd_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/ddb-importer/internal/clients/srd"
	"github.com/KirkDiggler/ddb-importer/internal/compendium"
	"github.com/KirkDiggler/ddb-importer/internal/entities/vtt"
	"github.com/KirkDiggler/ddb-importer/internal/errors"
	"github.com/KirkDiggler/ddb-importer/internal/lookup"
)

type SRDTestSuite struct {
	suite.Suite
	api      *mockAPI
	registry *compendium.Registry
	ctx      context.Context
}

func (s *SRDTestSuite) SetupTest() {
	s.api = new(mockAPI)
	s.ctx = context.Background()

	stores, err := srd.Stores(&srd.Config{Client: s.api})
	s.Require().NoError(err)
	s.registry = compendium.NewRegistry(stores...)
}

func (s *SRDTestSuite) TearDownTest() {
	s.api.AssertExpectations(s.T())
}

func TestSRDSuite(t *testing.T) {
	suite.Run(t, new(SRDTestSuite))
}

func (s *SRDTestSuite) store(id string) compendium.Store {
	store, ok := s.registry.Lookup(id)
	s.Require().True(ok, id)
	return store
}

func (s *SRDTestSuite) TestStoresCoverDefaultOrder() {
	for _, id := range []string{
		compendium.StoreSRDSpells,
		compendium.StoreSRDEquipment,
		compendium.StoreSRDClasses,
		compendium.StoreSRDRaces,
		compendium.StoreSRDFeatures,
	} {
		s.store(id)
	}
}

func (s *SRDTestSuite) TestSpellIndexIsCached() {
	s.api.On("ListSpells", (*dnd5e.ListSpellsInput)(nil)).Return([]*entities.ReferenceItem{
		{Key: "fireball", Name: "Fireball"},
		nil,
		{Key: "", Name: "Broken"},
	}, nil).Once()

	spells := s.store(compendium.StoreSRDSpells)
	for range 2 {
		index, err := spells.Index(s.ctx)
		s.Require().NoError(err)
		s.Equal([]compendium.IndexEntry{{ID: "fireball", Name: "Fireball", Type: vtt.DocumentTypeSpell}}, index)
	}
}

func (s *SRDTestSuite) TestIndexFailureIsRetried() {
	s.api.On("ListRaces").Return([]*entities.ReferenceItem(nil), fmt.Errorf("503")).Once()
	s.api.On("ListRaces").Return([]*entities.ReferenceItem{{Key: "dwarf", Name: "Dwarf"}}, nil).Once()

	races := s.store(compendium.StoreSRDRaces)
	_, err := races.Index(s.ctx)
	s.True(errors.IsUnavailable(err))

	index, err := races.Index(s.ctx)
	s.Require().NoError(err)
	s.Len(index, 1)
}

func (s *SRDTestSuite) TestSpellDocument() {
	s.api.On("GetSpell", "shield").Return(&entities.Spell{
		Key:           "shield",
		Name:          "Shield",
		SpellLevel:    1,
		SpellSchool:   &entities.ReferenceItem{Name: "Abjuration"},
		CastingTime:   "1 reaction",
		Range:         "Self",
		Duration:      "1 round",
		Concentration: false,
	}, nil)

	doc, err := s.store(compendium.StoreSRDSpells).Document(s.ctx, "shield")
	s.Require().NoError(err)
	s.Equal("shield", doc.ID)
	s.Equal(vtt.DocumentTypeSpell, doc.Type)
	s.Equal(1, doc.System.Level)
	s.Equal(lookup.SchoolAbjuration, doc.System.School)
	s.Equal(lookup.ActivationReaction, doc.System.Activation.Type)
	s.Equal(lookup.RangeSelf, doc.System.Range.Units)
	s.Nil(doc.System.Range.Value)
	s.Equal(lookup.DurationRound, doc.System.Duration.Units)
	s.Equal(1, *doc.System.Duration.Value)
	s.Equal(lookup.ActionUtility, doc.System.ActionType)
}

func (s *SRDTestSuite) TestEquipmentDocuments() {
	s.api.On("GetEquipment", "longsword").Return(&entities.Weapon{
		Key:        "longsword",
		Name:       "Longsword",
		Weight:     3,
		Cost:       &entities.Cost{Quantity: 15, Unit: "gp"},
		Damage:     &entities.Damage{DamageDice: "1d8", DamageType: &entities.ReferenceItem{Name: "Slashing"}},
		Properties: []*entities.ReferenceItem{{Name: "Versatile"}},
	}, nil)
	s.api.On("GetEquipment", "leather-armor").Return(&entities.Armor{
		Key:           "leather-armor",
		Name:          "Leather Armor",
		ArmorCategory: "Light",
		Weight:        10,
		Cost:          &entities.Cost{Quantity: 10, Unit: "gp"},
		ArmorClass:    &entities.ArmorClass{Base: 11, DexBonus: true},
	}, nil)
	s.api.On("GetEquipment", "chalk").Return(&entities.Equipment{
		Key:  "chalk",
		Name: "Chalk (1 piece)",
		Cost: &entities.Cost{Quantity: 1, Unit: "cp"},
	}, nil)

	equipment := s.store(compendium.StoreSRDEquipment)

	sword, err := equipment.Document(s.ctx, "longsword")
	s.Require().NoError(err)
	s.Equal(vtt.DocumentTypeWeapon, sword.Type)
	s.Equal(3.0, sword.System.Weight)
	s.Equal(15.0, sword.System.Price.Value)
	s.Equal([]vtt.DamagePart{{"1d8", "slashing"}}, sword.System.Damage.Parts)
	s.True(sword.System.Properties[lookup.WeaponPropertyVersatile])

	armor, err := equipment.Document(s.ctx, "leather-armor")
	s.Require().NoError(err)
	s.Equal(vtt.DocumentTypeEquipment, armor.Type)
	s.Equal(&vtt.Armor{Value: 11, Type: lookup.ArmorTypeLight}, armor.System.Armor)

	chalk, err := equipment.Document(s.ctx, "chalk")
	s.Require().NoError(err)
	s.Equal(vtt.DocumentTypeLoot, chalk.Type)
	s.InDelta(0.01, chalk.System.Price.Value, 1e-9)
}

func (s *SRDTestSuite) TestClassRaceFeature() {
	s.api.On("GetClass", "wizard").Return(&entities.Class{Key: "wizard", Name: "Wizard", HitDie: 6}, nil)
	s.api.On("GetRace", "dwarf").Return(&entities.Race{Key: "dwarf", Name: "Dwarf"}, nil)
	s.api.On("GetFeature", "rage").Return(&entities.Feature{Key: "rage", Name: "Rage", Level: 1, Class: &entities.ReferenceItem{Name: "Barbarian"}}, nil)

	class, err := s.store(compendium.StoreSRDClasses).Document(s.ctx, "wizard")
	s.Require().NoError(err)
	s.Equal("d6", class.System.HitDice)
	s.Equal(1, class.System.Levels)

	race, err := s.store(compendium.StoreSRDRaces).Document(s.ctx, "dwarf")
	s.Require().NoError(err)
	s.Equal(vtt.DocumentTypeRace, race.Type)

	feature, err := s.store(compendium.StoreSRDFeatures).Document(s.ctx, "rage")
	s.Require().NoError(err)
	s.Equal("Barbarian", feature.System.Requirements)
	s.Equal(vtt.FeatureTypeClass, feature.System.FeatureType.Value)
}

func (s *SRDTestSuite) TestDocumentErrors() {
	s.api.On("GetRace", "gnome").Return((*entities.Race)(nil), fmt.Errorf("timeout"))
	s.api.On("GetRace", "orc").Return((*entities.Race)(nil), nil)

	races := s.store(compendium.StoreSRDRaces)

	_, err := races.Document(s.ctx, "gnome")
	s.True(errors.IsUnavailable(err))

	_, err = races.Document(s.ctx, "orc")
	s.True(errors.IsNotFound(err))

	_, err = races.Document(s.ctx, "")
	s.True(errors.IsInvalidArgument(err))

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	_, err = races.Document(ctx, "gnome")
	s.Equal(errors.CodeCanceled, errors.GetCode(err))
}
