package importer_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/ddb-importer/internal/compendium"
	"github.com/KirkDiggler/ddb-importer/internal/entities/ddb"
	"github.com/KirkDiggler/ddb-importer/internal/entities/vtt"
	orchestrator "github.com/KirkDiggler/ddb-importer/internal/orchestrators/importer"
	"github.com/KirkDiggler/ddb-importer/internal/pkg/clock"
	"github.com/KirkDiggler/ddb-importer/internal/pkg/idgen"
	actorrepo "github.com/KirkDiggler/ddb-importer/internal/repositories/actor"
	"github.com/KirkDiggler/ddb-importer/internal/repositories/content"
	"github.com/KirkDiggler/ddb-importer/internal/services/importer"
	"github.com/KirkDiggler/ddb-importer/internal/testutils"
)

// ImportIntegrationTestSuite runs imports against redis-backed actor and
// custom content stores
type ImportIntegrationTestSuite struct {
	suite.Suite
	cleanup func()
	actors  actorrepo.Repository
	custom  compendium.WritableStore
	orch    *orchestrator.Orchestrator
	ctx     context.Context
}

func (s *ImportIntegrationTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.ctx = context.Background()

	actors, err := actorrepo.NewRedis(&actorrepo.RedisConfig{
		Client:   client,
		Clock:    &clock.Fixed{At: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)},
		ActorIDs: idgen.NewSequential("actor"),
		ItemIDs:  idgen.NewSequential("item"),
	})
	s.Require().NoError(err)
	s.actors = actors

	custom, err := content.NewRedis(&content.RedisConfig{
		Client:      client,
		IDGenerator: idgen.NewSequential("doc"),
	})
	s.Require().NoError(err)
	s.custom = custom

	orch, err := orchestrator.New(&orchestrator.Config{
		ActorRepo:   actors,
		Registry:    compendium.NewRegistry(),
		CustomStore: custom,
		Notifier:    &orchestrator.Recorder{},
	})
	s.Require().NoError(err)
	s.orch = orch
}

func (s *ImportIntegrationTestSuite) TearDownTest() {
	s.cleanup()
}

func TestImportIntegrationSuite(t *testing.T) {
	suite.Run(t, new(ImportIntegrationTestSuite))
}

func (s *ImportIntegrationTestSuite) importChar(char *ddb.Character) *importer.ImportCharacterOutput {
	out, err := s.orch.ImportCharacter(s.ctx, &importer.ImportCharacterInput{
		Payload: testutils.CreateTestPayload(char),
	})
	s.Require().NoError(err)
	return out
}

func (s *ImportIntegrationTestSuite) embeddedNames(actorID string) []string {
	out, err := s.actors.ListEmbedded(s.ctx, actorrepo.ListEmbeddedInput{ActorID: actorID})
	s.Require().NoError(err)
	names := make([]string, 0, len(out.Documents))
	for _, doc := range out.Documents {
		names = append(names, doc.Name)
	}
	return names
}

func (s *ImportIntegrationTestSuite) TestReimportReplacesItems() {
	char := &ddb.Character{Name: "Pack Rat", Inventory: testutils.CreateTestInventory(10)}
	first := s.importChar(char)
	s.True(first.Created)
	s.Len(s.embeddedNames(first.Actor.ID), 10)

	char.Inventory = []ddb.InventoryItem{
		{Quantity: 3, Definition: &ddb.ItemDefinition{Name: "Torch", FilterType: "Other Gear"}},
		{Quantity: 1, Definition: &ddb.ItemDefinition{Name: "Trinket 4", FilterType: "Other Gear"}},
	}
	second := s.importChar(char)
	s.False(second.Created)
	s.Equal(first.Actor.ID, second.Actor.ID)
	s.Equal([]string{"Torch", "Trinket 4"}, s.embeddedNames(second.Actor.ID))
}

func (s *ImportIntegrationTestSuite) TestSynthesizedContentIsCachedOnce() {
	char := testutils.CreateTestCharacter()

	first := s.importChar(char)
	for _, a := range first.Attachments {
		if a.Category == compendium.CategoryClass || a.Category == compendium.CategoryRace {
			s.False(a.Cached, a.Document.Name)
			continue
		}
		s.Equal(importer.SourceSynthesized, a.Source, a.Document.Name)
		s.True(a.Cached, a.Document.Name)
	}

	index, err := s.custom.Index(s.ctx)
	s.Require().NoError(err)
	names := make([]string, 0, len(index))
	for _, e := range index {
		names = append(names, e.Name)
	}
	s.Equal([]string{"Longsword", "Chain Mail", "Second Wind", "Darkvision", "Tough"}, names)

	second := s.importChar(char)
	for _, a := range second.Attachments {
		if a.Category == compendium.CategoryClass || a.Category == compendium.CategoryRace {
			continue
		}
		s.Equal(content.DefaultStoreID, a.Source, a.Document.Name)
	}

	again, err := s.custom.Index(s.ctx)
	s.Require().NoError(err)
	s.Len(again, len(index))
}

func (s *ImportIntegrationTestSuite) TestCachedItemKeepsThisCharactersStack() {
	s.importChar(&ddb.Character{Name: "First", Inventory: testutils.CreateTestInventory(3)})

	out := s.importChar(&ddb.Character{Name: "Second", Inventory: []ddb.InventoryItem{
		{Quantity: 9, Equipped: true, Definition: &ddb.ItemDefinition{Name: "trinket 2"}},
	}})
	s.Require().Len(out.Attachments, 1)

	doc := out.Attachments[0].Document
	s.Equal("Trinket 2", doc.Name)
	s.Equal(9, doc.System.Quantity)
	s.True(doc.System.Equipped)
	s.Equal(content.DefaultStoreID, out.Attachments[0].Source)
}

func (s *ImportIntegrationTestSuite) TestSameNameOfAnotherKindKeepsItsType() {
	caster := s.importChar(&ddb.Character{Name: "Caster", ClassSpells: []ddb.ClassSpellList{{
		Spells: []ddb.Spell{{Definition: &ddb.SpellDefinition{Name: "Shield", Level: 1, School: "Abjuration"}}},
	}}})
	s.Require().Len(caster.Attachments, 1)
	s.Equal(vtt.DocumentTypeSpell, caster.Attachments[0].Document.Type)

	out := s.importChar(&ddb.Character{Name: "Defender", Inventory: []ddb.InventoryItem{
		{Quantity: 1, Equipped: true, Definition: &ddb.ItemDefinition{Name: "Shield", FilterType: "Armor", ArmorClass: intPtr(2)}},
	}})
	s.Require().Len(out.Attachments, 1)

	attached := out.Attachments[0]
	s.Equal(compendium.CategoryItem, attached.Category)
	s.Equal(vtt.DocumentTypeEquipment, attached.Document.Type)
	s.Equal(importer.SourceSynthesized, attached.Source)
	s.False(attached.Cached)
	s.Require().NotNil(attached.Document.System.Armor)
	s.Equal(2, attached.Document.System.Armor.Value)

	embedded, err := s.actors.ListEmbedded(s.ctx, actorrepo.ListEmbeddedInput{ActorID: out.Actor.ID})
	s.Require().NoError(err)
	s.Require().Len(embedded.Documents, 1)
	s.Equal(vtt.DocumentTypeEquipment, embedded.Documents[0].Type)

	index, err := s.custom.Index(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(index, 1)
	s.Equal("Shield", index[0].Name)
	s.Equal(vtt.DocumentTypeSpell, index[0].Type)
}

func (s *ImportIntegrationTestSuite) TestNamelessEntriesAreSkipped() {
	out := s.importChar(&ddb.Character{
		Name:      "Blank Slate",
		Inventory: []ddb.InventoryItem{{Definition: &ddb.ItemDefinition{Name: "  ", FilterType: "Weapon"}}},
		ClassSpells: []ddb.ClassSpellList{{
			Spells: []ddb.Spell{{Definition: &ddb.SpellDefinition{Name: ""}}},
		}},
		Classes: []ddb.Class{{Level: 1, Definition: &ddb.ClassDefinition{Name: " "}}},
		Feats:   []ddb.Feat{{Definition: &ddb.FeatureDefinition{Name: ""}}},
	})
	s.Empty(out.Attachments)
	s.Empty(s.embeddedNames(out.Actor.ID))

	index, err := s.custom.Index(s.ctx)
	s.Require().NoError(err)
	s.Empty(index)
}

func intPtr(v int) *int {
	return &v
}

func (s *ImportIntegrationTestSuite) TestInvalidPayloadLeavesStoresUntouched() {
	_, err := s.orch.ImportCharacter(s.ctx, &importer.ImportCharacterInput{Payload: []byte(`{}`)})
	s.Require().Error(err)

	found, err := s.actors.FindByNameAndType(s.ctx, actorrepo.FindByNameAndTypeInput{Name: ddb.DefaultCharacterName, Type: "character"})
	s.Require().NoError(err)
	s.Nil(found.Actor)

	index, err := s.custom.Index(s.ctx)
	s.Require().NoError(err)
	s.Empty(index)
}
