package importer_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/ddb-importer/internal/compendium"
	compendiummock "github.com/KirkDiggler/ddb-importer/internal/compendium/mock"
	"github.com/KirkDiggler/ddb-importer/internal/entities/ddb"
	"github.com/KirkDiggler/ddb-importer/internal/entities/vtt"
	"github.com/KirkDiggler/ddb-importer/internal/errors"
	orchestrator "github.com/KirkDiggler/ddb-importer/internal/orchestrators/importer"
	"github.com/KirkDiggler/ddb-importer/internal/pkg/clock"
	actorrepo "github.com/KirkDiggler/ddb-importer/internal/repositories/actor"
	actormock "github.com/KirkDiggler/ddb-importer/internal/repositories/actor/mock"
	"github.com/KirkDiggler/ddb-importer/internal/services/importer"
	"github.com/KirkDiggler/ddb-importer/internal/testutils"
	"github.com/KirkDiggler/ddb-importer/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	actorRepo *actormock.MockRepository
	classes   *compendiummock.MockStore
	equipment *compendiummock.MockStore
	recorder  *orchestrator.Recorder
	orch      *orchestrator.Orchestrator
	ctx       context.Context
	now       time.Time
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.actorRepo = actormock.NewMockRepository(s.ctrl)
	s.classes = compendiummock.NewMockStore(s.ctrl)
	s.equipment = compendiummock.NewMockStore(s.ctrl)
	s.recorder = &orchestrator.Recorder{}
	s.ctx = context.Background()
	s.now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	mocks.ExpectStoreEntries(s.classes, compendium.StoreSRDClasses, &vtt.Document{
		ID:     "fighter",
		Name:   "Fighter",
		Type:   vtt.DocumentTypeClass,
		System: vtt.System{Levels: 1, HitDice: "d10"},
	})
	mocks.ExpectStoreEntries(s.equipment, compendium.StoreSRDEquipment, &vtt.Document{
		ID:     "longsword",
		Name:   "Longsword",
		Type:   vtt.DocumentTypeWeapon,
		System: vtt.System{Quantity: 1, Weight: 3},
	})

	orch, err := orchestrator.New(&orchestrator.Config{
		ActorRepo: s.actorRepo,
		Registry:  compendium.NewRegistry(s.classes, s.equipment),
		Clock:     &clock.Fixed{At: s.now},
		Notifier:  s.recorder,
	})
	s.Require().NoError(err)
	s.orch = orch
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) messages() []string {
	var out []string
	for _, n := range s.recorder.Notifications() {
		out = append(out, n.Message)
	}
	return out
}

func (s *OrchestratorTestSuite) TestNewValidatesConfig() {
	_, err := orchestrator.New(&orchestrator.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = orchestrator.New(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestImportNewCharacter() {
	mocks.ExpectNewActor(s.ctx, s.actorRepo, "actor-1")
	mocks.ExpectAttach(s.ctx, s.actorRepo, "actor-1")

	out, err := s.orch.ImportCharacter(s.ctx, &importer.ImportCharacterInput{
		Payload: testutils.CreateTestPayload(testutils.CreateTestCharacter()),
	})
	s.Require().NoError(err)

	s.True(out.Created)
	s.Equal("actor-1", out.Actor.ID)
	s.Equal(testutils.TestCharacterName, out.Actor.Name)
	s.Equal(vtt.ActorTypeCharacter, out.Actor.Type)
	s.Equal(vtt.ImportFlags{
		CharacterURL: testutils.TestCharacterURL,
		CharacterID:  "48151623",
		LastSync:     "2024-05-01T12:00:00Z",
	}, out.Actor.Flags)

	s.Require().NotNil(out.Actor.System)
	s.Equal(5, out.Actor.System.Details.Level)
	s.Equal(3, out.Actor.System.Attributes.Prof)
	s.Equal(vtt.HitPoints{Value: 40, Max: 44}, out.Actor.System.Attributes.HP)
	s.Equal(25, out.Actor.System.Attributes.Movement.Walk)

	type row struct {
		name     string
		category compendium.Category
		source   string
	}
	var got []row
	for _, a := range out.Attachments {
		got = append(got, row{a.Document.Name, a.Category, a.Source})
		s.False(a.Cached)
	}
	s.Equal([]row{
		{"Fighter", compendium.CategoryClass, compendium.StoreSRDClasses},
		{"Hill Dwarf", compendium.CategoryRace, importer.SourceSynthesized},
		{"Longsword", compendium.CategoryItem, compendium.StoreSRDEquipment},
		{"Chain Mail", compendium.CategoryItem, importer.SourceSynthesized},
		{"Second Wind", compendium.CategoryFeat, importer.SourceSynthesized},
		{"Darkvision", compendium.CategoryFeat, importer.SourceSynthesized},
		{"Tough", compendium.CategoryFeat, importer.SourceSynthesized},
	}, got)

	fighter := out.Attachments[0].Document
	s.Equal("item_1", fighter.ID)
	s.Equal(5, fighter.System.Levels)
	s.Equal(compendium.StoreSRDClasses, fighter.Flags.SourceStore)

	s.Equal("Fighter", out.Attachments[4].Document.System.Requirements)
	s.Equal("Hill Dwarf", out.Attachments[5].Document.System.Requirements)

	expected := []string{
		"Importing character...",
		"Imported 1 class(es)",
		"Imported race: Hill Dwarf",
		"Imported 2 items",
		"Imported 3 features and traits",
		`Character "Thorin Oakenshield" imported successfully!`,
	}
	s.Equal(expected, s.messages())
	s.Len(out.Messages, len(expected))
	s.Equal(importer.LevelSuccess, out.Messages[len(out.Messages)-1].Level)
}

func (s *OrchestratorTestSuite) TestImportRejectsInvalidPayload() {
	testCases := []struct {
		name    string
		payload string
	}{
		{name: "empty object", payload: `{}`},
		{name: "malformed json", payload: `{"characterData": `},
		{name: "null character data", payload: `{"characterData": null}`},
		{name: "string character data", payload: `{"characterData": "Thorin"}`},
		{name: "array", payload: `[{"characterData": {}}]`},
		{name: "empty", payload: ``},
		{name: "mistyped sheet", payload: `{"characterData": {"data": {"name": 12}}}`},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.recorder = &orchestrator.Recorder{}
			orch, err := orchestrator.New(&orchestrator.Config{
				ActorRepo: s.actorRepo,
				Registry:  compendium.NewRegistry(),
				Notifier:  s.recorder,
			})
			s.Require().NoError(err)

			out, err := orch.ImportCharacter(s.ctx, &importer.ImportCharacterInput{Payload: []byte(tc.payload)})
			s.Nil(out)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), "invalid data format")

			notes := s.recorder.Notifications()
			s.Require().Len(notes, 1)
			s.Equal(importer.LevelError, notes[0].Level)
			s.Contains(notes[0].Message, "Import failed: invalid data format")
		})
	}
}

func (s *OrchestratorTestSuite) TestImportOntoExplicitTarget() {
	existing := &vtt.Actor{ID: "actor-9", Name: "Renamed By Player", Type: vtt.ActorTypeCharacter}

	s.actorRepo.EXPECT().Get(s.ctx, actorrepo.GetInput{ID: "actor-9"}).
		Return(&actorrepo.GetOutput{Actor: existing}, nil)
	s.actorRepo.EXPECT().ListEmbedded(s.ctx, actorrepo.ListEmbeddedInput{ActorID: "actor-9"}).
		Return(&actorrepo.ListEmbeddedOutput{Documents: []*vtt.Document{{ID: "old-1"}, {ID: "old-2"}}}, nil)
	s.actorRepo.EXPECT().DeleteEmbedded(s.ctx, actorrepo.DeleteEmbeddedInput{ActorID: "actor-9", IDs: []string{"old-1", "old-2"}}).
		Return(&actorrepo.DeleteEmbeddedOutput{Deleted: 2}, nil)
	s.actorRepo.EXPECT().Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input actorrepo.UpdateInput) (*actorrepo.UpdateOutput, error) {
			s.Equal("actor-9", input.Actor.ID)
			s.Equal("Renamed By Player", input.Actor.Name)
			return &actorrepo.UpdateOutput{Actor: input.Actor}, nil
		})
	mocks.ExpectAttach(s.ctx, s.actorRepo, "actor-9")

	out, err := s.orch.ImportCharacter(s.ctx, &importer.ImportCharacterInput{
		Payload:       testutils.CreateTestPayload(testutils.CreateTestCharacter()),
		TargetActorID: "actor-9",
	})
	s.Require().NoError(err)
	s.False(out.Created)
	s.Equal(`Character "Renamed By Player" imported successfully!`, s.messages()[len(s.messages())-1])
}

func (s *OrchestratorTestSuite) TestImportFailsWhenTargetMissing() {
	s.actorRepo.EXPECT().Get(s.ctx, actorrepo.GetInput{ID: "gone"}).
		Return(nil, errors.NotFound("actor not found"))

	_, err := s.orch.ImportCharacter(s.ctx, &importer.ImportCharacterInput{
		Payload:       testutils.CreateTestPayload(testutils.CreateTestCharacter()),
		TargetActorID: "gone",
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Equal([]string{
		"Importing character...",
		"Import failed: failed to find target actor: actor not found",
	}, s.messages())
}

func (s *OrchestratorTestSuite) TestImportFailsWhenAttachFails() {
	s.actorRepo.EXPECT().FindByNameAndType(s.ctx, actorrepo.FindByNameAndTypeInput{
		Name: testutils.TestCharacterName,
		Type: vtt.ActorTypeCharacter,
	}).Return(&actorrepo.FindByNameAndTypeOutput{}, nil)
	s.actorRepo.EXPECT().Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input actorrepo.CreateInput) (*actorrepo.CreateOutput, error) {
			input.Actor.ID = "actor-2"
			return &actorrepo.CreateOutput{Actor: input.Actor}, nil
		})
	s.actorRepo.EXPECT().CreateEmbedded(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailable("connection refused"))

	_, err := s.orch.ImportCharacter(s.ctx, &importer.ImportCharacterInput{
		Payload: testutils.CreateTestPayload(testutils.CreateTestCharacter()),
	})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))

	msgs := s.messages()
	s.Equal("Import failed: failed to attach items: connection refused", msgs[len(msgs)-1])
}

func (s *OrchestratorTestSuite) TestImportMinimalCharacter() {
	mocks.ExpectNewActor(s.ctx, s.actorRepo, "actor-3")

	out, err := s.orch.ImportCharacter(s.ctx, &importer.ImportCharacterInput{
		Payload: []byte(`{"characterData": {"success": true, "data": {}}}`),
	})
	s.Require().NoError(err)
	s.Equal(ddb.DefaultCharacterName, out.Actor.Name)
	s.Empty(out.Attachments)
	s.Empty(out.Actor.Flags.CharacterURL)
	s.Equal([]string{
		"Importing character...",
		`Character "Imported Character" imported successfully!`,
	}, s.messages())
}

func (s *OrchestratorTestSuite) TestImportUsesCompendiumBundle() {
	mocks.ExpectNewActor(s.ctx, s.actorRepo, "actor-4")
	mocks.ExpectAttach(s.ctx, s.actorRepo, "actor-4")

	payload := `{
		"characterData": {"success": true, "data": {"name": "Tinker", "inventory": [{"quantity": 2, "definition": {"name": "Alchemy Jug"}}]}},
		"compendiumData": {"items": [{"id": 77, "name": "Alchemy Jug", "filterType": "Wondrous item", "description": "from the bundle"}], "classes": []}
	}`

	out, err := s.orch.ImportCharacter(s.ctx, &importer.ImportCharacterInput{Payload: []byte(payload)})
	s.Require().NoError(err)
	s.Require().Len(out.Attachments, 1)

	jug := out.Attachments[0]
	s.Equal(compendium.StoreBundleItems, jug.Source)
	s.Equal("from the bundle", jug.Document.System.Description.Value)
	s.Equal(2, jug.Document.System.Quantity)
}
