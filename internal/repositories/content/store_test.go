package content_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/ddb-importer/internal/compendium"
	"github.com/KirkDiggler/ddb-importer/internal/entities/vtt"
	"github.com/KirkDiggler/ddb-importer/internal/errors"
	"github.com/KirkDiggler/ddb-importer/internal/pkg/clock"
	"github.com/KirkDiggler/ddb-importer/internal/pkg/idgen"
	"github.com/KirkDiggler/ddb-importer/internal/repositories/content"
	"github.com/KirkDiggler/ddb-importer/internal/testutils"
)

// StoreTestSuite runs the same behavior against every backend
type StoreTestSuite struct {
	suite.Suite
	open    func(s *StoreTestSuite) (compendium.WritableStore, func())
	store   compendium.WritableStore
	cleanup func()
	ctx     context.Context
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store, s.cleanup = s.open(s)
}

func (s *StoreTestSuite) TearDownTest() {
	s.cleanup()
}

func TestRedisStoreSuite(t *testing.T) {
	suite.Run(t, &StoreTestSuite{
		open: func(s *StoreTestSuite) (compendium.WritableStore, func()) {
			client, cleanup := testutils.CreateTestRedisClient(s.T())
			store, err := content.NewRedis(&content.RedisConfig{
				Client:      client,
				IDGenerator: idgen.NewSequential("doc"),
			})
			s.Require().NoError(err)
			return store, cleanup
		},
	})
}

func TestSQLiteStoreSuite(t *testing.T) {
	suite.Run(t, &StoreTestSuite{
		open: func(s *StoreTestSuite) (compendium.WritableStore, func()) {
			store, err := content.OpenSQLite(context.Background(), &content.SQLiteConfig{
				Path:        filepath.Join(s.T().TempDir(), "content.db"),
				IDGenerator: idgen.NewSequential("doc"),
				Clock:       &clock.Fixed{At: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
			})
			s.Require().NoError(err)
			return store, func() { s.NoError(store.Close()) }
		},
	})
}

func (s *StoreTestSuite) TestDefaultID() {
	s.Equal(content.DefaultStoreID, s.store.ID())
}

func (s *StoreTestSuite) TestEmptyIndex() {
	index, err := s.store.Index(s.ctx)
	s.Require().NoError(err)
	s.Empty(index)
}

func (s *StoreTestSuite) TestCreateAndLoad() {
	level := 3
	doc := &vtt.Document{
		ID:   "ignored",
		Name: "Fireball",
		Type: vtt.DocumentTypeSpell,
		Img:  vtt.ImageSpell,
		System: vtt.System{
			Level:    level,
			Duration: &vtt.Duration{Value: &level, Units: "round"},
		},
		Flags: vtt.DocumentFlags{SourceStore: "srd.spells"},
	}

	created, err := s.store.Create(s.ctx, doc)
	s.Require().NoError(err)
	s.Equal("doc_1", created.ID)
	s.Empty(created.Flags.SourceStore)
	s.Equal("ignored", doc.ID)

	loaded, err := s.store.Document(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(created, loaded)
	s.Equal(3, *loaded.System.Duration.Value)
}

func (s *StoreTestSuite) TestIndexKeepsInsertionOrder() {
	for _, doc := range []*vtt.Document{
		{Name: "Rope", Type: vtt.DocumentTypeLoot},
		{Name: "Darkvision", Type: vtt.DocumentTypeFeat},
		{Name: "Longsword", Type: vtt.DocumentTypeWeapon},
	} {
		_, err := s.store.Create(s.ctx, doc)
		s.Require().NoError(err)
	}

	index, err := s.store.Index(s.ctx)
	s.Require().NoError(err)
	s.Equal([]compendium.IndexEntry{
		{ID: "doc_1", Name: "Rope", Type: vtt.DocumentTypeLoot},
		{ID: "doc_2", Name: "Darkvision", Type: vtt.DocumentTypeFeat},
		{ID: "doc_3", Name: "Longsword", Type: vtt.DocumentTypeWeapon},
	}, index)
}

func (s *StoreTestSuite) TestDocumentNotFound() {
	_, err := s.store.Document(s.ctx, "missing")
	s.True(errors.IsNotFound(err))

	_, err = s.store.Document(s.ctx, "")
	s.True(errors.IsInvalidArgument(err))
}

func (s *StoreTestSuite) TestCreateValidation() {
	_, err := s.store.Create(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.store.Create(s.ctx, &vtt.Document{Name: "  "})
	s.True(errors.IsInvalidArgument(err))
}
