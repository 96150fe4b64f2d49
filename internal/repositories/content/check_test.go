package content_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/ddb-importer/internal/compendium"
	"github.com/KirkDiggler/ddb-importer/internal/entities/vtt"
	"github.com/KirkDiggler/ddb-importer/internal/pkg/idgen"
	"github.com/KirkDiggler/ddb-importer/internal/redis"
	"github.com/KirkDiggler/ddb-importer/internal/repositories/content"
	"github.com/KirkDiggler/ddb-importer/internal/testutils"
)

type CheckTestSuite struct {
	suite.Suite
	client  redis.Client
	mr      *miniredis.Miniredis
	cleanup func()
	store   compendium.WritableStore
	ctx     context.Context
}

func (s *CheckTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.client, s.mr, s.cleanup = testutils.CreateTestRedisServer(s.T())

	var err error
	s.store, err = content.NewRedis(&content.RedisConfig{
		Client:      s.client,
		IDGenerator: idgen.NewSequential("doc"),
	})
	s.Require().NoError(err)

	for _, name := range []string{"Longsword", "Second Wind", "Tough"} {
		_, err := s.store.Create(s.ctx, &vtt.Document{Name: name, Type: vtt.DocumentTypeFeat})
		s.Require().NoError(err)
	}
}

func (s *CheckTestSuite) TearDownTest() {
	s.cleanup()
}

func TestCheckSuite(t *testing.T) {
	suite.Run(t, new(CheckTestSuite))
}

func (s *CheckTestSuite) TestCleanStore() {
	report, err := content.CheckRedis(s.ctx, s.client, "", false)
	s.Require().NoError(err)
	s.Equal(content.DefaultStoreID, report.StoreID)
	s.Equal(3, report.Checked)
	s.True(report.Clean())
	s.False(report.Repaired)
}

func (s *CheckTestSuite) TestFindsProblemsWithoutFixing() {
	s.Require().NoError(s.mr.Set(content.DocumentKey(content.DefaultStoreID, "doc_2"), "{not json"))
	_, err := s.mr.Push(content.OrderKey(content.DefaultStoreID), "ghost")
	s.Require().NoError(err)

	report, err := content.CheckRedis(s.ctx, s.client, content.DefaultStoreID, false)
	s.Require().NoError(err)
	s.Equal([]string{"doc_2"}, report.Corrupted)
	s.Equal([]string{"ghost"}, report.Dangling)
	s.False(report.Repaired)

	ids, err := s.mr.List(content.OrderKey(content.DefaultStoreID))
	s.Require().NoError(err)
	s.Len(ids, 4)
}

func (s *CheckTestSuite) TestFixRemovesProblems() {
	s.Require().NoError(s.mr.Set(content.DocumentKey(content.DefaultStoreID, "doc_2"), "{not json"))
	s.mr.HDel(content.IndexKey(content.DefaultStoreID), "doc_3")

	report, err := content.CheckRedis(s.ctx, s.client, content.DefaultStoreID, true)
	s.Require().NoError(err)
	s.Equal([]string{"doc_2"}, report.Corrupted)
	s.Equal([]string{"doc_3"}, report.Dangling)
	s.True(report.Repaired)

	index, err := s.store.Index(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(index, 1)
	s.Equal("Longsword", index[0].Name)
	s.False(s.mr.Exists(content.DocumentKey(content.DefaultStoreID, "doc_2")))

	again, err := content.CheckRedis(s.ctx, s.client, content.DefaultStoreID, false)
	s.Require().NoError(err)
	s.True(again.Clean())
	s.Equal(1, again.Checked)
}

func (s *CheckTestSuite) TestRequiresClient() {
	_, err := content.CheckRedis(s.ctx, nil, "", false)
	s.Error(err)
}
