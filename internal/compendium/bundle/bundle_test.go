package bundle_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/ddb-importer/internal/compendium"
	"github.com/KirkDiggler/ddb-importer/internal/compendium/bundle"
	"github.com/KirkDiggler/ddb-importer/internal/entities/vtt"
	"github.com/KirkDiggler/ddb-importer/internal/errors"
)

type BundleTestSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *BundleTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func TestBundleSuite(t *testing.T) {
	suite.Run(t, new(BundleTestSuite))
}

func (s *BundleTestSuite) storesByID(raw string) map[string]compendium.Store {
	stores, err := bundle.Parse([]byte(raw))
	s.Require().NoError(err)
	s.Require().Len(stores, 3)

	out := map[string]compendium.Store{}
	for _, st := range stores {
		out[st.ID()] = st
	}
	return out
}

func (s *BundleTestSuite) TestParseArrays() {
	stores := s.storesByID(`{
		"items": [
			{"id": 101, "name": "Bag of Holding", "filterType": "Wondrous item", "weight": 15, "cost": 500},
			{"id": 102, "name": "Longsword", "filterType": "Weapon", "damage": {"diceString": "1d8"}, "damageType": "Slashing"}
		],
		"classes": [
			{"id": 12, "name": "Artificer", "hitDice": 8}
		]
	}`)

	items := stores[compendium.StoreBundleItems]
	s.Require().NotNil(items)
	index, err := items.Index(s.ctx)
	s.Require().NoError(err)
	s.Equal([]compendium.IndexEntry{
		{ID: "101", Name: "Bag of Holding", Type: vtt.DocumentTypeLoot},
		{ID: "102", Name: "Longsword", Type: vtt.DocumentTypeWeapon},
	}, index)

	doc, err := items.Document(s.ctx, "102")
	s.Require().NoError(err)
	s.Equal("102", doc.ID)
	s.Equal("Longsword", doc.Name)

	classes, err := stores[compendium.StoreBundleClasses].Index(s.ctx)
	s.Require().NoError(err)
	s.Equal([]compendium.IndexEntry{{ID: "12", Name: "Artificer", Type: vtt.DocumentTypeClass}}, classes)

	feats, err := stores[compendium.StoreBundleFeats].Index(s.ctx)
	s.Require().NoError(err)
	s.Empty(feats)
}

func (s *BundleTestSuite) TestParseWrappedSections() {
	stores := s.storesByID(`{
		"items": {"success": true, "data": [{"name": "Rope, Hempen (50 feet)", "filterType": "Other Gear"}]},
		"feats": {"results": [{"id": 7, "name": "Alert"}, {"name": ""}, "junk"]}
	}`)

	items, err := stores[compendium.StoreBundleItems].Index(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Equal("entry-0", items[0].ID)

	feats, err := stores[compendium.StoreBundleFeats].Index(s.ctx)
	s.Require().NoError(err)
	s.Equal([]compendium.IndexEntry{{ID: "7", Name: "Alert", Type: vtt.DocumentTypeFeat}}, feats)
}

func (s *BundleTestSuite) TestDocumentIsolation() {
	stores := s.storesByID(`{"feats": [{"id": 1, "name": "Lucky"}]}`)
	st := stores[compendium.StoreBundleFeats]

	first, err := st.Document(s.ctx, "1")
	s.Require().NoError(err)
	first.Name = "changed"

	second, err := st.Document(s.ctx, "1")
	s.Require().NoError(err)
	s.Equal("Lucky", second.Name)

	_, err = st.Document(s.ctx, "missing")
	s.True(errors.IsNotFound(err))
}

func (s *BundleTestSuite) TestParseRejectsMalformed() {
	for _, raw := range []string{`not json`, `[1,2]`, `"items"`} {
		s.Run(raw, func() {
			_, err := bundle.Parse([]byte(raw))
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *BundleTestSuite) TestSkipsUndecodableEntries() {
	stores := s.storesByID(`{"items": [{"name": "Torch", "weight": "heavy"}, {"name": "Lantern"}]}`)

	items, err := stores[compendium.StoreBundleItems].Index(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Equal("Lantern", items[0].Name)
	s.Equal("entry-1", items[0].ID)
}

func (s *BundleTestSuite) TestSkipsNamelessEntries() {
	stores := s.storesByID(`{"items": [{"filterType": "Armor"}, {"name": "", "filterType": "Armor"}, {"name": "Shield", "filterType": "Armor", "armorClass": 2}]}`)

	items, err := stores[compendium.StoreBundleItems].Index(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Equal("Shield", items[0].Name)
	s.Equal("entry-2", items[0].ID)
	s.Equal(vtt.DocumentTypeEquipment, items[0].Type)
}
