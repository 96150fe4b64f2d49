package testutils

import (
	"encoding/json"
	"fmt"

	"github.com/KirkDiggler/ddb-importer/internal/entities/ddb"
)

const (
	// TestCharacterName is the default character name for test fixtures
	TestCharacterName = "Thorin Oakenshield"
	// TestCharacterID is the sheet id used by fixtures
	TestCharacterID = 48151623
	// TestCharacterURL is the sheet url used by fixtures
	TestCharacterURL = "https://www.dndbeyond.com/characters/48151623"
)

// CreateTestCharacter creates a level 5 hill dwarf fighter with a few items,
// no spells, and one feat
func CreateTestCharacter() *ddb.Character {
	return &ddb.Character{
		ID:   TestCharacterID,
		Name: TestCharacterName,
		Stats: []ddb.Stat{
			{ID: 1, Value: 16},
			{ID: 2, Value: 12},
			{ID: 3, Value: 14},
			{ID: 4, Value: 10},
			{ID: 5, Value: 13},
			{ID: 6, Value: 8},
		},
		BaseHitPoints:    44,
		RemovedHitPoints: 4,
		AlignmentID:      1,
		ArmorClass:       18,
		Race: &ddb.Race{
			FullName:     "Hill Dwarf",
			BaseRaceName: "Dwarf",
			SizeID:       4,
			RacialTraits: []ddb.RacialTrait{
				{Definition: &ddb.FeatureDefinition{Name: "Darkvision"}},
			},
			WeightSpeeds: &ddb.WeightSpeeds{Normal: &ddb.Movement{Walk: 25}},
		},
		Background: &ddb.Background{Definition: &ddb.Definition{Name: "Soldier"}},
		Currencies: ddb.Currencies{GP: 15},
		Modifiers: ddb.Modifiers{
			Race: []ddb.Modifier{
				{Type: ddb.ModifierTypeResistance, SubType: "poison", FriendlySubtypeName: "Poison"},
				{Type: ddb.ModifierTypeLanguage, SubType: "dwarvish", FriendlySubtypeName: "Dwarvish"},
			},
		},
		Classes: []ddb.Class{
			{
				Level:      5,
				Definition: &ddb.ClassDefinition{Name: "Fighter", HitDice: 10},
				ClassFeatures: []ddb.ClassFeature{
					{Definition: &ddb.FeatureDefinition{
						Name:       "Second Wind",
						Activation: &ddb.Activation{ActivationType: 3},
						LimitedUse: &ddb.LimitedUse{MaxUses: 1, ResetType: 1},
					}},
				},
			},
		},
		Inventory: []ddb.InventoryItem{
			{Quantity: 1, Equipped: true, Definition: &ddb.ItemDefinition{
				Name: "Longsword", FilterType: "Weapon", Weight: 3, Cost: 15,
				Damage: &ddb.Damage{DiceString: "1d8"}, DamageType: "Slashing",
				Properties: []ddb.ItemProperty{{Name: "Versatile"}},
			}},
			{Quantity: 1, Equipped: true, Definition: &ddb.ItemDefinition{
				Name: "Chain Mail", FilterType: "Armor", Type: "Heavy Armor", Weight: 55, Cost: 75,
				ArmorClass: intPtr(16),
			}},
		},
		Feats: []ddb.Feat{
			{Definition: &ddb.FeatureDefinition{Name: "Tough"}},
		},
	}
}

// CreateTestInventory creates n distinct loot stacks
func CreateTestInventory(n int) []ddb.InventoryItem {
	items := make([]ddb.InventoryItem, 0, n)
	for i := 1; i <= n; i++ {
		items = append(items, ddb.InventoryItem{
			ID:       int64(i),
			Quantity: i,
			Definition: &ddb.ItemDefinition{
				Name:       fmt.Sprintf("Trinket %d", i),
				FilterType: "Other Gear",
			},
		})
	}
	return items
}

// CreateTestPayload wraps char the way the browser extension exports it.
// A nil char leaves characterData out.
func CreateTestPayload(char *ddb.Character) []byte {
	payload := map[string]interface{}{
		"characterUrl": TestCharacterURL,
		"characterId":  fmt.Sprint(TestCharacterID),
		"cobaltCookie": "test-session",
		"timestamp":    "2024-01-01T00:00:00.000Z",
	}
	if char != nil {
		payload["characterData"] = ddb.Response{ID: char.ID, Success: true, Message: "Character successfully received.", Data: char}
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		panic(err)
	}
	return raw
}

func intPtr(n int) *int {
	return &n
}
