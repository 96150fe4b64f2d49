package lookup

import "strings"

// Rarity is a VTT item rarity code
type Rarity string

// Rarity constants
const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityVeryRare  Rarity = "veryRare"
	RarityLegendary Rarity = "legendary"
	RarityArtifact  Rarity = "artifact"
)

var rarityByID = table[int, Rarity]{
	entries: map[int]Rarity{
		1: RarityCommon,
		2: RarityUncommon,
		3: RarityRare,
		4: RarityVeryRare,
		5: RarityLegendary,
		6: RarityArtifact,
	},
	fallback: RarityCommon,
}

var rarityByName = table[string, Rarity]{
	entries: map[string]Rarity{
		"common":    RarityCommon,
		"uncommon":  RarityUncommon,
		"rare":      RarityRare,
		"veryrare":  RarityVeryRare,
		"legendary": RarityLegendary,
		"artifact":  RarityArtifact,
	},
	fallback: RarityCommon,
}

// RarityForID maps a rarity id, defaulting to common.
func RarityForID(id int) Rarity {
	return rarityByID.get(id)
}

// RarityForName maps a display name such as "Very Rare", defaulting to common.
func RarityForName(name string) Rarity {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", ""))
	return rarityByName.get(key)
}

// ItemType is a VTT item document type
type ItemType string

// Item type constants
const (
	ItemTypeWeapon     ItemType = "weapon"
	ItemTypeEquipment  ItemType = "equipment"
	ItemTypeConsumable ItemType = "consumable"
	ItemTypeTool       ItemType = "tool"
	ItemTypeLoot       ItemType = "loot"
)

// ItemTypeForFilter classifies an item by its filter type text. Weapons win
// over armor, armor over consumables; anything else is loot.
func ItemTypeForFilter(filterType string) ItemType {
	ft := strings.ToLower(filterType)
	switch {
	case strings.Contains(ft, "weapon"):
		return ItemTypeWeapon
	case strings.Contains(ft, "armor"):
		return ItemTypeEquipment
	case strings.Contains(ft, "potion"), strings.Contains(ft, "scroll"):
		return ItemTypeConsumable
	default:
		return ItemTypeLoot
	}
}

// ArmorType is a VTT armor classification
type ArmorType string

// Armor type constants
const (
	ArmorTypeLight  ArmorType = "light"
	ArmorTypeMedium ArmorType = "medium"
	ArmorTypeHeavy  ArmorType = "heavy"
	ArmorTypeShield ArmorType = "shield"
)

var armorTypeByName = table[string, ArmorType]{
	entries: map[string]ArmorType{
		"Light Armor":  ArmorTypeLight,
		"Medium Armor": ArmorTypeMedium,
		"Heavy Armor":  ArmorTypeHeavy,
		"Shield":       ArmorTypeShield,
	},
	fallback: ArmorTypeLight,
}

// ArmorTypeForName maps an armor type name, defaulting to light.
func ArmorTypeForName(name string) ArmorType {
	return armorTypeByName.get(name)
}

// ArmorTypeForCategory maps an SRD armor category ("Light", "Shield", ...).
func ArmorTypeForCategory(category string) ArmorType {
	if strings.EqualFold(category, "shield") {
		return ArmorTypeShield
	}
	return ArmorTypeForName(category + " Armor")
}

// WeaponProperty is a VTT weapon property flag
type WeaponProperty string

// Weapon property constants
const (
	WeaponPropertyNone       WeaponProperty = ""
	WeaponPropertyFinesse    WeaponProperty = "fin"
	WeaponPropertyVersatile  WeaponProperty = "ver"
	WeaponPropertyLight      WeaponProperty = "lgt"
	WeaponPropertyHeavy      WeaponProperty = "hvy"
	WeaponPropertyReach      WeaponProperty = "rch"
	WeaponPropertyThrown     WeaponProperty = "thr"
	WeaponPropertyTwoHanded  WeaponProperty = "two"
	WeaponPropertyAmmunition WeaponProperty = "amm"
	WeaponPropertyLoading    WeaponProperty = "lod"
)

var weaponPropertyByName = table[string, WeaponProperty]{
	entries: map[string]WeaponProperty{
		"finesse":    WeaponPropertyFinesse,
		"versatile":  WeaponPropertyVersatile,
		"light":      WeaponPropertyLight,
		"heavy":      WeaponPropertyHeavy,
		"reach":      WeaponPropertyReach,
		"thrown":     WeaponPropertyThrown,
		"two-handed": WeaponPropertyTwoHanded,
		"ammunition": WeaponPropertyAmmunition,
		"loading":    WeaponPropertyLoading,
	},
	fallback: WeaponPropertyNone,
}

// WeaponPropertyForName maps a property name case-insensitively. Unknown
// names return WeaponPropertyNone.
func WeaponPropertyForName(name string) WeaponProperty {
	return weaponPropertyByName.get(strings.ToLower(strings.TrimSpace(name)))
}

// DamageTypeForName normalizes a damage type display name ("Slashing") to
// its code ("slashing").
func DamageTypeForName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
