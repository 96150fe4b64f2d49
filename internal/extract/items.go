package extract

import (
	"github.com/KirkDiggler/ddb-importer/internal/entities/ddb"
	"github.com/KirkDiggler/ddb-importer/internal/entities/vtt"
	"github.com/KirkDiggler/ddb-importer/internal/lookup"
)

// ItemType classifies an item definition by its filter type
func ItemType(def *ddb.ItemDefinition) lookup.ItemType {
	return lookup.ItemTypeForFilter(def.FilterType)
}

// ItemRarity reads a numeric or named rarity, defaulting to common
func ItemRarity(def *ddb.ItemDefinition) lookup.Rarity {
	if def.Rarity.Name != "" {
		return lookup.RarityForName(def.Rarity.Name)
	}
	return lookup.RarityForID(def.Rarity.ID)
}

// WeaponProperties sets a flag for each recognized property
func WeaponProperties(def *ddb.ItemDefinition) map[lookup.WeaponProperty]bool {
	props := map[lookup.WeaponProperty]bool{}
	for _, p := range def.Properties {
		if code := lookup.WeaponPropertyForName(p.Name); code != lookup.WeaponPropertyNone {
			props[code] = true
		}
	}
	return props
}

// ArmorType classifies armor by its type name, defaulting to light
func ArmorType(def *ddb.ItemDefinition) lookup.ArmorType {
	return lookup.ArmorTypeForName(def.Type)
}

// ItemArmor returns the armor block, or nil for non-armor
func ItemArmor(def *ddb.ItemDefinition) *vtt.Armor {
	if !def.IsArmor() {
		return nil
	}
	return &vtt.Armor{
		Value: *def.ArmorClass,
		Type:  ArmorType(def),
	}
}

// ItemDamage returns the single damage part of a weapon, or nil
func ItemDamage(def *ddb.ItemDefinition) *vtt.Damage {
	if def.Damage == nil {
		return nil
	}
	return &vtt.Damage{
		Parts: []vtt.DamagePart{{def.Damage.DiceString, lookup.DamageTypeForName(def.DamageType)}},
	}
}

// ItemAttunement is required (1) when the definition asks for it, else none
func ItemAttunement(def *ddb.ItemDefinition) int {
	if def.RequiresAttunement {
		return vtt.AttunementRequired
	}
	return vtt.AttunementNone
}
