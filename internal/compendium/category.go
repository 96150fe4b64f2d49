package compendium

import (
	"github.com/KirkDiggler/ddb-importer/internal/entities/vtt"
)

// Category is what the importer is looking for
type Category string

// Categories
const (
	CategoryItem  Category = "item"
	CategorySpell Category = "spell"
	CategoryFeat  Category = "feat"
	CategoryClass Category = "class"
	CategoryRace  Category = "race"
)

// Categories lists every category
var Categories = []Category{
	CategoryItem,
	CategorySpell,
	CategoryFeat,
	CategoryClass,
	CategoryRace,
}

// Valid reports whether c is a known category
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Matches reports whether a custom store entry of type t can satisfy a
// lookup in this category. Feats match anything since racial traits and
// class features are stored loosely; items match every physical item type.
func (c Category) Matches(t vtt.DocumentType) bool {
	switch c {
	case CategoryFeat:
		return true
	case CategoryItem:
		return t.IsItem()
	case CategorySpell:
		return t == vtt.DocumentTypeSpell
	case CategoryClass:
		return t == vtt.DocumentTypeClass
	case CategoryRace:
		return t == vtt.DocumentTypeRace
	default:
		return false
	}
}
