// Package vtt models documents in the virtual tabletop's dnd5e system: the
// content entries kept in compendium stores and the character actor they get
// attached to.
package vtt

import (
	"encoding/json"

	"github.com/KirkDiggler/ddb-importer/internal/lookup"
)

// DocumentType is the type of an item-like document
type DocumentType string

// Document types
const (
	DocumentTypeClass      DocumentType = "class"
	DocumentTypeRace       DocumentType = "race"
	DocumentTypeSpell      DocumentType = "spell"
	DocumentTypeFeat       DocumentType = "feat"
	DocumentTypeWeapon     DocumentType = DocumentType(lookup.ItemTypeWeapon)
	DocumentTypeEquipment  DocumentType = DocumentType(lookup.ItemTypeEquipment)
	DocumentTypeConsumable DocumentType = DocumentType(lookup.ItemTypeConsumable)
	DocumentTypeTool       DocumentType = DocumentType(lookup.ItemTypeTool)
	DocumentTypeLoot       DocumentType = DocumentType(lookup.ItemTypeLoot)
)

// IsItem reports whether the type is one of the physical item types
func (t DocumentType) IsItem() bool {
	switch t {
	case DocumentTypeWeapon, DocumentTypeEquipment, DocumentTypeConsumable, DocumentTypeTool, DocumentTypeLoot:
		return true
	default:
		return false
	}
}

// Default images for synthesized documents
const (
	ImageClass   = "icons/svg/book.svg"
	ImageRace    = "icons/svg/mystery-man.svg"
	ImageItem    = "icons/svg/item-bag.svg"
	ImageSpell   = "icons/svg/book.svg"
	ImageFeature = "icons/svg/aura.svg"
	ImageTrait   = "icons/svg/pawprint.svg"
	ImageFeat    = "icons/svg/upgrade.svg"
)

// Document is a named, typed content entry
type Document struct {
	ID     string        `json:"_id,omitempty"`
	Name   string        `json:"name"`
	Type   DocumentType  `json:"type"`
	Img    string        `json:"img,omitempty"`
	System System        `json:"system"`
	Flags  DocumentFlags `json:"flags"`
}

// DocumentFlags records where a document came from
type DocumentFlags struct {
	SourceStore string `json:"sourceStore,omitempty"`
	SourceID    string `json:"sourceId,omitempty"`
}

// Clone returns a deep copy so overlays never touch a cached original
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	raw, err := json.Marshal(d)
	if err != nil {
		cp := *d
		return &cp
	}
	var out Document
	if err := json.Unmarshal(raw, &out); err != nil {
		cp := *d
		return &cp
	}
	return &out
}
