package synthesis

import (
	"github.com/KirkDiggler/ddb-importer/internal/entities/ddb"
	"github.com/KirkDiggler/ddb-importer/internal/entities/vtt"
	"github.com/KirkDiggler/ddb-importer/internal/extract"
)

// OverlayItem copies a canonical item and applies the character's stack
func OverlayItem(doc *vtt.Document, inv ddb.InventoryItem) *vtt.Document {
	out := doc.Clone()
	if out == nil {
		return nil
	}
	out.System.Quantity = inv.QuantityOrDefault()
	out.System.Equipped = inv.Equipped
	if inv.IsAttuned {
		out.System.Attunement = vtt.AttunementAttuned
	}
	return out
}

// OverlaySpell copies a canonical spell and applies the preparation
func OverlaySpell(doc *vtt.Document, spell ddb.Spell) *vtt.Document {
	out := doc.Clone()
	if out == nil {
		return nil
	}
	out.System.Preparation = extract.SpellPreparation(spell)
	return out
}

// OverlayClass copies a canonical class and applies levels and subclass
func OverlayClass(doc *vtt.Document, cls ddb.Class) *vtt.Document {
	out := doc.Clone()
	if out == nil {
		return nil
	}
	out.System.Levels = cls.LevelOrDefault()
	if sub := cls.SubclassName(); sub != "" {
		out.System.Subclass = sub
	}
	return out
}
