// Package synthesis builds content documents from the character sheet's own
// definitions when no canonical entry exists, and writes them back to the
// custom store for reuse.
package synthesis

import (
	"github.com/KirkDiggler/ddb-importer/internal/entities/ddb"
	"github.com/KirkDiggler/ddb-importer/internal/entities/vtt"
	"github.com/KirkDiggler/ddb-importer/internal/extract"
	"github.com/KirkDiggler/ddb-importer/internal/lookup"
)

// Class builds a class document. Returns nil without a definition.
func Class(cls ddb.Class) *vtt.Document {
	if cls.Definition == nil {
		return nil
	}
	def := cls.Definition
	return &vtt.Document{
		Name: def.Name,
		Type: vtt.DocumentTypeClass,
		Img:  imageOr(def.PortraitAvatarURL, vtt.ImageClass),
		System: vtt.System{
			Description: vtt.Description{Value: def.Description},
			Levels:      cls.LevelOrDefault(),
			HitDice:     def.HitDieNotation(),
			Subclass:    cls.SubclassName(),
		},
	}
}

// Race builds a race document named after the full race name
func Race(race *ddb.Race) *vtt.Document {
	if race == nil || race.DisplayName() == "" {
		return nil
	}
	return &vtt.Document{
		Name: race.DisplayName(),
		Type: vtt.DocumentTypeRace,
		Img:  imageOr(race.PortraitAvatarURL, vtt.ImageRace),
		System: vtt.System{
			Description: vtt.Description{Value: race.Description},
		},
	}
}

// Item builds a physical item document carrying the stack's quantity,
// equipped and attunement state.
func Item(inv ddb.InventoryItem) *vtt.Document {
	if inv.Definition == nil {
		return nil
	}
	def := inv.Definition
	itemType := extract.ItemType(def)

	system := vtt.System{
		Description: vtt.Description{Value: def.Description},
		Quantity:    inv.QuantityOrDefault(),
		Weight:      def.Weight,
		Price:       &vtt.Price{Value: def.Cost, Denomination: vtt.DenominationGold},
		Equipped:    inv.Equipped,
		Identified:  true,
		Rarity:      extract.ItemRarity(def),
		Attunement:  attunement(inv),
		Armor:       extract.ItemArmor(def),
		Damage:      extract.ItemDamage(def),
	}
	// anything that deals damage attacks like a weapon
	if def.Damage != nil {
		system.ActionType = lookup.ActionMeleeWeaponAttack
		system.Properties = extract.WeaponProperties(def)
	}

	return &vtt.Document{
		Name:   def.Name,
		Type:   vtt.DocumentType(itemType),
		Img:    imageOr(def.AvatarURL, vtt.ImageItem),
		System: system,
	}
}

// Spell builds a spell document with the character's preparation
func Spell(spell ddb.Spell) *vtt.Document {
	if spell.Definition == nil {
		return nil
	}
	def := spell.Definition

	system := vtt.System{
		Description: vtt.Description{Value: def.Description},
		Level:       def.Level,
		School:      lookup.SchoolForName(def.School),
		Components:  extract.SpellComponents(def),
		Preparation: extract.SpellPreparation(spell),
		ActionType:  extract.SpellActionType(def),
		Damage:      extract.SpellDamage(def),
		Save:        extract.SpellSave(def),
		Duration:    extract.SpellDuration(def),
		Range:       extract.SpellRange(def),
		Target:      extract.SpellTarget(def),
	}
	if def.ComponentsDescription != "" {
		system.Materials = &vtt.Materials{Value: def.ComponentsDescription}
	}

	return &vtt.Document{
		Name:   def.Name,
		Type:   vtt.DocumentTypeSpell,
		Img:    vtt.ImageSpell,
		System: system,
	}
}

// ClassFeature builds a feature granted by className
func ClassFeature(def *ddb.FeatureDefinition, className string) *vtt.Document {
	return feature(def, className, vtt.FeatureTypeClass, vtt.ImageFeature)
}

// RacialTrait builds a trait granted by raceName
func RacialTrait(def *ddb.FeatureDefinition, raceName string) *vtt.Document {
	return feature(def, raceName, vtt.FeatureTypeRace, vtt.ImageTrait)
}

// Feat builds a feat document
func Feat(def *ddb.FeatureDefinition) *vtt.Document {
	return feature(def, "", vtt.FeatureTypeFeat, vtt.ImageFeat)
}

func feature(def *ddb.FeatureDefinition, requirements, featureType, img string) *vtt.Document {
	if def == nil || def.Name == "" {
		return nil
	}
	return &vtt.Document{
		Name: def.Name,
		Type: vtt.DocumentTypeFeat,
		Img:  img,
		System: vtt.System{
			Description:  vtt.Description{Value: def.Description},
			Activation:   extract.FeatureActivation(def),
			Uses:         extract.FeatureUses(def.LimitedUse),
			Requirements: requirements,
			FeatureType:  &vtt.FeatureType{Value: featureType},
		},
	}
}

func attunement(inv ddb.InventoryItem) int {
	if inv.IsAttuned {
		return vtt.AttunementAttuned
	}
	return extract.ItemAttunement(inv.Definition)
}

func imageOr(url, fallback string) string {
	if url != "" {
		return url
	}
	return fallback
}
