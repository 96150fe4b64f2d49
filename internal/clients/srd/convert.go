package srd

import (
	"fmt"
	"strings"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/ddb-importer/internal/entities/vtt"
	"github.com/KirkDiggler/ddb-importer/internal/lookup"
)

// coin values in gold pieces
var goldPerCoin = map[string]float64{
	"cp": 0.01,
	"sp": 0.1,
	"ep": 0.5,
	"gp": 1,
	"pp": 10,
}

// Spell converts an SRD spell
func Spell(spell *entities.Spell) *vtt.Document {
	if spell == nil {
		return nil
	}

	system := vtt.System{
		Level:      spell.SpellLevel,
		School:     lookup.SchoolEvocation,
		Components: &vtt.Components{Ritual: spell.Ritual, Concentration: spell.Concentration},
		ActionType: lookup.ActionUtility,
		Damage:     &vtt.Damage{Parts: []vtt.DamagePart{}},
		Save:       &vtt.Save{Ability: lookup.AbilityNone},
		Duration:   parseDuration(spell.Duration),
		Range:      parseRange(spell.Range),
		Target:     &vtt.Target{Type: lookup.AreaNone},
		Activation: parseCastingTime(spell.CastingTime),
	}
	if spell.SpellSchool != nil {
		system.School = lookup.SchoolForName(spell.SpellSchool.Name)
	}
	if spell.DC != nil && spell.DC.DCType != nil {
		system.ActionType = lookup.ActionSave
		system.Save = &vtt.Save{
			Ability: lookup.Ability(strings.ToLower(spell.DC.DCType.Name)),
			Scaling: "spell",
		}
	}
	if spell.AreaOfEffect != nil {
		size := spell.AreaOfEffect.Size
		system.Target = &vtt.Target{Type: lookup.AreaType(strings.ToLower(spell.AreaOfEffect.Type))}
		if size > 0 {
			system.Target.Value = &size
		}
	}

	return &vtt.Document{
		Name:   spell.Name,
		Type:   vtt.DocumentTypeSpell,
		Img:    vtt.ImageSpell,
		System: system,
	}
}

// Equipment converts an SRD weapon, armor or gear entry
func Equipment(eq dnd5e.EquipmentInterface) *vtt.Document {
	switch e := eq.(type) {
	case *entities.Weapon:
		if e == nil {
			return nil
		}
		system := physical(e.Weight, e.Cost)
		system.ActionType = lookup.ActionMeleeWeaponAttack
		system.Properties = map[lookup.WeaponProperty]bool{}
		for _, p := range e.Properties {
			if p == nil {
				continue
			}
			if code := lookup.WeaponPropertyForName(p.Name); code != lookup.WeaponPropertyNone {
				system.Properties[code] = true
			}
		}
		if e.Damage != nil {
			damageType := ""
			if e.Damage.DamageType != nil {
				damageType = lookup.DamageTypeForName(e.Damage.DamageType.Name)
			}
			system.Damage = &vtt.Damage{Parts: []vtt.DamagePart{{e.Damage.DamageDice, damageType}}}
		}
		return &vtt.Document{Name: e.Name, Type: vtt.DocumentTypeWeapon, Img: vtt.ImageItem, System: system}

	case *entities.Armor:
		if e == nil {
			return nil
		}
		system := physical(e.Weight, e.Cost)
		system.Armor = &vtt.Armor{Type: lookup.ArmorTypeForCategory(e.ArmorCategory)}
		if e.ArmorClass != nil {
			system.Armor.Value = e.ArmorClass.Base
		}
		return &vtt.Document{Name: e.Name, Type: vtt.DocumentTypeEquipment, Img: vtt.ImageItem, System: system}

	case *entities.Equipment:
		if e == nil {
			return nil
		}
		return &vtt.Document{Name: e.Name, Type: vtt.DocumentTypeLoot, Img: vtt.ImageItem, System: physical(e.Weight, e.Cost)}

	default:
		return nil
	}
}

func physical(weight float32, cost *entities.Cost) vtt.System {
	system := vtt.System{
		Quantity:   1,
		Weight:     float64(weight),
		Identified: true,
		Rarity:     lookup.RarityCommon,
		Price:      &vtt.Price{Denomination: vtt.DenominationGold},
	}
	if cost != nil {
		rate, ok := goldPerCoin[strings.ToLower(cost.Unit)]
		if !ok {
			rate = 1
		}
		system.Price.Value = float64(cost.Quantity) * rate
	}
	return system
}

// Class converts an SRD class
func Class(class *entities.Class) *vtt.Document {
	if class == nil {
		return nil
	}
	hitDie := class.HitDie
	if hitDie <= 0 {
		hitDie = 8
	}
	return &vtt.Document{
		Name: class.Name,
		Type: vtt.DocumentTypeClass,
		Img:  vtt.ImageClass,
		System: vtt.System{
			Levels:  1,
			HitDice: fmt.Sprintf("d%d", hitDie),
		},
	}
}

// Race converts an SRD race
func Race(race *entities.Race) *vtt.Document {
	if race == nil {
		return nil
	}
	return &vtt.Document{
		Name: race.Name,
		Type: vtt.DocumentTypeRace,
		Img:  vtt.ImageRace,
		System: vtt.System{
			Description: vtt.Description{Value: race.SizeDescription},
		},
	}
}

// Feature converts an SRD class feature
func Feature(feature *entities.Feature) *vtt.Document {
	if feature == nil {
		return nil
	}
	requirements := ""
	if feature.Class != nil {
		requirements = feature.Class.Name
	}
	return &vtt.Document{
		Name: feature.Name,
		Type: vtt.DocumentTypeFeat,
		Img:  vtt.ImageFeature,
		System: vtt.System{
			Activation:   &vtt.Activation{Type: lookup.ActivationNone},
			Uses:         &vtt.Uses{},
			Requirements: requirements,
			FeatureType:  &vtt.FeatureType{Value: vtt.FeatureTypeClass},
		},
	}
}
