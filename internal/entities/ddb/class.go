package ddb

import "fmt"

// DefaultHitDie applies to a class definition without one
const DefaultHitDie = 8

// Class is one class the character has levels in
type Class struct {
	Level              int              `json:"level"`
	Definition         *ClassDefinition `json:"definition"`
	SubclassDefinition *Definition      `json:"subclassDefinition"`
	ClassFeatures      []ClassFeature   `json:"classFeatures"`
}

// LevelOrDefault is the level recorded on a class item: 1 when unset
func (c Class) LevelOrDefault() int {
	if c.Level <= 0 {
		return 1
	}
	return c.Level
}

// SubclassName returns the subclass name, if any
func (c Class) SubclassName() string {
	if c.SubclassDefinition == nil {
		return ""
	}
	return c.SubclassDefinition.Name
}

// ClassName returns the definition name, if any
func (c Class) ClassName() string {
	if c.Definition == nil {
		return ""
	}
	return c.Definition.Name
}

// ClassDefinition is the rules definition of a class
type ClassDefinition struct {
	Name                  string `json:"name"`
	Description           string `json:"description"`
	HitDice               int    `json:"hitDice"`
	PortraitAvatarURL     string `json:"portraitAvatarUrl"`
	SpellCastingAbilityID int    `json:"spellCastingAbilityId"`
	CanCastSpells         bool   `json:"canCastSpells"`
}

// HitDieOrDefault returns the hit die size or DefaultHitDie
func (d *ClassDefinition) HitDieOrDefault() int {
	if d.HitDice <= 0 {
		return DefaultHitDie
	}
	return d.HitDice
}

// HitDieNotation renders the hit die as "d10"
func (d *ClassDefinition) HitDieNotation() string {
	return fmt.Sprintf("d%d", d.HitDieOrDefault())
}

// ClassFeature is a feature granted by a class
type ClassFeature struct {
	Definition *FeatureDefinition `json:"definition"`
}

// Feat is a feat taken by the character
type Feat struct {
	Definition *FeatureDefinition `json:"definition"`
}

// FeatureDefinition describes a class feature, racial trait, or feat
type FeatureDefinition struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Activation  *Activation `json:"activation"`
	LimitedUse  *LimitedUse `json:"limitedUse"`
}

// Activation is how a feature is used
type Activation struct {
	ActivationTime *int `json:"activationTime"`
	ActivationType int  `json:"activationType"`
}
