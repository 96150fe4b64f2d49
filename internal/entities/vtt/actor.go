package vtt

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/ddb-importer/internal/lookup"
)

// ActorType is the host entity type
type ActorType string

// ActorTypeCharacter is the only actor type the importer writes
const ActorTypeCharacter ActorType = "character"

// Actor is a character entity in the host
type Actor struct {
	ID        string       `json:"_id"`
	Name      string       `json:"name"`
	Type      ActorType    `json:"type"`
	System    *ActorSystem `json:"system,omitempty"`
	Flags     ImportFlags  `json:"flags"`
	CreatedAt int64        `json:"createdAt,omitempty"`
	UpdatedAt int64        `json:"updatedAt,omitempty"`
}

var _ core.Entity = (*Actor)(nil)

// GetID implements core.Entity
func (a *Actor) GetID() string {
	return a.ID
}

// GetType implements core.Entity
func (a *Actor) GetType() string {
	return string(a.Type)
}

// ImportFlags tie an actor back to its source sheet
type ImportFlags struct {
	CharacterURL string `json:"characterUrl,omitempty"`
	CharacterID  string `json:"characterId,omitempty"`
	LastSync     string `json:"lastSync,omitempty"`
}

// ActorSystem is the normalized character sheet
type ActorSystem struct {
	Abilities  map[lookup.Ability]AbilityScore `json:"abilities"`
	Attributes Attributes                      `json:"attributes"`
	Details    Details                         `json:"details"`
	Traits     Traits                          `json:"traits"`
	Currency   Currency                        `json:"currency"`
	Spells     SpellSlots                      `json:"spells"`
}

// AbilityScore is one ability
type AbilityScore struct {
	Value int `json:"value"`
}

// Attributes are the derived combat numbers
type Attributes struct {
	HP           HitPoints      `json:"hp"`
	AC           ArmorClass     `json:"ac"`
	Movement     Movement       `json:"movement"`
	Prof         int            `json:"prof"`
	Spellcasting lookup.Ability `json:"spellcasting"`
}

// HitPoints is current, max and temporary hit points
type HitPoints struct {
	Value int `json:"value"`
	Max   int `json:"max"`
	Temp  int `json:"temp"`
}

// ArmorClass is the flat armor class
type ArmorClass struct {
	Value int `json:"value"`
}

// Movement holds speeds
type Movement struct {
	Walk   int    `json:"walk"`
	Fly    int    `json:"fly"`
	Swim   int    `json:"swim"`
	Climb  int    `json:"climb"`
	Burrow int    `json:"burrow"`
	Units  string `json:"units"`
	Hover  bool   `json:"hover"`
}

// Details is the biography block
type Details struct {
	Race       string           `json:"race"`
	Background string           `json:"background"`
	Alignment  lookup.Alignment `json:"alignment"`
	Level      int              `json:"level"`
	XP         Experience       `json:"xp"`
}

// Experience is experience points
type Experience struct {
	Value int `json:"value"`
}

// Traits are size, defenses, languages and skills
type Traits struct {
	Size      lookup.Size                       `json:"size"`
	DI        TraitList                         `json:"di"`
	DR        TraitList                         `json:"dr"`
	DV        TraitList                         `json:"dv"`
	CI        TraitList                         `json:"ci"`
	Languages TraitList                         `json:"languages"`
	Skills    map[lookup.Skill]SkillProficiency `json:"skills,omitempty"`
}

// TraitList is a list of trait codes
type TraitList struct {
	Value []string `json:"value"`
}

// Skill proficiency levels
const (
	SkillProficient = 1
	SkillExpertise  = 2
)

// SkillProficiency is the proficiency multiplier of a skill
type SkillProficiency struct {
	Value int `json:"value"`
}

// Currency is the coin purse
type Currency struct {
	CP int `json:"cp"`
	SP int `json:"sp"`
	EP int `json:"ep"`
	GP int `json:"gp"`
	PP int `json:"pp"`
}

// MaxSpellLevel is the highest spell slot level
const MaxSpellLevel = 9

// SpellSlots maps "spell1".."spell9" to slot counts
type SpellSlots map[string]SlotCount

// SlotCount is current and max slots of one level
type SlotCount struct {
	Value int `json:"value"`
	Max   int `json:"max"`
}

// SpellSlotKey returns the key for a spell level ("spell3")
func SpellSlotKey(level int) string {
	return fmt.Sprintf("spell%d", level)
}
