// Package ddb models the D&D Beyond character-service response.
//
// The upstream payload is large and loosely populated: most fields may be
// missing or null. Only the fields the importer reads are declared, and
// anything whose absence differs from its zero value carries an accessor
// that states the default.
package ddb

// Response is the character-service envelope
type Response struct {
	ID      int64      `json:"id"`
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Data    *Character `json:"data"`
}

// DefaultCharacterName is used when the sheet has no name
const DefaultCharacterName = "Imported Character"

// DefaultWalkSpeed applies when neither the sheet nor the race has one
const DefaultWalkSpeed = 30

// DefaultArmorClass applies when the sheet carries no armor class
const DefaultArmorClass = 10

// Character is the `data` object of the response
type Character struct {
	ID                 int64            `json:"id"`
	Name               string           `json:"name"`
	Stats              []Stat           `json:"stats"`
	BaseHitPoints      int              `json:"baseHitPoints"`
	BonusHitPoints     int              `json:"bonusHitPoints"`
	RemovedHitPoints   int              `json:"removedHitPoints"`
	TemporaryHitPoints int              `json:"temporaryHitPoints"`
	CurrentXP          int              `json:"currentXp"`
	AlignmentID        int              `json:"alignmentId"`
	ArmorClass         int              `json:"armorClass"`
	Speed              *Movement        `json:"speed"`
	Race               *Race            `json:"race"`
	Background         *Background      `json:"background"`
	Currencies         Currencies       `json:"currencies"`
	Modifiers          Modifiers        `json:"modifiers"`
	Classes            []Class          `json:"classes"`
	Inventory          []InventoryItem  `json:"inventory"`
	ClassSpells        []ClassSpellList `json:"classSpells"`
	Feats              []Feat           `json:"feats"`
}

// DisplayName returns the sheet name or DefaultCharacterName
func (c *Character) DisplayName() string {
	if c == nil || c.Name == "" {
		return DefaultCharacterName
	}
	return c.Name
}

// WalkSpeed prefers the sheet speed, then the race's normal walking speed,
// then DefaultWalkSpeed.
func (c *Character) WalkSpeed() int {
	if c.Speed != nil && c.Speed.Walk > 0 {
		return c.Speed.Walk
	}
	if c.Race != nil && c.Race.WeightSpeeds != nil && c.Race.WeightSpeeds.Normal != nil && c.Race.WeightSpeeds.Normal.Walk > 0 {
		return c.Race.WeightSpeeds.Normal.Walk
	}
	return DefaultWalkSpeed
}

// ArmorClassOrDefault returns the sheet armor class or DefaultArmorClass
func (c *Character) ArmorClassOrDefault() int {
	if c.ArmorClass > 0 {
		return c.ArmorClass
	}
	return DefaultArmorClass
}

// BackgroundName returns the background definition name, if any
func (c *Character) BackgroundName() string {
	if c.Background == nil || c.Background.Definition == nil {
		return ""
	}
	return c.Background.Definition.Name
}

// RaceOrEmpty never returns nil
func (c *Character) RaceOrEmpty() *Race {
	if c.Race == nil {
		return &Race{}
	}
	return c.Race
}

// DefaultStatValue applies to a stat with no value
const DefaultStatValue = 10

// Stat is one ability score entry
type Stat struct {
	ID    int `json:"id"`
	Value int `json:"value"`
}

// ValueOrDefault returns the score or DefaultStatValue when unset
func (s Stat) ValueOrDefault() int {
	if s.Value == 0 {
		return DefaultStatValue
	}
	return s.Value
}

// Movement holds speeds in feet
type Movement struct {
	Walk   int `json:"walk"`
	Fly    int `json:"fly"`
	Swim   int `json:"swim"`
	Climb  int `json:"climb"`
	Burrow int `json:"burrow"`
}

// Currencies is the coin purse
type Currencies struct {
	CP int `json:"cp"`
	SP int `json:"sp"`
	EP int `json:"ep"`
	GP int `json:"gp"`
	PP int `json:"pp"`
}

// Background is the character background
type Background struct {
	Definition *Definition `json:"definition"`
}

// Definition is the shared name/description pair
type Definition struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
