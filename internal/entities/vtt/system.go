package vtt

import "github.com/KirkDiggler/ddb-importer/internal/lookup"

// Preparation modes
const (
	PreparationAlways   = "always"
	PreparationPrepared = "prepared"
)

// Attunement states
const (
	AttunementNone     = 0
	AttunementRequired = 1
	AttunementAttuned  = 2
)

// Feature sources
const (
	FeatureTypeClass = "class"
	FeatureTypeRace  = "race"
	FeatureTypeFeat  = "feat"
)

// DenominationGold is the only price denomination the importer writes
const DenominationGold = "gp"

// System is the dnd5e system data of a document. Sections that do not apply
// to a document type stay nil and are omitted.
type System struct {
	Description Description `json:"description"`

	Quantity   int                            `json:"quantity,omitempty"`
	Weight     float64                        `json:"weight,omitempty"`
	Price      *Price                         `json:"price,omitempty"`
	Equipped   bool                           `json:"equipped,omitempty"`
	Identified bool                           `json:"identified,omitempty"`
	Rarity     lookup.Rarity                  `json:"rarity,omitempty"`
	Attunement int                            `json:"attunement,omitempty"`
	Armor      *Armor                         `json:"armor,omitempty"`
	Properties map[lookup.WeaponProperty]bool `json:"properties,omitempty"`

	ActionType lookup.ActionType `json:"actionType,omitempty"`
	Damage     *Damage           `json:"damage,omitempty"`

	Level       int                `json:"level,omitempty"`
	School      lookup.SpellSchool `json:"school,omitempty"`
	Components  *Components        `json:"components,omitempty"`
	Materials   *Materials         `json:"materials,omitempty"`
	Preparation *Preparation       `json:"preparation,omitempty"`
	Save        *Save              `json:"save,omitempty"`
	Duration    *Duration          `json:"duration,omitempty"`
	Range       *Range             `json:"range,omitempty"`
	Target      *Target            `json:"target,omitempty"`

	Activation   *Activation  `json:"activation,omitempty"`
	Uses         *Uses        `json:"uses,omitempty"`
	Requirements string       `json:"requirements,omitempty"`
	FeatureType  *FeatureType `json:"type,omitempty"`

	Levels      int    `json:"levels,omitempty"`
	HitDice     string `json:"hitDice,omitempty"`
	HitDiceUsed int    `json:"hitDiceUsed,omitempty"`
	Subclass    string `json:"subclass,omitempty"`
}

// Description is rich text
type Description struct {
	Value string `json:"value"`
}

// Price is an item's cost
type Price struct {
	Value        float64 `json:"value"`
	Denomination string  `json:"denomination"`
}

// Armor is an armor item's protection
type Armor struct {
	Value int              `json:"value"`
	Type  lookup.ArmorType `json:"type"`
}

// DamagePart is a [formula, damage type] pair
type DamagePart [2]string

// Damage lists damage rolls
type Damage struct {
	Parts     []DamagePart `json:"parts"`
	Versatile string       `json:"versatile,omitempty"`
}

// Components flags a spell's components and tags
type Components struct {
	Vocal         bool `json:"vocal"`
	Somatic       bool `json:"somatic"`
	Material      bool `json:"material"`
	Ritual        bool `json:"ritual"`
	Concentration bool `json:"concentration"`
}

// Materials describes material components
type Materials struct {
	Value string `json:"value"`
}

// Preparation is how a spell is readied
type Preparation struct {
	Mode     string `json:"mode"`
	Prepared bool   `json:"prepared"`
}

// Save is a spell's saving throw
type Save struct {
	Ability lookup.Ability `json:"ability"`
	DC      *int           `json:"dc"`
	Scaling string         `json:"scaling,omitempty"`
}

// Duration is a spell's duration
type Duration struct {
	Value *int                `json:"value"`
	Units lookup.DurationUnit `json:"units"`
}

// Range is a spell's range
type Range struct {
	Value *int             `json:"value"`
	Units lookup.RangeUnit `json:"units"`
}

// Target is a spell's area of effect
type Target struct {
	Value *int            `json:"value"`
	Type  lookup.AreaType `json:"type"`
}

// Activation is a feature's action cost
type Activation struct {
	Type lookup.ActivationType `json:"type"`
	Cost *int                  `json:"cost"`
}

// Uses is a limited-use budget. All fields are null for unlimited features.
type Uses struct {
	Value *int               `json:"value"`
	Max   *int               `json:"max"`
	Per   *lookup.UsesPeriod `json:"per"`
}

// FeatureType tags where a feature came from
type FeatureType struct {
	Value string `json:"value"`
}
