package ddb

// Spell component ids
const (
	ComponentVerbal   = 1
	ComponentSomatic  = 2
	ComponentMaterial = 3
)

// ClassSpellList is the spell list of one class
type ClassSpellList struct {
	CharacterClassID int64   `json:"characterClassId"`
	Spells           []Spell `json:"spells"`
}

// Spell is a known or prepared spell
type Spell struct {
	Prepared       bool             `json:"prepared"`
	AlwaysPrepared bool             `json:"alwaysPrepared"`
	Definition     *SpellDefinition `json:"definition"`
}

// SpellDefinition is the rules definition of a spell
type SpellDefinition struct {
	Name                  string         `json:"name"`
	Description           string         `json:"description"`
	Level                 int            `json:"level"`
	School                string         `json:"school"`
	Components            []int          `json:"components"`
	ComponentsDescription string         `json:"componentsDescription"`
	Ritual                bool           `json:"ritual"`
	Concentration         bool           `json:"concentration"`
	AttackType            int            `json:"attackType"`
	SaveDCAbilityID       int            `json:"saveDcAbilityId"`
	Damage                *Damage        `json:"damage"`
	DamageType            string         `json:"damageType"`
	Duration              *SpellDuration `json:"duration"`
	Range                 *SpellRange    `json:"range"`
}

// HasComponent reports whether the component id is required
func (d *SpellDefinition) HasComponent(id int) bool {
	for _, c := range d.Components {
		if c == id {
			return true
		}
	}
	return false
}

// SpellDuration is how long a spell lasts
type SpellDuration struct {
	DurationInterval int    `json:"durationInterval"`
	DurationUnit     string `json:"durationUnit"`
	DurationType     string `json:"durationType"`
}

// SpellRange is a spell's reach and area
type SpellRange struct {
	Origin     string `json:"origin"`
	RangeValue int    `json:"rangeValue"`
	AoeType    int    `json:"aoeType"`
	AoeValue   int    `json:"aoeValue"`
}
