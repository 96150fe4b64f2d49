package ddb

// Modifier types used by the importer
const (
	ModifierTypeImmunity      = "immunity"
	ModifierTypeResistance    = "resistance"
	ModifierTypeVulnerability = "vulnerability"
	ModifierTypeProficiency   = "proficiency"
	ModifierTypeExpertise     = "expertise"
	ModifierTypeLanguage      = "language"
)

// SkillEntityTypeID marks a modifier whose entity id is a skill id
const SkillEntityTypeID = 1958004211

// Modifiers groups modifiers by where they come from
type Modifiers struct {
	Race       []Modifier `json:"race"`
	Class      []Modifier `json:"class"`
	Background []Modifier `json:"background"`
	Item       []Modifier `json:"item"`
	Feat       []Modifier `json:"feat"`
}

// Character returns the groups that shape the base sheet. Item modifiers
// depend on equip state and are left to the item documents.
func (m Modifiers) Character() [][]Modifier {
	return [][]Modifier{m.Race, m.Class, m.Background, m.Feat}
}

// Modifier is a single grant or adjustment
type Modifier struct {
	Type                string `json:"type"`
	SubType             string `json:"subType"`
	FriendlyTypeName    string `json:"friendlyTypeName"`
	FriendlySubtypeName string `json:"friendlySubtypeName"`
	EntityID            int    `json:"entityId"`
	EntityTypeID        int    `json:"entityTypeId"`
}
