package ddb

// Race is the character's race block
type Race struct {
	FullName          string        `json:"fullName"`
	BaseRaceName      string        `json:"baseRaceName"`
	Description       string        `json:"description"`
	PortraitAvatarURL string        `json:"portraitAvatarUrl"`
	SizeID            int           `json:"sizeId"`
	Size              string        `json:"size"`
	RacialTraits      []RacialTrait `json:"racialTraits"`
	WeightSpeeds      *WeightSpeeds `json:"weightSpeeds"`
}

// LookupName is the name used to find a canonical race: the base race when
// known, else the full name.
func (r *Race) LookupName() string {
	if r.BaseRaceName != "" {
		return r.BaseRaceName
	}
	return r.FullName
}

// DisplayName prefers the full name ("Hill Dwarf") over the base race
func (r *Race) DisplayName() string {
	if r.FullName != "" {
		return r.FullName
	}
	return r.BaseRaceName
}

// HasSize reports whether the sheet carries any size information
func (r *Race) HasSize() bool {
	return r.Size != "" || r.SizeID != 0
}

// RacialTrait is one trait granted by the race
type RacialTrait struct {
	Definition *FeatureDefinition `json:"definition"`
}

// WeightSpeeds carries the race's speeds by encumbrance
type WeightSpeeds struct {
	Normal *Movement `json:"normal"`
}
