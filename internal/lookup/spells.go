package lookup

// SpellSchool is a VTT spell school code
type SpellSchool string

// Spell school constants
const (
	SchoolAbjuration    SpellSchool = "abj"
	SchoolConjuration   SpellSchool = "con"
	SchoolDivination    SpellSchool = "div"
	SchoolEnchantment   SpellSchool = "enc"
	SchoolEvocation     SpellSchool = "evo"
	SchoolIllusion      SpellSchool = "ill"
	SchoolNecromancy    SpellSchool = "nec"
	SchoolTransmutation SpellSchool = "trs"
)

var schoolByName = table[string, SpellSchool]{
	entries: map[string]SpellSchool{
		"Abjuration":    SchoolAbjuration,
		"Conjuration":   SchoolConjuration,
		"Divination":    SchoolDivination,
		"Enchantment":   SchoolEnchantment,
		"Evocation":     SchoolEvocation,
		"Illusion":      SchoolIllusion,
		"Necromancy":    SchoolNecromancy,
		"Transmutation": SchoolTransmutation,
	},
	fallback: SchoolEvocation,
}

// SchoolForName maps a school name, defaulting to evocation.
func SchoolForName(name string) SpellSchool {
	return schoolByName.get(name)
}

// DurationUnit is a VTT time unit
type DurationUnit string

// Duration unit constants
const (
	DurationInstantaneous DurationUnit = "inst"
	DurationMinute        DurationUnit = "minute"
	DurationHour          DurationUnit = "hour"
	DurationDay           DurationUnit = "day"
	DurationRound         DurationUnit = "round"
	DurationTurn          DurationUnit = "turn"
)

var durationByName = table[string, DurationUnit]{
	entries: map[string]DurationUnit{
		"Minute": DurationMinute,
		"Hour":   DurationHour,
		"Day":    DurationDay,
		"Round":  DurationRound,
		"Turn":   DurationTurn,
	},
	fallback: DurationInstantaneous,
}

// DurationUnitForName maps a duration unit, defaulting to instantaneous.
func DurationUnitForName(name string) DurationUnit {
	return durationByName.get(name)
}

// RangeUnit is a VTT range unit
type RangeUnit string

// Range unit constants
const (
	RangeSelf  RangeUnit = "self"
	RangeTouch RangeUnit = "touch"
	RangeFeet  RangeUnit = "ft"
)

var rangeByOrigin = table[string, RangeUnit]{
	entries: map[string]RangeUnit{
		"Self":  RangeSelf,
		"Touch": RangeTouch,
	},
	fallback: RangeFeet,
}

// RangeUnitForOrigin maps a range origin, defaulting to feet.
func RangeUnitForOrigin(origin string) RangeUnit {
	return rangeByOrigin.get(origin)
}

// AreaType is a VTT area-of-effect template
type AreaType string

// Area type constants
const (
	AreaNone     AreaType = ""
	AreaSphere   AreaType = "sphere"
	AreaCube     AreaType = "cube"
	AreaCone     AreaType = "cone"
	AreaLine     AreaType = "line"
	AreaCylinder AreaType = "cylinder"
)

var areaByID = table[int, AreaType]{
	entries: map[int]AreaType{
		1: AreaSphere,
		2: AreaCube,
		3: AreaCone,
		4: AreaLine,
		5: AreaCylinder,
	},
	fallback: AreaNone,
}

// AreaTypeForID maps an area-of-effect id. Unknown ids return AreaNone.
func AreaTypeForID(id int) AreaType {
	return areaByID.get(id)
}

// ActionType is a VTT action classification
type ActionType string

// Action type constants
const (
	ActionMeleeWeaponAttack ActionType = "mwak"
	ActionMeleeSpellAttack  ActionType = "msak"
	ActionRangedSpellAttack ActionType = "rsak"
	ActionSave              ActionType = "save"
	ActionUtility           ActionType = "util"
)

// SpellActionType classifies a spell by attack type id (1 melee, 2 ranged),
// then by whether it forces a save; anything else is utility.
func SpellActionType(attackType int, hasSave bool) ActionType {
	switch {
	case attackType == 1:
		return ActionMeleeSpellAttack
	case attackType == 2:
		return ActionRangedSpellAttack
	case hasSave:
		return ActionSave
	default:
		return ActionUtility
	}
}
