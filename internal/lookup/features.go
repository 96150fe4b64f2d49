package lookup

// ActivationType is a VTT activation cost type
type ActivationType string

// Activation constants
const (
	ActivationNone     ActivationType = ""
	ActivationAction   ActivationType = "action"
	ActivationBonus    ActivationType = "bonus"
	ActivationReaction ActivationType = "reaction"
	ActivationMinute   ActivationType = "minute"
	ActivationHour     ActivationType = "hour"
)

// id 5 (no action) has no VTT counterpart
var activationByID = table[int, ActivationType]{
	entries: map[int]ActivationType{
		1: ActivationAction,
		2: ActivationBonus,
		3: ActivationReaction,
		4: ActivationMinute,
		6: ActivationHour,
	},
	fallback: ActivationNone,
}

// ActivationForID maps an activation type id. Unknown ids return ActivationNone.
func ActivationForID(id int) ActivationType {
	return activationByID.get(id)
}

// UsesPeriod is a VTT limited-use recovery period
type UsesPeriod string

// Uses period constants
const (
	UsesPeriodNone      UsesPeriod = ""
	UsesPeriodShortRest UsesPeriod = "sr"
	UsesPeriodLongRest  UsesPeriod = "lr"
	UsesPeriodDay       UsesPeriod = "day"
)

var usesPeriodByResetType = table[int, UsesPeriod]{
	entries: map[int]UsesPeriod{
		1: UsesPeriodShortRest,
		2: UsesPeriodLongRest,
		3: UsesPeriodDay,
	},
	fallback: UsesPeriodNone,
}

// UsesPeriodForResetType maps a limited-use reset type. Unknown types return
// UsesPeriodNone, which serializes as null.
func UsesPeriodForResetType(resetType int) UsesPeriod {
	return usesPeriodByResetType.get(resetType)
}
