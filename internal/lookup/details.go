package lookup

// Alignment is a VTT alignment code
type Alignment string

// Alignment constants
const (
	AlignmentNone           Alignment = ""
	AlignmentLawfulGood     Alignment = "lg"
	AlignmentNeutralGood    Alignment = "ng"
	AlignmentChaoticGood    Alignment = "cg"
	AlignmentLawfulNeutral  Alignment = "ln"
	AlignmentTrueNeutral    Alignment = "tn"
	AlignmentChaoticNeutral Alignment = "cn"
	AlignmentLawfulEvil     Alignment = "le"
	AlignmentNeutralEvil    Alignment = "ne"
	AlignmentChaoticEvil    Alignment = "ce"
)

var alignmentByID = table[int, Alignment]{
	entries: map[int]Alignment{
		1: AlignmentLawfulGood,
		2: AlignmentNeutralGood,
		3: AlignmentChaoticGood,
		4: AlignmentLawfulNeutral,
		5: AlignmentTrueNeutral,
		6: AlignmentChaoticNeutral,
		7: AlignmentLawfulEvil,
		8: AlignmentNeutralEvil,
		9: AlignmentChaoticEvil,
	},
	fallback: AlignmentNone,
}

// AlignmentForID maps an alignment id. Unknown ids return AlignmentNone.
func AlignmentForID(id int) Alignment {
	return alignmentByID.get(id)
}

// Size is a VTT creature size code
type Size string

// Size constants
const (
	SizeTiny       Size = "tiny"
	SizeSmall      Size = "sm"
	SizeMedium     Size = "med"
	SizeLarge      Size = "lg"
	SizeHuge       Size = "huge"
	SizeGargantuan Size = "grg"
)

var sizeByID = table[int, Size]{
	entries: map[int]Size{
		2: SizeTiny,
		3: SizeSmall,
		4: SizeMedium,
		5: SizeLarge,
		6: SizeHuge,
		7: SizeGargantuan,
	},
	fallback: SizeMedium,
}

// SizeForID maps a size id, defaulting to medium.
func SizeForID(id int) Size {
	return sizeByID.get(id)
}

// Skill is a VTT skill code
type Skill string

// Skill constants
const (
	SkillNone           Skill = ""
	SkillAcrobatics     Skill = "acr"
	SkillAnimalHandling Skill = "ani"
	SkillArcana         Skill = "arc"
	SkillAthletics      Skill = "ath"
	SkillDeception      Skill = "dec"
	SkillHistory        Skill = "his"
	SkillInsight        Skill = "ins"
	SkillIntimidation   Skill = "itm"
	SkillInvestigation  Skill = "inv"
	SkillMedicine       Skill = "med"
	SkillNature         Skill = "nat"
	SkillPerception     Skill = "prc"
	SkillPerformance    Skill = "prf"
	SkillPersuasion     Skill = "per"
	SkillReligion       Skill = "rel"
	SkillSleightOfHand  Skill = "slt"
	SkillStealth        Skill = "ste"
	SkillSurvival       Skill = "sur"
)

var skillByID = table[int, Skill]{
	entries: map[int]Skill{
		1:  SkillSurvival,
		2:  SkillAthletics,
		3:  SkillAcrobatics,
		4:  SkillAnimalHandling,
		5:  SkillInvestigation,
		6:  SkillHistory,
		7:  SkillReligion,
		8:  SkillNature,
		9:  SkillPerception,
		10: SkillStealth,
		11: SkillSleightOfHand,
		12: SkillArcana,
		13: SkillInsight,
		14: SkillMedicine,
		15: SkillPersuasion,
		16: SkillDeception,
		17: SkillIntimidation,
		18: SkillPerformance,
	},
	fallback: SkillNone,
}

// SkillForID maps a skill id. Unknown ids return SkillNone.
func SkillForID(id int) Skill {
	return skillByID.get(id)
}
