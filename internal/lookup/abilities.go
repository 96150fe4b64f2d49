package lookup

// Ability is a VTT ability code
type Ability string

// Ability constants
const (
	AbilityNone         Ability = ""
	AbilityStrength     Ability = "str"
	AbilityDexterity    Ability = "dex"
	AbilityConstitution Ability = "con"
	AbilityIntelligence Ability = "int"
	AbilityWisdom       Ability = "wis"
	AbilityCharisma     Ability = "cha"
)

// Abilities lists the six abilities in sheet order
var Abilities = []Ability{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

var abilityByID = table[int, Ability]{
	entries: map[int]Ability{
		1: AbilityStrength,
		2: AbilityDexterity,
		3: AbilityConstitution,
		4: AbilityIntelligence,
		5: AbilityWisdom,
		6: AbilityCharisma,
	},
	fallback: AbilityNone,
}

// AbilityForID maps a stat id (1-6). Unknown ids return AbilityNone.
func AbilityForID(id int) Ability {
	return abilityByID.get(id)
}

// SpellcastingAbilityForID maps a spellcasting ability id, defaulting to
// intelligence.
func SpellcastingAbilityForID(id int) Ability {
	if !abilityByID.has(id) {
		return AbilityIntelligence
	}
	return abilityByID.get(id)
}

// SaveAbilityForID maps a save DC ability id, defaulting to dexterity.
func SaveAbilityForID(id int) Ability {
	if !abilityByID.has(id) {
		return AbilityDexterity
	}
	return abilityByID.get(id)
}
