package ddb

// InventoryItem is one stack in the character's inventory
type InventoryItem struct {
	ID         int64           `json:"id"`
	Quantity   int             `json:"quantity"`
	Equipped   bool            `json:"equipped"`
	IsAttuned  bool            `json:"isAttuned"`
	Definition *ItemDefinition `json:"definition"`
}

// QuantityOrDefault returns the stack size, 1 when unset
func (i InventoryItem) QuantityOrDefault() int {
	if i.Quantity <= 0 {
		return 1
	}
	return i.Quantity
}

// ItemDefinition is the rules definition of an item
type ItemDefinition struct {
	ID                 int64          `json:"id"`
	Name               string         `json:"name"`
	Description        string         `json:"description"`
	AvatarURL          string         `json:"avatarUrl"`
	FilterType         string         `json:"filterType"`
	Type               string         `json:"type"`
	Rarity             Rarity         `json:"rarity"`
	Weight             float64        `json:"weight"`
	Cost               float64        `json:"cost"`
	RequiresAttunement bool           `json:"requiresAttunement"`
	Damage             *Damage        `json:"damage"`
	DamageType         string         `json:"damageType"`
	ArmorClass         *int           `json:"armorClass"`
	Properties         []ItemProperty `json:"properties"`
}

// IsArmor reports whether the definition carries an armor class
func (d *ItemDefinition) IsArmor() bool {
	return d.ArmorClass != nil
}

// Damage is a dice expression
type Damage struct {
	DiceCount  int    `json:"diceCount"`
	DiceValue  int    `json:"diceValue"`
	DiceString string `json:"diceString"`
	FixedValue int    `json:"fixedValue"`
}

// ItemProperty is a weapon property tag such as "Finesse"
type ItemProperty struct {
	Name string `json:"name"`
}
