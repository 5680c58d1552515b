// Package component holds the plain data of the dungeon: rooms, the items
// lying in them and the enemies guarding them. Variants are tagged by a
// kind enum with a kind-specific payload pointer; logic lives elsewhere.
package component

// ItemKind tags the variant of an Item.
type ItemKind uint8

const (
	KindNone ItemKind = iota
	KindKey
	KindCoin
	KindMap
	KindChest
	KindBandage
	KindRegenPotion
	KindPowerPotion
	KindRandomPotion
	KindFists
	KindSword
	KindWand
	KindHelm
	KindChestplate

	itemKindCount
)

// ItemKinds lists every real item kind in declaration order.
func ItemKinds() []ItemKind {
	out := make([]ItemKind, 0, itemKindCount-1)
	for k := KindKey; k < itemKindCount; k++ {
		out = append(out, k)
	}
	return out
}

func (k ItemKind) String() string {
	switch k {
	case KindKey:
		return "key"
	case KindCoin:
		return "coin"
	case KindMap:
		return "map"
	case KindChest:
		return "chest"
	case KindBandage:
		return "bandage"
	case KindRegenPotion:
		return "regen_potion"
	case KindPowerPotion:
		return "power_potion"
	case KindRandomPotion:
		return "random_potion"
	case KindFists:
		return "fists"
	case KindSword:
		return "sword"
	case KindWand:
		return "wand"
	case KindHelm:
		return "helm"
	case KindChestplate:
		return "chestplate"
	}
	return "none"
}

// IsHeal reports whether the kind is a consumable heal.
func (k ItemKind) IsHeal() bool {
	return k >= KindBandage && k <= KindRandomPotion
}

// IsWeapon reports whether the kind goes in the weapon slot.
func (k ItemKind) IsWeapon() bool {
	return k == KindFists || k == KindSword || k == KindWand
}

// IsArmor reports whether the kind goes in an armor slot.
func (k ItemKind) IsArmor() bool {
	return k == KindHelm || k == KindChestplate
}

// Item is one thing that can lie in a room, a chest or the inventory.
// Exactly one payload is set for chest, heal and equipment kinds.
type Item struct {
	ID          int
	Kind        ItemKind
	Name        string
	Description string
	Carryable   bool
	Cost        int // coins to buy or sell; 0 = not for trade
	Amount      int // coin value of a Coin

	Chest     *Chest
	Heal      *Heal
	Equipment *Equipment
}

// Sellable reports whether the item has a price.
func (i *Item) Sellable() bool { return i.Cost > 0 }

// IsMimic reports whether the item is a chest hiding a Mimic.
func (i *Item) IsMimic() bool {
	return i.Kind == KindChest && i.Chest != nil && i.Chest.Mimic != nil
}

// Heal is the payload of the heal kinds. A RandomPotion keeps its deltas at
// zero and rolls them from the two [min, max] ranges when it is used.
type Heal struct {
	MaxHealth int
	Health    int

	MaxHealthRange [2]int
	HealthRange    [2]int
}
