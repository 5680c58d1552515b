package component

// Slot is where a piece of equipment is worn.
type Slot uint8

const (
	SlotWeapon Slot = iota
	SlotHelm
	SlotChestplate
)

func (s Slot) String() string {
	switch s {
	case SlotHelm:
		return "helm"
	case SlotChestplate:
		return "chestplate"
	}
	return "weapon"
}

// Tier grades equipment within its kind.
type Tier uint8

const (
	TierBasic Tier = iota // fists, wooden sword, leather armor
	TierIron
	TierGolden
	TierFire   // wand with fixed damage
	TierRandom // wand rolling damage in [0, Attack]
)

func (t Tier) String() string {
	switch t {
	case TierIron:
		return "iron"
	case TierGolden:
		return "golden"
	case TierFire:
		return "fire"
	case TierRandom:
		return "random"
	}
	return "basic"
}

// Equipment is the payload of weapon and armor items.
type Equipment struct {
	Slot           Slot
	Tier           Tier
	Attack         int // weapons
	Block          int // armor
	Durability     int
	MaxDurability  int
	Indestructible bool
}

// SlotOf returns the slot for an equipment kind.
func SlotOf(k ItemKind) (Slot, bool) {
	switch k {
	case KindFists, KindSword, KindWand:
		return SlotWeapon, true
	case KindHelm:
		return SlotHelm, true
	case KindChestplate:
		return SlotChestplate, true
	}
	return 0, false
}
