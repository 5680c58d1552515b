package game

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/world"
)

// ItemView is what the player can see of an item. Exactly one of the
// payload views is set for chests, heals and equipment.
type ItemView struct {
	ID          int
	Kind        string
	Name        string
	Description string
	Carryable   bool
	Cost        int
	Amount      int

	Chest     *ChestView
	Heal      *HealView
	Equipment *EquipmentView
}

// ChestView shows a chest. Its contents are listed only once it is open; a
// hidden Mimic is never revealed.
type ChestView struct {
	ID     int
	Name   string
	Locked bool
	Closed bool
	Items  []ItemView
}

// HealView shows what a heal does. Random heals roll their deltas on use.
type HealView struct {
	MaxHealth int
	Health    int
	Random    bool
}

// EquipmentView shows a weapon or armor piece.
type EquipmentView struct {
	ID             int
	Name           string
	Kind           string
	Slot           string
	Tier           string
	Attack         int
	Block          int
	Durability     int
	MaxDurability  int
	Indestructible bool
}

// EnemyView shows an enemy.
type EnemyView struct {
	ID          int
	Kind        string
	Name        string
	Description string
	Health      int
	MaxHealth   int
	Damage      int
	Block       int
}

// RoomView shows a room. Items are listed once the room is searched.
type RoomView struct {
	ID          int
	Kind        string
	Name        string
	Description string
	Discovered  bool
	Searched    bool
	HasNext     bool
	Items       []ItemView
	Enemy       *EnemyView
}

// MapEntry is one line of the dungeon map.
type MapEntry struct {
	ID         int
	Kind       string
	Name       string
	Discovered bool
	Current    bool
}

// GameInfo is the full session snapshot.
type GameInfo struct {
	Room      RoomView
	Depth     int
	Rooms     int
	Health    int
	MaxHealth int
	Coins     int
	Keys      int
	InBattle  bool
	Equipment []EquipmentView
	Inventory []ItemView
}

func viewItems(items []*component.Item) []ItemView {
	out := make([]ItemView, 0, len(items))
	for _, it := range items {
		out = append(out, viewItem(it))
	}
	return out
}

// viewItem maps every item kind to its view.
func viewItem(it *component.Item) ItemView {
	switch it.Kind {
	case component.KindNone, component.KindKey, component.KindMap:
		return viewPlain(it)
	case component.KindCoin:
		return viewCoin(it)
	case component.KindChest:
		return viewChest(it)
	case component.KindBandage, component.KindRegenPotion, component.KindPowerPotion, component.KindRandomPotion:
		return viewHeal(it)
	case component.KindFists, component.KindSword, component.KindWand, component.KindHelm, component.KindChestplate:
		return viewGear(it)
	}
	return viewPlain(it)
}

func viewPlain(it *component.Item) ItemView {
	return ItemView{
		ID:          it.ID,
		Kind:        it.Kind.String(),
		Name:        it.Name,
		Description: it.Description,
		Carryable:   it.Carryable,
		Cost:        it.Cost,
	}
}

func viewCoin(it *component.Item) ItemView {
	v := viewPlain(it)
	v.Amount = it.Amount
	return v
}

func viewChest(it *component.Item) ItemView {
	v := viewPlain(it)
	if it.Chest != nil {
		c := viewChestItem(it)
		v.Chest = &c
	}
	return v
}

func viewChestItem(it *component.Item) ChestView {
	c := it.Chest
	v := ChestView{ID: it.ID, Name: it.Name, Locked: c.Locked, Closed: c.Closed}
	if c.Open() {
		v.Items = viewItems(c.Items)
	}
	return v
}

func viewHeal(it *component.Item) ItemView {
	v := viewPlain(it)
	if it.Heal != nil {
		v.Heal = &HealView{
			MaxHealth: it.Heal.MaxHealth,
			Health:    it.Heal.Health,
			Random:    it.Kind == component.KindRandomPotion,
		}
	}
	return v
}

func viewGear(it *component.Item) ItemView {
	v := viewPlain(it)
	if it.Equipment != nil {
		e := viewEquipment(it)
		v.Equipment = &e
	}
	return v
}

func viewEquipment(it *component.Item) EquipmentView {
	eq := it.Equipment
	return EquipmentView{
		ID:             it.ID,
		Name:           it.Name,
		Kind:           it.Kind.String(),
		Slot:           eq.Slot.String(),
		Tier:           eq.Tier.String(),
		Attack:         eq.Attack,
		Block:          eq.Block,
		Durability:     eq.Durability,
		MaxDurability:  eq.MaxDurability,
		Indestructible: eq.Indestructible,
	}
}

// viewWorn lists the worn equipment: weapon first, then any armor.
func viewWorn(w *world.World) []EquipmentView {
	out := []EquipmentView{viewEquipment(w.Weapon())}
	for _, a := range w.Armor() {
		out = append(out, viewEquipment(a))
	}
	return out
}

func viewEnemy(e *component.Enemy) EnemyView {
	return EnemyView{
		ID:          e.ID,
		Kind:        e.Kind.String(),
		Name:        e.Name,
		Description: e.Description,
		Health:      e.Health,
		MaxHealth:   e.MaxHealth,
		Damage:      e.Damage,
		Block:       e.Block,
	}
}

func viewRoom(r *component.Room, hasNext bool) RoomView {
	v := RoomView{
		ID:          r.ID,
		Kind:        r.Kind.String(),
		Name:        r.Name,
		Description: r.Description,
		Discovered:  r.Discovered,
		Searched:    r.Searched,
		HasNext:     hasNext,
	}
	if r.Searched {
		v.Items = viewItems(r.Items)
	}
	if e, ok := r.Enemy(); ok {
		ev := viewEnemy(e)
		v.Enemy = &ev
	}
	return v
}
