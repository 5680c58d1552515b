// Package world holds the state of one playthrough. All mutation goes
// through World's methods; fields are unexported.
package world

import (
	"slices"

	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/ids"
)

// World is the session state: the room sequence, the player's vitals,
// purse, equipment and inventory, and the battle flag.
type World struct {
	rooms   []*component.Room
	current int

	fists      *component.Item
	weapon     *component.Item
	helm       *component.Item
	chestplate *component.Item

	health    int
	maxHealth int
	coins     int
	keys      int
	inventory map[int]*component.Item

	battle    bool
	disguised *component.Item

	ids    *ids.Allocators
	record Record
}

// New returns a world standing in the first room of rooms with full health
// and fists equipped.
func New(rooms []*component.Room, fists *component.Item, maxHealth int, alloc *ids.Allocators) *World {
	w := &World{
		rooms:     rooms,
		fists:     fists,
		weapon:    fists,
		health:    maxHealth,
		maxHealth: maxHealth,
		inventory: make(map[int]*component.Item),
		ids:       alloc,
		record:    Record{Kills: make(map[string]int)},
	}
	if len(rooms) > 0 {
		rooms[0].Discovered = true
	}
	return w
}

// IDs returns the session's allocators.
func (w *World) IDs() *ids.Allocators { return w.ids }

// Rooms returns the room sequence.
func (w *World) Rooms() []*component.Room { return w.rooms }

// Room returns the room the player stands in.
func (w *World) Room() *component.Room { return w.rooms[w.current] }

// RoomByID returns the room with id.
func (w *World) RoomByID(id int) (*component.Room, bool) {
	if id < 0 || id >= len(w.rooms) {
		return nil, false
	}
	return w.rooms[id], true
}

// Depth is the number of the current room.
func (w *World) Depth() int { return w.current }

// HasNext reports whether a room follows the current one.
func (w *World) HasNext() bool { return w.current+1 < len(w.rooms) }

// Enter moves the player into room id, marks it discovered and starts a
// battle if an enemy waits there.
func (w *World) Enter(id int) *component.Room {
	w.current = id
	r := w.rooms[id]
	r.Discovered = true
	if w.current > w.record.Deepest {
		w.record.Deepest = w.current
	}
	if _, ok := r.Enemy(); ok {
		w.battle = true
	}
	return r
}

// InBattle reports whether a battle is active.
func (w *World) InBattle() bool { return w.battle }

// SetBattle sets the battle flag.
func (w *World) SetBattle(on bool) { w.battle = on }

// Disguised returns the chest whose Mimic is currently fighting, if any.
func (w *World) Disguised() *component.Item { return w.disguised }

// SetDisguised records the chest the active Mimic came out of.
func (w *World) SetDisguised(chest *component.Item) { w.disguised = chest }

// Health returns current health.
func (w *World) Health() int { return w.health }

// MaxHealth returns maximum health.
func (w *World) MaxHealth() int { return w.maxHealth }

// Dead reports whether health has run out.
func (w *World) Dead() bool { return w.health <= 0 }

// Damage lowers health by n and returns the remaining health.
func (w *World) Damage(n int) int {
	if n <= 0 {
		return w.health
	}
	w.health -= n
	w.record.DamageTaken += n
	return w.health
}

// Heal raises (or with a negative n lowers) health, clamped to max.
func (w *World) Heal(n int) {
	w.health = min(w.health+n, w.maxHealth)
}

// SetMaxHealth sets maximum health, floored at 1, and clamps current
// health to it.
func (w *World) SetMaxHealth(n int) {
	w.maxHealth = max(1, n)
	w.health = min(w.health, w.maxHealth)
}

// Coins returns the coin count.
func (w *World) Coins() int { return w.coins }

// AddCoins adds n coins.
func (w *World) AddCoins(n int) { w.coins += n }

// SpendCoins removes n coins. It reports false and changes nothing when
// the purse is short.
func (w *World) SpendCoins(n int) bool {
	if n > w.coins {
		return false
	}
	w.coins -= n
	return true
}

// Keys returns the key count.
func (w *World) Keys() int { return w.keys }

// AddKey adds one key.
func (w *World) AddKey() { w.keys++ }

// UseKey consumes one key. It reports false when there is none.
func (w *World) UseKey() bool {
	if w.keys == 0 {
		return false
	}
	w.keys--
	return true
}

// Inventory returns the carried items sorted by id.
func (w *World) Inventory() []*component.Item {
	out := make([]*component.Item, 0, len(w.inventory))
	for _, it := range w.inventory {
		out = append(out, it)
	}
	slices.SortFunc(out, func(a, b *component.Item) int { return a.ID - b.ID })
	return out
}

// InventoryLen returns the number of carried items.
func (w *World) InventoryLen() int { return len(w.inventory) }

// FindItem returns the carried item with id.
func (w *World) FindItem(id int) (*component.Item, bool) {
	it, ok := w.inventory[id]
	return it, ok
}

// HasKind reports whether an item of kind is carried.
func (w *World) HasKind(kind component.ItemKind) bool {
	for _, it := range w.inventory {
		if it.Kind == kind {
			return true
		}
	}
	return false
}

// AddItem puts it in the inventory.
func (w *World) AddItem(it *component.Item) { w.inventory[it.ID] = it }

// RemoveItem takes the item with id out of the inventory.
func (w *World) RemoveItem(id int) (*component.Item, bool) {
	it, ok := w.inventory[id]
	if ok {
		delete(w.inventory, id)
	}
	return it, ok
}

// Fists returns the default weapon.
func (w *World) Fists() *component.Item { return w.fists }

// Weapon returns the equipped weapon; fists when nothing else is held.
func (w *World) Weapon() *component.Item { return w.weapon }

// Helm returns the equipped helm or nil.
func (w *World) Helm() *component.Item { return w.helm }

// Chestplate returns the equipped chestplate or nil.
func (w *World) Chestplate() *component.Item { return w.chestplate }

// Armor returns the equipped armor pieces, helm first.
func (w *World) Armor() []*component.Item {
	var out []*component.Item
	if w.helm != nil {
		out = append(out, w.helm)
	}
	if w.chestplate != nil {
		out = append(out, w.chestplate)
	}
	return out
}

// Slot returns the item in slot. An empty weapon slot reports fists.
func (w *World) Slot(s component.Slot) *component.Item {
	switch s {
	case component.SlotHelm:
		return w.helm
	case component.SlotChestplate:
		return w.chestplate
	}
	return w.weapon
}

// SetSlot puts it in slot and returns what was there before. A nil weapon
// puts the fists back.
func (w *World) SetSlot(s component.Slot, it *component.Item) *component.Item {
	var prev *component.Item
	switch s {
	case component.SlotHelm:
		prev, w.helm = w.helm, it
	case component.SlotChestplate:
		prev, w.chestplate = w.chestplate, it
	default:
		if it == nil {
			it = w.fists
		}
		prev, w.weapon = w.weapon, it
	}
	return prev
}

// Record returns the run statistics for update.
func (w *World) Record() *Record { return &w.record }
