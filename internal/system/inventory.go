package system

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/errors"
	"dungeon-crawler/internal/random"
	"dungeon-crawler/internal/world"
)

// pickUp turns coins and keys into counters and stores anything else.
func pickUp(w *world.World, it *component.Item) {
	switch it.Kind {
	case component.KindCoin:
		w.AddCoins(it.Amount)
		w.Record().CoinsEarned += it.Amount
	case component.KindKey:
		w.AddKey()
	default:
		w.AddItem(it)
	}
}

// takeAll picks up every carryable item and returns what is left. It fails
// with Empty, leaving items untouched, when nothing can be carried.
func takeAll(w *world.World, items []*component.Item) ([]*component.Item, error) {
	var rest, taken []*component.Item
	for _, it := range items {
		if it.Carryable {
			taken = append(taken, it)
		} else {
			rest = append(rest, it)
		}
	}
	if len(taken) == 0 {
		return items, errors.ErrEmpty
	}
	for _, it := range taken {
		pickUp(w, it)
	}
	return rest, nil
}

// Take picks one item up from the current room.
func Take(w *world.World, id int) error {
	room := w.Room()
	if room.Kind == component.RoomShop {
		return errors.ErrImpossibleSteal
	}
	it, ok := room.FindItem(id)
	if !ok {
		return errors.WithID(errors.ErrItemNotFound, "item_id", id)
	}
	if !it.Carryable {
		return errors.ErrUncarryable
	}
	room.RemoveItem(id)
	pickUp(w, it)
	return nil
}

// TakeAll picks up every carryable item in the current room.
func TakeAll(w *world.World) error {
	room := w.Room()
	if room.Kind == component.RoomShop {
		return errors.ErrImpossibleSteal
	}
	rest, err := takeAll(w, room.Items)
	if err != nil {
		return err
	}
	room.Items = rest
	return nil
}

// Buy pays for a shop item and takes it.
func Buy(w *world.World, id int) error {
	room := w.Room()
	if room.Kind != component.RoomShop {
		return errors.ErrNotShop
	}
	it, ok := room.FindItem(id)
	if !ok {
		return errors.WithID(errors.ErrItemNotFound, "item_id", id)
	}
	if !it.Sellable() {
		return errors.ErrUnsellableItem
	}
	if !w.SpendCoins(it.Cost) {
		return errors.ErrNoMoney
	}
	room.RemoveItem(id)
	pickUp(w, it)
	return nil
}

// Sell trades a carried item for its cost. Only shops buy.
func Sell(w *world.World, id int) error {
	if w.Room().Kind != component.RoomShop {
		return errors.ErrNotShop
	}
	it, ok := w.FindItem(id)
	if !ok {
		return errors.WithID(errors.ErrItemNotFound, "item_id", id)
	}
	if !it.Sellable() {
		return errors.ErrUnsellableItem
	}
	w.RemoveItem(id)
	w.AddCoins(it.Cost)
	w.Record().CoinsEarned += it.Cost
	return nil
}

// Equip wears a carried item in its slot; whatever was there goes back to
// the inventory. Fists never enter the inventory.
func Equip(w *world.World, id int) error {
	it, ok := w.FindItem(id)
	if !ok {
		return errors.WithID(errors.ErrItemNotFound, "item_id", id)
	}
	slot, ok := component.SlotOf(it.Kind)
	if !ok || it.Equipment == nil {
		return errors.ErrNotEquipment
	}
	w.RemoveItem(id)
	if prev := w.SetSlot(slot, it); prev != nil && prev.Kind != component.KindFists {
		w.AddItem(prev)
	}
	return nil
}

// Unequip moves the item in slot to the inventory. An empty slot, or fists
// in the weapon slot, fails with Empty.
func Unequip(w *world.World, slot component.Slot) error {
	cur := w.Slot(slot)
	if cur == nil || cur.Kind == component.KindFists {
		return errors.ErrEmpty
	}
	w.SetSlot(slot, nil)
	w.AddItem(cur)
	return nil
}

// Effect is the change a heal made.
type Effect struct {
	MaxHealth int
	Health    int
}

// Use drinks or applies a carried heal. Max health changes first and never
// drops below 1; current health is then clamped to it. A RandomPotion
// rolls both deltas now and can kill; the caller checks w.Dead().
func Use(w *world.World, rng random.Source, id int) (Effect, error) {
	it, ok := w.FindItem(id)
	if !ok {
		return Effect{}, errors.WithID(errors.ErrItemNotFound, "item_id", id)
	}
	if !it.Kind.IsHeal() || it.Heal == nil {
		return Effect{}, errors.ErrNotHeal
	}
	w.RemoveItem(id)
	e := Effect{MaxHealth: it.Heal.MaxHealth, Health: it.Heal.Health}
	if it.Kind == component.KindRandomPotion {
		e.MaxHealth = random.Between(rng, it.Heal.MaxHealthRange[0], it.Heal.MaxHealthRange[1])
		e.Health = random.Between(rng, it.Heal.HealthRange[0], it.Heal.HealthRange[1])
	}
	w.SetMaxHealth(w.MaxHealth() + e.MaxHealth)
	w.Heal(e.Health)
	w.Record().ItemsUsed++
	if w.Dead() {
		w.Record().CauseOfDeath = it.Name
	}
	return e, nil
}
