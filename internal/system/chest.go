package system

import (
	"dungeon-crawler/assets"
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/errors"
	"dungeon-crawler/internal/random"
	"dungeon-crawler/internal/world"
)

// CauseMimic is the cause of death recorded when a Mimic is opened.
const CauseMimic = "Mimic"

func roomChest(w *world.World, id int) (*component.Item, error) {
	chest, ok := w.Room().FindChest(id)
	if !ok {
		return nil, errors.WithID(errors.ErrChestNotFound, "chest_id", id)
	}
	return chest, nil
}

// openChest returns the chest if it can be looted.
func openChest(w *world.World, id int) (*component.Item, error) {
	chest, err := roomChest(w, id)
	if err != nil {
		return nil, err
	}
	switch {
	case chest.Chest.Locked:
		return nil, errors.ErrLocked
	case chest.Chest.Closed:
		return nil, errors.ErrClosed
	}
	return chest, nil
}

// Chest returns the chest with id in the current room.
func Chest(w *world.World, id int) (*component.Item, error) {
	return roomChest(w, id)
}

// UnlockChest spends a key on a locked chest. Unlocking an unlocked chest
// costs nothing.
func UnlockChest(w *world.World, id int) error {
	chest, err := roomChest(w, id)
	if err != nil {
		return err
	}
	if !chest.Chest.Locked {
		return nil
	}
	if !w.UseKey() {
		return errors.ErrNoKey
	}
	chest.Chest.Locked = false
	return nil
}

// OpenChest opens an unlocked chest. Opening a Mimic lets it out: the Mimic
// joins the room, the chest goes with it and the player is killed. The
// returned flag reports the ambush.
func OpenChest(w *world.World, id int) (bool, error) {
	chest, err := roomChest(w, id)
	if err != nil {
		return false, err
	}
	if chest.Chest.Locked {
		return false, errors.ErrLocked
	}
	if !chest.IsMimic() {
		chest.Chest.Closed = false
		return false, nil
	}
	room := w.Room()
	room.RemoveItem(chest.ID)
	room.PushEnemy(chest.Chest.Mimic)
	w.SetDisguised(chest)
	w.SetBattle(true)
	w.Damage(w.Health())
	w.Record().CauseOfDeath = CauseMimic
	return true, nil
}

// HitChest strikes a chest. A plain chest shrugs it off. A Mimic is woken:
// it leaves its chest, takes the front of the room and the blow lands on it.
func HitChest(w *world.World, rng random.Source, p assets.PlayerBalance, id int) (BattleLog, error) {
	chest, err := roomChest(w, id)
	if err != nil {
		return BattleLog{}, err
	}
	if !chest.IsMimic() {
		return BattleLog{
			Attacker:     PlayerName,
			Target:       chest.Name,
			Note:         "The chest does not react",
			PlayerHealth: w.Health(),
		}, nil
	}
	room := w.Room()
	room.RemoveItem(chest.ID)
	room.PushEnemy(chest.Chest.Mimic)
	w.SetDisguised(chest)
	w.SetBattle(true)
	return PlayerAttack(w, rng, p)
}

// SearchChest lists the contents of an open chest.
func SearchChest(w *world.World, id int) ([]*component.Item, error) {
	chest, err := openChest(w, id)
	if err != nil {
		return nil, err
	}
	return chest.Chest.Items, nil
}

// TakeFromChest moves one item out of an open chest.
func TakeFromChest(w *world.World, chestID, itemID int) error {
	chest, err := openChest(w, chestID)
	if err != nil {
		return err
	}
	it, ok := chest.Chest.Find(itemID)
	if !ok {
		return errors.WithID(errors.ErrItemNotFound, "item_id", itemID)
	}
	if !it.Carryable {
		return errors.ErrUncarryable
	}
	chest.Chest.Remove(itemID)
	pickUp(w, it)
	return nil
}

// TakeAllFromChest empties the carryable contents of an open chest.
func TakeAllFromChest(w *world.World, chestID int) error {
	chest, err := openChest(w, chestID)
	if err != nil {
		return err
	}
	var rest []*component.Item
	rest, err = takeAll(w, chest.Chest.Items)
	if err != nil {
		return err
	}
	chest.Chest.Items = rest
	return nil
}
