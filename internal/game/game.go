// Package game exposes one playthrough as a set of verbs. Each verb checks
// the session preconditions, delegates to the rules in internal/system and
// returns views; verbs that can end the run return an *Ending.
package game

import (
	"dungeon-crawler/assets"
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/errors"
	"dungeon-crawler/internal/factory"
	"dungeon-crawler/internal/generate"
	"dungeon-crawler/internal/ids"
	"dungeon-crawler/internal/random"
	"dungeon-crawler/internal/system"
	"dungeon-crawler/internal/world"
)

// BattleLog describes one exchange of blows.
type BattleLog = system.BattleLog

// Generator builds the room sequence of a new run.
type Generator func(f *factory.Factory, rng random.Source) []*component.Room

// Game is a single session. It is not safe for concurrent use; the session
// store serializes access.
type Game struct {
	rng   random.Source
	bal   *assets.Balance
	ids   *ids.Allocators
	gen   Generator
	world *world.World // nil until started and after an ending
}

// New returns an unstarted game drawing from rng.
func New(rng random.Source, bal *assets.Balance) *Game {
	return &Game{rng: rng, bal: bal, ids: ids.New(), gen: generate.Dungeon}
}

// SetGenerator replaces the dungeon generator used by later calls to
// StartSession. A nil gen is ignored.
func (g *Game) SetGenerator(gen Generator) {
	if gen != nil {
		g.gen = gen
	}
}

// StartSession builds a fresh dungeon and puts the player in its entrance.
// Any run in progress is discarded.
func (g *Game) StartSession() {
	g.ids.Reset()
	f := factory.New(g.rng, g.bal, g.ids)
	rooms := g.gen(f, g.rng)
	g.world = world.New(rooms, f.Fists(), g.bal.Player.MaxHealth, g.ids)
}

// Started reports whether a run is in progress.
func (g *Game) Started() bool { return g.world != nil }

func (g *Game) started() (*world.World, error) {
	if g.world == nil {
		return nil, errors.ErrUnstartedSession
	}
	return g.world, nil
}

// idle returns the world when no battle is going on.
func (g *Game) idle() (*world.World, error) {
	w, err := g.started()
	if err != nil {
		return nil, err
	}
	if w.InBattle() {
		return nil, errors.ErrInBattle
	}
	return w, nil
}

// searched returns the world when no battle is going on and the current
// room has been searched.
func (g *Game) searched() (*world.World, error) {
	w, err := g.idle()
	if err != nil {
		return nil, err
	}
	if !w.Room().Searched {
		return nil, errors.ErrUnsearchedRoom
	}
	return w, nil
}

// GetCurrentRoom describes the room the player stands in.
func (g *Game) GetCurrentRoom() (RoomView, error) {
	w, err := g.started()
	if err != nil {
		return RoomView{}, err
	}
	return viewRoom(w.Room(), w.HasNext()), nil
}

// GetRoom describes a room already visited.
func (g *Game) GetRoom(id int) (RoomView, error) {
	w, err := g.started()
	if err != nil {
		return RoomView{}, err
	}
	r, ok := w.RoomByID(id)
	if !ok {
		return RoomView{}, errors.WithID(errors.ErrRoomNotFound, "room_id", id)
	}
	if !r.Discovered {
		return RoomView{}, errors.WithID(errors.ErrUndiscoveredRoom, "room_id", id)
	}
	return viewRoom(r, id+1 < len(w.Rooms())), nil
}

// ViewMap lists every room of the dungeon. It needs a map in the inventory.
func (g *Game) ViewMap() ([]MapEntry, error) {
	w, err := g.started()
	if err != nil {
		return nil, err
	}
	if !w.HasKind(component.KindMap) {
		return nil, errors.ErrNoMap
	}
	out := make([]MapEntry, 0, len(w.Rooms()))
	for _, r := range w.Rooms() {
		out = append(out, MapEntry{
			ID:         r.ID,
			Kind:       r.Kind.String(),
			Name:       r.Name,
			Discovered: r.Discovered,
			Current:    r.ID == w.Depth(),
		})
	}
	return out, nil
}

// GoNextRoom walks into the next room. Reaching the exit wins the run.
func (g *Game) GoNextRoom() (*Ending, error) {
	w, err := g.idle()
	if err != nil {
		return nil, err
	}
	if !w.HasNext() {
		return nil, errors.ErrEndOfDungeon
	}
	r := w.Enter(w.Depth() + 1)
	if r.Kind == component.RoomEnd {
		return g.finish(ResultWin), nil
	}
	return nil, nil
}

// SearchCurrentRoom reveals the items lying in the room.
func (g *Game) SearchCurrentRoom() ([]ItemView, error) {
	w, err := g.idle()
	if err != nil {
		return nil, err
	}
	r := w.Room()
	r.Searched = true
	return viewItems(r.Items), nil
}

// TakeItem picks up one item of the searched room.
func (g *Game) TakeItem(id int) error {
	w, err := g.searched()
	if err != nil {
		return err
	}
	return system.Take(w, id)
}

// TakeAllItems picks up every carryable item of the searched room.
func (g *Game) TakeAllItems() error {
	w, err := g.searched()
	if err != nil {
		return err
	}
	return system.TakeAll(w)
}

// BuyItem buys an item from the shop the player stands in.
func (g *Game) BuyItem(id int) error {
	w, err := g.idle()
	if err != nil {
		return err
	}
	return system.Buy(w, id)
}

// SellItem sells a carried item to the shop the player stands in.
func (g *Game) SellItem(id int) error {
	w, err := g.idle()
	if err != nil {
		return err
	}
	return system.Sell(w, id)
}

// GetChestState describes a chest of the searched room.
func (g *Game) GetChestState(id int) (ChestView, error) {
	w, err := g.searched()
	if err != nil {
		return ChestView{}, err
	}
	c, err := system.Chest(w, id)
	if err != nil {
		return ChestView{}, err
	}
	return viewChestItem(c), nil
}

// UnlockChest spends a key on a chest.
func (g *Game) UnlockChest(id int) error {
	w, err := g.searched()
	if err != nil {
		return err
	}
	return system.UnlockChest(w, id)
}

// OpenChest opens an unlocked chest. Opening a Mimic ends the run.
func (g *Game) OpenChest(id int) (*Ending, error) {
	w, err := g.searched()
	if err != nil {
		return nil, err
	}
	ambush, err := system.OpenChest(w, id)
	if err != nil {
		return nil, err
	}
	if ambush || w.Dead() {
		return g.finish(ResultDefeat), nil
	}
	return nil, nil
}

// HitChest strikes a chest. A Mimic wakes up and takes the blow; fists can
// hurt the player while doing so.
func (g *Game) HitChest(id int) (BattleLog, *Ending, error) {
	w, err := g.searched()
	if err != nil {
		return BattleLog{}, nil, err
	}
	log, err := system.HitChest(w, g.rng, g.bal.Player, id)
	if err != nil {
		return BattleLog{}, nil, err
	}
	return log, g.checkDeath(w, log.Weapon), nil
}

// SearchChest lists the contents of an open chest.
func (g *Game) SearchChest(id int) ([]ItemView, error) {
	w, err := g.searched()
	if err != nil {
		return nil, err
	}
	items, err := system.SearchChest(w, id)
	if err != nil {
		return nil, err
	}
	return viewItems(items), nil
}

// TakeItemFromChest takes one item out of an open chest.
func (g *Game) TakeItemFromChest(chestID, itemID int) error {
	w, err := g.searched()
	if err != nil {
		return err
	}
	return system.TakeFromChest(w, chestID, itemID)
}

// TakeAllFromChest takes every carryable item out of an open chest.
func (g *Game) TakeAllFromChest(chestID int) error {
	w, err := g.searched()
	if err != nil {
		return err
	}
	return system.TakeAllFromChest(w, chestID)
}

// GetEnemy describes the enemy the player is facing.
func (g *Game) GetEnemy() (EnemyView, error) {
	w, err := g.started()
	if err != nil {
		return EnemyView{}, err
	}
	e, ok := w.Room().Enemy()
	if !ok {
		return EnemyView{}, errors.ErrEnemyNotFound
	}
	return viewEnemy(e), nil
}

// PlayerAttack strikes the enemy once.
func (g *Game) PlayerAttack() (BattleLog, *Ending, error) {
	w, err := g.started()
	if err != nil {
		return BattleLog{}, nil, err
	}
	log, err := system.PlayerAttack(w, g.rng, g.bal.Player)
	if err != nil {
		return BattleLog{}, nil, err
	}
	return log, g.checkDeath(w, log.Weapon), nil
}

// EnemyAttack lets the enemy strike the player once.
func (g *Game) EnemyAttack() (BattleLog, *Ending, error) {
	w, err := g.started()
	if err != nil {
		return BattleLog{}, nil, err
	}
	log, err := system.EnemyAttack(w, g.rng)
	if err != nil {
		return BattleLog{}, nil, err
	}
	return log, g.checkDeath(w, log.Attacker), nil
}

// EquipItem wears a carried item and returns the equipment now worn.
func (g *Game) EquipItem(id int) ([]EquipmentView, error) {
	w, err := g.started()
	if err != nil {
		return nil, err
	}
	if err := system.Equip(w, id); err != nil {
		return nil, err
	}
	return viewWorn(w), nil
}

// UnequipWeapon puts the weapon away; fists take its place.
func (g *Game) UnequipWeapon() ([]EquipmentView, error) {
	return g.unequip(component.SlotWeapon)
}

// UnequipHelm takes the helm off.
func (g *Game) UnequipHelm() ([]EquipmentView, error) {
	return g.unequip(component.SlotHelm)
}

// UnequipChestplate takes the chestplate off.
func (g *Game) UnequipChestplate() ([]EquipmentView, error) {
	return g.unequip(component.SlotChestplate)
}

func (g *Game) unequip(slot component.Slot) ([]EquipmentView, error) {
	w, err := g.started()
	if err != nil {
		return nil, err
	}
	if err := system.Unequip(w, slot); err != nil {
		return nil, err
	}
	return viewWorn(w), nil
}

// UseItem applies a carried heal. A strange potion can be lethal.
func (g *Game) UseItem(id int) (*Ending, error) {
	w, err := g.started()
	if err != nil {
		return nil, err
	}
	if _, err := system.Use(w, g.rng, id); err != nil {
		return nil, err
	}
	return g.checkDeath(w, ""), nil
}

// GetInventory lists the carried items by id.
func (g *Game) GetInventory() ([]ItemView, error) {
	w, err := g.started()
	if err != nil {
		return nil, err
	}
	return viewItems(w.Inventory()), nil
}

// GetGameInfo returns a full snapshot of the session.
func (g *Game) GetGameInfo() (GameInfo, error) {
	w, err := g.started()
	if err != nil {
		return GameInfo{}, err
	}
	return GameInfo{
		Room:      viewRoom(w.Room(), w.HasNext()),
		Depth:     w.Depth(),
		Rooms:     len(w.Rooms()),
		Health:    w.Health(),
		MaxHealth: w.MaxHealth(),
		Coins:     w.Coins(),
		Keys:      w.Keys(),
		InBattle:  w.InBattle(),
		Equipment: viewWorn(w),
		Inventory: viewItems(w.Inventory()),
	}, nil
}

// checkDeath ends the run in defeat if the player has died, blaming cause
// unless something more specific was recorded.
func (g *Game) checkDeath(w *world.World, cause string) *Ending {
	if !w.Dead() {
		return nil
	}
	if rec := w.Record(); rec.CauseOfDeath == "" {
		rec.CauseOfDeath = cause
	}
	return g.finish(ResultDefeat)
}
