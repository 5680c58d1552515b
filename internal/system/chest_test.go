package system

import (
	"testing"

	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/errors"
	"dungeon-crawler/internal/random"
)

func chest(id int, locked bool, mimic *component.Enemy, items ...*component.Item) *component.Item {
	return &component.Item{
		ID:    id,
		Kind:  component.KindChest,
		Name:  "Chest",
		Chest: &component.Chest{Locked: locked, Closed: true, Items: items, Mimic: mimic},
	}
}

func mimic(hp int) *component.Enemy {
	return &component.Enemy{ID: 9, Kind: component.EnemyMimic, Name: "Mimic", Health: hp, MaxHealth: hp, Damage: 5}
}

func TestLockedChest(t *testing.T) {
	c := chest(3, true, nil)
	w := newTestWorld(component.RoomBig, nil, c)

	if _, err := OpenChest(w, 3); errors.CodeOf(err) != errors.CodeLocked {
		t.Fatalf("open locked chest err = %v; want locked", err)
	}
	if err := UnlockChest(w, 3); errors.CodeOf(err) != errors.CodeNoKey {
		t.Fatalf("unlock without key err = %v; want no key", err)
	}
	w.AddKey()
	if err := UnlockChest(w, 3); err != nil {
		t.Fatalf("UnlockChest: %v", err)
	}
	if c.Chest.Locked || w.Keys() != 0 {
		t.Errorf("locked %v keys %d; want false 0", c.Chest.Locked, w.Keys())
	}
	if _, err := SearchChest(w, 3); errors.CodeOf(err) != errors.CodeClosed {
		t.Errorf("search closed chest err = %v; want closed", err)
	}
	ambush, err := OpenChest(w, 3)
	if err != nil || ambush {
		t.Fatalf("OpenChest = %v, %v; want no ambush", ambush, err)
	}
	if !c.Chest.Open() {
		t.Error("chest should be open")
	}
}

func TestChestNotFound(t *testing.T) {
	key := &component.Item{ID: 4, Kind: component.KindKey, Carryable: true}
	w := newTestWorld(component.RoomBig, nil, key)
	if err := UnlockChest(w, 4); errors.CodeOf(err) != errors.CodeChestNotFound {
		t.Errorf("unlock a key err = %v; want chest not found", err)
	}
	if _, err := SearchChest(w, 99); errors.CodeOf(err) != errors.CodeChestNotFound {
		t.Errorf("search missing chest err = %v; want chest not found", err)
	}
}

func TestOpeningMimicIsLethal(t *testing.T) {
	m := mimic(16)
	c := chest(3, false, m)
	w := newTestWorld(component.RoomBig, nil, c)

	ambush, err := OpenChest(w, 3)
	if err != nil || !ambush {
		t.Fatalf("OpenChest = %v, %v; want ambush", ambush, err)
	}
	if !w.Dead() {
		t.Error("opening a mimic must kill the player")
	}
	if w.Record().CauseOfDeath != CauseMimic {
		t.Errorf("cause = %q; want %q", w.Record().CauseOfDeath, CauseMimic)
	}
	if e, ok := w.Room().Enemy(); !ok || e != m {
		t.Error("mimic should be in the room")
	}
}

func TestHitPlainChest(t *testing.T) {
	c := chest(3, true, nil)
	w := newTestWorld(component.RoomBig, nil, c)
	log, err := HitChest(w, &random.Scripted{}, testPlayer, 3)
	if err != nil {
		t.Fatal(err)
	}
	if log.Note != "The chest does not react" {
		t.Errorf("note = %q", log.Note)
	}
	if w.InBattle() || w.Health() != 20 {
		t.Error("hitting a plain chest must change nothing")
	}
}

func TestHitMimicStartsBattleAndLeavesDeadChest(t *testing.T) {
	m := mimic(4)
	loot := &component.Item{ID: 11, Kind: component.KindMap, Carryable: true}
	c := chest(3, true, m, loot)
	w := newTestWorld(component.RoomBig, nil, c)

	log, err := HitChest(w, &random.Scripted{Draws: []int{1}}, testPlayer, 3)
	if err != nil {
		t.Fatal(err)
	}
	if log.Target != "Mimic" {
		t.Errorf("target = %q; want Mimic", log.Target)
	}
	if !w.InBattle() {
		t.Fatal("hitting a mimic must start a battle")
	}
	if _, ok := w.Room().FindChest(3); ok {
		t.Error("chest should leave the room while the mimic fights")
	}
	if w.Disguised() != c {
		t.Error("chest should be held as the disguised reference")
	}

	log, err = PlayerAttack(w, &random.Scripted{Draws: []int{1}}, testPlayer)
	if err != nil {
		t.Fatal(err)
	}
	if !log.Killed {
		t.Fatalf("mimic should die, hp left %d", log.EnemyHealth)
	}
	got, ok := w.Room().FindChest(3)
	if !ok {
		t.Fatal("dead mimic chest should be back in the room")
	}
	if got.IsMimic() || got.Chest.Locked || got.Chest.Closed {
		t.Errorf("chest = %+v; want open, unlocked, not a mimic", got.Chest)
	}
	if got.Name != "Dead mimic" {
		t.Errorf("name = %q; want Dead mimic", got.Name)
	}
	if w.Disguised() != nil || w.InBattle() {
		t.Error("battle state not cleared")
	}
	if err := TakeFromChest(w, 3, 11); err != nil {
		t.Errorf("loot dead mimic: %v", err)
	}
}

func TestTakeAllFromChestIsIdempotent(t *testing.T) {
	coin := &component.Item{ID: 12, Kind: component.KindCoin, Amount: 4, Carryable: true}
	potion := &component.Item{ID: 13, Kind: component.KindBandage, Carryable: true, Heal: &component.Heal{Health: 5}}
	c := chest(3, false, nil, coin, potion)
	c.Chest.Closed = false
	w := newTestWorld(component.RoomBig, nil, c)

	if err := TakeAllFromChest(w, 3); err != nil {
		t.Fatal(err)
	}
	if w.Coins() != 4 || w.InventoryLen() != 1 {
		t.Errorf("coins %d inventory %d; want 4 and 1", w.Coins(), w.InventoryLen())
	}
	if err := TakeAllFromChest(w, 3); errors.CodeOf(err) != errors.CodeEmpty {
		t.Errorf("second take-all err = %v; want empty", err)
	}
	if err := TakeFromChest(w, 3, 12); errors.CodeOf(err) != errors.CodeItemNotFound {
		t.Errorf("take gone item err = %v; want item not found", err)
	}
}

func TestDeadMimicReturnsInIDOrder(t *testing.T) {
	m := mimic(4)
	c := chest(3, true, m)
	later := &component.Item{ID: 9, Kind: component.KindKey, Carryable: true}
	w := newTestWorld(component.RoomBig, nil, c, later)

	if _, err := HitChest(w, &random.Scripted{Draws: []int{1}}, testPlayer, 3); err != nil {
		t.Fatal(err)
	}
	log, err := PlayerAttack(w, &random.Scripted{Draws: []int{1}}, testPlayer)
	if err != nil {
		t.Fatal(err)
	}
	if !log.Killed {
		t.Fatalf("mimic should die, hp left %d", log.EnemyHealth)
	}
	items := w.Room().Items
	if len(items) != 2 || items[0].ID != 3 || items[1].ID != 9 {
		ids := make([]int, 0, len(items))
		for _, it := range items {
			ids = append(ids, it.ID)
		}
		t.Errorf("room item ids = %v; want [3 9]", ids)
	}
}
