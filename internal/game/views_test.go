package game

import (
	"testing"

	"dungeon-crawler/internal/component"
)

func sampleItem(kind component.ItemKind) *component.Item {
	it := &component.Item{ID: int(kind), Kind: kind, Name: kind.String(), Carryable: true, Cost: 5}
	switch {
	case kind == component.KindCoin:
		it.Amount = 7
		it.Cost = 0
	case kind == component.KindChest:
		it.Carryable = false
		it.Chest = &component.Chest{
			Closed: true,
			Items:  []*component.Item{{ID: 99, Kind: component.KindKey}},
			Mimic:  &component.Enemy{Kind: component.EnemyMimic},
		}
	case kind.IsHeal():
		it.Heal = &component.Heal{MaxHealth: 1, Health: 2}
	case kind.IsWeapon() || kind.IsArmor():
		slot, _ := component.SlotOf(kind)
		it.Equipment = &component.Equipment{Slot: slot, Attack: 3, Block: 1, Durability: 4, MaxDurability: 4}
	}
	return it
}

func TestViewItemCoversEveryKind(t *testing.T) {
	for _, kind := range component.ItemKinds() {
		t.Run(kind.String(), func(t *testing.T) {
			v := viewItem(sampleItem(kind))
			if v.Kind != kind.String() || v.ID != int(kind) {
				t.Fatalf("view = %+v; want kind %s", v, kind)
			}
			payloads := 0
			if v.Chest != nil {
				payloads++
			}
			if v.Heal != nil {
				payloads++
			}
			if v.Equipment != nil {
				payloads++
			}
			switch {
			case kind == component.KindChest:
				if v.Chest == nil {
					t.Error("chest view missing")
				}
			case kind.IsHeal():
				if v.Heal == nil {
					t.Error("heal view missing")
				}
				if v.Heal != nil && v.Heal.Random != (kind == component.KindRandomPotion) {
					t.Errorf("random = %v", v.Heal.Random)
				}
			case kind.IsWeapon() || kind.IsArmor():
				if v.Equipment == nil {
					t.Error("equipment view missing")
				}
			case kind == component.KindCoin:
				if v.Amount != 7 {
					t.Errorf("amount = %d; want 7", v.Amount)
				}
			}
			if payloads > 1 {
				t.Errorf("%d payloads set; want at most one", payloads)
			}
		})
	}
}

func TestClosedChestHidesContents(t *testing.T) {
	it := sampleItem(component.KindChest)
	v := viewItem(it)
	if v.Chest.Items != nil {
		t.Error("closed chest lists its contents")
	}
	it.Chest.Closed = false
	it.Chest.Mimic = nil
	v = viewItem(it)
	if len(v.Chest.Items) != 1 {
		t.Errorf("open chest items = %d; want 1", len(v.Chest.Items))
	}
}

func TestRoomViewHidesItemsUntilSearched(t *testing.T) {
	r := &component.Room{ID: 3, Kind: component.RoomBig, Items: []*component.Item{sampleItem(component.KindKey)}}
	if v := viewRoom(r, true); v.Items != nil || !v.HasNext {
		t.Errorf("unsearched view = %+v", v)
	}
	r.Searched = true
	if v := viewRoom(r, true); len(v.Items) != 1 {
		t.Errorf("searched view items = %d; want 1", len(v.Items))
	}
}
