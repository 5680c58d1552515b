package system

import (
	"testing"

	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/errors"
	"dungeon-crawler/internal/random"
)

func bandage(id, heal int) *component.Item {
	return &component.Item{ID: id, Kind: component.KindBandage, Name: "Bandage", Carryable: true, Cost: 4, Heal: &component.Heal{Health: heal}}
}

func TestTakeConvertsCoinsAndKeys(t *testing.T) {
	coin := &component.Item{ID: 2, Kind: component.KindCoin, Amount: 3, Carryable: true}
	key := &component.Item{ID: 3, Kind: component.KindKey, Carryable: true}
	b := bandage(4, 5)
	w := newTestWorld(component.RoomBig, nil, coin, key, b)

	for _, id := range []int{2, 3, 4} {
		if err := Take(w, id); err != nil {
			t.Fatalf("Take(%d): %v", id, err)
		}
	}
	if w.Coins() != 3 || w.Keys() != 1 {
		t.Errorf("coins %d keys %d; want 3 1", w.Coins(), w.Keys())
	}
	if w.InventoryLen() != 1 {
		t.Errorf("inventory = %d; want only the bandage", w.InventoryLen())
	}
	if len(w.Room().Items) != 0 {
		t.Errorf("room still holds %d items", len(w.Room().Items))
	}
}

func TestTakeAllLeavesOnlyUncarryable(t *testing.T) {
	c := chest(5, false, nil)
	w := newTestWorld(component.RoomBig, nil, bandage(2, 5), c)
	if err := TakeAll(w); err != nil {
		t.Fatal(err)
	}
	for _, it := range w.Room().Items {
		if it.Carryable {
			t.Errorf("carryable %s left behind", it.Name)
		}
	}
	if err := TakeAll(w); errors.CodeOf(err) != errors.CodeEmpty {
		t.Errorf("second take-all err = %v; want empty", err)
	}
	if err := Take(w, 5); errors.CodeOf(err) != errors.CodeUncarryable {
		t.Errorf("take chest err = %v; want uncarryable", err)
	}
}

func TestShopRules(t *testing.T) {
	stock := bandage(2, 5)
	stock.Cost = 6
	w := newTestWorld(component.RoomShop, nil, stock)

	if err := Take(w, 2); errors.CodeOf(err) != errors.CodeImpossibleSteal {
		t.Errorf("take in shop err = %v; want impossible steal", err)
	}
	if err := TakeAll(w); errors.CodeOf(err) != errors.CodeImpossibleSteal {
		t.Errorf("take-all in shop err = %v; want impossible steal", err)
	}
	if err := Buy(w, 2); errors.CodeOf(err) != errors.CodeNoMoney {
		t.Errorf("buy broke err = %v; want no money", err)
	}
	w.AddCoins(10)
	if err := Buy(w, 2); err != nil {
		t.Fatalf("Buy: %v", err)
	}
	if w.Coins() != 4 {
		t.Errorf("coins = %d; want 4", w.Coins())
	}
	if _, ok := w.FindItem(2); !ok {
		t.Fatal("bought item not in inventory")
	}
	if err := Sell(w, 2); err != nil {
		t.Fatalf("Sell: %v", err)
	}
	if w.Coins() != 10 {
		t.Errorf("coins = %d; want 10 after selling back", w.Coins())
	}

	free := &component.Item{ID: 7, Kind: component.KindMap, Carryable: true}
	w.AddItem(free)
	if err := Sell(w, 7); errors.CodeOf(err) != errors.CodeUnsellableItem {
		t.Errorf("sell free item err = %v; want unsellable", err)
	}
}

func TestSellOutsideShop(t *testing.T) {
	w := newTestWorld(component.RoomSmall, nil)
	w.AddItem(bandage(2, 5))
	if err := Sell(w, 2); errors.CodeOf(err) != errors.CodeNotShop {
		t.Errorf("sell err = %v; want not shop", err)
	}
	if err := Buy(w, 2); errors.CodeOf(err) != errors.CodeNotShop {
		t.Errorf("buy err = %v; want not shop", err)
	}
}

func TestEquipUnequipRoundTrip(t *testing.T) {
	w := newTestWorld(component.RoomSmall, nil)
	first := sword(2, 3, 5)
	second := sword(3, 5, 5)
	w.AddItem(first)
	w.AddItem(second)

	if err := Equip(w, first.ID); err != nil {
		t.Fatal(err)
	}
	if err := Equip(w, second.ID); err != nil {
		t.Fatal(err)
	}
	if w.Weapon() != second {
		t.Fatal("second sword should be equipped")
	}
	if _, ok := w.FindItem(first.ID); !ok {
		t.Fatal("swapped-out sword should return to the inventory")
	}
	if err := Unequip(w, component.SlotWeapon); err != nil {
		t.Fatal(err)
	}
	if w.Weapon().Kind != component.KindFists {
		t.Error("unequip should restore fists")
	}
	if err := Unequip(w, component.SlotWeapon); errors.CodeOf(err) != errors.CodeEmpty {
		t.Errorf("unequip fists err = %v; want empty", err)
	}
	if err := Unequip(w, component.SlotHelm); errors.CodeOf(err) != errors.CodeEmpty {
		t.Errorf("unequip empty helm err = %v; want empty", err)
	}
	if w.InventoryLen() != 2 {
		t.Errorf("inventory = %d; want both swords", w.InventoryLen())
	}

	w.AddItem(bandage(9, 5))
	if err := Equip(w, 9); errors.CodeOf(err) != errors.CodeNotEquipment {
		t.Errorf("equip bandage err = %v; want not equipment", err)
	}
}

func TestUseHeals(t *testing.T) {
	w := newTestWorld(component.RoomSmall, nil)
	w.Damage(3)
	w.AddItem(bandage(2, 5))
	if _, err := Use(w, &random.Scripted{}, 2); err != nil {
		t.Fatal(err)
	}
	if w.Health() != 20 {
		t.Errorf("health = %d; want clamp to 20", w.Health())
	}
	if _, ok := w.FindItem(2); ok {
		t.Error("used item should be consumed")
	}

	power := &component.Item{ID: 3, Kind: component.KindPowerPotion, Carryable: true, Heal: &component.Heal{MaxHealth: 5, Health: 5}}
	w.AddItem(power)
	if _, err := Use(w, &random.Scripted{}, 3); err != nil {
		t.Fatal(err)
	}
	if w.MaxHealth() != 25 || w.Health() != 25 {
		t.Errorf("health %d/%d; want 25/25", w.Health(), w.MaxHealth())
	}

	w.AddItem(sword(4, 3, 3))
	if _, err := Use(w, &random.Scripted{}, 4); errors.CodeOf(err) != errors.CodeNotHeal {
		t.Errorf("use sword err = %v; want not heal", err)
	}
}

func TestRandomPotionCanKill(t *testing.T) {
	w := newTestWorld(component.RoomSmall, nil)
	w.Damage(15)
	potion := &component.Item{
		ID:        2,
		Kind:      component.KindRandomPotion,
		Name:      "Strange potion",
		Carryable: true,
		Heal:      &component.Heal{MaxHealthRange: [2]int{-5, 5}, HealthRange: [2]int{-10, 15}},
	}
	w.AddItem(potion)
	e, err := Use(w, &random.Scripted{Draws: []int{0, 0}}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if e.MaxHealth != -5 || e.Health != -10 {
		t.Errorf("effect = %+v; want -5/-10", e)
	}
	if w.MaxHealth() != 15 {
		t.Errorf("max health = %d; want 15", w.MaxHealth())
	}
	if !w.Dead() {
		t.Errorf("health = %d; want dead", w.Health())
	}
	if w.Record().CauseOfDeath != "Strange potion" {
		t.Errorf("cause = %q", w.Record().CauseOfDeath)
	}
}
