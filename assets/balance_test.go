package assets

import (
	"strings"
	"testing"

	"dungeon-crawler/internal/component"
)

func TestDefaultBalanceLoads(t *testing.T) {
	b := DefaultBalance()
	if b.Player.MaxHealth != 20 {
		t.Errorf("player max health = %d, want 20", b.Player.MaxHealth)
	}
	if b.Rooms.ShopStock != 4 {
		t.Errorf("shop stock = %d, want 4", b.Rooms.ShopStock)
	}
	if got := b.RoomItems.None.At(0); got != 20 {
		t.Errorf("room none weight at depth 0 = %d, want 20", got)
	}
	if got := b.Weapons.IronSword.Weight.At(2); got != 0 {
		t.Errorf("iron sword weight before its domain = %d, want 0", got)
	}
	if len(b.Heals.RandomHealth) != 2 {
		t.Errorf("random health range = %v", b.Heals.RandomHealth)
	}
}

func TestParseBalanceRejectsInvalid(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(string) string
		wantErr string
	}{
		{"zero divisor", func(s string) string { return strings.Replace(s, "enemy: 10", "enemy: 0", 1) }, "divisor"},
		{"markup below one", func(s string) string { return strings.Replace(s, "shop_markup: 1.5", "shop_markup: 0.5", 1) }, "shop_markup"},
		{"chest min above max", func(s string) string { return strings.Replace(s, "min_items: 1", "min_items: 5", 1) }, "chest items"},
		{"too few rooms", func(s string) string { return strings.Replace(s, "max_rooms: 200", "max_rooms: 1", 1) }, "max_rooms"},
		{"bad yaml", func(string) string { return "player: [" }, "decode balance"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseBalance([]byte(tc.mutate(string(defaultBalance))))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestLabelsCoverEveryKind(t *testing.T) {
	for _, k := range component.ItemKinds() {
		if _, ok := itemLabels[k]; !ok {
			t.Errorf("item kind %s has no label", k)
		}
	}
	for _, k := range component.EnemyKinds() {
		if _, ok := enemyLabels[k]; !ok {
			t.Errorf("enemy kind %s has no label", k)
		}
	}
	if got := ItemLabel(component.KindSword, component.TierGolden).Name; got != "Golden sword" {
		t.Errorf("golden sword label = %q", got)
	}
	if got := ItemLabel(component.KindKey, component.TierIron).Name; got != "Key" {
		t.Errorf("key label = %q", got)
	}
}
