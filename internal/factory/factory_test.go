package factory

import (
	"math/rand"
	"testing"

	"dungeon-crawler/assets"
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/ids"
	"dungeon-crawler/internal/random"
)

func newTestFactory(seed int64) *Factory {
	return New(rand.New(rand.NewSource(seed)), assets.DefaultBalance(), ids.New())
}

func TestFistsHaveIDZeroAndNeverBreak(t *testing.T) {
	f := newTestFactory(1)
	fists := f.Fists()
	if fists.ID != 0 {
		t.Errorf("fists ID = %d; want 0", fists.ID)
	}
	if fists.Kind != component.KindFists || fists.Equipment == nil {
		t.Fatalf("fists = %+v; want a fists equipment item", fists)
	}
	if !fists.Equipment.Indestructible {
		t.Error("fists must be indestructible")
	}
	if fists.Sellable() {
		t.Error("fists must not be sellable")
	}
}

func TestEnemyStatsScaleWithDepth(t *testing.T) {
	f := newTestFactory(1)
	shallow := f.NewEnemy(component.EnemySkeletor, 0)
	deep := f.NewEnemy(component.EnemySkeletor, 10)
	if shallow.Health != 10 || shallow.Damage != 3 {
		t.Errorf("depth 0 skeletor = %d hp %d dmg; want 10 hp 3 dmg", shallow.Health, shallow.Damage)
	}
	if deep.Health != 20 || deep.Damage != 6 {
		t.Errorf("depth 10 skeletor = %d hp %d dmg; want 20 hp 6 dmg", deep.Health, deep.Damage)
	}
	if deep.ID <= shallow.ID {
		t.Errorf("enemy ids not increasing: %d then %d", shallow.ID, deep.ID)
	}
}

func TestShopMarkupAppliesToStats(t *testing.T) {
	f := newTestFactory(1)
	room := f.NewHeal(component.KindBandage, 0, false)
	shop := f.NewHeal(component.KindBandage, 0, true)
	if room.Heal.Health != 5 {
		t.Errorf("room bandage heals %d; want 5", room.Heal.Health)
	}
	if shop.Heal.Health != 8 {
		t.Errorf("shop bandage heals %d; want 8", shop.Heal.Health)
	}
}

func TestCostsStayInsideSpread(t *testing.T) {
	f := newTestFactory(7)
	for range 200 {
		k := f.Key(0, false)
		if k.Cost < 6 || k.Cost > 10 {
			t.Fatalf("key cost %d outside [6, 10]", k.Cost)
		}
		c := f.Coin(0)
		if c.Amount < 2 || c.Amount > 4 {
			t.Fatalf("coin amount %d outside [2, 4]", c.Amount)
		}
		if c.Sellable() {
			t.Fatal("coins must not be sellable")
		}
	}
}

func TestRandomPotionCarriesRollRanges(t *testing.T) {
	f := newTestFactory(1)
	p := f.NewHeal(component.KindRandomPotion, 3, false)
	if p.Heal == nil {
		t.Fatal("random potion needs a heal payload")
	}
	if p.Heal.MaxHealth != 0 || p.Heal.Health != 0 {
		t.Errorf("random potion deltas = %d/%d; want 0/0 until used", p.Heal.MaxHealth, p.Heal.Health)
	}
	if p.Heal.MaxHealthRange != [2]int{-5, 5} || p.Heal.HealthRange != [2]int{-10, 15} {
		t.Errorf("ranges = %v %v; want [-5 5] [-10 15]", p.Heal.MaxHealthRange, p.Heal.HealthRange)
	}
}

func TestChestMimicIsBuiltAtCreation(t *testing.T) {
	// unlocked, mimic, one item, coin category
	src := &random.Scripted{Draws: []int{1, 0, 0, 40}}
	f := New(src, assets.DefaultBalance(), ids.New())
	chest := f.Chest(4)
	if chest.Chest == nil {
		t.Fatal("chest payload missing")
	}
	if chest.Chest.Locked {
		t.Error("chest should be unlocked")
	}
	if !chest.Chest.Closed {
		t.Error("new chests start closed")
	}
	if !chest.IsMimic() {
		t.Fatal("chest should hide a mimic")
	}
	if m := chest.Chest.Mimic; m.Kind != component.EnemyMimic || m.ID != 1 {
		t.Errorf("mimic = %+v; want kind mimic with enemy id 1", m)
	}
	if chest.Carryable {
		t.Error("chests are not carryable")
	}
}

func TestChestContentsNeverNest(t *testing.T) {
	f := newTestFactory(3)
	for depth := range 40 {
		c := f.Chest(depth)
		if n := len(c.Chest.Items); n > 3 {
			t.Fatalf("depth %d: chest holds %d items; want at most 3", depth, n)
		}
		for _, it := range c.Chest.Items {
			if it.Kind == component.KindChest {
				t.Fatalf("depth %d: chest inside a chest", depth)
			}
		}
	}
}

func TestRoomContents(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		f := newTestFactory(seed)
		start := f.Room(component.RoomStart)
		if start.ID != 0 || !start.Discovered || len(start.Items) != 0 || len(start.Enemies) != 0 {
			t.Fatalf("seed %d: start room = %+v; want discovered, empty, id 0", seed, start)
		}
		for range 30 {
			small := f.Room(component.RoomSmall)
			if len(small.Items) > 1 {
				t.Fatalf("seed %d: small room has %d items", seed, len(small.Items))
			}
			big := f.Room(component.RoomBig)
			if len(big.Items) > 3 {
				t.Fatalf("seed %d: big room has %d items", seed, len(big.Items))
			}
			empty := f.Room(component.RoomEmpty)
			if len(empty.Items) != 0 {
				t.Fatalf("seed %d: empty room has items", seed)
			}
			shop := f.Room(component.RoomShop)
			if len(shop.Items) != 4 {
				t.Fatalf("seed %d: shop stocks %d items; want 4", seed, len(shop.Items))
			}
			for _, it := range shop.Items {
				switch it.Kind {
				case component.KindCoin, component.KindChest, component.KindNone:
					t.Fatalf("seed %d: shop sells %s", seed, it.Kind)
				}
				if it.Cost <= 0 {
					t.Fatalf("seed %d: shop item %s has no price", seed, it.Name)
				}
			}
		}
		end := f.Room(component.RoomEnd)
		if len(end.Items) != 0 || len(end.Enemies) != 0 {
			t.Fatalf("seed %d: end room must be empty", seed)
		}
	}
}

func TestItemIDsAreUnique(t *testing.T) {
	f := newTestFactory(11)
	seen := map[int]bool{}
	var walk func(items []*component.Item)
	walk = func(items []*component.Item) {
		for _, it := range items {
			if seen[it.ID] {
				t.Fatalf("duplicate item id %d", it.ID)
			}
			seen[it.ID] = true
			if it.Chest != nil {
				walk(it.Chest.Items)
			}
		}
	}
	for range 50 {
		walk(f.Room(component.RoomBig).Items)
	}
	if seen[0] {
		t.Error("item id 0 is reserved for fists")
	}
}
