package factory

import (
	"dungeon-crawler/assets"
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/random"
)

// Category is the first stage of an item roll.
type Category uint8

const (
	CategoryNone Category = iota
	CategoryKey
	CategoryCoin
	CategoryChest
	CategoryMap
	CategoryHeal
	CategoryWeapon
	CategoryArmor
)

// Origin selects which category table an item is rolled from.
type Origin uint8

const (
	OriginRoom Origin = iota
	OriginChest
	OriginShop
)

// categories builds the category table of one context at depth.
func categories(t assets.CategoryTable, depth int) random.Table[Category] {
	return random.Table[Category]{
		{Weight: t.None.At(depth), Outcome: CategoryNone},
		{Weight: t.Key.At(depth), Outcome: CategoryKey},
		{Weight: t.Coin.At(depth), Outcome: CategoryCoin},
		{Weight: t.Chest.At(depth), Outcome: CategoryChest},
		{Weight: t.Map.At(depth), Outcome: CategoryMap},
		{Weight: t.Heal.At(depth), Outcome: CategoryHeal},
		{Weight: t.Weapon.At(depth), Outcome: CategoryWeapon},
		{Weight: t.Armor.At(depth), Outcome: CategoryArmor},
	}
}

func (f *Factory) table(origin Origin) assets.CategoryTable {
	switch origin {
	case OriginChest:
		return f.bal.ChestItems
	case OriginShop:
		return f.bal.ShopItems
	}
	return f.bal.RoomItems
}

// Item rolls one item for the given origin. It reports false when the roll
// came up empty.
func (f *Factory) Item(origin Origin, depth int) (*component.Item, bool) {
	cat, ok := categories(f.table(origin), depth).Pick(f.rng)
	if !ok {
		return nil, false
	}
	shop := origin == OriginShop
	switch cat {
	case CategoryKey:
		return f.Key(depth, shop), true
	case CategoryCoin:
		if shop {
			return nil, false
		}
		return f.Coin(depth), true
	case CategoryChest:
		// Chests never nest and are never sold.
		if origin != OriginRoom {
			return nil, false
		}
		return f.Chest(depth), true
	case CategoryMap:
		return f.Map(depth, shop), true
	case CategoryHeal:
		return f.Heal(depth, shop), true
	case CategoryWeapon:
		return f.Weapon(depth, shop), true
	case CategoryArmor:
		return f.Armor(depth, shop), true
	}
	return nil, false
}

func (f *Factory) newItem(kind component.ItemKind, tier component.Tier) *component.Item {
	label := assets.ItemLabel(kind, tier)
	return &component.Item{
		ID:          f.ids.Item.Next(),
		Kind:        kind,
		Name:        label.Name,
		Description: label.Description,
		Carryable:   true,
	}
}

// Key creates a key.
func (f *Factory) Key(depth int, shop bool) *component.Item {
	it := f.newItem(component.KindKey, component.TierBasic)
	it.Cost = f.cost(f.bal.Goods.KeyCost, depth, f.markup(shop))
	return it
}

// Coin creates a pile of coins worth a spread of the scaled coin amount.
func (f *Factory) Coin(depth int) *component.Item {
	it := f.newItem(component.KindCoin, component.TierBasic)
	it.Amount = max(1, f.spread(float64(f.bal.Goods.CoinAmount), depth, f.bal.Scaling.Coin))
	return it
}

// Map creates a map of the dungeon.
func (f *Factory) Map(depth int, shop bool) *component.Item {
	it := f.newItem(component.KindMap, component.TierBasic)
	it.Cost = f.cost(f.bal.Goods.MapCost, depth, f.markup(shop))
	return it
}

// Chest creates a closed chest. The lock, the Mimic and the contents are all
// rolled now; a Mimic is fully built so its id is fixed with the chest.
func (f *Factory) Chest(depth int) *component.Item {
	it := f.newItem(component.KindChest, component.TierBasic)
	it.Carryable = false
	c := &component.Chest{Closed: true}
	c.Locked = random.Chance(f.rng, f.bal.Chests.LockedOneIn)
	if random.Chance(f.rng, f.bal.Chests.MimicOneIn) {
		c.Mimic = f.NewEnemy(component.EnemyMimic, depth)
	}
	n := random.Between(f.rng, f.bal.Chests.MinItems, f.bal.Chests.MaxItems)
	for range n {
		if item, ok := f.Item(OriginChest, depth); ok {
			c.Items = append(c.Items, item)
		}
	}
	it.Chest = c
	return it
}

type healPick struct {
	kind  component.ItemKind
	stats assets.HealStats
}

// Heal rolls a heal sub-type.
func (f *Factory) Heal(depth int, shop bool) *component.Item {
	h := f.bal.Heals
	tbl := random.Table[healPick]{
		{Weight: h.Bandage.Weight.At(depth), Outcome: healPick{component.KindBandage, h.Bandage}},
		{Weight: h.RegenPotion.Weight.At(depth), Outcome: healPick{component.KindRegenPotion, h.RegenPotion}},
		{Weight: h.PowerPotion.Weight.At(depth), Outcome: healPick{component.KindPowerPotion, h.PowerPotion}},
		{Weight: h.RandomPotion.Weight.At(depth), Outcome: healPick{component.KindRandomPotion, h.RandomPotion}},
	}
	pick, ok := tbl.Pick(f.rng)
	if !ok {
		pick = healPick{component.KindBandage, h.Bandage}
	}
	return f.NewHeal(pick.kind, depth, shop)
}

// NewHeal builds a heal of the given kind.
func (f *Factory) NewHeal(kind component.ItemKind, depth int, shop bool) *component.Item {
	h := f.bal.Heals
	var stats assets.HealStats
	switch kind {
	case component.KindRegenPotion:
		stats = h.RegenPotion
	case component.KindPowerPotion:
		stats = h.PowerPotion
	case component.KindRandomPotion:
		stats = h.RandomPotion
	default:
		kind, stats = component.KindBandage, h.Bandage
	}
	m := f.markup(shop)
	div := f.bal.Scaling.Heal
	it := f.newItem(kind, component.TierBasic)
	it.Cost = f.cost(stats.Cost, depth, m)
	if kind == component.KindRandomPotion {
		it.Heal = &component.Heal{
			MaxHealthRange: [2]int{h.RandomMaxHealth[0], h.RandomMaxHealth[1]},
			HealthRange:    [2]int{h.RandomHealth[0], h.RandomHealth[1]},
		}
		return it
	}
	it.Heal = &component.Heal{
		MaxHealth: scale(stats.MaxHealth, depth, div, m),
		Health:    scale(stats.Health, depth, div, m),
	}
	return it
}

type gearPick struct {
	kind  component.ItemKind
	tier  component.Tier
	stats assets.GearStats
}

func weaponTable(w assets.WeaponBalance, depth int) random.Table[gearPick] {
	return random.Table[gearPick]{
		{Weight: w.WoodenSword.Weight.At(depth), Outcome: gearPick{component.KindSword, component.TierBasic, w.WoodenSword}},
		{Weight: w.IronSword.Weight.At(depth), Outcome: gearPick{component.KindSword, component.TierIron, w.IronSword}},
		{Weight: w.GoldenSword.Weight.At(depth), Outcome: gearPick{component.KindSword, component.TierGolden, w.GoldenSword}},
		{Weight: w.FireWand.Weight.At(depth), Outcome: gearPick{component.KindWand, component.TierFire, w.FireWand}},
		{Weight: w.RandomWand.Weight.At(depth), Outcome: gearPick{component.KindWand, component.TierRandom, w.RandomWand}},
	}
}

func armorTable(a assets.ArmorBalance, depth int) random.Table[gearPick] {
	return random.Table[gearPick]{
		{Weight: a.LeatherHelm.Weight.At(depth), Outcome: gearPick{component.KindHelm, component.TierBasic, a.LeatherHelm}},
		{Weight: a.IronHelm.Weight.At(depth), Outcome: gearPick{component.KindHelm, component.TierIron, a.IronHelm}},
		{Weight: a.LeatherChestplate.Weight.At(depth), Outcome: gearPick{component.KindChestplate, component.TierBasic, a.LeatherChestplate}},
		{Weight: a.IronChestplate.Weight.At(depth), Outcome: gearPick{component.KindChestplate, component.TierIron, a.IronChestplate}},
	}
}

// Weapon rolls a weapon sub-type.
func (f *Factory) Weapon(depth int, shop bool) *component.Item {
	w := f.bal.Weapons
	pick, ok := weaponTable(w, depth).Pick(f.rng)
	if !ok {
		pick = gearPick{component.KindSword, component.TierBasic, w.WoodenSword}
	}
	return f.gear(pick, depth, shop, f.bal.Scaling.Weapon)
}

// Armor rolls a helm or chestplate sub-type.
func (f *Factory) Armor(depth int, shop bool) *component.Item {
	a := f.bal.Armor
	pick, ok := armorTable(a, depth).Pick(f.rng)
	if !ok {
		pick = gearPick{component.KindHelm, component.TierBasic, a.LeatherHelm}
	}
	return f.gear(pick, depth, shop, f.bal.Scaling.Armor)
}

func (f *Factory) gear(p gearPick, depth int, shop bool, divisor float64) *component.Item {
	m := f.markup(shop)
	slot, _ := component.SlotOf(p.kind)
	durability := max(1, scale(p.stats.Durability, depth, divisor, m))
	it := f.newItem(p.kind, p.tier)
	it.Cost = f.cost(p.stats.Cost, depth, m)
	it.Equipment = &component.Equipment{
		Slot:          slot,
		Tier:          p.tier,
		Attack:        scale(p.stats.Attack, depth, divisor, m),
		Block:         scale(p.stats.Block, depth, divisor, m),
		Durability:    durability,
		MaxDurability: durability,
	}
	return it
}

// Fists returns the default weapon. It always has id 0, is never placed in
// a room and never wears out.
func (f *Factory) Fists() *component.Item {
	label := assets.ItemLabel(component.KindFists, component.TierBasic)
	return &component.Item{
		ID:          0,
		Kind:        component.KindFists,
		Name:        label.Name,
		Description: label.Description,
		Equipment: &component.Equipment{
			Slot:           component.SlotWeapon,
			Tier:           component.TierBasic,
			Attack:         f.bal.Player.FistsAttack,
			Indestructible: true,
		},
	}
}
