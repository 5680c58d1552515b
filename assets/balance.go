package assets

import (
	_ "embed"
	"fmt"

	"dungeon-crawler/internal/random"

	"gopkg.in/yaml.v3"
)

//go:embed balance.yaml
var defaultBalance []byte

// Balance is the full set of tunable numbers behind generation and combat.
type Balance struct {
	Player     PlayerBalance `yaml:"player"`
	Scaling    Scaling       `yaml:"scaling"`
	Rooms      RoomBalance   `yaml:"rooms"`
	Chests     ChestBalance  `yaml:"chests"`
	RoomItems  CategoryTable `yaml:"room_items"`
	ChestItems CategoryTable `yaml:"chest_items"`
	ShopItems  CategoryTable `yaml:"shop_items"`
	Goods      GoodsBalance  `yaml:"goods"`
	Heals      HealBalance   `yaml:"heals"`
	Weapons    WeaponBalance `yaml:"weapons"`
	Armor      ArmorBalance  `yaml:"armor"`
	Enemies    EnemyBalance  `yaml:"enemies"`
}

// PlayerBalance covers the player's starting vitals and bare hands.
type PlayerBalance struct {
	MaxHealth      int `yaml:"max_health"`
	FistsAttack    int `yaml:"fists_attack"`
	FistsDepthStep int `yaml:"fists_depth_step"` // +1 fists damage every N rooms
	SelfHarmOneIn  int `yaml:"self_harm_one_in"`
	SelfHarm       int `yaml:"self_harm"`
}

// Scaling holds the depth divisors of each entity family: a stat is
// round(base * (1 + depth/divisor)).
type Scaling struct {
	Enemy      float64 `yaml:"enemy"`
	Weapon     float64 `yaml:"weapon"`
	Armor      float64 `yaml:"armor"`
	Heal       float64 `yaml:"heal"`
	Coin       float64 `yaml:"coin"`
	Cost       float64 `yaml:"cost"`
	ShopMarkup float64 `yaml:"shop_markup"`
	SpreadLow  float64 `yaml:"spread_low"`
	SpreadHigh float64 `yaml:"spread_high"`
}

// RoomBalance holds the fixed room-kind weights and room contents.
type RoomBalance struct {
	Empty         int `yaml:"empty"`
	Small         int `yaml:"small"`
	Big           int `yaml:"big"`
	Shop          int `yaml:"shop"`
	MaxRooms      int `yaml:"max_rooms"`
	SmallMaxItems int `yaml:"small_max_items"`
	BigItems      int `yaml:"big_items"`
	ShopStock     int `yaml:"shop_stock"`
}

// ChestBalance holds the chest rolls.
type ChestBalance struct {
	LockedOneIn int `yaml:"locked_one_in"`
	MimicOneIn  int `yaml:"mimic_one_in"`
	MinItems    int `yaml:"min_items"`
	MaxItems    int `yaml:"max_items"`
}

// CategoryTable weights the item categories for one context.
type CategoryTable struct {
	None   random.Linear `yaml:"none"`
	Key    random.Linear `yaml:"key"`
	Coin   random.Linear `yaml:"coin"`
	Chest  random.Linear `yaml:"chest"`
	Map    random.Linear `yaml:"map"`
	Heal   random.Linear `yaml:"heal"`
	Weapon random.Linear `yaml:"weapon"`
	Armor  random.Linear `yaml:"armor"`
}

// GoodsBalance prices the simple items.
type GoodsBalance struct {
	KeyCost    int `yaml:"key_cost"`
	MapCost    int `yaml:"map_cost"`
	CoinAmount int `yaml:"coin_amount"`
}

// HealStats is one heal sub-type.
type HealStats struct {
	Weight    random.Linear `yaml:"weight"`
	MaxHealth int           `yaml:"max_health"`
	Health    int           `yaml:"health"`
	Cost      int           `yaml:"cost"`
}

// HealBalance holds the heal sub-table.
type HealBalance struct {
	Bandage         HealStats `yaml:"bandage"`
	RegenPotion     HealStats `yaml:"regen_potion"`
	PowerPotion     HealStats `yaml:"power_potion"`
	RandomPotion    HealStats `yaml:"random_potion"`
	RandomMaxHealth []int     `yaml:"random_max_health"` // [min, max]
	RandomHealth    []int     `yaml:"random_health"`     // [min, max]
}

// GearStats is one equipment sub-type.
type GearStats struct {
	Weight     random.Linear `yaml:"weight"`
	Attack     int           `yaml:"attack"`
	Block      int           `yaml:"block"`
	Durability int           `yaml:"durability"`
	Cost       int           `yaml:"cost"`
}

// WeaponBalance holds the weapon sub-table.
type WeaponBalance struct {
	WoodenSword GearStats `yaml:"wooden_sword"`
	IronSword   GearStats `yaml:"iron_sword"`
	GoldenSword GearStats `yaml:"golden_sword"`
	FireWand    GearStats `yaml:"fire_wand"`
	RandomWand  GearStats `yaml:"random_wand"`
}

// ArmorBalance holds the armor sub-table.
type ArmorBalance struct {
	LeatherHelm       GearStats `yaml:"leather_helm"`
	IronHelm          GearStats `yaml:"iron_helm"`
	LeatherChestplate GearStats `yaml:"leather_chestplate"`
	IronChestplate    GearStats `yaml:"iron_chestplate"`
}

// EnemyStats is one enemy sub-type. The Mimic's weight is unused: Mimics
// only come out of chests.
type EnemyStats struct {
	Weight random.Linear `yaml:"weight"`
	Health int           `yaml:"health"`
	Damage int           `yaml:"damage"`
	Block  int           `yaml:"block"`
}

// EnemyBalance holds the enemy spawn table.
type EnemyBalance struct {
	None           random.Linear `yaml:"none"`
	Skeletor       EnemyStats    `yaml:"skeletor"`
	SkeletorArcher EnemyStats    `yaml:"skeletor_archer"`
	Deadman        EnemyStats    `yaml:"deadman"`
	Ghost          EnemyStats    `yaml:"ghost"`
	Lich           EnemyStats    `yaml:"lich"`
	Mimic          EnemyStats    `yaml:"mimic"`
}

// DefaultBalance decodes the embedded balance tables.
func DefaultBalance() *Balance {
	b, err := ParseBalance(defaultBalance)
	if err != nil {
		panic(fmt.Sprintf("assets: embedded balance: %v", err))
	}
	return b
}

// ParseBalance decodes and validates YAML balance tables.
func ParseBalance(data []byte) (*Balance, error) {
	var b Balance
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("decode balance: %w", err)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

// Validate checks the invariants generation relies on.
func (b *Balance) Validate() error {
	if b.Player.MaxHealth < 1 {
		return fmt.Errorf("balance: player max_health must be >= 1, got %d", b.Player.MaxHealth)
	}
	if b.Player.FistsDepthStep < 1 {
		return fmt.Errorf("balance: fists_depth_step must be >= 1, got %d", b.Player.FistsDepthStep)
	}
	s := b.Scaling
	for name, d := range map[string]float64{
		"enemy": s.Enemy, "weapon": s.Weapon, "armor": s.Armor,
		"heal": s.Heal, "coin": s.Coin, "cost": s.Cost,
	} {
		if d <= 0 {
			return fmt.Errorf("balance: scaling %s divisor must be > 0, got %v", name, d)
		}
	}
	if s.ShopMarkup < 1 {
		return fmt.Errorf("balance: shop_markup must be >= 1, got %v", s.ShopMarkup)
	}
	if s.SpreadLow <= 0 || s.SpreadLow > s.SpreadHigh {
		return fmt.Errorf("balance: spread must satisfy 0 < low <= high, got [%v, %v]", s.SpreadLow, s.SpreadHigh)
	}
	r := b.Rooms
	if r.Empty < 0 || r.Small < 0 || r.Big < 0 || r.Shop < 0 || r.Empty+r.Small+r.Big+r.Shop == 0 {
		return fmt.Errorf("balance: room weights must be non-negative with a positive sum")
	}
	if r.MaxRooms < 2 {
		return fmt.Errorf("balance: max_rooms must be >= 2, got %d", r.MaxRooms)
	}
	c := b.Chests
	if c.MinItems < 1 || c.MinItems > c.MaxItems {
		return fmt.Errorf("balance: chest items must satisfy 1 <= min <= max, got [%d, %d]", c.MinItems, c.MaxItems)
	}
	if c.LockedOneIn < 1 || c.MimicOneIn < 1 {
		return fmt.Errorf("balance: chest one_in rolls must be >= 1")
	}
	if b.Enemies.Skeletor.Weight.At(0) <= 0 && b.Enemies.None.At(0) <= 0 {
		return fmt.Errorf("balance: enemy table is empty at depth 0")
	}
	for name, rng := range map[string][]int{
		"random_max_health": b.Heals.RandomMaxHealth,
		"random_health":     b.Heals.RandomHealth,
	} {
		if len(rng) != 2 || rng[0] > rng[1] {
			return fmt.Errorf("balance: %s must be a [min, max] pair, got %v", name, rng)
		}
	}
	return nil
}
