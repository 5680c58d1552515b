// Package system holds the rules that act on a world: combat, chests and
// the inventory. Each function performs one player action and leaves the
// world unchanged when it returns an error.
package system

import (
	"cmp"
	"slices"

	"dungeon-crawler/assets"
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/errors"
	"dungeon-crawler/internal/random"
	"dungeon-crawler/internal/world"
)

// PlayerName is how the player appears in battle logs.
const PlayerName = "You"

// BattleLog describes one exchange of blows.
type BattleLog struct {
	Attacker     string
	Target       string
	Weapon       string
	Damage       int // after block
	Blocked      int
	SelfHarm     int
	Bypassed     bool // the attack ignored armor
	Broken       []string
	Killed       bool
	Note         string
	PlayerHealth int
	EnemyHealth  int
}

// FistsDamage is the bare-hands damage at depth.
func FistsDamage(p assets.PlayerBalance, depth int) int {
	return p.FistsAttack + depth/p.FistsDepthStep
}

// PlayerAttack resolves the player's blow against the first enemy in the
// room. Fists may hurt the player; other weapons wear down and break.
// The caller checks w.Dead() afterwards: self-harm can be lethal even on a
// winning blow.
func PlayerAttack(w *world.World, rng random.Source, p assets.PlayerBalance) (BattleLog, error) {
	room := w.Room()
	enemy, ok := room.Enemy()
	if !w.InBattle() || !ok {
		return BattleLog{}, errors.ErrEnemyNotFound
	}
	weapon := w.Weapon()
	log := BattleLog{Attacker: PlayerName, Target: enemy.Name, Weapon: weapon.Name}

	var dmg int
	switch {
	case weapon.Kind == component.KindFists:
		if random.Chance(rng, p.SelfHarmOneIn) {
			log.SelfHarm = p.SelfHarm
			w.Damage(p.SelfHarm)
		}
		dmg = FistsDamage(p, w.Depth())
	case weapon.Kind == component.KindWand && weapon.Equipment.Tier == component.TierRandom:
		dmg = rng.Intn(weapon.Equipment.Attack + 1)
	default:
		dmg = weapon.Equipment.Attack
	}

	net := max(0, dmg-enemy.Block)
	log.Damage = net
	log.Blocked = dmg - net
	enemy.Health -= net
	w.Record().DamageDealt += net

	if wear(weapon) {
		w.SetSlot(component.SlotWeapon, nil)
		w.Record().ItemsBroken++
		log.Broken = append(log.Broken, weapon.Name)
	}
	if enemy.Dead() {
		log.Killed = true
		slay(w, room, enemy)
	}
	log.PlayerHealth = w.Health()
	log.EnemyHealth = max(0, enemy.Health)
	return log, nil
}

// EnemyAttack resolves the first enemy's blow against the player. A Ghost
// ignores armor half the time; otherwise every worn armor piece blocks and
// wears down.
func EnemyAttack(w *world.World, rng random.Source) (BattleLog, error) {
	enemy, ok := w.Room().Enemy()
	if !w.InBattle() || !ok {
		return BattleLog{}, errors.ErrEnemyNotFound
	}
	log := BattleLog{Attacker: enemy.Name, Target: PlayerName}

	net := enemy.Damage
	if enemy.Kind == component.EnemyGhost && random.Chance(rng, 2) {
		log.Bypassed = true
	} else {
		block := 0
		for _, a := range w.Armor() {
			block += a.Equipment.Block
			if wear(a) {
				w.SetSlot(a.Equipment.Slot, nil)
				w.Record().ItemsBroken++
				log.Broken = append(log.Broken, a.Name)
			}
		}
		net = max(0, enemy.Damage-block)
		log.Blocked = enemy.Damage - net
	}
	log.Damage = net
	w.Damage(net)
	log.PlayerHealth = w.Health()
	log.EnemyHealth = enemy.Health
	return log, nil
}

// wear spends one durability point and reports whether the item broke.
func wear(it *component.Item) bool {
	eq := it.Equipment
	if eq == nil || eq.Indestructible {
		return false
	}
	eq.Durability = max(0, eq.Durability-1)
	return eq.Durability == 0
}

// slay removes a dead enemy. A slain Mimic leaves its chest behind, open
// and lootable.
func slay(w *world.World, room *component.Room, enemy *component.Enemy) {
	room.RemoveEnemy(enemy.ID)
	w.Record().Kill(enemy.Name)
	if _, more := room.Enemy(); !more {
		w.SetBattle(false)
	}
	chest := w.Disguised()
	if chest == nil || chest.Chest == nil || chest.Chest.Mimic != enemy {
		return
	}
	chest.Name = assets.DeadMimic.Name
	chest.Description = assets.DeadMimic.Description
	chest.Chest.Mimic = nil
	chest.Chest.Locked = false
	chest.Chest.Closed = false
	room.Items = append(room.Items, chest)
	slices.SortFunc(room.Items, func(a, b *component.Item) int { return cmp.Compare(a.ID, b.ID) })
	w.SetDisguised(nil)
}
