package main

import (
	"cmp"
	"slices"

	"dungeon-crawler/internal/game"
	"dungeon-crawler/internal/session"

	"github.com/google/uuid"
)

type outcome struct {
	Ended   bool
	Result  game.Result
	Depth   int
	Cause   string
	Actions int
}

// player drives one session. Every verb counts as an action.
type player struct {
	s       *session.Store
	id      uuid.UUID
	actions int
	max     int
	end     *game.Ending
	tried   map[int]bool // chests already hit
}

// autoplay runs a fixed routine: search, take everything, crack chests,
// fight, heal when low and move on.
func autoplay(s *session.Store, id uuid.UUID, maxActions int) outcome {
	if err := s.StartSession(id); err != nil {
		return outcome{}
	}
	p := &player{s: s, id: id, max: maxActions, tried: make(map[int]bool)}
	depth := 0
	for p.end == nil && p.actions < p.max {
		info, err := s.GetGameInfo(id)
		if err != nil {
			break
		}
		depth = info.Depth
		p.turn(info)
	}
	o := outcome{Depth: depth, Actions: p.actions}
	if p.end != nil {
		o.Ended = true
		o.Result = p.end.Result
		o.Depth = p.end.Stats.Depth
		o.Cause = p.end.Stats.CauseOfDeath
	}
	return o
}

func (p *player) act() bool {
	p.actions++
	return p.end == nil && p.actions <= p.max
}

func (p *player) turn(info game.GameInfo) {
	if info.Health*3 < info.MaxHealth && p.heal(info) {
		return
	}
	if info.InBattle {
		p.fight()
		return
	}
	if !info.Room.Searched {
		p.act()
		p.s.SearchCurrentRoom(p.id)
		p.act()
		p.s.TakeAllItems(p.id)
		return
	}
	if info.Room.Kind == "shop" && p.shop(info) {
		return
	}
	if p.chests(info) {
		return
	}
	if p.equip(info) {
		return
	}
	if info.Health*2 < info.MaxHealth && p.heal(info) {
		return
	}
	p.act()
	p.end, _ = p.s.GoNextRoom(p.id)
	if p.end == nil && !info.Room.HasNext {
		p.actions = p.max
	}
}

func (p *player) fight() {
	var end *game.Ending
	p.act()
	if _, end, _ = p.s.PlayerAttack(p.id); end != nil {
		p.end = end
		return
	}
	if !p.act() {
		return
	}
	if _, end, _ = p.s.EnemyAttack(p.id); end != nil {
		p.end = end
	}
}

// heal uses the strongest known heal.
func (p *player) heal(info game.GameInfo) bool {
	var best *game.ItemView
	for i := range info.Inventory {
		it := &info.Inventory[i]
		if it.Heal == nil || it.Heal.Random {
			continue
		}
		if best == nil || it.Heal.Health > best.Heal.Health {
			best = it
		}
	}
	if best == nil {
		return false
	}
	p.act()
	end, err := p.s.UseItem(p.id, best.ID)
	p.end = end
	return err == nil
}

// chests hits each unknown chest once to flush out a Mimic, then unlocks,
// opens and empties it.
func (p *player) chests(info game.GameInfo) bool {
	for _, it := range info.Room.Items {
		c := it.Chest
		if c == nil {
			continue
		}
		if !p.tried[c.ID] {
			p.tried[c.ID] = true
			p.act()
			_, end, err := p.s.HitChest(p.id, c.ID)
			p.end = end
			return err == nil
		}
		switch {
		case c.Locked && info.Keys > 0:
			p.act()
			return p.s.UnlockChest(p.id, c.ID) == nil
		case c.Locked:
			continue
		case c.Closed:
			p.act()
			end, err := p.s.OpenChest(p.id, c.ID)
			p.end = end
			return err == nil
		case len(c.Items) > 0:
			p.act()
			return p.s.TakeAllFromChest(p.id, c.ID) == nil
		}
	}
	return false
}

// shop buys the cheapest affordable heal.
func (p *player) shop(info game.GameInfo) bool {
	heals := make([]game.ItemView, 0, len(info.Room.Items))
	for _, it := range info.Room.Items {
		if it.Heal != nil && it.Cost > 0 && it.Cost <= info.Coins {
			heals = append(heals, it)
		}
	}
	if len(heals) == 0 {
		return false
	}
	cheapest := slices.MinFunc(heals, func(a, b game.ItemView) int { return cmp.Compare(a.Cost, b.Cost) })
	p.act()
	return p.s.BuyItem(p.id, cheapest.ID) == nil
}

// equip wears any carried piece that beats what is worn in its slot.
func (p *player) equip(info game.GameInfo) bool {
	worn := make(map[string]game.EquipmentView, len(info.Equipment))
	for _, e := range info.Equipment {
		worn[e.Slot] = e
	}
	for _, it := range info.Inventory {
		e := it.Equipment
		if e == nil {
			continue
		}
		cur, ok := worn[e.Slot]
		if ok && e.Attack+e.Block <= cur.Attack+cur.Block {
			continue
		}
		p.act()
		_, err := p.s.EquipItem(p.id, it.ID)
		return err == nil
	}
	return false
}

type cause struct {
	Name  string
	Count int
}

type summary struct {
	Runs     int
	Wins     int
	Defeats  int
	Stalled  int
	AvgDepth float64
	Causes   []cause
}

func summarize(outcomes []outcome) summary {
	sum := summary{Runs: len(outcomes)}
	counts := make(map[string]int)
	depth := 0
	for _, o := range outcomes {
		depth += o.Depth
		switch {
		case !o.Ended:
			sum.Stalled++
		case o.Result == game.ResultWin:
			sum.Wins++
		default:
			sum.Defeats++
			counts[o.Cause]++
		}
	}
	if sum.Runs > 0 {
		sum.AvgDepth = float64(depth) / float64(sum.Runs)
	}
	for name, n := range counts {
		sum.Causes = append(sum.Causes, cause{Name: name, Count: n})
	}
	slices.SortFunc(sum.Causes, func(a, b cause) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return sum
}
