package game

import "maps"

// Result is how a run ended.
type Result uint8

const (
	ResultWin Result = iota
	ResultDefeat
)

func (r Result) String() string {
	if r == ResultWin {
		return "win"
	}
	return "defeat"
}

// Ending is the terminal outcome of a run. After an ending the game is
// inert until StartSession is called again.
type Ending struct {
	Result Result
	Stats  Stats
}

// Stats is the final snapshot of a run.
type Stats struct {
	Depth        int            `json:"depth"`
	Rooms        int            `json:"rooms"`
	Health       int            `json:"health"`
	MaxHealth    int            `json:"max_health"`
	Coins        int            `json:"coins"`
	Keys         int            `json:"keys"`
	Weapon       string         `json:"weapon"`
	Helm         string         `json:"helm,omitempty"`
	Chestplate   string         `json:"chestplate,omitempty"`
	Inventory    int            `json:"inventory"`
	Kills        map[string]int `json:"kills"`
	TotalKills   int            `json:"total_kills"`
	DamageDealt  int            `json:"damage_dealt"`
	DamageTaken  int            `json:"damage_taken"`
	ItemsUsed    int            `json:"items_used"`
	ItemsBroken  int            `json:"items_broken"`
	CoinsEarned  int            `json:"coins_earned"`
	CauseOfDeath string         `json:"cause_of_death,omitempty"`
	Victory      bool           `json:"victory"`
}

// finish snapshots the run and discards the world.
func (g *Game) finish(result Result) *Ending {
	w := g.world
	rec := w.Record()
	s := Stats{
		Depth:        w.Depth(),
		Rooms:        len(w.Rooms()),
		Health:       w.Health(),
		MaxHealth:    w.MaxHealth(),
		Coins:        w.Coins(),
		Keys:         w.Keys(),
		Weapon:       w.Weapon().Name,
		Inventory:    w.InventoryLen(),
		Kills:        maps.Clone(rec.Kills),
		TotalKills:   rec.TotalKills(),
		DamageDealt:  rec.DamageDealt,
		DamageTaken:  rec.DamageTaken,
		ItemsUsed:    rec.ItemsUsed,
		ItemsBroken:  rec.ItemsBroken,
		CoinsEarned:  rec.CoinsEarned,
		CauseOfDeath: rec.CauseOfDeath,
		Victory:      result == ResultWin,
	}
	if h := w.Helm(); h != nil {
		s.Helm = h.Name
	}
	if c := w.Chestplate(); c != nil {
		s.Chestplate = c.Name
	}
	if s.Victory {
		s.CauseOfDeath = ""
	}
	g.world = nil
	return &Ending{Result: result, Stats: s}
}
