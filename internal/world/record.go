package world

// Record accumulates what happened during a run.
type Record struct {
	Kills        map[string]int
	DamageDealt  int
	DamageTaken  int
	ItemsUsed    int
	ItemsBroken  int
	CoinsEarned  int
	Deepest      int
	CauseOfDeath string
}

// Kill counts one slain enemy.
func (r *Record) Kill(name string) { r.Kills[name]++ }

// TotalKills returns the number of slain enemies.
func (r *Record) TotalKills() int {
	n := 0
	for _, k := range r.Kills {
		n += k
	}
	return n
}
