package random

import "math"

// Entry is one (weight, outcome) pair of a weighted table.
type Entry[T any] struct {
	Weight  int
	Outcome T
}

// Table is an ordered list of weighted outcomes.
type Table[T any] []Entry[T]

// Total returns the sum of all non-negative weights.
func (t Table[T]) Total() int {
	total := 0
	for _, e := range t {
		if e.Weight > 0 {
			total += e.Weight
		}
	}
	return total
}

// Pick draws one outcome proportionally to weight. The draw lands in the
// first entry whose cumulative range contains it, so ties resolve in
// declaration order. ok is false when every weight is zero.
func (t Table[T]) Pick(src Source) (outcome T, ok bool) {
	total := t.Total()
	if total == 0 {
		return outcome, false
	}
	return t.Select(src.Intn(total))
}

// Select resolves an explicit draw in [0, Total()).
func (t Table[T]) Select(draw int) (outcome T, ok bool) {
	cumulative := 0
	for _, e := range t {
		if e.Weight <= 0 {
			continue
		}
		cumulative += e.Weight
		if draw < cumulative {
			return e.Outcome, true
		}
	}
	return outcome, false
}

// Linear is a depth-driven weight: Base + PerDepth*depth inside [From, To],
// zero outside. To == 0 leaves the domain unbounded above.
type Linear struct {
	Base     float64 `yaml:"base"`
	PerDepth float64 `yaml:"per_depth"`
	From     int     `yaml:"from"`
	To       int     `yaml:"to"`
}

// Const is a Linear weight that ignores depth.
func Const(w int) Linear { return Linear{Base: float64(w)} }

// At evaluates the weight for depth, truncated toward zero and never negative.
func (l Linear) At(depth int) int {
	if depth < l.From || (l.To > 0 && depth > l.To) {
		return 0
	}
	w := math.Trunc(l.Base + l.PerDepth*float64(depth))
	if w < 0 {
		return 0
	}
	return int(w)
}
