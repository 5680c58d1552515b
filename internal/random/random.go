// Package random holds the single random-draw capability threaded through
// generation and combat, plus the weighted tables every procedural choice
// is made from.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Source is the random capability used by the engine. *rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniform integer in [0, n). It panics if n <= 0.
	Intn(n int) int
}

// New returns a deterministic source for seed.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NewSeed generates a seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Chance reports true with probability 1/n.
func Chance(src Source, n int) bool {
	if n <= 1 {
		return true
	}
	return src.Intn(n) == 0
}

// Between returns a uniform integer in [lo, hi]. If hi < lo, lo is returned.
func Between(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.Intn(hi-lo+1)
}

// Scripted replays a fixed list of draws. Each draw is reduced modulo n so a
// script stays valid for any range; once the script runs out it yields 0.
type Scripted struct {
	Draws []int
	pos   int
}

// Intn implements Source.
func (s *Scripted) Intn(n int) int {
	if n <= 0 {
		panic("random: invalid argument to Intn")
	}
	if s.pos >= len(s.Draws) {
		return 0
	}
	d := s.Draws[s.pos]
	s.pos++
	if d < 0 {
		d = -d
	}
	return d % n
}

// Used returns how many scripted draws have been consumed.
func (s *Scripted) Used() int { return s.pos }
