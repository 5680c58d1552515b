// Package factory builds rooms, items and enemies from the balance tables.
// Every stat grows with the depth of the room the entity is created for.
package factory

import (
	"math"

	"dungeon-crawler/assets"
	"dungeon-crawler/internal/ids"
	"dungeon-crawler/internal/random"
)

// Factory creates dungeon content for one session.
type Factory struct {
	rng random.Source
	bal *assets.Balance
	ids *ids.Allocators
}

// New returns a factory drawing from rng and numbering through alloc.
func New(rng random.Source, bal *assets.Balance, alloc *ids.Allocators) *Factory {
	return &Factory{rng: rng, bal: bal, ids: alloc}
}

// Balance returns the tables the factory reads.
func (f *Factory) Balance() *assets.Balance { return f.bal }

// multiplier is the depth growth factor of one entity family.
func multiplier(depth int, divisor float64) float64 {
	return 1 + float64(depth)/divisor
}

// scale returns round(base * multiplier * markup).
func scale(base, depth int, divisor, markup float64) int {
	return int(math.Round(float64(base) * multiplier(depth, divisor) * markup))
}

// spread draws a uniform integer around base scaled by the family
// multiplier, bounded by the configured spread factors.
func (f *Factory) spread(base float64, depth int, divisor float64) int {
	v := base * multiplier(depth, divisor)
	lo := int(math.Round(v * f.bal.Scaling.SpreadLow))
	hi := int(math.Round(v * f.bal.Scaling.SpreadHigh))
	return random.Between(f.rng, lo, hi)
}

// cost prices an item; a zero base cost means the item is not for trade.
func (f *Factory) cost(base, depth int, markup float64) int {
	if base <= 0 {
		return 0
	}
	return max(1, f.spread(float64(base)*markup, depth, f.bal.Scaling.Cost))
}

func (f *Factory) markup(shop bool) float64 {
	if shop {
		return f.bal.Scaling.ShopMarkup
	}
	return 1
}
