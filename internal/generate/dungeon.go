// Package generate lays out the room sequence of a new dungeon.
package generate

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/factory"
	"dungeon-crawler/internal/random"
)

// State is the generator phase.
type State uint8

const (
	StateBuilding State = iota
	StateDone
)

// Generator appends rooms one at a time until it places the End room.
// Each step the End room competes with the fixed room weights using a
// weight equal to the number of rooms already built, so the dungeon
// terminates with probability 1. MaxRooms forces the End room regardless.
type Generator struct {
	f     *factory.Factory
	rng   random.Source
	rooms []*component.Room
	state State
}

// NewGenerator returns a generator that has already placed the Start room.
func NewGenerator(f *factory.Factory, rng random.Source) *Generator {
	g := &Generator{f: f, rng: rng}
	g.rooms = append(g.rooms, f.Room(component.RoomStart))
	return g
}

// State returns the current phase.
func (g *Generator) State() State { return g.state }

// Rooms returns the rooms built so far, in order.
func (g *Generator) Rooms() []*component.Room { return g.rooms }

// NextKind draws the kind of the next room.
func (g *Generator) NextKind() component.RoomKind {
	rb := g.f.Balance().Rooms
	built := len(g.rooms)
	if rb.MaxRooms > 0 && built >= rb.MaxRooms-1 {
		return component.RoomEnd
	}
	tbl := random.Table[component.RoomKind]{
		{Weight: rb.Empty, Outcome: component.RoomEmpty},
		{Weight: rb.Small, Outcome: component.RoomSmall},
		{Weight: rb.Big, Outcome: component.RoomBig},
		{Weight: rb.Shop, Outcome: component.RoomShop},
		{Weight: built, Outcome: component.RoomEnd},
	}
	kind, ok := tbl.Pick(g.rng)
	if !ok {
		return component.RoomEnd
	}
	return kind
}

// Step builds one more room. It returns nil once the End room is placed.
func (g *Generator) Step() *component.Room {
	if g.state == StateDone {
		return nil
	}
	r := g.f.Room(g.NextKind())
	g.rooms = append(g.rooms, r)
	if r.Kind == component.RoomEnd {
		g.state = StateDone
	}
	return r
}

// Dungeon runs a generator to completion and returns the room sequence.
func Dungeon(f *factory.Factory, rng random.Source) []*component.Room {
	g := NewGenerator(f, rng)
	for g.Step() != nil {
	}
	return g.Rooms()
}
