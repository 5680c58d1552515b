package factory

import (
	"dungeon-crawler/assets"
	"dungeon-crawler/internal/component"
)

// Room builds the next room of the sequence. Its id, taken from the room
// counter, is also its depth.
func (f *Factory) Room(kind component.RoomKind) *component.Room {
	id := f.ids.Room.Next()
	label := assets.RoomLabel(kind)
	r := &component.Room{
		ID:          id,
		Kind:        kind,
		Name:        label.Name,
		Description: label.Description,
	}
	rb := f.bal.Rooms
	switch kind {
	case component.RoomStart:
		r.Discovered = true
		return r
	case component.RoomEnd:
		return r
	case component.RoomSmall:
		f.fill(r, f.rng.Intn(rb.SmallMaxItems+1))
	case component.RoomBig:
		f.fill(r, rb.BigItems)
	case component.RoomShop:
		f.stock(r, rb.ShopStock)
	}
	if e, ok := f.Enemy(id); ok {
		r.Enemies = append(r.Enemies, e)
	}
	return r
}

// fill makes n rolls on the room table; empty rolls add nothing.
func (f *Factory) fill(r *component.Room, n int) {
	for range n {
		if it, ok := f.Item(OriginRoom, r.ID); ok {
			r.Items = append(r.Items, it)
		}
	}
}

// stock fills a shop with n priced items. The shop table has no empty
// outcome, but a bounded number of retries guards against a zeroed table.
func (f *Factory) stock(r *component.Room, n int) {
	for tries := 0; len(r.Items) < n && tries < n*4; tries++ {
		if it, ok := f.Item(OriginShop, r.ID); ok {
			r.Items = append(r.Items, it)
		}
	}
}
