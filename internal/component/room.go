package component

// RoomKind tags a room.
type RoomKind uint8

const (
	RoomStart RoomKind = iota
	RoomEnd
	RoomEmpty
	RoomSmall
	RoomBig
	RoomShop
)

func (k RoomKind) String() string {
	switch k {
	case RoomStart:
		return "start"
	case RoomEnd:
		return "end"
	case RoomEmpty:
		return "empty"
	case RoomSmall:
		return "small"
	case RoomBig:
		return "big"
	case RoomShop:
		return "shop"
	}
	return "unknown"
}

// Room is one step of the dungeon. ID is its position in the sequence.
type Room struct {
	ID          int
	Kind        RoomKind
	Name        string
	Description string
	Items       []*Item
	Enemies     []*Enemy
	Discovered  bool
	Searched    bool
}

// Enemy returns the enemy combat targets: the first one in the room.
func (r *Room) Enemy() (*Enemy, bool) {
	if len(r.Enemies) == 0 {
		return nil, false
	}
	return r.Enemies[0], true
}

// RemoveEnemy drops the enemy with id from the room.
func (r *Room) RemoveEnemy(id int) {
	for i, e := range r.Enemies {
		if e.ID == id {
			r.Enemies = append(r.Enemies[:i:i], r.Enemies[i+1:]...)
			return
		}
	}
}

// PushEnemy puts e in front so it becomes the combat target.
func (r *Room) PushEnemy(e *Enemy) {
	r.Enemies = append([]*Enemy{e}, r.Enemies...)
}

// FindItem returns the item with id lying in the room.
func (r *Room) FindItem(id int) (*Item, bool) {
	return findItem(r.Items, id)
}

// RemoveItem takes the item with id out of the room.
func (r *Room) RemoveItem(id int) (*Item, bool) {
	var it *Item
	r.Items, it = removeItem(r.Items, id)
	return it, it != nil
}

// FindChest returns the chest with id lying in the room.
func (r *Room) FindChest(id int) (*Item, bool) {
	it, ok := r.FindItem(id)
	if !ok || it.Kind != KindChest || it.Chest == nil {
		return nil, false
	}
	return it, true
}
