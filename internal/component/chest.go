package component

// Chest is the payload of a chest item. A chest with a non-nil Mimic is a
// disguised enemy; the flag is fixed when the chest is built and cleared
// only when the Mimic dies.
type Chest struct {
	Locked bool
	Closed bool
	Items  []*Item
	Mimic  *Enemy
}

// Open reports whether the chest is unlocked and open.
func (c *Chest) Open() bool { return !c.Locked && !c.Closed }

// Find returns the contained item with id.
func (c *Chest) Find(id int) (*Item, bool) {
	return findItem(c.Items, id)
}

// Remove takes the item with id out of the chest.
func (c *Chest) Remove(id int) (*Item, bool) {
	var it *Item
	c.Items, it = removeItem(c.Items, id)
	return it, it != nil
}

func findItem(items []*Item, id int) (*Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return nil, false
}

func removeItem(items []*Item, id int) ([]*Item, *Item) {
	for i, it := range items {
		if it.ID == id {
			return append(items[:i:i], items[i+1:]...), it
		}
	}
	return items, nil
}
