// Package ids allocates the monotonic identifiers of one game session.
package ids

// Counter mints increasing identifiers starting at its first value.
type Counter struct {
	first int
	next  int
}

// Next returns the next identifier.
func (c *Counter) Next() int {
	id := c.first + c.next
	c.next++
	return id
}

// Peek returns the identifier Next would return, without consuming it.
func (c *Counter) Peek() int { return c.first + c.next }

// Issued returns how many identifiers have been handed out.
func (c *Counter) Issued() int { return c.next }

// Reset rewinds the counter to its first value.
func (c *Counter) Reset() { c.next = 0 }

// Allocators holds the room, item and enemy counters of a session.
// Rooms are numbered from 0 (the start room); items and enemies from 1 so
// the zero ID stays free for the default bare-hands weapon.
type Allocators struct {
	Room  Counter
	Item  Counter
	Enemy Counter
}

// New returns fresh allocators.
func New() *Allocators {
	return &Allocators{
		Room:  Counter{first: 0},
		Item:  Counter{first: 1},
		Enemy: Counter{first: 1},
	}
}

// Reset rewinds all three counters.
func (a *Allocators) Reset() {
	a.Room.Reset()
	a.Item.Reset()
	a.Enemy.Reset()
}
