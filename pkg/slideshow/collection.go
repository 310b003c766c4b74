package slideshow

const defaultCapacity = 16

// Collection is an ordered list of slides. Insertion order is traversal order.
type Collection struct {
	entries []*Entry
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{entries: make([]*Entry, 0, defaultCapacity)}
}

// NewCollectionFrom returns a collection holding every acceptable entry of es.
func NewCollectionFrom(es []*Entry) *Collection {
	c := NewCollection()
	for _, e := range es {
		c.Add(e)
	}
	return c
}

// Add appends e unless it is nil or has a blank path. Repeated paths are allowed.
func (c *Collection) Add(e *Entry) bool {
	if e == nil || isBlank(e.Path) {
		return false
	}
	c.entries = append(c.entries, e)
	return true
}

// Get returns the entry at i, or nil if i is out of range.
func (c *Collection) Get(i int) *Entry {
	if i < 0 || i >= len(c.entries) {
		return nil
	}
	return c.entries[i]
}

// Len returns the number of entries.
func (c *Collection) Len() int {
	return len(c.entries)
}

// Clear empties the collection, keeping its backing storage.
func (c *Collection) Clear() {
	clear(c.entries)
	c.entries = c.entries[:0]
}

// Entries returns a copy of the entry list. The entries themselves are shared.
func (c *Collection) Entries() []*Entry {
	out := make([]*Entry, len(c.entries))
	copy(out, c.entries)
	return out
}
