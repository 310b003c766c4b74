package slideshow

// Navigator is a circular cursor over a Collection. The cursor starts at -1,
// meaning no slide has been shown yet.
//
// A Navigator is never patched when its collection changes: build a new one.
type Navigator struct {
	c       *Collection
	current int
}

// NewNavigator returns a navigator positioned before the first slide of c.
func NewNavigator(c *Collection) *Navigator {
	if c == nil {
		c = NewCollection()
	}
	return &Navigator{c: c, current: -1}
}

// Next advances the cursor, wrapping to the first slide after the last.
// It returns nil when the collection is empty.
func (n *Navigator) Next() *Entry {
	if n.current+1 < n.c.Len() {
		n.current++
	} else {
		n.current = 0
	}
	return n.c.Get(n.current)
}

// Previous moves the cursor back, wrapping to the last slide before the first.
// It returns nil when the collection is empty.
func (n *Navigator) Previous() *Entry {
	if n.current > 0 {
		n.current--
	} else {
		n.current = n.c.Len() - 1
	}
	return n.c.Get(n.current)
}

// CurrentIndex returns the 1-based position for an "N / total" readout,
// clamped to [1, Len()].
func (n *Navigator) CurrentIndex() int {
	switch {
	case n.current < 0:
		return 1
	case n.current >= n.c.Len():
		return n.c.Len()
	default:
		return n.current + 1
	}
}

// Current returns the slide under the cursor, or nil.
func (n *Navigator) Current() *Entry {
	return n.c.Get(n.current)
}

// Len returns the number of slides.
func (n *Navigator) Len() int {
	return n.c.Len()
}

// HasSlides reports whether there is anything to show.
func (n *Navigator) HasSlides() bool {
	return n.c.Len() > 0
}

// Collection returns the collection being navigated.
func (n *Navigator) Collection() *Collection {
	return n.c
}
