package slideshow

import "testing"

func threeSlides() *Collection {
	return NewCollectionFrom([]*Entry{NewEntry("0.png"), NewEntry("1.png"), NewEntry("2.png")})
}

func TestNavigatorNextWraps(t *testing.T) {
	n := NewNavigator(threeSlides())
	for _, want := range []string{"0.png", "1.png", "2.png", "0.png"} {
		e := n.Next()
		if e == nil || e.Path != want {
			t.Fatalf("Next() = %+v, want %s", e, want)
		}
	}
}

func TestNavigatorPreviousWraps(t *testing.T) {
	n := NewNavigator(threeSlides())
	n.Next()

	e := n.Previous()
	if e == nil || e.Path != "2.png" {
		t.Fatalf("Previous() from 0 = %+v, want 2.png", e)
	}
	if e := n.Previous(); e.Path != "1.png" {
		t.Fatalf("Previous() = %+v, want 1.png", e)
	}
}

func TestNavigatorPreviousBeforeStart(t *testing.T) {
	n := NewNavigator(threeSlides())
	if e := n.Previous(); e == nil || e.Path != "2.png" {
		t.Fatalf("Previous() before start = %+v, want 2.png", e)
	}
}

func TestNavigatorCurrentIndex(t *testing.T) {
	n := NewNavigator(threeSlides())
	if got := n.CurrentIndex(); got != 1 {
		t.Errorf("CurrentIndex() before navigation = %d, want 1", got)
	}
	if n.Current() != nil {
		t.Errorf("Current() before navigation should be nil")
	}

	for want := 1; want <= 3; want++ {
		n.Next()
		if got := n.CurrentIndex(); got != want {
			t.Errorf("CurrentIndex() = %d, want %d", got, want)
		}
	}

	// Shrinking the collection under the navigator must not push the readout past the total.
	n.Collection().Clear()
	n.Collection().Add(NewEntry("only.png"))
	if got := n.CurrentIndex(); got != 1 {
		t.Errorf("CurrentIndex() beyond bounds = %d, want 1", got)
	}
	if n.Current() != nil {
		t.Errorf("Current() beyond bounds should be nil")
	}
}

func TestNavigatorEmpty(t *testing.T) {
	n := NewNavigator(NewCollection())
	if n.HasSlides() {
		t.Errorf("HasSlides() = true for empty collection")
	}
	if e := n.Next(); e != nil {
		t.Errorf("Next() = %+v, want nil", e)
	}
	if e := n.Previous(); e != nil {
		t.Errorf("Previous() = %+v, want nil", e)
	}
	if e := n.Current(); e != nil {
		t.Errorf("Current() = %+v, want nil", e)
	}

	if NewNavigator(nil).Next() != nil {
		t.Errorf("Next() on nil collection should be nil")
	}
}
