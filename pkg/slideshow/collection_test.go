package slideshow

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCollectionAdd(t *testing.T) {
	c := NewCollection()
	tests := []struct {
		name string
		e    *Entry
		want bool
	}{
		{name: "nil", e: nil, want: false},
		{name: "empty path", e: NewEntry(""), want: false},
		{name: "blank path", e: NewEntry(" \t"), want: false},
		{name: "valid", e: NewEntry("/tmp/a.jpg"), want: true},
		{name: "repeat", e: NewEntry("/tmp/a.jpg"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Add(tt.e); got != tt.want {
				t.Errorf("Add(%+v) = %v, want %v", tt.e, got, tt.want)
			}
		})
	}

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	for i := 0; i < c.Len(); i++ {
		if p := c.Get(i).Path; p != "/tmp/a.jpg" {
			t.Errorf("Get(%d).Path = %q", i, p)
		}
	}
}

func TestCollectionGetOutOfRange(t *testing.T) {
	c := NewCollectionFrom([]*Entry{NewEntry("a.png")})
	for _, i := range []int{-1, 1, 100} {
		if got := c.Get(i); got != nil {
			t.Errorf("Get(%d) = %+v, want nil", i, got)
		}
	}
}

func TestCollectionGrowsAndKeepsOrder(t *testing.T) {
	c := NewCollection()
	want := []string{}
	for i := 0; i < 3*defaultCapacity+1; i++ {
		p := string(rune('a'+i%26)) + ".png"
		want = append(want, p)
		c.Add(NewEntry(p))
	}

	got := []string{}
	for _, e := range c.Entries() {
		got = append(got, e.Path)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectionClear(t *testing.T) {
	c := NewCollectionFrom([]*Entry{NewEntry("a.png"), NewEntry("b.png")})
	before := cap(c.entries)
	c.Clear()

	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d", c.Len())
	}
	if c.Get(0) != nil {
		t.Errorf("Get(0) after Clear should be nil")
	}
	if cap(c.entries) != before {
		t.Errorf("capacity shrank from %d to %d", before, cap(c.entries))
	}
}

func TestEntryHasImpression(t *testing.T) {
	tests := []struct {
		e    Entry
		want bool
	}{
		{Entry{Path: "a"}, false},
		{Entry{Path: "a", Text: "  "}, false},
		{Entry{Path: "a", Text: "lovely"}, true},
		{Entry{Path: "a", Emotion: "😊 Joy"}, true},
	}

	for _, tt := range tests {
		if got := tt.e.HasImpression(); got != tt.want {
			t.Errorf("%+v.HasImpression() = %v, want %v", tt.e, got, tt.want)
		}
	}
}
