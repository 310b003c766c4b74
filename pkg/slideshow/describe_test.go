package slideshow

import (
	"strings"
	"testing"
	"time"
)

func TestDescribe(t *testing.T) {
	d, err := NewDescriber()
	if err != nil {
		t.Skipf("exiftool unavailable: %v", err)
	}
	defer d.Close()

	p := writeImage(t, t.TempDir(), "a.png")
	m, err := d.Describe(p)
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	if m.Width != 4 || m.Height != 3 {
		t.Errorf("dimensions = %dx%d, want 4x3", m.Width, m.Height)
	}
}

func TestMetaString(t *testing.T) {
	m := Meta{
		Width:    640,
		Height:   480,
		Taken:    time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
		Make:     "Fujifilm",
		Model:    "X100V",
		Keywords: []string{"beach", "sunset"},
	}
	want := "640x480 2024-05-01 09:30 Fujifilm X100V [beach, sunset]"
	if got := m.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got := (Meta{Width: 1, Height: 2}).String(); !strings.HasPrefix(got, "1x2") || strings.Contains(got, "[") {
		t.Errorf("String() = %q", got)
	}
}
