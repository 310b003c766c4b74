package slideshow

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeImage(t, root, "top.png")
	writeImage(t, root, "zoo_trip/lion.png")
	writeImage(t, root, "autumn/leaf.jpg")
	writeImage(t, root, "éclair_day/cake.png")
	writeFile(t, root, "readme.txt", "ignored")

	got := Discover(root)
	want := []Bundled{
		{ID: BaseID, Name: "Base collection", Path: root},
		{ID: "autumn", Name: "Autumn", Path: filepath.Join(root, "autumn")},
		{ID: "zoo_trip", Name: "Zoo trip", Path: filepath.Join(root, "zoo_trip")},
		{ID: "éclair_day", Name: "Éclair day", Path: filepath.Join(root, "éclair_day")},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Discover mismatch (-want +got):\n%s", diff)
	}
}

func TestDiscoverMissingRoot(t *testing.T) {
	if got := Discover(filepath.Join(t.TempDir(), "missing")); len(got) != 0 {
		t.Errorf("Discover(missing) = %v, want none", got)
	}
}

func TestPrettify(t *testing.T) {
	tests := map[string]string{
		"summer_trip": "Summer trip",
		"_x_":         "X",
		"___":         "Album",
		"":            "Album",
		"ёлка":        "Ёлка",
	}
	for in, want := range tests {
		if got := prettify(in); got != want {
			t.Errorf("prettify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBundledLoad(t *testing.T) {
	root := t.TempDir()
	a := writeImage(t, root, "a.png")
	b := writeImage(t, root, "sub/b.bmp")
	writeFile(t, root, "sub/c.txt", "x")

	c, err := Bundled{ID: BaseID, Path: root}.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	got := []string{}
	for _, e := range c.Entries() {
		got = append(got, e.Path)
	}
	if diff := cmp.Diff([]string{a, b}, got); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestExport(t *testing.T) {
	root := t.TempDir()
	writeImage(t, root, "a.png")
	writeImage(t, root, "sub/b.jpg")
	writeFile(t, root, "sub/notes.txt", "x")

	dest := filepath.Join(t.TempDir(), "out")
	n, err := Export(Bundled{ID: BaseID, Path: root}, dest)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if n != 2 {
		t.Errorf("Export copied %d images, want 2", n)
	}

	for _, rel := range []string{"a.png", "sub/b.jpg"} {
		if _, err := os.Stat(filepath.Join(dest, rel)); err != nil {
			t.Errorf("expected %s to be exported: %v", rel, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dest, "sub/notes.txt")); !os.IsNotExist(err) {
		t.Errorf("notes.txt should not be exported, stat err = %v", err)
	}
}
