package album

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDestName(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "taken.png"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		src      string
		reserved map[string]bool
		want     string
	}{
		{src: "/x/photo.jpg", want: "photo.png"},
		{src: "/x/photo.JPEG", want: "photo.png"},
		{src: "/x/archive.tar.gz", want: "archive.tar.png"},
		{src: "/x/noext", want: "noext.png"},
		{src: "/x/taken.bmp", want: "taken_1.png"},
		{src: "/x/photo.jpg", reserved: map[string]bool{"photo.png": true, "photo_1.png": true}, want: "photo_2.png"},
	}

	for _, tt := range tests {
		if got := destName(dir, tt.src, tt.reserved); got != tt.want {
			t.Errorf("destName(%q, %v) = %q, want %q", tt.src, tt.reserved, got, tt.want)
		}
	}
}

func TestSanitizeName(t *testing.T) {
	tests := map[string]string{
		"My album":               "My album",
		`  a/b\c:d*e?f"g<h>i|j `: "abcdefghij",
		"Радость 😊":              "Радость 😊",
		"///":                    "",
	}
	for in, want := range tests {
		if got := SanitizeName(in); got != want {
			t.Errorf("SanitizeName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestUniqueDir(t *testing.T) {
	base := t.TempDir()

	if got := UniqueDir(base, "trip"); got != filepath.Join(base, "trip") {
		t.Errorf("UniqueDir fresh = %q", got)
	}

	for _, d := range []string{"trip", "trip_1"} {
		if err := os.Mkdir(filepath.Join(base, d), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	if got := UniqueDir(base, "trip"); got != filepath.Join(base, "trip_2") {
		t.Errorf("UniqueDir with collisions = %q, want trip_2", got)
	}

	if got := filepath.Base(UniqueDir(base, "  ")); !strings.HasPrefix(got, "album_") {
		t.Errorf("UniqueDir blank = %q, want album_<millis>", got)
	}
}
