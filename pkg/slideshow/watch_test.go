package slideshow

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestWatchSeesNewImage(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, dir, "sub/a.png")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan string, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, dir, func(e fsnotify.Event) { changed <- e.Name })
	}()

	// Give the watcher a moment to register before producing events.
	time.Sleep(200 * time.Millisecond)
	want := writeImage(t, dir, "sub/b.png")

	deadline := time.After(5 * time.Second)
	for found := false; !found; {
		select {
		case name := <-changed:
			found = filepath.Clean(name) == want
		case <-deadline:
			t.Fatalf("no event for %s", want)
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Watch did not stop after cancel")
	}
}
