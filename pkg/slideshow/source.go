package slideshow

import (
	"fmt"

	"k8s.io/klog/v2"
)

// Source builds the slides for a slideshow from some origin.
type Source interface {
	// Collect returns a freshly built collection.
	Collect() (*Collection, error)
	// Description is a short human-readable label for the origin.
	Description() string
}

// DirSource collects images found by a recursive scan of Dir.
type DirSource struct {
	Dir    string
	Format string
}

// Collect implements Source.
func (s DirSource) Collect() (*Collection, error) {
	paths, err := Find(s.Dir, s.Format)
	if err != nil {
		return nil, fmt.Errorf("find: %w", err)
	}

	c := NewCollection()
	for _, p := range paths {
		c.Add(NewEntry(p))
	}
	return c, nil
}

// Description implements Source.
func (s DirSource) Description() string {
	return "Directory: " + s.Dir
}

// BundledSource collects the images of a bundled album.
type BundledSource struct {
	Album Bundled
}

// Collect implements Source.
func (s BundledSource) Collect() (*Collection, error) {
	return s.Album.Load()
}

// Description implements Source.
func (s BundledSource) Description() string {
	return "Bundled album: " + s.Album.Name
}

// Open collects from s and wraps the result in a fresh navigator.
func Open(s Source) (*Collection, *Navigator, error) {
	c, err := s.Collect()
	if err != nil {
		return nil, nil, fmt.Errorf("collect %s: %w", s.Description(), err)
	}
	klog.Infof("%s: %d slides", s.Description(), c.Len())
	return c, NewNavigator(c), nil
}
