package album

import (
	"fmt"
	"path/filepath"

	"github.com/tstromberg/slideshow/pkg/slideshow"
)

// Source is a slideshow.Source backed by a saved album directory.
type Source struct {
	Dir string
}

// Collect implements slideshow.Source.
func (s Source) Collect() (*slideshow.Collection, error) {
	es, err := Load(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	return slideshow.NewCollectionFrom(es), nil
}

// Description implements slideshow.Source.
func (s Source) Description() string {
	return "Album: " + filepath.Base(s.Dir)
}
