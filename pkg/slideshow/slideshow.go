// Package slideshow provides the slide collection, circular navigation, and the
// directory and bundled-album sources that feed a slideshow.
package slideshow

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Delay bounds for the slideshow timer, in milliseconds.
const (
	DefaultDelayMillis = 2000
	MinDelayMillis     = 100
)

// Config holds configuration for the slideshow tools.
type Config struct {
	Dir            string `env:"SLIDESHOW_DIR"`
	Format         string `env:"SLIDESHOW_FORMAT" envDefault:"*"`
	Delay          string `env:"SLIDESHOW_DELAY" envDefault:"2000"`
	ImpressionFile string `env:"SLIDESHOW_IMPRESSIONS"`
	BundledDir     string `env:"SLIDESHOW_BUNDLED" envDefault:"images"`
	Workers        int    `env:"SLIDESHOW_WORKERS" envDefault:"4"`
	MaxSide        int    `env:"SLIDESHOW_MAX_SIDE" envDefault:"0"`
}

// LoadConfig returns a Config populated from defaults and SLIDESHOW_* environment variables.
func LoadConfig() (*Config, error) {
	c := &Config{}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	return c, nil
}

// ParseDelay converts a user supplied millisecond count into a slide delay.
// Garbage falls back to the default and short delays are raised to the minimum.
func ParseDelay(s string) time.Duration {
	ms, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return DefaultDelayMillis * time.Millisecond
	}
	if ms < MinDelayMillis {
		ms = MinDelayMillis
	}
	return time.Duration(ms) * time.Millisecond
}
