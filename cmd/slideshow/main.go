// slideshow cycles through images on a timer, printing an "N / total" readout
// with each slide's impression.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"k8s.io/klog/v2"

	"github.com/tstromberg/slideshow/pkg/album"
	"github.com/tstromberg/slideshow/pkg/impression"
	"github.com/tstromberg/slideshow/pkg/render"
	"github.com/tstromberg/slideshow/pkg/slideshow"
)

func main() {
	klog.InitFlags(nil)

	cfg, err := slideshow.LoadConfig()
	if err != nil {
		klog.Exitf("config: %v", err)
	}

	inDir := flag.String("in", cfg.Dir, "directory of images to show")
	format := flag.String("format", cfg.Format, "format filter: * or one of *.png, *.jpg, *.jpeg, *.gif, *.bmp")
	delay := flag.String("delay", cfg.Delay, "milliseconds between slides")
	bundledDir := flag.String("bundled-root", cfg.BundledDir, "root of the bundled albums")
	bundledID := flag.String("bundled", "", "show the bundled album with this id instead of -in")
	albumDir := flag.String("album", "", "show a saved album directory instead of -in")
	impressions := flag.String("impressions", cfg.ImpressionFile, "impression store file (default: per-user config)")
	watchFlag := flag.Bool("watch", false, "watch -in for changes and rebuild the slideshow")
	exifFlag := flag.Bool("exif", false, "print image metadata with each slide (requires exiftool)")
	count := flag.Int("count", 0, "stop after this many slides (0: run until interrupted)")
	reverse := flag.Bool("reverse", false, "show slides in reverse order")
	flag.Parse()

	src, err := source(*inDir, *format, *bundledDir, *bundledID, *albumDir)
	if err != nil {
		klog.Exitf("%v", err)
	}

	store, err := openStore(*impressions)
	if err != nil {
		klog.Exitf("impressions: %v", err)
	}

	var d *slideshow.Describer
	if *exifFlag {
		d, err = slideshow.NewDescriber()
		if err != nil {
			klog.Exitf("exif: %v", err)
		}
		defer d.Close()
	}

	p := &player{src: src, store: store, describer: d, reverse: *reverse}
	if err := p.rebuild(); err != nil {
		klog.Exitf("load failed: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var wg sync.WaitGroup
	if *watchFlag {
		ds, ok := src.(slideshow.DirSource)
		if !ok {
			klog.Exitf("-watch requires -in")
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := slideshow.Watch(ctx, ds.Dir, func(fsnotify.Event) {
				if err := p.rebuild(); err != nil {
					klog.Errorf("rebuild failed: %v", err)
				}
			})
			if err != nil {
				klog.Errorf("watch: %v", err)
			}
		}()
	}

	p.play(ctx, slideshow.ParseDelay(*delay), *count)
	cancel()
	wg.Wait()
}

func source(inDir, format, bundledDir, bundledID, albumDir string) (slideshow.Source, error) {
	switch {
	case albumDir != "":
		return album.Source{Dir: albumDir}, nil
	case bundledID != "":
		for _, b := range slideshow.Discover(bundledDir) {
			if b.ID == bundledID {
				return slideshow.BundledSource{Album: b}, nil
			}
		}
		return nil, fmt.Errorf("no bundled album %q in %s", bundledID, bundledDir)
	case inDir != "":
		return slideshow.DirSource{Dir: inDir, Format: format}, nil
	default:
		return nil, fmt.Errorf("one of --in, --bundled, or --album is required")
	}
}

func openStore(path string) (*impression.Store, error) {
	if path == "" {
		p, err := impression.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return impression.New(path), nil
}

// player owns the navigator; rebuild swaps in a new one wholesale.
type player struct {
	src       slideshow.Source
	store     *impression.Store
	describer *slideshow.Describer
	reverse   bool

	mu  sync.Mutex
	nav *slideshow.Navigator
}

func (p *player) rebuild() error {
	c, nav, err := slideshow.Open(p.src)
	if err != nil {
		return err
	}
	if _, ok := p.src.(album.Source); !ok {
		klog.V(1).Infof("annotated %d slides from %s", p.store.Annotate(c), p.store.Path())
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.nav = nav
	return nil
}

func (p *player) step() {
	p.mu.Lock()
	defer p.mu.Unlock()

	var e *slideshow.Entry
	if p.reverse {
		e = p.nav.Previous()
	} else {
		e = p.nav.Next()
	}
	if e == nil {
		fmt.Println("no slides")
		return
	}

	line := fmt.Sprintf("%d / %d  %s", p.nav.CurrentIndex(), p.nav.Len(), e.Path)
	if e.HasImpression() {
		line += "  [" + render.Caption(e.Text, e.Emotion) + "]"
	}
	fmt.Println(line)

	if p.describer != nil {
		m, err := p.describer.Describe(e.Path)
		if err != nil {
			klog.Warningf("describe %s: %v", e.Path, err)
			return
		}
		fmt.Println("    " + m.String())
	}
}

func (p *player) play(ctx context.Context, delay time.Duration, count int) {
	klog.Infof("%s, one slide every %s", p.src.Description(), delay)
	p.step()
	shown := 1

	t := time.NewTicker(delay)
	defer t.Stop()
	for count == 0 || shown < count {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			p.step()
			shown++
		}
	}
}
