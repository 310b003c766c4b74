// mkalbum saves a directory or bundled album, with stored impressions, as an album.
package main

import (
	"flag"
	"fmt"
	"os"

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

	inDir := flag.String("in", cfg.Dir, "directory of images to save")
	format := flag.String("format", cfg.Format, "format filter: * or one of *.png, *.jpg, *.jpeg, *.gif, *.bmp")
	bundledDir := flag.String("bundled-root", cfg.BundledDir, "root of the bundled albums")
	bundledID := flag.String("bundled", "", "save the bundled album with this id instead of -in")
	outDir := flag.String("out", "", "directory to create the album in")
	name := flag.String("name", "", "album folder name (default: album_<timestamp>)")
	impressions := flag.String("impressions", cfg.ImpressionFile, "impression store file (default: per-user config)")
	workers := flag.Int("workers", cfg.Workers, "images rendered in parallel")
	maxSide := flag.Int("max-side", cfg.MaxSide, "downscale images whose longest side exceeds this (0: never)")
	flag.Parse()

	if *outDir == "" {
		klog.Exitf("--out is a required flag")
	}

	var src slideshow.Source
	switch {
	case *bundledID != "":
		for _, b := range slideshow.Discover(*bundledDir) {
			if b.ID == *bundledID {
				src = slideshow.BundledSource{Album: b}
			}
		}
		if src == nil {
			klog.Exitf("no bundled album %q in %s", *bundledID, *bundledDir)
		}
	case *inDir != "":
		src = slideshow.DirSource{Dir: *inDir, Format: *format}
	default:
		klog.Exitf("--in or --bundled is required")
	}

	c, _, err := slideshow.Open(src)
	if err != nil {
		klog.Exitf("load failed: %v", err)
	}
	if c.Len() == 0 {
		klog.Exitf("no images found: %s", src.Description())
	}

	path := *impressions
	if path == "" {
		if path, err = impression.DefaultPath(); err != nil {
			klog.Exitf("impressions: %v", err)
		}
	}
	n := impression.New(path).Annotate(c)
	klog.Infof("%d of %d slides have stored impressions", n, c.Len())

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		klog.Exitf("mkdir: %v", err)
	}
	dir := album.UniqueDir(*outDir, album.SanitizeName(*name))

	s := &album.Saver{Renderer: render.Renderer{MaxSide: *maxSide}, Workers: *workers}
	saved, err := s.Save(dir, c.Entries())
	if err != nil {
		klog.Exitf("save failed: %v", err)
	}
	fmt.Printf("saved %d slides to %s\n", saved, dir)
}
