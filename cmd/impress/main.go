// impress reads and writes image impressions in the impression store.
//
// Usage:
//
//	impress [flags] list
//	impress [flags] get <image>...
//	impress [flags] set <image> <text> [emotion]
//	impress [flags] emotions
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"k8s.io/klog/v2"

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

	impressions := flag.String("impressions", cfg.ImpressionFile, "impression store file (default: per-user config)")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		klog.Exitf("usage: %s [flags] list|get|set|emotions ...", os.Args[0])
	}

	path := *impressions
	if path == "" {
		if path, err = impression.DefaultPath(); err != nil {
			klog.Exitf("impressions: %v", err)
		}
	}
	s := impression.New(path)

	switch args[0] {
	case "list":
		for _, p := range s.Paths() {
			r, _ := s.Get(p)
			fmt.Printf("%s\t%s\n", p, render.Caption(r.Text, r.Emotion))
		}
	case "get":
		for _, a := range args[1:] {
			p := absPath(a)
			r, ok := s.Get(p)
			if !ok {
				fmt.Printf("%s\t(none)\n", p)
				continue
			}
			fmt.Printf("%s\t%s\n", p, render.Caption(r.Text, r.Emotion))
		}
	case "set":
		if len(args) < 3 {
			klog.Exitf("usage: %s set <image> <text> [emotion]", os.Args[0])
		}
		emotion := ""
		if len(args) > 3 {
			emotion = render.Normalize(args[3])
		}
		p := absPath(args[1])
		if err := s.Set(p, args[2], emotion); err != nil {
			klog.Exitf("set failed: %v", err)
		}
		if _, ok := s.Get(p); !ok {
			fmt.Printf("cleared %s\n", p)
			return
		}
		fmt.Printf("saved %s\n", p)
	case "emotions":
		for _, st := range render.Palette {
			fmt.Printf("%s\t%s\n", st.Hex, st.Label)
		}
	default:
		klog.Exitf("unknown command %q", args[0])
	}
}

// absPath keys the store by absolute path, as the slideshow does.
func absPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return abs
}
