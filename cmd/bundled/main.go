// bundled lists the albums shipped with the application and exports them.
//
// Usage:
//
//	bundled [flags] list
//	bundled [flags] export <id> <dest>
package main

import (
	"flag"
	"fmt"
	"os"

	"k8s.io/klog/v2"

	"github.com/tstromberg/slideshow/pkg/slideshow"
)

func main() {
	klog.InitFlags(nil)

	cfg, err := slideshow.LoadConfig()
	if err != nil {
		klog.Exitf("config: %v", err)
	}

	root := flag.String("root", cfg.BundledDir, "root of the bundled albums")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		klog.Exitf("usage: %s [flags] list|export ...", os.Args[0])
	}

	albums := slideshow.Discover(*root)

	switch args[0] {
	case "list":
		for _, b := range albums {
			c, err := b.Load()
			if err != nil {
				klog.Errorf("load %s: %v", b.ID, err)
				continue
			}
			fmt.Printf("%s\t%s\t%d images\n", b.ID, b.Name, c.Len())
		}
	case "export":
		if len(args) != 3 {
			klog.Exitf("usage: %s export <id> <dest>", os.Args[0])
		}
		for _, b := range albums {
			if b.ID != args[1] {
				continue
			}
			n, err := slideshow.Export(b, args[2])
			if err != nil {
				klog.Exitf("export failed: %v", err)
			}
			fmt.Printf("exported %d images to %s\n", n, args[2])
			return
		}
		klog.Exitf("no bundled album %q in %s", args[1], *root)
	default:
		klog.Exitf("unknown command %q", args[0])
	}
}
