package slideshow

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/otiai10/copy"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"k8s.io/klog/v2"
)

// BaseID identifies the bundled album rooted at the resource directory itself.
const BaseID = "base"

const (
	baseName    = "Base collection"
	defaultName = "Album"
)

// Bundled is an album shipped with the application as a resource directory.
type Bundled struct {
	ID   string
	Name string
	Path string
}

// Discover lists the bundled albums under root: the base album first, then one
// album per immediate subdirectory, ordered by folder name. A missing root has no albums.
func Discover(root string) []Bundled {
	albums := []Bundled{}
	st, err := os.Stat(root)
	if err != nil || !st.IsDir() {
		klog.V(1).Infof("no bundled albums at %s", root)
		return albums
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}
	albums = append(albums, Bundled{ID: BaseID, Name: baseName, Path: abs})

	des, err := os.ReadDir(abs)
	if err != nil {
		klog.Warningf("read %s: %v", abs, err)
		return albums
	}

	names := []string{}
	for _, de := range des {
		if de.IsDir() {
			names = append(names, de.Name())
		}
	}
	sort.Strings(names)

	for _, n := range names {
		albums = append(albums, Bundled{ID: n, Name: prettify(n), Path: filepath.Join(abs, n)})
	}
	return albums
}

// prettify turns a folder name such as "summer_trip" into "Summer trip".
func prettify(raw string) string {
	clean := strings.TrimSpace(strings.ReplaceAll(raw, "_", " "))
	if clean == "" {
		return defaultName
	}
	first := []rune(clean)[0]
	rest := clean[len(string(first)):]
	return cases.Upper(language.Und).String(string(first)) + rest
}

// Load returns a collection of every recognized image below the album directory.
func (b Bundled) Load() (*Collection, error) {
	paths, err := Find(b.Path, AllFormats)
	if err != nil {
		return nil, fmt.Errorf("find: %w", err)
	}

	c := NewCollection()
	for _, p := range paths {
		c.Add(NewEntry(p))
	}
	return c, nil
}

// Export copies the album's images, keeping their relative layout, into dest.
// It returns the number of images copied.
func Export(b Bundled, dest string) (int, error) {
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return 0, fmt.Errorf("mkdir: %w", err)
	}

	n := 0
	opts := copy.Options{
		PreserveTimes: true,
		Skip: func(fi os.FileInfo, src, _ string) (bool, error) {
			if fi.IsDir() {
				return strings.HasPrefix(fi.Name(), ".") && src != b.Path, nil
			}
			if !IsImage(src) {
				return true, nil
			}
			n++
			return false, nil
		},
	}

	klog.Infof("exporting bundled album %q: %s -> %s", b.ID, b.Path, dest)
	if err := copy.Copy(b.Path, dest, opts); err != nil {
		return n, fmt.Errorf("copy: %w", err)
	}
	return n, nil
}
