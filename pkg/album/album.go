// Package album saves slides as a self-contained album directory and loads them back.
//
// An album is a directory holding album.json and an images/ folder of rendered
// PNG copies. The manifest is written in a fixed shape, one object per slide with
// the fields imagePath, text, and emotion in that order, and read back with a
// tolerant pattern matcher rather than a general JSON parser, so albums written
// by earlier versions of the tool keep loading.
package album

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/alitto/pond/v2"
	"k8s.io/klog/v2"

	"github.com/tstromberg/slideshow/pkg/render"
	"github.com/tstromberg/slideshow/pkg/slideshow"
	"github.com/tstromberg/slideshow/pkg/textcodec"
)

const (
	// ManifestName is the manifest file inside an album directory.
	ManifestName = "album.json"
	// ImagesDir is the folder of rendered copies inside an album directory.
	ImagesDir = "images"
)

// Load failures. Callers can tell them apart with errors.Is.
var (
	ErrDirMissing        = errors.New("album directory does not exist")
	ErrManifestMissing   = errors.New(ManifestName + " not found in album directory")
	ErrManifestMalformed = errors.New("invalid " + ManifestName + " format")
)

var quoted = `"((?:\\.|[^\\"])*)"`

var itemPattern = regexp.MustCompile(`(?s)\{\s*"imagePath"\s*:\s*` + quoted +
	`\s*,\s*"text"\s*:\s*` + quoted +
	`\s*,\s*"emotion"\s*:\s*` + quoted + `\s*\}\s*(?:,|$)`)

// Renderer writes the album copy of a slide and returns the path it wrote.
type Renderer interface {
	Render(src string, dst string, e *slideshow.Entry) (string, error)
}

// Saver writes albums.
type Saver struct {
	// Renderer produces the image copies; nil means render.Renderer{}.
	Renderer Renderer
	// Workers is the number of images rendered concurrently; values below 1 mean 1.
	Workers int
}

// Save writes entries to dir using the default renderer, one image at a time.
func Save(dir string, entries []*slideshow.Entry) (int, error) {
	return (&Saver{}).Save(dir, entries)
}

type job struct {
	e   *slideshow.Entry
	dst string
	out string
}

// Save renders every entry whose source image exists into dir/images and writes
// dir/album.json, replacing any previous manifest. It returns the number of
// slides saved. Entries with a missing source are skipped; any I/O or render
// failure aborts the save.
func (s *Saver) Save(dir string, entries []*slideshow.Entry) (int, error) {
	if strings.TrimSpace(dir) == "" {
		return 0, errors.New("album directory is required")
	}

	imagesDir := filepath.Join(dir, ImagesDir)
	if err := os.MkdirAll(imagesDir, 0o755); err != nil {
		return 0, fmt.Errorf("mkdir: %w", err)
	}

	// Names are reserved in input order so collisions resolve the same way no
	// matter which render finishes first.
	reserved := map[string]bool{}
	jobs := []*job{}
	for _, e := range entries {
		if e == nil || strings.TrimSpace(e.Path) == "" {
			continue
		}
		if _, err := os.Stat(e.Path); err != nil {
			klog.V(1).Infof("skipping %s: %v", e.Path, err)
			continue
		}

		name := destName(imagesDir, e.Path, reserved)
		reserved[name] = true
		jobs = append(jobs, &job{e: e, dst: filepath.Join(imagesDir, name)})
	}

	if err := s.renderAll(jobs); err != nil {
		return 0, err
	}

	items := make([]string, 0, len(jobs))
	for _, j := range jobs {
		items = append(items, manifestItem(relPath(dir, j.out), j.e.Text, j.e.Emotion))
	}

	p := filepath.Join(dir, ManifestName)
	klog.Infof("writing %s with %d items", p, len(items))
	if err := os.WriteFile(p, []byte(manifest(items)), 0o644); err != nil {
		return 0, fmt.Errorf("write manifest: %w", err)
	}
	return len(jobs), nil
}

func (s *Saver) renderAll(jobs []*job) error {
	r := s.Renderer
	if r == nil {
		r = render.Renderer{}
	}

	pool := pond.NewPool(max(1, s.Workers))
	defer pool.StopAndWait()

	group := pool.NewGroup()
	for _, j := range jobs {
		j := j
		group.SubmitErr(func() error {
			out, err := r.Render(j.e.Path, j.dst, j.e)
			if err != nil {
				return fmt.Errorf("render %s: %w", j.e.Path, err)
			}
			if out == "" {
				out = j.dst
			}
			j.out = out
			return nil
		})
	}
	return group.Wait()
}

// relPath returns p relative to the album directory with forward slashes.
func relPath(dir string, p string) string {
	rel, err := filepath.Rel(dir, p)
	if err != nil || strings.HasPrefix(rel, "..") {
		return ImagesDir + "/" + filepath.Base(p)
	}
	return filepath.ToSlash(rel)
}

func manifestItem(imagePath string, text string, emotion string) string {
	var b strings.Builder
	b.WriteString("    {\n")
	fmt.Fprintf(&b, "      \"imagePath\": \"%s\",\n", textcodec.Escape(imagePath))
	fmt.Fprintf(&b, "      \"text\": \"%s\",\n", textcodec.Escape(text))
	fmt.Fprintf(&b, "      \"emotion\": \"%s\"\n", textcodec.Escape(emotion))
	b.WriteString("    }")
	return b.String()
}

func manifest(items []string) string {
	var b strings.Builder
	b.WriteString("{\n  \"items\": [\n")
	for i, it := range items {
		b.WriteString(it)
		if i < len(items)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("  ]\n}")
	return b.String()
}

// Load reads the album in dir and returns its slides in manifest order, with
// absolute paths. Items whose image file is gone are dropped.
func Load(dir string) ([]*slideshow.Entry, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, ErrDirMissing
	}
	st, err := os.Stat(dir)
	if err != nil || !st.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrDirMissing, dir)
	}

	p := filepath.Join(dir, ManifestName)
	bs, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrManifestMissing, dir)
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	content := strings.TrimSpace(string(bs))
	if len(content) < 10 || !strings.Contains(content, `"items"`) {
		return nil, fmt.Errorf("%w: no items", ErrManifestMalformed)
	}

	start := strings.IndexByte(content, '[')
	end := strings.LastIndexByte(content, ']')
	if start < 0 || end < 0 || end <= start {
		return nil, fmt.Errorf("%w: items array not found", ErrManifestMalformed)
	}

	matches := itemPattern.FindAllStringSubmatch(content[start+1:end], -1)
	entries := []*slideshow.Entry{}
	for _, m := range matches {
		rel := textcodec.Unescape(m[1])
		ip := rel
		if !filepath.IsAbs(ip) {
			ip = filepath.Join(dir, filepath.FromSlash(rel))
		}
		if abs, err := filepath.Abs(ip); err == nil {
			ip = abs
		}

		if _, err := os.Stat(ip); err != nil {
			klog.Warningf("dropping %q from %s: %v", rel, p, err)
			continue
		}

		entries = append(entries, &slideshow.Entry{
			Path:    ip,
			Text:    textcodec.Unescape(m[2]),
			Emotion: textcodec.Unescape(m[3]),
		})
	}

	klog.Infof("loaded %d of %d items from %s", len(entries), len(matches), p)
	return entries, nil
}
