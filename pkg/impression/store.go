// Package impression keeps per-image impressions outside of any album, in a
// single file keyed by absolute image path.
package impression

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"k8s.io/klog/v2"

	"github.com/tstromberg/slideshow/pkg/slideshow"
	"github.com/tstromberg/slideshow/pkg/textcodec"
)

// FileName is the default store file name.
const FileName = "impressions.json"

var quoted = `"((?:\\.|[^\\"])*)"`

var entryPattern = regexp.MustCompile(`(?s)` + quoted + `\s*:\s*\{\s*"text"\s*:\s*` + quoted +
	`\s*,\s*"emotion"\s*:\s*` + quoted + `\s*\}\s*(?:,|$)`)

// Record is the impression stored for one image.
type Record struct {
	Text    string
	Emotion string
}

// Store is a write-through map from image path to Record. The backing file is
// read on first use and rewritten in full on every Set. It is safe for
// concurrent use.
type Store struct {
	mu      sync.Mutex
	path    string
	records map[string]Record
	loaded  bool
}

// New returns a store backed by path. Nothing is read until first use.
func New(path string) *Store {
	return &Store{path: path, records: map[string]Record{}}
}

// DefaultPath returns the per-user location of the store file.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "slideshow", FileName), nil
}

// Path returns the backing file.
func (s *Store) Path() string {
	return s.path
}

// Get returns the record for path, if any.
func (s *Store) Get(path string) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded()

	r, ok := s.records[path]
	return r, ok
}

// Set stores text and emotion for path and persists the whole store. When both
// are blank the record is removed instead. A blank path is ignored.
func (s *Store) Set(path string, text string, emotion string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded()

	if strings.TrimSpace(path) == "" {
		return nil
	}

	r := Record{Text: text, Emotion: emotion}
	if blank(r.Text) {
		r.Text = ""
	}
	if blank(r.Emotion) {
		r.Emotion = ""
	}

	if r.Text == "" && r.Emotion == "" {
		delete(s.records, path)
	} else {
		s.records[path] = r
	}

	if err := s.persist(); err != nil {
		klog.Errorf("persist %s: %v", s.path, err)
		return fmt.Errorf("persist: %w", err)
	}
	return nil
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded()
	return len(s.records)
}

// Paths returns the stored image paths in sorted order.
func (s *Store) Paths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded()
	return s.sortedKeys()
}

// Annotate copies stored impressions onto the entries of c with a matching
// path. Entries without a record are left alone. It returns the number annotated.
func (s *Store) Annotate(c *slideshow.Collection) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded()

	n := 0
	for _, e := range c.Entries() {
		r, ok := s.records[e.Path]
		if !ok {
			continue
		}
		e.Text = r.Text
		e.Emotion = r.Emotion
		n++
	}
	return n
}

func (s *Store) ensureLoaded() {
	if s.loaded {
		return
	}
	s.loaded = true
	clear(s.records)

	bs, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return
	}
	if err != nil {
		klog.Warningf("unable to read %s: %v", s.path, err)
		return
	}

	content := strings.TrimSpace(string(bs))
	if len(content) < 2 || content[0] != '{' || content[len(content)-1] != '}' {
		klog.Warningf("%s is not an object, starting empty", s.path)
		return
	}

	for _, m := range entryPattern.FindAllStringSubmatch(content[1:len(content)-1], -1) {
		s.records[textcodec.Unescape(m[1])] = Record{
			Text:    textcodec.Unescape(m[2]),
			Emotion: textcodec.Unescape(m[3]),
		}
	}
	klog.V(1).Infof("loaded %d impressions from %s", len(s.records), s.path)
}

func (s *Store) persist() error {
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir: %w", err)
		}
	}

	keys := s.sortedKeys()
	var b strings.Builder
	b.WriteString("{\n")
	for i, k := range keys {
		r := s.records[k]
		fmt.Fprintf(&b, "  \"%s\": {\n", textcodec.Escape(k))
		fmt.Fprintf(&b, "    \"text\": \"%s\",\n", textcodec.Escape(r.Text))
		fmt.Fprintf(&b, "    \"emotion\": \"%s\"\n", textcodec.Escape(r.Emotion))
		b.WriteString("  }")
		if i < len(keys)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("}")

	return os.WriteFile(s.path, []byte(b.String()), 0o644)
}

func (s *Store) sortedKeys() []string {
	keys := make([]string, 0, len(s.records))
	for k := range s.records {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
