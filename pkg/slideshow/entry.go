package slideshow

import "strings"

// Entry is a single slide: an image path plus the user's impression of it.
type Entry struct {
	Path    string
	Text    string
	Emotion string
}

// NewEntry returns an entry for path with no impression.
func NewEntry(path string) *Entry {
	return &Entry{Path: path}
}

// HasImpression reports whether either the text or the emotion is set.
func (e *Entry) HasImpression() bool {
	return !isBlank(e.Text) || !isBlank(e.Emotion)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
