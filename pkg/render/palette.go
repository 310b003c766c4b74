// Package render produces the emotion-framed album copies of slides.
package render

import (
	"fmt"
	"image/color"
	"strings"
)

// DefaultEmotion is the label used when a slide has no emotion.
const DefaultEmotion = "🙂 Neutral"

// Style is the presentation of one emotion.
type Style struct {
	Label string
	Hex   string
}

// Palette is the fixed set of emotions, default first.
var Palette = []Style{
	{Label: DefaultEmotion, Hex: "#9E9E9E"},
	{Label: "😊 Joy", Hex: "#FFC107"},
	{Label: "🤩 Admiration", Hex: "#FF6F61"},
	{Label: "😮 Surprise", Hex: "#03A9F4"},
	{Label: "😢 Sadness", Hex: "#5C6BC0"},
	{Label: "😌 Calm", Hex: "#4DB6AC"},
	{Label: "😎 Inspiration", Hex: "#8BC34A"},
}

// Labels returns the emotion labels in palette order.
func Labels() []string {
	ls := make([]string, 0, len(Palette))
	for _, s := range Palette {
		ls = append(ls, s.Label)
	}
	return ls
}

// Lookup finds the style for an emotion label. It accepts the full label or the
// bare word in any case ("joy"). Unknown and blank labels get the default style.
func Lookup(emotion string) Style {
	e := strings.TrimSpace(emotion)
	if e == "" {
		return Palette[0]
	}
	for _, s := range Palette {
		if s.Label == e || strings.EqualFold(word(s.Label), e) {
			return s
		}
	}
	return Palette[0]
}

// Normalize maps a bare emotion word to its full label. Other input is returned trimmed.
func Normalize(emotion string) string {
	e := strings.TrimSpace(emotion)
	if e == "" {
		return ""
	}
	for _, s := range Palette {
		if s.Label == e || strings.EqualFold(word(s.Label), e) {
			return s.Label
		}
	}
	return e
}

// word strips the leading emoji from a label.
func word(label string) string {
	if _, w, ok := strings.Cut(label, " "); ok {
		return w
	}
	return label
}

// Color returns the style's color.
func (s Style) Color() color.RGBA {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s.Hex, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{R: 0x9e, G: 0x9e, B: 0x9e, A: 0xff}
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Caption builds the text drawn under a slide: the emotion (or the default
// label) followed by the impression text, if any.
func Caption(text string, emotion string) string {
	c := strings.TrimSpace(emotion)
	if c == "" {
		c = DefaultEmotion
	}
	if t := strings.TrimSpace(text); t != "" {
		c += " - " + t
	}
	return c
}
