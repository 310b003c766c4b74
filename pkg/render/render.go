package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"k8s.io/klog/v2"

	"github.com/tstromberg/slideshow/pkg/slideshow"
)

const (
	border        = 28
	footerHeight  = 90
	footerPadding = 20
	maxLines      = 3
	cornerRadius  = 15
)

// Renderer draws a slide onto an emotion-colored frame with a caption footer
// and writes the result as PNG.
type Renderer struct {
	// MaxSide, when positive, downscales images whose longest side exceeds it.
	MaxSide int
}

// Render composes src for e and writes it to dst, returning the path written.
func (r Renderer) Render(src string, dst string, e *slideshow.Entry) (string, error) {
	img, err := imgio.Open(src)
	if err != nil {
		return "", fmt.Errorf("imgio.Open: %w", err)
	}

	if i := r.fit(img); i != nil {
		img = i
	}

	text, emotion := "", ""
	if e != nil {
		text, emotion = e.Text, e.Emotion
	}

	canvas := Frame(img, Lookup(emotion).Color(), Caption(text, emotion))

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("mkdir: %w", err)
	}
	if err := imgio.Save(dst, canvas, imgio.PNGEncoder()); err != nil {
		return "", fmt.Errorf("save: %w", err)
	}

	klog.V(1).Infof("rendered %s -> %s (%s)", src, dst, Lookup(emotion).Label)
	return dst, nil
}

// fit returns a downscaled copy of img, or nil if no scaling is needed.
func (r Renderer) fit(img image.Image) image.Image {
	x, y := img.Bounds().Dx(), img.Bounds().Dy()
	if r.MaxSide <= 0 || (x <= r.MaxSide && y <= r.MaxSide) || x == 0 || y == 0 {
		return nil
	}

	if x >= y {
		y = max(1, y*r.MaxSide/x)
		x = r.MaxSide
	} else {
		x = max(1, x*r.MaxSide/y)
		y = r.MaxSide
	}
	klog.V(1).Infof("scaling %v to %dx%d", img.Bounds(), x, y)
	return transform.Resize(img, x, y, transform.Lanczos)
}

// Frame returns img inside a rounded border of color c with caption drawn in a footer.
func Frame(img image.Image, c color.Color, caption string) *image.RGBA {
	b := img.Bounds()
	width := b.Dx() + border*2
	height := b.Dy() + border*2 + footerHeight

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	fillRounded(canvas, canvas.Bounds(), c, cornerRadius)
	draw.Draw(canvas, image.Rect(border, border, border+b.Dx(), border+b.Dy()), img, b.Min, draw.Over)

	if strings.TrimSpace(caption) != "" {
		drawCaption(canvas, caption, width, height)
	}
	return canvas
}

func drawCaption(canvas *image.RGBA, caption string, width int, height int) {
	footerWidth := width - border*2
	footerY := height - footerHeight - border/2
	footer := image.Rect(border, footerY, border+footerWidth, footerY+footerHeight)

	fillRounded(canvas, footer, color.RGBA{A: 190}, cornerRadius*2/3)

	face := basicfont.Face7x13
	d := &font.Drawer{Dst: canvas, Src: image.White, Face: face}
	lineHeight := face.Metrics().Height.Ceil()
	textY := footerY + footerPadding + face.Metrics().Ascent.Ceil()

	for _, line := range wrap(d, caption, footerWidth-footerPadding*2) {
		d.Dot = fixed.P(border+footerPadding, textY)
		d.DrawString(line)
		textY += lineHeight
	}
}

// wrap breaks s into at most maxLines lines no wider than width. Words that do
// not fit on the last line are dropped.
func wrap(d *font.Drawer, s string, width int) []string {
	lines := []string{}
	line := ""
	for _, w := range strings.Fields(s) {
		next := w
		if line != "" {
			next = line + " " + w
		}
		if d.MeasureString(next).Ceil() > width && line != "" {
			lines = append(lines, line)
			if len(lines) >= maxLines {
				return lines
			}
			line = w
			continue
		}
		line = next
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// fillRounded fills r with c, leaving the corners outside radius untouched.
func fillRounded(dst draw.Image, r image.Rectangle, c color.Color, radius int) {
	src := image.NewUniform(c)
	w, h := r.Dx(), r.Dy()
	for y := 0; y < h; y++ {
		inset := 0
		for inset < w/2 && outsideCorner(inset, y, w, h, radius) {
			inset++
		}
		row := image.Rect(r.Min.X+inset, r.Min.Y+y, r.Max.X-inset, r.Min.Y+y+1)
		draw.Draw(dst, row, src, image.Point{}, draw.Over)
	}
}

func outsideCorner(x, y, w, h, radius int) bool {
	cx, cy := -1, -1
	switch {
	case x < radius:
		cx = radius
	case x >= w-radius:
		cx = w - radius - 1
	}
	switch {
	case y < radius:
		cy = radius
	case y >= h-radius:
		cy = h - radius - 1
	}
	if cx < 0 || cy < 0 {
		return false
	}
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy > radius*radius
}

// Dimensions returns the pixel size of the image at path without decoding it fully.
func Dimensions(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	ic, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("unable to decode: %w", err)
	}
	return ic.Width, ic.Height, nil
}
