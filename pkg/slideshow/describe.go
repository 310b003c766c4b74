package slideshow

import (
	"fmt"
	"strings"
	"time"

	"github.com/barasher/go-exiftool"
	"k8s.io/klog/v2"
)

var exifDate = "2006:01:02 15:04:05"

// Meta is the subset of embedded image metadata shown alongside a slide.
type Meta struct {
	Width       int64
	Height      int64
	Taken       time.Time
	Make        string
	Model       string
	Title       string
	Description string
	Keywords    []string
}

// Describer reads image metadata with an exiftool subprocess.
type Describer struct {
	et *exiftool.Exiftool
}

// NewDescriber starts exiftool. It fails if the exiftool binary is unavailable.
func NewDescriber() (*Describer, error) {
	et, err := exiftool.NewExiftool()
	if err != nil {
		return nil, fmt.Errorf("exiftool: %w", err)
	}
	return &Describer{et: et}, nil
}

// Close stops the exiftool subprocess.
func (d *Describer) Close() error {
	return d.et.Close()
}

// Describe returns the metadata of the image at path. Missing optional tags are
// logged and left empty; missing dimensions are an error.
func (d *Describer) Describe(path string) (Meta, error) {
	m := Meta{}
	fis := d.et.ExtractMetadata(path)
	if len(fis) == 0 {
		return m, fmt.Errorf("no metadata for %q", path)
	}
	fi := fis[0]
	if fi.Err != nil {
		return m, fmt.Errorf("extract fail for %q: %w", path, fi.Err)
	}

	for k, v := range fi.Fields {
		klog.V(3).Infof("%q=%v", k, v)
	}

	var err error
	m.Height, err = fi.GetInt("ImageHeight")
	if err != nil {
		return m, fmt.Errorf("get ImageHeight: %w", err)
	}

	m.Width, err = fi.GetInt("ImageWidth")
	if err != nil {
		return m, fmt.Errorf("get ImageWidth: %w", err)
	}

	if m.Make, err = fi.GetString("Make"); err != nil {
		klog.V(1).Infof("unable to get make for %s: %v", path, err)
	}
	if m.Model, err = fi.GetString("Model"); err != nil {
		klog.V(1).Infof("unable to get model for %s: %v", path, err)
	}
	if m.Title, err = fi.GetString("Headline"); err != nil {
		klog.V(2).Infof("unable to get headline: %v", err)
	}
	if m.Description, err = fi.GetString("ImageDescription"); err != nil {
		klog.V(2).Infof("unable to get description: %v", err)
	}
	if m.Keywords, err = fi.GetStrings("Keywords"); err != nil {
		klog.V(2).Infof("unable to get keywords: %v", err)
	}

	ds, err := fi.GetString("DateTimeOriginal")
	if err != nil {
		klog.V(1).Infof("unable to get date time for %s: %v", path, err)
		return m, nil
	}

	m.Taken, err = time.Parse(exifDate, ds)
	if err != nil {
		return m, fmt.Errorf("parse time %q: %w", ds, err)
	}

	return m, nil
}

// String renders m as a one-line summary.
func (m Meta) String() string {
	parts := []string{fmt.Sprintf("%dx%d", m.Width, m.Height)}
	if !m.Taken.IsZero() {
		parts = append(parts, m.Taken.Format("2006-01-02 15:04"))
	}
	if camera := strings.TrimSpace(m.Make + " " + m.Model); camera != "" {
		parts = append(parts, camera)
	}
	if m.Title != "" {
		parts = append(parts, fmt.Sprintf("%q", m.Title))
	}
	if len(m.Keywords) > 0 {
		parts = append(parts, "["+strings.Join(m.Keywords, ", ")+"]")
	}
	return strings.Join(parts, " ")
}
