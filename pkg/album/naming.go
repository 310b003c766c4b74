package album

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var unsafeName = regexp.MustCompile(`[\\/:*?"<>|]`)

// destName picks the file name for the album copy of src inside imagesDir: the
// source's base name with a .png extension, suffixed _1, _2, ... until it clashes
// with neither an existing file nor a name already reserved by this save.
func destName(imagesDir string, src string, reserved map[string]bool) string {
	base := filepath.Base(src)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	taken := func(name string) bool {
		if reserved[name] {
			return true
		}
		_, err := os.Stat(filepath.Join(imagesDir, name))
		return err == nil
	}

	name := stem + ".png"
	for i := 1; taken(name); i++ {
		name = fmt.Sprintf("%s_%d.png", stem, i)
	}
	return name
}

// SanitizeName strips characters that are unsafe in a folder name.
func SanitizeName(s string) string {
	return strings.TrimSpace(unsafeName.ReplaceAllString(s, ""))
}

// UniqueDir returns a path under base for a new album called name. A blank name
// becomes album_<unix millis>; an existing path gets a _1, _2, ... suffix.
func UniqueDir(base string, name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("album_%d", time.Now().UnixMilli())
	}

	p := filepath.Join(base, name)
	for i := 1; exists(p); i++ {
		p = filepath.Join(base, fmt.Sprintf("%s_%d", name, i))
	}
	return p
}

func exists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
