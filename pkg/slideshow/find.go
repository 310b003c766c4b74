package slideshow

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/karrick/godirwalk"
	"k8s.io/klog/v2"
)

// AllFormats is the format filter that accepts every recognized image type.
const AllFormats = "*"

// Formats lists the format filters a user can choose from.
var Formats = []string{AllFormats, "*.png", "*.jpg", "*.jpeg", "*.gif", "*.bmp"}

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
}

// IsImage reports whether path has a recognized image extension (case-insensitive).
func IsImage(path string) bool {
	return imageExts[strings.ToLower(filepath.Ext(path))]
}

// MatchFormat reports whether path satisfies a format filter such as "*", "*.png", or "jpg".
func MatchFormat(path string, format string) bool {
	f := strings.ToLower(strings.TrimSpace(format))
	if f == "" || f == AllFormats {
		return true
	}
	f = strings.ReplaceAll(f, "*", "")
	f = strings.ReplaceAll(f, ".", "")
	return strings.HasSuffix(strings.ToLower(filepath.Base(path)), "."+f)
}

// Find recursively walks root for images matching format and returns their
// absolute paths in lexical walk order. A missing root is not an error: it
// simply has no images.
func Find(root string, format string) ([]string, error) {
	found := []string{}
	if strings.TrimSpace(root) == "" {
		return found, nil
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return found, nil
	}

	st, err := os.Stat(abs)
	if err != nil || !st.IsDir() {
		klog.V(1).Infof("%s is not a directory, nothing to find", abs)
		return found, nil
	}

	err = godirwalk.Walk(abs, &godirwalk.Options{
		Callback: func(path string, de *godirwalk.Dirent) error {
			if path != abs && filepath.Base(path)[0] == '.' {
				return godirwalk.SkipThis
			}

			if de.IsDir() {
				return nil
			}

			if !IsImage(path) || !MatchFormat(path, format) {
				return nil
			}

			klog.V(2).Infof("found %s", path)
			found = append(found, path)
			return nil
		},
		ErrorCallback: func(path string, err error) godirwalk.ErrorAction {
			klog.Warningf("skipping %s: %v", path, err)
			return godirwalk.SkipNode
		},
	})

	return found, err
}
