package gallery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var supportedExts = []string{".jpg", ".jpeg", ".png", ".gif"}

// IsSupportedExt reports whether ext (lowercase, with dot) can be decoded.
func IsSupportedExt(ext string) bool {
	for _, e := range supportedExts {
		if e == ext {
			return true
		}
	}
	return false
}

// SupportedExtsList returns the supported extensions for error messages.
func SupportedExtsList() string {
	return strings.Join(supportedExts, ", ")
}

// Scan returns the supported image files directly inside dir, sorted by name
// (case-insensitive).
func Scan(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading image dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if IsSupportedExt(ext) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no images in %s (supported: %s)", dir, SupportedExtsList())
	}

	sort.Slice(files, func(i, j int) bool {
		return strings.ToLower(filepath.Base(files[i])) < strings.ToLower(filepath.Base(files[j]))
	})
	return files, nil
}

// Cycle assigns refs to grid ids by wrapping around the list, so a grid
// larger than the gallery repeats images. It returns nil for an empty list.
func Cycle(refs []string) func(id int) string {
	if len(refs) == 0 {
		return nil
	}
	return func(id int) string {
		i := id % len(refs)
		if i < 0 {
			i += len(refs)
		}
		return refs[i]
	}
}
