// Package screenshots knows Steam's screenshot file conventions: which
// files count as screenshots and how uncompressed screenshot names encode
// the app they belong to.
package screenshots

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// imagePattern matches the formats Steam writes screenshots in.
const imagePattern = "*.{jpg,jpeg,png,bmp}"

// timestampLayout is the capture-time prefix of uncompressed screenshot
// names, e.g. 20170101010101.
const timestampLayout = "20060102150405"

// File describes a discovered screenshot. Files are never mutated, only
// copied or moved.
type File struct {
	Path  string
	Name  string
	AppID int
	Taken time.Time
}

// Parse extracts the app id (and, when present, the capture time) from an
// uncompressed screenshot path. Steam names these
// <timestamp>_<counter>_<appid>.<ext>; the app id is the last
// underscore-separated token of the stem. This convention is external to
// us and has changed between Steam client versions before, so it is kept
// in this one place.
func Parse(path string) (File, error) {
	name := filepath.Base(path)
	tokens := strings.Split(Stem(name), "_")
	if len(tokens) < 2 {
		return File{}, fmt.Errorf("screenshot name %q does not follow the Steam convention", name)
	}
	id, err := strconv.Atoi(tokens[len(tokens)-1])
	if err != nil || id <= 0 {
		return File{}, fmt.Errorf("no app id in screenshot name %q", name)
	}

	f := File{Path: path, Name: name, AppID: id}
	if taken, err := time.Parse(timestampLayout, tokens[0]); err == nil {
		f.Taken = taken
	}
	return f, nil
}

// IsImage reports whether a filename looks like a screenshot image.
func IsImage(name string) bool {
	ok, err := doublestar.Match(imagePattern, strings.ToLower(filepath.Base(name)))
	return err == nil && ok
}

// Stem returns a filename without its extension. Merge deduplicates by
// stem because Steam stores the compressed copy as .jpg and the
// uncompressed one as .png.
func Stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
