package convert

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	"px2svg/pkg/source"
)

// OutputExt is appended to converted file names.
const OutputExt = ".svg"

// DefaultFormats returns the recognized input suffixes and the decoder
// format each of them must contain.
func DefaultFormats() Formats {
	return NewFormats(map[string]string{
		".png":  "png",
		".jpg":  "jpeg",
		".jpeg": "jpeg",
		".gif":  "gif",
		".bmp":  "bmp",
		".tif":  "tiff",
		".tiff": "tiff",
		".webp": "webp",
	})
}

// NewFormats builds a Formats from a suffix to format name mapping. The
// mapping is copied.
func NewFormats(byExt map[string]string) Formats {
	f := Formats{byExt: make(map[string]string, len(byExt))}
	for ext, name := range byExt {
		f.byExt[ext] = name
		f.exts = append(f.exts, ext)
	}
	// longest suffix first, so ".tiff" wins over a shorter overlapping entry
	sort.Slice(f.exts, func(i, j int) bool {
		if len(f.exts[i]) != len(f.exts[j]) {
			return len(f.exts[i]) > len(f.exts[j])
		}
		return f.exts[i] < f.exts[j]
	})
	return f
}

// Formats is an immutable set of case sensitive file suffixes.
type Formats struct {
	byExt map[string]string
	exts  []string
}

// Match returns the recognized suffix of name and its format.
func (f Formats) Match(name string) (ext, format string, ok bool) {
	for _, e := range f.exts {
		if strings.HasSuffix(name, e) {
			return e, f.byExt[e], true
		}
	}
	return "", "", false
}

// Filter keeps the names with a recognized suffix, in order and without
// duplicates. Other names are dropped silently. URLs are matched on the
// base of their path.
func (f Formats) Filter(names []string) []string {
	return lo.Uniq(lo.Filter(names, func(name string, _ int) bool {
		_, _, ok := f.Match(source.LocalName(name))
		return ok
	}))
}

// OutputName replaces the recognized suffix of name with OutputExt.
func (f Formats) OutputName(name string) string {
	ext, _, _ := f.Match(name)
	return strings.TrimSuffix(name, ext) + OutputExt
}

// Extensions lists the recognized suffixes in alphabetical order.
func (f Formats) Extensions() []string {
	exts := append([]string(nil), f.exts...)
	sort.Strings(exts)
	return exts
}
