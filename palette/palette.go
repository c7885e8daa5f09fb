// Package palette implements color analysis over a pywal-generated palette.
//
// A palette holds the 16 indexed colors plus the named background and
// foreground entries produced by pywal. The analyzer selects an accent color
// (the most vibrant entry), a complement color (the entry most hue-opposite
// to the accent), and computes WCAG contrast ratios used to pick readable
// text colors. All operations are pure functions over the palette snapshot;
// loading and applying results is the caller's concern.
package palette

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Key identifies a single palette entry.
type Key string

// Named palette entries.
const (
	Background Key = "background"
	Foreground Key = "foreground"
)

// Indexed returns the key of the i-th indexed palette entry (color0..color15).
func Indexed(i int) Key {
	return Key(fmt.Sprintf("color%d", i))
}

// Palette maps the 18 required keys (color0..color15, background, foreground)
// to their RGB values.
type Palette map[Key]colorful.Color

// Keys returns all 18 required palette keys.
func Keys() []Key {
	keys := make([]Key, 0, 18)
	for i := 0; i < 16; i++ {
		keys = append(keys, Indexed(i))
	}
	return append(keys, Background, Foreground)
}

// MissingKeyError reports a palette that lacks one of the 18 required entries.
type MissingKeyError struct {
	Key Key
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("palette is missing required entry %q", e.Key)
}

// Validate verifies that all 18 required entries are present.
func (p Palette) Validate() error {
	for _, k := range Keys() {
		if _, ok := p[k]; !ok {
			return &MissingKeyError{Key: k}
		}
	}
	return nil
}

// Hex returns the #rrggbb representation of the entry at the given key.
func (p Palette) Hex(k Key) string {
	return p[k].Hex()
}

// accentCandidates lists the keys eligible for accent selection in ascending
// index order. color0 and color7 are excluded since pywal reserves them for
// background and foreground roles.
func accentCandidates() []Key {
	keys := make([]Key, 0, 14)
	for i := 1; i <= 15; i++ {
		if i == 7 {
			continue
		}
		keys = append(keys, Indexed(i))
	}
	return keys
}

// complementCandidates lists the keys eligible for complement selection in
// ascending index order, excluding color0, color7 and the accent itself.
func complementCandidates(accent Key) []Key {
	keys := make([]Key, 0, 13)
	for i := 1; i <= 15; i++ {
		if i == 7 {
			continue
		}
		if k := Indexed(i); k != accent {
			keys = append(keys, k)
		}
	}
	return keys
}
