// Package history tracks the color selections walbar has applied to the stylesheet.
package history

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"time"

	"github.com/metafates/gache"
	"github.com/samber/mo"

	"github.com/walbar-cli/walbar/filesystem"
	"github.com/walbar-cli/walbar/palette"
	"github.com/walbar-cli/walbar/where"
)

// maxRecords caps the number of retained history entries.
const maxRecords = 50

// Applied records a single selection application.
type Applied struct {
	Accent        palette.Key `json:"accent"`
	Complement    palette.Key `json:"complement"`
	AccentHex     string      `json:"accent_hex"`
	ComplementHex string      `json:"complement_hex"`
	Checksum      string      `json:"checksum"`
	Stylesheet    string      `json:"stylesheet"`
	AppliedAt     time.Time   `json:"applied_at"`
}

// cacher provides an abstracted, disk-backed registry for applied selections.
var cacher = gache.New[[]*Applied](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns the complete collection of applied selections, most recent first.
func Get() ([]*Applied, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return nil, nil
	}
	return cached, nil
}

// Last returns the most recently applied selection, if any.
func Last() (mo.Option[*Applied], error) {
	records, err := Get()
	if err != nil {
		return mo.None[*Applied](), err
	}
	if len(records) == 0 {
		return mo.None[*Applied](), nil
	}
	return mo.Some(records[0]), nil
}

// Save prepends a record to the registry, trimming it to the retention cap.
func Save(record *Applied) error {
	records, err := Get()
	if err != nil {
		return err
	}

	records = append([]*Applied{record}, records...)
	if len(records) > maxRecords {
		records = records[:maxRecords]
	}

	return cacher.Set(records)
}

// Checksum fingerprints a palette snapshot so unchanged palettes can be
// detected across invocations.
func Checksum(p palette.Palette) string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)

	h := sha256.New()
	for _, k := range keys {
		h.Write([]byte(k))
		h.Write([]byte(p.Hex(palette.Key(k))))
	}
	return hex.EncodeToString(h.Sum(nil))
}
