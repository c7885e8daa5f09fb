// Package wal loads the color palette generated by pywal.
//
// pywal writes its extracted palette to colors.json with two objects: an
// indexed "colors" object and a "special" object holding the named
// background, foreground and cursor entries. This loader merges both into
// the 18-key palette consumed by the analyzer.
package wal

import (
	"encoding/json"
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/walbar-cli/walbar/filesystem"
	"github.com/walbar-cli/walbar/log"
	"github.com/walbar-cli/walbar/palette"
	"github.com/walbar-cli/walbar/where"
)

// document mirrors the layout of pywal's colors.json.
type document struct {
	Special map[string]string `json:"special"`
	Colors  map[string]string `json:"colors"`
}

// Load reads and parses the pywal palette from its well-known location.
func Load() (palette.Palette, error) {
	path := where.WalColors()

	exists, err := filesystem.API().Exists(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if !exists {
		return nil, fmt.Errorf("pywal palette not found at %s, run pywal first", path)
	}

	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	log.Debugf("loaded pywal palette from %s", path)
	return Parse(data)
}

// Parse decodes a colors.json document into a validated palette.
//
// Indexed entries are accepted under both schemas seen in the wild: bare
// indices ("0".."15") and prefixed keys ("color0".."color15"). Extra special
// entries such as "cursor" are ignored.
func Parse(data []byte) (palette.Palette, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse pywal palette: %w", err)
	}

	p := make(palette.Palette, 18)

	for name, hex := range doc.Colors {
		if !strings.HasPrefix(name, "color") {
			name = "color" + name
		}
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("palette entry %s has invalid color %q: %w", name, hex, err)
		}
		p[palette.Key(name)] = c
	}

	for _, name := range []palette.Key{palette.Background, palette.Foreground} {
		hex, ok := doc.Special[string(name)]
		if !ok {
			continue
		}
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("palette entry %s has invalid color %q: %w", name, hex, err)
		}
		p[name] = c
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}
