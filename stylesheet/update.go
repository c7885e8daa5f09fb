package stylesheet

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/walbar-cli/walbar/filesystem"
	"github.com/walbar-cli/walbar/history"
	"github.com/walbar-cli/walbar/key"
	"github.com/walbar-cli/walbar/log"
	"github.com/walbar-cli/walbar/palette"
	"github.com/walbar-cli/walbar/wal"
	"github.com/walbar-cli/walbar/where"
)

// Options controls a single recolor run.
type Options struct {
	// DryRun analyzes and rewrites in memory without touching the stylesheet.
	DryRun bool
	// Force recolors even when the palette is unchanged since the last run.
	Force bool
}

// Result summarizes a recolor run.
type Result struct {
	Selection      palette.Selection
	AccentHex      string
	ComplementHex  string
	RulesRewritten int
	Path           string
	// Skipped is set when the palette matches the last applied checksum.
	Skipped bool
}

// Update runs the full pipeline: load the pywal palette, analyze it, rewrite
// the Waybar stylesheet in place and record the applied selection.
func Update(opts Options) (Result, error) {
	p, err := wal.Load()
	if err != nil {
		return Result{}, err
	}

	sel, err := palette.Analyze(p)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Selection:     sel,
		AccentHex:     p.Hex(sel.Accent),
		ComplementHex: p.Hex(sel.Complement),
		Path:          where.WaybarStyle(),
	}

	checksum := history.Checksum(p)
	if !opts.Force && !opts.DryRun {
		last, err := history.Last()
		if err == nil && last.IsPresent() && last.MustGet().Checksum == checksum {
			log.Debugf("palette checksum %s unchanged, skipping recolor", checksum)
			result.Skipped = true
			return result, nil
		}
	}

	exists, err := filesystem.API().Exists(result.Path)
	if err != nil {
		return result, fmt.Errorf("stat %s: %w", result.Path, err)
	}
	if !exists {
		return result, fmt.Errorf("waybar stylesheet not found at %s", result.Path)
	}

	data, err := filesystem.API().ReadFile(result.Path)
	if err != nil {
		return result, fmt.Errorf("read %s: %w", result.Path, err)
	}

	css, rewritten := Recolor(string(data), p, sel, GroupsFromConfig())
	result.RulesRewritten = rewritten

	if opts.DryRun {
		return result, nil
	}

	if viper.GetBool(key.StylesheetBackup) {
		if err := filesystem.API().WriteFile(result.Path+".bak", data, 0644); err != nil {
			return result, fmt.Errorf("back up %s: %w", result.Path, err)
		}
	}

	if err := filesystem.API().WriteFile(result.Path, []byte(css), 0644); err != nil {
		return result, fmt.Errorf("write %s: %w", result.Path, err)
	}

	log.Infof("recolored %s: accent=%s complement=%s rules=%d",
		result.Path, sel.Accent, sel.Complement, rewritten)

	if viper.GetBool(key.HistorySaveOnApply) {
		record := &history.Applied{
			Accent:        sel.Accent,
			Complement:    sel.Complement,
			AccentHex:     result.AccentHex,
			ComplementHex: result.ComplementHex,
			Checksum:      checksum,
			Stylesheet:    result.Path,
			AppliedAt:     time.Now(),
		}
		if err := history.Save(record); err != nil {
			log.Warnf("record applied selection: %v", err)
		}
	}

	return result, nil
}
