// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Pywal Palette Source - these keys govern where the generated color palette is read from.
const (
	WalColorsPath = "wal.colors_path"
)

// Waybar Stylesheet - these keys configure the stylesheet rewrite target and behavior.
const (
	WaybarStylePath      = "waybar.style_path"
	StylesheetBackup     = "stylesheet.backup"
	StylesheetAccent     = "stylesheet.accent_modules"
	StylesheetComplement = "stylesheet.complement_modules"
	StylesheetWorkspaces = "stylesheet.recolor_workspaces"
)

// Applied Selection History - these keys configure the persistence of applied color selections.
const (
	HistorySaveOnApply = "history.save_on_apply"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern general CLI behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
