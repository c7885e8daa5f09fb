// Package where implements a resolver for the application's well-known filesystem paths.
//
// Besides walbar's own config and cache directories it resolves the two external
// files the tool operates on: pywal's generated colors.json and the Waybar
// stylesheet. Both can be overridden through configuration.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/walbar-cli/walbar/constant"
	"github.com/walbar-cli/walbar/filesystem"
	"github.com/walbar-cli/walbar/key"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "WALBAR_CONFIG_PATH"

// ensureDir guarantees the existence of a directory at the specified path, creating it if necessary.
func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the absolute path to the primary application configuration directory.
// It prioritizes the XDG_CONFIG_HOME specification on Linux and equivalent user profile paths elsewhere.
// Direct override: The path resolution can be explicitly specified via the WALBAR_CONFIG_PATH environment variable.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Walbar))
}

// Cache resolves the absolute path to the application's persistent cache directory.
// Compliance: Adheres to the XDG_CACHE_HOME specification or platform-specific equivalent.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		// Fallback: Revert to a localized cache directory if the system-provided path is inaccessible.
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Walbar))
}

// Logs resolves the absolute path to the directory used for application diagnostic and audit logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// History resolves the absolute path to the applied-selection history file.
func History() string {
	return filepath.Join(Config(), "history.json")
}

// WalColors resolves the absolute path to pywal's generated colors.json.
// The default location is $XDG_CACHE_HOME/wal/colors.json; a custom path may be
// configured via the wal.colors_path key.
func WalColors() string {
	if custom := viper.GetString(key.WalColorsPath); custom != "" {
		return custom
	}

	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return filepath.Join(base, "wal", "colors.json")
}

// WaybarStyle resolves the absolute path to the Waybar stylesheet that gets recolored.
// The default location is $XDG_CONFIG_HOME/waybar/style.css; a custom path may be
// configured via the waybar.style_path key.
func WaybarStyle() string {
	if custom := viper.GetString(key.WaybarStylePath); custom != "" {
		return custom
	}

	base := lo.Must(os.UserConfigDir())
	return filepath.Join(base, "waybar", "style.css")
}

// Temp resolves a unique, volatile filesystem path for transient application artifacts.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.Walbar))
}
