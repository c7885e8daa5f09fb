// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Walbar is the canonical application identifier used for filesystem paths and CLI branding.
	Walbar = "walbar"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// Tagline is the short application description used in CLI branding.
	Tagline = "pywal-driven color intelligence for the Waybar stylesheet"
)
