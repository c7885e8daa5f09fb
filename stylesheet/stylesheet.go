// Package stylesheet rewrites the Waybar stylesheet with analyzed palette colors.
//
// The rewrite is surgical: only the hover and active rules of the configured
// module groups are replaced, referencing pywal's @-defined color variables.
// The rest of the stylesheet is left untouched, so user customizations
// survive recoloring.
package stylesheet

import (
	"fmt"
	"regexp"

	"github.com/spf13/viper"

	"github.com/walbar-cli/walbar/key"
	"github.com/walbar-cli/walbar/palette"
)

// Groups assigns Waybar modules to the two color roles.
type Groups struct {
	Accent     []string
	Complement []string
	Workspaces bool
}

// GroupsFromConfig builds the module groups from the active configuration.
func GroupsFromConfig() Groups {
	return Groups{
		Accent:     viper.GetStringSlice(key.StylesheetAccent),
		Complement: viper.GetStringSlice(key.StylesheetComplement),
		Workspaces: viper.GetBool(key.StylesheetWorkspaces),
	}
}

// hoverRule matches the complete `#<module>:hover { … }` block for a module.
func hoverRule(module string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`#%s:hover\s*\{[^}]*\}`, regexp.QuoteMeta(module)))
}

// Workspace button rules carry the `#waybar` scope in the stock stylesheet.
var (
	workspaceHoverRule  = regexp.MustCompile(`#waybar #workspaces button:hover\s*\{[^}]*\}`)
	workspaceActiveRule = regexp.MustCompile(`#waybar #workspaces button\.active\s*\{[^}]*\}`)
)

// replaceRule substitutes every match of re in css with replacement and
// reports how many rules were rewritten.
func replaceRule(css string, re *regexp.Regexp, replacement string) (string, int) {
	count := len(re.FindAllStringIndex(css, -1))
	if count == 0 {
		return css, 0
	}
	return re.ReplaceAllLiteralString(css, replacement), count
}

// Recolor rewrites the hover and active rules of css according to the
// selection and module groups. It returns the rewritten stylesheet and the
// number of rules that were replaced.
func Recolor(css string, p palette.Palette, sel palette.Selection, groups Groups) (string, int) {
	var total int

	accentText := p.TextColorKey(p[sel.Accent])
	for _, module := range groups.Accent {
		replacement := fmt.Sprintf(
			"#%s:hover {\n  background: @%s;\n  color: @%s;\n}",
			module, sel.Accent, accentText,
		)

		var n int
		css, n = replaceRule(css, hoverRule(module), replacement)
		total += n
	}

	complementText := p.TextColorKey(p[sel.Complement])
	for _, module := range groups.Complement {
		var replacement string
		if module == "backlight" {
			// Backlight keeps its @foreground background, so its text color
			// is resolved against the palette foreground instead.
			replacement = fmt.Sprintf(
				"#%s:hover {\n  background: @foreground;\n  color: @%s;\n}",
				module, p.TextColorKey(p[palette.Foreground]),
			)
		} else {
			replacement = fmt.Sprintf(
				"#%s:hover {\n  background: @%s;\n  color: @%s;\n}",
				module, sel.Complement, complementText,
			)
		}

		var n int
		css, n = replaceRule(css, hoverRule(module), replacement)
		total += n
	}

	if groups.Workspaces {
		var n int

		css, n = replaceRule(css, workspaceHoverRule, fmt.Sprintf(
			"#waybar #workspaces button:hover {\n  background: @%s;\n  color: @%s;\n}",
			sel.Accent, accentText,
		))
		total += n

		css, n = replaceRule(css, workspaceActiveRule, fmt.Sprintf(
			"#waybar #workspaces button.active {\n  background: @%s;\n  color: @%s;\n  font-weight: bold;\n}",
			sel.Accent, accentText,
		))
		total += n
	}

	return css, total
}
