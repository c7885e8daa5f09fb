package stylesheet

import (
	"fmt"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/walbar-cli/walbar/palette"
)

const sampleCSS = `#waybar {
  background: @background;
}

#network:hover {
  background: @color1;
  color: @foreground;
}

#custom-power:hover {
  background: red;
}

#battery:hover {
  background: blue;
}

#backlight:hover {
  background: @foreground;
}

#waybar #workspaces button:hover {
  background: shade(@background, 1.4);
}

#waybar #workspaces button.active {
  background: @color4;
}
`

func testPalette() palette.Palette {
	hexes := map[palette.Key]string{
		palette.Indexed(0):  "#1d2021",
		palette.Indexed(1):  "#cc6666",
		palette.Indexed(2):  "#8abe5e",
		palette.Indexed(3):  "#d8b452",
		palette.Indexed(4):  "#5f89ad",
		palette.Indexed(5):  "#a87caa",
		palette.Indexed(6):  "#5ea8a2",
		palette.Indexed(7):  "#cfd0d2",
		palette.Indexed(8):  "#4e5255",
		palette.Indexed(9):  "#e06c75",
		palette.Indexed(10): "#98c379",
		palette.Indexed(11): "#e5c07b",
		palette.Indexed(12): "#61afef",
		palette.Indexed(13): "#c678dd",
		palette.Indexed(14): "#56b6c2",
		palette.Indexed(15): "#f2f3f4",
		palette.Background:  "#1d2021",
		palette.Foreground:  "#cfd0d2",
	}

	p := make(palette.Palette, len(hexes))
	for k, hex := range hexes {
		p[k] = lo.Must(colorful.Hex(hex))
	}
	return p
}

func TestRecolor(t *testing.T) {
	Convey("Recolor", t, func() {
		p := testPalette()
		sel := lo.Must(palette.Analyze(p))
		groups := Groups{
			Accent:     []string{"network", "custom-power"},
			Complement: []string{"battery", "backlight"},
			Workspaces: true,
		}

		css, count := Recolor(sampleCSS, p, sel, groups)

		Convey("Rewrites every configured rule", func() {
			So(count, ShouldEqual, 6)
		})

		Convey("Accent modules reference the accent variable", func() {
			expected := fmt.Sprintf("#network:hover {\n  background: @%s;", sel.Accent)
			So(css, ShouldContainSubstring, expected)
			So(css, ShouldContainSubstring, fmt.Sprintf("#custom-power:hover {\n  background: @%s;", sel.Accent))
		})

		Convey("Complement modules reference the complement variable", func() {
			So(css, ShouldContainSubstring, fmt.Sprintf("#battery:hover {\n  background: @%s;", sel.Complement))
		})

		Convey("Backlight keeps its foreground background", func() {
			So(css, ShouldContainSubstring, "#backlight:hover {\n  background: @foreground;")
		})

		Convey("Workspace rules use the accent, active adds bold", func() {
			So(css, ShouldContainSubstring, fmt.Sprintf("#waybar #workspaces button:hover {\n  background: @%s;", sel.Accent))
			So(css, ShouldContainSubstring, "font-weight: bold;")
		})

		Convey("Untouched rules survive", func() {
			So(css, ShouldContainSubstring, "#waybar {\n  background: @background;\n}")
		})

		Convey("Text colors are contrast-resolved per group", func() {
			accentText := p.TextColorKey(p[sel.Accent])
			So(css, ShouldContainSubstring, fmt.Sprintf("#network:hover {\n  background: @%s;\n  color: @%s;\n}", sel.Accent, accentText))
		})
	})

	Convey("Recolor with absent modules", t, func() {
		p := testPalette()
		sel := lo.Must(palette.Analyze(p))
		groups := Groups{Accent: []string{"does-not-exist"}}

		css, count := Recolor(sampleCSS, p, sel, groups)
		So(count, ShouldEqual, 0)
		So(css, ShouldEqual, sampleCSS)
	})
}
