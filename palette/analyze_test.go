package palette

import (
	"fmt"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

// grayscale returns a complete 18-key palette of desaturated grays.
func grayscale() Palette {
	p := make(Palette, 18)
	for i := 0; i < 16; i++ {
		level := 0x20 + i*0x0c
		p[Indexed(i)] = lo.Must(colorful.Hex(fmt.Sprintf("#%02x%02x%02x", level, level, level)))
	}
	p[Background] = lo.Must(colorful.Hex("#1a1a1a"))
	p[Foreground] = lo.Must(colorful.Hex("#e6e6e6"))
	return p
}

// wallpaperish returns a complete palette resembling typical pywal output.
func wallpaperish() Palette {
	hexes := map[Key]string{
		Indexed(0):  "#1d2021",
		Indexed(1):  "#cc6666",
		Indexed(2):  "#8abe5e",
		Indexed(3):  "#d8b452",
		Indexed(4):  "#5f89ad",
		Indexed(5):  "#a87caa",
		Indexed(6):  "#5ea8a2",
		Indexed(7):  "#cfd0d2",
		Indexed(8):  "#4e5255",
		Indexed(9):  "#e06c75",
		Indexed(10): "#98c379",
		Indexed(11): "#e5c07b",
		Indexed(12): "#61afef",
		Indexed(13): "#c678dd",
		Indexed(14): "#56b6c2",
		Indexed(15): "#f2f3f4",
		Background:  "#1d2021",
		Foreground:  "#cfd0d2",
	}

	p := make(Palette, len(hexes))
	for k, hex := range hexes {
		p[k] = lo.Must(colorful.Hex(hex))
	}
	return p
}

func TestSelectAccent(t *testing.T) {
	Convey("SelectAccent", t, func() {
		Convey("Never returns color0 or color7", func() {
			for _, p := range []Palette{grayscale(), wallpaperish()} {
				accent := SelectAccent(p)
				So(accent, ShouldNotEqual, Indexed(0))
				So(accent, ShouldNotEqual, Indexed(7))
			}
		})

		Convey("Picks the single saturated entry among grays", func() {
			p := grayscale()
			p[Indexed(1)] = lo.Must(colorful.Hex("#ff0000"))
			So(SelectAccent(p), ShouldEqual, Indexed(1))
		})

		Convey("Resolves ties to the lowest index", func() {
			p := grayscale()
			p[Indexed(3)] = lo.Must(colorful.Hex("#ff0000"))
			p[Indexed(9)] = lo.Must(colorful.Hex("#ff0000"))
			So(SelectAccent(p), ShouldEqual, Indexed(3))
		})

		Convey("Falls back to color1 for an empty palette", func() {
			So(SelectAccent(Palette{}), ShouldEqual, Indexed(1))
		})
	})
}

func TestSelectComplement(t *testing.T) {
	Convey("SelectComplement", t, func() {
		Convey("Never returns the accent itself, color0 or color7", func() {
			for _, p := range []Palette{grayscale(), wallpaperish()} {
				accent := SelectAccent(p)
				complement := SelectComplement(p, accent)
				So(complement, ShouldNotEqual, accent)
				So(complement, ShouldNotEqual, Indexed(0))
				So(complement, ShouldNotEqual, Indexed(7))
			}
		})

		Convey("Picks a pure cyan against a pure red accent", func() {
			p := grayscale()
			p[Indexed(1)] = lo.Must(colorful.Hex("#ff0000"))
			p[Indexed(6)] = lo.Must(colorful.Hex("#00ffff"))
			So(SelectComplement(p, Indexed(1)), ShouldEqual, Indexed(6))
		})

		Convey("Falls back to color2 when the accent entry is absent", func() {
			So(SelectComplement(Palette{}, Indexed(1)), ShouldEqual, Indexed(2))
		})
	})
}

func TestContrastRatio(t *testing.T) {
	black := lo.Must(colorful.Hex("#000000"))
	white := lo.Must(colorful.Hex("#ffffff"))

	Convey("ContrastRatio", t, func() {
		Convey("Is symmetric", func() {
			p := wallpaperish()
			a, b := p[Indexed(4)], p[Indexed(11)]
			So(ContrastRatio(a, b), ShouldEqual, ContrastRatio(b, a))
		})

		Convey("Is 1.0 for identical colors", func() {
			for _, c := range wallpaperish() {
				So(ContrastRatio(c, c), ShouldEqual, 1.0)
			}
		})

		Convey("Is about 21 for black on white", func() {
			So(ContrastRatio(black, white), ShouldBeBetween, 20.9, 21.1)
		})

		Convey("Is never below 1.0", func() {
			p := wallpaperish()
			for _, a := range p {
				for _, b := range p {
					So(ContrastRatio(a, b), ShouldBeGreaterThanOrEqualTo, 1.0)
				}
			}
		})
	})
}

func TestBestTextColorFor(t *testing.T) {
	black := lo.Must(colorful.Hex("#000000"))
	white := lo.Must(colorful.Hex("#ffffff"))

	Convey("BestTextColorFor", t, func() {
		Convey("Picks the candidate with the higher contrast", func() {
			So(BestTextColorFor(white, black, white), ShouldResemble, black)
			So(BestTextColorFor(black, white, black), ShouldResemble, white)
		})

		Convey("Favors the foreground candidate on ties", func() {
			So(BestTextColorFor(white, black, black), ShouldResemble, black)
			gray := lo.Must(colorful.Hex("#808080"))
			So(BestTextColorFor(gray, white, white), ShouldResemble, white)
		})
	})

	Convey("TextColorKey", t, func() {
		p := wallpaperish()

		Convey("Picks foreground for a dark background", func() {
			So(p.TextColorKey(p[Background]), ShouldEqual, Foreground)
		})

		Convey("Picks background for a light module color", func() {
			So(p.TextColorKey(p[Indexed(15)]), ShouldEqual, Background)
		})
	})
}

func TestAnalyze(t *testing.T) {
	Convey("Analyze", t, func() {
		Convey("Returns a consistent selection for a complete palette", func() {
			p := wallpaperish()
			sel, err := Analyze(p)
			So(err, ShouldBeNil)
			So(sel.Accent, ShouldEqual, SelectAccent(p))
			So(sel.Complement, ShouldEqual, SelectComplement(p, sel.Accent))
		})

		Convey("Rejects an incomplete palette", func() {
			p := wallpaperish()
			delete(p, Indexed(12))

			_, err := Analyze(p)
			So(err, ShouldNotBeNil)

			var missing *MissingKeyError
			So(err, ShouldHaveSameTypeAs, missing)
		})
	})
}
