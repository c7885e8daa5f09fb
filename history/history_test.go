package history

import (
	"testing"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/walbar-cli/walbar/filesystem"
	"github.com/walbar-cli/walbar/palette"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestRegistry(t *testing.T) {
	Convey("History registry", t, func() {
		record := &Applied{
			Accent:        palette.Key("color4"),
			Complement:    palette.Key("color11"),
			AccentHex:     "#5f89ad",
			ComplementHex: "#e5c07b",
			Checksum:      "abc",
			AppliedAt:     time.Now(),
		}

		Convey("Save then Last returns the record", func() {
			So(Save(record), ShouldBeNil)

			last, err := Last()
			So(err, ShouldBeNil)
			So(last.IsPresent(), ShouldBeTrue)
			So(last.MustGet().Accent, ShouldEqual, record.Accent)
		})

		Convey("Most recent record comes first", func() {
			So(Save(record), ShouldBeNil)

			newer := *record
			newer.Accent = palette.Key("color9")
			So(Save(&newer), ShouldBeNil)

			records, err := Get()
			So(err, ShouldBeNil)
			So(len(records), ShouldBeGreaterThanOrEqualTo, 2)
			So(records[0].Accent, ShouldEqual, palette.Key("color9"))
		})
	})
}

func TestChecksum(t *testing.T) {
	Convey("Checksum", t, func() {
		p := palette.Palette{
			palette.Indexed(1): lo.Must(colorful.Hex("#ff0000")),
			palette.Background: lo.Must(colorful.Hex("#000000")),
		}

		Convey("Is deterministic", func() {
			So(Checksum(p), ShouldEqual, Checksum(p))
		})

		Convey("Changes when a color changes", func() {
			q := palette.Palette{
				palette.Indexed(1): lo.Must(colorful.Hex("#00ff00")),
				palette.Background: lo.Must(colorful.Hex("#000000")),
			}
			So(Checksum(p), ShouldNotEqual, Checksum(q))
		})
	})
}
