package palette

import (
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestKeys(t *testing.T) {
	Convey("Keys", t, func() {
		keys := Keys()

		Convey("Contains all 18 required entries", func() {
			So(keys, ShouldHaveLength, 18)
			So(keys, ShouldContain, Indexed(0))
			So(keys, ShouldContain, Indexed(15))
			So(keys, ShouldContain, Background)
			So(keys, ShouldContain, Foreground)
		})
	})

	Convey("Indexed", t, func() {
		So(Indexed(0), ShouldEqual, Key("color0"))
		So(Indexed(15), ShouldEqual, Key("color15"))
	})
}

func TestValidate(t *testing.T) {
	Convey("Validate", t, func() {
		p := grayscale()

		Convey("Accepts a complete palette", func() {
			So(p.Validate(), ShouldBeNil)
		})

		Convey("Reports the missing key", func() {
			delete(p, Foreground)
			err := p.Validate()
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "foreground")
		})
	})
}

func TestHex(t *testing.T) {
	Convey("Hex", t, func() {
		p := Palette{Indexed(1): lo.Must(colorful.Hex("#aabbcc"))}
		So(p.Hex(Indexed(1)), ShouldEqual, "#aabbcc")
	})
}
