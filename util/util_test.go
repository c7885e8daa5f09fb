package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/walbar-cli/walbar/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "rule", "rules"), ShouldEqual, "1 rule")
		So(Quantify(2, "rule", "rules"), ShouldEqual, "2 rules")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete", t, func() {
		Convey("Removes a file", func() {
			So(filesystem.API().WriteFile("/tmp/delete-me", []byte("x"), 0644), ShouldBeNil)
			So(Delete("/tmp/delete-me"), ShouldBeNil)
			exists, _ := filesystem.API().Exists("/tmp/delete-me")
			So(exists, ShouldBeFalse)
		})

		Convey("Removes a directory recursively", func() {
			So(filesystem.API().MkdirAll("/tmp/dir/sub", 0755), ShouldBeNil)
			So(Delete("/tmp/dir"), ShouldBeNil)
			exists, _ := filesystem.API().Exists("/tmp/dir")
			So(exists, ShouldBeFalse)
		})

		Convey("Errors for a missing path", func() {
			So(Delete("/tmp/never-existed"), ShouldNotBeNil)
		})
	})
}
