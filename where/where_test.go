package where

import (
	"strings"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"

	"github.com/walbar-cli/walbar/filesystem"
	"github.com/walbar-cli/walbar/key"
)

func init() {
	// Use in-memory filesystem for tests to avoid creating real directories
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Cache()", func() {
			path := Cache()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})
	})
}

func TestExternalPaths(t *testing.T) {
	Convey("WalColors()", t, func() {
		Convey("Defaults to the pywal cache location", func() {
			viper.Set(key.WalColorsPath, "")
			So(strings.HasSuffix(WalColors(), "wal/colors.json"), ShouldBeTrue)
		})

		Convey("Honors the configured override", func() {
			viper.Set(key.WalColorsPath, "/tmp/custom/colors.json")
			So(WalColors(), ShouldEqual, "/tmp/custom/colors.json")
			viper.Set(key.WalColorsPath, "")
		})
	})

	Convey("WaybarStyle()", t, func() {
		Convey("Defaults to the waybar config location", func() {
			viper.Set(key.WaybarStylePath, "")
			So(strings.HasSuffix(WaybarStyle(), "waybar/style.css"), ShouldBeTrue)
		})

		Convey("Honors the configured override", func() {
			viper.Set(key.WaybarStylePath, "/tmp/custom/style.css")
			So(WaybarStyle(), ShouldEqual, "/tmp/custom/style.css")
			viper.Set(key.WaybarStylePath, "")
		})
	})
}
