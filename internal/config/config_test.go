package config_test

import (
	"errors"
	"testing"

	"github.com/okian/startlist/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.StartBib, convey.ShouldEqual, 1)
			convey.So(cfg.Delimiter, convey.ShouldEqual, ",")
			convey.So(cfg.DelimiterRune(), convey.ShouldEqual, ',')
			convey.So(cfg.Columns.Team, convey.ShouldEqual, "Equipe")
			convey.So(cfg.Columns.BirthDate, convey.ShouldEqual, "Date de naissance")
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given an otherwise valid config", t, func() {
		cfg := config.New()

		convey.Convey("When the start bib is negative", func() {
			cfg.StartBib = -1

			convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
		})

		convey.Convey("When the start bib is zero", func() {
			cfg.StartBib = 0

			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})

		convey.Convey("When the delimiter has several characters", func() {
			cfg.Delimiter = ";;"

			err := cfg.Validate()
			convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			convey.So(err.Error(), convey.ShouldContainSubstring, "delimiter")
		})

		convey.Convey("When the delimiter is a quote", func() {
			cfg.Delimiter = `"`

			convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
		})

		convey.Convey("When the delimiter is a tab", func() {
			cfg.Delimiter = "\t"

			convey.So(cfg.Validate(), convey.ShouldBeNil)
			convey.So(cfg.DelimiterRune(), convey.ShouldEqual, '\t')
		})

		convey.Convey("When a column name is blank", func() {
			cfg.Columns.Sex = "  "

			err := cfg.Validate()
			convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			convey.So(err.Error(), convey.ShouldContainSubstring, "columns.sex")
		})
	})
}
