package gender_test

import (
	"testing"

	"github.com/okian/startlist/internal/domain/gender"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCombine(t *testing.T) {
	Convey("Given two sex codes", t, func() {
		Convey("When both are male", func() {
			So(gender.Combine("M", "M"), ShouldEqual, gender.Male)
		})

		Convey("When both are female", func() {
			So(gender.Combine("F", "F"), ShouldEqual, gender.Female)
		})

		Convey("When the team is mixed", func() {
			So(gender.Combine("M", "F"), ShouldEqual, gender.Mixed)
			So(gender.Combine("F", "M"), ShouldEqual, gender.Mixed)
		})

		Convey("When codes are lower case", func() {
			So(gender.Combine("f", "m"), ShouldEqual, gender.Mixed)
			So(gender.Combine("m", "M"), ShouldEqual, gender.Male)
			So(gender.Combine(" f", "F "), ShouldEqual, gender.Female)
		})

		Convey("When a code is missing or unknown", func() {
			So(gender.Combine("", "M"), ShouldEqual, gender.Mixed)
			So(gender.Combine("", ""), ShouldEqual, gender.Mixed)
			So(gender.Combine("H", "H"), ShouldEqual, gender.Mixed)
		})
	})
}

func TestNormalize(t *testing.T) {
	Convey("Given raw sex codes", t, func() {
		So(gender.Normalize(" f "), ShouldEqual, "F")
		So(gender.Normalize(""), ShouldEqual, "")
	})
}
