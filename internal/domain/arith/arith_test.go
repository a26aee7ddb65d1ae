package arith_test

import (
	"math"
	"testing"

	arith "github.com/okian/marks/internal/domain/arith"
	"github.com/okian/marks/pkg/validation"
	"github.com/smartystreets/goconvey/convey"
)

func TestDivide(t *testing.T) {
	convey.Convey("Given finite operands", t, func() {
		convey.Convey("When dividing 10 by 2", func() {
			q, err := arith.Divide(10, 2)

			convey.Convey("Then it should return 5", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(q, convey.ShouldEqual, 5)
			})
		})

		convey.Convey("When dividing a negative dividend", func() {
			q, err := arith.Divide(-9, 3)

			convey.Convey("Then the sign should carry through", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(q, convey.ShouldEqual, -3)
			})
		})

		convey.Convey("When dividing zero by anything non-zero", func() {
			q, err := arith.Divide(0, 7)

			convey.Convey("Then the quotient should be zero", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(q, convey.ShouldEqual, 0)
			})
		})

		convey.Convey("When calling twice with identical operands", func() {
			first, _ := arith.Divide(22, 7)
			second, _ := arith.Divide(22, 7)

			convey.Convey("Then both quotients should be identical", func() {
				convey.So(first, convey.ShouldEqual, second)
			})
		})
	})

	convey.Convey("Given invalid operands", t, func() {
		convey.Convey("When the dividend is NaN", func() {
			_, err := arith.Divide(math.NaN(), 2)

			convey.Convey("Then it should require a finite dividend", func() {
				convey.So(validation.Is(err), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "dividend must be a finite number")
			})
		})

		convey.Convey("When the divisor is infinite", func() {
			_, err := arith.Divide(10, math.Inf(-1))

			convey.Convey("Then it should require a finite divisor", func() {
				convey.So(validation.Is(err), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "divisor must be a finite number")
			})
		})

		convey.Convey("When the divisor is zero", func() {
			_, err := arith.Divide(10, 0)

			convey.Convey("Then it should refuse to divide", func() {
				convey.So(validation.Is(err), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "cannot divide by zero")
			})
		})

		convey.Convey("When the quotient overflows to infinity", func() {
			_, err := arith.Divide(math.MaxFloat64, 0.5)

			convey.Convey("Then the post-condition guard should fire", func() {
				convey.So(validation.Is(err), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "quotient is not a finite number")
			})
		})
	})
}
