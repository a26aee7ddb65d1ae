package validation_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/okian/marks/pkg/validation"
	"github.com/smartystreets/goconvey/convey"
)

func TestValidationErrors(t *testing.T) {
	convey.Convey("Given the validation error kind", t, func() {
		convey.Convey("When building an error with Errorf", func() {
			err := validation.Errorf("score at index %d must be finite", 3)

			convey.Convey("Then it should wrap the sentinel kind", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, validation.Err), convey.ShouldBeTrue)
				convey.So(validation.Is(err), convey.ShouldBeTrue)
			})

			convey.Convey("And the message should name the constraint", func() {
				convey.So(err.Error(), convey.ShouldContainSubstring, "score at index 3 must be finite")
			})
		})

		convey.Convey("When wrapping a validation error further", func() {
			err := validation.Errorf("divisor cannot be zero")
			wrapped := fmt.Errorf("compute report: %w", err)

			convey.Convey("Then the kind should survive wrapping", func() {
				convey.So(validation.Is(wrapped), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When checking an unrelated error", func() {
			err := errors.New("disk full")

			convey.Convey("Then it should not match the kind", func() {
				convey.So(validation.Is(err), convey.ShouldBeFalse)
			})
		})
	})
}
