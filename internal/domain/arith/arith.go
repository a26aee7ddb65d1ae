// Package arith provides checked arithmetic helpers.
package arith

import (
	"math"

	"github.com/okian/marks/pkg/validation"
)

// Divide returns dividend / divisor. Both operands must be finite,
// the divisor must be non-zero, and the quotient itself must be
// finite (division of a huge dividend by a tiny divisor can overflow
// to infinity even when both guards pass).
func Divide(dividend, divisor float64) (float64, error) {
	if !isFinite(dividend) {
		return 0, validation.Errorf("dividend must be a finite number")
	}
	if !isFinite(divisor) {
		return 0, validation.Errorf("divisor must be a finite number")
	}
	if divisor == 0 {
		return 0, validation.Errorf("cannot divide by zero")
	}
	q := dividend / divisor
	if !isFinite(q) {
		return 0, validation.Errorf("quotient is not a finite number")
	}
	return q, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
