// Package grading computes percentage grades from raw score lists.
// Every entry point validates its input with guard clauses and fails
// fast on the first violated precondition.
package grading

import (
	"math"

	"github.com/okian/marks/pkg/validation"
)

// percentMultiplier converts a [0,1] ratio to a percentage.
const percentMultiplier = 100

// Average returns the class-average percentage for the given scores:
// (mean(scores) / totalPossible) * 100.
//
// Guards are checked in order and the first failure wins: the slice
// must be non-nil and non-empty, totalPossible must be a finite
// positive number, and every element must be a finite value in
// [0, totalPossible]. Element errors name the offending index.
func Average(scores []float64, totalPossible float64) (float64, error) {
	if scores == nil {
		return 0, validation.Errorf("scores must be a list")
	}
	if len(scores) == 0 {
		return 0, validation.Errorf("scores cannot be empty")
	}
	if !isFinite(totalPossible) {
		return 0, validation.Errorf("total possible points must be a finite number")
	}
	if totalPossible <= 0 {
		return 0, validation.Errorf("total possible points must be greater than zero")
	}
	for i, s := range scores {
		if !isFinite(s) {
			return 0, validation.Errorf("score at index %d must be a finite number", i)
		}
		if s < 0 {
			return 0, validation.Errorf("score at index %d cannot be negative", i)
		}
		if s > totalPossible {
			return 0, validation.Errorf("score at index %d cannot exceed total possible points", i)
		}
	}

	var sum float64
	for _, s := range scores {
		sum += s
	}
	mean := sum / float64(len(scores))
	pct := mean / totalPossible * percentMultiplier

	// Unreachable given the guards above; kept so a bad result can
	// never escape as NaN or Inf.
	if !isFinite(pct) {
		return 0, validation.Errorf("computed average is not a finite number")
	}
	return pct, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
