// Package types contains common types used across the application
package types

// StudentResult represents the graded outcome for one student.
type StudentResult struct {
	FullName string  `json:"full_name"`
	Average  float64 `json:"average"`

	// Err records the validation failure for this student, if any.
	// A failed student still occupies a row in the report.
	Err string `json:"error,omitempty"`
}

// Failed reports whether grading this student hit a validation error.
func (r StudentResult) Failed() bool {
	return r.Err != ""
}
