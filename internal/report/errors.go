package report

import "errors"

// Sentinel kinds for report errors.
var (
	ErrDecodeRoster = errors.New("decode roster failed")
	ErrEmptyRoster  = errors.New("roster has no students")
)
