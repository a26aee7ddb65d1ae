// Package validation defines the single error kind produced by the
// guard clauses in this library. Errors carry a human-readable message
// naming the violated constraint and wrap Err so callers can branch
// with errors.Is without parsing message text.
package validation

import (
	"errors"
	"fmt"
)

// Err is the sentinel kind for all guard-clause failures.
var Err = errors.New("validation failed")

// Errorf builds a validation error with a formatted message.
// The resulting error satisfies errors.Is(err, validation.Err).
func Errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", Err, fmt.Sprintf(format, args...))
}

// Is reports whether err is a validation error.
func Is(err error) bool {
	return errors.Is(err, Err)
}
