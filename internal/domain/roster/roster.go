// Package roster contains the student record model and its
// presentation helpers.
package roster

import (
	"strings"

	"github.com/okian/marks/pkg/validation"
)

// User represents a student identity record. Both name fields are
// required and must be non-empty after trimming surrounding
// whitespace.
type User struct {
	FirstName string `json:"first_name" yaml:"first_name"`
	LastName  string `json:"last_name"  yaml:"last_name"`
}

// FullName returns "<first> <last>" with both parts trimmed and
// joined by a single space.
func FullName(u *User) (string, error) {
	if u == nil {
		return "", validation.Errorf("user record cannot be nil")
	}
	first := strings.TrimSpace(u.FirstName)
	if first == "" {
		return "", validation.Errorf("first name cannot be empty")
	}
	last := strings.TrimSpace(u.LastName)
	if last == "" {
		return "", validation.Errorf("last name cannot be empty")
	}
	return first + " " + last, nil
}
