// Package apperr holds the error kinds shared by the marketplace use cases.
// Handlers map them onto HTTP statuses; nothing else inspects them.
package apperr

import "errors"

var (
	// ErrNotFound is returned when a referenced entity id does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a write would break a uniqueness rule.
	ErrConflict = errors.New("conflict")
)

// Validation is a missing or malformed input, or an illegal state move.
type Validation string

func (e Validation) Error() string { return string(e) }

// IsValidation reports whether err is (or wraps) a Validation error.
func IsValidation(err error) bool {
	var v Validation
	return errors.As(err, &v)
}
