package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("record not found")
	ErrForbidden       = errors.New("operation not permitted")
	ErrValidation      = errors.New("validation failed")
	ErrAlreadyReviewed = errors.New("submission already reviewed")
)

// Validationf wraps ErrValidation so callers can test with errors.Is.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}
