package utils

import (
	"errors"

	"reviewhub/internal/validators"
)

var (
	ErrReviewNotFound     = errors.New("review not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("authentication required")
	ErrForbidden          = errors.New("insufficient permissions")
	ErrDatabaseError      = errors.New("database error")
)

// ValidationFailedError carries every field violation collected in one pass so
// the client sees the full list at once.
type ValidationFailedError struct {
	Fields []validators.FieldError
}

func (e *ValidationFailedError) Error() string {
	return "validation failed"
}

// NewValidationFailed wraps collected field errors; callers unwrap it with
// errors.As in the response layer.
func NewValidationFailed(fields []validators.FieldError) error {
	return &ValidationFailedError{Fields: fields}
}
