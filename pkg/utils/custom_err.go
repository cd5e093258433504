package utils

import "errors"

var (
	ErrSolutionNotFound  = errors.New("solution not found")
	ErrInvalidSolutionID = errors.New("invalid solution id")
	ErrValidation        = errors.New("validation failed")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrDatabaseError     = errors.New("database error")
)

// ValidationError carries a message that is safe to show to the caller.
type ValidationError struct {
	Message string
}

func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
