package services

import "errors"

var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrItemNotFound       = errors.New("inventory item not found")
)

// ValidationError carries a message that is safe to show to the caller.
// It matches ErrValidation with errors.Is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}
