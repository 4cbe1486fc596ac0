package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested entity was not found
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidInput indicates that the provided input is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateUser indicates that a user with the same email already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrInvalidCredentials indicates a failed login or an unresolvable token subject.
	// The message is deliberately generic: callers must not be able to tell an
	// unknown account from a wrong password.
	ErrInvalidCredentials = errors.New("incorrect username or password")

	// ErrForbidden indicates that the authenticated identity may not act on the resource
	ErrForbidden = errors.New("forbidden")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}
