package repo

import (
	"errors"
)

// ValidationError represents a validation error in the domain. Error()
// returns the bare message: it travels to clients verbatim in the error
// body. Field is server-side context only.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string { return e.Message }

// NewValidationError creates a new validation error
func NewValidationError(field, message string) ValidationError {
	return ValidationError{Field: field, Message: message}
}

// IsValidationError checks if an error is a validation error (including wrapped errors)
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// UnauthorizedError represents a request with no resolvable caller identity
type UnauthorizedError struct {
	Message string
}

func (e UnauthorizedError) Error() string { return e.Message }

// NewUnauthorizedError constructs UnauthorizedError
func NewUnauthorizedError(message string) UnauthorizedError {
	return UnauthorizedError{Message: message}
}

// IsUnauthorizedError checks if error is UnauthorizedError
func IsUnauthorizedError(err error) bool {
	var ue UnauthorizedError
	return errors.As(err, &ue)
}

// AccessDeniedError represents an ownership or visibility violation
type AccessDeniedError struct {
	Message string
}

func (e AccessDeniedError) Error() string { return e.Message }

// NewAccessDeniedError constructs AccessDeniedError
func NewAccessDeniedError(message string) AccessDeniedError {
	return AccessDeniedError{Message: message}
}

// IsAccessDeniedError checks if error is AccessDeniedError
func IsAccessDeniedError(err error) bool {
	var ae AccessDeniedError
	return errors.As(err, &ae)
}

// NotFoundError represents a missing resource
type NotFoundError struct {
	Field   string
	Message string
}

func (e NotFoundError) Error() string { return e.Message }

// NewNotFoundError constructs NotFoundError
func NewNotFoundError(field, message string) NotFoundError {
	return NotFoundError{Field: field, Message: message}
}

// IsNotFoundError checks if error is NotFoundError
func IsNotFoundError(err error) bool {
	var ne NotFoundError
	return errors.As(err, &ne)
}

// ConflictError represents a unique constraint or duplicate resource error
type ConflictError struct {
	Field   string
	Message string
}

func (e ConflictError) Error() string { return e.Message }

// NewConflictError constructs ConflictError
func NewConflictError(field, message string) ConflictError {
	return ConflictError{Field: field, Message: message}
}

// IsConflictError checks if error is ConflictError
func IsConflictError(err error) bool {
	var ce ConflictError
	return errors.As(err, &ce)
}
