package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller has no valid identity.
var ErrUnauthorized = errors.New("not authenticated")

// ErrForbidden indicates that the caller lacks the required capability on the target resource.
var ErrForbidden = errors.New("access denied")

// ErrInsufficientQuantity indicates a removal would drive a denomination count negative.
var ErrInsufficientQuantity = errors.New("insufficient bill quantity")

// ErrConflict indicates the operation conflicts with the current state of the resource.
var ErrConflict = errors.New("conflict with current state")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// AppError wraps an underlying error with a status code and a message
// suitable for logging. It unwraps to the underlying error so callers can
// keep using errors.Is against the sentinels above.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping the given error.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewConflictError creates an AppError that unwraps to ErrConflict.
func NewConflictError(message string) *AppError {
	return &AppError{Code: 409, Message: message, Err: ErrConflict}
}

// NewValidationFailedError creates an AppError that unwraps to
// ErrValidation, keeping the cause on the chain when one is given.
func NewValidationFailedError(message string, err error) *AppError {
	if err == nil {
		return &AppError{Code: 400, Message: message, Err: ErrValidation}
	}
	return &AppError{Code: 400, Message: message, Err: fmt.Errorf("%w: %w", ErrValidation, err)}
}
