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

// ErrIntegrity indicates that stored ledger data violates a consistency rule.
var ErrIntegrity = errors.New("ledger integrity violation")

// ErrConflict indicates that a state transition lost a race with another writer.
var ErrConflict = errors.New("resource state conflict")

// ErrStaleStaging indicates that a session gained staged entries while it was
// being posted. It wraps ErrConflict; the caller should retry the post.
var ErrStaleStaging = fmt.Errorf("%w: staged entries changed during post", ErrConflict)

// AppError wraps infrastructure failures with an HTTP-ish status code.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError. err may be nil.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
