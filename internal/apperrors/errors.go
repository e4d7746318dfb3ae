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

// ErrForbidden indicates that the acting principal lacks rights over the target entity.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthenticated indicates missing or wrong credentials.
var ErrUnauthenticated = errors.New("unauthenticated")

// ErrInsufficientBalance indicates a transfer or move exceeds the available funds.
var ErrInsufficientBalance = errors.New("insufficient balance")

// ErrInvalidState indicates a reimbursement transition not permitted from the current status.
var ErrInvalidState = errors.New("invalid state transition")

// ErrPersistence indicates an underlying storage failure.
var ErrPersistence = errors.New("persistence error")

// AppError carries a storage or infrastructure failure together with an HTTP-ish code.
// It unwraps to ErrPersistence and to the original cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError wraps err as a persistence failure.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrPersistence}
	}
	return []error{ErrPersistence, e.Err}
}
