package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Failure taxonomy. Each sentinel marks a different recovery path:
// BackendUnavailable degrades to the next classification strategy,
// NotFound falls back to prompting (config) or fails the run (pdf dir),
// InsertFailure is logged and processing continues with the next record.
var (
	ErrBackendUnavailable = errors.New("backend unavailable")
	ErrNotFound           = errors.New("resource not found")
	ErrInsertFailure      = errors.New("insert failed")
	ErrInvalidInput       = errors.New("invalid input")
)

// NewAppError builds an AppError wrapping cause.
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapError annotates err with message, passing nil through.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
