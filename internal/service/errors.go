package service

import (
	"errors"
	"fmt"
)

// Service sentinel errors. The API layer maps these to status codes.
var (
	// ErrNotOwned indicates a calculation belongs to a different user.
	ErrNotOwned = errors.New("resource is owned by another user")

	// ErrUnknownNumber indicates a pillar lookup for a number outside the
	// interpretation table.
	ErrUnknownNumber = errors.New("number has no interpretation")
)

// ReadingServiceError wraps errors from the reading service with the
// operation that failed.
type ReadingServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ReadingServiceError.
func (e *ReadingServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("reading service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("reading service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ReadingServiceError) Unwrap() error {
	return e.Err
}

// NewReadingServiceError creates a new ReadingServiceError.
func NewReadingServiceError(operation, message string, err error) *ReadingServiceError {
	return &ReadingServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
