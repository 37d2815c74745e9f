package handler

import (
	"fmt"

	"mdr/internal/errors"
)

// retryableError wraps an error to indicate the message should be redelivered
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// IsRetryableError checks if an error is retryable
func IsRetryableError(err error) bool {
	_, ok := errors.AsType[*retryableError](err)

	return ok
}
