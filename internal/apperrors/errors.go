package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested record could not be found.
var ErrNotFound = errors.New("record not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnauthenticated indicates that no owner identity was available for an
// operation that requires one.
var ErrUnauthenticated = errors.New("no authenticated user")

// ErrStore indicates a failure reported by the external transaction store.
var ErrStore = errors.New("store error")

// NewStoreError wraps a backend failure so callers can match it with
// errors.Is(err, ErrStore) while keeping the original cause in the chain.
func NewStoreError(op string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrStore, op, cause)
}

// NewValidationError tags a human-readable validation failure message.
func NewValidationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}
