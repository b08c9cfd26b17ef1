// Package apperr provides the error taxonomy for Worktracker: conflicts the
// user can resolve, storage failures that indicate data-loss risk, and
// not-found conditions, which are represented as absent results rather than
// errors.
package apperr

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrSessionActive is returned when starting a session while one is
	// already active.
	ErrSessionActive = errors.New("a work session is already active")

	// ErrSessionNotFound is returned by lookups that require an existing
	// session row. EndSession does not use it; an unknown id there is a
	// no-op returning zero duration.
	ErrSessionNotFound = errors.New("session not found")
)

// StorageError wraps an I/O or corruption failure from the store. It is
// fatal to the calling operation and must propagate to the caller.
type StorageError struct {
	Op    string // the store operation that failed
	Cause error
}

func (e *StorageError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("storage failure: %v", e.Cause)
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

// NewStorageError creates a StorageError for the given operation.
func NewStorageError(op string, cause error) *StorageError {
	return &StorageError{Op: op, Cause: cause}
}

// IsConflict reports whether err is the active-session conflict.
func IsConflict(err error) bool {
	return errors.Is(err, ErrSessionActive)
}

// IsStorage reports whether err is (or wraps) a StorageError.
func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted additional context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
