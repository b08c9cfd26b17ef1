package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStorageError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewStorageError("insert session", cause)

	assert.Contains(t, err.Error(), "insert session")
	assert.Contains(t, err.Error(), "disk full")
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsStorage(err))

	// Still detectable through further wrapping.
	wrapped := fmt.Errorf("outer: %w", err)
	assert.True(t, IsStorage(wrapped))
}

func TestStorageErrorWithoutOp(t *testing.T) {
	err := NewStorageError("", errors.New("boom"))
	assert.Equal(t, "storage failure: boom", err.Error())
}

func TestIsConflict(t *testing.T) {
	assert.True(t, IsConflict(ErrSessionActive))
	assert.True(t, IsConflict(fmt.Errorf("start: %w", ErrSessionActive)))
	assert.False(t, IsConflict(ErrSessionNotFound))
	assert.False(t, IsConflict(nil))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))

	inner := errors.New("inner")
	err := Wrap(inner, "context")
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "context: inner", err.Error())

	err = Wrapf(inner, "op %d", 7)
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "op 7: inner", err.Error())
}
