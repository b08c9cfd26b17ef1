package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 10, 14, 30, 0, 0, time.Local)

func TestParseDateShortcuts(t *testing.T) {
	midnight := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)

	got, err := ParseDate("today", now)
	require.NoError(t, err)
	assert.Equal(t, midnight, got)

	got, err = ParseDate("TODAY", now)
	require.NoError(t, err)
	assert.Equal(t, midnight, got)

	got, err = ParseDate("", now)
	require.NoError(t, err)
	assert.Equal(t, midnight, got)

	got, err = ParseDate("yesterday", now)
	require.NoError(t, err)
	assert.Equal(t, midnight.AddDate(0, 0, -1), got)
}

func TestParseDateCalendarLayout(t *testing.T) {
	got, err := ParseDate("2026-01-05", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.Local), got)

	got, err = ParseDate("  2026-01-05  ", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.Local), got)
}

func TestParseDateNaturalLanguage(t *testing.T) {
	// 2026-03-10 is a Tuesday, so "last monday" is 2026-03-09.
	got, err := ParseDate("last monday", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local), got)
}

func TestParseDateUnrecognized(t *testing.T) {
	_, err := ParseDate("definitely not a date @@@", now)
	assert.Error(t, err)
}
