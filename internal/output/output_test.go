package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/worktracker/internal/model"
)

func newTestFormatter(buf *bytes.Buffer) *Formatter {
	return &Formatter{
		Writer:    buf,
		Format:    FormatCLI,
		ColorMode: ColorNever,
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "0h 0m 0s", FormatClock(0))
	assert.Equal(t, "0h 0m 59s", FormatClock(59))
	assert.Equal(t, "0h 30m 0s", FormatClock(1800))
	assert.Equal(t, "1h 0m 1s", FormatClock(3601))
	assert.Equal(t, "25h 1m 5s", FormatClock(25*3600+65))
	assert.Equal(t, "0h 0m 0s", FormatClock(-5))
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "0.00h", FormatHours(0))
	assert.Equal(t, "2.50h", FormatHours(2.5))
	assert.Equal(t, "0.25h", FormatHours(0.25))
}

func TestIsColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	f := &Formatter{Writer: &buf, ColorMode: ColorAlways}
	assert.True(t, f.IsColorEnabled())

	f.ColorMode = ColorNever
	assert.False(t, f.IsColorEnabled())

	// Auto with a non-file writer disables color.
	f.ColorMode = ColorAuto
	assert.False(t, f.IsColorEnabled())
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	f := newTestFormatter(&buf)

	err := f.JSON(StatusResponse{Active: true, Elapsed: 90, Clock: FormatClock(90)})
	require.NoError(t, err)

	var got StatusResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.True(t, got.Active)
	assert.Equal(t, 90, got.Elapsed)
	assert.Equal(t, "0h 1m 30s", got.Clock)
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, strings.Repeat("░", 10), ProgressBar(0, 10))
	assert.Equal(t, strings.Repeat("█", 10), ProgressBar(100, 10))
	assert.Equal(t, strings.Repeat("█", 5)+strings.Repeat("░", 5), ProgressBar(50, 10))

	// Out of range values clamp.
	assert.Equal(t, strings.Repeat("█", 10), ProgressBar(250, 10))
	assert.Equal(t, strings.Repeat("░", 10), ProgressBar(-10, 10))
}

func TestCLIMessages(t *testing.T) {
	var buf bytes.Buffer
	c := NewCLIFormatter(newTestFormatter(&buf))

	c.Success("done")
	c.Warning("careful")
	c.Error("broken")
	c.Muted("aside")

	out := buf.String()
	assert.Contains(t, out, "✓ done")
	assert.Contains(t, out, "⚠ careful")
	assert.Contains(t, out, "✗ broken")
	assert.Contains(t, out, "aside")
}

func TestPrintSessionStopped(t *testing.T) {
	var buf bytes.Buffer
	c := NewCLIFormatter(newTestFormatter(&buf))

	c.PrintSessionStopped(&model.WorkSession{
		Date:      "2026-03-10",
		StartTime: "09:00:00",
		EndTime:   "09:30:00",
		Duration:  1800,
	})

	out := buf.String()
	assert.Contains(t, out, "Session ended")
	assert.Contains(t, out, "09:00:00")
	assert.Contains(t, out, "09:30:00")
	assert.Contains(t, out, "0h 30m 0s")
}

func TestPrintStatusNoSession(t *testing.T) {
	var buf bytes.Buffer
	c := NewCLIFormatter(newTestFormatter(&buf))

	c.PrintStatus(nil, 0)
	assert.Contains(t, buf.String(), "No active session")
}

func TestPrintProgress(t *testing.T) {
	var buf bytes.Buffer
	c := NewCLIFormatter(newTestFormatter(&buf))

	c.PrintProgress(&model.GoalProgress{
		DailySeconds:      14400,
		WeeklySeconds:     18000,
		DailyGoalSeconds:  28800,
		WeeklyGoalSeconds: 144000,
		RemainingSeconds:  14400,
		DailyPercent:      50,
	})

	out := buf.String()
	assert.Contains(t, out, "4h 0m 0s")
	assert.Contains(t, out, "50%")
	assert.Contains(t, out, "Remaining: 4h 0m 0s")
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	c := NewCLIFormatter(newTestFormatter(&buf))

	c.PrintTable(
		[]string{"Date", "Hours"},
		[]TableRow{
			{Columns: []string{"2026-03-09", "2.00h"}},
			{Columns: []string{"2026-03-10", "0.50h"}},
		},
	)

	out := buf.String()
	assert.Contains(t, out, "Date")
	assert.Contains(t, out, "2026-03-09")
	assert.Contains(t, out, "0.50h")

	// Empty tables print nothing.
	buf.Reset()
	c.PrintTable([]string{"Date"}, nil)
	assert.Empty(t, buf.String())
}
