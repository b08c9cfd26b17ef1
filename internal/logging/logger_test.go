package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitTextHandler(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: slog.LevelInfo, Output: &buf})
	t.Cleanup(func() { Init(DefaultConfig()) })

	Info("session started", KeyOperation, "start", KeySessionID, 7)

	out := buf.String()
	assert.Contains(t, out, "session started")
	assert.Contains(t, out, "op=start")
	assert.Contains(t, out, "session_id=7")
}

func TestInitJSONHandler(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: slog.LevelDebug, JSON: true, Output: &buf})
	t.Cleanup(func() { Init(DefaultConfig()) })

	DebugLog("checker ran", "checker", "break")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "checker ran", entry["msg"])
	assert.Equal(t, "break", entry["checker"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: slog.LevelWarn, Output: &buf})
	t.Cleanup(func() { Init(DefaultConfig()) })

	Info("hidden")
	Warn("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: slog.LevelInfo, Output: &buf})
	t.Cleanup(func() { Init(DefaultConfig()) })

	With(KeyRunID, "abc").Info("scoped")
	assert.Contains(t, buf.String(), "run_id=abc")
}
