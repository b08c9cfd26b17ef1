package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultRuntimeConfig(t *testing.T) {
	cfg := DefaultRuntimeConfig()

	assert.Equal(t, time.Second, cfg.Poll.Interval)
	assert.Equal(t, 30*time.Second, cfg.Notify.Timeout)
	assert.Equal(t, 3, cfg.Notify.MaxRetries)
	assert.Equal(t, []time.Duration{0, 5 * time.Second, 30 * time.Second}, cfg.Notify.RetryDelays)
	assert.Equal(t, time.Hour, cfg.Monitor.SleepThreshold)
	assert.Equal(t, []int{7, 30, 100}, cfg.Monitor.StreakMilestones)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("WORKTRACKER_POLL_INTERVAL", "250ms")
	t.Setenv("WORKTRACKER_NOTIFY_TIMEOUT", "5s")
	t.Setenv("WORKTRACKER_NOTIFY_MAX_RETRIES", "1")
	t.Setenv("WORKTRACKER_SLEEP_THRESHOLD", "10m")

	cfg := DefaultRuntimeConfig()
	cfg.ReloadFromEnv()

	assert.Equal(t, 250*time.Millisecond, cfg.Poll.Interval)
	assert.Equal(t, 5*time.Second, cfg.Notify.Timeout)
	assert.Equal(t, 1, cfg.Notify.MaxRetries)
	assert.Equal(t, 10*time.Minute, cfg.Monitor.SleepThreshold)
}

func TestEnvOverridesIgnoreInvalid(t *testing.T) {
	t.Setenv("WORKTRACKER_POLL_INTERVAL", "soon")
	t.Setenv("WORKTRACKER_NOTIFY_MAX_RETRIES", "-2")

	cfg := DefaultRuntimeConfig()
	cfg.ReloadFromEnv()

	assert.Equal(t, time.Second, cfg.Poll.Interval)
	assert.Equal(t, 3, cfg.Notify.MaxRetries)
}

func TestReset(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	cfg.Poll.Interval = time.Minute
	cfg.Reset()
	assert.Equal(t, time.Second, cfg.Poll.Interval)
}
