// Package config provides centralized configuration for Worktracker runtime
// values.
package config

import (
	"os"
	"strconv"
	"time"
)

// RuntimeConfig holds runtime values that are not user settings: they tune
// the process, not the tracking behavior, and are overridable via
// environment variables.
type RuntimeConfig struct {
	// Poll configuration (dashboard refresh)
	Poll PollConfig

	// Notify configuration (webhook delivery)
	Notify NotifyConfig

	// Monitor configuration (background checks)
	Monitor MonitorConfig
}

// PollConfig holds presentation-layer polling configuration.
type PollConfig struct {
	// Interval is how often live views refresh.
	// Default: 1s
	Interval time.Duration
}

// NotifyConfig holds webhook delivery configuration.
type NotifyConfig struct {
	// Timeout is the HTTP request timeout.
	// Default: 30s
	Timeout time.Duration

	// MaxRetries is the maximum number of retry attempts.
	// Default: 3
	MaxRetries int

	// RetryDelays are the delays between retry attempts.
	// Default: [0s, 5s, 30s]
	RetryDelays []time.Duration
}

// MonitorConfig holds background-check configuration.
type MonitorConfig struct {
	// SleepThreshold is the time gap that indicates the system was
	// sleeping. Checks are skipped after a longer gap.
	// Default: 1h
	SleepThreshold time.Duration

	// StreakMilestones are the streak lengths that trigger achievement
	// notifications.
	// Default: [7, 30, 100]
	StreakMilestones []int
}

// DefaultRuntimeConfig returns the default runtime configuration.
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		Poll: PollConfig{
			Interval: time.Second,
		},
		Notify: NotifyConfig{
			Timeout:    30 * time.Second,
			MaxRetries: 3,
			RetryDelays: []time.Duration{
				0,                // Immediate first attempt
				5 * time.Second,  // Retry after 5s
				30 * time.Second, // Retry after 30s
			},
		},
		Monitor: MonitorConfig{
			SleepThreshold:   time.Hour,
			StreakMilestones: []int{7, 30, 100},
		},
	}
}

// Global holds the global runtime configuration instance. It is initialized
// with defaults and can be overridden via environment variables.
var Global = initGlobal()

func initGlobal() *RuntimeConfig {
	cfg := DefaultRuntimeConfig()
	cfg.loadFromEnv()
	return cfg
}

func (c *RuntimeConfig) loadFromEnv() {
	if v := os.Getenv("WORKTRACKER_POLL_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.Poll.Interval = d
		}
	}
	if v := os.Getenv("WORKTRACKER_NOTIFY_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Notify.Timeout = d
		}
	}
	if v := os.Getenv("WORKTRACKER_NOTIFY_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.Notify.MaxRetries = n
		}
	}
	if v := os.Getenv("WORKTRACKER_SLEEP_THRESHOLD"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Monitor.SleepThreshold = d
		}
	}
}

// ReloadFromEnv reloads configuration from environment variables.
func (c *RuntimeConfig) ReloadFromEnv() {
	c.loadFromEnv()
}

// Reset resets the configuration to defaults. Primarily useful for testing.
func (c *RuntimeConfig) Reset() {
	defaults := DefaultRuntimeConfig()
	*c = *defaults
}
