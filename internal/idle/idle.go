// Package idle abstracts platform idle detection as a capability interface.
// The core only needs "seconds since last input"; platforms without support
// plug in the no-op provider.
package idle

import (
	"os"
	"strconv"
)

// Provider reports the seconds since the last user input.
type Provider interface {
	IdleSeconds() (int, error)
}

// NoopProvider always reports zero idle time. It is the default on platforms
// without idle detection, so idle auto-pause never triggers.
type NoopProvider struct{}

// IdleSeconds returns 0.
func (NoopProvider) IdleSeconds() (int, error) {
	return 0, nil
}

// StaticProvider reports a fixed idle time. Used by tests.
type StaticProvider struct {
	Seconds int
}

// IdleSeconds returns the fixed value.
func (p StaticProvider) IdleSeconds() (int, error) {
	return p.Seconds, nil
}

// EnvProvider reads the idle time from the WORKTRACKER_IDLE_SECONDS
// environment variable on every call. Useful for manual simulation.
type EnvProvider struct{}

// IdleSeconds parses the environment variable, reporting 0 when it is absent
// or unparsable.
func (EnvProvider) IdleSeconds() (int, error) {
	v := os.Getenv("WORKTRACKER_IDLE_SECONDS")
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, nil
	}
	return n, nil
}

// Detect returns the best provider for the current environment.
func Detect() Provider {
	if os.Getenv("WORKTRACKER_IDLE_SECONDS") != "" {
		return EnvProvider{}
	}
	return NoopProvider{}
}
