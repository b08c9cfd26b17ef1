// Package model defines the domain models for Worktracker.
package model

import (
	"time"
)

// Layouts for the calendar fields persisted by the store. Dates and
// times-of-day are stored separately, always in local wall-clock terms.
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04:05"
)

// WorkSession represents one start/stop cycle of tracked work.
type WorkSession struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`       // calendar day the session started
	StartTime string `json:"start_time"` // time-of-day the session started
	EndTime   string `json:"end_time,omitempty"`
	Duration  int    `json:"duration_seconds"` // 0 until the session is closed
	Active    bool   `json:"is_active"`
}

// StartInstant reconstructs the instant the session started from its stored
// date and time-of-day.
func (s *WorkSession) StartInstant() (time.Time, error) {
	return time.ParseInLocation(DateLayout+" "+ClockLayout, s.Date+" "+s.StartTime, time.Local)
}

// StartHour returns the hour-of-day (0-23) the session started, or -1 if the
// stored time-of-day is unparsable.
func (s *WorkSession) StartHour() int {
	t, err := time.Parse(ClockLayout, s.StartTime)
	if err != nil {
		return -1
	}
	return t.Hour()
}

// Elapsed returns the seconds from the session start to now. For closed
// sessions the fixed duration is returned instead.
func (s *WorkSession) Elapsed(now time.Time) int {
	if !s.Active {
		return s.Duration
	}
	start, err := s.StartInstant()
	if err != nil {
		return 0
	}
	secs := int(now.Sub(start).Seconds())
	if secs < 0 {
		return 0
	}
	return secs
}

// Day returns the session date as a time.Time at local midnight.
func (s *WorkSession) Day() (time.Time, error) {
	return time.ParseInLocation(DateLayout, s.Date, time.Local)
}
