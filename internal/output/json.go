package output

import (
	"github.com/manav03panchal/worktracker/internal/model"
)

// JSON response envelopes for machine-readable output.

// SessionResponse wraps a single session.
type SessionResponse struct {
	Session *model.WorkSession `json:"session"`
}

// StatusResponse reports the active session and live elapsed time.
type StatusResponse struct {
	Active  bool               `json:"active"`
	Session *model.WorkSession `json:"session,omitempty"`
	Elapsed int                `json:"elapsed_seconds"`
	Clock   string             `json:"elapsed"`
}

// DayResponse reports one day's totals against the goal.
type DayResponse struct {
	Date        string  `json:"date"`
	Seconds     int     `json:"seconds"`
	Hours       float64 `json:"hours"`
	GoalHours   int     `json:"goal_hours"`
	GoalReached bool    `json:"goal_reached"`
}

// ProgressResponse reports goal progress.
type ProgressResponse struct {
	Daily   *model.GoalProgress `json:"progress"`
	Weekly  int                 `json:"weekly_seconds"`
	Remains string              `json:"remaining"`
}

// AnalyticsResponse wraps the full analytics snapshot.
type AnalyticsResponse struct {
	Snapshot *model.Snapshot      `json:"snapshot"`
	Monthly  []model.MonthlyTotal `json:"monthly,omitempty"`
	Yearly   []model.YearlyTotal  `json:"yearly,omitempty"`
}

// StreakResponse reports the current goal streak.
type StreakResponse struct {
	Days int `json:"streak_days"`
}

// SettingsResponse lists settings key/value pairs.
type SettingsResponse struct {
	Settings []model.Setting `json:"settings"`
}

// ErrorResponse reports a command failure.
type ErrorResponse struct {
	Error string `json:"error"`
}
