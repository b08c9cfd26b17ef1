package model

import (
	"strings"
	"time"
)

// Schedule is the optional work-hours guidance configured via settings.
type Schedule struct {
	Enabled   bool     `json:"enabled"`
	WorkDays  []string `json:"work_days"` // short day names, e.g. "Mon"
	WorkStart string   `json:"work_start"`
	WorkEnd   string   `json:"work_end"`
}

// ParseWorkDays splits the CSV work_days setting into trimmed day names.
func ParseWorkDays(csv string) []string {
	var days []string
	for _, d := range strings.Split(csv, ",") {
		d = strings.TrimSpace(d)
		if d != "" {
			days = append(days, d)
		}
	}
	return days
}

// IncludesDay reports whether the given weekday is a scheduled work day.
func (s Schedule) IncludesDay(day time.Weekday) bool {
	name := day.String()[:3]
	for _, d := range s.WorkDays {
		if strings.EqualFold(d, name) {
			return true
		}
	}
	return false
}

// Guidance returns the schedule line shown by the status views: the work
// window on scheduled days, a hint otherwise, empty when disabled.
func (s Schedule) Guidance(now time.Time) string {
	if !s.Enabled {
		return ""
	}
	if s.IncludesDay(now.Weekday()) {
		return "Today schedule: " + s.WorkStart + " - " + s.WorkEnd
	}
	return "Today is outside scheduled work days"
}
