package tracker

import (
	"math"
	"sort"
	"time"

	"github.com/manav03panchal/worktracker/internal/model"
)

// Snapshot computes the analytics views over the trailing window of days
// ending today: per-day totals (oldest first), per-week totals keyed by the
// Monday each day belongs to, an hour-of-day histogram built from closed
// sessions' start hours, and per-day goal productivity.
func (e *Engine) Snapshot(days int) (*model.Snapshot, error) {
	if days <= 0 {
		days = 1
	}

	now := e.now()
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	start := end.AddDate(0, 0, -(days - 1))

	daily := make([]model.DailyTotal, 0, days)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		secs, err := e.DailySeconds(day)
		if err != nil {
			return nil, err
		}
		daily = append(daily, model.DailyTotal{
			Date:    day.Format(model.DateLayout),
			Seconds: secs,
			Hours:   RoundHours(secs),
		})
	}

	// Group days into weeks by the Monday each day belongs to.
	weekSecs := make(map[string]int)
	for i, d := range daily {
		monday := MondayOf(start.AddDate(0, 0, i)).Format(model.DateLayout)
		weekSecs[monday] += d.Seconds
	}
	weekKeys := make([]string, 0, len(weekSecs))
	for k := range weekSecs {
		weekKeys = append(weekKeys, k)
	}
	sort.Strings(weekKeys)
	weekly := make([]model.WeeklyTotal, 0, len(weekKeys))
	for _, k := range weekKeys {
		weekly = append(weekly, model.WeeklyTotal{
			WeekStart: k,
			Seconds:   weekSecs[k],
			Hours:     RoundHours(weekSecs[k]),
		})
	}

	// Hour-of-day histogram from closed sessions only, bucketed by start
	// hour. Seconds are summed exactly; hours are rounded once per bucket.
	closed, err := e.sessions.ClosedSince(start.Format(model.DateLayout))
	if err != nil {
		return nil, err
	}
	hourSecs := make(map[int]int)
	for _, s := range closed {
		hour := s.StartHour()
		if hour < 0 {
			continue
		}
		hourSecs[hour] += s.Duration
	}
	hourly := make(map[int]float64, len(hourSecs))
	for hour, secs := range hourSecs {
		hourly[hour] = RoundHours(secs)
	}

	goalHours, err := e.settings.Int(model.SettingDailyGoal, 8)
	if err != nil {
		return nil, err
	}
	productivity := make([]model.ProductivityPoint, 0, days)
	for _, d := range daily {
		percent := 0.0
		if goalHours > 0 {
			percent = math.Round(d.Hours/float64(goalHours)*100*10) / 10
		}
		productivity = append(productivity, model.ProductivityPoint{
			Date:    d.Date,
			Percent: percent,
		})
	}

	return &model.Snapshot{
		Daily:        daily,
		Weekly:       weekly,
		Hourly:       hourly,
		Productivity: productivity,
	}, nil
}
