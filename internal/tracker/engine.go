// Package tracker implements the aggregation engine: pure reads over the
// session store that compute daily/weekly/monthly/yearly totals, goal
// progress, and streaks. Every query is evaluated "as of now", so repeated
// calls can return different answers while a session is active.
package tracker

import (
	"fmt"
	"math"
	"time"

	"github.com/manav03panchal/worktracker/internal/model"
	"github.com/manav03panchal/worktracker/internal/storage"
)

// Engine computes derived totals over the session store.
type Engine struct {
	sessions *storage.SessionRepo
	settings *storage.SettingsRepo
	now      func() time.Time
}

// New creates an engine over the given store. The engine shares the store's
// clock.
func New(db *storage.DB) *Engine {
	return &Engine{
		sessions: storage.NewSessionRepo(db),
		settings: storage.NewSettingsRepo(db),
		now:      db.Now,
	}
}

// NewWithRepos creates an engine over existing repositories.
func NewWithRepos(sessions *storage.SessionRepo, settings *storage.SettingsRepo, clock func() time.Time) *Engine {
	if clock == nil {
		clock = time.Now
	}
	return &Engine{sessions: sessions, settings: settings, now: clock}
}

// DailySeconds returns the tracked seconds on the given day: the sum of
// closed-session durations plus, if a session is active on that day, its
// live elapsed time. An active session contributes only to the day it
// started on, even past midnight.
func (e *Engine) DailySeconds(day time.Time) (int, error) {
	date := day.Format(model.DateLayout)

	total, err := e.sessions.ClosedSecondsOn(date)
	if err != nil {
		return 0, err
	}

	active, err := e.sessions.ActiveOn(date)
	if err != nil {
		return 0, err
	}
	if active != nil {
		total += active.Elapsed(e.now())
	}

	return total, nil
}

// TodaySeconds returns the tracked seconds for today.
func (e *Engine) TodaySeconds() (int, error) {
	return e.DailySeconds(e.now())
}

// WeeklySeconds returns the tracked seconds for the ISO week (Monday through
// Sunday) containing today.
func (e *Engine) WeeklySeconds() (int, error) {
	monday := MondayOf(e.now())

	total := 0
	for i := 0; i < 7; i++ {
		secs, err := e.DailySeconds(monday.AddDate(0, 0, i))
		if err != nil {
			return 0, err
		}
		total += secs
	}
	return total, nil
}

// MonthlyHours returns hour totals for the n calendar months ending with the
// current month, oldest first. Only closed sessions are counted; months with
// no data report 0.
func (e *Engine) MonthlyHours(months int) ([]model.MonthlyTotal, error) {
	if months <= 0 {
		return nil, nil
	}

	now := e.now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
	start := first.AddDate(0, -(months - 1), 0)

	sessions, err := e.sessions.ClosedSince(start.Format(model.DateLayout))
	if err != nil {
		return nil, err
	}

	byMonth := make(map[string]int)
	for _, s := range sessions {
		if len(s.Date) >= 7 {
			byMonth[s.Date[:7]] += s.Duration
		}
	}

	totals := make([]model.MonthlyTotal, 0, months)
	for i := 0; i < months; i++ {
		key := start.AddDate(0, i, 0).Format("2006-01")
		totals = append(totals, model.MonthlyTotal{
			Month: key,
			Hours: RoundHours(byMonth[key]),
		})
	}
	return totals, nil
}

// YearlyHours returns hour totals for the n calendar years ending with the
// current year, oldest first. Closed sessions only.
func (e *Engine) YearlyHours(years int) ([]model.YearlyTotal, error) {
	if years <= 0 {
		return nil, nil
	}

	startYear := e.now().Year() - (years - 1)

	sessions, err := e.sessions.ClosedSince(fmt.Sprintf("%04d-01-01", startYear))
	if err != nil {
		return nil, err
	}

	byYear := make(map[string]int)
	for _, s := range sessions {
		if len(s.Date) >= 4 {
			byYear[s.Date[:4]] += s.Duration
		}
	}

	totals := make([]model.YearlyTotal, 0, years)
	for i := 0; i < years; i++ {
		key := fmt.Sprintf("%04d", startYear+i)
		totals = append(totals, model.YearlyTotal{
			Year:  key,
			Hours: RoundHours(byYear[key]),
		})
	}
	return totals, nil
}

// DailyGoalReached reports whether the tracked time on the given day meets
// the configured daily goal.
func (e *Engine) DailyGoalReached(day time.Time) (bool, error) {
	goalHours, err := e.settings.Int(model.SettingDailyGoal, 8)
	if err != nil {
		return false, err
	}

	secs, err := e.DailySeconds(day)
	if err != nil {
		return false, err
	}
	return secs >= goalHours*3600, nil
}

// ConsecutiveGoalDays returns the streak of consecutive days ending today on
// which the daily goal was reached. Today counts with its live total, so the
// streak can be 0 right up until the goal is crossed. The backward walk is
// capped at 365 days.
func (e *Engine) ConsecutiveGoalDays() (int, error) {
	today := e.now()

	streak := 0
	for i := 0; i < 365; i++ {
		reached, err := e.DailyGoalReached(today.AddDate(0, 0, -i))
		if err != nil {
			return streak, err
		}
		if !reached {
			break
		}
		streak++
	}
	return streak, nil
}

// Progress returns the live goal-progress view polled by the presentation
// layer.
func (e *Engine) Progress() (*model.GoalProgress, error) {
	dailyGoalHours, err := e.settings.Int(model.SettingDailyGoal, 8)
	if err != nil {
		return nil, err
	}
	weeklyGoalHours, err := e.settings.Int(model.SettingWeeklyGoal, 40)
	if err != nil {
		return nil, err
	}

	daily, err := e.TodaySeconds()
	if err != nil {
		return nil, err
	}
	weekly, err := e.WeeklySeconds()
	if err != nil {
		return nil, err
	}

	goalSecs := dailyGoalHours * 3600
	remaining := goalSecs - daily
	if remaining < 0 {
		remaining = 0
	}

	percent := 0.0
	if goalSecs > 0 {
		percent = float64(daily) / float64(goalSecs) * 100
	}

	return &model.GoalProgress{
		DailySeconds:      daily,
		WeeklySeconds:     weekly,
		DailyGoalSeconds:  goalSecs,
		WeeklyGoalSeconds: weeklyGoalHours * 3600,
		RemainingSeconds:  remaining,
		DailyPercent:      percent,
		GoalReached:       daily >= goalSecs && goalSecs > 0,
	}, nil
}

// MondayOf returns local midnight of the Monday of the ISO week containing t.
func MondayOf(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the week that started 6 days earlier
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -(weekday - 1))
}

// RoundHours converts seconds to hours rounded to 2 decimal places. Rounding
// happens once, at the output boundary; all summation stays in exact seconds.
func RoundHours(seconds int) float64 {
	return math.Round(float64(seconds)/3600*100) / 100
}
