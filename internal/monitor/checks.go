package monitor

import (
	"context"
	"fmt"
	"time"

	"github.com/manav03panchal/worktracker/internal/config"
	"github.com/manav03panchal/worktracker/internal/idle"
	"github.com/manav03panchal/worktracker/internal/model"
	"github.com/manav03panchal/worktracker/internal/output"
	"github.com/manav03panchal/worktracker/internal/storage"
	"github.com/manav03panchal/worktracker/internal/tracker"
)

// BreakChecker reminds the user to take a break after every break interval
// of continuous work in the active session.
type BreakChecker struct {
	sessions *storage.SessionRepo
	settings *storage.SettingsRepo
	now      func() time.Time

	// remindedCount tracks how many break reminders were already sent for
	// a session, so each interval crossing fires exactly once.
	remindedCount map[int64]int
}

// NewBreakChecker creates a break reminder checker.
func NewBreakChecker(sessions *storage.SessionRepo, settings *storage.SettingsRepo, clock func() time.Time) *BreakChecker {
	if clock == nil {
		clock = time.Now
	}
	return &BreakChecker{
		sessions:      sessions,
		settings:      settings,
		now:           clock,
		remindedCount: make(map[int64]int),
	}
}

// Name returns the checker name.
func (c *BreakChecker) Name() string { return "break" }

// Check fires a reminder for each break interval the active session has
// crossed since the last reminder.
func (c *BreakChecker) Check(_ context.Context, now time.Time) ([]Notification, error) {
	active, err := c.sessions.Active()
	if err != nil {
		return nil, err
	}
	if active == nil {
		// No active session, forget prior reminder state.
		c.remindedCount = make(map[int64]int)
		return nil, nil
	}

	intervalMin, err := c.settings.Int(model.SettingBreakIntervalMin, 60)
	if err != nil {
		return nil, err
	}
	if intervalMin <= 0 {
		return nil, nil
	}

	elapsed := active.Elapsed(now)
	crossings := elapsed / (intervalMin * 60)
	if crossings <= c.remindedCount[active.ID] {
		return nil, nil
	}
	c.remindedCount[active.ID] = crossings

	return []Notification{{
		Title: "Break Time",
		Message: fmt.Sprintf("You have been working for %s. Time to take a break!",
			output.FormatClock(elapsed)),
	}}, nil
}

// IdleChecker ends the active session when the user has been idle past the
// configured threshold.
type IdleChecker struct {
	sessions *storage.SessionRepo
	settings *storage.SettingsRepo
	provider idle.Provider
}

// NewIdleChecker creates an idle auto-pause checker.
func NewIdleChecker(sessions *storage.SessionRepo, settings *storage.SettingsRepo, provider idle.Provider) *IdleChecker {
	return &IdleChecker{sessions: sessions, settings: settings, provider: provider}
}

// Name returns the checker name.
func (c *IdleChecker) Name() string { return "idle" }

// Check ends the active session if the idle time exceeds the threshold.
func (c *IdleChecker) Check(_ context.Context, _ time.Time) ([]Notification, error) {
	if c.provider == nil {
		return nil, nil
	}

	active, err := c.sessions.Active()
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, nil
	}

	thresholdMin, err := c.settings.Int(model.SettingIdleThresholdMin, 10)
	if err != nil {
		return nil, err
	}
	if thresholdMin <= 0 {
		return nil, nil
	}

	idleSecs, err := c.provider.IdleSeconds()
	if err != nil {
		return nil, err
	}
	if idleSecs < thresholdMin*60 {
		return nil, nil
	}

	duration, err := c.sessions.End(active.ID)
	if err != nil {
		return nil, err
	}

	return []Notification{{
		Title: "Session Paused",
		Message: fmt.Sprintf("Paused due to inactivity after %s of work.",
			output.FormatClock(duration)),
	}}, nil
}

// GoalChecker alerts when today's tracked time crosses the goal alert
// threshold. The alert fires once per crossing: the flag resets when the
// percentage drops back below the threshold (a new day).
type GoalChecker struct {
	engine   *tracker.Engine
	settings *storage.SettingsRepo
	alerted  bool
}

// NewGoalChecker creates a goal alert checker.
func NewGoalChecker(engine *tracker.Engine, settings *storage.SettingsRepo) *GoalChecker {
	return &GoalChecker{engine: engine, settings: settings}
}

// Name returns the checker name.
func (c *GoalChecker) Name() string { return "goal" }

// Check fires the goal alert when the daily percentage crosses the threshold.
func (c *GoalChecker) Check(_ context.Context, _ time.Time) ([]Notification, error) {
	threshold, err := c.settings.Int(model.SettingGoalAlertThreshold, 90)
	if err != nil {
		return nil, err
	}
	if threshold <= 0 || threshold > 120 {
		return nil, nil
	}

	progress, err := c.engine.Progress()
	if err != nil {
		return nil, err
	}

	if progress.DailyPercent < float64(threshold) {
		c.alerted = false
		return nil, nil
	}
	if c.alerted {
		return nil, nil
	}
	c.alerted = true

	return []Notification{{
		Title: "Goal Alert",
		Message: fmt.Sprintf("You have reached %.0f%% of your daily goal.",
			progress.DailyPercent),
	}}, nil
}

// StreakChecker celebrates streak milestones. Each milestone fires at most
// once per day.
type StreakChecker struct {
	engine   *tracker.Engine
	settings *storage.SettingsRepo

	lastNotified map[int]string // milestone -> date last announced
}

// NewStreakChecker creates a streak achievement checker.
func NewStreakChecker(engine *tracker.Engine, settings *storage.SettingsRepo) *StreakChecker {
	return &StreakChecker{
		engine:       engine,
		settings:     settings,
		lastNotified: make(map[int]string),
	}
}

// Name returns the checker name.
func (c *StreakChecker) Name() string { return "streak" }

// Check announces a milestone when the current streak exactly matches one.
func (c *StreakChecker) Check(_ context.Context, now time.Time) ([]Notification, error) {
	streak, err := c.engine.ConsecutiveGoalDays()
	if err != nil {
		return nil, err
	}

	today := now.Format(model.DateLayout)
	for _, milestone := range config.Global.Monitor.StreakMilestones {
		if streak != milestone {
			continue
		}
		if c.lastNotified[milestone] == today {
			continue
		}
		c.lastNotified[milestone] = today
		return []Notification{{
			Title: "Achievement Unlocked",
			Message: fmt.Sprintf("%d-day goal streak! Keep it going.",
				milestone),
		}}, nil
	}
	return nil, nil
}
