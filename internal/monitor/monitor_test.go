package monitor

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/worktracker/internal/idle"
	"github.com/manav03panchal/worktracker/internal/model"
	"github.com/manav03panchal/worktracker/internal/storage"
	"github.com/manav03panchal/worktracker/internal/tracker"
)

// recordingNotifier captures delivered notifications.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []string
}

func (r *recordingNotifier) Notify(_ context.Context, title, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, title+": "+message)
	return nil
}

func (r *recordingNotifier) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sent)
}

type fixture struct {
	db       *storage.DB
	sessions *storage.SessionRepo
	settings *storage.SettingsRepo
	engine   *tracker.Engine
	setClock func(time.Time)
	clock    func() time.Time
}

func setup(t *testing.T, start time.Time) *fixture {
	t.Helper()

	now := start
	clock := func() time.Time { return now }
	db, err := storage.Open(storage.Options{InMemory: true, Clock: clock})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sessions := storage.NewSessionRepo(db)
	settings := storage.NewSettingsRepo(db)
	return &fixture{
		db:       db,
		sessions: sessions,
		settings: settings,
		engine:   tracker.NewWithRepos(sessions, settings, clock),
		setClock: func(at time.Time) { now = at },
		clock:    clock,
	}
}

func seedGoalDay(t *testing.T, f *fixture, date string, seconds int) {
	t.Helper()
	_, err := f.db.SQL().Exec(
		`INSERT INTO work_sessions (date, start_time, end_time, duration, is_active)
		 VALUES (?, ?, ?, ?, 0)`,
		date, "09:00:00", "", seconds)
	require.NoError(t, err)
}

var nine = time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

func TestBreakCheckerFiresOncePerInterval(t *testing.T) {
	f := setup(t, nine)
	_, err := f.sessions.Start()
	require.NoError(t, err)

	checker := NewBreakChecker(f.sessions, f.settings, f.clock)

	// 65 minutes in with the default 60 minute interval.
	at := nine.Add(65 * time.Minute)
	f.setClock(at)

	notes, err := checker.Check(context.Background(), at)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "Break Time", notes[0].Title)

	// The same crossing does not fire again.
	notes, err = checker.Check(context.Background(), at)
	require.NoError(t, err)
	assert.Empty(t, notes)

	// The second interval crossing fires again.
	at = nine.Add(125 * time.Minute)
	f.setClock(at)
	notes, err = checker.Check(context.Background(), at)
	require.NoError(t, err)
	assert.Len(t, notes, 1)
}

func TestBreakCheckerNoActiveSession(t *testing.T) {
	f := setup(t, nine)
	checker := NewBreakChecker(f.sessions, f.settings, f.clock)

	notes, err := checker.Check(context.Background(), nine)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestBreakCheckerDisabledInterval(t *testing.T) {
	f := setup(t, nine)
	require.NoError(t, f.settings.Set(model.SettingBreakIntervalMin, "0"))
	_, err := f.sessions.Start()
	require.NoError(t, err)

	checker := NewBreakChecker(f.sessions, f.settings, f.clock)
	at := nine.Add(3 * time.Hour)
	f.setClock(at)

	notes, err := checker.Check(context.Background(), at)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestIdleCheckerEndsSession(t *testing.T) {
	f := setup(t, nine)
	id, err := f.sessions.Start()
	require.NoError(t, err)

	f.setClock(nine.Add(30 * time.Minute))

	// 700s idle against the default 10 minute threshold.
	checker := NewIdleChecker(f.sessions, f.settings, idle.StaticProvider{Seconds: 700})

	notes, err := checker.Check(context.Background(), f.clock())
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "Session Paused", notes[0].Title)
	assert.Contains(t, notes[0].Message, "inactivity")

	s, err := f.sessions.Get(id)
	require.NoError(t, err)
	assert.False(t, s.Active)
	assert.Equal(t, 1800, s.Duration)
}

func TestIdleCheckerBelowThreshold(t *testing.T) {
	f := setup(t, nine)
	_, err := f.sessions.Start()
	require.NoError(t, err)

	checker := NewIdleChecker(f.sessions, f.settings, idle.StaticProvider{Seconds: 30})

	notes, err := checker.Check(context.Background(), f.clock())
	require.NoError(t, err)
	assert.Empty(t, notes)

	active, err := f.sessions.Active()
	require.NoError(t, err)
	assert.NotNil(t, active)
}

func TestGoalCheckerAlertsOnceAboveThreshold(t *testing.T) {
	f := setup(t, nine)
	require.NoError(t, f.settings.Set(model.SettingDailyGoal, "2"))

	// 111% of the 2h goal with the default 90% threshold.
	seedGoalDay(t, f, "2026-03-10", 8000)

	checker := NewGoalChecker(f.engine, f.settings)

	notes, err := checker.Check(context.Background(), nine)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "Goal Alert", notes[0].Title)

	notes, err = checker.Check(context.Background(), nine)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestGoalCheckerBelowThreshold(t *testing.T) {
	f := setup(t, nine)
	require.NoError(t, f.settings.Set(model.SettingDailyGoal, "8"))
	seedGoalDay(t, f, "2026-03-10", 3600)

	checker := NewGoalChecker(f.engine, f.settings)
	notes, err := checker.Check(context.Background(), nine)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestGoalCheckerInvalidThreshold(t *testing.T) {
	f := setup(t, nine)
	require.NoError(t, f.settings.Set(model.SettingGoalAlertThreshold, "150"))
	require.NoError(t, f.settings.Set(model.SettingDailyGoal, "1"))
	seedGoalDay(t, f, "2026-03-10", 7200)

	checker := NewGoalChecker(f.engine, f.settings)
	notes, err := checker.Check(context.Background(), nine)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestStreakCheckerMilestone(t *testing.T) {
	f := setup(t, nine)
	require.NoError(t, f.settings.Set(model.SettingDailyGoal, "1"))

	// Exactly a 7 day streak ending today.
	for i := 0; i < 7; i++ {
		date := nine.AddDate(0, 0, -i).Format(model.DateLayout)
		seedGoalDay(t, f, date, 3600)
	}

	checker := NewStreakChecker(f.engine, f.settings)

	notes, err := checker.Check(context.Background(), nine)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "Achievement Unlocked", notes[0].Title)
	assert.Contains(t, notes[0].Message, "7-day")

	// At most once per day.
	notes, err = checker.Check(context.Background(), nine)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestStreakCheckerNonMilestone(t *testing.T) {
	f := setup(t, nine)
	require.NoError(t, f.settings.Set(model.SettingDailyGoal, "1"))

	for i := 0; i < 3; i++ {
		date := nine.AddDate(0, 0, -i).Format(model.DateLayout)
		seedGoalDay(t, f, date, 3600)
	}

	checker := NewStreakChecker(f.engine, f.settings)
	notes, err := checker.Check(context.Background(), nine)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestMonitorRespectsNotificationsDisabled(t *testing.T) {
	now := nine
	clock := func() time.Time { return now }
	db, err := storage.Open(storage.Options{InMemory: true, Clock: clock})
	require.NoError(t, err)
	defer db.Close()

	settings := storage.NewSettingsRepo(db)
	require.NoError(t, settings.Set(model.SettingNotificationsEnabled, "0"))
	require.NoError(t, settings.Set(model.SettingDailyGoal, "1"))

	_, err = db.SQL().Exec(
		`INSERT INTO work_sessions (date, start_time, end_time, duration, is_active)
		 VALUES (?, ?, ?, ?, 0)`,
		"2026-03-10", "09:00:00", "", 7200)
	require.NoError(t, err)

	rec := &recordingNotifier{}
	m := New(db, Options{Notifier: rec, Clock: clock})
	m.RunOnce()

	assert.Equal(t, 0, rec.count())
}

func TestMonitorDeliversThroughNotifier(t *testing.T) {
	now := nine
	clock := func() time.Time { return now }
	db, err := storage.Open(storage.Options{InMemory: true, Clock: clock})
	require.NoError(t, err)
	defer db.Close()

	settings := storage.NewSettingsRepo(db)
	require.NoError(t, settings.Set(model.SettingDailyGoal, "1"))

	// Over the goal alert threshold.
	_, err = db.SQL().Exec(
		`INSERT INTO work_sessions (date, start_time, end_time, duration, is_active)
		 VALUES (?, ?, ?, ?, 0)`,
		"2026-03-10", "08:00:00", "", 7200)
	require.NoError(t, err)

	rec := &recordingNotifier{}
	m := New(db, Options{Notifier: rec, Clock: clock})
	m.RunOnce()

	require.GreaterOrEqual(t, rec.count(), 1)
	assert.Contains(t, fmt.Sprint(rec.sent), "Goal Alert")
}
