// Package monitor runs the background checks that watch an active session:
// break reminders, idle auto-pause, goal alerts, and streak achievements.
// Checks run on a cron schedule and are skipped after a sleep gap so a
// laptop waking from suspend does not fire a burst of stale reminders.
package monitor

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/manav03panchal/worktracker/internal/config"
	"github.com/manav03panchal/worktracker/internal/logging"
	"github.com/manav03panchal/worktracker/internal/model"
	"github.com/manav03panchal/worktracker/internal/notify"
	"github.com/manav03panchal/worktracker/internal/storage"
	"github.com/manav03panchal/worktracker/internal/tracker"
)

// Checker inspects the current state and returns notifications to send.
type Checker interface {
	// Name identifies the checker in logs.
	Name() string

	// Check runs the inspection and returns zero or more notifications.
	Check(ctx context.Context, now time.Time) ([]Notification, error)
}

// Notification is a message produced by a checker.
type Notification struct {
	Title   string
	Message string
}

// Monitor runs checkers on a schedule.
type Monitor struct {
	cron     *cron.Cron
	checkers []Checker
	notifier notify.Notifier
	settings *storage.SettingsRepo
	now      func() time.Time

	mu       sync.Mutex
	lastTick time.Time
	running  bool
}

// Options configures a Monitor.
type Options struct {
	Notifier notify.Notifier
	Clock    func() time.Time
}

// New creates a monitor over the given store with the standard checkers.
func New(db *storage.DB, opts Options) *Monitor {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	sessions := storage.NewSessionRepo(db)
	settings := storage.NewSettingsRepo(db)
	engine := tracker.NewWithRepos(sessions, settings, clock)

	m := &Monitor{
		cron:     cron.New(),
		notifier: opts.Notifier,
		settings: settings,
		now:      clock,
	}
	m.checkers = []Checker{
		NewBreakChecker(sessions, settings, clock),
		NewGoalChecker(engine, settings),
		NewStreakChecker(engine, settings),
	}
	return m
}

// AddChecker registers an additional checker.
func (m *Monitor) AddChecker(c Checker) {
	m.checkers = append(m.checkers, c)
}

// Start begins the per-minute check schedule.
func (m *Monitor) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.running {
		return nil
	}

	_, err := m.cron.AddFunc("* * * * *", m.runChecks)
	if err != nil {
		return err
	}

	m.lastTick = m.now()
	m.cron.Start()
	m.running = true
	logging.Info("monitor started", logging.KeyOperation, "monitor.start")
	return nil
}

// Stop halts the check schedule. It blocks until running checks finish.
func (m *Monitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.running {
		return
	}
	ctx := m.cron.Stop()
	<-ctx.Done()
	m.running = false
	logging.Info("monitor stopped", logging.KeyOperation, "monitor.stop")
}

// RunOnce runs all checks immediately. Used by tests and the watch command's
// initial pass.
func (m *Monitor) RunOnce() {
	m.runChecks()
}

func (m *Monitor) runChecks() {
	now := m.now()

	m.mu.Lock()
	last := m.lastTick
	m.lastTick = now
	m.mu.Unlock()

	// After a suspend/resume gap the elapsed-based checks would fire for
	// time the user was not at the machine. Skip one round.
	if !last.IsZero() && now.Sub(last) > config.Global.Monitor.SleepThreshold {
		logging.Warn("skipping checks after sleep gap",
			logging.KeyOperation, "monitor.check",
			"gap", now.Sub(last).String())
		return
	}

	enabled, err := m.settings.Bool(model.SettingNotificationsEnabled, true)
	if err != nil {
		logging.Error("failed to read notification setting", logging.KeyError, err)
		return
	}
	if !enabled {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, c := range m.checkers {
		notes, err := c.Check(ctx, now)
		if err != nil {
			logging.Error("checker failed",
				logging.KeyOperation, "monitor.check",
				"checker", c.Name(),
				logging.KeyError, err)
			continue
		}
		for _, n := range notes {
			if m.notifier == nil {
				continue
			}
			if err := m.notifier.Notify(ctx, n.Title, n.Message); err != nil {
				logging.Error("notification delivery failed",
					"checker", c.Name(),
					logging.KeyError, err)
			}
		}
	}
}
