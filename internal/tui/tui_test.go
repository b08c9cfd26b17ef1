package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/worktracker/internal/model"
	"github.com/manav03panchal/worktracker/internal/storage"
	"github.com/manav03panchal/worktracker/internal/tracker"
)

func setupModel(t *testing.T, start time.Time) (*DashboardModel, func(time.Time)) {
	t.Helper()

	now := start
	clock := func() time.Time { return now }
	db, err := storage.Open(storage.Options{InMemory: true, Clock: clock})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sessions := storage.NewSessionRepo(db)
	settings := storage.NewSettingsRepo(db)
	m := NewDashboardModel(DashboardConfig{
		Sessions: sessions,
		Settings: settings,
		Engine:   tracker.NewWithRepos(sessions, settings, clock),
		Clock:    clock,
	})
	m.width = 80
	m.height = 24
	return m, func(at time.Time) { now = at }
}

var nine = time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

func TestViewIdle(t *testing.T) {
	m, _ := setupModel(t, nine)
	m.loadData()

	view := m.View()
	assert.Contains(t, view, "Not working")
	assert.Contains(t, view, "Worktracker Dashboard")
}

func TestToggleSession(t *testing.T) {
	m, setClock := setupModel(t, nine)
	m.loadData()

	// 's' starts a session.
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	m = updated.(*DashboardModel)
	require.NotNil(t, m.active)

	setClock(nine.Add(30 * time.Minute))

	view := m.View()
	assert.Contains(t, view, "WORKING")
	assert.Contains(t, view, "0h 30m 0s")

	// 's' again stops it.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	m = updated.(*DashboardModel)
	assert.Nil(t, m.active)
	assert.Contains(t, m.message, "Session ended")
}

func TestViewShowsGoalProgress(t *testing.T) {
	m, _ := setupModel(t, nine)
	m.loadData()

	view := m.View()
	assert.Contains(t, view, "Daily Goal")
	assert.Contains(t, view, "Remaining")
}

func TestScheduleGuidanceShown(t *testing.T) {
	m, _ := setupModel(t, nine) // a Tuesday
	require.NoError(t, m.settings.Set(model.SettingScheduleEnabled, "1"))
	m.loadData()

	view := m.View()
	assert.Contains(t, view, "Today schedule: 09:00 - 17:00")
}

func TestWindowResize(t *testing.T) {
	m, _ := setupModel(t, nine)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(*DashboardModel)
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}

func TestQuitKey(t *testing.T) {
	m, _ := setupModel(t, nine)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
