package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/worktracker/internal/apperr"
	"github.com/manav03panchal/worktracker/internal/model"
	"github.com/manav03panchal/worktracker/internal/output"
	"github.com/manav03panchal/worktracker/internal/storage"
	"github.com/manav03panchal/worktracker/internal/tracker"
)

// tickMsg is sent when the timer ticks.
type tickMsg time.Time

// refreshMsg is sent when data needs to be refreshed.
type refreshMsg struct{}

// errMsg is sent when an error occurs.
type errMsg struct {
	err error
}

// DashboardModel is the main bubbletea model for the dashboard.
type DashboardModel struct {
	// Data
	active   *model.WorkSession
	progress *model.GoalProgress
	streak   int
	schedule model.Schedule

	// Dependencies
	sessions *storage.SessionRepo
	settings *storage.SettingsRepo
	engine   *tracker.Engine
	now      func() time.Time

	// UI state
	width      int
	height     int
	err        error
	message    string
	messageExp time.Time

	// Configuration
	refreshInterval time.Duration
}

// DashboardConfig holds configuration for the dashboard.
type DashboardConfig struct {
	Sessions        *storage.SessionRepo
	Settings        *storage.SettingsRepo
	Engine          *tracker.Engine
	Clock           func() time.Time
	RefreshInterval time.Duration
}

// NewDashboardModel creates a new dashboard model.
func NewDashboardModel(config DashboardConfig) *DashboardModel {
	if config.RefreshInterval == 0 {
		config.RefreshInterval = time.Second
	}
	if config.Clock == nil {
		config.Clock = time.Now
	}

	return &DashboardModel{
		sessions:        config.Sessions,
		settings:        config.Settings,
		engine:          config.Engine,
		now:             config.Clock,
		refreshInterval: config.RefreshInterval,
	}
}

// Init initializes the model.
func (m *DashboardModel) Init() tea.Cmd {
	return tea.Batch(
		m.tickCmd(),
		m.refreshCmd(),
	)
}

// Update handles messages and updates the model.
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		// Clear expired messages
		if !m.messageExp.IsZero() && m.now().After(m.messageExp) {
			m.message = ""
			m.messageExp = time.Time{}
		}
		m.loadData()
		return m, m.tickCmd()

	case refreshMsg:
		m.loadData()
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input.
func (m *DashboardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "s":
		// Toggle the session
		if m.active != nil {
			duration, err := m.sessions.End(m.active.ID)
			if err != nil {
				m.err = err
			} else {
				m.setMessage(fmt.Sprintf("Session ended: %s", output.FormatClock(duration)), 3*time.Second)
			}
		} else {
			_, err := m.sessions.Start()
			if err != nil && !apperr.IsConflict(err) {
				m.err = err
			} else {
				m.setMessage("Session started", 2*time.Second)
			}
		}
		m.loadData()
		return m, nil

	case "r":
		m.loadData()
		m.setMessage("Refreshed", time.Second)
		return m, nil
	}

	return m, nil
}

// View renders the dashboard.
func (m *DashboardModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string

	// Header
	sections = append(sections, m.renderHeader())

	// Error message
	if m.err != nil {
		sections = append(sections, StyleError.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	// Status message
	if m.message != "" {
		sections = append(sections, StyleWarning.Render(m.message))
	}

	// Current session status
	sections = append(sections, m.renderStatus())

	// Goal progress
	if m.progress != nil {
		sections = append(sections, m.renderProgress())
	}

	// Help bar
	sections = append(sections, HelpBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the dashboard header.
func (m *DashboardModel) renderHeader() string {
	title := StyleTitle.Render("Worktracker Dashboard")
	now := m.now().Format("Mon Jan 2, 15:04:05")
	timeStr := StyleSubtitle.Render(now)

	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", timeStr) + "\n"
}

// renderStatus renders the current session box.
func (m *DashboardModel) renderStatus() string {
	var content strings.Builder

	if m.active == nil {
		content.WriteString(StyleInactive.Render("Not working"))
		content.WriteString("\n\n")
		content.WriteString(StyleSubtitle.Render("Press 's' to start a session"))

		if guidance := m.schedule.Guidance(m.now()); guidance != "" {
			content.WriteString("\n")
			content.WriteString(StyleSubtitle.Render(guidance))
		}

		box := StyleStatusBox.Width(m.width - 4)
		return box.Render(content.String())
	}

	content.WriteString(StyleActive.Render("● WORKING"))
	content.WriteString("\n\n")
	content.WriteString(StyleDuration.Render(output.FormatClock(m.active.Elapsed(m.now()))))
	content.WriteString("\n\n")
	content.WriteString(StyleSubtitle.Render(fmt.Sprintf("Started: %s", m.active.StartTime)))

	if guidance := m.schedule.Guidance(m.now()); guidance != "" {
		content.WriteString("\n")
		content.WriteString(StyleSubtitle.Render(guidance))
	}

	box := StyleActiveStatusBox.Width(m.width - 4)
	return box.Render(content.String())
}

// renderProgress renders the goal progress box.
func (m *DashboardModel) renderProgress() string {
	p := m.progress
	var content strings.Builder

	content.WriteString(StyleTitle.Render("Daily Goal"))
	content.WriteString("\n")
	content.WriteString(fmt.Sprintf("%s %s / %s  (%.0f%%)",
		ProgressBar(p.DailyPercent, 24),
		output.FormatClock(p.DailySeconds),
		output.FormatClock(p.DailyGoalSeconds),
		p.DailyPercent))
	content.WriteString("\n")

	if p.GoalReached {
		content.WriteString(StyleSuccess.Render("Goal reached!"))
	} else {
		content.WriteString(StyleSubtitle.Render(
			fmt.Sprintf("Remaining: %s", output.FormatClock(p.RemainingSeconds))))
	}

	content.WriteString("\n\n")
	content.WriteString(StyleSubtitle.Render(
		fmt.Sprintf("Week: %s / %s",
			output.FormatClock(p.WeeklySeconds),
			output.FormatClock(p.WeeklyGoalSeconds))))

	if m.streak > 0 {
		content.WriteString("\n")
		content.WriteString(StyleSubtitle.Render(
			fmt.Sprintf("Streak: %d day(s)", m.streak)))
	}

	box := StyleGoalBox
	if p.GoalReached {
		box = StyleGoalCompleteBox
	}
	return box.Width(m.width - 4).Render(content.String())
}

// loadData refreshes the model from the store.
func (m *DashboardModel) loadData() {
	active, err := m.sessions.Active()
	if err != nil {
		m.err = err
		return
	}
	m.active = active

	progress, err := m.engine.Progress()
	if err != nil {
		m.err = err
		return
	}
	m.progress = progress

	// Streak and schedule are decoration, don't fail the view on them.
	if streak, err := m.engine.ConsecutiveGoalDays(); err == nil {
		m.streak = streak
	}
	m.schedule = m.loadSchedule()

	m.err = nil
}

// loadSchedule reads the work schedule settings.
func (m *DashboardModel) loadSchedule() model.Schedule {
	enabled, err := m.settings.Bool(model.SettingScheduleEnabled, false)
	if err != nil || !enabled {
		return model.Schedule{}
	}

	days, _, _ := m.settings.Get(model.SettingWorkDays)
	start, _, _ := m.settings.Get(model.SettingWorkStart)
	end, _, _ := m.settings.Get(model.SettingWorkEnd)

	return model.Schedule{
		Enabled:   true,
		WorkDays:  model.ParseWorkDays(days),
		WorkStart: start,
		WorkEnd:   end,
	}
}

// setMessage sets a temporary message.
func (m *DashboardModel) setMessage(msg string, duration time.Duration) {
	m.message = msg
	m.messageExp = m.now().Add(duration)
}

// tickCmd returns a command that ticks at the refresh interval.
func (m *DashboardModel) tickCmd() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// refreshCmd returns a command that triggers a data refresh.
func (m *DashboardModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return refreshMsg{}
	}
}

// Run starts the dashboard program.
func Run(config DashboardConfig) error {
	m := NewDashboardModel(config)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
