package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/worktracker/internal/model"
)

// Styles for CLI output.
var (
	// Colors
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorWarning = lipgloss.Color("#F59E0B") // Yellow
	colorError   = lipgloss.Color("#EF4444") // Red
	colorSuccess = lipgloss.Color("#10B981") // Green

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleBold = lipgloss.NewStyle().
			Bold(true)

	styleDuration = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSuccess)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	if c.IsColorEnabled() {
		c.Println(styleTitle.Render(text))
	} else {
		c.Println(text)
	}
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	if c.IsColorEnabled() {
		c.Println(styleSuccess.Render("✓ " + text))
	} else {
		c.Println("✓ " + text)
	}
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	if c.IsColorEnabled() {
		c.Println(styleWarning.Render("⚠ " + text))
	} else {
		c.Println("⚠ " + text)
	}
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	if c.IsColorEnabled() {
		c.Println(styleError.Render("✗ " + text))
	} else {
		c.Println("✗ " + text)
	}
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	if c.IsColorEnabled() {
		c.Println(styleMuted.Render(text))
	} else {
		c.Println(text)
	}
}

// Duration formats a duration string.
func (c *CLIFormatter) Duration(text string) string {
	if c.IsColorEnabled() {
		return styleDuration.Render(text)
	}
	return text
}

// PrintSessionStarted prints a session started message.
func (c *CLIFormatter) PrintSessionStarted(session *model.WorkSession) {
	c.Success("Session started")
	c.Printf("  Date: %s\n", session.Date)
	c.Printf("  Started: %s\n", session.StartTime)
}

// PrintSessionStopped prints a session stopped message.
func (c *CLIFormatter) PrintSessionStopped(session *model.WorkSession) {
	c.Success("Session ended")
	c.Printf("  Started: %s\n", session.StartTime)
	c.Printf("  Ended: %s\n", session.EndTime)
	c.Printf("  Duration: %s\n", c.Duration(FormatClock(session.Duration)))
}

// PrintStatus prints the current tracking status.
func (c *CLIFormatter) PrintStatus(session *model.WorkSession, elapsed int) {
	if session == nil {
		c.Muted("No active session.")
		c.Muted("Use 'worktracker start' to begin.")
		return
	}

	c.Println("Currently tracking")
	c.Printf("  Started: %s\n", session.StartTime)
	c.Printf("  Elapsed: %s\n", c.Duration(FormatClock(elapsed)))
}

// PrintProgress prints goal progress with a bar.
func (c *CLIFormatter) PrintProgress(p *model.GoalProgress) {
	c.Printf("Today:     %s / %s  %s %.0f%%\n",
		FormatClock(p.DailySeconds),
		FormatClock(p.DailyGoalSeconds),
		ProgressBar(p.DailyPercent, 20),
		p.DailyPercent)
	c.Printf("This week: %s / %s\n",
		FormatClock(p.WeeklySeconds),
		FormatClock(p.WeeklyGoalSeconds))
	if p.GoalReached {
		c.Success("Daily goal reached!")
	} else {
		c.Printf("Remaining: %s\n", FormatClock(p.RemainingSeconds))
	}
}

// PrintNoActiveSession prints a message when there's nothing to stop.
func (c *CLIFormatter) PrintNoActiveSession() {
	c.Warning("No active session to stop.")
	c.Muted("Use 'worktracker start' to begin tracking.")
}

// ProgressBar creates a simple progress bar.
func ProgressBar(percentage float64, width int) string {
	if percentage > 100 {
		percentage = 100
	}
	if percentage < 0 {
		percentage = 0
	}

	filled := int(float64(width) * percentage / 100)
	empty := width - filled

	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)
	return bar
}

// TableRow holds one row of table columns.
type TableRow struct {
	Columns []string
}

// PrintTable prints a simple table.
func (c *CLIFormatter) PrintTable(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	// Calculate column widths
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, col := range row.Columns {
			if i < len(widths) && len(col) > widths[i] {
				widths[i] = len(col)
			}
		}
	}

	// Print headers
	var headerLine strings.Builder
	for i, h := range headers {
		headerLine.WriteString(fmt.Sprintf("%-*s  ", widths[i], h))
	}
	c.Println(styleBold.Render(headerLine.String()))

	// Print separator
	var sep strings.Builder
	for _, w := range widths {
		sep.WriteString(strings.Repeat("─", w) + "  ")
	}
	c.Println(sep.String())

	// Print rows
	for _, row := range rows {
		var rowLine strings.Builder
		for i, col := range row.Columns {
			if i < len(widths) {
				rowLine.WriteString(fmt.Sprintf("%-*s  ", widths[i], col))
			}
		}
		c.Println(rowLine.String())
	}
}
