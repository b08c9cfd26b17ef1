package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/worktracker/internal/model"
	"github.com/manav03panchal/worktracker/internal/output"
	"github.com/manav03panchal/worktracker/internal/parser"
	"github.com/manav03panchal/worktracker/internal/tracker"
)

// Today command flags.
var todayFlagDate string

// todayCmd represents the today command.
var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show tracked time and goal progress for a day",
	Long: `Show tracked time and goal progress for a day.

The --date flag accepts "today", "yesterday", a calendar date like
2026-08-30, or natural language like "last monday".`,
	RunE: runToday,
}

func init() {
	todayCmd.Flags().StringVarP(&todayFlagDate, "date", "d", "today", "Day to report")
	rootCmd.AddCommand(todayCmd)
}

func runToday(cmd *cobra.Command, args []string) error {
	now := ctx.DB.Now()

	day, err := parser.ParseDate(todayFlagDate, now)
	if err != nil {
		return err
	}

	seconds, err := ctx.Engine.DailySeconds(day)
	if err != nil {
		return err
	}

	goalHours, err := ctx.Settings.Int(model.SettingDailyGoal, 8)
	if err != nil {
		return err
	}

	reached := goalHours > 0 && seconds >= goalHours*3600

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.DayResponse{
			Date:        day.Format(model.DateLayout),
			Seconds:     seconds,
			Hours:       tracker.RoundHours(seconds),
			GoalHours:   goalHours,
			GoalReached: reached,
		})
	}

	f := ctx.CLIFormatter()
	f.Title(day.Format("Monday, January 2, 2006"))
	f.Printf("Tracked: %s\n", f.Duration(output.FormatClock(seconds)))

	if goalHours > 0 {
		percent := float64(seconds) / float64(goalHours*3600) * 100
		f.Printf("Goal:    %dh  %s %.0f%%\n", goalHours, output.ProgressBar(percent, 20), percent)
		if reached {
			f.Success("Daily goal reached!")
		}
	}
	return nil
}
