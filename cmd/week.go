package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/worktracker/internal/model"
	"github.com/manav03panchal/worktracker/internal/output"
	"github.com/manav03panchal/worktracker/internal/tracker"
)

// weekCmd represents the week command.
var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show tracked time for the current week",
	Long: `Show per-day tracked time for the current ISO week (Monday through
Sunday) against the weekly goal.`,
	RunE: runWeek,
}

func init() {
	rootCmd.AddCommand(weekCmd)
}

func runWeek(cmd *cobra.Command, args []string) error {
	now := ctx.DB.Now()
	monday := tracker.MondayOf(now)

	daily := make([]model.DailyTotal, 0, 7)
	total := 0
	for i := 0; i < 7; i++ {
		day := monday.AddDate(0, 0, i)
		secs, err := ctx.Engine.DailySeconds(day)
		if err != nil {
			return err
		}
		total += secs
		daily = append(daily, model.DailyTotal{
			Date:    day.Format(model.DateLayout),
			Seconds: secs,
			Hours:   tracker.RoundHours(secs),
		})
	}

	goalHours, err := ctx.Settings.Int(model.SettingWeeklyGoal, 40)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(struct {
			WeekStart string             `json:"week_start"`
			Daily     []model.DailyTotal `json:"daily"`
			Seconds   int                `json:"seconds"`
			Hours     float64            `json:"hours"`
			GoalHours int                `json:"goal_hours"`
		}{
			WeekStart: monday.Format(model.DateLayout),
			Daily:     daily,
			Seconds:   total,
			Hours:     tracker.RoundHours(total),
			GoalHours: goalHours,
		})
	}

	f := ctx.CLIFormatter()
	f.Title("Week of " + monday.Format(model.DateLayout))

	rows := make([]output.TableRow, 0, 7)
	for _, d := range daily {
		rows = append(rows, output.TableRow{Columns: []string{
			d.Date,
			output.FormatClock(d.Seconds),
			output.FormatHours(d.Hours),
		}})
	}
	f.PrintTable([]string{"Date", "Tracked", "Hours"}, rows)

	f.Println()
	f.Printf("Total: %s", f.Duration(output.FormatClock(total)))
	if goalHours > 0 {
		percent := float64(total) / float64(goalHours*3600) * 100
		f.Printf("  /  %dh goal  %s %.0f%%", goalHours, output.ProgressBar(percent, 20), percent)
	}
	f.Println()
	return nil
}
