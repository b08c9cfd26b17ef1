package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/worktracker/internal/output"
)

// Analytics command flags.
var (
	analyticsFlagDays   int
	analyticsFlagMonths int
	analyticsFlagYears  int
)

// analyticsCmd represents the analytics command.
var analyticsCmd = &cobra.Command{
	Use:     "analytics",
	Aliases: []string{"stats"},
	Short:   "Show aggregated work analytics",
	Long: `Show aggregated work analytics: daily and weekly totals, the hourly
work distribution, productivity against the daily goal, and monthly and
yearly summaries.`,
	RunE: runAnalytics,
}

func init() {
	analyticsCmd.Flags().IntVar(&analyticsFlagDays, "days", 7, "Days to include in the snapshot")
	analyticsCmd.Flags().IntVar(&analyticsFlagMonths, "months", 6, "Months in the monthly summary")
	analyticsCmd.Flags().IntVar(&analyticsFlagYears, "years", 3, "Years in the yearly summary")
	rootCmd.AddCommand(analyticsCmd)
}

func runAnalytics(cmd *cobra.Command, args []string) error {
	snapshot, err := ctx.Engine.Snapshot(analyticsFlagDays)
	if err != nil {
		return err
	}

	monthly, err := ctx.Engine.MonthlyHours(analyticsFlagMonths)
	if err != nil {
		return err
	}

	yearly, err := ctx.Engine.YearlyHours(analyticsFlagYears)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.AnalyticsResponse{
			Snapshot: snapshot,
			Monthly:  monthly,
			Yearly:   yearly,
		})
	}

	f := ctx.CLIFormatter()

	f.Title(fmt.Sprintf("Last %d days", analyticsFlagDays))
	rows := make([]output.TableRow, 0, len(snapshot.Daily))
	for _, d := range snapshot.Daily {
		rows = append(rows, output.TableRow{Columns: []string{
			d.Date,
			output.FormatClock(d.Seconds),
			output.FormatHours(d.Hours),
		}})
	}
	f.PrintTable([]string{"Date", "Tracked", "Hours"}, rows)

	if len(snapshot.Weekly) > 0 {
		f.Println()
		f.Title("Weekly totals")
		rows = rows[:0]
		for _, w := range snapshot.Weekly {
			rows = append(rows, output.TableRow{Columns: []string{
				w.WeekStart,
				output.FormatHours(w.Hours),
			}})
		}
		f.PrintTable([]string{"Week of", "Hours"}, rows)
	}

	if len(snapshot.Hourly) > 0 {
		f.Println()
		f.Title("Work by start hour")
		hours := make([]int, 0, len(snapshot.Hourly))
		for h := range snapshot.Hourly {
			hours = append(hours, h)
		}
		sort.Ints(hours)
		for _, h := range hours {
			f.Printf("  %02d:00  %s\n", h, output.FormatHours(snapshot.Hourly[h]))
		}
	}

	if len(snapshot.Productivity) > 0 {
		f.Println()
		f.Title("Productivity vs daily goal")
		for _, p := range snapshot.Productivity {
			f.Printf("  %s  %s %.1f%%\n", p.Date, output.ProgressBar(p.Percent, 20), p.Percent)
		}
	}

	if len(monthly) > 0 {
		f.Println()
		f.Title("Monthly")
		rows = rows[:0]
		for _, m := range monthly {
			rows = append(rows, output.TableRow{Columns: []string{
				m.Month,
				output.FormatHours(m.Hours),
			}})
		}
		f.PrintTable([]string{"Month", "Hours"}, rows)
	}

	if len(yearly) > 0 {
		f.Println()
		f.Title("Yearly")
		rows = rows[:0]
		for _, y := range yearly {
			rows = append(rows, output.TableRow{Columns: []string{
				y.Year,
				output.FormatHours(y.Hours),
			}})
		}
		f.PrintTable([]string{"Year", "Hours"}, rows)
	}

	return nil
}
