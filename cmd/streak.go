package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/worktracker/internal/output"
)

// streakCmd represents the streak command.
var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show the current goal streak",
	Long: `Show how many consecutive days, ending yesterday, met the daily
goal.`,
	RunE: runStreak,
}

func init() {
	rootCmd.AddCommand(streakCmd)
}

func runStreak(cmd *cobra.Command, args []string) error {
	streak, err := ctx.Engine.ConsecutiveGoalDays()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.StreakResponse{Days: streak})
	}

	f := ctx.CLIFormatter()
	switch {
	case streak == 0:
		f.Muted("No streak yet. Meet your daily goal to start one.")
	case streak == 1:
		f.Success("1 day streak!")
	default:
		f.Success(fmt.Sprintf("%d day streak!", streak))
	}
	return nil
}
