package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/worktracker/internal/output"
)

// progressCmd represents the progress command.
var progressCmd = &cobra.Command{
	Use:     "progress",
	Aliases: []string{"goal"},
	Short:   "Show progress toward the daily and weekly goals",
	RunE:    runProgress,
}

func init() {
	rootCmd.AddCommand(progressCmd)
}

func runProgress(cmd *cobra.Command, args []string) error {
	progress, err := ctx.Engine.Progress()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.ProgressResponse{
			Daily:   progress,
			Weekly:  progress.WeeklySeconds,
			Remains: output.FormatClock(progress.RemainingSeconds),
		})
	}

	ctx.CLIFormatter().PrintProgress(progress)
	return nil
}
