package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/worktracker/internal/monitor"
)

// watchCmd represents the watch command.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run background checks in the foreground",
	Long: `Run the break reminder, idle auto-pause, goal alert, and streak
checks until interrupted.

Checks run once per minute. Notifications go to the console, or to a
webhook when WORKTRACKER_WEBHOOK_URL is set.

Examples:
  worktracker watch
  WORKTRACKER_WEBHOOK_URL=https://example.com/hook worktracker watch`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	m := monitor.New(ctx.DB, monitor.Options{
		Notifier: ctx.Notifier,
		Clock:    ctx.DB.Now,
	})
	m.AddChecker(monitor.NewIdleChecker(ctx.Sessions, ctx.Settings, ctx.Idle))

	if err := m.Start(); err != nil {
		return err
	}
	defer m.Stop()

	ctx.CLIFormatter().Muted("Watching... press Ctrl+C to stop.")

	// First pass immediately instead of waiting a minute.
	m.RunOnce()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	return nil
}
