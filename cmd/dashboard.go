package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/worktracker/internal/tui"
)

// dashboardCmd represents the dashboard command.
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash", "tui"},
	Short:   "Open the interactive TUI dashboard",
	Long: `Open an interactive terminal dashboard with a live session timer
and goal progress.

Keyboard Controls:
  s - Start or stop the session
  r - Refresh data
  q - Quit dashboard

Examples:
  worktracker dashboard
  worktracker dash`,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	return tui.Run(tui.DashboardConfig{
		Sessions: ctx.Sessions,
		Settings: ctx.Settings,
		Engine:   ctx.Engine,
		Clock:    ctx.DB.Now,
	})
}
