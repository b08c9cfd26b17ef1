package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/worktracker/internal/logging"
	"github.com/manav03panchal/worktracker/internal/output"
)

// stopCmd represents the stop command.
var stopCmd = &cobra.Command{
	Use:     "stop",
	Aliases: []string{"end"},
	Short:   "End the active work session",
	RunE:    runStop,
}

func init() {
	rootCmd.AddCommand(stopCmd)
}

func runStop(cmd *cobra.Command, args []string) error {
	active, err := ctx.Sessions.Active()
	if err != nil {
		return err
	}

	if active == nil {
		if ctx.IsJSON() {
			return ctx.Formatter.JSON(output.ErrorResponse{Error: "no active session"})
		}
		ctx.CLIFormatter().PrintNoActiveSession()
		return nil
	}

	if _, err := ctx.Sessions.End(active.ID); err != nil {
		return err
	}

	session, err := ctx.Sessions.Get(active.ID)
	if err != nil {
		return err
	}

	logging.Info("session ended",
		logging.KeyOperation, "stop",
		logging.KeySessionID, session.ID,
		logging.KeySeconds, session.Duration,
		logging.KeyRunID, ctx.RunID)

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.SessionResponse{Session: session})
	}

	ctx.CLIFormatter().PrintSessionStopped(session)
	return nil
}
