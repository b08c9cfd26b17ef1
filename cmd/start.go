package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/worktracker/internal/apperr"
	"github.com/manav03panchal/worktracker/internal/logging"
	"github.com/manav03panchal/worktracker/internal/output"
)

// startCmd represents the start command.
var startCmd = &cobra.Command{
	Use:     "start",
	Aliases: []string{"s"},
	Short:   "Start a work session",
	Long: `Start a new work session.

Only one session can be active at a time; starting while a session is
running is an error.`,
	RunE: runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	id, err := ctx.Sessions.Start()
	if err != nil {
		if apperr.IsConflict(err) {
			if ctx.IsJSON() {
				return ctx.Formatter.JSON(output.ErrorResponse{Error: "a session is already active"})
			}
			ctx.CLIFormatter().Warning("A session is already active.")
			ctx.CLIFormatter().Muted("Use 'worktracker stop' to end it first.")
			return nil
		}
		return err
	}

	session, err := ctx.Sessions.Get(id)
	if err != nil {
		return err
	}

	logging.Info("session started",
		logging.KeyOperation, "start",
		logging.KeySessionID, id,
		logging.KeyRunID, ctx.RunID)

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.SessionResponse{Session: session})
	}

	ctx.CLIFormatter().PrintSessionStarted(session)
	return nil
}
