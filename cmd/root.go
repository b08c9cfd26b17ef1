// Package cmd provides the CLI commands for Worktracker.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/worktracker/internal/logging"
	"github.com/manav03panchal/worktracker/internal/output"
	"github.com/manav03panchal/worktracker/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagDebug  bool
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "worktracker",
	Short: "A personal work-session tracker for the command line",
	Long: `Worktracker records work sessions and measures them against your
daily and weekly goals.

Examples:
  worktracker start
  worktracker stop
  worktracker today
  worktracker analytics --days 30
  worktracker streak`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "help" {
			return nil
		}

		if flagDebug {
			logging.Init(logging.DebugConfig())
		} else {
			logging.Init(logging.DefaultConfig())
		}

		// Parse format flag
		var format output.Format
		switch flagFormat {
		case "json":
			format = output.FormatJSON
		case "plain":
			format = output.FormatPlain
		default:
			format = output.FormatCLI
		}

		// Parse color flag
		var colorMode output.ColorMode
		switch flagColor {
		case "always":
			colorMode = output.ColorAlways
		case "never":
			colorMode = output.ColorNever
		default:
			colorMode = output.ColorAuto
		}

		// Create runtime context
		opts := runtime.DefaultOptions()
		opts.Format = format
		opts.ColorMode = colorMode
		opts.Debug = flagDebug

		var err error
		ctx, err = runtime.New(opts)
		if err != nil {
			return err
		}

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ctx != nil {
			return ctx.Close()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: show current status
		return runStatus(cmd, args)
	},
}

// runStatus shows the current tracking status.
func runStatus(cmd *cobra.Command, args []string) error {
	session, err := ctx.Sessions.Active()
	if err != nil {
		return err
	}

	elapsed := 0
	if session != nil {
		elapsed = session.Elapsed(ctx.DB.Now())
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.StatusResponse{
			Active:  session != nil,
			Session: session,
			Elapsed: elapsed,
			Clock:   output.FormatClock(elapsed),
		})
	}

	ctx.CLIFormatter().PrintStatus(session, elapsed)
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("worktracker %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
	},
}

// Die prints an error and exits.
func Die(err error) {
	if ctx != nil && ctx.IsJSON() {
		ctx.Formatter.JSON(output.ErrorResponse{Error: err.Error()})
	} else {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
	}
	os.Exit(1)
}
