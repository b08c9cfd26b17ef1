// Package runtime provides application runtime context for Worktracker.
package runtime

import (
	"os"

	"github.com/google/uuid"

	"github.com/manav03panchal/worktracker/internal/idle"
	"github.com/manav03panchal/worktracker/internal/logging"
	"github.com/manav03panchal/worktracker/internal/notify"
	"github.com/manav03panchal/worktracker/internal/output"
	"github.com/manav03panchal/worktracker/internal/storage"
	"github.com/manav03panchal/worktracker/internal/tracker"
)

// Context holds the application runtime context.
type Context struct {
	DB        *storage.DB
	Formatter *output.Formatter

	// Repositories
	Sessions *storage.SessionRepo
	Settings *storage.SettingsRepo

	// Aggregation engine
	Engine *tracker.Engine

	// Notification delivery
	Notifier notify.Notifier

	// Idle detection
	Idle idle.Provider

	// RunID correlates all log lines of one invocation.
	RunID string

	// Debug mode
	Debug bool
}

// Options configures the runtime context.
type Options struct {
	DBPath     string
	InMemory   bool
	Format     output.Format
	ColorMode  output.ColorMode
	WebhookURL string
	Debug      bool
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		DBPath:    storage.DefaultPath(),
		InMemory:  false,
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
		Debug:     false,
	}
}

// New creates a new runtime context.
func New(opts Options) (*Context, error) {
	// Check for environment variable override
	if envPath := os.Getenv("WORKTRACKER_DATABASE"); envPath != "" {
		if envPath == ":memory:" {
			opts.InMemory = true
		} else {
			opts.DBPath = envPath
		}
	}
	if opts.WebhookURL == "" {
		opts.WebhookURL = os.Getenv("WORKTRACKER_WEBHOOK_URL")
	}

	// Open database
	db, err := storage.Open(storage.Options{
		Path:     opts.DBPath,
		InMemory: opts.InMemory,
	})
	if err != nil {
		return nil, err
	}

	// Create repositories
	sessions := storage.NewSessionRepo(db)
	settings := storage.NewSettingsRepo(db)

	// Close out sessions left active by a crash or forgotten stop.
	if n, err := sessions.RecoverStale(); err != nil {
		logging.Warn("stale session recovery failed", logging.KeyError, err)
	} else if n > 0 {
		logging.Info("recovered stale sessions", "count", n)
	}

	// Create formatter
	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode

	// Notification channel: webhook when configured, console otherwise.
	var notifier notify.Notifier = notify.NewConsoleNotifier()
	if opts.WebhookURL != "" {
		notifier = notify.NewMultiNotifier(
			notify.NewWebhookNotifier(opts.WebhookURL),
			notify.NewConsoleNotifier(),
		)
	}

	runID := uuid.NewString()
	logging.DebugLog("runtime context created",
		logging.KeyRunID, runID,
		"db_path", opts.DBPath,
		"in_memory", opts.InMemory)

	return &Context{
		DB:        db,
		Formatter: formatter,
		Sessions:  sessions,
		Settings:  settings,
		Engine:    tracker.NewWithRepos(sessions, settings, db.Now),
		Notifier:  notifier,
		Idle:      idle.Detect(),
		RunID:     runID,
		Debug:     opts.Debug,
	}, nil
}

// Close closes the runtime context.
func (c *Context) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}

// Debugf prints debug output if debug mode is enabled.
func (c *Context) Debugf(format string, args ...interface{}) {
	if c.Debug {
		c.Formatter.Printf("[DEBUG] "+format+"\n", args...)
	}
}
