// Package storage provides the SQLite-backed store for Worktracker.
package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite"

	"github.com/manav03panchal/worktracker/internal/apperr"
	"github.com/manav03panchal/worktracker/internal/model"
)

const (
	// AppName is the application name used for data directories.
	AppName = "worktracker"
)

// DB wraps a SQLite database connection.
type DB struct {
	db  *sql.DB
	now func() time.Time
}

// Options configures the database connection.
type Options struct {
	// Path is the database file path. Empty string uses in-memory mode.
	Path string
	// InMemory forces in-memory mode regardless of Path.
	InMemory bool
	// Clock overrides the wall clock. Defaults to time.Now.
	Clock func() time.Time
}

// DefaultPath returns the default database path following the XDG spec.
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, AppName, "worktracker.db")
}

// Open opens or creates a database at the given path, creates the schema if
// needed, and seeds default settings.
func Open(opts Options) (*DB, error) {
	dsn := ":memory:"
	if !opts.InMemory && opts.Path != "" {
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0755); err != nil {
			return nil, apperr.NewStorageError("open", err)
		}
		dsn = opts.Path
	}

	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, apperr.NewStorageError("open", err)
	}

	// Single connection: the store is a single-writer resource, and it keeps
	// an in-memory database on one connection.
	sqlDB.SetMaxOpenConns(1)

	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	d := &DB{db: sqlDB, now: clock}
	if err := d.init(); err != nil {
		sqlDB.Close()
		return nil, err
	}

	return d, nil
}

// init creates the schema and seeds default settings. Existing values are
// never overwritten.
func (d *DB) init() error {
	const ddl = `
CREATE TABLE IF NOT EXISTS work_sessions (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  date TEXT NOT NULL,
  start_time TEXT NOT NULL,
  end_time TEXT,
  duration INTEGER DEFAULT 0,
  is_active INTEGER DEFAULT 0
);
CREATE TABLE IF NOT EXISTS settings (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`
	if _, err := d.db.Exec(ddl); err != nil {
		return apperr.NewStorageError("init schema", err)
	}

	for _, s := range model.DefaultSettings() {
		if _, err := d.db.Exec(
			`INSERT OR IGNORE INTO settings (key, value) VALUES (?, ?)`,
			s.Key, s.Value,
		); err != nil {
			return apperr.NewStorageError("seed settings", err)
		}
	}

	return nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// Now returns the store's current wall-clock time.
func (d *DB) Now() time.Time {
	return d.now()
}

// SQL returns the underlying database handle for advanced operations.
func (d *DB) SQL() *sql.DB {
	return d.db
}
