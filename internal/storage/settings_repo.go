package storage

import (
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/manav03panchal/worktracker/internal/apperr"
	"github.com/manav03panchal/worktracker/internal/model"
)

// SettingsRepo provides operations for the settings table.
type SettingsRepo struct {
	db *DB
}

// NewSettingsRepo creates a new settings repository.
func NewSettingsRepo(db *DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

// Get returns the raw value for a key. A missing key is reported through the
// ok result, never as an error.
func (r *SettingsRepo) Get(key string) (string, bool, error) {
	var value string
	err := r.db.db.QueryRow(
		`SELECT value FROM settings WHERE key = ?`, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, apperr.NewStorageError("get setting", err)
	}
	return value, true, nil
}

// Set stores a value for a key, replacing any existing value.
func (r *SettingsRepo) Set(key, value string) error {
	_, err := r.db.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return apperr.NewStorageError("set setting", err)
	}
	return nil
}

// Int returns the value for a key parsed as an integer. Absent or unparsable
// values fall back to def.
func (r *SettingsRepo) Int(key string, def int) (int, error) {
	value, ok, err := r.Get(key)
	if err != nil {
		return def, err
	}
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return def, nil
	}
	return n, nil
}

// Bool returns the value for a key parsed as a boolean. The truthy literals
// are "1", "true", "yes", "on" (case-insensitive for the alphabetic ones);
// "0", "false", "no", "off" are recognized as false. Anything absent or
// unrecognized falls back to def.
func (r *SettingsRepo) Bool(key string, def bool) (bool, error) {
	value, ok, err := r.Get(key)
	if err != nil {
		return def, err
	}
	if !ok {
		return def, nil
	}
	switch strings.ToLower(value) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	}
	return def, nil
}

// All returns every setting, ordered by key.
func (r *SettingsRepo) All() ([]model.Setting, error) {
	rows, err := r.db.db.Query(`SELECT key, value FROM settings ORDER BY key`)
	if err != nil {
		return nil, apperr.NewStorageError("list settings", err)
	}
	defer rows.Close()

	var settings []model.Setting
	for rows.Next() {
		var s model.Setting
		if err := rows.Scan(&s.Key, &s.Value); err != nil {
			return nil, apperr.NewStorageError("scan setting", err)
		}
		settings = append(settings, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.NewStorageError("list settings", err)
	}
	return settings, nil
}
