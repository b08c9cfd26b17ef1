package storage

import (
	"database/sql"
	"errors"
	"time"

	"github.com/manav03panchal/worktracker/internal/apperr"
	"github.com/manav03panchal/worktracker/internal/model"
)

// SessionRepo provides operations for WorkSession rows.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo creates a new session repository.
func NewSessionRepo(db *DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// Start inserts a new active session dated today and returns its id.
// The check for an existing active session and the insert run in one
// transaction so the at-most-one-active invariant holds without caller
// discipline.
func (r *SessionRepo) Start() (int64, error) {
	now := r.db.Now()

	tx, err := r.db.db.Begin()
	if err != nil {
		return 0, apperr.NewStorageError("start session", err)
	}
	defer tx.Rollback()

	var active int
	if err := tx.QueryRow(
		`SELECT COUNT(1) FROM work_sessions WHERE is_active = 1`,
	).Scan(&active); err != nil {
		return 0, apperr.NewStorageError("start session", err)
	}
	if active > 0 {
		return 0, apperr.ErrSessionActive
	}

	res, err := tx.Exec(
		`INSERT INTO work_sessions (date, start_time, is_active) VALUES (?, ?, 1)`,
		now.Format(model.DateLayout), now.Format(model.ClockLayout),
	)
	if err != nil {
		return 0, apperr.NewStorageError("start session", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, apperr.NewStorageError("start session", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, apperr.NewStorageError("start session", err)
	}

	return id, nil
}

// End closes the session with the given id and returns its duration in
// seconds. An unknown id is a no-op returning 0. The start instant is
// reconstructed from the session's stored date, so stopping after midnight
// still yields the true elapsed time, attributed to the day the session
// started on.
func (r *SessionRepo) End(id int64) (int, error) {
	now := r.db.Now()

	var date, startTime string
	err := r.db.db.QueryRow(
		`SELECT date, start_time FROM work_sessions WHERE id = ?`, id,
	).Scan(&date, &startTime)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, apperr.NewStorageError("end session", err)
	}

	start, err := time.ParseInLocation(
		model.DateLayout+" "+model.ClockLayout, date+" "+startTime, time.Local)
	if err != nil {
		return 0, apperr.NewStorageError("end session", err)
	}

	duration := int(now.Sub(start).Seconds())
	if duration < 0 {
		duration = 0
	}

	if _, err := r.db.db.Exec(
		`UPDATE work_sessions SET end_time = ?, duration = ?, is_active = 0 WHERE id = ?`,
		now.Format(model.ClockLayout), duration, id,
	); err != nil {
		return 0, apperr.NewStorageError("end session", err)
	}

	return duration, nil
}

// Active returns the active session dated today, or nil if there is none.
// An active row carried over from a previous day is not reported; it is
// closed by RecoverStale on open.
func (r *SessionRepo) Active() (*model.WorkSession, error) {
	return r.ActiveOn(r.db.Now().Format(model.DateLayout))
}

// ActiveOn returns the active session for the given date, or nil.
func (r *SessionRepo) ActiveOn(date string) (*model.WorkSession, error) {
	row := r.db.db.QueryRow(
		`SELECT id, date, start_time, COALESCE(end_time, ''), duration, is_active
		 FROM work_sessions WHERE date = ? AND is_active = 1`, date)

	s, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.NewStorageError("query active session", err)
	}
	return s, nil
}

// Get returns the session with the given id, or nil if it does not exist.
func (r *SessionRepo) Get(id int64) (*model.WorkSession, error) {
	row := r.db.db.QueryRow(
		`SELECT id, date, start_time, COALESCE(end_time, ''), duration, is_active
		 FROM work_sessions WHERE id = ?`, id)

	s, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.NewStorageError("query session", err)
	}
	return s, nil
}

// ClosedSecondsOn returns the sum of closed-session durations on a date.
func (r *SessionRepo) ClosedSecondsOn(date string) (int, error) {
	var total int
	err := r.db.db.QueryRow(
		`SELECT COALESCE(SUM(duration), 0) FROM work_sessions
		 WHERE date = ? AND is_active = 0`, date,
	).Scan(&total)
	if err != nil {
		return 0, apperr.NewStorageError("sum daily durations", err)
	}
	return total, nil
}

// ClosedSince returns all closed sessions dated on or after the given date,
// oldest first.
func (r *SessionRepo) ClosedSince(date string) ([]*model.WorkSession, error) {
	rows, err := r.db.db.Query(
		`SELECT id, date, start_time, COALESCE(end_time, ''), duration, is_active
		 FROM work_sessions WHERE date >= ? AND is_active = 0
		 ORDER BY date, id`, date)
	if err != nil {
		return nil, apperr.NewStorageError("query sessions", err)
	}
	defer rows.Close()

	var sessions []*model.WorkSession
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, apperr.NewStorageError("scan session", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.NewStorageError("query sessions", err)
	}
	return sessions, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSession(sc scanner) (*model.WorkSession, error) {
	var s model.WorkSession
	var active int
	if err := sc.Scan(&s.ID, &s.Date, &s.StartTime, &s.EndTime, &s.Duration, &active); err != nil {
		return nil, err
	}
	s.Active = active != 0
	return &s, nil
}
