package storage

import (
	"time"

	"github.com/manav03panchal/worktracker/internal/apperr"
	"github.com/manav03panchal/worktracker/internal/logging"
	"github.com/manav03panchal/worktracker/internal/model"
)

// RecoverStale closes active sessions left over from a previous day, as
// happens after a crash or forced shutdown. Each stale session is truncated
// at the end of the day it started on. Returns the number of sessions closed.
func (r *SessionRepo) RecoverStale() (int, error) {
	today := r.db.Now().Format(model.DateLayout)

	rows, err := r.db.db.Query(
		`SELECT id, date, start_time FROM work_sessions
		 WHERE is_active = 1 AND date < ?`, today)
	if err != nil {
		return 0, apperr.NewStorageError("recover sessions", err)
	}

	type stale struct {
		id    int64
		date  string
		start string
	}
	var found []stale
	for rows.Next() {
		var s stale
		if err := rows.Scan(&s.id, &s.date, &s.start); err != nil {
			rows.Close()
			return 0, apperr.NewStorageError("recover sessions", err)
		}
		found = append(found, s)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, apperr.NewStorageError("recover sessions", err)
	}

	const endOfDay = "23:59:59"
	closed := 0
	for _, s := range found {
		start, err := time.ParseInLocation(
			model.DateLayout+" "+model.ClockLayout, s.date+" "+s.start, time.Local)
		if err != nil {
			logging.Warn("skipping unparsable stale session",
				logging.KeySessionID, s.id, logging.KeyDate, s.date)
			continue
		}
		end, err := time.ParseInLocation(
			model.DateLayout+" "+model.ClockLayout, s.date+" "+endOfDay, time.Local)
		if err != nil {
			continue
		}

		duration := int(end.Sub(start).Seconds())
		if duration < 0 {
			duration = 0
		}

		if _, err := r.db.db.Exec(
			`UPDATE work_sessions SET end_time = ?, duration = ?, is_active = 0 WHERE id = ?`,
			endOfDay, duration, s.id,
		); err != nil {
			return closed, apperr.NewStorageError("recover sessions", err)
		}

		logging.Info("closed stale session",
			logging.KeySessionID, s.id,
			logging.KeyDate, s.date,
			logging.KeySeconds, duration)
		closed++
	}

	return closed, nil
}
