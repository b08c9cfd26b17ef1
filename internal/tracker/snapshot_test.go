package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/worktracker/internal/model"
)

func TestSnapshotDaily(t *testing.T) {
	engine, db, _ := setupEngine(t, tuesday)

	seedClosed(t, db, "2026-03-10", "09:00:00", 3600)
	seedClosed(t, db, "2026-03-09", "09:00:00", 7200)

	snap, err := engine.Snapshot(3)
	require.NoError(t, err)
	require.Len(t, snap.Daily, 3)

	// Oldest first, zero-filled.
	assert.Equal(t, "2026-03-08", snap.Daily[0].Date)
	assert.Equal(t, 0, snap.Daily[0].Seconds)
	assert.Equal(t, "2026-03-09", snap.Daily[1].Date)
	assert.Equal(t, 7200, snap.Daily[1].Seconds)
	assert.Equal(t, 2.0, snap.Daily[1].Hours)
	assert.Equal(t, "2026-03-10", snap.Daily[2].Date)
	assert.Equal(t, 3600, snap.Daily[2].Seconds)
}

func TestSnapshotWeeklyGrouping(t *testing.T) {
	engine, db, _ := setupEngine(t, tuesday)

	seedClosed(t, db, "2026-03-10", "09:00:00", 3600) // week of Mar 9
	seedClosed(t, db, "2026-03-08", "09:00:00", 1800) // Sunday, week of Mar 2

	snap, err := engine.Snapshot(7)
	require.NoError(t, err)
	require.Len(t, snap.Weekly, 2)

	assert.Equal(t, "2026-03-02", snap.Weekly[0].WeekStart)
	assert.Equal(t, 1800, snap.Weekly[0].Seconds)
	assert.Equal(t, "2026-03-09", snap.Weekly[1].WeekStart)
	assert.Equal(t, 3600, snap.Weekly[1].Seconds)
}

func TestSnapshotHourlyHistogram(t *testing.T) {
	engine, db, _ := setupEngine(t, tuesday)

	// Two sessions starting in the 14:00 hour, one in the 09:00 hour.
	seedClosed(t, db, "2026-03-10", "14:05:00", 3600)
	seedClosed(t, db, "2026-03-09", "14:45:00", 3600)
	seedClosed(t, db, "2026-03-09", "09:00:00", 1800)

	snap, err := engine.Snapshot(7)
	require.NoError(t, err)

	assert.Equal(t, 2.0, snap.Hourly[14])
	assert.Equal(t, 0.5, snap.Hourly[9])
	_, present := snap.Hourly[10]
	assert.False(t, present)
}

func TestSnapshotProductivity(t *testing.T) {
	engine, db, _ := setupEngine(t, tuesday)
	setGoal(t, db, "8")

	seedClosed(t, db, "2026-03-10", "09:00:00", 14400) // 4h of an 8h goal

	snap, err := engine.Snapshot(1)
	require.NoError(t, err)
	require.Len(t, snap.Productivity, 1)
	assert.Equal(t, "2026-03-10", snap.Productivity[0].Date)
	assert.InDelta(t, 50.0, snap.Productivity[0].Percent, 0.001)
}

func TestSnapshotZeroGoal(t *testing.T) {
	engine, db, _ := setupEngine(t, tuesday)
	setGoal(t, db, "0")

	seedClosed(t, db, "2026-03-10", "09:00:00", 3600)

	snap, err := engine.Snapshot(1)
	require.NoError(t, err)
	require.Len(t, snap.Productivity, 1)
	assert.Equal(t, 0.0, snap.Productivity[0].Percent)
}

func TestSnapshotInvalidWindow(t *testing.T) {
	engine, _, _ := setupEngine(t, tuesday)

	snap, err := engine.Snapshot(0)
	require.NoError(t, err)
	assert.Len(t, snap.Daily, 1)
}

func TestSnapshotSkipsUnparsableStartTimes(t *testing.T) {
	engine, db, _ := setupEngine(t, tuesday)

	_, err := db.SQL().Exec(
		`INSERT INTO work_sessions (date, start_time, end_time, duration, is_active)
		 VALUES (?, ?, ?, ?, 0)`,
		"2026-03-10", "garbage", "", 3600)
	require.NoError(t, err)

	snap, err := engine.Snapshot(1)
	require.NoError(t, err)
	assert.Empty(t, snap.Hourly)

	var s model.WorkSession
	s.StartTime = "garbage"
	assert.Equal(t, -1, s.StartHour())
}
