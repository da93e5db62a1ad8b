package streak

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindease-app/mindease/internal/database"
)

func at(yyyy int, mm time.Month, dd, hh int) time.Time {
	return time.Date(yyyy, mm, dd, hh, 0, 0, 0, time.Local)
}

func TestTouchFirstActivity(t *testing.T) {
	db := database.NewTestDB(t)
	user := database.CreateTestUser(t, db)
	tracker := NewTracker(db)

	rec, err := tracker.Touch(user.ID, at(2025, 3, 15, 9))
	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.Equal(t, 1, rec.CurrentStreak)
	assert.Equal(t, 1, rec.LongestStreak)
	require.Len(t, rec.StreakHistory, 1)
}

func TestTouchConsecutiveDaysExtendStreak(t *testing.T) {
	db := database.NewTestDB(t)
	user := database.CreateTestUser(t, db)
	tracker := NewTracker(db)

	days := []time.Time{
		at(2025, 3, 15, 9),
		at(2025, 3, 16, 22),
		at(2025, 3, 17, 7),
	}
	var rec *database.StreakRecord
	var err error
	for _, d := range days {
		rec, err = tracker.Touch(user.ID, d)
		require.NoError(t, err)
	}

	assert.Equal(t, 3, rec.CurrentStreak)
	assert.Equal(t, 3, rec.LongestStreak)
	assert.Len(t, rec.StreakHistory, 3)
}

func TestTouchGapResetsCurrentButKeepsLongest(t *testing.T) {
	db := database.NewTestDB(t)
	user := database.CreateTestUser(t, db)
	tracker := NewTracker(db)

	_, err := tracker.Touch(user.ID, at(2025, 3, 15, 9))
	require.NoError(t, err)
	_, err = tracker.Touch(user.ID, at(2025, 3, 16, 9))
	require.NoError(t, err)
	_, err = tracker.Touch(user.ID, at(2025, 3, 17, 9))
	require.NoError(t, err)

	// Two missed days
	rec, err := tracker.Touch(user.ID, at(2025, 3, 20, 9))
	require.NoError(t, err)

	assert.Equal(t, 1, rec.CurrentStreak)
	assert.Equal(t, 3, rec.LongestStreak)
}

func TestTouchSameDayIsIdempotent(t *testing.T) {
	db := database.NewTestDB(t)
	user := database.CreateTestUser(t, db)
	tracker := NewTracker(db)

	_, err := tracker.Touch(user.ID, at(2025, 3, 15, 9))
	require.NoError(t, err)
	_, err = tracker.Touch(user.ID, at(2025, 3, 16, 9))
	require.NoError(t, err)

	for _, hour := range []int{10, 14, 23} {
		rec, err := tracker.Touch(user.ID, at(2025, 3, 16, hour))
		require.NoError(t, err)
		assert.Equal(t, 2, rec.CurrentStreak)
		assert.Equal(t, 2, rec.LongestStreak)
		assert.Len(t, rec.StreakHistory, 2)
	}
}

func TestTouchKeepsSixtyDayWindow(t *testing.T) {
	db := database.NewTestDB(t)
	user := database.CreateTestUser(t, db)
	tracker := NewTracker(db)

	start := at(2025, 1, 1, 12)
	var rec *database.StreakRecord
	var err error
	for i := 0; i < 75; i++ {
		rec, err = tracker.Touch(user.ID, start.AddDate(0, 0, i))
		require.NoError(t, err)
	}

	assert.Equal(t, 75, rec.CurrentStreak)
	assert.Equal(t, 75, rec.LongestStreak)
	require.Len(t, rec.StreakHistory, 60)

	// Oldest surviving entry is day 15 of the run
	wantOldest := time.Date(2025, 1, 16, 0, 0, 0, 0, time.Local)
	assert.Equal(t, wantOldest, rec.StreakHistory[0].Date)
}

func TestTouchRebuildsAfterLongAbsence(t *testing.T) {
	db := database.NewTestDB(t)
	user := database.CreateTestUser(t, db)
	tracker := NewTracker(db)

	_, err := tracker.Touch(user.ID, at(2025, 1, 1, 9))
	require.NoError(t, err)

	rec, err := tracker.Touch(user.ID, at(2025, 6, 1, 9))
	require.NoError(t, err)
	assert.Equal(t, 1, rec.CurrentStreak)

	rec, err = tracker.Touch(user.ID, at(2025, 6, 2, 9))
	require.NoError(t, err)
	assert.Equal(t, 2, rec.CurrentStreak)
}

func TestUsageStats(t *testing.T) {
	db := database.NewTestDB(t)
	user := database.CreateTestUser(t, db)
	tracker := NewTracker(db)

	require.NoError(t, db.CreateInteraction(&database.Interaction{
		UID: "s1", UserID: user.ID, Prompt: "a", MoodTag: database.StringPtr("happy"),
	}))
	require.NoError(t, db.CreateInteraction(&database.Interaction{
		UID: "s2", UserID: user.ID, Prompt: "b",
	}))

	stats, err := tracker.UsageStats(user.ID)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalInteractions)
	assert.Equal(t, 1, stats.MoodEntries)
	assert.Equal(t, 0, stats.EventsScheduled)
}
