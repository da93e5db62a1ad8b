package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(yyyy int, mm time.Month, dd int) time.Time {
	return time.Date(yyyy, mm, dd, 0, 0, 0, 0, time.Local)
}

func TestGetStreakReturnsNilWhenMissing(t *testing.T) {
	db := NewTestDB(t)
	user := CreateTestUser(t, db)

	rec, err := db.GetStreak(user.ID)
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestCreateStreak(t *testing.T) {
	db := NewTestDB(t)
	user := CreateTestUser(t, db)

	rec, err := db.CreateStreak(user.ID, day(2025, 3, 15))
	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.Equal(t, user.ID, rec.UserID)
	assert.Equal(t, 1, rec.CurrentStreak)
	assert.Equal(t, 1, rec.LongestStreak)
	require.Len(t, rec.StreakHistory, 1)
	assert.True(t, rec.StreakHistory[0].Active)
	assert.Equal(t, day(2025, 3, 15), rec.StreakHistory[0].Date)
}

func TestCreateStreakLosesRaceGracefully(t *testing.T) {
	db := NewTestDB(t)
	user := CreateTestUser(t, db)

	first, err := db.CreateStreak(user.ID, day(2025, 3, 15))
	require.NoError(t, err)
	require.NotNil(t, first)

	// A second create for the same user signals the lost race instead of
	// failing on the primary-key conflict
	second, err := db.CreateStreak(user.ID, day(2025, 3, 15))
	require.NoError(t, err)
	assert.Nil(t, second)

	rec, err := db.GetStreak(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, rec.CurrentStreak)
	assert.Len(t, rec.StreakHistory, 1)
}

func TestUpdateStreakCAS(t *testing.T) {
	db := NewTestDB(t)
	user := CreateTestUser(t, db)

	rec, err := db.CreateStreak(user.ID, day(2025, 3, 15))
	require.NoError(t, err)

	ok, err := db.UpdateStreakCAS(user.ID, rec.Version, 2, 2, day(2025, 3, 16))
	require.NoError(t, err)
	assert.True(t, ok)

	updated, err := db.GetStreak(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.CurrentStreak)
	assert.Equal(t, 2, updated.LongestStreak)
	assert.Equal(t, rec.Version+1, updated.Version)
}

func TestUpdateStreakCASRejectsStaleVersion(t *testing.T) {
	db := NewTestDB(t)
	user := CreateTestUser(t, db)

	rec, err := db.CreateStreak(user.ID, day(2025, 3, 15))
	require.NoError(t, err)

	ok, err := db.UpdateStreakCAS(user.ID, rec.Version, 2, 2, day(2025, 3, 16))
	require.NoError(t, err)
	require.True(t, ok)

	// Second write with the stale version loses the race
	ok, err = db.UpdateStreakCAS(user.ID, rec.Version, 5, 5, day(2025, 3, 17))
	require.NoError(t, err)
	assert.False(t, ok)

	current, err := db.GetStreak(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, current.CurrentStreak)
}

func TestAppendStreakDayIsIdempotent(t *testing.T) {
	db := NewTestDB(t)
	user := CreateTestUser(t, db)

	require.NoError(t, db.AppendStreakDay(user.ID, day(2025, 3, 15)))
	require.NoError(t, db.AppendStreakDay(user.ID, day(2025, 3, 15)))

	history, err := db.GetStreakHistory(user.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestTrimStreakHistoryKeepsMostRecent(t *testing.T) {
	db := NewTestDB(t)
	user := CreateTestUser(t, db)

	start := day(2025, 1, 1)
	for i := 0; i < 70; i++ {
		require.NoError(t, db.AppendStreakDay(user.ID, start.AddDate(0, 0, i)))
	}

	require.NoError(t, db.TrimStreakHistory(user.ID, 60))

	history, err := db.GetStreakHistory(user.ID)
	require.NoError(t, err)
	require.Len(t, history, 60)

	// Oldest 10 days are gone, the rest survive oldest-first
	assert.Equal(t, start.AddDate(0, 0, 10), history[0].Date)
	assert.Equal(t, start.AddDate(0, 0, 69), history[len(history)-1].Date)
}

func TestStreakHistoryIsPerUser(t *testing.T) {
	db := NewTestDB(t)
	alice := CreateTestUser(t, db)
	bob := CreateTestUser(t, db)

	require.NoError(t, db.AppendStreakDay(alice.ID, day(2025, 3, 15)))
	require.NoError(t, db.AppendStreakDay(bob.ID, day(2025, 3, 15)))
	require.NoError(t, db.AppendStreakDay(bob.ID, day(2025, 3, 16)))

	aliceHistory, err := db.GetStreakHistory(alice.ID)
	require.NoError(t, err)
	bobHistory, err := db.GetStreakHistory(bob.ID)
	require.NoError(t, err)

	assert.Len(t, aliceHistory, 1)
	assert.Len(t, bobHistory, 2)
}
