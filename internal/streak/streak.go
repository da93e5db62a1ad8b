package streak

import (
	"fmt"
	"time"

	"github.com/mindease-app/mindease/internal/database"
	"github.com/mindease-app/mindease/internal/timeutil"
)

const (
	// historyWindow is the sliding window of day entries kept per user
	historyWindow = 60

	// casAttempts bounds the read-modify-write retries when concurrent
	// requests race on the same streak record
	casAttempts = 3

	// eventsScheduledNotComputed marks a stat with no source of truth yet:
	// calendar links are opened client-side, so the server never learns
	// whether an event was actually created.
	eventsScheduledNotComputed = 0
)

// Tracker maintains per-user day-based activity streaks
type Tracker struct {
	db *database.DB
}

// NewTracker creates a streak tracker backed by the given store
func NewTracker(db *database.DB) *Tracker {
	return &Tracker{db: db}
}

// UsageStats summarizes a user's stored activity
type UsageStats struct {
	TotalInteractions int `json:"totalInteractions"`
	MoodEntries       int `json:"moodEntries"`
	EventsScheduled   int `json:"eventsScheduled"`
}

// Touch records activity for a user at the given instant and returns the
// updated streak record.
//
// First activity creates the record with a streak of 1. Activity on the same
// calendar day as the last update is a no-op besides an append-if-missing
// history entry. Activity exactly one day after the last update extends the
// streak; any other gap resets it to 1 while leaving the longest streak
// untouched. History is trimmed to the most recent 60 days.
func (t *Tracker) Touch(userID int64, now time.Time) (*database.StreakRecord, error) {
	today := timeutil.DayStart(now)

	for attempt := 0; attempt < casAttempts; attempt++ {
		rec, err := t.db.GetStreak(userID)
		if err != nil {
			return nil, err
		}

		if rec == nil {
			created, err := t.db.CreateStreak(userID, today)
			if err != nil {
				return nil, err
			}
			if created == nil {
				// Another request created the record first; re-read and retry
				continue
			}
			return created, nil
		}

		if timeutil.IsSameDay(rec.LastActive, today) {
			// Already active today; counters are unchanged
			if err := t.recordDay(userID, today); err != nil {
				return nil, err
			}
			return t.db.GetStreak(userID)
		}

		currentStreak := 1
		longestStreak := rec.LongestStreak
		if timeutil.IsYesterday(rec.LastActive, today) {
			currentStreak = rec.CurrentStreak + 1
			if currentStreak > longestStreak {
				longestStreak = currentStreak
			}
		}

		ok, err := t.db.UpdateStreakCAS(userID, rec.Version, currentStreak, longestStreak, today)
		if err != nil {
			return nil, err
		}
		if !ok {
			// Another request updated the record first; re-read and retry
			continue
		}

		if err := t.recordDay(userID, today); err != nil {
			return nil, err
		}
		return t.db.GetStreak(userID)
	}

	return nil, fmt.Errorf("streak update contention for user %d", userID)
}

// UsageStats counts a user's stored interactions and mood-tagged turns
func (t *Tracker) UsageStats(userID int64) (*UsageStats, error) {
	total, err := t.db.CountInteractions(userID)
	if err != nil {
		return nil, err
	}

	moodEntries, err := t.db.CountMoodTagged(userID)
	if err != nil {
		return nil, err
	}

	return &UsageStats{
		TotalInteractions: total,
		MoodEntries:       moodEntries,
		EventsScheduled:   eventsScheduledNotComputed,
	}, nil
}

func (t *Tracker) recordDay(userID int64, day time.Time) error {
	if err := t.db.AppendStreakDay(userID, day); err != nil {
		return err
	}
	return t.db.TrimStreakHistory(userID, historyWindow)
}
