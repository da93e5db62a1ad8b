package database

import (
	"database/sql"
	"fmt"
	"time"
)

// dayLayout is the calendar-day key format used in streak_history
const dayLayout = "2006-01-02"

// StreakRecord is the per-user streak document
type StreakRecord struct {
	UserID        int64       `json:"userId"`
	CurrentStreak int         `json:"currentStreak"`
	LongestStreak int         `json:"longestStreak"`
	LastActive    time.Time   `json:"lastActive"`
	StreakHistory []StreakDay `json:"streakHistory"`
	Version       int64       `json:"-"`
}

// StreakDay is a single day-level activity entry
type StreakDay struct {
	Date   time.Time `json:"date"`
	Active bool      `json:"active"`
}

// GetStreak returns the streak record for a user, or nil when none exists.
// History is returned oldest-first.
func (d *DB) GetStreak(userID int64) (*StreakRecord, error) {
	var rec StreakRecord
	err := d.QueryRow(`
		SELECT user_id, current_streak, longest_streak, last_active, version
		FROM user_streaks WHERE user_id = ?
	`, userID).Scan(&rec.UserID, &rec.CurrentStreak, &rec.LongestStreak, &rec.LastActive, &rec.Version)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get streak: %w", err)
	}

	history, err := d.GetStreakHistory(userID)
	if err != nil {
		return nil, err
	}
	rec.StreakHistory = history

	return &rec, nil
}

// CreateStreak inserts a fresh streak record for a user's first activity day.
// Returns nil without error when a concurrent request created the record
// first; callers re-read and take the update path instead.
func (d *DB) CreateStreak(userID int64, day time.Time) (*StreakRecord, error) {
	result, err := d.Exec(`
		INSERT OR IGNORE INTO user_streaks (user_id, current_streak, longest_streak, last_active, version)
		VALUES (?, 1, 1, ?, 0)
	`, userID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to create streak: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, nil
	}

	if err := d.AppendStreakDay(userID, day); err != nil {
		return nil, err
	}

	return d.GetStreak(userID)
}

// UpdateStreakCAS applies a streak update conditioned on the record version.
// Returns false without error when another writer got there first.
func (d *DB) UpdateStreakCAS(userID int64, version int64, currentStreak, longestStreak int, lastActive time.Time) (bool, error) {
	result, err := d.Exec(`
		UPDATE user_streaks
		SET current_streak = ?, longest_streak = ?, last_active = ?,
		    version = version + 1, updated_at = CURRENT_TIMESTAMP
		WHERE user_id = ? AND version = ?
	`, currentStreak, longestStreak, lastActive, userID, version)
	if err != nil {
		return false, fmt.Errorf("failed to update streak: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

// AppendStreakDay records activity for a calendar day. Re-recording the same
// day is a no-op.
func (d *DB) AppendStreakDay(userID int64, day time.Time) error {
	_, err := d.Exec(`
		INSERT OR IGNORE INTO streak_history (user_id, day, active)
		VALUES (?, ?, 1)
	`, userID, day.Format(dayLayout))
	if err != nil {
		return fmt.Errorf("failed to append streak day: %w", err)
	}
	return nil
}

// TrimStreakHistory drops the oldest history rows so at most keep remain
func (d *DB) TrimStreakHistory(userID int64, keep int) error {
	_, err := d.Exec(`
		DELETE FROM streak_history
		WHERE user_id = ? AND id NOT IN (
			SELECT id FROM streak_history
			WHERE user_id = ?
			ORDER BY day DESC
			LIMIT ?
		)
	`, userID, userID, keep)
	if err != nil {
		return fmt.Errorf("failed to trim streak history: %w", err)
	}
	return nil
}

// GetStreakHistory returns a user's day entries, oldest first
func (d *DB) GetStreakHistory(userID int64) ([]StreakDay, error) {
	rows, err := d.Query(`
		SELECT day, active FROM streak_history
		WHERE user_id = ?
		ORDER BY day ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get streak history: %w", err)
	}
	defer rows.Close()

	var history []StreakDay
	for rows.Next() {
		var dayStr string
		var entry StreakDay
		if err := rows.Scan(&dayStr, &entry.Active); err != nil {
			return nil, err
		}
		day, err := time.ParseInLocation(dayLayout, dayStr, time.Local)
		if err != nil {
			return nil, fmt.Errorf("invalid day in streak history: %w", err)
		}
		entry.Date = day
		history = append(history, entry)
	}

	return history, rows.Err()
}
