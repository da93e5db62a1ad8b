package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// MoodEntry is one analyzed mood snapshot
type MoodEntry struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"`
	AnalyzedMood string    `json:"analyzedMood"`
	RawPrompts   []string  `json:"rawPrompts"`
	CreatedAt    time.Time `json:"date"`
}

// CreateMood stores an analyzed mood entry
func (d *DB) CreateMood(entry *MoodEntry) error {
	promptsJSON, err := json.Marshal(entry.RawPrompts)
	if err != nil {
		return fmt.Errorf("failed to marshal raw prompts: %w", err)
	}

	now := time.Now()
	result, err := d.Exec(`
		INSERT INTO moods (user_id, analyzed_mood, raw_prompts, created_at)
		VALUES (?, ?, ?, ?)
	`, entry.UserID, entry.AnalyzedMood, string(promptsJSON), now)
	if err != nil {
		return fmt.Errorf("failed to create mood: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	entry.ID = id
	entry.CreatedAt = now

	return nil
}

// ListMoods returns a user's mood history, newest first
func (d *DB) ListMoods(userID int64, limit int) ([]MoodEntry, error) {
	rows, err := d.Query(`
		SELECT id, user_id, analyzed_mood, raw_prompts, created_at
		FROM moods
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list moods: %w", err)
	}
	defer rows.Close()

	var entries []MoodEntry
	for rows.Next() {
		entry, err := scanMood(rows.Scan)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}

	return entries, rows.Err()
}

// GetCurrentMood returns the most recent mood entry, or nil when none exists
func (d *DB) GetCurrentMood(userID int64) (*MoodEntry, error) {
	row := d.QueryRow(`
		SELECT id, user_id, analyzed_mood, raw_prompts, created_at
		FROM moods
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`, userID)

	entry, err := scanMood(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func scanMood(scan func(...any) error) (*MoodEntry, error) {
	var entry MoodEntry
	var promptsJSON sql.NullString

	if err := scan(&entry.ID, &entry.UserID, &entry.AnalyzedMood, &promptsJSON, &entry.CreatedAt); err != nil {
		return nil, err
	}

	if promptsJSON.Valid && promptsJSON.String != "" {
		if err := json.Unmarshal([]byte(promptsJSON.String), &entry.RawPrompts); err != nil {
			return nil, fmt.Errorf("failed to unmarshal raw prompts: %w", err)
		}
	}

	return &entry, nil
}
