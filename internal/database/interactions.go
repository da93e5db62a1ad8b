package database

import (
	"database/sql"
	"fmt"
	"time"
)

// Interaction is one stored chat turn. The embedding vector for a turn lives
// in the vector store under the same UID.
type Interaction struct {
	ID        int64     `json:"id"`
	UID       string    `json:"uid"`
	UserID    int64     `json:"userId"`
	Prompt    string    `json:"prompt"`
	Response  string    `json:"response"`
	MoodTag   *string   `json:"moodTag,omitempty"`
	CreatedAt time.Time `json:"timestamp"`
}

// CreateInteraction stores a chat turn. Interactions are immutable once written.
func (d *DB) CreateInteraction(i *Interaction) error {
	now := time.Now()

	result, err := d.Exec(`
		INSERT INTO interactions (uid, user_id, prompt, response, mood_tag, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, i.UID, i.UserID, i.Prompt, i.Response, i.MoodTag, now)
	if err != nil {
		return fmt.Errorf("failed to create interaction: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	i.ID = id
	i.CreatedAt = now

	return nil
}

// CountInteractions returns the total stored turns for a user
func (d *DB) CountInteractions(userID int64) (int, error) {
	var count int
	err := d.QueryRow(`
		SELECT COUNT(*) FROM interactions WHERE user_id = ?
	`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count interactions: %w", err)
	}
	return count, nil
}

// CountMoodTagged returns the number of turns carrying a mood label
func (d *DB) CountMoodTagged(userID int64) (int, error) {
	var count int
	err := d.QueryRow(`
		SELECT COUNT(*) FROM interactions WHERE user_id = ? AND mood_tag IS NOT NULL
	`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count mood-tagged interactions: %w", err)
	}
	return count, nil
}

// GetRecentPrompts returns the user's most recent prompts, newest first
func (d *DB) GetRecentPrompts(userID int64, limit int) ([]string, error) {
	rows, err := d.Query(`
		SELECT prompt FROM interactions
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent prompts: %w", err)
	}
	defer rows.Close()

	var prompts []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		prompts = append(prompts, p)
	}

	return prompts, rows.Err()
}

// GetInteractionByUID returns a stored turn, or nil when none exists
func (d *DB) GetInteractionByUID(uid string) (*Interaction, error) {
	var i Interaction
	err := d.QueryRow(`
		SELECT id, uid, user_id, prompt, response, mood_tag, created_at
		FROM interactions WHERE uid = ?
	`, uid).Scan(&i.ID, &i.UID, &i.UserID, &i.Prompt, &i.Response, &i.MoodTag, &i.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &i, nil
}
