// Package mood analyzes a user's recent chat prompts into a single mood word
// and keeps the per-user mood history.
package mood

import (
	"context"
	"fmt"
	"strings"

	"github.com/mindease-app/mindease/internal/database"
)

// recentPromptCount is how many recent prompts feed one analysis
const recentPromptCount = 5

const analyzePrompt = `Analyze the overall mood of these messages and respond with ONLY one word: "happy", "neutral", or "sad".`

// fallbackMood is recorded when the model is unavailable or answers with
// anything other than the three allowed words.
const fallbackMood = "neutral"

// Generator is the external text-generation collaborator
type Generator interface {
	Generate(ctx context.Context, instruction, text string) (string, error)
}

// Service analyzes and records moods
type Service struct {
	db  *database.DB
	gen Generator
}

// NewService creates a new mood service
func NewService(db *database.DB, gen Generator) *Service {
	return &Service{db: db, gen: gen}
}

// Analyze classifies the user's recent prompts into a mood entry and stores
// it. The analysis never fails on model trouble: unusable output degrades to
// the neutral mood.
func (s *Service) Analyze(ctx context.Context, userID int64) (*database.MoodEntry, error) {
	prompts, err := s.db.GetRecentPrompts(userID, recentPromptCount)
	if err != nil {
		return nil, err
	}
	if len(prompts) == 0 {
		return nil, fmt.Errorf("no interactions to analyze for user %d", userID)
	}

	mood := fallbackMood
	reply, err := s.gen.Generate(ctx, analyzePrompt, strings.Join(prompts, "\n"))
	if err == nil {
		if normalized, ok := normalizeMood(reply); ok {
			mood = normalized
		}
	}

	entry := &database.MoodEntry{
		UserID:       userID,
		AnalyzedMood: mood,
		RawPrompts:   prompts,
	}
	if err := s.db.CreateMood(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// History returns the user's mood entries, newest first
func (s *Service) History(userID int64, limit int) ([]database.MoodEntry, error) {
	return s.db.ListMoods(userID, limit)
}

// Current returns the most recent mood entry, or nil when none exists
func (s *Service) Current(userID int64) (*database.MoodEntry, error) {
	return s.db.GetCurrentMood(userID)
}

// normalizeMood maps a model reply onto one of the allowed mood words
func normalizeMood(reply string) (string, bool) {
	word := strings.ToLower(strings.Trim(strings.TrimSpace(reply), `."'`))
	switch word {
	case "happy", "neutral", "sad":
		return word, true
	}
	return "", false
}
