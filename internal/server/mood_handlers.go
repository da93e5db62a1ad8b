package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/mindease-app/mindease/internal/auth"
)

// Mood API

const defaultMoodHistoryLimit = 10

// handleMoodHistory lists the user's mood entries, newest first
// GET /api/mood
func (s *Server) handleMoodHistory(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	limit := defaultMoodHistoryLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	entries, err := s.moodService.History(user.ID, limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load mood history")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"moods": entries,
	})
}

// handleCurrentMood returns the most recent mood entry
// GET /api/mood/current
func (s *Server) handleCurrentMood(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	entry, err := s.moodService.Current(user.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load current mood")
		return
	}
	if entry == nil {
		// No history yet reads as neutral
		respondJSON(w, http.StatusOK, map[string]string{"analyzedMood": "neutral"})
		return
	}

	respondJSON(w, http.StatusOK, entry)
}

// handleAnalyzeMood analyzes recent prompts into a new mood entry
// POST /api/mood
func (s *Server) handleAnalyzeMood(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	entry, err := s.moodService.Analyze(r.Context(), user.ID)
	if err != nil {
		fmt.Printf("Error analyzing mood: %v\n", err)
		respondError(w, http.StatusInternalServerError, "failed to analyze mood")
		return
	}

	respondJSON(w, http.StatusCreated, entry)
}
