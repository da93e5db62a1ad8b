package server

import (
	"net/http"
	"time"

	"github.com/mindease-app/mindease/internal/auth"
)

// Streak API

// handleGetStreak records today's activity and returns the updated streak
// GET /api/user/streak
func (s *Server) handleGetStreak(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	rec, err := s.tracker.Touch(user.ID, time.Now())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to update streak")
		return
	}

	respondJSON(w, http.StatusOK, rec)
}

// handleStreakStats returns usage counters for the authenticated user
// GET /api/user/streak/stats
func (s *Server) handleStreakStats(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	stats, err := s.tracker.UsageStats(user.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load usage stats")
		return
	}

	respondJSON(w, http.StatusOK, stats)
}
