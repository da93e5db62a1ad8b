package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mindease-app/mindease/internal/planner"
)

// Planner API

const schedulingConfirmation = "Yes, this is about scheduling an event."

type plannerAskRequest struct {
	Prompt string `json:"prompt"`
	// UserID is accepted for compatibility with existing clients; the
	// classifier does not personalize per user.
	UserID int64 `json:"userId"`
}

type plannerAskResponse struct {
	Response     string               `json:"response"`
	EventDetails *planner.EventFields `json:"eventDetails,omitempty"`
	CalendarURL  string               `json:"calendarUrl,omitempty"`
}

// handlePlannerAsk classifies a message for scheduling intent and, when it is
// one, extracts event fields and builds a calendar deep link.
// POST /api/planner/ask
func (s *Server) handlePlannerAsk(w http.ResponseWriter, r *http.Request) {
	var req plannerAskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Prompt == "" {
		respondError(w, http.StatusBadRequest, "prompt is required")
		return
	}

	classification, err := s.planner.ClassifyScheduling(r.Context(), req.Prompt)
	if err != nil {
		fmt.Printf("Error classifying scheduling intent: %v\n", err)
		respondError(w, http.StatusInternalServerError, "failed to process the request")
		return
	}

	if !classification.IsScheduling {
		respondJSON(w, http.StatusOK, plannerAskResponse{Response: "no"})
		return
	}

	result, err := s.planner.ExtractEventFields(r.Context(), req.Prompt)
	if err != nil {
		fmt.Printf("Error extracting event fields: %v\n", err)
		respondError(w, http.StatusInternalServerError, "failed to process the request")
		return
	}

	fields, ok := result.Fields()
	if !ok {
		fmt.Printf("Unparseable extraction output, using defaults: %s\n", result.RawText())
		fields = planner.DefaultEventFields(req.Prompt)
	}

	respondJSON(w, http.StatusOK, plannerAskResponse{
		Response:     schedulingConfirmation,
		EventDetails: &fields,
		CalendarURL:  planner.BuildCalendarURL(fields),
	})
}
