package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mindease-app/mindease/internal/auth"
)

// Chat API

type chatRequest struct {
	Prompt string `json:"prompt"`
}

// handleChat runs one retrieval-augmented chat turn
// POST /api/chat
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Prompt == "" {
		respondError(w, http.StatusBadRequest, "prompt is required")
		return
	}

	interaction, err := s.chatService.Respond(r.Context(), user.ID, req.Prompt)
	if err != nil {
		fmt.Printf("Error handling chat turn: %v\n", err)
		respondError(w, http.StatusInternalServerError, "failed to process the request")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"response":    interaction.Response,
		"interaction": interaction,
	})
}

type genAIAskRequest struct {
	Prompt string `json:"prompt"`
}

// handleGenAIAsk forwards a prompt straight to the generation model
// POST /api/genai/ask
func (s *Server) handleGenAIAsk(w http.ResponseWriter, r *http.Request) {
	var req genAIAskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Prompt == "" {
		respondError(w, http.StatusBadRequest, "prompt is required")
		return
	}

	reply, err := s.gen.Generate(r.Context(), "", req.Prompt)
	if err != nil {
		fmt.Printf("Error generating response: %v\n", err)
		respondError(w, http.StatusInternalServerError, "failed to process the request")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"response": reply,
	})
}
