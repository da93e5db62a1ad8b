package server

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// TTS API

type ttsRequest struct {
	Text    string `json:"text"`
	VoiceID string `json:"voiceId"`
}

// handleGenerateSpeech proxies a text to the speech API and returns the audio URL
// POST /api/tts/generate
func (s *Server) handleGenerateSpeech(w http.ResponseWriter, r *http.Request) {
	if s.ttsClient == nil || !s.ttsClient.IsConfigured() {
		respondError(w, http.StatusServiceUnavailable, "speech generation not configured")
		return
	}

	var req ttsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Text == "" {
		respondError(w, http.StatusBadRequest, "text is required")
		return
	}

	audioURL, err := s.ttsClient.Generate(r.Context(), req.Text, req.VoiceID)
	if err != nil {
		fmt.Printf("Error generating speech: %v\n", err)
		respondError(w, http.StatusInternalServerError, "failed to generate speech")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"audioUrl": audioURL,
	})
}
