// Package tts wraps the Murf text-to-speech REST API
package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultAPIURL  = "https://api.murf.ai/v1/speech/generate"
	defaultVoiceID = "en-US-julie"
)

// Client is a Murf TTS API client
type Client struct {
	apiKey     string
	apiURL     string
	voiceID    string
	httpClient *http.Client
}

// NewClient creates a new TTS client
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		apiURL:  defaultAPIURL,
		voiceID: defaultVoiceID,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// IsConfigured returns whether an API key is set
func (c *Client) IsConfigured() bool {
	return c.apiKey != ""
}

type generateRequest struct {
	Text     string `json:"text"`
	VoiceID  string `json:"voiceId"`
	Pitch    int    `json:"pitch"`
	Rate     int    `json:"rate"`
	Style    string `json:"style"`
	Emphasis string `json:"emphasis"`
}

type generateResponse struct {
	AudioURL string `json:"audioUrl"`
	URL      string `json:"url"`
	Message  string `json:"message"`
}

// Generate synthesizes speech for a text and returns the audio file URL.
// An empty voice selects the client's default voice.
func (c *Client) Generate(ctx context.Context, text, voice string) (string, error) {
	if voice == "" {
		voice = c.voiceID
	}

	reqBody := generateRequest{
		Text:     text,
		VoiceID:  voice,
		Pitch:    0,
		Rate:     0,
		Style:    "conversational",
		Emphasis: "moderate",
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call TTS API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("TTS API returned status %d: %s", resp.StatusCode, string(body))
	}

	var result generateResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	// Some API versions name the field audioUrl, others url
	audioURL := result.AudioURL
	if audioURL == "" {
		audioURL = result.URL
	}
	if audioURL == "" {
		return "", fmt.Errorf("TTS API returned no audio URL")
	}
	return audioURL, nil
}
