package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mindease-app/mindease/internal/mocks"
	"github.com/mindease-app/mindease/internal/planner"
)

func TestHandlePlannerAskRequiresPrompt(t *testing.T) {
	srv, _ := newTestServer(t, new(mocks.MockGenerator))

	w := doRequest(srv, "POST", "/api/planner/ask", `{"prompt":""}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlePlannerAskNotScheduling(t *testing.T) {
	gen := new(mocks.MockGenerator)
	gen.On("Generate", mock.Anything, mock.Anything, mock.Anything).Return("no", nil)

	srv, _ := newTestServer(t, gen)
	w := doRequest(srv, "POST", "/api/planner/ask", `{"prompt":"I feel a bit down today"}`, "")

	require.Equal(t, http.StatusOK, w.Code)

	var resp plannerAskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "no", resp.Response)
	assert.Nil(t, resp.EventDetails)
	assert.Empty(t, resp.CalendarURL)
}

func TestHandlePlannerAskSchedulingFlow(t *testing.T) {
	gen := new(mocks.MockGenerator)
	// First call classifies, second call extracts
	gen.On("Generate", mock.Anything, mock.Anything, mock.Anything).Return("yes", nil).Once()
	gen.On("Generate", mock.Anything, mock.Anything, mock.Anything).Return(
		`{"title":"Dentist appointment","details":"Checkup","location":"","startDate":"20250610T150000","endDate":"20250610T160000"}`,
		nil,
	).Once()

	srv, _ := newTestServer(t, gen)
	w := doRequest(srv, "POST", "/api/planner/ask",
		`{"prompt":"Schedule a dentist appointment next Tuesday at 3pm"}`, "")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp plannerAskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "Yes, this is about scheduling an event.", resp.Response)
	require.NotNil(t, resp.EventDetails)
	assert.Equal(t, "Dentist appointment", resp.EventDetails.Title)
	assert.True(t, strings.HasPrefix(resp.CalendarURL, "https://calendar.google.com/calendar/render?"))
	assert.Contains(t, resp.CalendarURL, "dates=20250610T150000/20250610T160000")
	gen.AssertExpectations(t)
}

func TestHandlePlannerAskFallsBackOnMalformedExtraction(t *testing.T) {
	gen := new(mocks.MockGenerator)
	gen.On("Generate", mock.Anything, mock.Anything, mock.Anything).Return("yes", nil).Once()
	gen.On("Generate", mock.Anything, mock.Anything, mock.Anything).
		Return("sorry, no structured output today", nil).Once()

	srv, _ := newTestServer(t, gen)
	w := doRequest(srv, "POST", "/api/planner/ask", `{"prompt":"plan lunch with Sam friday"}`, "")

	require.Equal(t, http.StatusOK, w.Code)

	var resp plannerAskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.NotNil(t, resp.EventDetails)
	assert.Equal(t, planner.DefaultEventFields("plan lunch with Sam friday"), *resp.EventDetails)
	assert.Contains(t, resp.CalendarURL, "dates=20240501T090000/20240501T100000")
	assert.Contains(t, resp.CalendarURL, "text=New%20Event")
}

func TestHandlePlannerAskClassifierFailure(t *testing.T) {
	gen := new(mocks.MockGenerator)
	gen.On("Generate", mock.Anything, mock.Anything, mock.Anything).
		Return("", fmt.Errorf("upstream down"))

	srv, _ := newTestServer(t, gen)
	w := doRequest(srv, "POST", "/api/planner/ask", `{"prompt":"schedule a call tomorrow"}`, "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandleGenAIAsk(t *testing.T) {
	gen := new(mocks.MockGenerator)
	gen.On("Generate", mock.Anything, "", "what helps with stress?").
		Return("Try a short walk and slow breathing.", nil)

	srv, _ := newTestServer(t, gen)
	w := doRequest(srv, "POST", "/api/genai/ask", `{"prompt":"what helps with stress?"}`, "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "slow breathing")
}

func TestHandleGenAIAskRequiresPrompt(t *testing.T) {
	srv, _ := newTestServer(t, new(mocks.MockGenerator))

	w := doRequest(srv, "POST", "/api/genai/ask", `{}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
