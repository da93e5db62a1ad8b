package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindease-app/mindease/internal/auth"
	"github.com/mindease-app/mindease/internal/chat"
	"github.com/mindease-app/mindease/internal/database"
	"github.com/mindease-app/mindease/internal/mocks"
	"github.com/mindease-app/mindease/internal/mood"
	"github.com/mindease-app/mindease/internal/planner"
	"github.com/mindease-app/mindease/internal/streak"
)

// newTestServer wires a full server over an in-memory database and the given
// generator mock.
func newTestServer(t *testing.T, gen *mocks.MockGenerator) (*Server, *database.DB) {
	srv, db, _ := newTestServerWithMocks(t, gen)
	return srv, db
}

func newTestServerWithMocks(t *testing.T, gen *mocks.MockGenerator) (*Server, *database.DB, *mocks.MockRetriever) {
	t.Helper()

	db := database.NewTestDB(t)
	authService := auth.NewService(db, "test-secret")
	retriever := new(mocks.MockRetriever)

	srv := New(ServerConfig{
		DB:          db,
		AuthService: authService,
		Tracker:     streak.NewTracker(db),
		Planner:     planner.NewService(gen),
		Chat:        chat.NewService(db, retriever, gen),
		Mood:        mood.NewService(db, gen),
		Generator:   gen,
		Port:        0,
	})
	return srv, db, retriever
}

// registerAndLogin creates an account through the API and returns a bearer token
func registerAndLogin(t *testing.T, srv *Server, email string) string {
	t.Helper()

	body := fmt.Sprintf(`{"name":"Test","email":%q,"password":"s3cret"}`, email)
	w := doRequest(srv, "POST", "/api/auth/register", body, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doRequest(srv, "POST", "/api/auth/login", fmt.Sprintf(`{"email":%q,"password":"s3cret"}`, email), "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func doRequest(srv *Server, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestHandleHealthCheck(t *testing.T) {
	srv, _ := newTestServer(t, new(mocks.MockGenerator))

	w := doRequest(srv, "GET", "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestCORSPreflight(t *testing.T) {
	srv, _ := newTestServer(t, new(mocks.MockGenerator))

	req := httptest.NewRequest("OPTIONS", "/api/auth/login", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
