package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mindease-app/mindease/internal/auth"
	"github.com/mindease-app/mindease/internal/chat"
	"github.com/mindease-app/mindease/internal/database"
	"github.com/mindease-app/mindease/internal/mood"
	"github.com/mindease-app/mindease/internal/planner"
	"github.com/mindease-app/mindease/internal/streak"
)

// SpeechClient synthesizes speech and returns the audio URL. An empty voice
// selects the provider default.
type SpeechClient interface {
	Generate(ctx context.Context, text, voice string) (string, error)
	IsConfigured() bool
}

// Generator is the external text-generation collaborator
type Generator interface {
	Generate(ctx context.Context, instruction, text string) (string, error)
}

type Server struct {
	db             *database.DB
	authService    *auth.Service
	authMiddleware *auth.Middleware
	tracker        *streak.Tracker
	planner        *planner.Service
	chatService    *chat.Service
	moodService    *mood.Service
	ttsClient      SpeechClient
	gen            Generator
	httpSrv        *http.Server
	port           int
}

// ServerConfig holds configuration for server creation
type ServerConfig struct {
	DB          *database.DB
	AuthService *auth.Service
	Tracker     *streak.Tracker
	Planner     *planner.Service
	Chat        *chat.Service
	Mood        *mood.Service
	TTS         SpeechClient
	Generator   Generator
	Port        int
}

func New(cfg ServerConfig) *Server {
	s := &Server{
		db:             cfg.DB,
		authService:    cfg.AuthService,
		authMiddleware: auth.NewMiddleware(cfg.AuthService),
		tracker:        cfg.Tracker,
		planner:        cfg.Planner,
		chatService:    cfg.Chat,
		moodService:    cfg.Mood,
		ttsClient:      cfg.TTS,
		gen:            cfg.Generator,
		port:           cfg.Port,
	}

	mux := http.NewServeMux()
	s.registerRoutes(mux)

	s.httpSrv = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.corsMiddleware(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func (s *Server) registerRoutes(mux *http.ServeMux) {
	// Health check
	mux.HandleFunc("GET /health", s.handleHealthCheck)

	// Auth API
	mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)

	// User API
	mux.Handle("GET /api/user/data", s.protected(s.handleUserData))
	mux.Handle("GET /api/user/streak", s.protected(s.handleGetStreak))
	mux.Handle("GET /api/user/streak/stats", s.protected(s.handleStreakStats))

	// Planner API
	mux.HandleFunc("POST /api/planner/ask", s.handlePlannerAsk)

	// Chat API
	mux.Handle("POST /api/chat", s.protected(s.handleChat))
	mux.HandleFunc("POST /api/genai/ask", s.handleGenAIAsk)

	// Mood API
	mux.Handle("GET /api/mood", s.protected(s.handleMoodHistory))
	mux.Handle("GET /api/mood/current", s.protected(s.handleCurrentMood))
	mux.Handle("POST /api/mood", s.protected(s.handleAnalyzeMood))

	// TTS API
	mux.HandleFunc("POST /api/tts/generate", s.handleGenerateSpeech)
}

// protected wraps a handler with the bearer-token middleware
func (s *Server) protected(h http.HandlerFunc) http.Handler {
	return s.authMiddleware.RequireAuth(h)
}

func (s *Server) Start() error {
	fmt.Printf("Starting HTTP server on http://localhost:%d\n", s.port)
	return s.httpSrv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

// Handler returns the server's HTTP handler for testing purposes
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

// corsMiddleware adds CORS headers to allow browser clients
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight requests
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
