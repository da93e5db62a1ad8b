package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mindease-app/mindease/internal/auth"
	"github.com/mindease-app/mindease/internal/chat"
	"github.com/mindease-app/mindease/internal/config"
	"github.com/mindease-app/mindease/internal/database"
	"github.com/mindease-app/mindease/internal/gemini"
	"github.com/mindease-app/mindease/internal/mood"
	"github.com/mindease-app/mindease/internal/planner"
	"github.com/mindease-app/mindease/internal/server"
	"github.com/mindease-app/mindease/internal/streak"
	"github.com/mindease-app/mindease/internal/tts"
	"github.com/mindease-app/mindease/internal/vectorstore"
)

func main() {
	cfg := config.LoadFromEnv()

	// Phase 1: Core infrastructure
	db, err := database.New(cfg.DBPath)
	if err != nil {
		fatal("creating database", err)
	}
	defer db.Close()

	// Phase 2: External clients
	geminiClient := initGemini(cfg)
	store, err := initVectorStore(cfg)
	if err != nil {
		fatal("opening vector store", err)
	}
	ttsClient := initTTS(cfg)

	// Phase 3: Services
	authService := auth.NewService(db, cfg.JWTSecret)
	tracker := streak.NewTracker(db)
	plannerService := planner.NewService(geminiClient)
	chatService := chat.NewService(db, store, geminiClient)
	moodService := mood.NewService(db, geminiClient)

	// Phase 4: HTTP server
	srv := server.New(server.ServerConfig{
		DB:          db,
		AuthService: authService,
		Tracker:     tracker,
		Planner:     plannerService,
		Chat:        chatService,
		Mood:        moodService,
		TTS:         ttsClient,
		Generator:   geminiClient,
		Port:        cfg.HTTPPort,
	})
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "HTTP server error: %v\n", err)
		}
	}()

	waitForShutdown(srv)
}

func initGemini(cfg *config.Config) *gemini.Client {
	if cfg.GeminiAPIKey == "" {
		fmt.Println("Warning: GEMINI_API_KEY not set, generation features disabled")
	}
	return gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiTemperature)
}

func initVectorStore(cfg *config.Config) (*vectorstore.Store, error) {
	if cfg.EmbeddingsAPIKey == "" {
		fmt.Println("Warning: AIML_API_KEY not set, similarity retrieval will fail")
	}
	embedFn := vectorstore.NewEmbeddingFunc(cfg.EmbeddingsBaseURL, cfg.EmbeddingsAPIKey, cfg.EmbeddingsModel)
	return vectorstore.New(cfg.DataDir, embedFn)
}

func initTTS(cfg *config.Config) *tts.Client {
	if cfg.TTSAPIKey == "" {
		fmt.Println("Warning: MURF_API_KEY not set, speech generation disabled")
	}
	return tts.NewClient(cfg.TTSAPIKey)
}

func fatal(context string, err error) {
	fmt.Fprintf(os.Stderr, "Error %s: %v\n", context, err)
	os.Exit(1)
}

func waitForShutdown(srv *server.Server) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	fmt.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	srv.Shutdown(ctx)
}
