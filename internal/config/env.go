package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file if it exists (silently ignore if not found)
	_ = godotenv.Load()
}

type Config struct {
	// Required
	GeminiAPIKey string
	JWTSecret    string

	// Optional with defaults
	DBPath            string
	DataDir           string
	HTTPPort          int
	GeminiModel       string
	GeminiTemperature float64
	EmbeddingsAPIKey  string
	EmbeddingsBaseURL string
	EmbeddingsModel   string
	TTSAPIKey         string
}

func LoadFromEnv() *Config {
	cfg := &Config{
		// Required
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		JWTSecret:    getEnvOrDefault("JWT_SECRET", "your-secret-key"),

		// Optional with defaults
		DBPath:            getEnvOrDefault("MINDEASE_DB_PATH", "./mindease.db"),
		DataDir:           getEnvOrDefault("MINDEASE_DATA_DIR", "./data"),
		HTTPPort:          getEnvAsIntOrDefault("MINDEASE_HTTP_PORT", 5000),
		GeminiModel:       getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiTemperature: getEnvAsFloatOrDefault("GEMINI_TEMPERATURE", 0.1),
		EmbeddingsAPIKey:  os.Getenv("AIML_API_KEY"),
		EmbeddingsBaseURL: getEnvOrDefault("AIML_BASE_URL", "https://api.aimlapi.com/v1"),
		EmbeddingsModel:   getEnvOrDefault("EMBEDDING_MODEL", "text-embedding-ada-002"),
		TTSAPIKey:         os.Getenv("MURF_API_KEY"),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
