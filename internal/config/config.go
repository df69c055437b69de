package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Database
	DatabaseURL string

	// Redis
	RedisURL string

	// AI pipeline
	OllamaDefaultURL string
	StepDelayMs      int
	MaxSourceChars   int
	MaxChunkChars    int

	// Uploads
	UploadMaxBytes int64

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:             getEnvOrDefault("PORT", "8080"),
		Env:              getEnvOrDefault("ENV", "development"),
		DatabaseURL:      mustGetEnv("DATABASE_URL"),
		RedisURL:         mustGetEnv("REDIS_URL"),
		OllamaDefaultURL: getEnvOrDefault("OLLAMA_DEFAULT_URL", "http://localhost:11434"),
		StepDelayMs:      getEnvAsIntOrDefault("AI_STEP_DELAY_MS", 500),
		MaxSourceChars:   getEnvAsIntOrDefault("AI_MAX_SOURCE_CHARS", 4000),
		MaxChunkChars:    getEnvAsIntOrDefault("AI_MAX_CHUNK_CHARS", 3500),
		UploadMaxBytes:   int64(getEnvAsIntOrDefault("UPLOAD_MAX_BYTES", 10*1024*1024)),
		FrontendURL:      getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
