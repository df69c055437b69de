package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"prepdeck-backend/internal/ai"
	"prepdeck-backend/internal/config"
	"prepdeck-backend/internal/database"
	"prepdeck-backend/internal/handlers"
	"prepdeck-backend/internal/repository"
	"prepdeck-backend/internal/router"
	"prepdeck-backend/internal/settings"
	"prepdeck-backend/internal/websocket"
)

func main() {
	log.Println("🚀 Starting PrepDeck Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize PostgreSQL Connection Pool ────
	pool, err := database.NewPostgresPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("✗ PostgreSQL connection failed: %v", err)
	}
	defer pool.Close()
	log.Println("✓ PostgreSQL connected")

	// ──── Step 3: Initialize Redis Clients ────
	redisClients, err := database.NewRedisClients(cfg.RedisURL)
	if err != nil {
		log.Fatalf("✗ Redis connection failed: %v", err)
	}
	defer redisClients.Close()
	log.Println("✓ Redis connected")

	// ──── Step 4: Run Database Migrations ────
	if err := database.RunMigrations(pool, "migrations"); err != nil {
		log.Fatalf("✗ Database migration failed: %v", err)
	}
	log.Println("✓ Database migrations applied")

	// ──── Initialize Repositories ────
	questionRepo := repository.NewQuestionRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	caseStudyRepo := repository.NewCaseStudyRepository(pool)

	// ──── Step 5: Initialize AI Pipeline ────
	registry := ai.NewRegistry(nil)
	publisher := ai.NewRedisProgressPublisher(redisClients.KV)
	generator := ai.NewGenerator(
		registry,
		publisher,
		time.Duration(cfg.StepDelayMs)*time.Millisecond,
		cfg.MaxSourceChars,
		cfg.MaxChunkChars,
	)
	settingsStore := settings.NewStore(redisClients.KV, cfg.OllamaDefaultURL)
	log.Println("✓ AI provider registry initialized")

	// ──── Initialize Handlers ────
	generateHandler := handlers.NewGenerateHandler(generator, settingsStore, caseStudyRepo)
	extractHandler := handlers.NewExtractHandler(cfg.UploadMaxBytes)
	questionHandler := handlers.NewQuestionHandler(questionRepo)
	categoryHandler := handlers.NewCategoryHandler(categoryRepo)
	caseStudyHandler := handlers.NewCaseStudyHandler(caseStudyRepo)
	settingsHandler := handlers.NewSettingsHandler(settingsStore)

	// ──── Step 6: Start WebSocket Hub ────
	wsHub := websocket.NewHub(redisClients.PubSub, ai.ProgressChannel)
	log.Println("✓ WebSocket hub started")

	// ──── Step 7: Start HTTP Server ────
	r := router.New(
		generateHandler,
		extractHandler,
		questionHandler,
		categoryHandler,
		caseStudyHandler,
		settingsHandler,
		wsHub,
		cfg.FrontendURL,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 180 * time.Second, // case-study generation makes several upstream calls
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ PrepDeck Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api/v1", cfg.Port)
	log.Printf("  WS:  ws://localhost:%s/api/v1/ws", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
