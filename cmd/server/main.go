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

	"mentora-backend/internal/config"
	"mentora-backend/internal/database"
	"mentora-backend/internal/handlers"
	"mentora-backend/internal/router"
	"mentora-backend/internal/services"
	"mentora-backend/internal/sessions"
)

func main() {
	log.Println("🚀 Starting Mentora Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize Session Store ────
	var sessionStore sessions.Store
	if cfg.RedisURL != "" {
		redisClient, err := database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatalf("✗ Redis connection failed: %v", err)
		}
		defer redisClient.Close()
		sessionStore = sessions.NewRedisStore(redisClient)
		log.Println("✓ Redis session store connected")
	} else {
		sessionStore = sessions.NewMemoryStore()
		log.Println("✓ In-memory session store initialized (set REDIS_URL to persist)")
	}

	// ──── Step 3: Initialize Gemini Client ────
	var geminiService *services.GeminiService
	if cfg.HasGeminiKey() {
		var err error
		geminiService, err = services.NewGeminiService(
			context.Background(),
			cfg.GeminiAPIKey,
			cfg.GeminiModel,
			cfg.GeminiMaxOutputTokens,
			cfg.GeminiTemperature,
		)
		if err != nil {
			log.Fatalf("✗ Gemini client initialization failed: %v", err)
		}
		defer geminiService.Close()
		log.Printf("✓ Gemini client initialized (%s)", cfg.GeminiModel)
	} else {
		log.Println("⚠ No Gemini API key configured — serving deterministic fallback content")
	}

	// ──── Step 4: Initialize Handlers ────
	contentHandler := handlers.NewContentHandler(geminiService)
	sessionHandler := handlers.NewSessionHandler(sessionStore)

	// ──── Step 5: Start HTTP Server ────
	r := router.New(contentHandler, sessionHandler, cfg.FrontendURL, cfg.RateLimitPerMin)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
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

	log.Printf("✓ Mentora Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
