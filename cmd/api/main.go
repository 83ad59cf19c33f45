package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"chatbot-gateway/config"
	_ "chatbot-gateway/docs" // Swagger docs
	firestoreRepo "chatbot-gateway/internal/chat/repository/firestore"
	"chatbot-gateway/internal/httpserver"
	"chatbot-gateway/pkg/gemini"
	"chatbot-gateway/pkg/log"
)

// @title       Chatbot Gateway API
// @description Session-aware chat broker over the Gemini API with Firestore-backed history.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Chatbot Gateway...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. History store. Bad store credentials abort before serving.
	firestoreClient, err := firestoreRepo.NewClient(ctx, firestoreRepo.ClientConfig{
		CredentialsJSON: []byte(cfg.Firestore.CredentialsJSON),
		ProjectID:       cfg.Firestore.ProjectID,
		DatabaseID:      cfg.Firestore.DatabaseID,
		CollectionName:  cfg.Firestore.CollectionName,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize Firestore: %v", err)
	}
	historyRepo := firestoreRepo.New(firestoreClient, logger)

	// 4. Gemini client. A missing key is not fatal: /chat answers 500
	// until a key is configured, matching the per-request check of the
	// serverless deployments this service replaces.
	var llm *gemini.Client
	if cfg.Gemini.APIKey != "" {
		llm = gemini.NewClient(cfg.Gemini.APIKey)
		llm.SetModel(cfg.Gemini.Model)
	} else {
		logger.Warn(ctx, "GEMINI_API_KEY is missing: /chat will answer 500 until it is set")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		LLM:         llm,
		HistoryRepo: historyRepo,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize HTTP server: %v", err)
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Fatalf(ctx, "Failed to run server: %v", err)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
