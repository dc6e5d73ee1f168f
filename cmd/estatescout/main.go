package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"estatescout/internal/api"
	"estatescout/internal/api/handlers"
	"estatescout/internal/repository"
	"estatescout/internal/service"
	"estatescout/pkg/config"
	"estatescout/pkg/logger"
	"estatescout/pkg/postgres"

	"go.uber.org/zap"
)

// @title EstateScout API
// @version 1.0
// @description Real-estate search assistant: conversational and structured property search, price enrichment, and saved favorites.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting EstateScout service")

	// Connect to the database. A failure is not fatal: the search pipeline
	// works without persistence, only saving features are disabled.
	ctx := context.Background()
	var savedStore service.SavedPropertyStore
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Warn("Database unavailable, continuing without saving features", zap.Error(err))
	} else {
		defer db.Close()
		savedStore = repository.NewSavedPropertyRepository(db, appLogger)
	}

	// Initialize the conversational backend. Without an API key the service
	// runs in filter-only mode.
	var llm service.ConversationalBackend
	if cfg.GigaChat.Enabled() {
		llmService, err := service.NewLLMService(&cfg.GigaChat, appLogger)
		if err != nil {
			appLogger.Warn("Conversational backend unavailable, continuing in filter-only mode", zap.Error(err))
		} else {
			defer llmService.Close()
			llm = llmService
			appLogger.Info("Conversational backend initialized")
		}
	} else {
		appLogger.Info("No GIGACHAT_API_KEY configured - conversational features disabled")
	}

	// Initialize services
	datasets := service.NewDatasetService(cfg.Dataset.Dir, appLogger)
	valuation := service.NewValuationService(&cfg.Valuation, appLogger)
	extractor := service.NewExtractorService(llm, cfg.NLP.LegacyBudgetSuffix, appLogger)
	propertyService := service.NewPropertyService(datasets, valuation, llm, appLogger)
	chatService := service.NewChatService(datasets, extractor, llm, valuation, appLogger)
	savedService := service.NewSavedPropertyService(savedStore, appLogger)

	// Initialize handlers
	propertyHandler := handlers.NewPropertyHandler(propertyService, chatService, cfg.Valuation.BaseURL, appLogger)
	savedHandler := handlers.NewSavedPropertyHandler(savedService, appLogger)

	// Setup router
	app := api.SetupRouter(propertyHandler, savedHandler, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
