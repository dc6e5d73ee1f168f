package main

import (
	"context"
	"log"

	"estatescout/internal/repository"
	"estatescout/pkg/config"
	"estatescout/pkg/logger"
	"estatescout/pkg/postgres"

	"go.uber.org/zap"
)

// seed bootstraps the saved-properties schema. The listing datasets
// themselves live in flat JSON files under data/ and need no database.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	appLogger.Info("Applying saved-properties schema...")
	if err := repository.EnsureSchema(ctx, db); err != nil {
		appLogger.Fatal("Failed to apply schema", zap.Error(err))
	}

	appLogger.Info("Schema applied successfully")
}
