// Command migrate creates or updates the airline and airport tables, then exits.
package main

import (
	"airline-service/internal/infrastructure/config"
	"airline-service/internal/infrastructure/persistence"
	"airline-service/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger().Fatal("Failed to load config", "error", err)
	}

	log := logger.NewLoggerWithLevel(cfg.LogLevel)
	defer log.Sync()

	db, err := persistence.NewPostgres(cfg.PostgresDSN, log, 1, 1)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}
	defer persistence.Close(db)

	if err := persistence.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database", "error", err)
	}

	log.Info("Database schema migrated")
}
