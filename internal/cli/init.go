// Package cli provides common CLI initialization utilities: env file
// loading, logger setup, configuration validation and the optional
// run-history archive.
package cli

import (
	"os"

	"github.com/joho/godotenv"
	"souhrn/internal/config"
	"souhrn/internal/log"
	"souhrn/internal/storage"
)

// SetupLogger initializes structured logging with default settings.
// Returns the configured logger and sets it as the default logger.
func SetupLogger() *log.Logger {
	logger := log.New(log.DefaultConfig())
	log.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *log.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// InitArchive opens the run-history archive when a path is configured.
// Returns nil when archiving is disabled; exits the process on failure.
func InitArchive(logger *log.Logger, dbPath string) *storage.SQLiteRepository {
	if dbPath == "" {
		return nil
	}
	repo, err := storage.NewSQLiteRepository(dbPath)
	if err != nil {
		logger.Error("Failed to initialize run-history archive", log.FieldError, err, log.FieldPath, dbPath)
		os.Exit(1)
	}
	return repo
}
