package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// ErrNegativeInitialBalance is returned when BANK_INITIAL_BALANCE is below zero.
var ErrNegativeInitialBalance = errors.New("initial balance cannot be negative")

// Load reads configuration from the first env file found among envFilePath
// (searched upwards from the working directory), then from the process
// environment. Variables already set in the environment win.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()
	logger.Debug("Loading environment variables")

	// If no specific paths provided, try default .env
	if len(envFilePath) == 0 {
		logger.Debug("No environment file specified, trying default .env")
		if err := godotenv.Load(); err != nil {
			logger.Debug("No .env file found in current directory")
		}
		return loadFromEnv()
	}

	// Try each provided path until we find a valid one
	for _, path := range envFilePath {
		logger.Debug("Looking for environment file", "path", path)
		foundPath, err := findEnvFile(path)
		if err != nil {
			logger.Debug("Environment file not found", "path", path, "error", err)
			continue
		}

		logger.Debug("Loading environment from file", "path", foundPath)
		if err := godotenv.Load(foundPath); err != nil {
			logger.Error("Failed to load environment file", "path", foundPath, "error", err)
			continue
		}

		return loadFromEnv()
	}

	logger.Debug("No valid environment files found, using process environment")
	return loadFromEnv()
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	slog.Default().Debug("App config loaded",
		"env", cfg.Env,
		"bank_name", cfg.Bank.Name,
		"pin", maskValue(cfg.Bank.PIN),
		"pin_hash", maskValue(cfg.Bank.PINHash),
		"max_attempts", cfg.Bank.MaxAttempts,
		"initial_balance", cfg.Bank.InitialBalance.String(),
		"log_level", cfg.Log.Level,
		"log_output", cfg.Log.Output,
		"ui_color", cfg.UI.Color,
	)
	return &cfg, nil
}

// Validate checks the loaded configuration.
func Validate(cfg *App) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.Bank.InitialBalance.IsNegative() {
		return fmt.Errorf("invalid configuration: %w", ErrNegativeInitialBalance)
	}
	return nil
}

func maskValue(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 6 {
		return "****"
	}
	return key[:2] + "****" + key[len(key)-4:]
}
