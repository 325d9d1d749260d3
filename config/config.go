package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"signalTraderBot/internal/adapters/logger" // Import the logger package for LogLevel
)

// Config holds all application configuration.
type Config struct {
	// Binance API (only needed by the kline fetcher; klines are public)
	APIKey    string
	SecretKey string
	IsTestnet bool

	// Data
	Symbol   string
	Interval string
	DataPath string // CSV of bars with the predicted column

	// Backtest Parameters
	AllowShort     bool    // Long-and-short policy when true, long-only otherwise
	InitialCash    float64 // Starting funds of the simulated account
	CommissionRate float64 // Commission as a fraction of notional (e.g., 0.001 for 0.1%)

	// Database
	DBPath string

	// Logging
	LogLevel logger.LogLevel // Use the LogLevel type from the logger adapter
}

// LoadConfig loads configuration from environment variables (.env file).
func LoadConfig() (*Config, error) {
	// Load .env file, but don't fail if it doesn't exist (allow pure env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	var err error
	var errs []string // Collect validation errors

	// Binance API
	cfg.APIKey = getEnv("BINANCE_API_KEY", "")
	cfg.SecretKey = getEnv("BINANCE_API_SECRET", "")
	cfg.IsTestnet = getEnvAsBool("IS_TESTNET", true) // Default to testnet for safety

	// Data
	cfg.Symbol = getEnv("SYMBOL", "ETHUSDT")
	if cfg.Symbol == "" {
		errs = append(errs, "SYMBOL must be set")
	}
	cfg.Interval = getEnv("INTERVAL", "1d")
	if cfg.Interval == "" {
		errs = append(errs, "INTERVAL must be set")
	}
	cfg.DataPath = getEnv("DATA_PATH", "./data/bars.csv")
	if cfg.DataPath == "" {
		errs = append(errs, "DATA_PATH must be set")
	}

	// Backtest Parameters
	cfg.AllowShort = getEnvAsBool("ALLOW_SHORT", false)

	cfg.InitialCash, err = getEnvAsFloatRequired("INITIAL_CASH", 10000.0)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid INITIAL_CASH: %v", err))
	} else if cfg.InitialCash <= 0 {
		errs = append(errs, "INITIAL_CASH must be positive")
	}

	cfg.CommissionRate, err = getEnvAsFloatRequired("COMMISSION_RATE", 0.001)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid COMMISSION_RATE: %v", err))
	} else if cfg.CommissionRate < 0 || cfg.CommissionRate >= 1.0 {
		errs = append(errs, "COMMISSION_RATE must be in [0.0, 1.0)")
	}

	// Database
	cfg.DBPath = getEnv("DB_PATH", "./data/backtest_trades.db")
	if cfg.DBPath == "" {
		errs = append(errs, "DB_PATH must be set")
	}

	// Logging
	logLevelStr := getEnv("LOG_LEVEL", "INFO")
	cfg.LogLevel = logger.ParseLevel(logLevelStr) // Use the parser from the logger package

	// Combine validation errors
	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}

	return cfg, nil
}

// --- Env Var Helpers ---

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsFloatRequired(key string, defaultValue float64) (float64, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		// Use default if env var is not set at all
		return defaultValue, nil
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		// Return error if env var is set but invalid
		return 0, fmt.Errorf("invalid float value '%s' for key %s: %w", valueStr, key, err)
	}
	return value, nil
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
