// Package config gathers every environment knob the binaries read. Values
// come from the process environment; cmd main functions load a .env file
// first via godotenv.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is shared by the API server and the report CLI.
type Config struct {
	Port          int
	SpreadsheetID string
	SheetsAPIKey  string
	SchemaVersion string

	// upstream fetch caching
	CacheTTL time.Duration

	// per-client request limiting
	RateLimit         int
	RateWindowSeconds int

	// bounded wait for PR-registry availability on dependent views
	PRWaitAttempts int
	PRWaitDelay    time.Duration
}

// Load reads the environment. SPREADSHEET_ID and SHEETS_API_KEY are
// required; everything else has a default.
func Load() (*Config, error) {
	cfg := &Config{
		Port:              intEnv("PORT", 8080),
		SpreadsheetID:     os.Getenv("SPREADSHEET_ID"),
		SheetsAPIKey:      os.Getenv("SHEETS_API_KEY"),
		SchemaVersion:     os.Getenv("SHEET_SCHEMA"),
		CacheTTL:          durationEnv("CACHE_TTL_SECONDS", 5*time.Minute),
		RateLimit:         intEnv("RATE_LIMIT", 60),
		RateWindowSeconds: intEnv("RATE_WINDOW_SECONDS", 60),
		PRWaitAttempts:    intEnv("PR_WAIT_ATTEMPTS", 3),
		PRWaitDelay:       durationEnv("PR_WAIT_DELAY_SECONDS", 500*time.Millisecond),
	}

	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("SPREADSHEET_ID environment variable is required")
	}
	if cfg.SheetsAPIKey == "" {
		return nil, fmt.Errorf("SHEETS_API_KEY environment variable is required")
	}
	return cfg, nil
}

func intEnv(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func durationEnv(name string, fallback time.Duration) time.Duration {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	seconds, err := strconv.ParseFloat(raw, 64)
	if err != nil || seconds <= 0 {
		return fallback
	}
	return time.Duration(seconds * float64(time.Second))
}
