// Package config loads paisa configuration from environment variables.
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Expense store
	APIURL string

	// Runtime environment ("development" or "production")
	Env string

	// HTTP client behavior
	RequestTimeout time.Duration
	RetryAttempts  int
	RetryDelay     time.Duration

	// Display currency (ISO 4217)
	Currency string

	// Where the bearer token is persisted between CLI invocations
	TokenFile string
}

// Load reads configuration from environment variables, applying defaults
// where values are missing.
func Load() (*Config, error) {
	// Load .env file if present; absence is fine for installed binaries.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Println("Warning: could not read .env file")
	}

	cfg := &Config{
		APIURL:   getEnv("PAISA_API_URL", "http://localhost:8001"),
		Env:      getEnv("PAISA_ENV", "development"),
		Currency: strings.ToUpper(getEnv("CURRENCY", "INR")),
	}

	timeout, err := parseDuration(os.Getenv("REQUEST_TIMEOUT"), 30*time.Second)
	if err != nil {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
	}
	cfg.RequestTimeout = timeout

	attempts, err := parseAttempts(os.Getenv("RETRY_ATTEMPTS"))
	if err != nil {
		return nil, err
	}
	cfg.RetryAttempts = attempts

	delay, err := parseDuration(os.Getenv("RETRY_DELAY"), 500*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("invalid RETRY_DELAY: %w", err)
	}
	cfg.RetryDelay = delay

	cfg.TokenFile = os.Getenv("TOKEN_FILE")
	if cfg.TokenFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home directory for token file: %w", err)
		}
		cfg.TokenFile = filepath.Join(home, ".paisa", "token")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(s string, defaultVal time.Duration) (time.Duration, error) {
	if s == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %v", d)
	}
	return d, nil
}

func parseAttempts(s string) (int, error) {
	if s == "" {
		return 3, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid RETRY_ATTEMPTS %q: %w", s, err)
	}
	if n < 1 {
		return 0, fmt.Errorf("RETRY_ATTEMPTS must be at least 1, got %d", n)
	}
	return n, nil
}
