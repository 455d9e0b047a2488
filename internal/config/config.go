// Package config loads CLI defaults from environment variables.
package config

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/text/language"

	"github.com/mouse-blink/linetally/internal/logging"
)

// Config holds the defaults the command line flags start from.
type Config struct {
	// Project file
	ProjectFile string

	// Logging
	LogLevel  string
	LogFormat string

	// Report number formatting
	Locale string

	// Watch
	Debounce time.Duration
}

// Load reads configuration from environment variables with defaults.
func Load() (*Config, error) {
	cfg := &Config{
		ProjectFile: envOr("LINETALLY_PROJECT", ".linetally.yaml"),
		LogLevel:    envOr("LINETALLY_LOG_LEVEL", "warn"),
		LogFormat:   envOr("LINETALLY_LOG_FORMAT", "console"),
		Locale:      envOr("LINETALLY_LOCALE", "en"),
	}

	debounce, err := time.ParseDuration(envOr("LINETALLY_DEBOUNCE", "500ms"))
	if err != nil {
		return nil, fmt.Errorf("LINETALLY_DEBOUNCE: %w", err)
	}

	cfg.Debounce = debounce

	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("LINETALLY_LOG_LEVEL: %w", err)
	}

	if err := logging.ValidateFormat(cfg.LogFormat); err != nil {
		return nil, fmt.Errorf("LINETALLY_LOG_FORMAT: %w", err)
	}

	if _, err := ParseLocale(cfg.Locale); err != nil {
		return nil, fmt.Errorf("LINETALLY_LOCALE: %w", err)
	}

	return cfg, nil
}

// ParseLocale resolves a BCP 47 tag such as "en" or "de-CH".
func ParseLocale(s string) (language.Tag, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", s, err)
	}

	return tag, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
