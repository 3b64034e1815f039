// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds all application configuration.
type Config struct {
	LogLevel   string // zerolog level name
	Dictionary string // default word list path; empty means the embedded one
	NoColor    bool   // disable styled output
}

// Load reads configuration from the environment, after merging in a .env
// file from the working directory when one exists. Variables already set in
// the environment win over .env entries.
func Load() (*Config, error) {
	_ = godotenv.Load()

	_, noColor := os.LookupEnv("NO_COLOR")
	cfg := &Config{
		LogLevel:   getEnv("LOG_LEVEL", "warn"),
		Dictionary: getEnv("HANGMAN_DICTIONARY", ""),
		NoColor:    noColor || getEnvBool("HANGMAN_NO_COLOR", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return nil
}

// Level returns the parsed log level.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.WarnLevel
	}
	return lvl
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}
