// Package config loads service settings from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all settings for the server and chat commands.
type Config struct {
	HTTPAddr        string
	BearerToken     string
	RedisURL        string // optional; empty disables the search cache
	RateLimitRPM    int
	ShutdownTimeout time.Duration

	// Chat completions endpoint for the REPL.
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
}

// Load reads configuration from environment variables, applying
// defaults where unset. Required settings differ per command, so
// Load itself only checks formats; see ValidateServer and
// ValidateChat.
func Load() (*Config, error) {
	rpm, err := parsePositiveInt("RATE_LIMIT_RPM", 60)
	if err != nil {
		return nil, err
	}

	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}

	return &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		BearerToken:     os.Getenv("BEARER_TOKEN"),
		RedisURL:        os.Getenv("REDIS_URL"),
		RateLimitRPM:    rpm,
		ShutdownTimeout: shutdownTimeout,
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:   envOrDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:     envOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
	}, nil
}

// ValidateServer checks the settings the HTTP server requires.
func (c *Config) ValidateServer() error {
	if c.BearerToken == "" {
		return errors.New("BEARER_TOKEN is required")
	}
	return nil
}

// ValidateChat checks the settings the chat REPL requires.
func (c *Config) ValidateChat() error {
	if c.OpenAIAPIKey == "" {
		return errors.New("OPENAI_API_KEY is required")
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parsePositiveInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return n, nil
}

func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return d, nil
}
