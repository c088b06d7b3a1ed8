// Package config provides application configuration loaded from environment
// variables.
package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// DefaultAPIURL is the deployed backend, /api prefix included. Override via
// API_URL.
const DefaultAPIURL = "https://invoicesystembackend-1.onrender.com/api"

// Config holds all settings for the commands and the client they build.
type Config struct {
	// APIURL is the backend base URL including the /api path.
	APIURL string `env:"API_URL, default=https://invoicesystembackend-1.onrender.com/api"`
	// HTTPTimeout bounds each request end to end.
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT, default=30s"`
	// TokenFile overrides where the bearer token is persisted. Empty selects
	// the per-user default under the OS config dir.
	TokenFile string `env:"TOKEN_FILE"`
	// RateLimit caps outgoing requests per second. Zero disables throttling.
	RateLimit float64 `env:"RATE_LIMIT"`

	LogLevel  string `env:"LOG_LEVEL, default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=true"`

	// Smoke-test credentials; when empty the smoke command registers a
	// throwaway account instead.
	SmokeEmail    string `env:"SMOKE_EMAIL"`
	SmokePassword string `env:"SMOKE_PASSWORD"`
}

// Load reads configuration from the environment.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
