// Package config loads the server configuration from the environment.
// LLM provider settings live in the llm package and are discovered
// separately; this covers everything else the server needs.
package config

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the server configuration.
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string `env:"PATHWISE_ADDR" envDefault:":8080"`

	// DBPath is the SQLite database file. Empty means the default
	// per-user data path.
	DBPath string `env:"PATHWISE_DB"`

	// JWTSecret signs access tokens. Required.
	JWTSecret string `env:"PATHWISE_JWT_SECRET"`

	// TokenTTL is how long issued access tokens stay valid.
	TokenTTL time.Duration `env:"PATHWISE_TOKEN_TTL" envDefault:"24h"`

	// CORSOrigins lists the allowed browser origins. Empty allows none.
	CORSOrigins []string `env:"PATHWISE_CORS_ORIGINS" envSeparator:","`

	// LogMode selects the log output: "dev" or "prod".
	LogMode string `env:"PATHWISE_LOG_MODE" envDefault:"dev"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the required settings.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("PATHWISE_JWT_SECRET is required")
	}
	if c.TokenTTL <= 0 {
		return errors.New("PATHWISE_TOKEN_TTL must be positive")
	}
	return nil
}
