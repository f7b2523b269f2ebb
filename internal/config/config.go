package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the ideaforge service.
// Environment variables are parsed from the IDEAFORGE_ prefix.
type Config struct {
	// Build target selects the high-level environment: local, cloud
	BuildTarget string `envconfig:"BUILD_TARGET" default:"local"`

	// Derived or override store driver
	DBDriver string `envconfig:"DB_DRIVER" default:"auto"`

	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Postgres Configuration
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`

	// SQLite Configuration (local build target)
	SQLitePath string `envconfig:"SQLITE_PATH" default:"data/ideaforge.db"`

	// Generation provider configuration
	GenProvider string `envconfig:"GEN_PROVIDER" default:"gemini"`
	GenModel    string `envconfig:"GEN_MODEL" default:"gemini-2.5-flash-lite"`
	GeminiKey   string `envconfig:"GEMINI_API_KEY" default:""`
	OllamaURL   string `envconfig:"OLLAMA_URL" default:"http://localhost:11434"`
}

// ResolveDefaults validates BuildTarget and derives DBDriver when set to "auto" or empty.
func (c *Config) ResolveDefaults() error {
	var defaultDB string

	switch c.BuildTarget {
	case "local":
		defaultDB = "sqlite"
	case "cloud":
		defaultDB = "postgres"
	default:
		return fmt.Errorf("unsupported BUILD_TARGET: %s", c.BuildTarget)
	}

	if c.DBDriver == "" || c.DBDriver == "auto" {
		c.DBDriver = defaultDB
	}

	allowedDB := map[string]bool{"postgres": true, "sqlite": true}
	if !allowedDB[c.DBDriver] {
		return fmt.Errorf("unsupported DB_DRIVER: %s", c.DBDriver)
	}
	if c.DBDriver == "postgres" && c.PostgresDSN == "" {
		return fmt.Errorf("IDEAFORGE_POSTGRES_DSN is required when DB_DRIVER is postgres")
	}

	allowedGen := map[string]bool{"gemini": true, "ollama": true}
	if !allowedGen[c.GenProvider] {
		return fmt.Errorf("unsupported GEN_PROVIDER: %s", c.GenProvider)
	}
	return nil
}

// New creates a new Config by parsing environment variables.
// Environment variables should be prefixed with IDEAFORGE_
// Example: IDEAFORGE_HTTP_PORT, IDEAFORGE_GEMINI_API_KEY
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("IDEAFORGE", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Info().
		Str("build_target", cfg.BuildTarget).
		Str("db_driver", cfg.DBDriver).
		Str("environment", string(cfg.Environment)).
		Int("port", cfg.HTTPPort).
		Str("gen_provider", cfg.GenProvider).
		Str("gen_model", cfg.GenModel).
		Bool("gemini_key_present", cfg.GeminiKey != "").
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config specifically for testing
func NewForTesting() *Config {
	return &Config{
		BuildTarget: "local",
		DBDriver:    "sqlite",
		Environment: EnvTesting,
		HTTPPort:    8080,
		SQLitePath:  "", // tests supply a temp path
		GenProvider: "ollama",
		GenModel:    "llama3",
		OllamaURL:   "http://localhost:11434",
	}
}

// IsTesting returns true if the environment is set to testing
func (c *Config) IsTesting() bool {
	return c.Environment == EnvTesting
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
