package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration. Every variable has a default,
// so the service starts without any environment set up.
type Config struct {
	// Server configuration
	ServerAddr string `env:"SERVER_ADDR" envDefault:":8080"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Catalog artifact (questions, templates, scoring constants)
	CatalogPath string `env:"CATALOG_PATH" envDefault:"configs/advisor.yaml"`

	// Session configuration
	SessionCfg SessionConfig `envPrefix:"SESSION_"`

	// Environment (set from flag, not from env var)
	Environment string
}

// SessionConfig holds the response store lifecycle settings
type SessionConfig struct {
	TTL             time.Duration `env:"TTL" envDefault:"2h"`
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL" envDefault:"10m"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// All variables have defaults and may also be set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok, all variables have defaults): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	var errors []string

	if cfg.ServerAddr == "" {
		errors = append(errors, "SERVER_ADDR must not be empty")
	}

	if cfg.CatalogPath == "" {
		errors = append(errors, "CATALOG_PATH must not be empty")
	}

	if cfg.SessionCfg.TTL < time.Minute || cfg.SessionCfg.TTL > 24*time.Hour {
		errors = append(errors, fmt.Sprintf("SESSION_TTL must be between 1m and 24h, got %s", cfg.SessionCfg.TTL))
	}

	if cfg.SessionCfg.CleanupInterval < time.Minute || cfg.SessionCfg.CleanupInterval > cfg.SessionCfg.TTL {
		errors = append(errors, fmt.Sprintf("SESSION_CLEANUP_INTERVAL must be between 1m and SESSION_TTL(%s), got %s", cfg.SessionCfg.TTL, cfg.SessionCfg.CleanupInterval))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", errors[0])
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
