package config

import (
	"fmt"
	"strings"

	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
)

// Environment name constants used in ENVIRONMENT config field.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"
)

// Config holds all configuration for the application
type Config struct {
	// HTTP
	HTTPAddr           string `conf:"default::8080,env:HTTP_ADDR"`
	RateLimitPerMinute int    `conf:"default:100,env:RATE_LIMIT_PER_MINUTE"`

	// CORS: comma-separated list of allowed origins; * allows all (dev only)
	CORSAllowedOrigins string `conf:"default:*,env:CORS_ALLOWED_ORIGINS"`

	// Registry
	SeedFixtures bool `conf:"default:true,env:SEED_FIXTURES"`

	// Application
	LogLevel    string `conf:"default:info,env:LOG_LEVEL"`
	LogFormat   string `conf:"default:json,enum:json|text,env:LOG_FORMAT"`
	Environment string `conf:"default:development,enum:development|testing|production,env:ENVIRONMENT"`

	// Observability
	ServiceName    string `conf:"default:itemregistry,env:SERVICE_NAME"`
	ServiceVersion string `conf:"default:dev,env:SERVICE_VERSION"`
	OtelEndpoint   string `conf:"env:OTEL_ENDPOINT"`
	SentryDSN      string `conf:"env:SENTRY_DSN,noprint"`
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is applied first when present.
func Load() (*Config, error) {
	var cfg Config
	_ = godotenv.Load()
	if _, err := conf.Parse("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// ValidateForProduction enforces safety requirements when ENVIRONMENT=production.
// Returns an error if any critical settings are missing or unsafe.
// No-ops for non-production environments.
func ValidateForProduction(cfg *Config) error {
	if cfg.Environment != EnvProduction {
		return nil
	}

	var errs []string

	if cfg.LogLevel == "debug" {
		errs = append(errs, "LOG_LEVEL must not be 'debug' in production (may leak sensitive data)")
	}

	for _, origin := range strings.Split(cfg.CORSAllowedOrigins, ",") {
		if strings.TrimSpace(origin) == "*" {
			errs = append(errs, "CORS_ALLOWED_ORIGINS must list explicit origins in production, not '*'")
			break
		}
	}

	if cfg.RateLimitPerMinute <= 0 {
		errs = append(errs, fmt.Sprintf("RATE_LIMIT_PER_MINUTE must be positive (got %d)", cfg.RateLimitPerMinute))
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("production config validation failed: %s", strings.Join(errs, "; "))
}
