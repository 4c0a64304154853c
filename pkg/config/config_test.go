package config

import (
	"strings"
	"testing"
)

func TestValidateForProduction(t *testing.T) {
	valid := Config{
		Environment:        EnvProduction,
		LogLevel:           "info",
		CORSAllowedOrigins: "https://app.example.com",
		RateLimitPerMinute: 100,
	}

	t.Run("non-production is a no-op", func(t *testing.T) {
		cfg := Config{Environment: EnvDevelopment, LogLevel: "debug", CORSAllowedOrigins: "*"}
		if err := ValidateForProduction(&cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("valid production config", func(t *testing.T) {
		cfg := valid
		if err := ValidateForProduction(&cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("debug log level rejected", func(t *testing.T) {
		cfg := valid
		cfg.LogLevel = "debug"
		err := ValidateForProduction(&cfg)
		if err == nil || !strings.Contains(err.Error(), "LOG_LEVEL") {
			t.Fatalf("expected LOG_LEVEL error, got %v", err)
		}
	})

	t.Run("wildcard CORS rejected", func(t *testing.T) {
		cfg := valid
		cfg.CORSAllowedOrigins = "https://a.example.com, *"
		err := ValidateForProduction(&cfg)
		if err == nil || !strings.Contains(err.Error(), "CORS_ALLOWED_ORIGINS") {
			t.Fatalf("expected CORS error, got %v", err)
		}
	})

	t.Run("all errors reported together", func(t *testing.T) {
		cfg := valid
		cfg.LogLevel = "debug"
		cfg.CORSAllowedOrigins = "*"
		cfg.RateLimitPerMinute = 0
		err := ValidateForProduction(&cfg)
		if err == nil {
			t.Fatal("expected error")
		}
		for _, want := range []string{"LOG_LEVEL", "CORS_ALLOWED_ORIGINS", "RATE_LIMIT_PER_MINUTE"} {
			if !strings.Contains(err.Error(), want) {
				t.Errorf("expected %s in %q", want, err.Error())
			}
		}
	})
}
