// Package config handles environment variable loading for the
// collection service: ports, database strings, observability endpoints.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration values for the collection service.
type Config struct {
	// Database connection string
	DatabaseURL string

	// HTTP server port
	HTTPPort int

	// OTLP collector endpoint for traces
	OTELEndpoint string

	// Requests per second allowed per client IP; 0 means unlimited
	RateLimitPerSecond float64

	// Burst size for the per-IP limiter
	RateLimitBurst int
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	port := 4000 // Default
	if portStr := os.Getenv("PORT"); portStr != "" {
		p, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %w", err)
		}
		port = p
	}

	otelEndpoint := os.Getenv("OTEL_ENDPOINT")
	if otelEndpoint == "" {
		otelEndpoint = "localhost:4317"
	}

	var rps float64
	if rpsStr := os.Getenv("RATE_LIMIT_RPS"); rpsStr != "" {
		r, err := strconv.ParseFloat(rpsStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_RPS: %w", err)
		}
		rps = r
	}

	burst := 10 // Default
	if burstStr := os.Getenv("RATE_LIMIT_BURST"); burstStr != "" {
		b, err := strconv.Atoi(burstStr)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_BURST: %w", err)
		}
		burst = b
	}

	return &Config{
		DatabaseURL:        dbURL,
		HTTPPort:           port,
		OTELEndpoint:       otelEndpoint,
		RateLimitPerSecond: rps,
		RateLimitBurst:     burst,
	}, nil
}
