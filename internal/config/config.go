package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Defaults for configuration values.
const (
	DefaultAnalysisLatency = 1500 * time.Millisecond
	DefaultPort            = "8080"
	MaxAnalysisLatency     = 30 * time.Second
)

// Config holds all application configuration.
type Config struct {
	// AnalysisLatency is the simulated processing delay between triggering
	// a forecast and the engine being invoked.
	AnalysisLatency time.Duration

	// Port is the HTTP listen port for the presentation API.
	Port string

	// CatalogPath optionally points at a YAML team catalog. Empty means the
	// built-in catalog.
	CatalogPath string
}

// Load reads configuration from environment variables (and .env file if present).
func Load() Config {
	_ = godotenv.Load() // Ignore error if .env doesn't exist

	cfg := Config{
		AnalysisLatency: DefaultAnalysisLatency,
		Port:            DefaultPort,
		CatalogPath:     os.Getenv("CATALOG_PATH"),
	}

	if v := os.Getenv("ANALYSIS_LATENCY_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.AnalysisLatency = time.Duration(ms) * time.Millisecond
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}

	return cfg
}

// Validate checks that configuration values are within acceptable ranges.
func Validate(cfg Config) error {
	if cfg.AnalysisLatency < 0 {
		return fmt.Errorf("ANALYSIS_LATENCY_MS must be non-negative, got %v", cfg.AnalysisLatency)
	}
	if cfg.AnalysisLatency > MaxAnalysisLatency {
		return fmt.Errorf("ANALYSIS_LATENCY_MS must be at most %v, got %v", MaxAnalysisLatency, cfg.AnalysisLatency)
	}
	if cfg.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", cfg.Port)
	}
	return nil
}
