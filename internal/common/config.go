package common

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Extract ExtractConfig
	Ingest  IngestConfig
	Export  ExportConfig
}

// ExtractConfig holds extraction-engine configuration
type ExtractConfig struct {
	BaseCurrency   string // ISO 4217 code assumed when no symbol is detected
	ThresholdsFile string // optional YAML override for scoring thresholds
}

// IngestConfig holds watcher-related configuration
type IngestConfig struct {
	WatchRoots  []string
	OutputDir   string
	Debounce    time.Duration
	InitialScan bool
}

// ExportConfig holds export-related configuration
type ExportConfig struct {
	SheetName string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Extract: ExtractConfig{
			BaseCurrency:   getEnv("BASE_CURRENCY", "INR"),
			ThresholdsFile: getEnv("THRESHOLDS_FILE", ""),
		},
		Ingest: IngestConfig{
			WatchRoots:  splitList(getEnv("WATCH_ROOTS", "")),
			OutputDir:   getEnv("OUTPUT_DIR", ""),
			Debounce:    getEnvAsDuration("WATCH_DEBOUNCE", 500*time.Millisecond),
			InitialScan: getEnvAsBool("WATCH_INITIAL_SCAN", true),
		},
		Export: ExportConfig{
			SheetName: getEnv("EXPORT_SHEET_NAME", "Extractions"),
		},
	}
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if len(c.Extract.BaseCurrency) != 3 {
		return NewAppError("CONFIG_ERROR", "BASE_CURRENCY must be a 3-letter ISO 4217 code", ErrInvalidInput)
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}
