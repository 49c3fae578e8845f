package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	Importer ImporterConfig
	App      AppConfig
}

type DatabaseConfig struct {
	URI  string
	Name string
}

// ImporterConfig holds punch-clock log importer configuration
type ImporterConfig struct {
	LogDir       string
	ScanInterval time.Duration
}

// AppConfig holds application configuration
type AppConfig struct {
	Env           string
	LogLevel      string
	Timezone      string
	DefaultLocale string
}

func Load() (*Config, error) {
	// .env is optional; environment variables win either way
	_ = godotenv.Load()

	config := &Config{}

	config.Database = DatabaseConfig{
		URI:  getEnv("MONGO_URI", "mongodb://localhost:27017"),
		Name: getEnv("MONGO_DB", "attendance_core"),
	}

	scanInterval, err := time.ParseDuration(getEnv("SCAN_INTERVAL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid SCAN_INTERVAL: %w", err)
	}

	config.Importer = ImporterConfig{
		LogDir:       getEnv("LOG_DIR", "./clocklogs"),
		ScanInterval: scanInterval,
	}

	config.App = AppConfig{
		Env:           getEnv("APP_ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		Timezone:      getEnv("ORG_TIMEZONE", "Asia/Taipei"),
		DefaultLocale: getEnv("DEFAULT_LOCALE", "zh-TW"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.URI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("MONGO_DB is required")
	}
	if c.Importer.LogDir == "" {
		return fmt.Errorf("LOG_DIR is required")
	}
	if c.Importer.ScanInterval <= 0 {
		return fmt.Errorf("SCAN_INTERVAL must be positive")
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("invalid ORG_TIMEZONE: %w", err)
	}
	return nil
}

// Location returns the organization's civil timezone. Punch-clock
// timestamps are wall-clock punches in this zone, never UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
