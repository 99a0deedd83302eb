// pkg/config/config.go
package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config represents the migration tool configuration
type Config struct {
	// Database connections
	Legacy   *LegacyConfig
	Postgres *PostgresConfig

	// Transfer settings
	BatchSize int

	// Audit settings
	AuditTopN int

	// Identity preservation
	SnapshotDir string

	// Logging
	LogLevel  string
	LogFormat string
}

// LoadConfig loads configuration from the environment, reading a .env file
// first if one is present in the working directory.
func LoadConfig() (*Config, error) {
	// A missing .env file is not an error; the environment may be set directly.
	_ = godotenv.Load()

	cfg := &Config{
		BatchSize:   getEnvAsInt("BATCH_SIZE", 500),
		AuditTopN:   getEnvAsInt("AUDIT_TOP_N", 25),
		SnapshotDir: getEnv("SNAPSHOT_DIR", "snapshots"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "console"),
	}

	legacyConfig, err := LoadLegacyConfig()
	if err != nil {
		return nil, errors.New("failed to load legacy export configuration: " + err.Error())
	}
	cfg.Legacy = legacyConfig

	pgConfig, err := LoadPostgresConfig()
	if err != nil {
		return nil, errors.New("failed to load PostgreSQL configuration: " + err.Error())
	}
	cfg.Postgres = pgConfig

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures all required configuration is present and valid
func (c *Config) Validate() error {
	if c.Legacy == nil {
		return errors.New("legacy export configuration is required")
	}

	if c.Postgres == nil {
		return errors.New("postgreSQL configuration is required")
	}

	if c.BatchSize <= 0 {
		return errors.New("batch size must be positive")
	}

	if c.AuditTopN <= 0 {
		return errors.New("audit top-N must be positive")
	}

	if c.SnapshotDir == "" {
		return errors.New("snapshot directory is required")
	}

	return nil
}

// Helper functions for environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
