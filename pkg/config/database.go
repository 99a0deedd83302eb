// pkg/config/database.go
package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// LegacyConfig holds connection parameters for the legacy desktop-database
// export. The export is a SQLite file produced by an external conversion tool
// from the original desktop database; every column in it is TEXT.
type LegacyConfig struct {
	// Path to the SQLite export file
	Path string

	// BusyTimeout passed to the SQLite driver
	BusyTimeout time.Duration

	// Query timeout
	QueryTimeout time.Duration
}

// PostgresConfig holds PostgreSQL connection parameters for the destination
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string

	// Connection pool settings
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration

	// Statement timeout
	StatementTimeout time.Duration
}

// LoadLegacyConfig loads legacy export configuration from environment variables
func LoadLegacyConfig() (*LegacyConfig, error) {
	path := os.Getenv("LEGACY_EXPORT_PATH")
	if path == "" {
		return nil, errors.New("LEGACY_EXPORT_PATH environment variable is required")
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("legacy export file not accessible: %w", err)
	}

	cfg := &LegacyConfig{
		Path:         path,
		BusyTimeout:  time.Duration(getEnvAsInt("LEGACY_BUSY_TIMEOUT_MS", 5000)) * time.Millisecond,
		QueryTimeout: time.Duration(getEnvAsInt("LEGACY_QUERY_TIMEOUT_SECONDS", 120)) * time.Second,
	}

	return cfg, nil
}

// LoadPostgresConfig loads PostgreSQL configuration from environment variables
func LoadPostgresConfig() (*PostgresConfig, error) {
	user := os.Getenv("POSTGRES_USER")
	if user == "" {
		return nil, errors.New("POSTGRES_USER environment variable is required")
	}

	password := os.Getenv("POSTGRES_PASSWORD")
	if password == "" {
		return nil, errors.New("POSTGRES_PASSWORD environment variable is required")
	}

	database := os.Getenv("POSTGRES_DB")
	if database == "" {
		return nil, errors.New("POSTGRES_DB environment variable is required")
	}

	cfg := &PostgresConfig{
		Host:     getEnv("POSTGRES_HOST", "localhost"),
		Port:     getEnvAsInt("POSTGRES_PORT", 5432),
		User:     user,
		Password: password,
		Database: database,
		SSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		MaxOpenConns:     getEnvAsInt("POSTGRES_MAX_OPEN_CONNS", 10),
		MaxIdleConns:     getEnvAsInt("POSTGRES_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime:  time.Duration(getEnvAsInt("POSTGRES_CONN_MAX_LIFETIME_SECONDS", 1800)) * time.Second,
		ConnMaxIdleTime:  time.Duration(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_TIME_SECONDS", 600)) * time.Second,
		StatementTimeout: time.Duration(getEnvAsInt("POSTGRES_STATEMENT_TIMEOUT_SECONDS", 300)) * time.Second,
	}

	return cfg, nil
}

// ConnectionString returns a SQLite DSN for the legacy export file.
// The export is opened read-only; the source system is never mutated.
func (c *LegacyConfig) ConnectionString() string {
	return fmt.Sprintf("file:%s?mode=ro&_busy_timeout=%d", c.Path, c.BusyTimeout.Milliseconds())
}

// ConnectionString returns a formatted PostgreSQL connection string
func (c *PostgresConfig) ConnectionString() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.Database,
		c.SSLMode,
	)
}
