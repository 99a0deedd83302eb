// pkg/connector/sqlite.go
package connector

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/sunbrite/shopmigrate/pkg/config"
)

// SQLiteConnector implements the DatabaseConnector interface for the legacy
// desktop-database export. The export file is opened read-only: the source
// system is never mutated by any pipeline step.
type SQLiteConnector struct {
	db     *sqlx.DB
	logger *zap.Logger
	cfg    *config.LegacyConfig
}

// NewSQLiteConnector opens the legacy export file
func NewSQLiteConnector(ctx context.Context, cfg *config.LegacyConfig) (*SQLiteConnector, error) {
	logger := zap.L().Named("legacy-connector")

	logger.Info("Opening legacy export",
		zap.String("path", cfg.Path))

	db, err := sqlx.Open("sqlite3", cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to open legacy export: %w", err)
	}

	// One connection is plenty for a sequential, read-only walk
	db.SetMaxOpenConns(1)

	if err := PingWithTimeout(ctx, db.DB, 5*time.Second); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open legacy export %s: %w", cfg.Path, err)
	}

	return &SQLiteConnector{
		db:     db,
		logger: logger,
		cfg:    cfg,
	}, nil
}

// DB returns the underlying database connection
func (c *SQLiteConnector) DB() *sql.DB {
	return c.db.DB
}

// DBx returns the sqlx handle, used for untyped row scanning
func (c *SQLiteConnector) DBx() *sqlx.DB {
	return c.db
}

// Validate verifies the export is readable and looks like a table dump
func (c *SQLiteConnector) Validate() error {
	var tableCount int
	err := c.db.Get(&tableCount, "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table'")
	if err != nil {
		return fmt.Errorf("failed to inspect legacy export: %w", err)
	}

	if tableCount == 0 {
		return fmt.Errorf("legacy export %s contains no tables", c.cfg.Path)
	}

	c.logger.Info("Legacy export validated",
		zap.String("path", c.cfg.Path),
		zap.Int("tables", tableCount))

	return nil
}

// Close closes the export file
func (c *SQLiteConnector) Close() error {
	c.logger.Info("Closing legacy export")
	return c.db.Close()
}

// QueryWithTimeout executes a query with a timeout
func (c *SQLiteConnector) QueryWithTimeout(
	ctx context.Context,
	query string,
	timeout time.Duration,
	args ...interface{},
) (*sql.Rows, error) {
	queryCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return c.db.QueryContext(queryCtx, query, args...)
}

// ExecWithTimeout executes a statement with a timeout. The export is opened
// read-only, so anything beyond PRAGMA statements will fail.
func (c *SQLiteConnector) ExecWithTimeout(
	ctx context.Context,
	query string,
	timeout time.Duration,
	args ...interface{},
) (sql.Result, error) {
	execCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return c.db.ExecContext(execCtx, query, args...)
}

// ReadAllRows reads every row of a legacy table as untyped column→value maps.
// Legacy datasets are small enough to hold in memory, so no windowing.
func (c *SQLiteConnector) ReadAllRows(ctx context.Context, table string) ([]map[string]interface{}, error) {
	queryCtx, cancel := context.WithTimeout(ctx, c.cfg.QueryTimeout)
	defer cancel()

	query := fmt.Sprintf("SELECT * FROM %q", table)
	rows, err := c.db.QueryxContext(queryCtx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to read legacy table %s: %w", table, err)
	}
	defer rows.Close()

	all := make([]map[string]interface{}, 0)
	for rows.Next() {
		row := make(map[string]interface{})
		if err := rows.MapScan(row); err != nil {
			return nil, fmt.Errorf("failed to scan legacy row from %s: %w", table, err)
		}
		all = append(all, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating legacy table %s: %w", table, err)
	}

	return all, nil
}

// TableExists reports whether a table exists in the legacy export
func (c *SQLiteConnector) TableExists(ctx context.Context, table string) (bool, error) {
	var count int
	err := c.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table)
	if err != nil {
		return false, fmt.Errorf("failed to check for legacy table %s: %w", table, err)
	}
	return count > 0, nil
}
