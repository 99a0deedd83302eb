// pkg/connector/factory.go
package connector

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sunbrite/shopmigrate/pkg/config"
)

// ConnectorFactory creates database connectors
type ConnectorFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewConnectorFactory creates a new connector factory
func NewConnectorFactory(cfg *config.Config, logger *zap.Logger) *ConnectorFactory {
	return &ConnectorFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateLegacyConnector opens the legacy export
func (f *ConnectorFactory) CreateLegacyConnector(ctx context.Context) (*SQLiteConnector, error) {
	f.logger.Info("Opening legacy export connector")

	conn, err := NewSQLiteConnector(ctx, f.cfg.Legacy)
	if err != nil {
		return nil, fmt.Errorf("failed to create legacy connector: %w", err)
	}

	return conn, nil
}

// CreatePostgresConnector creates a new PostgreSQL connector
func (f *ConnectorFactory) CreatePostgresConnector(ctx context.Context) (*PostgresConnector, error) {
	f.logger.Info("Creating PostgreSQL connector")

	conn, err := NewPostgresConnector(ctx, f.cfg.Postgres)
	if err != nil {
		return nil, fmt.Errorf("failed to create PostgreSQL connector: %w", err)
	}

	return conn, nil
}

// CreateAllConnectors creates both the legacy and PostgreSQL connectors
func (f *ConnectorFactory) CreateAllConnectors(ctx context.Context) (*SQLiteConnector, *PostgresConnector, error) {
	legacyConn, err := f.CreateLegacyConnector(ctx)
	if err != nil {
		return nil, nil, err
	}

	pgConn, err := f.CreatePostgresConnector(ctx)
	if err != nil {
		legacyConn.Close() // Clean up the legacy handle if PostgreSQL fails
		return nil, nil, err
	}

	return legacyConn, pgConn, nil
}
