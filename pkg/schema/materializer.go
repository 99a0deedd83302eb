// pkg/schema/materializer.go
package schema

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sunbrite/shopmigrate/pkg/connector"
	"github.com/sunbrite/shopmigrate/pkg/model"
)

// Materializer creates the normalized destination schema. It drops every
// object it owns and recreates it from the manifest: a fresh-cutover tool,
// not a live schema-evolution system. Idempotent by replacement.
type Materializer struct {
	postgres connector.DatabaseConnector
	manifest *model.Manifest
	logger   *zap.Logger
}

// NewMaterializer creates a new Materializer
func NewMaterializer(postgres connector.DatabaseConnector, manifest *model.Manifest) *Materializer {
	return &Materializer{
		postgres: postgres,
		manifest: manifest,
		logger:   zap.L().Named("schema"),
	}
}

// Materialize drops and recreates the destination schema: manifest tables in
// dependency order, plus the users and conversion_issues tables. Any failure
// here is structural and aborts.
func (m *Materializer) Materialize(ctx context.Context) error {
	ordered, err := m.manifest.Ordered()
	if err != nil {
		return fmt.Errorf("cannot order manifest tables: %w", err)
	}

	// Drop children before parents so FK constraints never block the drop
	for i := len(ordered) - 1; i >= 0; i-- {
		if err := m.exec(ctx, DropTableSQL(ordered[i].Name)); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", ordered[i].Name, err)
		}
	}
	for _, owned := range []string{"conversion_issues", "users"} {
		if err := m.exec(ctx, DropTableSQL(owned)); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", owned, err)
		}
	}

	for i := range ordered {
		createSQL, err := CreateTableSQL(&ordered[i])
		if err != nil {
			return err
		}
		if err := m.exec(ctx, createSQL); err != nil {
			return fmt.Errorf("failed to create table %s: %w", ordered[i].Name, err)
		}
		m.logger.Info("Created table", zap.String("table", ordered[i].Name))
	}

	if err := m.exec(ctx, UsersTableSQL); err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}
	m.logger.Info("Created table", zap.String("table", "users"))

	if err := m.exec(ctx, ConversionIssuesTableSQL); err != nil {
		return fmt.Errorf("failed to create conversion_issues table: %w", err)
	}
	m.logger.Info("Created table", zap.String("table", "conversion_issues"))

	m.logger.Info("Destination schema materialized",
		zap.Int("manifestTables", len(ordered)))

	return nil
}

func (m *Materializer) exec(ctx context.Context, query string) error {
	_, err := m.postgres.ExecWithTimeout(ctx, query, time.Minute)
	return err
}
