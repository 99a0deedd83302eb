// cmd/shopmigrate/run.go
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sunbrite/shopmigrate/pkg/connector"
	"github.com/sunbrite/shopmigrate/pkg/schema"
	"github.com/sunbrite/shopmigrate/pkg/snapshot"
	"github.com/sunbrite/shopmigrate/pkg/transfer"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute the full pipeline: backup, create-schema, transfer, restore",
	Long: `run executes the whole migration in order: back up accounts (if a
users table exists), drop and recreate the destination schema, transfer every
legacy table, and restore accounts from the newest snapshot. Each step's
failure semantics match the standalone command.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		factory := connector.NewConnectorFactory(cfg, logger)
		legacy, postgres, err := factory.CreateAllConnectors(ctx)
		if err != nil {
			return err
		}
		defer legacy.Close()
		defer postgres.Close()

		if err := legacy.Validate(); err != nil {
			return err
		}
		if err := postgres.Validate(); err != nil {
			return err
		}

		store := snapshot.NewStore(cfg.SnapshotDir)

		// Step 1: back up accounts before the schema is destroyed. A first
		// run against an empty destination has nothing to back up.
		hasUsers, err := usersTableExists(ctx, postgres)
		if err != nil {
			return err
		}
		if hasUsers {
			path, err := store.Backup(ctx, postgres)
			if err != nil {
				return err
			}
			logger.Info("Accounts backed up", zap.String("path", path))
		} else {
			logger.Warn("No users table in destination, skipping account backup")
		}

		// Step 2: drop and recreate the destination schema
		materializer := schema.NewMaterializer(postgres, manifest)
		if err := materializer.Materialize(ctx); err != nil {
			return err
		}

		// Step 3: transfer every legacy table
		orchestrator := transfer.NewOrchestrator(legacy, postgres, manifest, cfg.BatchSize)
		summary, err := orchestrator.Run(ctx)
		if summary != nil {
			_ = summary.Render(os.Stdout)
		}
		if err != nil {
			return err
		}

		// Step 4: restore accounts into the fresh users table
		if store.HasSnapshots() {
			count, err := store.Restore(ctx, postgres)
			if err != nil {
				return err
			}
			fmt.Printf("Restored %d account(s)\n", count)
		} else {
			logger.Warn("No account snapshots found, skipping restore")
		}

		return nil
	},
}

// usersTableExists checks whether the destination already has a users table,
// so the first-ever run doesn't fail on backup.
func usersTableExists(ctx context.Context, postgres connector.DatabaseConnector) (bool, error) {
	rows, err := postgres.QueryWithTimeout(ctx, `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_schema = 'public' AND table_name = 'users'
		)
	`, 30*time.Second)
	if err != nil {
		return false, fmt.Errorf("failed to check for users table: %w", err)
	}
	defer rows.Close()

	var exists bool
	if !rows.Next() {
		return false, fmt.Errorf("no result checking for users table")
	}
	if err := rows.Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to scan users table check: %w", err)
	}

	return exists, rows.Err()
}
