// cmd/shopmigrate/accounts.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sunbrite/shopmigrate/pkg/connector"
	"github.com/sunbrite/shopmigrate/pkg/snapshot"
)

var backupAccountsCmd = &cobra.Command{
	Use:   "backup-accounts",
	Short: "Snapshot the users table to a timestamped file",
	Long: `backup-accounts serializes the full users table to a timestamped
JSON file under the snapshot directory. Accounts are not part of the legacy
export, so this is the only thing standing between them and create-schema.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		factory := connector.NewConnectorFactory(cfg, logger)
		postgres, err := factory.CreatePostgresConnector(ctx)
		if err != nil {
			return err
		}
		defer postgres.Close()

		store := snapshot.NewStore(cfg.SnapshotDir)
		path, err := store.Backup(ctx, postgres)
		if err != nil {
			return err
		}

		fmt.Printf("Accounts backed up to %s\n", path)
		return nil
	},
}

var restoreAccountsCmd = &cobra.Command{
	Use:   "restore-accounts",
	Short: "Restore the users table from the most recent snapshot",
	Long: `restore-accounts re-inserts account rows from the newest snapshot
file into the freshly created users table, preserving original identifiers.
Run after transfer completes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		factory := connector.NewConnectorFactory(cfg, logger)
		postgres, err := factory.CreatePostgresConnector(ctx)
		if err != nil {
			return err
		}
		defer postgres.Close()

		store := snapshot.NewStore(cfg.SnapshotDir)
		count, err := store.Restore(ctx, postgres)
		if err != nil {
			return err
		}

		fmt.Printf("Restored %d account(s)\n", count)
		return nil
	},
}
