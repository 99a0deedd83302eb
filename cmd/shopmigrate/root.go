// cmd/shopmigrate/root.go
package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sunbrite/shopmigrate/pkg/config"
	"github.com/sunbrite/shopmigrate/pkg/logging"
	"github.com/sunbrite/shopmigrate/pkg/model"
)

// Shared by all subcommands, populated by the persistent pre-run
var (
	cfg      *config.Config
	logger   *zap.Logger
	manifest *model.Manifest
)

var rootCmd = &cobra.Command{
	Use:   "shopmigrate",
	Short: "Migrate the shop's legacy desktop database to PostgreSQL",
	Long: `shopmigrate converts the legacy desktop-database export (all-text
columns) into the normalized PostgreSQL schema: typed dates, booleans, and
numerics, with unparseable values nulled and logged rather than dropped.

Connection settings come from the environment (or a .env file):
LEGACY_EXPORT_PATH points at the SQLite export of the desktop database,
POSTGRES_* describe the destination.

Steps are independently invocable and are normally run in order:
audit, backup-accounts, create-schema, transfer, restore-accounts, verify.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return err
		}

		logger, err = logging.Init(cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			return err
		}

		manifest = model.ShopManifest()
		return manifest.Validate()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(createSchemaCmd)
	rootCmd.AddCommand(transferCmd)
	rootCmd.AddCommand(backupAccountsCmd)
	rootCmd.AddCommand(restoreAccountsCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(runCmd)
}
