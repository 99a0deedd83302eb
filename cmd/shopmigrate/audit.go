// cmd/shopmigrate/audit.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sunbrite/shopmigrate/pkg/audit"
	"github.com/sunbrite/shopmigrate/pkg/connector"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Report distinct raw values for every column slated for conversion",
	Long: `audit scans the legacy export read-only and prints, for each column
with a declared target type, the most frequent distinct raw values and any
that match known-problematic encodings (zeroed date sentinels, currency
formatting). Run it before transfer to confirm the converter rules cover the
real data. It writes nothing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		factory := connector.NewConnectorFactory(cfg, logger)
		legacy, err := factory.CreateLegacyConnector(ctx)
		if err != nil {
			return err
		}
		defer legacy.Close()

		if err := legacy.Validate(); err != nil {
			return err
		}

		auditor := audit.NewAuditor(legacy, manifest, cfg.AuditTopN)
		report, err := auditor.Run(ctx)
		if err != nil {
			return err
		}

		if err := report.Render(os.Stdout); err != nil {
			return err
		}

		if flagged := report.FlaggedCount(); flagged > 0 {
			fmt.Printf("\n%d value(s) flagged for review\n", flagged)
		}

		return nil
	},
}
