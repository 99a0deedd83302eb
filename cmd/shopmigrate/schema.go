// cmd/shopmigrate/schema.go
package main

import (
	"github.com/spf13/cobra"

	"github.com/sunbrite/shopmigrate/pkg/connector"
	"github.com/sunbrite/shopmigrate/pkg/schema"
)

var createSchemaCmd = &cobra.Command{
	Use:   "create-schema",
	Short: "Drop and recreate the normalized destination schema",
	Long: `create-schema drops every destination table this tool owns and
recreates it with typed columns and constraints. Destructive by design: the
migration is idempotent by replacement, not by repair. Back up accounts first
if the users table holds anything worth keeping.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		factory := connector.NewConnectorFactory(cfg, logger)
		postgres, err := factory.CreatePostgresConnector(ctx)
		if err != nil {
			return err
		}
		defer postgres.Close()

		if err := postgres.Validate(); err != nil {
			return err
		}

		materializer := schema.NewMaterializer(postgres, manifest)
		return materializer.Materialize(ctx)
	},
}
