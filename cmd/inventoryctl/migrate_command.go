package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"inventory-workflow-backend/internal/database"
)

func newMigrateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := ctx.open()
			if err != nil {
				return err
			}
			if err := database.NewMigrator(db, cfg.DatabaseDriver, ctx.logger()).Run(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied")
			return nil
		},
	}
}
