package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var databaseFlag string
	var driverFlag string

	ctx := newCommandContext(&databaseFlag, &driverFlag)

	rootCmd := &cobra.Command{
		Use:           "inventoryctl",
		Short:         "Inspect and maintain saved inventory workflow batches",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			ctx.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&databaseFlag, "database-url", "", "Database connection string (defaults to DATABASE_URL)")
	rootCmd.PersistentFlags().StringVar(&driverFlag, "driver", "", "Database driver: postgres or sqlite (defaults to DATABASE_DRIVER)")

	rootCmd.AddCommand(newMigrateCommand(ctx))
	rootCmd.AddCommand(newBatchesCommand(ctx))

	return rootCmd
}
