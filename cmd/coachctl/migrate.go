package main

import (
	"fmt"

	"github.com/2beens/adaptivecoach/internal/db"

	"github.com/spf13/cobra"
)

var migrateDown bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	Long:  "Apply all pending schema migrations, or roll back the most recent one with --down.",
	Args:  cobra.NoArgs,
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDown, "down", false,
		"roll back the most recent migration")
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	pool, err := openDBPool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	if migrateDown {
		if err := db.Rollback(ctx, pool); err != nil {
			return fmt.Errorf("rollback: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "rolled back one migration")
		return nil
	}

	if err := db.Migrate(ctx, pool); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
	return nil
}
