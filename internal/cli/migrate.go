package cli

import (
	"fmt"

	"gym_backend/internal/database"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create missing tables and indexes",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.Open(cfg.Database.Driver, cfg.Database.DSN(), cfg.Database.MaxOpenConns)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := database.ApplySchema(db); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Schema applied (%s)\n", cfg.Database.Driver)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
