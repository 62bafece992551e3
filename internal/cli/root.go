package cli

import (
	"fmt"

	"gym_backend/internal/config"
	"gym_backend/internal/database"
	"gym_backend/pkg/utils"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gym",
	Short: "Gym management backend",
	Long: `gym runs the gym management backend: client records, membership
types, memberships with payments, and the equipment inventory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		utils.InitLogger(cfg.Log.Level, cfg.Log.Format)
		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

// openDB connects to the configured store and applies the schema when auto_migrate is on.
func openDB() (*sqlx.DB, error) {
	db, err := database.Open(cfg.Database.Driver, cfg.Database.DSN(), cfg.Database.MaxOpenConns)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if cfg.Database.AutoMigrate {
		if err := database.ApplySchema(db); err != nil {
			db.Close()
			return nil, err
		}
	}
	return db, nil
}
