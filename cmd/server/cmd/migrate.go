package cmd

import (
	"fmt"

	"github.com/jarvis-home/eventlog/internal/config"
	"github.com/jarvis-home/eventlog/internal/storage/postgres"
	"github.com/spf13/cobra"
)

var (
	migrationsPath     string
	migrateDownSteps   int
	migrateDownConfirm bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long:  `Apply or roll back schema migrations against DATABASE_URL.`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("config error: %w", err)
		}

		logger := config.NewLogger(cfg.Logging)
		if err := postgres.MigrateUp(cfg.Database.URL, migrationsPath); err != nil {
			return err
		}
		logger.Info().Msg("migrations applied")
		return nil
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !migrateDownConfirm {
			return fmt.Errorf("migrate down is destructive; re-run with --confirm")
		}

		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("config error: %w", err)
		}

		logger := config.NewLogger(cfg.Logging)
		if err := postgres.MigrateDown(cfg.Database.URL, migrationsPath, migrateDownSteps); err != nil {
			return err
		}
		logger.Info().Int("steps", migrateDownSteps).Msg("migrations rolled back")
		return nil
	},
}

func init() {
	migrateCmd.PersistentFlags().StringVar(&migrationsPath, "path", "", "migrations directory (default: "+postgres.DefaultMigrationsPath+")")
	migrateDownCmd.Flags().IntVar(&migrateDownSteps, "steps", 1, "number of migrations to roll back")
	migrateDownCmd.Flags().BoolVar(&migrateDownConfirm, "confirm", false, "confirm destructive rollback")

	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
}
