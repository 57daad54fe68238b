package migrate

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"aircast/internal/infrastructure/config"
	"aircast/internal/infrastructure/database"
	"aircast/internal/infrastructure/migration"
	"aircast/internal/shared/logger"
)

// NewCommand returns the migrate command group.
func NewCommand() *cobra.Command {
	var env string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database schema migrations",
	}
	cmd.PersistentFlags().StringVar(&env, "env", "development", "environment to load configuration for")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDB(env, migration.Up)
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDB(env, migration.Down)
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show migration status",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDB(env, migration.Status)
			},
		},
	)

	return cmd
}

func withDB(env string, fn func(db *sql.DB) error) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return err
	}
	defer database.Close()

	sqlDB, err := database.Get().DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	return fn(sqlDB)
}
