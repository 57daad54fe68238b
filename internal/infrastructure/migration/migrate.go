package migration

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"

	appLogger "aircast/internal/shared/logger"
)

//go:embed sql/*.sql
var migrationFiles embed.FS

func init() {
	goose.SetBaseFS(migrationFiles)
}

// Up applies all pending migrations.
func Up(db *sql.DB) error {
	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	if err := goose.Up(db, "sql"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, err := goose.GetDBVersion(db)
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}

	appLogger.Info("migrations applied", "version", version)
	return nil
}

// Status prints the state of every known migration.
func Status(db *sql.DB) error {
	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}
	return goose.Status(db, "sql")
}

// Down rolls back the most recent migration.
func Down(db *sql.DB) error {
	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}
	return goose.Down(db, "sql")
}
