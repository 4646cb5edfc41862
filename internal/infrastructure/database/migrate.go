package database

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/infrastructure/config"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// gooseTarget returns the goose dialect and embedded directory for a SQL driver.
func gooseTarget(driver config.StorageDriver) (dialect, dir string, err error) {
	switch driver {
	case config.DriverPostgres:
		return "postgres", "migrations/postgres", nil
	case config.DriverSQLite:
		return "sqlite3", "migrations/sqlite", nil
	}
	return "", "", fmt.Errorf("no migrations for driver %q", driver)
}

func prepareGoose(driver config.StorageDriver) (string, error) {
	dialect, dir, err := gooseTarget(driver)
	if err != nil {
		return "", err
	}
	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect(dialect); err != nil {
		return "", fmt.Errorf("set goose dialect: %w", err)
	}
	return dir, nil
}

// Migrate applies all pending migrations.
func Migrate(db *sql.DB, driver config.StorageDriver) error {
	dir, err := prepareGoose(driver)
	if err != nil {
		return err
	}
	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("run goose up migrations: %w", err)
	}
	return nil
}

// MigrateDown rolls back the most recent migration.
func MigrateDown(db *sql.DB, driver config.StorageDriver) error {
	dir, err := prepareGoose(driver)
	if err != nil {
		return err
	}
	if err := goose.Down(db, dir); err != nil {
		return fmt.Errorf("run goose down migration: %w", err)
	}
	return nil
}

// MigrationStatus logs the applied state of every migration.
func MigrationStatus(db *sql.DB, driver config.StorageDriver) error {
	dir, err := prepareGoose(driver)
	if err != nil {
		return err
	}
	if err := goose.Status(db, dir); err != nil {
		return fmt.Errorf("goose status: %w", err)
	}
	return nil
}
