package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/infrastructure/config"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// OpenSQL opens the relational store for the given driver and validates connectivity.
func OpenSQL(ctx context.Context, driver config.StorageDriver, databaseURL string) (*sql.DB, error) {
	switch driver {
	case config.DriverPostgres:
		return openPostgres(ctx, databaseURL)
	case config.DriverSQLite:
		return openSQLite(ctx, databaseURL)
	default:
		return nil, fmt.Errorf("driver %q is not a SQL store", driver)
	}
}

func openPostgres(ctx context.Context, databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open postgres database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres database: %w", err)
	}
	return db, nil
}

func openSQLite(ctx context.Context, databaseURL string) (*sql.DB, error) {
	path := strings.TrimPrefix(databaseURL, "sqlite://")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// A single connection keeps :memory: databases alive and serializes writers.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, `
		PRAGMA journal_mode = WAL;
		PRAGMA busy_timeout = 5000;
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("set sqlite pragmas: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}
	return db, nil
}
