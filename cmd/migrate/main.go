// Command migrate manages the schema of the configured store.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/infrastructure/config"
	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/infrastructure/database"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect storage migrations",
		Long: `Runs the embedded goose migrations against DATABASE_URL (postgres or sqlite).
With STORAGE_DRIVER=dynamodb, "up" creates the leads and calculations tables instead.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.Driver == config.DriverDynamoDB {
				ddb, err := database.NewDynamoDBClient(cmd.Context(), cfg)
				if err != nil {
					return err
				}
				return database.EnsureDynamoDBTables(cmd.Context(), ddb, cfg.LeadsTable, cfg.CalculationsTable)
			}
			return withSQL(cmd.Context(), cfg, database.Migrate)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the latest migration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return withSQL(cmd.Context(), cfg, database.MigrateDown)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Print applied and pending migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return withSQL(cmd.Context(), cfg, database.MigrationStatus)
		},
	})

	return cmd
}

func withSQL(ctx context.Context, cfg config.Config, fn func(*sql.DB, config.StorageDriver) error) error {
	if cfg.Driver == config.DriverDynamoDB {
		return fmt.Errorf("%s driver has no versioned migrations", cfg.Driver)
	}
	db, err := database.OpenSQL(ctx, cfg.Driver, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	log.Printf("[migrate] driver=%s", cfg.Driver)
	return fn(db, cfg.Driver)
}
