package main

import (
	"log/slog"

	"github.com/SscSPs/book_catalog_api/migrations"
	"github.com/SscSPs/book_catalog_api/pkg/database"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all up migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrations(database.MigrateUp)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the latest migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrations(database.MigrateDown)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd)
}

func runMigrations(direction database.Direction) error {
	cfg, logger, err := loadRuntime()
	if err != nil {
		return err
	}
	if err := database.RunMigrations(cfg.DatabaseURL, migrations.FS, direction, logger); err != nil {
		logger.Error("Migration failed", slog.String("direction", string(direction)), slog.String("error", err.Error()))
		return err
	}
	return nil
}
