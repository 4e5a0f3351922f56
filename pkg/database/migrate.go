package database

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Direction selects which way migrations are applied.
type Direction string

const (
	MigrateUp   Direction = "up"
	MigrateDown Direction = "down"
)

// RunMigrations applies the migrations found in source to the database at
// databaseURL. MigrateDown rolls back a single step.
func RunMigrations(databaseURL string, source fs.FS, direction Direction, logger *slog.Logger) error {
	// migrate needs a database/sql handle; the pgx stdlib driver keeps the
	// same connection semantics as the pool.
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database connection for migrations: %w", err)
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create postgres driver instance for migrations: %w", err)
	}

	src, err := iofs.New(source, ".")
	if err != nil {
		return fmt.Errorf("could not open migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		_ = src.Close()
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer func() {
		sourceErr, dbErr := m.Close()
		if sourceErr != nil {
			logger.Error("Migration source error", slog.String("error", sourceErr.Error()))
		}
		if dbErr != nil {
			logger.Error("Migration database error", slog.String("error", dbErr.Error()))
		}
	}()

	switch direction {
	case MigrateUp:
		err = m.Up()
	case MigrateDown:
		err = m.Steps(-1)
	default:
		return fmt.Errorf("unknown migration direction %q", direction)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations (%s): %w", direction, err)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
	} else {
		version, dirty, _ := m.Version()
		logger.Info("Database migrations applied successfully.",
			slog.String("direction", string(direction)),
			slog.Uint64("version", uint64(version)),
			slog.Bool("dirty", dirty))
	}
	return nil
}
