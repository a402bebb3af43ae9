// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package migration provides a thin wrapper around golang-migrate for
// running the Fyyur schema migrations (Venue, Artist, Genre, Show and the
// two genre association tables).
//
// # Architecture
//
// This package belongs to the Infrastructure layer. The API server calls
// [RunUp] at startup; the fyyurctl CLI exposes up, down and version.
package migration

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	// pgx5 driver registers "pgx5" scheme for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	// file source reads .sql files from disk.
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunUp applies all pending UP migrations.
//
// # Parameters
//   - dsn: A libpq-compatible DSN or postgres:// URL.
//   - migrationsPath: Filesystem path to the migrations directory.
//   - logger: Structured logger for migration events.
func RunUp(dsn string, migrationsPath string, logger *slog.Logger) error {
	return withMigrator(dsn, migrationsPath, logger, func(migrator *migrate.Migrate) error {
		currentVersion, err := checkClean(migrator)
		if err != nil {
			return err
		}

		logger.Info("migration_started", slog.Int("current_version", int(currentVersion)))

		if err := migrator.Up(); err != nil {
			if errors.Is(err, migrate.ErrNoChange) {
				logger.Info("migration_already_up_to_date")
				return nil
			}
			return fmt.Errorf("migration: up failed: %w", err)
		}

		newVersion, _, _ := migrator.Version()
		logger.Info("migration_successful",
			slog.Int("from_version", int(currentVersion)),
			slog.Int("to_version", int(newVersion)),
		)
		return nil
	})
}

// RunDown reverts the given number of migrations. steps <= 0 reverts all of them.
func RunDown(dsn string, migrationsPath string, steps int, logger *slog.Logger) error {
	return withMigrator(dsn, migrationsPath, logger, func(migrator *migrate.Migrate) error {
		currentVersion, err := checkClean(migrator)
		if err != nil {
			return err
		}

		if steps > 0 {
			err = migrator.Steps(-steps)
		} else {
			err = migrator.Down()
		}

		if err != nil {
			if errors.Is(err, migrate.ErrNoChange) {
				logger.Info("migration_nothing_to_revert")
				return nil
			}
			return fmt.Errorf("migration: down failed: %w", err)
		}

		logger.Info("migration_reverted",
			slog.Int("from_version", int(currentVersion)),
			slog.Int("steps", steps),
		)
		return nil
	})
}

// Version reports the applied schema version and whether it is dirty.
// A database with no migrations applied reports version 0.
func Version(dsn string, migrationsPath string, logger *slog.Logger) (uint, bool, error) {
	var (
		version uint
		isDirty bool
	)

	err := withMigrator(dsn, migrationsPath, logger, func(migrator *migrate.Migrate) error {
		var err error
		version, isDirty, err = migrator.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("migration: failed to get current version: %w", err)
		}
		return nil
	})

	return version, isDirty, err
}

// withMigrator opens a migrator, runs fn and always closes both source and database handles.
func withMigrator(dsn, migrationsPath string, logger *slog.Logger, fn func(*migrate.Migrate) error) error {
	migrator, err := migrate.New("file://"+migrationsPath, convertToPgx5DSN(dsn))
	if err != nil {
		return fmt.Errorf("migration: failed to initialize: %w", err)
	}
	defer func() {
		sourceError, dbError := migrator.Close()
		if sourceError != nil {
			logger.Error("migration_source_close_failed", slog.Any("error", sourceError))
		}
		if dbError != nil {
			logger.Error("migration_db_close_failed", slog.Any("error", dbError))
		}
	}()

	migrator.Log = &migrateLogger{logger: logger}

	return fn(migrator)
}

// checkClean returns the current version, refusing to continue on a dirty database.
func checkClean(migrator *migrate.Migrate) (uint, error) {
	currentVersion, isDirty, err := migrator.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, fmt.Errorf("migration: failed to get current version: %w", err)
	}

	if isDirty {
		return 0, fmt.Errorf("migration: database is in a dirty state at version %d (manual intervention required)", currentVersion)
	}

	return currentVersion, nil
}

// convertToPgx5DSN ensures the DSN uses the pgx5:// scheme required by golang-migrate/v4.
func convertToPgx5DSN(dsn string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if rest, ok := strings.CutPrefix(dsn, prefix); ok {
			return "pgx5://" + rest
		}
	}
	return dsn
}

// migrateLogger adapts golang-migrate's logger interface to slog.
type migrateLogger struct {
	logger  *slog.Logger
	verbose bool
}

// Printf implements migrate.Logger.
func (l *migrateLogger) Printf(format string, args ...any) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// Verbose implements migrate.Logger.
func (l *migrateLogger) Verbose() bool {
	return l.verbose
}
