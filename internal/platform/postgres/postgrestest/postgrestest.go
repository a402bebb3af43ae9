// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package postgrestest opens a migrated PostgreSQL pool for repository tests.

Tests that call [Pool] are skipped unless TEST_DATABASE_URL is set. Rows are
not truncated between tests: callers use unique names so packages may run
against the same database concurrently.
*/
package postgrestest

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/fyyur/internal/platform/migration"
	"github.com/taibuivan/fyyur/internal/platform/postgres"
)

// EnvDatabaseURL names the variable holding the test database DSN.
const EnvDatabaseURL = "TEST_DATABASE_URL"

// Pool returns a pool on a fully migrated test database, closed on cleanup.
func Pool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv(EnvDatabaseURL)
	if dsn == "" {
		t.Skipf("%s not set; skipping PostgreSQL integration test", EnvDatabaseURL)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, migration.RunUp(dsn, migrationsDir(), logger))

	pool, err := postgres.NewPool(context.Background(), dsn, logger)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

// GenreIDs resolves seeded genres by slug, in argument order.
func GenreIDs(t *testing.T, pool *pgxpool.Pool, slugs ...string) []int {
	t.Helper()

	ids := make([]int, len(slugs))
	for i, slug := range slugs {
		err := pool.QueryRow(context.Background(), `SELECT id FROM "Genre" WHERE slug = $1`, slug).Scan(&ids[i])
		require.NoError(t, err, "genre %q", slug)
	}
	return ids
}

// migrationsDir locates data/migrations from this source file.
func migrationsDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "..", "..", "data", "migrations")
}
