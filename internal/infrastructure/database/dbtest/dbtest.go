// Package dbtest opens migrated throwaway SQLite databases for tests.
package dbtest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bulletin/internal/infrastructure/database"
	"bulletin/internal/infrastructure/migration"
	"bulletin/internal/shared/config"
	"bulletin/internal/shared/logger"
)

// Open returns an in-memory SQLite database with the goose schema applied.
// The pool is pinned to one connection so the database outlives queries.
func Open(t testing.TB) *gorm.DB {
	t.Helper()
	return open(t, &config.DatabaseConfig{
		Driver:       database.DriverSQLite,
		Path:         ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
}

// OpenFile is like Open but backed by a file in t.TempDir, with a pool of
// maxOpenConns connections for tests that run queries concurrently.
func OpenFile(t testing.TB, maxOpenConns int) (*gorm.DB, *config.DatabaseConfig) {
	t.Helper()
	cfg := &config.DatabaseConfig{
		Driver:       database.DriverSQLite,
		Path:         filepath.Join(t.TempDir(), "bulletin.db"),
		MaxOpenConns: maxOpenConns,
		MaxIdleConns: maxOpenConns,
	}
	return open(t, cfg), cfg
}

func open(t testing.TB, cfg *config.DatabaseConfig) *gorm.DB {
	t.Helper()

	log := logger.NewNopLogger()
	gdb, err := database.Open(cfg, log)
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	require.NoError(t, migration.NewGooseStrategy(migration.DialectSQLite3, log).Migrate(gdb))
	return gdb
}
