// Package testutil provides an in-memory ledger database for tests.
package testutil

import (
	"testing"

	"cafe-ledger/db"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm/logger"
)

// NewDatabase returns a migrated SQLite :memory: database closed at test end.
// The pool is pinned to one connection so every query sees the same memory database.
func NewDatabase(t testing.TB) *db.GormDatabase {
	t.Helper()

	gdb, err := db.Open(sqlite.Open(":memory:"), logger.Silent)
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(gdb))

	database := &db.GormDatabase{DB: gdb}
	t.Cleanup(func() { _ = database.Close() })
	return database
}
