// Package testutil opens throwaway databases for package tests.
package testutil

import (
	"fmt"
	"testing"

	"contracting-cms/internal/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB returns a migrated in-memory SQLite database private to t. A single
// connection keeps the shared-cache database alive and serializes access.
func NewDB(t *testing.T) *gorm.DB {
	return open(t, "")
}

// NewDBWithForeignKeys is NewDB with foreign key enforcement switched on,
// matching how PostgreSQL treats the constraints AutoMigrate creates.
func NewDBWithForeignKeys(t *testing.T) *gorm.DB {
	return open(t, "&_foreign_keys=1")
}

func open(t *testing.T, params string) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared%s", uuid.NewString(), params)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}
