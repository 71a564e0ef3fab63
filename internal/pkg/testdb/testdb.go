// Package testdb gives tests a private, migrated in-memory database that runs
// through the same GORM repositories as production.
package testdb

import (
	"testing"

	"cashbook-be/internal/model"
	"cashbook-be/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.NewSqliteDB("", logger.Silent)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))

	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}
