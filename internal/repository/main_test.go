package repository

import (
	"context"
	"testing"

	"spacedout/internal/database"
	"spacedout/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a fresh in-memory database with the full schema migrated.
// Each test gets its own database, so no truncation between tests is needed.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: database.NewGormLogger()})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()
	user, err := models.NewUser(name, email, "correct horse battery staple")
	require.NoError(t, err)
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user
}

func createTestLocation(t *testing.T, db *gorm.DB, name string) *models.Location {
	t.Helper()
	location := models.NewLocation(name, "123 Main St, Ithaca NY", 42.4534, -76.4735)
	require.NoError(t, NewLocationRepository(db).Create(context.Background(), location))
	return location
}
