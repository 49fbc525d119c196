package database

import (
	"testing"

	"spacedout/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestPersistentModelsMigrate(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: NewGormLogger()})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(PersistentModels()...))

	for _, table := range []string{"users", "locations", "comments", "positions", "favorites"} {
		assert.True(t, db.Migrator().HasTable(table), "expected table %s", table)
	}
}

func TestSchemaUniqueColumns(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(PersistentModels()...))

	first, err := models.NewUser("Ana", "ana@x.com", "pw123")
	require.NoError(t, err)
	require.NoError(t, db.Create(first).Error)

	second, err := models.NewUser("Other Ana", "ana@x.com", "pw456")
	require.NoError(t, err)
	assert.Error(t, db.Create(second).Error, "duplicate email must violate the unique index")
}
