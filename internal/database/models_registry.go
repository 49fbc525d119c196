package database

import "spacedout/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM
// models: users, locations, comments, positions, plus the favorites join
// table GORM derives from the many-to-many declaration.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Location{},
		&models.Comment{},
		&models.Position{},
	}
}
