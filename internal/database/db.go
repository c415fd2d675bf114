package database

import (
	"github.com/whisperlink/server/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the store client. The returned handle is passed to
// repositories explicitly; there is no package-level singleton.
func Connect(databaseURL string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
}

// Migrate creates or updates the links and messages tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Link{}, &models.Message{})
}
