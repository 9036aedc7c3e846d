package postgres

import (
	"phonebook/internal/errors"
	"phonebook/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// AutoMigrate creates or extends the phonebook tables.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate phonebook schema")
	}

	return nil
}
