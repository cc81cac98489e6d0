package repository

import (
	"gorm.io/gorm"

	"photosite/internal/domain"
)

// AutoMigrate creates or updates every table the repositories use.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&bookingModel{},
		&windowModel{},
		&consultationModel{},
		&domain.Collection{},
		&domain.CollectionImage{},
		&domain.AdminUser{},
	)
}
