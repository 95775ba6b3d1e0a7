package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for every table this package
// owns. Used by cmd/seed and by sqlite-backed tests.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&courseModel{},
		&courseRoundModel{},
		&applicationModel{},
		&certificateModel{},
		&bookingModel{},
		&notificationModel{},
	)
}
