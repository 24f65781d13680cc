package repository

import "gorm.io/gorm"

// AutoMigrate creates the persistence schema. Called from cmd wiring and
// the test suites; the persistence models stay private to this package.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&roomModel{},
		&guestModel{},
		&bookingModel{},
		&paymentModel{},
		&chargeModel{},
		&staffModel{},
	)
}
