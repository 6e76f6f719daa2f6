package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the three registry tables. Enum-like
// columns are plain TEXT so new enum values never need a migration; the
// unique indexes on the business keys are the store-level backstop for
// the non-transactional check-then-write path.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&employeeModel{},
		&stationModel{},
		&maintenanceModel{},
	)
}
