package database

import (
	"gorm.io/gorm"

	"sitzy/internal/models"
)

// Migrate brings the schema up to date. AutoMigrate covers tables and plain
// unique indexes; the partial unique indexes that arbitrate the concurrency
// invariants are created explicitly because gorm tags cannot express a
// WHERE clause.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.SocialAccount{},
		&models.SocialSession{},
		&models.Car{},
		&models.Invitation{},
		&models.Passenger{},
		&models.Seat{},
		&models.CarDriver{},
		&models.Ride{},
		&models.RidePassenger{},
	)
	if err != nil {
		return err
	}

	partialIndexes := []string{
		// At most one active driver per car.
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_car_drivers_one_active
		 ON car_drivers (car_id) WHERE is_active = true`,
		// At most one pending invitation per (car, email), case-insensitive.
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_invitations_pending
		 ON invitations (car_id, lower(invited_email)) WHERE status = 'pending'`,
	}

	for _, stmt := range partialIndexes {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	return nil
}
