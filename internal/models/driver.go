package models

import (
	"time"

	"github.com/google/uuid"
)

// CarDriver is one entry in a car's driver-assignment history. At most one
// row per car has IsActive set; the partial unique index
// uq_car_drivers_one_active enforces that under concurrent assignment.
type CarDriver struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	CarID      uuid.UUID  `json:"car_id" gorm:"type:uuid;index;not null"`
	DriverID   uuid.UUID  `json:"driver_id" gorm:"type:uuid;index;not null"`
	IsActive   bool       `json:"is_active" gorm:"not null"`
	AssignedAt time.Time  `json:"assigned_at" gorm:"not null"`
	RevokedAt  *time.Time `json:"revoked_at,omitempty"`
}

func (CarDriver) TableName() string {
	return "car_drivers"
}
