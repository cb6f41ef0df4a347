package models

import (
	"time"

	"github.com/google/uuid"
)

// Passenger records that a user belongs to a car's passenger set. Created
// atomically with the acceptance of an invitation.
type Passenger struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:uq_passengers_user_car,priority:1"`
	CarID     uuid.UUID `json:"car_id" gorm:"type:uuid;not null;uniqueIndex:uq_passengers_user_car,priority:2"`
	CreatedAt time.Time `json:"created_at"`
}

func (Passenger) TableName() string {
	return "passengers"
}
