package models

import (
	"time"

	"github.com/google/uuid"
)

// Ride is a scheduled departure tied to a car and its driver assignment.
// The scheduling workflow is not implemented yet; the tables exist so the
// schema is complete for when it lands.
type Ride struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CarID         uuid.UUID `json:"car_id" gorm:"type:uuid;index;not null"`
	CarDriverID   uuid.UUID `json:"car_driver_id" gorm:"type:uuid;index;not null"`
	DepartureTime time.Time `json:"departure_time" gorm:"index;not null"`
	Destination   string    `json:"destination" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"`
}

func (Ride) TableName() string {
	return "rides"
}

// RidePassenger scopes a booking to a single ride rather than to the car.
type RidePassenger struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `json:"user_id" gorm:"type:uuid;index;not null"`
	RideID       uuid.UUID `json:"ride_id" gorm:"type:uuid;index;not null"`
	SeatPosition int       `json:"seat_position" gorm:"not null"`
}

func (RidePassenger) TableName() string {
	return "ride_passengers"
}
