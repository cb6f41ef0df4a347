package models

import (
	"time"

	"github.com/google/uuid"
)

// Seat is a (car, position) occupancy record. The unique indexes are the
// arbiter for concurrent seat selection: one occupant per position, one
// seat per user.
type Seat struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CarID     uuid.UUID `json:"car_id" gorm:"type:uuid;not null;uniqueIndex:uq_seats_car_position,priority:1"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:uq_seats_user"`
	Position  int       `json:"position" gorm:"not null;uniqueIndex:uq_seats_car_position,priority:2"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Seat) TableName() string {
	return "seats"
}
