package models

import (
	"time"

	"github.com/google/uuid"
)

type CarLayout string

const (
	LayoutSedaq  CarLayout = "sedaq"  // 4-seat sedan plan
	LayoutTrapaq CarLayout = "trapaq" // 2-seat coupe plan
	LayoutPraq   CarLayout = "praq"   // 7-seat minivan plan
)

var layoutSeatCounts = map[CarLayout]int{
	LayoutSedaq:  4,
	LayoutTrapaq: 2,
	LayoutPraq:   7,
}

func (l CarLayout) Valid() bool {
	_, ok := layoutSeatCounts[l]
	return ok
}

// SeatCount returns the number of seat positions the layout provides.
// Positions are ordinal and 1-indexed.
func (l CarLayout) SeatCount() int {
	return layoutSeatCounts[l]
}

// ValidPosition reports whether position falls inside the layout's seat range.
func (l CarLayout) ValidPosition(position int) bool {
	return position >= 1 && position <= l.SeatCount()
}

type Car struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID `json:"owner_id" gorm:"type:uuid;uniqueIndex;not null"`
	Name      string    `json:"name" gorm:"not null"`
	Layout    CarLayout `json:"layout" gorm:"type:varchar(16);not null"`
	Date      time.Time `json:"date" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Car) TableName() string {
	return "cars"
}
