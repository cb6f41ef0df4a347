package interfaces

import (
	"context"

	"github.com/google/uuid"

	"sitzy/internal/models"
)

// SeatRepository persists seat occupancy. Create and UpdatePosition rely on
// the database unique indexes as the final arbiter: a lost race comes back
// as a duplicate error, not as a second success.
type SeatRepository interface {
	Create(ctx context.Context, seat *models.Seat) error
	GetByUser(ctx context.Context, userID uuid.UUID) (*models.Seat, error)
	GetByCarAndPosition(ctx context.Context, carID uuid.UUID, position int) (*models.Seat, error)
	ListByCar(ctx context.Context, carID uuid.UUID) ([]*models.Seat, error)
	UpdatePosition(ctx context.Context, id uuid.UUID, position int) error
	Delete(ctx context.Context, id uuid.UUID) error
}
