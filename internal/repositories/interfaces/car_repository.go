package interfaces

import (
	"context"

	"github.com/google/uuid"

	"sitzy/internal/models"
)

type CarRepository interface {
	Create(ctx context.Context, car *models.Car) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Car, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*models.Car, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Car, error)
	Update(ctx context.Context, car *models.Car) error

	// Delete removes the car and everything hanging off it (invitations,
	// seats, passengers, driver history, rides) in one transaction.
	Delete(ctx context.Context, id uuid.UUID) error
}
