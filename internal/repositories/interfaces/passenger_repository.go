package interfaces

import (
	"context"

	"github.com/google/uuid"

	"sitzy/internal/models"
)

type PassengerRepository interface {
	Exists(ctx context.Context, userID, carID uuid.UUID) (bool, error)

	// FirstForUser resolves the car a user belongs to as a passenger.
	FirstForUser(ctx context.Context, userID uuid.UUID) (*models.Passenger, error)

	ListCarIDsForUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}
