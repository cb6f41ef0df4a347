package interfaces

import (
	"context"

	"github.com/google/uuid"

	"sitzy/internal/models"
)

type CarDriverRepository interface {
	// Assign revokes the currently active driver (if any) and inserts the
	// new active row in one transaction. The partial unique index on
	// (car_id) WHERE is_active guards the one-active-driver invariant
	// under concurrent calls.
	Assign(ctx context.Context, carID, driverID uuid.UUID) (*models.CarDriver, error)

	// Revoke deactivates the active row. Revoking a car with no active
	// driver is a no-op success.
	Revoke(ctx context.Context, carID uuid.UUID) error

	GetActive(ctx context.Context, carID uuid.UUID) (*models.CarDriver, error)
}
