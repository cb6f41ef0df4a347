package interfaces

import (
	"context"

	"github.com/google/uuid"

	"sitzy/internal/models"
)

type InvitationRepository interface {
	Create(ctx context.Context, invitation *models.Invitation) error
	GetByToken(ctx context.Context, token string) (*models.Invitation, error)

	// FindPending looks up the pending invitation for (car, email),
	// matching the email case-insensitively.
	FindPending(ctx context.Context, carID uuid.UUID, email string) (*models.Invitation, error)

	ListByCar(ctx context.Context, carID uuid.UUID) ([]*models.Invitation, error)

	// ListByEmail returns invitations addressed to the email
	// (case-insensitive), newest first.
	ListByEmail(ctx context.Context, email string) ([]*models.Invitation, error)

	// Accept flips the invitation to accepted and inserts the passenger
	// membership row in a single transaction. Partial application must
	// never be observable.
	Accept(ctx context.Context, invitation *models.Invitation, userID uuid.UUID) error

	// UpdateStatus moves a pending invitation to the given status. The
	// write carries the pending guard itself; a row that is no longer
	// pending comes back as not found, so a concurrent response can never
	// overwrite a terminal state.
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.InvitationStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}
