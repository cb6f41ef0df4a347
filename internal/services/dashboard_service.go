package services

import (
	"context"
	"errors"

	"sitzy/internal/models"
	"sitzy/internal/repositories/interfaces"
	"sitzy/internal/utils"
)

type DashboardService interface {
	Get(ctx context.Context, user *models.User) (*Dashboard, error)
}

// Dashboard is the caller's overview: the car they own, the cars they ride
// in, and invitations still waiting for their answer.
type Dashboard struct {
	OwnedCar           *models.Car          `json:"owned_car"`
	PassengerCars      []*models.Car        `json:"passenger_cars"`
	PendingInvitations []*models.Invitation `json:"pending_invitations"`
}

type dashboardService struct {
	carRepo        interfaces.CarRepository
	passengerRepo  interfaces.PassengerRepository
	invitationRepo interfaces.InvitationRepository
}

func NewDashboardService(
	carRepo interfaces.CarRepository,
	passengerRepo interfaces.PassengerRepository,
	invitationRepo interfaces.InvitationRepository,
) DashboardService {
	return &dashboardService{
		carRepo:        carRepo,
		passengerRepo:  passengerRepo,
		invitationRepo: invitationRepo,
	}
}

func (s *dashboardService) Get(ctx context.Context, user *models.User) (*Dashboard, error) {
	dashboard := &Dashboard{
		PassengerCars:      []*models.Car{},
		PendingInvitations: []*models.Invitation{},
	}

	ownedCar, err := s.carRepo.GetByOwner(ctx, user.ID)
	switch {
	case err == nil:
		dashboard.OwnedCar = ownedCar
	case !errors.Is(err, utils.ErrNotFound):
		return nil, utils.InternalError(err)
	}

	carIDs, err := s.passengerRepo.ListCarIDsForUser(ctx, user.ID)
	if err != nil {
		return nil, utils.InternalError(err)
	}
	if cars, err := s.carRepo.ListByIDs(ctx, carIDs); err != nil {
		return nil, utils.InternalError(err)
	} else if cars != nil {
		dashboard.PassengerCars = cars
	}

	invitations, err := s.invitationRepo.ListByEmail(ctx, user.Email)
	if err != nil {
		return nil, utils.InternalError(err)
	}
	for _, invitation := range invitations {
		if invitation.Pending() {
			dashboard.PendingInvitations = append(dashboard.PendingInvitations, invitation)
		}
	}

	return dashboard, nil
}
