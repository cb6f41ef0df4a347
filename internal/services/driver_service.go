package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"sitzy/internal/models"
	"sitzy/internal/repositories/interfaces"
	"sitzy/internal/utils"
	"sitzy/pkg/logger"
)

// DriverService maintains the at-most-one-active-driver invariant per car
// while keeping the full assignment history. Authorization is owner-only.
type DriverService interface {
	Assign(ctx context.Context, ownerID, carID, driverID uuid.UUID) (*models.CarDriver, error)
	Revoke(ctx context.Context, ownerID, carID uuid.UUID) error
	GetActive(ctx context.Context, ownerID, carID uuid.UUID) (*models.CarDriver, error)
}

type driverService struct {
	carDriverRepo interfaces.CarDriverRepository
	carRepo       interfaces.CarRepository
	userRepo      interfaces.UserRepository
	logger        *logger.Logger
}

func NewDriverService(
	carDriverRepo interfaces.CarDriverRepository,
	carRepo interfaces.CarRepository,
	userRepo interfaces.UserRepository,
	log *logger.Logger,
) DriverService {
	return &driverService{
		carDriverRepo: carDriverRepo,
		carRepo:       carRepo,
		userRepo:      userRepo,
		logger:        log,
	}
}

func (s *driverService) Assign(ctx context.Context, ownerID, carID, driverID uuid.UUID) (*models.CarDriver, error) {
	if err := s.ownerOnly(ctx, ownerID, carID); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByID(ctx, driverID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.NotFoundError("driver_not_found")
		}
		return nil, utils.InternalError(err)
	}

	assigned, err := s.carDriverRepo.Assign(ctx, carID, driverID)
	if err != nil {
		if errors.Is(err, utils.ErrDuplicate) {
			return nil, utils.ConflictError("driver_assignment_conflict")
		}
		return nil, utils.InternalError(err)
	}

	s.logger.WithFields(map[string]interface{}{
		"car_id":    carID,
		"driver_id": driverID,
	}).Info("driver assigned")
	return assigned, nil
}

// Revoke deactivates the current driver. Revoking a car without an active
// driver succeeds idempotently.
func (s *driverService) Revoke(ctx context.Context, ownerID, carID uuid.UUID) error {
	if err := s.ownerOnly(ctx, ownerID, carID); err != nil {
		return err
	}

	if err := s.carDriverRepo.Revoke(ctx, carID); err != nil {
		return utils.InternalError(err)
	}

	s.logger.WithField("car_id", carID).Info("driver revoked")
	return nil
}

func (s *driverService) GetActive(ctx context.Context, ownerID, carID uuid.UUID) (*models.CarDriver, error) {
	if err := s.ownerOnly(ctx, ownerID, carID); err != nil {
		return nil, err
	}

	assigned, err := s.carDriverRepo.GetActive(ctx, carID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.NotFoundError("no_active_driver")
		}
		return nil, utils.InternalError(err)
	}
	return assigned, nil
}

func (s *driverService) ownerOnly(ctx context.Context, ownerID, carID uuid.UUID) error {
	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.ForbiddenError("car_not_yours")
		}
		return utils.InternalError(err)
	}
	if car.OwnerID != ownerID {
		return utils.ForbiddenError("car_not_yours")
	}
	return nil
}
