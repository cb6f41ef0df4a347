package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"sitzy/internal/models"
	"sitzy/internal/repositories/interfaces"
	"sitzy/internal/utils"
	"sitzy/pkg/logger"
)

type CarService interface {
	Create(ctx context.Context, ownerID uuid.UUID, request *CarRequest) (*models.Car, error)
	GetMyCar(ctx context.Context, userID uuid.UUID) (*models.Car, error)
	Update(ctx context.Context, userID, carID uuid.UUID, request *CarRequest) (*models.Car, error)
	Delete(ctx context.Context, userID, carID uuid.UUID) error
}

type carService struct {
	carRepo interfaces.CarRepository
	logger  *logger.Logger
}

func NewCarService(carRepo interfaces.CarRepository, log *logger.Logger) CarService {
	return &carService{carRepo: carRepo, logger: log}
}

type CarRequest struct {
	Name   string           `json:"name" binding:"required"`
	Layout models.CarLayout `json:"layout" binding:"required"`
	Date   time.Time        `json:"date" binding:"required"`
}

func (s *carService) Create(ctx context.Context, ownerID uuid.UUID, request *CarRequest) (*models.Car, error) {
	if !request.Layout.Valid() {
		return nil, utils.InvalidRequestError("car_not_found")
	}

	if _, err := s.carRepo.GetByOwner(ctx, ownerID); err == nil {
		return nil, utils.ConflictError("user_has_car")
	} else if !errors.Is(err, utils.ErrNotFound) {
		return nil, utils.InternalError(err)
	}

	car := &models.Car{
		OwnerID: ownerID,
		Name:    request.Name,
		Layout:  request.Layout,
		Date:    request.Date,
	}
	if err := s.carRepo.Create(ctx, car); err != nil {
		if errors.Is(err, utils.ErrDuplicate) {
			return nil, utils.ConflictError("user_has_car")
		}
		return nil, utils.InternalError(err)
	}

	s.logger.WithUserID(ownerID).WithField("car_id", car.ID).Info("car created")
	return car, nil
}

func (s *carService) GetMyCar(ctx context.Context, userID uuid.UUID) (*models.Car, error) {
	car, err := s.carRepo.GetByOwner(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.NotFoundError("car_not_found")
		}
		return nil, utils.InternalError(err)
	}
	return car, nil
}

func (s *carService) Update(ctx context.Context, userID, carID uuid.UUID, request *CarRequest) (*models.Car, error) {
	car, err := s.ownedCar(ctx, userID, carID)
	if err != nil {
		return nil, err
	}

	if !request.Layout.Valid() {
		return nil, utils.InvalidRequestError("car_not_found")
	}

	car.Name = request.Name
	car.Layout = request.Layout
	car.Date = request.Date
	if err := s.carRepo.Update(ctx, car); err != nil {
		return nil, utils.InternalError(err)
	}
	return car, nil
}

func (s *carService) Delete(ctx context.Context, userID, carID uuid.UUID) error {
	if _, err := s.ownedCar(ctx, userID, carID); err != nil {
		return err
	}
	if err := s.carRepo.Delete(ctx, carID); err != nil {
		return utils.InternalError(err)
	}

	s.logger.WithUserID(userID).WithField("car_id", carID).Info("car deleted")
	return nil
}

// ownedCar loads the car and hides its existence from non-owners with the
// same not-found answer the missing case gives.
func (s *carService) ownedCar(ctx context.Context, userID, carID uuid.UUID) (*models.Car, error) {
	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.NotFoundError("car_not_yours")
		}
		return nil, utils.InternalError(err)
	}
	if car.OwnerID != userID {
		return nil, utils.NotFoundError("car_not_yours")
	}
	return car, nil
}
