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

// SeatService tracks which seat each passenger occupies inside the car's
// layout capacity. The database unique indexes, not read-then-write checks,
// decide concurrent claims on the same position.
type SeatService interface {
	List(ctx context.Context, user *models.User) (*models.Car, []*SeatView, error)
	Choose(ctx context.Context, user *models.User, position int) (*models.Seat, *models.Car, error)
	Change(ctx context.Context, user *models.User, position int) (*models.Seat, *models.Car, error)
	Release(ctx context.Context, user *models.User) error
}

// SeatView pairs a seat row with its occupant's display name for listing.
type SeatView struct {
	Seat         *models.Seat
	OccupantName string
}

type seatService struct {
	seatRepo      interfaces.SeatRepository
	passengerRepo interfaces.PassengerRepository
	carRepo       interfaces.CarRepository
	userRepo      interfaces.UserRepository
	logger        *logger.Logger
}

func NewSeatService(
	seatRepo interfaces.SeatRepository,
	passengerRepo interfaces.PassengerRepository,
	carRepo interfaces.CarRepository,
	userRepo interfaces.UserRepository,
	log *logger.Logger,
) SeatService {
	return &seatService{
		seatRepo:      seatRepo,
		passengerRepo: passengerRepo,
		carRepo:       carRepo,
		userRepo:      userRepo,
		logger:        log,
	}
}

func (s *seatService) List(ctx context.Context, user *models.User) (*models.Car, []*SeatView, error) {
	car, err := s.memberCar(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	seats, err := s.seatRepo.ListByCar(ctx, car.ID)
	if err != nil {
		return nil, nil, utils.InternalError(err)
	}

	views := make([]*SeatView, 0, len(seats))
	for _, seat := range seats {
		view := &SeatView{Seat: seat}
		if occupant, err := s.userRepo.GetByID(ctx, seat.UserID); err == nil {
			view.OccupantName = occupant.DisplayName()
		}
		views = append(views, view)
	}
	return car, views, nil
}

func (s *seatService) Choose(ctx context.Context, user *models.User, position int) (*models.Seat, *models.Car, error) {
	car, err := s.memberCar(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	if !car.Layout.ValidPosition(position) {
		return nil, nil, utils.InvalidRequestError("invalid_position")
	}

	if _, err := s.seatRepo.GetByUser(ctx, user.ID); err == nil {
		return nil, nil, utils.ConflictError("user_in_seat")
	} else if !errors.Is(err, utils.ErrNotFound) {
		return nil, nil, utils.InternalError(err)
	}

	// Pre-check for a friendlier answer; the unique index still decides
	// a concurrent claim on the same position.
	if _, err := s.seatRepo.GetByCarAndPosition(ctx, car.ID, position); err == nil {
		return nil, nil, utils.ConflictError("seat_already_taken")
	} else if !errors.Is(err, utils.ErrNotFound) {
		return nil, nil, utils.InternalError(err)
	}

	seat := &models.Seat{
		CarID:    car.ID,
		UserID:   user.ID,
		Position: position,
	}
	if err := s.seatRepo.Create(ctx, seat); err != nil {
		if errors.Is(err, utils.ErrDuplicate) {
			return nil, nil, utils.ConflictError("seat_already_taken")
		}
		return nil, nil, utils.InternalError(err)
	}

	s.logger.WithUserID(user.ID).WithFields(map[string]interface{}{
		"car_id":   car.ID,
		"position": position,
	}).Info("seat chosen")
	return seat, car, nil
}

func (s *seatService) Change(ctx context.Context, user *models.User, position int) (*models.Seat, *models.Car, error) {
	seat, err := s.seatRepo.GetByUser(ctx, user.ID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, nil, utils.InvalidStateError("user_not_in_seat")
		}
		return nil, nil, utils.InternalError(err)
	}

	car, err := s.carRepo.GetByID(ctx, seat.CarID)
	if err != nil {
		return nil, nil, utils.InternalError(err)
	}

	if seat.Position == position {
		return nil, nil, utils.InvalidRequestError("same_seat")
	}
	if !car.Layout.ValidPosition(position) {
		return nil, nil, utils.InvalidRequestError("invalid_position")
	}

	if _, err := s.seatRepo.GetByCarAndPosition(ctx, car.ID, position); err == nil {
		return nil, nil, utils.ConflictError("seat_already_taken")
	} else if !errors.Is(err, utils.ErrNotFound) {
		return nil, nil, utils.InternalError(err)
	}

	if err := s.seatRepo.UpdatePosition(ctx, seat.ID, position); err != nil {
		if errors.Is(err, utils.ErrDuplicate) {
			return nil, nil, utils.ConflictError("seat_already_taken")
		}
		return nil, nil, utils.InternalError(err)
	}
	seat.Position = position

	s.logger.WithUserID(user.ID).WithFields(map[string]interface{}{
		"car_id":   car.ID,
		"position": position,
	}).Info("seat changed")
	return seat, car, nil
}

func (s *seatService) Release(ctx context.Context, user *models.User) error {
	seat, err := s.seatRepo.GetByUser(ctx, user.ID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.NotFoundError("user_not_in_seat")
		}
		return utils.InternalError(err)
	}

	if err := s.seatRepo.Delete(ctx, seat.ID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.NotFoundError("user_not_in_seat")
		}
		return utils.InternalError(err)
	}

	s.logger.WithUserID(user.ID).WithField("car_id", seat.CarID).Info("seat released")
	return nil
}

// memberCar resolves the car the user belongs to as a passenger.
func (s *seatService) memberCar(ctx context.Context, userID uuid.UUID) (*models.Car, error) {
	passenger, err := s.passengerRepo.FirstForUser(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.InvalidRequestError("not_passenger")
		}
		return nil, utils.InternalError(err)
	}

	car, err := s.carRepo.GetByID(ctx, passenger.CarID)
	if err != nil {
		return nil, utils.InternalError(err)
	}
	return car, nil
}
