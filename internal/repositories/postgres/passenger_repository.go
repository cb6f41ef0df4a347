package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sitzy/internal/models"
	"sitzy/internal/repositories/interfaces"
)

type passengerRepository struct {
	db *gorm.DB
}

func NewPassengerRepository(db *gorm.DB) interfaces.PassengerRepository {
	return &passengerRepository{db: db}
}

func (r *passengerRepository) Exists(ctx context.Context, userID, carID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Passenger{}).
		Where("user_id = ? AND car_id = ?", userID, carID).
		Count(&count).Error
	if err != nil {
		return false, translateErr(err, "check passenger")
	}
	return count > 0, nil
}

func (r *passengerRepository) FirstForUser(ctx context.Context, userID uuid.UUID) (*models.Passenger, error) {
	var passenger models.Passenger
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		First(&passenger).Error
	if err != nil {
		return nil, translateErr(err, "get passenger")
	}
	return &passenger, nil
}

func (r *passengerRepository) ListCarIDsForUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var carIDs []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&models.Passenger{}).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Pluck("car_id", &carIDs).Error
	if err != nil {
		return nil, translateErr(err, "list passenger cars")
	}
	return carIDs, nil
}
