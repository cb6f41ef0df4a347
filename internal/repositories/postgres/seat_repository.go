package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sitzy/internal/models"
	"sitzy/internal/repositories/interfaces"
)

type seatRepository struct {
	db *gorm.DB
}

func NewSeatRepository(db *gorm.DB) interfaces.SeatRepository {
	return &seatRepository{db: db}
}

func (r *seatRepository) Create(ctx context.Context, seat *models.Seat) error {
	if seat.ID == uuid.Nil {
		seat.ID = uuid.New()
	}
	seat.CreatedAt = time.Now()
	seat.UpdatedAt = time.Now()

	// The uq_seats_car_position and uq_seats_user indexes decide races;
	// a lost insert surfaces as utils.ErrDuplicate.
	return translateErr(r.db.WithContext(ctx).Create(seat).Error, "create seat")
}

func (r *seatRepository) GetByUser(ctx context.Context, userID uuid.UUID) (*models.Seat, error) {
	var seat models.Seat
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&seat).Error; err != nil {
		return nil, translateErr(err, "get seat by user")
	}
	return &seat, nil
}

func (r *seatRepository) GetByCarAndPosition(ctx context.Context, carID uuid.UUID, position int) (*models.Seat, error) {
	var seat models.Seat
	err := r.db.WithContext(ctx).
		Where("car_id = ? AND position = ?", carID, position).
		First(&seat).Error
	if err != nil {
		return nil, translateErr(err, "get seat by position")
	}
	return &seat, nil
}

func (r *seatRepository) ListByCar(ctx context.Context, carID uuid.UUID) ([]*models.Seat, error) {
	var seats []*models.Seat
	err := r.db.WithContext(ctx).
		Where("car_id = ?", carID).
		Order("position asc").
		Find(&seats).Error
	if err != nil {
		return nil, translateErr(err, "list seats")
	}
	return seats, nil
}

func (r *seatRepository) UpdatePosition(ctx context.Context, id uuid.UUID, position int) error {
	res := r.db.WithContext(ctx).
		Model(&models.Seat{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"position":   position,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return translateErr(res.Error, "update seat position")
	}
	if res.RowsAffected == 0 {
		return translateErr(gorm.ErrRecordNotFound, "update seat position")
	}
	return nil
}

func (r *seatRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Seat{})
	if res.Error != nil {
		return translateErr(res.Error, "delete seat")
	}
	if res.RowsAffected == 0 {
		return translateErr(gorm.ErrRecordNotFound, "delete seat")
	}
	return nil
}
