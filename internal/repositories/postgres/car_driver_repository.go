package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sitzy/internal/models"
	"sitzy/internal/repositories/interfaces"
	"sitzy/internal/utils"
)

type carDriverRepository struct {
	db *gorm.DB
}

func NewCarDriverRepository(db *gorm.DB) interfaces.CarDriverRepository {
	return &carDriverRepository{db: db}
}

func (r *carDriverRepository) Assign(ctx context.Context, carID, driverID uuid.UUID) (*models.CarDriver, error) {
	assigned, err := r.assignOnce(ctx, carID, driverID)
	if err == nil {
		return assigned, nil
	}
	if !errors.Is(err, utils.ErrDuplicate) {
		return nil, err
	}

	// A concurrent assignment activated a row between our revoke and our
	// insert. One retry revokes that row too; losing again means the car's
	// driver really is being contended and the caller gets a conflict.
	assigned, err = r.assignOnce(ctx, carID, driverID)
	if err != nil {
		return nil, err
	}
	return assigned, nil
}

func (r *carDriverRepository) assignOnce(ctx context.Context, carID, driverID uuid.UUID) (*models.CarDriver, error) {
	assigned := &models.CarDriver{
		ID:         uuid.New(),
		CarID:      carID,
		DriverID:   driverID,
		IsActive:   true,
		AssignedAt: time.Now(),
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		err := tx.Model(&models.CarDriver{}).
			Where("car_id = ? AND is_active = ?", carID, true).
			Updates(map[string]interface{}{
				"is_active":  false,
				"revoked_at": now,
			}).Error
		if err != nil {
			return err
		}

		// uq_car_drivers_one_active fires here when another transaction
		// won the race after our revoke committed its own active row.
		return tx.Create(assigned).Error
	})
	if err != nil {
		return nil, translateErr(err, "assign driver")
	}
	return assigned, nil
}

func (r *carDriverRepository) Revoke(ctx context.Context, carID uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Model(&models.CarDriver{}).
		Where("car_id = ? AND is_active = ?", carID, true).
		Updates(map[string]interface{}{
			"is_active":  false,
			"revoked_at": time.Now(),
		}).Error
	return translateErr(err, "revoke driver")
}

func (r *carDriverRepository) GetActive(ctx context.Context, carID uuid.UUID) (*models.CarDriver, error) {
	var assigned models.CarDriver
	err := r.db.WithContext(ctx).
		Where("car_id = ? AND is_active = ?", carID, true).
		First(&assigned).Error
	if err != nil {
		return nil, translateErr(err, "get active driver")
	}
	return &assigned, nil
}
