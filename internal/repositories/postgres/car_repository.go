package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sitzy/internal/models"
	"sitzy/internal/repositories/interfaces"
)

type carRepository struct {
	db *gorm.DB
}

func NewCarRepository(db *gorm.DB) interfaces.CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) Create(ctx context.Context, car *models.Car) error {
	if car.ID == uuid.Nil {
		car.ID = uuid.New()
	}
	car.CreatedAt = time.Now()
	car.UpdatedAt = time.Now()

	return translateErr(r.db.WithContext(ctx).Create(car).Error, "create car")
}

func (r *carRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Car, error) {
	var car models.Car
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&car).Error; err != nil {
		return nil, translateErr(err, "get car")
	}
	return &car, nil
}

func (r *carRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*models.Car, error) {
	var car models.Car
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&car).Error; err != nil {
		return nil, translateErr(err, "get car by owner")
	}
	return &car, nil
}

func (r *carRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Car, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var cars []*models.Car
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("created_at desc").Find(&cars).Error; err != nil {
		return nil, translateErr(err, "list cars")
	}
	return cars, nil
}

func (r *carRepository) Update(ctx context.Context, car *models.Car) error {
	car.UpdatedAt = time.Now()
	return translateErr(r.db.WithContext(ctx).Save(car).Error, "update car")
}

func (r *carRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rideIDs := tx.Model(&models.Ride{}).Select("id").Where("car_id = ?", id)
		if err := tx.Where("ride_id IN (?)", rideIDs).Delete(&models.RidePassenger{}).Error; err != nil {
			return err
		}
		for _, m := range []interface{}{
			&models.Ride{},
			&models.CarDriver{},
			&models.Seat{},
			&models.Passenger{},
			&models.Invitation{},
		} {
			if err := tx.Where("car_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}
		return tx.Where("id = ?", id).Delete(&models.Car{}).Error
	})
	return translateErr(err, "delete car")
}
