package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sitzy/internal/models"
	"sitzy/internal/repositories/interfaces"
)

type userRepository struct {
	db    *gorm.DB
	cache Cache
}

func NewUserRepository(db *gorm.DB, cache Cache) interfaces.UserRepository {
	return &userRepository{db: db, cache: cache}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return translateErr(err, "create user")
	}

	r.cacheUser(ctx, user)
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if r.cache != nil {
		var user models.User
		if err := r.cache.Get(ctx, userCacheKey(id), &user); err == nil {
			return &user, nil
		}
	}

	var user models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translateErr(err, "get user")
	}

	r.cacheUser(ctx, &user)
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("lower(email) = lower(?)", email).First(&user).Error; err != nil {
		return nil, translateErr(err, "get user by email")
	}
	return &user, nil
}

func (r *userRepository) cacheUser(ctx context.Context, user *models.User) {
	if r.cache != nil {
		_ = r.cache.Set(ctx, userCacheKey(user.ID), user, cacheTTL)
	}
}

func userCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("user:%s", id)
}
