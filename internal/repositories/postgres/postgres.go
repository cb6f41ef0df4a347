// Package postgres implements the repository interfaces on gorm. Storage
// outcomes are translated into the two sentinel errors the services branch
// on: utils.ErrNotFound and utils.ErrDuplicate.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"sitzy/internal/utils"
)

// Cache is the optional read cache the repositories use. A nil Cache is
// valid and simply disables caching.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

const cacheTTL = 15 * time.Minute

func translateErr(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", what, utils.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", what, utils.ErrDuplicate)
	default:
		return fmt.Errorf("%s: %w", what, err)
	}
}
