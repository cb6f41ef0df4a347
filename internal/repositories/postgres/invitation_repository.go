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

type invitationRepository struct {
	db    *gorm.DB
	cache Cache
}

func NewInvitationRepository(db *gorm.DB, cache Cache) interfaces.InvitationRepository {
	return &invitationRepository{db: db, cache: cache}
}

func (r *invitationRepository) Create(ctx context.Context, invitation *models.Invitation) error {
	if invitation.ID == uuid.Nil {
		invitation.ID = uuid.New()
	}
	invitation.CreatedAt = time.Now()

	return translateErr(r.db.WithContext(ctx).Create(invitation).Error, "create invitation")
}

func (r *invitationRepository) GetByToken(ctx context.Context, token string) (*models.Invitation, error) {
	if r.cache != nil {
		var invitation models.Invitation
		if err := r.cache.Get(ctx, invitationCacheKey(token), &invitation); err == nil {
			return &invitation, nil
		}
	}

	var invitation models.Invitation
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&invitation).Error; err != nil {
		return nil, translateErr(err, "get invitation by token")
	}

	if r.cache != nil {
		_ = r.cache.Set(ctx, invitationCacheKey(invitation.Token), &invitation, cacheTTL)
	}
	return &invitation, nil
}

func (r *invitationRepository) FindPending(ctx context.Context, carID uuid.UUID, email string) (*models.Invitation, error) {
	var invitation models.Invitation
	err := r.db.WithContext(ctx).
		Where("car_id = ? AND lower(invited_email) = lower(?) AND status = ?",
			carID, email, models.InvitationStatusPending).
		First(&invitation).Error
	if err != nil {
		return nil, translateErr(err, "find pending invitation")
	}
	return &invitation, nil
}

func (r *invitationRepository) ListByCar(ctx context.Context, carID uuid.UUID) ([]*models.Invitation, error) {
	var invitations []*models.Invitation
	err := r.db.WithContext(ctx).
		Where("car_id = ?", carID).
		Order("created_at desc").
		Find(&invitations).Error
	if err != nil {
		return nil, translateErr(err, "list invitations by car")
	}
	return invitations, nil
}

func (r *invitationRepository) ListByEmail(ctx context.Context, email string) ([]*models.Invitation, error) {
	var invitations []*models.Invitation
	err := r.db.WithContext(ctx).
		Where("lower(invited_email) = lower(?)", email).
		Order("created_at desc").
		Find(&invitations).Error
	if err != nil {
		return nil, translateErr(err, "list invitations by email")
	}
	return invitations, nil
}

// Accept transitions the invitation to accepted and creates the passenger
// membership as one unit. The status guard in the UPDATE makes a concurrent
// second accept lose cleanly instead of double-applying.
func (r *invitationRepository) Accept(ctx context.Context, invitation *models.Invitation, userID uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Invitation{}).
			Where("id = ? AND status = ?", invitation.ID, models.InvitationStatusPending).
			Update("status", models.InvitationStatusAccepted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		passenger := &models.Passenger{
			ID:        uuid.New(),
			UserID:    userID,
			CarID:     invitation.CarID,
			CreatedAt: time.Now(),
		}
		return tx.Create(passenger).Error
	})
	if err != nil {
		return translateErr(err, "accept invitation")
	}

	invitation.Status = models.InvitationStatusAccepted
	r.invalidate(ctx, invitation.Token)
	return nil
}

// UpdateStatus transitions a pending invitation. The status guard in the
// UPDATE makes accepted and rejected terminal at the write itself: a
// response racing another one loses with a not-found instead of
// overwriting the winner's state.
func (r *invitationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.InvitationStatus) error {
	var invitation models.Invitation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&invitation).Error; err != nil {
		return translateErr(err, "update invitation status")
	}

	res := r.db.WithContext(ctx).Model(&models.Invitation{}).
		Where("id = ? AND status = ?", id, models.InvitationStatusPending).
		Update("status", status)
	if res.Error != nil {
		return translateErr(res.Error, "update invitation status")
	}
	if res.RowsAffected == 0 {
		return translateErr(gorm.ErrRecordNotFound, "update invitation status")
	}

	r.invalidate(ctx, invitation.Token)
	return nil
}

func (r *invitationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var invitation models.Invitation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&invitation).Error; err != nil {
		return translateErr(err, "delete invitation")
	}
	if err := r.db.WithContext(ctx).Delete(&invitation).Error; err != nil {
		return translateErr(err, "delete invitation")
	}

	r.invalidate(ctx, invitation.Token)
	return nil
}

func (r *invitationRepository) invalidate(ctx context.Context, token string) {
	if r.cache != nil && token != "" {
		_ = r.cache.Delete(ctx, invitationCacheKey(token))
	}
}

func invitationCacheKey(token string) string {
	return fmt.Sprintf("invitation:token:%s", token)
}
