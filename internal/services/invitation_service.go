package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"sitzy/internal/models"
	"sitzy/internal/repositories/interfaces"
	"sitzy/internal/utils"
	"sitzy/pkg/logger"
)

// InvitationService mediates the email-based invite-to-join workflow:
// the car owner issues a token-addressed invitation, the invitee resolves
// it publicly by token and accepts or rejects it exactly once.
type InvitationService interface {
	Create(ctx context.Context, ownerID, carID uuid.UUID, invitedEmail string) (*models.Invitation, error)
	GetByToken(ctx context.Context, token string) (*models.Invitation, error)
	Accept(ctx context.Context, token string, user *models.User) (*models.Invitation, error)
	Reject(ctx context.Context, token string, user *models.User) (*models.Invitation, error)
	Cancel(ctx context.Context, token string, userID uuid.UUID) error
	ListSent(ctx context.Context, ownerID, carID uuid.UUID) ([]*models.Invitation, error)
	ListReceived(ctx context.Context, user *models.User) ([]*models.Invitation, error)
}

type invitationService struct {
	invitationRepo interfaces.InvitationRepository
	carRepo        interfaces.CarRepository
	passengerRepo  interfaces.PassengerRepository
	userRepo       interfaces.UserRepository
	logger         *logger.Logger
}

func NewInvitationService(
	invitationRepo interfaces.InvitationRepository,
	carRepo interfaces.CarRepository,
	passengerRepo interfaces.PassengerRepository,
	userRepo interfaces.UserRepository,
	log *logger.Logger,
) InvitationService {
	return &invitationService{
		invitationRepo: invitationRepo,
		carRepo:        carRepo,
		passengerRepo:  passengerRepo,
		userRepo:       userRepo,
		logger:         log,
	}
}

func (s *invitationService) Create(ctx context.Context, ownerID, carID uuid.UUID, invitedEmail string) (*models.Invitation, error) {
	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.ForbiddenError("car_not_yours")
		}
		return nil, utils.InternalError(err)
	}
	if car.OwnerID != ownerID {
		return nil, utils.ForbiddenError("car_not_yours")
	}

	owner, err := s.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, utils.InternalError(err)
	}
	if strings.EqualFold(owner.Email, invitedEmail) {
		return nil, utils.InvalidRequestError("self_invite")
	}

	if _, err := s.invitationRepo.FindPending(ctx, carID, invitedEmail); err == nil {
		return nil, utils.ConflictError("invitation_exists")
	} else if !errors.Is(err, utils.ErrNotFound) {
		return nil, utils.InternalError(err)
	}

	token, err := utils.GenerateInviteToken()
	if err != nil {
		return nil, utils.InternalError(err)
	}

	invitation := &models.Invitation{
		CarID:        carID,
		InvitedEmail: invitedEmail,
		Token:        token,
		Status:       models.InvitationStatusPending,
		ExpiresAt:    time.Now().Add(models.InvitationTTL),
	}
	if err := s.invitationRepo.Create(ctx, invitation); err != nil {
		if errors.Is(err, utils.ErrDuplicate) {
			// Lost the race against a concurrent create for the same
			// (car, email) pair; same outcome as the pre-check.
			return nil, utils.ConflictError("invitation_exists")
		}
		return nil, utils.InternalError(err)
	}

	s.logger.WithFields(map[string]interface{}{
		"car_id":        carID,
		"invitation_id": invitation.ID,
	}).Info("invitation created")
	return invitation, nil
}

// GetByToken is the public (unauthenticated) lookup. Expiry is deliberately
// not checked: the stored timestamp is advisory metadata.
func (s *invitationService) GetByToken(ctx context.Context, token string) (*models.Invitation, error) {
	invitation, err := s.invitationRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.NotFoundError("invitation_not_found")
		}
		return nil, utils.InternalError(err)
	}
	return invitation, nil
}

func (s *invitationService) Accept(ctx context.Context, token string, user *models.User) (*models.Invitation, error) {
	invitation, err := s.respondable(ctx, token, user)
	if err != nil {
		return nil, err
	}

	member, err := s.passengerRepo.Exists(ctx, user.ID, invitation.CarID)
	if err != nil {
		return nil, utils.InternalError(err)
	}
	if member {
		return nil, utils.ConflictError("user_in_car")
	}

	if err := s.invitationRepo.Accept(ctx, invitation, user.ID); err != nil {
		switch {
		case errors.Is(err, utils.ErrDuplicate):
			return nil, utils.ConflictError("user_in_car")
		case errors.Is(err, utils.ErrNotFound):
			// The status guard lost against a concurrent response.
			return nil, utils.InvalidStateError("invitation_already_responded")
		default:
			return nil, utils.InternalError(err)
		}
	}

	s.logger.WithUserID(user.ID).WithField("invitation_id", invitation.ID).Info("invitation accepted")
	return invitation, nil
}

func (s *invitationService) Reject(ctx context.Context, token string, user *models.User) (*models.Invitation, error) {
	invitation, err := s.respondable(ctx, token, user)
	if err != nil {
		return nil, err
	}

	if err := s.invitationRepo.UpdateStatus(ctx, invitation.ID, models.InvitationStatusRejected); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			// The status guard lost against a concurrent response.
			return nil, utils.InvalidStateError("invitation_already_responded")
		}
		return nil, utils.InternalError(err)
	}
	invitation.Status = models.InvitationStatusRejected

	s.logger.WithUserID(user.ID).WithField("invitation_id", invitation.ID).Info("invitation rejected")
	return invitation, nil
}

func (s *invitationService) Cancel(ctx context.Context, token string, userID uuid.UUID) error {
	invitation, err := s.invitationRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.NotFoundError("invitation_not_found")
		}
		return utils.InternalError(err)
	}

	car, err := s.carRepo.GetByID(ctx, invitation.CarID)
	if err != nil {
		return utils.InternalError(err)
	}
	if car.OwnerID != userID {
		return utils.ForbiddenError("not_car_owner")
	}

	if err := s.invitationRepo.Delete(ctx, invitation.ID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.NotFoundError("invitation_not_found")
		}
		return utils.InternalError(err)
	}

	s.logger.WithUserID(userID).WithField("invitation_id", invitation.ID).Info("invitation cancelled")
	return nil
}

func (s *invitationService) ListSent(ctx context.Context, ownerID, carID uuid.UUID) ([]*models.Invitation, error) {
	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.ForbiddenError("car_not_yours")
		}
		return nil, utils.InternalError(err)
	}
	if car.OwnerID != ownerID {
		return nil, utils.ForbiddenError("car_not_yours")
	}

	invitations, err := s.invitationRepo.ListByCar(ctx, carID)
	if err != nil {
		return nil, utils.InternalError(err)
	}
	return invitations, nil
}

func (s *invitationService) ListReceived(ctx context.Context, user *models.User) ([]*models.Invitation, error) {
	invitations, err := s.invitationRepo.ListByEmail(ctx, user.Email)
	if err != nil {
		return nil, utils.InternalError(err)
	}
	return invitations, nil
}

// respondable runs the shared accept/reject preconditions: the token must
// exist, the invitation must still be pending, and the caller's email must
// match the addressee (case-insensitive).
func (s *invitationService) respondable(ctx context.Context, token string, user *models.User) (*models.Invitation, error) {
	invitation, err := s.invitationRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.NotFoundError("invitation_not_found")
		}
		return nil, utils.InternalError(err)
	}

	if !invitation.Pending() {
		return nil, utils.InvalidStateError("invitation_already_responded")
	}
	if !strings.EqualFold(invitation.InvitedEmail, user.Email) {
		return nil, utils.ForbiddenError("invitation_not_yours")
	}
	return invitation, nil
}
