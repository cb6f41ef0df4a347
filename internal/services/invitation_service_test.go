package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitzy/internal/models"
	"sitzy/internal/utils"
)

func newInvitationService(env *testEnv) InvitationService {
	return NewInvitationService(env.invitations, env.cars, env.passengers, env.users, env.logger)
}

func TestCreateInvitation(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser(t, "owner@example.com")
	car := env.addCar(t, owner, models.LayoutSedaq)
	svc := newInvitationService(env)

	invitation, err := svc.Create(context.Background(), owner.ID, car.ID, "petra@example.com")
	require.NoError(t, err)

	assert.Equal(t, models.InvitationStatusPending, invitation.Status)
	assert.Equal(t, car.ID, invitation.CarID)
	assert.Equal(t, "petra@example.com", invitation.InvitedEmail)
	assert.NotEmpty(t, invitation.Token)
	assert.False(t, invitation.ExpiresAt.IsZero())
}

func TestCreateInvitationNotOwner(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser(t, "owner@example.com")
	stranger := env.addUser(t, "stranger@example.com")
	car := env.addCar(t, owner, models.LayoutSedaq)
	svc := newInvitationService(env)

	_, err := svc.Create(context.Background(), stranger.ID, car.ID, "petra@example.com")
	requireAppError(t, err, utils.KindForbidden, "car_not_yours")
}

func TestCreateInvitationSelfInvite(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser(t, "owner@example.com")
	car := env.addCar(t, owner, models.LayoutSedaq)
	svc := newInvitationService(env)

	// Case must not matter when matching the owner's own address.
	_, err := svc.Create(context.Background(), owner.ID, car.ID, "Owner@Example.COM")
	requireAppError(t, err, utils.KindInvalidRequest, "self_invite")
}

func TestCreateInvitationDuplicatePending(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser(t, "owner@example.com")
	car := env.addCar(t, owner, models.LayoutSedaq)
	svc := newInvitationService(env)

	_, err := svc.Create(context.Background(), owner.ID, car.ID, "petra@example.com")
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), owner.ID, car.ID, "PETRA@example.com")
	requireAppError(t, err, utils.KindConflict, "invitation_exists")
}

func TestCreateInvitationAfterRejection(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser(t, "owner@example.com")
	invitee := env.addUser(t, "petra@example.com")
	car := env.addCar(t, owner, models.LayoutSedaq)
	svc := newInvitationService(env)

	first, err := svc.Create(context.Background(), owner.ID, car.ID, invitee.Email)
	require.NoError(t, err)
	_, err = svc.Reject(context.Background(), first.Token, invitee)
	require.NoError(t, err)

	// A responded invitation no longer blocks a fresh one.
	_, err = svc.Create(context.Background(), owner.ID, car.ID, invitee.Email)
	require.NoError(t, err)
}

func TestGetInvitationByToken(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser(t, "owner@example.com")
	car := env.addCar(t, owner, models.LayoutSedaq)
	svc := newInvitationService(env)

	created, err := svc.Create(context.Background(), owner.ID, car.ID, "petra@example.com")
	require.NoError(t, err)

	found, err := svc.GetByToken(context.Background(), created.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.GetByToken(context.Background(), "no-such-token")
	requireAppError(t, err, utils.KindNotFound, "invitation_not_found")
}

func TestAcceptInvitation(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser(t, "owner@example.com")
	invitee := env.addUser(t, "petra@example.com")
	car := env.addCar(t, owner, models.LayoutSedaq)
	svc := newInvitationService(env)

	created, err := svc.Create(context.Background(), owner.ID, car.ID, invitee.Email)
	require.NoError(t, err)

	accepted, err := svc.Accept(context.Background(), created.Token, invitee)
	require.NoError(t, err)
	assert.Equal(t, models.InvitationStatusAccepted, accepted.Status)

	member, err := env.passengers.Exists(context.Background(), invitee.ID, car.ID)
	require.NoError(t, err)
	assert.True(t, member, "accepting must create the passenger membership")
}

func TestAcceptInvitationExactlyOnce(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser(t, "owner@example.com")
	invitee := env.addUser(t, "petra@example.com")
	car := env.addCar(t, owner, models.LayoutSedaq)
	svc := newInvitationService(env)

	created, err := svc.Create(context.Background(), owner.ID, car.ID, invitee.Email)
	require.NoError(t, err)

	_, err = svc.Accept(context.Background(), created.Token, invitee)
	require.NoError(t, err)

	_, err = svc.Accept(context.Background(), created.Token, invitee)
	requireAppError(t, err, utils.KindInvalidState, "invitation_already_responded")
}

func TestAcceptInvitationWrongAddressee(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser(t, "owner@example.com")
	other := env.addUser(t, "other@example.com")
	car := env.addCar(t, owner, models.LayoutSedaq)
	svc := newInvitationService(env)

	created, err := svc.Create(context.Background(), owner.ID, car.ID, "petra@example.com")
	require.NoError(t, err)

	_, err = svc.Accept(context.Background(), created.Token, other)
	requireAppError(t, err, utils.KindForbidden, "invitation_not_yours")
}

func TestAcceptInvitationAddresseeCaseInsensitive(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser(t, "owner@example.com")
	invitee := env.addUser(t, "Petra@Example.com")
	car := env.addCar(t, owner, models.LayoutSedaq)
	svc := newInvitationService(env)

	created, err := svc.Create(context.Background(), owner.ID, car.ID, "petra@example.com")
	require.NoError(t, err)

	_, err = svc.Accept(context.Background(), created.Token, invitee)
	require.NoError(t, err)
}

func TestAcceptInvitationAlreadyMember(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser(t, "owner@example.com")
	invitee := env.addUser(t, "petra@example.com")
	car := env.addCar(t, owner, models.LayoutSedaq)
	env.addPassenger(invitee, car)
	svc := newInvitationService(env)

	created, err := svc.Create(context.Background(), owner.ID, car.ID, invitee.Email)
	require.NoError(t, err)

	_, err = svc.Accept(context.Background(), created.Token, invitee)
	requireAppError(t, err, utils.KindConflict, "user_in_car")
}

func TestRejectInvitation(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser(t, "owner@example.com")
	invitee := env.addUser(t, "petra@example.com")
	car := env.addCar(t, owner, models.LayoutSedaq)
	svc := newInvitationService(env)

	created, err := svc.Create(context.Background(), owner.ID, car.ID, invitee.Email)
	require.NoError(t, err)

	rejected, err := svc.Reject(context.Background(), created.Token, invitee)
	require.NoError(t, err)
	assert.Equal(t, models.InvitationStatusRejected, rejected.Status)

	member, err := env.passengers.Exists(context.Background(), invitee.ID, car.ID)
	require.NoError(t, err)
	assert.False(t, member, "rejecting must not create a membership")

	_, err = svc.Accept(context.Background(), created.Token, invitee)
	requireAppError(t, err, utils.KindInvalidState, "invitation_already_responded")
}

// staleTokenRepo serves one token lookup from a snapshot, the way a cached
// read can lag behind a concurrent writer, while every write hits live state.
type staleTokenRepo struct {
	*fakeInvitationRepo
	stale *models.Invitation
}

func (r *staleTokenRepo) GetByToken(ctx context.Context, token string) (*models.Invitation, error) {
	if r.stale != nil && r.stale.Token == token {
		snapshot := *r.stale
		return &snapshot, nil
	}
	return r.fakeInvitationRepo.GetByToken(ctx, token)
}

func TestRejectCannotOverwriteAccepted(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser(t, "owner@example.com")
	invitee := env.addUser(t, "petra@example.com")
	car := env.addCar(t, owner, models.LayoutSedaq)
	svc := newInvitationService(env)

	created, err := svc.Create(context.Background(), owner.ID, car.ID, invitee.Email)
	require.NoError(t, err)

	// The rejecting caller read the invitation while it was still pending.
	pendingSnapshot := *created
	pendingSnapshot.Status = models.InvitationStatusPending

	_, err = svc.Accept(context.Background(), created.Token, invitee)
	require.NoError(t, err)

	racingSvc := NewInvitationService(
		&staleTokenRepo{fakeInvitationRepo: env.invitations, stale: &pendingSnapshot},
		env.cars, env.passengers, env.users, env.logger,
	)
	_, err = racingSvc.Reject(context.Background(), created.Token, invitee)
	requireAppError(t, err, utils.KindInvalidState, "invitation_already_responded")

	// Accepted stays terminal and the membership it created stays intact.
	stored, err := env.invitations.GetByToken(context.Background(), created.Token)
	require.NoError(t, err)
	assert.Equal(t, models.InvitationStatusAccepted, stored.Status)

	member, err := env.passengers.Exists(context.Background(), invitee.ID, car.ID)
	require.NoError(t, err)
	assert.True(t, member)
}

func TestCancelInvitation(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser(t, "owner@example.com")
	car := env.addCar(t, owner, models.LayoutSedaq)
	svc := newInvitationService(env)

	created, err := svc.Create(context.Background(), owner.ID, car.ID, "petra@example.com")
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(context.Background(), created.Token, owner.ID))

	_, err = svc.GetByToken(context.Background(), created.Token)
	requireAppError(t, err, utils.KindNotFound, "invitation_not_found")
}

func TestCancelInvitationNotOwner(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser(t, "owner@example.com")
	stranger := env.addUser(t, "stranger@example.com")
	car := env.addCar(t, owner, models.LayoutSedaq)
	svc := newInvitationService(env)

	created, err := svc.Create(context.Background(), owner.ID, car.ID, "petra@example.com")
	require.NoError(t, err)

	err = svc.Cancel(context.Background(), created.Token, stranger.ID)
	requireAppError(t, err, utils.KindForbidden, "not_car_owner")
}

func TestListSentAndReceived(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser(t, "owner@example.com")
	invitee := env.addUser(t, "petra@example.com")
	car := env.addCar(t, owner, models.LayoutSedaq)
	svc := newInvitationService(env)

	_, err := svc.Create(context.Background(), owner.ID, car.ID, invitee.Email)
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), owner.ID, car.ID, "karel@example.com")
	require.NoError(t, err)

	sent, err := svc.ListSent(context.Background(), owner.ID, car.ID)
	require.NoError(t, err)
	assert.Len(t, sent, 2)

	received, err := svc.ListReceived(context.Background(), invitee)
	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.Equal(t, invitee.Email, received[0].InvitedEmail)
}

func TestListSentNotOwner(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser(t, "owner@example.com")
	stranger := env.addUser(t, "stranger@example.com")
	car := env.addCar(t, owner, models.LayoutSedaq)
	svc := newInvitationService(env)

	_, err := svc.ListSent(context.Background(), stranger.ID, car.ID)
	requireAppError(t, err, utils.KindForbidden, "car_not_yours")
}
