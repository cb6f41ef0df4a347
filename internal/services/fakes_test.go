package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"sitzy/internal/models"
	"sitzy/internal/utils"
	"sitzy/pkg/logger"
)

// In-memory repository fakes. They enforce the same uniqueness rules the
// database indexes do, reporting losses as utils.ErrDuplicate, so the
// services' conflict handling is exercised for real.

func newTestLogger() *logger.Logger {
	log, err := logger.NewLogger(&logger.Config{Level: "error", Output: "stderr"})
	if err != nil {
		panic(err)
	}
	return log
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*models.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return utils.ErrDuplicate
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, utils.ErrNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}
	return nil, utils.ErrNotFound
}

type fakeCarRepo struct {
	mu   sync.Mutex
	cars map[uuid.UUID]*models.Car
}

func newFakeCarRepo() *fakeCarRepo {
	return &fakeCarRepo{cars: make(map[uuid.UUID]*models.Car)}
}

func (r *fakeCarRepo) Create(_ context.Context, car *models.Car) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.cars {
		if existing.OwnerID == car.OwnerID {
			return utils.ErrDuplicate
		}
	}
	if car.ID == uuid.Nil {
		car.ID = uuid.New()
	}
	car.CreatedAt = time.Now()
	r.cars[car.ID] = car
	return nil
}

func (r *fakeCarRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Car, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if car, ok := r.cars[id]; ok {
		return car, nil
	}
	return nil, utils.ErrNotFound
}

func (r *fakeCarRepo) GetByOwner(_ context.Context, ownerID uuid.UUID) (*models.Car, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, car := range r.cars {
		if car.OwnerID == ownerID {
			return car, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (r *fakeCarRepo) ListByIDs(_ context.Context, ids []uuid.UUID) ([]*models.Car, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var cars []*models.Car
	for _, id := range ids {
		if car, ok := r.cars[id]; ok {
			cars = append(cars, car)
		}
	}
	return cars, nil
}

func (r *fakeCarRepo) Update(_ context.Context, car *models.Car) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.cars[car.ID]; !ok {
		return utils.ErrNotFound
	}
	r.cars[car.ID] = car
	return nil
}

func (r *fakeCarRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.cars[id]; !ok {
		return utils.ErrNotFound
	}
	delete(r.cars, id)
	return nil
}

type fakePassengerRepo struct {
	mu   sync.Mutex
	rows []*models.Passenger
}

func newFakePassengerRepo() *fakePassengerRepo {
	return &fakePassengerRepo{}
}

func (r *fakePassengerRepo) add(userID, carID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, &models.Passenger{
		ID:        uuid.New(),
		UserID:    userID,
		CarID:     carID,
		CreatedAt: time.Now(),
	})
}

func (r *fakePassengerRepo) Exists(_ context.Context, userID, carID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.UserID == userID && row.CarID == carID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakePassengerRepo) FirstForUser(_ context.Context, userID uuid.UUID) (*models.Passenger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.UserID == userID {
			return row, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (r *fakePassengerRepo) ListCarIDsForUser(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var carIDs []uuid.UUID
	for _, row := range r.rows {
		if row.UserID == userID {
			carIDs = append(carIDs, row.CarID)
		}
	}
	return carIDs, nil
}

type fakeInvitationRepo struct {
	mu          sync.Mutex
	invitations map[uuid.UUID]*models.Invitation
	passengers  *fakePassengerRepo
}

func newFakeInvitationRepo(passengers *fakePassengerRepo) *fakeInvitationRepo {
	return &fakeInvitationRepo{
		invitations: make(map[uuid.UUID]*models.Invitation),
		passengers:  passengers,
	}
}

func (r *fakeInvitationRepo) Create(_ context.Context, invitation *models.Invitation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.invitations {
		if existing.CarID == invitation.CarID &&
			strings.EqualFold(existing.InvitedEmail, invitation.InvitedEmail) &&
			existing.Pending() {
			return utils.ErrDuplicate
		}
	}
	if invitation.ID == uuid.Nil {
		invitation.ID = uuid.New()
	}
	invitation.CreatedAt = time.Now()
	r.invitations[invitation.ID] = invitation
	return nil
}

func (r *fakeInvitationRepo) GetByToken(_ context.Context, token string) (*models.Invitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, invitation := range r.invitations {
		if invitation.Token == token {
			return invitation, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (r *fakeInvitationRepo) FindPending(_ context.Context, carID uuid.UUID, email string) (*models.Invitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, invitation := range r.invitations {
		if invitation.CarID == carID && strings.EqualFold(invitation.InvitedEmail, email) && invitation.Pending() {
			return invitation, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (r *fakeInvitationRepo) ListByCar(_ context.Context, carID uuid.UUID) ([]*models.Invitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var invitations []*models.Invitation
	for _, invitation := range r.invitations {
		if invitation.CarID == carID {
			invitations = append(invitations, invitation)
		}
	}
	return invitations, nil
}

func (r *fakeInvitationRepo) ListByEmail(_ context.Context, email string) ([]*models.Invitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var invitations []*models.Invitation
	for _, invitation := range r.invitations {
		if strings.EqualFold(invitation.InvitedEmail, email) {
			invitations = append(invitations, invitation)
		}
	}
	return invitations, nil
}

func (r *fakeInvitationRepo) Accept(ctx context.Context, invitation *models.Invitation, userID uuid.UUID) error {
	r.mu.Lock()
	stored, ok := r.invitations[invitation.ID]
	if !ok || !stored.Pending() {
		r.mu.Unlock()
		return utils.ErrNotFound
	}
	r.mu.Unlock()

	if member, _ := r.passengers.Exists(ctx, userID, stored.CarID); member {
		return utils.ErrDuplicate
	}

	r.mu.Lock()
	stored.Status = models.InvitationStatusAccepted
	invitation.Status = models.InvitationStatusAccepted
	r.mu.Unlock()
	r.passengers.add(userID, stored.CarID)
	return nil
}

func (r *fakeInvitationRepo) UpdateStatus(_ context.Context, id uuid.UUID, status models.InvitationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	invitation, ok := r.invitations[id]
	if !ok || !invitation.Pending() {
		return utils.ErrNotFound
	}
	invitation.Status = status
	return nil
}

func (r *fakeInvitationRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.invitations[id]; !ok {
		return utils.ErrNotFound
	}
	delete(r.invitations, id)
	return nil
}

type fakeSeatRepo struct {
	mu    sync.Mutex
	seats map[uuid.UUID]*models.Seat
}

func newFakeSeatRepo() *fakeSeatRepo {
	return &fakeSeatRepo{seats: make(map[uuid.UUID]*models.Seat)}
}

func (r *fakeSeatRepo) Create(_ context.Context, seat *models.Seat) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.seats {
		if existing.UserID == seat.UserID {
			return utils.ErrDuplicate
		}
		if existing.CarID == seat.CarID && existing.Position == seat.Position {
			return utils.ErrDuplicate
		}
	}
	if seat.ID == uuid.Nil {
		seat.ID = uuid.New()
	}
	seat.CreatedAt = time.Now()
	r.seats[seat.ID] = seat
	return nil
}

func (r *fakeSeatRepo) GetByUser(_ context.Context, userID uuid.UUID) (*models.Seat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, seat := range r.seats {
		if seat.UserID == userID {
			return seat, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (r *fakeSeatRepo) GetByCarAndPosition(_ context.Context, carID uuid.UUID, position int) (*models.Seat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, seat := range r.seats {
		if seat.CarID == carID && seat.Position == position {
			return seat, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (r *fakeSeatRepo) ListByCar(_ context.Context, carID uuid.UUID) ([]*models.Seat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var seats []*models.Seat
	for _, seat := range r.seats {
		if seat.CarID == carID {
			seats = append(seats, seat)
		}
	}
	return seats, nil
}

func (r *fakeSeatRepo) UpdatePosition(_ context.Context, id uuid.UUID, position int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	seat, ok := r.seats[id]
	if !ok {
		return utils.ErrNotFound
	}
	for _, existing := range r.seats {
		if existing.ID != id && existing.CarID == seat.CarID && existing.Position == position {
			return utils.ErrDuplicate
		}
	}
	seat.Position = position
	return nil
}

func (r *fakeSeatRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.seats[id]; !ok {
		return utils.ErrNotFound
	}
	delete(r.seats, id)
	return nil
}

type fakeCarDriverRepo struct {
	mu   sync.Mutex
	rows []*models.CarDriver
}

func newFakeCarDriverRepo() *fakeCarDriverRepo {
	return &fakeCarDriverRepo{}
}

func (r *fakeCarDriverRepo) Assign(_ context.Context, carID, driverID uuid.UUID) (*models.CarDriver, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	for _, row := range r.rows {
		if row.CarID == carID && row.IsActive {
			revoked := now
			row.IsActive = false
			row.RevokedAt = &revoked
		}
	}
	assigned := &models.CarDriver{
		ID:         uuid.New(),
		CarID:      carID,
		DriverID:   driverID,
		IsActive:   true,
		AssignedAt: now,
	}
	r.rows = append(r.rows, assigned)
	return assigned, nil
}

func (r *fakeCarDriverRepo) Revoke(_ context.Context, carID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	for _, row := range r.rows {
		if row.CarID == carID && row.IsActive {
			revoked := now
			row.IsActive = false
			row.RevokedAt = &revoked
		}
	}
	return nil
}

func (r *fakeCarDriverRepo) GetActive(_ context.Context, carID uuid.UUID) (*models.CarDriver, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.CarID == carID && row.IsActive {
			return row, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (r *fakeCarDriverRepo) historyFor(carID uuid.UUID) []*models.CarDriver {
	r.mu.Lock()
	defer r.mu.Unlock()
	var rows []*models.CarDriver
	for _, row := range r.rows {
		if row.CarID == carID {
			rows = append(rows, row)
		}
	}
	return rows
}

// testEnv bundles one fake of each repository so tests can wire any service
// against shared state.
type testEnv struct {
	users       *fakeUserRepo
	cars        *fakeCarRepo
	passengers  *fakePassengerRepo
	invitations *fakeInvitationRepo
	seats       *fakeSeatRepo
	drivers     *fakeCarDriverRepo
	logger      *logger.Logger
}

func newTestEnv() *testEnv {
	passengers := newFakePassengerRepo()
	return &testEnv{
		users:       newFakeUserRepo(),
		cars:        newFakeCarRepo(),
		passengers:  passengers,
		invitations: newFakeInvitationRepo(passengers),
		seats:       newFakeSeatRepo(),
		drivers:     newFakeCarDriverRepo(),
		logger:      newTestLogger(),
	}
}

func (e *testEnv) addUser(t *testing.T, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, HashedPassword: "x"}
	if err := e.users.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return user
}

func (e *testEnv) addCar(t *testing.T, owner *models.User, layout models.CarLayout) *models.Car {
	t.Helper()
	car := &models.Car{
		OwnerID: owner.ID,
		Name:    "Modrá Octavia",
		Layout:  layout,
		Date:    time.Date(2026, 9, 14, 8, 0, 0, 0, time.UTC),
	}
	if err := e.cars.Create(context.Background(), car); err != nil {
		t.Fatalf("seed car: %v", err)
	}
	return car
}

func (e *testEnv) addPassenger(user *models.User, car *models.Car) {
	e.passengers.add(user.ID, car.ID)
}

// requireAppError asserts err carries the given classification and message key.
func requireAppError(t *testing.T, err error, kind utils.ErrorKind, messageKey string) *utils.AppError {
	t.Helper()
	var appErr *utils.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("error = %v, want *utils.AppError", err)
	}
	if appErr.Kind != kind {
		t.Fatalf("error kind = %s, want %s (err: %v)", appErr.Kind, kind, err)
	}
	if appErr.MessageKey != messageKey {
		t.Fatalf("error message key = %s, want %s", appErr.MessageKey, messageKey)
	}
	return appErr
}
