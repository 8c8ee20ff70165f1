package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memberclub/internal/models/request_models"
	"memberclub/pkg/utils"
)

func validUserRequest(email string) request_models.UserRequest {
	return request_models.UserRequest{
		Name:        "Ananya Sharma",
		Email:       email,
		PhoneNumber: "9876543211",
		Address:     "23 Andheri West",
		City:        "Mumbai",
		State:       "Maharashtra",
		Pincode:     "400058",
	}
}

func newTestUserService(store *memStore, clock *testClock) *UserService {
	return &UserService{
		userRepo: store,
		subRepo:  store,
		logger:   testLogger(),
		now:      clock.Now,
	}
}

func TestCreateUser(t *testing.T) {
	store := newMemStore()
	svc := newTestUserService(store, newTestClock())

	resp, err := svc.CreateUser(context.Background(), validUserRequest("ananya@example.com"))
	require.NoError(t, err)

	assert.NotZero(t, resp.ID)
	assert.Equal(t, "ananya@example.com", resp.Email)
	assert.Equal(t, "ACTIVE", resp.Status)
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	store := newMemStore()
	svc := newTestUserService(store, newTestClock())
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, validUserRequest("ananya@example.com"))
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, validUserRequest("ananya@example.com"))
	assert.ErrorIs(t, err, utils.ErrEmailExists)
}

func TestCreateUserValidatesContactFields(t *testing.T) {
	store := newMemStore()
	svc := newTestUserService(store, newTestClock())
	ctx := context.Background()

	req := validUserRequest("a@example.com")
	req.PhoneNumber = "1234567890" // must start with 6-9
	_, err := svc.CreateUser(ctx, req)
	assert.ErrorIs(t, err, utils.ErrInvalidPhone)

	req = validUserRequest("a@example.com")
	req.PhoneNumber = "98765"
	_, err = svc.CreateUser(ctx, req)
	assert.ErrorIs(t, err, utils.ErrInvalidPhone)

	req = validUserRequest("a@example.com")
	req.Pincode = "ABC123"
	_, err = svc.CreateUser(ctx, req)
	assert.ErrorIs(t, err, utils.ErrInvalidPincode)
}

func TestUpdateUser(t *testing.T) {
	store := newMemStore()
	svc := newTestUserService(store, newTestClock())
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, validUserRequest("ananya@example.com"))
	require.NoError(t, err)

	req := validUserRequest("ananya@example.com")
	req.City = "Pune"
	req.Status = "SUSPENDED"

	resp, err := svc.UpdateUser(ctx, created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "Pune", resp.City)
	assert.Equal(t, "SUSPENDED", resp.Status)
}

func TestUpdateUserRejectsUnknownStatus(t *testing.T) {
	store := newMemStore()
	svc := newTestUserService(store, newTestClock())
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, validUserRequest("ananya@example.com"))
	require.NoError(t, err)

	req := validUserRequest("ananya@example.com")
	req.Status = "BANNED"

	_, err = svc.UpdateUser(ctx, created.ID, req)
	assert.ErrorIs(t, err, utils.ErrInvalidUserStatus)

	// The rejected update must not have touched the stored record.
	current, err := svc.GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "ACTIVE", current.Status)
}

func TestUpdateUserRejectsEmailCollision(t *testing.T) {
	store := newMemStore()
	svc := newTestUserService(store, newTestClock())
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, validUserRequest("first@example.com"))
	require.NoError(t, err)
	second, err := svc.CreateUser(ctx, validUserRequest("second@example.com"))
	require.NoError(t, err)

	_, err = svc.UpdateUser(ctx, second.ID, validUserRequest("first@example.com"))
	assert.ErrorIs(t, err, utils.ErrEmailExists)
}

func TestGetUserByEmailNotFound(t *testing.T) {
	store := newMemStore()
	svc := newTestUserService(store, newTestClock())

	_, err := svc.GetUserByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, utils.ErrUserNotFound)
}

func TestDeleteUserBlockedByActiveSubscription(t *testing.T) {
	store := newMemStore()
	clock := newTestClock()
	seedTestCatalog(t, store)
	svc := newTestUserService(store, clock)
	subSvc := newTestSubscriptionService(store, clock)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, validUserRequest("ananya@example.com"))
	require.NoError(t, err)

	sub, err := subSvc.CreateSubscription(ctx, request_models.SubscriptionRequest{
		UserID: created.ID,
		PlanID: planIDByName(t, store, "GOLD Monthly"),
	})
	require.NoError(t, err)

	err = svc.DeleteUser(ctx, created.ID)
	assert.ErrorIs(t, err, utils.ErrUserHasActiveSubscription)

	_, err = subSvc.CancelSubscription(ctx, sub.ID, "leaving")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(ctx, created.ID))

	_, err = svc.GetUserByID(ctx, created.ID)
	assert.ErrorIs(t, err, utils.ErrUserNotFound)
}

func TestSeedDemoUsers(t *testing.T) {
	store := newMemStore()
	svc := newTestUserService(store, newTestClock())
	ctx := context.Background()

	require.NoError(t, svc.SeedDemoUsers(ctx))
	users, err := svc.GetAllUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 3)

	// Seeding again must not duplicate accounts.
	require.NoError(t, svc.SeedDemoUsers(ctx))
	users, err = svc.GetAllUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 3)
}
