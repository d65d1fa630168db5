// internal/service/test_helpers.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	ent "github.com/omerfdemir/pickuptracker/ent/generated"
	"github.com/omerfdemir/pickuptracker/ent/generated/user"
	"github.com/omerfdemir/pickuptracker/internal/middleware"
	"github.com/omerfdemir/pickuptracker/pkg/auth"
)

// TestHelpers provides common test utilities
type TestHelpers struct {
	t               *testing.T
	client          *ent.Client
	passwordManager *auth.PasswordManager
}

// NewTestHelpers creates a new test helper instance
func NewTestHelpers(t *testing.T, client *ent.Client) *TestHelpers {
	return &TestHelpers{
		t:               t,
		client:          client,
		passwordManager: auth.NewPasswordManager(),
	}
}

// CreateAdminUser creates an admin test user
func (h *TestHelpers) CreateAdminUser(username, password string) *ent.User {
	hashedPassword, err := h.passwordManager.HashPassword(password)
	require.NoError(h.t, err)

	created, err := h.client.User.Create().
		SetUsername(username).
		SetPasswordHash(hashedPassword).
		SetRole(user.RoleAdmin).
		Save(context.Background())
	require.NoError(h.t, err)

	return created
}

// CreateSuperuser creates a superuser test account with the admin role
func (h *TestHelpers) CreateSuperuser(username, password string) *ent.User {
	hashedPassword, err := h.passwordManager.HashPassword(password)
	require.NoError(h.t, err)

	created, err := h.client.User.Create().
		SetUsername(username).
		SetPasswordHash(hashedPassword).
		SetRole(user.RoleAdmin).
		SetIsSuperuser(true).
		Save(context.Background())
	require.NoError(h.t, err)

	return created
}

// CreateDriverUser creates a driver test user
func (h *TestHelpers) CreateDriverUser(username, password string) *ent.User {
	hashedPassword, err := h.passwordManager.HashPassword(password)
	require.NoError(h.t, err)

	created, err := h.client.User.Create().
		SetUsername(username).
		SetPasswordHash(hashedPassword).
		SetRole(user.RoleDriver).
		Save(context.Background())
	require.NoError(h.t, err)

	return created
}

// AuthedContext returns a context carrying the user's identity the way
// the auth interceptor would populate it.
func (h *TestHelpers) AuthedContext(u *ent.User) context.Context {
	ctx := context.Background()
	ctx = context.WithValue(ctx, middleware.ContextKeyUserID, u.ID.String())
	ctx = context.WithValue(ctx, middleware.ContextKeyUsername, u.Username)
	ctx = context.WithValue(ctx, middleware.ContextKeyUserRole, string(u.Role))
	ctx = context.WithValue(ctx, middleware.ContextKeyIsSuperuser, u.IsSuperuser)
	ctx = context.WithValue(ctx, middleware.ContextKeyIPAddress, "127.0.0.1")
	ctx = context.WithValue(ctx, middleware.ContextKeyUserAgent, "test-agent")
	return ctx
}

// AssertUserLocked verifies that a user account is locked
func (h *TestHelpers) AssertUserLocked(userID uuid.UUID) {
	u, err := h.client.User.Get(context.Background(), userID)
	require.NoError(h.t, err)

	require.NotNil(h.t, u.AccountLockedUntil, "Account should be locked")
	require.True(h.t, u.AccountLockedUntil.After(time.Now()), "Lock should be in the future")
}

// AssertUserUnlocked verifies that a user account is not locked
func (h *TestHelpers) AssertUserUnlocked(userID uuid.UUID) {
	u, err := h.client.User.Get(context.Background(), userID)
	require.NoError(h.t, err)

	require.Nil(h.t, u.AccountLockedUntil, "Account should not be locked")
	require.Equal(h.t, 0, u.FailedLoginAttempts, "Failed attempts should be reset")
}
