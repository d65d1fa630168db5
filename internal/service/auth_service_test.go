// internal/service/auth_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/google/uuid"

	authv1 "github.com/omerfdemir/pickuptracker/api/proto/auth/v1/generated"
	ent "github.com/omerfdemir/pickuptracker/ent/generated"
	"github.com/omerfdemir/pickuptracker/ent/generated/enttest"
	"github.com/omerfdemir/pickuptracker/ent/generated/securityevent"
	"github.com/omerfdemir/pickuptracker/internal/config"
	"github.com/omerfdemir/pickuptracker/pkg/auth"
	"github.com/omerfdemir/pickuptracker/pkg/security"

	_ "github.com/mattn/go-sqlite3"
)

// Test helpers
func setupTestDB(t *testing.T) *ent.Client {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	return client
}

func newTestTokenManager() *auth.TokenManager {
	return auth.NewTokenManager("test-access-secret", "test-refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func newTestAuthService(client *ent.Client) *AuthService {
	securityLogger := NewSecurityLogger(NewSecurityService(client))
	return NewAuthService(
		client,
		newTestTokenManager(),
		securityLogger,
		config.SecurityConfig{
			MaxLoginAttempts:       3,
			AccountLockoutDuration: 15 * time.Minute,
		},
		config.JWTConfig{
			AccessTokenDuration:  15 * time.Minute,
			RefreshTokenDuration: 7 * 24 * time.Hour,
		},
	)
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name         string
		username     string
		password     string
		wantErr      bool
		expectedCode codes.Code
	}{
		{
			name:     "successful login",
			username: "driver1",
			password: "TestPass123!",
		},
		{
			name:         "wrong password",
			username:     "driver1",
			password:     "WrongPass123!",
			wantErr:      true,
			expectedCode: codes.Unauthenticated,
		},
		{
			name:         "unknown user",
			username:     "nobody",
			password:     "TestPass123!",
			wantErr:      true,
			expectedCode: codes.Unauthenticated,
		},
		{
			name:         "missing password",
			username:     "driver1",
			password:     "",
			wantErr:      true,
			expectedCode: codes.InvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := setupTestDB(t)
			defer client.Close()

			helpers := NewTestHelpers(t, client)
			helpers.CreateDriverUser("driver1", "TestPass123!")

			svc := newTestAuthService(client)

			resp, err := svc.Login(context.Background(), &authv1.LoginRequest{
				Username: tt.username,
				Password: tt.password,
			})

			if tt.wantErr {
				require.Error(t, err)
				st, ok := status.FromError(err)
				require.True(t, ok)
				assert.Equal(t, tt.expectedCode, st.Code())
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, resp.AccessToken)
			assert.NotEmpty(t, resp.RefreshToken)
			assert.Equal(t, "driver1", resp.User.Username)
			assert.Equal(t, "driver", resp.User.Role)
		})
	}
}

func TestAuthService_Login_UsernameIsCaseInsensitive(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	helpers.CreateDriverUser("driver1", "TestPass123!")

	svc := newTestAuthService(client)

	resp, err := svc.Login(context.Background(), &authv1.LoginRequest{
		Username: "DRIVER1",
		Password: "TestPass123!",
	})
	require.NoError(t, err)
	assert.Equal(t, "driver1", resp.User.Username)
}

func TestAuthService_Login_LockoutAfterMaxAttempts(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	created := helpers.CreateDriverUser("driver1", "TestPass123!")

	svc := newTestAuthService(client)
	ctx := context.Background()

	// Two failed attempts leave the account open
	for i := 0; i < 2; i++ {
		_, err := svc.Login(ctx, &authv1.LoginRequest{Username: "driver1", Password: "WrongPass123!"})
		require.Error(t, err)
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	}
	helpers.AssertUserUnlocked(created.ID)

	// Third failed attempt locks it
	_, err := svc.Login(ctx, &authv1.LoginRequest{Username: "driver1", Password: "WrongPass123!"})
	require.Error(t, err)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
	helpers.AssertUserLocked(created.ID)

	// Even the correct password is rejected while locked
	_, err = svc.Login(ctx, &authv1.LoginRequest{Username: "driver1", Password: "TestPass123!"})
	require.Error(t, err)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
}

func TestAuthService_Login_ResetsFailedAttempts(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	created := helpers.CreateDriverUser("driver1", "TestPass123!")

	svc := newTestAuthService(client)
	ctx := context.Background()

	_, err := svc.Login(ctx, &authv1.LoginRequest{Username: "driver1", Password: "WrongPass123!"})
	require.Error(t, err)

	_, err = svc.Login(ctx, &authv1.LoginRequest{Username: "driver1", Password: "TestPass123!"})
	require.NoError(t, err)

	helpers.AssertUserUnlocked(created.ID)
}

func TestAuthService_RefreshToken(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	helpers.CreateDriverUser("driver1", "TestPass123!")

	svc := newTestAuthService(client)
	ctx := context.Background()

	login, err := svc.Login(ctx, &authv1.LoginRequest{Username: "driver1", Password: "TestPass123!"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(ctx, &authv1.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Greater(t, refreshed.ExpiresIn, int64(0))

	// Garbage token is rejected
	_, err = svc.RefreshToken(ctx, &authv1.RefreshTokenRequest{RefreshToken: "not-a-token"})
	require.Error(t, err)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestAuthService_Logout_InvalidatesRefreshToken(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	created := helpers.CreateDriverUser("driver1", "TestPass123!")

	svc := newTestAuthService(client)
	ctx := context.Background()

	login, err := svc.Login(ctx, &authv1.LoginRequest{Username: "driver1", Password: "TestPass123!"})
	require.NoError(t, err)

	_, err = svc.Logout(helpers.AuthedContext(created), &authv1.LogoutRequest{})
	require.NoError(t, err)

	// The old refresh token no longer matches the record
	_, err = svc.RefreshToken(ctx, &authv1.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	require.Error(t, err)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestAuthService_GetMe(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	created := helpers.CreateAdminUser("admin1", "TestPass123!")

	svc := newTestAuthService(client)

	resp, err := svc.GetMe(helpers.AuthedContext(created), &authv1.GetMeRequest{})
	require.NoError(t, err)
	assert.Equal(t, created.ID.String(), resp.User.Id)
	assert.Equal(t, "admin1", resp.User.Username)
	assert.Equal(t, "admin", resp.User.Role)

	// Unauthenticated context is rejected
	_, err = svc.GetMe(context.Background(), &authv1.GetMeRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestAuthService_GetSecurityEvents(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	admin := helpers.CreateAdminUser("admin1", "TestPass123!")
	driver := helpers.CreateDriverUser("driver1", "TestPass123!")

	svc := newTestAuthService(client)
	ctx := context.Background()

	// A failed and a successful login leave two audit events
	_, err := svc.Login(ctx, &authv1.LoginRequest{Username: "driver1", Password: "WrongPass123!"})
	require.Error(t, err)
	_, err = svc.Login(ctx, &authv1.LoginRequest{Username: "driver1", Password: "TestPass123!"})
	require.NoError(t, err)

	adminCtx := helpers.AuthedContext(admin)

	resp, err := svc.GetSecurityEvents(adminCtx, &authv1.GetSecurityEventsRequest{})
	require.NoError(t, err)
	assert.Equal(t, int32(2), resp.TotalCount)
	require.Len(t, resp.Events, 2)
	// Newest first
	assert.Equal(t, security.EventTypeLoginSuccess, resp.Events[0].EventType)
	assert.Equal(t, security.EventTypeLoginFailed, resp.Events[1].EventType)
	assert.Equal(t, driver.ID.String(), resp.Events[0].UserId)
	assert.False(t, resp.Events[0].Resolved)

	t.Run("event type filter", func(t *testing.T) {
		resp, err := svc.GetSecurityEvents(adminCtx, &authv1.GetSecurityEventsRequest{
			EventType: security.EventTypeLoginFailed,
		})
		require.NoError(t, err)
		assert.Equal(t, int32(1), resp.TotalCount)
	})

	t.Run("unknown event type filter is rejected", func(t *testing.T) {
		_, err := svc.GetSecurityEvents(adminCtx, &authv1.GetSecurityEventsRequest{
			EventType: "coffee_spilled",
		})
		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("drivers are rejected", func(t *testing.T) {
		_, err := svc.GetSecurityEvents(helpers.AuthedContext(driver), &authv1.GetSecurityEventsRequest{})
		require.Error(t, err)
		assert.Equal(t, codes.PermissionDenied, status.Code(err))
	})
}

func TestAuthService_ResolveSecurityEvent(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	admin := helpers.CreateAdminUser("admin1", "TestPass123!")
	helpers.CreateDriverUser("driver1", "TestPass123!")

	svc := newTestAuthService(client)
	adminCtx := helpers.AuthedContext(admin)

	_, err := svc.Login(context.Background(), &authv1.LoginRequest{Username: "driver1", Password: "WrongPass123!"})
	require.Error(t, err)

	event, err := client.SecurityEvent.Query().
		Where(securityevent.EventTypeEQ(securityevent.EventTypeLoginFailed)).
		Only(context.Background())
	require.NoError(t, err)
	require.False(t, event.Resolved)

	_, err = svc.ResolveSecurityEvent(adminCtx, &authv1.ResolveSecurityEventRequest{Id: event.ID.String()})
	require.NoError(t, err)

	resolved, err := client.SecurityEvent.Get(context.Background(), event.ID)
	require.NoError(t, err)
	assert.True(t, resolved.Resolved)

	resp, err := svc.GetSecurityEvents(adminCtx, &authv1.GetSecurityEventsRequest{OnlyUnresolved: true})
	require.NoError(t, err)
	assert.Equal(t, int32(0), resp.TotalCount)

	t.Run("unknown event", func(t *testing.T) {
		_, err := svc.ResolveSecurityEvent(adminCtx, &authv1.ResolveSecurityEventRequest{Id: uuid.NewString()})
		require.Error(t, err)
		assert.Equal(t, codes.NotFound, status.Code(err))
	})
}

func TestAuthService_GetSecurityStats(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	admin := helpers.CreateAdminUser("admin1", "TestPass123!")
	driver := helpers.CreateDriverUser("driver1", "TestPass123!")

	svc := newTestAuthService(client)
	ctx := context.Background()

	ss := NewSecurityService(client)
	require.NoError(t, ss.LogUserSecurityEvent(ctx, driver.ID, security.EventTypeLoginFailed, "bad password", security.SeverityMedium, "", ""))
	require.NoError(t, ss.LogUserSecurityEvent(ctx, driver.ID, security.EventTypeAccountLocked, "too many attempts", security.SeverityHigh, "", ""))
	require.NoError(t, ss.LogSystemSecurityEvent(ctx, security.EventTypeSecurityAlert, "suspicious traffic", security.SeverityCritical, "", ""))

	// Resolving the high event must not hide it from the severity counter
	locked, err := client.SecurityEvent.Query().
		Where(securityevent.SeverityEQ(securityevent.SeverityHigh)).
		Only(ctx)
	require.NoError(t, err)
	require.NoError(t, client.SecurityEvent.UpdateOneID(locked.ID).SetResolved(true).Exec(ctx))

	adminCtx := helpers.AuthedContext(admin)

	resp, err := svc.GetSecurityStats(adminCtx, &authv1.GetSecurityStatsRequest{})
	require.NoError(t, err)
	assert.Equal(t, int32(3), resp.TotalEvents)
	assert.Equal(t, int32(2), resp.UnresolvedEvents)
	assert.Equal(t, int32(2), resp.HighSeverityEvents)

	t.Run("scoped to one user", func(t *testing.T) {
		resp, err := svc.GetSecurityStats(adminCtx, &authv1.GetSecurityStatsRequest{UserId: driver.ID.String()})
		require.NoError(t, err)
		assert.Equal(t, int32(2), resp.TotalEvents)
		assert.Equal(t, int32(1), resp.HighSeverityEvents)
	})

	t.Run("drivers are rejected", func(t *testing.T) {
		_, err := svc.GetSecurityStats(helpers.AuthedContext(driver), &authv1.GetSecurityStatsRequest{})
		require.Error(t, err)
		assert.Equal(t, codes.PermissionDenied, status.Code(err))
	})
}
