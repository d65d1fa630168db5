// internal/service/auth_service.go
package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	authv1 "github.com/omerfdemir/pickuptracker/api/proto/auth/v1/generated"
	ent "github.com/omerfdemir/pickuptracker/ent/generated"
	"github.com/omerfdemir/pickuptracker/ent/generated/user"
	"github.com/omerfdemir/pickuptracker/internal/config"
	"github.com/omerfdemir/pickuptracker/internal/middleware"
	"github.com/omerfdemir/pickuptracker/pkg/auth"
	"github.com/omerfdemir/pickuptracker/pkg/security"
)

// AuthService implements login and session lifecycle. There is no
// self-registration: driver accounts are provisioned by admins and the
// initial admin by the seed command.
type AuthService struct {
	authv1.UnimplementedAuthServiceServer
	client          *ent.Client
	tokenManager    *auth.TokenManager
	passwordManager *auth.PasswordManager
	securityService *SecurityService
	securityLogger  *SecurityLogger
	securityConfig  config.SecurityConfig
	jwtConfig       config.JWTConfig
}

// NewAuthService creates a new authentication service
func NewAuthService(
	client *ent.Client,
	tokenManager *auth.TokenManager,
	securityLogger *SecurityLogger,
	securityConfig config.SecurityConfig,
	jwtConfig config.JWTConfig,
) *AuthService {
	return &AuthService{
		client:          client,
		tokenManager:    tokenManager,
		passwordManager: auth.NewPasswordManager(),
		securityService: NewSecurityService(client),
		securityLogger:  securityLogger,
		securityConfig:  securityConfig,
		jwtConfig:       jwtConfig,
	}
}

// Login authenticates a user and returns a token pair
func (s *AuthService) Login(ctx context.Context, req *authv1.LoginRequest) (*authv1.LoginResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, status.Error(codes.InvalidArgument, "username and password are required")
	}

	username := strings.ToLower(req.Username)
	foundUser, err := s.client.User.Query().
		Where(user.UsernameEQ(username)).
		Only(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			if err := s.securityLogger.LogLoginFailed(ctx, username, "user not found"); err != nil {
				// best effort
			}
			return nil, status.Error(codes.Unauthenticated, "invalid credentials")
		}
		return nil, status.Error(codes.Internal, "failed to find user")
	}

	// Check if account is locked
	if foundUser.AccountLockedUntil != nil && foundUser.AccountLockedUntil.After(time.Now()) {
		return nil, status.Error(codes.PermissionDenied,
			fmt.Sprintf("account is locked until %s", foundUser.AccountLockedUntil.Format(time.RFC3339)))
	}

	if err := s.passwordManager.ComparePassword(foundUser.PasswordHash, req.Password); err != nil {
		failedAttempts := foundUser.FailedLoginAttempts + 1
		update := foundUser.Update().SetFailedLoginAttempts(failedAttempts)

		if failedAttempts >= s.securityConfig.MaxLoginAttempts {
			lockUntil := time.Now().Add(s.securityConfig.AccountLockoutDuration)
			update = update.SetAccountLockedUntil(lockUntil)

			if err := s.securityLogger.LogAccountLocked(ctx, foundUser.ID,
				fmt.Sprintf("max login attempts (%d) exceeded", s.securityConfig.MaxLoginAttempts)); err != nil {
				// best effort
			}

			if _, err := update.Save(ctx); err != nil {
				log.Printf("Failed to update failed login attempts: %v", err)
			}

			return nil, status.Error(codes.PermissionDenied,
				fmt.Sprintf("account locked due to %d failed login attempts. Try again after %s",
					s.securityConfig.MaxLoginAttempts,
					s.securityConfig.AccountLockoutDuration))
		}

		if _, err := update.Save(ctx); err != nil {
			log.Printf("Failed to update failed login attempts: %v", err)
		}

		if err := s.securityLogger.LogLoginFailed(ctx, username,
			fmt.Sprintf("invalid password (attempt %d of %d)", failedAttempts, s.securityConfig.MaxLoginAttempts)); err != nil {
			// best effort
		}

		return nil, status.Error(codes.Unauthenticated, "invalid credentials")
	}

	accessToken, refreshToken, expiresIn, err := s.tokenManager.GenerateTokenPair(
		foundUser.ID.String(),
		foundUser.Username,
		string(foundUser.Role),
		foundUser.IsSuperuser,
	)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to generate tokens")
	}

	// Reset failed attempts and clear any expired lock on success
	foundUser, err = foundUser.Update().
		SetRefreshToken(refreshToken).
		SetRefreshTokenExpiresAt(time.Now().Add(s.jwtConfig.RefreshTokenDuration)).
		SetLastLogin(time.Now()).
		SetFailedLoginAttempts(0).
		ClearAccountLockedUntil().
		Save(ctx)

	if err != nil {
		return nil, status.Error(codes.Internal, "failed to update user")
	}

	if err := s.securityLogger.LogLoginSuccess(ctx, foundUser.ID); err != nil {
		// best effort
	}

	return &authv1.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
		User:         convertUserToProto(foundUser),
	}, nil
}

// RefreshToken issues a new access token from a valid refresh token
func (s *AuthService) RefreshToken(ctx context.Context, req *authv1.RefreshTokenRequest) (*authv1.RefreshTokenResponse, error) {
	if req.RefreshToken == "" {
		return nil, status.Error(codes.InvalidArgument, "refresh token is required")
	}

	claims, err := s.tokenManager.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid refresh token")
	}

	userUUID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid user ID in token")
	}

	// The presented token must match the one on record, so logout and
	// re-login invalidate older tokens.
	foundUser, err := s.client.User.Query().
		Where(
			user.ID(userUUID),
			user.RefreshTokenEQ(req.RefreshToken),
		).
		Only(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.Unauthenticated, "invalid refresh token")
		}
		return nil, status.Error(codes.Internal, "failed to find user")
	}

	if foundUser.RefreshTokenExpiresAt != nil && foundUser.RefreshTokenExpiresAt.Before(time.Now()) {
		return nil, status.Error(codes.Unauthenticated, "refresh token expired")
	}

	accessToken, expiresIn, err := s.tokenManager.RefreshAccessToken(req.RefreshToken)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to generate access token")
	}

	return &authv1.RefreshTokenResponse{
		AccessToken: accessToken,
		ExpiresIn:   expiresIn,
	}, nil
}

// Logout invalidates the caller's refresh token
func (s *AuthService) Logout(ctx context.Context, _ *authv1.LogoutRequest) (*emptypb.Empty, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "user not authenticated")
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return &emptypb.Empty{}, nil
	}

	err = s.client.User.UpdateOneID(userUUID).
		ClearRefreshToken().
		ClearRefreshTokenExpiresAt().
		Exec(ctx)

	if err != nil && !ent.IsNotFound(err) {
		// Log error but still return success for logout
		log.Printf("Failed to clear refresh token for user %s: %v", userID, err)
	}

	return &emptypb.Empty{}, nil
}

// GetMe returns the current authenticated user's information
func (s *AuthService) GetMe(ctx context.Context, _ *authv1.GetMeRequest) (*authv1.GetMeResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "user not authenticated")
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid user ID in token")
	}

	foundUser, err := s.client.User.Get(ctx, userUUID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "user not found")
		}
		return nil, status.Error(codes.Internal, "failed to get user")
	}

	return &authv1.GetMeResponse{
		User: convertUserToProto(foundUser),
	}, nil
}

// GetSecurityEvents returns audit events matching the filters, newest
// first. Admin only.
func (s *AuthService) GetSecurityEvents(ctx context.Context, req *authv1.GetSecurityEventsRequest) (*authv1.GetSecurityEventsResponse, error) {
	if _, err := requireAdmin(ctx, s.securityLogger); err != nil {
		return nil, err
	}

	if req.EventType != "" && !security.IsValidEventType(req.EventType) {
		return nil, status.Error(codes.InvalidArgument, "unknown event_type filter")
	}
	if req.Severity != "" && !security.IsValidSeverity(req.Severity) {
		return nil, status.Error(codes.InvalidArgument, "unknown severity filter")
	}

	query := &GetSecurityEventsRequest{
		EventType:      req.EventType,
		Severity:       req.Severity,
		OnlyUnresolved: req.OnlyUnresolved,
	}
	query.Limit, query.Offset = pageBounds(req.PageSize, req.Page)

	if req.UserId != "" {
		userUUID, err := uuid.Parse(req.UserId)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "invalid user_id format")
		}
		query.UserID = userUUID
	}

	result, err := s.securityService.GetSecurityEvents(ctx, query)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to get security events")
	}

	events := make([]*authv1.SecurityEvent, len(result.Events))
	for i, e := range result.Events {
		events[i] = convertSecurityEventToProto(e)
	}

	return &authv1.GetSecurityEventsResponse{
		Events:     events,
		TotalCount: int32(result.TotalCount),
	}, nil
}

// ResolveSecurityEvent marks an audit event as handled. Admin only.
func (s *AuthService) ResolveSecurityEvent(ctx context.Context, req *authv1.ResolveSecurityEventRequest) (*emptypb.Empty, error) {
	if _, err := requireAdmin(ctx, s.securityLogger); err != nil {
		return nil, err
	}

	eventID, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid event ID format")
	}

	if err := s.securityService.ResolveSecurityEvent(ctx, eventID); err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "security event not found")
		}
		return nil, status.Error(codes.Internal, "failed to resolve security event")
	}

	return &emptypb.Empty{}, nil
}

// GetSecurityStats returns the audit counters, optionally scoped to one
// user. Admin only.
func (s *AuthService) GetSecurityStats(ctx context.Context, req *authv1.GetSecurityStatsRequest) (*authv1.GetSecurityStatsResponse, error) {
	if _, err := requireAdmin(ctx, s.securityLogger); err != nil {
		return nil, err
	}

	var userID *uuid.UUID
	if req.UserId != "" {
		parsed, err := uuid.Parse(req.UserId)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "invalid user_id format")
		}
		userID = &parsed
	}

	stats, err := s.securityService.GetSecurityStats(ctx, userID)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to compute security stats")
	}

	return &authv1.GetSecurityStatsResponse{
		TotalEvents:        int32(stats.TotalEvents),
		UnresolvedEvents:   int32(stats.UnresolvedEvents),
		HighSeverityEvents: int32(stats.HighSeverityEvents),
	}, nil
}

func convertSecurityEventToProto(e *ent.SecurityEvent) *authv1.SecurityEvent {
	proto := &authv1.SecurityEvent{
		Id:          e.ID.String(),
		EventType:   string(e.EventType),
		Severity:    string(e.Severity),
		Description: e.Description,
		IpAddress:   e.IPAddress,
		UserAgent:   e.UserAgent,
		Resolved:    e.Resolved,
		CreatedAt:   timestamppb.New(e.CreatedAt),
	}

	if e.UserID != nil {
		proto.UserId = e.UserID.String()
	}

	return proto
}

func convertUserToProto(u *ent.User) *authv1.User {
	proto := &authv1.User{
		Id:          u.ID.String(),
		Username:    u.Username,
		PhoneNumber: u.PhoneNumber,
		Role:        string(u.Role),
		IsSuperuser: u.IsSuperuser,
		CreatedAt:   timestamppb.New(u.CreatedAt),
	}

	if u.LastLogin != nil {
		proto.LastLogin = timestamppb.New(*u.LastLogin)
	}

	return proto
}
