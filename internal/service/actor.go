// internal/service/actor.go
package service

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/omerfdemir/pickuptracker/internal/middleware"
)

// actor is the authenticated caller, resolved from the context the auth
// interceptor populated.
type actor struct {
	ID          uuid.UUID
	Username    string
	Role        string
	IsSuperuser bool
}

const (
	roleAdmin  = "admin"
	roleDriver = "driver"
)

func actorFromContext(ctx context.Context) (*actor, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "user not authenticated")
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid user ID in token")
	}

	username, _ := middleware.GetUsernameFromContext(ctx)
	role, _ := middleware.GetUserRoleFromContext(ctx)

	return &actor{
		ID:          id,
		Username:    username,
		Role:        role,
		IsSuperuser: middleware.GetIsSuperuserFromContext(ctx),
	}, nil
}

// requireAdmin resolves the caller and enforces the admin gate.
// Superusers pass regardless of role. Denials are recorded as security
// events.
func requireAdmin(ctx context.Context, sl *SecurityLogger) (*actor, error) {
	a, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if a.Role != roleAdmin && !a.IsSuperuser {
		if err := sl.LogPermissionDenied(ctx, a.ID, "admin access required"); err != nil {
			// best effort
		}
		return nil, status.Error(codes.PermissionDenied, "admin access required")
	}

	return a, nil
}

// requireDriver resolves the caller and enforces the driver gate.
func requireDriver(ctx context.Context, sl *SecurityLogger) (*actor, error) {
	a, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if a.Role != roleDriver {
		if err := sl.LogPermissionDenied(ctx, a.ID, "driver access required"); err != nil {
			// best effort
		}
		return nil, status.Error(codes.PermissionDenied, "driver access required")
	}

	return a, nil
}
