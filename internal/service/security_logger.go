// internal/service/security_logger.go
package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/omerfdemir/pickuptracker/internal/middleware"
	"github.com/omerfdemir/pickuptracker/pkg/security"
)

// SecurityLogger provides convenience methods for logging security events
type SecurityLogger struct {
	securityService *SecurityService
}

// NewSecurityLogger creates a new security logger
func NewSecurityLogger(securityService *SecurityService) *SecurityLogger {
	return &SecurityLogger{
		securityService: securityService,
	}
}

// LogFromContext logs a security event using context information
func (sl *SecurityLogger) LogFromContext(ctx context.Context, userID uuid.UUID, eventType, description, severity string) error {
	clientInfo := middleware.GetClientInfoFromContext(ctx)

	return sl.securityService.LogUserSecurityEvent(
		ctx,
		userID,
		eventType,
		description,
		severity,
		clientInfo.IPAddress,
		clientInfo.UserAgent,
	)
}

// LogSystemFromContext logs a system security event using context information
func (sl *SecurityLogger) LogSystemFromContext(ctx context.Context, eventType, description, severity string) error {
	clientInfo := middleware.GetClientInfoFromContext(ctx)

	return sl.securityService.LogSystemSecurityEvent(
		ctx,
		eventType,
		description,
		severity,
		clientInfo.IPAddress,
		clientInfo.UserAgent,
	)
}

// Convenience methods for common security events

func (sl *SecurityLogger) LogLoginSuccess(ctx context.Context, userID uuid.UUID) error {
	return sl.LogFromContext(ctx, userID, security.EventTypeLoginSuccess,
		"User successfully logged in", security.SeverityLow)
}

func (sl *SecurityLogger) LogLoginFailed(ctx context.Context, username, reason string) error {
	return sl.LogSystemFromContext(ctx, security.EventTypeLoginFailed,
		"Login failed for "+username+": "+reason, security.SeverityMedium)
}

func (sl *SecurityLogger) LogAccountLocked(ctx context.Context, userID uuid.UUID, reason string) error {
	return sl.LogFromContext(ctx, userID, security.EventTypeAccountLocked,
		"Account locked: "+reason, security.SeverityHigh)
}

func (sl *SecurityLogger) LogAccountUnlocked(ctx context.Context, userID uuid.UUID) error {
	return sl.LogFromContext(ctx, userID, security.EventTypeAccountUnlocked,
		"Account unlocked by admin", security.SeverityLow)
}

func (sl *SecurityLogger) LogPermissionDenied(ctx context.Context, userID uuid.UUID, description string) error {
	return sl.LogFromContext(ctx, userID, security.EventTypePermissionDenied,
		description, security.SeverityMedium)
}

// LogClaimConflict records a lost race for a broadcast task. These are
// expected under load but spikes are worth watching.
func (sl *SecurityLogger) LogClaimConflict(ctx context.Context, userID uuid.UUID, taskID string) error {
	return sl.LogFromContext(ctx, userID, security.EventTypeTaskClaimConflict,
		"Broadcast task "+taskID+" already claimed by another driver", security.SeverityLow)
}

func (sl *SecurityLogger) LogDriverCreated(ctx context.Context, adminID uuid.UUID, username string) error {
	return sl.LogFromContext(ctx, adminID, security.EventTypeDriverCreated,
		"Driver account created: "+username, security.SeverityLow)
}

func (sl *SecurityLogger) LogDriverDeleted(ctx context.Context, adminID uuid.UUID, username string) error {
	return sl.LogFromContext(ctx, adminID, security.EventTypeDriverDeleted,
		"Driver account deleted: "+username, security.SeverityMedium)
}

func (sl *SecurityLogger) LogSecurityAlert(ctx context.Context, userID uuid.UUID, description string) error {
	return sl.LogFromContext(ctx, userID, security.EventTypeSecurityAlert,
		description, security.SeverityHigh)
}
