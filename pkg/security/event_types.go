// pkg/security/event_types.go
package security

import (
	"fmt"

	"github.com/omerfdemir/pickuptracker/ent/generated/securityevent"
)

// EventType constants for string-based event type handling
const (
	EventTypeLoginSuccess      = "login_success"
	EventTypeLoginFailed       = "login_failed"
	EventTypePermissionDenied  = "permission_denied"
	EventTypeTaskClaimConflict = "task_claim_conflict"
	EventTypeAccountLocked     = "account_locked"
	EventTypeAccountUnlocked   = "account_unlocked"
	EventTypeDriverCreated     = "driver_created"
	EventTypeDriverDeleted     = "driver_deleted"
	EventTypeSecurityAlert     = "security_alert"
)

// Severity constants for string-based severity handling
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// ParseEventType converts string event type to Ent enum
func ParseEventType(eventType string) (securityevent.EventType, error) {
	switch eventType {
	case EventTypeLoginSuccess:
		return securityevent.EventTypeLoginSuccess, nil
	case EventTypeLoginFailed:
		return securityevent.EventTypeLoginFailed, nil
	case EventTypePermissionDenied:
		return securityevent.EventTypePermissionDenied, nil
	case EventTypeTaskClaimConflict:
		return securityevent.EventTypeTaskClaimConflict, nil
	case EventTypeAccountLocked:
		return securityevent.EventTypeAccountLocked, nil
	case EventTypeAccountUnlocked:
		return securityevent.EventTypeAccountUnlocked, nil
	case EventTypeDriverCreated:
		return securityevent.EventTypeDriverCreated, nil
	case EventTypeDriverDeleted:
		return securityevent.EventTypeDriverDeleted, nil
	case EventTypeSecurityAlert:
		return securityevent.EventTypeSecurityAlert, nil
	default:
		return "", fmt.Errorf("unknown event type: %s", eventType)
	}
}

// ParseSeverity converts string severity to Ent enum
func ParseSeverity(severity string) (securityevent.Severity, error) {
	switch severity {
	case SeverityLow:
		return securityevent.SeverityLow, nil
	case SeverityMedium:
		return securityevent.SeverityMedium, nil
	case SeverityHigh:
		return securityevent.SeverityHigh, nil
	case SeverityCritical:
		return securityevent.SeverityCritical, nil
	default:
		return "", fmt.Errorf("unknown severity: %s", severity)
	}
}

// ValidEventTypes returns all valid event type strings
func ValidEventTypes() []string {
	return []string{
		EventTypeLoginSuccess,
		EventTypeLoginFailed,
		EventTypePermissionDenied,
		EventTypeTaskClaimConflict,
		EventTypeAccountLocked,
		EventTypeAccountUnlocked,
		EventTypeDriverCreated,
		EventTypeDriverDeleted,
		EventTypeSecurityAlert,
	}
}

// ValidSeverities returns all valid severity strings
func ValidSeverities() []string {
	return []string{
		SeverityLow,
		SeverityMedium,
		SeverityHigh,
		SeverityCritical,
	}
}

// IsValidEventType checks if the event type string is valid
func IsValidEventType(eventType string) bool {
	_, err := ParseEventType(eventType)
	return err == nil
}

// IsValidSeverity checks if the severity string is valid
func IsValidSeverity(severity string) bool {
	_, err := ParseSeverity(severity)
	return err == nil
}
