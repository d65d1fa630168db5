// Code generated by ent, DO NOT EDIT.

package generated

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/omerfdemir/pickuptracker/ent/generated/securityevent"
	"github.com/omerfdemir/pickuptracker/ent/generated/user"
)

// SecurityEvent is the model entity for the SecurityEvent schema.
type SecurityEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// User who triggered the event; nil for system events
	UserID *uuid.UUID `json:"user_id,omitempty"`
	// Type of security event
	EventType securityevent.EventType `json:"event_type,omitempty"`
	// IP address where event occurred
	IPAddress string `json:"ip_address,omitempty"`
	// User agent string
	UserAgent string `json:"user_agent,omitempty"`
	// Human-readable description of the event
	Description string `json:"description,omitempty"`
	// Additional event metadata
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// Event severity level
	Severity securityevent.Severity `json:"severity,omitempty"`
	// Whether the security event has been resolved
	Resolved bool `json:"resolved,omitempty"`
	// When the event occurred
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SecurityEventQuery when eager-loading is set.
	Edges        SecurityEventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SecurityEventEdges holds the relations/edges for other nodes in the graph.
type SecurityEventEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SecurityEventEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SecurityEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case securityevent.FieldUserID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case securityevent.FieldMetadata:
			values[i] = new([]byte)
		case securityevent.FieldResolved:
			values[i] = new(sql.NullBool)
		case securityevent.FieldEventType, securityevent.FieldIPAddress, securityevent.FieldUserAgent, securityevent.FieldDescription, securityevent.FieldSeverity:
			values[i] = new(sql.NullString)
		case securityevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case securityevent.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SecurityEvent fields.
func (se *SecurityEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case securityevent.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				se.ID = *value
			}
		case securityevent.FieldUserID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				se.UserID = new(uuid.UUID)
				*se.UserID = *value.S.(*uuid.UUID)
			}
		case securityevent.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				se.EventType = securityevent.EventType(value.String)
			}
		case securityevent.FieldIPAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ip_address", values[i])
			} else if value.Valid {
				se.IPAddress = value.String
			}
		case securityevent.FieldUserAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_agent", values[i])
			} else if value.Valid {
				se.UserAgent = value.String
			}
		case securityevent.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				se.Description = value.String
			}
		case securityevent.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &se.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case securityevent.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				se.Severity = securityevent.Severity(value.String)
			}
		case securityevent.FieldResolved:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field resolved", values[i])
			} else if value.Valid {
				se.Resolved = value.Bool
			}
		case securityevent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				se.CreatedAt = value.Time
			}
		default:
			se.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SecurityEvent.
// This includes values selected through modifiers, order, etc.
func (se *SecurityEvent) Value(name string) (ent.Value, error) {
	return se.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the SecurityEvent entity.
func (se *SecurityEvent) QueryUser() *UserQuery {
	return NewSecurityEventClient(se.config).QueryUser(se)
}

// Update returns a builder for updating this SecurityEvent.
// Note that you need to call SecurityEvent.Unwrap() before calling this method if this SecurityEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (se *SecurityEvent) Update() *SecurityEventUpdateOne {
	return NewSecurityEventClient(se.config).UpdateOne(se)
}

// Unwrap unwraps the SecurityEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (se *SecurityEvent) Unwrap() *SecurityEvent {
	_tx, ok := se.config.driver.(*txDriver)
	if !ok {
		panic("generated: SecurityEvent is not a transactional entity")
	}
	se.config.driver = _tx.drv
	return se
}

// String implements the fmt.Stringer.
func (se *SecurityEvent) String() string {
	var builder strings.Builder
	builder.WriteString("SecurityEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", se.ID))
	if v := se.UserID; v != nil {
		builder.WriteString("user_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("event_type=")
	builder.WriteString(fmt.Sprintf("%v", se.EventType))
	builder.WriteString(", ")
	builder.WriteString("ip_address=")
	builder.WriteString(se.IPAddress)
	builder.WriteString(", ")
	builder.WriteString("user_agent=")
	builder.WriteString(se.UserAgent)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(se.Description)
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", se.Metadata))
	builder.WriteString(", ")
	builder.WriteString("severity=")
	builder.WriteString(fmt.Sprintf("%v", se.Severity))
	builder.WriteString(", ")
	builder.WriteString("resolved=")
	builder.WriteString(fmt.Sprintf("%v", se.Resolved))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(se.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SecurityEvents is a parsable slice of SecurityEvent.
type SecurityEvents []*SecurityEvent
