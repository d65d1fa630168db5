// Code generated by ent, DO NOT EDIT.

package generated

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/omerfdemir/pickuptracker/ent/generated/locationlog"
	"github.com/omerfdemir/pickuptracker/ent/generated/task"
)

// LocationLog is the model entity for the LocationLog schema.
type LocationLog struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Task the checkpoint belongs to
	TaskID uuid.UUID `json:"task_id,omitempty"`
	// Latitude in decimal degrees
	Latitude float64 `json:"latitude,omitempty"`
	// Longitude in decimal degrees
	Longitude float64 `json:"longitude,omitempty"`
	// Workflow event the checkpoint was recorded at
	Event locationlog.Event `json:"event,omitempty"`
	// When the checkpoint was recorded
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LocationLogQuery when eager-loading is set.
	Edges        LocationLogEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LocationLogEdges holds the relations/edges for other nodes in the graph.
type LocationLogEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LocationLogEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LocationLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case locationlog.FieldLatitude, locationlog.FieldLongitude:
			values[i] = new(sql.NullFloat64)
		case locationlog.FieldEvent:
			values[i] = new(sql.NullString)
		case locationlog.FieldTimestamp:
			values[i] = new(sql.NullTime)
		case locationlog.FieldID, locationlog.FieldTaskID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LocationLog fields.
func (ll *LocationLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case locationlog.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				ll.ID = *value
			}
		case locationlog.FieldTaskID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value != nil {
				ll.TaskID = *value
			}
		case locationlog.FieldLatitude:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field latitude", values[i])
			} else if value.Valid {
				ll.Latitude = value.Float64
			}
		case locationlog.FieldLongitude:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field longitude", values[i])
			} else if value.Valid {
				ll.Longitude = value.Float64
			}
		case locationlog.FieldEvent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event", values[i])
			} else if value.Valid {
				ll.Event = locationlog.Event(value.String)
			}
		case locationlog.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				ll.Timestamp = value.Time
			}
		default:
			ll.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LocationLog.
// This includes values selected through modifiers, order, etc.
func (ll *LocationLog) Value(name string) (ent.Value, error) {
	return ll.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the LocationLog entity.
func (ll *LocationLog) QueryTask() *TaskQuery {
	return NewLocationLogClient(ll.config).QueryTask(ll)
}

// Update returns a builder for updating this LocationLog.
// Note that you need to call LocationLog.Unwrap() before calling this method if this LocationLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (ll *LocationLog) Update() *LocationLogUpdateOne {
	return NewLocationLogClient(ll.config).UpdateOne(ll)
}

// Unwrap unwraps the LocationLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ll *LocationLog) Unwrap() *LocationLog {
	_tx, ok := ll.config.driver.(*txDriver)
	if !ok {
		panic("generated: LocationLog is not a transactional entity")
	}
	ll.config.driver = _tx.drv
	return ll
}

// String implements the fmt.Stringer.
func (ll *LocationLog) String() string {
	var builder strings.Builder
	builder.WriteString("LocationLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ll.ID))
	builder.WriteString("task_id=")
	builder.WriteString(fmt.Sprintf("%v", ll.TaskID))
	builder.WriteString(", ")
	builder.WriteString("latitude=")
	builder.WriteString(fmt.Sprintf("%v", ll.Latitude))
	builder.WriteString(", ")
	builder.WriteString("longitude=")
	builder.WriteString(fmt.Sprintf("%v", ll.Longitude))
	builder.WriteString(", ")
	builder.WriteString("event=")
	builder.WriteString(fmt.Sprintf("%v", ll.Event))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(ll.Timestamp.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LocationLogs is a parsable slice of LocationLog.
type LocationLogs []*LocationLog
