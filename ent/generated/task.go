// Code generated by ent, DO NOT EDIT.

package generated

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/omerfdemir/pickuptracker/ent/generated/task"
	"github.com/omerfdemir/pickuptracker/ent/generated/user"
)

// Task is the model entity for the Task schema.
type Task struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name of the donor
	DonorName string `json:"donor_name,omitempty"`
	// Pickup address
	Address string `json:"address,omitempty"`
	// Comma-separated phone numbers, free text
	PhoneNumbers string `json:"phone_numbers,omitempty"`
	// Maps share link
	LocationLink string `json:"location_link,omitempty"`
	// Donation category
	Category task.Category `json:"category,omitempty"`
	// Estimated quantity
	Quantity *uint32 `json:"quantity,omitempty"`
	// Urgent tasks sort first on driver dashboards
	IsUrgent bool `json:"is_urgent,omitempty"`
	// Visible to all drivers until one claims it
	IsBroadcast bool `json:"is_broadcast,omitempty"`
	// Current status of the task
	Status task.Status `json:"status,omitempty"`
	// Completion flag: visitor form filled
	VisitorFormFilled bool `json:"visitor_form_filled,omitempty"`
	// Completion flag: trust notice given
	TrustNoticeGiven bool `json:"trust_notice_given,omitempty"`
	// Admin who created the task
	CreatedBy uuid.UUID `json:"created_by,omitempty"`
	// Driver the task is assigned to; nil while broadcast
	AssignedTo *uuid.UUID `json:"assigned_to,omitempty"`
	// When the task was created
	CreatedAt time.Time `json:"created_at,omitempty"`
	// When the task was last updated
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Set exactly once, when the task is completed
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TaskQuery when eager-loading is set.
	Edges        TaskEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TaskEdges holds the relations/edges for other nodes in the graph.
type TaskEdges struct {
	// Creator holds the value of the creator edge.
	Creator *User `json:"creator,omitempty"`
	// Assignee holds the value of the assignee edge.
	Assignee *User `json:"assignee,omitempty"`
	// Items holds the value of the items edge.
	Items []*Item `json:"items,omitempty"`
	// Photos holds the value of the photos edge.
	Photos []*TaskPhoto `json:"photos,omitempty"`
	// LocationLogs holds the value of the location_logs edge.
	LocationLogs []*LocationLog `json:"location_logs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// CreatorOrErr returns the Creator value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TaskEdges) CreatorOrErr() (*User, error) {
	if e.Creator != nil {
		return e.Creator, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "creator"}
}

// AssigneeOrErr returns the Assignee value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TaskEdges) AssigneeOrErr() (*User, error) {
	if e.Assignee != nil {
		return e.Assignee, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "assignee"}
}

// ItemsOrErr returns the Items value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) ItemsOrErr() ([]*Item, error) {
	if e.loadedTypes[2] {
		return e.Items, nil
	}
	return nil, &NotLoadedError{edge: "items"}
}

// PhotosOrErr returns the Photos value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) PhotosOrErr() ([]*TaskPhoto, error) {
	if e.loadedTypes[3] {
		return e.Photos, nil
	}
	return nil, &NotLoadedError{edge: "photos"}
}

// LocationLogsOrErr returns the LocationLogs value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) LocationLogsOrErr() ([]*LocationLog, error) {
	if e.loadedTypes[4] {
		return e.LocationLogs, nil
	}
	return nil, &NotLoadedError{edge: "location_logs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Task) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case task.FieldAssignedTo:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case task.FieldIsUrgent, task.FieldIsBroadcast, task.FieldVisitorFormFilled, task.FieldTrustNoticeGiven:
			values[i] = new(sql.NullBool)
		case task.FieldQuantity:
			values[i] = new(sql.NullInt64)
		case task.FieldDonorName, task.FieldAddress, task.FieldPhoneNumbers, task.FieldLocationLink, task.FieldCategory, task.FieldStatus:
			values[i] = new(sql.NullString)
		case task.FieldCreatedAt, task.FieldUpdatedAt, task.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		case task.FieldID, task.FieldCreatedBy:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Task fields.
func (t *Task) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case task.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				t.ID = *value
			}
		case task.FieldDonorName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field donor_name", values[i])
			} else if value.Valid {
				t.DonorName = value.String
			}
		case task.FieldAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field address", values[i])
			} else if value.Valid {
				t.Address = value.String
			}
		case task.FieldPhoneNumbers:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone_numbers", values[i])
			} else if value.Valid {
				t.PhoneNumbers = value.String
			}
		case task.FieldLocationLink:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location_link", values[i])
			} else if value.Valid {
				t.LocationLink = value.String
			}
		case task.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				t.Category = task.Category(value.String)
			}
		case task.FieldQuantity:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quantity", values[i])
			} else if value.Valid {
				t.Quantity = new(uint32)
				*t.Quantity = uint32(value.Int64)
			}
		case task.FieldIsUrgent:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_urgent", values[i])
			} else if value.Valid {
				t.IsUrgent = value.Bool
			}
		case task.FieldIsBroadcast:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_broadcast", values[i])
			} else if value.Valid {
				t.IsBroadcast = value.Bool
			}
		case task.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				t.Status = task.Status(value.String)
			}
		case task.FieldVisitorFormFilled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field visitor_form_filled", values[i])
			} else if value.Valid {
				t.VisitorFormFilled = value.Bool
			}
		case task.FieldTrustNoticeGiven:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field trust_notice_given", values[i])
			} else if value.Valid {
				t.TrustNoticeGiven = value.Bool
			}
		case task.FieldCreatedBy:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value != nil {
				t.CreatedBy = *value
			}
		case task.FieldAssignedTo:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_to", values[i])
			} else if value.Valid {
				t.AssignedTo = new(uuid.UUID)
				*t.AssignedTo = *value.S.(*uuid.UUID)
			}
		case task.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				t.CreatedAt = value.Time
			}
		case task.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				t.UpdatedAt = value.Time
			}
		case task.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				t.CompletedAt = new(time.Time)
				*t.CompletedAt = value.Time
			}
		default:
			t.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Task.
// This includes values selected through modifiers, order, etc.
func (t *Task) Value(name string) (ent.Value, error) {
	return t.selectValues.Get(name)
}

// QueryCreator queries the "creator" edge of the Task entity.
func (t *Task) QueryCreator() *UserQuery {
	return NewTaskClient(t.config).QueryCreator(t)
}

// QueryAssignee queries the "assignee" edge of the Task entity.
func (t *Task) QueryAssignee() *UserQuery {
	return NewTaskClient(t.config).QueryAssignee(t)
}

// QueryItems queries the "items" edge of the Task entity.
func (t *Task) QueryItems() *ItemQuery {
	return NewTaskClient(t.config).QueryItems(t)
}

// QueryPhotos queries the "photos" edge of the Task entity.
func (t *Task) QueryPhotos() *TaskPhotoQuery {
	return NewTaskClient(t.config).QueryPhotos(t)
}

// QueryLocationLogs queries the "location_logs" edge of the Task entity.
func (t *Task) QueryLocationLogs() *LocationLogQuery {
	return NewTaskClient(t.config).QueryLocationLogs(t)
}

// Update returns a builder for updating this Task.
// Note that you need to call Task.Unwrap() before calling this method if this Task
// was returned from a transaction, and the transaction was committed or rolled back.
func (t *Task) Update() *TaskUpdateOne {
	return NewTaskClient(t.config).UpdateOne(t)
}

// Unwrap unwraps the Task entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (t *Task) Unwrap() *Task {
	_tx, ok := t.config.driver.(*txDriver)
	if !ok {
		panic("generated: Task is not a transactional entity")
	}
	t.config.driver = _tx.drv
	return t
}

// String implements the fmt.Stringer.
func (t *Task) String() string {
	var builder strings.Builder
	builder.WriteString("Task(")
	builder.WriteString(fmt.Sprintf("id=%v, ", t.ID))
	builder.WriteString("donor_name=")
	builder.WriteString(t.DonorName)
	builder.WriteString(", ")
	builder.WriteString("address=")
	builder.WriteString(t.Address)
	builder.WriteString(", ")
	builder.WriteString("phone_numbers=")
	builder.WriteString(t.PhoneNumbers)
	builder.WriteString(", ")
	builder.WriteString("location_link=")
	builder.WriteString(t.LocationLink)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(fmt.Sprintf("%v", t.Category))
	builder.WriteString(", ")
	if v := t.Quantity; v != nil {
		builder.WriteString("quantity=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("is_urgent=")
	builder.WriteString(fmt.Sprintf("%v", t.IsUrgent))
	builder.WriteString(", ")
	builder.WriteString("is_broadcast=")
	builder.WriteString(fmt.Sprintf("%v", t.IsBroadcast))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", t.Status))
	builder.WriteString(", ")
	builder.WriteString("visitor_form_filled=")
	builder.WriteString(fmt.Sprintf("%v", t.VisitorFormFilled))
	builder.WriteString(", ")
	builder.WriteString("trust_notice_given=")
	builder.WriteString(fmt.Sprintf("%v", t.TrustNoticeGiven))
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(fmt.Sprintf("%v", t.CreatedBy))
	builder.WriteString(", ")
	if v := t.AssignedTo; v != nil {
		builder.WriteString("assigned_to=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(t.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(t.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := t.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Tasks is a parsable slice of Task.
type Tasks []*Task
