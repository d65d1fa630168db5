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
	"github.com/omerfdemir/pickuptracker/ent/generated/taskphoto"
)

// TaskPhoto is the model entity for the TaskPhoto schema.
type TaskPhoto struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Task this photo documents
	TaskID uuid.UUID `json:"task_id,omitempty"`
	// Path of the stored image, relative to the photo store root
	FilePath string `json:"file_path,omitempty"`
	// Purpose of the photo
	PhotoType taskphoto.PhotoType `json:"photo_type,omitempty"`
	// When the photo was uploaded
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TaskPhotoQuery when eager-loading is set.
	Edges        TaskPhotoEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TaskPhotoEdges holds the relations/edges for other nodes in the graph.
type TaskPhotoEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TaskPhotoEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TaskPhoto) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case taskphoto.FieldFilePath, taskphoto.FieldPhotoType:
			values[i] = new(sql.NullString)
		case taskphoto.FieldUploadedAt:
			values[i] = new(sql.NullTime)
		case taskphoto.FieldID, taskphoto.FieldTaskID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TaskPhoto fields.
func (tp *TaskPhoto) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case taskphoto.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				tp.ID = *value
			}
		case taskphoto.FieldTaskID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value != nil {
				tp.TaskID = *value
			}
		case taskphoto.FieldFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_path", values[i])
			} else if value.Valid {
				tp.FilePath = value.String
			}
		case taskphoto.FieldPhotoType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field photo_type", values[i])
			} else if value.Valid {
				tp.PhotoType = taskphoto.PhotoType(value.String)
			}
		case taskphoto.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				tp.UploadedAt = value.Time
			}
		default:
			tp.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TaskPhoto.
// This includes values selected through modifiers, order, etc.
func (tp *TaskPhoto) Value(name string) (ent.Value, error) {
	return tp.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the TaskPhoto entity.
func (tp *TaskPhoto) QueryTask() *TaskQuery {
	return NewTaskPhotoClient(tp.config).QueryTask(tp)
}

// Update returns a builder for updating this TaskPhoto.
// Note that you need to call TaskPhoto.Unwrap() before calling this method if this TaskPhoto
// was returned from a transaction, and the transaction was committed or rolled back.
func (tp *TaskPhoto) Update() *TaskPhotoUpdateOne {
	return NewTaskPhotoClient(tp.config).UpdateOne(tp)
}

// Unwrap unwraps the TaskPhoto entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (tp *TaskPhoto) Unwrap() *TaskPhoto {
	_tx, ok := tp.config.driver.(*txDriver)
	if !ok {
		panic("generated: TaskPhoto is not a transactional entity")
	}
	tp.config.driver = _tx.drv
	return tp
}

// String implements the fmt.Stringer.
func (tp *TaskPhoto) String() string {
	var builder strings.Builder
	builder.WriteString("TaskPhoto(")
	builder.WriteString(fmt.Sprintf("id=%v, ", tp.ID))
	builder.WriteString("task_id=")
	builder.WriteString(fmt.Sprintf("%v", tp.TaskID))
	builder.WriteString(", ")
	builder.WriteString("file_path=")
	builder.WriteString(tp.FilePath)
	builder.WriteString(", ")
	builder.WriteString("photo_type=")
	builder.WriteString(fmt.Sprintf("%v", tp.PhotoType))
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(tp.UploadedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TaskPhotos is a parsable slice of TaskPhoto.
type TaskPhotos []*TaskPhoto
