// Code generated by ent, DO NOT EDIT.

package taskphoto

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the taskphoto type in the database.
	Label = "task_photo"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldFilePath holds the string denoting the file_path field in the database.
	FieldFilePath = "file_path"
	// FieldPhotoType holds the string denoting the photo_type field in the database.
	FieldPhotoType = "photo_type"
	// FieldUploadedAt holds the string denoting the uploaded_at field in the database.
	FieldUploadedAt = "uploaded_at"
	// EdgeTask holds the string denoting the task edge name in mutations.
	EdgeTask = "task"
	// Table holds the table name of the taskphoto in the database.
	Table = "task_photos"
	// TaskTable is the table that holds the task relation/edge.
	TaskTable = "task_photos"
	// TaskInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TaskInverseTable = "tasks"
	// TaskColumn is the table column denoting the task relation/edge.
	TaskColumn = "task_id"
)

// Columns holds all SQL columns for taskphoto fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldFilePath,
	FieldPhotoType,
	FieldUploadedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	FilePathValidator func(string) error
	// DefaultUploadedAt holds the default value on creation for the "uploaded_at" field.
	DefaultUploadedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// PhotoType defines the type for the "photo_type" enum field.
type PhotoType string

// PhotoTypeItem is the default value of the PhotoType enum.
const DefaultPhotoType = PhotoTypeItem

// PhotoType values.
const (
	PhotoTypeItem        PhotoType = "item"
	PhotoTypeDonor       PhotoType = "donor"
	PhotoTypeVisitorForm PhotoType = "visitor_form"
	PhotoTypeOther       PhotoType = "other"
)

func (pt PhotoType) String() string {
	return string(pt)
}

// PhotoTypeValidator is a validator for the "photo_type" field enum values. It is called by the builders before save.
func PhotoTypeValidator(pt PhotoType) error {
	switch pt {
	case PhotoTypeItem, PhotoTypeDonor, PhotoTypeVisitorForm, PhotoTypeOther:
		return nil
	default:
		return fmt.Errorf("taskphoto: invalid enum value for photo_type field: %q", pt)
	}
}

// OrderOption defines the ordering options for the TaskPhoto queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByFilePath orders the results by the file_path field.
func ByFilePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilePath, opts...).ToFunc()
}

// ByPhotoType orders the results by the photo_type field.
func ByPhotoType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhotoType, opts...).ToFunc()
}

// ByUploadedAt orders the results by the uploaded_at field.
func ByUploadedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUploadedAt, opts...).ToFunc()
}

// ByTaskField orders the results by task field.
func ByTaskField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTaskStep(), sql.OrderByField(field, opts...))
	}
}
func newTaskStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TaskInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
	)
}
