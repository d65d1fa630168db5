// Code generated by ent, DO NOT EDIT.

package task

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the task type in the database.
	Label = "task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDonorName holds the string denoting the donor_name field in the database.
	FieldDonorName = "donor_name"
	// FieldAddress holds the string denoting the address field in the database.
	FieldAddress = "address"
	// FieldPhoneNumbers holds the string denoting the phone_numbers field in the database.
	FieldPhoneNumbers = "phone_numbers"
	// FieldLocationLink holds the string denoting the location_link field in the database.
	FieldLocationLink = "location_link"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldQuantity holds the string denoting the quantity field in the database.
	FieldQuantity = "quantity"
	// FieldIsUrgent holds the string denoting the is_urgent field in the database.
	FieldIsUrgent = "is_urgent"
	// FieldIsBroadcast holds the string denoting the is_broadcast field in the database.
	FieldIsBroadcast = "is_broadcast"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldVisitorFormFilled holds the string denoting the visitor_form_filled field in the database.
	FieldVisitorFormFilled = "visitor_form_filled"
	// FieldTrustNoticeGiven holds the string denoting the trust_notice_given field in the database.
	FieldTrustNoticeGiven = "trust_notice_given"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// FieldAssignedTo holds the string denoting the assigned_to field in the database.
	FieldAssignedTo = "assigned_to"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeCreator holds the string denoting the creator edge name in mutations.
	EdgeCreator = "creator"
	// EdgeAssignee holds the string denoting the assignee edge name in mutations.
	EdgeAssignee = "assignee"
	// EdgeItems holds the string denoting the items edge name in mutations.
	EdgeItems = "items"
	// EdgePhotos holds the string denoting the photos edge name in mutations.
	EdgePhotos = "photos"
	// EdgeLocationLogs holds the string denoting the location_logs edge name in mutations.
	EdgeLocationLogs = "location_logs"
	// Table holds the table name of the task in the database.
	Table = "tasks"
	// CreatorTable is the table that holds the creator relation/edge.
	CreatorTable = "tasks"
	// CreatorInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	CreatorInverseTable = "users"
	// CreatorColumn is the table column denoting the creator relation/edge.
	CreatorColumn = "created_by"
	// AssigneeTable is the table that holds the assignee relation/edge.
	AssigneeTable = "tasks"
	// AssigneeInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	AssigneeInverseTable = "users"
	// AssigneeColumn is the table column denoting the assignee relation/edge.
	AssigneeColumn = "assigned_to"
	// ItemsTable is the table that holds the items relation/edge.
	ItemsTable = "items"
	// ItemsInverseTable is the table name for the Item entity.
	// It exists in this package in order to avoid circular dependency with the "item" package.
	ItemsInverseTable = "items"
	// ItemsColumn is the table column denoting the items relation/edge.
	ItemsColumn = "task_id"
	// PhotosTable is the table that holds the photos relation/edge.
	PhotosTable = "task_photos"
	// PhotosInverseTable is the table name for the TaskPhoto entity.
	// It exists in this package in order to avoid circular dependency with the "taskphoto" package.
	PhotosInverseTable = "task_photos"
	// PhotosColumn is the table column denoting the photos relation/edge.
	PhotosColumn = "task_id"
	// LocationLogsTable is the table that holds the location_logs relation/edge.
	LocationLogsTable = "location_logs"
	// LocationLogsInverseTable is the table name for the LocationLog entity.
	// It exists in this package in order to avoid circular dependency with the "locationlog" package.
	LocationLogsInverseTable = "location_logs"
	// LocationLogsColumn is the table column denoting the location_logs relation/edge.
	LocationLogsColumn = "task_id"
)

// Columns holds all SQL columns for task fields.
var Columns = []string{
	FieldID,
	FieldDonorName,
	FieldAddress,
	FieldPhoneNumbers,
	FieldLocationLink,
	FieldCategory,
	FieldQuantity,
	FieldIsUrgent,
	FieldIsBroadcast,
	FieldStatus,
	FieldVisitorFormFilled,
	FieldTrustNoticeGiven,
	FieldCreatedBy,
	FieldAssignedTo,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldCompletedAt,
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
	// DonorNameValidator is a validator for the "donor_name" field. It is called by the builders before save.
	DonorNameValidator func(string) error
	// PhoneNumbersValidator is a validator for the "phone_numbers" field. It is called by the builders before save.
	PhoneNumbersValidator func(string) error
	// LocationLinkValidator is a validator for the "location_link" field. It is called by the builders before save.
	LocationLinkValidator func(string) error
	// QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	QuantityValidator func(uint32) error
	// DefaultIsUrgent holds the default value on creation for the "is_urgent" field.
	DefaultIsUrgent bool
	// DefaultIsBroadcast holds the default value on creation for the "is_broadcast" field.
	DefaultIsBroadcast bool
	// DefaultVisitorFormFilled holds the default value on creation for the "visitor_form_filled" field.
	DefaultVisitorFormFilled bool
	// DefaultTrustNoticeGiven holds the default value on creation for the "trust_notice_given" field.
	DefaultTrustNoticeGiven bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Category defines the type for the "category" enum field.
type Category string

// CategoryOther is the default value of the Category enum.
const DefaultCategory = CategoryOther

// Category values.
const (
	CategoryFurniture   Category = "furniture"
	CategoryClothes     Category = "clothes"
	CategoryElectronics Category = "electronics"
	CategoryFood        Category = "food"
	CategoryBooks       Category = "books"
	CategoryOther       Category = "other"
)

func (c Category) String() string {
	return string(c)
}

// CategoryValidator is a validator for the "category" field enum values. It is called by the builders before save.
func CategoryValidator(c Category) error {
	switch c {
	case CategoryFurniture, CategoryClothes, CategoryElectronics, CategoryFood, CategoryBooks, CategoryOther:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for category field: %q", c)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusAssigned is the default value of the Status enum.
const DefaultStatus = StatusAssigned

// Status values.
const (
	StatusAssigned   Status = "assigned"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusAssigned, StatusInProgress, StatusCompleted, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Task queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDonorName orders the results by the donor_name field.
func ByDonorName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDonorName, opts...).ToFunc()
}

// ByAddress orders the results by the address field.
func ByAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAddress, opts...).ToFunc()
}

// ByPhoneNumbers orders the results by the phone_numbers field.
func ByPhoneNumbers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhoneNumbers, opts...).ToFunc()
}

// ByLocationLink orders the results by the location_link field.
func ByLocationLink(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocationLink, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByQuantity orders the results by the quantity field.
func ByQuantity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuantity, opts...).ToFunc()
}

// ByIsUrgent orders the results by the is_urgent field.
func ByIsUrgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsUrgent, opts...).ToFunc()
}

// ByIsBroadcast orders the results by the is_broadcast field.
func ByIsBroadcast(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsBroadcast, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByVisitorFormFilled orders the results by the visitor_form_filled field.
func ByVisitorFormFilled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVisitorFormFilled, opts...).ToFunc()
}

// ByTrustNoticeGiven orders the results by the trust_notice_given field.
func ByTrustNoticeGiven(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrustNoticeGiven, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByAssignedTo orders the results by the assigned_to field.
func ByAssignedTo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignedTo, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByCreatorField orders the results by creator field.
func ByCreatorField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCreatorStep(), sql.OrderByField(field, opts...))
	}
}

// ByAssigneeField orders the results by assignee field.
func ByAssigneeField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAssigneeStep(), sql.OrderByField(field, opts...))
	}
}

// ByItemsCount orders the results by items count.
func ByItemsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newItemsStep(), opts...)
	}
}

// ByItems orders the results by items terms.
func ByItems(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newItemsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPhotosCount orders the results by photos count.
func ByPhotosCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPhotosStep(), opts...)
	}
}

// ByPhotos orders the results by photos terms.
func ByPhotos(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPhotosStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByLocationLogsCount orders the results by location_logs count.
func ByLocationLogsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLocationLogsStep(), opts...)
	}
}

// ByLocationLogs orders the results by location_logs terms.
func ByLocationLogs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLocationLogsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCreatorStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CreatorInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CreatorTable, CreatorColumn),
	)
}
func newAssigneeStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AssigneeInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AssigneeTable, AssigneeColumn),
	)
}
func newItemsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ItemsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
	)
}
func newPhotosStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PhotosInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PhotosTable, PhotosColumn),
	)
}
func newLocationLogsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LocationLogsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LocationLogsTable, LocationLogsColumn),
	)
}
