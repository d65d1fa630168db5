// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/omerfdemir/pickuptracker/ent/generated/item"
	"github.com/omerfdemir/pickuptracker/ent/generated/locationlog"
	"github.com/omerfdemir/pickuptracker/ent/generated/predicate"
	"github.com/omerfdemir/pickuptracker/ent/generated/task"
	"github.com/omerfdemir/pickuptracker/ent/generated/taskphoto"
	"github.com/omerfdemir/pickuptracker/ent/generated/user"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (tu *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	tu.mutation.Where(ps...)
	return tu
}

// SetDonorName sets the "donor_name" field.
func (tu *TaskUpdate) SetDonorName(s string) *TaskUpdate {
	tu.mutation.SetDonorName(s)
	return tu
}

// SetNillableDonorName sets the "donor_name" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableDonorName(s *string) *TaskUpdate {
	if s != nil {
		tu.SetDonorName(*s)
	}
	return tu
}

// SetAddress sets the "address" field.
func (tu *TaskUpdate) SetAddress(s string) *TaskUpdate {
	tu.mutation.SetAddress(s)
	return tu
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableAddress(s *string) *TaskUpdate {
	if s != nil {
		tu.SetAddress(*s)
	}
	return tu
}

// ClearAddress clears the value of the "address" field.
func (tu *TaskUpdate) ClearAddress() *TaskUpdate {
	tu.mutation.ClearAddress()
	return tu
}

// SetPhoneNumbers sets the "phone_numbers" field.
func (tu *TaskUpdate) SetPhoneNumbers(s string) *TaskUpdate {
	tu.mutation.SetPhoneNumbers(s)
	return tu
}

// SetNillablePhoneNumbers sets the "phone_numbers" field if the given value is not nil.
func (tu *TaskUpdate) SetNillablePhoneNumbers(s *string) *TaskUpdate {
	if s != nil {
		tu.SetPhoneNumbers(*s)
	}
	return tu
}

// ClearPhoneNumbers clears the value of the "phone_numbers" field.
func (tu *TaskUpdate) ClearPhoneNumbers() *TaskUpdate {
	tu.mutation.ClearPhoneNumbers()
	return tu
}

// SetLocationLink sets the "location_link" field.
func (tu *TaskUpdate) SetLocationLink(s string) *TaskUpdate {
	tu.mutation.SetLocationLink(s)
	return tu
}

// SetNillableLocationLink sets the "location_link" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableLocationLink(s *string) *TaskUpdate {
	if s != nil {
		tu.SetLocationLink(*s)
	}
	return tu
}

// ClearLocationLink clears the value of the "location_link" field.
func (tu *TaskUpdate) ClearLocationLink() *TaskUpdate {
	tu.mutation.ClearLocationLink()
	return tu
}

// SetCategory sets the "category" field.
func (tu *TaskUpdate) SetCategory(t task.Category) *TaskUpdate {
	tu.mutation.SetCategory(t)
	return tu
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableCategory(t *task.Category) *TaskUpdate {
	if t != nil {
		tu.SetCategory(*t)
	}
	return tu
}

// SetQuantity sets the "quantity" field.
func (tu *TaskUpdate) SetQuantity(u uint32) *TaskUpdate {
	tu.mutation.ResetQuantity()
	tu.mutation.SetQuantity(u)
	return tu
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableQuantity(u *uint32) *TaskUpdate {
	if u != nil {
		tu.SetQuantity(*u)
	}
	return tu
}

// AddQuantity adds u to the "quantity" field.
func (tu *TaskUpdate) AddQuantity(u int32) *TaskUpdate {
	tu.mutation.AddQuantity(u)
	return tu
}

// ClearQuantity clears the value of the "quantity" field.
func (tu *TaskUpdate) ClearQuantity() *TaskUpdate {
	tu.mutation.ClearQuantity()
	return tu
}

// SetIsUrgent sets the "is_urgent" field.
func (tu *TaskUpdate) SetIsUrgent(b bool) *TaskUpdate {
	tu.mutation.SetIsUrgent(b)
	return tu
}

// SetNillableIsUrgent sets the "is_urgent" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableIsUrgent(b *bool) *TaskUpdate {
	if b != nil {
		tu.SetIsUrgent(*b)
	}
	return tu
}

// SetIsBroadcast sets the "is_broadcast" field.
func (tu *TaskUpdate) SetIsBroadcast(b bool) *TaskUpdate {
	tu.mutation.SetIsBroadcast(b)
	return tu
}

// SetNillableIsBroadcast sets the "is_broadcast" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableIsBroadcast(b *bool) *TaskUpdate {
	if b != nil {
		tu.SetIsBroadcast(*b)
	}
	return tu
}

// SetStatus sets the "status" field.
func (tu *TaskUpdate) SetStatus(t task.Status) *TaskUpdate {
	tu.mutation.SetStatus(t)
	return tu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableStatus(t *task.Status) *TaskUpdate {
	if t != nil {
		tu.SetStatus(*t)
	}
	return tu
}

// SetVisitorFormFilled sets the "visitor_form_filled" field.
func (tu *TaskUpdate) SetVisitorFormFilled(b bool) *TaskUpdate {
	tu.mutation.SetVisitorFormFilled(b)
	return tu
}

// SetNillableVisitorFormFilled sets the "visitor_form_filled" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableVisitorFormFilled(b *bool) *TaskUpdate {
	if b != nil {
		tu.SetVisitorFormFilled(*b)
	}
	return tu
}

// SetTrustNoticeGiven sets the "trust_notice_given" field.
func (tu *TaskUpdate) SetTrustNoticeGiven(b bool) *TaskUpdate {
	tu.mutation.SetTrustNoticeGiven(b)
	return tu
}

// SetNillableTrustNoticeGiven sets the "trust_notice_given" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableTrustNoticeGiven(b *bool) *TaskUpdate {
	if b != nil {
		tu.SetTrustNoticeGiven(*b)
	}
	return tu
}

// SetCreatedBy sets the "created_by" field.
func (tu *TaskUpdate) SetCreatedBy(u uuid.UUID) *TaskUpdate {
	tu.mutation.SetCreatedBy(u)
	return tu
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableCreatedBy(u *uuid.UUID) *TaskUpdate {
	if u != nil {
		tu.SetCreatedBy(*u)
	}
	return tu
}

// SetAssignedTo sets the "assigned_to" field.
func (tu *TaskUpdate) SetAssignedTo(u uuid.UUID) *TaskUpdate {
	tu.mutation.SetAssignedTo(u)
	return tu
}

// SetNillableAssignedTo sets the "assigned_to" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableAssignedTo(u *uuid.UUID) *TaskUpdate {
	if u != nil {
		tu.SetAssignedTo(*u)
	}
	return tu
}

// ClearAssignedTo clears the value of the "assigned_to" field.
func (tu *TaskUpdate) ClearAssignedTo() *TaskUpdate {
	tu.mutation.ClearAssignedTo()
	return tu
}

// SetUpdatedAt sets the "updated_at" field.
func (tu *TaskUpdate) SetUpdatedAt(t time.Time) *TaskUpdate {
	tu.mutation.SetUpdatedAt(t)
	return tu
}

// SetCompletedAt sets the "completed_at" field.
func (tu *TaskUpdate) SetCompletedAt(t time.Time) *TaskUpdate {
	tu.mutation.SetCompletedAt(t)
	return tu
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableCompletedAt(t *time.Time) *TaskUpdate {
	if t != nil {
		tu.SetCompletedAt(*t)
	}
	return tu
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (tu *TaskUpdate) ClearCompletedAt() *TaskUpdate {
	tu.mutation.ClearCompletedAt()
	return tu
}

// SetCreatorID sets the "creator" edge to the User entity by ID.
func (tu *TaskUpdate) SetCreatorID(id uuid.UUID) *TaskUpdate {
	tu.mutation.SetCreatorID(id)
	return tu
}

// SetCreator sets the "creator" edge to the User entity.
func (tu *TaskUpdate) SetCreator(u *User) *TaskUpdate {
	return tu.SetCreatorID(u.ID)
}

// SetAssigneeID sets the "assignee" edge to the User entity by ID.
func (tu *TaskUpdate) SetAssigneeID(id uuid.UUID) *TaskUpdate {
	tu.mutation.SetAssigneeID(id)
	return tu
}

// SetNillableAssigneeID sets the "assignee" edge to the User entity by ID if the given value is not nil.
func (tu *TaskUpdate) SetNillableAssigneeID(id *uuid.UUID) *TaskUpdate {
	if id != nil {
		tu = tu.SetAssigneeID(*id)
	}
	return tu
}

// SetAssignee sets the "assignee" edge to the User entity.
func (tu *TaskUpdate) SetAssignee(u *User) *TaskUpdate {
	return tu.SetAssigneeID(u.ID)
}

// AddItemIDs adds the "items" edge to the Item entity by IDs.
func (tu *TaskUpdate) AddItemIDs(ids ...uuid.UUID) *TaskUpdate {
	tu.mutation.AddItemIDs(ids...)
	return tu
}

// AddItems adds the "items" edges to the Item entity.
func (tu *TaskUpdate) AddItems(i ...*Item) *TaskUpdate {
	ids := make([]uuid.UUID, len(i))
	for j := range i {
		ids[j] = i[j].ID
	}
	return tu.AddItemIDs(ids...)
}

// AddPhotoIDs adds the "photos" edge to the TaskPhoto entity by IDs.
func (tu *TaskUpdate) AddPhotoIDs(ids ...uuid.UUID) *TaskUpdate {
	tu.mutation.AddPhotoIDs(ids...)
	return tu
}

// AddPhotos adds the "photos" edges to the TaskPhoto entity.
func (tu *TaskUpdate) AddPhotos(t ...*TaskPhoto) *TaskUpdate {
	ids := make([]uuid.UUID, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return tu.AddPhotoIDs(ids...)
}

// AddLocationLogIDs adds the "location_logs" edge to the LocationLog entity by IDs.
func (tu *TaskUpdate) AddLocationLogIDs(ids ...uuid.UUID) *TaskUpdate {
	tu.mutation.AddLocationLogIDs(ids...)
	return tu
}

// AddLocationLogs adds the "location_logs" edges to the LocationLog entity.
func (tu *TaskUpdate) AddLocationLogs(l ...*LocationLog) *TaskUpdate {
	ids := make([]uuid.UUID, len(l))
	for i := range l {
		ids[i] = l[i].ID
	}
	return tu.AddLocationLogIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (tu *TaskUpdate) Mutation() *TaskMutation {
	return tu.mutation
}

// ClearCreator clears the "creator" edge to the User entity.
func (tu *TaskUpdate) ClearCreator() *TaskUpdate {
	tu.mutation.ClearCreator()
	return tu
}

// ClearAssignee clears the "assignee" edge to the User entity.
func (tu *TaskUpdate) ClearAssignee() *TaskUpdate {
	tu.mutation.ClearAssignee()
	return tu
}

// ClearItems clears all "items" edges to the Item entity.
func (tu *TaskUpdate) ClearItems() *TaskUpdate {
	tu.mutation.ClearItems()
	return tu
}

// RemoveItemIDs removes the "items" edge to Item entities by IDs.
func (tu *TaskUpdate) RemoveItemIDs(ids ...uuid.UUID) *TaskUpdate {
	tu.mutation.RemoveItemIDs(ids...)
	return tu
}

// RemoveItems removes "items" edges to Item entities.
func (tu *TaskUpdate) RemoveItems(i ...*Item) *TaskUpdate {
	ids := make([]uuid.UUID, len(i))
	for j := range i {
		ids[j] = i[j].ID
	}
	return tu.RemoveItemIDs(ids...)
}

// ClearPhotos clears all "photos" edges to the TaskPhoto entity.
func (tu *TaskUpdate) ClearPhotos() *TaskUpdate {
	tu.mutation.ClearPhotos()
	return tu
}

// RemovePhotoIDs removes the "photos" edge to TaskPhoto entities by IDs.
func (tu *TaskUpdate) RemovePhotoIDs(ids ...uuid.UUID) *TaskUpdate {
	tu.mutation.RemovePhotoIDs(ids...)
	return tu
}

// RemovePhotos removes "photos" edges to TaskPhoto entities.
func (tu *TaskUpdate) RemovePhotos(t ...*TaskPhoto) *TaskUpdate {
	ids := make([]uuid.UUID, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return tu.RemovePhotoIDs(ids...)
}

// ClearLocationLogs clears all "location_logs" edges to the LocationLog entity.
func (tu *TaskUpdate) ClearLocationLogs() *TaskUpdate {
	tu.mutation.ClearLocationLogs()
	return tu
}

// RemoveLocationLogIDs removes the "location_logs" edge to LocationLog entities by IDs.
func (tu *TaskUpdate) RemoveLocationLogIDs(ids ...uuid.UUID) *TaskUpdate {
	tu.mutation.RemoveLocationLogIDs(ids...)
	return tu
}

// RemoveLocationLogs removes "location_logs" edges to LocationLog entities.
func (tu *TaskUpdate) RemoveLocationLogs(l ...*LocationLog) *TaskUpdate {
	ids := make([]uuid.UUID, len(l))
	for i := range l {
		ids[i] = l[i].ID
	}
	return tu.RemoveLocationLogIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (tu *TaskUpdate) Save(ctx context.Context) (int, error) {
	tu.defaults()
	return withHooks(ctx, tu.sqlSave, tu.mutation, tu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tu *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := tu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (tu *TaskUpdate) Exec(ctx context.Context) error {
	_, err := tu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tu *TaskUpdate) ExecX(ctx context.Context) {
	if err := tu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tu *TaskUpdate) defaults() {
	if _, ok := tu.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		tu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tu *TaskUpdate) check() error {
	if v, ok := tu.mutation.DonorName(); ok {
		if err := task.DonorNameValidator(v); err != nil {
			return &ValidationError{Name: "donor_name", err: fmt.Errorf(`generated: validator failed for field "Task.donor_name": %w`, err)}
		}
	}
	if v, ok := tu.mutation.PhoneNumbers(); ok {
		if err := task.PhoneNumbersValidator(v); err != nil {
			return &ValidationError{Name: "phone_numbers", err: fmt.Errorf(`generated: validator failed for field "Task.phone_numbers": %w`, err)}
		}
	}
	if v, ok := tu.mutation.LocationLink(); ok {
		if err := task.LocationLinkValidator(v); err != nil {
			return &ValidationError{Name: "location_link", err: fmt.Errorf(`generated: validator failed for field "Task.location_link": %w`, err)}
		}
	}
	if v, ok := tu.mutation.Category(); ok {
		if err := task.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`generated: validator failed for field "Task.category": %w`, err)}
		}
	}
	if v, ok := tu.mutation.Quantity(); ok {
		if err := task.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`generated: validator failed for field "Task.quantity": %w`, err)}
		}
	}
	if v, ok := tu.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "Task.status": %w`, err)}
		}
	}
	if _, ok := tu.mutation.CreatorID(); tu.mutation.CreatorCleared() && !ok {
		return errors.New(`generated: clearing a required unique edge "Task.creator"`)
	}
	return nil
}

func (tu *TaskUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := tu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID))
	if ps := tu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tu.mutation.DonorName(); ok {
		_spec.SetField(task.FieldDonorName, field.TypeString, value)
	}
	if value, ok := tu.mutation.Address(); ok {
		_spec.SetField(task.FieldAddress, field.TypeString, value)
	}
	if tu.mutation.AddressCleared() {
		_spec.ClearField(task.FieldAddress, field.TypeString)
	}
	if value, ok := tu.mutation.PhoneNumbers(); ok {
		_spec.SetField(task.FieldPhoneNumbers, field.TypeString, value)
	}
	if tu.mutation.PhoneNumbersCleared() {
		_spec.ClearField(task.FieldPhoneNumbers, field.TypeString)
	}
	if value, ok := tu.mutation.LocationLink(); ok {
		_spec.SetField(task.FieldLocationLink, field.TypeString, value)
	}
	if tu.mutation.LocationLinkCleared() {
		_spec.ClearField(task.FieldLocationLink, field.TypeString)
	}
	if value, ok := tu.mutation.Category(); ok {
		_spec.SetField(task.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := tu.mutation.Quantity(); ok {
		_spec.SetField(task.FieldQuantity, field.TypeUint32, value)
	}
	if value, ok := tu.mutation.AddedQuantity(); ok {
		_spec.AddField(task.FieldQuantity, field.TypeUint32, value)
	}
	if tu.mutation.QuantityCleared() {
		_spec.ClearField(task.FieldQuantity, field.TypeUint32)
	}
	if value, ok := tu.mutation.IsUrgent(); ok {
		_spec.SetField(task.FieldIsUrgent, field.TypeBool, value)
	}
	if value, ok := tu.mutation.IsBroadcast(); ok {
		_spec.SetField(task.FieldIsBroadcast, field.TypeBool, value)
	}
	if value, ok := tu.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := tu.mutation.VisitorFormFilled(); ok {
		_spec.SetField(task.FieldVisitorFormFilled, field.TypeBool, value)
	}
	if value, ok := tu.mutation.TrustNoticeGiven(); ok {
		_spec.SetField(task.FieldTrustNoticeGiven, field.TypeBool, value)
	}
	if value, ok := tu.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := tu.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if tu.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if tu.mutation.CreatorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.CreatorTable,
			Columns: []string{task.CreatorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tu.mutation.CreatorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.CreatorTable,
			Columns: []string{task.CreatorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if tu.mutation.AssigneeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.AssigneeTable,
			Columns: []string{task.AssigneeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tu.mutation.AssigneeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.AssigneeTable,
			Columns: []string{task.AssigneeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if tu.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ItemsTable,
			Columns: []string{task.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(item.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tu.mutation.RemovedItemsIDs(); len(nodes) > 0 && !tu.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ItemsTable,
			Columns: []string{task.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(item.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tu.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ItemsTable,
			Columns: []string{task.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(item.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if tu.mutation.PhotosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.PhotosTable,
			Columns: []string{task.PhotosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskphoto.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tu.mutation.RemovedPhotosIDs(); len(nodes) > 0 && !tu.mutation.PhotosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.PhotosTable,
			Columns: []string{task.PhotosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskphoto.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tu.mutation.PhotosIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.PhotosTable,
			Columns: []string{task.PhotosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskphoto.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if tu.mutation.LocationLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.LocationLogsTable,
			Columns: []string{task.LocationLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(locationlog.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tu.mutation.RemovedLocationLogsIDs(); len(nodes) > 0 && !tu.mutation.LocationLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.LocationLogsTable,
			Columns: []string{task.LocationLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(locationlog.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tu.mutation.LocationLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.LocationLogsTable,
			Columns: []string{task.LocationLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(locationlog.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, tu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	tu.mutation.done = true
	return n, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetDonorName sets the "donor_name" field.
func (tuo *TaskUpdateOne) SetDonorName(s string) *TaskUpdateOne {
	tuo.mutation.SetDonorName(s)
	return tuo
}

// SetNillableDonorName sets the "donor_name" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableDonorName(s *string) *TaskUpdateOne {
	if s != nil {
		tuo.SetDonorName(*s)
	}
	return tuo
}

// SetAddress sets the "address" field.
func (tuo *TaskUpdateOne) SetAddress(s string) *TaskUpdateOne {
	tuo.mutation.SetAddress(s)
	return tuo
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableAddress(s *string) *TaskUpdateOne {
	if s != nil {
		tuo.SetAddress(*s)
	}
	return tuo
}

// ClearAddress clears the value of the "address" field.
func (tuo *TaskUpdateOne) ClearAddress() *TaskUpdateOne {
	tuo.mutation.ClearAddress()
	return tuo
}

// SetPhoneNumbers sets the "phone_numbers" field.
func (tuo *TaskUpdateOne) SetPhoneNumbers(s string) *TaskUpdateOne {
	tuo.mutation.SetPhoneNumbers(s)
	return tuo
}

// SetNillablePhoneNumbers sets the "phone_numbers" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillablePhoneNumbers(s *string) *TaskUpdateOne {
	if s != nil {
		tuo.SetPhoneNumbers(*s)
	}
	return tuo
}

// ClearPhoneNumbers clears the value of the "phone_numbers" field.
func (tuo *TaskUpdateOne) ClearPhoneNumbers() *TaskUpdateOne {
	tuo.mutation.ClearPhoneNumbers()
	return tuo
}

// SetLocationLink sets the "location_link" field.
func (tuo *TaskUpdateOne) SetLocationLink(s string) *TaskUpdateOne {
	tuo.mutation.SetLocationLink(s)
	return tuo
}

// SetNillableLocationLink sets the "location_link" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableLocationLink(s *string) *TaskUpdateOne {
	if s != nil {
		tuo.SetLocationLink(*s)
	}
	return tuo
}

// ClearLocationLink clears the value of the "location_link" field.
func (tuo *TaskUpdateOne) ClearLocationLink() *TaskUpdateOne {
	tuo.mutation.ClearLocationLink()
	return tuo
}

// SetCategory sets the "category" field.
func (tuo *TaskUpdateOne) SetCategory(t task.Category) *TaskUpdateOne {
	tuo.mutation.SetCategory(t)
	return tuo
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableCategory(t *task.Category) *TaskUpdateOne {
	if t != nil {
		tuo.SetCategory(*t)
	}
	return tuo
}

// SetQuantity sets the "quantity" field.
func (tuo *TaskUpdateOne) SetQuantity(u uint32) *TaskUpdateOne {
	tuo.mutation.ResetQuantity()
	tuo.mutation.SetQuantity(u)
	return tuo
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableQuantity(u *uint32) *TaskUpdateOne {
	if u != nil {
		tuo.SetQuantity(*u)
	}
	return tuo
}

// AddQuantity adds u to the "quantity" field.
func (tuo *TaskUpdateOne) AddQuantity(u int32) *TaskUpdateOne {
	tuo.mutation.AddQuantity(u)
	return tuo
}

// ClearQuantity clears the value of the "quantity" field.
func (tuo *TaskUpdateOne) ClearQuantity() *TaskUpdateOne {
	tuo.mutation.ClearQuantity()
	return tuo
}

// SetIsUrgent sets the "is_urgent" field.
func (tuo *TaskUpdateOne) SetIsUrgent(b bool) *TaskUpdateOne {
	tuo.mutation.SetIsUrgent(b)
	return tuo
}

// SetNillableIsUrgent sets the "is_urgent" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableIsUrgent(b *bool) *TaskUpdateOne {
	if b != nil {
		tuo.SetIsUrgent(*b)
	}
	return tuo
}

// SetIsBroadcast sets the "is_broadcast" field.
func (tuo *TaskUpdateOne) SetIsBroadcast(b bool) *TaskUpdateOne {
	tuo.mutation.SetIsBroadcast(b)
	return tuo
}

// SetNillableIsBroadcast sets the "is_broadcast" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableIsBroadcast(b *bool) *TaskUpdateOne {
	if b != nil {
		tuo.SetIsBroadcast(*b)
	}
	return tuo
}

// SetStatus sets the "status" field.
func (tuo *TaskUpdateOne) SetStatus(t task.Status) *TaskUpdateOne {
	tuo.mutation.SetStatus(t)
	return tuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableStatus(t *task.Status) *TaskUpdateOne {
	if t != nil {
		tuo.SetStatus(*t)
	}
	return tuo
}

// SetVisitorFormFilled sets the "visitor_form_filled" field.
func (tuo *TaskUpdateOne) SetVisitorFormFilled(b bool) *TaskUpdateOne {
	tuo.mutation.SetVisitorFormFilled(b)
	return tuo
}

// SetNillableVisitorFormFilled sets the "visitor_form_filled" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableVisitorFormFilled(b *bool) *TaskUpdateOne {
	if b != nil {
		tuo.SetVisitorFormFilled(*b)
	}
	return tuo
}

// SetTrustNoticeGiven sets the "trust_notice_given" field.
func (tuo *TaskUpdateOne) SetTrustNoticeGiven(b bool) *TaskUpdateOne {
	tuo.mutation.SetTrustNoticeGiven(b)
	return tuo
}

// SetNillableTrustNoticeGiven sets the "trust_notice_given" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableTrustNoticeGiven(b *bool) *TaskUpdateOne {
	if b != nil {
		tuo.SetTrustNoticeGiven(*b)
	}
	return tuo
}

// SetCreatedBy sets the "created_by" field.
func (tuo *TaskUpdateOne) SetCreatedBy(u uuid.UUID) *TaskUpdateOne {
	tuo.mutation.SetCreatedBy(u)
	return tuo
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableCreatedBy(u *uuid.UUID) *TaskUpdateOne {
	if u != nil {
		tuo.SetCreatedBy(*u)
	}
	return tuo
}

// SetAssignedTo sets the "assigned_to" field.
func (tuo *TaskUpdateOne) SetAssignedTo(u uuid.UUID) *TaskUpdateOne {
	tuo.mutation.SetAssignedTo(u)
	return tuo
}

// SetNillableAssignedTo sets the "assigned_to" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableAssignedTo(u *uuid.UUID) *TaskUpdateOne {
	if u != nil {
		tuo.SetAssignedTo(*u)
	}
	return tuo
}

// ClearAssignedTo clears the value of the "assigned_to" field.
func (tuo *TaskUpdateOne) ClearAssignedTo() *TaskUpdateOne {
	tuo.mutation.ClearAssignedTo()
	return tuo
}

// SetUpdatedAt sets the "updated_at" field.
func (tuo *TaskUpdateOne) SetUpdatedAt(t time.Time) *TaskUpdateOne {
	tuo.mutation.SetUpdatedAt(t)
	return tuo
}

// SetCompletedAt sets the "completed_at" field.
func (tuo *TaskUpdateOne) SetCompletedAt(t time.Time) *TaskUpdateOne {
	tuo.mutation.SetCompletedAt(t)
	return tuo
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableCompletedAt(t *time.Time) *TaskUpdateOne {
	if t != nil {
		tuo.SetCompletedAt(*t)
	}
	return tuo
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (tuo *TaskUpdateOne) ClearCompletedAt() *TaskUpdateOne {
	tuo.mutation.ClearCompletedAt()
	return tuo
}

// SetCreatorID sets the "creator" edge to the User entity by ID.
func (tuo *TaskUpdateOne) SetCreatorID(id uuid.UUID) *TaskUpdateOne {
	tuo.mutation.SetCreatorID(id)
	return tuo
}

// SetCreator sets the "creator" edge to the User entity.
func (tuo *TaskUpdateOne) SetCreator(u *User) *TaskUpdateOne {
	return tuo.SetCreatorID(u.ID)
}

// SetAssigneeID sets the "assignee" edge to the User entity by ID.
func (tuo *TaskUpdateOne) SetAssigneeID(id uuid.UUID) *TaskUpdateOne {
	tuo.mutation.SetAssigneeID(id)
	return tuo
}

// SetNillableAssigneeID sets the "assignee" edge to the User entity by ID if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableAssigneeID(id *uuid.UUID) *TaskUpdateOne {
	if id != nil {
		tuo = tuo.SetAssigneeID(*id)
	}
	return tuo
}

// SetAssignee sets the "assignee" edge to the User entity.
func (tuo *TaskUpdateOne) SetAssignee(u *User) *TaskUpdateOne {
	return tuo.SetAssigneeID(u.ID)
}

// AddItemIDs adds the "items" edge to the Item entity by IDs.
func (tuo *TaskUpdateOne) AddItemIDs(ids ...uuid.UUID) *TaskUpdateOne {
	tuo.mutation.AddItemIDs(ids...)
	return tuo
}

// AddItems adds the "items" edges to the Item entity.
func (tuo *TaskUpdateOne) AddItems(i ...*Item) *TaskUpdateOne {
	ids := make([]uuid.UUID, len(i))
	for j := range i {
		ids[j] = i[j].ID
	}
	return tuo.AddItemIDs(ids...)
}

// AddPhotoIDs adds the "photos" edge to the TaskPhoto entity by IDs.
func (tuo *TaskUpdateOne) AddPhotoIDs(ids ...uuid.UUID) *TaskUpdateOne {
	tuo.mutation.AddPhotoIDs(ids...)
	return tuo
}

// AddPhotos adds the "photos" edges to the TaskPhoto entity.
func (tuo *TaskUpdateOne) AddPhotos(t ...*TaskPhoto) *TaskUpdateOne {
	ids := make([]uuid.UUID, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return tuo.AddPhotoIDs(ids...)
}

// AddLocationLogIDs adds the "location_logs" edge to the LocationLog entity by IDs.
func (tuo *TaskUpdateOne) AddLocationLogIDs(ids ...uuid.UUID) *TaskUpdateOne {
	tuo.mutation.AddLocationLogIDs(ids...)
	return tuo
}

// AddLocationLogs adds the "location_logs" edges to the LocationLog entity.
func (tuo *TaskUpdateOne) AddLocationLogs(l ...*LocationLog) *TaskUpdateOne {
	ids := make([]uuid.UUID, len(l))
	for i := range l {
		ids[i] = l[i].ID
	}
	return tuo.AddLocationLogIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (tuo *TaskUpdateOne) Mutation() *TaskMutation {
	return tuo.mutation
}

// ClearCreator clears the "creator" edge to the User entity.
func (tuo *TaskUpdateOne) ClearCreator() *TaskUpdateOne {
	tuo.mutation.ClearCreator()
	return tuo
}

// ClearAssignee clears the "assignee" edge to the User entity.
func (tuo *TaskUpdateOne) ClearAssignee() *TaskUpdateOne {
	tuo.mutation.ClearAssignee()
	return tuo
}

// ClearItems clears all "items" edges to the Item entity.
func (tuo *TaskUpdateOne) ClearItems() *TaskUpdateOne {
	tuo.mutation.ClearItems()
	return tuo
}

// RemoveItemIDs removes the "items" edge to Item entities by IDs.
func (tuo *TaskUpdateOne) RemoveItemIDs(ids ...uuid.UUID) *TaskUpdateOne {
	tuo.mutation.RemoveItemIDs(ids...)
	return tuo
}

// RemoveItems removes "items" edges to Item entities.
func (tuo *TaskUpdateOne) RemoveItems(i ...*Item) *TaskUpdateOne {
	ids := make([]uuid.UUID, len(i))
	for j := range i {
		ids[j] = i[j].ID
	}
	return tuo.RemoveItemIDs(ids...)
}

// ClearPhotos clears all "photos" edges to the TaskPhoto entity.
func (tuo *TaskUpdateOne) ClearPhotos() *TaskUpdateOne {
	tuo.mutation.ClearPhotos()
	return tuo
}

// RemovePhotoIDs removes the "photos" edge to TaskPhoto entities by IDs.
func (tuo *TaskUpdateOne) RemovePhotoIDs(ids ...uuid.UUID) *TaskUpdateOne {
	tuo.mutation.RemovePhotoIDs(ids...)
	return tuo
}

// RemovePhotos removes "photos" edges to TaskPhoto entities.
func (tuo *TaskUpdateOne) RemovePhotos(t ...*TaskPhoto) *TaskUpdateOne {
	ids := make([]uuid.UUID, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return tuo.RemovePhotoIDs(ids...)
}

// ClearLocationLogs clears all "location_logs" edges to the LocationLog entity.
func (tuo *TaskUpdateOne) ClearLocationLogs() *TaskUpdateOne {
	tuo.mutation.ClearLocationLogs()
	return tuo
}

// RemoveLocationLogIDs removes the "location_logs" edge to LocationLog entities by IDs.
func (tuo *TaskUpdateOne) RemoveLocationLogIDs(ids ...uuid.UUID) *TaskUpdateOne {
	tuo.mutation.RemoveLocationLogIDs(ids...)
	return tuo
}

// RemoveLocationLogs removes "location_logs" edges to LocationLog entities.
func (tuo *TaskUpdateOne) RemoveLocationLogs(l ...*LocationLog) *TaskUpdateOne {
	ids := make([]uuid.UUID, len(l))
	for i := range l {
		ids[i] = l[i].ID
	}
	return tuo.RemoveLocationLogIDs(ids...)
}

// Where appends a list predicates to the TaskUpdate builder.
func (tuo *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	tuo.mutation.Where(ps...)
	return tuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (tuo *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	tuo.fields = append([]string{field}, fields...)
	return tuo
}

// Save executes the query and returns the updated Task entity.
func (tuo *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	tuo.defaults()
	return withHooks(ctx, tuo.sqlSave, tuo.mutation, tuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tuo *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := tuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (tuo *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := tuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tuo *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := tuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tuo *TaskUpdateOne) defaults() {
	if _, ok := tuo.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		tuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tuo *TaskUpdateOne) check() error {
	if v, ok := tuo.mutation.DonorName(); ok {
		if err := task.DonorNameValidator(v); err != nil {
			return &ValidationError{Name: "donor_name", err: fmt.Errorf(`generated: validator failed for field "Task.donor_name": %w`, err)}
		}
	}
	if v, ok := tuo.mutation.PhoneNumbers(); ok {
		if err := task.PhoneNumbersValidator(v); err != nil {
			return &ValidationError{Name: "phone_numbers", err: fmt.Errorf(`generated: validator failed for field "Task.phone_numbers": %w`, err)}
		}
	}
	if v, ok := tuo.mutation.LocationLink(); ok {
		if err := task.LocationLinkValidator(v); err != nil {
			return &ValidationError{Name: "location_link", err: fmt.Errorf(`generated: validator failed for field "Task.location_link": %w`, err)}
		}
	}
	if v, ok := tuo.mutation.Category(); ok {
		if err := task.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`generated: validator failed for field "Task.category": %w`, err)}
		}
	}
	if v, ok := tuo.mutation.Quantity(); ok {
		if err := task.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`generated: validator failed for field "Task.quantity": %w`, err)}
		}
	}
	if v, ok := tuo.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "Task.status": %w`, err)}
		}
	}
	if _, ok := tuo.mutation.CreatorID(); tuo.mutation.CreatorCleared() && !ok {
		return errors.New(`generated: clearing a required unique edge "Task.creator"`)
	}
	return nil
}

func (tuo *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := tuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID))
	id, ok := tuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := tuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != task.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := tuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tuo.mutation.DonorName(); ok {
		_spec.SetField(task.FieldDonorName, field.TypeString, value)
	}
	if value, ok := tuo.mutation.Address(); ok {
		_spec.SetField(task.FieldAddress, field.TypeString, value)
	}
	if tuo.mutation.AddressCleared() {
		_spec.ClearField(task.FieldAddress, field.TypeString)
	}
	if value, ok := tuo.mutation.PhoneNumbers(); ok {
		_spec.SetField(task.FieldPhoneNumbers, field.TypeString, value)
	}
	if tuo.mutation.PhoneNumbersCleared() {
		_spec.ClearField(task.FieldPhoneNumbers, field.TypeString)
	}
	if value, ok := tuo.mutation.LocationLink(); ok {
		_spec.SetField(task.FieldLocationLink, field.TypeString, value)
	}
	if tuo.mutation.LocationLinkCleared() {
		_spec.ClearField(task.FieldLocationLink, field.TypeString)
	}
	if value, ok := tuo.mutation.Category(); ok {
		_spec.SetField(task.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := tuo.mutation.Quantity(); ok {
		_spec.SetField(task.FieldQuantity, field.TypeUint32, value)
	}
	if value, ok := tuo.mutation.AddedQuantity(); ok {
		_spec.AddField(task.FieldQuantity, field.TypeUint32, value)
	}
	if tuo.mutation.QuantityCleared() {
		_spec.ClearField(task.FieldQuantity, field.TypeUint32)
	}
	if value, ok := tuo.mutation.IsUrgent(); ok {
		_spec.SetField(task.FieldIsUrgent, field.TypeBool, value)
	}
	if value, ok := tuo.mutation.IsBroadcast(); ok {
		_spec.SetField(task.FieldIsBroadcast, field.TypeBool, value)
	}
	if value, ok := tuo.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := tuo.mutation.VisitorFormFilled(); ok {
		_spec.SetField(task.FieldVisitorFormFilled, field.TypeBool, value)
	}
	if value, ok := tuo.mutation.TrustNoticeGiven(); ok {
		_spec.SetField(task.FieldTrustNoticeGiven, field.TypeBool, value)
	}
	if value, ok := tuo.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := tuo.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if tuo.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if tuo.mutation.CreatorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.CreatorTable,
			Columns: []string{task.CreatorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tuo.mutation.CreatorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.CreatorTable,
			Columns: []string{task.CreatorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if tuo.mutation.AssigneeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.AssigneeTable,
			Columns: []string{task.AssigneeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tuo.mutation.AssigneeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.AssigneeTable,
			Columns: []string{task.AssigneeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if tuo.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ItemsTable,
			Columns: []string{task.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(item.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tuo.mutation.RemovedItemsIDs(); len(nodes) > 0 && !tuo.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ItemsTable,
			Columns: []string{task.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(item.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tuo.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ItemsTable,
			Columns: []string{task.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(item.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if tuo.mutation.PhotosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.PhotosTable,
			Columns: []string{task.PhotosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskphoto.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tuo.mutation.RemovedPhotosIDs(); len(nodes) > 0 && !tuo.mutation.PhotosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.PhotosTable,
			Columns: []string{task.PhotosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskphoto.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tuo.mutation.PhotosIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.PhotosTable,
			Columns: []string{task.PhotosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskphoto.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if tuo.mutation.LocationLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.LocationLogsTable,
			Columns: []string{task.LocationLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(locationlog.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tuo.mutation.RemovedLocationLogsIDs(); len(nodes) > 0 && !tuo.mutation.LocationLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.LocationLogsTable,
			Columns: []string{task.LocationLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(locationlog.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tuo.mutation.LocationLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.LocationLogsTable,
			Columns: []string{task.LocationLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(locationlog.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Task{config: tuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, tuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	tuo.mutation.done = true
	return _node, nil
}
