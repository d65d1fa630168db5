// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/omerfdemir/pickuptracker/ent/generated/item"
	"github.com/omerfdemir/pickuptracker/ent/generated/locationlog"
	"github.com/omerfdemir/pickuptracker/ent/generated/task"
	"github.com/omerfdemir/pickuptracker/ent/generated/taskphoto"
	"github.com/omerfdemir/pickuptracker/ent/generated/user"
)

// TaskCreate is the builder for creating a Task entity.
type TaskCreate struct {
	config
	mutation *TaskMutation
	hooks    []Hook
}

// SetDonorName sets the "donor_name" field.
func (tc *TaskCreate) SetDonorName(s string) *TaskCreate {
	tc.mutation.SetDonorName(s)
	return tc
}

// SetAddress sets the "address" field.
func (tc *TaskCreate) SetAddress(s string) *TaskCreate {
	tc.mutation.SetAddress(s)
	return tc
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (tc *TaskCreate) SetNillableAddress(s *string) *TaskCreate {
	if s != nil {
		tc.SetAddress(*s)
	}
	return tc
}

// SetPhoneNumbers sets the "phone_numbers" field.
func (tc *TaskCreate) SetPhoneNumbers(s string) *TaskCreate {
	tc.mutation.SetPhoneNumbers(s)
	return tc
}

// SetNillablePhoneNumbers sets the "phone_numbers" field if the given value is not nil.
func (tc *TaskCreate) SetNillablePhoneNumbers(s *string) *TaskCreate {
	if s != nil {
		tc.SetPhoneNumbers(*s)
	}
	return tc
}

// SetLocationLink sets the "location_link" field.
func (tc *TaskCreate) SetLocationLink(s string) *TaskCreate {
	tc.mutation.SetLocationLink(s)
	return tc
}

// SetNillableLocationLink sets the "location_link" field if the given value is not nil.
func (tc *TaskCreate) SetNillableLocationLink(s *string) *TaskCreate {
	if s != nil {
		tc.SetLocationLink(*s)
	}
	return tc
}

// SetCategory sets the "category" field.
func (tc *TaskCreate) SetCategory(t task.Category) *TaskCreate {
	tc.mutation.SetCategory(t)
	return tc
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (tc *TaskCreate) SetNillableCategory(t *task.Category) *TaskCreate {
	if t != nil {
		tc.SetCategory(*t)
	}
	return tc
}

// SetQuantity sets the "quantity" field.
func (tc *TaskCreate) SetQuantity(u uint32) *TaskCreate {
	tc.mutation.SetQuantity(u)
	return tc
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (tc *TaskCreate) SetNillableQuantity(u *uint32) *TaskCreate {
	if u != nil {
		tc.SetQuantity(*u)
	}
	return tc
}

// SetIsUrgent sets the "is_urgent" field.
func (tc *TaskCreate) SetIsUrgent(b bool) *TaskCreate {
	tc.mutation.SetIsUrgent(b)
	return tc
}

// SetNillableIsUrgent sets the "is_urgent" field if the given value is not nil.
func (tc *TaskCreate) SetNillableIsUrgent(b *bool) *TaskCreate {
	if b != nil {
		tc.SetIsUrgent(*b)
	}
	return tc
}

// SetIsBroadcast sets the "is_broadcast" field.
func (tc *TaskCreate) SetIsBroadcast(b bool) *TaskCreate {
	tc.mutation.SetIsBroadcast(b)
	return tc
}

// SetNillableIsBroadcast sets the "is_broadcast" field if the given value is not nil.
func (tc *TaskCreate) SetNillableIsBroadcast(b *bool) *TaskCreate {
	if b != nil {
		tc.SetIsBroadcast(*b)
	}
	return tc
}

// SetStatus sets the "status" field.
func (tc *TaskCreate) SetStatus(t task.Status) *TaskCreate {
	tc.mutation.SetStatus(t)
	return tc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (tc *TaskCreate) SetNillableStatus(t *task.Status) *TaskCreate {
	if t != nil {
		tc.SetStatus(*t)
	}
	return tc
}

// SetVisitorFormFilled sets the "visitor_form_filled" field.
func (tc *TaskCreate) SetVisitorFormFilled(b bool) *TaskCreate {
	tc.mutation.SetVisitorFormFilled(b)
	return tc
}

// SetNillableVisitorFormFilled sets the "visitor_form_filled" field if the given value is not nil.
func (tc *TaskCreate) SetNillableVisitorFormFilled(b *bool) *TaskCreate {
	if b != nil {
		tc.SetVisitorFormFilled(*b)
	}
	return tc
}

// SetTrustNoticeGiven sets the "trust_notice_given" field.
func (tc *TaskCreate) SetTrustNoticeGiven(b bool) *TaskCreate {
	tc.mutation.SetTrustNoticeGiven(b)
	return tc
}

// SetNillableTrustNoticeGiven sets the "trust_notice_given" field if the given value is not nil.
func (tc *TaskCreate) SetNillableTrustNoticeGiven(b *bool) *TaskCreate {
	if b != nil {
		tc.SetTrustNoticeGiven(*b)
	}
	return tc
}

// SetCreatedBy sets the "created_by" field.
func (tc *TaskCreate) SetCreatedBy(u uuid.UUID) *TaskCreate {
	tc.mutation.SetCreatedBy(u)
	return tc
}

// SetAssignedTo sets the "assigned_to" field.
func (tc *TaskCreate) SetAssignedTo(u uuid.UUID) *TaskCreate {
	tc.mutation.SetAssignedTo(u)
	return tc
}

// SetNillableAssignedTo sets the "assigned_to" field if the given value is not nil.
func (tc *TaskCreate) SetNillableAssignedTo(u *uuid.UUID) *TaskCreate {
	if u != nil {
		tc.SetAssignedTo(*u)
	}
	return tc
}

// SetCreatedAt sets the "created_at" field.
func (tc *TaskCreate) SetCreatedAt(t time.Time) *TaskCreate {
	tc.mutation.SetCreatedAt(t)
	return tc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (tc *TaskCreate) SetNillableCreatedAt(t *time.Time) *TaskCreate {
	if t != nil {
		tc.SetCreatedAt(*t)
	}
	return tc
}

// SetUpdatedAt sets the "updated_at" field.
func (tc *TaskCreate) SetUpdatedAt(t time.Time) *TaskCreate {
	tc.mutation.SetUpdatedAt(t)
	return tc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (tc *TaskCreate) SetNillableUpdatedAt(t *time.Time) *TaskCreate {
	if t != nil {
		tc.SetUpdatedAt(*t)
	}
	return tc
}

// SetCompletedAt sets the "completed_at" field.
func (tc *TaskCreate) SetCompletedAt(t time.Time) *TaskCreate {
	tc.mutation.SetCompletedAt(t)
	return tc
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (tc *TaskCreate) SetNillableCompletedAt(t *time.Time) *TaskCreate {
	if t != nil {
		tc.SetCompletedAt(*t)
	}
	return tc
}

// SetID sets the "id" field.
func (tc *TaskCreate) SetID(u uuid.UUID) *TaskCreate {
	tc.mutation.SetID(u)
	return tc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (tc *TaskCreate) SetNillableID(u *uuid.UUID) *TaskCreate {
	if u != nil {
		tc.SetID(*u)
	}
	return tc
}

// SetCreatorID sets the "creator" edge to the User entity by ID.
func (tc *TaskCreate) SetCreatorID(id uuid.UUID) *TaskCreate {
	tc.mutation.SetCreatorID(id)
	return tc
}

// SetCreator sets the "creator" edge to the User entity.
func (tc *TaskCreate) SetCreator(u *User) *TaskCreate {
	return tc.SetCreatorID(u.ID)
}

// SetAssigneeID sets the "assignee" edge to the User entity by ID.
func (tc *TaskCreate) SetAssigneeID(id uuid.UUID) *TaskCreate {
	tc.mutation.SetAssigneeID(id)
	return tc
}

// SetNillableAssigneeID sets the "assignee" edge to the User entity by ID if the given value is not nil.
func (tc *TaskCreate) SetNillableAssigneeID(id *uuid.UUID) *TaskCreate {
	if id != nil {
		tc = tc.SetAssigneeID(*id)
	}
	return tc
}

// SetAssignee sets the "assignee" edge to the User entity.
func (tc *TaskCreate) SetAssignee(u *User) *TaskCreate {
	return tc.SetAssigneeID(u.ID)
}

// AddItemIDs adds the "items" edge to the Item entity by IDs.
func (tc *TaskCreate) AddItemIDs(ids ...uuid.UUID) *TaskCreate {
	tc.mutation.AddItemIDs(ids...)
	return tc
}

// AddItems adds the "items" edges to the Item entity.
func (tc *TaskCreate) AddItems(i ...*Item) *TaskCreate {
	ids := make([]uuid.UUID, len(i))
	for j := range i {
		ids[j] = i[j].ID
	}
	return tc.AddItemIDs(ids...)
}

// AddPhotoIDs adds the "photos" edge to the TaskPhoto entity by IDs.
func (tc *TaskCreate) AddPhotoIDs(ids ...uuid.UUID) *TaskCreate {
	tc.mutation.AddPhotoIDs(ids...)
	return tc
}

// AddPhotos adds the "photos" edges to the TaskPhoto entity.
func (tc *TaskCreate) AddPhotos(t ...*TaskPhoto) *TaskCreate {
	ids := make([]uuid.UUID, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return tc.AddPhotoIDs(ids...)
}

// AddLocationLogIDs adds the "location_logs" edge to the LocationLog entity by IDs.
func (tc *TaskCreate) AddLocationLogIDs(ids ...uuid.UUID) *TaskCreate {
	tc.mutation.AddLocationLogIDs(ids...)
	return tc
}

// AddLocationLogs adds the "location_logs" edges to the LocationLog entity.
func (tc *TaskCreate) AddLocationLogs(l ...*LocationLog) *TaskCreate {
	ids := make([]uuid.UUID, len(l))
	for i := range l {
		ids[i] = l[i].ID
	}
	return tc.AddLocationLogIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (tc *TaskCreate) Mutation() *TaskMutation {
	return tc.mutation
}

// Save creates the Task in the database.
func (tc *TaskCreate) Save(ctx context.Context) (*Task, error) {
	tc.defaults()
	return withHooks(ctx, tc.sqlSave, tc.mutation, tc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (tc *TaskCreate) SaveX(ctx context.Context) *Task {
	v, err := tc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tc *TaskCreate) Exec(ctx context.Context) error {
	_, err := tc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tc *TaskCreate) ExecX(ctx context.Context) {
	if err := tc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tc *TaskCreate) defaults() {
	if _, ok := tc.mutation.Category(); !ok {
		v := task.DefaultCategory
		tc.mutation.SetCategory(v)
	}
	if _, ok := tc.mutation.IsUrgent(); !ok {
		v := task.DefaultIsUrgent
		tc.mutation.SetIsUrgent(v)
	}
	if _, ok := tc.mutation.IsBroadcast(); !ok {
		v := task.DefaultIsBroadcast
		tc.mutation.SetIsBroadcast(v)
	}
	if _, ok := tc.mutation.Status(); !ok {
		v := task.DefaultStatus
		tc.mutation.SetStatus(v)
	}
	if _, ok := tc.mutation.VisitorFormFilled(); !ok {
		v := task.DefaultVisitorFormFilled
		tc.mutation.SetVisitorFormFilled(v)
	}
	if _, ok := tc.mutation.TrustNoticeGiven(); !ok {
		v := task.DefaultTrustNoticeGiven
		tc.mutation.SetTrustNoticeGiven(v)
	}
	if _, ok := tc.mutation.CreatedAt(); !ok {
		v := task.DefaultCreatedAt()
		tc.mutation.SetCreatedAt(v)
	}
	if _, ok := tc.mutation.UpdatedAt(); !ok {
		v := task.DefaultUpdatedAt()
		tc.mutation.SetUpdatedAt(v)
	}
	if _, ok := tc.mutation.ID(); !ok {
		v := task.DefaultID()
		tc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tc *TaskCreate) check() error {
	if _, ok := tc.mutation.DonorName(); !ok {
		return &ValidationError{Name: "donor_name", err: errors.New(`generated: missing required field "Task.donor_name"`)}
	}
	if v, ok := tc.mutation.DonorName(); ok {
		if err := task.DonorNameValidator(v); err != nil {
			return &ValidationError{Name: "donor_name", err: fmt.Errorf(`generated: validator failed for field "Task.donor_name": %w`, err)}
		}
	}
	if v, ok := tc.mutation.PhoneNumbers(); ok {
		if err := task.PhoneNumbersValidator(v); err != nil {
			return &ValidationError{Name: "phone_numbers", err: fmt.Errorf(`generated: validator failed for field "Task.phone_numbers": %w`, err)}
		}
	}
	if v, ok := tc.mutation.LocationLink(); ok {
		if err := task.LocationLinkValidator(v); err != nil {
			return &ValidationError{Name: "location_link", err: fmt.Errorf(`generated: validator failed for field "Task.location_link": %w`, err)}
		}
	}
	if _, ok := tc.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`generated: missing required field "Task.category"`)}
	}
	if v, ok := tc.mutation.Category(); ok {
		if err := task.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`generated: validator failed for field "Task.category": %w`, err)}
		}
	}
	if v, ok := tc.mutation.Quantity(); ok {
		if err := task.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`generated: validator failed for field "Task.quantity": %w`, err)}
		}
	}
	if _, ok := tc.mutation.IsUrgent(); !ok {
		return &ValidationError{Name: "is_urgent", err: errors.New(`generated: missing required field "Task.is_urgent"`)}
	}
	if _, ok := tc.mutation.IsBroadcast(); !ok {
		return &ValidationError{Name: "is_broadcast", err: errors.New(`generated: missing required field "Task.is_broadcast"`)}
	}
	if _, ok := tc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`generated: missing required field "Task.status"`)}
	}
	if v, ok := tc.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "Task.status": %w`, err)}
		}
	}
	if _, ok := tc.mutation.VisitorFormFilled(); !ok {
		return &ValidationError{Name: "visitor_form_filled", err: errors.New(`generated: missing required field "Task.visitor_form_filled"`)}
	}
	if _, ok := tc.mutation.TrustNoticeGiven(); !ok {
		return &ValidationError{Name: "trust_notice_given", err: errors.New(`generated: missing required field "Task.trust_notice_given"`)}
	}
	if _, ok := tc.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`generated: missing required field "Task.created_by"`)}
	}
	if _, ok := tc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`generated: missing required field "Task.created_at"`)}
	}
	if _, ok := tc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`generated: missing required field "Task.updated_at"`)}
	}
	if _, ok := tc.mutation.CreatorID(); !ok {
		return &ValidationError{Name: "creator", err: errors.New(`generated: missing required edge "Task.creator"`)}
	}
	return nil
}

func (tc *TaskCreate) sqlSave(ctx context.Context) (*Task, error) {
	if err := tc.check(); err != nil {
		return nil, err
	}
	_node, _spec := tc.createSpec()
	if err := sqlgraph.CreateNode(ctx, tc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	tc.mutation.id = &_node.ID
	tc.mutation.done = true
	return _node, nil
}

func (tc *TaskCreate) createSpec() (*Task, *sqlgraph.CreateSpec) {
	var (
		_node = &Task{config: tc.config}
		_spec = sqlgraph.NewCreateSpec(task.Table, sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID))
	)
	if id, ok := tc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := tc.mutation.DonorName(); ok {
		_spec.SetField(task.FieldDonorName, field.TypeString, value)
		_node.DonorName = value
	}
	if value, ok := tc.mutation.Address(); ok {
		_spec.SetField(task.FieldAddress, field.TypeString, value)
		_node.Address = value
	}
	if value, ok := tc.mutation.PhoneNumbers(); ok {
		_spec.SetField(task.FieldPhoneNumbers, field.TypeString, value)
		_node.PhoneNumbers = value
	}
	if value, ok := tc.mutation.LocationLink(); ok {
		_spec.SetField(task.FieldLocationLink, field.TypeString, value)
		_node.LocationLink = value
	}
	if value, ok := tc.mutation.Category(); ok {
		_spec.SetField(task.FieldCategory, field.TypeEnum, value)
		_node.Category = value
	}
	if value, ok := tc.mutation.Quantity(); ok {
		_spec.SetField(task.FieldQuantity, field.TypeUint32, value)
		_node.Quantity = &value
	}
	if value, ok := tc.mutation.IsUrgent(); ok {
		_spec.SetField(task.FieldIsUrgent, field.TypeBool, value)
		_node.IsUrgent = value
	}
	if value, ok := tc.mutation.IsBroadcast(); ok {
		_spec.SetField(task.FieldIsBroadcast, field.TypeBool, value)
		_node.IsBroadcast = value
	}
	if value, ok := tc.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := tc.mutation.VisitorFormFilled(); ok {
		_spec.SetField(task.FieldVisitorFormFilled, field.TypeBool, value)
		_node.VisitorFormFilled = value
	}
	if value, ok := tc.mutation.TrustNoticeGiven(); ok {
		_spec.SetField(task.FieldTrustNoticeGiven, field.TypeBool, value)
		_node.TrustNoticeGiven = value
	}
	if value, ok := tc.mutation.CreatedAt(); ok {
		_spec.SetField(task.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := tc.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := tc.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := tc.mutation.CreatorIDs(); len(nodes) > 0 {
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
		_node.CreatedBy = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := tc.mutation.AssigneeIDs(); len(nodes) > 0 {
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
		_node.AssignedTo = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := tc.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := tc.mutation.PhotosIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := tc.mutation.LocationLogsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TaskCreateBulk is the builder for creating many Task entities in bulk.
type TaskCreateBulk struct {
	config
	err      error
	builders []*TaskCreate
}

// Save creates the Task entities in the database.
func (tcb *TaskCreateBulk) Save(ctx context.Context) ([]*Task, error) {
	if tcb.err != nil {
		return nil, tcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(tcb.builders))
	nodes := make([]*Task, len(tcb.builders))
	mutators := make([]Mutator, len(tcb.builders))
	for i := range tcb.builders {
		func(i int, root context.Context) {
			builder := tcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, tcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, tcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, tcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (tcb *TaskCreateBulk) SaveX(ctx context.Context) []*Task {
	v, err := tcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tcb *TaskCreateBulk) Exec(ctx context.Context) error {
	_, err := tcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tcb *TaskCreateBulk) ExecX(ctx context.Context) {
	if err := tcb.Exec(ctx); err != nil {
		panic(err)
	}
}
