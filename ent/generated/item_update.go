// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/omerfdemir/pickuptracker/ent/generated/item"
	"github.com/omerfdemir/pickuptracker/ent/generated/predicate"
	"github.com/omerfdemir/pickuptracker/ent/generated/task"
)

// ItemUpdate is the builder for updating Item entities.
type ItemUpdate struct {
	config
	hooks    []Hook
	mutation *ItemMutation
}

// Where appends a list predicates to the ItemUpdate builder.
func (iu *ItemUpdate) Where(ps ...predicate.Item) *ItemUpdate {
	iu.mutation.Where(ps...)
	return iu
}

// SetTaskID sets the "task_id" field.
func (iu *ItemUpdate) SetTaskID(u uuid.UUID) *ItemUpdate {
	iu.mutation.SetTaskID(u)
	return iu
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (iu *ItemUpdate) SetNillableTaskID(u *uuid.UUID) *ItemUpdate {
	if u != nil {
		iu.SetTaskID(*u)
	}
	return iu
}

// SetCategory sets the "category" field.
func (iu *ItemUpdate) SetCategory(s string) *ItemUpdate {
	iu.mutation.SetCategory(s)
	return iu
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (iu *ItemUpdate) SetNillableCategory(s *string) *ItemUpdate {
	if s != nil {
		iu.SetCategory(*s)
	}
	return iu
}

// SetQuantity sets the "quantity" field.
func (iu *ItemUpdate) SetQuantity(u uint32) *ItemUpdate {
	iu.mutation.ResetQuantity()
	iu.mutation.SetQuantity(u)
	return iu
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (iu *ItemUpdate) SetNillableQuantity(u *uint32) *ItemUpdate {
	if u != nil {
		iu.SetQuantity(*u)
	}
	return iu
}

// AddQuantity adds u to the "quantity" field.
func (iu *ItemUpdate) AddQuantity(u int32) *ItemUpdate {
	iu.mutation.AddQuantity(u)
	return iu
}

// SetCondition sets the "condition" field.
func (iu *ItemUpdate) SetCondition(i item.Condition) *ItemUpdate {
	iu.mutation.SetCondition(i)
	return iu
}

// SetNillableCondition sets the "condition" field if the given value is not nil.
func (iu *ItemUpdate) SetNillableCondition(i *item.Condition) *ItemUpdate {
	if i != nil {
		iu.SetCondition(*i)
	}
	return iu
}

// SetPosition sets the "position" field.
func (iu *ItemUpdate) SetPosition(u uint32) *ItemUpdate {
	iu.mutation.ResetPosition()
	iu.mutation.SetPosition(u)
	return iu
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (iu *ItemUpdate) SetNillablePosition(u *uint32) *ItemUpdate {
	if u != nil {
		iu.SetPosition(*u)
	}
	return iu
}

// AddPosition adds u to the "position" field.
func (iu *ItemUpdate) AddPosition(u int32) *ItemUpdate {
	iu.mutation.AddPosition(u)
	return iu
}

// SetTask sets the "task" edge to the Task entity.
func (iu *ItemUpdate) SetTask(t *Task) *ItemUpdate {
	return iu.SetTaskID(t.ID)
}

// Mutation returns the ItemMutation object of the builder.
func (iu *ItemUpdate) Mutation() *ItemMutation {
	return iu.mutation
}

// ClearTask clears the "task" edge to the Task entity.
func (iu *ItemUpdate) ClearTask() *ItemUpdate {
	iu.mutation.ClearTask()
	return iu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (iu *ItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, iu.sqlSave, iu.mutation, iu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (iu *ItemUpdate) SaveX(ctx context.Context) int {
	affected, err := iu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (iu *ItemUpdate) Exec(ctx context.Context) error {
	_, err := iu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iu *ItemUpdate) ExecX(ctx context.Context) {
	if err := iu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (iu *ItemUpdate) check() error {
	if v, ok := iu.mutation.Category(); ok {
		if err := item.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`generated: validator failed for field "Item.category": %w`, err)}
		}
	}
	if v, ok := iu.mutation.Quantity(); ok {
		if err := item.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`generated: validator failed for field "Item.quantity": %w`, err)}
		}
	}
	if v, ok := iu.mutation.Condition(); ok {
		if err := item.ConditionValidator(v); err != nil {
			return &ValidationError{Name: "condition", err: fmt.Errorf(`generated: validator failed for field "Item.condition": %w`, err)}
		}
	}
	if _, ok := iu.mutation.TaskID(); iu.mutation.TaskCleared() && !ok {
		return errors.New(`generated: clearing a required unique edge "Item.task"`)
	}
	return nil
}

func (iu *ItemUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := iu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(item.Table, item.Columns, sqlgraph.NewFieldSpec(item.FieldID, field.TypeUUID))
	if ps := iu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := iu.mutation.Category(); ok {
		_spec.SetField(item.FieldCategory, field.TypeString, value)
	}
	if value, ok := iu.mutation.Quantity(); ok {
		_spec.SetField(item.FieldQuantity, field.TypeUint32, value)
	}
	if value, ok := iu.mutation.AddedQuantity(); ok {
		_spec.AddField(item.FieldQuantity, field.TypeUint32, value)
	}
	if value, ok := iu.mutation.Condition(); ok {
		_spec.SetField(item.FieldCondition, field.TypeEnum, value)
	}
	if value, ok := iu.mutation.Position(); ok {
		_spec.SetField(item.FieldPosition, field.TypeUint32, value)
	}
	if value, ok := iu.mutation.AddedPosition(); ok {
		_spec.AddField(item.FieldPosition, field.TypeUint32, value)
	}
	if iu.mutation.TaskCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   item.TaskTable,
			Columns: []string{item.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := iu.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   item.TaskTable,
			Columns: []string{item.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, iu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{item.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	iu.mutation.done = true
	return n, nil
}

// ItemUpdateOne is the builder for updating a single Item entity.
type ItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ItemMutation
}

// SetTaskID sets the "task_id" field.
func (iuo *ItemUpdateOne) SetTaskID(u uuid.UUID) *ItemUpdateOne {
	iuo.mutation.SetTaskID(u)
	return iuo
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (iuo *ItemUpdateOne) SetNillableTaskID(u *uuid.UUID) *ItemUpdateOne {
	if u != nil {
		iuo.SetTaskID(*u)
	}
	return iuo
}

// SetCategory sets the "category" field.
func (iuo *ItemUpdateOne) SetCategory(s string) *ItemUpdateOne {
	iuo.mutation.SetCategory(s)
	return iuo
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (iuo *ItemUpdateOne) SetNillableCategory(s *string) *ItemUpdateOne {
	if s != nil {
		iuo.SetCategory(*s)
	}
	return iuo
}

// SetQuantity sets the "quantity" field.
func (iuo *ItemUpdateOne) SetQuantity(u uint32) *ItemUpdateOne {
	iuo.mutation.ResetQuantity()
	iuo.mutation.SetQuantity(u)
	return iuo
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (iuo *ItemUpdateOne) SetNillableQuantity(u *uint32) *ItemUpdateOne {
	if u != nil {
		iuo.SetQuantity(*u)
	}
	return iuo
}

// AddQuantity adds u to the "quantity" field.
func (iuo *ItemUpdateOne) AddQuantity(u int32) *ItemUpdateOne {
	iuo.mutation.AddQuantity(u)
	return iuo
}

// SetCondition sets the "condition" field.
func (iuo *ItemUpdateOne) SetCondition(i item.Condition) *ItemUpdateOne {
	iuo.mutation.SetCondition(i)
	return iuo
}

// SetNillableCondition sets the "condition" field if the given value is not nil.
func (iuo *ItemUpdateOne) SetNillableCondition(i *item.Condition) *ItemUpdateOne {
	if i != nil {
		iuo.SetCondition(*i)
	}
	return iuo
}

// SetPosition sets the "position" field.
func (iuo *ItemUpdateOne) SetPosition(u uint32) *ItemUpdateOne {
	iuo.mutation.ResetPosition()
	iuo.mutation.SetPosition(u)
	return iuo
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (iuo *ItemUpdateOne) SetNillablePosition(u *uint32) *ItemUpdateOne {
	if u != nil {
		iuo.SetPosition(*u)
	}
	return iuo
}

// AddPosition adds u to the "position" field.
func (iuo *ItemUpdateOne) AddPosition(u int32) *ItemUpdateOne {
	iuo.mutation.AddPosition(u)
	return iuo
}

// SetTask sets the "task" edge to the Task entity.
func (iuo *ItemUpdateOne) SetTask(t *Task) *ItemUpdateOne {
	return iuo.SetTaskID(t.ID)
}

// Mutation returns the ItemMutation object of the builder.
func (iuo *ItemUpdateOne) Mutation() *ItemMutation {
	return iuo.mutation
}

// ClearTask clears the "task" edge to the Task entity.
func (iuo *ItemUpdateOne) ClearTask() *ItemUpdateOne {
	iuo.mutation.ClearTask()
	return iuo
}

// Where appends a list predicates to the ItemUpdate builder.
func (iuo *ItemUpdateOne) Where(ps ...predicate.Item) *ItemUpdateOne {
	iuo.mutation.Where(ps...)
	return iuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (iuo *ItemUpdateOne) Select(field string, fields ...string) *ItemUpdateOne {
	iuo.fields = append([]string{field}, fields...)
	return iuo
}

// Save executes the query and returns the updated Item entity.
func (iuo *ItemUpdateOne) Save(ctx context.Context) (*Item, error) {
	return withHooks(ctx, iuo.sqlSave, iuo.mutation, iuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (iuo *ItemUpdateOne) SaveX(ctx context.Context) *Item {
	node, err := iuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (iuo *ItemUpdateOne) Exec(ctx context.Context) error {
	_, err := iuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iuo *ItemUpdateOne) ExecX(ctx context.Context) {
	if err := iuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (iuo *ItemUpdateOne) check() error {
	if v, ok := iuo.mutation.Category(); ok {
		if err := item.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`generated: validator failed for field "Item.category": %w`, err)}
		}
	}
	if v, ok := iuo.mutation.Quantity(); ok {
		if err := item.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`generated: validator failed for field "Item.quantity": %w`, err)}
		}
	}
	if v, ok := iuo.mutation.Condition(); ok {
		if err := item.ConditionValidator(v); err != nil {
			return &ValidationError{Name: "condition", err: fmt.Errorf(`generated: validator failed for field "Item.condition": %w`, err)}
		}
	}
	if _, ok := iuo.mutation.TaskID(); iuo.mutation.TaskCleared() && !ok {
		return errors.New(`generated: clearing a required unique edge "Item.task"`)
	}
	return nil
}

func (iuo *ItemUpdateOne) sqlSave(ctx context.Context) (_node *Item, err error) {
	if err := iuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(item.Table, item.Columns, sqlgraph.NewFieldSpec(item.FieldID, field.TypeUUID))
	id, ok := iuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "Item.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := iuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, item.FieldID)
		for _, f := range fields {
			if !item.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != item.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := iuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := iuo.mutation.Category(); ok {
		_spec.SetField(item.FieldCategory, field.TypeString, value)
	}
	if value, ok := iuo.mutation.Quantity(); ok {
		_spec.SetField(item.FieldQuantity, field.TypeUint32, value)
	}
	if value, ok := iuo.mutation.AddedQuantity(); ok {
		_spec.AddField(item.FieldQuantity, field.TypeUint32, value)
	}
	if value, ok := iuo.mutation.Condition(); ok {
		_spec.SetField(item.FieldCondition, field.TypeEnum, value)
	}
	if value, ok := iuo.mutation.Position(); ok {
		_spec.SetField(item.FieldPosition, field.TypeUint32, value)
	}
	if value, ok := iuo.mutation.AddedPosition(); ok {
		_spec.AddField(item.FieldPosition, field.TypeUint32, value)
	}
	if iuo.mutation.TaskCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   item.TaskTable,
			Columns: []string{item.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := iuo.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   item.TaskTable,
			Columns: []string{item.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Item{config: iuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, iuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{item.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	iuo.mutation.done = true
	return _node, nil
}
