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
	"github.com/omerfdemir/pickuptracker/ent/generated/locationlog"
	"github.com/omerfdemir/pickuptracker/ent/generated/predicate"
	"github.com/omerfdemir/pickuptracker/ent/generated/task"
)

// LocationLogUpdate is the builder for updating LocationLog entities.
type LocationLogUpdate struct {
	config
	hooks    []Hook
	mutation *LocationLogMutation
}

// Where appends a list predicates to the LocationLogUpdate builder.
func (llu *LocationLogUpdate) Where(ps ...predicate.LocationLog) *LocationLogUpdate {
	llu.mutation.Where(ps...)
	return llu
}

// SetTaskID sets the "task_id" field.
func (llu *LocationLogUpdate) SetTaskID(u uuid.UUID) *LocationLogUpdate {
	llu.mutation.SetTaskID(u)
	return llu
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (llu *LocationLogUpdate) SetNillableTaskID(u *uuid.UUID) *LocationLogUpdate {
	if u != nil {
		llu.SetTaskID(*u)
	}
	return llu
}

// SetLatitude sets the "latitude" field.
func (llu *LocationLogUpdate) SetLatitude(f float64) *LocationLogUpdate {
	llu.mutation.ResetLatitude()
	llu.mutation.SetLatitude(f)
	return llu
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (llu *LocationLogUpdate) SetNillableLatitude(f *float64) *LocationLogUpdate {
	if f != nil {
		llu.SetLatitude(*f)
	}
	return llu
}

// AddLatitude adds f to the "latitude" field.
func (llu *LocationLogUpdate) AddLatitude(f float64) *LocationLogUpdate {
	llu.mutation.AddLatitude(f)
	return llu
}

// SetLongitude sets the "longitude" field.
func (llu *LocationLogUpdate) SetLongitude(f float64) *LocationLogUpdate {
	llu.mutation.ResetLongitude()
	llu.mutation.SetLongitude(f)
	return llu
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (llu *LocationLogUpdate) SetNillableLongitude(f *float64) *LocationLogUpdate {
	if f != nil {
		llu.SetLongitude(*f)
	}
	return llu
}

// AddLongitude adds f to the "longitude" field.
func (llu *LocationLogUpdate) AddLongitude(f float64) *LocationLogUpdate {
	llu.mutation.AddLongitude(f)
	return llu
}

// SetEvent sets the "event" field.
func (llu *LocationLogUpdate) SetEvent(l locationlog.Event) *LocationLogUpdate {
	llu.mutation.SetEvent(l)
	return llu
}

// SetNillableEvent sets the "event" field if the given value is not nil.
func (llu *LocationLogUpdate) SetNillableEvent(l *locationlog.Event) *LocationLogUpdate {
	if l != nil {
		llu.SetEvent(*l)
	}
	return llu
}

// SetTask sets the "task" edge to the Task entity.
func (llu *LocationLogUpdate) SetTask(t *Task) *LocationLogUpdate {
	return llu.SetTaskID(t.ID)
}

// Mutation returns the LocationLogMutation object of the builder.
func (llu *LocationLogUpdate) Mutation() *LocationLogMutation {
	return llu.mutation
}

// ClearTask clears the "task" edge to the Task entity.
func (llu *LocationLogUpdate) ClearTask() *LocationLogUpdate {
	llu.mutation.ClearTask()
	return llu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (llu *LocationLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, llu.sqlSave, llu.mutation, llu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (llu *LocationLogUpdate) SaveX(ctx context.Context) int {
	affected, err := llu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (llu *LocationLogUpdate) Exec(ctx context.Context) error {
	_, err := llu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (llu *LocationLogUpdate) ExecX(ctx context.Context) {
	if err := llu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (llu *LocationLogUpdate) check() error {
	if v, ok := llu.mutation.Event(); ok {
		if err := locationlog.EventValidator(v); err != nil {
			return &ValidationError{Name: "event", err: fmt.Errorf(`generated: validator failed for field "LocationLog.event": %w`, err)}
		}
	}
	if _, ok := llu.mutation.TaskID(); llu.mutation.TaskCleared() && !ok {
		return errors.New(`generated: clearing a required unique edge "LocationLog.task"`)
	}
	return nil
}

func (llu *LocationLogUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := llu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(locationlog.Table, locationlog.Columns, sqlgraph.NewFieldSpec(locationlog.FieldID, field.TypeUUID))
	if ps := llu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := llu.mutation.Latitude(); ok {
		_spec.SetField(locationlog.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := llu.mutation.AddedLatitude(); ok {
		_spec.AddField(locationlog.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := llu.mutation.Longitude(); ok {
		_spec.SetField(locationlog.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := llu.mutation.AddedLongitude(); ok {
		_spec.AddField(locationlog.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := llu.mutation.Event(); ok {
		_spec.SetField(locationlog.FieldEvent, field.TypeEnum, value)
	}
	if llu.mutation.TaskCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   locationlog.TaskTable,
			Columns: []string{locationlog.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := llu.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   locationlog.TaskTable,
			Columns: []string{locationlog.TaskColumn},
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
	if n, err = sqlgraph.UpdateNodes(ctx, llu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{locationlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	llu.mutation.done = true
	return n, nil
}

// LocationLogUpdateOne is the builder for updating a single LocationLog entity.
type LocationLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LocationLogMutation
}

// SetTaskID sets the "task_id" field.
func (lluo *LocationLogUpdateOne) SetTaskID(u uuid.UUID) *LocationLogUpdateOne {
	lluo.mutation.SetTaskID(u)
	return lluo
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (lluo *LocationLogUpdateOne) SetNillableTaskID(u *uuid.UUID) *LocationLogUpdateOne {
	if u != nil {
		lluo.SetTaskID(*u)
	}
	return lluo
}

// SetLatitude sets the "latitude" field.
func (lluo *LocationLogUpdateOne) SetLatitude(f float64) *LocationLogUpdateOne {
	lluo.mutation.ResetLatitude()
	lluo.mutation.SetLatitude(f)
	return lluo
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (lluo *LocationLogUpdateOne) SetNillableLatitude(f *float64) *LocationLogUpdateOne {
	if f != nil {
		lluo.SetLatitude(*f)
	}
	return lluo
}

// AddLatitude adds f to the "latitude" field.
func (lluo *LocationLogUpdateOne) AddLatitude(f float64) *LocationLogUpdateOne {
	lluo.mutation.AddLatitude(f)
	return lluo
}

// SetLongitude sets the "longitude" field.
func (lluo *LocationLogUpdateOne) SetLongitude(f float64) *LocationLogUpdateOne {
	lluo.mutation.ResetLongitude()
	lluo.mutation.SetLongitude(f)
	return lluo
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (lluo *LocationLogUpdateOne) SetNillableLongitude(f *float64) *LocationLogUpdateOne {
	if f != nil {
		lluo.SetLongitude(*f)
	}
	return lluo
}

// AddLongitude adds f to the "longitude" field.
func (lluo *LocationLogUpdateOne) AddLongitude(f float64) *LocationLogUpdateOne {
	lluo.mutation.AddLongitude(f)
	return lluo
}

// SetEvent sets the "event" field.
func (lluo *LocationLogUpdateOne) SetEvent(l locationlog.Event) *LocationLogUpdateOne {
	lluo.mutation.SetEvent(l)
	return lluo
}

// SetNillableEvent sets the "event" field if the given value is not nil.
func (lluo *LocationLogUpdateOne) SetNillableEvent(l *locationlog.Event) *LocationLogUpdateOne {
	if l != nil {
		lluo.SetEvent(*l)
	}
	return lluo
}

// SetTask sets the "task" edge to the Task entity.
func (lluo *LocationLogUpdateOne) SetTask(t *Task) *LocationLogUpdateOne {
	return lluo.SetTaskID(t.ID)
}

// Mutation returns the LocationLogMutation object of the builder.
func (lluo *LocationLogUpdateOne) Mutation() *LocationLogMutation {
	return lluo.mutation
}

// ClearTask clears the "task" edge to the Task entity.
func (lluo *LocationLogUpdateOne) ClearTask() *LocationLogUpdateOne {
	lluo.mutation.ClearTask()
	return lluo
}

// Where appends a list predicates to the LocationLogUpdate builder.
func (lluo *LocationLogUpdateOne) Where(ps ...predicate.LocationLog) *LocationLogUpdateOne {
	lluo.mutation.Where(ps...)
	return lluo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (lluo *LocationLogUpdateOne) Select(field string, fields ...string) *LocationLogUpdateOne {
	lluo.fields = append([]string{field}, fields...)
	return lluo
}

// Save executes the query and returns the updated LocationLog entity.
func (lluo *LocationLogUpdateOne) Save(ctx context.Context) (*LocationLog, error) {
	return withHooks(ctx, lluo.sqlSave, lluo.mutation, lluo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (lluo *LocationLogUpdateOne) SaveX(ctx context.Context) *LocationLog {
	node, err := lluo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (lluo *LocationLogUpdateOne) Exec(ctx context.Context) error {
	_, err := lluo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lluo *LocationLogUpdateOne) ExecX(ctx context.Context) {
	if err := lluo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (lluo *LocationLogUpdateOne) check() error {
	if v, ok := lluo.mutation.Event(); ok {
		if err := locationlog.EventValidator(v); err != nil {
			return &ValidationError{Name: "event", err: fmt.Errorf(`generated: validator failed for field "LocationLog.event": %w`, err)}
		}
	}
	if _, ok := lluo.mutation.TaskID(); lluo.mutation.TaskCleared() && !ok {
		return errors.New(`generated: clearing a required unique edge "LocationLog.task"`)
	}
	return nil
}

func (lluo *LocationLogUpdateOne) sqlSave(ctx context.Context) (_node *LocationLog, err error) {
	if err := lluo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(locationlog.Table, locationlog.Columns, sqlgraph.NewFieldSpec(locationlog.FieldID, field.TypeUUID))
	id, ok := lluo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "LocationLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := lluo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, locationlog.FieldID)
		for _, f := range fields {
			if !locationlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != locationlog.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := lluo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := lluo.mutation.Latitude(); ok {
		_spec.SetField(locationlog.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := lluo.mutation.AddedLatitude(); ok {
		_spec.AddField(locationlog.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := lluo.mutation.Longitude(); ok {
		_spec.SetField(locationlog.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := lluo.mutation.AddedLongitude(); ok {
		_spec.AddField(locationlog.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := lluo.mutation.Event(); ok {
		_spec.SetField(locationlog.FieldEvent, field.TypeEnum, value)
	}
	if lluo.mutation.TaskCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   locationlog.TaskTable,
			Columns: []string{locationlog.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := lluo.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   locationlog.TaskTable,
			Columns: []string{locationlog.TaskColumn},
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
	_node = &LocationLog{config: lluo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, lluo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{locationlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	lluo.mutation.done = true
	return _node, nil
}
