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
	"github.com/omerfdemir/pickuptracker/ent/generated/predicate"
	"github.com/omerfdemir/pickuptracker/ent/generated/task"
	"github.com/omerfdemir/pickuptracker/ent/generated/taskphoto"
)

// TaskPhotoUpdate is the builder for updating TaskPhoto entities.
type TaskPhotoUpdate struct {
	config
	hooks    []Hook
	mutation *TaskPhotoMutation
}

// Where appends a list predicates to the TaskPhotoUpdate builder.
func (tpu *TaskPhotoUpdate) Where(ps ...predicate.TaskPhoto) *TaskPhotoUpdate {
	tpu.mutation.Where(ps...)
	return tpu
}

// SetTaskID sets the "task_id" field.
func (tpu *TaskPhotoUpdate) SetTaskID(u uuid.UUID) *TaskPhotoUpdate {
	tpu.mutation.SetTaskID(u)
	return tpu
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (tpu *TaskPhotoUpdate) SetNillableTaskID(u *uuid.UUID) *TaskPhotoUpdate {
	if u != nil {
		tpu.SetTaskID(*u)
	}
	return tpu
}

// SetFilePath sets the "file_path" field.
func (tpu *TaskPhotoUpdate) SetFilePath(s string) *TaskPhotoUpdate {
	tpu.mutation.SetFilePath(s)
	return tpu
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (tpu *TaskPhotoUpdate) SetNillableFilePath(s *string) *TaskPhotoUpdate {
	if s != nil {
		tpu.SetFilePath(*s)
	}
	return tpu
}

// SetPhotoType sets the "photo_type" field.
func (tpu *TaskPhotoUpdate) SetPhotoType(tt taskphoto.PhotoType) *TaskPhotoUpdate {
	tpu.mutation.SetPhotoType(tt)
	return tpu
}

// SetNillablePhotoType sets the "photo_type" field if the given value is not nil.
func (tpu *TaskPhotoUpdate) SetNillablePhotoType(tt *taskphoto.PhotoType) *TaskPhotoUpdate {
	if tt != nil {
		tpu.SetPhotoType(*tt)
	}
	return tpu
}

// SetTask sets the "task" edge to the Task entity.
func (tpu *TaskPhotoUpdate) SetTask(t *Task) *TaskPhotoUpdate {
	return tpu.SetTaskID(t.ID)
}

// Mutation returns the TaskPhotoMutation object of the builder.
func (tpu *TaskPhotoUpdate) Mutation() *TaskPhotoMutation {
	return tpu.mutation
}

// ClearTask clears the "task" edge to the Task entity.
func (tpu *TaskPhotoUpdate) ClearTask() *TaskPhotoUpdate {
	tpu.mutation.ClearTask()
	return tpu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (tpu *TaskPhotoUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, tpu.sqlSave, tpu.mutation, tpu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tpu *TaskPhotoUpdate) SaveX(ctx context.Context) int {
	affected, err := tpu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (tpu *TaskPhotoUpdate) Exec(ctx context.Context) error {
	_, err := tpu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tpu *TaskPhotoUpdate) ExecX(ctx context.Context) {
	if err := tpu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tpu *TaskPhotoUpdate) check() error {
	if v, ok := tpu.mutation.FilePath(); ok {
		if err := taskphoto.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`generated: validator failed for field "TaskPhoto.file_path": %w`, err)}
		}
	}
	if v, ok := tpu.mutation.PhotoType(); ok {
		if err := taskphoto.PhotoTypeValidator(v); err != nil {
			return &ValidationError{Name: "photo_type", err: fmt.Errorf(`generated: validator failed for field "TaskPhoto.photo_type": %w`, err)}
		}
	}
	if _, ok := tpu.mutation.TaskID(); tpu.mutation.TaskCleared() && !ok {
		return errors.New(`generated: clearing a required unique edge "TaskPhoto.task"`)
	}
	return nil
}

func (tpu *TaskPhotoUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := tpu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskphoto.Table, taskphoto.Columns, sqlgraph.NewFieldSpec(taskphoto.FieldID, field.TypeUUID))
	if ps := tpu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tpu.mutation.FilePath(); ok {
		_spec.SetField(taskphoto.FieldFilePath, field.TypeString, value)
	}
	if value, ok := tpu.mutation.PhotoType(); ok {
		_spec.SetField(taskphoto.FieldPhotoType, field.TypeEnum, value)
	}
	if tpu.mutation.TaskCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taskphoto.TaskTable,
			Columns: []string{taskphoto.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tpu.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taskphoto.TaskTable,
			Columns: []string{taskphoto.TaskColumn},
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
	if n, err = sqlgraph.UpdateNodes(ctx, tpu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskphoto.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	tpu.mutation.done = true
	return n, nil
}

// TaskPhotoUpdateOne is the builder for updating a single TaskPhoto entity.
type TaskPhotoUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskPhotoMutation
}

// SetTaskID sets the "task_id" field.
func (tpuo *TaskPhotoUpdateOne) SetTaskID(u uuid.UUID) *TaskPhotoUpdateOne {
	tpuo.mutation.SetTaskID(u)
	return tpuo
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (tpuo *TaskPhotoUpdateOne) SetNillableTaskID(u *uuid.UUID) *TaskPhotoUpdateOne {
	if u != nil {
		tpuo.SetTaskID(*u)
	}
	return tpuo
}

// SetFilePath sets the "file_path" field.
func (tpuo *TaskPhotoUpdateOne) SetFilePath(s string) *TaskPhotoUpdateOne {
	tpuo.mutation.SetFilePath(s)
	return tpuo
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (tpuo *TaskPhotoUpdateOne) SetNillableFilePath(s *string) *TaskPhotoUpdateOne {
	if s != nil {
		tpuo.SetFilePath(*s)
	}
	return tpuo
}

// SetPhotoType sets the "photo_type" field.
func (tpuo *TaskPhotoUpdateOne) SetPhotoType(tt taskphoto.PhotoType) *TaskPhotoUpdateOne {
	tpuo.mutation.SetPhotoType(tt)
	return tpuo
}

// SetNillablePhotoType sets the "photo_type" field if the given value is not nil.
func (tpuo *TaskPhotoUpdateOne) SetNillablePhotoType(tt *taskphoto.PhotoType) *TaskPhotoUpdateOne {
	if tt != nil {
		tpuo.SetPhotoType(*tt)
	}
	return tpuo
}

// SetTask sets the "task" edge to the Task entity.
func (tpuo *TaskPhotoUpdateOne) SetTask(t *Task) *TaskPhotoUpdateOne {
	return tpuo.SetTaskID(t.ID)
}

// Mutation returns the TaskPhotoMutation object of the builder.
func (tpuo *TaskPhotoUpdateOne) Mutation() *TaskPhotoMutation {
	return tpuo.mutation
}

// ClearTask clears the "task" edge to the Task entity.
func (tpuo *TaskPhotoUpdateOne) ClearTask() *TaskPhotoUpdateOne {
	tpuo.mutation.ClearTask()
	return tpuo
}

// Where appends a list predicates to the TaskPhotoUpdate builder.
func (tpuo *TaskPhotoUpdateOne) Where(ps ...predicate.TaskPhoto) *TaskPhotoUpdateOne {
	tpuo.mutation.Where(ps...)
	return tpuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (tpuo *TaskPhotoUpdateOne) Select(field string, fields ...string) *TaskPhotoUpdateOne {
	tpuo.fields = append([]string{field}, fields...)
	return tpuo
}

// Save executes the query and returns the updated TaskPhoto entity.
func (tpuo *TaskPhotoUpdateOne) Save(ctx context.Context) (*TaskPhoto, error) {
	return withHooks(ctx, tpuo.sqlSave, tpuo.mutation, tpuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tpuo *TaskPhotoUpdateOne) SaveX(ctx context.Context) *TaskPhoto {
	node, err := tpuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (tpuo *TaskPhotoUpdateOne) Exec(ctx context.Context) error {
	_, err := tpuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tpuo *TaskPhotoUpdateOne) ExecX(ctx context.Context) {
	if err := tpuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tpuo *TaskPhotoUpdateOne) check() error {
	if v, ok := tpuo.mutation.FilePath(); ok {
		if err := taskphoto.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`generated: validator failed for field "TaskPhoto.file_path": %w`, err)}
		}
	}
	if v, ok := tpuo.mutation.PhotoType(); ok {
		if err := taskphoto.PhotoTypeValidator(v); err != nil {
			return &ValidationError{Name: "photo_type", err: fmt.Errorf(`generated: validator failed for field "TaskPhoto.photo_type": %w`, err)}
		}
	}
	if _, ok := tpuo.mutation.TaskID(); tpuo.mutation.TaskCleared() && !ok {
		return errors.New(`generated: clearing a required unique edge "TaskPhoto.task"`)
	}
	return nil
}

func (tpuo *TaskPhotoUpdateOne) sqlSave(ctx context.Context) (_node *TaskPhoto, err error) {
	if err := tpuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskphoto.Table, taskphoto.Columns, sqlgraph.NewFieldSpec(taskphoto.FieldID, field.TypeUUID))
	id, ok := tpuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "TaskPhoto.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := tpuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taskphoto.FieldID)
		for _, f := range fields {
			if !taskphoto.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != taskphoto.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := tpuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tpuo.mutation.FilePath(); ok {
		_spec.SetField(taskphoto.FieldFilePath, field.TypeString, value)
	}
	if value, ok := tpuo.mutation.PhotoType(); ok {
		_spec.SetField(taskphoto.FieldPhotoType, field.TypeEnum, value)
	}
	if tpuo.mutation.TaskCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taskphoto.TaskTable,
			Columns: []string{taskphoto.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tpuo.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taskphoto.TaskTable,
			Columns: []string{taskphoto.TaskColumn},
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
	_node = &TaskPhoto{config: tpuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, tpuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskphoto.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	tpuo.mutation.done = true
	return _node, nil
}
