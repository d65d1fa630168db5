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
	"github.com/omerfdemir/pickuptracker/ent/generated/task"
	"github.com/omerfdemir/pickuptracker/ent/generated/taskphoto"
)

// TaskPhotoCreate is the builder for creating a TaskPhoto entity.
type TaskPhotoCreate struct {
	config
	mutation *TaskPhotoMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (tpc *TaskPhotoCreate) SetTaskID(u uuid.UUID) *TaskPhotoCreate {
	tpc.mutation.SetTaskID(u)
	return tpc
}

// SetFilePath sets the "file_path" field.
func (tpc *TaskPhotoCreate) SetFilePath(s string) *TaskPhotoCreate {
	tpc.mutation.SetFilePath(s)
	return tpc
}

// SetPhotoType sets the "photo_type" field.
func (tpc *TaskPhotoCreate) SetPhotoType(tt taskphoto.PhotoType) *TaskPhotoCreate {
	tpc.mutation.SetPhotoType(tt)
	return tpc
}

// SetNillablePhotoType sets the "photo_type" field if the given value is not nil.
func (tpc *TaskPhotoCreate) SetNillablePhotoType(tt *taskphoto.PhotoType) *TaskPhotoCreate {
	if tt != nil {
		tpc.SetPhotoType(*tt)
	}
	return tpc
}

// SetUploadedAt sets the "uploaded_at" field.
func (tpc *TaskPhotoCreate) SetUploadedAt(t time.Time) *TaskPhotoCreate {
	tpc.mutation.SetUploadedAt(t)
	return tpc
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (tpc *TaskPhotoCreate) SetNillableUploadedAt(t *time.Time) *TaskPhotoCreate {
	if t != nil {
		tpc.SetUploadedAt(*t)
	}
	return tpc
}

// SetID sets the "id" field.
func (tpc *TaskPhotoCreate) SetID(u uuid.UUID) *TaskPhotoCreate {
	tpc.mutation.SetID(u)
	return tpc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (tpc *TaskPhotoCreate) SetNillableID(u *uuid.UUID) *TaskPhotoCreate {
	if u != nil {
		tpc.SetID(*u)
	}
	return tpc
}

// SetTask sets the "task" edge to the Task entity.
func (tpc *TaskPhotoCreate) SetTask(t *Task) *TaskPhotoCreate {
	return tpc.SetTaskID(t.ID)
}

// Mutation returns the TaskPhotoMutation object of the builder.
func (tpc *TaskPhotoCreate) Mutation() *TaskPhotoMutation {
	return tpc.mutation
}

// Save creates the TaskPhoto in the database.
func (tpc *TaskPhotoCreate) Save(ctx context.Context) (*TaskPhoto, error) {
	tpc.defaults()
	return withHooks(ctx, tpc.sqlSave, tpc.mutation, tpc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (tpc *TaskPhotoCreate) SaveX(ctx context.Context) *TaskPhoto {
	v, err := tpc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tpc *TaskPhotoCreate) Exec(ctx context.Context) error {
	_, err := tpc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tpc *TaskPhotoCreate) ExecX(ctx context.Context) {
	if err := tpc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tpc *TaskPhotoCreate) defaults() {
	if _, ok := tpc.mutation.PhotoType(); !ok {
		v := taskphoto.DefaultPhotoType
		tpc.mutation.SetPhotoType(v)
	}
	if _, ok := tpc.mutation.UploadedAt(); !ok {
		v := taskphoto.DefaultUploadedAt()
		tpc.mutation.SetUploadedAt(v)
	}
	if _, ok := tpc.mutation.ID(); !ok {
		v := taskphoto.DefaultID()
		tpc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tpc *TaskPhotoCreate) check() error {
	if _, ok := tpc.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`generated: missing required field "TaskPhoto.task_id"`)}
	}
	if _, ok := tpc.mutation.FilePath(); !ok {
		return &ValidationError{Name: "file_path", err: errors.New(`generated: missing required field "TaskPhoto.file_path"`)}
	}
	if v, ok := tpc.mutation.FilePath(); ok {
		if err := taskphoto.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`generated: validator failed for field "TaskPhoto.file_path": %w`, err)}
		}
	}
	if _, ok := tpc.mutation.PhotoType(); !ok {
		return &ValidationError{Name: "photo_type", err: errors.New(`generated: missing required field "TaskPhoto.photo_type"`)}
	}
	if v, ok := tpc.mutation.PhotoType(); ok {
		if err := taskphoto.PhotoTypeValidator(v); err != nil {
			return &ValidationError{Name: "photo_type", err: fmt.Errorf(`generated: validator failed for field "TaskPhoto.photo_type": %w`, err)}
		}
	}
	if _, ok := tpc.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`generated: missing required field "TaskPhoto.uploaded_at"`)}
	}
	if _, ok := tpc.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task", err: errors.New(`generated: missing required edge "TaskPhoto.task"`)}
	}
	return nil
}

func (tpc *TaskPhotoCreate) sqlSave(ctx context.Context) (*TaskPhoto, error) {
	if err := tpc.check(); err != nil {
		return nil, err
	}
	_node, _spec := tpc.createSpec()
	if err := sqlgraph.CreateNode(ctx, tpc.driver, _spec); err != nil {
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
	tpc.mutation.id = &_node.ID
	tpc.mutation.done = true
	return _node, nil
}

func (tpc *TaskPhotoCreate) createSpec() (*TaskPhoto, *sqlgraph.CreateSpec) {
	var (
		_node = &TaskPhoto{config: tpc.config}
		_spec = sqlgraph.NewCreateSpec(taskphoto.Table, sqlgraph.NewFieldSpec(taskphoto.FieldID, field.TypeUUID))
	)
	if id, ok := tpc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := tpc.mutation.FilePath(); ok {
		_spec.SetField(taskphoto.FieldFilePath, field.TypeString, value)
		_node.FilePath = value
	}
	if value, ok := tpc.mutation.PhotoType(); ok {
		_spec.SetField(taskphoto.FieldPhotoType, field.TypeEnum, value)
		_node.PhotoType = value
	}
	if value, ok := tpc.mutation.UploadedAt(); ok {
		_spec.SetField(taskphoto.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if nodes := tpc.mutation.TaskIDs(); len(nodes) > 0 {
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
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TaskPhotoCreateBulk is the builder for creating many TaskPhoto entities in bulk.
type TaskPhotoCreateBulk struct {
	config
	err      error
	builders []*TaskPhotoCreate
}

// Save creates the TaskPhoto entities in the database.
func (tpcb *TaskPhotoCreateBulk) Save(ctx context.Context) ([]*TaskPhoto, error) {
	if tpcb.err != nil {
		return nil, tpcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(tpcb.builders))
	nodes := make([]*TaskPhoto, len(tpcb.builders))
	mutators := make([]Mutator, len(tpcb.builders))
	for i := range tpcb.builders {
		func(i int, root context.Context) {
			builder := tpcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskPhotoMutation)
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
					_, err = mutators[i+1].Mutate(root, tpcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, tpcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, tpcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (tpcb *TaskPhotoCreateBulk) SaveX(ctx context.Context) []*TaskPhoto {
	v, err := tpcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tpcb *TaskPhotoCreateBulk) Exec(ctx context.Context) error {
	_, err := tpcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tpcb *TaskPhotoCreateBulk) ExecX(ctx context.Context) {
	if err := tpcb.Exec(ctx); err != nil {
		panic(err)
	}
}
