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
	"github.com/omerfdemir/pickuptracker/ent/generated/locationlog"
	"github.com/omerfdemir/pickuptracker/ent/generated/task"
)

// LocationLogCreate is the builder for creating a LocationLog entity.
type LocationLogCreate struct {
	config
	mutation *LocationLogMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (llc *LocationLogCreate) SetTaskID(u uuid.UUID) *LocationLogCreate {
	llc.mutation.SetTaskID(u)
	return llc
}

// SetLatitude sets the "latitude" field.
func (llc *LocationLogCreate) SetLatitude(f float64) *LocationLogCreate {
	llc.mutation.SetLatitude(f)
	return llc
}

// SetLongitude sets the "longitude" field.
func (llc *LocationLogCreate) SetLongitude(f float64) *LocationLogCreate {
	llc.mutation.SetLongitude(f)
	return llc
}

// SetEvent sets the "event" field.
func (llc *LocationLogCreate) SetEvent(l locationlog.Event) *LocationLogCreate {
	llc.mutation.SetEvent(l)
	return llc
}

// SetTimestamp sets the "timestamp" field.
func (llc *LocationLogCreate) SetTimestamp(t time.Time) *LocationLogCreate {
	llc.mutation.SetTimestamp(t)
	return llc
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (llc *LocationLogCreate) SetNillableTimestamp(t *time.Time) *LocationLogCreate {
	if t != nil {
		llc.SetTimestamp(*t)
	}
	return llc
}

// SetID sets the "id" field.
func (llc *LocationLogCreate) SetID(u uuid.UUID) *LocationLogCreate {
	llc.mutation.SetID(u)
	return llc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (llc *LocationLogCreate) SetNillableID(u *uuid.UUID) *LocationLogCreate {
	if u != nil {
		llc.SetID(*u)
	}
	return llc
}

// SetTask sets the "task" edge to the Task entity.
func (llc *LocationLogCreate) SetTask(t *Task) *LocationLogCreate {
	return llc.SetTaskID(t.ID)
}

// Mutation returns the LocationLogMutation object of the builder.
func (llc *LocationLogCreate) Mutation() *LocationLogMutation {
	return llc.mutation
}

// Save creates the LocationLog in the database.
func (llc *LocationLogCreate) Save(ctx context.Context) (*LocationLog, error) {
	llc.defaults()
	return withHooks(ctx, llc.sqlSave, llc.mutation, llc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (llc *LocationLogCreate) SaveX(ctx context.Context) *LocationLog {
	v, err := llc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (llc *LocationLogCreate) Exec(ctx context.Context) error {
	_, err := llc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (llc *LocationLogCreate) ExecX(ctx context.Context) {
	if err := llc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (llc *LocationLogCreate) defaults() {
	if _, ok := llc.mutation.Timestamp(); !ok {
		v := locationlog.DefaultTimestamp()
		llc.mutation.SetTimestamp(v)
	}
	if _, ok := llc.mutation.ID(); !ok {
		v := locationlog.DefaultID()
		llc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (llc *LocationLogCreate) check() error {
	if _, ok := llc.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`generated: missing required field "LocationLog.task_id"`)}
	}
	if _, ok := llc.mutation.Latitude(); !ok {
		return &ValidationError{Name: "latitude", err: errors.New(`generated: missing required field "LocationLog.latitude"`)}
	}
	if _, ok := llc.mutation.Longitude(); !ok {
		return &ValidationError{Name: "longitude", err: errors.New(`generated: missing required field "LocationLog.longitude"`)}
	}
	if _, ok := llc.mutation.Event(); !ok {
		return &ValidationError{Name: "event", err: errors.New(`generated: missing required field "LocationLog.event"`)}
	}
	if v, ok := llc.mutation.Event(); ok {
		if err := locationlog.EventValidator(v); err != nil {
			return &ValidationError{Name: "event", err: fmt.Errorf(`generated: validator failed for field "LocationLog.event": %w`, err)}
		}
	}
	if _, ok := llc.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`generated: missing required field "LocationLog.timestamp"`)}
	}
	if _, ok := llc.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task", err: errors.New(`generated: missing required edge "LocationLog.task"`)}
	}
	return nil
}

func (llc *LocationLogCreate) sqlSave(ctx context.Context) (*LocationLog, error) {
	if err := llc.check(); err != nil {
		return nil, err
	}
	_node, _spec := llc.createSpec()
	if err := sqlgraph.CreateNode(ctx, llc.driver, _spec); err != nil {
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
	llc.mutation.id = &_node.ID
	llc.mutation.done = true
	return _node, nil
}

func (llc *LocationLogCreate) createSpec() (*LocationLog, *sqlgraph.CreateSpec) {
	var (
		_node = &LocationLog{config: llc.config}
		_spec = sqlgraph.NewCreateSpec(locationlog.Table, sqlgraph.NewFieldSpec(locationlog.FieldID, field.TypeUUID))
	)
	if id, ok := llc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := llc.mutation.Latitude(); ok {
		_spec.SetField(locationlog.FieldLatitude, field.TypeFloat64, value)
		_node.Latitude = value
	}
	if value, ok := llc.mutation.Longitude(); ok {
		_spec.SetField(locationlog.FieldLongitude, field.TypeFloat64, value)
		_node.Longitude = value
	}
	if value, ok := llc.mutation.Event(); ok {
		_spec.SetField(locationlog.FieldEvent, field.TypeEnum, value)
		_node.Event = value
	}
	if value, ok := llc.mutation.Timestamp(); ok {
		_spec.SetField(locationlog.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if nodes := llc.mutation.TaskIDs(); len(nodes) > 0 {
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
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LocationLogCreateBulk is the builder for creating many LocationLog entities in bulk.
type LocationLogCreateBulk struct {
	config
	err      error
	builders []*LocationLogCreate
}

// Save creates the LocationLog entities in the database.
func (llcb *LocationLogCreateBulk) Save(ctx context.Context) ([]*LocationLog, error) {
	if llcb.err != nil {
		return nil, llcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(llcb.builders))
	nodes := make([]*LocationLog, len(llcb.builders))
	mutators := make([]Mutator, len(llcb.builders))
	for i := range llcb.builders {
		func(i int, root context.Context) {
			builder := llcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LocationLogMutation)
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
					_, err = mutators[i+1].Mutate(root, llcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, llcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, llcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (llcb *LocationLogCreateBulk) SaveX(ctx context.Context) []*LocationLog {
	v, err := llcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (llcb *LocationLogCreateBulk) Exec(ctx context.Context) error {
	_, err := llcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (llcb *LocationLogCreateBulk) ExecX(ctx context.Context) {
	if err := llcb.Exec(ctx); err != nil {
		panic(err)
	}
}
