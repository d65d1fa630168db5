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
	"github.com/omerfdemir/pickuptracker/ent/generated/securityevent"
	"github.com/omerfdemir/pickuptracker/ent/generated/user"
)

// SecurityEventCreate is the builder for creating a SecurityEvent entity.
type SecurityEventCreate struct {
	config
	mutation *SecurityEventMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (sec *SecurityEventCreate) SetUserID(u uuid.UUID) *SecurityEventCreate {
	sec.mutation.SetUserID(u)
	return sec
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (sec *SecurityEventCreate) SetNillableUserID(u *uuid.UUID) *SecurityEventCreate {
	if u != nil {
		sec.SetUserID(*u)
	}
	return sec
}

// SetEventType sets the "event_type" field.
func (sec *SecurityEventCreate) SetEventType(st securityevent.EventType) *SecurityEventCreate {
	sec.mutation.SetEventType(st)
	return sec
}

// SetIPAddress sets the "ip_address" field.
func (sec *SecurityEventCreate) SetIPAddress(s string) *SecurityEventCreate {
	sec.mutation.SetIPAddress(s)
	return sec
}

// SetNillableIPAddress sets the "ip_address" field if the given value is not nil.
func (sec *SecurityEventCreate) SetNillableIPAddress(s *string) *SecurityEventCreate {
	if s != nil {
		sec.SetIPAddress(*s)
	}
	return sec
}

// SetUserAgent sets the "user_agent" field.
func (sec *SecurityEventCreate) SetUserAgent(s string) *SecurityEventCreate {
	sec.mutation.SetUserAgent(s)
	return sec
}

// SetNillableUserAgent sets the "user_agent" field if the given value is not nil.
func (sec *SecurityEventCreate) SetNillableUserAgent(s *string) *SecurityEventCreate {
	if s != nil {
		sec.SetUserAgent(*s)
	}
	return sec
}

// SetDescription sets the "description" field.
func (sec *SecurityEventCreate) SetDescription(s string) *SecurityEventCreate {
	sec.mutation.SetDescription(s)
	return sec
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (sec *SecurityEventCreate) SetNillableDescription(s *string) *SecurityEventCreate {
	if s != nil {
		sec.SetDescription(*s)
	}
	return sec
}

// SetMetadata sets the "metadata" field.
func (sec *SecurityEventCreate) SetMetadata(m map[string]interface{}) *SecurityEventCreate {
	sec.mutation.SetMetadata(m)
	return sec
}

// SetSeverity sets the "severity" field.
func (sec *SecurityEventCreate) SetSeverity(s securityevent.Severity) *SecurityEventCreate {
	sec.mutation.SetSeverity(s)
	return sec
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (sec *SecurityEventCreate) SetNillableSeverity(s *securityevent.Severity) *SecurityEventCreate {
	if s != nil {
		sec.SetSeverity(*s)
	}
	return sec
}

// SetResolved sets the "resolved" field.
func (sec *SecurityEventCreate) SetResolved(b bool) *SecurityEventCreate {
	sec.mutation.SetResolved(b)
	return sec
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (sec *SecurityEventCreate) SetNillableResolved(b *bool) *SecurityEventCreate {
	if b != nil {
		sec.SetResolved(*b)
	}
	return sec
}

// SetCreatedAt sets the "created_at" field.
func (sec *SecurityEventCreate) SetCreatedAt(t time.Time) *SecurityEventCreate {
	sec.mutation.SetCreatedAt(t)
	return sec
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (sec *SecurityEventCreate) SetNillableCreatedAt(t *time.Time) *SecurityEventCreate {
	if t != nil {
		sec.SetCreatedAt(*t)
	}
	return sec
}

// SetID sets the "id" field.
func (sec *SecurityEventCreate) SetID(u uuid.UUID) *SecurityEventCreate {
	sec.mutation.SetID(u)
	return sec
}

// SetNillableID sets the "id" field if the given value is not nil.
func (sec *SecurityEventCreate) SetNillableID(u *uuid.UUID) *SecurityEventCreate {
	if u != nil {
		sec.SetID(*u)
	}
	return sec
}

// SetUser sets the "user" edge to the User entity.
func (sec *SecurityEventCreate) SetUser(u *User) *SecurityEventCreate {
	return sec.SetUserID(u.ID)
}

// Mutation returns the SecurityEventMutation object of the builder.
func (sec *SecurityEventCreate) Mutation() *SecurityEventMutation {
	return sec.mutation
}

// Save creates the SecurityEvent in the database.
func (sec *SecurityEventCreate) Save(ctx context.Context) (*SecurityEvent, error) {
	sec.defaults()
	return withHooks(ctx, sec.sqlSave, sec.mutation, sec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (sec *SecurityEventCreate) SaveX(ctx context.Context) *SecurityEvent {
	v, err := sec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sec *SecurityEventCreate) Exec(ctx context.Context) error {
	_, err := sec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sec *SecurityEventCreate) ExecX(ctx context.Context) {
	if err := sec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (sec *SecurityEventCreate) defaults() {
	if _, ok := sec.mutation.Metadata(); !ok {
		v := securityevent.DefaultMetadata
		sec.mutation.SetMetadata(v)
	}
	if _, ok := sec.mutation.Severity(); !ok {
		v := securityevent.DefaultSeverity
		sec.mutation.SetSeverity(v)
	}
	if _, ok := sec.mutation.Resolved(); !ok {
		v := securityevent.DefaultResolved
		sec.mutation.SetResolved(v)
	}
	if _, ok := sec.mutation.CreatedAt(); !ok {
		v := securityevent.DefaultCreatedAt()
		sec.mutation.SetCreatedAt(v)
	}
	if _, ok := sec.mutation.ID(); !ok {
		v := securityevent.DefaultID()
		sec.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sec *SecurityEventCreate) check() error {
	if _, ok := sec.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`generated: missing required field "SecurityEvent.event_type"`)}
	}
	if v, ok := sec.mutation.EventType(); ok {
		if err := securityevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`generated: validator failed for field "SecurityEvent.event_type": %w`, err)}
		}
	}
	if _, ok := sec.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`generated: missing required field "SecurityEvent.severity"`)}
	}
	if v, ok := sec.mutation.Severity(); ok {
		if err := securityevent.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`generated: validator failed for field "SecurityEvent.severity": %w`, err)}
		}
	}
	if _, ok := sec.mutation.Resolved(); !ok {
		return &ValidationError{Name: "resolved", err: errors.New(`generated: missing required field "SecurityEvent.resolved"`)}
	}
	if _, ok := sec.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`generated: missing required field "SecurityEvent.created_at"`)}
	}
	return nil
}

func (sec *SecurityEventCreate) sqlSave(ctx context.Context) (*SecurityEvent, error) {
	if err := sec.check(); err != nil {
		return nil, err
	}
	_node, _spec := sec.createSpec()
	if err := sqlgraph.CreateNode(ctx, sec.driver, _spec); err != nil {
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
	sec.mutation.id = &_node.ID
	sec.mutation.done = true
	return _node, nil
}

func (sec *SecurityEventCreate) createSpec() (*SecurityEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SecurityEvent{config: sec.config}
		_spec = sqlgraph.NewCreateSpec(securityevent.Table, sqlgraph.NewFieldSpec(securityevent.FieldID, field.TypeUUID))
	)
	if id, ok := sec.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := sec.mutation.EventType(); ok {
		_spec.SetField(securityevent.FieldEventType, field.TypeEnum, value)
		_node.EventType = value
	}
	if value, ok := sec.mutation.IPAddress(); ok {
		_spec.SetField(securityevent.FieldIPAddress, field.TypeString, value)
		_node.IPAddress = value
	}
	if value, ok := sec.mutation.UserAgent(); ok {
		_spec.SetField(securityevent.FieldUserAgent, field.TypeString, value)
		_node.UserAgent = value
	}
	if value, ok := sec.mutation.Description(); ok {
		_spec.SetField(securityevent.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := sec.mutation.Metadata(); ok {
		_spec.SetField(securityevent.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := sec.mutation.Severity(); ok {
		_spec.SetField(securityevent.FieldSeverity, field.TypeEnum, value)
		_node.Severity = value
	}
	if value, ok := sec.mutation.Resolved(); ok {
		_spec.SetField(securityevent.FieldResolved, field.TypeBool, value)
		_node.Resolved = value
	}
	if value, ok := sec.mutation.CreatedAt(); ok {
		_spec.SetField(securityevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := sec.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   securityevent.UserTable,
			Columns: []string{securityevent.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SecurityEventCreateBulk is the builder for creating many SecurityEvent entities in bulk.
type SecurityEventCreateBulk struct {
	config
	err      error
	builders []*SecurityEventCreate
}

// Save creates the SecurityEvent entities in the database.
func (secb *SecurityEventCreateBulk) Save(ctx context.Context) ([]*SecurityEvent, error) {
	if secb.err != nil {
		return nil, secb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(secb.builders))
	nodes := make([]*SecurityEvent, len(secb.builders))
	mutators := make([]Mutator, len(secb.builders))
	for i := range secb.builders {
		func(i int, root context.Context) {
			builder := secb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SecurityEventMutation)
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
					_, err = mutators[i+1].Mutate(root, secb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, secb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, secb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (secb *SecurityEventCreateBulk) SaveX(ctx context.Context) []*SecurityEvent {
	v, err := secb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (secb *SecurityEventCreateBulk) Exec(ctx context.Context) error {
	_, err := secb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (secb *SecurityEventCreateBulk) ExecX(ctx context.Context) {
	if err := secb.Exec(ctx); err != nil {
		panic(err)
	}
}
