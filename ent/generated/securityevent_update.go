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
	"github.com/omerfdemir/pickuptracker/ent/generated/securityevent"
	"github.com/omerfdemir/pickuptracker/ent/generated/user"
)

// SecurityEventUpdate is the builder for updating SecurityEvent entities.
type SecurityEventUpdate struct {
	config
	hooks    []Hook
	mutation *SecurityEventMutation
}

// Where appends a list predicates to the SecurityEventUpdate builder.
func (seu *SecurityEventUpdate) Where(ps ...predicate.SecurityEvent) *SecurityEventUpdate {
	seu.mutation.Where(ps...)
	return seu
}

// SetUserID sets the "user_id" field.
func (seu *SecurityEventUpdate) SetUserID(u uuid.UUID) *SecurityEventUpdate {
	seu.mutation.SetUserID(u)
	return seu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (seu *SecurityEventUpdate) SetNillableUserID(u *uuid.UUID) *SecurityEventUpdate {
	if u != nil {
		seu.SetUserID(*u)
	}
	return seu
}

// ClearUserID clears the value of the "user_id" field.
func (seu *SecurityEventUpdate) ClearUserID() *SecurityEventUpdate {
	seu.mutation.ClearUserID()
	return seu
}

// SetEventType sets the "event_type" field.
func (seu *SecurityEventUpdate) SetEventType(st securityevent.EventType) *SecurityEventUpdate {
	seu.mutation.SetEventType(st)
	return seu
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (seu *SecurityEventUpdate) SetNillableEventType(st *securityevent.EventType) *SecurityEventUpdate {
	if st != nil {
		seu.SetEventType(*st)
	}
	return seu
}

// SetIPAddress sets the "ip_address" field.
func (seu *SecurityEventUpdate) SetIPAddress(s string) *SecurityEventUpdate {
	seu.mutation.SetIPAddress(s)
	return seu
}

// SetNillableIPAddress sets the "ip_address" field if the given value is not nil.
func (seu *SecurityEventUpdate) SetNillableIPAddress(s *string) *SecurityEventUpdate {
	if s != nil {
		seu.SetIPAddress(*s)
	}
	return seu
}

// ClearIPAddress clears the value of the "ip_address" field.
func (seu *SecurityEventUpdate) ClearIPAddress() *SecurityEventUpdate {
	seu.mutation.ClearIPAddress()
	return seu
}

// SetUserAgent sets the "user_agent" field.
func (seu *SecurityEventUpdate) SetUserAgent(s string) *SecurityEventUpdate {
	seu.mutation.SetUserAgent(s)
	return seu
}

// SetNillableUserAgent sets the "user_agent" field if the given value is not nil.
func (seu *SecurityEventUpdate) SetNillableUserAgent(s *string) *SecurityEventUpdate {
	if s != nil {
		seu.SetUserAgent(*s)
	}
	return seu
}

// ClearUserAgent clears the value of the "user_agent" field.
func (seu *SecurityEventUpdate) ClearUserAgent() *SecurityEventUpdate {
	seu.mutation.ClearUserAgent()
	return seu
}

// SetDescription sets the "description" field.
func (seu *SecurityEventUpdate) SetDescription(s string) *SecurityEventUpdate {
	seu.mutation.SetDescription(s)
	return seu
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (seu *SecurityEventUpdate) SetNillableDescription(s *string) *SecurityEventUpdate {
	if s != nil {
		seu.SetDescription(*s)
	}
	return seu
}

// ClearDescription clears the value of the "description" field.
func (seu *SecurityEventUpdate) ClearDescription() *SecurityEventUpdate {
	seu.mutation.ClearDescription()
	return seu
}

// SetMetadata sets the "metadata" field.
func (seu *SecurityEventUpdate) SetMetadata(m map[string]interface{}) *SecurityEventUpdate {
	seu.mutation.SetMetadata(m)
	return seu
}

// ClearMetadata clears the value of the "metadata" field.
func (seu *SecurityEventUpdate) ClearMetadata() *SecurityEventUpdate {
	seu.mutation.ClearMetadata()
	return seu
}

// SetSeverity sets the "severity" field.
func (seu *SecurityEventUpdate) SetSeverity(s securityevent.Severity) *SecurityEventUpdate {
	seu.mutation.SetSeverity(s)
	return seu
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (seu *SecurityEventUpdate) SetNillableSeverity(s *securityevent.Severity) *SecurityEventUpdate {
	if s != nil {
		seu.SetSeverity(*s)
	}
	return seu
}

// SetResolved sets the "resolved" field.
func (seu *SecurityEventUpdate) SetResolved(b bool) *SecurityEventUpdate {
	seu.mutation.SetResolved(b)
	return seu
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (seu *SecurityEventUpdate) SetNillableResolved(b *bool) *SecurityEventUpdate {
	if b != nil {
		seu.SetResolved(*b)
	}
	return seu
}

// SetUser sets the "user" edge to the User entity.
func (seu *SecurityEventUpdate) SetUser(u *User) *SecurityEventUpdate {
	return seu.SetUserID(u.ID)
}

// Mutation returns the SecurityEventMutation object of the builder.
func (seu *SecurityEventUpdate) Mutation() *SecurityEventMutation {
	return seu.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (seu *SecurityEventUpdate) ClearUser() *SecurityEventUpdate {
	seu.mutation.ClearUser()
	return seu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (seu *SecurityEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, seu.sqlSave, seu.mutation, seu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (seu *SecurityEventUpdate) SaveX(ctx context.Context) int {
	affected, err := seu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (seu *SecurityEventUpdate) Exec(ctx context.Context) error {
	_, err := seu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (seu *SecurityEventUpdate) ExecX(ctx context.Context) {
	if err := seu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (seu *SecurityEventUpdate) check() error {
	if v, ok := seu.mutation.EventType(); ok {
		if err := securityevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`generated: validator failed for field "SecurityEvent.event_type": %w`, err)}
		}
	}
	if v, ok := seu.mutation.Severity(); ok {
		if err := securityevent.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`generated: validator failed for field "SecurityEvent.severity": %w`, err)}
		}
	}
	return nil
}

func (seu *SecurityEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := seu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(securityevent.Table, securityevent.Columns, sqlgraph.NewFieldSpec(securityevent.FieldID, field.TypeUUID))
	if ps := seu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := seu.mutation.EventType(); ok {
		_spec.SetField(securityevent.FieldEventType, field.TypeEnum, value)
	}
	if value, ok := seu.mutation.IPAddress(); ok {
		_spec.SetField(securityevent.FieldIPAddress, field.TypeString, value)
	}
	if seu.mutation.IPAddressCleared() {
		_spec.ClearField(securityevent.FieldIPAddress, field.TypeString)
	}
	if value, ok := seu.mutation.UserAgent(); ok {
		_spec.SetField(securityevent.FieldUserAgent, field.TypeString, value)
	}
	if seu.mutation.UserAgentCleared() {
		_spec.ClearField(securityevent.FieldUserAgent, field.TypeString)
	}
	if value, ok := seu.mutation.Description(); ok {
		_spec.SetField(securityevent.FieldDescription, field.TypeString, value)
	}
	if seu.mutation.DescriptionCleared() {
		_spec.ClearField(securityevent.FieldDescription, field.TypeString)
	}
	if value, ok := seu.mutation.Metadata(); ok {
		_spec.SetField(securityevent.FieldMetadata, field.TypeJSON, value)
	}
	if seu.mutation.MetadataCleared() {
		_spec.ClearField(securityevent.FieldMetadata, field.TypeJSON)
	}
	if value, ok := seu.mutation.Severity(); ok {
		_spec.SetField(securityevent.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := seu.mutation.Resolved(); ok {
		_spec.SetField(securityevent.FieldResolved, field.TypeBool, value)
	}
	if seu.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := seu.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, seu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{securityevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	seu.mutation.done = true
	return n, nil
}

// SecurityEventUpdateOne is the builder for updating a single SecurityEvent entity.
type SecurityEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SecurityEventMutation
}

// SetUserID sets the "user_id" field.
func (seuo *SecurityEventUpdateOne) SetUserID(u uuid.UUID) *SecurityEventUpdateOne {
	seuo.mutation.SetUserID(u)
	return seuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (seuo *SecurityEventUpdateOne) SetNillableUserID(u *uuid.UUID) *SecurityEventUpdateOne {
	if u != nil {
		seuo.SetUserID(*u)
	}
	return seuo
}

// ClearUserID clears the value of the "user_id" field.
func (seuo *SecurityEventUpdateOne) ClearUserID() *SecurityEventUpdateOne {
	seuo.mutation.ClearUserID()
	return seuo
}

// SetEventType sets the "event_type" field.
func (seuo *SecurityEventUpdateOne) SetEventType(st securityevent.EventType) *SecurityEventUpdateOne {
	seuo.mutation.SetEventType(st)
	return seuo
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (seuo *SecurityEventUpdateOne) SetNillableEventType(st *securityevent.EventType) *SecurityEventUpdateOne {
	if st != nil {
		seuo.SetEventType(*st)
	}
	return seuo
}

// SetIPAddress sets the "ip_address" field.
func (seuo *SecurityEventUpdateOne) SetIPAddress(s string) *SecurityEventUpdateOne {
	seuo.mutation.SetIPAddress(s)
	return seuo
}

// SetNillableIPAddress sets the "ip_address" field if the given value is not nil.
func (seuo *SecurityEventUpdateOne) SetNillableIPAddress(s *string) *SecurityEventUpdateOne {
	if s != nil {
		seuo.SetIPAddress(*s)
	}
	return seuo
}

// ClearIPAddress clears the value of the "ip_address" field.
func (seuo *SecurityEventUpdateOne) ClearIPAddress() *SecurityEventUpdateOne {
	seuo.mutation.ClearIPAddress()
	return seuo
}

// SetUserAgent sets the "user_agent" field.
func (seuo *SecurityEventUpdateOne) SetUserAgent(s string) *SecurityEventUpdateOne {
	seuo.mutation.SetUserAgent(s)
	return seuo
}

// SetNillableUserAgent sets the "user_agent" field if the given value is not nil.
func (seuo *SecurityEventUpdateOne) SetNillableUserAgent(s *string) *SecurityEventUpdateOne {
	if s != nil {
		seuo.SetUserAgent(*s)
	}
	return seuo
}

// ClearUserAgent clears the value of the "user_agent" field.
func (seuo *SecurityEventUpdateOne) ClearUserAgent() *SecurityEventUpdateOne {
	seuo.mutation.ClearUserAgent()
	return seuo
}

// SetDescription sets the "description" field.
func (seuo *SecurityEventUpdateOne) SetDescription(s string) *SecurityEventUpdateOne {
	seuo.mutation.SetDescription(s)
	return seuo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (seuo *SecurityEventUpdateOne) SetNillableDescription(s *string) *SecurityEventUpdateOne {
	if s != nil {
		seuo.SetDescription(*s)
	}
	return seuo
}

// ClearDescription clears the value of the "description" field.
func (seuo *SecurityEventUpdateOne) ClearDescription() *SecurityEventUpdateOne {
	seuo.mutation.ClearDescription()
	return seuo
}

// SetMetadata sets the "metadata" field.
func (seuo *SecurityEventUpdateOne) SetMetadata(m map[string]interface{}) *SecurityEventUpdateOne {
	seuo.mutation.SetMetadata(m)
	return seuo
}

// ClearMetadata clears the value of the "metadata" field.
func (seuo *SecurityEventUpdateOne) ClearMetadata() *SecurityEventUpdateOne {
	seuo.mutation.ClearMetadata()
	return seuo
}

// SetSeverity sets the "severity" field.
func (seuo *SecurityEventUpdateOne) SetSeverity(s securityevent.Severity) *SecurityEventUpdateOne {
	seuo.mutation.SetSeverity(s)
	return seuo
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (seuo *SecurityEventUpdateOne) SetNillableSeverity(s *securityevent.Severity) *SecurityEventUpdateOne {
	if s != nil {
		seuo.SetSeverity(*s)
	}
	return seuo
}

// SetResolved sets the "resolved" field.
func (seuo *SecurityEventUpdateOne) SetResolved(b bool) *SecurityEventUpdateOne {
	seuo.mutation.SetResolved(b)
	return seuo
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (seuo *SecurityEventUpdateOne) SetNillableResolved(b *bool) *SecurityEventUpdateOne {
	if b != nil {
		seuo.SetResolved(*b)
	}
	return seuo
}

// SetUser sets the "user" edge to the User entity.
func (seuo *SecurityEventUpdateOne) SetUser(u *User) *SecurityEventUpdateOne {
	return seuo.SetUserID(u.ID)
}

// Mutation returns the SecurityEventMutation object of the builder.
func (seuo *SecurityEventUpdateOne) Mutation() *SecurityEventMutation {
	return seuo.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (seuo *SecurityEventUpdateOne) ClearUser() *SecurityEventUpdateOne {
	seuo.mutation.ClearUser()
	return seuo
}

// Where appends a list predicates to the SecurityEventUpdate builder.
func (seuo *SecurityEventUpdateOne) Where(ps ...predicate.SecurityEvent) *SecurityEventUpdateOne {
	seuo.mutation.Where(ps...)
	return seuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (seuo *SecurityEventUpdateOne) Select(field string, fields ...string) *SecurityEventUpdateOne {
	seuo.fields = append([]string{field}, fields...)
	return seuo
}

// Save executes the query and returns the updated SecurityEvent entity.
func (seuo *SecurityEventUpdateOne) Save(ctx context.Context) (*SecurityEvent, error) {
	return withHooks(ctx, seuo.sqlSave, seuo.mutation, seuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (seuo *SecurityEventUpdateOne) SaveX(ctx context.Context) *SecurityEvent {
	node, err := seuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (seuo *SecurityEventUpdateOne) Exec(ctx context.Context) error {
	_, err := seuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (seuo *SecurityEventUpdateOne) ExecX(ctx context.Context) {
	if err := seuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (seuo *SecurityEventUpdateOne) check() error {
	if v, ok := seuo.mutation.EventType(); ok {
		if err := securityevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`generated: validator failed for field "SecurityEvent.event_type": %w`, err)}
		}
	}
	if v, ok := seuo.mutation.Severity(); ok {
		if err := securityevent.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`generated: validator failed for field "SecurityEvent.severity": %w`, err)}
		}
	}
	return nil
}

func (seuo *SecurityEventUpdateOne) sqlSave(ctx context.Context) (_node *SecurityEvent, err error) {
	if err := seuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(securityevent.Table, securityevent.Columns, sqlgraph.NewFieldSpec(securityevent.FieldID, field.TypeUUID))
	id, ok := seuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "SecurityEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := seuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, securityevent.FieldID)
		for _, f := range fields {
			if !securityevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != securityevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := seuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := seuo.mutation.EventType(); ok {
		_spec.SetField(securityevent.FieldEventType, field.TypeEnum, value)
	}
	if value, ok := seuo.mutation.IPAddress(); ok {
		_spec.SetField(securityevent.FieldIPAddress, field.TypeString, value)
	}
	if seuo.mutation.IPAddressCleared() {
		_spec.ClearField(securityevent.FieldIPAddress, field.TypeString)
	}
	if value, ok := seuo.mutation.UserAgent(); ok {
		_spec.SetField(securityevent.FieldUserAgent, field.TypeString, value)
	}
	if seuo.mutation.UserAgentCleared() {
		_spec.ClearField(securityevent.FieldUserAgent, field.TypeString)
	}
	if value, ok := seuo.mutation.Description(); ok {
		_spec.SetField(securityevent.FieldDescription, field.TypeString, value)
	}
	if seuo.mutation.DescriptionCleared() {
		_spec.ClearField(securityevent.FieldDescription, field.TypeString)
	}
	if value, ok := seuo.mutation.Metadata(); ok {
		_spec.SetField(securityevent.FieldMetadata, field.TypeJSON, value)
	}
	if seuo.mutation.MetadataCleared() {
		_spec.ClearField(securityevent.FieldMetadata, field.TypeJSON)
	}
	if value, ok := seuo.mutation.Severity(); ok {
		_spec.SetField(securityevent.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := seuo.mutation.Resolved(); ok {
		_spec.SetField(securityevent.FieldResolved, field.TypeBool, value)
	}
	if seuo.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := seuo.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SecurityEvent{config: seuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, seuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{securityevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	seuo.mutation.done = true
	return _node, nil
}
