// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/omerfdemir/pickuptracker/ent/generated/predicate"
	"github.com/omerfdemir/pickuptracker/ent/generated/securityevent"
	"github.com/omerfdemir/pickuptracker/ent/generated/user"
)

// SecurityEventQuery is the builder for querying SecurityEvent entities.
type SecurityEventQuery struct {
	config
	ctx        *QueryContext
	order      []securityevent.OrderOption
	inters     []Interceptor
	predicates []predicate.SecurityEvent
	withUser   *UserQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the SecurityEventQuery builder.
func (seq *SecurityEventQuery) Where(ps ...predicate.SecurityEvent) *SecurityEventQuery {
	seq.predicates = append(seq.predicates, ps...)
	return seq
}

// Limit the number of records to be returned by this query.
func (seq *SecurityEventQuery) Limit(limit int) *SecurityEventQuery {
	seq.ctx.Limit = &limit
	return seq
}

// Offset to start from.
func (seq *SecurityEventQuery) Offset(offset int) *SecurityEventQuery {
	seq.ctx.Offset = &offset
	return seq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (seq *SecurityEventQuery) Unique(unique bool) *SecurityEventQuery {
	seq.ctx.Unique = &unique
	return seq
}

// Order specifies how the records should be ordered.
func (seq *SecurityEventQuery) Order(o ...securityevent.OrderOption) *SecurityEventQuery {
	seq.order = append(seq.order, o...)
	return seq
}

// QueryUser chains the current query on the "user" edge.
func (seq *SecurityEventQuery) QueryUser() *UserQuery {
	query := (&UserClient{config: seq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := seq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := seq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(securityevent.Table, securityevent.FieldID, selector),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, securityevent.UserTable, securityevent.UserColumn),
		)
		fromU = sqlgraph.SetNeighbors(seq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first SecurityEvent entity from the query.
// Returns a *NotFoundError when no SecurityEvent was found.
func (seq *SecurityEventQuery) First(ctx context.Context) (*SecurityEvent, error) {
	nodes, err := seq.Limit(1).All(setContextOp(ctx, seq.ctx, "First"))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{securityevent.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (seq *SecurityEventQuery) FirstX(ctx context.Context) *SecurityEvent {
	node, err := seq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first SecurityEvent ID from the query.
// Returns a *NotFoundError when no SecurityEvent ID was found.
func (seq *SecurityEventQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = seq.Limit(1).IDs(setContextOp(ctx, seq.ctx, "FirstID")); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{securityevent.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (seq *SecurityEventQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := seq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single SecurityEvent entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one SecurityEvent entity is found.
// Returns a *NotFoundError when no SecurityEvent entities are found.
func (seq *SecurityEventQuery) Only(ctx context.Context) (*SecurityEvent, error) {
	nodes, err := seq.Limit(2).All(setContextOp(ctx, seq.ctx, "Only"))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{securityevent.Label}
	default:
		return nil, &NotSingularError{securityevent.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (seq *SecurityEventQuery) OnlyX(ctx context.Context) *SecurityEvent {
	node, err := seq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only SecurityEvent ID in the query.
// Returns a *NotSingularError when more than one SecurityEvent ID is found.
// Returns a *NotFoundError when no entities are found.
func (seq *SecurityEventQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = seq.Limit(2).IDs(setContextOp(ctx, seq.ctx, "OnlyID")); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{securityevent.Label}
	default:
		err = &NotSingularError{securityevent.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (seq *SecurityEventQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := seq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of SecurityEvents.
func (seq *SecurityEventQuery) All(ctx context.Context) ([]*SecurityEvent, error) {
	ctx = setContextOp(ctx, seq.ctx, "All")
	if err := seq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*SecurityEvent, *SecurityEventQuery]()
	return withInterceptors[[]*SecurityEvent](ctx, seq, qr, seq.inters)
}

// AllX is like All, but panics if an error occurs.
func (seq *SecurityEventQuery) AllX(ctx context.Context) []*SecurityEvent {
	nodes, err := seq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of SecurityEvent IDs.
func (seq *SecurityEventQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if seq.ctx.Unique == nil && seq.path != nil {
		seq.Unique(true)
	}
	ctx = setContextOp(ctx, seq.ctx, "IDs")
	if err = seq.Select(securityevent.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (seq *SecurityEventQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := seq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (seq *SecurityEventQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, seq.ctx, "Count")
	if err := seq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, seq, querierCount[*SecurityEventQuery](), seq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (seq *SecurityEventQuery) CountX(ctx context.Context) int {
	count, err := seq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (seq *SecurityEventQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, seq.ctx, "Exist")
	switch _, err := seq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("generated: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (seq *SecurityEventQuery) ExistX(ctx context.Context) bool {
	exist, err := seq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the SecurityEventQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (seq *SecurityEventQuery) Clone() *SecurityEventQuery {
	if seq == nil {
		return nil
	}
	return &SecurityEventQuery{
		config:     seq.config,
		ctx:        seq.ctx.Clone(),
		order:      append([]securityevent.OrderOption{}, seq.order...),
		inters:     append([]Interceptor{}, seq.inters...),
		predicates: append([]predicate.SecurityEvent{}, seq.predicates...),
		withUser:   seq.withUser.Clone(),
		// clone intermediate query.
		sql:  seq.sql.Clone(),
		path: seq.path,
	}
}

// WithUser tells the query-builder to eager-load the nodes that are connected to
// the "user" edge. The optional arguments are used to configure the query builder of the edge.
func (seq *SecurityEventQuery) WithUser(opts ...func(*UserQuery)) *SecurityEventQuery {
	query := (&UserClient{config: seq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	seq.withUser = query
	return seq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		UserID uuid.UUID `json:"user_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.SecurityEvent.Query().
//		GroupBy(securityevent.FieldUserID).
//		Aggregate(generated.Count()).
//		Scan(ctx, &v)
func (seq *SecurityEventQuery) GroupBy(field string, fields ...string) *SecurityEventGroupBy {
	seq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &SecurityEventGroupBy{build: seq}
	grbuild.flds = &seq.ctx.Fields
	grbuild.label = securityevent.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		UserID uuid.UUID `json:"user_id,omitempty"`
//	}
//
//	client.SecurityEvent.Query().
//		Select(securityevent.FieldUserID).
//		Scan(ctx, &v)
func (seq *SecurityEventQuery) Select(fields ...string) *SecurityEventSelect {
	seq.ctx.Fields = append(seq.ctx.Fields, fields...)
	sbuild := &SecurityEventSelect{SecurityEventQuery: seq}
	sbuild.label = securityevent.Label
	sbuild.flds, sbuild.scan = &seq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a SecurityEventSelect configured with the given aggregations.
func (seq *SecurityEventQuery) Aggregate(fns ...AggregateFunc) *SecurityEventSelect {
	return seq.Select().Aggregate(fns...)
}

func (seq *SecurityEventQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range seq.inters {
		if inter == nil {
			return fmt.Errorf("generated: uninitialized interceptor (forgotten import generated/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, seq); err != nil {
				return err
			}
		}
	}
	for _, f := range seq.ctx.Fields {
		if !securityevent.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
		}
	}
	if seq.path != nil {
		prev, err := seq.path(ctx)
		if err != nil {
			return err
		}
		seq.sql = prev
	}
	return nil
}

func (seq *SecurityEventQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*SecurityEvent, error) {
	var (
		nodes       = []*SecurityEvent{}
		_spec       = seq.querySpec()
		loadedTypes = [1]bool{
			seq.withUser != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*SecurityEvent).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &SecurityEvent{config: seq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, seq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := seq.withUser; query != nil {
		if err := seq.loadUser(ctx, query, nodes, nil,
			func(n *SecurityEvent, e *User) { n.Edges.User = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (seq *SecurityEventQuery) loadUser(ctx context.Context, query *UserQuery, nodes []*SecurityEvent, init func(*SecurityEvent), assign func(*SecurityEvent, *User)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*SecurityEvent)
	for i := range nodes {
		if nodes[i].UserID == nil {
			continue
		}
		fk := *nodes[i].UserID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(user.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "user_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (seq *SecurityEventQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := seq.querySpec()
	_spec.Node.Columns = seq.ctx.Fields
	if len(seq.ctx.Fields) > 0 {
		_spec.Unique = seq.ctx.Unique != nil && *seq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, seq.driver, _spec)
}

func (seq *SecurityEventQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(securityevent.Table, securityevent.Columns, sqlgraph.NewFieldSpec(securityevent.FieldID, field.TypeUUID))
	_spec.From = seq.sql
	if unique := seq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if seq.path != nil {
		_spec.Unique = true
	}
	if fields := seq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, securityevent.FieldID)
		for i := range fields {
			if fields[i] != securityevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if seq.withUser != nil {
			_spec.Node.AddColumnOnce(securityevent.FieldUserID)
		}
	}
	if ps := seq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := seq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := seq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := seq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (seq *SecurityEventQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(seq.driver.Dialect())
	t1 := builder.Table(securityevent.Table)
	columns := seq.ctx.Fields
	if len(columns) == 0 {
		columns = securityevent.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if seq.sql != nil {
		selector = seq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if seq.ctx.Unique != nil && *seq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range seq.predicates {
		p(selector)
	}
	for _, p := range seq.order {
		p(selector)
	}
	if offset := seq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := seq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// SecurityEventGroupBy is the group-by builder for SecurityEvent entities.
type SecurityEventGroupBy struct {
	selector
	build *SecurityEventQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (segb *SecurityEventGroupBy) Aggregate(fns ...AggregateFunc) *SecurityEventGroupBy {
	segb.fns = append(segb.fns, fns...)
	return segb
}

// Scan applies the selector query and scans the result into the given value.
func (segb *SecurityEventGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, segb.build.ctx, "GroupBy")
	if err := segb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SecurityEventQuery, *SecurityEventGroupBy](ctx, segb.build, segb, segb.build.inters, v)
}

func (segb *SecurityEventGroupBy) sqlScan(ctx context.Context, root *SecurityEventQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(segb.fns))
	for _, fn := range segb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*segb.flds)+len(segb.fns))
		for _, f := range *segb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*segb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := segb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// SecurityEventSelect is the builder for selecting fields of SecurityEvent entities.
type SecurityEventSelect struct {
	*SecurityEventQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (ses *SecurityEventSelect) Aggregate(fns ...AggregateFunc) *SecurityEventSelect {
	ses.fns = append(ses.fns, fns...)
	return ses
}

// Scan applies the selector query and scans the result into the given value.
func (ses *SecurityEventSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ses.ctx, "Select")
	if err := ses.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SecurityEventQuery, *SecurityEventSelect](ctx, ses.SecurityEventQuery, ses, ses.inters, v)
}

func (ses *SecurityEventSelect) sqlScan(ctx context.Context, root *SecurityEventQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(ses.fns))
	for _, fn := range ses.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*ses.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ses.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
