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
	"github.com/omerfdemir/pickuptracker/ent/generated/locationlog"
	"github.com/omerfdemir/pickuptracker/ent/generated/predicate"
	"github.com/omerfdemir/pickuptracker/ent/generated/task"
)

// LocationLogQuery is the builder for querying LocationLog entities.
type LocationLogQuery struct {
	config
	ctx        *QueryContext
	order      []locationlog.OrderOption
	inters     []Interceptor
	predicates []predicate.LocationLog
	withTask   *TaskQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the LocationLogQuery builder.
func (llq *LocationLogQuery) Where(ps ...predicate.LocationLog) *LocationLogQuery {
	llq.predicates = append(llq.predicates, ps...)
	return llq
}

// Limit the number of records to be returned by this query.
func (llq *LocationLogQuery) Limit(limit int) *LocationLogQuery {
	llq.ctx.Limit = &limit
	return llq
}

// Offset to start from.
func (llq *LocationLogQuery) Offset(offset int) *LocationLogQuery {
	llq.ctx.Offset = &offset
	return llq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (llq *LocationLogQuery) Unique(unique bool) *LocationLogQuery {
	llq.ctx.Unique = &unique
	return llq
}

// Order specifies how the records should be ordered.
func (llq *LocationLogQuery) Order(o ...locationlog.OrderOption) *LocationLogQuery {
	llq.order = append(llq.order, o...)
	return llq
}

// QueryTask chains the current query on the "task" edge.
func (llq *LocationLogQuery) QueryTask() *TaskQuery {
	query := (&TaskClient{config: llq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := llq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := llq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(locationlog.Table, locationlog.FieldID, selector),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, locationlog.TaskTable, locationlog.TaskColumn),
		)
		fromU = sqlgraph.SetNeighbors(llq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first LocationLog entity from the query.
// Returns a *NotFoundError when no LocationLog was found.
func (llq *LocationLogQuery) First(ctx context.Context) (*LocationLog, error) {
	nodes, err := llq.Limit(1).All(setContextOp(ctx, llq.ctx, "First"))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{locationlog.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (llq *LocationLogQuery) FirstX(ctx context.Context) *LocationLog {
	node, err := llq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first LocationLog ID from the query.
// Returns a *NotFoundError when no LocationLog ID was found.
func (llq *LocationLogQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = llq.Limit(1).IDs(setContextOp(ctx, llq.ctx, "FirstID")); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{locationlog.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (llq *LocationLogQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := llq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single LocationLog entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one LocationLog entity is found.
// Returns a *NotFoundError when no LocationLog entities are found.
func (llq *LocationLogQuery) Only(ctx context.Context) (*LocationLog, error) {
	nodes, err := llq.Limit(2).All(setContextOp(ctx, llq.ctx, "Only"))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{locationlog.Label}
	default:
		return nil, &NotSingularError{locationlog.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (llq *LocationLogQuery) OnlyX(ctx context.Context) *LocationLog {
	node, err := llq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only LocationLog ID in the query.
// Returns a *NotSingularError when more than one LocationLog ID is found.
// Returns a *NotFoundError when no entities are found.
func (llq *LocationLogQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = llq.Limit(2).IDs(setContextOp(ctx, llq.ctx, "OnlyID")); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{locationlog.Label}
	default:
		err = &NotSingularError{locationlog.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (llq *LocationLogQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := llq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of LocationLogs.
func (llq *LocationLogQuery) All(ctx context.Context) ([]*LocationLog, error) {
	ctx = setContextOp(ctx, llq.ctx, "All")
	if err := llq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*LocationLog, *LocationLogQuery]()
	return withInterceptors[[]*LocationLog](ctx, llq, qr, llq.inters)
}

// AllX is like All, but panics if an error occurs.
func (llq *LocationLogQuery) AllX(ctx context.Context) []*LocationLog {
	nodes, err := llq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of LocationLog IDs.
func (llq *LocationLogQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if llq.ctx.Unique == nil && llq.path != nil {
		llq.Unique(true)
	}
	ctx = setContextOp(ctx, llq.ctx, "IDs")
	if err = llq.Select(locationlog.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (llq *LocationLogQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := llq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (llq *LocationLogQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, llq.ctx, "Count")
	if err := llq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, llq, querierCount[*LocationLogQuery](), llq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (llq *LocationLogQuery) CountX(ctx context.Context) int {
	count, err := llq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (llq *LocationLogQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, llq.ctx, "Exist")
	switch _, err := llq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("generated: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (llq *LocationLogQuery) ExistX(ctx context.Context) bool {
	exist, err := llq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the LocationLogQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (llq *LocationLogQuery) Clone() *LocationLogQuery {
	if llq == nil {
		return nil
	}
	return &LocationLogQuery{
		config:     llq.config,
		ctx:        llq.ctx.Clone(),
		order:      append([]locationlog.OrderOption{}, llq.order...),
		inters:     append([]Interceptor{}, llq.inters...),
		predicates: append([]predicate.LocationLog{}, llq.predicates...),
		withTask:   llq.withTask.Clone(),
		// clone intermediate query.
		sql:  llq.sql.Clone(),
		path: llq.path,
	}
}

// WithTask tells the query-builder to eager-load the nodes that are connected to
// the "task" edge. The optional arguments are used to configure the query builder of the edge.
func (llq *LocationLogQuery) WithTask(opts ...func(*TaskQuery)) *LocationLogQuery {
	query := (&TaskClient{config: llq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	llq.withTask = query
	return llq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		TaskID uuid.UUID `json:"task_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.LocationLog.Query().
//		GroupBy(locationlog.FieldTaskID).
//		Aggregate(generated.Count()).
//		Scan(ctx, &v)
func (llq *LocationLogQuery) GroupBy(field string, fields ...string) *LocationLogGroupBy {
	llq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &LocationLogGroupBy{build: llq}
	grbuild.flds = &llq.ctx.Fields
	grbuild.label = locationlog.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		TaskID uuid.UUID `json:"task_id,omitempty"`
//	}
//
//	client.LocationLog.Query().
//		Select(locationlog.FieldTaskID).
//		Scan(ctx, &v)
func (llq *LocationLogQuery) Select(fields ...string) *LocationLogSelect {
	llq.ctx.Fields = append(llq.ctx.Fields, fields...)
	sbuild := &LocationLogSelect{LocationLogQuery: llq}
	sbuild.label = locationlog.Label
	sbuild.flds, sbuild.scan = &llq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a LocationLogSelect configured with the given aggregations.
func (llq *LocationLogQuery) Aggregate(fns ...AggregateFunc) *LocationLogSelect {
	return llq.Select().Aggregate(fns...)
}

func (llq *LocationLogQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range llq.inters {
		if inter == nil {
			return fmt.Errorf("generated: uninitialized interceptor (forgotten import generated/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, llq); err != nil {
				return err
			}
		}
	}
	for _, f := range llq.ctx.Fields {
		if !locationlog.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
		}
	}
	if llq.path != nil {
		prev, err := llq.path(ctx)
		if err != nil {
			return err
		}
		llq.sql = prev
	}
	return nil
}

func (llq *LocationLogQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*LocationLog, error) {
	var (
		nodes       = []*LocationLog{}
		_spec       = llq.querySpec()
		loadedTypes = [1]bool{
			llq.withTask != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*LocationLog).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &LocationLog{config: llq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, llq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := llq.withTask; query != nil {
		if err := llq.loadTask(ctx, query, nodes, nil,
			func(n *LocationLog, e *Task) { n.Edges.Task = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (llq *LocationLogQuery) loadTask(ctx context.Context, query *TaskQuery, nodes []*LocationLog, init func(*LocationLog), assign func(*LocationLog, *Task)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*LocationLog)
	for i := range nodes {
		fk := nodes[i].TaskID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(task.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "task_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (llq *LocationLogQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := llq.querySpec()
	_spec.Node.Columns = llq.ctx.Fields
	if len(llq.ctx.Fields) > 0 {
		_spec.Unique = llq.ctx.Unique != nil && *llq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, llq.driver, _spec)
}

func (llq *LocationLogQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(locationlog.Table, locationlog.Columns, sqlgraph.NewFieldSpec(locationlog.FieldID, field.TypeUUID))
	_spec.From = llq.sql
	if unique := llq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if llq.path != nil {
		_spec.Unique = true
	}
	if fields := llq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, locationlog.FieldID)
		for i := range fields {
			if fields[i] != locationlog.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if llq.withTask != nil {
			_spec.Node.AddColumnOnce(locationlog.FieldTaskID)
		}
	}
	if ps := llq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := llq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := llq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := llq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (llq *LocationLogQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(llq.driver.Dialect())
	t1 := builder.Table(locationlog.Table)
	columns := llq.ctx.Fields
	if len(columns) == 0 {
		columns = locationlog.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if llq.sql != nil {
		selector = llq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if llq.ctx.Unique != nil && *llq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range llq.predicates {
		p(selector)
	}
	for _, p := range llq.order {
		p(selector)
	}
	if offset := llq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := llq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// LocationLogGroupBy is the group-by builder for LocationLog entities.
type LocationLogGroupBy struct {
	selector
	build *LocationLogQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (llgb *LocationLogGroupBy) Aggregate(fns ...AggregateFunc) *LocationLogGroupBy {
	llgb.fns = append(llgb.fns, fns...)
	return llgb
}

// Scan applies the selector query and scans the result into the given value.
func (llgb *LocationLogGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, llgb.build.ctx, "GroupBy")
	if err := llgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LocationLogQuery, *LocationLogGroupBy](ctx, llgb.build, llgb, llgb.build.inters, v)
}

func (llgb *LocationLogGroupBy) sqlScan(ctx context.Context, root *LocationLogQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(llgb.fns))
	for _, fn := range llgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*llgb.flds)+len(llgb.fns))
		for _, f := range *llgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*llgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := llgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// LocationLogSelect is the builder for selecting fields of LocationLog entities.
type LocationLogSelect struct {
	*LocationLogQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (lls *LocationLogSelect) Aggregate(fns ...AggregateFunc) *LocationLogSelect {
	lls.fns = append(lls.fns, fns...)
	return lls
}

// Scan applies the selector query and scans the result into the given value.
func (lls *LocationLogSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, lls.ctx, "Select")
	if err := lls.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LocationLogQuery, *LocationLogSelect](ctx, lls.LocationLogQuery, lls, lls.inters, v)
}

func (lls *LocationLogSelect) sqlScan(ctx context.Context, root *LocationLogQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(lls.fns))
	for _, fn := range lls.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*lls.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := lls.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
