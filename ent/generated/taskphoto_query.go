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
	"github.com/omerfdemir/pickuptracker/ent/generated/task"
	"github.com/omerfdemir/pickuptracker/ent/generated/taskphoto"
)

// TaskPhotoQuery is the builder for querying TaskPhoto entities.
type TaskPhotoQuery struct {
	config
	ctx        *QueryContext
	order      []taskphoto.OrderOption
	inters     []Interceptor
	predicates []predicate.TaskPhoto
	withTask   *TaskQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the TaskPhotoQuery builder.
func (tpq *TaskPhotoQuery) Where(ps ...predicate.TaskPhoto) *TaskPhotoQuery {
	tpq.predicates = append(tpq.predicates, ps...)
	return tpq
}

// Limit the number of records to be returned by this query.
func (tpq *TaskPhotoQuery) Limit(limit int) *TaskPhotoQuery {
	tpq.ctx.Limit = &limit
	return tpq
}

// Offset to start from.
func (tpq *TaskPhotoQuery) Offset(offset int) *TaskPhotoQuery {
	tpq.ctx.Offset = &offset
	return tpq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (tpq *TaskPhotoQuery) Unique(unique bool) *TaskPhotoQuery {
	tpq.ctx.Unique = &unique
	return tpq
}

// Order specifies how the records should be ordered.
func (tpq *TaskPhotoQuery) Order(o ...taskphoto.OrderOption) *TaskPhotoQuery {
	tpq.order = append(tpq.order, o...)
	return tpq
}

// QueryTask chains the current query on the "task" edge.
func (tpq *TaskPhotoQuery) QueryTask() *TaskQuery {
	query := (&TaskClient{config: tpq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := tpq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := tpq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(taskphoto.Table, taskphoto.FieldID, selector),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, taskphoto.TaskTable, taskphoto.TaskColumn),
		)
		fromU = sqlgraph.SetNeighbors(tpq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first TaskPhoto entity from the query.
// Returns a *NotFoundError when no TaskPhoto was found.
func (tpq *TaskPhotoQuery) First(ctx context.Context) (*TaskPhoto, error) {
	nodes, err := tpq.Limit(1).All(setContextOp(ctx, tpq.ctx, "First"))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{taskphoto.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (tpq *TaskPhotoQuery) FirstX(ctx context.Context) *TaskPhoto {
	node, err := tpq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first TaskPhoto ID from the query.
// Returns a *NotFoundError when no TaskPhoto ID was found.
func (tpq *TaskPhotoQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = tpq.Limit(1).IDs(setContextOp(ctx, tpq.ctx, "FirstID")); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{taskphoto.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (tpq *TaskPhotoQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := tpq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single TaskPhoto entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one TaskPhoto entity is found.
// Returns a *NotFoundError when no TaskPhoto entities are found.
func (tpq *TaskPhotoQuery) Only(ctx context.Context) (*TaskPhoto, error) {
	nodes, err := tpq.Limit(2).All(setContextOp(ctx, tpq.ctx, "Only"))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{taskphoto.Label}
	default:
		return nil, &NotSingularError{taskphoto.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (tpq *TaskPhotoQuery) OnlyX(ctx context.Context) *TaskPhoto {
	node, err := tpq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only TaskPhoto ID in the query.
// Returns a *NotSingularError when more than one TaskPhoto ID is found.
// Returns a *NotFoundError when no entities are found.
func (tpq *TaskPhotoQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = tpq.Limit(2).IDs(setContextOp(ctx, tpq.ctx, "OnlyID")); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{taskphoto.Label}
	default:
		err = &NotSingularError{taskphoto.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (tpq *TaskPhotoQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := tpq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of TaskPhotos.
func (tpq *TaskPhotoQuery) All(ctx context.Context) ([]*TaskPhoto, error) {
	ctx = setContextOp(ctx, tpq.ctx, "All")
	if err := tpq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*TaskPhoto, *TaskPhotoQuery]()
	return withInterceptors[[]*TaskPhoto](ctx, tpq, qr, tpq.inters)
}

// AllX is like All, but panics if an error occurs.
func (tpq *TaskPhotoQuery) AllX(ctx context.Context) []*TaskPhoto {
	nodes, err := tpq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of TaskPhoto IDs.
func (tpq *TaskPhotoQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if tpq.ctx.Unique == nil && tpq.path != nil {
		tpq.Unique(true)
	}
	ctx = setContextOp(ctx, tpq.ctx, "IDs")
	if err = tpq.Select(taskphoto.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (tpq *TaskPhotoQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := tpq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (tpq *TaskPhotoQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, tpq.ctx, "Count")
	if err := tpq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, tpq, querierCount[*TaskPhotoQuery](), tpq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (tpq *TaskPhotoQuery) CountX(ctx context.Context) int {
	count, err := tpq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (tpq *TaskPhotoQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, tpq.ctx, "Exist")
	switch _, err := tpq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("generated: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (tpq *TaskPhotoQuery) ExistX(ctx context.Context) bool {
	exist, err := tpq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the TaskPhotoQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (tpq *TaskPhotoQuery) Clone() *TaskPhotoQuery {
	if tpq == nil {
		return nil
	}
	return &TaskPhotoQuery{
		config:     tpq.config,
		ctx:        tpq.ctx.Clone(),
		order:      append([]taskphoto.OrderOption{}, tpq.order...),
		inters:     append([]Interceptor{}, tpq.inters...),
		predicates: append([]predicate.TaskPhoto{}, tpq.predicates...),
		withTask:   tpq.withTask.Clone(),
		// clone intermediate query.
		sql:  tpq.sql.Clone(),
		path: tpq.path,
	}
}

// WithTask tells the query-builder to eager-load the nodes that are connected to
// the "task" edge. The optional arguments are used to configure the query builder of the edge.
func (tpq *TaskPhotoQuery) WithTask(opts ...func(*TaskQuery)) *TaskPhotoQuery {
	query := (&TaskClient{config: tpq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	tpq.withTask = query
	return tpq
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
//	client.TaskPhoto.Query().
//		GroupBy(taskphoto.FieldTaskID).
//		Aggregate(generated.Count()).
//		Scan(ctx, &v)
func (tpq *TaskPhotoQuery) GroupBy(field string, fields ...string) *TaskPhotoGroupBy {
	tpq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &TaskPhotoGroupBy{build: tpq}
	grbuild.flds = &tpq.ctx.Fields
	grbuild.label = taskphoto.Label
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
//	client.TaskPhoto.Query().
//		Select(taskphoto.FieldTaskID).
//		Scan(ctx, &v)
func (tpq *TaskPhotoQuery) Select(fields ...string) *TaskPhotoSelect {
	tpq.ctx.Fields = append(tpq.ctx.Fields, fields...)
	sbuild := &TaskPhotoSelect{TaskPhotoQuery: tpq}
	sbuild.label = taskphoto.Label
	sbuild.flds, sbuild.scan = &tpq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a TaskPhotoSelect configured with the given aggregations.
func (tpq *TaskPhotoQuery) Aggregate(fns ...AggregateFunc) *TaskPhotoSelect {
	return tpq.Select().Aggregate(fns...)
}

func (tpq *TaskPhotoQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range tpq.inters {
		if inter == nil {
			return fmt.Errorf("generated: uninitialized interceptor (forgotten import generated/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, tpq); err != nil {
				return err
			}
		}
	}
	for _, f := range tpq.ctx.Fields {
		if !taskphoto.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
		}
	}
	if tpq.path != nil {
		prev, err := tpq.path(ctx)
		if err != nil {
			return err
		}
		tpq.sql = prev
	}
	return nil
}

func (tpq *TaskPhotoQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*TaskPhoto, error) {
	var (
		nodes       = []*TaskPhoto{}
		_spec       = tpq.querySpec()
		loadedTypes = [1]bool{
			tpq.withTask != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*TaskPhoto).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &TaskPhoto{config: tpq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, tpq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := tpq.withTask; query != nil {
		if err := tpq.loadTask(ctx, query, nodes, nil,
			func(n *TaskPhoto, e *Task) { n.Edges.Task = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (tpq *TaskPhotoQuery) loadTask(ctx context.Context, query *TaskQuery, nodes []*TaskPhoto, init func(*TaskPhoto), assign func(*TaskPhoto, *Task)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*TaskPhoto)
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

func (tpq *TaskPhotoQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := tpq.querySpec()
	_spec.Node.Columns = tpq.ctx.Fields
	if len(tpq.ctx.Fields) > 0 {
		_spec.Unique = tpq.ctx.Unique != nil && *tpq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, tpq.driver, _spec)
}

func (tpq *TaskPhotoQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(taskphoto.Table, taskphoto.Columns, sqlgraph.NewFieldSpec(taskphoto.FieldID, field.TypeUUID))
	_spec.From = tpq.sql
	if unique := tpq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if tpq.path != nil {
		_spec.Unique = true
	}
	if fields := tpq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taskphoto.FieldID)
		for i := range fields {
			if fields[i] != taskphoto.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if tpq.withTask != nil {
			_spec.Node.AddColumnOnce(taskphoto.FieldTaskID)
		}
	}
	if ps := tpq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := tpq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := tpq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := tpq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (tpq *TaskPhotoQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(tpq.driver.Dialect())
	t1 := builder.Table(taskphoto.Table)
	columns := tpq.ctx.Fields
	if len(columns) == 0 {
		columns = taskphoto.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if tpq.sql != nil {
		selector = tpq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if tpq.ctx.Unique != nil && *tpq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range tpq.predicates {
		p(selector)
	}
	for _, p := range tpq.order {
		p(selector)
	}
	if offset := tpq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := tpq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// TaskPhotoGroupBy is the group-by builder for TaskPhoto entities.
type TaskPhotoGroupBy struct {
	selector
	build *TaskPhotoQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (tpgb *TaskPhotoGroupBy) Aggregate(fns ...AggregateFunc) *TaskPhotoGroupBy {
	tpgb.fns = append(tpgb.fns, fns...)
	return tpgb
}

// Scan applies the selector query and scans the result into the given value.
func (tpgb *TaskPhotoGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, tpgb.build.ctx, "GroupBy")
	if err := tpgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TaskPhotoQuery, *TaskPhotoGroupBy](ctx, tpgb.build, tpgb, tpgb.build.inters, v)
}

func (tpgb *TaskPhotoGroupBy) sqlScan(ctx context.Context, root *TaskPhotoQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(tpgb.fns))
	for _, fn := range tpgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*tpgb.flds)+len(tpgb.fns))
		for _, f := range *tpgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*tpgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := tpgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// TaskPhotoSelect is the builder for selecting fields of TaskPhoto entities.
type TaskPhotoSelect struct {
	*TaskPhotoQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (tps *TaskPhotoSelect) Aggregate(fns ...AggregateFunc) *TaskPhotoSelect {
	tps.fns = append(tps.fns, fns...)
	return tps
}

// Scan applies the selector query and scans the result into the given value.
func (tps *TaskPhotoSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, tps.ctx, "Select")
	if err := tps.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TaskPhotoQuery, *TaskPhotoSelect](ctx, tps.TaskPhotoQuery, tps, tps.inters, v)
}

func (tps *TaskPhotoSelect) sqlScan(ctx context.Context, root *TaskPhotoQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(tps.fns))
	for _, fn := range tps.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*tps.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := tps.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
