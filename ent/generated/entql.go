// Code generated by ent, DO NOT EDIT.

package generated

import (
	"github.com/omerfdemir/pickuptracker/ent/generated/item"
	"github.com/omerfdemir/pickuptracker/ent/generated/locationlog"
	"github.com/omerfdemir/pickuptracker/ent/generated/predicate"
	"github.com/omerfdemir/pickuptracker/ent/generated/securityevent"
	"github.com/omerfdemir/pickuptracker/ent/generated/task"
	"github.com/omerfdemir/pickuptracker/ent/generated/taskphoto"
	"github.com/omerfdemir/pickuptracker/ent/generated/user"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/entql"
	"entgo.io/ent/schema/field"
)

// schemaGraph holds a representation of ent/schema at runtime.
var schemaGraph = func() *sqlgraph.Schema {
	graph := &sqlgraph.Schema{Nodes: make([]*sqlgraph.Node, 6)}
	graph.Nodes[0] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   item.Table,
			Columns: item.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: item.FieldID,
			},
		},
		Type: "Item",
		Fields: map[string]*sqlgraph.FieldSpec{
			item.FieldTaskID:    {Type: field.TypeUUID, Column: item.FieldTaskID},
			item.FieldCategory:  {Type: field.TypeString, Column: item.FieldCategory},
			item.FieldQuantity:  {Type: field.TypeUint32, Column: item.FieldQuantity},
			item.FieldCondition: {Type: field.TypeEnum, Column: item.FieldCondition},
			item.FieldPosition:  {Type: field.TypeUint32, Column: item.FieldPosition},
			item.FieldCreatedAt: {Type: field.TypeTime, Column: item.FieldCreatedAt},
		},
	}
	graph.Nodes[1] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   locationlog.Table,
			Columns: locationlog.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: locationlog.FieldID,
			},
		},
		Type: "LocationLog",
		Fields: map[string]*sqlgraph.FieldSpec{
			locationlog.FieldTaskID:    {Type: field.TypeUUID, Column: locationlog.FieldTaskID},
			locationlog.FieldLatitude:  {Type: field.TypeFloat64, Column: locationlog.FieldLatitude},
			locationlog.FieldLongitude: {Type: field.TypeFloat64, Column: locationlog.FieldLongitude},
			locationlog.FieldEvent:     {Type: field.TypeEnum, Column: locationlog.FieldEvent},
			locationlog.FieldTimestamp: {Type: field.TypeTime, Column: locationlog.FieldTimestamp},
		},
	}
	graph.Nodes[2] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   securityevent.Table,
			Columns: securityevent.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: securityevent.FieldID,
			},
		},
		Type: "SecurityEvent",
		Fields: map[string]*sqlgraph.FieldSpec{
			securityevent.FieldUserID:      {Type: field.TypeUUID, Column: securityevent.FieldUserID},
			securityevent.FieldEventType:   {Type: field.TypeEnum, Column: securityevent.FieldEventType},
			securityevent.FieldIPAddress:   {Type: field.TypeString, Column: securityevent.FieldIPAddress},
			securityevent.FieldUserAgent:   {Type: field.TypeString, Column: securityevent.FieldUserAgent},
			securityevent.FieldDescription: {Type: field.TypeString, Column: securityevent.FieldDescription},
			securityevent.FieldMetadata:    {Type: field.TypeJSON, Column: securityevent.FieldMetadata},
			securityevent.FieldSeverity:    {Type: field.TypeEnum, Column: securityevent.FieldSeverity},
			securityevent.FieldResolved:    {Type: field.TypeBool, Column: securityevent.FieldResolved},
			securityevent.FieldCreatedAt:   {Type: field.TypeTime, Column: securityevent.FieldCreatedAt},
		},
	}
	graph.Nodes[3] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   task.Table,
			Columns: task.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: task.FieldID,
			},
		},
		Type: "Task",
		Fields: map[string]*sqlgraph.FieldSpec{
			task.FieldDonorName:         {Type: field.TypeString, Column: task.FieldDonorName},
			task.FieldAddress:           {Type: field.TypeString, Column: task.FieldAddress},
			task.FieldPhoneNumbers:      {Type: field.TypeString, Column: task.FieldPhoneNumbers},
			task.FieldLocationLink:      {Type: field.TypeString, Column: task.FieldLocationLink},
			task.FieldCategory:          {Type: field.TypeEnum, Column: task.FieldCategory},
			task.FieldQuantity:          {Type: field.TypeUint32, Column: task.FieldQuantity},
			task.FieldIsUrgent:          {Type: field.TypeBool, Column: task.FieldIsUrgent},
			task.FieldIsBroadcast:       {Type: field.TypeBool, Column: task.FieldIsBroadcast},
			task.FieldStatus:            {Type: field.TypeEnum, Column: task.FieldStatus},
			task.FieldVisitorFormFilled: {Type: field.TypeBool, Column: task.FieldVisitorFormFilled},
			task.FieldTrustNoticeGiven:  {Type: field.TypeBool, Column: task.FieldTrustNoticeGiven},
			task.FieldCreatedBy:         {Type: field.TypeUUID, Column: task.FieldCreatedBy},
			task.FieldAssignedTo:        {Type: field.TypeUUID, Column: task.FieldAssignedTo},
			task.FieldCreatedAt:         {Type: field.TypeTime, Column: task.FieldCreatedAt},
			task.FieldUpdatedAt:         {Type: field.TypeTime, Column: task.FieldUpdatedAt},
			task.FieldCompletedAt:       {Type: field.TypeTime, Column: task.FieldCompletedAt},
		},
	}
	graph.Nodes[4] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   taskphoto.Table,
			Columns: taskphoto.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: taskphoto.FieldID,
			},
		},
		Type: "TaskPhoto",
		Fields: map[string]*sqlgraph.FieldSpec{
			taskphoto.FieldTaskID:     {Type: field.TypeUUID, Column: taskphoto.FieldTaskID},
			taskphoto.FieldFilePath:   {Type: field.TypeString, Column: taskphoto.FieldFilePath},
			taskphoto.FieldPhotoType:  {Type: field.TypeEnum, Column: taskphoto.FieldPhotoType},
			taskphoto.FieldUploadedAt: {Type: field.TypeTime, Column: taskphoto.FieldUploadedAt},
		},
	}
	graph.Nodes[5] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   user.Table,
			Columns: user.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: user.FieldID,
			},
		},
		Type: "User",
		Fields: map[string]*sqlgraph.FieldSpec{
			user.FieldUsername:              {Type: field.TypeString, Column: user.FieldUsername},
			user.FieldPasswordHash:          {Type: field.TypeString, Column: user.FieldPasswordHash},
			user.FieldPhoneNumber:           {Type: field.TypeString, Column: user.FieldPhoneNumber},
			user.FieldRole:                  {Type: field.TypeEnum, Column: user.FieldRole},
			user.FieldIsSuperuser:           {Type: field.TypeBool, Column: user.FieldIsSuperuser},
			user.FieldFailedLoginAttempts:   {Type: field.TypeInt, Column: user.FieldFailedLoginAttempts},
			user.FieldAccountLockedUntil:    {Type: field.TypeTime, Column: user.FieldAccountLockedUntil},
			user.FieldLastLogin:             {Type: field.TypeTime, Column: user.FieldLastLogin},
			user.FieldRefreshToken:          {Type: field.TypeString, Column: user.FieldRefreshToken},
			user.FieldRefreshTokenExpiresAt: {Type: field.TypeTime, Column: user.FieldRefreshTokenExpiresAt},
			user.FieldCreatedAt:             {Type: field.TypeTime, Column: user.FieldCreatedAt},
			user.FieldUpdatedAt:             {Type: field.TypeTime, Column: user.FieldUpdatedAt},
		},
	}
	graph.MustAddE(
		"task",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   item.TaskTable,
			Columns: []string{item.TaskColumn},
			Bidi:    false,
		},
		"Item",
		"Task",
	)
	graph.MustAddE(
		"task",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   locationlog.TaskTable,
			Columns: []string{locationlog.TaskColumn},
			Bidi:    false,
		},
		"LocationLog",
		"Task",
	)
	graph.MustAddE(
		"user",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   securityevent.UserTable,
			Columns: []string{securityevent.UserColumn},
			Bidi:    false,
		},
		"SecurityEvent",
		"User",
	)
	graph.MustAddE(
		"creator",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.CreatorTable,
			Columns: []string{task.CreatorColumn},
			Bidi:    false,
		},
		"Task",
		"User",
	)
	graph.MustAddE(
		"assignee",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.AssigneeTable,
			Columns: []string{task.AssigneeColumn},
			Bidi:    false,
		},
		"Task",
		"User",
	)
	graph.MustAddE(
		"items",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ItemsTable,
			Columns: []string{task.ItemsColumn},
			Bidi:    false,
		},
		"Task",
		"Item",
	)
	graph.MustAddE(
		"photos",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.PhotosTable,
			Columns: []string{task.PhotosColumn},
			Bidi:    false,
		},
		"Task",
		"TaskPhoto",
	)
	graph.MustAddE(
		"location_logs",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.LocationLogsTable,
			Columns: []string{task.LocationLogsColumn},
			Bidi:    false,
		},
		"Task",
		"LocationLog",
	)
	graph.MustAddE(
		"task",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taskphoto.TaskTable,
			Columns: []string{taskphoto.TaskColumn},
			Bidi:    false,
		},
		"TaskPhoto",
		"Task",
	)
	graph.MustAddE(
		"created_tasks",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.CreatedTasksTable,
			Columns: []string{user.CreatedTasksColumn},
			Bidi:    false,
		},
		"User",
		"Task",
	)
	graph.MustAddE(
		"assigned_tasks",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.AssignedTasksTable,
			Columns: []string{user.AssignedTasksColumn},
			Bidi:    false,
		},
		"User",
		"Task",
	)
	graph.MustAddE(
		"security_events",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.SecurityEventsTable,
			Columns: []string{user.SecurityEventsColumn},
			Bidi:    false,
		},
		"User",
		"SecurityEvent",
	)
	return graph
}()

// predicateAdder wraps the addPredicate method.
// All update, update-one and query builders implement this interface.
type predicateAdder interface {
	addPredicate(func(s *sql.Selector))
}

// addPredicate implements the predicateAdder interface.
func (iq *ItemQuery) addPredicate(pred func(s *sql.Selector)) {
	iq.predicates = append(iq.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the ItemQuery builder.
func (iq *ItemQuery) Filter() *ItemFilter {
	return &ItemFilter{config: iq.config, predicateAdder: iq}
}

// addPredicate implements the predicateAdder interface.
func (m *ItemMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the ItemMutation builder.
func (m *ItemMutation) Filter() *ItemFilter {
	return &ItemFilter{config: m.config, predicateAdder: m}
}

// ItemFilter provides a generic filtering capability at runtime for ItemQuery.
type ItemFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *ItemFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[0].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *ItemFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(item.FieldID))
}

// WhereTaskID applies the entql [16]byte predicate on the task_id field.
func (f *ItemFilter) WhereTaskID(p entql.ValueP) {
	f.Where(p.Field(item.FieldTaskID))
}

// WhereCategory applies the entql string predicate on the category field.
func (f *ItemFilter) WhereCategory(p entql.StringP) {
	f.Where(p.Field(item.FieldCategory))
}

// WhereQuantity applies the entql uint32 predicate on the quantity field.
func (f *ItemFilter) WhereQuantity(p entql.Uint32P) {
	f.Where(p.Field(item.FieldQuantity))
}

// WhereCondition applies the entql string predicate on the condition field.
func (f *ItemFilter) WhereCondition(p entql.StringP) {
	f.Where(p.Field(item.FieldCondition))
}

// WherePosition applies the entql uint32 predicate on the position field.
func (f *ItemFilter) WherePosition(p entql.Uint32P) {
	f.Where(p.Field(item.FieldPosition))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *ItemFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(item.FieldCreatedAt))
}

// WhereHasTask applies a predicate to check if query has an edge task.
func (f *ItemFilter) WhereHasTask() {
	f.Where(entql.HasEdge("task"))
}

// WhereHasTaskWith applies a predicate to check if query has an edge task with a given conditions (other predicates).
func (f *ItemFilter) WhereHasTaskWith(preds ...predicate.Task) {
	f.Where(entql.HasEdgeWith("task", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (llq *LocationLogQuery) addPredicate(pred func(s *sql.Selector)) {
	llq.predicates = append(llq.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the LocationLogQuery builder.
func (llq *LocationLogQuery) Filter() *LocationLogFilter {
	return &LocationLogFilter{config: llq.config, predicateAdder: llq}
}

// addPredicate implements the predicateAdder interface.
func (m *LocationLogMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the LocationLogMutation builder.
func (m *LocationLogMutation) Filter() *LocationLogFilter {
	return &LocationLogFilter{config: m.config, predicateAdder: m}
}

// LocationLogFilter provides a generic filtering capability at runtime for LocationLogQuery.
type LocationLogFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *LocationLogFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[1].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *LocationLogFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(locationlog.FieldID))
}

// WhereTaskID applies the entql [16]byte predicate on the task_id field.
func (f *LocationLogFilter) WhereTaskID(p entql.ValueP) {
	f.Where(p.Field(locationlog.FieldTaskID))
}

// WhereLatitude applies the entql float64 predicate on the latitude field.
func (f *LocationLogFilter) WhereLatitude(p entql.Float64P) {
	f.Where(p.Field(locationlog.FieldLatitude))
}

// WhereLongitude applies the entql float64 predicate on the longitude field.
func (f *LocationLogFilter) WhereLongitude(p entql.Float64P) {
	f.Where(p.Field(locationlog.FieldLongitude))
}

// WhereEvent applies the entql string predicate on the event field.
func (f *LocationLogFilter) WhereEvent(p entql.StringP) {
	f.Where(p.Field(locationlog.FieldEvent))
}

// WhereTimestamp applies the entql time.Time predicate on the timestamp field.
func (f *LocationLogFilter) WhereTimestamp(p entql.TimeP) {
	f.Where(p.Field(locationlog.FieldTimestamp))
}

// WhereHasTask applies a predicate to check if query has an edge task.
func (f *LocationLogFilter) WhereHasTask() {
	f.Where(entql.HasEdge("task"))
}

// WhereHasTaskWith applies a predicate to check if query has an edge task with a given conditions (other predicates).
func (f *LocationLogFilter) WhereHasTaskWith(preds ...predicate.Task) {
	f.Where(entql.HasEdgeWith("task", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (seq *SecurityEventQuery) addPredicate(pred func(s *sql.Selector)) {
	seq.predicates = append(seq.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the SecurityEventQuery builder.
func (seq *SecurityEventQuery) Filter() *SecurityEventFilter {
	return &SecurityEventFilter{config: seq.config, predicateAdder: seq}
}

// addPredicate implements the predicateAdder interface.
func (m *SecurityEventMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the SecurityEventMutation builder.
func (m *SecurityEventMutation) Filter() *SecurityEventFilter {
	return &SecurityEventFilter{config: m.config, predicateAdder: m}
}

// SecurityEventFilter provides a generic filtering capability at runtime for SecurityEventQuery.
type SecurityEventFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *SecurityEventFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[2].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *SecurityEventFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(securityevent.FieldID))
}

// WhereUserID applies the entql [16]byte predicate on the user_id field.
func (f *SecurityEventFilter) WhereUserID(p entql.ValueP) {
	f.Where(p.Field(securityevent.FieldUserID))
}

// WhereEventType applies the entql string predicate on the event_type field.
func (f *SecurityEventFilter) WhereEventType(p entql.StringP) {
	f.Where(p.Field(securityevent.FieldEventType))
}

// WhereIPAddress applies the entql string predicate on the ip_address field.
func (f *SecurityEventFilter) WhereIPAddress(p entql.StringP) {
	f.Where(p.Field(securityevent.FieldIPAddress))
}

// WhereUserAgent applies the entql string predicate on the user_agent field.
func (f *SecurityEventFilter) WhereUserAgent(p entql.StringP) {
	f.Where(p.Field(securityevent.FieldUserAgent))
}

// WhereDescription applies the entql string predicate on the description field.
func (f *SecurityEventFilter) WhereDescription(p entql.StringP) {
	f.Where(p.Field(securityevent.FieldDescription))
}

// WhereMetadata applies the entql json.RawMessage predicate on the metadata field.
func (f *SecurityEventFilter) WhereMetadata(p entql.BytesP) {
	f.Where(p.Field(securityevent.FieldMetadata))
}

// WhereSeverity applies the entql string predicate on the severity field.
func (f *SecurityEventFilter) WhereSeverity(p entql.StringP) {
	f.Where(p.Field(securityevent.FieldSeverity))
}

// WhereResolved applies the entql bool predicate on the resolved field.
func (f *SecurityEventFilter) WhereResolved(p entql.BoolP) {
	f.Where(p.Field(securityevent.FieldResolved))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *SecurityEventFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(securityevent.FieldCreatedAt))
}

// WhereHasUser applies a predicate to check if query has an edge user.
func (f *SecurityEventFilter) WhereHasUser() {
	f.Where(entql.HasEdge("user"))
}

// WhereHasUserWith applies a predicate to check if query has an edge user with a given conditions (other predicates).
func (f *SecurityEventFilter) WhereHasUserWith(preds ...predicate.User) {
	f.Where(entql.HasEdgeWith("user", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (tq *TaskQuery) addPredicate(pred func(s *sql.Selector)) {
	tq.predicates = append(tq.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the TaskQuery builder.
func (tq *TaskQuery) Filter() *TaskFilter {
	return &TaskFilter{config: tq.config, predicateAdder: tq}
}

// addPredicate implements the predicateAdder interface.
func (m *TaskMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the TaskMutation builder.
func (m *TaskMutation) Filter() *TaskFilter {
	return &TaskFilter{config: m.config, predicateAdder: m}
}

// TaskFilter provides a generic filtering capability at runtime for TaskQuery.
type TaskFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *TaskFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[3].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *TaskFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(task.FieldID))
}

// WhereDonorName applies the entql string predicate on the donor_name field.
func (f *TaskFilter) WhereDonorName(p entql.StringP) {
	f.Where(p.Field(task.FieldDonorName))
}

// WhereAddress applies the entql string predicate on the address field.
func (f *TaskFilter) WhereAddress(p entql.StringP) {
	f.Where(p.Field(task.FieldAddress))
}

// WherePhoneNumbers applies the entql string predicate on the phone_numbers field.
func (f *TaskFilter) WherePhoneNumbers(p entql.StringP) {
	f.Where(p.Field(task.FieldPhoneNumbers))
}

// WhereLocationLink applies the entql string predicate on the location_link field.
func (f *TaskFilter) WhereLocationLink(p entql.StringP) {
	f.Where(p.Field(task.FieldLocationLink))
}

// WhereCategory applies the entql string predicate on the category field.
func (f *TaskFilter) WhereCategory(p entql.StringP) {
	f.Where(p.Field(task.FieldCategory))
}

// WhereQuantity applies the entql uint32 predicate on the quantity field.
func (f *TaskFilter) WhereQuantity(p entql.Uint32P) {
	f.Where(p.Field(task.FieldQuantity))
}

// WhereIsUrgent applies the entql bool predicate on the is_urgent field.
func (f *TaskFilter) WhereIsUrgent(p entql.BoolP) {
	f.Where(p.Field(task.FieldIsUrgent))
}

// WhereIsBroadcast applies the entql bool predicate on the is_broadcast field.
func (f *TaskFilter) WhereIsBroadcast(p entql.BoolP) {
	f.Where(p.Field(task.FieldIsBroadcast))
}

// WhereStatus applies the entql string predicate on the status field.
func (f *TaskFilter) WhereStatus(p entql.StringP) {
	f.Where(p.Field(task.FieldStatus))
}

// WhereVisitorFormFilled applies the entql bool predicate on the visitor_form_filled field.
func (f *TaskFilter) WhereVisitorFormFilled(p entql.BoolP) {
	f.Where(p.Field(task.FieldVisitorFormFilled))
}

// WhereTrustNoticeGiven applies the entql bool predicate on the trust_notice_given field.
func (f *TaskFilter) WhereTrustNoticeGiven(p entql.BoolP) {
	f.Where(p.Field(task.FieldTrustNoticeGiven))
}

// WhereCreatedBy applies the entql [16]byte predicate on the created_by field.
func (f *TaskFilter) WhereCreatedBy(p entql.ValueP) {
	f.Where(p.Field(task.FieldCreatedBy))
}

// WhereAssignedTo applies the entql [16]byte predicate on the assigned_to field.
func (f *TaskFilter) WhereAssignedTo(p entql.ValueP) {
	f.Where(p.Field(task.FieldAssignedTo))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *TaskFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(task.FieldCreatedAt))
}

// WhereUpdatedAt applies the entql time.Time predicate on the updated_at field.
func (f *TaskFilter) WhereUpdatedAt(p entql.TimeP) {
	f.Where(p.Field(task.FieldUpdatedAt))
}

// WhereCompletedAt applies the entql time.Time predicate on the completed_at field.
func (f *TaskFilter) WhereCompletedAt(p entql.TimeP) {
	f.Where(p.Field(task.FieldCompletedAt))
}

// WhereHasCreator applies a predicate to check if query has an edge creator.
func (f *TaskFilter) WhereHasCreator() {
	f.Where(entql.HasEdge("creator"))
}

// WhereHasCreatorWith applies a predicate to check if query has an edge creator with a given conditions (other predicates).
func (f *TaskFilter) WhereHasCreatorWith(preds ...predicate.User) {
	f.Where(entql.HasEdgeWith("creator", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasAssignee applies a predicate to check if query has an edge assignee.
func (f *TaskFilter) WhereHasAssignee() {
	f.Where(entql.HasEdge("assignee"))
}

// WhereHasAssigneeWith applies a predicate to check if query has an edge assignee with a given conditions (other predicates).
func (f *TaskFilter) WhereHasAssigneeWith(preds ...predicate.User) {
	f.Where(entql.HasEdgeWith("assignee", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasItems applies a predicate to check if query has an edge items.
func (f *TaskFilter) WhereHasItems() {
	f.Where(entql.HasEdge("items"))
}

// WhereHasItemsWith applies a predicate to check if query has an edge items with a given conditions (other predicates).
func (f *TaskFilter) WhereHasItemsWith(preds ...predicate.Item) {
	f.Where(entql.HasEdgeWith("items", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasPhotos applies a predicate to check if query has an edge photos.
func (f *TaskFilter) WhereHasPhotos() {
	f.Where(entql.HasEdge("photos"))
}

// WhereHasPhotosWith applies a predicate to check if query has an edge photos with a given conditions (other predicates).
func (f *TaskFilter) WhereHasPhotosWith(preds ...predicate.TaskPhoto) {
	f.Where(entql.HasEdgeWith("photos", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasLocationLogs applies a predicate to check if query has an edge location_logs.
func (f *TaskFilter) WhereHasLocationLogs() {
	f.Where(entql.HasEdge("location_logs"))
}

// WhereHasLocationLogsWith applies a predicate to check if query has an edge location_logs with a given conditions (other predicates).
func (f *TaskFilter) WhereHasLocationLogsWith(preds ...predicate.LocationLog) {
	f.Where(entql.HasEdgeWith("location_logs", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (tpq *TaskPhotoQuery) addPredicate(pred func(s *sql.Selector)) {
	tpq.predicates = append(tpq.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the TaskPhotoQuery builder.
func (tpq *TaskPhotoQuery) Filter() *TaskPhotoFilter {
	return &TaskPhotoFilter{config: tpq.config, predicateAdder: tpq}
}

// addPredicate implements the predicateAdder interface.
func (m *TaskPhotoMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the TaskPhotoMutation builder.
func (m *TaskPhotoMutation) Filter() *TaskPhotoFilter {
	return &TaskPhotoFilter{config: m.config, predicateAdder: m}
}

// TaskPhotoFilter provides a generic filtering capability at runtime for TaskPhotoQuery.
type TaskPhotoFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *TaskPhotoFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[4].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *TaskPhotoFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(taskphoto.FieldID))
}

// WhereTaskID applies the entql [16]byte predicate on the task_id field.
func (f *TaskPhotoFilter) WhereTaskID(p entql.ValueP) {
	f.Where(p.Field(taskphoto.FieldTaskID))
}

// WhereFilePath applies the entql string predicate on the file_path field.
func (f *TaskPhotoFilter) WhereFilePath(p entql.StringP) {
	f.Where(p.Field(taskphoto.FieldFilePath))
}

// WherePhotoType applies the entql string predicate on the photo_type field.
func (f *TaskPhotoFilter) WherePhotoType(p entql.StringP) {
	f.Where(p.Field(taskphoto.FieldPhotoType))
}

// WhereUploadedAt applies the entql time.Time predicate on the uploaded_at field.
func (f *TaskPhotoFilter) WhereUploadedAt(p entql.TimeP) {
	f.Where(p.Field(taskphoto.FieldUploadedAt))
}

// WhereHasTask applies a predicate to check if query has an edge task.
func (f *TaskPhotoFilter) WhereHasTask() {
	f.Where(entql.HasEdge("task"))
}

// WhereHasTaskWith applies a predicate to check if query has an edge task with a given conditions (other predicates).
func (f *TaskPhotoFilter) WhereHasTaskWith(preds ...predicate.Task) {
	f.Where(entql.HasEdgeWith("task", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (uq *UserQuery) addPredicate(pred func(s *sql.Selector)) {
	uq.predicates = append(uq.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the UserQuery builder.
func (uq *UserQuery) Filter() *UserFilter {
	return &UserFilter{config: uq.config, predicateAdder: uq}
}

// addPredicate implements the predicateAdder interface.
func (m *UserMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the UserMutation builder.
func (m *UserMutation) Filter() *UserFilter {
	return &UserFilter{config: m.config, predicateAdder: m}
}

// UserFilter provides a generic filtering capability at runtime for UserQuery.
type UserFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *UserFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[5].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *UserFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(user.FieldID))
}

// WhereUsername applies the entql string predicate on the username field.
func (f *UserFilter) WhereUsername(p entql.StringP) {
	f.Where(p.Field(user.FieldUsername))
}

// WherePasswordHash applies the entql string predicate on the password_hash field.
func (f *UserFilter) WherePasswordHash(p entql.StringP) {
	f.Where(p.Field(user.FieldPasswordHash))
}

// WherePhoneNumber applies the entql string predicate on the phone_number field.
func (f *UserFilter) WherePhoneNumber(p entql.StringP) {
	f.Where(p.Field(user.FieldPhoneNumber))
}

// WhereRole applies the entql string predicate on the role field.
func (f *UserFilter) WhereRole(p entql.StringP) {
	f.Where(p.Field(user.FieldRole))
}

// WhereIsSuperuser applies the entql bool predicate on the is_superuser field.
func (f *UserFilter) WhereIsSuperuser(p entql.BoolP) {
	f.Where(p.Field(user.FieldIsSuperuser))
}

// WhereFailedLoginAttempts applies the entql int predicate on the failed_login_attempts field.
func (f *UserFilter) WhereFailedLoginAttempts(p entql.IntP) {
	f.Where(p.Field(user.FieldFailedLoginAttempts))
}

// WhereAccountLockedUntil applies the entql time.Time predicate on the account_locked_until field.
func (f *UserFilter) WhereAccountLockedUntil(p entql.TimeP) {
	f.Where(p.Field(user.FieldAccountLockedUntil))
}

// WhereLastLogin applies the entql time.Time predicate on the last_login field.
func (f *UserFilter) WhereLastLogin(p entql.TimeP) {
	f.Where(p.Field(user.FieldLastLogin))
}

// WhereRefreshToken applies the entql string predicate on the refresh_token field.
func (f *UserFilter) WhereRefreshToken(p entql.StringP) {
	f.Where(p.Field(user.FieldRefreshToken))
}

// WhereRefreshTokenExpiresAt applies the entql time.Time predicate on the refresh_token_expires_at field.
func (f *UserFilter) WhereRefreshTokenExpiresAt(p entql.TimeP) {
	f.Where(p.Field(user.FieldRefreshTokenExpiresAt))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *UserFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(user.FieldCreatedAt))
}

// WhereUpdatedAt applies the entql time.Time predicate on the updated_at field.
func (f *UserFilter) WhereUpdatedAt(p entql.TimeP) {
	f.Where(p.Field(user.FieldUpdatedAt))
}

// WhereHasCreatedTasks applies a predicate to check if query has an edge created_tasks.
func (f *UserFilter) WhereHasCreatedTasks() {
	f.Where(entql.HasEdge("created_tasks"))
}

// WhereHasCreatedTasksWith applies a predicate to check if query has an edge created_tasks with a given conditions (other predicates).
func (f *UserFilter) WhereHasCreatedTasksWith(preds ...predicate.Task) {
	f.Where(entql.HasEdgeWith("created_tasks", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasAssignedTasks applies a predicate to check if query has an edge assigned_tasks.
func (f *UserFilter) WhereHasAssignedTasks() {
	f.Where(entql.HasEdge("assigned_tasks"))
}

// WhereHasAssignedTasksWith applies a predicate to check if query has an edge assigned_tasks with a given conditions (other predicates).
func (f *UserFilter) WhereHasAssignedTasksWith(preds ...predicate.Task) {
	f.Where(entql.HasEdgeWith("assigned_tasks", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasSecurityEvents applies a predicate to check if query has an edge security_events.
func (f *UserFilter) WhereHasSecurityEvents() {
	f.Where(entql.HasEdge("security_events"))
}

// WhereHasSecurityEventsWith applies a predicate to check if query has an edge security_events with a given conditions (other predicates).
func (f *UserFilter) WhereHasSecurityEventsWith(preds ...predicate.SecurityEvent) {
	f.Where(entql.HasEdgeWith("security_events", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}
