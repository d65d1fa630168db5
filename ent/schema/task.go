// ent/schema/task.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Task holds the schema definition for a donation pickup task.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.String("donor_name").
			NotEmpty().
			MaxLen(255).
			Comment("Name of the donor"),

		field.Text("address").
			Optional().
			Comment("Pickup address"),

		field.String("phone_numbers").
			Optional().
			MaxLen(255).
			Comment("Comma-separated phone numbers, free text"),

		field.String("location_link").
			Optional().
			MaxLen(500).
			Comment("Maps share link"),

		field.Enum("category").
			Values("furniture", "clothes", "electronics", "food", "books", "other").
			Default("other").
			Comment("Donation category"),

		field.Uint32("quantity").
			Optional().
			Nillable().
			Positive().
			Comment("Estimated quantity"),

		field.Bool("is_urgent").
			Default(false).
			Comment("Urgent tasks sort first on driver dashboards"),

		field.Bool("is_broadcast").
			Default(false).
			Comment("Visible to all drivers until one claims it"),

		field.Enum("status").
			Values("assigned", "in_progress", "completed", "cancelled").
			Default("assigned").
			Comment("Current status of the task"),

		field.Bool("visitor_form_filled").
			Default(false).
			Comment("Completion flag: visitor form filled"),

		field.Bool("trust_notice_given").
			Default(false).
			Comment("Completion flag: trust notice given"),

		field.UUID("created_by", uuid.UUID{}).
			Comment("Admin who created the task"),

		field.UUID("assigned_to", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Driver the task is assigned to; nil while broadcast"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the task was created"),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the task was last updated"),

		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("Set exactly once, when the task is completed"),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("creator", User.Type).
			Ref("created_tasks").
			Unique().
			Required().
			Field("created_by"),

		edge.From("assignee", User.Type).
			Ref("assigned_tasks").
			Unique().
			Field("assigned_to"),

		// Children are exclusively owned by the task.
		edge.To("items", Item.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),

		edge.To("photos", TaskPhoto.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),

		edge.To("location_logs", LocationLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),

		index.Fields("assigned_to"),

		// Driver queue lookups filter on broadcast + status
		index.Fields("is_broadcast", "status"),

		index.Fields("created_at"),
	}
}
