// ent/schema/location_log.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// LocationLog holds the schema definition for GPS checkpoints recorded
// when a driver starts or completes a task. Rows are append-only; the
// application never updates or deletes them.
type LocationLog struct {
	ent.Schema
}

// Fields of the LocationLog.
func (LocationLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.UUID("task_id", uuid.UUID{}).
			Comment("Task the checkpoint belongs to"),

		field.Float("latitude").
			SchemaType(map[string]string{
				dialect.Postgres: "numeric(9,6)",
			}).
			Comment("Latitude in decimal degrees"),

		field.Float("longitude").
			SchemaType(map[string]string{
				dialect.Postgres: "numeric(9,6)",
			}).
			Comment("Longitude in decimal degrees"),

		field.Enum("event").
			Values("start", "complete").
			Comment("Workflow event the checkpoint was recorded at"),

		field.Time("timestamp").
			Default(time.Now).
			Immutable().
			Comment("When the checkpoint was recorded"),
	}
}

// Edges of the LocationLog.
func (LocationLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("location_logs").
			Unique().
			Required().
			Field("task_id"),
	}
}

// Indexes of the LocationLog.
func (LocationLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id"),

		index.Fields("task_id", "event"),
	}
}
