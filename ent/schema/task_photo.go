// ent/schema/task_photo.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// TaskPhoto holds the schema definition for photographic evidence
// attached to a task during completion.
type TaskPhoto struct {
	ent.Schema
}

// Fields of the TaskPhoto.
func (TaskPhoto) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.UUID("task_id", uuid.UUID{}).
			Comment("Task this photo documents"),

		field.String("file_path").
			NotEmpty().
			MaxLen(500).
			Comment("Path of the stored image, relative to the photo store root"),

		field.Enum("photo_type").
			Values("item", "donor", "visitor_form", "other").
			Default("item").
			Comment("Purpose of the photo"),

		field.Time("uploaded_at").
			Default(time.Now).
			Immutable().
			Comment("When the photo was uploaded"),
	}
}

// Edges of the TaskPhoto.
func (TaskPhoto) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("photos").
			Unique().
			Required().
			Field("task_id"),
	}
}

// Indexes of the TaskPhoto.
func (TaskPhoto) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id"),
	}
}
