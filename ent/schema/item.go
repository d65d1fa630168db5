// ent/schema/item.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Item holds the schema definition for a line item collected during a pickup.
type Item struct {
	ent.Schema
}

// Fields of the Item.
func (Item) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.UUID("task_id", uuid.UUID{}).
			Comment("Task this item was collected for"),

		field.String("category").
			NotEmpty().
			MaxLen(100).
			Comment("Free-text item category"),

		field.Uint32("quantity").
			Default(1).
			Positive().
			Comment("Number of units collected"),

		field.Enum("condition").
			Values("good", "average", "poor").
			Default("good").
			Comment("Condition of the collected items"),

		field.Uint32("position").
			Default(0).
			Comment("Position within the completion submission; pins item order"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the item was recorded"),
	}
}

// Edges of the Item.
func (Item) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("items").
			Unique().
			Required().
			Field("task_id"),
	}
}

// Indexes of the Item.
func (Item) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id"),
	}
}
