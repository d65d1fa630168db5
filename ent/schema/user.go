// ent/schema/user.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.String("username").
			NotEmpty().
			Unique().
			MinLen(3).
			MaxLen(50).
			Comment("Unique username"),

		field.String("password_hash").
			NotEmpty().
			Sensitive(). // Won't be included in logs
			Comment("Hashed password"),

		field.String("phone_number").
			Optional().
			Default("").
			MaxLen(20).
			Comment("Contact phone number"),

		field.Enum("role").
			Values("admin", "driver").
			Default("driver").
			Comment("User role for authorization"),

		field.Bool("is_superuser").
			Default(false).
			Comment("Superusers pass the admin gate regardless of role"),

		field.Int("failed_login_attempts").
			Default(0).
			Comment("Number of consecutive failed login attempts"),

		field.Time("account_locked_until").
			Optional().
			Nillable().
			Comment("Account lockout expiration"),

		field.Time("last_login").
			Optional().
			Nillable().
			Comment("Last successful login timestamp"),

		field.String("refresh_token").
			Optional().
			Sensitive().
			Comment("Current refresh token"),

		field.Time("refresh_token_expires_at").
			Optional().
			Nillable().
			Comment("Refresh token expiration"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the user was created"),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the user was last updated"),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("created_tasks", Task.Type).
			Comment("Tasks created by this user"),

		edge.To("assigned_tasks", Task.Type).
			Comment("Tasks assigned to this user"),

		edge.To("security_events", SecurityEvent.Type).
			Comment("Security events related to this user"),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("username").
			Unique(),

		// Index for the driver selection list
		index.Fields("role"),

		index.Fields("account_locked_until"),

		index.Fields("created_at"),
	}
}
