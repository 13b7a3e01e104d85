package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Notification is a fire-and-forget record of a delivery attempt (in-app,
// email, push), optionally tied to an appointment.
type Notification struct {
	ent.Schema
}

func (Notification) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Comment("Target user"),

		field.UUID("appointment_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Optional linked appointment"),

		field.String("type").
			MaxLen(64).
			Comment("e.g. appointment_created, appointment_confirmed, message_new"),

		field.String("title").
			MaxLen(255),

		field.Text("body").
			Optional().
			Nillable(),

		field.Bool("is_read").
			Default(false),

		field.Bool("is_pushed").
			Default(false).
			Comment("Whether a push notification was sent"),
	}
}

func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "is_read", "created_at"),
		index.Fields("appointment_id"),
	}
}
