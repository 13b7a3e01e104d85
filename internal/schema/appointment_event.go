package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// AppointmentEvent is an append-only audit row, one per successful status
// transition.
type AppointmentEvent struct {
	ent.Schema
}

func (AppointmentEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (AppointmentEvent) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("appointment_id", uuid.UUID{}).
			Comment("FK → appointments.id"),

		field.Enum("old_status").
			Values("pending", "confirmed", "completed", "cancelled", "no_show").
			Optional().
			Nillable().
			Comment("Nil for the initial booking event"),

		field.Enum("new_status").
			Values("pending", "confirmed", "completed", "cancelled", "no_show"),

		field.UUID("changed_by", uuid.UUID{}).
			Comment("User id of the actor"),

		field.String("actor_role").
			MaxLen(32),

		field.Text("note").
			Optional().
			Nillable(),
	}
}

func (AppointmentEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("appointment_id", "created_at"),
	}
}
