package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// CalendarCredential holds a doctor's OAuth refresh token for the calendar
// provider. One credential per doctor; replaced on reconnect.
type CalendarCredential struct {
	ent.Schema
}

func (CalendarCredential) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (CalendarCredential) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → users.id (role=doctor)"),

		field.String("provider").
			Default("google").
			MaxLen(32),

		field.String("refresh_token").
			Sensitive(),

		field.String("provider_email").
			Optional().
			Nillable().
			MaxLen(255).
			Comment("Account email reported by the provider, for display"),
	}
}

func (CalendarCredential) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doctor_id").Unique(),
	}
}
