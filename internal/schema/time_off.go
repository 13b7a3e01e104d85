package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// TimeOff blocks a window in which a doctor's slots are hidden from patients.
// It does not delete or mutate the slots themselves.
type TimeOff struct {
	ent.Schema
}

func (TimeOff) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (TimeOff) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → users.id (role=doctor)"),

		field.Time("start_time"),

		field.Time("end_time"),

		field.String("reason").
			Optional().
			Nillable().
			MaxLen(255),
	}
}

func (TimeOff) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doctor_id", "end_time"),
	}
}
