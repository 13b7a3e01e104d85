package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// AvailabilitySlot is a bookable time block published by a doctor.
type AvailabilitySlot struct {
	ent.Schema
}

func (AvailabilitySlot) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (AvailabilitySlot) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → users.id (role=doctor)"),

		field.Time("start_time"),

		field.Time("end_time"),

		field.Bool("is_booked").
			Default(false).
			Comment("Set by the appointment engine under a conditional UPDATE"),
	}
}

func (AvailabilitySlot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doctor_id", "start_time"),
		index.Fields("doctor_id", "is_booked", "start_time"),
	}
}
