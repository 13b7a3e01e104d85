package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// AppointmentReschedule is a request to move an appointment to another slot.
// The appointment itself changes only when the request is approved.
type AppointmentReschedule struct {
	ent.Schema
}

func (AppointmentReschedule) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (AppointmentReschedule) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("appointment_id", uuid.UUID{}).
			Comment("FK → appointments.id"),

		field.UUID("old_availability_id", uuid.UUID{}).
			Comment("Slot held by the appointment when the request was made"),

		field.UUID("new_availability_id", uuid.UUID{}).
			Comment("Requested target slot"),

		field.UUID("requested_by", uuid.UUID{}).
			Comment("User id of the requester (patient or doctor)"),

		field.Enum("status").
			Values("requested", "approved").
			Default("requested"),
	}
}

func (AppointmentReschedule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("appointment_id", "status"),
	}
}
