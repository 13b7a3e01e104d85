package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Appointment is a booked visit between a doctor and a patient.
type Appointment struct {
	ent.Schema
}

func (Appointment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → users.id (role=patient)"),

		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → users.id (role=doctor)"),

		field.UUID("availability_id", uuid.UUID{}),

		field.String("appointment_type").
			Default("video").
			MaxLen(32),

		field.Enum("status").
			Values("pending", "confirmed", "completed", "cancelled", "no_show").
			Default("pending"),

		field.Text("reason").
			Optional().
			Nillable().
			Comment("Patient-supplied reason for the visit"),

		field.Time("scheduled_start").
			Comment("Snapshot of the slot start at booking/reschedule time"),

		field.Time("scheduled_end").
			Comment("Snapshot of the slot end at booking/reschedule time"),

		field.Enum("cancelled_by").
			Values("patient", "doctor", "admin").
			Optional().
			Nillable(),

		field.Time("cancelled_at").
			Optional().
			Nillable(),

		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (Appointment) Edges() []ent.Edge {
	return []ent.Edge{
		// Deleting a slot that an appointment still references must fail at
		// the database; the slot is only freed via cancel/reschedule.
		edge.To("availability", AvailabilitySlot.Type).
			Field("availability_id").
			Unique().
			Required().
			Annotations(entsql.OnDelete(entsql.Restrict)),
	}
}

func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doctor_id", "status", "scheduled_start"),
		index.Fields("patient_id", "status"),
		index.Fields("availability_id"),
	}
}
