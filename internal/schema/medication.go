package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Medication is a doctor-prescribed medication for a patient.
type Medication struct {
	ent.Schema
}

func (Medication) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Medication) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("doctor_id", uuid.UUID{}).
			Comment("Prescribing doctor"),

		field.UUID("patient_id", uuid.UUID{}).
			Comment("Patient the prescription belongs to"),

		field.String("name").
			MaxLen(255),

		field.String("dosage").
			Optional().
			Nillable().
			MaxLen(120),

		field.String("frequency").
			Optional().
			Nillable().
			MaxLen(120),

		field.Time("start_date").
			Optional().
			Nillable(),

		field.Time("end_date").
			Optional().
			Nillable(),

		field.Text("instructions").
			Optional().
			Nillable(),
	}
}

func (Medication) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "created_at"),
		index.Fields("doctor_id"),
	}
}
