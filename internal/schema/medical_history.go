package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// MedicalHistory is a doctor-authored condition/diagnosis entry for a patient.
type MedicalHistory struct {
	ent.Schema
}

func (MedicalHistory) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (MedicalHistory) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("doctor_id", uuid.UUID{}).
			Comment("Authoring doctor"),

		field.UUID("patient_id", uuid.UUID{}).
			Comment("Patient the entry belongs to"),

		field.String("condition").
			MaxLen(255),

		field.Text("diagnosis").
			Optional().
			Nillable(),

		field.Time("diagnosed_at").
			Optional().
			Nillable(),

		field.Text("notes").
			Optional().
			Nillable(),
	}
}

func (MedicalHistory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "created_at"),
		index.Fields("doctor_id"),
	}
}
