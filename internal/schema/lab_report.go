package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// LabReport is a doctor-authored lab result for a patient.
type LabReport struct {
	ent.Schema
}

func (LabReport) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (LabReport) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("doctor_id", uuid.UUID{}).
			Comment("Authoring doctor"),

		field.UUID("patient_id", uuid.UUID{}).
			Comment("Patient the report belongs to"),

		field.String("title").
			MaxLen(255),

		field.Text("result").
			Optional().
			Nillable(),

		field.String("file_url").
			Optional().
			Nillable().
			MaxLen(512).
			Comment("External URL of the uploaded document"),

		field.Time("reported_at").
			Optional().
			Nillable(),

		field.Text("notes").
			Optional().
			Nillable(),
	}
}

func (LabReport) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "created_at"),
		index.Fields("doctor_id"),
	}
}
