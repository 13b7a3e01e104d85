package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Prescription is a doctor-issued script, distinct from the structured
// Medication record: free-form notes plus an optional attached document.
type Prescription struct {
	ent.Schema
}

func (Prescription) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Prescription) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("doctor_id", uuid.UUID{}).
			Comment("Issuing doctor"),

		field.UUID("patient_id", uuid.UUID{}),

		field.String("title").
			MaxLen(255),

		field.Text("notes").
			Optional().
			Nillable(),

		field.String("file_key").
			Optional().
			Nillable().
			MaxLen(500).
			Comment("Attached script in object storage, when one was uploaded"),

		field.String("file_name").
			Optional().
			Nillable().
			MaxLen(255),

		field.Time("prescribed_date").
			Default(time.Now),
	}
}

func (Prescription) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "prescribed_date"),
		index.Fields("doctor_id"),
	}
}
