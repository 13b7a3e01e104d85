package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// MedicationProgress is a progress note attached to a medication.
type MedicationProgress struct {
	ent.Schema
}

func (MedicationProgress) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
		SoftDeleteMixin{},
	}
}

func (MedicationProgress) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("medication_id", uuid.UUID{}).
			Comment("FK → medications.id"),

		field.UUID("author_id", uuid.UUID{}).
			Comment("User id of whoever recorded the note"),

		field.Text("note"),
	}
}

func (MedicationProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("medication_id", "created_at"),
	}
}
