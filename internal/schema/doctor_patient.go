package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// DoctorPatient records that a doctor has treated a patient. Created on the
// first confirmed appointment; gates visibility of medical records.
type DoctorPatient struct {
	ent.Schema
}

func (DoctorPatient) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (DoctorPatient) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → users.id (role=doctor)"),

		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → users.id (role=patient)"),
	}
}

func (DoctorPatient) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doctor_id", "patient_id").Unique(),
		index.Fields("patient_id"),
	}
}
