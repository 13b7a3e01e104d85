package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// DoctorRating is a patient's rating of a doctor. One rating per patient per
// doctor, enforced in the service layer before insert.
type DoctorRating struct {
	ent.Schema
}

func (DoctorRating) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (DoctorRating) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → users.id (role=doctor)"),

		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → users.id (role=patient)"),

		field.Int("rating").
			Range(1, 5),

		field.Text("review").
			Optional().
			Nillable(),
	}
}

func (DoctorRating) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doctor_id", "created_at"),
		index.Fields("patient_id"),
	}
}
