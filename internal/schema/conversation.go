package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Conversation is the single messaging thread between a doctor and a patient,
// created lazily on first contact.
type Conversation struct {
	ent.Schema
}

func (Conversation) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Conversation) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → users.id (role=doctor)"),

		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → users.id (role=patient)"),

		field.Time("last_message_at").
			Optional().
			Nillable(),
	}
}

func (Conversation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doctor_id", "patient_id").Unique(),
		index.Fields("doctor_id"),
		index.Fields("patient_id"),
	}
}
