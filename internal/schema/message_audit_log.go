package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// MessageAuditLog records every content-affecting messaging action for
// compliance: create, read, pin, unpin, delete.
type MessageAuditLog struct {
	ent.Schema
}

func (MessageAuditLog) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (MessageAuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("conversation_id", uuid.UUID{}).
			Comment("FK → conversations.id"),

		field.UUID("message_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → messages.id; nil for conversation-level actions"),

		field.UUID("actor_id", uuid.UUID{}).
			Comment("User id that performed the action"),

		field.Enum("action").
			Values("create", "read", "pin", "unpin", "delete"),
	}
}

func (MessageAuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("conversation_id", "created_at"),
		index.Fields("message_id"),
	}
}
