package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// MessageReadReceipt records when a participant read a message.
type MessageReadReceipt struct {
	ent.Schema
}

func (MessageReadReceipt) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (MessageReadReceipt) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("message_id", uuid.UUID{}).
			Comment("FK → messages.id"),

		field.UUID("reader_id", uuid.UUID{}).
			Comment("User id of the reader"),
	}
}

func (MessageReadReceipt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("message_id", "reader_id").Unique(),
	}
}
