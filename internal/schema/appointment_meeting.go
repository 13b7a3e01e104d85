package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// AppointmentMeeting stores the video-meeting details created at confirmation
// time. Upserted, never duplicated per appointment.
type AppointmentMeeting struct {
	ent.Schema
}

func (AppointmentMeeting) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (AppointmentMeeting) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("appointment_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → appointments.id; nullable to survive appointment purges"),

		field.String("meet_link").
			MaxLen(512),

		field.String("calendar_event_id").
			Optional().
			Nillable().
			MaxLen(255).
			Comment("Provider event id; nil when the event was created out of band"),
	}
}

func (AppointmentMeeting) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("appointment_id").Unique(),
	}
}
