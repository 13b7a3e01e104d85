package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("first_name").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("last_name").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("phone").
			Optional().Nillable().
			Unique().
			MaxLen(20),

		field.String("email").
			Optional().
			Nillable().
			Unique().
			MaxLen(255),

		field.String("password_hash").
			Optional().
			Nillable().
			Sensitive(),

		field.Enum("role").
			Values("patient", "doctor", "admin").
			Default("patient"),

		field.String("specialty").
			Optional().
			Nillable().
			MaxLen(120).
			Comment("Doctor specialty; nil for patients"),

		field.Text("bio").
			Optional().
			Nillable(),

		field.Float("average_rating").
			Default(0).
			Comment("Running mean of this doctor's ratings"),

		field.Int("rating_count").
			Default(0).
			NonNegative(),

		field.Enum("status").
			Values("ACTIVE", "SUSPENDED").
			Default("ACTIVE"),

		field.Bool("phone_verified").Default(false),
		field.Bool("email_verified").Default(false),

		// audit
		field.Time("last_login_at").
			Optional().
			Nillable(),

		field.JSON("metadata", map[string]any{}).
			Optional().
			Default(map[string]any{}),

		field.Time("suspended_at").
			Optional().
			Nillable(),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("role"),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{}
}
