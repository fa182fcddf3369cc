package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// User is a platform account, either a client seeking therapy or a
// therapist. Therapists additionally carry a TherapistProfile.
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
			MaxLen(100),

		field.String("last_name").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("email").
			Unique().
			MaxLen(255),


		field.Enum("role").
			Values("client", "therapist", "admin").
			Default("client"),

		field.Enum("status").
			Values("ACTIVE", "SUSPENDED").
			Default("ACTIVE"),

		field.Bool("email_verified").Default(false),

		field.Time("last_login_at").
			Optional().
			Nillable(),

		field.JSON("metadata", map[string]any{}).
			Optional().
			Default(map[string]any{}),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{}
}
