package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Appointment is a booked session between a client and a therapist.
type Appointment struct {
	ent.Schema
}

func (Appointment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("therapist_id", uuid.UUID{}).
			Comment("FK → therapist_profiles.id"),

		field.UUID("client_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.UUID("time_slot_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Snapshot ref to time_slots.id (nullable non-FK — allows slot deletion)"),

		field.UUID("assessment_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Assessment that motivated this booking, when one exists"),

		field.Time("start_time"),

		field.Time("end_time"),

		field.Enum("type").
			Values("initial_consultation", "follow_up", "assessment_review", "therapy_session").
			Default("initial_consultation"),

		field.Enum("status").
			Values("scheduled", "confirmed", "in_progress", "completed", "cancelled", "no_show").
			Default("scheduled"),

		field.Text("notes").
			Optional().
			Nillable(),

		field.Text("cancellation_reason").
			Optional().
			Nillable(),

		field.Enum("cancel_requested_by").
			Values("client", "therapist").
			Optional().
			Nillable(),

		field.Time("cancelled_at").
			Optional().
			Nillable(),

		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("therapist_id", "start_time"),
		index.Fields("therapist_id", "status", "start_time"),
		index.Fields("client_id", "status"),
	}
}
