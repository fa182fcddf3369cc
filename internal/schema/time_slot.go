package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// TimeSlot is a bookable time block in a therapist's calendar.
type TimeSlot struct {
	ent.Schema
}

func (TimeSlot) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (TimeSlot) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("therapist_id", uuid.UUID{}).
			Comment("FK → therapist_profiles.id"),

		field.Time("start_time"),

		field.Time("end_time"),

		field.Int("duration_min").
			Positive().
			Comment("Session length in minutes; derived from start/end at creation"),

		field.Enum("status").
			Values("available", "booked", "blocked", "cancelled").
			Default("available"),
	}
}

func (TimeSlot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("therapist_id", "start_time"),
		index.Fields("therapist_id", "status", "start_time"),
	}
}
