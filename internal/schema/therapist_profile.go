package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// TherapistProfile carries the clinical credentials and matching
// attributes of a therapist account. The matching engine consumes a
// projection of this record.
type TherapistProfile struct {
	ent.Schema
}

func (TherapistProfile) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (TherapistProfile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Unique().
			Comment("FK → users.id (1:1)"),

		field.String("full_name").
			MaxLen(255),

		field.Enum("gender").
			Values("male", "female", "non_binary", "not_specified").
			Default("not_specified"),

		field.String("license_type").
			MaxLen(50).
			Comment("Credential, e.g. LCSW, LMFT, PhD"),

		field.Int("years_experience").
			Default(0).
			NonNegative(),

		field.Int("years_private_practice").
			Default(0).
			NonNegative(),

		field.JSON("specializations", []string{}).
			Optional(),

		field.JSON("therapy_approaches", []string{}).
			Optional(),

		field.JSON("client_demographics", []string{}).
			Optional(),

		field.JSON("severity_levels", []string{}).
			Optional().
			Comment("Severity bands the therapist accepts"),

		field.Bool("crisis_intervention_trained").
			Default(false),

		field.Bool("trauma_informed_certified").
			Default(false),

		field.JSON("languages", []string{}).
			Optional(),

		field.JSON("availability_slots", []map[string]string{}).
			Optional().
			Comment("Recurring weekly openings {day, start_time, end_time}"),

		field.JSON("session_durations", []int{}).
			Optional().
			Comment("Offered session lengths in minutes"),

		field.Float("rate_individual").Default(0),
		field.Float("rate_couples").Default(0),
		field.Float("rate_family").Default(0),
		field.Float("rate_group").Default(0),

		field.Bool("sliding_scale_available").
			Default(false),

		field.JSON("insurance_accepted", []string{}).
			Optional(),

		field.String("location").
			Optional().
			MaxLen(255),

		field.JSON("services_offered", []string{}).
			Optional().
			Comment("in_person, online"),

		field.Bool("emergency_availability").
			Default(false),

		field.Text("bio").
			Optional().
			Nillable(),

		field.Enum("status").
			Values("pending", "approved", "rejected", "suspended").
			Default("pending").
			Comment("Only approved profiles appear in listings"),
	}
}

func (TherapistProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "gender"),
	}
}
