package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// MentalAssessment stores one completed assessment pass: the raw
// response log plus the derived instrument scores. At most one current
// record per user; later completions overwrite it.
type MentalAssessment struct {
	ent.Schema
}

func (MentalAssessment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (MentalAssessment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Unique().
			Comment("FK → users.id; uniqueness enforces one current assessment per user"),

		field.String("assessment_id").
			MaxLen(64).
			Comment("Client-generated identifier of the assessment pass"),

		field.JSON("responses", []map[string]any{}).
			Comment("Append-only response log {question_id, value, timestamp}"),

		field.Int("phq9_score"),
		field.Int("gad7_score"),
		field.Int("pss_score"),
		field.Int("who_wellbeing_score"),

		field.String("risk_level").
			MaxLen(32),

		field.Bool("suicide_risk").
			Default(false),

		field.JSON("recommendations", []string{}).
			Optional(),

		field.Time("completed_at").
			Default(time.Now),
	}
}

func (MentalAssessment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("risk_level"),
		index.Fields("suicide_risk"),
	}
}
