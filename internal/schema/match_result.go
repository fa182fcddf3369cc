package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// MatchResult is an append-only record of one computed client/therapist
// match, kept for history and listing reuse. Scores are stored rounded
// to two decimals.
type MatchResult struct {
	ent.Schema
}

func (MatchResult) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (MatchResult) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Comment("FK → users.id (client)"),

		field.UUID("therapist_id", uuid.UUID{}).
			Comment("FK → therapist_profiles.id"),

		field.Float("total_score"),

		field.JSON("breakdown", map[string]float64{}).
			Comment("Seven factor sub-scores keyed by factor name"),

		field.JSON("compatibility_reasons", []string{}).
			Optional(),

		field.JSON("potential_concerns", []string{}).
			Optional(),
	}
}

func (MatchResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
		index.Fields("user_id", "therapist_id"),
	}
}
