// Code generated by ent, DO NOT EDIT.

package matchresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/govently/govently_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldEQ(FieldCreatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldEQ(FieldUserID, v))
}

// TherapistID applies equality check predicate on the "therapist_id" field. It's identical to TherapistIDEQ.
func TherapistID(v uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldEQ(FieldTherapistID, v))
}

// TotalScore applies equality check predicate on the "total_score" field. It's identical to TotalScoreEQ.
func TotalScore(v float64) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldEQ(FieldTotalScore, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldLTE(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldLTE(FieldUserID, v))
}

// TherapistIDEQ applies the EQ predicate on the "therapist_id" field.
func TherapistIDEQ(v uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldEQ(FieldTherapistID, v))
}

// TherapistIDNEQ applies the NEQ predicate on the "therapist_id" field.
func TherapistIDNEQ(v uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldNEQ(FieldTherapistID, v))
}

// TherapistIDIn applies the In predicate on the "therapist_id" field.
func TherapistIDIn(vs ...uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldIn(FieldTherapistID, vs...))
}

// TherapistIDNotIn applies the NotIn predicate on the "therapist_id" field.
func TherapistIDNotIn(vs ...uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldNotIn(FieldTherapistID, vs...))
}

// TherapistIDGT applies the GT predicate on the "therapist_id" field.
func TherapistIDGT(v uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldGT(FieldTherapistID, v))
}

// TherapistIDGTE applies the GTE predicate on the "therapist_id" field.
func TherapistIDGTE(v uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldGTE(FieldTherapistID, v))
}

// TherapistIDLT applies the LT predicate on the "therapist_id" field.
func TherapistIDLT(v uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldLT(FieldTherapistID, v))
}

// TherapistIDLTE applies the LTE predicate on the "therapist_id" field.
func TherapistIDLTE(v uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldLTE(FieldTherapistID, v))
}

// TotalScoreEQ applies the EQ predicate on the "total_score" field.
func TotalScoreEQ(v float64) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldEQ(FieldTotalScore, v))
}

// TotalScoreNEQ applies the NEQ predicate on the "total_score" field.
func TotalScoreNEQ(v float64) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldNEQ(FieldTotalScore, v))
}

// TotalScoreIn applies the In predicate on the "total_score" field.
func TotalScoreIn(vs ...float64) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldIn(FieldTotalScore, vs...))
}

// TotalScoreNotIn applies the NotIn predicate on the "total_score" field.
func TotalScoreNotIn(vs ...float64) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldNotIn(FieldTotalScore, vs...))
}

// TotalScoreGT applies the GT predicate on the "total_score" field.
func TotalScoreGT(v float64) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldGT(FieldTotalScore, v))
}

// TotalScoreGTE applies the GTE predicate on the "total_score" field.
func TotalScoreGTE(v float64) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldGTE(FieldTotalScore, v))
}

// TotalScoreLT applies the LT predicate on the "total_score" field.
func TotalScoreLT(v float64) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldLT(FieldTotalScore, v))
}

// TotalScoreLTE applies the LTE predicate on the "total_score" field.
func TotalScoreLTE(v float64) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldLTE(FieldTotalScore, v))
}

// CompatibilityReasonsIsNil applies the IsNil predicate on the "compatibility_reasons" field.
func CompatibilityReasonsIsNil() predicate.MatchResult {
	return predicate.MatchResult(sql.FieldIsNull(FieldCompatibilityReasons))
}

// CompatibilityReasonsNotNil applies the NotNil predicate on the "compatibility_reasons" field.
func CompatibilityReasonsNotNil() predicate.MatchResult {
	return predicate.MatchResult(sql.FieldNotNull(FieldCompatibilityReasons))
}

// PotentialConcernsIsNil applies the IsNil predicate on the "potential_concerns" field.
func PotentialConcernsIsNil() predicate.MatchResult {
	return predicate.MatchResult(sql.FieldIsNull(FieldPotentialConcerns))
}

// PotentialConcernsNotNil applies the NotNil predicate on the "potential_concerns" field.
func PotentialConcernsNotNil() predicate.MatchResult {
	return predicate.MatchResult(sql.FieldNotNull(FieldPotentialConcerns))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MatchResult) predicate.MatchResult {
	return predicate.MatchResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MatchResult) predicate.MatchResult {
	return predicate.MatchResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MatchResult) predicate.MatchResult {
	return predicate.MatchResult(sql.NotPredicates(p))
}
