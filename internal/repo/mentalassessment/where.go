// Code generated by ent, DO NOT EDIT.

package mentalassessment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/govently/govently_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldEQ(FieldUserID, v))
}

// AssessmentID applies equality check predicate on the "assessment_id" field. It's identical to AssessmentIDEQ.
func AssessmentID(v string) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldEQ(FieldAssessmentID, v))
}

// Phq9Score applies equality check predicate on the "phq9_score" field. It's identical to Phq9ScoreEQ.
func Phq9Score(v int) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldEQ(FieldPhq9Score, v))
}

// Gad7Score applies equality check predicate on the "gad7_score" field. It's identical to Gad7ScoreEQ.
func Gad7Score(v int) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldEQ(FieldGad7Score, v))
}

// PssScore applies equality check predicate on the "pss_score" field. It's identical to PssScoreEQ.
func PssScore(v int) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldEQ(FieldPssScore, v))
}

// WhoWellbeingScore applies equality check predicate on the "who_wellbeing_score" field. It's identical to WhoWellbeingScoreEQ.
func WhoWellbeingScore(v int) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldEQ(FieldWhoWellbeingScore, v))
}

// RiskLevel applies equality check predicate on the "risk_level" field. It's identical to RiskLevelEQ.
func RiskLevel(v string) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldEQ(FieldRiskLevel, v))
}

// SuicideRisk applies equality check predicate on the "suicide_risk" field. It's identical to SuicideRiskEQ.
func SuicideRisk(v bool) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldEQ(FieldSuicideRisk, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldEQ(FieldCompletedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldLTE(FieldUserID, v))
}

// AssessmentIDEQ applies the EQ predicate on the "assessment_id" field.
func AssessmentIDEQ(v string) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldEQ(FieldAssessmentID, v))
}

// AssessmentIDNEQ applies the NEQ predicate on the "assessment_id" field.
func AssessmentIDNEQ(v string) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldNEQ(FieldAssessmentID, v))
}

// AssessmentIDIn applies the In predicate on the "assessment_id" field.
func AssessmentIDIn(vs ...string) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldIn(FieldAssessmentID, vs...))
}

// AssessmentIDNotIn applies the NotIn predicate on the "assessment_id" field.
func AssessmentIDNotIn(vs ...string) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldNotIn(FieldAssessmentID, vs...))
}

// AssessmentIDGT applies the GT predicate on the "assessment_id" field.
func AssessmentIDGT(v string) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldGT(FieldAssessmentID, v))
}

// AssessmentIDGTE applies the GTE predicate on the "assessment_id" field.
func AssessmentIDGTE(v string) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldGTE(FieldAssessmentID, v))
}

// AssessmentIDLT applies the LT predicate on the "assessment_id" field.
func AssessmentIDLT(v string) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldLT(FieldAssessmentID, v))
}

// AssessmentIDLTE applies the LTE predicate on the "assessment_id" field.
func AssessmentIDLTE(v string) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldLTE(FieldAssessmentID, v))
}

// AssessmentIDContains applies the Contains predicate on the "assessment_id" field.
func AssessmentIDContains(v string) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldContains(FieldAssessmentID, v))
}

// AssessmentIDHasPrefix applies the HasPrefix predicate on the "assessment_id" field.
func AssessmentIDHasPrefix(v string) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldHasPrefix(FieldAssessmentID, v))
}

// AssessmentIDHasSuffix applies the HasSuffix predicate on the "assessment_id" field.
func AssessmentIDHasSuffix(v string) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldHasSuffix(FieldAssessmentID, v))
}

// AssessmentIDEqualFold applies the EqualFold predicate on the "assessment_id" field.
func AssessmentIDEqualFold(v string) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldEqualFold(FieldAssessmentID, v))
}

// AssessmentIDContainsFold applies the ContainsFold predicate on the "assessment_id" field.
func AssessmentIDContainsFold(v string) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldContainsFold(FieldAssessmentID, v))
}

// Phq9ScoreEQ applies the EQ predicate on the "phq9_score" field.
func Phq9ScoreEQ(v int) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldEQ(FieldPhq9Score, v))
}

// Phq9ScoreNEQ applies the NEQ predicate on the "phq9_score" field.
func Phq9ScoreNEQ(v int) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldNEQ(FieldPhq9Score, v))
}

// Phq9ScoreIn applies the In predicate on the "phq9_score" field.
func Phq9ScoreIn(vs ...int) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldIn(FieldPhq9Score, vs...))
}

// Phq9ScoreNotIn applies the NotIn predicate on the "phq9_score" field.
func Phq9ScoreNotIn(vs ...int) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldNotIn(FieldPhq9Score, vs...))
}

// Phq9ScoreGT applies the GT predicate on the "phq9_score" field.
func Phq9ScoreGT(v int) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldGT(FieldPhq9Score, v))
}

// Phq9ScoreGTE applies the GTE predicate on the "phq9_score" field.
func Phq9ScoreGTE(v int) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldGTE(FieldPhq9Score, v))
}

// Phq9ScoreLT applies the LT predicate on the "phq9_score" field.
func Phq9ScoreLT(v int) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldLT(FieldPhq9Score, v))
}

// Phq9ScoreLTE applies the LTE predicate on the "phq9_score" field.
func Phq9ScoreLTE(v int) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldLTE(FieldPhq9Score, v))
}

// Gad7ScoreEQ applies the EQ predicate on the "gad7_score" field.
func Gad7ScoreEQ(v int) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldEQ(FieldGad7Score, v))
}

// Gad7ScoreNEQ applies the NEQ predicate on the "gad7_score" field.
func Gad7ScoreNEQ(v int) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldNEQ(FieldGad7Score, v))
}

// Gad7ScoreIn applies the In predicate on the "gad7_score" field.
func Gad7ScoreIn(vs ...int) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldIn(FieldGad7Score, vs...))
}

// Gad7ScoreNotIn applies the NotIn predicate on the "gad7_score" field.
func Gad7ScoreNotIn(vs ...int) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldNotIn(FieldGad7Score, vs...))
}

// Gad7ScoreGT applies the GT predicate on the "gad7_score" field.
func Gad7ScoreGT(v int) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldGT(FieldGad7Score, v))
}

// Gad7ScoreGTE applies the GTE predicate on the "gad7_score" field.
func Gad7ScoreGTE(v int) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldGTE(FieldGad7Score, v))
}

// Gad7ScoreLT applies the LT predicate on the "gad7_score" field.
func Gad7ScoreLT(v int) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldLT(FieldGad7Score, v))
}

// Gad7ScoreLTE applies the LTE predicate on the "gad7_score" field.
func Gad7ScoreLTE(v int) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldLTE(FieldGad7Score, v))
}

// PssScoreEQ applies the EQ predicate on the "pss_score" field.
func PssScoreEQ(v int) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldEQ(FieldPssScore, v))
}

// PssScoreNEQ applies the NEQ predicate on the "pss_score" field.
func PssScoreNEQ(v int) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldNEQ(FieldPssScore, v))
}

// PssScoreIn applies the In predicate on the "pss_score" field.
func PssScoreIn(vs ...int) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldIn(FieldPssScore, vs...))
}

// PssScoreNotIn applies the NotIn predicate on the "pss_score" field.
func PssScoreNotIn(vs ...int) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldNotIn(FieldPssScore, vs...))
}

// PssScoreGT applies the GT predicate on the "pss_score" field.
func PssScoreGT(v int) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldGT(FieldPssScore, v))
}

// PssScoreGTE applies the GTE predicate on the "pss_score" field.
func PssScoreGTE(v int) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldGTE(FieldPssScore, v))
}

// PssScoreLT applies the LT predicate on the "pss_score" field.
func PssScoreLT(v int) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldLT(FieldPssScore, v))
}

// PssScoreLTE applies the LTE predicate on the "pss_score" field.
func PssScoreLTE(v int) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldLTE(FieldPssScore, v))
}

// WhoWellbeingScoreEQ applies the EQ predicate on the "who_wellbeing_score" field.
func WhoWellbeingScoreEQ(v int) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldEQ(FieldWhoWellbeingScore, v))
}

// WhoWellbeingScoreNEQ applies the NEQ predicate on the "who_wellbeing_score" field.
func WhoWellbeingScoreNEQ(v int) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldNEQ(FieldWhoWellbeingScore, v))
}

// WhoWellbeingScoreIn applies the In predicate on the "who_wellbeing_score" field.
func WhoWellbeingScoreIn(vs ...int) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldIn(FieldWhoWellbeingScore, vs...))
}

// WhoWellbeingScoreNotIn applies the NotIn predicate on the "who_wellbeing_score" field.
func WhoWellbeingScoreNotIn(vs ...int) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldNotIn(FieldWhoWellbeingScore, vs...))
}

// WhoWellbeingScoreGT applies the GT predicate on the "who_wellbeing_score" field.
func WhoWellbeingScoreGT(v int) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldGT(FieldWhoWellbeingScore, v))
}

// WhoWellbeingScoreGTE applies the GTE predicate on the "who_wellbeing_score" field.
func WhoWellbeingScoreGTE(v int) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldGTE(FieldWhoWellbeingScore, v))
}

// WhoWellbeingScoreLT applies the LT predicate on the "who_wellbeing_score" field.
func WhoWellbeingScoreLT(v int) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldLT(FieldWhoWellbeingScore, v))
}

// WhoWellbeingScoreLTE applies the LTE predicate on the "who_wellbeing_score" field.
func WhoWellbeingScoreLTE(v int) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldLTE(FieldWhoWellbeingScore, v))
}

// RiskLevelEQ applies the EQ predicate on the "risk_level" field.
func RiskLevelEQ(v string) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldEQ(FieldRiskLevel, v))
}

// RiskLevelNEQ applies the NEQ predicate on the "risk_level" field.
func RiskLevelNEQ(v string) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldNEQ(FieldRiskLevel, v))
}

// RiskLevelIn applies the In predicate on the "risk_level" field.
func RiskLevelIn(vs ...string) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldIn(FieldRiskLevel, vs...))
}

// RiskLevelNotIn applies the NotIn predicate on the "risk_level" field.
func RiskLevelNotIn(vs ...string) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldNotIn(FieldRiskLevel, vs...))
}

// RiskLevelGT applies the GT predicate on the "risk_level" field.
func RiskLevelGT(v string) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldGT(FieldRiskLevel, v))
}

// RiskLevelGTE applies the GTE predicate on the "risk_level" field.
func RiskLevelGTE(v string) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldGTE(FieldRiskLevel, v))
}

// RiskLevelLT applies the LT predicate on the "risk_level" field.
func RiskLevelLT(v string) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldLT(FieldRiskLevel, v))
}

// RiskLevelLTE applies the LTE predicate on the "risk_level" field.
func RiskLevelLTE(v string) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldLTE(FieldRiskLevel, v))
}

// RiskLevelContains applies the Contains predicate on the "risk_level" field.
func RiskLevelContains(v string) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldContains(FieldRiskLevel, v))
}

// RiskLevelHasPrefix applies the HasPrefix predicate on the "risk_level" field.
func RiskLevelHasPrefix(v string) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldHasPrefix(FieldRiskLevel, v))
}

// RiskLevelHasSuffix applies the HasSuffix predicate on the "risk_level" field.
func RiskLevelHasSuffix(v string) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldHasSuffix(FieldRiskLevel, v))
}

// RiskLevelEqualFold applies the EqualFold predicate on the "risk_level" field.
func RiskLevelEqualFold(v string) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldEqualFold(FieldRiskLevel, v))
}

// RiskLevelContainsFold applies the ContainsFold predicate on the "risk_level" field.
func RiskLevelContainsFold(v string) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldContainsFold(FieldRiskLevel, v))
}

// SuicideRiskEQ applies the EQ predicate on the "suicide_risk" field.
func SuicideRiskEQ(v bool) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldEQ(FieldSuicideRisk, v))
}

// SuicideRiskNEQ applies the NEQ predicate on the "suicide_risk" field.
func SuicideRiskNEQ(v bool) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldNEQ(FieldSuicideRisk, v))
}

// RecommendationsIsNil applies the IsNil predicate on the "recommendations" field.
func RecommendationsIsNil() predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldIsNull(FieldRecommendations))
}

// RecommendationsNotNil applies the NotNil predicate on the "recommendations" field.
func RecommendationsNotNil() predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldNotNull(FieldRecommendations))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.FieldLTE(FieldCompletedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MentalAssessment) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MentalAssessment) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MentalAssessment) predicate.MentalAssessment {
	return predicate.MentalAssessment(sql.NotPredicates(p))
}
