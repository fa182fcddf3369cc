// Code generated by ent, DO NOT EDIT.

package mentalassessment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the mentalassessment type in the database.
	Label = "mental_assessment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldAssessmentID holds the string denoting the assessment_id field in the database.
	FieldAssessmentID = "assessment_id"
	// FieldResponses holds the string denoting the responses field in the database.
	FieldResponses = "responses"
	// FieldPhq9Score holds the string denoting the phq9_score field in the database.
	FieldPhq9Score = "phq9_score"
	// FieldGad7Score holds the string denoting the gad7_score field in the database.
	FieldGad7Score = "gad7_score"
	// FieldPssScore holds the string denoting the pss_score field in the database.
	FieldPssScore = "pss_score"
	// FieldWhoWellbeingScore holds the string denoting the who_wellbeing_score field in the database.
	FieldWhoWellbeingScore = "who_wellbeing_score"
	// FieldRiskLevel holds the string denoting the risk_level field in the database.
	FieldRiskLevel = "risk_level"
	// FieldSuicideRisk holds the string denoting the suicide_risk field in the database.
	FieldSuicideRisk = "suicide_risk"
	// FieldRecommendations holds the string denoting the recommendations field in the database.
	FieldRecommendations = "recommendations"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// Table holds the table name of the mentalassessment in the database.
	Table = "mental_assessments"
)

// Columns holds all SQL columns for mentalassessment fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldUserID,
	FieldAssessmentID,
	FieldResponses,
	FieldPhq9Score,
	FieldGad7Score,
	FieldPssScore,
	FieldWhoWellbeingScore,
	FieldRiskLevel,
	FieldSuicideRisk,
	FieldRecommendations,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// AssessmentIDValidator is a validator for the "assessment_id" field. It is called by the builders before save.
	AssessmentIDValidator func(string) error
	// RiskLevelValidator is a validator for the "risk_level" field. It is called by the builders before save.
	RiskLevelValidator func(string) error
	// DefaultSuicideRisk holds the default value on creation for the "suicide_risk" field.
	DefaultSuicideRisk bool
	// DefaultCompletedAt holds the default value on creation for the "completed_at" field.
	DefaultCompletedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the MentalAssessment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByAssessmentID orders the results by the assessment_id field.
func ByAssessmentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssessmentID, opts...).ToFunc()
}

// ByPhq9Score orders the results by the phq9_score field.
func ByPhq9Score(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhq9Score, opts...).ToFunc()
}

// ByGad7Score orders the results by the gad7_score field.
func ByGad7Score(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGad7Score, opts...).ToFunc()
}

// ByPssScore orders the results by the pss_score field.
func ByPssScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPssScore, opts...).ToFunc()
}

// ByWhoWellbeingScore orders the results by the who_wellbeing_score field.
func ByWhoWellbeingScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWhoWellbeingScore, opts...).ToFunc()
}

// ByRiskLevel orders the results by the risk_level field.
func ByRiskLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskLevel, opts...).ToFunc()
}

// BySuicideRisk orders the results by the suicide_risk field.
func BySuicideRisk(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuicideRisk, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}
