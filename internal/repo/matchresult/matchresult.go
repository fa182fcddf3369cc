// Code generated by ent, DO NOT EDIT.

package matchresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the matchresult type in the database.
	Label = "match_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTherapistID holds the string denoting the therapist_id field in the database.
	FieldTherapistID = "therapist_id"
	// FieldTotalScore holds the string denoting the total_score field in the database.
	FieldTotalScore = "total_score"
	// FieldBreakdown holds the string denoting the breakdown field in the database.
	FieldBreakdown = "breakdown"
	// FieldCompatibilityReasons holds the string denoting the compatibility_reasons field in the database.
	FieldCompatibilityReasons = "compatibility_reasons"
	// FieldPotentialConcerns holds the string denoting the potential_concerns field in the database.
	FieldPotentialConcerns = "potential_concerns"
	// Table holds the table name of the matchresult in the database.
	Table = "match_results"
)

// Columns holds all SQL columns for matchresult fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUserID,
	FieldTherapistID,
	FieldTotalScore,
	FieldBreakdown,
	FieldCompatibilityReasons,
	FieldPotentialConcerns,
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
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the MatchResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTherapistID orders the results by the therapist_id field.
func ByTherapistID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTherapistID, opts...).ToFunc()
}

// ByTotalScore orders the results by the total_score field.
func ByTotalScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalScore, opts...).ToFunc()
}
