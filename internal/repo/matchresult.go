// Code generated by ent, DO NOT EDIT.

package repo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/govently/govently_backend/internal/repo/matchresult"
)

// MatchResult is the model entity for the MatchResult schema.
type MatchResult struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → users.id (client)
	UserID uuid.UUID `json:"user_id,omitempty"`
	// FK → therapist_profiles.id
	TherapistID uuid.UUID `json:"therapist_id,omitempty"`
	// TotalScore holds the value of the "total_score" field.
	TotalScore float64 `json:"total_score,omitempty"`
	// Seven factor sub-scores keyed by factor name
	Breakdown map[string]float64 `json:"breakdown,omitempty"`
	// CompatibilityReasons holds the value of the "compatibility_reasons" field.
	CompatibilityReasons []string `json:"compatibility_reasons,omitempty"`
	// PotentialConcerns holds the value of the "potential_concerns" field.
	PotentialConcerns []string `json:"potential_concerns,omitempty"`
	selectValues      sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MatchResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case matchresult.FieldBreakdown, matchresult.FieldCompatibilityReasons, matchresult.FieldPotentialConcerns:
			values[i] = new([]byte)
		case matchresult.FieldTotalScore:
			values[i] = new(sql.NullFloat64)
		case matchresult.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case matchresult.FieldID, matchresult.FieldUserID, matchresult.FieldTherapistID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MatchResult fields.
func (_m *MatchResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case matchresult.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case matchresult.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case matchresult.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case matchresult.FieldTherapistID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field therapist_id", values[i])
			} else if value != nil {
				_m.TherapistID = *value
			}
		case matchresult.FieldTotalScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_score", values[i])
			} else if value.Valid {
				_m.TotalScore = value.Float64
			}
		case matchresult.FieldBreakdown:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field breakdown", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Breakdown); err != nil {
					return fmt.Errorf("unmarshal field breakdown: %w", err)
				}
			}
		case matchresult.FieldCompatibilityReasons:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field compatibility_reasons", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CompatibilityReasons); err != nil {
					return fmt.Errorf("unmarshal field compatibility_reasons: %w", err)
				}
			}
		case matchresult.FieldPotentialConcerns:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field potential_concerns", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PotentialConcerns); err != nil {
					return fmt.Errorf("unmarshal field potential_concerns: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MatchResult.
// This includes values selected through modifiers, order, etc.
func (_m *MatchResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MatchResult.
// Note that you need to call MatchResult.Unwrap() before calling this method if this MatchResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MatchResult) Update() *MatchResultUpdateOne {
	return NewMatchResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MatchResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MatchResult) Unwrap() *MatchResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: MatchResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MatchResult) String() string {
	var builder strings.Builder
	builder.WriteString("MatchResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("therapist_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TherapistID))
	builder.WriteString(", ")
	builder.WriteString("total_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalScore))
	builder.WriteString(", ")
	builder.WriteString("breakdown=")
	builder.WriteString(fmt.Sprintf("%v", _m.Breakdown))
	builder.WriteString(", ")
	builder.WriteString("compatibility_reasons=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompatibilityReasons))
	builder.WriteString(", ")
	builder.WriteString("potential_concerns=")
	builder.WriteString(fmt.Sprintf("%v", _m.PotentialConcerns))
	builder.WriteByte(')')
	return builder.String()
}

// MatchResults is a parsable slice of MatchResult.
type MatchResults []*MatchResult
