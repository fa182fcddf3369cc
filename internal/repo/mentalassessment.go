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
	"github.com/govently/govently_backend/internal/repo/mentalassessment"
)

// MentalAssessment is the model entity for the MentalAssessment schema.
type MentalAssessment struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → users.id; uniqueness enforces one current assessment per user
	UserID uuid.UUID `json:"user_id,omitempty"`
	// Client-generated identifier of the assessment pass
	AssessmentID string `json:"assessment_id,omitempty"`
	// Append-only response log {question_id, value, timestamp}
	Responses []map[string]interface{} `json:"responses,omitempty"`
	// Phq9Score holds the value of the "phq9_score" field.
	Phq9Score int `json:"phq9_score,omitempty"`
	// Gad7Score holds the value of the "gad7_score" field.
	Gad7Score int `json:"gad7_score,omitempty"`
	// PssScore holds the value of the "pss_score" field.
	PssScore int `json:"pss_score,omitempty"`
	// WhoWellbeingScore holds the value of the "who_wellbeing_score" field.
	WhoWellbeingScore int `json:"who_wellbeing_score,omitempty"`
	// RiskLevel holds the value of the "risk_level" field.
	RiskLevel string `json:"risk_level,omitempty"`
	// SuicideRisk holds the value of the "suicide_risk" field.
	SuicideRisk bool `json:"suicide_risk,omitempty"`
	// Recommendations holds the value of the "recommendations" field.
	Recommendations []string `json:"recommendations,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt  time.Time `json:"completed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MentalAssessment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case mentalassessment.FieldResponses, mentalassessment.FieldRecommendations:
			values[i] = new([]byte)
		case mentalassessment.FieldSuicideRisk:
			values[i] = new(sql.NullBool)
		case mentalassessment.FieldPhq9Score, mentalassessment.FieldGad7Score, mentalassessment.FieldPssScore, mentalassessment.FieldWhoWellbeingScore:
			values[i] = new(sql.NullInt64)
		case mentalassessment.FieldAssessmentID, mentalassessment.FieldRiskLevel:
			values[i] = new(sql.NullString)
		case mentalassessment.FieldCreatedAt, mentalassessment.FieldUpdatedAt, mentalassessment.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		case mentalassessment.FieldID, mentalassessment.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MentalAssessment fields.
func (_m *MentalAssessment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case mentalassessment.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case mentalassessment.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case mentalassessment.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case mentalassessment.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case mentalassessment.FieldAssessmentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assessment_id", values[i])
			} else if value.Valid {
				_m.AssessmentID = value.String
			}
		case mentalassessment.FieldResponses:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field responses", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Responses); err != nil {
					return fmt.Errorf("unmarshal field responses: %w", err)
				}
			}
		case mentalassessment.FieldPhq9Score:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field phq9_score", values[i])
			} else if value.Valid {
				_m.Phq9Score = int(value.Int64)
			}
		case mentalassessment.FieldGad7Score:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field gad7_score", values[i])
			} else if value.Valid {
				_m.Gad7Score = int(value.Int64)
			}
		case mentalassessment.FieldPssScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pss_score", values[i])
			} else if value.Valid {
				_m.PssScore = int(value.Int64)
			}
		case mentalassessment.FieldWhoWellbeingScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field who_wellbeing_score", values[i])
			} else if value.Valid {
				_m.WhoWellbeingScore = int(value.Int64)
			}
		case mentalassessment.FieldRiskLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field risk_level", values[i])
			} else if value.Valid {
				_m.RiskLevel = value.String
			}
		case mentalassessment.FieldSuicideRisk:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field suicide_risk", values[i])
			} else if value.Valid {
				_m.SuicideRisk = value.Bool
			}
		case mentalassessment.FieldRecommendations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field recommendations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Recommendations); err != nil {
					return fmt.Errorf("unmarshal field recommendations: %w", err)
				}
			}
		case mentalassessment.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MentalAssessment.
// This includes values selected through modifiers, order, etc.
func (_m *MentalAssessment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MentalAssessment.
// Note that you need to call MentalAssessment.Unwrap() before calling this method if this MentalAssessment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MentalAssessment) Update() *MentalAssessmentUpdateOne {
	return NewMentalAssessmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MentalAssessment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MentalAssessment) Unwrap() *MentalAssessment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: MentalAssessment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MentalAssessment) String() string {
	var builder strings.Builder
	builder.WriteString("MentalAssessment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("assessment_id=")
	builder.WriteString(_m.AssessmentID)
	builder.WriteString(", ")
	builder.WriteString("responses=")
	builder.WriteString(fmt.Sprintf("%v", _m.Responses))
	builder.WriteString(", ")
	builder.WriteString("phq9_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Phq9Score))
	builder.WriteString(", ")
	builder.WriteString("gad7_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Gad7Score))
	builder.WriteString(", ")
	builder.WriteString("pss_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.PssScore))
	builder.WriteString(", ")
	builder.WriteString("who_wellbeing_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.WhoWellbeingScore))
	builder.WriteString(", ")
	builder.WriteString("risk_level=")
	builder.WriteString(_m.RiskLevel)
	builder.WriteString(", ")
	builder.WriteString("suicide_risk=")
	builder.WriteString(fmt.Sprintf("%v", _m.SuicideRisk))
	builder.WriteString(", ")
	builder.WriteString("recommendations=")
	builder.WriteString(fmt.Sprintf("%v", _m.Recommendations))
	builder.WriteString(", ")
	builder.WriteString("completed_at=")
	builder.WriteString(_m.CompletedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MentalAssessments is a parsable slice of MentalAssessment.
type MentalAssessments []*MentalAssessment
