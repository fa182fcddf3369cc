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
	"github.com/govently/govently_backend/internal/repo/therapistprofile"
)

// TherapistProfile is the model entity for the TherapistProfile schema.
type TherapistProfile struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → users.id (1:1)
	UserID uuid.UUID `json:"user_id,omitempty"`
	// FullName holds the value of the "full_name" field.
	FullName string `json:"full_name,omitempty"`
	// Gender holds the value of the "gender" field.
	Gender therapistprofile.Gender `json:"gender,omitempty"`
	// Credential, e.g. LCSW, LMFT, PhD
	LicenseType string `json:"license_type,omitempty"`
	// YearsExperience holds the value of the "years_experience" field.
	YearsExperience int `json:"years_experience,omitempty"`
	// YearsPrivatePractice holds the value of the "years_private_practice" field.
	YearsPrivatePractice int `json:"years_private_practice,omitempty"`
	// Specializations holds the value of the "specializations" field.
	Specializations []string `json:"specializations,omitempty"`
	// TherapyApproaches holds the value of the "therapy_approaches" field.
	TherapyApproaches []string `json:"therapy_approaches,omitempty"`
	// ClientDemographics holds the value of the "client_demographics" field.
	ClientDemographics []string `json:"client_demographics,omitempty"`
	// Severity bands the therapist accepts
	SeverityLevels []string `json:"severity_levels,omitempty"`
	// CrisisInterventionTrained holds the value of the "crisis_intervention_trained" field.
	CrisisInterventionTrained bool `json:"crisis_intervention_trained,omitempty"`
	// TraumaInformedCertified holds the value of the "trauma_informed_certified" field.
	TraumaInformedCertified bool `json:"trauma_informed_certified,omitempty"`
	// Languages holds the value of the "languages" field.
	Languages []string `json:"languages,omitempty"`
	// Recurring weekly openings {day, start_time, end_time}
	AvailabilitySlots []map[string]string `json:"availability_slots,omitempty"`
	// Offered session lengths in minutes
	SessionDurations []int `json:"session_durations,omitempty"`
	// RateIndividual holds the value of the "rate_individual" field.
	RateIndividual float64 `json:"rate_individual,omitempty"`
	// RateCouples holds the value of the "rate_couples" field.
	RateCouples float64 `json:"rate_couples,omitempty"`
	// RateFamily holds the value of the "rate_family" field.
	RateFamily float64 `json:"rate_family,omitempty"`
	// RateGroup holds the value of the "rate_group" field.
	RateGroup float64 `json:"rate_group,omitempty"`
	// SlidingScaleAvailable holds the value of the "sliding_scale_available" field.
	SlidingScaleAvailable bool `json:"sliding_scale_available,omitempty"`
	// InsuranceAccepted holds the value of the "insurance_accepted" field.
	InsuranceAccepted []string `json:"insurance_accepted,omitempty"`
	// Location holds the value of the "location" field.
	Location string `json:"location,omitempty"`
	// in_person, online
	ServicesOffered []string `json:"services_offered,omitempty"`
	// EmergencyAvailability holds the value of the "emergency_availability" field.
	EmergencyAvailability bool `json:"emergency_availability,omitempty"`
	// Bio holds the value of the "bio" field.
	Bio *string `json:"bio,omitempty"`
	// Only approved profiles appear in listings
	Status       therapistprofile.Status `json:"status,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TherapistProfile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case therapistprofile.FieldSpecializations, therapistprofile.FieldTherapyApproaches, therapistprofile.FieldClientDemographics, therapistprofile.FieldSeverityLevels, therapistprofile.FieldLanguages, therapistprofile.FieldAvailabilitySlots, therapistprofile.FieldSessionDurations, therapistprofile.FieldInsuranceAccepted, therapistprofile.FieldServicesOffered:
			values[i] = new([]byte)
		case therapistprofile.FieldCrisisInterventionTrained, therapistprofile.FieldTraumaInformedCertified, therapistprofile.FieldSlidingScaleAvailable, therapistprofile.FieldEmergencyAvailability:
			values[i] = new(sql.NullBool)
		case therapistprofile.FieldRateIndividual, therapistprofile.FieldRateCouples, therapistprofile.FieldRateFamily, therapistprofile.FieldRateGroup:
			values[i] = new(sql.NullFloat64)
		case therapistprofile.FieldYearsExperience, therapistprofile.FieldYearsPrivatePractice:
			values[i] = new(sql.NullInt64)
		case therapistprofile.FieldFullName, therapistprofile.FieldGender, therapistprofile.FieldLicenseType, therapistprofile.FieldLocation, therapistprofile.FieldBio, therapistprofile.FieldStatus:
			values[i] = new(sql.NullString)
		case therapistprofile.FieldCreatedAt, therapistprofile.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case therapistprofile.FieldID, therapistprofile.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TherapistProfile fields.
func (_m *TherapistProfile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case therapistprofile.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case therapistprofile.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case therapistprofile.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case therapistprofile.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case therapistprofile.FieldFullName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field full_name", values[i])
			} else if value.Valid {
				_m.FullName = value.String
			}
		case therapistprofile.FieldGender:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gender", values[i])
			} else if value.Valid {
				_m.Gender = therapistprofile.Gender(value.String)
			}
		case therapistprofile.FieldLicenseType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field license_type", values[i])
			} else if value.Valid {
				_m.LicenseType = value.String
			}
		case therapistprofile.FieldYearsExperience:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field years_experience", values[i])
			} else if value.Valid {
				_m.YearsExperience = int(value.Int64)
			}
		case therapistprofile.FieldYearsPrivatePractice:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field years_private_practice", values[i])
			} else if value.Valid {
				_m.YearsPrivatePractice = int(value.Int64)
			}
		case therapistprofile.FieldSpecializations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field specializations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Specializations); err != nil {
					return fmt.Errorf("unmarshal field specializations: %w", err)
				}
			}
		case therapistprofile.FieldTherapyApproaches:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field therapy_approaches", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TherapyApproaches); err != nil {
					return fmt.Errorf("unmarshal field therapy_approaches: %w", err)
				}
			}
		case therapistprofile.FieldClientDemographics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field client_demographics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ClientDemographics); err != nil {
					return fmt.Errorf("unmarshal field client_demographics: %w", err)
				}
			}
		case therapistprofile.FieldSeverityLevels:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field severity_levels", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SeverityLevels); err != nil {
					return fmt.Errorf("unmarshal field severity_levels: %w", err)
				}
			}
		case therapistprofile.FieldCrisisInterventionTrained:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field crisis_intervention_trained", values[i])
			} else if value.Valid {
				_m.CrisisInterventionTrained = value.Bool
			}
		case therapistprofile.FieldTraumaInformedCertified:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field trauma_informed_certified", values[i])
			} else if value.Valid {
				_m.TraumaInformedCertified = value.Bool
			}
		case therapistprofile.FieldLanguages:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field languages", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Languages); err != nil {
					return fmt.Errorf("unmarshal field languages: %w", err)
				}
			}
		case therapistprofile.FieldAvailabilitySlots:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field availability_slots", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AvailabilitySlots); err != nil {
					return fmt.Errorf("unmarshal field availability_slots: %w", err)
				}
			}
		case therapistprofile.FieldSessionDurations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field session_durations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SessionDurations); err != nil {
					return fmt.Errorf("unmarshal field session_durations: %w", err)
				}
			}
		case therapistprofile.FieldRateIndividual:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field rate_individual", values[i])
			} else if value.Valid {
				_m.RateIndividual = value.Float64
			}
		case therapistprofile.FieldRateCouples:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field rate_couples", values[i])
			} else if value.Valid {
				_m.RateCouples = value.Float64
			}
		case therapistprofile.FieldRateFamily:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field rate_family", values[i])
			} else if value.Valid {
				_m.RateFamily = value.Float64
			}
		case therapistprofile.FieldRateGroup:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field rate_group", values[i])
			} else if value.Valid {
				_m.RateGroup = value.Float64
			}
		case therapistprofile.FieldSlidingScaleAvailable:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field sliding_scale_available", values[i])
			} else if value.Valid {
				_m.SlidingScaleAvailable = value.Bool
			}
		case therapistprofile.FieldInsuranceAccepted:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field insurance_accepted", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.InsuranceAccepted); err != nil {
					return fmt.Errorf("unmarshal field insurance_accepted: %w", err)
				}
			}
		case therapistprofile.FieldLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location", values[i])
			} else if value.Valid {
				_m.Location = value.String
			}
		case therapistprofile.FieldServicesOffered:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field services_offered", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ServicesOffered); err != nil {
					return fmt.Errorf("unmarshal field services_offered: %w", err)
				}
			}
		case therapistprofile.FieldEmergencyAvailability:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field emergency_availability", values[i])
			} else if value.Valid {
				_m.EmergencyAvailability = value.Bool
			}
		case therapistprofile.FieldBio:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bio", values[i])
			} else if value.Valid {
				_m.Bio = new(string)
				*_m.Bio = value.String
			}
		case therapistprofile.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = therapistprofile.Status(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TherapistProfile.
// This includes values selected through modifiers, order, etc.
func (_m *TherapistProfile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TherapistProfile.
// Note that you need to call TherapistProfile.Unwrap() before calling this method if this TherapistProfile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TherapistProfile) Update() *TherapistProfileUpdateOne {
	return NewTherapistProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TherapistProfile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TherapistProfile) Unwrap() *TherapistProfile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: TherapistProfile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TherapistProfile) String() string {
	var builder strings.Builder
	builder.WriteString("TherapistProfile(")
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
	builder.WriteString("full_name=")
	builder.WriteString(_m.FullName)
	builder.WriteString(", ")
	builder.WriteString("gender=")
	builder.WriteString(fmt.Sprintf("%v", _m.Gender))
	builder.WriteString(", ")
	builder.WriteString("license_type=")
	builder.WriteString(_m.LicenseType)
	builder.WriteString(", ")
	builder.WriteString("years_experience=")
	builder.WriteString(fmt.Sprintf("%v", _m.YearsExperience))
	builder.WriteString(", ")
	builder.WriteString("years_private_practice=")
	builder.WriteString(fmt.Sprintf("%v", _m.YearsPrivatePractice))
	builder.WriteString(", ")
	builder.WriteString("specializations=")
	builder.WriteString(fmt.Sprintf("%v", _m.Specializations))
	builder.WriteString(", ")
	builder.WriteString("therapy_approaches=")
	builder.WriteString(fmt.Sprintf("%v", _m.TherapyApproaches))
	builder.WriteString(", ")
	builder.WriteString("client_demographics=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClientDemographics))
	builder.WriteString(", ")
	builder.WriteString("severity_levels=")
	builder.WriteString(fmt.Sprintf("%v", _m.SeverityLevels))
	builder.WriteString(", ")
	builder.WriteString("crisis_intervention_trained=")
	builder.WriteString(fmt.Sprintf("%v", _m.CrisisInterventionTrained))
	builder.WriteString(", ")
	builder.WriteString("trauma_informed_certified=")
	builder.WriteString(fmt.Sprintf("%v", _m.TraumaInformedCertified))
	builder.WriteString(", ")
	builder.WriteString("languages=")
	builder.WriteString(fmt.Sprintf("%v", _m.Languages))
	builder.WriteString(", ")
	builder.WriteString("availability_slots=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvailabilitySlots))
	builder.WriteString(", ")
	builder.WriteString("session_durations=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionDurations))
	builder.WriteString(", ")
	builder.WriteString("rate_individual=")
	builder.WriteString(fmt.Sprintf("%v", _m.RateIndividual))
	builder.WriteString(", ")
	builder.WriteString("rate_couples=")
	builder.WriteString(fmt.Sprintf("%v", _m.RateCouples))
	builder.WriteString(", ")
	builder.WriteString("rate_family=")
	builder.WriteString(fmt.Sprintf("%v", _m.RateFamily))
	builder.WriteString(", ")
	builder.WriteString("rate_group=")
	builder.WriteString(fmt.Sprintf("%v", _m.RateGroup))
	builder.WriteString(", ")
	builder.WriteString("sliding_scale_available=")
	builder.WriteString(fmt.Sprintf("%v", _m.SlidingScaleAvailable))
	builder.WriteString(", ")
	builder.WriteString("insurance_accepted=")
	builder.WriteString(fmt.Sprintf("%v", _m.InsuranceAccepted))
	builder.WriteString(", ")
	builder.WriteString("location=")
	builder.WriteString(_m.Location)
	builder.WriteString(", ")
	builder.WriteString("services_offered=")
	builder.WriteString(fmt.Sprintf("%v", _m.ServicesOffered))
	builder.WriteString(", ")
	builder.WriteString("emergency_availability=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmergencyAvailability))
	builder.WriteString(", ")
	if v := _m.Bio; v != nil {
		builder.WriteString("bio=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteByte(')')
	return builder.String()
}

// TherapistProfiles is a parsable slice of TherapistProfile.
type TherapistProfiles []*TherapistProfile
