// Code generated by ent, DO NOT EDIT.

package therapistprofile

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the therapistprofile type in the database.
	Label = "therapist_profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldFullName holds the string denoting the full_name field in the database.
	FieldFullName = "full_name"
	// FieldGender holds the string denoting the gender field in the database.
	FieldGender = "gender"
	// FieldLicenseType holds the string denoting the license_type field in the database.
	FieldLicenseType = "license_type"
	// FieldYearsExperience holds the string denoting the years_experience field in the database.
	FieldYearsExperience = "years_experience"
	// FieldYearsPrivatePractice holds the string denoting the years_private_practice field in the database.
	FieldYearsPrivatePractice = "years_private_practice"
	// FieldSpecializations holds the string denoting the specializations field in the database.
	FieldSpecializations = "specializations"
	// FieldTherapyApproaches holds the string denoting the therapy_approaches field in the database.
	FieldTherapyApproaches = "therapy_approaches"
	// FieldClientDemographics holds the string denoting the client_demographics field in the database.
	FieldClientDemographics = "client_demographics"
	// FieldSeverityLevels holds the string denoting the severity_levels field in the database.
	FieldSeverityLevels = "severity_levels"
	// FieldCrisisInterventionTrained holds the string denoting the crisis_intervention_trained field in the database.
	FieldCrisisInterventionTrained = "crisis_intervention_trained"
	// FieldTraumaInformedCertified holds the string denoting the trauma_informed_certified field in the database.
	FieldTraumaInformedCertified = "trauma_informed_certified"
	// FieldLanguages holds the string denoting the languages field in the database.
	FieldLanguages = "languages"
	// FieldAvailabilitySlots holds the string denoting the availability_slots field in the database.
	FieldAvailabilitySlots = "availability_slots"
	// FieldSessionDurations holds the string denoting the session_durations field in the database.
	FieldSessionDurations = "session_durations"
	// FieldRateIndividual holds the string denoting the rate_individual field in the database.
	FieldRateIndividual = "rate_individual"
	// FieldRateCouples holds the string denoting the rate_couples field in the database.
	FieldRateCouples = "rate_couples"
	// FieldRateFamily holds the string denoting the rate_family field in the database.
	FieldRateFamily = "rate_family"
	// FieldRateGroup holds the string denoting the rate_group field in the database.
	FieldRateGroup = "rate_group"
	// FieldSlidingScaleAvailable holds the string denoting the sliding_scale_available field in the database.
	FieldSlidingScaleAvailable = "sliding_scale_available"
	// FieldInsuranceAccepted holds the string denoting the insurance_accepted field in the database.
	FieldInsuranceAccepted = "insurance_accepted"
	// FieldLocation holds the string denoting the location field in the database.
	FieldLocation = "location"
	// FieldServicesOffered holds the string denoting the services_offered field in the database.
	FieldServicesOffered = "services_offered"
	// FieldEmergencyAvailability holds the string denoting the emergency_availability field in the database.
	FieldEmergencyAvailability = "emergency_availability"
	// FieldBio holds the string denoting the bio field in the database.
	FieldBio = "bio"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// Table holds the table name of the therapistprofile in the database.
	Table = "therapist_profiles"
)

// Columns holds all SQL columns for therapistprofile fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldUserID,
	FieldFullName,
	FieldGender,
	FieldLicenseType,
	FieldYearsExperience,
	FieldYearsPrivatePractice,
	FieldSpecializations,
	FieldTherapyApproaches,
	FieldClientDemographics,
	FieldSeverityLevels,
	FieldCrisisInterventionTrained,
	FieldTraumaInformedCertified,
	FieldLanguages,
	FieldAvailabilitySlots,
	FieldSessionDurations,
	FieldRateIndividual,
	FieldRateCouples,
	FieldRateFamily,
	FieldRateGroup,
	FieldSlidingScaleAvailable,
	FieldInsuranceAccepted,
	FieldLocation,
	FieldServicesOffered,
	FieldEmergencyAvailability,
	FieldBio,
	FieldStatus,
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
	// FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	FullNameValidator func(string) error
	// LicenseTypeValidator is a validator for the "license_type" field. It is called by the builders before save.
	LicenseTypeValidator func(string) error
	// DefaultYearsExperience holds the default value on creation for the "years_experience" field.
	DefaultYearsExperience int
	// YearsExperienceValidator is a validator for the "years_experience" field. It is called by the builders before save.
	YearsExperienceValidator func(int) error
	// DefaultYearsPrivatePractice holds the default value on creation for the "years_private_practice" field.
	DefaultYearsPrivatePractice int
	// YearsPrivatePracticeValidator is a validator for the "years_private_practice" field. It is called by the builders before save.
	YearsPrivatePracticeValidator func(int) error
	// DefaultCrisisInterventionTrained holds the default value on creation for the "crisis_intervention_trained" field.
	DefaultCrisisInterventionTrained bool
	// DefaultTraumaInformedCertified holds the default value on creation for the "trauma_informed_certified" field.
	DefaultTraumaInformedCertified bool
	// DefaultRateIndividual holds the default value on creation for the "rate_individual" field.
	DefaultRateIndividual float64
	// DefaultRateCouples holds the default value on creation for the "rate_couples" field.
	DefaultRateCouples float64
	// DefaultRateFamily holds the default value on creation for the "rate_family" field.
	DefaultRateFamily float64
	// DefaultRateGroup holds the default value on creation for the "rate_group" field.
	DefaultRateGroup float64
	// DefaultSlidingScaleAvailable holds the default value on creation for the "sliding_scale_available" field.
	DefaultSlidingScaleAvailable bool
	// LocationValidator is a validator for the "location" field. It is called by the builders before save.
	LocationValidator func(string) error
	// DefaultEmergencyAvailability holds the default value on creation for the "emergency_availability" field.
	DefaultEmergencyAvailability bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Gender defines the type for the "gender" enum field.
type Gender string

// GenderNotSpecified is the default value of the Gender enum.
const DefaultGender = GenderNotSpecified

// Gender values.
const (
	GenderMale         Gender = "male"
	GenderFemale       Gender = "female"
	GenderNonBinary    Gender = "non_binary"
	GenderNotSpecified Gender = "not_specified"
)

func (ge Gender) String() string {
	return string(ge)
}

// GenderValidator is a validator for the "gender" field enum values. It is called by the builders before save.
func GenderValidator(ge Gender) error {
	switch ge {
	case GenderMale, GenderFemale, GenderNonBinary, GenderNotSpecified:
		return nil
	default:
		return fmt.Errorf("therapistprofile: invalid enum value for gender field: %q", ge)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusSuspended Status = "suspended"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusSuspended:
		return nil
	default:
		return fmt.Errorf("therapistprofile: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the TherapistProfile queries.
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

// ByFullName orders the results by the full_name field.
func ByFullName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFullName, opts...).ToFunc()
}

// ByGender orders the results by the gender field.
func ByGender(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGender, opts...).ToFunc()
}

// ByLicenseType orders the results by the license_type field.
func ByLicenseType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLicenseType, opts...).ToFunc()
}

// ByYearsExperience orders the results by the years_experience field.
func ByYearsExperience(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYearsExperience, opts...).ToFunc()
}

// ByYearsPrivatePractice orders the results by the years_private_practice field.
func ByYearsPrivatePractice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYearsPrivatePractice, opts...).ToFunc()
}

// ByCrisisInterventionTrained orders the results by the crisis_intervention_trained field.
func ByCrisisInterventionTrained(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCrisisInterventionTrained, opts...).ToFunc()
}

// ByTraumaInformedCertified orders the results by the trauma_informed_certified field.
func ByTraumaInformedCertified(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTraumaInformedCertified, opts...).ToFunc()
}

// ByRateIndividual orders the results by the rate_individual field.
func ByRateIndividual(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRateIndividual, opts...).ToFunc()
}

// ByRateCouples orders the results by the rate_couples field.
func ByRateCouples(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRateCouples, opts...).ToFunc()
}

// ByRateFamily orders the results by the rate_family field.
func ByRateFamily(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRateFamily, opts...).ToFunc()
}

// ByRateGroup orders the results by the rate_group field.
func ByRateGroup(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRateGroup, opts...).ToFunc()
}

// BySlidingScaleAvailable orders the results by the sliding_scale_available field.
func BySlidingScaleAvailable(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlidingScaleAvailable, opts...).ToFunc()
}

// ByLocation orders the results by the location field.
func ByLocation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocation, opts...).ToFunc()
}

// ByEmergencyAvailability orders the results by the emergency_availability field.
func ByEmergencyAvailability(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmergencyAvailability, opts...).ToFunc()
}

// ByBio orders the results by the bio field.
func ByBio(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBio, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}
