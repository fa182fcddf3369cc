// Code generated by ent, DO NOT EDIT.

package therapistprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/govently/govently_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldEQ(FieldUserID, v))
}

// FullName applies equality check predicate on the "full_name" field. It's identical to FullNameEQ.
func FullName(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldEQ(FieldFullName, v))
}

// LicenseType applies equality check predicate on the "license_type" field. It's identical to LicenseTypeEQ.
func LicenseType(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldEQ(FieldLicenseType, v))
}

// YearsExperience applies equality check predicate on the "years_experience" field. It's identical to YearsExperienceEQ.
func YearsExperience(v int) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldEQ(FieldYearsExperience, v))
}

// YearsPrivatePractice applies equality check predicate on the "years_private_practice" field. It's identical to YearsPrivatePracticeEQ.
func YearsPrivatePractice(v int) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldEQ(FieldYearsPrivatePractice, v))
}

// CrisisInterventionTrained applies equality check predicate on the "crisis_intervention_trained" field. It's identical to CrisisInterventionTrainedEQ.
func CrisisInterventionTrained(v bool) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldEQ(FieldCrisisInterventionTrained, v))
}

// TraumaInformedCertified applies equality check predicate on the "trauma_informed_certified" field. It's identical to TraumaInformedCertifiedEQ.
func TraumaInformedCertified(v bool) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldEQ(FieldTraumaInformedCertified, v))
}

// RateIndividual applies equality check predicate on the "rate_individual" field. It's identical to RateIndividualEQ.
func RateIndividual(v float64) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldEQ(FieldRateIndividual, v))
}

// RateCouples applies equality check predicate on the "rate_couples" field. It's identical to RateCouplesEQ.
func RateCouples(v float64) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldEQ(FieldRateCouples, v))
}

// RateFamily applies equality check predicate on the "rate_family" field. It's identical to RateFamilyEQ.
func RateFamily(v float64) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldEQ(FieldRateFamily, v))
}

// RateGroup applies equality check predicate on the "rate_group" field. It's identical to RateGroupEQ.
func RateGroup(v float64) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldEQ(FieldRateGroup, v))
}

// SlidingScaleAvailable applies equality check predicate on the "sliding_scale_available" field. It's identical to SlidingScaleAvailableEQ.
func SlidingScaleAvailable(v bool) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldEQ(FieldSlidingScaleAvailable, v))
}

// Location applies equality check predicate on the "location" field. It's identical to LocationEQ.
func Location(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldEQ(FieldLocation, v))
}

// EmergencyAvailability applies equality check predicate on the "emergency_availability" field. It's identical to EmergencyAvailabilityEQ.
func EmergencyAvailability(v bool) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldEQ(FieldEmergencyAvailability, v))
}

// Bio applies equality check predicate on the "bio" field. It's identical to BioEQ.
func Bio(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldEQ(FieldBio, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldLTE(FieldUserID, v))
}

// FullNameEQ applies the EQ predicate on the "full_name" field.
func FullNameEQ(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldEQ(FieldFullName, v))
}

// FullNameNEQ applies the NEQ predicate on the "full_name" field.
func FullNameNEQ(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNEQ(FieldFullName, v))
}

// FullNameIn applies the In predicate on the "full_name" field.
func FullNameIn(vs ...string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldIn(FieldFullName, vs...))
}

// FullNameNotIn applies the NotIn predicate on the "full_name" field.
func FullNameNotIn(vs ...string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNotIn(FieldFullName, vs...))
}

// FullNameGT applies the GT predicate on the "full_name" field.
func FullNameGT(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldGT(FieldFullName, v))
}

// FullNameGTE applies the GTE predicate on the "full_name" field.
func FullNameGTE(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldGTE(FieldFullName, v))
}

// FullNameLT applies the LT predicate on the "full_name" field.
func FullNameLT(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldLT(FieldFullName, v))
}

// FullNameLTE applies the LTE predicate on the "full_name" field.
func FullNameLTE(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldLTE(FieldFullName, v))
}

// FullNameContains applies the Contains predicate on the "full_name" field.
func FullNameContains(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldContains(FieldFullName, v))
}

// FullNameHasPrefix applies the HasPrefix predicate on the "full_name" field.
func FullNameHasPrefix(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldHasPrefix(FieldFullName, v))
}

// FullNameHasSuffix applies the HasSuffix predicate on the "full_name" field.
func FullNameHasSuffix(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldHasSuffix(FieldFullName, v))
}

// FullNameEqualFold applies the EqualFold predicate on the "full_name" field.
func FullNameEqualFold(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldEqualFold(FieldFullName, v))
}

// FullNameContainsFold applies the ContainsFold predicate on the "full_name" field.
func FullNameContainsFold(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldContainsFold(FieldFullName, v))
}

// GenderEQ applies the EQ predicate on the "gender" field.
func GenderEQ(v Gender) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldEQ(FieldGender, v))
}

// GenderNEQ applies the NEQ predicate on the "gender" field.
func GenderNEQ(v Gender) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNEQ(FieldGender, v))
}

// GenderIn applies the In predicate on the "gender" field.
func GenderIn(vs ...Gender) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldIn(FieldGender, vs...))
}

// GenderNotIn applies the NotIn predicate on the "gender" field.
func GenderNotIn(vs ...Gender) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNotIn(FieldGender, vs...))
}

// LicenseTypeEQ applies the EQ predicate on the "license_type" field.
func LicenseTypeEQ(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldEQ(FieldLicenseType, v))
}

// LicenseTypeNEQ applies the NEQ predicate on the "license_type" field.
func LicenseTypeNEQ(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNEQ(FieldLicenseType, v))
}

// LicenseTypeIn applies the In predicate on the "license_type" field.
func LicenseTypeIn(vs ...string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldIn(FieldLicenseType, vs...))
}

// LicenseTypeNotIn applies the NotIn predicate on the "license_type" field.
func LicenseTypeNotIn(vs ...string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNotIn(FieldLicenseType, vs...))
}

// LicenseTypeGT applies the GT predicate on the "license_type" field.
func LicenseTypeGT(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldGT(FieldLicenseType, v))
}

// LicenseTypeGTE applies the GTE predicate on the "license_type" field.
func LicenseTypeGTE(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldGTE(FieldLicenseType, v))
}

// LicenseTypeLT applies the LT predicate on the "license_type" field.
func LicenseTypeLT(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldLT(FieldLicenseType, v))
}

// LicenseTypeLTE applies the LTE predicate on the "license_type" field.
func LicenseTypeLTE(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldLTE(FieldLicenseType, v))
}

// LicenseTypeContains applies the Contains predicate on the "license_type" field.
func LicenseTypeContains(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldContains(FieldLicenseType, v))
}

// LicenseTypeHasPrefix applies the HasPrefix predicate on the "license_type" field.
func LicenseTypeHasPrefix(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldHasPrefix(FieldLicenseType, v))
}

// LicenseTypeHasSuffix applies the HasSuffix predicate on the "license_type" field.
func LicenseTypeHasSuffix(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldHasSuffix(FieldLicenseType, v))
}

// LicenseTypeEqualFold applies the EqualFold predicate on the "license_type" field.
func LicenseTypeEqualFold(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldEqualFold(FieldLicenseType, v))
}

// LicenseTypeContainsFold applies the ContainsFold predicate on the "license_type" field.
func LicenseTypeContainsFold(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldContainsFold(FieldLicenseType, v))
}

// YearsExperienceEQ applies the EQ predicate on the "years_experience" field.
func YearsExperienceEQ(v int) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldEQ(FieldYearsExperience, v))
}

// YearsExperienceNEQ applies the NEQ predicate on the "years_experience" field.
func YearsExperienceNEQ(v int) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNEQ(FieldYearsExperience, v))
}

// YearsExperienceIn applies the In predicate on the "years_experience" field.
func YearsExperienceIn(vs ...int) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldIn(FieldYearsExperience, vs...))
}

// YearsExperienceNotIn applies the NotIn predicate on the "years_experience" field.
func YearsExperienceNotIn(vs ...int) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNotIn(FieldYearsExperience, vs...))
}

// YearsExperienceGT applies the GT predicate on the "years_experience" field.
func YearsExperienceGT(v int) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldGT(FieldYearsExperience, v))
}

// YearsExperienceGTE applies the GTE predicate on the "years_experience" field.
func YearsExperienceGTE(v int) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldGTE(FieldYearsExperience, v))
}

// YearsExperienceLT applies the LT predicate on the "years_experience" field.
func YearsExperienceLT(v int) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldLT(FieldYearsExperience, v))
}

// YearsExperienceLTE applies the LTE predicate on the "years_experience" field.
func YearsExperienceLTE(v int) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldLTE(FieldYearsExperience, v))
}

// YearsPrivatePracticeEQ applies the EQ predicate on the "years_private_practice" field.
func YearsPrivatePracticeEQ(v int) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldEQ(FieldYearsPrivatePractice, v))
}

// YearsPrivatePracticeNEQ applies the NEQ predicate on the "years_private_practice" field.
func YearsPrivatePracticeNEQ(v int) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNEQ(FieldYearsPrivatePractice, v))
}

// YearsPrivatePracticeIn applies the In predicate on the "years_private_practice" field.
func YearsPrivatePracticeIn(vs ...int) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldIn(FieldYearsPrivatePractice, vs...))
}

// YearsPrivatePracticeNotIn applies the NotIn predicate on the "years_private_practice" field.
func YearsPrivatePracticeNotIn(vs ...int) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNotIn(FieldYearsPrivatePractice, vs...))
}

// YearsPrivatePracticeGT applies the GT predicate on the "years_private_practice" field.
func YearsPrivatePracticeGT(v int) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldGT(FieldYearsPrivatePractice, v))
}

// YearsPrivatePracticeGTE applies the GTE predicate on the "years_private_practice" field.
func YearsPrivatePracticeGTE(v int) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldGTE(FieldYearsPrivatePractice, v))
}

// YearsPrivatePracticeLT applies the LT predicate on the "years_private_practice" field.
func YearsPrivatePracticeLT(v int) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldLT(FieldYearsPrivatePractice, v))
}

// YearsPrivatePracticeLTE applies the LTE predicate on the "years_private_practice" field.
func YearsPrivatePracticeLTE(v int) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldLTE(FieldYearsPrivatePractice, v))
}

// SpecializationsIsNil applies the IsNil predicate on the "specializations" field.
func SpecializationsIsNil() predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldIsNull(FieldSpecializations))
}

// SpecializationsNotNil applies the NotNil predicate on the "specializations" field.
func SpecializationsNotNil() predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNotNull(FieldSpecializations))
}

// TherapyApproachesIsNil applies the IsNil predicate on the "therapy_approaches" field.
func TherapyApproachesIsNil() predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldIsNull(FieldTherapyApproaches))
}

// TherapyApproachesNotNil applies the NotNil predicate on the "therapy_approaches" field.
func TherapyApproachesNotNil() predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNotNull(FieldTherapyApproaches))
}

// ClientDemographicsIsNil applies the IsNil predicate on the "client_demographics" field.
func ClientDemographicsIsNil() predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldIsNull(FieldClientDemographics))
}

// ClientDemographicsNotNil applies the NotNil predicate on the "client_demographics" field.
func ClientDemographicsNotNil() predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNotNull(FieldClientDemographics))
}

// SeverityLevelsIsNil applies the IsNil predicate on the "severity_levels" field.
func SeverityLevelsIsNil() predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldIsNull(FieldSeverityLevels))
}

// SeverityLevelsNotNil applies the NotNil predicate on the "severity_levels" field.
func SeverityLevelsNotNil() predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNotNull(FieldSeverityLevels))
}

// CrisisInterventionTrainedEQ applies the EQ predicate on the "crisis_intervention_trained" field.
func CrisisInterventionTrainedEQ(v bool) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldEQ(FieldCrisisInterventionTrained, v))
}

// CrisisInterventionTrainedNEQ applies the NEQ predicate on the "crisis_intervention_trained" field.
func CrisisInterventionTrainedNEQ(v bool) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNEQ(FieldCrisisInterventionTrained, v))
}

// TraumaInformedCertifiedEQ applies the EQ predicate on the "trauma_informed_certified" field.
func TraumaInformedCertifiedEQ(v bool) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldEQ(FieldTraumaInformedCertified, v))
}

// TraumaInformedCertifiedNEQ applies the NEQ predicate on the "trauma_informed_certified" field.
func TraumaInformedCertifiedNEQ(v bool) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNEQ(FieldTraumaInformedCertified, v))
}

// LanguagesIsNil applies the IsNil predicate on the "languages" field.
func LanguagesIsNil() predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldIsNull(FieldLanguages))
}

// LanguagesNotNil applies the NotNil predicate on the "languages" field.
func LanguagesNotNil() predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNotNull(FieldLanguages))
}

// AvailabilitySlotsIsNil applies the IsNil predicate on the "availability_slots" field.
func AvailabilitySlotsIsNil() predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldIsNull(FieldAvailabilitySlots))
}

// AvailabilitySlotsNotNil applies the NotNil predicate on the "availability_slots" field.
func AvailabilitySlotsNotNil() predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNotNull(FieldAvailabilitySlots))
}

// SessionDurationsIsNil applies the IsNil predicate on the "session_durations" field.
func SessionDurationsIsNil() predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldIsNull(FieldSessionDurations))
}

// SessionDurationsNotNil applies the NotNil predicate on the "session_durations" field.
func SessionDurationsNotNil() predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNotNull(FieldSessionDurations))
}

// RateIndividualEQ applies the EQ predicate on the "rate_individual" field.
func RateIndividualEQ(v float64) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldEQ(FieldRateIndividual, v))
}

// RateIndividualNEQ applies the NEQ predicate on the "rate_individual" field.
func RateIndividualNEQ(v float64) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNEQ(FieldRateIndividual, v))
}

// RateIndividualIn applies the In predicate on the "rate_individual" field.
func RateIndividualIn(vs ...float64) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldIn(FieldRateIndividual, vs...))
}

// RateIndividualNotIn applies the NotIn predicate on the "rate_individual" field.
func RateIndividualNotIn(vs ...float64) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNotIn(FieldRateIndividual, vs...))
}

// RateIndividualGT applies the GT predicate on the "rate_individual" field.
func RateIndividualGT(v float64) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldGT(FieldRateIndividual, v))
}

// RateIndividualGTE applies the GTE predicate on the "rate_individual" field.
func RateIndividualGTE(v float64) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldGTE(FieldRateIndividual, v))
}

// RateIndividualLT applies the LT predicate on the "rate_individual" field.
func RateIndividualLT(v float64) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldLT(FieldRateIndividual, v))
}

// RateIndividualLTE applies the LTE predicate on the "rate_individual" field.
func RateIndividualLTE(v float64) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldLTE(FieldRateIndividual, v))
}

// RateCouplesEQ applies the EQ predicate on the "rate_couples" field.
func RateCouplesEQ(v float64) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldEQ(FieldRateCouples, v))
}

// RateCouplesNEQ applies the NEQ predicate on the "rate_couples" field.
func RateCouplesNEQ(v float64) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNEQ(FieldRateCouples, v))
}

// RateCouplesIn applies the In predicate on the "rate_couples" field.
func RateCouplesIn(vs ...float64) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldIn(FieldRateCouples, vs...))
}

// RateCouplesNotIn applies the NotIn predicate on the "rate_couples" field.
func RateCouplesNotIn(vs ...float64) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNotIn(FieldRateCouples, vs...))
}

// RateCouplesGT applies the GT predicate on the "rate_couples" field.
func RateCouplesGT(v float64) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldGT(FieldRateCouples, v))
}

// RateCouplesGTE applies the GTE predicate on the "rate_couples" field.
func RateCouplesGTE(v float64) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldGTE(FieldRateCouples, v))
}

// RateCouplesLT applies the LT predicate on the "rate_couples" field.
func RateCouplesLT(v float64) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldLT(FieldRateCouples, v))
}

// RateCouplesLTE applies the LTE predicate on the "rate_couples" field.
func RateCouplesLTE(v float64) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldLTE(FieldRateCouples, v))
}

// RateFamilyEQ applies the EQ predicate on the "rate_family" field.
func RateFamilyEQ(v float64) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldEQ(FieldRateFamily, v))
}

// RateFamilyNEQ applies the NEQ predicate on the "rate_family" field.
func RateFamilyNEQ(v float64) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNEQ(FieldRateFamily, v))
}

// RateFamilyIn applies the In predicate on the "rate_family" field.
func RateFamilyIn(vs ...float64) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldIn(FieldRateFamily, vs...))
}

// RateFamilyNotIn applies the NotIn predicate on the "rate_family" field.
func RateFamilyNotIn(vs ...float64) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNotIn(FieldRateFamily, vs...))
}

// RateFamilyGT applies the GT predicate on the "rate_family" field.
func RateFamilyGT(v float64) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldGT(FieldRateFamily, v))
}

// RateFamilyGTE applies the GTE predicate on the "rate_family" field.
func RateFamilyGTE(v float64) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldGTE(FieldRateFamily, v))
}

// RateFamilyLT applies the LT predicate on the "rate_family" field.
func RateFamilyLT(v float64) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldLT(FieldRateFamily, v))
}

// RateFamilyLTE applies the LTE predicate on the "rate_family" field.
func RateFamilyLTE(v float64) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldLTE(FieldRateFamily, v))
}

// RateGroupEQ applies the EQ predicate on the "rate_group" field.
func RateGroupEQ(v float64) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldEQ(FieldRateGroup, v))
}

// RateGroupNEQ applies the NEQ predicate on the "rate_group" field.
func RateGroupNEQ(v float64) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNEQ(FieldRateGroup, v))
}

// RateGroupIn applies the In predicate on the "rate_group" field.
func RateGroupIn(vs ...float64) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldIn(FieldRateGroup, vs...))
}

// RateGroupNotIn applies the NotIn predicate on the "rate_group" field.
func RateGroupNotIn(vs ...float64) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNotIn(FieldRateGroup, vs...))
}

// RateGroupGT applies the GT predicate on the "rate_group" field.
func RateGroupGT(v float64) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldGT(FieldRateGroup, v))
}

// RateGroupGTE applies the GTE predicate on the "rate_group" field.
func RateGroupGTE(v float64) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldGTE(FieldRateGroup, v))
}

// RateGroupLT applies the LT predicate on the "rate_group" field.
func RateGroupLT(v float64) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldLT(FieldRateGroup, v))
}

// RateGroupLTE applies the LTE predicate on the "rate_group" field.
func RateGroupLTE(v float64) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldLTE(FieldRateGroup, v))
}

// SlidingScaleAvailableEQ applies the EQ predicate on the "sliding_scale_available" field.
func SlidingScaleAvailableEQ(v bool) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldEQ(FieldSlidingScaleAvailable, v))
}

// SlidingScaleAvailableNEQ applies the NEQ predicate on the "sliding_scale_available" field.
func SlidingScaleAvailableNEQ(v bool) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNEQ(FieldSlidingScaleAvailable, v))
}

// InsuranceAcceptedIsNil applies the IsNil predicate on the "insurance_accepted" field.
func InsuranceAcceptedIsNil() predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldIsNull(FieldInsuranceAccepted))
}

// InsuranceAcceptedNotNil applies the NotNil predicate on the "insurance_accepted" field.
func InsuranceAcceptedNotNil() predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNotNull(FieldInsuranceAccepted))
}

// LocationEQ applies the EQ predicate on the "location" field.
func LocationEQ(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldEQ(FieldLocation, v))
}

// LocationNEQ applies the NEQ predicate on the "location" field.
func LocationNEQ(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNEQ(FieldLocation, v))
}

// LocationIn applies the In predicate on the "location" field.
func LocationIn(vs ...string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldIn(FieldLocation, vs...))
}

// LocationNotIn applies the NotIn predicate on the "location" field.
func LocationNotIn(vs ...string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNotIn(FieldLocation, vs...))
}

// LocationGT applies the GT predicate on the "location" field.
func LocationGT(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldGT(FieldLocation, v))
}

// LocationGTE applies the GTE predicate on the "location" field.
func LocationGTE(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldGTE(FieldLocation, v))
}

// LocationLT applies the LT predicate on the "location" field.
func LocationLT(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldLT(FieldLocation, v))
}

// LocationLTE applies the LTE predicate on the "location" field.
func LocationLTE(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldLTE(FieldLocation, v))
}

// LocationContains applies the Contains predicate on the "location" field.
func LocationContains(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldContains(FieldLocation, v))
}

// LocationHasPrefix applies the HasPrefix predicate on the "location" field.
func LocationHasPrefix(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldHasPrefix(FieldLocation, v))
}

// LocationHasSuffix applies the HasSuffix predicate on the "location" field.
func LocationHasSuffix(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldHasSuffix(FieldLocation, v))
}

// LocationIsNil applies the IsNil predicate on the "location" field.
func LocationIsNil() predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldIsNull(FieldLocation))
}

// LocationNotNil applies the NotNil predicate on the "location" field.
func LocationNotNil() predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNotNull(FieldLocation))
}

// LocationEqualFold applies the EqualFold predicate on the "location" field.
func LocationEqualFold(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldEqualFold(FieldLocation, v))
}

// LocationContainsFold applies the ContainsFold predicate on the "location" field.
func LocationContainsFold(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldContainsFold(FieldLocation, v))
}

// ServicesOfferedIsNil applies the IsNil predicate on the "services_offered" field.
func ServicesOfferedIsNil() predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldIsNull(FieldServicesOffered))
}

// ServicesOfferedNotNil applies the NotNil predicate on the "services_offered" field.
func ServicesOfferedNotNil() predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNotNull(FieldServicesOffered))
}

// EmergencyAvailabilityEQ applies the EQ predicate on the "emergency_availability" field.
func EmergencyAvailabilityEQ(v bool) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldEQ(FieldEmergencyAvailability, v))
}

// EmergencyAvailabilityNEQ applies the NEQ predicate on the "emergency_availability" field.
func EmergencyAvailabilityNEQ(v bool) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNEQ(FieldEmergencyAvailability, v))
}

// BioEQ applies the EQ predicate on the "bio" field.
func BioEQ(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldEQ(FieldBio, v))
}

// BioNEQ applies the NEQ predicate on the "bio" field.
func BioNEQ(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNEQ(FieldBio, v))
}

// BioIn applies the In predicate on the "bio" field.
func BioIn(vs ...string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldIn(FieldBio, vs...))
}

// BioNotIn applies the NotIn predicate on the "bio" field.
func BioNotIn(vs ...string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNotIn(FieldBio, vs...))
}

// BioGT applies the GT predicate on the "bio" field.
func BioGT(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldGT(FieldBio, v))
}

// BioGTE applies the GTE predicate on the "bio" field.
func BioGTE(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldGTE(FieldBio, v))
}

// BioLT applies the LT predicate on the "bio" field.
func BioLT(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldLT(FieldBio, v))
}

// BioLTE applies the LTE predicate on the "bio" field.
func BioLTE(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldLTE(FieldBio, v))
}

// BioContains applies the Contains predicate on the "bio" field.
func BioContains(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldContains(FieldBio, v))
}

// BioHasPrefix applies the HasPrefix predicate on the "bio" field.
func BioHasPrefix(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldHasPrefix(FieldBio, v))
}

// BioHasSuffix applies the HasSuffix predicate on the "bio" field.
func BioHasSuffix(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldHasSuffix(FieldBio, v))
}

// BioIsNil applies the IsNil predicate on the "bio" field.
func BioIsNil() predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldIsNull(FieldBio))
}

// BioNotNil applies the NotNil predicate on the "bio" field.
func BioNotNil() predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNotNull(FieldBio))
}

// BioEqualFold applies the EqualFold predicate on the "bio" field.
func BioEqualFold(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldEqualFold(FieldBio, v))
}

// BioContainsFold applies the ContainsFold predicate on the "bio" field.
func BioContainsFold(v string) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldContainsFold(FieldBio, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.FieldNotIn(FieldStatus, vs...))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TherapistProfile) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TherapistProfile) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TherapistProfile) predicate.TherapistProfile {
	return predicate.TherapistProfile(sql.NotPredicates(p))
}
