// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/govently/govently_backend/internal/repo/appointment"
	"github.com/govently/govently_backend/internal/repo/matchresult"
	"github.com/govently/govently_backend/internal/repo/mentalassessment"
	"github.com/govently/govently_backend/internal/repo/therapistprofile"
	"github.com/govently/govently_backend/internal/repo/timeslot"
	"github.com/govently/govently_backend/internal/repo/user"
	"github.com/govently/govently_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	appointmentMixin := schema.Appointment{}.Mixin()
	appointmentMixinFields0 := appointmentMixin[0].Fields()
	_ = appointmentMixinFields0
	appointmentMixinFields1 := appointmentMixin[1].Fields()
	_ = appointmentMixinFields1
	appointmentFields := schema.Appointment{}.Fields()
	_ = appointmentFields
	// appointmentDescCreatedAt is the schema descriptor for created_at field.
	appointmentDescCreatedAt := appointmentMixinFields1[0].Descriptor()
	// appointment.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointment.DefaultCreatedAt = appointmentDescCreatedAt.Default.(func() time.Time)
	// appointmentDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentDescUpdatedAt := appointmentMixinFields1[1].Descriptor()
	// appointment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointment.DefaultUpdatedAt = appointmentDescUpdatedAt.Default.(func() time.Time)
	// appointment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointment.UpdateDefaultUpdatedAt = appointmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appointmentDescID is the schema descriptor for id field.
	appointmentDescID := appointmentMixinFields0[0].Descriptor()
	// appointment.DefaultID holds the default value on creation for the id field.
	appointment.DefaultID = appointmentDescID.Default.(func() uuid.UUID)
	matchresultMixin := schema.MatchResult{}.Mixin()
	matchresultMixinFields0 := matchresultMixin[0].Fields()
	_ = matchresultMixinFields0
	matchresultMixinFields1 := matchresultMixin[1].Fields()
	_ = matchresultMixinFields1
	matchresultFields := schema.MatchResult{}.Fields()
	_ = matchresultFields
	// matchresultDescCreatedAt is the schema descriptor for created_at field.
	matchresultDescCreatedAt := matchresultMixinFields1[0].Descriptor()
	// matchresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	matchresult.DefaultCreatedAt = matchresultDescCreatedAt.Default.(func() time.Time)
	// matchresultDescID is the schema descriptor for id field.
	matchresultDescID := matchresultMixinFields0[0].Descriptor()
	// matchresult.DefaultID holds the default value on creation for the id field.
	matchresult.DefaultID = matchresultDescID.Default.(func() uuid.UUID)
	mentalassessmentMixin := schema.MentalAssessment{}.Mixin()
	mentalassessmentMixinFields0 := mentalassessmentMixin[0].Fields()
	_ = mentalassessmentMixinFields0
	mentalassessmentMixinFields1 := mentalassessmentMixin[1].Fields()
	_ = mentalassessmentMixinFields1
	mentalassessmentFields := schema.MentalAssessment{}.Fields()
	_ = mentalassessmentFields
	// mentalassessmentDescCreatedAt is the schema descriptor for created_at field.
	mentalassessmentDescCreatedAt := mentalassessmentMixinFields1[0].Descriptor()
	// mentalassessment.DefaultCreatedAt holds the default value on creation for the created_at field.
	mentalassessment.DefaultCreatedAt = mentalassessmentDescCreatedAt.Default.(func() time.Time)
	// mentalassessmentDescUpdatedAt is the schema descriptor for updated_at field.
	mentalassessmentDescUpdatedAt := mentalassessmentMixinFields1[1].Descriptor()
	// mentalassessment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	mentalassessment.DefaultUpdatedAt = mentalassessmentDescUpdatedAt.Default.(func() time.Time)
	// mentalassessment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	mentalassessment.UpdateDefaultUpdatedAt = mentalassessmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// mentalassessmentDescAssessmentID is the schema descriptor for assessment_id field.
	mentalassessmentDescAssessmentID := mentalassessmentFields[1].Descriptor()
	// mentalassessment.AssessmentIDValidator is a validator for the "assessment_id" field. It is called by the builders before save.
	mentalassessment.AssessmentIDValidator = mentalassessmentDescAssessmentID.Validators[0].(func(string) error)
	// mentalassessmentDescRiskLevel is the schema descriptor for risk_level field.
	mentalassessmentDescRiskLevel := mentalassessmentFields[7].Descriptor()
	// mentalassessment.RiskLevelValidator is a validator for the "risk_level" field. It is called by the builders before save.
	mentalassessment.RiskLevelValidator = mentalassessmentDescRiskLevel.Validators[0].(func(string) error)
	// mentalassessmentDescSuicideRisk is the schema descriptor for suicide_risk field.
	mentalassessmentDescSuicideRisk := mentalassessmentFields[8].Descriptor()
	// mentalassessment.DefaultSuicideRisk holds the default value on creation for the suicide_risk field.
	mentalassessment.DefaultSuicideRisk = mentalassessmentDescSuicideRisk.Default.(bool)
	// mentalassessmentDescCompletedAt is the schema descriptor for completed_at field.
	mentalassessmentDescCompletedAt := mentalassessmentFields[10].Descriptor()
	// mentalassessment.DefaultCompletedAt holds the default value on creation for the completed_at field.
	mentalassessment.DefaultCompletedAt = mentalassessmentDescCompletedAt.Default.(func() time.Time)
	// mentalassessmentDescID is the schema descriptor for id field.
	mentalassessmentDescID := mentalassessmentMixinFields0[0].Descriptor()
	// mentalassessment.DefaultID holds the default value on creation for the id field.
	mentalassessment.DefaultID = mentalassessmentDescID.Default.(func() uuid.UUID)
	therapistprofileMixin := schema.TherapistProfile{}.Mixin()
	therapistprofileMixinFields0 := therapistprofileMixin[0].Fields()
	_ = therapistprofileMixinFields0
	therapistprofileMixinFields1 := therapistprofileMixin[1].Fields()
	_ = therapistprofileMixinFields1
	therapistprofileFields := schema.TherapistProfile{}.Fields()
	_ = therapistprofileFields
	// therapistprofileDescCreatedAt is the schema descriptor for created_at field.
	therapistprofileDescCreatedAt := therapistprofileMixinFields1[0].Descriptor()
	// therapistprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	therapistprofile.DefaultCreatedAt = therapistprofileDescCreatedAt.Default.(func() time.Time)
	// therapistprofileDescUpdatedAt is the schema descriptor for updated_at field.
	therapistprofileDescUpdatedAt := therapistprofileMixinFields1[1].Descriptor()
	// therapistprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	therapistprofile.DefaultUpdatedAt = therapistprofileDescUpdatedAt.Default.(func() time.Time)
	// therapistprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	therapistprofile.UpdateDefaultUpdatedAt = therapistprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// therapistprofileDescFullName is the schema descriptor for full_name field.
	therapistprofileDescFullName := therapistprofileFields[1].Descriptor()
	// therapistprofile.FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	therapistprofile.FullNameValidator = therapistprofileDescFullName.Validators[0].(func(string) error)
	// therapistprofileDescLicenseType is the schema descriptor for license_type field.
	therapistprofileDescLicenseType := therapistprofileFields[3].Descriptor()
	// therapistprofile.LicenseTypeValidator is a validator for the "license_type" field. It is called by the builders before save.
	therapistprofile.LicenseTypeValidator = therapistprofileDescLicenseType.Validators[0].(func(string) error)
	// therapistprofileDescYearsExperience is the schema descriptor for years_experience field.
	therapistprofileDescYearsExperience := therapistprofileFields[4].Descriptor()
	// therapistprofile.DefaultYearsExperience holds the default value on creation for the years_experience field.
	therapistprofile.DefaultYearsExperience = therapistprofileDescYearsExperience.Default.(int)
	// therapistprofile.YearsExperienceValidator is a validator for the "years_experience" field. It is called by the builders before save.
	therapistprofile.YearsExperienceValidator = therapistprofileDescYearsExperience.Validators[0].(func(int) error)
	// therapistprofileDescYearsPrivatePractice is the schema descriptor for years_private_practice field.
	therapistprofileDescYearsPrivatePractice := therapistprofileFields[5].Descriptor()
	// therapistprofile.DefaultYearsPrivatePractice holds the default value on creation for the years_private_practice field.
	therapistprofile.DefaultYearsPrivatePractice = therapistprofileDescYearsPrivatePractice.Default.(int)
	// therapistprofile.YearsPrivatePracticeValidator is a validator for the "years_private_practice" field. It is called by the builders before save.
	therapistprofile.YearsPrivatePracticeValidator = therapistprofileDescYearsPrivatePractice.Validators[0].(func(int) error)
	// therapistprofileDescCrisisInterventionTrained is the schema descriptor for crisis_intervention_trained field.
	therapistprofileDescCrisisInterventionTrained := therapistprofileFields[10].Descriptor()
	// therapistprofile.DefaultCrisisInterventionTrained holds the default value on creation for the crisis_intervention_trained field.
	therapistprofile.DefaultCrisisInterventionTrained = therapistprofileDescCrisisInterventionTrained.Default.(bool)
	// therapistprofileDescTraumaInformedCertified is the schema descriptor for trauma_informed_certified field.
	therapistprofileDescTraumaInformedCertified := therapistprofileFields[11].Descriptor()
	// therapistprofile.DefaultTraumaInformedCertified holds the default value on creation for the trauma_informed_certified field.
	therapistprofile.DefaultTraumaInformedCertified = therapistprofileDescTraumaInformedCertified.Default.(bool)
	// therapistprofileDescRateIndividual is the schema descriptor for rate_individual field.
	therapistprofileDescRateIndividual := therapistprofileFields[15].Descriptor()
	// therapistprofile.DefaultRateIndividual holds the default value on creation for the rate_individual field.
	therapistprofile.DefaultRateIndividual = therapistprofileDescRateIndividual.Default.(float64)
	// therapistprofileDescRateCouples is the schema descriptor for rate_couples field.
	therapistprofileDescRateCouples := therapistprofileFields[16].Descriptor()
	// therapistprofile.DefaultRateCouples holds the default value on creation for the rate_couples field.
	therapistprofile.DefaultRateCouples = therapistprofileDescRateCouples.Default.(float64)
	// therapistprofileDescRateFamily is the schema descriptor for rate_family field.
	therapistprofileDescRateFamily := therapistprofileFields[17].Descriptor()
	// therapistprofile.DefaultRateFamily holds the default value on creation for the rate_family field.
	therapistprofile.DefaultRateFamily = therapistprofileDescRateFamily.Default.(float64)
	// therapistprofileDescRateGroup is the schema descriptor for rate_group field.
	therapistprofileDescRateGroup := therapistprofileFields[18].Descriptor()
	// therapistprofile.DefaultRateGroup holds the default value on creation for the rate_group field.
	therapistprofile.DefaultRateGroup = therapistprofileDescRateGroup.Default.(float64)
	// therapistprofileDescSlidingScaleAvailable is the schema descriptor for sliding_scale_available field.
	therapistprofileDescSlidingScaleAvailable := therapistprofileFields[19].Descriptor()
	// therapistprofile.DefaultSlidingScaleAvailable holds the default value on creation for the sliding_scale_available field.
	therapistprofile.DefaultSlidingScaleAvailable = therapistprofileDescSlidingScaleAvailable.Default.(bool)
	// therapistprofileDescLocation is the schema descriptor for location field.
	therapistprofileDescLocation := therapistprofileFields[21].Descriptor()
	// therapistprofile.LocationValidator is a validator for the "location" field. It is called by the builders before save.
	therapistprofile.LocationValidator = therapistprofileDescLocation.Validators[0].(func(string) error)
	// therapistprofileDescEmergencyAvailability is the schema descriptor for emergency_availability field.
	therapistprofileDescEmergencyAvailability := therapistprofileFields[23].Descriptor()
	// therapistprofile.DefaultEmergencyAvailability holds the default value on creation for the emergency_availability field.
	therapistprofile.DefaultEmergencyAvailability = therapistprofileDescEmergencyAvailability.Default.(bool)
	// therapistprofileDescID is the schema descriptor for id field.
	therapistprofileDescID := therapistprofileMixinFields0[0].Descriptor()
	// therapistprofile.DefaultID holds the default value on creation for the id field.
	therapistprofile.DefaultID = therapistprofileDescID.Default.(func() uuid.UUID)
	timeslotMixin := schema.TimeSlot{}.Mixin()
	timeslotMixinFields0 := timeslotMixin[0].Fields()
	_ = timeslotMixinFields0
	timeslotMixinFields1 := timeslotMixin[1].Fields()
	_ = timeslotMixinFields1
	timeslotFields := schema.TimeSlot{}.Fields()
	_ = timeslotFields
	// timeslotDescCreatedAt is the schema descriptor for created_at field.
	timeslotDescCreatedAt := timeslotMixinFields1[0].Descriptor()
	// timeslot.DefaultCreatedAt holds the default value on creation for the created_at field.
	timeslot.DefaultCreatedAt = timeslotDescCreatedAt.Default.(func() time.Time)
	// timeslotDescUpdatedAt is the schema descriptor for updated_at field.
	timeslotDescUpdatedAt := timeslotMixinFields1[1].Descriptor()
	// timeslot.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	timeslot.DefaultUpdatedAt = timeslotDescUpdatedAt.Default.(func() time.Time)
	// timeslot.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	timeslot.UpdateDefaultUpdatedAt = timeslotDescUpdatedAt.UpdateDefault.(func() time.Time)
	// timeslotDescDurationMin is the schema descriptor for duration_min field.
	timeslotDescDurationMin := timeslotFields[3].Descriptor()
	// timeslot.DurationMinValidator is a validator for the "duration_min" field. It is called by the builders before save.
	timeslot.DurationMinValidator = timeslotDescDurationMin.Validators[0].(func(int) error)
	// timeslotDescID is the schema descriptor for id field.
	timeslotDescID := timeslotMixinFields0[0].Descriptor()
	// timeslot.DefaultID holds the default value on creation for the id field.
	timeslot.DefaultID = timeslotDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescFirstName is the schema descriptor for first_name field.
	userDescFirstName := userFields[0].Descriptor()
	// user.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	user.FirstNameValidator = userDescFirstName.Validators[0].(func(string) error)
	// userDescLastName is the schema descriptor for last_name field.
	userDescLastName := userFields[1].Descriptor()
	// user.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	user.LastNameValidator = userDescLastName.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[2].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescEmailVerified is the schema descriptor for email_verified field.
	userDescEmailVerified := userFields[5].Descriptor()
	// user.DefaultEmailVerified holds the default value on creation for the email_verified field.
	user.DefaultEmailVerified = userDescEmailVerified.Default.(bool)
	// userDescMetadata is the schema descriptor for metadata field.
	userDescMetadata := userFields[7].Descriptor()
	// user.DefaultMetadata holds the default value on creation for the metadata field.
	user.DefaultMetadata = userDescMetadata.Default.(map[string]interface{})
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
