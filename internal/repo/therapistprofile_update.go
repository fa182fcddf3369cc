// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/govently/govently_backend/internal/repo/predicate"
	"github.com/govently/govently_backend/internal/repo/therapistprofile"
)

// TherapistProfileUpdate is the builder for updating TherapistProfile entities.
type TherapistProfileUpdate struct {
	config
	hooks    []Hook
	mutation *TherapistProfileMutation
}

// Where appends a list predicates to the TherapistProfileUpdate builder.
func (_u *TherapistProfileUpdate) Where(ps ...predicate.TherapistProfile) *TherapistProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TherapistProfileUpdate) SetUpdatedAt(v time.Time) *TherapistProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *TherapistProfileUpdate) SetUserID(v uuid.UUID) *TherapistProfileUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TherapistProfileUpdate) SetNillableUserID(v *uuid.UUID) *TherapistProfileUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *TherapistProfileUpdate) SetFullName(v string) *TherapistProfileUpdate {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *TherapistProfileUpdate) SetNillableFullName(v *string) *TherapistProfileUpdate {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetGender sets the "gender" field.
func (_u *TherapistProfileUpdate) SetGender(v therapistprofile.Gender) *TherapistProfileUpdate {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *TherapistProfileUpdate) SetNillableGender(v *therapistprofile.Gender) *TherapistProfileUpdate {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// SetLicenseType sets the "license_type" field.
func (_u *TherapistProfileUpdate) SetLicenseType(v string) *TherapistProfileUpdate {
	_u.mutation.SetLicenseType(v)
	return _u
}

// SetNillableLicenseType sets the "license_type" field if the given value is not nil.
func (_u *TherapistProfileUpdate) SetNillableLicenseType(v *string) *TherapistProfileUpdate {
	if v != nil {
		_u.SetLicenseType(*v)
	}
	return _u
}

// SetYearsExperience sets the "years_experience" field.
func (_u *TherapistProfileUpdate) SetYearsExperience(v int) *TherapistProfileUpdate {
	_u.mutation.ResetYearsExperience()
	_u.mutation.SetYearsExperience(v)
	return _u
}

// SetNillableYearsExperience sets the "years_experience" field if the given value is not nil.
func (_u *TherapistProfileUpdate) SetNillableYearsExperience(v *int) *TherapistProfileUpdate {
	if v != nil {
		_u.SetYearsExperience(*v)
	}
	return _u
}

// AddYearsExperience adds value to the "years_experience" field.
func (_u *TherapistProfileUpdate) AddYearsExperience(v int) *TherapistProfileUpdate {
	_u.mutation.AddYearsExperience(v)
	return _u
}

// SetYearsPrivatePractice sets the "years_private_practice" field.
func (_u *TherapistProfileUpdate) SetYearsPrivatePractice(v int) *TherapistProfileUpdate {
	_u.mutation.ResetYearsPrivatePractice()
	_u.mutation.SetYearsPrivatePractice(v)
	return _u
}

// SetNillableYearsPrivatePractice sets the "years_private_practice" field if the given value is not nil.
func (_u *TherapistProfileUpdate) SetNillableYearsPrivatePractice(v *int) *TherapistProfileUpdate {
	if v != nil {
		_u.SetYearsPrivatePractice(*v)
	}
	return _u
}

// AddYearsPrivatePractice adds value to the "years_private_practice" field.
func (_u *TherapistProfileUpdate) AddYearsPrivatePractice(v int) *TherapistProfileUpdate {
	_u.mutation.AddYearsPrivatePractice(v)
	return _u
}

// SetSpecializations sets the "specializations" field.
func (_u *TherapistProfileUpdate) SetSpecializations(v []string) *TherapistProfileUpdate {
	_u.mutation.SetSpecializations(v)
	return _u
}

// AppendSpecializations appends value to the "specializations" field.
func (_u *TherapistProfileUpdate) AppendSpecializations(v []string) *TherapistProfileUpdate {
	_u.mutation.AppendSpecializations(v)
	return _u
}

// ClearSpecializations clears the value of the "specializations" field.
func (_u *TherapistProfileUpdate) ClearSpecializations() *TherapistProfileUpdate {
	_u.mutation.ClearSpecializations()
	return _u
}

// SetTherapyApproaches sets the "therapy_approaches" field.
func (_u *TherapistProfileUpdate) SetTherapyApproaches(v []string) *TherapistProfileUpdate {
	_u.mutation.SetTherapyApproaches(v)
	return _u
}

// AppendTherapyApproaches appends value to the "therapy_approaches" field.
func (_u *TherapistProfileUpdate) AppendTherapyApproaches(v []string) *TherapistProfileUpdate {
	_u.mutation.AppendTherapyApproaches(v)
	return _u
}

// ClearTherapyApproaches clears the value of the "therapy_approaches" field.
func (_u *TherapistProfileUpdate) ClearTherapyApproaches() *TherapistProfileUpdate {
	_u.mutation.ClearTherapyApproaches()
	return _u
}

// SetClientDemographics sets the "client_demographics" field.
func (_u *TherapistProfileUpdate) SetClientDemographics(v []string) *TherapistProfileUpdate {
	_u.mutation.SetClientDemographics(v)
	return _u
}

// AppendClientDemographics appends value to the "client_demographics" field.
func (_u *TherapistProfileUpdate) AppendClientDemographics(v []string) *TherapistProfileUpdate {
	_u.mutation.AppendClientDemographics(v)
	return _u
}

// ClearClientDemographics clears the value of the "client_demographics" field.
func (_u *TherapistProfileUpdate) ClearClientDemographics() *TherapistProfileUpdate {
	_u.mutation.ClearClientDemographics()
	return _u
}

// SetSeverityLevels sets the "severity_levels" field.
func (_u *TherapistProfileUpdate) SetSeverityLevels(v []string) *TherapistProfileUpdate {
	_u.mutation.SetSeverityLevels(v)
	return _u
}

// AppendSeverityLevels appends value to the "severity_levels" field.
func (_u *TherapistProfileUpdate) AppendSeverityLevels(v []string) *TherapistProfileUpdate {
	_u.mutation.AppendSeverityLevels(v)
	return _u
}

// ClearSeverityLevels clears the value of the "severity_levels" field.
func (_u *TherapistProfileUpdate) ClearSeverityLevels() *TherapistProfileUpdate {
	_u.mutation.ClearSeverityLevels()
	return _u
}

// SetCrisisInterventionTrained sets the "crisis_intervention_trained" field.
func (_u *TherapistProfileUpdate) SetCrisisInterventionTrained(v bool) *TherapistProfileUpdate {
	_u.mutation.SetCrisisInterventionTrained(v)
	return _u
}

// SetNillableCrisisInterventionTrained sets the "crisis_intervention_trained" field if the given value is not nil.
func (_u *TherapistProfileUpdate) SetNillableCrisisInterventionTrained(v *bool) *TherapistProfileUpdate {
	if v != nil {
		_u.SetCrisisInterventionTrained(*v)
	}
	return _u
}

// SetTraumaInformedCertified sets the "trauma_informed_certified" field.
func (_u *TherapistProfileUpdate) SetTraumaInformedCertified(v bool) *TherapistProfileUpdate {
	_u.mutation.SetTraumaInformedCertified(v)
	return _u
}

// SetNillableTraumaInformedCertified sets the "trauma_informed_certified" field if the given value is not nil.
func (_u *TherapistProfileUpdate) SetNillableTraumaInformedCertified(v *bool) *TherapistProfileUpdate {
	if v != nil {
		_u.SetTraumaInformedCertified(*v)
	}
	return _u
}

// SetLanguages sets the "languages" field.
func (_u *TherapistProfileUpdate) SetLanguages(v []string) *TherapistProfileUpdate {
	_u.mutation.SetLanguages(v)
	return _u
}

// AppendLanguages appends value to the "languages" field.
func (_u *TherapistProfileUpdate) AppendLanguages(v []string) *TherapistProfileUpdate {
	_u.mutation.AppendLanguages(v)
	return _u
}

// ClearLanguages clears the value of the "languages" field.
func (_u *TherapistProfileUpdate) ClearLanguages() *TherapistProfileUpdate {
	_u.mutation.ClearLanguages()
	return _u
}

// SetAvailabilitySlots sets the "availability_slots" field.
func (_u *TherapistProfileUpdate) SetAvailabilitySlots(v []map[string]string) *TherapistProfileUpdate {
	_u.mutation.SetAvailabilitySlots(v)
	return _u
}

// AppendAvailabilitySlots appends value to the "availability_slots" field.
func (_u *TherapistProfileUpdate) AppendAvailabilitySlots(v []map[string]string) *TherapistProfileUpdate {
	_u.mutation.AppendAvailabilitySlots(v)
	return _u
}

// ClearAvailabilitySlots clears the value of the "availability_slots" field.
func (_u *TherapistProfileUpdate) ClearAvailabilitySlots() *TherapistProfileUpdate {
	_u.mutation.ClearAvailabilitySlots()
	return _u
}

// SetSessionDurations sets the "session_durations" field.
func (_u *TherapistProfileUpdate) SetSessionDurations(v []int) *TherapistProfileUpdate {
	_u.mutation.SetSessionDurations(v)
	return _u
}

// AppendSessionDurations appends value to the "session_durations" field.
func (_u *TherapistProfileUpdate) AppendSessionDurations(v []int) *TherapistProfileUpdate {
	_u.mutation.AppendSessionDurations(v)
	return _u
}

// ClearSessionDurations clears the value of the "session_durations" field.
func (_u *TherapistProfileUpdate) ClearSessionDurations() *TherapistProfileUpdate {
	_u.mutation.ClearSessionDurations()
	return _u
}

// SetRateIndividual sets the "rate_individual" field.
func (_u *TherapistProfileUpdate) SetRateIndividual(v float64) *TherapistProfileUpdate {
	_u.mutation.ResetRateIndividual()
	_u.mutation.SetRateIndividual(v)
	return _u
}

// SetNillableRateIndividual sets the "rate_individual" field if the given value is not nil.
func (_u *TherapistProfileUpdate) SetNillableRateIndividual(v *float64) *TherapistProfileUpdate {
	if v != nil {
		_u.SetRateIndividual(*v)
	}
	return _u
}

// AddRateIndividual adds value to the "rate_individual" field.
func (_u *TherapistProfileUpdate) AddRateIndividual(v float64) *TherapistProfileUpdate {
	_u.mutation.AddRateIndividual(v)
	return _u
}

// SetRateCouples sets the "rate_couples" field.
func (_u *TherapistProfileUpdate) SetRateCouples(v float64) *TherapistProfileUpdate {
	_u.mutation.ResetRateCouples()
	_u.mutation.SetRateCouples(v)
	return _u
}

// SetNillableRateCouples sets the "rate_couples" field if the given value is not nil.
func (_u *TherapistProfileUpdate) SetNillableRateCouples(v *float64) *TherapistProfileUpdate {
	if v != nil {
		_u.SetRateCouples(*v)
	}
	return _u
}

// AddRateCouples adds value to the "rate_couples" field.
func (_u *TherapistProfileUpdate) AddRateCouples(v float64) *TherapistProfileUpdate {
	_u.mutation.AddRateCouples(v)
	return _u
}

// SetRateFamily sets the "rate_family" field.
func (_u *TherapistProfileUpdate) SetRateFamily(v float64) *TherapistProfileUpdate {
	_u.mutation.ResetRateFamily()
	_u.mutation.SetRateFamily(v)
	return _u
}

// SetNillableRateFamily sets the "rate_family" field if the given value is not nil.
func (_u *TherapistProfileUpdate) SetNillableRateFamily(v *float64) *TherapistProfileUpdate {
	if v != nil {
		_u.SetRateFamily(*v)
	}
	return _u
}

// AddRateFamily adds value to the "rate_family" field.
func (_u *TherapistProfileUpdate) AddRateFamily(v float64) *TherapistProfileUpdate {
	_u.mutation.AddRateFamily(v)
	return _u
}

// SetRateGroup sets the "rate_group" field.
func (_u *TherapistProfileUpdate) SetRateGroup(v float64) *TherapistProfileUpdate {
	_u.mutation.ResetRateGroup()
	_u.mutation.SetRateGroup(v)
	return _u
}

// SetNillableRateGroup sets the "rate_group" field if the given value is not nil.
func (_u *TherapistProfileUpdate) SetNillableRateGroup(v *float64) *TherapistProfileUpdate {
	if v != nil {
		_u.SetRateGroup(*v)
	}
	return _u
}

// AddRateGroup adds value to the "rate_group" field.
func (_u *TherapistProfileUpdate) AddRateGroup(v float64) *TherapistProfileUpdate {
	_u.mutation.AddRateGroup(v)
	return _u
}

// SetSlidingScaleAvailable sets the "sliding_scale_available" field.
func (_u *TherapistProfileUpdate) SetSlidingScaleAvailable(v bool) *TherapistProfileUpdate {
	_u.mutation.SetSlidingScaleAvailable(v)
	return _u
}

// SetNillableSlidingScaleAvailable sets the "sliding_scale_available" field if the given value is not nil.
func (_u *TherapistProfileUpdate) SetNillableSlidingScaleAvailable(v *bool) *TherapistProfileUpdate {
	if v != nil {
		_u.SetSlidingScaleAvailable(*v)
	}
	return _u
}

// SetInsuranceAccepted sets the "insurance_accepted" field.
func (_u *TherapistProfileUpdate) SetInsuranceAccepted(v []string) *TherapistProfileUpdate {
	_u.mutation.SetInsuranceAccepted(v)
	return _u
}

// AppendInsuranceAccepted appends value to the "insurance_accepted" field.
func (_u *TherapistProfileUpdate) AppendInsuranceAccepted(v []string) *TherapistProfileUpdate {
	_u.mutation.AppendInsuranceAccepted(v)
	return _u
}

// ClearInsuranceAccepted clears the value of the "insurance_accepted" field.
func (_u *TherapistProfileUpdate) ClearInsuranceAccepted() *TherapistProfileUpdate {
	_u.mutation.ClearInsuranceAccepted()
	return _u
}

// SetLocation sets the "location" field.
func (_u *TherapistProfileUpdate) SetLocation(v string) *TherapistProfileUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *TherapistProfileUpdate) SetNillableLocation(v *string) *TherapistProfileUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *TherapistProfileUpdate) ClearLocation() *TherapistProfileUpdate {
	_u.mutation.ClearLocation()
	return _u
}

// SetServicesOffered sets the "services_offered" field.
func (_u *TherapistProfileUpdate) SetServicesOffered(v []string) *TherapistProfileUpdate {
	_u.mutation.SetServicesOffered(v)
	return _u
}

// AppendServicesOffered appends value to the "services_offered" field.
func (_u *TherapistProfileUpdate) AppendServicesOffered(v []string) *TherapistProfileUpdate {
	_u.mutation.AppendServicesOffered(v)
	return _u
}

// ClearServicesOffered clears the value of the "services_offered" field.
func (_u *TherapistProfileUpdate) ClearServicesOffered() *TherapistProfileUpdate {
	_u.mutation.ClearServicesOffered()
	return _u
}

// SetEmergencyAvailability sets the "emergency_availability" field.
func (_u *TherapistProfileUpdate) SetEmergencyAvailability(v bool) *TherapistProfileUpdate {
	_u.mutation.SetEmergencyAvailability(v)
	return _u
}

// SetNillableEmergencyAvailability sets the "emergency_availability" field if the given value is not nil.
func (_u *TherapistProfileUpdate) SetNillableEmergencyAvailability(v *bool) *TherapistProfileUpdate {
	if v != nil {
		_u.SetEmergencyAvailability(*v)
	}
	return _u
}

// SetBio sets the "bio" field.
func (_u *TherapistProfileUpdate) SetBio(v string) *TherapistProfileUpdate {
	_u.mutation.SetBio(v)
	return _u
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (_u *TherapistProfileUpdate) SetNillableBio(v *string) *TherapistProfileUpdate {
	if v != nil {
		_u.SetBio(*v)
	}
	return _u
}

// ClearBio clears the value of the "bio" field.
func (_u *TherapistProfileUpdate) ClearBio() *TherapistProfileUpdate {
	_u.mutation.ClearBio()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TherapistProfileUpdate) SetStatus(v therapistprofile.Status) *TherapistProfileUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TherapistProfileUpdate) SetNillableStatus(v *therapistprofile.Status) *TherapistProfileUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the TherapistProfileMutation object of the builder.
func (_u *TherapistProfileUpdate) Mutation() *TherapistProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TherapistProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TherapistProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TherapistProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TherapistProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TherapistProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := therapistprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TherapistProfileUpdate) check() error {
	if v, ok := _u.mutation.FullName(); ok {
		if err := therapistprofile.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`repo: validator failed for field "TherapistProfile.full_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Gender(); ok {
		if err := therapistprofile.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`repo: validator failed for field "TherapistProfile.gender": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LicenseType(); ok {
		if err := therapistprofile.LicenseTypeValidator(v); err != nil {
			return &ValidationError{Name: "license_type", err: fmt.Errorf(`repo: validator failed for field "TherapistProfile.license_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.YearsExperience(); ok {
		if err := therapistprofile.YearsExperienceValidator(v); err != nil {
			return &ValidationError{Name: "years_experience", err: fmt.Errorf(`repo: validator failed for field "TherapistProfile.years_experience": %w`, err)}
		}
	}
	if v, ok := _u.mutation.YearsPrivatePractice(); ok {
		if err := therapistprofile.YearsPrivatePracticeValidator(v); err != nil {
			return &ValidationError{Name: "years_private_practice", err: fmt.Errorf(`repo: validator failed for field "TherapistProfile.years_private_practice": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Location(); ok {
		if err := therapistprofile.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`repo: validator failed for field "TherapistProfile.location": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := therapistprofile.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "TherapistProfile.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TherapistProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(therapistprofile.Table, therapistprofile.Columns, sqlgraph.NewFieldSpec(therapistprofile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(therapistprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(therapistprofile.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(therapistprofile.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(therapistprofile.FieldGender, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LicenseType(); ok {
		_spec.SetField(therapistprofile.FieldLicenseType, field.TypeString, value)
	}
	if value, ok := _u.mutation.YearsExperience(); ok {
		_spec.SetField(therapistprofile.FieldYearsExperience, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYearsExperience(); ok {
		_spec.AddField(therapistprofile.FieldYearsExperience, field.TypeInt, value)
	}
	if value, ok := _u.mutation.YearsPrivatePractice(); ok {
		_spec.SetField(therapistprofile.FieldYearsPrivatePractice, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYearsPrivatePractice(); ok {
		_spec.AddField(therapistprofile.FieldYearsPrivatePractice, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Specializations(); ok {
		_spec.SetField(therapistprofile.FieldSpecializations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSpecializations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, therapistprofile.FieldSpecializations, value)
		})
	}
	if _u.mutation.SpecializationsCleared() {
		_spec.ClearField(therapistprofile.FieldSpecializations, field.TypeJSON)
	}
	if value, ok := _u.mutation.TherapyApproaches(); ok {
		_spec.SetField(therapistprofile.FieldTherapyApproaches, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTherapyApproaches(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, therapistprofile.FieldTherapyApproaches, value)
		})
	}
	if _u.mutation.TherapyApproachesCleared() {
		_spec.ClearField(therapistprofile.FieldTherapyApproaches, field.TypeJSON)
	}
	if value, ok := _u.mutation.ClientDemographics(); ok {
		_spec.SetField(therapistprofile.FieldClientDemographics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedClientDemographics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, therapistprofile.FieldClientDemographics, value)
		})
	}
	if _u.mutation.ClientDemographicsCleared() {
		_spec.ClearField(therapistprofile.FieldClientDemographics, field.TypeJSON)
	}
	if value, ok := _u.mutation.SeverityLevels(); ok {
		_spec.SetField(therapistprofile.FieldSeverityLevels, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSeverityLevels(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, therapistprofile.FieldSeverityLevels, value)
		})
	}
	if _u.mutation.SeverityLevelsCleared() {
		_spec.ClearField(therapistprofile.FieldSeverityLevels, field.TypeJSON)
	}
	if value, ok := _u.mutation.CrisisInterventionTrained(); ok {
		_spec.SetField(therapistprofile.FieldCrisisInterventionTrained, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TraumaInformedCertified(); ok {
		_spec.SetField(therapistprofile.FieldTraumaInformedCertified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Languages(); ok {
		_spec.SetField(therapistprofile.FieldLanguages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLanguages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, therapistprofile.FieldLanguages, value)
		})
	}
	if _u.mutation.LanguagesCleared() {
		_spec.ClearField(therapistprofile.FieldLanguages, field.TypeJSON)
	}
	if value, ok := _u.mutation.AvailabilitySlots(); ok {
		_spec.SetField(therapistprofile.FieldAvailabilitySlots, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAvailabilitySlots(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, therapistprofile.FieldAvailabilitySlots, value)
		})
	}
	if _u.mutation.AvailabilitySlotsCleared() {
		_spec.ClearField(therapistprofile.FieldAvailabilitySlots, field.TypeJSON)
	}
	if value, ok := _u.mutation.SessionDurations(); ok {
		_spec.SetField(therapistprofile.FieldSessionDurations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSessionDurations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, therapistprofile.FieldSessionDurations, value)
		})
	}
	if _u.mutation.SessionDurationsCleared() {
		_spec.ClearField(therapistprofile.FieldSessionDurations, field.TypeJSON)
	}
	if value, ok := _u.mutation.RateIndividual(); ok {
		_spec.SetField(therapistprofile.FieldRateIndividual, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRateIndividual(); ok {
		_spec.AddField(therapistprofile.FieldRateIndividual, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RateCouples(); ok {
		_spec.SetField(therapistprofile.FieldRateCouples, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRateCouples(); ok {
		_spec.AddField(therapistprofile.FieldRateCouples, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RateFamily(); ok {
		_spec.SetField(therapistprofile.FieldRateFamily, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRateFamily(); ok {
		_spec.AddField(therapistprofile.FieldRateFamily, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RateGroup(); ok {
		_spec.SetField(therapistprofile.FieldRateGroup, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRateGroup(); ok {
		_spec.AddField(therapistprofile.FieldRateGroup, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SlidingScaleAvailable(); ok {
		_spec.SetField(therapistprofile.FieldSlidingScaleAvailable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.InsuranceAccepted(); ok {
		_spec.SetField(therapistprofile.FieldInsuranceAccepted, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInsuranceAccepted(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, therapistprofile.FieldInsuranceAccepted, value)
		})
	}
	if _u.mutation.InsuranceAcceptedCleared() {
		_spec.ClearField(therapistprofile.FieldInsuranceAccepted, field.TypeJSON)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(therapistprofile.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(therapistprofile.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.ServicesOffered(); ok {
		_spec.SetField(therapistprofile.FieldServicesOffered, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedServicesOffered(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, therapistprofile.FieldServicesOffered, value)
		})
	}
	if _u.mutation.ServicesOfferedCleared() {
		_spec.ClearField(therapistprofile.FieldServicesOffered, field.TypeJSON)
	}
	if value, ok := _u.mutation.EmergencyAvailability(); ok {
		_spec.SetField(therapistprofile.FieldEmergencyAvailability, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Bio(); ok {
		_spec.SetField(therapistprofile.FieldBio, field.TypeString, value)
	}
	if _u.mutation.BioCleared() {
		_spec.ClearField(therapistprofile.FieldBio, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(therapistprofile.FieldStatus, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{therapistprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TherapistProfileUpdateOne is the builder for updating a single TherapistProfile entity.
type TherapistProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TherapistProfileMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TherapistProfileUpdateOne) SetUpdatedAt(v time.Time) *TherapistProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *TherapistProfileUpdateOne) SetUserID(v uuid.UUID) *TherapistProfileUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TherapistProfileUpdateOne) SetNillableUserID(v *uuid.UUID) *TherapistProfileUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *TherapistProfileUpdateOne) SetFullName(v string) *TherapistProfileUpdateOne {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *TherapistProfileUpdateOne) SetNillableFullName(v *string) *TherapistProfileUpdateOne {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetGender sets the "gender" field.
func (_u *TherapistProfileUpdateOne) SetGender(v therapistprofile.Gender) *TherapistProfileUpdateOne {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *TherapistProfileUpdateOne) SetNillableGender(v *therapistprofile.Gender) *TherapistProfileUpdateOne {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// SetLicenseType sets the "license_type" field.
func (_u *TherapistProfileUpdateOne) SetLicenseType(v string) *TherapistProfileUpdateOne {
	_u.mutation.SetLicenseType(v)
	return _u
}

// SetNillableLicenseType sets the "license_type" field if the given value is not nil.
func (_u *TherapistProfileUpdateOne) SetNillableLicenseType(v *string) *TherapistProfileUpdateOne {
	if v != nil {
		_u.SetLicenseType(*v)
	}
	return _u
}

// SetYearsExperience sets the "years_experience" field.
func (_u *TherapistProfileUpdateOne) SetYearsExperience(v int) *TherapistProfileUpdateOne {
	_u.mutation.ResetYearsExperience()
	_u.mutation.SetYearsExperience(v)
	return _u
}

// SetNillableYearsExperience sets the "years_experience" field if the given value is not nil.
func (_u *TherapistProfileUpdateOne) SetNillableYearsExperience(v *int) *TherapistProfileUpdateOne {
	if v != nil {
		_u.SetYearsExperience(*v)
	}
	return _u
}

// AddYearsExperience adds value to the "years_experience" field.
func (_u *TherapistProfileUpdateOne) AddYearsExperience(v int) *TherapistProfileUpdateOne {
	_u.mutation.AddYearsExperience(v)
	return _u
}

// SetYearsPrivatePractice sets the "years_private_practice" field.
func (_u *TherapistProfileUpdateOne) SetYearsPrivatePractice(v int) *TherapistProfileUpdateOne {
	_u.mutation.ResetYearsPrivatePractice()
	_u.mutation.SetYearsPrivatePractice(v)
	return _u
}

// SetNillableYearsPrivatePractice sets the "years_private_practice" field if the given value is not nil.
func (_u *TherapistProfileUpdateOne) SetNillableYearsPrivatePractice(v *int) *TherapistProfileUpdateOne {
	if v != nil {
		_u.SetYearsPrivatePractice(*v)
	}
	return _u
}

// AddYearsPrivatePractice adds value to the "years_private_practice" field.
func (_u *TherapistProfileUpdateOne) AddYearsPrivatePractice(v int) *TherapistProfileUpdateOne {
	_u.mutation.AddYearsPrivatePractice(v)
	return _u
}

// SetSpecializations sets the "specializations" field.
func (_u *TherapistProfileUpdateOne) SetSpecializations(v []string) *TherapistProfileUpdateOne {
	_u.mutation.SetSpecializations(v)
	return _u
}

// AppendSpecializations appends value to the "specializations" field.
func (_u *TherapistProfileUpdateOne) AppendSpecializations(v []string) *TherapistProfileUpdateOne {
	_u.mutation.AppendSpecializations(v)
	return _u
}

// ClearSpecializations clears the value of the "specializations" field.
func (_u *TherapistProfileUpdateOne) ClearSpecializations() *TherapistProfileUpdateOne {
	_u.mutation.ClearSpecializations()
	return _u
}

// SetTherapyApproaches sets the "therapy_approaches" field.
func (_u *TherapistProfileUpdateOne) SetTherapyApproaches(v []string) *TherapistProfileUpdateOne {
	_u.mutation.SetTherapyApproaches(v)
	return _u
}

// AppendTherapyApproaches appends value to the "therapy_approaches" field.
func (_u *TherapistProfileUpdateOne) AppendTherapyApproaches(v []string) *TherapistProfileUpdateOne {
	_u.mutation.AppendTherapyApproaches(v)
	return _u
}

// ClearTherapyApproaches clears the value of the "therapy_approaches" field.
func (_u *TherapistProfileUpdateOne) ClearTherapyApproaches() *TherapistProfileUpdateOne {
	_u.mutation.ClearTherapyApproaches()
	return _u
}

// SetClientDemographics sets the "client_demographics" field.
func (_u *TherapistProfileUpdateOne) SetClientDemographics(v []string) *TherapistProfileUpdateOne {
	_u.mutation.SetClientDemographics(v)
	return _u
}

// AppendClientDemographics appends value to the "client_demographics" field.
func (_u *TherapistProfileUpdateOne) AppendClientDemographics(v []string) *TherapistProfileUpdateOne {
	_u.mutation.AppendClientDemographics(v)
	return _u
}

// ClearClientDemographics clears the value of the "client_demographics" field.
func (_u *TherapistProfileUpdateOne) ClearClientDemographics() *TherapistProfileUpdateOne {
	_u.mutation.ClearClientDemographics()
	return _u
}

// SetSeverityLevels sets the "severity_levels" field.
func (_u *TherapistProfileUpdateOne) SetSeverityLevels(v []string) *TherapistProfileUpdateOne {
	_u.mutation.SetSeverityLevels(v)
	return _u
}

// AppendSeverityLevels appends value to the "severity_levels" field.
func (_u *TherapistProfileUpdateOne) AppendSeverityLevels(v []string) *TherapistProfileUpdateOne {
	_u.mutation.AppendSeverityLevels(v)
	return _u
}

// ClearSeverityLevels clears the value of the "severity_levels" field.
func (_u *TherapistProfileUpdateOne) ClearSeverityLevels() *TherapistProfileUpdateOne {
	_u.mutation.ClearSeverityLevels()
	return _u
}

// SetCrisisInterventionTrained sets the "crisis_intervention_trained" field.
func (_u *TherapistProfileUpdateOne) SetCrisisInterventionTrained(v bool) *TherapistProfileUpdateOne {
	_u.mutation.SetCrisisInterventionTrained(v)
	return _u
}

// SetNillableCrisisInterventionTrained sets the "crisis_intervention_trained" field if the given value is not nil.
func (_u *TherapistProfileUpdateOne) SetNillableCrisisInterventionTrained(v *bool) *TherapistProfileUpdateOne {
	if v != nil {
		_u.SetCrisisInterventionTrained(*v)
	}
	return _u
}

// SetTraumaInformedCertified sets the "trauma_informed_certified" field.
func (_u *TherapistProfileUpdateOne) SetTraumaInformedCertified(v bool) *TherapistProfileUpdateOne {
	_u.mutation.SetTraumaInformedCertified(v)
	return _u
}

// SetNillableTraumaInformedCertified sets the "trauma_informed_certified" field if the given value is not nil.
func (_u *TherapistProfileUpdateOne) SetNillableTraumaInformedCertified(v *bool) *TherapistProfileUpdateOne {
	if v != nil {
		_u.SetTraumaInformedCertified(*v)
	}
	return _u
}

// SetLanguages sets the "languages" field.
func (_u *TherapistProfileUpdateOne) SetLanguages(v []string) *TherapistProfileUpdateOne {
	_u.mutation.SetLanguages(v)
	return _u
}

// AppendLanguages appends value to the "languages" field.
func (_u *TherapistProfileUpdateOne) AppendLanguages(v []string) *TherapistProfileUpdateOne {
	_u.mutation.AppendLanguages(v)
	return _u
}

// ClearLanguages clears the value of the "languages" field.
func (_u *TherapistProfileUpdateOne) ClearLanguages() *TherapistProfileUpdateOne {
	_u.mutation.ClearLanguages()
	return _u
}

// SetAvailabilitySlots sets the "availability_slots" field.
func (_u *TherapistProfileUpdateOne) SetAvailabilitySlots(v []map[string]string) *TherapistProfileUpdateOne {
	_u.mutation.SetAvailabilitySlots(v)
	return _u
}

// AppendAvailabilitySlots appends value to the "availability_slots" field.
func (_u *TherapistProfileUpdateOne) AppendAvailabilitySlots(v []map[string]string) *TherapistProfileUpdateOne {
	_u.mutation.AppendAvailabilitySlots(v)
	return _u
}

// ClearAvailabilitySlots clears the value of the "availability_slots" field.
func (_u *TherapistProfileUpdateOne) ClearAvailabilitySlots() *TherapistProfileUpdateOne {
	_u.mutation.ClearAvailabilitySlots()
	return _u
}

// SetSessionDurations sets the "session_durations" field.
func (_u *TherapistProfileUpdateOne) SetSessionDurations(v []int) *TherapistProfileUpdateOne {
	_u.mutation.SetSessionDurations(v)
	return _u
}

// AppendSessionDurations appends value to the "session_durations" field.
func (_u *TherapistProfileUpdateOne) AppendSessionDurations(v []int) *TherapistProfileUpdateOne {
	_u.mutation.AppendSessionDurations(v)
	return _u
}

// ClearSessionDurations clears the value of the "session_durations" field.
func (_u *TherapistProfileUpdateOne) ClearSessionDurations() *TherapistProfileUpdateOne {
	_u.mutation.ClearSessionDurations()
	return _u
}

// SetRateIndividual sets the "rate_individual" field.
func (_u *TherapistProfileUpdateOne) SetRateIndividual(v float64) *TherapistProfileUpdateOne {
	_u.mutation.ResetRateIndividual()
	_u.mutation.SetRateIndividual(v)
	return _u
}

// SetNillableRateIndividual sets the "rate_individual" field if the given value is not nil.
func (_u *TherapistProfileUpdateOne) SetNillableRateIndividual(v *float64) *TherapistProfileUpdateOne {
	if v != nil {
		_u.SetRateIndividual(*v)
	}
	return _u
}

// AddRateIndividual adds value to the "rate_individual" field.
func (_u *TherapistProfileUpdateOne) AddRateIndividual(v float64) *TherapistProfileUpdateOne {
	_u.mutation.AddRateIndividual(v)
	return _u
}

// SetRateCouples sets the "rate_couples" field.
func (_u *TherapistProfileUpdateOne) SetRateCouples(v float64) *TherapistProfileUpdateOne {
	_u.mutation.ResetRateCouples()
	_u.mutation.SetRateCouples(v)
	return _u
}

// SetNillableRateCouples sets the "rate_couples" field if the given value is not nil.
func (_u *TherapistProfileUpdateOne) SetNillableRateCouples(v *float64) *TherapistProfileUpdateOne {
	if v != nil {
		_u.SetRateCouples(*v)
	}
	return _u
}

// AddRateCouples adds value to the "rate_couples" field.
func (_u *TherapistProfileUpdateOne) AddRateCouples(v float64) *TherapistProfileUpdateOne {
	_u.mutation.AddRateCouples(v)
	return _u
}

// SetRateFamily sets the "rate_family" field.
func (_u *TherapistProfileUpdateOne) SetRateFamily(v float64) *TherapistProfileUpdateOne {
	_u.mutation.ResetRateFamily()
	_u.mutation.SetRateFamily(v)
	return _u
}

// SetNillableRateFamily sets the "rate_family" field if the given value is not nil.
func (_u *TherapistProfileUpdateOne) SetNillableRateFamily(v *float64) *TherapistProfileUpdateOne {
	if v != nil {
		_u.SetRateFamily(*v)
	}
	return _u
}

// AddRateFamily adds value to the "rate_family" field.
func (_u *TherapistProfileUpdateOne) AddRateFamily(v float64) *TherapistProfileUpdateOne {
	_u.mutation.AddRateFamily(v)
	return _u
}

// SetRateGroup sets the "rate_group" field.
func (_u *TherapistProfileUpdateOne) SetRateGroup(v float64) *TherapistProfileUpdateOne {
	_u.mutation.ResetRateGroup()
	_u.mutation.SetRateGroup(v)
	return _u
}

// SetNillableRateGroup sets the "rate_group" field if the given value is not nil.
func (_u *TherapistProfileUpdateOne) SetNillableRateGroup(v *float64) *TherapistProfileUpdateOne {
	if v != nil {
		_u.SetRateGroup(*v)
	}
	return _u
}

// AddRateGroup adds value to the "rate_group" field.
func (_u *TherapistProfileUpdateOne) AddRateGroup(v float64) *TherapistProfileUpdateOne {
	_u.mutation.AddRateGroup(v)
	return _u
}

// SetSlidingScaleAvailable sets the "sliding_scale_available" field.
func (_u *TherapistProfileUpdateOne) SetSlidingScaleAvailable(v bool) *TherapistProfileUpdateOne {
	_u.mutation.SetSlidingScaleAvailable(v)
	return _u
}

// SetNillableSlidingScaleAvailable sets the "sliding_scale_available" field if the given value is not nil.
func (_u *TherapistProfileUpdateOne) SetNillableSlidingScaleAvailable(v *bool) *TherapistProfileUpdateOne {
	if v != nil {
		_u.SetSlidingScaleAvailable(*v)
	}
	return _u
}

// SetInsuranceAccepted sets the "insurance_accepted" field.
func (_u *TherapistProfileUpdateOne) SetInsuranceAccepted(v []string) *TherapistProfileUpdateOne {
	_u.mutation.SetInsuranceAccepted(v)
	return _u
}

// AppendInsuranceAccepted appends value to the "insurance_accepted" field.
func (_u *TherapistProfileUpdateOne) AppendInsuranceAccepted(v []string) *TherapistProfileUpdateOne {
	_u.mutation.AppendInsuranceAccepted(v)
	return _u
}

// ClearInsuranceAccepted clears the value of the "insurance_accepted" field.
func (_u *TherapistProfileUpdateOne) ClearInsuranceAccepted() *TherapistProfileUpdateOne {
	_u.mutation.ClearInsuranceAccepted()
	return _u
}

// SetLocation sets the "location" field.
func (_u *TherapistProfileUpdateOne) SetLocation(v string) *TherapistProfileUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *TherapistProfileUpdateOne) SetNillableLocation(v *string) *TherapistProfileUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *TherapistProfileUpdateOne) ClearLocation() *TherapistProfileUpdateOne {
	_u.mutation.ClearLocation()
	return _u
}

// SetServicesOffered sets the "services_offered" field.
func (_u *TherapistProfileUpdateOne) SetServicesOffered(v []string) *TherapistProfileUpdateOne {
	_u.mutation.SetServicesOffered(v)
	return _u
}

// AppendServicesOffered appends value to the "services_offered" field.
func (_u *TherapistProfileUpdateOne) AppendServicesOffered(v []string) *TherapistProfileUpdateOne {
	_u.mutation.AppendServicesOffered(v)
	return _u
}

// ClearServicesOffered clears the value of the "services_offered" field.
func (_u *TherapistProfileUpdateOne) ClearServicesOffered() *TherapistProfileUpdateOne {
	_u.mutation.ClearServicesOffered()
	return _u
}

// SetEmergencyAvailability sets the "emergency_availability" field.
func (_u *TherapistProfileUpdateOne) SetEmergencyAvailability(v bool) *TherapistProfileUpdateOne {
	_u.mutation.SetEmergencyAvailability(v)
	return _u
}

// SetNillableEmergencyAvailability sets the "emergency_availability" field if the given value is not nil.
func (_u *TherapistProfileUpdateOne) SetNillableEmergencyAvailability(v *bool) *TherapistProfileUpdateOne {
	if v != nil {
		_u.SetEmergencyAvailability(*v)
	}
	return _u
}

// SetBio sets the "bio" field.
func (_u *TherapistProfileUpdateOne) SetBio(v string) *TherapistProfileUpdateOne {
	_u.mutation.SetBio(v)
	return _u
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (_u *TherapistProfileUpdateOne) SetNillableBio(v *string) *TherapistProfileUpdateOne {
	if v != nil {
		_u.SetBio(*v)
	}
	return _u
}

// ClearBio clears the value of the "bio" field.
func (_u *TherapistProfileUpdateOne) ClearBio() *TherapistProfileUpdateOne {
	_u.mutation.ClearBio()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TherapistProfileUpdateOne) SetStatus(v therapistprofile.Status) *TherapistProfileUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TherapistProfileUpdateOne) SetNillableStatus(v *therapistprofile.Status) *TherapistProfileUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the TherapistProfileMutation object of the builder.
func (_u *TherapistProfileUpdateOne) Mutation() *TherapistProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the TherapistProfileUpdate builder.
func (_u *TherapistProfileUpdateOne) Where(ps ...predicate.TherapistProfile) *TherapistProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TherapistProfileUpdateOne) Select(field string, fields ...string) *TherapistProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TherapistProfile entity.
func (_u *TherapistProfileUpdateOne) Save(ctx context.Context) (*TherapistProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TherapistProfileUpdateOne) SaveX(ctx context.Context) *TherapistProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TherapistProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TherapistProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TherapistProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := therapistprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TherapistProfileUpdateOne) check() error {
	if v, ok := _u.mutation.FullName(); ok {
		if err := therapistprofile.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`repo: validator failed for field "TherapistProfile.full_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Gender(); ok {
		if err := therapistprofile.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`repo: validator failed for field "TherapistProfile.gender": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LicenseType(); ok {
		if err := therapistprofile.LicenseTypeValidator(v); err != nil {
			return &ValidationError{Name: "license_type", err: fmt.Errorf(`repo: validator failed for field "TherapistProfile.license_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.YearsExperience(); ok {
		if err := therapistprofile.YearsExperienceValidator(v); err != nil {
			return &ValidationError{Name: "years_experience", err: fmt.Errorf(`repo: validator failed for field "TherapistProfile.years_experience": %w`, err)}
		}
	}
	if v, ok := _u.mutation.YearsPrivatePractice(); ok {
		if err := therapistprofile.YearsPrivatePracticeValidator(v); err != nil {
			return &ValidationError{Name: "years_private_practice", err: fmt.Errorf(`repo: validator failed for field "TherapistProfile.years_private_practice": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Location(); ok {
		if err := therapistprofile.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`repo: validator failed for field "TherapistProfile.location": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := therapistprofile.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "TherapistProfile.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TherapistProfileUpdateOne) sqlSave(ctx context.Context) (_node *TherapistProfile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(therapistprofile.Table, therapistprofile.Columns, sqlgraph.NewFieldSpec(therapistprofile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "TherapistProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, therapistprofile.FieldID)
		for _, f := range fields {
			if !therapistprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != therapistprofile.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(therapistprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(therapistprofile.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(therapistprofile.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(therapistprofile.FieldGender, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LicenseType(); ok {
		_spec.SetField(therapistprofile.FieldLicenseType, field.TypeString, value)
	}
	if value, ok := _u.mutation.YearsExperience(); ok {
		_spec.SetField(therapistprofile.FieldYearsExperience, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYearsExperience(); ok {
		_spec.AddField(therapistprofile.FieldYearsExperience, field.TypeInt, value)
	}
	if value, ok := _u.mutation.YearsPrivatePractice(); ok {
		_spec.SetField(therapistprofile.FieldYearsPrivatePractice, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYearsPrivatePractice(); ok {
		_spec.AddField(therapistprofile.FieldYearsPrivatePractice, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Specializations(); ok {
		_spec.SetField(therapistprofile.FieldSpecializations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSpecializations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, therapistprofile.FieldSpecializations, value)
		})
	}
	if _u.mutation.SpecializationsCleared() {
		_spec.ClearField(therapistprofile.FieldSpecializations, field.TypeJSON)
	}
	if value, ok := _u.mutation.TherapyApproaches(); ok {
		_spec.SetField(therapistprofile.FieldTherapyApproaches, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTherapyApproaches(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, therapistprofile.FieldTherapyApproaches, value)
		})
	}
	if _u.mutation.TherapyApproachesCleared() {
		_spec.ClearField(therapistprofile.FieldTherapyApproaches, field.TypeJSON)
	}
	if value, ok := _u.mutation.ClientDemographics(); ok {
		_spec.SetField(therapistprofile.FieldClientDemographics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedClientDemographics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, therapistprofile.FieldClientDemographics, value)
		})
	}
	if _u.mutation.ClientDemographicsCleared() {
		_spec.ClearField(therapistprofile.FieldClientDemographics, field.TypeJSON)
	}
	if value, ok := _u.mutation.SeverityLevels(); ok {
		_spec.SetField(therapistprofile.FieldSeverityLevels, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSeverityLevels(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, therapistprofile.FieldSeverityLevels, value)
		})
	}
	if _u.mutation.SeverityLevelsCleared() {
		_spec.ClearField(therapistprofile.FieldSeverityLevels, field.TypeJSON)
	}
	if value, ok := _u.mutation.CrisisInterventionTrained(); ok {
		_spec.SetField(therapistprofile.FieldCrisisInterventionTrained, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TraumaInformedCertified(); ok {
		_spec.SetField(therapistprofile.FieldTraumaInformedCertified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Languages(); ok {
		_spec.SetField(therapistprofile.FieldLanguages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLanguages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, therapistprofile.FieldLanguages, value)
		})
	}
	if _u.mutation.LanguagesCleared() {
		_spec.ClearField(therapistprofile.FieldLanguages, field.TypeJSON)
	}
	if value, ok := _u.mutation.AvailabilitySlots(); ok {
		_spec.SetField(therapistprofile.FieldAvailabilitySlots, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAvailabilitySlots(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, therapistprofile.FieldAvailabilitySlots, value)
		})
	}
	if _u.mutation.AvailabilitySlotsCleared() {
		_spec.ClearField(therapistprofile.FieldAvailabilitySlots, field.TypeJSON)
	}
	if value, ok := _u.mutation.SessionDurations(); ok {
		_spec.SetField(therapistprofile.FieldSessionDurations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSessionDurations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, therapistprofile.FieldSessionDurations, value)
		})
	}
	if _u.mutation.SessionDurationsCleared() {
		_spec.ClearField(therapistprofile.FieldSessionDurations, field.TypeJSON)
	}
	if value, ok := _u.mutation.RateIndividual(); ok {
		_spec.SetField(therapistprofile.FieldRateIndividual, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRateIndividual(); ok {
		_spec.AddField(therapistprofile.FieldRateIndividual, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RateCouples(); ok {
		_spec.SetField(therapistprofile.FieldRateCouples, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRateCouples(); ok {
		_spec.AddField(therapistprofile.FieldRateCouples, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RateFamily(); ok {
		_spec.SetField(therapistprofile.FieldRateFamily, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRateFamily(); ok {
		_spec.AddField(therapistprofile.FieldRateFamily, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RateGroup(); ok {
		_spec.SetField(therapistprofile.FieldRateGroup, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRateGroup(); ok {
		_spec.AddField(therapistprofile.FieldRateGroup, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SlidingScaleAvailable(); ok {
		_spec.SetField(therapistprofile.FieldSlidingScaleAvailable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.InsuranceAccepted(); ok {
		_spec.SetField(therapistprofile.FieldInsuranceAccepted, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInsuranceAccepted(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, therapistprofile.FieldInsuranceAccepted, value)
		})
	}
	if _u.mutation.InsuranceAcceptedCleared() {
		_spec.ClearField(therapistprofile.FieldInsuranceAccepted, field.TypeJSON)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(therapistprofile.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(therapistprofile.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.ServicesOffered(); ok {
		_spec.SetField(therapistprofile.FieldServicesOffered, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedServicesOffered(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, therapistprofile.FieldServicesOffered, value)
		})
	}
	if _u.mutation.ServicesOfferedCleared() {
		_spec.ClearField(therapistprofile.FieldServicesOffered, field.TypeJSON)
	}
	if value, ok := _u.mutation.EmergencyAvailability(); ok {
		_spec.SetField(therapistprofile.FieldEmergencyAvailability, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Bio(); ok {
		_spec.SetField(therapistprofile.FieldBio, field.TypeString, value)
	}
	if _u.mutation.BioCleared() {
		_spec.ClearField(therapistprofile.FieldBio, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(therapistprofile.FieldStatus, field.TypeEnum, value)
	}
	_node = &TherapistProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{therapistprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
