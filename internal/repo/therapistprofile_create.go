// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/govently/govently_backend/internal/repo/therapistprofile"
)

// TherapistProfileCreate is the builder for creating a TherapistProfile entity.
type TherapistProfileCreate struct {
	config
	mutation *TherapistProfileMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *TherapistProfileCreate) SetCreatedAt(v time.Time) *TherapistProfileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TherapistProfileCreate) SetNillableCreatedAt(v *time.Time) *TherapistProfileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TherapistProfileCreate) SetUpdatedAt(v time.Time) *TherapistProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TherapistProfileCreate) SetNillableUpdatedAt(v *time.Time) *TherapistProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *TherapistProfileCreate) SetUserID(v uuid.UUID) *TherapistProfileCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetFullName sets the "full_name" field.
func (_c *TherapistProfileCreate) SetFullName(v string) *TherapistProfileCreate {
	_c.mutation.SetFullName(v)
	return _c
}

// SetGender sets the "gender" field.
func (_c *TherapistProfileCreate) SetGender(v therapistprofile.Gender) *TherapistProfileCreate {
	_c.mutation.SetGender(v)
	return _c
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_c *TherapistProfileCreate) SetNillableGender(v *therapistprofile.Gender) *TherapistProfileCreate {
	if v != nil {
		_c.SetGender(*v)
	}
	return _c
}

// SetLicenseType sets the "license_type" field.
func (_c *TherapistProfileCreate) SetLicenseType(v string) *TherapistProfileCreate {
	_c.mutation.SetLicenseType(v)
	return _c
}

// SetYearsExperience sets the "years_experience" field.
func (_c *TherapistProfileCreate) SetYearsExperience(v int) *TherapistProfileCreate {
	_c.mutation.SetYearsExperience(v)
	return _c
}

// SetNillableYearsExperience sets the "years_experience" field if the given value is not nil.
func (_c *TherapistProfileCreate) SetNillableYearsExperience(v *int) *TherapistProfileCreate {
	if v != nil {
		_c.SetYearsExperience(*v)
	}
	return _c
}

// SetYearsPrivatePractice sets the "years_private_practice" field.
func (_c *TherapistProfileCreate) SetYearsPrivatePractice(v int) *TherapistProfileCreate {
	_c.mutation.SetYearsPrivatePractice(v)
	return _c
}

// SetNillableYearsPrivatePractice sets the "years_private_practice" field if the given value is not nil.
func (_c *TherapistProfileCreate) SetNillableYearsPrivatePractice(v *int) *TherapistProfileCreate {
	if v != nil {
		_c.SetYearsPrivatePractice(*v)
	}
	return _c
}

// SetSpecializations sets the "specializations" field.
func (_c *TherapistProfileCreate) SetSpecializations(v []string) *TherapistProfileCreate {
	_c.mutation.SetSpecializations(v)
	return _c
}

// SetTherapyApproaches sets the "therapy_approaches" field.
func (_c *TherapistProfileCreate) SetTherapyApproaches(v []string) *TherapistProfileCreate {
	_c.mutation.SetTherapyApproaches(v)
	return _c
}

// SetClientDemographics sets the "client_demographics" field.
func (_c *TherapistProfileCreate) SetClientDemographics(v []string) *TherapistProfileCreate {
	_c.mutation.SetClientDemographics(v)
	return _c
}

// SetSeverityLevels sets the "severity_levels" field.
func (_c *TherapistProfileCreate) SetSeverityLevels(v []string) *TherapistProfileCreate {
	_c.mutation.SetSeverityLevels(v)
	return _c
}

// SetCrisisInterventionTrained sets the "crisis_intervention_trained" field.
func (_c *TherapistProfileCreate) SetCrisisInterventionTrained(v bool) *TherapistProfileCreate {
	_c.mutation.SetCrisisInterventionTrained(v)
	return _c
}

// SetNillableCrisisInterventionTrained sets the "crisis_intervention_trained" field if the given value is not nil.
func (_c *TherapistProfileCreate) SetNillableCrisisInterventionTrained(v *bool) *TherapistProfileCreate {
	if v != nil {
		_c.SetCrisisInterventionTrained(*v)
	}
	return _c
}

// SetTraumaInformedCertified sets the "trauma_informed_certified" field.
func (_c *TherapistProfileCreate) SetTraumaInformedCertified(v bool) *TherapistProfileCreate {
	_c.mutation.SetTraumaInformedCertified(v)
	return _c
}

// SetNillableTraumaInformedCertified sets the "trauma_informed_certified" field if the given value is not nil.
func (_c *TherapistProfileCreate) SetNillableTraumaInformedCertified(v *bool) *TherapistProfileCreate {
	if v != nil {
		_c.SetTraumaInformedCertified(*v)
	}
	return _c
}

// SetLanguages sets the "languages" field.
func (_c *TherapistProfileCreate) SetLanguages(v []string) *TherapistProfileCreate {
	_c.mutation.SetLanguages(v)
	return _c
}

// SetAvailabilitySlots sets the "availability_slots" field.
func (_c *TherapistProfileCreate) SetAvailabilitySlots(v []map[string]string) *TherapistProfileCreate {
	_c.mutation.SetAvailabilitySlots(v)
	return _c
}

// SetSessionDurations sets the "session_durations" field.
func (_c *TherapistProfileCreate) SetSessionDurations(v []int) *TherapistProfileCreate {
	_c.mutation.SetSessionDurations(v)
	return _c
}

// SetRateIndividual sets the "rate_individual" field.
func (_c *TherapistProfileCreate) SetRateIndividual(v float64) *TherapistProfileCreate {
	_c.mutation.SetRateIndividual(v)
	return _c
}

// SetNillableRateIndividual sets the "rate_individual" field if the given value is not nil.
func (_c *TherapistProfileCreate) SetNillableRateIndividual(v *float64) *TherapistProfileCreate {
	if v != nil {
		_c.SetRateIndividual(*v)
	}
	return _c
}

// SetRateCouples sets the "rate_couples" field.
func (_c *TherapistProfileCreate) SetRateCouples(v float64) *TherapistProfileCreate {
	_c.mutation.SetRateCouples(v)
	return _c
}

// SetNillableRateCouples sets the "rate_couples" field if the given value is not nil.
func (_c *TherapistProfileCreate) SetNillableRateCouples(v *float64) *TherapistProfileCreate {
	if v != nil {
		_c.SetRateCouples(*v)
	}
	return _c
}

// SetRateFamily sets the "rate_family" field.
func (_c *TherapistProfileCreate) SetRateFamily(v float64) *TherapistProfileCreate {
	_c.mutation.SetRateFamily(v)
	return _c
}

// SetNillableRateFamily sets the "rate_family" field if the given value is not nil.
func (_c *TherapistProfileCreate) SetNillableRateFamily(v *float64) *TherapistProfileCreate {
	if v != nil {
		_c.SetRateFamily(*v)
	}
	return _c
}

// SetRateGroup sets the "rate_group" field.
func (_c *TherapistProfileCreate) SetRateGroup(v float64) *TherapistProfileCreate {
	_c.mutation.SetRateGroup(v)
	return _c
}

// SetNillableRateGroup sets the "rate_group" field if the given value is not nil.
func (_c *TherapistProfileCreate) SetNillableRateGroup(v *float64) *TherapistProfileCreate {
	if v != nil {
		_c.SetRateGroup(*v)
	}
	return _c
}

// SetSlidingScaleAvailable sets the "sliding_scale_available" field.
func (_c *TherapistProfileCreate) SetSlidingScaleAvailable(v bool) *TherapistProfileCreate {
	_c.mutation.SetSlidingScaleAvailable(v)
	return _c
}

// SetNillableSlidingScaleAvailable sets the "sliding_scale_available" field if the given value is not nil.
func (_c *TherapistProfileCreate) SetNillableSlidingScaleAvailable(v *bool) *TherapistProfileCreate {
	if v != nil {
		_c.SetSlidingScaleAvailable(*v)
	}
	return _c
}

// SetInsuranceAccepted sets the "insurance_accepted" field.
func (_c *TherapistProfileCreate) SetInsuranceAccepted(v []string) *TherapistProfileCreate {
	_c.mutation.SetInsuranceAccepted(v)
	return _c
}

// SetLocation sets the "location" field.
func (_c *TherapistProfileCreate) SetLocation(v string) *TherapistProfileCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_c *TherapistProfileCreate) SetNillableLocation(v *string) *TherapistProfileCreate {
	if v != nil {
		_c.SetLocation(*v)
	}
	return _c
}

// SetServicesOffered sets the "services_offered" field.
func (_c *TherapistProfileCreate) SetServicesOffered(v []string) *TherapistProfileCreate {
	_c.mutation.SetServicesOffered(v)
	return _c
}

// SetEmergencyAvailability sets the "emergency_availability" field.
func (_c *TherapistProfileCreate) SetEmergencyAvailability(v bool) *TherapistProfileCreate {
	_c.mutation.SetEmergencyAvailability(v)
	return _c
}

// SetNillableEmergencyAvailability sets the "emergency_availability" field if the given value is not nil.
func (_c *TherapistProfileCreate) SetNillableEmergencyAvailability(v *bool) *TherapistProfileCreate {
	if v != nil {
		_c.SetEmergencyAvailability(*v)
	}
	return _c
}

// SetBio sets the "bio" field.
func (_c *TherapistProfileCreate) SetBio(v string) *TherapistProfileCreate {
	_c.mutation.SetBio(v)
	return _c
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (_c *TherapistProfileCreate) SetNillableBio(v *string) *TherapistProfileCreate {
	if v != nil {
		_c.SetBio(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *TherapistProfileCreate) SetStatus(v therapistprofile.Status) *TherapistProfileCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TherapistProfileCreate) SetNillableStatus(v *therapistprofile.Status) *TherapistProfileCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TherapistProfileCreate) SetID(v uuid.UUID) *TherapistProfileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TherapistProfileCreate) SetNillableID(v *uuid.UUID) *TherapistProfileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the TherapistProfileMutation object of the builder.
func (_c *TherapistProfileCreate) Mutation() *TherapistProfileMutation {
	return _c.mutation
}

// Save creates the TherapistProfile in the database.
func (_c *TherapistProfileCreate) Save(ctx context.Context) (*TherapistProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TherapistProfileCreate) SaveX(ctx context.Context) *TherapistProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TherapistProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TherapistProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TherapistProfileCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := therapistprofile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := therapistprofile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Gender(); !ok {
		v := therapistprofile.DefaultGender
		_c.mutation.SetGender(v)
	}
	if _, ok := _c.mutation.YearsExperience(); !ok {
		v := therapistprofile.DefaultYearsExperience
		_c.mutation.SetYearsExperience(v)
	}
	if _, ok := _c.mutation.YearsPrivatePractice(); !ok {
		v := therapistprofile.DefaultYearsPrivatePractice
		_c.mutation.SetYearsPrivatePractice(v)
	}
	if _, ok := _c.mutation.CrisisInterventionTrained(); !ok {
		v := therapistprofile.DefaultCrisisInterventionTrained
		_c.mutation.SetCrisisInterventionTrained(v)
	}
	if _, ok := _c.mutation.TraumaInformedCertified(); !ok {
		v := therapistprofile.DefaultTraumaInformedCertified
		_c.mutation.SetTraumaInformedCertified(v)
	}
	if _, ok := _c.mutation.RateIndividual(); !ok {
		v := therapistprofile.DefaultRateIndividual
		_c.mutation.SetRateIndividual(v)
	}
	if _, ok := _c.mutation.RateCouples(); !ok {
		v := therapistprofile.DefaultRateCouples
		_c.mutation.SetRateCouples(v)
	}
	if _, ok := _c.mutation.RateFamily(); !ok {
		v := therapistprofile.DefaultRateFamily
		_c.mutation.SetRateFamily(v)
	}
	if _, ok := _c.mutation.RateGroup(); !ok {
		v := therapistprofile.DefaultRateGroup
		_c.mutation.SetRateGroup(v)
	}
	if _, ok := _c.mutation.SlidingScaleAvailable(); !ok {
		v := therapistprofile.DefaultSlidingScaleAvailable
		_c.mutation.SetSlidingScaleAvailable(v)
	}
	if _, ok := _c.mutation.EmergencyAvailability(); !ok {
		v := therapistprofile.DefaultEmergencyAvailability
		_c.mutation.SetEmergencyAvailability(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := therapistprofile.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := therapistprofile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TherapistProfileCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "TherapistProfile.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "TherapistProfile.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "TherapistProfile.user_id"`)}
	}
	if _, ok := _c.mutation.FullName(); !ok {
		return &ValidationError{Name: "full_name", err: errors.New(`repo: missing required field "TherapistProfile.full_name"`)}
	}
	if v, ok := _c.mutation.FullName(); ok {
		if err := therapistprofile.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`repo: validator failed for field "TherapistProfile.full_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Gender(); !ok {
		return &ValidationError{Name: "gender", err: errors.New(`repo: missing required field "TherapistProfile.gender"`)}
	}
	if v, ok := _c.mutation.Gender(); ok {
		if err := therapistprofile.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`repo: validator failed for field "TherapistProfile.gender": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LicenseType(); !ok {
		return &ValidationError{Name: "license_type", err: errors.New(`repo: missing required field "TherapistProfile.license_type"`)}
	}
	if v, ok := _c.mutation.LicenseType(); ok {
		if err := therapistprofile.LicenseTypeValidator(v); err != nil {
			return &ValidationError{Name: "license_type", err: fmt.Errorf(`repo: validator failed for field "TherapistProfile.license_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.YearsExperience(); !ok {
		return &ValidationError{Name: "years_experience", err: errors.New(`repo: missing required field "TherapistProfile.years_experience"`)}
	}
	if v, ok := _c.mutation.YearsExperience(); ok {
		if err := therapistprofile.YearsExperienceValidator(v); err != nil {
			return &ValidationError{Name: "years_experience", err: fmt.Errorf(`repo: validator failed for field "TherapistProfile.years_experience": %w`, err)}
		}
	}
	if _, ok := _c.mutation.YearsPrivatePractice(); !ok {
		return &ValidationError{Name: "years_private_practice", err: errors.New(`repo: missing required field "TherapistProfile.years_private_practice"`)}
	}
	if v, ok := _c.mutation.YearsPrivatePractice(); ok {
		if err := therapistprofile.YearsPrivatePracticeValidator(v); err != nil {
			return &ValidationError{Name: "years_private_practice", err: fmt.Errorf(`repo: validator failed for field "TherapistProfile.years_private_practice": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CrisisInterventionTrained(); !ok {
		return &ValidationError{Name: "crisis_intervention_trained", err: errors.New(`repo: missing required field "TherapistProfile.crisis_intervention_trained"`)}
	}
	if _, ok := _c.mutation.TraumaInformedCertified(); !ok {
		return &ValidationError{Name: "trauma_informed_certified", err: errors.New(`repo: missing required field "TherapistProfile.trauma_informed_certified"`)}
	}
	if _, ok := _c.mutation.RateIndividual(); !ok {
		return &ValidationError{Name: "rate_individual", err: errors.New(`repo: missing required field "TherapistProfile.rate_individual"`)}
	}
	if _, ok := _c.mutation.RateCouples(); !ok {
		return &ValidationError{Name: "rate_couples", err: errors.New(`repo: missing required field "TherapistProfile.rate_couples"`)}
	}
	if _, ok := _c.mutation.RateFamily(); !ok {
		return &ValidationError{Name: "rate_family", err: errors.New(`repo: missing required field "TherapistProfile.rate_family"`)}
	}
	if _, ok := _c.mutation.RateGroup(); !ok {
		return &ValidationError{Name: "rate_group", err: errors.New(`repo: missing required field "TherapistProfile.rate_group"`)}
	}
	if _, ok := _c.mutation.SlidingScaleAvailable(); !ok {
		return &ValidationError{Name: "sliding_scale_available", err: errors.New(`repo: missing required field "TherapistProfile.sliding_scale_available"`)}
	}
	if v, ok := _c.mutation.Location(); ok {
		if err := therapistprofile.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`repo: validator failed for field "TherapistProfile.location": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EmergencyAvailability(); !ok {
		return &ValidationError{Name: "emergency_availability", err: errors.New(`repo: missing required field "TherapistProfile.emergency_availability"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "TherapistProfile.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := therapistprofile.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "TherapistProfile.status": %w`, err)}
		}
	}
	return nil
}

func (_c *TherapistProfileCreate) sqlSave(ctx context.Context) (*TherapistProfile, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TherapistProfileCreate) createSpec() (*TherapistProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &TherapistProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(therapistprofile.Table, sqlgraph.NewFieldSpec(therapistprofile.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(therapistprofile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(therapistprofile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(therapistprofile.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.FullName(); ok {
		_spec.SetField(therapistprofile.FieldFullName, field.TypeString, value)
		_node.FullName = value
	}
	if value, ok := _c.mutation.Gender(); ok {
		_spec.SetField(therapistprofile.FieldGender, field.TypeEnum, value)
		_node.Gender = value
	}
	if value, ok := _c.mutation.LicenseType(); ok {
		_spec.SetField(therapistprofile.FieldLicenseType, field.TypeString, value)
		_node.LicenseType = value
	}
	if value, ok := _c.mutation.YearsExperience(); ok {
		_spec.SetField(therapistprofile.FieldYearsExperience, field.TypeInt, value)
		_node.YearsExperience = value
	}
	if value, ok := _c.mutation.YearsPrivatePractice(); ok {
		_spec.SetField(therapistprofile.FieldYearsPrivatePractice, field.TypeInt, value)
		_node.YearsPrivatePractice = value
	}
	if value, ok := _c.mutation.Specializations(); ok {
		_spec.SetField(therapistprofile.FieldSpecializations, field.TypeJSON, value)
		_node.Specializations = value
	}
	if value, ok := _c.mutation.TherapyApproaches(); ok {
		_spec.SetField(therapistprofile.FieldTherapyApproaches, field.TypeJSON, value)
		_node.TherapyApproaches = value
	}
	if value, ok := _c.mutation.ClientDemographics(); ok {
		_spec.SetField(therapistprofile.FieldClientDemographics, field.TypeJSON, value)
		_node.ClientDemographics = value
	}
	if value, ok := _c.mutation.SeverityLevels(); ok {
		_spec.SetField(therapistprofile.FieldSeverityLevels, field.TypeJSON, value)
		_node.SeverityLevels = value
	}
	if value, ok := _c.mutation.CrisisInterventionTrained(); ok {
		_spec.SetField(therapistprofile.FieldCrisisInterventionTrained, field.TypeBool, value)
		_node.CrisisInterventionTrained = value
	}
	if value, ok := _c.mutation.TraumaInformedCertified(); ok {
		_spec.SetField(therapistprofile.FieldTraumaInformedCertified, field.TypeBool, value)
		_node.TraumaInformedCertified = value
	}
	if value, ok := _c.mutation.Languages(); ok {
		_spec.SetField(therapistprofile.FieldLanguages, field.TypeJSON, value)
		_node.Languages = value
	}
	if value, ok := _c.mutation.AvailabilitySlots(); ok {
		_spec.SetField(therapistprofile.FieldAvailabilitySlots, field.TypeJSON, value)
		_node.AvailabilitySlots = value
	}
	if value, ok := _c.mutation.SessionDurations(); ok {
		_spec.SetField(therapistprofile.FieldSessionDurations, field.TypeJSON, value)
		_node.SessionDurations = value
	}
	if value, ok := _c.mutation.RateIndividual(); ok {
		_spec.SetField(therapistprofile.FieldRateIndividual, field.TypeFloat64, value)
		_node.RateIndividual = value
	}
	if value, ok := _c.mutation.RateCouples(); ok {
		_spec.SetField(therapistprofile.FieldRateCouples, field.TypeFloat64, value)
		_node.RateCouples = value
	}
	if value, ok := _c.mutation.RateFamily(); ok {
		_spec.SetField(therapistprofile.FieldRateFamily, field.TypeFloat64, value)
		_node.RateFamily = value
	}
	if value, ok := _c.mutation.RateGroup(); ok {
		_spec.SetField(therapistprofile.FieldRateGroup, field.TypeFloat64, value)
		_node.RateGroup = value
	}
	if value, ok := _c.mutation.SlidingScaleAvailable(); ok {
		_spec.SetField(therapistprofile.FieldSlidingScaleAvailable, field.TypeBool, value)
		_node.SlidingScaleAvailable = value
	}
	if value, ok := _c.mutation.InsuranceAccepted(); ok {
		_spec.SetField(therapistprofile.FieldInsuranceAccepted, field.TypeJSON, value)
		_node.InsuranceAccepted = value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(therapistprofile.FieldLocation, field.TypeString, value)
		_node.Location = value
	}
	if value, ok := _c.mutation.ServicesOffered(); ok {
		_spec.SetField(therapistprofile.FieldServicesOffered, field.TypeJSON, value)
		_node.ServicesOffered = value
	}
	if value, ok := _c.mutation.EmergencyAvailability(); ok {
		_spec.SetField(therapistprofile.FieldEmergencyAvailability, field.TypeBool, value)
		_node.EmergencyAvailability = value
	}
	if value, ok := _c.mutation.Bio(); ok {
		_spec.SetField(therapistprofile.FieldBio, field.TypeString, value)
		_node.Bio = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(therapistprofile.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	return _node, _spec
}

// TherapistProfileCreateBulk is the builder for creating many TherapistProfile entities in bulk.
type TherapistProfileCreateBulk struct {
	config
	err      error
	builders []*TherapistProfileCreate
}

// Save creates the TherapistProfile entities in the database.
func (_c *TherapistProfileCreateBulk) Save(ctx context.Context) ([]*TherapistProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TherapistProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TherapistProfileMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TherapistProfileCreateBulk) SaveX(ctx context.Context) []*TherapistProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TherapistProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TherapistProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
