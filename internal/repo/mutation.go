// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/govently/govently_backend/internal/repo/appointment"
	"github.com/govently/govently_backend/internal/repo/matchresult"
	"github.com/govently/govently_backend/internal/repo/mentalassessment"
	"github.com/govently/govently_backend/internal/repo/predicate"
	"github.com/govently/govently_backend/internal/repo/therapistprofile"
	"github.com/govently/govently_backend/internal/repo/timeslot"
	"github.com/govently/govently_backend/internal/repo/user"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAppointment      = "Appointment"
	TypeMatchResult      = "MatchResult"
	TypeMentalAssessment = "MentalAssessment"
	TypeTherapistProfile = "TherapistProfile"
	TypeTimeSlot         = "TimeSlot"
	TypeUser             = "User"
)

// AppointmentMutation represents an operation that mutates the Appointment nodes in the graph.
type AppointmentMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	created_at          *time.Time
	updated_at          *time.Time
	therapist_id        *uuid.UUID
	client_id           *uuid.UUID
	time_slot_id        *uuid.UUID
	assessment_id       *uuid.UUID
	start_time          *time.Time
	end_time            *time.Time
	_type               *appointment.Type
	status              *appointment.Status
	notes               *string
	cancellation_reason *string
	cancel_requested_by *appointment.CancelRequestedBy
	cancelled_at        *time.Time
	completed_at        *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Appointment, error)
	predicates          []predicate.Appointment
}

var _ ent.Mutation = (*AppointmentMutation)(nil)

// appointmentOption allows management of the mutation configuration using functional options.
type appointmentOption func(*AppointmentMutation)

// newAppointmentMutation creates new mutation for the Appointment entity.
func newAppointmentMutation(c config, op Op, opts ...appointmentOption) *AppointmentMutation {
	m := &AppointmentMutation{
		config:        c,
		op:            op,
		typ:           TypeAppointment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAppointmentID sets the ID field of the mutation.
func withAppointmentID(id uuid.UUID) appointmentOption {
	return func(m *AppointmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Appointment
		)
		m.oldValue = func(ctx context.Context) (*Appointment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Appointment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAppointment sets the old Appointment of the mutation.
func withAppointment(node *Appointment) appointmentOption {
	return func(m *AppointmentMutation) {
		m.oldValue = func(context.Context) (*Appointment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AppointmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AppointmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Appointment entities.
func (m *AppointmentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AppointmentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AppointmentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Appointment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AppointmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AppointmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AppointmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AppointmentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AppointmentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AppointmentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetTherapistID sets the "therapist_id" field.
func (m *AppointmentMutation) SetTherapistID(u uuid.UUID) {
	m.therapist_id = &u
}

// TherapistID returns the value of the "therapist_id" field in the mutation.
func (m *AppointmentMutation) TherapistID() (r uuid.UUID, exists bool) {
	v := m.therapist_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTherapistID returns the old "therapist_id" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldTherapistID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTherapistID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTherapistID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTherapistID: %w", err)
	}
	return oldValue.TherapistID, nil
}

// ResetTherapistID resets all changes to the "therapist_id" field.
func (m *AppointmentMutation) ResetTherapistID() {
	m.therapist_id = nil
}

// SetClientID sets the "client_id" field.
func (m *AppointmentMutation) SetClientID(u uuid.UUID) {
	m.client_id = &u
}

// ClientID returns the value of the "client_id" field in the mutation.
func (m *AppointmentMutation) ClientID() (r uuid.UUID, exists bool) {
	v := m.client_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClientID returns the old "client_id" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldClientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientID: %w", err)
	}
	return oldValue.ClientID, nil
}

// ResetClientID resets all changes to the "client_id" field.
func (m *AppointmentMutation) ResetClientID() {
	m.client_id = nil
}

// SetTimeSlotID sets the "time_slot_id" field.
func (m *AppointmentMutation) SetTimeSlotID(u uuid.UUID) {
	m.time_slot_id = &u
}

// TimeSlotID returns the value of the "time_slot_id" field in the mutation.
func (m *AppointmentMutation) TimeSlotID() (r uuid.UUID, exists bool) {
	v := m.time_slot_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeSlotID returns the old "time_slot_id" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldTimeSlotID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeSlotID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeSlotID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeSlotID: %w", err)
	}
	return oldValue.TimeSlotID, nil
}

// ClearTimeSlotID clears the value of the "time_slot_id" field.
func (m *AppointmentMutation) ClearTimeSlotID() {
	m.time_slot_id = nil
	m.clearedFields[appointment.FieldTimeSlotID] = struct{}{}
}

// TimeSlotIDCleared returns if the "time_slot_id" field was cleared in this mutation.
func (m *AppointmentMutation) TimeSlotIDCleared() bool {
	_, ok := m.clearedFields[appointment.FieldTimeSlotID]
	return ok
}

// ResetTimeSlotID resets all changes to the "time_slot_id" field.
func (m *AppointmentMutation) ResetTimeSlotID() {
	m.time_slot_id = nil
	delete(m.clearedFields, appointment.FieldTimeSlotID)
}

// SetAssessmentID sets the "assessment_id" field.
func (m *AppointmentMutation) SetAssessmentID(u uuid.UUID) {
	m.assessment_id = &u
}

// AssessmentID returns the value of the "assessment_id" field in the mutation.
func (m *AppointmentMutation) AssessmentID() (r uuid.UUID, exists bool) {
	v := m.assessment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAssessmentID returns the old "assessment_id" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldAssessmentID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssessmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssessmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssessmentID: %w", err)
	}
	return oldValue.AssessmentID, nil
}

// ClearAssessmentID clears the value of the "assessment_id" field.
func (m *AppointmentMutation) ClearAssessmentID() {
	m.assessment_id = nil
	m.clearedFields[appointment.FieldAssessmentID] = struct{}{}
}

// AssessmentIDCleared returns if the "assessment_id" field was cleared in this mutation.
func (m *AppointmentMutation) AssessmentIDCleared() bool {
	_, ok := m.clearedFields[appointment.FieldAssessmentID]
	return ok
}

// ResetAssessmentID resets all changes to the "assessment_id" field.
func (m *AppointmentMutation) ResetAssessmentID() {
	m.assessment_id = nil
	delete(m.clearedFields, appointment.FieldAssessmentID)
}

// SetStartTime sets the "start_time" field.
func (m *AppointmentMutation) SetStartTime(t time.Time) {
	m.start_time = &t
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *AppointmentMutation) StartTime() (r time.Time, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldStartTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *AppointmentMutation) ResetStartTime() {
	m.start_time = nil
}

// SetEndTime sets the "end_time" field.
func (m *AppointmentMutation) SetEndTime(t time.Time) {
	m.end_time = &t
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *AppointmentMutation) EndTime() (r time.Time, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldEndTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *AppointmentMutation) ResetEndTime() {
	m.end_time = nil
}

// SetType sets the "type" field.
func (m *AppointmentMutation) SetType(a appointment.Type) {
	m._type = &a
}

// GetType returns the value of the "type" field in the mutation.
func (m *AppointmentMutation) GetType() (r appointment.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldType(ctx context.Context) (v appointment.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *AppointmentMutation) ResetType() {
	m._type = nil
}

// SetStatus sets the "status" field.
func (m *AppointmentMutation) SetStatus(a appointment.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AppointmentMutation) Status() (r appointment.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldStatus(ctx context.Context) (v appointment.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AppointmentMutation) ResetStatus() {
	m.status = nil
}

// SetNotes sets the "notes" field.
func (m *AppointmentMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *AppointmentMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *AppointmentMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[appointment.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *AppointmentMutation) NotesCleared() bool {
	_, ok := m.clearedFields[appointment.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *AppointmentMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, appointment.FieldNotes)
}

// SetCancellationReason sets the "cancellation_reason" field.
func (m *AppointmentMutation) SetCancellationReason(s string) {
	m.cancellation_reason = &s
}

// CancellationReason returns the value of the "cancellation_reason" field in the mutation.
func (m *AppointmentMutation) CancellationReason() (r string, exists bool) {
	v := m.cancellation_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldCancellationReason returns the old "cancellation_reason" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldCancellationReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancellationReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancellationReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancellationReason: %w", err)
	}
	return oldValue.CancellationReason, nil
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (m *AppointmentMutation) ClearCancellationReason() {
	m.cancellation_reason = nil
	m.clearedFields[appointment.FieldCancellationReason] = struct{}{}
}

// CancellationReasonCleared returns if the "cancellation_reason" field was cleared in this mutation.
func (m *AppointmentMutation) CancellationReasonCleared() bool {
	_, ok := m.clearedFields[appointment.FieldCancellationReason]
	return ok
}

// ResetCancellationReason resets all changes to the "cancellation_reason" field.
func (m *AppointmentMutation) ResetCancellationReason() {
	m.cancellation_reason = nil
	delete(m.clearedFields, appointment.FieldCancellationReason)
}

// SetCancelRequestedBy sets the "cancel_requested_by" field.
func (m *AppointmentMutation) SetCancelRequestedBy(arb appointment.CancelRequestedBy) {
	m.cancel_requested_by = &arb
}

// CancelRequestedBy returns the value of the "cancel_requested_by" field in the mutation.
func (m *AppointmentMutation) CancelRequestedBy() (r appointment.CancelRequestedBy, exists bool) {
	v := m.cancel_requested_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelRequestedBy returns the old "cancel_requested_by" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldCancelRequestedBy(ctx context.Context) (v *appointment.CancelRequestedBy, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelRequestedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelRequestedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelRequestedBy: %w", err)
	}
	return oldValue.CancelRequestedBy, nil
}

// ClearCancelRequestedBy clears the value of the "cancel_requested_by" field.
func (m *AppointmentMutation) ClearCancelRequestedBy() {
	m.cancel_requested_by = nil
	m.clearedFields[appointment.FieldCancelRequestedBy] = struct{}{}
}

// CancelRequestedByCleared returns if the "cancel_requested_by" field was cleared in this mutation.
func (m *AppointmentMutation) CancelRequestedByCleared() bool {
	_, ok := m.clearedFields[appointment.FieldCancelRequestedBy]
	return ok
}

// ResetCancelRequestedBy resets all changes to the "cancel_requested_by" field.
func (m *AppointmentMutation) ResetCancelRequestedBy() {
	m.cancel_requested_by = nil
	delete(m.clearedFields, appointment.FieldCancelRequestedBy)
}

// SetCancelledAt sets the "cancelled_at" field.
func (m *AppointmentMutation) SetCancelledAt(t time.Time) {
	m.cancelled_at = &t
}

// CancelledAt returns the value of the "cancelled_at" field in the mutation.
func (m *AppointmentMutation) CancelledAt() (r time.Time, exists bool) {
	v := m.cancelled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelledAt returns the old "cancelled_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldCancelledAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelledAt: %w", err)
	}
	return oldValue.CancelledAt, nil
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (m *AppointmentMutation) ClearCancelledAt() {
	m.cancelled_at = nil
	m.clearedFields[appointment.FieldCancelledAt] = struct{}{}
}

// CancelledAtCleared returns if the "cancelled_at" field was cleared in this mutation.
func (m *AppointmentMutation) CancelledAtCleared() bool {
	_, ok := m.clearedFields[appointment.FieldCancelledAt]
	return ok
}

// ResetCancelledAt resets all changes to the "cancelled_at" field.
func (m *AppointmentMutation) ResetCancelledAt() {
	m.cancelled_at = nil
	delete(m.clearedFields, appointment.FieldCancelledAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *AppointmentMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *AppointmentMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *AppointmentMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[appointment.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *AppointmentMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[appointment.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *AppointmentMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, appointment.FieldCompletedAt)
}

// Where appends a list predicates to the AppointmentMutation builder.
func (m *AppointmentMutation) Where(ps ...predicate.Appointment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AppointmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AppointmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Appointment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AppointmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AppointmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Appointment).
func (m *AppointmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AppointmentMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.created_at != nil {
		fields = append(fields, appointment.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, appointment.FieldUpdatedAt)
	}
	if m.therapist_id != nil {
		fields = append(fields, appointment.FieldTherapistID)
	}
	if m.client_id != nil {
		fields = append(fields, appointment.FieldClientID)
	}
	if m.time_slot_id != nil {
		fields = append(fields, appointment.FieldTimeSlotID)
	}
	if m.assessment_id != nil {
		fields = append(fields, appointment.FieldAssessmentID)
	}
	if m.start_time != nil {
		fields = append(fields, appointment.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, appointment.FieldEndTime)
	}
	if m._type != nil {
		fields = append(fields, appointment.FieldType)
	}
	if m.status != nil {
		fields = append(fields, appointment.FieldStatus)
	}
	if m.notes != nil {
		fields = append(fields, appointment.FieldNotes)
	}
	if m.cancellation_reason != nil {
		fields = append(fields, appointment.FieldCancellationReason)
	}
	if m.cancel_requested_by != nil {
		fields = append(fields, appointment.FieldCancelRequestedBy)
	}
	if m.cancelled_at != nil {
		fields = append(fields, appointment.FieldCancelledAt)
	}
	if m.completed_at != nil {
		fields = append(fields, appointment.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AppointmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case appointment.FieldCreatedAt:
		return m.CreatedAt()
	case appointment.FieldUpdatedAt:
		return m.UpdatedAt()
	case appointment.FieldTherapistID:
		return m.TherapistID()
	case appointment.FieldClientID:
		return m.ClientID()
	case appointment.FieldTimeSlotID:
		return m.TimeSlotID()
	case appointment.FieldAssessmentID:
		return m.AssessmentID()
	case appointment.FieldStartTime:
		return m.StartTime()
	case appointment.FieldEndTime:
		return m.EndTime()
	case appointment.FieldType:
		return m.GetType()
	case appointment.FieldStatus:
		return m.Status()
	case appointment.FieldNotes:
		return m.Notes()
	case appointment.FieldCancellationReason:
		return m.CancellationReason()
	case appointment.FieldCancelRequestedBy:
		return m.CancelRequestedBy()
	case appointment.FieldCancelledAt:
		return m.CancelledAt()
	case appointment.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AppointmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case appointment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case appointment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case appointment.FieldTherapistID:
		return m.OldTherapistID(ctx)
	case appointment.FieldClientID:
		return m.OldClientID(ctx)
	case appointment.FieldTimeSlotID:
		return m.OldTimeSlotID(ctx)
	case appointment.FieldAssessmentID:
		return m.OldAssessmentID(ctx)
	case appointment.FieldStartTime:
		return m.OldStartTime(ctx)
	case appointment.FieldEndTime:
		return m.OldEndTime(ctx)
	case appointment.FieldType:
		return m.OldType(ctx)
	case appointment.FieldStatus:
		return m.OldStatus(ctx)
	case appointment.FieldNotes:
		return m.OldNotes(ctx)
	case appointment.FieldCancellationReason:
		return m.OldCancellationReason(ctx)
	case appointment.FieldCancelRequestedBy:
		return m.OldCancelRequestedBy(ctx)
	case appointment.FieldCancelledAt:
		return m.OldCancelledAt(ctx)
	case appointment.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Appointment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AppointmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case appointment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case appointment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case appointment.FieldTherapistID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTherapistID(v)
		return nil
	case appointment.FieldClientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientID(v)
		return nil
	case appointment.FieldTimeSlotID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeSlotID(v)
		return nil
	case appointment.FieldAssessmentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssessmentID(v)
		return nil
	case appointment.FieldStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case appointment.FieldEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case appointment.FieldType:
		v, ok := value.(appointment.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case appointment.FieldStatus:
		v, ok := value.(appointment.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case appointment.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case appointment.FieldCancellationReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancellationReason(v)
		return nil
	case appointment.FieldCancelRequestedBy:
		v, ok := value.(appointment.CancelRequestedBy)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelRequestedBy(v)
		return nil
	case appointment.FieldCancelledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelledAt(v)
		return nil
	case appointment.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Appointment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AppointmentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AppointmentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AppointmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Appointment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AppointmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(appointment.FieldTimeSlotID) {
		fields = append(fields, appointment.FieldTimeSlotID)
	}
	if m.FieldCleared(appointment.FieldAssessmentID) {
		fields = append(fields, appointment.FieldAssessmentID)
	}
	if m.FieldCleared(appointment.FieldNotes) {
		fields = append(fields, appointment.FieldNotes)
	}
	if m.FieldCleared(appointment.FieldCancellationReason) {
		fields = append(fields, appointment.FieldCancellationReason)
	}
	if m.FieldCleared(appointment.FieldCancelRequestedBy) {
		fields = append(fields, appointment.FieldCancelRequestedBy)
	}
	if m.FieldCleared(appointment.FieldCancelledAt) {
		fields = append(fields, appointment.FieldCancelledAt)
	}
	if m.FieldCleared(appointment.FieldCompletedAt) {
		fields = append(fields, appointment.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AppointmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AppointmentMutation) ClearField(name string) error {
	switch name {
	case appointment.FieldTimeSlotID:
		m.ClearTimeSlotID()
		return nil
	case appointment.FieldAssessmentID:
		m.ClearAssessmentID()
		return nil
	case appointment.FieldNotes:
		m.ClearNotes()
		return nil
	case appointment.FieldCancellationReason:
		m.ClearCancellationReason()
		return nil
	case appointment.FieldCancelRequestedBy:
		m.ClearCancelRequestedBy()
		return nil
	case appointment.FieldCancelledAt:
		m.ClearCancelledAt()
		return nil
	case appointment.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Appointment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AppointmentMutation) ResetField(name string) error {
	switch name {
	case appointment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case appointment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case appointment.FieldTherapistID:
		m.ResetTherapistID()
		return nil
	case appointment.FieldClientID:
		m.ResetClientID()
		return nil
	case appointment.FieldTimeSlotID:
		m.ResetTimeSlotID()
		return nil
	case appointment.FieldAssessmentID:
		m.ResetAssessmentID()
		return nil
	case appointment.FieldStartTime:
		m.ResetStartTime()
		return nil
	case appointment.FieldEndTime:
		m.ResetEndTime()
		return nil
	case appointment.FieldType:
		m.ResetType()
		return nil
	case appointment.FieldStatus:
		m.ResetStatus()
		return nil
	case appointment.FieldNotes:
		m.ResetNotes()
		return nil
	case appointment.FieldCancellationReason:
		m.ResetCancellationReason()
		return nil
	case appointment.FieldCancelRequestedBy:
		m.ResetCancelRequestedBy()
		return nil
	case appointment.FieldCancelledAt:
		m.ResetCancelledAt()
		return nil
	case appointment.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Appointment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AppointmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AppointmentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AppointmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AppointmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AppointmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AppointmentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AppointmentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Appointment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AppointmentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Appointment edge %s", name)
}

// MatchResultMutation represents an operation that mutates the MatchResult nodes in the graph.
type MatchResultMutation struct {
	config
	op                          Op
	typ                         string
	id                          *uuid.UUID
	created_at                  *time.Time
	user_id                     *uuid.UUID
	therapist_id                *uuid.UUID
	total_score                 *float64
	addtotal_score              *float64
	breakdown                   *map[string]float64
	compatibility_reasons       *[]string
	appendcompatibility_reasons []string
	potential_concerns          *[]string
	appendpotential_concerns    []string
	clearedFields               map[string]struct{}
	done                        bool
	oldValue                    func(context.Context) (*MatchResult, error)
	predicates                  []predicate.MatchResult
}

var _ ent.Mutation = (*MatchResultMutation)(nil)

// matchresultOption allows management of the mutation configuration using functional options.
type matchresultOption func(*MatchResultMutation)

// newMatchResultMutation creates new mutation for the MatchResult entity.
func newMatchResultMutation(c config, op Op, opts ...matchresultOption) *MatchResultMutation {
	m := &MatchResultMutation{
		config:        c,
		op:            op,
		typ:           TypeMatchResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMatchResultID sets the ID field of the mutation.
func withMatchResultID(id uuid.UUID) matchresultOption {
	return func(m *MatchResultMutation) {
		var (
			err   error
			once  sync.Once
			value *MatchResult
		)
		m.oldValue = func(ctx context.Context) (*MatchResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MatchResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMatchResult sets the old MatchResult of the mutation.
func withMatchResult(node *MatchResult) matchresultOption {
	return func(m *MatchResultMutation) {
		m.oldValue = func(context.Context) (*MatchResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MatchResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MatchResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MatchResult entities.
func (m *MatchResultMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MatchResultMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MatchResultMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MatchResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *MatchResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MatchResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MatchResult entity.
// If the MatchResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MatchResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUserID sets the "user_id" field.
func (m *MatchResultMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *MatchResultMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the MatchResult entity.
// If the MatchResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchResultMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *MatchResultMutation) ResetUserID() {
	m.user_id = nil
}

// SetTherapistID sets the "therapist_id" field.
func (m *MatchResultMutation) SetTherapistID(u uuid.UUID) {
	m.therapist_id = &u
}

// TherapistID returns the value of the "therapist_id" field in the mutation.
func (m *MatchResultMutation) TherapistID() (r uuid.UUID, exists bool) {
	v := m.therapist_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTherapistID returns the old "therapist_id" field's value of the MatchResult entity.
// If the MatchResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchResultMutation) OldTherapistID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTherapistID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTherapistID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTherapistID: %w", err)
	}
	return oldValue.TherapistID, nil
}

// ResetTherapistID resets all changes to the "therapist_id" field.
func (m *MatchResultMutation) ResetTherapistID() {
	m.therapist_id = nil
}

// SetTotalScore sets the "total_score" field.
func (m *MatchResultMutation) SetTotalScore(f float64) {
	m.total_score = &f
	m.addtotal_score = nil
}

// TotalScore returns the value of the "total_score" field in the mutation.
func (m *MatchResultMutation) TotalScore() (r float64, exists bool) {
	v := m.total_score
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalScore returns the old "total_score" field's value of the MatchResult entity.
// If the MatchResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchResultMutation) OldTotalScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalScore: %w", err)
	}
	return oldValue.TotalScore, nil
}

// AddTotalScore adds f to the "total_score" field.
func (m *MatchResultMutation) AddTotalScore(f float64) {
	if m.addtotal_score != nil {
		*m.addtotal_score += f
	} else {
		m.addtotal_score = &f
	}
}

// AddedTotalScore returns the value that was added to the "total_score" field in this mutation.
func (m *MatchResultMutation) AddedTotalScore() (r float64, exists bool) {
	v := m.addtotal_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalScore resets all changes to the "total_score" field.
func (m *MatchResultMutation) ResetTotalScore() {
	m.total_score = nil
	m.addtotal_score = nil
}

// SetBreakdown sets the "breakdown" field.
func (m *MatchResultMutation) SetBreakdown(value map[string]float64) {
	m.breakdown = &value
}

// Breakdown returns the value of the "breakdown" field in the mutation.
func (m *MatchResultMutation) Breakdown() (r map[string]float64, exists bool) {
	v := m.breakdown
	if v == nil {
		return
	}
	return *v, true
}

// OldBreakdown returns the old "breakdown" field's value of the MatchResult entity.
// If the MatchResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchResultMutation) OldBreakdown(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBreakdown is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBreakdown requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBreakdown: %w", err)
	}
	return oldValue.Breakdown, nil
}

// ResetBreakdown resets all changes to the "breakdown" field.
func (m *MatchResultMutation) ResetBreakdown() {
	m.breakdown = nil
}

// SetCompatibilityReasons sets the "compatibility_reasons" field.
func (m *MatchResultMutation) SetCompatibilityReasons(s []string) {
	m.compatibility_reasons = &s
	m.appendcompatibility_reasons = nil
}

// CompatibilityReasons returns the value of the "compatibility_reasons" field in the mutation.
func (m *MatchResultMutation) CompatibilityReasons() (r []string, exists bool) {
	v := m.compatibility_reasons
	if v == nil {
		return
	}
	return *v, true
}

// OldCompatibilityReasons returns the old "compatibility_reasons" field's value of the MatchResult entity.
// If the MatchResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchResultMutation) OldCompatibilityReasons(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompatibilityReasons is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompatibilityReasons requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompatibilityReasons: %w", err)
	}
	return oldValue.CompatibilityReasons, nil
}

// AppendCompatibilityReasons adds s to the "compatibility_reasons" field.
func (m *MatchResultMutation) AppendCompatibilityReasons(s []string) {
	m.appendcompatibility_reasons = append(m.appendcompatibility_reasons, s...)
}

// AppendedCompatibilityReasons returns the list of values that were appended to the "compatibility_reasons" field in this mutation.
func (m *MatchResultMutation) AppendedCompatibilityReasons() ([]string, bool) {
	if len(m.appendcompatibility_reasons) == 0 {
		return nil, false
	}
	return m.appendcompatibility_reasons, true
}

// ClearCompatibilityReasons clears the value of the "compatibility_reasons" field.
func (m *MatchResultMutation) ClearCompatibilityReasons() {
	m.compatibility_reasons = nil
	m.appendcompatibility_reasons = nil
	m.clearedFields[matchresult.FieldCompatibilityReasons] = struct{}{}
}

// CompatibilityReasonsCleared returns if the "compatibility_reasons" field was cleared in this mutation.
func (m *MatchResultMutation) CompatibilityReasonsCleared() bool {
	_, ok := m.clearedFields[matchresult.FieldCompatibilityReasons]
	return ok
}

// ResetCompatibilityReasons resets all changes to the "compatibility_reasons" field.
func (m *MatchResultMutation) ResetCompatibilityReasons() {
	m.compatibility_reasons = nil
	m.appendcompatibility_reasons = nil
	delete(m.clearedFields, matchresult.FieldCompatibilityReasons)
}

// SetPotentialConcerns sets the "potential_concerns" field.
func (m *MatchResultMutation) SetPotentialConcerns(s []string) {
	m.potential_concerns = &s
	m.appendpotential_concerns = nil
}

// PotentialConcerns returns the value of the "potential_concerns" field in the mutation.
func (m *MatchResultMutation) PotentialConcerns() (r []string, exists bool) {
	v := m.potential_concerns
	if v == nil {
		return
	}
	return *v, true
}

// OldPotentialConcerns returns the old "potential_concerns" field's value of the MatchResult entity.
// If the MatchResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchResultMutation) OldPotentialConcerns(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPotentialConcerns is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPotentialConcerns requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPotentialConcerns: %w", err)
	}
	return oldValue.PotentialConcerns, nil
}

// AppendPotentialConcerns adds s to the "potential_concerns" field.
func (m *MatchResultMutation) AppendPotentialConcerns(s []string) {
	m.appendpotential_concerns = append(m.appendpotential_concerns, s...)
}

// AppendedPotentialConcerns returns the list of values that were appended to the "potential_concerns" field in this mutation.
func (m *MatchResultMutation) AppendedPotentialConcerns() ([]string, bool) {
	if len(m.appendpotential_concerns) == 0 {
		return nil, false
	}
	return m.appendpotential_concerns, true
}

// ClearPotentialConcerns clears the value of the "potential_concerns" field.
func (m *MatchResultMutation) ClearPotentialConcerns() {
	m.potential_concerns = nil
	m.appendpotential_concerns = nil
	m.clearedFields[matchresult.FieldPotentialConcerns] = struct{}{}
}

// PotentialConcernsCleared returns if the "potential_concerns" field was cleared in this mutation.
func (m *MatchResultMutation) PotentialConcernsCleared() bool {
	_, ok := m.clearedFields[matchresult.FieldPotentialConcerns]
	return ok
}

// ResetPotentialConcerns resets all changes to the "potential_concerns" field.
func (m *MatchResultMutation) ResetPotentialConcerns() {
	m.potential_concerns = nil
	m.appendpotential_concerns = nil
	delete(m.clearedFields, matchresult.FieldPotentialConcerns)
}

// Where appends a list predicates to the MatchResultMutation builder.
func (m *MatchResultMutation) Where(ps ...predicate.MatchResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MatchResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MatchResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MatchResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MatchResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MatchResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MatchResult).
func (m *MatchResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MatchResultMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, matchresult.FieldCreatedAt)
	}
	if m.user_id != nil {
		fields = append(fields, matchresult.FieldUserID)
	}
	if m.therapist_id != nil {
		fields = append(fields, matchresult.FieldTherapistID)
	}
	if m.total_score != nil {
		fields = append(fields, matchresult.FieldTotalScore)
	}
	if m.breakdown != nil {
		fields = append(fields, matchresult.FieldBreakdown)
	}
	if m.compatibility_reasons != nil {
		fields = append(fields, matchresult.FieldCompatibilityReasons)
	}
	if m.potential_concerns != nil {
		fields = append(fields, matchresult.FieldPotentialConcerns)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MatchResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case matchresult.FieldCreatedAt:
		return m.CreatedAt()
	case matchresult.FieldUserID:
		return m.UserID()
	case matchresult.FieldTherapistID:
		return m.TherapistID()
	case matchresult.FieldTotalScore:
		return m.TotalScore()
	case matchresult.FieldBreakdown:
		return m.Breakdown()
	case matchresult.FieldCompatibilityReasons:
		return m.CompatibilityReasons()
	case matchresult.FieldPotentialConcerns:
		return m.PotentialConcerns()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MatchResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case matchresult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case matchresult.FieldUserID:
		return m.OldUserID(ctx)
	case matchresult.FieldTherapistID:
		return m.OldTherapistID(ctx)
	case matchresult.FieldTotalScore:
		return m.OldTotalScore(ctx)
	case matchresult.FieldBreakdown:
		return m.OldBreakdown(ctx)
	case matchresult.FieldCompatibilityReasons:
		return m.OldCompatibilityReasons(ctx)
	case matchresult.FieldPotentialConcerns:
		return m.OldPotentialConcerns(ctx)
	}
	return nil, fmt.Errorf("unknown MatchResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MatchResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case matchresult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case matchresult.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case matchresult.FieldTherapistID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTherapistID(v)
		return nil
	case matchresult.FieldTotalScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalScore(v)
		return nil
	case matchresult.FieldBreakdown:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBreakdown(v)
		return nil
	case matchresult.FieldCompatibilityReasons:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompatibilityReasons(v)
		return nil
	case matchresult.FieldPotentialConcerns:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPotentialConcerns(v)
		return nil
	}
	return fmt.Errorf("unknown MatchResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MatchResultMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_score != nil {
		fields = append(fields, matchresult.FieldTotalScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MatchResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case matchresult.FieldTotalScore:
		return m.AddedTotalScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MatchResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case matchresult.FieldTotalScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalScore(v)
		return nil
	}
	return fmt.Errorf("unknown MatchResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MatchResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(matchresult.FieldCompatibilityReasons) {
		fields = append(fields, matchresult.FieldCompatibilityReasons)
	}
	if m.FieldCleared(matchresult.FieldPotentialConcerns) {
		fields = append(fields, matchresult.FieldPotentialConcerns)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MatchResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MatchResultMutation) ClearField(name string) error {
	switch name {
	case matchresult.FieldCompatibilityReasons:
		m.ClearCompatibilityReasons()
		return nil
	case matchresult.FieldPotentialConcerns:
		m.ClearPotentialConcerns()
		return nil
	}
	return fmt.Errorf("unknown MatchResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MatchResultMutation) ResetField(name string) error {
	switch name {
	case matchresult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case matchresult.FieldUserID:
		m.ResetUserID()
		return nil
	case matchresult.FieldTherapistID:
		m.ResetTherapistID()
		return nil
	case matchresult.FieldTotalScore:
		m.ResetTotalScore()
		return nil
	case matchresult.FieldBreakdown:
		m.ResetBreakdown()
		return nil
	case matchresult.FieldCompatibilityReasons:
		m.ResetCompatibilityReasons()
		return nil
	case matchresult.FieldPotentialConcerns:
		m.ResetPotentialConcerns()
		return nil
	}
	return fmt.Errorf("unknown MatchResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MatchResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MatchResultMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MatchResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MatchResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MatchResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MatchResultMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MatchResultMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MatchResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MatchResultMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MatchResult edge %s", name)
}

// MentalAssessmentMutation represents an operation that mutates the MentalAssessment nodes in the graph.
type MentalAssessmentMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	created_at             *time.Time
	updated_at             *time.Time
	user_id                *uuid.UUID
	assessment_id          *string
	responses              *[]map[string]interface{}
	appendresponses        []map[string]interface{}
	phq9_score             *int
	addphq9_score          *int
	gad7_score             *int
	addgad7_score          *int
	pss_score              *int
	addpss_score           *int
	who_wellbeing_score    *int
	addwho_wellbeing_score *int
	risk_level             *string
	suicide_risk           *bool
	recommendations        *[]string
	appendrecommendations  []string
	completed_at           *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*MentalAssessment, error)
	predicates             []predicate.MentalAssessment
}

var _ ent.Mutation = (*MentalAssessmentMutation)(nil)

// mentalassessmentOption allows management of the mutation configuration using functional options.
type mentalassessmentOption func(*MentalAssessmentMutation)

// newMentalAssessmentMutation creates new mutation for the MentalAssessment entity.
func newMentalAssessmentMutation(c config, op Op, opts ...mentalassessmentOption) *MentalAssessmentMutation {
	m := &MentalAssessmentMutation{
		config:        c,
		op:            op,
		typ:           TypeMentalAssessment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMentalAssessmentID sets the ID field of the mutation.
func withMentalAssessmentID(id uuid.UUID) mentalassessmentOption {
	return func(m *MentalAssessmentMutation) {
		var (
			err   error
			once  sync.Once
			value *MentalAssessment
		)
		m.oldValue = func(ctx context.Context) (*MentalAssessment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MentalAssessment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMentalAssessment sets the old MentalAssessment of the mutation.
func withMentalAssessment(node *MentalAssessment) mentalassessmentOption {
	return func(m *MentalAssessmentMutation) {
		m.oldValue = func(context.Context) (*MentalAssessment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MentalAssessmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MentalAssessmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MentalAssessment entities.
func (m *MentalAssessmentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MentalAssessmentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MentalAssessmentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MentalAssessment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *MentalAssessmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MentalAssessmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MentalAssessment entity.
// If the MentalAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MentalAssessmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MentalAssessmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MentalAssessmentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MentalAssessmentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MentalAssessment entity.
// If the MentalAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MentalAssessmentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MentalAssessmentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user_id" field.
func (m *MentalAssessmentMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *MentalAssessmentMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the MentalAssessment entity.
// If the MentalAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MentalAssessmentMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *MentalAssessmentMutation) ResetUserID() {
	m.user_id = nil
}

// SetAssessmentID sets the "assessment_id" field.
func (m *MentalAssessmentMutation) SetAssessmentID(s string) {
	m.assessment_id = &s
}

// AssessmentID returns the value of the "assessment_id" field in the mutation.
func (m *MentalAssessmentMutation) AssessmentID() (r string, exists bool) {
	v := m.assessment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAssessmentID returns the old "assessment_id" field's value of the MentalAssessment entity.
// If the MentalAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MentalAssessmentMutation) OldAssessmentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssessmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssessmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssessmentID: %w", err)
	}
	return oldValue.AssessmentID, nil
}

// ResetAssessmentID resets all changes to the "assessment_id" field.
func (m *MentalAssessmentMutation) ResetAssessmentID() {
	m.assessment_id = nil
}

// SetResponses sets the "responses" field.
func (m *MentalAssessmentMutation) SetResponses(value []map[string]interface{}) {
	m.responses = &value
	m.appendresponses = nil
}

// Responses returns the value of the "responses" field in the mutation.
func (m *MentalAssessmentMutation) Responses() (r []map[string]interface{}, exists bool) {
	v := m.responses
	if v == nil {
		return
	}
	return *v, true
}

// OldResponses returns the old "responses" field's value of the MentalAssessment entity.
// If the MentalAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MentalAssessmentMutation) OldResponses(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponses: %w", err)
	}
	return oldValue.Responses, nil
}

// AppendResponses adds value to the "responses" field.
func (m *MentalAssessmentMutation) AppendResponses(value []map[string]interface{}) {
	m.appendresponses = append(m.appendresponses, value...)
}

// AppendedResponses returns the list of values that were appended to the "responses" field in this mutation.
func (m *MentalAssessmentMutation) AppendedResponses() ([]map[string]interface{}, bool) {
	if len(m.appendresponses) == 0 {
		return nil, false
	}
	return m.appendresponses, true
}

// ResetResponses resets all changes to the "responses" field.
func (m *MentalAssessmentMutation) ResetResponses() {
	m.responses = nil
	m.appendresponses = nil
}

// SetPhq9Score sets the "phq9_score" field.
func (m *MentalAssessmentMutation) SetPhq9Score(i int) {
	m.phq9_score = &i
	m.addphq9_score = nil
}

// Phq9Score returns the value of the "phq9_score" field in the mutation.
func (m *MentalAssessmentMutation) Phq9Score() (r int, exists bool) {
	v := m.phq9_score
	if v == nil {
		return
	}
	return *v, true
}

// OldPhq9Score returns the old "phq9_score" field's value of the MentalAssessment entity.
// If the MentalAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MentalAssessmentMutation) OldPhq9Score(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhq9Score is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhq9Score requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhq9Score: %w", err)
	}
	return oldValue.Phq9Score, nil
}

// AddPhq9Score adds i to the "phq9_score" field.
func (m *MentalAssessmentMutation) AddPhq9Score(i int) {
	if m.addphq9_score != nil {
		*m.addphq9_score += i
	} else {
		m.addphq9_score = &i
	}
}

// AddedPhq9Score returns the value that was added to the "phq9_score" field in this mutation.
func (m *MentalAssessmentMutation) AddedPhq9Score() (r int, exists bool) {
	v := m.addphq9_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetPhq9Score resets all changes to the "phq9_score" field.
func (m *MentalAssessmentMutation) ResetPhq9Score() {
	m.phq9_score = nil
	m.addphq9_score = nil
}

// SetGad7Score sets the "gad7_score" field.
func (m *MentalAssessmentMutation) SetGad7Score(i int) {
	m.gad7_score = &i
	m.addgad7_score = nil
}

// Gad7Score returns the value of the "gad7_score" field in the mutation.
func (m *MentalAssessmentMutation) Gad7Score() (r int, exists bool) {
	v := m.gad7_score
	if v == nil {
		return
	}
	return *v, true
}

// OldGad7Score returns the old "gad7_score" field's value of the MentalAssessment entity.
// If the MentalAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MentalAssessmentMutation) OldGad7Score(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGad7Score is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGad7Score requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGad7Score: %w", err)
	}
	return oldValue.Gad7Score, nil
}

// AddGad7Score adds i to the "gad7_score" field.
func (m *MentalAssessmentMutation) AddGad7Score(i int) {
	if m.addgad7_score != nil {
		*m.addgad7_score += i
	} else {
		m.addgad7_score = &i
	}
}

// AddedGad7Score returns the value that was added to the "gad7_score" field in this mutation.
func (m *MentalAssessmentMutation) AddedGad7Score() (r int, exists bool) {
	v := m.addgad7_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetGad7Score resets all changes to the "gad7_score" field.
func (m *MentalAssessmentMutation) ResetGad7Score() {
	m.gad7_score = nil
	m.addgad7_score = nil
}

// SetPssScore sets the "pss_score" field.
func (m *MentalAssessmentMutation) SetPssScore(i int) {
	m.pss_score = &i
	m.addpss_score = nil
}

// PssScore returns the value of the "pss_score" field in the mutation.
func (m *MentalAssessmentMutation) PssScore() (r int, exists bool) {
	v := m.pss_score
	if v == nil {
		return
	}
	return *v, true
}

// OldPssScore returns the old "pss_score" field's value of the MentalAssessment entity.
// If the MentalAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MentalAssessmentMutation) OldPssScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPssScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPssScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPssScore: %w", err)
	}
	return oldValue.PssScore, nil
}

// AddPssScore adds i to the "pss_score" field.
func (m *MentalAssessmentMutation) AddPssScore(i int) {
	if m.addpss_score != nil {
		*m.addpss_score += i
	} else {
		m.addpss_score = &i
	}
}

// AddedPssScore returns the value that was added to the "pss_score" field in this mutation.
func (m *MentalAssessmentMutation) AddedPssScore() (r int, exists bool) {
	v := m.addpss_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetPssScore resets all changes to the "pss_score" field.
func (m *MentalAssessmentMutation) ResetPssScore() {
	m.pss_score = nil
	m.addpss_score = nil
}

// SetWhoWellbeingScore sets the "who_wellbeing_score" field.
func (m *MentalAssessmentMutation) SetWhoWellbeingScore(i int) {
	m.who_wellbeing_score = &i
	m.addwho_wellbeing_score = nil
}

// WhoWellbeingScore returns the value of the "who_wellbeing_score" field in the mutation.
func (m *MentalAssessmentMutation) WhoWellbeingScore() (r int, exists bool) {
	v := m.who_wellbeing_score
	if v == nil {
		return
	}
	return *v, true
}

// OldWhoWellbeingScore returns the old "who_wellbeing_score" field's value of the MentalAssessment entity.
// If the MentalAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MentalAssessmentMutation) OldWhoWellbeingScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWhoWellbeingScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWhoWellbeingScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWhoWellbeingScore: %w", err)
	}
	return oldValue.WhoWellbeingScore, nil
}

// AddWhoWellbeingScore adds i to the "who_wellbeing_score" field.
func (m *MentalAssessmentMutation) AddWhoWellbeingScore(i int) {
	if m.addwho_wellbeing_score != nil {
		*m.addwho_wellbeing_score += i
	} else {
		m.addwho_wellbeing_score = &i
	}
}

// AddedWhoWellbeingScore returns the value that was added to the "who_wellbeing_score" field in this mutation.
func (m *MentalAssessmentMutation) AddedWhoWellbeingScore() (r int, exists bool) {
	v := m.addwho_wellbeing_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetWhoWellbeingScore resets all changes to the "who_wellbeing_score" field.
func (m *MentalAssessmentMutation) ResetWhoWellbeingScore() {
	m.who_wellbeing_score = nil
	m.addwho_wellbeing_score = nil
}

// SetRiskLevel sets the "risk_level" field.
func (m *MentalAssessmentMutation) SetRiskLevel(s string) {
	m.risk_level = &s
}

// RiskLevel returns the value of the "risk_level" field in the mutation.
func (m *MentalAssessmentMutation) RiskLevel() (r string, exists bool) {
	v := m.risk_level
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskLevel returns the old "risk_level" field's value of the MentalAssessment entity.
// If the MentalAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MentalAssessmentMutation) OldRiskLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskLevel: %w", err)
	}
	return oldValue.RiskLevel, nil
}

// ResetRiskLevel resets all changes to the "risk_level" field.
func (m *MentalAssessmentMutation) ResetRiskLevel() {
	m.risk_level = nil
}

// SetSuicideRisk sets the "suicide_risk" field.
func (m *MentalAssessmentMutation) SetSuicideRisk(b bool) {
	m.suicide_risk = &b
}

// SuicideRisk returns the value of the "suicide_risk" field in the mutation.
func (m *MentalAssessmentMutation) SuicideRisk() (r bool, exists bool) {
	v := m.suicide_risk
	if v == nil {
		return
	}
	return *v, true
}

// OldSuicideRisk returns the old "suicide_risk" field's value of the MentalAssessment entity.
// If the MentalAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MentalAssessmentMutation) OldSuicideRisk(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuicideRisk is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuicideRisk requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuicideRisk: %w", err)
	}
	return oldValue.SuicideRisk, nil
}

// ResetSuicideRisk resets all changes to the "suicide_risk" field.
func (m *MentalAssessmentMutation) ResetSuicideRisk() {
	m.suicide_risk = nil
}

// SetRecommendations sets the "recommendations" field.
func (m *MentalAssessmentMutation) SetRecommendations(s []string) {
	m.recommendations = &s
	m.appendrecommendations = nil
}

// Recommendations returns the value of the "recommendations" field in the mutation.
func (m *MentalAssessmentMutation) Recommendations() (r []string, exists bool) {
	v := m.recommendations
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendations returns the old "recommendations" field's value of the MentalAssessment entity.
// If the MentalAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MentalAssessmentMutation) OldRecommendations(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendations: %w", err)
	}
	return oldValue.Recommendations, nil
}

// AppendRecommendations adds s to the "recommendations" field.
func (m *MentalAssessmentMutation) AppendRecommendations(s []string) {
	m.appendrecommendations = append(m.appendrecommendations, s...)
}

// AppendedRecommendations returns the list of values that were appended to the "recommendations" field in this mutation.
func (m *MentalAssessmentMutation) AppendedRecommendations() ([]string, bool) {
	if len(m.appendrecommendations) == 0 {
		return nil, false
	}
	return m.appendrecommendations, true
}

// ClearRecommendations clears the value of the "recommendations" field.
func (m *MentalAssessmentMutation) ClearRecommendations() {
	m.recommendations = nil
	m.appendrecommendations = nil
	m.clearedFields[mentalassessment.FieldRecommendations] = struct{}{}
}

// RecommendationsCleared returns if the "recommendations" field was cleared in this mutation.
func (m *MentalAssessmentMutation) RecommendationsCleared() bool {
	_, ok := m.clearedFields[mentalassessment.FieldRecommendations]
	return ok
}

// ResetRecommendations resets all changes to the "recommendations" field.
func (m *MentalAssessmentMutation) ResetRecommendations() {
	m.recommendations = nil
	m.appendrecommendations = nil
	delete(m.clearedFields, mentalassessment.FieldRecommendations)
}

// SetCompletedAt sets the "completed_at" field.
func (m *MentalAssessmentMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *MentalAssessmentMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the MentalAssessment entity.
// If the MentalAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MentalAssessmentMutation) OldCompletedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *MentalAssessmentMutation) ResetCompletedAt() {
	m.completed_at = nil
}

// Where appends a list predicates to the MentalAssessmentMutation builder.
func (m *MentalAssessmentMutation) Where(ps ...predicate.MentalAssessment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MentalAssessmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MentalAssessmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MentalAssessment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MentalAssessmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MentalAssessmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MentalAssessment).
func (m *MentalAssessmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MentalAssessmentMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.created_at != nil {
		fields = append(fields, mentalassessment.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, mentalassessment.FieldUpdatedAt)
	}
	if m.user_id != nil {
		fields = append(fields, mentalassessment.FieldUserID)
	}
	if m.assessment_id != nil {
		fields = append(fields, mentalassessment.FieldAssessmentID)
	}
	if m.responses != nil {
		fields = append(fields, mentalassessment.FieldResponses)
	}
	if m.phq9_score != nil {
		fields = append(fields, mentalassessment.FieldPhq9Score)
	}
	if m.gad7_score != nil {
		fields = append(fields, mentalassessment.FieldGad7Score)
	}
	if m.pss_score != nil {
		fields = append(fields, mentalassessment.FieldPssScore)
	}
	if m.who_wellbeing_score != nil {
		fields = append(fields, mentalassessment.FieldWhoWellbeingScore)
	}
	if m.risk_level != nil {
		fields = append(fields, mentalassessment.FieldRiskLevel)
	}
	if m.suicide_risk != nil {
		fields = append(fields, mentalassessment.FieldSuicideRisk)
	}
	if m.recommendations != nil {
		fields = append(fields, mentalassessment.FieldRecommendations)
	}
	if m.completed_at != nil {
		fields = append(fields, mentalassessment.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MentalAssessmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case mentalassessment.FieldCreatedAt:
		return m.CreatedAt()
	case mentalassessment.FieldUpdatedAt:
		return m.UpdatedAt()
	case mentalassessment.FieldUserID:
		return m.UserID()
	case mentalassessment.FieldAssessmentID:
		return m.AssessmentID()
	case mentalassessment.FieldResponses:
		return m.Responses()
	case mentalassessment.FieldPhq9Score:
		return m.Phq9Score()
	case mentalassessment.FieldGad7Score:
		return m.Gad7Score()
	case mentalassessment.FieldPssScore:
		return m.PssScore()
	case mentalassessment.FieldWhoWellbeingScore:
		return m.WhoWellbeingScore()
	case mentalassessment.FieldRiskLevel:
		return m.RiskLevel()
	case mentalassessment.FieldSuicideRisk:
		return m.SuicideRisk()
	case mentalassessment.FieldRecommendations:
		return m.Recommendations()
	case mentalassessment.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MentalAssessmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case mentalassessment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case mentalassessment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case mentalassessment.FieldUserID:
		return m.OldUserID(ctx)
	case mentalassessment.FieldAssessmentID:
		return m.OldAssessmentID(ctx)
	case mentalassessment.FieldResponses:
		return m.OldResponses(ctx)
	case mentalassessment.FieldPhq9Score:
		return m.OldPhq9Score(ctx)
	case mentalassessment.FieldGad7Score:
		return m.OldGad7Score(ctx)
	case mentalassessment.FieldPssScore:
		return m.OldPssScore(ctx)
	case mentalassessment.FieldWhoWellbeingScore:
		return m.OldWhoWellbeingScore(ctx)
	case mentalassessment.FieldRiskLevel:
		return m.OldRiskLevel(ctx)
	case mentalassessment.FieldSuicideRisk:
		return m.OldSuicideRisk(ctx)
	case mentalassessment.FieldRecommendations:
		return m.OldRecommendations(ctx)
	case mentalassessment.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MentalAssessment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MentalAssessmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case mentalassessment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case mentalassessment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case mentalassessment.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case mentalassessment.FieldAssessmentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssessmentID(v)
		return nil
	case mentalassessment.FieldResponses:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponses(v)
		return nil
	case mentalassessment.FieldPhq9Score:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhq9Score(v)
		return nil
	case mentalassessment.FieldGad7Score:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGad7Score(v)
		return nil
	case mentalassessment.FieldPssScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPssScore(v)
		return nil
	case mentalassessment.FieldWhoWellbeingScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWhoWellbeingScore(v)
		return nil
	case mentalassessment.FieldRiskLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskLevel(v)
		return nil
	case mentalassessment.FieldSuicideRisk:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuicideRisk(v)
		return nil
	case mentalassessment.FieldRecommendations:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendations(v)
		return nil
	case mentalassessment.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MentalAssessment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MentalAssessmentMutation) AddedFields() []string {
	var fields []string
	if m.addphq9_score != nil {
		fields = append(fields, mentalassessment.FieldPhq9Score)
	}
	if m.addgad7_score != nil {
		fields = append(fields, mentalassessment.FieldGad7Score)
	}
	if m.addpss_score != nil {
		fields = append(fields, mentalassessment.FieldPssScore)
	}
	if m.addwho_wellbeing_score != nil {
		fields = append(fields, mentalassessment.FieldWhoWellbeingScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MentalAssessmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case mentalassessment.FieldPhq9Score:
		return m.AddedPhq9Score()
	case mentalassessment.FieldGad7Score:
		return m.AddedGad7Score()
	case mentalassessment.FieldPssScore:
		return m.AddedPssScore()
	case mentalassessment.FieldWhoWellbeingScore:
		return m.AddedWhoWellbeingScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MentalAssessmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case mentalassessment.FieldPhq9Score:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPhq9Score(v)
		return nil
	case mentalassessment.FieldGad7Score:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGad7Score(v)
		return nil
	case mentalassessment.FieldPssScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPssScore(v)
		return nil
	case mentalassessment.FieldWhoWellbeingScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWhoWellbeingScore(v)
		return nil
	}
	return fmt.Errorf("unknown MentalAssessment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MentalAssessmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(mentalassessment.FieldRecommendations) {
		fields = append(fields, mentalassessment.FieldRecommendations)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MentalAssessmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MentalAssessmentMutation) ClearField(name string) error {
	switch name {
	case mentalassessment.FieldRecommendations:
		m.ClearRecommendations()
		return nil
	}
	return fmt.Errorf("unknown MentalAssessment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MentalAssessmentMutation) ResetField(name string) error {
	switch name {
	case mentalassessment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case mentalassessment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case mentalassessment.FieldUserID:
		m.ResetUserID()
		return nil
	case mentalassessment.FieldAssessmentID:
		m.ResetAssessmentID()
		return nil
	case mentalassessment.FieldResponses:
		m.ResetResponses()
		return nil
	case mentalassessment.FieldPhq9Score:
		m.ResetPhq9Score()
		return nil
	case mentalassessment.FieldGad7Score:
		m.ResetGad7Score()
		return nil
	case mentalassessment.FieldPssScore:
		m.ResetPssScore()
		return nil
	case mentalassessment.FieldWhoWellbeingScore:
		m.ResetWhoWellbeingScore()
		return nil
	case mentalassessment.FieldRiskLevel:
		m.ResetRiskLevel()
		return nil
	case mentalassessment.FieldSuicideRisk:
		m.ResetSuicideRisk()
		return nil
	case mentalassessment.FieldRecommendations:
		m.ResetRecommendations()
		return nil
	case mentalassessment.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown MentalAssessment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MentalAssessmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MentalAssessmentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MentalAssessmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MentalAssessmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MentalAssessmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MentalAssessmentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MentalAssessmentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MentalAssessment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MentalAssessmentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MentalAssessment edge %s", name)
}

// TherapistProfileMutation represents an operation that mutates the TherapistProfile nodes in the graph.
type TherapistProfileMutation struct {
	config
	op                          Op
	typ                         string
	id                          *uuid.UUID
	created_at                  *time.Time
	updated_at                  *time.Time
	user_id                     *uuid.UUID
	full_name                   *string
	gender                      *therapistprofile.Gender
	license_type                *string
	years_experience            *int
	addyears_experience         *int
	years_private_practice      *int
	addyears_private_practice   *int
	specializations             *[]string
	appendspecializations       []string
	therapy_approaches          *[]string
	appendtherapy_approaches    []string
	client_demographics         *[]string
	appendclient_demographics   []string
	severity_levels             *[]string
	appendseverity_levels       []string
	crisis_intervention_trained *bool
	trauma_informed_certified   *bool
	languages                   *[]string
	appendlanguages             []string
	availability_slots          *[]map[string]string
	appendavailability_slots    []map[string]string
	session_durations           *[]int
	appendsession_durations     []int
	rate_individual             *float64
	addrate_individual          *float64
	rate_couples                *float64
	addrate_couples             *float64
	rate_family                 *float64
	addrate_family              *float64
	rate_group                  *float64
	addrate_group               *float64
	sliding_scale_available     *bool
	insurance_accepted          *[]string
	appendinsurance_accepted    []string
	location                    *string
	services_offered            *[]string
	appendservices_offered      []string
	emergency_availability      *bool
	bio                         *string
	status                      *therapistprofile.Status
	clearedFields               map[string]struct{}
	done                        bool
	oldValue                    func(context.Context) (*TherapistProfile, error)
	predicates                  []predicate.TherapistProfile
}

var _ ent.Mutation = (*TherapistProfileMutation)(nil)

// therapistprofileOption allows management of the mutation configuration using functional options.
type therapistprofileOption func(*TherapistProfileMutation)

// newTherapistProfileMutation creates new mutation for the TherapistProfile entity.
func newTherapistProfileMutation(c config, op Op, opts ...therapistprofileOption) *TherapistProfileMutation {
	m := &TherapistProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeTherapistProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTherapistProfileID sets the ID field of the mutation.
func withTherapistProfileID(id uuid.UUID) therapistprofileOption {
	return func(m *TherapistProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *TherapistProfile
		)
		m.oldValue = func(ctx context.Context) (*TherapistProfile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TherapistProfile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTherapistProfile sets the old TherapistProfile of the mutation.
func withTherapistProfile(node *TherapistProfile) therapistprofileOption {
	return func(m *TherapistProfileMutation) {
		m.oldValue = func(context.Context) (*TherapistProfile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TherapistProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TherapistProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TherapistProfile entities.
func (m *TherapistProfileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TherapistProfileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TherapistProfileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TherapistProfile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *TherapistProfileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TherapistProfileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TherapistProfile entity.
// If the TherapistProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapistProfileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TherapistProfileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TherapistProfileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TherapistProfileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TherapistProfile entity.
// If the TherapistProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapistProfileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TherapistProfileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user_id" field.
func (m *TherapistProfileMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *TherapistProfileMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the TherapistProfile entity.
// If the TherapistProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapistProfileMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *TherapistProfileMutation) ResetUserID() {
	m.user_id = nil
}

// SetFullName sets the "full_name" field.
func (m *TherapistProfileMutation) SetFullName(s string) {
	m.full_name = &s
}

// FullName returns the value of the "full_name" field in the mutation.
func (m *TherapistProfileMutation) FullName() (r string, exists bool) {
	v := m.full_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFullName returns the old "full_name" field's value of the TherapistProfile entity.
// If the TherapistProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapistProfileMutation) OldFullName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullName: %w", err)
	}
	return oldValue.FullName, nil
}

// ResetFullName resets all changes to the "full_name" field.
func (m *TherapistProfileMutation) ResetFullName() {
	m.full_name = nil
}

// SetGender sets the "gender" field.
func (m *TherapistProfileMutation) SetGender(t therapistprofile.Gender) {
	m.gender = &t
}

// Gender returns the value of the "gender" field in the mutation.
func (m *TherapistProfileMutation) Gender() (r therapistprofile.Gender, exists bool) {
	v := m.gender
	if v == nil {
		return
	}
	return *v, true
}

// OldGender returns the old "gender" field's value of the TherapistProfile entity.
// If the TherapistProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapistProfileMutation) OldGender(ctx context.Context) (v therapistprofile.Gender, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGender is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGender requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGender: %w", err)
	}
	return oldValue.Gender, nil
}

// ResetGender resets all changes to the "gender" field.
func (m *TherapistProfileMutation) ResetGender() {
	m.gender = nil
}

// SetLicenseType sets the "license_type" field.
func (m *TherapistProfileMutation) SetLicenseType(s string) {
	m.license_type = &s
}

// LicenseType returns the value of the "license_type" field in the mutation.
func (m *TherapistProfileMutation) LicenseType() (r string, exists bool) {
	v := m.license_type
	if v == nil {
		return
	}
	return *v, true
}

// OldLicenseType returns the old "license_type" field's value of the TherapistProfile entity.
// If the TherapistProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapistProfileMutation) OldLicenseType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLicenseType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLicenseType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLicenseType: %w", err)
	}
	return oldValue.LicenseType, nil
}

// ResetLicenseType resets all changes to the "license_type" field.
func (m *TherapistProfileMutation) ResetLicenseType() {
	m.license_type = nil
}

// SetYearsExperience sets the "years_experience" field.
func (m *TherapistProfileMutation) SetYearsExperience(i int) {
	m.years_experience = &i
	m.addyears_experience = nil
}

// YearsExperience returns the value of the "years_experience" field in the mutation.
func (m *TherapistProfileMutation) YearsExperience() (r int, exists bool) {
	v := m.years_experience
	if v == nil {
		return
	}
	return *v, true
}

// OldYearsExperience returns the old "years_experience" field's value of the TherapistProfile entity.
// If the TherapistProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapistProfileMutation) OldYearsExperience(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYearsExperience is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYearsExperience requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYearsExperience: %w", err)
	}
	return oldValue.YearsExperience, nil
}

// AddYearsExperience adds i to the "years_experience" field.
func (m *TherapistProfileMutation) AddYearsExperience(i int) {
	if m.addyears_experience != nil {
		*m.addyears_experience += i
	} else {
		m.addyears_experience = &i
	}
}

// AddedYearsExperience returns the value that was added to the "years_experience" field in this mutation.
func (m *TherapistProfileMutation) AddedYearsExperience() (r int, exists bool) {
	v := m.addyears_experience
	if v == nil {
		return
	}
	return *v, true
}

// ResetYearsExperience resets all changes to the "years_experience" field.
func (m *TherapistProfileMutation) ResetYearsExperience() {
	m.years_experience = nil
	m.addyears_experience = nil
}

// SetYearsPrivatePractice sets the "years_private_practice" field.
func (m *TherapistProfileMutation) SetYearsPrivatePractice(i int) {
	m.years_private_practice = &i
	m.addyears_private_practice = nil
}

// YearsPrivatePractice returns the value of the "years_private_practice" field in the mutation.
func (m *TherapistProfileMutation) YearsPrivatePractice() (r int, exists bool) {
	v := m.years_private_practice
	if v == nil {
		return
	}
	return *v, true
}

// OldYearsPrivatePractice returns the old "years_private_practice" field's value of the TherapistProfile entity.
// If the TherapistProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapistProfileMutation) OldYearsPrivatePractice(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYearsPrivatePractice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYearsPrivatePractice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYearsPrivatePractice: %w", err)
	}
	return oldValue.YearsPrivatePractice, nil
}

// AddYearsPrivatePractice adds i to the "years_private_practice" field.
func (m *TherapistProfileMutation) AddYearsPrivatePractice(i int) {
	if m.addyears_private_practice != nil {
		*m.addyears_private_practice += i
	} else {
		m.addyears_private_practice = &i
	}
}

// AddedYearsPrivatePractice returns the value that was added to the "years_private_practice" field in this mutation.
func (m *TherapistProfileMutation) AddedYearsPrivatePractice() (r int, exists bool) {
	v := m.addyears_private_practice
	if v == nil {
		return
	}
	return *v, true
}

// ResetYearsPrivatePractice resets all changes to the "years_private_practice" field.
func (m *TherapistProfileMutation) ResetYearsPrivatePractice() {
	m.years_private_practice = nil
	m.addyears_private_practice = nil
}

// SetSpecializations sets the "specializations" field.
func (m *TherapistProfileMutation) SetSpecializations(s []string) {
	m.specializations = &s
	m.appendspecializations = nil
}

// Specializations returns the value of the "specializations" field in the mutation.
func (m *TherapistProfileMutation) Specializations() (r []string, exists bool) {
	v := m.specializations
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecializations returns the old "specializations" field's value of the TherapistProfile entity.
// If the TherapistProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapistProfileMutation) OldSpecializations(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecializations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecializations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecializations: %w", err)
	}
	return oldValue.Specializations, nil
}

// AppendSpecializations adds s to the "specializations" field.
func (m *TherapistProfileMutation) AppendSpecializations(s []string) {
	m.appendspecializations = append(m.appendspecializations, s...)
}

// AppendedSpecializations returns the list of values that were appended to the "specializations" field in this mutation.
func (m *TherapistProfileMutation) AppendedSpecializations() ([]string, bool) {
	if len(m.appendspecializations) == 0 {
		return nil, false
	}
	return m.appendspecializations, true
}

// ClearSpecializations clears the value of the "specializations" field.
func (m *TherapistProfileMutation) ClearSpecializations() {
	m.specializations = nil
	m.appendspecializations = nil
	m.clearedFields[therapistprofile.FieldSpecializations] = struct{}{}
}

// SpecializationsCleared returns if the "specializations" field was cleared in this mutation.
func (m *TherapistProfileMutation) SpecializationsCleared() bool {
	_, ok := m.clearedFields[therapistprofile.FieldSpecializations]
	return ok
}

// ResetSpecializations resets all changes to the "specializations" field.
func (m *TherapistProfileMutation) ResetSpecializations() {
	m.specializations = nil
	m.appendspecializations = nil
	delete(m.clearedFields, therapistprofile.FieldSpecializations)
}

// SetTherapyApproaches sets the "therapy_approaches" field.
func (m *TherapistProfileMutation) SetTherapyApproaches(s []string) {
	m.therapy_approaches = &s
	m.appendtherapy_approaches = nil
}

// TherapyApproaches returns the value of the "therapy_approaches" field in the mutation.
func (m *TherapistProfileMutation) TherapyApproaches() (r []string, exists bool) {
	v := m.therapy_approaches
	if v == nil {
		return
	}
	return *v, true
}

// OldTherapyApproaches returns the old "therapy_approaches" field's value of the TherapistProfile entity.
// If the TherapistProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapistProfileMutation) OldTherapyApproaches(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTherapyApproaches is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTherapyApproaches requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTherapyApproaches: %w", err)
	}
	return oldValue.TherapyApproaches, nil
}

// AppendTherapyApproaches adds s to the "therapy_approaches" field.
func (m *TherapistProfileMutation) AppendTherapyApproaches(s []string) {
	m.appendtherapy_approaches = append(m.appendtherapy_approaches, s...)
}

// AppendedTherapyApproaches returns the list of values that were appended to the "therapy_approaches" field in this mutation.
func (m *TherapistProfileMutation) AppendedTherapyApproaches() ([]string, bool) {
	if len(m.appendtherapy_approaches) == 0 {
		return nil, false
	}
	return m.appendtherapy_approaches, true
}

// ClearTherapyApproaches clears the value of the "therapy_approaches" field.
func (m *TherapistProfileMutation) ClearTherapyApproaches() {
	m.therapy_approaches = nil
	m.appendtherapy_approaches = nil
	m.clearedFields[therapistprofile.FieldTherapyApproaches] = struct{}{}
}

// TherapyApproachesCleared returns if the "therapy_approaches" field was cleared in this mutation.
func (m *TherapistProfileMutation) TherapyApproachesCleared() bool {
	_, ok := m.clearedFields[therapistprofile.FieldTherapyApproaches]
	return ok
}

// ResetTherapyApproaches resets all changes to the "therapy_approaches" field.
func (m *TherapistProfileMutation) ResetTherapyApproaches() {
	m.therapy_approaches = nil
	m.appendtherapy_approaches = nil
	delete(m.clearedFields, therapistprofile.FieldTherapyApproaches)
}

// SetClientDemographics sets the "client_demographics" field.
func (m *TherapistProfileMutation) SetClientDemographics(s []string) {
	m.client_demographics = &s
	m.appendclient_demographics = nil
}

// ClientDemographics returns the value of the "client_demographics" field in the mutation.
func (m *TherapistProfileMutation) ClientDemographics() (r []string, exists bool) {
	v := m.client_demographics
	if v == nil {
		return
	}
	return *v, true
}

// OldClientDemographics returns the old "client_demographics" field's value of the TherapistProfile entity.
// If the TherapistProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapistProfileMutation) OldClientDemographics(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientDemographics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientDemographics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientDemographics: %w", err)
	}
	return oldValue.ClientDemographics, nil
}

// AppendClientDemographics adds s to the "client_demographics" field.
func (m *TherapistProfileMutation) AppendClientDemographics(s []string) {
	m.appendclient_demographics = append(m.appendclient_demographics, s...)
}

// AppendedClientDemographics returns the list of values that were appended to the "client_demographics" field in this mutation.
func (m *TherapistProfileMutation) AppendedClientDemographics() ([]string, bool) {
	if len(m.appendclient_demographics) == 0 {
		return nil, false
	}
	return m.appendclient_demographics, true
}

// ClearClientDemographics clears the value of the "client_demographics" field.
func (m *TherapistProfileMutation) ClearClientDemographics() {
	m.client_demographics = nil
	m.appendclient_demographics = nil
	m.clearedFields[therapistprofile.FieldClientDemographics] = struct{}{}
}

// ClientDemographicsCleared returns if the "client_demographics" field was cleared in this mutation.
func (m *TherapistProfileMutation) ClientDemographicsCleared() bool {
	_, ok := m.clearedFields[therapistprofile.FieldClientDemographics]
	return ok
}

// ResetClientDemographics resets all changes to the "client_demographics" field.
func (m *TherapistProfileMutation) ResetClientDemographics() {
	m.client_demographics = nil
	m.appendclient_demographics = nil
	delete(m.clearedFields, therapistprofile.FieldClientDemographics)
}

// SetSeverityLevels sets the "severity_levels" field.
func (m *TherapistProfileMutation) SetSeverityLevels(s []string) {
	m.severity_levels = &s
	m.appendseverity_levels = nil
}

// SeverityLevels returns the value of the "severity_levels" field in the mutation.
func (m *TherapistProfileMutation) SeverityLevels() (r []string, exists bool) {
	v := m.severity_levels
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverityLevels returns the old "severity_levels" field's value of the TherapistProfile entity.
// If the TherapistProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapistProfileMutation) OldSeverityLevels(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverityLevels is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverityLevels requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverityLevels: %w", err)
	}
	return oldValue.SeverityLevels, nil
}

// AppendSeverityLevels adds s to the "severity_levels" field.
func (m *TherapistProfileMutation) AppendSeverityLevels(s []string) {
	m.appendseverity_levels = append(m.appendseverity_levels, s...)
}

// AppendedSeverityLevels returns the list of values that were appended to the "severity_levels" field in this mutation.
func (m *TherapistProfileMutation) AppendedSeverityLevels() ([]string, bool) {
	if len(m.appendseverity_levels) == 0 {
		return nil, false
	}
	return m.appendseverity_levels, true
}

// ClearSeverityLevels clears the value of the "severity_levels" field.
func (m *TherapistProfileMutation) ClearSeverityLevels() {
	m.severity_levels = nil
	m.appendseverity_levels = nil
	m.clearedFields[therapistprofile.FieldSeverityLevels] = struct{}{}
}

// SeverityLevelsCleared returns if the "severity_levels" field was cleared in this mutation.
func (m *TherapistProfileMutation) SeverityLevelsCleared() bool {
	_, ok := m.clearedFields[therapistprofile.FieldSeverityLevels]
	return ok
}

// ResetSeverityLevels resets all changes to the "severity_levels" field.
func (m *TherapistProfileMutation) ResetSeverityLevels() {
	m.severity_levels = nil
	m.appendseverity_levels = nil
	delete(m.clearedFields, therapistprofile.FieldSeverityLevels)
}

// SetCrisisInterventionTrained sets the "crisis_intervention_trained" field.
func (m *TherapistProfileMutation) SetCrisisInterventionTrained(b bool) {
	m.crisis_intervention_trained = &b
}

// CrisisInterventionTrained returns the value of the "crisis_intervention_trained" field in the mutation.
func (m *TherapistProfileMutation) CrisisInterventionTrained() (r bool, exists bool) {
	v := m.crisis_intervention_trained
	if v == nil {
		return
	}
	return *v, true
}

// OldCrisisInterventionTrained returns the old "crisis_intervention_trained" field's value of the TherapistProfile entity.
// If the TherapistProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapistProfileMutation) OldCrisisInterventionTrained(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCrisisInterventionTrained is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCrisisInterventionTrained requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCrisisInterventionTrained: %w", err)
	}
	return oldValue.CrisisInterventionTrained, nil
}

// ResetCrisisInterventionTrained resets all changes to the "crisis_intervention_trained" field.
func (m *TherapistProfileMutation) ResetCrisisInterventionTrained() {
	m.crisis_intervention_trained = nil
}

// SetTraumaInformedCertified sets the "trauma_informed_certified" field.
func (m *TherapistProfileMutation) SetTraumaInformedCertified(b bool) {
	m.trauma_informed_certified = &b
}

// TraumaInformedCertified returns the value of the "trauma_informed_certified" field in the mutation.
func (m *TherapistProfileMutation) TraumaInformedCertified() (r bool, exists bool) {
	v := m.trauma_informed_certified
	if v == nil {
		return
	}
	return *v, true
}

// OldTraumaInformedCertified returns the old "trauma_informed_certified" field's value of the TherapistProfile entity.
// If the TherapistProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapistProfileMutation) OldTraumaInformedCertified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTraumaInformedCertified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTraumaInformedCertified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTraumaInformedCertified: %w", err)
	}
	return oldValue.TraumaInformedCertified, nil
}

// ResetTraumaInformedCertified resets all changes to the "trauma_informed_certified" field.
func (m *TherapistProfileMutation) ResetTraumaInformedCertified() {
	m.trauma_informed_certified = nil
}

// SetLanguages sets the "languages" field.
func (m *TherapistProfileMutation) SetLanguages(s []string) {
	m.languages = &s
	m.appendlanguages = nil
}

// Languages returns the value of the "languages" field in the mutation.
func (m *TherapistProfileMutation) Languages() (r []string, exists bool) {
	v := m.languages
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguages returns the old "languages" field's value of the TherapistProfile entity.
// If the TherapistProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapistProfileMutation) OldLanguages(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguages: %w", err)
	}
	return oldValue.Languages, nil
}

// AppendLanguages adds s to the "languages" field.
func (m *TherapistProfileMutation) AppendLanguages(s []string) {
	m.appendlanguages = append(m.appendlanguages, s...)
}

// AppendedLanguages returns the list of values that were appended to the "languages" field in this mutation.
func (m *TherapistProfileMutation) AppendedLanguages() ([]string, bool) {
	if len(m.appendlanguages) == 0 {
		return nil, false
	}
	return m.appendlanguages, true
}

// ClearLanguages clears the value of the "languages" field.
func (m *TherapistProfileMutation) ClearLanguages() {
	m.languages = nil
	m.appendlanguages = nil
	m.clearedFields[therapistprofile.FieldLanguages] = struct{}{}
}

// LanguagesCleared returns if the "languages" field was cleared in this mutation.
func (m *TherapistProfileMutation) LanguagesCleared() bool {
	_, ok := m.clearedFields[therapistprofile.FieldLanguages]
	return ok
}

// ResetLanguages resets all changes to the "languages" field.
func (m *TherapistProfileMutation) ResetLanguages() {
	m.languages = nil
	m.appendlanguages = nil
	delete(m.clearedFields, therapistprofile.FieldLanguages)
}

// SetAvailabilitySlots sets the "availability_slots" field.
func (m *TherapistProfileMutation) SetAvailabilitySlots(value []map[string]string) {
	m.availability_slots = &value
	m.appendavailability_slots = nil
}

// AvailabilitySlots returns the value of the "availability_slots" field in the mutation.
func (m *TherapistProfileMutation) AvailabilitySlots() (r []map[string]string, exists bool) {
	v := m.availability_slots
	if v == nil {
		return
	}
	return *v, true
}

// OldAvailabilitySlots returns the old "availability_slots" field's value of the TherapistProfile entity.
// If the TherapistProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapistProfileMutation) OldAvailabilitySlots(ctx context.Context) (v []map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvailabilitySlots is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvailabilitySlots requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvailabilitySlots: %w", err)
	}
	return oldValue.AvailabilitySlots, nil
}

// AppendAvailabilitySlots adds value to the "availability_slots" field.
func (m *TherapistProfileMutation) AppendAvailabilitySlots(value []map[string]string) {
	m.appendavailability_slots = append(m.appendavailability_slots, value...)
}

// AppendedAvailabilitySlots returns the list of values that were appended to the "availability_slots" field in this mutation.
func (m *TherapistProfileMutation) AppendedAvailabilitySlots() ([]map[string]string, bool) {
	if len(m.appendavailability_slots) == 0 {
		return nil, false
	}
	return m.appendavailability_slots, true
}

// ClearAvailabilitySlots clears the value of the "availability_slots" field.
func (m *TherapistProfileMutation) ClearAvailabilitySlots() {
	m.availability_slots = nil
	m.appendavailability_slots = nil
	m.clearedFields[therapistprofile.FieldAvailabilitySlots] = struct{}{}
}

// AvailabilitySlotsCleared returns if the "availability_slots" field was cleared in this mutation.
func (m *TherapistProfileMutation) AvailabilitySlotsCleared() bool {
	_, ok := m.clearedFields[therapistprofile.FieldAvailabilitySlots]
	return ok
}

// ResetAvailabilitySlots resets all changes to the "availability_slots" field.
func (m *TherapistProfileMutation) ResetAvailabilitySlots() {
	m.availability_slots = nil
	m.appendavailability_slots = nil
	delete(m.clearedFields, therapistprofile.FieldAvailabilitySlots)
}

// SetSessionDurations sets the "session_durations" field.
func (m *TherapistProfileMutation) SetSessionDurations(i []int) {
	m.session_durations = &i
	m.appendsession_durations = nil
}

// SessionDurations returns the value of the "session_durations" field in the mutation.
func (m *TherapistProfileMutation) SessionDurations() (r []int, exists bool) {
	v := m.session_durations
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionDurations returns the old "session_durations" field's value of the TherapistProfile entity.
// If the TherapistProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapistProfileMutation) OldSessionDurations(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionDurations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionDurations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionDurations: %w", err)
	}
	return oldValue.SessionDurations, nil
}

// AppendSessionDurations adds i to the "session_durations" field.
func (m *TherapistProfileMutation) AppendSessionDurations(i []int) {
	m.appendsession_durations = append(m.appendsession_durations, i...)
}

// AppendedSessionDurations returns the list of values that were appended to the "session_durations" field in this mutation.
func (m *TherapistProfileMutation) AppendedSessionDurations() ([]int, bool) {
	if len(m.appendsession_durations) == 0 {
		return nil, false
	}
	return m.appendsession_durations, true
}

// ClearSessionDurations clears the value of the "session_durations" field.
func (m *TherapistProfileMutation) ClearSessionDurations() {
	m.session_durations = nil
	m.appendsession_durations = nil
	m.clearedFields[therapistprofile.FieldSessionDurations] = struct{}{}
}

// SessionDurationsCleared returns if the "session_durations" field was cleared in this mutation.
func (m *TherapistProfileMutation) SessionDurationsCleared() bool {
	_, ok := m.clearedFields[therapistprofile.FieldSessionDurations]
	return ok
}

// ResetSessionDurations resets all changes to the "session_durations" field.
func (m *TherapistProfileMutation) ResetSessionDurations() {
	m.session_durations = nil
	m.appendsession_durations = nil
	delete(m.clearedFields, therapistprofile.FieldSessionDurations)
}

// SetRateIndividual sets the "rate_individual" field.
func (m *TherapistProfileMutation) SetRateIndividual(f float64) {
	m.rate_individual = &f
	m.addrate_individual = nil
}

// RateIndividual returns the value of the "rate_individual" field in the mutation.
func (m *TherapistProfileMutation) RateIndividual() (r float64, exists bool) {
	v := m.rate_individual
	if v == nil {
		return
	}
	return *v, true
}

// OldRateIndividual returns the old "rate_individual" field's value of the TherapistProfile entity.
// If the TherapistProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapistProfileMutation) OldRateIndividual(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRateIndividual is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRateIndividual requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRateIndividual: %w", err)
	}
	return oldValue.RateIndividual, nil
}

// AddRateIndividual adds f to the "rate_individual" field.
func (m *TherapistProfileMutation) AddRateIndividual(f float64) {
	if m.addrate_individual != nil {
		*m.addrate_individual += f
	} else {
		m.addrate_individual = &f
	}
}

// AddedRateIndividual returns the value that was added to the "rate_individual" field in this mutation.
func (m *TherapistProfileMutation) AddedRateIndividual() (r float64, exists bool) {
	v := m.addrate_individual
	if v == nil {
		return
	}
	return *v, true
}

// ResetRateIndividual resets all changes to the "rate_individual" field.
func (m *TherapistProfileMutation) ResetRateIndividual() {
	m.rate_individual = nil
	m.addrate_individual = nil
}

// SetRateCouples sets the "rate_couples" field.
func (m *TherapistProfileMutation) SetRateCouples(f float64) {
	m.rate_couples = &f
	m.addrate_couples = nil
}

// RateCouples returns the value of the "rate_couples" field in the mutation.
func (m *TherapistProfileMutation) RateCouples() (r float64, exists bool) {
	v := m.rate_couples
	if v == nil {
		return
	}
	return *v, true
}

// OldRateCouples returns the old "rate_couples" field's value of the TherapistProfile entity.
// If the TherapistProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapistProfileMutation) OldRateCouples(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRateCouples is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRateCouples requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRateCouples: %w", err)
	}
	return oldValue.RateCouples, nil
}

// AddRateCouples adds f to the "rate_couples" field.
func (m *TherapistProfileMutation) AddRateCouples(f float64) {
	if m.addrate_couples != nil {
		*m.addrate_couples += f
	} else {
		m.addrate_couples = &f
	}
}

// AddedRateCouples returns the value that was added to the "rate_couples" field in this mutation.
func (m *TherapistProfileMutation) AddedRateCouples() (r float64, exists bool) {
	v := m.addrate_couples
	if v == nil {
		return
	}
	return *v, true
}

// ResetRateCouples resets all changes to the "rate_couples" field.
func (m *TherapistProfileMutation) ResetRateCouples() {
	m.rate_couples = nil
	m.addrate_couples = nil
}

// SetRateFamily sets the "rate_family" field.
func (m *TherapistProfileMutation) SetRateFamily(f float64) {
	m.rate_family = &f
	m.addrate_family = nil
}

// RateFamily returns the value of the "rate_family" field in the mutation.
func (m *TherapistProfileMutation) RateFamily() (r float64, exists bool) {
	v := m.rate_family
	if v == nil {
		return
	}
	return *v, true
}

// OldRateFamily returns the old "rate_family" field's value of the TherapistProfile entity.
// If the TherapistProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapistProfileMutation) OldRateFamily(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRateFamily is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRateFamily requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRateFamily: %w", err)
	}
	return oldValue.RateFamily, nil
}

// AddRateFamily adds f to the "rate_family" field.
func (m *TherapistProfileMutation) AddRateFamily(f float64) {
	if m.addrate_family != nil {
		*m.addrate_family += f
	} else {
		m.addrate_family = &f
	}
}

// AddedRateFamily returns the value that was added to the "rate_family" field in this mutation.
func (m *TherapistProfileMutation) AddedRateFamily() (r float64, exists bool) {
	v := m.addrate_family
	if v == nil {
		return
	}
	return *v, true
}

// ResetRateFamily resets all changes to the "rate_family" field.
func (m *TherapistProfileMutation) ResetRateFamily() {
	m.rate_family = nil
	m.addrate_family = nil
}

// SetRateGroup sets the "rate_group" field.
func (m *TherapistProfileMutation) SetRateGroup(f float64) {
	m.rate_group = &f
	m.addrate_group = nil
}

// RateGroup returns the value of the "rate_group" field in the mutation.
func (m *TherapistProfileMutation) RateGroup() (r float64, exists bool) {
	v := m.rate_group
	if v == nil {
		return
	}
	return *v, true
}

// OldRateGroup returns the old "rate_group" field's value of the TherapistProfile entity.
// If the TherapistProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapistProfileMutation) OldRateGroup(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRateGroup is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRateGroup requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRateGroup: %w", err)
	}
	return oldValue.RateGroup, nil
}

// AddRateGroup adds f to the "rate_group" field.
func (m *TherapistProfileMutation) AddRateGroup(f float64) {
	if m.addrate_group != nil {
		*m.addrate_group += f
	} else {
		m.addrate_group = &f
	}
}

// AddedRateGroup returns the value that was added to the "rate_group" field in this mutation.
func (m *TherapistProfileMutation) AddedRateGroup() (r float64, exists bool) {
	v := m.addrate_group
	if v == nil {
		return
	}
	return *v, true
}

// ResetRateGroup resets all changes to the "rate_group" field.
func (m *TherapistProfileMutation) ResetRateGroup() {
	m.rate_group = nil
	m.addrate_group = nil
}

// SetSlidingScaleAvailable sets the "sliding_scale_available" field.
func (m *TherapistProfileMutation) SetSlidingScaleAvailable(b bool) {
	m.sliding_scale_available = &b
}

// SlidingScaleAvailable returns the value of the "sliding_scale_available" field in the mutation.
func (m *TherapistProfileMutation) SlidingScaleAvailable() (r bool, exists bool) {
	v := m.sliding_scale_available
	if v == nil {
		return
	}
	return *v, true
}

// OldSlidingScaleAvailable returns the old "sliding_scale_available" field's value of the TherapistProfile entity.
// If the TherapistProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapistProfileMutation) OldSlidingScaleAvailable(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlidingScaleAvailable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlidingScaleAvailable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlidingScaleAvailable: %w", err)
	}
	return oldValue.SlidingScaleAvailable, nil
}

// ResetSlidingScaleAvailable resets all changes to the "sliding_scale_available" field.
func (m *TherapistProfileMutation) ResetSlidingScaleAvailable() {
	m.sliding_scale_available = nil
}

// SetInsuranceAccepted sets the "insurance_accepted" field.
func (m *TherapistProfileMutation) SetInsuranceAccepted(s []string) {
	m.insurance_accepted = &s
	m.appendinsurance_accepted = nil
}

// InsuranceAccepted returns the value of the "insurance_accepted" field in the mutation.
func (m *TherapistProfileMutation) InsuranceAccepted() (r []string, exists bool) {
	v := m.insurance_accepted
	if v == nil {
		return
	}
	return *v, true
}

// OldInsuranceAccepted returns the old "insurance_accepted" field's value of the TherapistProfile entity.
// If the TherapistProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapistProfileMutation) OldInsuranceAccepted(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInsuranceAccepted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInsuranceAccepted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInsuranceAccepted: %w", err)
	}
	return oldValue.InsuranceAccepted, nil
}

// AppendInsuranceAccepted adds s to the "insurance_accepted" field.
func (m *TherapistProfileMutation) AppendInsuranceAccepted(s []string) {
	m.appendinsurance_accepted = append(m.appendinsurance_accepted, s...)
}

// AppendedInsuranceAccepted returns the list of values that were appended to the "insurance_accepted" field in this mutation.
func (m *TherapistProfileMutation) AppendedInsuranceAccepted() ([]string, bool) {
	if len(m.appendinsurance_accepted) == 0 {
		return nil, false
	}
	return m.appendinsurance_accepted, true
}

// ClearInsuranceAccepted clears the value of the "insurance_accepted" field.
func (m *TherapistProfileMutation) ClearInsuranceAccepted() {
	m.insurance_accepted = nil
	m.appendinsurance_accepted = nil
	m.clearedFields[therapistprofile.FieldInsuranceAccepted] = struct{}{}
}

// InsuranceAcceptedCleared returns if the "insurance_accepted" field was cleared in this mutation.
func (m *TherapistProfileMutation) InsuranceAcceptedCleared() bool {
	_, ok := m.clearedFields[therapistprofile.FieldInsuranceAccepted]
	return ok
}

// ResetInsuranceAccepted resets all changes to the "insurance_accepted" field.
func (m *TherapistProfileMutation) ResetInsuranceAccepted() {
	m.insurance_accepted = nil
	m.appendinsurance_accepted = nil
	delete(m.clearedFields, therapistprofile.FieldInsuranceAccepted)
}

// SetLocation sets the "location" field.
func (m *TherapistProfileMutation) SetLocation(s string) {
	m.location = &s
}

// Location returns the value of the "location" field in the mutation.
func (m *TherapistProfileMutation) Location() (r string, exists bool) {
	v := m.location
	if v == nil {
		return
	}
	return *v, true
}

// OldLocation returns the old "location" field's value of the TherapistProfile entity.
// If the TherapistProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapistProfileMutation) OldLocation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocation: %w", err)
	}
	return oldValue.Location, nil
}

// ClearLocation clears the value of the "location" field.
func (m *TherapistProfileMutation) ClearLocation() {
	m.location = nil
	m.clearedFields[therapistprofile.FieldLocation] = struct{}{}
}

// LocationCleared returns if the "location" field was cleared in this mutation.
func (m *TherapistProfileMutation) LocationCleared() bool {
	_, ok := m.clearedFields[therapistprofile.FieldLocation]
	return ok
}

// ResetLocation resets all changes to the "location" field.
func (m *TherapistProfileMutation) ResetLocation() {
	m.location = nil
	delete(m.clearedFields, therapistprofile.FieldLocation)
}

// SetServicesOffered sets the "services_offered" field.
func (m *TherapistProfileMutation) SetServicesOffered(s []string) {
	m.services_offered = &s
	m.appendservices_offered = nil
}

// ServicesOffered returns the value of the "services_offered" field in the mutation.
func (m *TherapistProfileMutation) ServicesOffered() (r []string, exists bool) {
	v := m.services_offered
	if v == nil {
		return
	}
	return *v, true
}

// OldServicesOffered returns the old "services_offered" field's value of the TherapistProfile entity.
// If the TherapistProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapistProfileMutation) OldServicesOffered(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServicesOffered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServicesOffered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServicesOffered: %w", err)
	}
	return oldValue.ServicesOffered, nil
}

// AppendServicesOffered adds s to the "services_offered" field.
func (m *TherapistProfileMutation) AppendServicesOffered(s []string) {
	m.appendservices_offered = append(m.appendservices_offered, s...)
}

// AppendedServicesOffered returns the list of values that were appended to the "services_offered" field in this mutation.
func (m *TherapistProfileMutation) AppendedServicesOffered() ([]string, bool) {
	if len(m.appendservices_offered) == 0 {
		return nil, false
	}
	return m.appendservices_offered, true
}

// ClearServicesOffered clears the value of the "services_offered" field.
func (m *TherapistProfileMutation) ClearServicesOffered() {
	m.services_offered = nil
	m.appendservices_offered = nil
	m.clearedFields[therapistprofile.FieldServicesOffered] = struct{}{}
}

// ServicesOfferedCleared returns if the "services_offered" field was cleared in this mutation.
func (m *TherapistProfileMutation) ServicesOfferedCleared() bool {
	_, ok := m.clearedFields[therapistprofile.FieldServicesOffered]
	return ok
}

// ResetServicesOffered resets all changes to the "services_offered" field.
func (m *TherapistProfileMutation) ResetServicesOffered() {
	m.services_offered = nil
	m.appendservices_offered = nil
	delete(m.clearedFields, therapistprofile.FieldServicesOffered)
}

// SetEmergencyAvailability sets the "emergency_availability" field.
func (m *TherapistProfileMutation) SetEmergencyAvailability(b bool) {
	m.emergency_availability = &b
}

// EmergencyAvailability returns the value of the "emergency_availability" field in the mutation.
func (m *TherapistProfileMutation) EmergencyAvailability() (r bool, exists bool) {
	v := m.emergency_availability
	if v == nil {
		return
	}
	return *v, true
}

// OldEmergencyAvailability returns the old "emergency_availability" field's value of the TherapistProfile entity.
// If the TherapistProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapistProfileMutation) OldEmergencyAvailability(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmergencyAvailability is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmergencyAvailability requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmergencyAvailability: %w", err)
	}
	return oldValue.EmergencyAvailability, nil
}

// ResetEmergencyAvailability resets all changes to the "emergency_availability" field.
func (m *TherapistProfileMutation) ResetEmergencyAvailability() {
	m.emergency_availability = nil
}

// SetBio sets the "bio" field.
func (m *TherapistProfileMutation) SetBio(s string) {
	m.bio = &s
}

// Bio returns the value of the "bio" field in the mutation.
func (m *TherapistProfileMutation) Bio() (r string, exists bool) {
	v := m.bio
	if v == nil {
		return
	}
	return *v, true
}

// OldBio returns the old "bio" field's value of the TherapistProfile entity.
// If the TherapistProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapistProfileMutation) OldBio(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBio is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBio requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBio: %w", err)
	}
	return oldValue.Bio, nil
}

// ClearBio clears the value of the "bio" field.
func (m *TherapistProfileMutation) ClearBio() {
	m.bio = nil
	m.clearedFields[therapistprofile.FieldBio] = struct{}{}
}

// BioCleared returns if the "bio" field was cleared in this mutation.
func (m *TherapistProfileMutation) BioCleared() bool {
	_, ok := m.clearedFields[therapistprofile.FieldBio]
	return ok
}

// ResetBio resets all changes to the "bio" field.
func (m *TherapistProfileMutation) ResetBio() {
	m.bio = nil
	delete(m.clearedFields, therapistprofile.FieldBio)
}

// SetStatus sets the "status" field.
func (m *TherapistProfileMutation) SetStatus(t therapistprofile.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TherapistProfileMutation) Status() (r therapistprofile.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the TherapistProfile entity.
// If the TherapistProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapistProfileMutation) OldStatus(ctx context.Context) (v therapistprofile.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TherapistProfileMutation) ResetStatus() {
	m.status = nil
}

// Where appends a list predicates to the TherapistProfileMutation builder.
func (m *TherapistProfileMutation) Where(ps ...predicate.TherapistProfile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TherapistProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TherapistProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TherapistProfile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TherapistProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TherapistProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TherapistProfile).
func (m *TherapistProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TherapistProfileMutation) Fields() []string {
	fields := make([]string, 0, 28)
	if m.created_at != nil {
		fields = append(fields, therapistprofile.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, therapistprofile.FieldUpdatedAt)
	}
	if m.user_id != nil {
		fields = append(fields, therapistprofile.FieldUserID)
	}
	if m.full_name != nil {
		fields = append(fields, therapistprofile.FieldFullName)
	}
	if m.gender != nil {
		fields = append(fields, therapistprofile.FieldGender)
	}
	if m.license_type != nil {
		fields = append(fields, therapistprofile.FieldLicenseType)
	}
	if m.years_experience != nil {
		fields = append(fields, therapistprofile.FieldYearsExperience)
	}
	if m.years_private_practice != nil {
		fields = append(fields, therapistprofile.FieldYearsPrivatePractice)
	}
	if m.specializations != nil {
		fields = append(fields, therapistprofile.FieldSpecializations)
	}
	if m.therapy_approaches != nil {
		fields = append(fields, therapistprofile.FieldTherapyApproaches)
	}
	if m.client_demographics != nil {
		fields = append(fields, therapistprofile.FieldClientDemographics)
	}
	if m.severity_levels != nil {
		fields = append(fields, therapistprofile.FieldSeverityLevels)
	}
	if m.crisis_intervention_trained != nil {
		fields = append(fields, therapistprofile.FieldCrisisInterventionTrained)
	}
	if m.trauma_informed_certified != nil {
		fields = append(fields, therapistprofile.FieldTraumaInformedCertified)
	}
	if m.languages != nil {
		fields = append(fields, therapistprofile.FieldLanguages)
	}
	if m.availability_slots != nil {
		fields = append(fields, therapistprofile.FieldAvailabilitySlots)
	}
	if m.session_durations != nil {
		fields = append(fields, therapistprofile.FieldSessionDurations)
	}
	if m.rate_individual != nil {
		fields = append(fields, therapistprofile.FieldRateIndividual)
	}
	if m.rate_couples != nil {
		fields = append(fields, therapistprofile.FieldRateCouples)
	}
	if m.rate_family != nil {
		fields = append(fields, therapistprofile.FieldRateFamily)
	}
	if m.rate_group != nil {
		fields = append(fields, therapistprofile.FieldRateGroup)
	}
	if m.sliding_scale_available != nil {
		fields = append(fields, therapistprofile.FieldSlidingScaleAvailable)
	}
	if m.insurance_accepted != nil {
		fields = append(fields, therapistprofile.FieldInsuranceAccepted)
	}
	if m.location != nil {
		fields = append(fields, therapistprofile.FieldLocation)
	}
	if m.services_offered != nil {
		fields = append(fields, therapistprofile.FieldServicesOffered)
	}
	if m.emergency_availability != nil {
		fields = append(fields, therapistprofile.FieldEmergencyAvailability)
	}
	if m.bio != nil {
		fields = append(fields, therapistprofile.FieldBio)
	}
	if m.status != nil {
		fields = append(fields, therapistprofile.FieldStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TherapistProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case therapistprofile.FieldCreatedAt:
		return m.CreatedAt()
	case therapistprofile.FieldUpdatedAt:
		return m.UpdatedAt()
	case therapistprofile.FieldUserID:
		return m.UserID()
	case therapistprofile.FieldFullName:
		return m.FullName()
	case therapistprofile.FieldGender:
		return m.Gender()
	case therapistprofile.FieldLicenseType:
		return m.LicenseType()
	case therapistprofile.FieldYearsExperience:
		return m.YearsExperience()
	case therapistprofile.FieldYearsPrivatePractice:
		return m.YearsPrivatePractice()
	case therapistprofile.FieldSpecializations:
		return m.Specializations()
	case therapistprofile.FieldTherapyApproaches:
		return m.TherapyApproaches()
	case therapistprofile.FieldClientDemographics:
		return m.ClientDemographics()
	case therapistprofile.FieldSeverityLevels:
		return m.SeverityLevels()
	case therapistprofile.FieldCrisisInterventionTrained:
		return m.CrisisInterventionTrained()
	case therapistprofile.FieldTraumaInformedCertified:
		return m.TraumaInformedCertified()
	case therapistprofile.FieldLanguages:
		return m.Languages()
	case therapistprofile.FieldAvailabilitySlots:
		return m.AvailabilitySlots()
	case therapistprofile.FieldSessionDurations:
		return m.SessionDurations()
	case therapistprofile.FieldRateIndividual:
		return m.RateIndividual()
	case therapistprofile.FieldRateCouples:
		return m.RateCouples()
	case therapistprofile.FieldRateFamily:
		return m.RateFamily()
	case therapistprofile.FieldRateGroup:
		return m.RateGroup()
	case therapistprofile.FieldSlidingScaleAvailable:
		return m.SlidingScaleAvailable()
	case therapistprofile.FieldInsuranceAccepted:
		return m.InsuranceAccepted()
	case therapistprofile.FieldLocation:
		return m.Location()
	case therapistprofile.FieldServicesOffered:
		return m.ServicesOffered()
	case therapistprofile.FieldEmergencyAvailability:
		return m.EmergencyAvailability()
	case therapistprofile.FieldBio:
		return m.Bio()
	case therapistprofile.FieldStatus:
		return m.Status()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TherapistProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case therapistprofile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case therapistprofile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case therapistprofile.FieldUserID:
		return m.OldUserID(ctx)
	case therapistprofile.FieldFullName:
		return m.OldFullName(ctx)
	case therapistprofile.FieldGender:
		return m.OldGender(ctx)
	case therapistprofile.FieldLicenseType:
		return m.OldLicenseType(ctx)
	case therapistprofile.FieldYearsExperience:
		return m.OldYearsExperience(ctx)
	case therapistprofile.FieldYearsPrivatePractice:
		return m.OldYearsPrivatePractice(ctx)
	case therapistprofile.FieldSpecializations:
		return m.OldSpecializations(ctx)
	case therapistprofile.FieldTherapyApproaches:
		return m.OldTherapyApproaches(ctx)
	case therapistprofile.FieldClientDemographics:
		return m.OldClientDemographics(ctx)
	case therapistprofile.FieldSeverityLevels:
		return m.OldSeverityLevels(ctx)
	case therapistprofile.FieldCrisisInterventionTrained:
		return m.OldCrisisInterventionTrained(ctx)
	case therapistprofile.FieldTraumaInformedCertified:
		return m.OldTraumaInformedCertified(ctx)
	case therapistprofile.FieldLanguages:
		return m.OldLanguages(ctx)
	case therapistprofile.FieldAvailabilitySlots:
		return m.OldAvailabilitySlots(ctx)
	case therapistprofile.FieldSessionDurations:
		return m.OldSessionDurations(ctx)
	case therapistprofile.FieldRateIndividual:
		return m.OldRateIndividual(ctx)
	case therapistprofile.FieldRateCouples:
		return m.OldRateCouples(ctx)
	case therapistprofile.FieldRateFamily:
		return m.OldRateFamily(ctx)
	case therapistprofile.FieldRateGroup:
		return m.OldRateGroup(ctx)
	case therapistprofile.FieldSlidingScaleAvailable:
		return m.OldSlidingScaleAvailable(ctx)
	case therapistprofile.FieldInsuranceAccepted:
		return m.OldInsuranceAccepted(ctx)
	case therapistprofile.FieldLocation:
		return m.OldLocation(ctx)
	case therapistprofile.FieldServicesOffered:
		return m.OldServicesOffered(ctx)
	case therapistprofile.FieldEmergencyAvailability:
		return m.OldEmergencyAvailability(ctx)
	case therapistprofile.FieldBio:
		return m.OldBio(ctx)
	case therapistprofile.FieldStatus:
		return m.OldStatus(ctx)
	}
	return nil, fmt.Errorf("unknown TherapistProfile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TherapistProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case therapistprofile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case therapistprofile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case therapistprofile.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case therapistprofile.FieldFullName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullName(v)
		return nil
	case therapistprofile.FieldGender:
		v, ok := value.(therapistprofile.Gender)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGender(v)
		return nil
	case therapistprofile.FieldLicenseType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLicenseType(v)
		return nil
	case therapistprofile.FieldYearsExperience:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYearsExperience(v)
		return nil
	case therapistprofile.FieldYearsPrivatePractice:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYearsPrivatePractice(v)
		return nil
	case therapistprofile.FieldSpecializations:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecializations(v)
		return nil
	case therapistprofile.FieldTherapyApproaches:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTherapyApproaches(v)
		return nil
	case therapistprofile.FieldClientDemographics:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientDemographics(v)
		return nil
	case therapistprofile.FieldSeverityLevels:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverityLevels(v)
		return nil
	case therapistprofile.FieldCrisisInterventionTrained:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCrisisInterventionTrained(v)
		return nil
	case therapistprofile.FieldTraumaInformedCertified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTraumaInformedCertified(v)
		return nil
	case therapistprofile.FieldLanguages:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguages(v)
		return nil
	case therapistprofile.FieldAvailabilitySlots:
		v, ok := value.([]map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvailabilitySlots(v)
		return nil
	case therapistprofile.FieldSessionDurations:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionDurations(v)
		return nil
	case therapistprofile.FieldRateIndividual:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRateIndividual(v)
		return nil
	case therapistprofile.FieldRateCouples:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRateCouples(v)
		return nil
	case therapistprofile.FieldRateFamily:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRateFamily(v)
		return nil
	case therapistprofile.FieldRateGroup:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRateGroup(v)
		return nil
	case therapistprofile.FieldSlidingScaleAvailable:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlidingScaleAvailable(v)
		return nil
	case therapistprofile.FieldInsuranceAccepted:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInsuranceAccepted(v)
		return nil
	case therapistprofile.FieldLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocation(v)
		return nil
	case therapistprofile.FieldServicesOffered:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServicesOffered(v)
		return nil
	case therapistprofile.FieldEmergencyAvailability:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmergencyAvailability(v)
		return nil
	case therapistprofile.FieldBio:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBio(v)
		return nil
	case therapistprofile.FieldStatus:
		v, ok := value.(therapistprofile.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	}
	return fmt.Errorf("unknown TherapistProfile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TherapistProfileMutation) AddedFields() []string {
	var fields []string
	if m.addyears_experience != nil {
		fields = append(fields, therapistprofile.FieldYearsExperience)
	}
	if m.addyears_private_practice != nil {
		fields = append(fields, therapistprofile.FieldYearsPrivatePractice)
	}
	if m.addrate_individual != nil {
		fields = append(fields, therapistprofile.FieldRateIndividual)
	}
	if m.addrate_couples != nil {
		fields = append(fields, therapistprofile.FieldRateCouples)
	}
	if m.addrate_family != nil {
		fields = append(fields, therapistprofile.FieldRateFamily)
	}
	if m.addrate_group != nil {
		fields = append(fields, therapistprofile.FieldRateGroup)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TherapistProfileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case therapistprofile.FieldYearsExperience:
		return m.AddedYearsExperience()
	case therapistprofile.FieldYearsPrivatePractice:
		return m.AddedYearsPrivatePractice()
	case therapistprofile.FieldRateIndividual:
		return m.AddedRateIndividual()
	case therapistprofile.FieldRateCouples:
		return m.AddedRateCouples()
	case therapistprofile.FieldRateFamily:
		return m.AddedRateFamily()
	case therapistprofile.FieldRateGroup:
		return m.AddedRateGroup()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TherapistProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case therapistprofile.FieldYearsExperience:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddYearsExperience(v)
		return nil
	case therapistprofile.FieldYearsPrivatePractice:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddYearsPrivatePractice(v)
		return nil
	case therapistprofile.FieldRateIndividual:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRateIndividual(v)
		return nil
	case therapistprofile.FieldRateCouples:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRateCouples(v)
		return nil
	case therapistprofile.FieldRateFamily:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRateFamily(v)
		return nil
	case therapistprofile.FieldRateGroup:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRateGroup(v)
		return nil
	}
	return fmt.Errorf("unknown TherapistProfile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TherapistProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(therapistprofile.FieldSpecializations) {
		fields = append(fields, therapistprofile.FieldSpecializations)
	}
	if m.FieldCleared(therapistprofile.FieldTherapyApproaches) {
		fields = append(fields, therapistprofile.FieldTherapyApproaches)
	}
	if m.FieldCleared(therapistprofile.FieldClientDemographics) {
		fields = append(fields, therapistprofile.FieldClientDemographics)
	}
	if m.FieldCleared(therapistprofile.FieldSeverityLevels) {
		fields = append(fields, therapistprofile.FieldSeverityLevels)
	}
	if m.FieldCleared(therapistprofile.FieldLanguages) {
		fields = append(fields, therapistprofile.FieldLanguages)
	}
	if m.FieldCleared(therapistprofile.FieldAvailabilitySlots) {
		fields = append(fields, therapistprofile.FieldAvailabilitySlots)
	}
	if m.FieldCleared(therapistprofile.FieldSessionDurations) {
		fields = append(fields, therapistprofile.FieldSessionDurations)
	}
	if m.FieldCleared(therapistprofile.FieldInsuranceAccepted) {
		fields = append(fields, therapistprofile.FieldInsuranceAccepted)
	}
	if m.FieldCleared(therapistprofile.FieldLocation) {
		fields = append(fields, therapistprofile.FieldLocation)
	}
	if m.FieldCleared(therapistprofile.FieldServicesOffered) {
		fields = append(fields, therapistprofile.FieldServicesOffered)
	}
	if m.FieldCleared(therapistprofile.FieldBio) {
		fields = append(fields, therapistprofile.FieldBio)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TherapistProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TherapistProfileMutation) ClearField(name string) error {
	switch name {
	case therapistprofile.FieldSpecializations:
		m.ClearSpecializations()
		return nil
	case therapistprofile.FieldTherapyApproaches:
		m.ClearTherapyApproaches()
		return nil
	case therapistprofile.FieldClientDemographics:
		m.ClearClientDemographics()
		return nil
	case therapistprofile.FieldSeverityLevels:
		m.ClearSeverityLevels()
		return nil
	case therapistprofile.FieldLanguages:
		m.ClearLanguages()
		return nil
	case therapistprofile.FieldAvailabilitySlots:
		m.ClearAvailabilitySlots()
		return nil
	case therapistprofile.FieldSessionDurations:
		m.ClearSessionDurations()
		return nil
	case therapistprofile.FieldInsuranceAccepted:
		m.ClearInsuranceAccepted()
		return nil
	case therapistprofile.FieldLocation:
		m.ClearLocation()
		return nil
	case therapistprofile.FieldServicesOffered:
		m.ClearServicesOffered()
		return nil
	case therapistprofile.FieldBio:
		m.ClearBio()
		return nil
	}
	return fmt.Errorf("unknown TherapistProfile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TherapistProfileMutation) ResetField(name string) error {
	switch name {
	case therapistprofile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case therapistprofile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case therapistprofile.FieldUserID:
		m.ResetUserID()
		return nil
	case therapistprofile.FieldFullName:
		m.ResetFullName()
		return nil
	case therapistprofile.FieldGender:
		m.ResetGender()
		return nil
	case therapistprofile.FieldLicenseType:
		m.ResetLicenseType()
		return nil
	case therapistprofile.FieldYearsExperience:
		m.ResetYearsExperience()
		return nil
	case therapistprofile.FieldYearsPrivatePractice:
		m.ResetYearsPrivatePractice()
		return nil
	case therapistprofile.FieldSpecializations:
		m.ResetSpecializations()
		return nil
	case therapistprofile.FieldTherapyApproaches:
		m.ResetTherapyApproaches()
		return nil
	case therapistprofile.FieldClientDemographics:
		m.ResetClientDemographics()
		return nil
	case therapistprofile.FieldSeverityLevels:
		m.ResetSeverityLevels()
		return nil
	case therapistprofile.FieldCrisisInterventionTrained:
		m.ResetCrisisInterventionTrained()
		return nil
	case therapistprofile.FieldTraumaInformedCertified:
		m.ResetTraumaInformedCertified()
		return nil
	case therapistprofile.FieldLanguages:
		m.ResetLanguages()
		return nil
	case therapistprofile.FieldAvailabilitySlots:
		m.ResetAvailabilitySlots()
		return nil
	case therapistprofile.FieldSessionDurations:
		m.ResetSessionDurations()
		return nil
	case therapistprofile.FieldRateIndividual:
		m.ResetRateIndividual()
		return nil
	case therapistprofile.FieldRateCouples:
		m.ResetRateCouples()
		return nil
	case therapistprofile.FieldRateFamily:
		m.ResetRateFamily()
		return nil
	case therapistprofile.FieldRateGroup:
		m.ResetRateGroup()
		return nil
	case therapistprofile.FieldSlidingScaleAvailable:
		m.ResetSlidingScaleAvailable()
		return nil
	case therapistprofile.FieldInsuranceAccepted:
		m.ResetInsuranceAccepted()
		return nil
	case therapistprofile.FieldLocation:
		m.ResetLocation()
		return nil
	case therapistprofile.FieldServicesOffered:
		m.ResetServicesOffered()
		return nil
	case therapistprofile.FieldEmergencyAvailability:
		m.ResetEmergencyAvailability()
		return nil
	case therapistprofile.FieldBio:
		m.ResetBio()
		return nil
	case therapistprofile.FieldStatus:
		m.ResetStatus()
		return nil
	}
	return fmt.Errorf("unknown TherapistProfile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TherapistProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TherapistProfileMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TherapistProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TherapistProfileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TherapistProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TherapistProfileMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TherapistProfileMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TherapistProfile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TherapistProfileMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TherapistProfile edge %s", name)
}

// TimeSlotMutation represents an operation that mutates the TimeSlot nodes in the graph.
type TimeSlotMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	created_at      *time.Time
	updated_at      *time.Time
	therapist_id    *uuid.UUID
	start_time      *time.Time
	end_time        *time.Time
	duration_min    *int
	addduration_min *int
	status          *timeslot.Status
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*TimeSlot, error)
	predicates      []predicate.TimeSlot
}

var _ ent.Mutation = (*TimeSlotMutation)(nil)

// timeslotOption allows management of the mutation configuration using functional options.
type timeslotOption func(*TimeSlotMutation)

// newTimeSlotMutation creates new mutation for the TimeSlot entity.
func newTimeSlotMutation(c config, op Op, opts ...timeslotOption) *TimeSlotMutation {
	m := &TimeSlotMutation{
		config:        c,
		op:            op,
		typ:           TypeTimeSlot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTimeSlotID sets the ID field of the mutation.
func withTimeSlotID(id uuid.UUID) timeslotOption {
	return func(m *TimeSlotMutation) {
		var (
			err   error
			once  sync.Once
			value *TimeSlot
		)
		m.oldValue = func(ctx context.Context) (*TimeSlot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TimeSlot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTimeSlot sets the old TimeSlot of the mutation.
func withTimeSlot(node *TimeSlot) timeslotOption {
	return func(m *TimeSlotMutation) {
		m.oldValue = func(context.Context) (*TimeSlot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TimeSlotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TimeSlotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TimeSlot entities.
func (m *TimeSlotMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TimeSlotMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TimeSlotMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TimeSlot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *TimeSlotMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TimeSlotMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TimeSlot entity.
// If the TimeSlot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimeSlotMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TimeSlotMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TimeSlotMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TimeSlotMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TimeSlot entity.
// If the TimeSlot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimeSlotMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TimeSlotMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetTherapistID sets the "therapist_id" field.
func (m *TimeSlotMutation) SetTherapistID(u uuid.UUID) {
	m.therapist_id = &u
}

// TherapistID returns the value of the "therapist_id" field in the mutation.
func (m *TimeSlotMutation) TherapistID() (r uuid.UUID, exists bool) {
	v := m.therapist_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTherapistID returns the old "therapist_id" field's value of the TimeSlot entity.
// If the TimeSlot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimeSlotMutation) OldTherapistID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTherapistID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTherapistID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTherapistID: %w", err)
	}
	return oldValue.TherapistID, nil
}

// ResetTherapistID resets all changes to the "therapist_id" field.
func (m *TimeSlotMutation) ResetTherapistID() {
	m.therapist_id = nil
}

// SetStartTime sets the "start_time" field.
func (m *TimeSlotMutation) SetStartTime(t time.Time) {
	m.start_time = &t
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *TimeSlotMutation) StartTime() (r time.Time, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the TimeSlot entity.
// If the TimeSlot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimeSlotMutation) OldStartTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *TimeSlotMutation) ResetStartTime() {
	m.start_time = nil
}

// SetEndTime sets the "end_time" field.
func (m *TimeSlotMutation) SetEndTime(t time.Time) {
	m.end_time = &t
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *TimeSlotMutation) EndTime() (r time.Time, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the TimeSlot entity.
// If the TimeSlot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimeSlotMutation) OldEndTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *TimeSlotMutation) ResetEndTime() {
	m.end_time = nil
}

// SetDurationMin sets the "duration_min" field.
func (m *TimeSlotMutation) SetDurationMin(i int) {
	m.duration_min = &i
	m.addduration_min = nil
}

// DurationMin returns the value of the "duration_min" field in the mutation.
func (m *TimeSlotMutation) DurationMin() (r int, exists bool) {
	v := m.duration_min
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMin returns the old "duration_min" field's value of the TimeSlot entity.
// If the TimeSlot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimeSlotMutation) OldDurationMin(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMin: %w", err)
	}
	return oldValue.DurationMin, nil
}

// AddDurationMin adds i to the "duration_min" field.
func (m *TimeSlotMutation) AddDurationMin(i int) {
	if m.addduration_min != nil {
		*m.addduration_min += i
	} else {
		m.addduration_min = &i
	}
}

// AddedDurationMin returns the value that was added to the "duration_min" field in this mutation.
func (m *TimeSlotMutation) AddedDurationMin() (r int, exists bool) {
	v := m.addduration_min
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMin resets all changes to the "duration_min" field.
func (m *TimeSlotMutation) ResetDurationMin() {
	m.duration_min = nil
	m.addduration_min = nil
}

// SetStatus sets the "status" field.
func (m *TimeSlotMutation) SetStatus(t timeslot.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TimeSlotMutation) Status() (r timeslot.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the TimeSlot entity.
// If the TimeSlot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimeSlotMutation) OldStatus(ctx context.Context) (v timeslot.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TimeSlotMutation) ResetStatus() {
	m.status = nil
}

// Where appends a list predicates to the TimeSlotMutation builder.
func (m *TimeSlotMutation) Where(ps ...predicate.TimeSlot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TimeSlotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TimeSlotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TimeSlot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TimeSlotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TimeSlotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TimeSlot).
func (m *TimeSlotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TimeSlotMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, timeslot.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, timeslot.FieldUpdatedAt)
	}
	if m.therapist_id != nil {
		fields = append(fields, timeslot.FieldTherapistID)
	}
	if m.start_time != nil {
		fields = append(fields, timeslot.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, timeslot.FieldEndTime)
	}
	if m.duration_min != nil {
		fields = append(fields, timeslot.FieldDurationMin)
	}
	if m.status != nil {
		fields = append(fields, timeslot.FieldStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TimeSlotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case timeslot.FieldCreatedAt:
		return m.CreatedAt()
	case timeslot.FieldUpdatedAt:
		return m.UpdatedAt()
	case timeslot.FieldTherapistID:
		return m.TherapistID()
	case timeslot.FieldStartTime:
		return m.StartTime()
	case timeslot.FieldEndTime:
		return m.EndTime()
	case timeslot.FieldDurationMin:
		return m.DurationMin()
	case timeslot.FieldStatus:
		return m.Status()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TimeSlotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case timeslot.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case timeslot.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case timeslot.FieldTherapistID:
		return m.OldTherapistID(ctx)
	case timeslot.FieldStartTime:
		return m.OldStartTime(ctx)
	case timeslot.FieldEndTime:
		return m.OldEndTime(ctx)
	case timeslot.FieldDurationMin:
		return m.OldDurationMin(ctx)
	case timeslot.FieldStatus:
		return m.OldStatus(ctx)
	}
	return nil, fmt.Errorf("unknown TimeSlot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TimeSlotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case timeslot.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case timeslot.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case timeslot.FieldTherapistID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTherapistID(v)
		return nil
	case timeslot.FieldStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case timeslot.FieldEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case timeslot.FieldDurationMin:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMin(v)
		return nil
	case timeslot.FieldStatus:
		v, ok := value.(timeslot.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	}
	return fmt.Errorf("unknown TimeSlot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TimeSlotMutation) AddedFields() []string {
	var fields []string
	if m.addduration_min != nil {
		fields = append(fields, timeslot.FieldDurationMin)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TimeSlotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case timeslot.FieldDurationMin:
		return m.AddedDurationMin()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TimeSlotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case timeslot.FieldDurationMin:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMin(v)
		return nil
	}
	return fmt.Errorf("unknown TimeSlot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TimeSlotMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TimeSlotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TimeSlotMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TimeSlot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TimeSlotMutation) ResetField(name string) error {
	switch name {
	case timeslot.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case timeslot.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case timeslot.FieldTherapistID:
		m.ResetTherapistID()
		return nil
	case timeslot.FieldStartTime:
		m.ResetStartTime()
		return nil
	case timeslot.FieldEndTime:
		m.ResetEndTime()
		return nil
	case timeslot.FieldDurationMin:
		m.ResetDurationMin()
		return nil
	case timeslot.FieldStatus:
		m.ResetStatus()
		return nil
	}
	return fmt.Errorf("unknown TimeSlot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TimeSlotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TimeSlotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TimeSlotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TimeSlotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TimeSlotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TimeSlotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TimeSlotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TimeSlot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TimeSlotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TimeSlot edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	created_at     *time.Time
	updated_at     *time.Time
	deleted_at     *time.Time
	first_name     *string
	last_name      *string
	email          *string
	role           *user.Role
	status         *user.Status
	email_verified *bool
	last_login_at  *time.Time
	metadata       *map[string]interface{}
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*User, error)
	predicates     []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id uuid.UUID) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *UserMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *UserMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *UserMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[user.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *UserMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[user.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *UserMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, user.FieldDeletedAt)
}

// SetFirstName sets the "first_name" field.
func (m *UserMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *UserMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldFirstName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ClearFirstName clears the value of the "first_name" field.
func (m *UserMutation) ClearFirstName() {
	m.first_name = nil
	m.clearedFields[user.FieldFirstName] = struct{}{}
}

// FirstNameCleared returns if the "first_name" field was cleared in this mutation.
func (m *UserMutation) FirstNameCleared() bool {
	_, ok := m.clearedFields[user.FieldFirstName]
	return ok
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *UserMutation) ResetFirstName() {
	m.first_name = nil
	delete(m.clearedFields, user.FieldFirstName)
}

// SetLastName sets the "last_name" field.
func (m *UserMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *UserMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ClearLastName clears the value of the "last_name" field.
func (m *UserMutation) ClearLastName() {
	m.last_name = nil
	m.clearedFields[user.FieldLastName] = struct{}{}
}

// LastNameCleared returns if the "last_name" field was cleared in this mutation.
func (m *UserMutation) LastNameCleared() bool {
	_, ok := m.clearedFields[user.FieldLastName]
	return ok
}

// ResetLastName resets all changes to the "last_name" field.
func (m *UserMutation) ResetLastName() {
	m.last_name = nil
	delete(m.clearedFields, user.FieldLastName)
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(u user.Role) {
	m.role = &u
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r user.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v user.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// SetStatus sets the "status" field.
func (m *UserMutation) SetStatus(u user.Status) {
	m.status = &u
}

// Status returns the value of the "status" field in the mutation.
func (m *UserMutation) Status() (r user.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldStatus(ctx context.Context) (v user.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *UserMutation) ResetStatus() {
	m.status = nil
}

// SetEmailVerified sets the "email_verified" field.
func (m *UserMutation) SetEmailVerified(b bool) {
	m.email_verified = &b
}

// EmailVerified returns the value of the "email_verified" field in the mutation.
func (m *UserMutation) EmailVerified() (r bool, exists bool) {
	v := m.email_verified
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailVerified returns the old "email_verified" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmailVerified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailVerified: %w", err)
	}
	return oldValue.EmailVerified, nil
}

// ResetEmailVerified resets all changes to the "email_verified" field.
func (m *UserMutation) ResetEmailVerified() {
	m.email_verified = nil
}

// SetLastLoginAt sets the "last_login_at" field.
func (m *UserMutation) SetLastLoginAt(t time.Time) {
	m.last_login_at = &t
}

// LastLoginAt returns the value of the "last_login_at" field in the mutation.
func (m *UserMutation) LastLoginAt() (r time.Time, exists bool) {
	v := m.last_login_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLoginAt returns the old "last_login_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastLoginAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLoginAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLoginAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLoginAt: %w", err)
	}
	return oldValue.LastLoginAt, nil
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (m *UserMutation) ClearLastLoginAt() {
	m.last_login_at = nil
	m.clearedFields[user.FieldLastLoginAt] = struct{}{}
}

// LastLoginAtCleared returns if the "last_login_at" field was cleared in this mutation.
func (m *UserMutation) LastLoginAtCleared() bool {
	_, ok := m.clearedFields[user.FieldLastLoginAt]
	return ok
}

// ResetLastLoginAt resets all changes to the "last_login_at" field.
func (m *UserMutation) ResetLastLoginAt() {
	m.last_login_at = nil
	delete(m.clearedFields, user.FieldLastLoginAt)
}

// SetMetadata sets the "metadata" field.
func (m *UserMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *UserMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *UserMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[user.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *UserMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[user.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *UserMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, user.FieldMetadata)
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, user.FieldDeletedAt)
	}
	if m.first_name != nil {
		fields = append(fields, user.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, user.FieldLastName)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	if m.status != nil {
		fields = append(fields, user.FieldStatus)
	}
	if m.email_verified != nil {
		fields = append(fields, user.FieldEmailVerified)
	}
	if m.last_login_at != nil {
		fields = append(fields, user.FieldLastLoginAt)
	}
	if m.metadata != nil {
		fields = append(fields, user.FieldMetadata)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	case user.FieldDeletedAt:
		return m.DeletedAt()
	case user.FieldFirstName:
		return m.FirstName()
	case user.FieldLastName:
		return m.LastName()
	case user.FieldEmail:
		return m.Email()
	case user.FieldRole:
		return m.Role()
	case user.FieldStatus:
		return m.Status()
	case user.FieldEmailVerified:
		return m.EmailVerified()
	case user.FieldLastLoginAt:
		return m.LastLoginAt()
	case user.FieldMetadata:
		return m.Metadata()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case user.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case user.FieldFirstName:
		return m.OldFirstName(ctx)
	case user.FieldLastName:
		return m.OldLastName(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	case user.FieldStatus:
		return m.OldStatus(ctx)
	case user.FieldEmailVerified:
		return m.OldEmailVerified(ctx)
	case user.FieldLastLoginAt:
		return m.OldLastLoginAt(ctx)
	case user.FieldMetadata:
		return m.OldMetadata(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case user.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case user.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case user.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldRole:
		v, ok := value.(user.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case user.FieldStatus:
		v, ok := value.(user.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case user.FieldEmailVerified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailVerified(v)
		return nil
	case user.FieldLastLoginAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLoginAt(v)
		return nil
	case user.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldDeletedAt) {
		fields = append(fields, user.FieldDeletedAt)
	}
	if m.FieldCleared(user.FieldFirstName) {
		fields = append(fields, user.FieldFirstName)
	}
	if m.FieldCleared(user.FieldLastName) {
		fields = append(fields, user.FieldLastName)
	}
	if m.FieldCleared(user.FieldLastLoginAt) {
		fields = append(fields, user.FieldLastLoginAt)
	}
	if m.FieldCleared(user.FieldMetadata) {
		fields = append(fields, user.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case user.FieldFirstName:
		m.ClearFirstName()
		return nil
	case user.FieldLastName:
		m.ClearLastName()
		return nil
	case user.FieldLastLoginAt:
		m.ClearLastLoginAt()
		return nil
	case user.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case user.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case user.FieldFirstName:
		m.ResetFirstName()
		return nil
	case user.FieldLastName:
		m.ResetLastName()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	case user.FieldStatus:
		m.ResetStatus()
		return nil
	case user.FieldEmailVerified:
		m.ResetEmailVerified()
		return nil
	case user.FieldLastLoginAt:
		m.ResetLastLoginAt()
		return nil
	case user.FieldMetadata:
		m.ResetMetadata()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown User edge %s", name)
}
