// Code generated by ent, DO NOT EDIT.

package timeslot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/govently/govently_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldEQ(FieldUpdatedAt, v))
}

// TherapistID applies equality check predicate on the "therapist_id" field. It's identical to TherapistIDEQ.
func TherapistID(v uuid.UUID) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldEQ(FieldTherapistID, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldEQ(FieldStartTime, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldEQ(FieldEndTime, v))
}

// DurationMin applies equality check predicate on the "duration_min" field. It's identical to DurationMinEQ.
func DurationMin(v int) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldEQ(FieldDurationMin, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldLTE(FieldUpdatedAt, v))
}

// TherapistIDEQ applies the EQ predicate on the "therapist_id" field.
func TherapistIDEQ(v uuid.UUID) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldEQ(FieldTherapistID, v))
}

// TherapistIDNEQ applies the NEQ predicate on the "therapist_id" field.
func TherapistIDNEQ(v uuid.UUID) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldNEQ(FieldTherapistID, v))
}

// TherapistIDIn applies the In predicate on the "therapist_id" field.
func TherapistIDIn(vs ...uuid.UUID) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldIn(FieldTherapistID, vs...))
}

// TherapistIDNotIn applies the NotIn predicate on the "therapist_id" field.
func TherapistIDNotIn(vs ...uuid.UUID) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldNotIn(FieldTherapistID, vs...))
}

// TherapistIDGT applies the GT predicate on the "therapist_id" field.
func TherapistIDGT(v uuid.UUID) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldGT(FieldTherapistID, v))
}

// TherapistIDGTE applies the GTE predicate on the "therapist_id" field.
func TherapistIDGTE(v uuid.UUID) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldGTE(FieldTherapistID, v))
}

// TherapistIDLT applies the LT predicate on the "therapist_id" field.
func TherapistIDLT(v uuid.UUID) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldLT(FieldTherapistID, v))
}

// TherapistIDLTE applies the LTE predicate on the "therapist_id" field.
func TherapistIDLTE(v uuid.UUID) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldLTE(FieldTherapistID, v))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldLTE(FieldStartTime, v))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldLTE(FieldEndTime, v))
}

// DurationMinEQ applies the EQ predicate on the "duration_min" field.
func DurationMinEQ(v int) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldEQ(FieldDurationMin, v))
}

// DurationMinNEQ applies the NEQ predicate on the "duration_min" field.
func DurationMinNEQ(v int) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldNEQ(FieldDurationMin, v))
}

// DurationMinIn applies the In predicate on the "duration_min" field.
func DurationMinIn(vs ...int) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldIn(FieldDurationMin, vs...))
}

// DurationMinNotIn applies the NotIn predicate on the "duration_min" field.
func DurationMinNotIn(vs ...int) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldNotIn(FieldDurationMin, vs...))
}

// DurationMinGT applies the GT predicate on the "duration_min" field.
func DurationMinGT(v int) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldGT(FieldDurationMin, v))
}

// DurationMinGTE applies the GTE predicate on the "duration_min" field.
func DurationMinGTE(v int) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldGTE(FieldDurationMin, v))
}

// DurationMinLT applies the LT predicate on the "duration_min" field.
func DurationMinLT(v int) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldLT(FieldDurationMin, v))
}

// DurationMinLTE applies the LTE predicate on the "duration_min" field.
func DurationMinLTE(v int) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldLTE(FieldDurationMin, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldNotIn(FieldStatus, vs...))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TimeSlot) predicate.TimeSlot {
	return predicate.TimeSlot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TimeSlot) predicate.TimeSlot {
	return predicate.TimeSlot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TimeSlot) predicate.TimeSlot {
	return predicate.TimeSlot(sql.NotPredicates(p))
}
