// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Appointment is the predicate function for appointment builders.
type Appointment func(*sql.Selector)

// MatchResult is the predicate function for matchresult builders.
type MatchResult func(*sql.Selector)

// MentalAssessment is the predicate function for mentalassessment builders.
type MentalAssessment func(*sql.Selector)

// TherapistProfile is the predicate function for therapistprofile builders.
type TherapistProfile func(*sql.Selector)

// TimeSlot is the predicate function for timeslot builders.
type TimeSlot func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
