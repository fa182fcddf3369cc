// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/govently/govently_backend/internal/repo/matchresult"
	"github.com/govently/govently_backend/internal/repo/predicate"
)

// MatchResultUpdate is the builder for updating MatchResult entities.
type MatchResultUpdate struct {
	config
	hooks    []Hook
	mutation *MatchResultMutation
}

// Where appends a list predicates to the MatchResultUpdate builder.
func (_u *MatchResultUpdate) Where(ps ...predicate.MatchResult) *MatchResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *MatchResultUpdate) SetUserID(v uuid.UUID) *MatchResultUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MatchResultUpdate) SetNillableUserID(v *uuid.UUID) *MatchResultUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTherapistID sets the "therapist_id" field.
func (_u *MatchResultUpdate) SetTherapistID(v uuid.UUID) *MatchResultUpdate {
	_u.mutation.SetTherapistID(v)
	return _u
}

// SetNillableTherapistID sets the "therapist_id" field if the given value is not nil.
func (_u *MatchResultUpdate) SetNillableTherapistID(v *uuid.UUID) *MatchResultUpdate {
	if v != nil {
		_u.SetTherapistID(*v)
	}
	return _u
}

// SetTotalScore sets the "total_score" field.
func (_u *MatchResultUpdate) SetTotalScore(v float64) *MatchResultUpdate {
	_u.mutation.ResetTotalScore()
	_u.mutation.SetTotalScore(v)
	return _u
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_u *MatchResultUpdate) SetNillableTotalScore(v *float64) *MatchResultUpdate {
	if v != nil {
		_u.SetTotalScore(*v)
	}
	return _u
}

// AddTotalScore adds value to the "total_score" field.
func (_u *MatchResultUpdate) AddTotalScore(v float64) *MatchResultUpdate {
	_u.mutation.AddTotalScore(v)
	return _u
}

// SetBreakdown sets the "breakdown" field.
func (_u *MatchResultUpdate) SetBreakdown(v map[string]float64) *MatchResultUpdate {
	_u.mutation.SetBreakdown(v)
	return _u
}

// SetCompatibilityReasons sets the "compatibility_reasons" field.
func (_u *MatchResultUpdate) SetCompatibilityReasons(v []string) *MatchResultUpdate {
	_u.mutation.SetCompatibilityReasons(v)
	return _u
}

// AppendCompatibilityReasons appends value to the "compatibility_reasons" field.
func (_u *MatchResultUpdate) AppendCompatibilityReasons(v []string) *MatchResultUpdate {
	_u.mutation.AppendCompatibilityReasons(v)
	return _u
}

// ClearCompatibilityReasons clears the value of the "compatibility_reasons" field.
func (_u *MatchResultUpdate) ClearCompatibilityReasons() *MatchResultUpdate {
	_u.mutation.ClearCompatibilityReasons()
	return _u
}

// SetPotentialConcerns sets the "potential_concerns" field.
func (_u *MatchResultUpdate) SetPotentialConcerns(v []string) *MatchResultUpdate {
	_u.mutation.SetPotentialConcerns(v)
	return _u
}

// AppendPotentialConcerns appends value to the "potential_concerns" field.
func (_u *MatchResultUpdate) AppendPotentialConcerns(v []string) *MatchResultUpdate {
	_u.mutation.AppendPotentialConcerns(v)
	return _u
}

// ClearPotentialConcerns clears the value of the "potential_concerns" field.
func (_u *MatchResultUpdate) ClearPotentialConcerns() *MatchResultUpdate {
	_u.mutation.ClearPotentialConcerns()
	return _u
}

// Mutation returns the MatchResultMutation object of the builder.
func (_u *MatchResultUpdate) Mutation() *MatchResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MatchResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MatchResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MatchResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MatchResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MatchResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(matchresult.Table, matchresult.Columns, sqlgraph.NewFieldSpec(matchresult.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(matchresult.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TherapistID(); ok {
		_spec.SetField(matchresult.FieldTherapistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TotalScore(); ok {
		_spec.SetField(matchresult.FieldTotalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalScore(); ok {
		_spec.AddField(matchresult.FieldTotalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Breakdown(); ok {
		_spec.SetField(matchresult.FieldBreakdown, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CompatibilityReasons(); ok {
		_spec.SetField(matchresult.FieldCompatibilityReasons, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompatibilityReasons(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, matchresult.FieldCompatibilityReasons, value)
		})
	}
	if _u.mutation.CompatibilityReasonsCleared() {
		_spec.ClearField(matchresult.FieldCompatibilityReasons, field.TypeJSON)
	}
	if value, ok := _u.mutation.PotentialConcerns(); ok {
		_spec.SetField(matchresult.FieldPotentialConcerns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPotentialConcerns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, matchresult.FieldPotentialConcerns, value)
		})
	}
	if _u.mutation.PotentialConcernsCleared() {
		_spec.ClearField(matchresult.FieldPotentialConcerns, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{matchresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MatchResultUpdateOne is the builder for updating a single MatchResult entity.
type MatchResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MatchResultMutation
}

// SetUserID sets the "user_id" field.
func (_u *MatchResultUpdateOne) SetUserID(v uuid.UUID) *MatchResultUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MatchResultUpdateOne) SetNillableUserID(v *uuid.UUID) *MatchResultUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTherapistID sets the "therapist_id" field.
func (_u *MatchResultUpdateOne) SetTherapistID(v uuid.UUID) *MatchResultUpdateOne {
	_u.mutation.SetTherapistID(v)
	return _u
}

// SetNillableTherapistID sets the "therapist_id" field if the given value is not nil.
func (_u *MatchResultUpdateOne) SetNillableTherapistID(v *uuid.UUID) *MatchResultUpdateOne {
	if v != nil {
		_u.SetTherapistID(*v)
	}
	return _u
}

// SetTotalScore sets the "total_score" field.
func (_u *MatchResultUpdateOne) SetTotalScore(v float64) *MatchResultUpdateOne {
	_u.mutation.ResetTotalScore()
	_u.mutation.SetTotalScore(v)
	return _u
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_u *MatchResultUpdateOne) SetNillableTotalScore(v *float64) *MatchResultUpdateOne {
	if v != nil {
		_u.SetTotalScore(*v)
	}
	return _u
}

// AddTotalScore adds value to the "total_score" field.
func (_u *MatchResultUpdateOne) AddTotalScore(v float64) *MatchResultUpdateOne {
	_u.mutation.AddTotalScore(v)
	return _u
}

// SetBreakdown sets the "breakdown" field.
func (_u *MatchResultUpdateOne) SetBreakdown(v map[string]float64) *MatchResultUpdateOne {
	_u.mutation.SetBreakdown(v)
	return _u
}

// SetCompatibilityReasons sets the "compatibility_reasons" field.
func (_u *MatchResultUpdateOne) SetCompatibilityReasons(v []string) *MatchResultUpdateOne {
	_u.mutation.SetCompatibilityReasons(v)
	return _u
}

// AppendCompatibilityReasons appends value to the "compatibility_reasons" field.
func (_u *MatchResultUpdateOne) AppendCompatibilityReasons(v []string) *MatchResultUpdateOne {
	_u.mutation.AppendCompatibilityReasons(v)
	return _u
}

// ClearCompatibilityReasons clears the value of the "compatibility_reasons" field.
func (_u *MatchResultUpdateOne) ClearCompatibilityReasons() *MatchResultUpdateOne {
	_u.mutation.ClearCompatibilityReasons()
	return _u
}

// SetPotentialConcerns sets the "potential_concerns" field.
func (_u *MatchResultUpdateOne) SetPotentialConcerns(v []string) *MatchResultUpdateOne {
	_u.mutation.SetPotentialConcerns(v)
	return _u
}

// AppendPotentialConcerns appends value to the "potential_concerns" field.
func (_u *MatchResultUpdateOne) AppendPotentialConcerns(v []string) *MatchResultUpdateOne {
	_u.mutation.AppendPotentialConcerns(v)
	return _u
}

// ClearPotentialConcerns clears the value of the "potential_concerns" field.
func (_u *MatchResultUpdateOne) ClearPotentialConcerns() *MatchResultUpdateOne {
	_u.mutation.ClearPotentialConcerns()
	return _u
}

// Mutation returns the MatchResultMutation object of the builder.
func (_u *MatchResultUpdateOne) Mutation() *MatchResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the MatchResultUpdate builder.
func (_u *MatchResultUpdateOne) Where(ps ...predicate.MatchResult) *MatchResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MatchResultUpdateOne) Select(field string, fields ...string) *MatchResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MatchResult entity.
func (_u *MatchResultUpdateOne) Save(ctx context.Context) (*MatchResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MatchResultUpdateOne) SaveX(ctx context.Context) *MatchResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MatchResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MatchResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MatchResultUpdateOne) sqlSave(ctx context.Context) (_node *MatchResult, err error) {
	_spec := sqlgraph.NewUpdateSpec(matchresult.Table, matchresult.Columns, sqlgraph.NewFieldSpec(matchresult.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "MatchResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, matchresult.FieldID)
		for _, f := range fields {
			if !matchresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != matchresult.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(matchresult.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TherapistID(); ok {
		_spec.SetField(matchresult.FieldTherapistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TotalScore(); ok {
		_spec.SetField(matchresult.FieldTotalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalScore(); ok {
		_spec.AddField(matchresult.FieldTotalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Breakdown(); ok {
		_spec.SetField(matchresult.FieldBreakdown, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CompatibilityReasons(); ok {
		_spec.SetField(matchresult.FieldCompatibilityReasons, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompatibilityReasons(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, matchresult.FieldCompatibilityReasons, value)
		})
	}
	if _u.mutation.CompatibilityReasonsCleared() {
		_spec.ClearField(matchresult.FieldCompatibilityReasons, field.TypeJSON)
	}
	if value, ok := _u.mutation.PotentialConcerns(); ok {
		_spec.SetField(matchresult.FieldPotentialConcerns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPotentialConcerns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, matchresult.FieldPotentialConcerns, value)
		})
	}
	if _u.mutation.PotentialConcernsCleared() {
		_spec.ClearField(matchresult.FieldPotentialConcerns, field.TypeJSON)
	}
	_node = &MatchResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{matchresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
