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
	"github.com/govently/govently_backend/internal/repo/mentalassessment"
	"github.com/govently/govently_backend/internal/repo/predicate"
)

// MentalAssessmentUpdate is the builder for updating MentalAssessment entities.
type MentalAssessmentUpdate struct {
	config
	hooks    []Hook
	mutation *MentalAssessmentMutation
}

// Where appends a list predicates to the MentalAssessmentUpdate builder.
func (_u *MentalAssessmentUpdate) Where(ps ...predicate.MentalAssessment) *MentalAssessmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MentalAssessmentUpdate) SetUpdatedAt(v time.Time) *MentalAssessmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *MentalAssessmentUpdate) SetUserID(v uuid.UUID) *MentalAssessmentUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MentalAssessmentUpdate) SetNillableUserID(v *uuid.UUID) *MentalAssessmentUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *MentalAssessmentUpdate) SetAssessmentID(v string) *MentalAssessmentUpdate {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *MentalAssessmentUpdate) SetNillableAssessmentID(v *string) *MentalAssessmentUpdate {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetResponses sets the "responses" field.
func (_u *MentalAssessmentUpdate) SetResponses(v []map[string]interface{}) *MentalAssessmentUpdate {
	_u.mutation.SetResponses(v)
	return _u
}

// AppendResponses appends value to the "responses" field.
func (_u *MentalAssessmentUpdate) AppendResponses(v []map[string]interface{}) *MentalAssessmentUpdate {
	_u.mutation.AppendResponses(v)
	return _u
}

// SetPhq9Score sets the "phq9_score" field.
func (_u *MentalAssessmentUpdate) SetPhq9Score(v int) *MentalAssessmentUpdate {
	_u.mutation.ResetPhq9Score()
	_u.mutation.SetPhq9Score(v)
	return _u
}

// SetNillablePhq9Score sets the "phq9_score" field if the given value is not nil.
func (_u *MentalAssessmentUpdate) SetNillablePhq9Score(v *int) *MentalAssessmentUpdate {
	if v != nil {
		_u.SetPhq9Score(*v)
	}
	return _u
}

// AddPhq9Score adds value to the "phq9_score" field.
func (_u *MentalAssessmentUpdate) AddPhq9Score(v int) *MentalAssessmentUpdate {
	_u.mutation.AddPhq9Score(v)
	return _u
}

// SetGad7Score sets the "gad7_score" field.
func (_u *MentalAssessmentUpdate) SetGad7Score(v int) *MentalAssessmentUpdate {
	_u.mutation.ResetGad7Score()
	_u.mutation.SetGad7Score(v)
	return _u
}

// SetNillableGad7Score sets the "gad7_score" field if the given value is not nil.
func (_u *MentalAssessmentUpdate) SetNillableGad7Score(v *int) *MentalAssessmentUpdate {
	if v != nil {
		_u.SetGad7Score(*v)
	}
	return _u
}

// AddGad7Score adds value to the "gad7_score" field.
func (_u *MentalAssessmentUpdate) AddGad7Score(v int) *MentalAssessmentUpdate {
	_u.mutation.AddGad7Score(v)
	return _u
}

// SetPssScore sets the "pss_score" field.
func (_u *MentalAssessmentUpdate) SetPssScore(v int) *MentalAssessmentUpdate {
	_u.mutation.ResetPssScore()
	_u.mutation.SetPssScore(v)
	return _u
}

// SetNillablePssScore sets the "pss_score" field if the given value is not nil.
func (_u *MentalAssessmentUpdate) SetNillablePssScore(v *int) *MentalAssessmentUpdate {
	if v != nil {
		_u.SetPssScore(*v)
	}
	return _u
}

// AddPssScore adds value to the "pss_score" field.
func (_u *MentalAssessmentUpdate) AddPssScore(v int) *MentalAssessmentUpdate {
	_u.mutation.AddPssScore(v)
	return _u
}

// SetWhoWellbeingScore sets the "who_wellbeing_score" field.
func (_u *MentalAssessmentUpdate) SetWhoWellbeingScore(v int) *MentalAssessmentUpdate {
	_u.mutation.ResetWhoWellbeingScore()
	_u.mutation.SetWhoWellbeingScore(v)
	return _u
}

// SetNillableWhoWellbeingScore sets the "who_wellbeing_score" field if the given value is not nil.
func (_u *MentalAssessmentUpdate) SetNillableWhoWellbeingScore(v *int) *MentalAssessmentUpdate {
	if v != nil {
		_u.SetWhoWellbeingScore(*v)
	}
	return _u
}

// AddWhoWellbeingScore adds value to the "who_wellbeing_score" field.
func (_u *MentalAssessmentUpdate) AddWhoWellbeingScore(v int) *MentalAssessmentUpdate {
	_u.mutation.AddWhoWellbeingScore(v)
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *MentalAssessmentUpdate) SetRiskLevel(v string) *MentalAssessmentUpdate {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *MentalAssessmentUpdate) SetNillableRiskLevel(v *string) *MentalAssessmentUpdate {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetSuicideRisk sets the "suicide_risk" field.
func (_u *MentalAssessmentUpdate) SetSuicideRisk(v bool) *MentalAssessmentUpdate {
	_u.mutation.SetSuicideRisk(v)
	return _u
}

// SetNillableSuicideRisk sets the "suicide_risk" field if the given value is not nil.
func (_u *MentalAssessmentUpdate) SetNillableSuicideRisk(v *bool) *MentalAssessmentUpdate {
	if v != nil {
		_u.SetSuicideRisk(*v)
	}
	return _u
}

// SetRecommendations sets the "recommendations" field.
func (_u *MentalAssessmentUpdate) SetRecommendations(v []string) *MentalAssessmentUpdate {
	_u.mutation.SetRecommendations(v)
	return _u
}

// AppendRecommendations appends value to the "recommendations" field.
func (_u *MentalAssessmentUpdate) AppendRecommendations(v []string) *MentalAssessmentUpdate {
	_u.mutation.AppendRecommendations(v)
	return _u
}

// ClearRecommendations clears the value of the "recommendations" field.
func (_u *MentalAssessmentUpdate) ClearRecommendations() *MentalAssessmentUpdate {
	_u.mutation.ClearRecommendations()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *MentalAssessmentUpdate) SetCompletedAt(v time.Time) *MentalAssessmentUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *MentalAssessmentUpdate) SetNillableCompletedAt(v *time.Time) *MentalAssessmentUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// Mutation returns the MentalAssessmentMutation object of the builder.
func (_u *MentalAssessmentUpdate) Mutation() *MentalAssessmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MentalAssessmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MentalAssessmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MentalAssessmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MentalAssessmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MentalAssessmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := mentalassessment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MentalAssessmentUpdate) check() error {
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := mentalassessment.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`repo: validator failed for field "MentalAssessment.assessment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskLevel(); ok {
		if err := mentalassessment.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`repo: validator failed for field "MentalAssessment.risk_level": %w`, err)}
		}
	}
	return nil
}

func (_u *MentalAssessmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mentalassessment.Table, mentalassessment.Columns, sqlgraph.NewFieldSpec(mentalassessment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(mentalassessment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(mentalassessment.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(mentalassessment.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Responses(); ok {
		_spec.SetField(mentalassessment.FieldResponses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResponses(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, mentalassessment.FieldResponses, value)
		})
	}
	if value, ok := _u.mutation.Phq9Score(); ok {
		_spec.SetField(mentalassessment.FieldPhq9Score, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPhq9Score(); ok {
		_spec.AddField(mentalassessment.FieldPhq9Score, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Gad7Score(); ok {
		_spec.SetField(mentalassessment.FieldGad7Score, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGad7Score(); ok {
		_spec.AddField(mentalassessment.FieldGad7Score, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PssScore(); ok {
		_spec.SetField(mentalassessment.FieldPssScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPssScore(); ok {
		_spec.AddField(mentalassessment.FieldPssScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WhoWellbeingScore(); ok {
		_spec.SetField(mentalassessment.FieldWhoWellbeingScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWhoWellbeingScore(); ok {
		_spec.AddField(mentalassessment.FieldWhoWellbeingScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(mentalassessment.FieldRiskLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.SuicideRisk(); ok {
		_spec.SetField(mentalassessment.FieldSuicideRisk, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Recommendations(); ok {
		_spec.SetField(mentalassessment.FieldRecommendations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecommendations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, mentalassessment.FieldRecommendations, value)
		})
	}
	if _u.mutation.RecommendationsCleared() {
		_spec.ClearField(mentalassessment.FieldRecommendations, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(mentalassessment.FieldCompletedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mentalassessment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MentalAssessmentUpdateOne is the builder for updating a single MentalAssessment entity.
type MentalAssessmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MentalAssessmentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MentalAssessmentUpdateOne) SetUpdatedAt(v time.Time) *MentalAssessmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *MentalAssessmentUpdateOne) SetUserID(v uuid.UUID) *MentalAssessmentUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MentalAssessmentUpdateOne) SetNillableUserID(v *uuid.UUID) *MentalAssessmentUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *MentalAssessmentUpdateOne) SetAssessmentID(v string) *MentalAssessmentUpdateOne {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *MentalAssessmentUpdateOne) SetNillableAssessmentID(v *string) *MentalAssessmentUpdateOne {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetResponses sets the "responses" field.
func (_u *MentalAssessmentUpdateOne) SetResponses(v []map[string]interface{}) *MentalAssessmentUpdateOne {
	_u.mutation.SetResponses(v)
	return _u
}

// AppendResponses appends value to the "responses" field.
func (_u *MentalAssessmentUpdateOne) AppendResponses(v []map[string]interface{}) *MentalAssessmentUpdateOne {
	_u.mutation.AppendResponses(v)
	return _u
}

// SetPhq9Score sets the "phq9_score" field.
func (_u *MentalAssessmentUpdateOne) SetPhq9Score(v int) *MentalAssessmentUpdateOne {
	_u.mutation.ResetPhq9Score()
	_u.mutation.SetPhq9Score(v)
	return _u
}

// SetNillablePhq9Score sets the "phq9_score" field if the given value is not nil.
func (_u *MentalAssessmentUpdateOne) SetNillablePhq9Score(v *int) *MentalAssessmentUpdateOne {
	if v != nil {
		_u.SetPhq9Score(*v)
	}
	return _u
}

// AddPhq9Score adds value to the "phq9_score" field.
func (_u *MentalAssessmentUpdateOne) AddPhq9Score(v int) *MentalAssessmentUpdateOne {
	_u.mutation.AddPhq9Score(v)
	return _u
}

// SetGad7Score sets the "gad7_score" field.
func (_u *MentalAssessmentUpdateOne) SetGad7Score(v int) *MentalAssessmentUpdateOne {
	_u.mutation.ResetGad7Score()
	_u.mutation.SetGad7Score(v)
	return _u
}

// SetNillableGad7Score sets the "gad7_score" field if the given value is not nil.
func (_u *MentalAssessmentUpdateOne) SetNillableGad7Score(v *int) *MentalAssessmentUpdateOne {
	if v != nil {
		_u.SetGad7Score(*v)
	}
	return _u
}

// AddGad7Score adds value to the "gad7_score" field.
func (_u *MentalAssessmentUpdateOne) AddGad7Score(v int) *MentalAssessmentUpdateOne {
	_u.mutation.AddGad7Score(v)
	return _u
}

// SetPssScore sets the "pss_score" field.
func (_u *MentalAssessmentUpdateOne) SetPssScore(v int) *MentalAssessmentUpdateOne {
	_u.mutation.ResetPssScore()
	_u.mutation.SetPssScore(v)
	return _u
}

// SetNillablePssScore sets the "pss_score" field if the given value is not nil.
func (_u *MentalAssessmentUpdateOne) SetNillablePssScore(v *int) *MentalAssessmentUpdateOne {
	if v != nil {
		_u.SetPssScore(*v)
	}
	return _u
}

// AddPssScore adds value to the "pss_score" field.
func (_u *MentalAssessmentUpdateOne) AddPssScore(v int) *MentalAssessmentUpdateOne {
	_u.mutation.AddPssScore(v)
	return _u
}

// SetWhoWellbeingScore sets the "who_wellbeing_score" field.
func (_u *MentalAssessmentUpdateOne) SetWhoWellbeingScore(v int) *MentalAssessmentUpdateOne {
	_u.mutation.ResetWhoWellbeingScore()
	_u.mutation.SetWhoWellbeingScore(v)
	return _u
}

// SetNillableWhoWellbeingScore sets the "who_wellbeing_score" field if the given value is not nil.
func (_u *MentalAssessmentUpdateOne) SetNillableWhoWellbeingScore(v *int) *MentalAssessmentUpdateOne {
	if v != nil {
		_u.SetWhoWellbeingScore(*v)
	}
	return _u
}

// AddWhoWellbeingScore adds value to the "who_wellbeing_score" field.
func (_u *MentalAssessmentUpdateOne) AddWhoWellbeingScore(v int) *MentalAssessmentUpdateOne {
	_u.mutation.AddWhoWellbeingScore(v)
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *MentalAssessmentUpdateOne) SetRiskLevel(v string) *MentalAssessmentUpdateOne {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *MentalAssessmentUpdateOne) SetNillableRiskLevel(v *string) *MentalAssessmentUpdateOne {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetSuicideRisk sets the "suicide_risk" field.
func (_u *MentalAssessmentUpdateOne) SetSuicideRisk(v bool) *MentalAssessmentUpdateOne {
	_u.mutation.SetSuicideRisk(v)
	return _u
}

// SetNillableSuicideRisk sets the "suicide_risk" field if the given value is not nil.
func (_u *MentalAssessmentUpdateOne) SetNillableSuicideRisk(v *bool) *MentalAssessmentUpdateOne {
	if v != nil {
		_u.SetSuicideRisk(*v)
	}
	return _u
}

// SetRecommendations sets the "recommendations" field.
func (_u *MentalAssessmentUpdateOne) SetRecommendations(v []string) *MentalAssessmentUpdateOne {
	_u.mutation.SetRecommendations(v)
	return _u
}

// AppendRecommendations appends value to the "recommendations" field.
func (_u *MentalAssessmentUpdateOne) AppendRecommendations(v []string) *MentalAssessmentUpdateOne {
	_u.mutation.AppendRecommendations(v)
	return _u
}

// ClearRecommendations clears the value of the "recommendations" field.
func (_u *MentalAssessmentUpdateOne) ClearRecommendations() *MentalAssessmentUpdateOne {
	_u.mutation.ClearRecommendations()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *MentalAssessmentUpdateOne) SetCompletedAt(v time.Time) *MentalAssessmentUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *MentalAssessmentUpdateOne) SetNillableCompletedAt(v *time.Time) *MentalAssessmentUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// Mutation returns the MentalAssessmentMutation object of the builder.
func (_u *MentalAssessmentUpdateOne) Mutation() *MentalAssessmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the MentalAssessmentUpdate builder.
func (_u *MentalAssessmentUpdateOne) Where(ps ...predicate.MentalAssessment) *MentalAssessmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MentalAssessmentUpdateOne) Select(field string, fields ...string) *MentalAssessmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MentalAssessment entity.
func (_u *MentalAssessmentUpdateOne) Save(ctx context.Context) (*MentalAssessment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MentalAssessmentUpdateOne) SaveX(ctx context.Context) *MentalAssessment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MentalAssessmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MentalAssessmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MentalAssessmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := mentalassessment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MentalAssessmentUpdateOne) check() error {
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := mentalassessment.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`repo: validator failed for field "MentalAssessment.assessment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskLevel(); ok {
		if err := mentalassessment.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`repo: validator failed for field "MentalAssessment.risk_level": %w`, err)}
		}
	}
	return nil
}

func (_u *MentalAssessmentUpdateOne) sqlSave(ctx context.Context) (_node *MentalAssessment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mentalassessment.Table, mentalassessment.Columns, sqlgraph.NewFieldSpec(mentalassessment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "MentalAssessment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mentalassessment.FieldID)
		for _, f := range fields {
			if !mentalassessment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != mentalassessment.FieldID {
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
		_spec.SetField(mentalassessment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(mentalassessment.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(mentalassessment.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Responses(); ok {
		_spec.SetField(mentalassessment.FieldResponses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResponses(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, mentalassessment.FieldResponses, value)
		})
	}
	if value, ok := _u.mutation.Phq9Score(); ok {
		_spec.SetField(mentalassessment.FieldPhq9Score, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPhq9Score(); ok {
		_spec.AddField(mentalassessment.FieldPhq9Score, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Gad7Score(); ok {
		_spec.SetField(mentalassessment.FieldGad7Score, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGad7Score(); ok {
		_spec.AddField(mentalassessment.FieldGad7Score, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PssScore(); ok {
		_spec.SetField(mentalassessment.FieldPssScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPssScore(); ok {
		_spec.AddField(mentalassessment.FieldPssScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WhoWellbeingScore(); ok {
		_spec.SetField(mentalassessment.FieldWhoWellbeingScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWhoWellbeingScore(); ok {
		_spec.AddField(mentalassessment.FieldWhoWellbeingScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(mentalassessment.FieldRiskLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.SuicideRisk(); ok {
		_spec.SetField(mentalassessment.FieldSuicideRisk, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Recommendations(); ok {
		_spec.SetField(mentalassessment.FieldRecommendations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecommendations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, mentalassessment.FieldRecommendations, value)
		})
	}
	if _u.mutation.RecommendationsCleared() {
		_spec.ClearField(mentalassessment.FieldRecommendations, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(mentalassessment.FieldCompletedAt, field.TypeTime, value)
	}
	_node = &MentalAssessment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mentalassessment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
