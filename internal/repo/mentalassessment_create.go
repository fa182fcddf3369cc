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
	"github.com/govently/govently_backend/internal/repo/mentalassessment"
)

// MentalAssessmentCreate is the builder for creating a MentalAssessment entity.
type MentalAssessmentCreate struct {
	config
	mutation *MentalAssessmentMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *MentalAssessmentCreate) SetCreatedAt(v time.Time) *MentalAssessmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MentalAssessmentCreate) SetNillableCreatedAt(v *time.Time) *MentalAssessmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MentalAssessmentCreate) SetUpdatedAt(v time.Time) *MentalAssessmentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MentalAssessmentCreate) SetNillableUpdatedAt(v *time.Time) *MentalAssessmentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *MentalAssessmentCreate) SetUserID(v uuid.UUID) *MentalAssessmentCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetAssessmentID sets the "assessment_id" field.
func (_c *MentalAssessmentCreate) SetAssessmentID(v string) *MentalAssessmentCreate {
	_c.mutation.SetAssessmentID(v)
	return _c
}

// SetResponses sets the "responses" field.
func (_c *MentalAssessmentCreate) SetResponses(v []map[string]interface{}) *MentalAssessmentCreate {
	_c.mutation.SetResponses(v)
	return _c
}

// SetPhq9Score sets the "phq9_score" field.
func (_c *MentalAssessmentCreate) SetPhq9Score(v int) *MentalAssessmentCreate {
	_c.mutation.SetPhq9Score(v)
	return _c
}

// SetGad7Score sets the "gad7_score" field.
func (_c *MentalAssessmentCreate) SetGad7Score(v int) *MentalAssessmentCreate {
	_c.mutation.SetGad7Score(v)
	return _c
}

// SetPssScore sets the "pss_score" field.
func (_c *MentalAssessmentCreate) SetPssScore(v int) *MentalAssessmentCreate {
	_c.mutation.SetPssScore(v)
	return _c
}

// SetWhoWellbeingScore sets the "who_wellbeing_score" field.
func (_c *MentalAssessmentCreate) SetWhoWellbeingScore(v int) *MentalAssessmentCreate {
	_c.mutation.SetWhoWellbeingScore(v)
	return _c
}

// SetRiskLevel sets the "risk_level" field.
func (_c *MentalAssessmentCreate) SetRiskLevel(v string) *MentalAssessmentCreate {
	_c.mutation.SetRiskLevel(v)
	return _c
}

// SetSuicideRisk sets the "suicide_risk" field.
func (_c *MentalAssessmentCreate) SetSuicideRisk(v bool) *MentalAssessmentCreate {
	_c.mutation.SetSuicideRisk(v)
	return _c
}

// SetNillableSuicideRisk sets the "suicide_risk" field if the given value is not nil.
func (_c *MentalAssessmentCreate) SetNillableSuicideRisk(v *bool) *MentalAssessmentCreate {
	if v != nil {
		_c.SetSuicideRisk(*v)
	}
	return _c
}

// SetRecommendations sets the "recommendations" field.
func (_c *MentalAssessmentCreate) SetRecommendations(v []string) *MentalAssessmentCreate {
	_c.mutation.SetRecommendations(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *MentalAssessmentCreate) SetCompletedAt(v time.Time) *MentalAssessmentCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *MentalAssessmentCreate) SetNillableCompletedAt(v *time.Time) *MentalAssessmentCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MentalAssessmentCreate) SetID(v uuid.UUID) *MentalAssessmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MentalAssessmentCreate) SetNillableID(v *uuid.UUID) *MentalAssessmentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the MentalAssessmentMutation object of the builder.
func (_c *MentalAssessmentCreate) Mutation() *MentalAssessmentMutation {
	return _c.mutation
}

// Save creates the MentalAssessment in the database.
func (_c *MentalAssessmentCreate) Save(ctx context.Context) (*MentalAssessment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MentalAssessmentCreate) SaveX(ctx context.Context) *MentalAssessment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MentalAssessmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MentalAssessmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MentalAssessmentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := mentalassessment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := mentalassessment.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.SuicideRisk(); !ok {
		v := mentalassessment.DefaultSuicideRisk
		_c.mutation.SetSuicideRisk(v)
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		v := mentalassessment.DefaultCompletedAt()
		_c.mutation.SetCompletedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := mentalassessment.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MentalAssessmentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "MentalAssessment.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "MentalAssessment.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "MentalAssessment.user_id"`)}
	}
	if _, ok := _c.mutation.AssessmentID(); !ok {
		return &ValidationError{Name: "assessment_id", err: errors.New(`repo: missing required field "MentalAssessment.assessment_id"`)}
	}
	if v, ok := _c.mutation.AssessmentID(); ok {
		if err := mentalassessment.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`repo: validator failed for field "MentalAssessment.assessment_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Responses(); !ok {
		return &ValidationError{Name: "responses", err: errors.New(`repo: missing required field "MentalAssessment.responses"`)}
	}
	if _, ok := _c.mutation.Phq9Score(); !ok {
		return &ValidationError{Name: "phq9_score", err: errors.New(`repo: missing required field "MentalAssessment.phq9_score"`)}
	}
	if _, ok := _c.mutation.Gad7Score(); !ok {
		return &ValidationError{Name: "gad7_score", err: errors.New(`repo: missing required field "MentalAssessment.gad7_score"`)}
	}
	if _, ok := _c.mutation.PssScore(); !ok {
		return &ValidationError{Name: "pss_score", err: errors.New(`repo: missing required field "MentalAssessment.pss_score"`)}
	}
	if _, ok := _c.mutation.WhoWellbeingScore(); !ok {
		return &ValidationError{Name: "who_wellbeing_score", err: errors.New(`repo: missing required field "MentalAssessment.who_wellbeing_score"`)}
	}
	if _, ok := _c.mutation.RiskLevel(); !ok {
		return &ValidationError{Name: "risk_level", err: errors.New(`repo: missing required field "MentalAssessment.risk_level"`)}
	}
	if v, ok := _c.mutation.RiskLevel(); ok {
		if err := mentalassessment.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`repo: validator failed for field "MentalAssessment.risk_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SuicideRisk(); !ok {
		return &ValidationError{Name: "suicide_risk", err: errors.New(`repo: missing required field "MentalAssessment.suicide_risk"`)}
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		return &ValidationError{Name: "completed_at", err: errors.New(`repo: missing required field "MentalAssessment.completed_at"`)}
	}
	return nil
}

func (_c *MentalAssessmentCreate) sqlSave(ctx context.Context) (*MentalAssessment, error) {
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

func (_c *MentalAssessmentCreate) createSpec() (*MentalAssessment, *sqlgraph.CreateSpec) {
	var (
		_node = &MentalAssessment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mentalassessment.Table, sqlgraph.NewFieldSpec(mentalassessment.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(mentalassessment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(mentalassessment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(mentalassessment.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.AssessmentID(); ok {
		_spec.SetField(mentalassessment.FieldAssessmentID, field.TypeString, value)
		_node.AssessmentID = value
	}
	if value, ok := _c.mutation.Responses(); ok {
		_spec.SetField(mentalassessment.FieldResponses, field.TypeJSON, value)
		_node.Responses = value
	}
	if value, ok := _c.mutation.Phq9Score(); ok {
		_spec.SetField(mentalassessment.FieldPhq9Score, field.TypeInt, value)
		_node.Phq9Score = value
	}
	if value, ok := _c.mutation.Gad7Score(); ok {
		_spec.SetField(mentalassessment.FieldGad7Score, field.TypeInt, value)
		_node.Gad7Score = value
	}
	if value, ok := _c.mutation.PssScore(); ok {
		_spec.SetField(mentalassessment.FieldPssScore, field.TypeInt, value)
		_node.PssScore = value
	}
	if value, ok := _c.mutation.WhoWellbeingScore(); ok {
		_spec.SetField(mentalassessment.FieldWhoWellbeingScore, field.TypeInt, value)
		_node.WhoWellbeingScore = value
	}
	if value, ok := _c.mutation.RiskLevel(); ok {
		_spec.SetField(mentalassessment.FieldRiskLevel, field.TypeString, value)
		_node.RiskLevel = value
	}
	if value, ok := _c.mutation.SuicideRisk(); ok {
		_spec.SetField(mentalassessment.FieldSuicideRisk, field.TypeBool, value)
		_node.SuicideRisk = value
	}
	if value, ok := _c.mutation.Recommendations(); ok {
		_spec.SetField(mentalassessment.FieldRecommendations, field.TypeJSON, value)
		_node.Recommendations = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(mentalassessment.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = value
	}
	return _node, _spec
}

// MentalAssessmentCreateBulk is the builder for creating many MentalAssessment entities in bulk.
type MentalAssessmentCreateBulk struct {
	config
	err      error
	builders []*MentalAssessmentCreate
}

// Save creates the MentalAssessment entities in the database.
func (_c *MentalAssessmentCreateBulk) Save(ctx context.Context) ([]*MentalAssessment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MentalAssessment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MentalAssessmentMutation)
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
func (_c *MentalAssessmentCreateBulk) SaveX(ctx context.Context) []*MentalAssessment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MentalAssessmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MentalAssessmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
