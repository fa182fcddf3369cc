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
	"github.com/govently/govently_backend/internal/repo/matchresult"
)

// MatchResultCreate is the builder for creating a MatchResult entity.
type MatchResultCreate struct {
	config
	mutation *MatchResultMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *MatchResultCreate) SetCreatedAt(v time.Time) *MatchResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MatchResultCreate) SetNillableCreatedAt(v *time.Time) *MatchResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *MatchResultCreate) SetUserID(v uuid.UUID) *MatchResultCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTherapistID sets the "therapist_id" field.
func (_c *MatchResultCreate) SetTherapistID(v uuid.UUID) *MatchResultCreate {
	_c.mutation.SetTherapistID(v)
	return _c
}

// SetTotalScore sets the "total_score" field.
func (_c *MatchResultCreate) SetTotalScore(v float64) *MatchResultCreate {
	_c.mutation.SetTotalScore(v)
	return _c
}

// SetBreakdown sets the "breakdown" field.
func (_c *MatchResultCreate) SetBreakdown(v map[string]float64) *MatchResultCreate {
	_c.mutation.SetBreakdown(v)
	return _c
}

// SetCompatibilityReasons sets the "compatibility_reasons" field.
func (_c *MatchResultCreate) SetCompatibilityReasons(v []string) *MatchResultCreate {
	_c.mutation.SetCompatibilityReasons(v)
	return _c
}

// SetPotentialConcerns sets the "potential_concerns" field.
func (_c *MatchResultCreate) SetPotentialConcerns(v []string) *MatchResultCreate {
	_c.mutation.SetPotentialConcerns(v)
	return _c
}

// SetID sets the "id" field.
func (_c *MatchResultCreate) SetID(v uuid.UUID) *MatchResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MatchResultCreate) SetNillableID(v *uuid.UUID) *MatchResultCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the MatchResultMutation object of the builder.
func (_c *MatchResultCreate) Mutation() *MatchResultMutation {
	return _c.mutation
}

// Save creates the MatchResult in the database.
func (_c *MatchResultCreate) Save(ctx context.Context) (*MatchResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MatchResultCreate) SaveX(ctx context.Context) *MatchResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MatchResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MatchResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MatchResultCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := matchresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := matchresult.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MatchResultCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "MatchResult.created_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "MatchResult.user_id"`)}
	}
	if _, ok := _c.mutation.TherapistID(); !ok {
		return &ValidationError{Name: "therapist_id", err: errors.New(`repo: missing required field "MatchResult.therapist_id"`)}
	}
	if _, ok := _c.mutation.TotalScore(); !ok {
		return &ValidationError{Name: "total_score", err: errors.New(`repo: missing required field "MatchResult.total_score"`)}
	}
	if _, ok := _c.mutation.Breakdown(); !ok {
		return &ValidationError{Name: "breakdown", err: errors.New(`repo: missing required field "MatchResult.breakdown"`)}
	}
	return nil
}

func (_c *MatchResultCreate) sqlSave(ctx context.Context) (*MatchResult, error) {
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

func (_c *MatchResultCreate) createSpec() (*MatchResult, *sqlgraph.CreateSpec) {
	var (
		_node = &MatchResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(matchresult.Table, sqlgraph.NewFieldSpec(matchresult.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(matchresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(matchresult.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.TherapistID(); ok {
		_spec.SetField(matchresult.FieldTherapistID, field.TypeUUID, value)
		_node.TherapistID = value
	}
	if value, ok := _c.mutation.TotalScore(); ok {
		_spec.SetField(matchresult.FieldTotalScore, field.TypeFloat64, value)
		_node.TotalScore = value
	}
	if value, ok := _c.mutation.Breakdown(); ok {
		_spec.SetField(matchresult.FieldBreakdown, field.TypeJSON, value)
		_node.Breakdown = value
	}
	if value, ok := _c.mutation.CompatibilityReasons(); ok {
		_spec.SetField(matchresult.FieldCompatibilityReasons, field.TypeJSON, value)
		_node.CompatibilityReasons = value
	}
	if value, ok := _c.mutation.PotentialConcerns(); ok {
		_spec.SetField(matchresult.FieldPotentialConcerns, field.TypeJSON, value)
		_node.PotentialConcerns = value
	}
	return _node, _spec
}

// MatchResultCreateBulk is the builder for creating many MatchResult entities in bulk.
type MatchResultCreateBulk struct {
	config
	err      error
	builders []*MatchResultCreate
}

// Save creates the MatchResult entities in the database.
func (_c *MatchResultCreateBulk) Save(ctx context.Context) ([]*MatchResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MatchResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MatchResultMutation)
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
func (_c *MatchResultCreateBulk) SaveX(ctx context.Context) []*MatchResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MatchResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MatchResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
