// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/govently/govently_backend/internal/repo/mentalassessment"
	"github.com/govently/govently_backend/internal/repo/predicate"
)

// MentalAssessmentDelete is the builder for deleting a MentalAssessment entity.
type MentalAssessmentDelete struct {
	config
	hooks    []Hook
	mutation *MentalAssessmentMutation
}

// Where appends a list predicates to the MentalAssessmentDelete builder.
func (_d *MentalAssessmentDelete) Where(ps ...predicate.MentalAssessment) *MentalAssessmentDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *MentalAssessmentDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MentalAssessmentDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *MentalAssessmentDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(mentalassessment.Table, sqlgraph.NewFieldSpec(mentalassessment.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// MentalAssessmentDeleteOne is the builder for deleting a single MentalAssessment entity.
type MentalAssessmentDeleteOne struct {
	_d *MentalAssessmentDelete
}

// Where appends a list predicates to the MentalAssessmentDelete builder.
func (_d *MentalAssessmentDeleteOne) Where(ps ...predicate.MentalAssessment) *MentalAssessmentDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *MentalAssessmentDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{mentalassessment.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MentalAssessmentDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
