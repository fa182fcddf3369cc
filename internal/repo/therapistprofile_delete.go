// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/govently/govently_backend/internal/repo/predicate"
	"github.com/govently/govently_backend/internal/repo/therapistprofile"
)

// TherapistProfileDelete is the builder for deleting a TherapistProfile entity.
type TherapistProfileDelete struct {
	config
	hooks    []Hook
	mutation *TherapistProfileMutation
}

// Where appends a list predicates to the TherapistProfileDelete builder.
func (_d *TherapistProfileDelete) Where(ps ...predicate.TherapistProfile) *TherapistProfileDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *TherapistProfileDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TherapistProfileDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *TherapistProfileDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(therapistprofile.Table, sqlgraph.NewFieldSpec(therapistprofile.FieldID, field.TypeUUID))
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

// TherapistProfileDeleteOne is the builder for deleting a single TherapistProfile entity.
type TherapistProfileDeleteOne struct {
	_d *TherapistProfileDelete
}

// Where appends a list predicates to the TherapistProfileDelete builder.
func (_d *TherapistProfileDeleteOne) Where(ps ...predicate.TherapistProfile) *TherapistProfileDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *TherapistProfileDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{therapistprofile.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TherapistProfileDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
