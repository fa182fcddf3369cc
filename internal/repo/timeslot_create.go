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
	"github.com/govently/govently_backend/internal/repo/timeslot"
)

// TimeSlotCreate is the builder for creating a TimeSlot entity.
type TimeSlotCreate struct {
	config
	mutation *TimeSlotMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *TimeSlotCreate) SetCreatedAt(v time.Time) *TimeSlotCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TimeSlotCreate) SetNillableCreatedAt(v *time.Time) *TimeSlotCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TimeSlotCreate) SetUpdatedAt(v time.Time) *TimeSlotCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TimeSlotCreate) SetNillableUpdatedAt(v *time.Time) *TimeSlotCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetTherapistID sets the "therapist_id" field.
func (_c *TimeSlotCreate) SetTherapistID(v uuid.UUID) *TimeSlotCreate {
	_c.mutation.SetTherapistID(v)
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *TimeSlotCreate) SetStartTime(v time.Time) *TimeSlotCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *TimeSlotCreate) SetEndTime(v time.Time) *TimeSlotCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetDurationMin sets the "duration_min" field.
func (_c *TimeSlotCreate) SetDurationMin(v int) *TimeSlotCreate {
	_c.mutation.SetDurationMin(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TimeSlotCreate) SetStatus(v timeslot.Status) *TimeSlotCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TimeSlotCreate) SetNillableStatus(v *timeslot.Status) *TimeSlotCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TimeSlotCreate) SetID(v uuid.UUID) *TimeSlotCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TimeSlotCreate) SetNillableID(v *uuid.UUID) *TimeSlotCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the TimeSlotMutation object of the builder.
func (_c *TimeSlotCreate) Mutation() *TimeSlotMutation {
	return _c.mutation
}

// Save creates the TimeSlot in the database.
func (_c *TimeSlotCreate) Save(ctx context.Context) (*TimeSlot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TimeSlotCreate) SaveX(ctx context.Context) *TimeSlot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TimeSlotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TimeSlotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TimeSlotCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := timeslot.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := timeslot.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := timeslot.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := timeslot.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TimeSlotCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "TimeSlot.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "TimeSlot.updated_at"`)}
	}
	if _, ok := _c.mutation.TherapistID(); !ok {
		return &ValidationError{Name: "therapist_id", err: errors.New(`repo: missing required field "TimeSlot.therapist_id"`)}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`repo: missing required field "TimeSlot.start_time"`)}
	}
	if _, ok := _c.mutation.EndTime(); !ok {
		return &ValidationError{Name: "end_time", err: errors.New(`repo: missing required field "TimeSlot.end_time"`)}
	}
	if _, ok := _c.mutation.DurationMin(); !ok {
		return &ValidationError{Name: "duration_min", err: errors.New(`repo: missing required field "TimeSlot.duration_min"`)}
	}
	if v, ok := _c.mutation.DurationMin(); ok {
		if err := timeslot.DurationMinValidator(v); err != nil {
			return &ValidationError{Name: "duration_min", err: fmt.Errorf(`repo: validator failed for field "TimeSlot.duration_min": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "TimeSlot.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := timeslot.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "TimeSlot.status": %w`, err)}
		}
	}
	return nil
}

func (_c *TimeSlotCreate) sqlSave(ctx context.Context) (*TimeSlot, error) {
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

func (_c *TimeSlotCreate) createSpec() (*TimeSlot, *sqlgraph.CreateSpec) {
	var (
		_node = &TimeSlot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(timeslot.Table, sqlgraph.NewFieldSpec(timeslot.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(timeslot.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(timeslot.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.TherapistID(); ok {
		_spec.SetField(timeslot.FieldTherapistID, field.TypeUUID, value)
		_node.TherapistID = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(timeslot.FieldStartTime, field.TypeTime, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(timeslot.FieldEndTime, field.TypeTime, value)
		_node.EndTime = value
	}
	if value, ok := _c.mutation.DurationMin(); ok {
		_spec.SetField(timeslot.FieldDurationMin, field.TypeInt, value)
		_node.DurationMin = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(timeslot.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	return _node, _spec
}

// TimeSlotCreateBulk is the builder for creating many TimeSlot entities in bulk.
type TimeSlotCreateBulk struct {
	config
	err      error
	builders []*TimeSlotCreate
}

// Save creates the TimeSlot entities in the database.
func (_c *TimeSlotCreateBulk) Save(ctx context.Context) ([]*TimeSlot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TimeSlot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TimeSlotMutation)
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
func (_c *TimeSlotCreateBulk) SaveX(ctx context.Context) []*TimeSlot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TimeSlotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TimeSlotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
