// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/curaline/curaline_backend/internal/repo/availabilityslot"
	"github.com/curaline/curaline_backend/internal/repo/predicate"
)

// AvailabilitySlotDelete is the builder for deleting a AvailabilitySlot entity.
type AvailabilitySlotDelete struct {
	config
	hooks    []Hook
	mutation *AvailabilitySlotMutation
}

// Where appends a list predicates to the AvailabilitySlotDelete builder.
func (_d *AvailabilitySlotDelete) Where(ps ...predicate.AvailabilitySlot) *AvailabilitySlotDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AvailabilitySlotDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AvailabilitySlotDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AvailabilitySlotDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(availabilityslot.Table, sqlgraph.NewFieldSpec(availabilityslot.FieldID, field.TypeUUID))
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

// AvailabilitySlotDeleteOne is the builder for deleting a single AvailabilitySlot entity.
type AvailabilitySlotDeleteOne struct {
	_d *AvailabilitySlotDelete
}

// Where appends a list predicates to the AvailabilitySlotDelete builder.
func (_d *AvailabilitySlotDeleteOne) Where(ps ...predicate.AvailabilitySlot) *AvailabilitySlotDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AvailabilitySlotDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{availabilityslot.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AvailabilitySlotDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
