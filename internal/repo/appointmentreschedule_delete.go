// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/curaline/curaline_backend/internal/repo/appointmentreschedule"
	"github.com/curaline/curaline_backend/internal/repo/predicate"
)

// AppointmentRescheduleDelete is the builder for deleting a AppointmentReschedule entity.
type AppointmentRescheduleDelete struct {
	config
	hooks    []Hook
	mutation *AppointmentRescheduleMutation
}

// Where appends a list predicates to the AppointmentRescheduleDelete builder.
func (_d *AppointmentRescheduleDelete) Where(ps ...predicate.AppointmentReschedule) *AppointmentRescheduleDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AppointmentRescheduleDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AppointmentRescheduleDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AppointmentRescheduleDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(appointmentreschedule.Table, sqlgraph.NewFieldSpec(appointmentreschedule.FieldID, field.TypeUUID))
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

// AppointmentRescheduleDeleteOne is the builder for deleting a single AppointmentReschedule entity.
type AppointmentRescheduleDeleteOne struct {
	_d *AppointmentRescheduleDelete
}

// Where appends a list predicates to the AppointmentRescheduleDelete builder.
func (_d *AppointmentRescheduleDeleteOne) Where(ps ...predicate.AppointmentReschedule) *AppointmentRescheduleDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AppointmentRescheduleDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{appointmentreschedule.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AppointmentRescheduleDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
