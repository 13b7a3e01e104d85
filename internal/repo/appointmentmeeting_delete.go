// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/curaline/curaline_backend/internal/repo/appointmentmeeting"
	"github.com/curaline/curaline_backend/internal/repo/predicate"
)

// AppointmentMeetingDelete is the builder for deleting a AppointmentMeeting entity.
type AppointmentMeetingDelete struct {
	config
	hooks    []Hook
	mutation *AppointmentMeetingMutation
}

// Where appends a list predicates to the AppointmentMeetingDelete builder.
func (_d *AppointmentMeetingDelete) Where(ps ...predicate.AppointmentMeeting) *AppointmentMeetingDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AppointmentMeetingDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AppointmentMeetingDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AppointmentMeetingDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(appointmentmeeting.Table, sqlgraph.NewFieldSpec(appointmentmeeting.FieldID, field.TypeUUID))
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

// AppointmentMeetingDeleteOne is the builder for deleting a single AppointmentMeeting entity.
type AppointmentMeetingDeleteOne struct {
	_d *AppointmentMeetingDelete
}

// Where appends a list predicates to the AppointmentMeetingDelete builder.
func (_d *AppointmentMeetingDeleteOne) Where(ps ...predicate.AppointmentMeeting) *AppointmentMeetingDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AppointmentMeetingDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{appointmentmeeting.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AppointmentMeetingDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
