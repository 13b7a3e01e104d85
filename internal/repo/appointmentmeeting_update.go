// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/curaline/curaline_backend/internal/repo/appointmentmeeting"
	"github.com/curaline/curaline_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// AppointmentMeetingUpdate is the builder for updating AppointmentMeeting entities.
type AppointmentMeetingUpdate struct {
	config
	hooks    []Hook
	mutation *AppointmentMeetingMutation
}

// Where appends a list predicates to the AppointmentMeetingUpdate builder.
func (_u *AppointmentMeetingUpdate) Where(ps ...predicate.AppointmentMeeting) *AppointmentMeetingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppointmentMeetingUpdate) SetUpdatedAt(v time.Time) *AppointmentMeetingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAppointmentID sets the "appointment_id" field.
func (_u *AppointmentMeetingUpdate) SetAppointmentID(v uuid.UUID) *AppointmentMeetingUpdate {
	_u.mutation.SetAppointmentID(v)
	return _u
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_u *AppointmentMeetingUpdate) SetNillableAppointmentID(v *uuid.UUID) *AppointmentMeetingUpdate {
	if v != nil {
		_u.SetAppointmentID(*v)
	}
	return _u
}

// ClearAppointmentID clears the value of the "appointment_id" field.
func (_u *AppointmentMeetingUpdate) ClearAppointmentID() *AppointmentMeetingUpdate {
	_u.mutation.ClearAppointmentID()
	return _u
}

// SetMeetLink sets the "meet_link" field.
func (_u *AppointmentMeetingUpdate) SetMeetLink(v string) *AppointmentMeetingUpdate {
	_u.mutation.SetMeetLink(v)
	return _u
}

// SetNillableMeetLink sets the "meet_link" field if the given value is not nil.
func (_u *AppointmentMeetingUpdate) SetNillableMeetLink(v *string) *AppointmentMeetingUpdate {
	if v != nil {
		_u.SetMeetLink(*v)
	}
	return _u
}

// SetCalendarEventID sets the "calendar_event_id" field.
func (_u *AppointmentMeetingUpdate) SetCalendarEventID(v string) *AppointmentMeetingUpdate {
	_u.mutation.SetCalendarEventID(v)
	return _u
}

// SetNillableCalendarEventID sets the "calendar_event_id" field if the given value is not nil.
func (_u *AppointmentMeetingUpdate) SetNillableCalendarEventID(v *string) *AppointmentMeetingUpdate {
	if v != nil {
		_u.SetCalendarEventID(*v)
	}
	return _u
}

// ClearCalendarEventID clears the value of the "calendar_event_id" field.
func (_u *AppointmentMeetingUpdate) ClearCalendarEventID() *AppointmentMeetingUpdate {
	_u.mutation.ClearCalendarEventID()
	return _u
}

// Mutation returns the AppointmentMeetingMutation object of the builder.
func (_u *AppointmentMeetingUpdate) Mutation() *AppointmentMeetingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AppointmentMeetingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentMeetingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AppointmentMeetingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentMeetingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppointmentMeetingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appointmentmeeting.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentMeetingUpdate) check() error {
	if v, ok := _u.mutation.MeetLink(); ok {
		if err := appointmentmeeting.MeetLinkValidator(v); err != nil {
			return &ValidationError{Name: "meet_link", err: fmt.Errorf(`repo: validator failed for field "AppointmentMeeting.meet_link": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CalendarEventID(); ok {
		if err := appointmentmeeting.CalendarEventIDValidator(v); err != nil {
			return &ValidationError{Name: "calendar_event_id", err: fmt.Errorf(`repo: validator failed for field "AppointmentMeeting.calendar_event_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AppointmentMeetingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointmentmeeting.Table, appointmentmeeting.Columns, sqlgraph.NewFieldSpec(appointmentmeeting.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(appointmentmeeting.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AppointmentID(); ok {
		_spec.SetField(appointmentmeeting.FieldAppointmentID, field.TypeUUID, value)
	}
	if _u.mutation.AppointmentIDCleared() {
		_spec.ClearField(appointmentmeeting.FieldAppointmentID, field.TypeUUID)
	}
	if value, ok := _u.mutation.MeetLink(); ok {
		_spec.SetField(appointmentmeeting.FieldMeetLink, field.TypeString, value)
	}
	if value, ok := _u.mutation.CalendarEventID(); ok {
		_spec.SetField(appointmentmeeting.FieldCalendarEventID, field.TypeString, value)
	}
	if _u.mutation.CalendarEventIDCleared() {
		_spec.ClearField(appointmentmeeting.FieldCalendarEventID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointmentmeeting.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AppointmentMeetingUpdateOne is the builder for updating a single AppointmentMeeting entity.
type AppointmentMeetingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AppointmentMeetingMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppointmentMeetingUpdateOne) SetUpdatedAt(v time.Time) *AppointmentMeetingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAppointmentID sets the "appointment_id" field.
func (_u *AppointmentMeetingUpdateOne) SetAppointmentID(v uuid.UUID) *AppointmentMeetingUpdateOne {
	_u.mutation.SetAppointmentID(v)
	return _u
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_u *AppointmentMeetingUpdateOne) SetNillableAppointmentID(v *uuid.UUID) *AppointmentMeetingUpdateOne {
	if v != nil {
		_u.SetAppointmentID(*v)
	}
	return _u
}

// ClearAppointmentID clears the value of the "appointment_id" field.
func (_u *AppointmentMeetingUpdateOne) ClearAppointmentID() *AppointmentMeetingUpdateOne {
	_u.mutation.ClearAppointmentID()
	return _u
}

// SetMeetLink sets the "meet_link" field.
func (_u *AppointmentMeetingUpdateOne) SetMeetLink(v string) *AppointmentMeetingUpdateOne {
	_u.mutation.SetMeetLink(v)
	return _u
}

// SetNillableMeetLink sets the "meet_link" field if the given value is not nil.
func (_u *AppointmentMeetingUpdateOne) SetNillableMeetLink(v *string) *AppointmentMeetingUpdateOne {
	if v != nil {
		_u.SetMeetLink(*v)
	}
	return _u
}

// SetCalendarEventID sets the "calendar_event_id" field.
func (_u *AppointmentMeetingUpdateOne) SetCalendarEventID(v string) *AppointmentMeetingUpdateOne {
	_u.mutation.SetCalendarEventID(v)
	return _u
}

// SetNillableCalendarEventID sets the "calendar_event_id" field if the given value is not nil.
func (_u *AppointmentMeetingUpdateOne) SetNillableCalendarEventID(v *string) *AppointmentMeetingUpdateOne {
	if v != nil {
		_u.SetCalendarEventID(*v)
	}
	return _u
}

// ClearCalendarEventID clears the value of the "calendar_event_id" field.
func (_u *AppointmentMeetingUpdateOne) ClearCalendarEventID() *AppointmentMeetingUpdateOne {
	_u.mutation.ClearCalendarEventID()
	return _u
}

// Mutation returns the AppointmentMeetingMutation object of the builder.
func (_u *AppointmentMeetingUpdateOne) Mutation() *AppointmentMeetingMutation {
	return _u.mutation
}

// Where appends a list predicates to the AppointmentMeetingUpdate builder.
func (_u *AppointmentMeetingUpdateOne) Where(ps ...predicate.AppointmentMeeting) *AppointmentMeetingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AppointmentMeetingUpdateOne) Select(field string, fields ...string) *AppointmentMeetingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AppointmentMeeting entity.
func (_u *AppointmentMeetingUpdateOne) Save(ctx context.Context) (*AppointmentMeeting, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentMeetingUpdateOne) SaveX(ctx context.Context) *AppointmentMeeting {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AppointmentMeetingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentMeetingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppointmentMeetingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appointmentmeeting.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentMeetingUpdateOne) check() error {
	if v, ok := _u.mutation.MeetLink(); ok {
		if err := appointmentmeeting.MeetLinkValidator(v); err != nil {
			return &ValidationError{Name: "meet_link", err: fmt.Errorf(`repo: validator failed for field "AppointmentMeeting.meet_link": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CalendarEventID(); ok {
		if err := appointmentmeeting.CalendarEventIDValidator(v); err != nil {
			return &ValidationError{Name: "calendar_event_id", err: fmt.Errorf(`repo: validator failed for field "AppointmentMeeting.calendar_event_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AppointmentMeetingUpdateOne) sqlSave(ctx context.Context) (_node *AppointmentMeeting, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointmentmeeting.Table, appointmentmeeting.Columns, sqlgraph.NewFieldSpec(appointmentmeeting.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "AppointmentMeeting.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, appointmentmeeting.FieldID)
		for _, f := range fields {
			if !appointmentmeeting.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != appointmentmeeting.FieldID {
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
		_spec.SetField(appointmentmeeting.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AppointmentID(); ok {
		_spec.SetField(appointmentmeeting.FieldAppointmentID, field.TypeUUID, value)
	}
	if _u.mutation.AppointmentIDCleared() {
		_spec.ClearField(appointmentmeeting.FieldAppointmentID, field.TypeUUID)
	}
	if value, ok := _u.mutation.MeetLink(); ok {
		_spec.SetField(appointmentmeeting.FieldMeetLink, field.TypeString, value)
	}
	if value, ok := _u.mutation.CalendarEventID(); ok {
		_spec.SetField(appointmentmeeting.FieldCalendarEventID, field.TypeString, value)
	}
	if _u.mutation.CalendarEventIDCleared() {
		_spec.ClearField(appointmentmeeting.FieldCalendarEventID, field.TypeString)
	}
	_node = &AppointmentMeeting{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointmentmeeting.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
