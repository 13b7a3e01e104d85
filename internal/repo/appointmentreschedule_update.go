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
	"github.com/curaline/curaline_backend/internal/repo/appointmentreschedule"
	"github.com/curaline/curaline_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// AppointmentRescheduleUpdate is the builder for updating AppointmentReschedule entities.
type AppointmentRescheduleUpdate struct {
	config
	hooks    []Hook
	mutation *AppointmentRescheduleMutation
}

// Where appends a list predicates to the AppointmentRescheduleUpdate builder.
func (_u *AppointmentRescheduleUpdate) Where(ps ...predicate.AppointmentReschedule) *AppointmentRescheduleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppointmentRescheduleUpdate) SetUpdatedAt(v time.Time) *AppointmentRescheduleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAppointmentID sets the "appointment_id" field.
func (_u *AppointmentRescheduleUpdate) SetAppointmentID(v uuid.UUID) *AppointmentRescheduleUpdate {
	_u.mutation.SetAppointmentID(v)
	return _u
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_u *AppointmentRescheduleUpdate) SetNillableAppointmentID(v *uuid.UUID) *AppointmentRescheduleUpdate {
	if v != nil {
		_u.SetAppointmentID(*v)
	}
	return _u
}

// SetOldAvailabilityID sets the "old_availability_id" field.
func (_u *AppointmentRescheduleUpdate) SetOldAvailabilityID(v uuid.UUID) *AppointmentRescheduleUpdate {
	_u.mutation.SetOldAvailabilityID(v)
	return _u
}

// SetNillableOldAvailabilityID sets the "old_availability_id" field if the given value is not nil.
func (_u *AppointmentRescheduleUpdate) SetNillableOldAvailabilityID(v *uuid.UUID) *AppointmentRescheduleUpdate {
	if v != nil {
		_u.SetOldAvailabilityID(*v)
	}
	return _u
}

// SetNewAvailabilityID sets the "new_availability_id" field.
func (_u *AppointmentRescheduleUpdate) SetNewAvailabilityID(v uuid.UUID) *AppointmentRescheduleUpdate {
	_u.mutation.SetNewAvailabilityID(v)
	return _u
}

// SetNillableNewAvailabilityID sets the "new_availability_id" field if the given value is not nil.
func (_u *AppointmentRescheduleUpdate) SetNillableNewAvailabilityID(v *uuid.UUID) *AppointmentRescheduleUpdate {
	if v != nil {
		_u.SetNewAvailabilityID(*v)
	}
	return _u
}

// SetRequestedBy sets the "requested_by" field.
func (_u *AppointmentRescheduleUpdate) SetRequestedBy(v uuid.UUID) *AppointmentRescheduleUpdate {
	_u.mutation.SetRequestedBy(v)
	return _u
}

// SetNillableRequestedBy sets the "requested_by" field if the given value is not nil.
func (_u *AppointmentRescheduleUpdate) SetNillableRequestedBy(v *uuid.UUID) *AppointmentRescheduleUpdate {
	if v != nil {
		_u.SetRequestedBy(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AppointmentRescheduleUpdate) SetStatus(v appointmentreschedule.Status) *AppointmentRescheduleUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AppointmentRescheduleUpdate) SetNillableStatus(v *appointmentreschedule.Status) *AppointmentRescheduleUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the AppointmentRescheduleMutation object of the builder.
func (_u *AppointmentRescheduleUpdate) Mutation() *AppointmentRescheduleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AppointmentRescheduleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentRescheduleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AppointmentRescheduleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentRescheduleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppointmentRescheduleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appointmentreschedule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentRescheduleUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := appointmentreschedule.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "AppointmentReschedule.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AppointmentRescheduleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointmentreschedule.Table, appointmentreschedule.Columns, sqlgraph.NewFieldSpec(appointmentreschedule.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(appointmentreschedule.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AppointmentID(); ok {
		_spec.SetField(appointmentreschedule.FieldAppointmentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.OldAvailabilityID(); ok {
		_spec.SetField(appointmentreschedule.FieldOldAvailabilityID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.NewAvailabilityID(); ok {
		_spec.SetField(appointmentreschedule.FieldNewAvailabilityID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.RequestedBy(); ok {
		_spec.SetField(appointmentreschedule.FieldRequestedBy, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(appointmentreschedule.FieldStatus, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointmentreschedule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AppointmentRescheduleUpdateOne is the builder for updating a single AppointmentReschedule entity.
type AppointmentRescheduleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AppointmentRescheduleMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppointmentRescheduleUpdateOne) SetUpdatedAt(v time.Time) *AppointmentRescheduleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAppointmentID sets the "appointment_id" field.
func (_u *AppointmentRescheduleUpdateOne) SetAppointmentID(v uuid.UUID) *AppointmentRescheduleUpdateOne {
	_u.mutation.SetAppointmentID(v)
	return _u
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_u *AppointmentRescheduleUpdateOne) SetNillableAppointmentID(v *uuid.UUID) *AppointmentRescheduleUpdateOne {
	if v != nil {
		_u.SetAppointmentID(*v)
	}
	return _u
}

// SetOldAvailabilityID sets the "old_availability_id" field.
func (_u *AppointmentRescheduleUpdateOne) SetOldAvailabilityID(v uuid.UUID) *AppointmentRescheduleUpdateOne {
	_u.mutation.SetOldAvailabilityID(v)
	return _u
}

// SetNillableOldAvailabilityID sets the "old_availability_id" field if the given value is not nil.
func (_u *AppointmentRescheduleUpdateOne) SetNillableOldAvailabilityID(v *uuid.UUID) *AppointmentRescheduleUpdateOne {
	if v != nil {
		_u.SetOldAvailabilityID(*v)
	}
	return _u
}

// SetNewAvailabilityID sets the "new_availability_id" field.
func (_u *AppointmentRescheduleUpdateOne) SetNewAvailabilityID(v uuid.UUID) *AppointmentRescheduleUpdateOne {
	_u.mutation.SetNewAvailabilityID(v)
	return _u
}

// SetNillableNewAvailabilityID sets the "new_availability_id" field if the given value is not nil.
func (_u *AppointmentRescheduleUpdateOne) SetNillableNewAvailabilityID(v *uuid.UUID) *AppointmentRescheduleUpdateOne {
	if v != nil {
		_u.SetNewAvailabilityID(*v)
	}
	return _u
}

// SetRequestedBy sets the "requested_by" field.
func (_u *AppointmentRescheduleUpdateOne) SetRequestedBy(v uuid.UUID) *AppointmentRescheduleUpdateOne {
	_u.mutation.SetRequestedBy(v)
	return _u
}

// SetNillableRequestedBy sets the "requested_by" field if the given value is not nil.
func (_u *AppointmentRescheduleUpdateOne) SetNillableRequestedBy(v *uuid.UUID) *AppointmentRescheduleUpdateOne {
	if v != nil {
		_u.SetRequestedBy(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AppointmentRescheduleUpdateOne) SetStatus(v appointmentreschedule.Status) *AppointmentRescheduleUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AppointmentRescheduleUpdateOne) SetNillableStatus(v *appointmentreschedule.Status) *AppointmentRescheduleUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the AppointmentRescheduleMutation object of the builder.
func (_u *AppointmentRescheduleUpdateOne) Mutation() *AppointmentRescheduleMutation {
	return _u.mutation
}

// Where appends a list predicates to the AppointmentRescheduleUpdate builder.
func (_u *AppointmentRescheduleUpdateOne) Where(ps ...predicate.AppointmentReschedule) *AppointmentRescheduleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AppointmentRescheduleUpdateOne) Select(field string, fields ...string) *AppointmentRescheduleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AppointmentReschedule entity.
func (_u *AppointmentRescheduleUpdateOne) Save(ctx context.Context) (*AppointmentReschedule, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentRescheduleUpdateOne) SaveX(ctx context.Context) *AppointmentReschedule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AppointmentRescheduleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentRescheduleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppointmentRescheduleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appointmentreschedule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentRescheduleUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := appointmentreschedule.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "AppointmentReschedule.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AppointmentRescheduleUpdateOne) sqlSave(ctx context.Context) (_node *AppointmentReschedule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointmentreschedule.Table, appointmentreschedule.Columns, sqlgraph.NewFieldSpec(appointmentreschedule.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "AppointmentReschedule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, appointmentreschedule.FieldID)
		for _, f := range fields {
			if !appointmentreschedule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != appointmentreschedule.FieldID {
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
		_spec.SetField(appointmentreschedule.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AppointmentID(); ok {
		_spec.SetField(appointmentreschedule.FieldAppointmentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.OldAvailabilityID(); ok {
		_spec.SetField(appointmentreschedule.FieldOldAvailabilityID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.NewAvailabilityID(); ok {
		_spec.SetField(appointmentreschedule.FieldNewAvailabilityID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.RequestedBy(); ok {
		_spec.SetField(appointmentreschedule.FieldRequestedBy, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(appointmentreschedule.FieldStatus, field.TypeEnum, value)
	}
	_node = &AppointmentReschedule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointmentreschedule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
