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
	"github.com/curaline/curaline_backend/internal/repo/availabilityslot"
	"github.com/curaline/curaline_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// AvailabilitySlotUpdate is the builder for updating AvailabilitySlot entities.
type AvailabilitySlotUpdate struct {
	config
	hooks    []Hook
	mutation *AvailabilitySlotMutation
}

// Where appends a list predicates to the AvailabilitySlotUpdate builder.
func (_u *AvailabilitySlotUpdate) Where(ps ...predicate.AvailabilitySlot) *AvailabilitySlotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AvailabilitySlotUpdate) SetUpdatedAt(v time.Time) *AvailabilitySlotUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *AvailabilitySlotUpdate) SetDoctorID(v uuid.UUID) *AvailabilitySlotUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *AvailabilitySlotUpdate) SetNillableDoctorID(v *uuid.UUID) *AvailabilitySlotUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *AvailabilitySlotUpdate) SetStartTime(v time.Time) *AvailabilitySlotUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *AvailabilitySlotUpdate) SetNillableStartTime(v *time.Time) *AvailabilitySlotUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *AvailabilitySlotUpdate) SetEndTime(v time.Time) *AvailabilitySlotUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *AvailabilitySlotUpdate) SetNillableEndTime(v *time.Time) *AvailabilitySlotUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetIsBooked sets the "is_booked" field.
func (_u *AvailabilitySlotUpdate) SetIsBooked(v bool) *AvailabilitySlotUpdate {
	_u.mutation.SetIsBooked(v)
	return _u
}

// SetNillableIsBooked sets the "is_booked" field if the given value is not nil.
func (_u *AvailabilitySlotUpdate) SetNillableIsBooked(v *bool) *AvailabilitySlotUpdate {
	if v != nil {
		_u.SetIsBooked(*v)
	}
	return _u
}

// Mutation returns the AvailabilitySlotMutation object of the builder.
func (_u *AvailabilitySlotUpdate) Mutation() *AvailabilitySlotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AvailabilitySlotUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AvailabilitySlotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AvailabilitySlotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AvailabilitySlotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AvailabilitySlotUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := availabilityslot.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *AvailabilitySlotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(availabilityslot.Table, availabilityslot.Columns, sqlgraph.NewFieldSpec(availabilityslot.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(availabilityslot.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(availabilityslot.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(availabilityslot.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(availabilityslot.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsBooked(); ok {
		_spec.SetField(availabilityslot.FieldIsBooked, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{availabilityslot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AvailabilitySlotUpdateOne is the builder for updating a single AvailabilitySlot entity.
type AvailabilitySlotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AvailabilitySlotMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AvailabilitySlotUpdateOne) SetUpdatedAt(v time.Time) *AvailabilitySlotUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *AvailabilitySlotUpdateOne) SetDoctorID(v uuid.UUID) *AvailabilitySlotUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *AvailabilitySlotUpdateOne) SetNillableDoctorID(v *uuid.UUID) *AvailabilitySlotUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *AvailabilitySlotUpdateOne) SetStartTime(v time.Time) *AvailabilitySlotUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *AvailabilitySlotUpdateOne) SetNillableStartTime(v *time.Time) *AvailabilitySlotUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *AvailabilitySlotUpdateOne) SetEndTime(v time.Time) *AvailabilitySlotUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *AvailabilitySlotUpdateOne) SetNillableEndTime(v *time.Time) *AvailabilitySlotUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetIsBooked sets the "is_booked" field.
func (_u *AvailabilitySlotUpdateOne) SetIsBooked(v bool) *AvailabilitySlotUpdateOne {
	_u.mutation.SetIsBooked(v)
	return _u
}

// SetNillableIsBooked sets the "is_booked" field if the given value is not nil.
func (_u *AvailabilitySlotUpdateOne) SetNillableIsBooked(v *bool) *AvailabilitySlotUpdateOne {
	if v != nil {
		_u.SetIsBooked(*v)
	}
	return _u
}

// Mutation returns the AvailabilitySlotMutation object of the builder.
func (_u *AvailabilitySlotUpdateOne) Mutation() *AvailabilitySlotMutation {
	return _u.mutation
}

// Where appends a list predicates to the AvailabilitySlotUpdate builder.
func (_u *AvailabilitySlotUpdateOne) Where(ps ...predicate.AvailabilitySlot) *AvailabilitySlotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AvailabilitySlotUpdateOne) Select(field string, fields ...string) *AvailabilitySlotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AvailabilitySlot entity.
func (_u *AvailabilitySlotUpdateOne) Save(ctx context.Context) (*AvailabilitySlot, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AvailabilitySlotUpdateOne) SaveX(ctx context.Context) *AvailabilitySlot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AvailabilitySlotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AvailabilitySlotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AvailabilitySlotUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := availabilityslot.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *AvailabilitySlotUpdateOne) sqlSave(ctx context.Context) (_node *AvailabilitySlot, err error) {
	_spec := sqlgraph.NewUpdateSpec(availabilityslot.Table, availabilityslot.Columns, sqlgraph.NewFieldSpec(availabilityslot.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "AvailabilitySlot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, availabilityslot.FieldID)
		for _, f := range fields {
			if !availabilityslot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != availabilityslot.FieldID {
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
		_spec.SetField(availabilityslot.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(availabilityslot.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(availabilityslot.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(availabilityslot.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsBooked(); ok {
		_spec.SetField(availabilityslot.FieldIsBooked, field.TypeBool, value)
	}
	_node = &AvailabilitySlot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{availabilityslot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
