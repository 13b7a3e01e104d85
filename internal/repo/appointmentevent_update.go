// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/curaline/curaline_backend/internal/repo/appointmentevent"
	"github.com/curaline/curaline_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// AppointmentEventUpdate is the builder for updating AppointmentEvent entities.
type AppointmentEventUpdate struct {
	config
	hooks    []Hook
	mutation *AppointmentEventMutation
}

// Where appends a list predicates to the AppointmentEventUpdate builder.
func (_u *AppointmentEventUpdate) Where(ps ...predicate.AppointmentEvent) *AppointmentEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAppointmentID sets the "appointment_id" field.
func (_u *AppointmentEventUpdate) SetAppointmentID(v uuid.UUID) *AppointmentEventUpdate {
	_u.mutation.SetAppointmentID(v)
	return _u
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_u *AppointmentEventUpdate) SetNillableAppointmentID(v *uuid.UUID) *AppointmentEventUpdate {
	if v != nil {
		_u.SetAppointmentID(*v)
	}
	return _u
}

// SetOldStatus sets the "old_status" field.
func (_u *AppointmentEventUpdate) SetOldStatus(v appointmentevent.OldStatus) *AppointmentEventUpdate {
	_u.mutation.SetOldStatus(v)
	return _u
}

// SetNillableOldStatus sets the "old_status" field if the given value is not nil.
func (_u *AppointmentEventUpdate) SetNillableOldStatus(v *appointmentevent.OldStatus) *AppointmentEventUpdate {
	if v != nil {
		_u.SetOldStatus(*v)
	}
	return _u
}

// ClearOldStatus clears the value of the "old_status" field.
func (_u *AppointmentEventUpdate) ClearOldStatus() *AppointmentEventUpdate {
	_u.mutation.ClearOldStatus()
	return _u
}

// SetNewStatus sets the "new_status" field.
func (_u *AppointmentEventUpdate) SetNewStatus(v appointmentevent.NewStatus) *AppointmentEventUpdate {
	_u.mutation.SetNewStatus(v)
	return _u
}

// SetNillableNewStatus sets the "new_status" field if the given value is not nil.
func (_u *AppointmentEventUpdate) SetNillableNewStatus(v *appointmentevent.NewStatus) *AppointmentEventUpdate {
	if v != nil {
		_u.SetNewStatus(*v)
	}
	return _u
}

// SetChangedBy sets the "changed_by" field.
func (_u *AppointmentEventUpdate) SetChangedBy(v uuid.UUID) *AppointmentEventUpdate {
	_u.mutation.SetChangedBy(v)
	return _u
}

// SetNillableChangedBy sets the "changed_by" field if the given value is not nil.
func (_u *AppointmentEventUpdate) SetNillableChangedBy(v *uuid.UUID) *AppointmentEventUpdate {
	if v != nil {
		_u.SetChangedBy(*v)
	}
	return _u
}

// SetActorRole sets the "actor_role" field.
func (_u *AppointmentEventUpdate) SetActorRole(v string) *AppointmentEventUpdate {
	_u.mutation.SetActorRole(v)
	return _u
}

// SetNillableActorRole sets the "actor_role" field if the given value is not nil.
func (_u *AppointmentEventUpdate) SetNillableActorRole(v *string) *AppointmentEventUpdate {
	if v != nil {
		_u.SetActorRole(*v)
	}
	return _u
}

// SetNote sets the "note" field.
func (_u *AppointmentEventUpdate) SetNote(v string) *AppointmentEventUpdate {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *AppointmentEventUpdate) SetNillableNote(v *string) *AppointmentEventUpdate {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *AppointmentEventUpdate) ClearNote() *AppointmentEventUpdate {
	_u.mutation.ClearNote()
	return _u
}

// Mutation returns the AppointmentEventMutation object of the builder.
func (_u *AppointmentEventUpdate) Mutation() *AppointmentEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AppointmentEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AppointmentEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentEventUpdate) check() error {
	if v, ok := _u.mutation.OldStatus(); ok {
		if err := appointmentevent.OldStatusValidator(v); err != nil {
			return &ValidationError{Name: "old_status", err: fmt.Errorf(`repo: validator failed for field "AppointmentEvent.old_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NewStatus(); ok {
		if err := appointmentevent.NewStatusValidator(v); err != nil {
			return &ValidationError{Name: "new_status", err: fmt.Errorf(`repo: validator failed for field "AppointmentEvent.new_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActorRole(); ok {
		if err := appointmentevent.ActorRoleValidator(v); err != nil {
			return &ValidationError{Name: "actor_role", err: fmt.Errorf(`repo: validator failed for field "AppointmentEvent.actor_role": %w`, err)}
		}
	}
	return nil
}

func (_u *AppointmentEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointmentevent.Table, appointmentevent.Columns, sqlgraph.NewFieldSpec(appointmentevent.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AppointmentID(); ok {
		_spec.SetField(appointmentevent.FieldAppointmentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.OldStatus(); ok {
		_spec.SetField(appointmentevent.FieldOldStatus, field.TypeEnum, value)
	}
	if _u.mutation.OldStatusCleared() {
		_spec.ClearField(appointmentevent.FieldOldStatus, field.TypeEnum)
	}
	if value, ok := _u.mutation.NewStatus(); ok {
		_spec.SetField(appointmentevent.FieldNewStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ChangedBy(); ok {
		_spec.SetField(appointmentevent.FieldChangedBy, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ActorRole(); ok {
		_spec.SetField(appointmentevent.FieldActorRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(appointmentevent.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(appointmentevent.FieldNote, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AppointmentEventUpdateOne is the builder for updating a single AppointmentEvent entity.
type AppointmentEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AppointmentEventMutation
}

// SetAppointmentID sets the "appointment_id" field.
func (_u *AppointmentEventUpdateOne) SetAppointmentID(v uuid.UUID) *AppointmentEventUpdateOne {
	_u.mutation.SetAppointmentID(v)
	return _u
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_u *AppointmentEventUpdateOne) SetNillableAppointmentID(v *uuid.UUID) *AppointmentEventUpdateOne {
	if v != nil {
		_u.SetAppointmentID(*v)
	}
	return _u
}

// SetOldStatus sets the "old_status" field.
func (_u *AppointmentEventUpdateOne) SetOldStatus(v appointmentevent.OldStatus) *AppointmentEventUpdateOne {
	_u.mutation.SetOldStatus(v)
	return _u
}

// SetNillableOldStatus sets the "old_status" field if the given value is not nil.
func (_u *AppointmentEventUpdateOne) SetNillableOldStatus(v *appointmentevent.OldStatus) *AppointmentEventUpdateOne {
	if v != nil {
		_u.SetOldStatus(*v)
	}
	return _u
}

// ClearOldStatus clears the value of the "old_status" field.
func (_u *AppointmentEventUpdateOne) ClearOldStatus() *AppointmentEventUpdateOne {
	_u.mutation.ClearOldStatus()
	return _u
}

// SetNewStatus sets the "new_status" field.
func (_u *AppointmentEventUpdateOne) SetNewStatus(v appointmentevent.NewStatus) *AppointmentEventUpdateOne {
	_u.mutation.SetNewStatus(v)
	return _u
}

// SetNillableNewStatus sets the "new_status" field if the given value is not nil.
func (_u *AppointmentEventUpdateOne) SetNillableNewStatus(v *appointmentevent.NewStatus) *AppointmentEventUpdateOne {
	if v != nil {
		_u.SetNewStatus(*v)
	}
	return _u
}

// SetChangedBy sets the "changed_by" field.
func (_u *AppointmentEventUpdateOne) SetChangedBy(v uuid.UUID) *AppointmentEventUpdateOne {
	_u.mutation.SetChangedBy(v)
	return _u
}

// SetNillableChangedBy sets the "changed_by" field if the given value is not nil.
func (_u *AppointmentEventUpdateOne) SetNillableChangedBy(v *uuid.UUID) *AppointmentEventUpdateOne {
	if v != nil {
		_u.SetChangedBy(*v)
	}
	return _u
}

// SetActorRole sets the "actor_role" field.
func (_u *AppointmentEventUpdateOne) SetActorRole(v string) *AppointmentEventUpdateOne {
	_u.mutation.SetActorRole(v)
	return _u
}

// SetNillableActorRole sets the "actor_role" field if the given value is not nil.
func (_u *AppointmentEventUpdateOne) SetNillableActorRole(v *string) *AppointmentEventUpdateOne {
	if v != nil {
		_u.SetActorRole(*v)
	}
	return _u
}

// SetNote sets the "note" field.
func (_u *AppointmentEventUpdateOne) SetNote(v string) *AppointmentEventUpdateOne {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *AppointmentEventUpdateOne) SetNillableNote(v *string) *AppointmentEventUpdateOne {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *AppointmentEventUpdateOne) ClearNote() *AppointmentEventUpdateOne {
	_u.mutation.ClearNote()
	return _u
}

// Mutation returns the AppointmentEventMutation object of the builder.
func (_u *AppointmentEventUpdateOne) Mutation() *AppointmentEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AppointmentEventUpdate builder.
func (_u *AppointmentEventUpdateOne) Where(ps ...predicate.AppointmentEvent) *AppointmentEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AppointmentEventUpdateOne) Select(field string, fields ...string) *AppointmentEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AppointmentEvent entity.
func (_u *AppointmentEventUpdateOne) Save(ctx context.Context) (*AppointmentEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentEventUpdateOne) SaveX(ctx context.Context) *AppointmentEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AppointmentEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentEventUpdateOne) check() error {
	if v, ok := _u.mutation.OldStatus(); ok {
		if err := appointmentevent.OldStatusValidator(v); err != nil {
			return &ValidationError{Name: "old_status", err: fmt.Errorf(`repo: validator failed for field "AppointmentEvent.old_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NewStatus(); ok {
		if err := appointmentevent.NewStatusValidator(v); err != nil {
			return &ValidationError{Name: "new_status", err: fmt.Errorf(`repo: validator failed for field "AppointmentEvent.new_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActorRole(); ok {
		if err := appointmentevent.ActorRoleValidator(v); err != nil {
			return &ValidationError{Name: "actor_role", err: fmt.Errorf(`repo: validator failed for field "AppointmentEvent.actor_role": %w`, err)}
		}
	}
	return nil
}

func (_u *AppointmentEventUpdateOne) sqlSave(ctx context.Context) (_node *AppointmentEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointmentevent.Table, appointmentevent.Columns, sqlgraph.NewFieldSpec(appointmentevent.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "AppointmentEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, appointmentevent.FieldID)
		for _, f := range fields {
			if !appointmentevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != appointmentevent.FieldID {
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
	if value, ok := _u.mutation.AppointmentID(); ok {
		_spec.SetField(appointmentevent.FieldAppointmentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.OldStatus(); ok {
		_spec.SetField(appointmentevent.FieldOldStatus, field.TypeEnum, value)
	}
	if _u.mutation.OldStatusCleared() {
		_spec.ClearField(appointmentevent.FieldOldStatus, field.TypeEnum)
	}
	if value, ok := _u.mutation.NewStatus(); ok {
		_spec.SetField(appointmentevent.FieldNewStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ChangedBy(); ok {
		_spec.SetField(appointmentevent.FieldChangedBy, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ActorRole(); ok {
		_spec.SetField(appointmentevent.FieldActorRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(appointmentevent.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(appointmentevent.FieldNote, field.TypeString)
	}
	_node = &AppointmentEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
