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
	"github.com/curaline/curaline_backend/internal/repo/medicationprogress"
	"github.com/curaline/curaline_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// MedicationProgressUpdate is the builder for updating MedicationProgress entities.
type MedicationProgressUpdate struct {
	config
	hooks    []Hook
	mutation *MedicationProgressMutation
}

// Where appends a list predicates to the MedicationProgressUpdate builder.
func (_u *MedicationProgressUpdate) Where(ps ...predicate.MedicationProgress) *MedicationProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *MedicationProgressUpdate) SetDeletedAt(v time.Time) *MedicationProgressUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *MedicationProgressUpdate) SetNillableDeletedAt(v *time.Time) *MedicationProgressUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *MedicationProgressUpdate) ClearDeletedAt() *MedicationProgressUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetMedicationID sets the "medication_id" field.
func (_u *MedicationProgressUpdate) SetMedicationID(v uuid.UUID) *MedicationProgressUpdate {
	_u.mutation.SetMedicationID(v)
	return _u
}

// SetNillableMedicationID sets the "medication_id" field if the given value is not nil.
func (_u *MedicationProgressUpdate) SetNillableMedicationID(v *uuid.UUID) *MedicationProgressUpdate {
	if v != nil {
		_u.SetMedicationID(*v)
	}
	return _u
}

// SetAuthorID sets the "author_id" field.
func (_u *MedicationProgressUpdate) SetAuthorID(v uuid.UUID) *MedicationProgressUpdate {
	_u.mutation.SetAuthorID(v)
	return _u
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (_u *MedicationProgressUpdate) SetNillableAuthorID(v *uuid.UUID) *MedicationProgressUpdate {
	if v != nil {
		_u.SetAuthorID(*v)
	}
	return _u
}

// SetNote sets the "note" field.
func (_u *MedicationProgressUpdate) SetNote(v string) *MedicationProgressUpdate {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *MedicationProgressUpdate) SetNillableNote(v *string) *MedicationProgressUpdate {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// Mutation returns the MedicationProgressMutation object of the builder.
func (_u *MedicationProgressUpdate) Mutation() *MedicationProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MedicationProgressUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MedicationProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MedicationProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MedicationProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MedicationProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(medicationprogress.Table, medicationprogress.Columns, sqlgraph.NewFieldSpec(medicationprogress.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(medicationprogress.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(medicationprogress.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.MedicationID(); ok {
		_spec.SetField(medicationprogress.FieldMedicationID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.AuthorID(); ok {
		_spec.SetField(medicationprogress.FieldAuthorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(medicationprogress.FieldNote, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{medicationprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MedicationProgressUpdateOne is the builder for updating a single MedicationProgress entity.
type MedicationProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MedicationProgressMutation
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *MedicationProgressUpdateOne) SetDeletedAt(v time.Time) *MedicationProgressUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *MedicationProgressUpdateOne) SetNillableDeletedAt(v *time.Time) *MedicationProgressUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *MedicationProgressUpdateOne) ClearDeletedAt() *MedicationProgressUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetMedicationID sets the "medication_id" field.
func (_u *MedicationProgressUpdateOne) SetMedicationID(v uuid.UUID) *MedicationProgressUpdateOne {
	_u.mutation.SetMedicationID(v)
	return _u
}

// SetNillableMedicationID sets the "medication_id" field if the given value is not nil.
func (_u *MedicationProgressUpdateOne) SetNillableMedicationID(v *uuid.UUID) *MedicationProgressUpdateOne {
	if v != nil {
		_u.SetMedicationID(*v)
	}
	return _u
}

// SetAuthorID sets the "author_id" field.
func (_u *MedicationProgressUpdateOne) SetAuthorID(v uuid.UUID) *MedicationProgressUpdateOne {
	_u.mutation.SetAuthorID(v)
	return _u
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (_u *MedicationProgressUpdateOne) SetNillableAuthorID(v *uuid.UUID) *MedicationProgressUpdateOne {
	if v != nil {
		_u.SetAuthorID(*v)
	}
	return _u
}

// SetNote sets the "note" field.
func (_u *MedicationProgressUpdateOne) SetNote(v string) *MedicationProgressUpdateOne {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *MedicationProgressUpdateOne) SetNillableNote(v *string) *MedicationProgressUpdateOne {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// Mutation returns the MedicationProgressMutation object of the builder.
func (_u *MedicationProgressUpdateOne) Mutation() *MedicationProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the MedicationProgressUpdate builder.
func (_u *MedicationProgressUpdateOne) Where(ps ...predicate.MedicationProgress) *MedicationProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MedicationProgressUpdateOne) Select(field string, fields ...string) *MedicationProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MedicationProgress entity.
func (_u *MedicationProgressUpdateOne) Save(ctx context.Context) (*MedicationProgress, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MedicationProgressUpdateOne) SaveX(ctx context.Context) *MedicationProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MedicationProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MedicationProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MedicationProgressUpdateOne) sqlSave(ctx context.Context) (_node *MedicationProgress, err error) {
	_spec := sqlgraph.NewUpdateSpec(medicationprogress.Table, medicationprogress.Columns, sqlgraph.NewFieldSpec(medicationprogress.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "MedicationProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, medicationprogress.FieldID)
		for _, f := range fields {
			if !medicationprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != medicationprogress.FieldID {
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
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(medicationprogress.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(medicationprogress.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.MedicationID(); ok {
		_spec.SetField(medicationprogress.FieldMedicationID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.AuthorID(); ok {
		_spec.SetField(medicationprogress.FieldAuthorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(medicationprogress.FieldNote, field.TypeString, value)
	}
	_node = &MedicationProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{medicationprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
