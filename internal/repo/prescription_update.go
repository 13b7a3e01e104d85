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
	"github.com/curaline/curaline_backend/internal/repo/predicate"
	"github.com/curaline/curaline_backend/internal/repo/prescription"
	"github.com/google/uuid"
)

// PrescriptionUpdate is the builder for updating Prescription entities.
type PrescriptionUpdate struct {
	config
	hooks    []Hook
	mutation *PrescriptionMutation
}

// Where appends a list predicates to the PrescriptionUpdate builder.
func (_u *PrescriptionUpdate) Where(ps ...predicate.Prescription) *PrescriptionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PrescriptionUpdate) SetUpdatedAt(v time.Time) *PrescriptionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *PrescriptionUpdate) SetDeletedAt(v time.Time) *PrescriptionUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableDeletedAt(v *time.Time) *PrescriptionUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *PrescriptionUpdate) ClearDeletedAt() *PrescriptionUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *PrescriptionUpdate) SetDoctorID(v uuid.UUID) *PrescriptionUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableDoctorID(v *uuid.UUID) *PrescriptionUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *PrescriptionUpdate) SetPatientID(v uuid.UUID) *PrescriptionUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillablePatientID(v *uuid.UUID) *PrescriptionUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *PrescriptionUpdate) SetTitle(v string) *PrescriptionUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableTitle(v *string) *PrescriptionUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *PrescriptionUpdate) SetNotes(v string) *PrescriptionUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableNotes(v *string) *PrescriptionUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *PrescriptionUpdate) ClearNotes() *PrescriptionUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetFileKey sets the "file_key" field.
func (_u *PrescriptionUpdate) SetFileKey(v string) *PrescriptionUpdate {
	_u.mutation.SetFileKey(v)
	return _u
}

// SetNillableFileKey sets the "file_key" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableFileKey(v *string) *PrescriptionUpdate {
	if v != nil {
		_u.SetFileKey(*v)
	}
	return _u
}

// ClearFileKey clears the value of the "file_key" field.
func (_u *PrescriptionUpdate) ClearFileKey() *PrescriptionUpdate {
	_u.mutation.ClearFileKey()
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *PrescriptionUpdate) SetFileName(v string) *PrescriptionUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableFileName(v *string) *PrescriptionUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// ClearFileName clears the value of the "file_name" field.
func (_u *PrescriptionUpdate) ClearFileName() *PrescriptionUpdate {
	_u.mutation.ClearFileName()
	return _u
}

// SetPrescribedDate sets the "prescribed_date" field.
func (_u *PrescriptionUpdate) SetPrescribedDate(v time.Time) *PrescriptionUpdate {
	_u.mutation.SetPrescribedDate(v)
	return _u
}

// SetNillablePrescribedDate sets the "prescribed_date" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillablePrescribedDate(v *time.Time) *PrescriptionUpdate {
	if v != nil {
		_u.SetPrescribedDate(*v)
	}
	return _u
}

// Mutation returns the PrescriptionMutation object of the builder.
func (_u *PrescriptionUpdate) Mutation() *PrescriptionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PrescriptionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PrescriptionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PrescriptionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PrescriptionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PrescriptionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := prescription.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PrescriptionUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := prescription.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Prescription.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileKey(); ok {
		if err := prescription.FileKeyValidator(v); err != nil {
			return &ValidationError{Name: "file_key", err: fmt.Errorf(`repo: validator failed for field "Prescription.file_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileName(); ok {
		if err := prescription.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`repo: validator failed for field "Prescription.file_name": %w`, err)}
		}
	}
	return nil
}

func (_u *PrescriptionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prescription.Table, prescription.Columns, sqlgraph.NewFieldSpec(prescription.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(prescription.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(prescription.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(prescription.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(prescription.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(prescription.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(prescription.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(prescription.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(prescription.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.FileKey(); ok {
		_spec.SetField(prescription.FieldFileKey, field.TypeString, value)
	}
	if _u.mutation.FileKeyCleared() {
		_spec.ClearField(prescription.FieldFileKey, field.TypeString)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(prescription.FieldFileName, field.TypeString, value)
	}
	if _u.mutation.FileNameCleared() {
		_spec.ClearField(prescription.FieldFileName, field.TypeString)
	}
	if value, ok := _u.mutation.PrescribedDate(); ok {
		_spec.SetField(prescription.FieldPrescribedDate, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prescription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PrescriptionUpdateOne is the builder for updating a single Prescription entity.
type PrescriptionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PrescriptionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PrescriptionUpdateOne) SetUpdatedAt(v time.Time) *PrescriptionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *PrescriptionUpdateOne) SetDeletedAt(v time.Time) *PrescriptionUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableDeletedAt(v *time.Time) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *PrescriptionUpdateOne) ClearDeletedAt() *PrescriptionUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *PrescriptionUpdateOne) SetDoctorID(v uuid.UUID) *PrescriptionUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableDoctorID(v *uuid.UUID) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *PrescriptionUpdateOne) SetPatientID(v uuid.UUID) *PrescriptionUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillablePatientID(v *uuid.UUID) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *PrescriptionUpdateOne) SetTitle(v string) *PrescriptionUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableTitle(v *string) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *PrescriptionUpdateOne) SetNotes(v string) *PrescriptionUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableNotes(v *string) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *PrescriptionUpdateOne) ClearNotes() *PrescriptionUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetFileKey sets the "file_key" field.
func (_u *PrescriptionUpdateOne) SetFileKey(v string) *PrescriptionUpdateOne {
	_u.mutation.SetFileKey(v)
	return _u
}

// SetNillableFileKey sets the "file_key" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableFileKey(v *string) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetFileKey(*v)
	}
	return _u
}

// ClearFileKey clears the value of the "file_key" field.
func (_u *PrescriptionUpdateOne) ClearFileKey() *PrescriptionUpdateOne {
	_u.mutation.ClearFileKey()
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *PrescriptionUpdateOne) SetFileName(v string) *PrescriptionUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableFileName(v *string) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// ClearFileName clears the value of the "file_name" field.
func (_u *PrescriptionUpdateOne) ClearFileName() *PrescriptionUpdateOne {
	_u.mutation.ClearFileName()
	return _u
}

// SetPrescribedDate sets the "prescribed_date" field.
func (_u *PrescriptionUpdateOne) SetPrescribedDate(v time.Time) *PrescriptionUpdateOne {
	_u.mutation.SetPrescribedDate(v)
	return _u
}

// SetNillablePrescribedDate sets the "prescribed_date" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillablePrescribedDate(v *time.Time) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetPrescribedDate(*v)
	}
	return _u
}

// Mutation returns the PrescriptionMutation object of the builder.
func (_u *PrescriptionUpdateOne) Mutation() *PrescriptionMutation {
	return _u.mutation
}

// Where appends a list predicates to the PrescriptionUpdate builder.
func (_u *PrescriptionUpdateOne) Where(ps ...predicate.Prescription) *PrescriptionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PrescriptionUpdateOne) Select(field string, fields ...string) *PrescriptionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Prescription entity.
func (_u *PrescriptionUpdateOne) Save(ctx context.Context) (*Prescription, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PrescriptionUpdateOne) SaveX(ctx context.Context) *Prescription {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PrescriptionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PrescriptionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PrescriptionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := prescription.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PrescriptionUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := prescription.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Prescription.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileKey(); ok {
		if err := prescription.FileKeyValidator(v); err != nil {
			return &ValidationError{Name: "file_key", err: fmt.Errorf(`repo: validator failed for field "Prescription.file_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileName(); ok {
		if err := prescription.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`repo: validator failed for field "Prescription.file_name": %w`, err)}
		}
	}
	return nil
}

func (_u *PrescriptionUpdateOne) sqlSave(ctx context.Context) (_node *Prescription, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prescription.Table, prescription.Columns, sqlgraph.NewFieldSpec(prescription.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Prescription.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, prescription.FieldID)
		for _, f := range fields {
			if !prescription.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != prescription.FieldID {
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
		_spec.SetField(prescription.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(prescription.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(prescription.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(prescription.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(prescription.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(prescription.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(prescription.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(prescription.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.FileKey(); ok {
		_spec.SetField(prescription.FieldFileKey, field.TypeString, value)
	}
	if _u.mutation.FileKeyCleared() {
		_spec.ClearField(prescription.FieldFileKey, field.TypeString)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(prescription.FieldFileName, field.TypeString, value)
	}
	if _u.mutation.FileNameCleared() {
		_spec.ClearField(prescription.FieldFileName, field.TypeString)
	}
	if value, ok := _u.mutation.PrescribedDate(); ok {
		_spec.SetField(prescription.FieldPrescribedDate, field.TypeTime, value)
	}
	_node = &Prescription{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prescription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
