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
	"github.com/curaline/curaline_backend/internal/repo/medicalhistory"
	"github.com/curaline/curaline_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// MedicalHistoryUpdate is the builder for updating MedicalHistory entities.
type MedicalHistoryUpdate struct {
	config
	hooks    []Hook
	mutation *MedicalHistoryMutation
}

// Where appends a list predicates to the MedicalHistoryUpdate builder.
func (_u *MedicalHistoryUpdate) Where(ps ...predicate.MedicalHistory) *MedicalHistoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MedicalHistoryUpdate) SetUpdatedAt(v time.Time) *MedicalHistoryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *MedicalHistoryUpdate) SetDeletedAt(v time.Time) *MedicalHistoryUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *MedicalHistoryUpdate) SetNillableDeletedAt(v *time.Time) *MedicalHistoryUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *MedicalHistoryUpdate) ClearDeletedAt() *MedicalHistoryUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *MedicalHistoryUpdate) SetDoctorID(v uuid.UUID) *MedicalHistoryUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *MedicalHistoryUpdate) SetNillableDoctorID(v *uuid.UUID) *MedicalHistoryUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *MedicalHistoryUpdate) SetPatientID(v uuid.UUID) *MedicalHistoryUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *MedicalHistoryUpdate) SetNillablePatientID(v *uuid.UUID) *MedicalHistoryUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetCondition sets the "condition" field.
func (_u *MedicalHistoryUpdate) SetCondition(v string) *MedicalHistoryUpdate {
	_u.mutation.SetCondition(v)
	return _u
}

// SetNillableCondition sets the "condition" field if the given value is not nil.
func (_u *MedicalHistoryUpdate) SetNillableCondition(v *string) *MedicalHistoryUpdate {
	if v != nil {
		_u.SetCondition(*v)
	}
	return _u
}

// SetDiagnosis sets the "diagnosis" field.
func (_u *MedicalHistoryUpdate) SetDiagnosis(v string) *MedicalHistoryUpdate {
	_u.mutation.SetDiagnosis(v)
	return _u
}

// SetNillableDiagnosis sets the "diagnosis" field if the given value is not nil.
func (_u *MedicalHistoryUpdate) SetNillableDiagnosis(v *string) *MedicalHistoryUpdate {
	if v != nil {
		_u.SetDiagnosis(*v)
	}
	return _u
}

// ClearDiagnosis clears the value of the "diagnosis" field.
func (_u *MedicalHistoryUpdate) ClearDiagnosis() *MedicalHistoryUpdate {
	_u.mutation.ClearDiagnosis()
	return _u
}

// SetDiagnosedAt sets the "diagnosed_at" field.
func (_u *MedicalHistoryUpdate) SetDiagnosedAt(v time.Time) *MedicalHistoryUpdate {
	_u.mutation.SetDiagnosedAt(v)
	return _u
}

// SetNillableDiagnosedAt sets the "diagnosed_at" field if the given value is not nil.
func (_u *MedicalHistoryUpdate) SetNillableDiagnosedAt(v *time.Time) *MedicalHistoryUpdate {
	if v != nil {
		_u.SetDiagnosedAt(*v)
	}
	return _u
}

// ClearDiagnosedAt clears the value of the "diagnosed_at" field.
func (_u *MedicalHistoryUpdate) ClearDiagnosedAt() *MedicalHistoryUpdate {
	_u.mutation.ClearDiagnosedAt()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *MedicalHistoryUpdate) SetNotes(v string) *MedicalHistoryUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *MedicalHistoryUpdate) SetNillableNotes(v *string) *MedicalHistoryUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *MedicalHistoryUpdate) ClearNotes() *MedicalHistoryUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the MedicalHistoryMutation object of the builder.
func (_u *MedicalHistoryUpdate) Mutation() *MedicalHistoryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MedicalHistoryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MedicalHistoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MedicalHistoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MedicalHistoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MedicalHistoryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := medicalhistory.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MedicalHistoryUpdate) check() error {
	if v, ok := _u.mutation.Condition(); ok {
		if err := medicalhistory.ConditionValidator(v); err != nil {
			return &ValidationError{Name: "condition", err: fmt.Errorf(`repo: validator failed for field "MedicalHistory.condition": %w`, err)}
		}
	}
	return nil
}

func (_u *MedicalHistoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(medicalhistory.Table, medicalhistory.Columns, sqlgraph.NewFieldSpec(medicalhistory.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(medicalhistory.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(medicalhistory.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(medicalhistory.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(medicalhistory.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(medicalhistory.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Condition(); ok {
		_spec.SetField(medicalhistory.FieldCondition, field.TypeString, value)
	}
	if value, ok := _u.mutation.Diagnosis(); ok {
		_spec.SetField(medicalhistory.FieldDiagnosis, field.TypeString, value)
	}
	if _u.mutation.DiagnosisCleared() {
		_spec.ClearField(medicalhistory.FieldDiagnosis, field.TypeString)
	}
	if value, ok := _u.mutation.DiagnosedAt(); ok {
		_spec.SetField(medicalhistory.FieldDiagnosedAt, field.TypeTime, value)
	}
	if _u.mutation.DiagnosedAtCleared() {
		_spec.ClearField(medicalhistory.FieldDiagnosedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(medicalhistory.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(medicalhistory.FieldNotes, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{medicalhistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MedicalHistoryUpdateOne is the builder for updating a single MedicalHistory entity.
type MedicalHistoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MedicalHistoryMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MedicalHistoryUpdateOne) SetUpdatedAt(v time.Time) *MedicalHistoryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *MedicalHistoryUpdateOne) SetDeletedAt(v time.Time) *MedicalHistoryUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *MedicalHistoryUpdateOne) SetNillableDeletedAt(v *time.Time) *MedicalHistoryUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *MedicalHistoryUpdateOne) ClearDeletedAt() *MedicalHistoryUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *MedicalHistoryUpdateOne) SetDoctorID(v uuid.UUID) *MedicalHistoryUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *MedicalHistoryUpdateOne) SetNillableDoctorID(v *uuid.UUID) *MedicalHistoryUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *MedicalHistoryUpdateOne) SetPatientID(v uuid.UUID) *MedicalHistoryUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *MedicalHistoryUpdateOne) SetNillablePatientID(v *uuid.UUID) *MedicalHistoryUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetCondition sets the "condition" field.
func (_u *MedicalHistoryUpdateOne) SetCondition(v string) *MedicalHistoryUpdateOne {
	_u.mutation.SetCondition(v)
	return _u
}

// SetNillableCondition sets the "condition" field if the given value is not nil.
func (_u *MedicalHistoryUpdateOne) SetNillableCondition(v *string) *MedicalHistoryUpdateOne {
	if v != nil {
		_u.SetCondition(*v)
	}
	return _u
}

// SetDiagnosis sets the "diagnosis" field.
func (_u *MedicalHistoryUpdateOne) SetDiagnosis(v string) *MedicalHistoryUpdateOne {
	_u.mutation.SetDiagnosis(v)
	return _u
}

// SetNillableDiagnosis sets the "diagnosis" field if the given value is not nil.
func (_u *MedicalHistoryUpdateOne) SetNillableDiagnosis(v *string) *MedicalHistoryUpdateOne {
	if v != nil {
		_u.SetDiagnosis(*v)
	}
	return _u
}

// ClearDiagnosis clears the value of the "diagnosis" field.
func (_u *MedicalHistoryUpdateOne) ClearDiagnosis() *MedicalHistoryUpdateOne {
	_u.mutation.ClearDiagnosis()
	return _u
}

// SetDiagnosedAt sets the "diagnosed_at" field.
func (_u *MedicalHistoryUpdateOne) SetDiagnosedAt(v time.Time) *MedicalHistoryUpdateOne {
	_u.mutation.SetDiagnosedAt(v)
	return _u
}

// SetNillableDiagnosedAt sets the "diagnosed_at" field if the given value is not nil.
func (_u *MedicalHistoryUpdateOne) SetNillableDiagnosedAt(v *time.Time) *MedicalHistoryUpdateOne {
	if v != nil {
		_u.SetDiagnosedAt(*v)
	}
	return _u
}

// ClearDiagnosedAt clears the value of the "diagnosed_at" field.
func (_u *MedicalHistoryUpdateOne) ClearDiagnosedAt() *MedicalHistoryUpdateOne {
	_u.mutation.ClearDiagnosedAt()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *MedicalHistoryUpdateOne) SetNotes(v string) *MedicalHistoryUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *MedicalHistoryUpdateOne) SetNillableNotes(v *string) *MedicalHistoryUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *MedicalHistoryUpdateOne) ClearNotes() *MedicalHistoryUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the MedicalHistoryMutation object of the builder.
func (_u *MedicalHistoryUpdateOne) Mutation() *MedicalHistoryMutation {
	return _u.mutation
}

// Where appends a list predicates to the MedicalHistoryUpdate builder.
func (_u *MedicalHistoryUpdateOne) Where(ps ...predicate.MedicalHistory) *MedicalHistoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MedicalHistoryUpdateOne) Select(field string, fields ...string) *MedicalHistoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MedicalHistory entity.
func (_u *MedicalHistoryUpdateOne) Save(ctx context.Context) (*MedicalHistory, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MedicalHistoryUpdateOne) SaveX(ctx context.Context) *MedicalHistory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MedicalHistoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MedicalHistoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MedicalHistoryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := medicalhistory.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MedicalHistoryUpdateOne) check() error {
	if v, ok := _u.mutation.Condition(); ok {
		if err := medicalhistory.ConditionValidator(v); err != nil {
			return &ValidationError{Name: "condition", err: fmt.Errorf(`repo: validator failed for field "MedicalHistory.condition": %w`, err)}
		}
	}
	return nil
}

func (_u *MedicalHistoryUpdateOne) sqlSave(ctx context.Context) (_node *MedicalHistory, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(medicalhistory.Table, medicalhistory.Columns, sqlgraph.NewFieldSpec(medicalhistory.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "MedicalHistory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, medicalhistory.FieldID)
		for _, f := range fields {
			if !medicalhistory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != medicalhistory.FieldID {
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
		_spec.SetField(medicalhistory.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(medicalhistory.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(medicalhistory.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(medicalhistory.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(medicalhistory.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Condition(); ok {
		_spec.SetField(medicalhistory.FieldCondition, field.TypeString, value)
	}
	if value, ok := _u.mutation.Diagnosis(); ok {
		_spec.SetField(medicalhistory.FieldDiagnosis, field.TypeString, value)
	}
	if _u.mutation.DiagnosisCleared() {
		_spec.ClearField(medicalhistory.FieldDiagnosis, field.TypeString)
	}
	if value, ok := _u.mutation.DiagnosedAt(); ok {
		_spec.SetField(medicalhistory.FieldDiagnosedAt, field.TypeTime, value)
	}
	if _u.mutation.DiagnosedAtCleared() {
		_spec.ClearField(medicalhistory.FieldDiagnosedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(medicalhistory.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(medicalhistory.FieldNotes, field.TypeString)
	}
	_node = &MedicalHistory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{medicalhistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
