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
	"github.com/curaline/curaline_backend/internal/repo/medication"
	"github.com/curaline/curaline_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// MedicationUpdate is the builder for updating Medication entities.
type MedicationUpdate struct {
	config
	hooks    []Hook
	mutation *MedicationMutation
}

// Where appends a list predicates to the MedicationUpdate builder.
func (_u *MedicationUpdate) Where(ps ...predicate.Medication) *MedicationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MedicationUpdate) SetUpdatedAt(v time.Time) *MedicationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *MedicationUpdate) SetDeletedAt(v time.Time) *MedicationUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *MedicationUpdate) SetNillableDeletedAt(v *time.Time) *MedicationUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *MedicationUpdate) ClearDeletedAt() *MedicationUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *MedicationUpdate) SetDoctorID(v uuid.UUID) *MedicationUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *MedicationUpdate) SetNillableDoctorID(v *uuid.UUID) *MedicationUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *MedicationUpdate) SetPatientID(v uuid.UUID) *MedicationUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *MedicationUpdate) SetNillablePatientID(v *uuid.UUID) *MedicationUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *MedicationUpdate) SetName(v string) *MedicationUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MedicationUpdate) SetNillableName(v *string) *MedicationUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDosage sets the "dosage" field.
func (_u *MedicationUpdate) SetDosage(v string) *MedicationUpdate {
	_u.mutation.SetDosage(v)
	return _u
}

// SetNillableDosage sets the "dosage" field if the given value is not nil.
func (_u *MedicationUpdate) SetNillableDosage(v *string) *MedicationUpdate {
	if v != nil {
		_u.SetDosage(*v)
	}
	return _u
}

// ClearDosage clears the value of the "dosage" field.
func (_u *MedicationUpdate) ClearDosage() *MedicationUpdate {
	_u.mutation.ClearDosage()
	return _u
}

// SetFrequency sets the "frequency" field.
func (_u *MedicationUpdate) SetFrequency(v string) *MedicationUpdate {
	_u.mutation.SetFrequency(v)
	return _u
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_u *MedicationUpdate) SetNillableFrequency(v *string) *MedicationUpdate {
	if v != nil {
		_u.SetFrequency(*v)
	}
	return _u
}

// ClearFrequency clears the value of the "frequency" field.
func (_u *MedicationUpdate) ClearFrequency() *MedicationUpdate {
	_u.mutation.ClearFrequency()
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *MedicationUpdate) SetStartDate(v time.Time) *MedicationUpdate {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *MedicationUpdate) SetNillableStartDate(v *time.Time) *MedicationUpdate {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// ClearStartDate clears the value of the "start_date" field.
func (_u *MedicationUpdate) ClearStartDate() *MedicationUpdate {
	_u.mutation.ClearStartDate()
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *MedicationUpdate) SetEndDate(v time.Time) *MedicationUpdate {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *MedicationUpdate) SetNillableEndDate(v *time.Time) *MedicationUpdate {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// ClearEndDate clears the value of the "end_date" field.
func (_u *MedicationUpdate) ClearEndDate() *MedicationUpdate {
	_u.mutation.ClearEndDate()
	return _u
}

// SetInstructions sets the "instructions" field.
func (_u *MedicationUpdate) SetInstructions(v string) *MedicationUpdate {
	_u.mutation.SetInstructions(v)
	return _u
}

// SetNillableInstructions sets the "instructions" field if the given value is not nil.
func (_u *MedicationUpdate) SetNillableInstructions(v *string) *MedicationUpdate {
	if v != nil {
		_u.SetInstructions(*v)
	}
	return _u
}

// ClearInstructions clears the value of the "instructions" field.
func (_u *MedicationUpdate) ClearInstructions() *MedicationUpdate {
	_u.mutation.ClearInstructions()
	return _u
}

// Mutation returns the MedicationMutation object of the builder.
func (_u *MedicationUpdate) Mutation() *MedicationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MedicationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MedicationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MedicationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MedicationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MedicationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := medication.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MedicationUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := medication.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Medication.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Dosage(); ok {
		if err := medication.DosageValidator(v); err != nil {
			return &ValidationError{Name: "dosage", err: fmt.Errorf(`repo: validator failed for field "Medication.dosage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Frequency(); ok {
		if err := medication.FrequencyValidator(v); err != nil {
			return &ValidationError{Name: "frequency", err: fmt.Errorf(`repo: validator failed for field "Medication.frequency": %w`, err)}
		}
	}
	return nil
}

func (_u *MedicationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(medication.Table, medication.Columns, sqlgraph.NewFieldSpec(medication.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(medication.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(medication.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(medication.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(medication.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(medication.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(medication.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Dosage(); ok {
		_spec.SetField(medication.FieldDosage, field.TypeString, value)
	}
	if _u.mutation.DosageCleared() {
		_spec.ClearField(medication.FieldDosage, field.TypeString)
	}
	if value, ok := _u.mutation.Frequency(); ok {
		_spec.SetField(medication.FieldFrequency, field.TypeString, value)
	}
	if _u.mutation.FrequencyCleared() {
		_spec.ClearField(medication.FieldFrequency, field.TypeString)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(medication.FieldStartDate, field.TypeTime, value)
	}
	if _u.mutation.StartDateCleared() {
		_spec.ClearField(medication.FieldStartDate, field.TypeTime)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(medication.FieldEndDate, field.TypeTime, value)
	}
	if _u.mutation.EndDateCleared() {
		_spec.ClearField(medication.FieldEndDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Instructions(); ok {
		_spec.SetField(medication.FieldInstructions, field.TypeString, value)
	}
	if _u.mutation.InstructionsCleared() {
		_spec.ClearField(medication.FieldInstructions, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{medication.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MedicationUpdateOne is the builder for updating a single Medication entity.
type MedicationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MedicationMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MedicationUpdateOne) SetUpdatedAt(v time.Time) *MedicationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *MedicationUpdateOne) SetDeletedAt(v time.Time) *MedicationUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *MedicationUpdateOne) SetNillableDeletedAt(v *time.Time) *MedicationUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *MedicationUpdateOne) ClearDeletedAt() *MedicationUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *MedicationUpdateOne) SetDoctorID(v uuid.UUID) *MedicationUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *MedicationUpdateOne) SetNillableDoctorID(v *uuid.UUID) *MedicationUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *MedicationUpdateOne) SetPatientID(v uuid.UUID) *MedicationUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *MedicationUpdateOne) SetNillablePatientID(v *uuid.UUID) *MedicationUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *MedicationUpdateOne) SetName(v string) *MedicationUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MedicationUpdateOne) SetNillableName(v *string) *MedicationUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDosage sets the "dosage" field.
func (_u *MedicationUpdateOne) SetDosage(v string) *MedicationUpdateOne {
	_u.mutation.SetDosage(v)
	return _u
}

// SetNillableDosage sets the "dosage" field if the given value is not nil.
func (_u *MedicationUpdateOne) SetNillableDosage(v *string) *MedicationUpdateOne {
	if v != nil {
		_u.SetDosage(*v)
	}
	return _u
}

// ClearDosage clears the value of the "dosage" field.
func (_u *MedicationUpdateOne) ClearDosage() *MedicationUpdateOne {
	_u.mutation.ClearDosage()
	return _u
}

// SetFrequency sets the "frequency" field.
func (_u *MedicationUpdateOne) SetFrequency(v string) *MedicationUpdateOne {
	_u.mutation.SetFrequency(v)
	return _u
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_u *MedicationUpdateOne) SetNillableFrequency(v *string) *MedicationUpdateOne {
	if v != nil {
		_u.SetFrequency(*v)
	}
	return _u
}

// ClearFrequency clears the value of the "frequency" field.
func (_u *MedicationUpdateOne) ClearFrequency() *MedicationUpdateOne {
	_u.mutation.ClearFrequency()
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *MedicationUpdateOne) SetStartDate(v time.Time) *MedicationUpdateOne {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *MedicationUpdateOne) SetNillableStartDate(v *time.Time) *MedicationUpdateOne {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// ClearStartDate clears the value of the "start_date" field.
func (_u *MedicationUpdateOne) ClearStartDate() *MedicationUpdateOne {
	_u.mutation.ClearStartDate()
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *MedicationUpdateOne) SetEndDate(v time.Time) *MedicationUpdateOne {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *MedicationUpdateOne) SetNillableEndDate(v *time.Time) *MedicationUpdateOne {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// ClearEndDate clears the value of the "end_date" field.
func (_u *MedicationUpdateOne) ClearEndDate() *MedicationUpdateOne {
	_u.mutation.ClearEndDate()
	return _u
}

// SetInstructions sets the "instructions" field.
func (_u *MedicationUpdateOne) SetInstructions(v string) *MedicationUpdateOne {
	_u.mutation.SetInstructions(v)
	return _u
}

// SetNillableInstructions sets the "instructions" field if the given value is not nil.
func (_u *MedicationUpdateOne) SetNillableInstructions(v *string) *MedicationUpdateOne {
	if v != nil {
		_u.SetInstructions(*v)
	}
	return _u
}

// ClearInstructions clears the value of the "instructions" field.
func (_u *MedicationUpdateOne) ClearInstructions() *MedicationUpdateOne {
	_u.mutation.ClearInstructions()
	return _u
}

// Mutation returns the MedicationMutation object of the builder.
func (_u *MedicationUpdateOne) Mutation() *MedicationMutation {
	return _u.mutation
}

// Where appends a list predicates to the MedicationUpdate builder.
func (_u *MedicationUpdateOne) Where(ps ...predicate.Medication) *MedicationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MedicationUpdateOne) Select(field string, fields ...string) *MedicationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Medication entity.
func (_u *MedicationUpdateOne) Save(ctx context.Context) (*Medication, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MedicationUpdateOne) SaveX(ctx context.Context) *Medication {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MedicationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MedicationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MedicationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := medication.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MedicationUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := medication.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Medication.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Dosage(); ok {
		if err := medication.DosageValidator(v); err != nil {
			return &ValidationError{Name: "dosage", err: fmt.Errorf(`repo: validator failed for field "Medication.dosage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Frequency(); ok {
		if err := medication.FrequencyValidator(v); err != nil {
			return &ValidationError{Name: "frequency", err: fmt.Errorf(`repo: validator failed for field "Medication.frequency": %w`, err)}
		}
	}
	return nil
}

func (_u *MedicationUpdateOne) sqlSave(ctx context.Context) (_node *Medication, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(medication.Table, medication.Columns, sqlgraph.NewFieldSpec(medication.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Medication.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, medication.FieldID)
		for _, f := range fields {
			if !medication.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != medication.FieldID {
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
		_spec.SetField(medication.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(medication.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(medication.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(medication.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(medication.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(medication.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Dosage(); ok {
		_spec.SetField(medication.FieldDosage, field.TypeString, value)
	}
	if _u.mutation.DosageCleared() {
		_spec.ClearField(medication.FieldDosage, field.TypeString)
	}
	if value, ok := _u.mutation.Frequency(); ok {
		_spec.SetField(medication.FieldFrequency, field.TypeString, value)
	}
	if _u.mutation.FrequencyCleared() {
		_spec.ClearField(medication.FieldFrequency, field.TypeString)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(medication.FieldStartDate, field.TypeTime, value)
	}
	if _u.mutation.StartDateCleared() {
		_spec.ClearField(medication.FieldStartDate, field.TypeTime)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(medication.FieldEndDate, field.TypeTime, value)
	}
	if _u.mutation.EndDateCleared() {
		_spec.ClearField(medication.FieldEndDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Instructions(); ok {
		_spec.SetField(medication.FieldInstructions, field.TypeString, value)
	}
	if _u.mutation.InstructionsCleared() {
		_spec.ClearField(medication.FieldInstructions, field.TypeString)
	}
	_node = &Medication{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{medication.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
