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
	"github.com/curaline/curaline_backend/internal/repo/labreport"
	"github.com/curaline/curaline_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// LabReportUpdate is the builder for updating LabReport entities.
type LabReportUpdate struct {
	config
	hooks    []Hook
	mutation *LabReportMutation
}

// Where appends a list predicates to the LabReportUpdate builder.
func (_u *LabReportUpdate) Where(ps ...predicate.LabReport) *LabReportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LabReportUpdate) SetUpdatedAt(v time.Time) *LabReportUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *LabReportUpdate) SetDeletedAt(v time.Time) *LabReportUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *LabReportUpdate) SetNillableDeletedAt(v *time.Time) *LabReportUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *LabReportUpdate) ClearDeletedAt() *LabReportUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *LabReportUpdate) SetDoctorID(v uuid.UUID) *LabReportUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *LabReportUpdate) SetNillableDoctorID(v *uuid.UUID) *LabReportUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *LabReportUpdate) SetPatientID(v uuid.UUID) *LabReportUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *LabReportUpdate) SetNillablePatientID(v *uuid.UUID) *LabReportUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *LabReportUpdate) SetTitle(v string) *LabReportUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LabReportUpdate) SetNillableTitle(v *string) *LabReportUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *LabReportUpdate) SetResult(v string) *LabReportUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *LabReportUpdate) SetNillableResult(v *string) *LabReportUpdate {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *LabReportUpdate) ClearResult() *LabReportUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetFileURL sets the "file_url" field.
func (_u *LabReportUpdate) SetFileURL(v string) *LabReportUpdate {
	_u.mutation.SetFileURL(v)
	return _u
}

// SetNillableFileURL sets the "file_url" field if the given value is not nil.
func (_u *LabReportUpdate) SetNillableFileURL(v *string) *LabReportUpdate {
	if v != nil {
		_u.SetFileURL(*v)
	}
	return _u
}

// ClearFileURL clears the value of the "file_url" field.
func (_u *LabReportUpdate) ClearFileURL() *LabReportUpdate {
	_u.mutation.ClearFileURL()
	return _u
}

// SetReportedAt sets the "reported_at" field.
func (_u *LabReportUpdate) SetReportedAt(v time.Time) *LabReportUpdate {
	_u.mutation.SetReportedAt(v)
	return _u
}

// SetNillableReportedAt sets the "reported_at" field if the given value is not nil.
func (_u *LabReportUpdate) SetNillableReportedAt(v *time.Time) *LabReportUpdate {
	if v != nil {
		_u.SetReportedAt(*v)
	}
	return _u
}

// ClearReportedAt clears the value of the "reported_at" field.
func (_u *LabReportUpdate) ClearReportedAt() *LabReportUpdate {
	_u.mutation.ClearReportedAt()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *LabReportUpdate) SetNotes(v string) *LabReportUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *LabReportUpdate) SetNillableNotes(v *string) *LabReportUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *LabReportUpdate) ClearNotes() *LabReportUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the LabReportMutation object of the builder.
func (_u *LabReportUpdate) Mutation() *LabReportMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LabReportUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LabReportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LabReportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LabReportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LabReportUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := labreport.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LabReportUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := labreport.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "LabReport.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileURL(); ok {
		if err := labreport.FileURLValidator(v); err != nil {
			return &ValidationError{Name: "file_url", err: fmt.Errorf(`repo: validator failed for field "LabReport.file_url": %w`, err)}
		}
	}
	return nil
}

func (_u *LabReportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(labreport.Table, labreport.Columns, sqlgraph.NewFieldSpec(labreport.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(labreport.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(labreport.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(labreport.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(labreport.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(labreport.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(labreport.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(labreport.FieldResult, field.TypeString, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(labreport.FieldResult, field.TypeString)
	}
	if value, ok := _u.mutation.FileURL(); ok {
		_spec.SetField(labreport.FieldFileURL, field.TypeString, value)
	}
	if _u.mutation.FileURLCleared() {
		_spec.ClearField(labreport.FieldFileURL, field.TypeString)
	}
	if value, ok := _u.mutation.ReportedAt(); ok {
		_spec.SetField(labreport.FieldReportedAt, field.TypeTime, value)
	}
	if _u.mutation.ReportedAtCleared() {
		_spec.ClearField(labreport.FieldReportedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(labreport.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(labreport.FieldNotes, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{labreport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LabReportUpdateOne is the builder for updating a single LabReport entity.
type LabReportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LabReportMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LabReportUpdateOne) SetUpdatedAt(v time.Time) *LabReportUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *LabReportUpdateOne) SetDeletedAt(v time.Time) *LabReportUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *LabReportUpdateOne) SetNillableDeletedAt(v *time.Time) *LabReportUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *LabReportUpdateOne) ClearDeletedAt() *LabReportUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *LabReportUpdateOne) SetDoctorID(v uuid.UUID) *LabReportUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *LabReportUpdateOne) SetNillableDoctorID(v *uuid.UUID) *LabReportUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *LabReportUpdateOne) SetPatientID(v uuid.UUID) *LabReportUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *LabReportUpdateOne) SetNillablePatientID(v *uuid.UUID) *LabReportUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *LabReportUpdateOne) SetTitle(v string) *LabReportUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LabReportUpdateOne) SetNillableTitle(v *string) *LabReportUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *LabReportUpdateOne) SetResult(v string) *LabReportUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *LabReportUpdateOne) SetNillableResult(v *string) *LabReportUpdateOne {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *LabReportUpdateOne) ClearResult() *LabReportUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetFileURL sets the "file_url" field.
func (_u *LabReportUpdateOne) SetFileURL(v string) *LabReportUpdateOne {
	_u.mutation.SetFileURL(v)
	return _u
}

// SetNillableFileURL sets the "file_url" field if the given value is not nil.
func (_u *LabReportUpdateOne) SetNillableFileURL(v *string) *LabReportUpdateOne {
	if v != nil {
		_u.SetFileURL(*v)
	}
	return _u
}

// ClearFileURL clears the value of the "file_url" field.
func (_u *LabReportUpdateOne) ClearFileURL() *LabReportUpdateOne {
	_u.mutation.ClearFileURL()
	return _u
}

// SetReportedAt sets the "reported_at" field.
func (_u *LabReportUpdateOne) SetReportedAt(v time.Time) *LabReportUpdateOne {
	_u.mutation.SetReportedAt(v)
	return _u
}

// SetNillableReportedAt sets the "reported_at" field if the given value is not nil.
func (_u *LabReportUpdateOne) SetNillableReportedAt(v *time.Time) *LabReportUpdateOne {
	if v != nil {
		_u.SetReportedAt(*v)
	}
	return _u
}

// ClearReportedAt clears the value of the "reported_at" field.
func (_u *LabReportUpdateOne) ClearReportedAt() *LabReportUpdateOne {
	_u.mutation.ClearReportedAt()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *LabReportUpdateOne) SetNotes(v string) *LabReportUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *LabReportUpdateOne) SetNillableNotes(v *string) *LabReportUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *LabReportUpdateOne) ClearNotes() *LabReportUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the LabReportMutation object of the builder.
func (_u *LabReportUpdateOne) Mutation() *LabReportMutation {
	return _u.mutation
}

// Where appends a list predicates to the LabReportUpdate builder.
func (_u *LabReportUpdateOne) Where(ps ...predicate.LabReport) *LabReportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LabReportUpdateOne) Select(field string, fields ...string) *LabReportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LabReport entity.
func (_u *LabReportUpdateOne) Save(ctx context.Context) (*LabReport, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LabReportUpdateOne) SaveX(ctx context.Context) *LabReport {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LabReportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LabReportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LabReportUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := labreport.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LabReportUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := labreport.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "LabReport.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileURL(); ok {
		if err := labreport.FileURLValidator(v); err != nil {
			return &ValidationError{Name: "file_url", err: fmt.Errorf(`repo: validator failed for field "LabReport.file_url": %w`, err)}
		}
	}
	return nil
}

func (_u *LabReportUpdateOne) sqlSave(ctx context.Context) (_node *LabReport, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(labreport.Table, labreport.Columns, sqlgraph.NewFieldSpec(labreport.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "LabReport.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, labreport.FieldID)
		for _, f := range fields {
			if !labreport.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != labreport.FieldID {
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
		_spec.SetField(labreport.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(labreport.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(labreport.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(labreport.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(labreport.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(labreport.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(labreport.FieldResult, field.TypeString, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(labreport.FieldResult, field.TypeString)
	}
	if value, ok := _u.mutation.FileURL(); ok {
		_spec.SetField(labreport.FieldFileURL, field.TypeString, value)
	}
	if _u.mutation.FileURLCleared() {
		_spec.ClearField(labreport.FieldFileURL, field.TypeString)
	}
	if value, ok := _u.mutation.ReportedAt(); ok {
		_spec.SetField(labreport.FieldReportedAt, field.TypeTime, value)
	}
	if _u.mutation.ReportedAtCleared() {
		_spec.ClearField(labreport.FieldReportedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(labreport.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(labreport.FieldNotes, field.TypeString)
	}
	_node = &LabReport{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{labreport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
