// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/curaline/curaline_backend/internal/repo/doctorpatient"
	"github.com/curaline/curaline_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// DoctorPatientUpdate is the builder for updating DoctorPatient entities.
type DoctorPatientUpdate struct {
	config
	hooks    []Hook
	mutation *DoctorPatientMutation
}

// Where appends a list predicates to the DoctorPatientUpdate builder.
func (_u *DoctorPatientUpdate) Where(ps ...predicate.DoctorPatient) *DoctorPatientUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *DoctorPatientUpdate) SetDoctorID(v uuid.UUID) *DoctorPatientUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *DoctorPatientUpdate) SetNillableDoctorID(v *uuid.UUID) *DoctorPatientUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *DoctorPatientUpdate) SetPatientID(v uuid.UUID) *DoctorPatientUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *DoctorPatientUpdate) SetNillablePatientID(v *uuid.UUID) *DoctorPatientUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// Mutation returns the DoctorPatientMutation object of the builder.
func (_u *DoctorPatientUpdate) Mutation() *DoctorPatientMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DoctorPatientUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorPatientUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DoctorPatientUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorPatientUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DoctorPatientUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(doctorpatient.Table, doctorpatient.Columns, sqlgraph.NewFieldSpec(doctorpatient.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(doctorpatient.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(doctorpatient.FieldPatientID, field.TypeUUID, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctorpatient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DoctorPatientUpdateOne is the builder for updating a single DoctorPatient entity.
type DoctorPatientUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DoctorPatientMutation
}

// SetDoctorID sets the "doctor_id" field.
func (_u *DoctorPatientUpdateOne) SetDoctorID(v uuid.UUID) *DoctorPatientUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *DoctorPatientUpdateOne) SetNillableDoctorID(v *uuid.UUID) *DoctorPatientUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *DoctorPatientUpdateOne) SetPatientID(v uuid.UUID) *DoctorPatientUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *DoctorPatientUpdateOne) SetNillablePatientID(v *uuid.UUID) *DoctorPatientUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// Mutation returns the DoctorPatientMutation object of the builder.
func (_u *DoctorPatientUpdateOne) Mutation() *DoctorPatientMutation {
	return _u.mutation
}

// Where appends a list predicates to the DoctorPatientUpdate builder.
func (_u *DoctorPatientUpdateOne) Where(ps ...predicate.DoctorPatient) *DoctorPatientUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DoctorPatientUpdateOne) Select(field string, fields ...string) *DoctorPatientUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DoctorPatient entity.
func (_u *DoctorPatientUpdateOne) Save(ctx context.Context) (*DoctorPatient, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorPatientUpdateOne) SaveX(ctx context.Context) *DoctorPatient {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DoctorPatientUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorPatientUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DoctorPatientUpdateOne) sqlSave(ctx context.Context) (_node *DoctorPatient, err error) {
	_spec := sqlgraph.NewUpdateSpec(doctorpatient.Table, doctorpatient.Columns, sqlgraph.NewFieldSpec(doctorpatient.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "DoctorPatient.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, doctorpatient.FieldID)
		for _, f := range fields {
			if !doctorpatient.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != doctorpatient.FieldID {
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
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(doctorpatient.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(doctorpatient.FieldPatientID, field.TypeUUID, value)
	}
	_node = &DoctorPatient{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctorpatient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
