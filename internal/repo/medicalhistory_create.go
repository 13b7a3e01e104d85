// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/curaline/curaline_backend/internal/repo/medicalhistory"
	"github.com/google/uuid"
)

// MedicalHistoryCreate is the builder for creating a MedicalHistory entity.
type MedicalHistoryCreate struct {
	config
	mutation *MedicalHistoryMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *MedicalHistoryCreate) SetCreatedAt(v time.Time) *MedicalHistoryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MedicalHistoryCreate) SetNillableCreatedAt(v *time.Time) *MedicalHistoryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MedicalHistoryCreate) SetUpdatedAt(v time.Time) *MedicalHistoryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MedicalHistoryCreate) SetNillableUpdatedAt(v *time.Time) *MedicalHistoryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *MedicalHistoryCreate) SetDeletedAt(v time.Time) *MedicalHistoryCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *MedicalHistoryCreate) SetNillableDeletedAt(v *time.Time) *MedicalHistoryCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *MedicalHistoryCreate) SetDoctorID(v uuid.UUID) *MedicalHistoryCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *MedicalHistoryCreate) SetPatientID(v uuid.UUID) *MedicalHistoryCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetCondition sets the "condition" field.
func (_c *MedicalHistoryCreate) SetCondition(v string) *MedicalHistoryCreate {
	_c.mutation.SetCondition(v)
	return _c
}

// SetDiagnosis sets the "diagnosis" field.
func (_c *MedicalHistoryCreate) SetDiagnosis(v string) *MedicalHistoryCreate {
	_c.mutation.SetDiagnosis(v)
	return _c
}

// SetNillableDiagnosis sets the "diagnosis" field if the given value is not nil.
func (_c *MedicalHistoryCreate) SetNillableDiagnosis(v *string) *MedicalHistoryCreate {
	if v != nil {
		_c.SetDiagnosis(*v)
	}
	return _c
}

// SetDiagnosedAt sets the "diagnosed_at" field.
func (_c *MedicalHistoryCreate) SetDiagnosedAt(v time.Time) *MedicalHistoryCreate {
	_c.mutation.SetDiagnosedAt(v)
	return _c
}

// SetNillableDiagnosedAt sets the "diagnosed_at" field if the given value is not nil.
func (_c *MedicalHistoryCreate) SetNillableDiagnosedAt(v *time.Time) *MedicalHistoryCreate {
	if v != nil {
		_c.SetDiagnosedAt(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *MedicalHistoryCreate) SetNotes(v string) *MedicalHistoryCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *MedicalHistoryCreate) SetNillableNotes(v *string) *MedicalHistoryCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MedicalHistoryCreate) SetID(v uuid.UUID) *MedicalHistoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MedicalHistoryCreate) SetNillableID(v *uuid.UUID) *MedicalHistoryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the MedicalHistoryMutation object of the builder.
func (_c *MedicalHistoryCreate) Mutation() *MedicalHistoryMutation {
	return _c.mutation
}

// Save creates the MedicalHistory in the database.
func (_c *MedicalHistoryCreate) Save(ctx context.Context) (*MedicalHistory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MedicalHistoryCreate) SaveX(ctx context.Context) *MedicalHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MedicalHistoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MedicalHistoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MedicalHistoryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := medicalhistory.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := medicalhistory.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := medicalhistory.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MedicalHistoryCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "MedicalHistory.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "MedicalHistory.updated_at"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`repo: missing required field "MedicalHistory.doctor_id"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "MedicalHistory.patient_id"`)}
	}
	if _, ok := _c.mutation.Condition(); !ok {
		return &ValidationError{Name: "condition", err: errors.New(`repo: missing required field "MedicalHistory.condition"`)}
	}
	if v, ok := _c.mutation.Condition(); ok {
		if err := medicalhistory.ConditionValidator(v); err != nil {
			return &ValidationError{Name: "condition", err: fmt.Errorf(`repo: validator failed for field "MedicalHistory.condition": %w`, err)}
		}
	}
	return nil
}

func (_c *MedicalHistoryCreate) sqlSave(ctx context.Context) (*MedicalHistory, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MedicalHistoryCreate) createSpec() (*MedicalHistory, *sqlgraph.CreateSpec) {
	var (
		_node = &MedicalHistory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(medicalhistory.Table, sqlgraph.NewFieldSpec(medicalhistory.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(medicalhistory.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(medicalhistory.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(medicalhistory.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.DoctorID(); ok {
		_spec.SetField(medicalhistory.FieldDoctorID, field.TypeUUID, value)
		_node.DoctorID = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(medicalhistory.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.Condition(); ok {
		_spec.SetField(medicalhistory.FieldCondition, field.TypeString, value)
		_node.Condition = value
	}
	if value, ok := _c.mutation.Diagnosis(); ok {
		_spec.SetField(medicalhistory.FieldDiagnosis, field.TypeString, value)
		_node.Diagnosis = &value
	}
	if value, ok := _c.mutation.DiagnosedAt(); ok {
		_spec.SetField(medicalhistory.FieldDiagnosedAt, field.TypeTime, value)
		_node.DiagnosedAt = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(medicalhistory.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	return _node, _spec
}

// MedicalHistoryCreateBulk is the builder for creating many MedicalHistory entities in bulk.
type MedicalHistoryCreateBulk struct {
	config
	err      error
	builders []*MedicalHistoryCreate
}

// Save creates the MedicalHistory entities in the database.
func (_c *MedicalHistoryCreateBulk) Save(ctx context.Context) ([]*MedicalHistory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MedicalHistory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MedicalHistoryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *MedicalHistoryCreateBulk) SaveX(ctx context.Context) []*MedicalHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MedicalHistoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MedicalHistoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
