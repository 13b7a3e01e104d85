// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/curaline/curaline_backend/internal/repo/medication"
	"github.com/google/uuid"
)

// MedicationCreate is the builder for creating a Medication entity.
type MedicationCreate struct {
	config
	mutation *MedicationMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *MedicationCreate) SetCreatedAt(v time.Time) *MedicationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MedicationCreate) SetNillableCreatedAt(v *time.Time) *MedicationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MedicationCreate) SetUpdatedAt(v time.Time) *MedicationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MedicationCreate) SetNillableUpdatedAt(v *time.Time) *MedicationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *MedicationCreate) SetDeletedAt(v time.Time) *MedicationCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *MedicationCreate) SetNillableDeletedAt(v *time.Time) *MedicationCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *MedicationCreate) SetDoctorID(v uuid.UUID) *MedicationCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *MedicationCreate) SetPatientID(v uuid.UUID) *MedicationCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *MedicationCreate) SetName(v string) *MedicationCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDosage sets the "dosage" field.
func (_c *MedicationCreate) SetDosage(v string) *MedicationCreate {
	_c.mutation.SetDosage(v)
	return _c
}

// SetNillableDosage sets the "dosage" field if the given value is not nil.
func (_c *MedicationCreate) SetNillableDosage(v *string) *MedicationCreate {
	if v != nil {
		_c.SetDosage(*v)
	}
	return _c
}

// SetFrequency sets the "frequency" field.
func (_c *MedicationCreate) SetFrequency(v string) *MedicationCreate {
	_c.mutation.SetFrequency(v)
	return _c
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_c *MedicationCreate) SetNillableFrequency(v *string) *MedicationCreate {
	if v != nil {
		_c.SetFrequency(*v)
	}
	return _c
}

// SetStartDate sets the "start_date" field.
func (_c *MedicationCreate) SetStartDate(v time.Time) *MedicationCreate {
	_c.mutation.SetStartDate(v)
	return _c
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_c *MedicationCreate) SetNillableStartDate(v *time.Time) *MedicationCreate {
	if v != nil {
		_c.SetStartDate(*v)
	}
	return _c
}

// SetEndDate sets the "end_date" field.
func (_c *MedicationCreate) SetEndDate(v time.Time) *MedicationCreate {
	_c.mutation.SetEndDate(v)
	return _c
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_c *MedicationCreate) SetNillableEndDate(v *time.Time) *MedicationCreate {
	if v != nil {
		_c.SetEndDate(*v)
	}
	return _c
}

// SetInstructions sets the "instructions" field.
func (_c *MedicationCreate) SetInstructions(v string) *MedicationCreate {
	_c.mutation.SetInstructions(v)
	return _c
}

// SetNillableInstructions sets the "instructions" field if the given value is not nil.
func (_c *MedicationCreate) SetNillableInstructions(v *string) *MedicationCreate {
	if v != nil {
		_c.SetInstructions(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MedicationCreate) SetID(v uuid.UUID) *MedicationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MedicationCreate) SetNillableID(v *uuid.UUID) *MedicationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the MedicationMutation object of the builder.
func (_c *MedicationCreate) Mutation() *MedicationMutation {
	return _c.mutation
}

// Save creates the Medication in the database.
func (_c *MedicationCreate) Save(ctx context.Context) (*Medication, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MedicationCreate) SaveX(ctx context.Context) *Medication {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MedicationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MedicationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MedicationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := medication.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := medication.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := medication.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MedicationCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Medication.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Medication.updated_at"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`repo: missing required field "Medication.doctor_id"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "Medication.patient_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "Medication.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := medication.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Medication.name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Dosage(); ok {
		if err := medication.DosageValidator(v); err != nil {
			return &ValidationError{Name: "dosage", err: fmt.Errorf(`repo: validator failed for field "Medication.dosage": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Frequency(); ok {
		if err := medication.FrequencyValidator(v); err != nil {
			return &ValidationError{Name: "frequency", err: fmt.Errorf(`repo: validator failed for field "Medication.frequency": %w`, err)}
		}
	}
	return nil
}

func (_c *MedicationCreate) sqlSave(ctx context.Context) (*Medication, error) {
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

func (_c *MedicationCreate) createSpec() (*Medication, *sqlgraph.CreateSpec) {
	var (
		_node = &Medication{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(medication.Table, sqlgraph.NewFieldSpec(medication.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(medication.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(medication.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(medication.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.DoctorID(); ok {
		_spec.SetField(medication.FieldDoctorID, field.TypeUUID, value)
		_node.DoctorID = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(medication.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(medication.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Dosage(); ok {
		_spec.SetField(medication.FieldDosage, field.TypeString, value)
		_node.Dosage = &value
	}
	if value, ok := _c.mutation.Frequency(); ok {
		_spec.SetField(medication.FieldFrequency, field.TypeString, value)
		_node.Frequency = &value
	}
	if value, ok := _c.mutation.StartDate(); ok {
		_spec.SetField(medication.FieldStartDate, field.TypeTime, value)
		_node.StartDate = &value
	}
	if value, ok := _c.mutation.EndDate(); ok {
		_spec.SetField(medication.FieldEndDate, field.TypeTime, value)
		_node.EndDate = &value
	}
	if value, ok := _c.mutation.Instructions(); ok {
		_spec.SetField(medication.FieldInstructions, field.TypeString, value)
		_node.Instructions = &value
	}
	return _node, _spec
}

// MedicationCreateBulk is the builder for creating many Medication entities in bulk.
type MedicationCreateBulk struct {
	config
	err      error
	builders []*MedicationCreate
}

// Save creates the Medication entities in the database.
func (_c *MedicationCreateBulk) Save(ctx context.Context) ([]*Medication, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Medication, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MedicationMutation)
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
func (_c *MedicationCreateBulk) SaveX(ctx context.Context) []*Medication {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MedicationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MedicationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
