// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/curaline/curaline_backend/internal/repo/labreport"
	"github.com/google/uuid"
)

// LabReportCreate is the builder for creating a LabReport entity.
type LabReportCreate struct {
	config
	mutation *LabReportMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *LabReportCreate) SetCreatedAt(v time.Time) *LabReportCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LabReportCreate) SetNillableCreatedAt(v *time.Time) *LabReportCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LabReportCreate) SetUpdatedAt(v time.Time) *LabReportCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LabReportCreate) SetNillableUpdatedAt(v *time.Time) *LabReportCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *LabReportCreate) SetDeletedAt(v time.Time) *LabReportCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *LabReportCreate) SetNillableDeletedAt(v *time.Time) *LabReportCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *LabReportCreate) SetDoctorID(v uuid.UUID) *LabReportCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *LabReportCreate) SetPatientID(v uuid.UUID) *LabReportCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *LabReportCreate) SetTitle(v string) *LabReportCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetResult sets the "result" field.
func (_c *LabReportCreate) SetResult(v string) *LabReportCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_c *LabReportCreate) SetNillableResult(v *string) *LabReportCreate {
	if v != nil {
		_c.SetResult(*v)
	}
	return _c
}

// SetFileURL sets the "file_url" field.
func (_c *LabReportCreate) SetFileURL(v string) *LabReportCreate {
	_c.mutation.SetFileURL(v)
	return _c
}

// SetNillableFileURL sets the "file_url" field if the given value is not nil.
func (_c *LabReportCreate) SetNillableFileURL(v *string) *LabReportCreate {
	if v != nil {
		_c.SetFileURL(*v)
	}
	return _c
}

// SetReportedAt sets the "reported_at" field.
func (_c *LabReportCreate) SetReportedAt(v time.Time) *LabReportCreate {
	_c.mutation.SetReportedAt(v)
	return _c
}

// SetNillableReportedAt sets the "reported_at" field if the given value is not nil.
func (_c *LabReportCreate) SetNillableReportedAt(v *time.Time) *LabReportCreate {
	if v != nil {
		_c.SetReportedAt(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *LabReportCreate) SetNotes(v string) *LabReportCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *LabReportCreate) SetNillableNotes(v *string) *LabReportCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LabReportCreate) SetID(v uuid.UUID) *LabReportCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LabReportCreate) SetNillableID(v *uuid.UUID) *LabReportCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the LabReportMutation object of the builder.
func (_c *LabReportCreate) Mutation() *LabReportMutation {
	return _c.mutation
}

// Save creates the LabReport in the database.
func (_c *LabReportCreate) Save(ctx context.Context) (*LabReport, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LabReportCreate) SaveX(ctx context.Context) *LabReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LabReportCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LabReportCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LabReportCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := labreport.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := labreport.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := labreport.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LabReportCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "LabReport.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "LabReport.updated_at"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`repo: missing required field "LabReport.doctor_id"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "LabReport.patient_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`repo: missing required field "LabReport.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := labreport.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "LabReport.title": %w`, err)}
		}
	}
	if v, ok := _c.mutation.FileURL(); ok {
		if err := labreport.FileURLValidator(v); err != nil {
			return &ValidationError{Name: "file_url", err: fmt.Errorf(`repo: validator failed for field "LabReport.file_url": %w`, err)}
		}
	}
	return nil
}

func (_c *LabReportCreate) sqlSave(ctx context.Context) (*LabReport, error) {
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

func (_c *LabReportCreate) createSpec() (*LabReport, *sqlgraph.CreateSpec) {
	var (
		_node = &LabReport{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(labreport.Table, sqlgraph.NewFieldSpec(labreport.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(labreport.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(labreport.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(labreport.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.DoctorID(); ok {
		_spec.SetField(labreport.FieldDoctorID, field.TypeUUID, value)
		_node.DoctorID = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(labreport.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(labreport.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(labreport.FieldResult, field.TypeString, value)
		_node.Result = &value
	}
	if value, ok := _c.mutation.FileURL(); ok {
		_spec.SetField(labreport.FieldFileURL, field.TypeString, value)
		_node.FileURL = &value
	}
	if value, ok := _c.mutation.ReportedAt(); ok {
		_spec.SetField(labreport.FieldReportedAt, field.TypeTime, value)
		_node.ReportedAt = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(labreport.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	return _node, _spec
}

// LabReportCreateBulk is the builder for creating many LabReport entities in bulk.
type LabReportCreateBulk struct {
	config
	err      error
	builders []*LabReportCreate
}

// Save creates the LabReport entities in the database.
func (_c *LabReportCreateBulk) Save(ctx context.Context) ([]*LabReport, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LabReport, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LabReportMutation)
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
func (_c *LabReportCreateBulk) SaveX(ctx context.Context) []*LabReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LabReportCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LabReportCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
