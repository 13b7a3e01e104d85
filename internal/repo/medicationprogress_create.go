// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/curaline/curaline_backend/internal/repo/medicationprogress"
	"github.com/google/uuid"
)

// MedicationProgressCreate is the builder for creating a MedicationProgress entity.
type MedicationProgressCreate struct {
	config
	mutation *MedicationProgressMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *MedicationProgressCreate) SetCreatedAt(v time.Time) *MedicationProgressCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MedicationProgressCreate) SetNillableCreatedAt(v *time.Time) *MedicationProgressCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *MedicationProgressCreate) SetDeletedAt(v time.Time) *MedicationProgressCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *MedicationProgressCreate) SetNillableDeletedAt(v *time.Time) *MedicationProgressCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetMedicationID sets the "medication_id" field.
func (_c *MedicationProgressCreate) SetMedicationID(v uuid.UUID) *MedicationProgressCreate {
	_c.mutation.SetMedicationID(v)
	return _c
}

// SetAuthorID sets the "author_id" field.
func (_c *MedicationProgressCreate) SetAuthorID(v uuid.UUID) *MedicationProgressCreate {
	_c.mutation.SetAuthorID(v)
	return _c
}

// SetNote sets the "note" field.
func (_c *MedicationProgressCreate) SetNote(v string) *MedicationProgressCreate {
	_c.mutation.SetNote(v)
	return _c
}

// SetID sets the "id" field.
func (_c *MedicationProgressCreate) SetID(v uuid.UUID) *MedicationProgressCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MedicationProgressCreate) SetNillableID(v *uuid.UUID) *MedicationProgressCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the MedicationProgressMutation object of the builder.
func (_c *MedicationProgressCreate) Mutation() *MedicationProgressMutation {
	return _c.mutation
}

// Save creates the MedicationProgress in the database.
func (_c *MedicationProgressCreate) Save(ctx context.Context) (*MedicationProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MedicationProgressCreate) SaveX(ctx context.Context) *MedicationProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MedicationProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MedicationProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MedicationProgressCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := medicationprogress.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := medicationprogress.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MedicationProgressCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "MedicationProgress.created_at"`)}
	}
	if _, ok := _c.mutation.MedicationID(); !ok {
		return &ValidationError{Name: "medication_id", err: errors.New(`repo: missing required field "MedicationProgress.medication_id"`)}
	}
	if _, ok := _c.mutation.AuthorID(); !ok {
		return &ValidationError{Name: "author_id", err: errors.New(`repo: missing required field "MedicationProgress.author_id"`)}
	}
	if _, ok := _c.mutation.Note(); !ok {
		return &ValidationError{Name: "note", err: errors.New(`repo: missing required field "MedicationProgress.note"`)}
	}
	return nil
}

func (_c *MedicationProgressCreate) sqlSave(ctx context.Context) (*MedicationProgress, error) {
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

func (_c *MedicationProgressCreate) createSpec() (*MedicationProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &MedicationProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(medicationprogress.Table, sqlgraph.NewFieldSpec(medicationprogress.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(medicationprogress.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(medicationprogress.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.MedicationID(); ok {
		_spec.SetField(medicationprogress.FieldMedicationID, field.TypeUUID, value)
		_node.MedicationID = value
	}
	if value, ok := _c.mutation.AuthorID(); ok {
		_spec.SetField(medicationprogress.FieldAuthorID, field.TypeUUID, value)
		_node.AuthorID = value
	}
	if value, ok := _c.mutation.Note(); ok {
		_spec.SetField(medicationprogress.FieldNote, field.TypeString, value)
		_node.Note = value
	}
	return _node, _spec
}

// MedicationProgressCreateBulk is the builder for creating many MedicationProgress entities in bulk.
type MedicationProgressCreateBulk struct {
	config
	err      error
	builders []*MedicationProgressCreate
}

// Save creates the MedicationProgress entities in the database.
func (_c *MedicationProgressCreateBulk) Save(ctx context.Context) ([]*MedicationProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MedicationProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MedicationProgressMutation)
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
func (_c *MedicationProgressCreateBulk) SaveX(ctx context.Context) []*MedicationProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MedicationProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MedicationProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
