// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/curaline/curaline_backend/internal/repo/availabilityslot"
	"github.com/google/uuid"
)

// AvailabilitySlotCreate is the builder for creating a AvailabilitySlot entity.
type AvailabilitySlotCreate struct {
	config
	mutation *AvailabilitySlotMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *AvailabilitySlotCreate) SetCreatedAt(v time.Time) *AvailabilitySlotCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AvailabilitySlotCreate) SetNillableCreatedAt(v *time.Time) *AvailabilitySlotCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AvailabilitySlotCreate) SetUpdatedAt(v time.Time) *AvailabilitySlotCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AvailabilitySlotCreate) SetNillableUpdatedAt(v *time.Time) *AvailabilitySlotCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *AvailabilitySlotCreate) SetDoctorID(v uuid.UUID) *AvailabilitySlotCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *AvailabilitySlotCreate) SetStartTime(v time.Time) *AvailabilitySlotCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *AvailabilitySlotCreate) SetEndTime(v time.Time) *AvailabilitySlotCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetIsBooked sets the "is_booked" field.
func (_c *AvailabilitySlotCreate) SetIsBooked(v bool) *AvailabilitySlotCreate {
	_c.mutation.SetIsBooked(v)
	return _c
}

// SetNillableIsBooked sets the "is_booked" field if the given value is not nil.
func (_c *AvailabilitySlotCreate) SetNillableIsBooked(v *bool) *AvailabilitySlotCreate {
	if v != nil {
		_c.SetIsBooked(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AvailabilitySlotCreate) SetID(v uuid.UUID) *AvailabilitySlotCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AvailabilitySlotCreate) SetNillableID(v *uuid.UUID) *AvailabilitySlotCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the AvailabilitySlotMutation object of the builder.
func (_c *AvailabilitySlotCreate) Mutation() *AvailabilitySlotMutation {
	return _c.mutation
}

// Save creates the AvailabilitySlot in the database.
func (_c *AvailabilitySlotCreate) Save(ctx context.Context) (*AvailabilitySlot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AvailabilitySlotCreate) SaveX(ctx context.Context) *AvailabilitySlot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AvailabilitySlotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AvailabilitySlotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AvailabilitySlotCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := availabilityslot.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := availabilityslot.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.IsBooked(); !ok {
		v := availabilityslot.DefaultIsBooked
		_c.mutation.SetIsBooked(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := availabilityslot.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AvailabilitySlotCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "AvailabilitySlot.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "AvailabilitySlot.updated_at"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`repo: missing required field "AvailabilitySlot.doctor_id"`)}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`repo: missing required field "AvailabilitySlot.start_time"`)}
	}
	if _, ok := _c.mutation.EndTime(); !ok {
		return &ValidationError{Name: "end_time", err: errors.New(`repo: missing required field "AvailabilitySlot.end_time"`)}
	}
	if _, ok := _c.mutation.IsBooked(); !ok {
		return &ValidationError{Name: "is_booked", err: errors.New(`repo: missing required field "AvailabilitySlot.is_booked"`)}
	}
	return nil
}

func (_c *AvailabilitySlotCreate) sqlSave(ctx context.Context) (*AvailabilitySlot, error) {
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

func (_c *AvailabilitySlotCreate) createSpec() (*AvailabilitySlot, *sqlgraph.CreateSpec) {
	var (
		_node = &AvailabilitySlot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(availabilityslot.Table, sqlgraph.NewFieldSpec(availabilityslot.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(availabilityslot.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(availabilityslot.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DoctorID(); ok {
		_spec.SetField(availabilityslot.FieldDoctorID, field.TypeUUID, value)
		_node.DoctorID = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(availabilityslot.FieldStartTime, field.TypeTime, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(availabilityslot.FieldEndTime, field.TypeTime, value)
		_node.EndTime = value
	}
	if value, ok := _c.mutation.IsBooked(); ok {
		_spec.SetField(availabilityslot.FieldIsBooked, field.TypeBool, value)
		_node.IsBooked = value
	}
	return _node, _spec
}

// AvailabilitySlotCreateBulk is the builder for creating many AvailabilitySlot entities in bulk.
type AvailabilitySlotCreateBulk struct {
	config
	err      error
	builders []*AvailabilitySlotCreate
}

// Save creates the AvailabilitySlot entities in the database.
func (_c *AvailabilitySlotCreateBulk) Save(ctx context.Context) ([]*AvailabilitySlot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AvailabilitySlot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AvailabilitySlotMutation)
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
func (_c *AvailabilitySlotCreateBulk) SaveX(ctx context.Context) []*AvailabilitySlot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AvailabilitySlotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AvailabilitySlotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
