// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/curaline/curaline_backend/internal/repo/appointmentreschedule"
	"github.com/google/uuid"
)

// AppointmentRescheduleCreate is the builder for creating a AppointmentReschedule entity.
type AppointmentRescheduleCreate struct {
	config
	mutation *AppointmentRescheduleMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *AppointmentRescheduleCreate) SetCreatedAt(v time.Time) *AppointmentRescheduleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AppointmentRescheduleCreate) SetNillableCreatedAt(v *time.Time) *AppointmentRescheduleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AppointmentRescheduleCreate) SetUpdatedAt(v time.Time) *AppointmentRescheduleCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AppointmentRescheduleCreate) SetNillableUpdatedAt(v *time.Time) *AppointmentRescheduleCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetAppointmentID sets the "appointment_id" field.
func (_c *AppointmentRescheduleCreate) SetAppointmentID(v uuid.UUID) *AppointmentRescheduleCreate {
	_c.mutation.SetAppointmentID(v)
	return _c
}

// SetOldAvailabilityID sets the "old_availability_id" field.
func (_c *AppointmentRescheduleCreate) SetOldAvailabilityID(v uuid.UUID) *AppointmentRescheduleCreate {
	_c.mutation.SetOldAvailabilityID(v)
	return _c
}

// SetNewAvailabilityID sets the "new_availability_id" field.
func (_c *AppointmentRescheduleCreate) SetNewAvailabilityID(v uuid.UUID) *AppointmentRescheduleCreate {
	_c.mutation.SetNewAvailabilityID(v)
	return _c
}

// SetRequestedBy sets the "requested_by" field.
func (_c *AppointmentRescheduleCreate) SetRequestedBy(v uuid.UUID) *AppointmentRescheduleCreate {
	_c.mutation.SetRequestedBy(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AppointmentRescheduleCreate) SetStatus(v appointmentreschedule.Status) *AppointmentRescheduleCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AppointmentRescheduleCreate) SetNillableStatus(v *appointmentreschedule.Status) *AppointmentRescheduleCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AppointmentRescheduleCreate) SetID(v uuid.UUID) *AppointmentRescheduleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AppointmentRescheduleCreate) SetNillableID(v *uuid.UUID) *AppointmentRescheduleCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the AppointmentRescheduleMutation object of the builder.
func (_c *AppointmentRescheduleCreate) Mutation() *AppointmentRescheduleMutation {
	return _c.mutation
}

// Save creates the AppointmentReschedule in the database.
func (_c *AppointmentRescheduleCreate) Save(ctx context.Context) (*AppointmentReschedule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AppointmentRescheduleCreate) SaveX(ctx context.Context) *AppointmentReschedule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppointmentRescheduleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppointmentRescheduleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AppointmentRescheduleCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := appointmentreschedule.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := appointmentreschedule.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := appointmentreschedule.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := appointmentreschedule.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AppointmentRescheduleCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "AppointmentReschedule.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "AppointmentReschedule.updated_at"`)}
	}
	if _, ok := _c.mutation.AppointmentID(); !ok {
		return &ValidationError{Name: "appointment_id", err: errors.New(`repo: missing required field "AppointmentReschedule.appointment_id"`)}
	}
	if _, ok := _c.mutation.OldAvailabilityID(); !ok {
		return &ValidationError{Name: "old_availability_id", err: errors.New(`repo: missing required field "AppointmentReschedule.old_availability_id"`)}
	}
	if _, ok := _c.mutation.NewAvailabilityID(); !ok {
		return &ValidationError{Name: "new_availability_id", err: errors.New(`repo: missing required field "AppointmentReschedule.new_availability_id"`)}
	}
	if _, ok := _c.mutation.RequestedBy(); !ok {
		return &ValidationError{Name: "requested_by", err: errors.New(`repo: missing required field "AppointmentReschedule.requested_by"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "AppointmentReschedule.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := appointmentreschedule.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "AppointmentReschedule.status": %w`, err)}
		}
	}
	return nil
}

func (_c *AppointmentRescheduleCreate) sqlSave(ctx context.Context) (*AppointmentReschedule, error) {
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

func (_c *AppointmentRescheduleCreate) createSpec() (*AppointmentReschedule, *sqlgraph.CreateSpec) {
	var (
		_node = &AppointmentReschedule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(appointmentreschedule.Table, sqlgraph.NewFieldSpec(appointmentreschedule.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(appointmentreschedule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(appointmentreschedule.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.AppointmentID(); ok {
		_spec.SetField(appointmentreschedule.FieldAppointmentID, field.TypeUUID, value)
		_node.AppointmentID = value
	}
	if value, ok := _c.mutation.OldAvailabilityID(); ok {
		_spec.SetField(appointmentreschedule.FieldOldAvailabilityID, field.TypeUUID, value)
		_node.OldAvailabilityID = value
	}
	if value, ok := _c.mutation.NewAvailabilityID(); ok {
		_spec.SetField(appointmentreschedule.FieldNewAvailabilityID, field.TypeUUID, value)
		_node.NewAvailabilityID = value
	}
	if value, ok := _c.mutation.RequestedBy(); ok {
		_spec.SetField(appointmentreschedule.FieldRequestedBy, field.TypeUUID, value)
		_node.RequestedBy = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(appointmentreschedule.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	return _node, _spec
}

// AppointmentRescheduleCreateBulk is the builder for creating many AppointmentReschedule entities in bulk.
type AppointmentRescheduleCreateBulk struct {
	config
	err      error
	builders []*AppointmentRescheduleCreate
}

// Save creates the AppointmentReschedule entities in the database.
func (_c *AppointmentRescheduleCreateBulk) Save(ctx context.Context) ([]*AppointmentReschedule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AppointmentReschedule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AppointmentRescheduleMutation)
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
func (_c *AppointmentRescheduleCreateBulk) SaveX(ctx context.Context) []*AppointmentReschedule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppointmentRescheduleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppointmentRescheduleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
