// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/curaline/curaline_backend/internal/repo/appointmentevent"
	"github.com/google/uuid"
)

// AppointmentEventCreate is the builder for creating a AppointmentEvent entity.
type AppointmentEventCreate struct {
	config
	mutation *AppointmentEventMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *AppointmentEventCreate) SetCreatedAt(v time.Time) *AppointmentEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AppointmentEventCreate) SetNillableCreatedAt(v *time.Time) *AppointmentEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetAppointmentID sets the "appointment_id" field.
func (_c *AppointmentEventCreate) SetAppointmentID(v uuid.UUID) *AppointmentEventCreate {
	_c.mutation.SetAppointmentID(v)
	return _c
}

// SetOldStatus sets the "old_status" field.
func (_c *AppointmentEventCreate) SetOldStatus(v appointmentevent.OldStatus) *AppointmentEventCreate {
	_c.mutation.SetOldStatus(v)
	return _c
}

// SetNillableOldStatus sets the "old_status" field if the given value is not nil.
func (_c *AppointmentEventCreate) SetNillableOldStatus(v *appointmentevent.OldStatus) *AppointmentEventCreate {
	if v != nil {
		_c.SetOldStatus(*v)
	}
	return _c
}

// SetNewStatus sets the "new_status" field.
func (_c *AppointmentEventCreate) SetNewStatus(v appointmentevent.NewStatus) *AppointmentEventCreate {
	_c.mutation.SetNewStatus(v)
	return _c
}

// SetChangedBy sets the "changed_by" field.
func (_c *AppointmentEventCreate) SetChangedBy(v uuid.UUID) *AppointmentEventCreate {
	_c.mutation.SetChangedBy(v)
	return _c
}

// SetActorRole sets the "actor_role" field.
func (_c *AppointmentEventCreate) SetActorRole(v string) *AppointmentEventCreate {
	_c.mutation.SetActorRole(v)
	return _c
}

// SetNote sets the "note" field.
func (_c *AppointmentEventCreate) SetNote(v string) *AppointmentEventCreate {
	_c.mutation.SetNote(v)
	return _c
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_c *AppointmentEventCreate) SetNillableNote(v *string) *AppointmentEventCreate {
	if v != nil {
		_c.SetNote(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AppointmentEventCreate) SetID(v uuid.UUID) *AppointmentEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AppointmentEventCreate) SetNillableID(v *uuid.UUID) *AppointmentEventCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the AppointmentEventMutation object of the builder.
func (_c *AppointmentEventCreate) Mutation() *AppointmentEventMutation {
	return _c.mutation
}

// Save creates the AppointmentEvent in the database.
func (_c *AppointmentEventCreate) Save(ctx context.Context) (*AppointmentEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AppointmentEventCreate) SaveX(ctx context.Context) *AppointmentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppointmentEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppointmentEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AppointmentEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := appointmentevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := appointmentevent.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AppointmentEventCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "AppointmentEvent.created_at"`)}
	}
	if _, ok := _c.mutation.AppointmentID(); !ok {
		return &ValidationError{Name: "appointment_id", err: errors.New(`repo: missing required field "AppointmentEvent.appointment_id"`)}
	}
	if v, ok := _c.mutation.OldStatus(); ok {
		if err := appointmentevent.OldStatusValidator(v); err != nil {
			return &ValidationError{Name: "old_status", err: fmt.Errorf(`repo: validator failed for field "AppointmentEvent.old_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NewStatus(); !ok {
		return &ValidationError{Name: "new_status", err: errors.New(`repo: missing required field "AppointmentEvent.new_status"`)}
	}
	if v, ok := _c.mutation.NewStatus(); ok {
		if err := appointmentevent.NewStatusValidator(v); err != nil {
			return &ValidationError{Name: "new_status", err: fmt.Errorf(`repo: validator failed for field "AppointmentEvent.new_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChangedBy(); !ok {
		return &ValidationError{Name: "changed_by", err: errors.New(`repo: missing required field "AppointmentEvent.changed_by"`)}
	}
	if _, ok := _c.mutation.ActorRole(); !ok {
		return &ValidationError{Name: "actor_role", err: errors.New(`repo: missing required field "AppointmentEvent.actor_role"`)}
	}
	if v, ok := _c.mutation.ActorRole(); ok {
		if err := appointmentevent.ActorRoleValidator(v); err != nil {
			return &ValidationError{Name: "actor_role", err: fmt.Errorf(`repo: validator failed for field "AppointmentEvent.actor_role": %w`, err)}
		}
	}
	return nil
}

func (_c *AppointmentEventCreate) sqlSave(ctx context.Context) (*AppointmentEvent, error) {
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

func (_c *AppointmentEventCreate) createSpec() (*AppointmentEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AppointmentEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(appointmentevent.Table, sqlgraph.NewFieldSpec(appointmentevent.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(appointmentevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.AppointmentID(); ok {
		_spec.SetField(appointmentevent.FieldAppointmentID, field.TypeUUID, value)
		_node.AppointmentID = value
	}
	if value, ok := _c.mutation.OldStatus(); ok {
		_spec.SetField(appointmentevent.FieldOldStatus, field.TypeEnum, value)
		_node.OldStatus = &value
	}
	if value, ok := _c.mutation.NewStatus(); ok {
		_spec.SetField(appointmentevent.FieldNewStatus, field.TypeEnum, value)
		_node.NewStatus = value
	}
	if value, ok := _c.mutation.ChangedBy(); ok {
		_spec.SetField(appointmentevent.FieldChangedBy, field.TypeUUID, value)
		_node.ChangedBy = value
	}
	if value, ok := _c.mutation.ActorRole(); ok {
		_spec.SetField(appointmentevent.FieldActorRole, field.TypeString, value)
		_node.ActorRole = value
	}
	if value, ok := _c.mutation.Note(); ok {
		_spec.SetField(appointmentevent.FieldNote, field.TypeString, value)
		_node.Note = &value
	}
	return _node, _spec
}

// AppointmentEventCreateBulk is the builder for creating many AppointmentEvent entities in bulk.
type AppointmentEventCreateBulk struct {
	config
	err      error
	builders []*AppointmentEventCreate
}

// Save creates the AppointmentEvent entities in the database.
func (_c *AppointmentEventCreateBulk) Save(ctx context.Context) ([]*AppointmentEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AppointmentEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AppointmentEventMutation)
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
func (_c *AppointmentEventCreateBulk) SaveX(ctx context.Context) []*AppointmentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppointmentEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppointmentEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
