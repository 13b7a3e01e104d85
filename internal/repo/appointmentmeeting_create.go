// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/curaline/curaline_backend/internal/repo/appointmentmeeting"
	"github.com/google/uuid"
)

// AppointmentMeetingCreate is the builder for creating a AppointmentMeeting entity.
type AppointmentMeetingCreate struct {
	config
	mutation *AppointmentMeetingMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *AppointmentMeetingCreate) SetCreatedAt(v time.Time) *AppointmentMeetingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AppointmentMeetingCreate) SetNillableCreatedAt(v *time.Time) *AppointmentMeetingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AppointmentMeetingCreate) SetUpdatedAt(v time.Time) *AppointmentMeetingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AppointmentMeetingCreate) SetNillableUpdatedAt(v *time.Time) *AppointmentMeetingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetAppointmentID sets the "appointment_id" field.
func (_c *AppointmentMeetingCreate) SetAppointmentID(v uuid.UUID) *AppointmentMeetingCreate {
	_c.mutation.SetAppointmentID(v)
	return _c
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_c *AppointmentMeetingCreate) SetNillableAppointmentID(v *uuid.UUID) *AppointmentMeetingCreate {
	if v != nil {
		_c.SetAppointmentID(*v)
	}
	return _c
}

// SetMeetLink sets the "meet_link" field.
func (_c *AppointmentMeetingCreate) SetMeetLink(v string) *AppointmentMeetingCreate {
	_c.mutation.SetMeetLink(v)
	return _c
}

// SetCalendarEventID sets the "calendar_event_id" field.
func (_c *AppointmentMeetingCreate) SetCalendarEventID(v string) *AppointmentMeetingCreate {
	_c.mutation.SetCalendarEventID(v)
	return _c
}

// SetNillableCalendarEventID sets the "calendar_event_id" field if the given value is not nil.
func (_c *AppointmentMeetingCreate) SetNillableCalendarEventID(v *string) *AppointmentMeetingCreate {
	if v != nil {
		_c.SetCalendarEventID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AppointmentMeetingCreate) SetID(v uuid.UUID) *AppointmentMeetingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AppointmentMeetingCreate) SetNillableID(v *uuid.UUID) *AppointmentMeetingCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the AppointmentMeetingMutation object of the builder.
func (_c *AppointmentMeetingCreate) Mutation() *AppointmentMeetingMutation {
	return _c.mutation
}

// Save creates the AppointmentMeeting in the database.
func (_c *AppointmentMeetingCreate) Save(ctx context.Context) (*AppointmentMeeting, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AppointmentMeetingCreate) SaveX(ctx context.Context) *AppointmentMeeting {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppointmentMeetingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppointmentMeetingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AppointmentMeetingCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := appointmentmeeting.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := appointmentmeeting.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := appointmentmeeting.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AppointmentMeetingCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "AppointmentMeeting.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "AppointmentMeeting.updated_at"`)}
	}
	if _, ok := _c.mutation.MeetLink(); !ok {
		return &ValidationError{Name: "meet_link", err: errors.New(`repo: missing required field "AppointmentMeeting.meet_link"`)}
	}
	if v, ok := _c.mutation.MeetLink(); ok {
		if err := appointmentmeeting.MeetLinkValidator(v); err != nil {
			return &ValidationError{Name: "meet_link", err: fmt.Errorf(`repo: validator failed for field "AppointmentMeeting.meet_link": %w`, err)}
		}
	}
	if v, ok := _c.mutation.CalendarEventID(); ok {
		if err := appointmentmeeting.CalendarEventIDValidator(v); err != nil {
			return &ValidationError{Name: "calendar_event_id", err: fmt.Errorf(`repo: validator failed for field "AppointmentMeeting.calendar_event_id": %w`, err)}
		}
	}
	return nil
}

func (_c *AppointmentMeetingCreate) sqlSave(ctx context.Context) (*AppointmentMeeting, error) {
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

func (_c *AppointmentMeetingCreate) createSpec() (*AppointmentMeeting, *sqlgraph.CreateSpec) {
	var (
		_node = &AppointmentMeeting{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(appointmentmeeting.Table, sqlgraph.NewFieldSpec(appointmentmeeting.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(appointmentmeeting.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(appointmentmeeting.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.AppointmentID(); ok {
		_spec.SetField(appointmentmeeting.FieldAppointmentID, field.TypeUUID, value)
		_node.AppointmentID = &value
	}
	if value, ok := _c.mutation.MeetLink(); ok {
		_spec.SetField(appointmentmeeting.FieldMeetLink, field.TypeString, value)
		_node.MeetLink = value
	}
	if value, ok := _c.mutation.CalendarEventID(); ok {
		_spec.SetField(appointmentmeeting.FieldCalendarEventID, field.TypeString, value)
		_node.CalendarEventID = &value
	}
	return _node, _spec
}

// AppointmentMeetingCreateBulk is the builder for creating many AppointmentMeeting entities in bulk.
type AppointmentMeetingCreateBulk struct {
	config
	err      error
	builders []*AppointmentMeetingCreate
}

// Save creates the AppointmentMeeting entities in the database.
func (_c *AppointmentMeetingCreateBulk) Save(ctx context.Context) ([]*AppointmentMeeting, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AppointmentMeeting, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AppointmentMeetingMutation)
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
func (_c *AppointmentMeetingCreateBulk) SaveX(ctx context.Context) []*AppointmentMeeting {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppointmentMeetingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppointmentMeetingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
