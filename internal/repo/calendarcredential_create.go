// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/curaline/curaline_backend/internal/repo/calendarcredential"
	"github.com/google/uuid"
)

// CalendarCredentialCreate is the builder for creating a CalendarCredential entity.
type CalendarCredentialCreate struct {
	config
	mutation *CalendarCredentialMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *CalendarCredentialCreate) SetCreatedAt(v time.Time) *CalendarCredentialCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CalendarCredentialCreate) SetNillableCreatedAt(v *time.Time) *CalendarCredentialCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CalendarCredentialCreate) SetUpdatedAt(v time.Time) *CalendarCredentialCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CalendarCredentialCreate) SetNillableUpdatedAt(v *time.Time) *CalendarCredentialCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *CalendarCredentialCreate) SetDoctorID(v uuid.UUID) *CalendarCredentialCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *CalendarCredentialCreate) SetProvider(v string) *CalendarCredentialCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_c *CalendarCredentialCreate) SetNillableProvider(v *string) *CalendarCredentialCreate {
	if v != nil {
		_c.SetProvider(*v)
	}
	return _c
}

// SetRefreshToken sets the "refresh_token" field.
func (_c *CalendarCredentialCreate) SetRefreshToken(v string) *CalendarCredentialCreate {
	_c.mutation.SetRefreshToken(v)
	return _c
}

// SetProviderEmail sets the "provider_email" field.
func (_c *CalendarCredentialCreate) SetProviderEmail(v string) *CalendarCredentialCreate {
	_c.mutation.SetProviderEmail(v)
	return _c
}

// SetNillableProviderEmail sets the "provider_email" field if the given value is not nil.
func (_c *CalendarCredentialCreate) SetNillableProviderEmail(v *string) *CalendarCredentialCreate {
	if v != nil {
		_c.SetProviderEmail(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CalendarCredentialCreate) SetID(v uuid.UUID) *CalendarCredentialCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CalendarCredentialCreate) SetNillableID(v *uuid.UUID) *CalendarCredentialCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the CalendarCredentialMutation object of the builder.
func (_c *CalendarCredentialCreate) Mutation() *CalendarCredentialMutation {
	return _c.mutation
}

// Save creates the CalendarCredential in the database.
func (_c *CalendarCredentialCreate) Save(ctx context.Context) (*CalendarCredential, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CalendarCredentialCreate) SaveX(ctx context.Context) *CalendarCredential {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CalendarCredentialCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CalendarCredentialCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CalendarCredentialCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := calendarcredential.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := calendarcredential.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Provider(); !ok {
		v := calendarcredential.DefaultProvider
		_c.mutation.SetProvider(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := calendarcredential.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CalendarCredentialCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "CalendarCredential.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "CalendarCredential.updated_at"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`repo: missing required field "CalendarCredential.doctor_id"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`repo: missing required field "CalendarCredential.provider"`)}
	}
	if v, ok := _c.mutation.Provider(); ok {
		if err := calendarcredential.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`repo: validator failed for field "CalendarCredential.provider": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RefreshToken(); !ok {
		return &ValidationError{Name: "refresh_token", err: errors.New(`repo: missing required field "CalendarCredential.refresh_token"`)}
	}
	if v, ok := _c.mutation.ProviderEmail(); ok {
		if err := calendarcredential.ProviderEmailValidator(v); err != nil {
			return &ValidationError{Name: "provider_email", err: fmt.Errorf(`repo: validator failed for field "CalendarCredential.provider_email": %w`, err)}
		}
	}
	return nil
}

func (_c *CalendarCredentialCreate) sqlSave(ctx context.Context) (*CalendarCredential, error) {
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

func (_c *CalendarCredentialCreate) createSpec() (*CalendarCredential, *sqlgraph.CreateSpec) {
	var (
		_node = &CalendarCredential{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(calendarcredential.Table, sqlgraph.NewFieldSpec(calendarcredential.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(calendarcredential.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(calendarcredential.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DoctorID(); ok {
		_spec.SetField(calendarcredential.FieldDoctorID, field.TypeUUID, value)
		_node.DoctorID = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(calendarcredential.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.RefreshToken(); ok {
		_spec.SetField(calendarcredential.FieldRefreshToken, field.TypeString, value)
		_node.RefreshToken = value
	}
	if value, ok := _c.mutation.ProviderEmail(); ok {
		_spec.SetField(calendarcredential.FieldProviderEmail, field.TypeString, value)
		_node.ProviderEmail = &value
	}
	return _node, _spec
}

// CalendarCredentialCreateBulk is the builder for creating many CalendarCredential entities in bulk.
type CalendarCredentialCreateBulk struct {
	config
	err      error
	builders []*CalendarCredentialCreate
}

// Save creates the CalendarCredential entities in the database.
func (_c *CalendarCredentialCreateBulk) Save(ctx context.Context) ([]*CalendarCredential, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CalendarCredential, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CalendarCredentialMutation)
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
func (_c *CalendarCredentialCreateBulk) SaveX(ctx context.Context) []*CalendarCredential {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CalendarCredentialCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CalendarCredentialCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
