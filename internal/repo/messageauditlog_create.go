// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/curaline/curaline_backend/internal/repo/messageauditlog"
	"github.com/google/uuid"
)

// MessageAuditLogCreate is the builder for creating a MessageAuditLog entity.
type MessageAuditLogCreate struct {
	config
	mutation *MessageAuditLogMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *MessageAuditLogCreate) SetCreatedAt(v time.Time) *MessageAuditLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MessageAuditLogCreate) SetNillableCreatedAt(v *time.Time) *MessageAuditLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetConversationID sets the "conversation_id" field.
func (_c *MessageAuditLogCreate) SetConversationID(v uuid.UUID) *MessageAuditLogCreate {
	_c.mutation.SetConversationID(v)
	return _c
}

// SetMessageID sets the "message_id" field.
func (_c *MessageAuditLogCreate) SetMessageID(v uuid.UUID) *MessageAuditLogCreate {
	_c.mutation.SetMessageID(v)
	return _c
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_c *MessageAuditLogCreate) SetNillableMessageID(v *uuid.UUID) *MessageAuditLogCreate {
	if v != nil {
		_c.SetMessageID(*v)
	}
	return _c
}

// SetActorID sets the "actor_id" field.
func (_c *MessageAuditLogCreate) SetActorID(v uuid.UUID) *MessageAuditLogCreate {
	_c.mutation.SetActorID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *MessageAuditLogCreate) SetAction(v messageauditlog.Action) *MessageAuditLogCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetID sets the "id" field.
func (_c *MessageAuditLogCreate) SetID(v uuid.UUID) *MessageAuditLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MessageAuditLogCreate) SetNillableID(v *uuid.UUID) *MessageAuditLogCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the MessageAuditLogMutation object of the builder.
func (_c *MessageAuditLogCreate) Mutation() *MessageAuditLogMutation {
	return _c.mutation
}

// Save creates the MessageAuditLog in the database.
func (_c *MessageAuditLogCreate) Save(ctx context.Context) (*MessageAuditLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MessageAuditLogCreate) SaveX(ctx context.Context) *MessageAuditLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageAuditLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageAuditLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MessageAuditLogCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := messageauditlog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := messageauditlog.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MessageAuditLogCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "MessageAuditLog.created_at"`)}
	}
	if _, ok := _c.mutation.ConversationID(); !ok {
		return &ValidationError{Name: "conversation_id", err: errors.New(`repo: missing required field "MessageAuditLog.conversation_id"`)}
	}
	if _, ok := _c.mutation.ActorID(); !ok {
		return &ValidationError{Name: "actor_id", err: errors.New(`repo: missing required field "MessageAuditLog.actor_id"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`repo: missing required field "MessageAuditLog.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := messageauditlog.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`repo: validator failed for field "MessageAuditLog.action": %w`, err)}
		}
	}
	return nil
}

func (_c *MessageAuditLogCreate) sqlSave(ctx context.Context) (*MessageAuditLog, error) {
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

func (_c *MessageAuditLogCreate) createSpec() (*MessageAuditLog, *sqlgraph.CreateSpec) {
	var (
		_node = &MessageAuditLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(messageauditlog.Table, sqlgraph.NewFieldSpec(messageauditlog.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(messageauditlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ConversationID(); ok {
		_spec.SetField(messageauditlog.FieldConversationID, field.TypeUUID, value)
		_node.ConversationID = value
	}
	if value, ok := _c.mutation.MessageID(); ok {
		_spec.SetField(messageauditlog.FieldMessageID, field.TypeUUID, value)
		_node.MessageID = &value
	}
	if value, ok := _c.mutation.ActorID(); ok {
		_spec.SetField(messageauditlog.FieldActorID, field.TypeUUID, value)
		_node.ActorID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(messageauditlog.FieldAction, field.TypeEnum, value)
		_node.Action = value
	}
	return _node, _spec
}

// MessageAuditLogCreateBulk is the builder for creating many MessageAuditLog entities in bulk.
type MessageAuditLogCreateBulk struct {
	config
	err      error
	builders []*MessageAuditLogCreate
}

// Save creates the MessageAuditLog entities in the database.
func (_c *MessageAuditLogCreateBulk) Save(ctx context.Context) ([]*MessageAuditLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MessageAuditLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MessageAuditLogMutation)
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
func (_c *MessageAuditLogCreateBulk) SaveX(ctx context.Context) []*MessageAuditLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageAuditLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageAuditLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
