// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/curaline/curaline_backend/internal/repo/messagereadreceipt"
	"github.com/google/uuid"
)

// MessageReadReceiptCreate is the builder for creating a MessageReadReceipt entity.
type MessageReadReceiptCreate struct {
	config
	mutation *MessageReadReceiptMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *MessageReadReceiptCreate) SetCreatedAt(v time.Time) *MessageReadReceiptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MessageReadReceiptCreate) SetNillableCreatedAt(v *time.Time) *MessageReadReceiptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetMessageID sets the "message_id" field.
func (_c *MessageReadReceiptCreate) SetMessageID(v uuid.UUID) *MessageReadReceiptCreate {
	_c.mutation.SetMessageID(v)
	return _c
}

// SetReaderID sets the "reader_id" field.
func (_c *MessageReadReceiptCreate) SetReaderID(v uuid.UUID) *MessageReadReceiptCreate {
	_c.mutation.SetReaderID(v)
	return _c
}

// SetID sets the "id" field.
func (_c *MessageReadReceiptCreate) SetID(v uuid.UUID) *MessageReadReceiptCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MessageReadReceiptCreate) SetNillableID(v *uuid.UUID) *MessageReadReceiptCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the MessageReadReceiptMutation object of the builder.
func (_c *MessageReadReceiptCreate) Mutation() *MessageReadReceiptMutation {
	return _c.mutation
}

// Save creates the MessageReadReceipt in the database.
func (_c *MessageReadReceiptCreate) Save(ctx context.Context) (*MessageReadReceipt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MessageReadReceiptCreate) SaveX(ctx context.Context) *MessageReadReceipt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageReadReceiptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageReadReceiptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MessageReadReceiptCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := messagereadreceipt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := messagereadreceipt.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MessageReadReceiptCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "MessageReadReceipt.created_at"`)}
	}
	if _, ok := _c.mutation.MessageID(); !ok {
		return &ValidationError{Name: "message_id", err: errors.New(`repo: missing required field "MessageReadReceipt.message_id"`)}
	}
	if _, ok := _c.mutation.ReaderID(); !ok {
		return &ValidationError{Name: "reader_id", err: errors.New(`repo: missing required field "MessageReadReceipt.reader_id"`)}
	}
	return nil
}

func (_c *MessageReadReceiptCreate) sqlSave(ctx context.Context) (*MessageReadReceipt, error) {
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

func (_c *MessageReadReceiptCreate) createSpec() (*MessageReadReceipt, *sqlgraph.CreateSpec) {
	var (
		_node = &MessageReadReceipt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(messagereadreceipt.Table, sqlgraph.NewFieldSpec(messagereadreceipt.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(messagereadreceipt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.MessageID(); ok {
		_spec.SetField(messagereadreceipt.FieldMessageID, field.TypeUUID, value)
		_node.MessageID = value
	}
	if value, ok := _c.mutation.ReaderID(); ok {
		_spec.SetField(messagereadreceipt.FieldReaderID, field.TypeUUID, value)
		_node.ReaderID = value
	}
	return _node, _spec
}

// MessageReadReceiptCreateBulk is the builder for creating many MessageReadReceipt entities in bulk.
type MessageReadReceiptCreateBulk struct {
	config
	err      error
	builders []*MessageReadReceiptCreate
}

// Save creates the MessageReadReceipt entities in the database.
func (_c *MessageReadReceiptCreateBulk) Save(ctx context.Context) ([]*MessageReadReceipt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MessageReadReceipt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MessageReadReceiptMutation)
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
func (_c *MessageReadReceiptCreateBulk) SaveX(ctx context.Context) []*MessageReadReceipt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageReadReceiptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageReadReceiptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
