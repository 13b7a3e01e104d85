// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/curaline/curaline_backend/internal/repo/messagereadreceipt"
	"github.com/curaline/curaline_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// MessageReadReceiptUpdate is the builder for updating MessageReadReceipt entities.
type MessageReadReceiptUpdate struct {
	config
	hooks    []Hook
	mutation *MessageReadReceiptMutation
}

// Where appends a list predicates to the MessageReadReceiptUpdate builder.
func (_u *MessageReadReceiptUpdate) Where(ps ...predicate.MessageReadReceipt) *MessageReadReceiptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *MessageReadReceiptUpdate) SetMessageID(v uuid.UUID) *MessageReadReceiptUpdate {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *MessageReadReceiptUpdate) SetNillableMessageID(v *uuid.UUID) *MessageReadReceiptUpdate {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// SetReaderID sets the "reader_id" field.
func (_u *MessageReadReceiptUpdate) SetReaderID(v uuid.UUID) *MessageReadReceiptUpdate {
	_u.mutation.SetReaderID(v)
	return _u
}

// SetNillableReaderID sets the "reader_id" field if the given value is not nil.
func (_u *MessageReadReceiptUpdate) SetNillableReaderID(v *uuid.UUID) *MessageReadReceiptUpdate {
	if v != nil {
		_u.SetReaderID(*v)
	}
	return _u
}

// Mutation returns the MessageReadReceiptMutation object of the builder.
func (_u *MessageReadReceiptUpdate) Mutation() *MessageReadReceiptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MessageReadReceiptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageReadReceiptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MessageReadReceiptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageReadReceiptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MessageReadReceiptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(messagereadreceipt.Table, messagereadreceipt.Columns, sqlgraph.NewFieldSpec(messagereadreceipt.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(messagereadreceipt.FieldMessageID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ReaderID(); ok {
		_spec.SetField(messagereadreceipt.FieldReaderID, field.TypeUUID, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{messagereadreceipt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MessageReadReceiptUpdateOne is the builder for updating a single MessageReadReceipt entity.
type MessageReadReceiptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MessageReadReceiptMutation
}

// SetMessageID sets the "message_id" field.
func (_u *MessageReadReceiptUpdateOne) SetMessageID(v uuid.UUID) *MessageReadReceiptUpdateOne {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *MessageReadReceiptUpdateOne) SetNillableMessageID(v *uuid.UUID) *MessageReadReceiptUpdateOne {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// SetReaderID sets the "reader_id" field.
func (_u *MessageReadReceiptUpdateOne) SetReaderID(v uuid.UUID) *MessageReadReceiptUpdateOne {
	_u.mutation.SetReaderID(v)
	return _u
}

// SetNillableReaderID sets the "reader_id" field if the given value is not nil.
func (_u *MessageReadReceiptUpdateOne) SetNillableReaderID(v *uuid.UUID) *MessageReadReceiptUpdateOne {
	if v != nil {
		_u.SetReaderID(*v)
	}
	return _u
}

// Mutation returns the MessageReadReceiptMutation object of the builder.
func (_u *MessageReadReceiptUpdateOne) Mutation() *MessageReadReceiptMutation {
	return _u.mutation
}

// Where appends a list predicates to the MessageReadReceiptUpdate builder.
func (_u *MessageReadReceiptUpdateOne) Where(ps ...predicate.MessageReadReceipt) *MessageReadReceiptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MessageReadReceiptUpdateOne) Select(field string, fields ...string) *MessageReadReceiptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MessageReadReceipt entity.
func (_u *MessageReadReceiptUpdateOne) Save(ctx context.Context) (*MessageReadReceipt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageReadReceiptUpdateOne) SaveX(ctx context.Context) *MessageReadReceipt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MessageReadReceiptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageReadReceiptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MessageReadReceiptUpdateOne) sqlSave(ctx context.Context) (_node *MessageReadReceipt, err error) {
	_spec := sqlgraph.NewUpdateSpec(messagereadreceipt.Table, messagereadreceipt.Columns, sqlgraph.NewFieldSpec(messagereadreceipt.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "MessageReadReceipt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, messagereadreceipt.FieldID)
		for _, f := range fields {
			if !messagereadreceipt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != messagereadreceipt.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(messagereadreceipt.FieldMessageID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ReaderID(); ok {
		_spec.SetField(messagereadreceipt.FieldReaderID, field.TypeUUID, value)
	}
	_node = &MessageReadReceipt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{messagereadreceipt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
