// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/curaline/curaline_backend/internal/repo/messageauditlog"
	"github.com/curaline/curaline_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// MessageAuditLogUpdate is the builder for updating MessageAuditLog entities.
type MessageAuditLogUpdate struct {
	config
	hooks    []Hook
	mutation *MessageAuditLogMutation
}

// Where appends a list predicates to the MessageAuditLogUpdate builder.
func (_u *MessageAuditLogUpdate) Where(ps ...predicate.MessageAuditLog) *MessageAuditLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConversationID sets the "conversation_id" field.
func (_u *MessageAuditLogUpdate) SetConversationID(v uuid.UUID) *MessageAuditLogUpdate {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *MessageAuditLogUpdate) SetNillableConversationID(v *uuid.UUID) *MessageAuditLogUpdate {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *MessageAuditLogUpdate) SetMessageID(v uuid.UUID) *MessageAuditLogUpdate {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *MessageAuditLogUpdate) SetNillableMessageID(v *uuid.UUID) *MessageAuditLogUpdate {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// ClearMessageID clears the value of the "message_id" field.
func (_u *MessageAuditLogUpdate) ClearMessageID() *MessageAuditLogUpdate {
	_u.mutation.ClearMessageID()
	return _u
}

// SetActorID sets the "actor_id" field.
func (_u *MessageAuditLogUpdate) SetActorID(v uuid.UUID) *MessageAuditLogUpdate {
	_u.mutation.SetActorID(v)
	return _u
}

// SetNillableActorID sets the "actor_id" field if the given value is not nil.
func (_u *MessageAuditLogUpdate) SetNillableActorID(v *uuid.UUID) *MessageAuditLogUpdate {
	if v != nil {
		_u.SetActorID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *MessageAuditLogUpdate) SetAction(v messageauditlog.Action) *MessageAuditLogUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *MessageAuditLogUpdate) SetNillableAction(v *messageauditlog.Action) *MessageAuditLogUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// Mutation returns the MessageAuditLogMutation object of the builder.
func (_u *MessageAuditLogUpdate) Mutation() *MessageAuditLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MessageAuditLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageAuditLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MessageAuditLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageAuditLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageAuditLogUpdate) check() error {
	if v, ok := _u.mutation.Action(); ok {
		if err := messageauditlog.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`repo: validator failed for field "MessageAuditLog.action": %w`, err)}
		}
	}
	return nil
}

func (_u *MessageAuditLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(messageauditlog.Table, messageauditlog.Columns, sqlgraph.NewFieldSpec(messageauditlog.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ConversationID(); ok {
		_spec.SetField(messageauditlog.FieldConversationID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(messageauditlog.FieldMessageID, field.TypeUUID, value)
	}
	if _u.mutation.MessageIDCleared() {
		_spec.ClearField(messageauditlog.FieldMessageID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ActorID(); ok {
		_spec.SetField(messageauditlog.FieldActorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(messageauditlog.FieldAction, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{messageauditlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MessageAuditLogUpdateOne is the builder for updating a single MessageAuditLog entity.
type MessageAuditLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MessageAuditLogMutation
}

// SetConversationID sets the "conversation_id" field.
func (_u *MessageAuditLogUpdateOne) SetConversationID(v uuid.UUID) *MessageAuditLogUpdateOne {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *MessageAuditLogUpdateOne) SetNillableConversationID(v *uuid.UUID) *MessageAuditLogUpdateOne {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *MessageAuditLogUpdateOne) SetMessageID(v uuid.UUID) *MessageAuditLogUpdateOne {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *MessageAuditLogUpdateOne) SetNillableMessageID(v *uuid.UUID) *MessageAuditLogUpdateOne {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// ClearMessageID clears the value of the "message_id" field.
func (_u *MessageAuditLogUpdateOne) ClearMessageID() *MessageAuditLogUpdateOne {
	_u.mutation.ClearMessageID()
	return _u
}

// SetActorID sets the "actor_id" field.
func (_u *MessageAuditLogUpdateOne) SetActorID(v uuid.UUID) *MessageAuditLogUpdateOne {
	_u.mutation.SetActorID(v)
	return _u
}

// SetNillableActorID sets the "actor_id" field if the given value is not nil.
func (_u *MessageAuditLogUpdateOne) SetNillableActorID(v *uuid.UUID) *MessageAuditLogUpdateOne {
	if v != nil {
		_u.SetActorID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *MessageAuditLogUpdateOne) SetAction(v messageauditlog.Action) *MessageAuditLogUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *MessageAuditLogUpdateOne) SetNillableAction(v *messageauditlog.Action) *MessageAuditLogUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// Mutation returns the MessageAuditLogMutation object of the builder.
func (_u *MessageAuditLogUpdateOne) Mutation() *MessageAuditLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the MessageAuditLogUpdate builder.
func (_u *MessageAuditLogUpdateOne) Where(ps ...predicate.MessageAuditLog) *MessageAuditLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MessageAuditLogUpdateOne) Select(field string, fields ...string) *MessageAuditLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MessageAuditLog entity.
func (_u *MessageAuditLogUpdateOne) Save(ctx context.Context) (*MessageAuditLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageAuditLogUpdateOne) SaveX(ctx context.Context) *MessageAuditLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MessageAuditLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageAuditLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageAuditLogUpdateOne) check() error {
	if v, ok := _u.mutation.Action(); ok {
		if err := messageauditlog.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`repo: validator failed for field "MessageAuditLog.action": %w`, err)}
		}
	}
	return nil
}

func (_u *MessageAuditLogUpdateOne) sqlSave(ctx context.Context) (_node *MessageAuditLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(messageauditlog.Table, messageauditlog.Columns, sqlgraph.NewFieldSpec(messageauditlog.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "MessageAuditLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, messageauditlog.FieldID)
		for _, f := range fields {
			if !messageauditlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != messageauditlog.FieldID {
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
	if value, ok := _u.mutation.ConversationID(); ok {
		_spec.SetField(messageauditlog.FieldConversationID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(messageauditlog.FieldMessageID, field.TypeUUID, value)
	}
	if _u.mutation.MessageIDCleared() {
		_spec.ClearField(messageauditlog.FieldMessageID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ActorID(); ok {
		_spec.SetField(messageauditlog.FieldActorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(messageauditlog.FieldAction, field.TypeEnum, value)
	}
	_node = &MessageAuditLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{messageauditlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
