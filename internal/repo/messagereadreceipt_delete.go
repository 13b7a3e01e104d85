// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/curaline/curaline_backend/internal/repo/messagereadreceipt"
	"github.com/curaline/curaline_backend/internal/repo/predicate"
)

// MessageReadReceiptDelete is the builder for deleting a MessageReadReceipt entity.
type MessageReadReceiptDelete struct {
	config
	hooks    []Hook
	mutation *MessageReadReceiptMutation
}

// Where appends a list predicates to the MessageReadReceiptDelete builder.
func (_d *MessageReadReceiptDelete) Where(ps ...predicate.MessageReadReceipt) *MessageReadReceiptDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *MessageReadReceiptDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MessageReadReceiptDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *MessageReadReceiptDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(messagereadreceipt.Table, sqlgraph.NewFieldSpec(messagereadreceipt.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// MessageReadReceiptDeleteOne is the builder for deleting a single MessageReadReceipt entity.
type MessageReadReceiptDeleteOne struct {
	_d *MessageReadReceiptDelete
}

// Where appends a list predicates to the MessageReadReceiptDelete builder.
func (_d *MessageReadReceiptDeleteOne) Where(ps ...predicate.MessageReadReceipt) *MessageReadReceiptDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *MessageReadReceiptDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{messagereadreceipt.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MessageReadReceiptDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
