// Code generated by ent, DO NOT EDIT.

package messagereadreceipt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/curaline/curaline_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.MessageReadReceipt {
	return predicate.MessageReadReceipt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.MessageReadReceipt {
	return predicate.MessageReadReceipt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.MessageReadReceipt {
	return predicate.MessageReadReceipt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.MessageReadReceipt {
	return predicate.MessageReadReceipt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.MessageReadReceipt {
	return predicate.MessageReadReceipt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.MessageReadReceipt {
	return predicate.MessageReadReceipt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.MessageReadReceipt {
	return predicate.MessageReadReceipt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.MessageReadReceipt {
	return predicate.MessageReadReceipt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.MessageReadReceipt {
	return predicate.MessageReadReceipt(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MessageReadReceipt {
	return predicate.MessageReadReceipt(sql.FieldEQ(FieldCreatedAt, v))
}

// MessageID applies equality check predicate on the "message_id" field. It's identical to MessageIDEQ.
func MessageID(v uuid.UUID) predicate.MessageReadReceipt {
	return predicate.MessageReadReceipt(sql.FieldEQ(FieldMessageID, v))
}

// ReaderID applies equality check predicate on the "reader_id" field. It's identical to ReaderIDEQ.
func ReaderID(v uuid.UUID) predicate.MessageReadReceipt {
	return predicate.MessageReadReceipt(sql.FieldEQ(FieldReaderID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MessageReadReceipt {
	return predicate.MessageReadReceipt(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MessageReadReceipt {
	return predicate.MessageReadReceipt(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MessageReadReceipt {
	return predicate.MessageReadReceipt(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MessageReadReceipt {
	return predicate.MessageReadReceipt(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MessageReadReceipt {
	return predicate.MessageReadReceipt(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MessageReadReceipt {
	return predicate.MessageReadReceipt(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MessageReadReceipt {
	return predicate.MessageReadReceipt(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MessageReadReceipt {
	return predicate.MessageReadReceipt(sql.FieldLTE(FieldCreatedAt, v))
}

// MessageIDEQ applies the EQ predicate on the "message_id" field.
func MessageIDEQ(v uuid.UUID) predicate.MessageReadReceipt {
	return predicate.MessageReadReceipt(sql.FieldEQ(FieldMessageID, v))
}

// MessageIDNEQ applies the NEQ predicate on the "message_id" field.
func MessageIDNEQ(v uuid.UUID) predicate.MessageReadReceipt {
	return predicate.MessageReadReceipt(sql.FieldNEQ(FieldMessageID, v))
}

// MessageIDIn applies the In predicate on the "message_id" field.
func MessageIDIn(vs ...uuid.UUID) predicate.MessageReadReceipt {
	return predicate.MessageReadReceipt(sql.FieldIn(FieldMessageID, vs...))
}

// MessageIDNotIn applies the NotIn predicate on the "message_id" field.
func MessageIDNotIn(vs ...uuid.UUID) predicate.MessageReadReceipt {
	return predicate.MessageReadReceipt(sql.FieldNotIn(FieldMessageID, vs...))
}

// MessageIDGT applies the GT predicate on the "message_id" field.
func MessageIDGT(v uuid.UUID) predicate.MessageReadReceipt {
	return predicate.MessageReadReceipt(sql.FieldGT(FieldMessageID, v))
}

// MessageIDGTE applies the GTE predicate on the "message_id" field.
func MessageIDGTE(v uuid.UUID) predicate.MessageReadReceipt {
	return predicate.MessageReadReceipt(sql.FieldGTE(FieldMessageID, v))
}

// MessageIDLT applies the LT predicate on the "message_id" field.
func MessageIDLT(v uuid.UUID) predicate.MessageReadReceipt {
	return predicate.MessageReadReceipt(sql.FieldLT(FieldMessageID, v))
}

// MessageIDLTE applies the LTE predicate on the "message_id" field.
func MessageIDLTE(v uuid.UUID) predicate.MessageReadReceipt {
	return predicate.MessageReadReceipt(sql.FieldLTE(FieldMessageID, v))
}

// ReaderIDEQ applies the EQ predicate on the "reader_id" field.
func ReaderIDEQ(v uuid.UUID) predicate.MessageReadReceipt {
	return predicate.MessageReadReceipt(sql.FieldEQ(FieldReaderID, v))
}

// ReaderIDNEQ applies the NEQ predicate on the "reader_id" field.
func ReaderIDNEQ(v uuid.UUID) predicate.MessageReadReceipt {
	return predicate.MessageReadReceipt(sql.FieldNEQ(FieldReaderID, v))
}

// ReaderIDIn applies the In predicate on the "reader_id" field.
func ReaderIDIn(vs ...uuid.UUID) predicate.MessageReadReceipt {
	return predicate.MessageReadReceipt(sql.FieldIn(FieldReaderID, vs...))
}

// ReaderIDNotIn applies the NotIn predicate on the "reader_id" field.
func ReaderIDNotIn(vs ...uuid.UUID) predicate.MessageReadReceipt {
	return predicate.MessageReadReceipt(sql.FieldNotIn(FieldReaderID, vs...))
}

// ReaderIDGT applies the GT predicate on the "reader_id" field.
func ReaderIDGT(v uuid.UUID) predicate.MessageReadReceipt {
	return predicate.MessageReadReceipt(sql.FieldGT(FieldReaderID, v))
}

// ReaderIDGTE applies the GTE predicate on the "reader_id" field.
func ReaderIDGTE(v uuid.UUID) predicate.MessageReadReceipt {
	return predicate.MessageReadReceipt(sql.FieldGTE(FieldReaderID, v))
}

// ReaderIDLT applies the LT predicate on the "reader_id" field.
func ReaderIDLT(v uuid.UUID) predicate.MessageReadReceipt {
	return predicate.MessageReadReceipt(sql.FieldLT(FieldReaderID, v))
}

// ReaderIDLTE applies the LTE predicate on the "reader_id" field.
func ReaderIDLTE(v uuid.UUID) predicate.MessageReadReceipt {
	return predicate.MessageReadReceipt(sql.FieldLTE(FieldReaderID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MessageReadReceipt) predicate.MessageReadReceipt {
	return predicate.MessageReadReceipt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MessageReadReceipt) predicate.MessageReadReceipt {
	return predicate.MessageReadReceipt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MessageReadReceipt) predicate.MessageReadReceipt {
	return predicate.MessageReadReceipt(sql.NotPredicates(p))
}
