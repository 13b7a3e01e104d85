// Code generated by ent, DO NOT EDIT.

package messagereadreceipt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the messagereadreceipt type in the database.
	Label = "message_read_receipt"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldMessageID holds the string denoting the message_id field in the database.
	FieldMessageID = "message_id"
	// FieldReaderID holds the string denoting the reader_id field in the database.
	FieldReaderID = "reader_id"
	// Table holds the table name of the messagereadreceipt in the database.
	Table = "message_read_receipts"
)

// Columns holds all SQL columns for messagereadreceipt fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldMessageID,
	FieldReaderID,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the MessageReadReceipt queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByMessageID orders the results by the message_id field.
func ByMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageID, opts...).ToFunc()
}

// ByReaderID orders the results by the reader_id field.
func ByReaderID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReaderID, opts...).ToFunc()
}
