// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/curaline/curaline_backend/internal/repo/messagereadreceipt"
	"github.com/google/uuid"
)

// MessageReadReceipt is the model entity for the MessageReadReceipt schema.
type MessageReadReceipt struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → messages.id
	MessageID uuid.UUID `json:"message_id,omitempty"`
	// User id of the reader
	ReaderID     uuid.UUID `json:"reader_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MessageReadReceipt) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case messagereadreceipt.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case messagereadreceipt.FieldID, messagereadreceipt.FieldMessageID, messagereadreceipt.FieldReaderID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MessageReadReceipt fields.
func (_m *MessageReadReceipt) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case messagereadreceipt.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case messagereadreceipt.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case messagereadreceipt.FieldMessageID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field message_id", values[i])
			} else if value != nil {
				_m.MessageID = *value
			}
		case messagereadreceipt.FieldReaderID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field reader_id", values[i])
			} else if value != nil {
				_m.ReaderID = *value
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MessageReadReceipt.
// This includes values selected through modifiers, order, etc.
func (_m *MessageReadReceipt) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MessageReadReceipt.
// Note that you need to call MessageReadReceipt.Unwrap() before calling this method if this MessageReadReceipt
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MessageReadReceipt) Update() *MessageReadReceiptUpdateOne {
	return NewMessageReadReceiptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MessageReadReceipt entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MessageReadReceipt) Unwrap() *MessageReadReceipt {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: MessageReadReceipt is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MessageReadReceipt) String() string {
	var builder strings.Builder
	builder.WriteString("MessageReadReceipt(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("message_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.MessageID))
	builder.WriteString(", ")
	builder.WriteString("reader_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReaderID))
	builder.WriteByte(')')
	return builder.String()
}

// MessageReadReceipts is a parsable slice of MessageReadReceipt.
type MessageReadReceipts []*MessageReadReceipt
