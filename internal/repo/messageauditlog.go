// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/curaline/curaline_backend/internal/repo/messageauditlog"
	"github.com/google/uuid"
)

// MessageAuditLog is the model entity for the MessageAuditLog schema.
type MessageAuditLog struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → conversations.id
	ConversationID uuid.UUID `json:"conversation_id,omitempty"`
	// FK → messages.id; nil for conversation-level actions
	MessageID *uuid.UUID `json:"message_id,omitempty"`
	// User id that performed the action
	ActorID uuid.UUID `json:"actor_id,omitempty"`
	// Action holds the value of the "action" field.
	Action       messageauditlog.Action `json:"action,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MessageAuditLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case messageauditlog.FieldMessageID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case messageauditlog.FieldAction:
			values[i] = new(sql.NullString)
		case messageauditlog.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case messageauditlog.FieldID, messageauditlog.FieldConversationID, messageauditlog.FieldActorID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MessageAuditLog fields.
func (_m *MessageAuditLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case messageauditlog.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case messageauditlog.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case messageauditlog.FieldConversationID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field conversation_id", values[i])
			} else if value != nil {
				_m.ConversationID = *value
			}
		case messageauditlog.FieldMessageID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field message_id", values[i])
			} else if value.Valid {
				_m.MessageID = new(uuid.UUID)
				*_m.MessageID = *value.S.(*uuid.UUID)
			}
		case messageauditlog.FieldActorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field actor_id", values[i])
			} else if value != nil {
				_m.ActorID = *value
			}
		case messageauditlog.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = messageauditlog.Action(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MessageAuditLog.
// This includes values selected through modifiers, order, etc.
func (_m *MessageAuditLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MessageAuditLog.
// Note that you need to call MessageAuditLog.Unwrap() before calling this method if this MessageAuditLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MessageAuditLog) Update() *MessageAuditLogUpdateOne {
	return NewMessageAuditLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MessageAuditLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MessageAuditLog) Unwrap() *MessageAuditLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: MessageAuditLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MessageAuditLog) String() string {
	var builder strings.Builder
	builder.WriteString("MessageAuditLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("conversation_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConversationID))
	builder.WriteString(", ")
	if v := _m.MessageID; v != nil {
		builder.WriteString("message_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("actor_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActorID))
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(fmt.Sprintf("%v", _m.Action))
	builder.WriteByte(')')
	return builder.String()
}

// MessageAuditLogs is a parsable slice of MessageAuditLog.
type MessageAuditLogs []*MessageAuditLog
