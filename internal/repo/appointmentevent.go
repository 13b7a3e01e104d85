// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/curaline/curaline_backend/internal/repo/appointmentevent"
	"github.com/google/uuid"
)

// AppointmentEvent is the model entity for the AppointmentEvent schema.
type AppointmentEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → appointments.id
	AppointmentID uuid.UUID `json:"appointment_id,omitempty"`
	// Nil for the initial booking event
	OldStatus *appointmentevent.OldStatus `json:"old_status,omitempty"`
	// NewStatus holds the value of the "new_status" field.
	NewStatus appointmentevent.NewStatus `json:"new_status,omitempty"`
	// User id of the actor
	ChangedBy uuid.UUID `json:"changed_by,omitempty"`
	// ActorRole holds the value of the "actor_role" field.
	ActorRole string `json:"actor_role,omitempty"`
	// Note holds the value of the "note" field.
	Note         *string `json:"note,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AppointmentEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case appointmentevent.FieldOldStatus, appointmentevent.FieldNewStatus, appointmentevent.FieldActorRole, appointmentevent.FieldNote:
			values[i] = new(sql.NullString)
		case appointmentevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case appointmentevent.FieldID, appointmentevent.FieldAppointmentID, appointmentevent.FieldChangedBy:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AppointmentEvent fields.
func (_m *AppointmentEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case appointmentevent.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case appointmentevent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case appointmentevent.FieldAppointmentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field appointment_id", values[i])
			} else if value != nil {
				_m.AppointmentID = *value
			}
		case appointmentevent.FieldOldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field old_status", values[i])
			} else if value.Valid {
				_m.OldStatus = new(appointmentevent.OldStatus)
				*_m.OldStatus = appointmentevent.OldStatus(value.String)
			}
		case appointmentevent.FieldNewStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field new_status", values[i])
			} else if value.Valid {
				_m.NewStatus = appointmentevent.NewStatus(value.String)
			}
		case appointmentevent.FieldChangedBy:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field changed_by", values[i])
			} else if value != nil {
				_m.ChangedBy = *value
			}
		case appointmentevent.FieldActorRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actor_role", values[i])
			} else if value.Valid {
				_m.ActorRole = value.String
			}
		case appointmentevent.FieldNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field note", values[i])
			} else if value.Valid {
				_m.Note = new(string)
				*_m.Note = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AppointmentEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AppointmentEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AppointmentEvent.
// Note that you need to call AppointmentEvent.Unwrap() before calling this method if this AppointmentEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AppointmentEvent) Update() *AppointmentEventUpdateOne {
	return NewAppointmentEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AppointmentEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AppointmentEvent) Unwrap() *AppointmentEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: AppointmentEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AppointmentEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AppointmentEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("appointment_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AppointmentID))
	builder.WriteString(", ")
	if v := _m.OldStatus; v != nil {
		builder.WriteString("old_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("new_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.NewStatus))
	builder.WriteString(", ")
	builder.WriteString("changed_by=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChangedBy))
	builder.WriteString(", ")
	builder.WriteString("actor_role=")
	builder.WriteString(_m.ActorRole)
	builder.WriteString(", ")
	if v := _m.Note; v != nil {
		builder.WriteString("note=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// AppointmentEvents is a parsable slice of AppointmentEvent.
type AppointmentEvents []*AppointmentEvent
