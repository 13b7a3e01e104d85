// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/curaline/curaline_backend/internal/repo/appointmentmeeting"
	"github.com/google/uuid"
)

// AppointmentMeeting is the model entity for the AppointmentMeeting schema.
type AppointmentMeeting struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → appointments.id; nullable to survive appointment purges
	AppointmentID *uuid.UUID `json:"appointment_id,omitempty"`
	// MeetLink holds the value of the "meet_link" field.
	MeetLink string `json:"meet_link,omitempty"`
	// Provider event id; nil when the event was created out of band
	CalendarEventID *string `json:"calendar_event_id,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AppointmentMeeting) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case appointmentmeeting.FieldAppointmentID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case appointmentmeeting.FieldMeetLink, appointmentmeeting.FieldCalendarEventID:
			values[i] = new(sql.NullString)
		case appointmentmeeting.FieldCreatedAt, appointmentmeeting.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case appointmentmeeting.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AppointmentMeeting fields.
func (_m *AppointmentMeeting) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case appointmentmeeting.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case appointmentmeeting.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case appointmentmeeting.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case appointmentmeeting.FieldAppointmentID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field appointment_id", values[i])
			} else if value.Valid {
				_m.AppointmentID = new(uuid.UUID)
				*_m.AppointmentID = *value.S.(*uuid.UUID)
			}
		case appointmentmeeting.FieldMeetLink:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meet_link", values[i])
			} else if value.Valid {
				_m.MeetLink = value.String
			}
		case appointmentmeeting.FieldCalendarEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field calendar_event_id", values[i])
			} else if value.Valid {
				_m.CalendarEventID = new(string)
				*_m.CalendarEventID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AppointmentMeeting.
// This includes values selected through modifiers, order, etc.
func (_m *AppointmentMeeting) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AppointmentMeeting.
// Note that you need to call AppointmentMeeting.Unwrap() before calling this method if this AppointmentMeeting
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AppointmentMeeting) Update() *AppointmentMeetingUpdateOne {
	return NewAppointmentMeetingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AppointmentMeeting entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AppointmentMeeting) Unwrap() *AppointmentMeeting {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: AppointmentMeeting is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AppointmentMeeting) String() string {
	var builder strings.Builder
	builder.WriteString("AppointmentMeeting(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.AppointmentID; v != nil {
		builder.WriteString("appointment_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("meet_link=")
	builder.WriteString(_m.MeetLink)
	builder.WriteString(", ")
	if v := _m.CalendarEventID; v != nil {
		builder.WriteString("calendar_event_id=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// AppointmentMeetings is a parsable slice of AppointmentMeeting.
type AppointmentMeetings []*AppointmentMeeting
