// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/curaline/curaline_backend/internal/repo/appointmentreschedule"
	"github.com/google/uuid"
)

// AppointmentReschedule is the model entity for the AppointmentReschedule schema.
type AppointmentReschedule struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → appointments.id
	AppointmentID uuid.UUID `json:"appointment_id,omitempty"`
	// Slot held by the appointment when the request was made
	OldAvailabilityID uuid.UUID `json:"old_availability_id,omitempty"`
	// Requested target slot
	NewAvailabilityID uuid.UUID `json:"new_availability_id,omitempty"`
	// User id of the requester (patient or doctor)
	RequestedBy uuid.UUID `json:"requested_by,omitempty"`
	// Status holds the value of the "status" field.
	Status       appointmentreschedule.Status `json:"status,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AppointmentReschedule) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case appointmentreschedule.FieldStatus:
			values[i] = new(sql.NullString)
		case appointmentreschedule.FieldCreatedAt, appointmentreschedule.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case appointmentreschedule.FieldID, appointmentreschedule.FieldAppointmentID, appointmentreschedule.FieldOldAvailabilityID, appointmentreschedule.FieldNewAvailabilityID, appointmentreschedule.FieldRequestedBy:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AppointmentReschedule fields.
func (_m *AppointmentReschedule) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case appointmentreschedule.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case appointmentreschedule.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case appointmentreschedule.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case appointmentreschedule.FieldAppointmentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field appointment_id", values[i])
			} else if value != nil {
				_m.AppointmentID = *value
			}
		case appointmentreschedule.FieldOldAvailabilityID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field old_availability_id", values[i])
			} else if value != nil {
				_m.OldAvailabilityID = *value
			}
		case appointmentreschedule.FieldNewAvailabilityID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field new_availability_id", values[i])
			} else if value != nil {
				_m.NewAvailabilityID = *value
			}
		case appointmentreschedule.FieldRequestedBy:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field requested_by", values[i])
			} else if value != nil {
				_m.RequestedBy = *value
			}
		case appointmentreschedule.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = appointmentreschedule.Status(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AppointmentReschedule.
// This includes values selected through modifiers, order, etc.
func (_m *AppointmentReschedule) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AppointmentReschedule.
// Note that you need to call AppointmentReschedule.Unwrap() before calling this method if this AppointmentReschedule
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AppointmentReschedule) Update() *AppointmentRescheduleUpdateOne {
	return NewAppointmentRescheduleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AppointmentReschedule entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AppointmentReschedule) Unwrap() *AppointmentReschedule {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: AppointmentReschedule is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AppointmentReschedule) String() string {
	var builder strings.Builder
	builder.WriteString("AppointmentReschedule(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("appointment_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AppointmentID))
	builder.WriteString(", ")
	builder.WriteString("old_availability_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OldAvailabilityID))
	builder.WriteString(", ")
	builder.WriteString("new_availability_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.NewAvailabilityID))
	builder.WriteString(", ")
	builder.WriteString("requested_by=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequestedBy))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteByte(')')
	return builder.String()
}

// AppointmentReschedules is a parsable slice of AppointmentReschedule.
type AppointmentReschedules []*AppointmentReschedule
