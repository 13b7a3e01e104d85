// Code generated by ent, DO NOT EDIT.

package appointmentevent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the appointmentevent type in the database.
	Label = "appointment_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldAppointmentID holds the string denoting the appointment_id field in the database.
	FieldAppointmentID = "appointment_id"
	// FieldOldStatus holds the string denoting the old_status field in the database.
	FieldOldStatus = "old_status"
	// FieldNewStatus holds the string denoting the new_status field in the database.
	FieldNewStatus = "new_status"
	// FieldChangedBy holds the string denoting the changed_by field in the database.
	FieldChangedBy = "changed_by"
	// FieldActorRole holds the string denoting the actor_role field in the database.
	FieldActorRole = "actor_role"
	// FieldNote holds the string denoting the note field in the database.
	FieldNote = "note"
	// Table holds the table name of the appointmentevent in the database.
	Table = "appointment_events"
)

// Columns holds all SQL columns for appointmentevent fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldAppointmentID,
	FieldOldStatus,
	FieldNewStatus,
	FieldChangedBy,
	FieldActorRole,
	FieldNote,
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
	// ActorRoleValidator is a validator for the "actor_role" field. It is called by the builders before save.
	ActorRoleValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OldStatus defines the type for the "old_status" enum field.
type OldStatus string

// OldStatus values.
const (
	OldStatusPending   OldStatus = "pending"
	OldStatusConfirmed OldStatus = "confirmed"
	OldStatusCompleted OldStatus = "completed"
	OldStatusCancelled OldStatus = "cancelled"
	OldStatusNoShow    OldStatus = "no_show"
)

func (os OldStatus) String() string {
	return string(os)
}

// OldStatusValidator is a validator for the "old_status" field enum values. It is called by the builders before save.
func OldStatusValidator(os OldStatus) error {
	switch os {
	case OldStatusPending, OldStatusConfirmed, OldStatusCompleted, OldStatusCancelled, OldStatusNoShow:
		return nil
	default:
		return fmt.Errorf("appointmentevent: invalid enum value for old_status field: %q", os)
	}
}

// NewStatus defines the type for the "new_status" enum field.
type NewStatus string

// NewStatus values.
const (
	NewStatusPending   NewStatus = "pending"
	NewStatusConfirmed NewStatus = "confirmed"
	NewStatusCompleted NewStatus = "completed"
	NewStatusCancelled NewStatus = "cancelled"
	NewStatusNoShow    NewStatus = "no_show"
)

func (ns NewStatus) String() string {
	return string(ns)
}

// NewStatusValidator is a validator for the "new_status" field enum values. It is called by the builders before save.
func NewStatusValidator(ns NewStatus) error {
	switch ns {
	case NewStatusPending, NewStatusConfirmed, NewStatusCompleted, NewStatusCancelled, NewStatusNoShow:
		return nil
	default:
		return fmt.Errorf("appointmentevent: invalid enum value for new_status field: %q", ns)
	}
}

// OrderOption defines the ordering options for the AppointmentEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByAppointmentID orders the results by the appointment_id field.
func ByAppointmentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppointmentID, opts...).ToFunc()
}

// ByOldStatus orders the results by the old_status field.
func ByOldStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOldStatus, opts...).ToFunc()
}

// ByNewStatus orders the results by the new_status field.
func ByNewStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewStatus, opts...).ToFunc()
}

// ByChangedBy orders the results by the changed_by field.
func ByChangedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChangedBy, opts...).ToFunc()
}

// ByActorRole orders the results by the actor_role field.
func ByActorRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActorRole, opts...).ToFunc()
}

// ByNote orders the results by the note field.
func ByNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNote, opts...).ToFunc()
}
