// Code generated by ent, DO NOT EDIT.

package appointment

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the appointment type in the database.
	Label = "appointment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// FieldPatientID holds the string denoting the patient_id field in the database.
	FieldPatientID = "patient_id"
	// FieldDoctorID holds the string denoting the doctor_id field in the database.
	FieldDoctorID = "doctor_id"
	// FieldAvailabilityID holds the string denoting the availability_id field in the database.
	FieldAvailabilityID = "availability_id"
	// FieldAppointmentType holds the string denoting the appointment_type field in the database.
	FieldAppointmentType = "appointment_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldScheduledStart holds the string denoting the scheduled_start field in the database.
	FieldScheduledStart = "scheduled_start"
	// FieldScheduledEnd holds the string denoting the scheduled_end field in the database.
	FieldScheduledEnd = "scheduled_end"
	// FieldCancelledBy holds the string denoting the cancelled_by field in the database.
	FieldCancelledBy = "cancelled_by"
	// FieldCancelledAt holds the string denoting the cancelled_at field in the database.
	FieldCancelledAt = "cancelled_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeAvailability holds the string denoting the availability edge name in mutations.
	EdgeAvailability = "availability"
	// Table holds the table name of the appointment in the database.
	Table = "appointments"
	// AvailabilityTable is the table that holds the availability relation/edge.
	AvailabilityTable = "appointments"
	// AvailabilityInverseTable is the table name for the AvailabilitySlot entity.
	// It exists in this package in order to avoid circular dependency with the "availabilityslot" package.
	AvailabilityInverseTable = "availability_slots"
	// AvailabilityColumn is the table column denoting the availability relation/edge.
	AvailabilityColumn = "availability_id"
)

// Columns holds all SQL columns for appointment fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
	FieldPatientID,
	FieldDoctorID,
	FieldAvailabilityID,
	FieldAppointmentType,
	FieldStatus,
	FieldReason,
	FieldScheduledStart,
	FieldScheduledEnd,
	FieldCancelledBy,
	FieldCancelledAt,
	FieldCompletedAt,
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
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultAppointmentType holds the default value on creation for the "appointment_type" field.
	DefaultAppointmentType string
	// AppointmentTypeValidator is a validator for the "appointment_type" field. It is called by the builders before save.
	AppointmentTypeValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return nil
	default:
		return fmt.Errorf("appointment: invalid enum value for status field: %q", s)
	}
}

// CancelledBy defines the type for the "cancelled_by" enum field.
type CancelledBy string

// CancelledBy values.
const (
	CancelledByPatient CancelledBy = "patient"
	CancelledByDoctor  CancelledBy = "doctor"
	CancelledByAdmin   CancelledBy = "admin"
)

func (cb CancelledBy) String() string {
	return string(cb)
}

// CancelledByValidator is a validator for the "cancelled_by" field enum values. It is called by the builders before save.
func CancelledByValidator(cb CancelledBy) error {
	switch cb {
	case CancelledByPatient, CancelledByDoctor, CancelledByAdmin:
		return nil
	default:
		return fmt.Errorf("appointment: invalid enum value for cancelled_by field: %q", cb)
	}
}

// OrderOption defines the ordering options for the Appointment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByPatientID orders the results by the patient_id field.
func ByPatientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientID, opts...).ToFunc()
}

// ByDoctorID orders the results by the doctor_id field.
func ByDoctorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDoctorID, opts...).ToFunc()
}

// ByAvailabilityID orders the results by the availability_id field.
func ByAvailabilityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvailabilityID, opts...).ToFunc()
}

// ByAppointmentType orders the results by the appointment_type field.
func ByAppointmentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppointmentType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByScheduledStart orders the results by the scheduled_start field.
func ByScheduledStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduledStart, opts...).ToFunc()
}

// ByScheduledEnd orders the results by the scheduled_end field.
func ByScheduledEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduledEnd, opts...).ToFunc()
}

// ByCancelledBy orders the results by the cancelled_by field.
func ByCancelledBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelledBy, opts...).ToFunc()
}

// ByCancelledAt orders the results by the cancelled_at field.
func ByCancelledAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelledAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByAvailabilityField orders the results by availability field.
func ByAvailabilityField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAvailabilityStep(), sql.OrderByField(field, opts...))
	}
}
func newAvailabilityStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AvailabilityInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, AvailabilityTable, AvailabilityColumn),
	)
}
