// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Appointment is the predicate function for appointment builders.
type Appointment func(*sql.Selector)

// AppointmentEvent is the predicate function for appointmentevent builders.
type AppointmentEvent func(*sql.Selector)

// AppointmentMeeting is the predicate function for appointmentmeeting builders.
type AppointmentMeeting func(*sql.Selector)

// AppointmentReschedule is the predicate function for appointmentreschedule builders.
type AppointmentReschedule func(*sql.Selector)

// AvailabilitySlot is the predicate function for availabilityslot builders.
type AvailabilitySlot func(*sql.Selector)

// CalendarCredential is the predicate function for calendarcredential builders.
type CalendarCredential func(*sql.Selector)

// Conversation is the predicate function for conversation builders.
type Conversation func(*sql.Selector)

// DoctorPatient is the predicate function for doctorpatient builders.
type DoctorPatient func(*sql.Selector)

// DoctorRating is the predicate function for doctorrating builders.
type DoctorRating func(*sql.Selector)

// LabReport is the predicate function for labreport builders.
type LabReport func(*sql.Selector)

// MedicalHistory is the predicate function for medicalhistory builders.
type MedicalHistory func(*sql.Selector)

// Medication is the predicate function for medication builders.
type Medication func(*sql.Selector)

// MedicationProgress is the predicate function for medicationprogress builders.
type MedicationProgress func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// MessageAuditLog is the predicate function for messageauditlog builders.
type MessageAuditLog func(*sql.Selector)

// MessageReadReceipt is the predicate function for messagereadreceipt builders.
type MessageReadReceipt func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// Prescription is the predicate function for prescription builders.
type Prescription func(*sql.Selector)

// TimeOff is the predicate function for timeoff builders.
type TimeOff func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
