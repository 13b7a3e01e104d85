// Code generated by ent, DO NOT EDIT.

package appointmentmeeting

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/curaline/curaline_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldEQ(FieldUpdatedAt, v))
}

// AppointmentID applies equality check predicate on the "appointment_id" field. It's identical to AppointmentIDEQ.
func AppointmentID(v uuid.UUID) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldEQ(FieldAppointmentID, v))
}

// MeetLink applies equality check predicate on the "meet_link" field. It's identical to MeetLinkEQ.
func MeetLink(v string) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldEQ(FieldMeetLink, v))
}

// CalendarEventID applies equality check predicate on the "calendar_event_id" field. It's identical to CalendarEventIDEQ.
func CalendarEventID(v string) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldEQ(FieldCalendarEventID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldLTE(FieldUpdatedAt, v))
}

// AppointmentIDEQ applies the EQ predicate on the "appointment_id" field.
func AppointmentIDEQ(v uuid.UUID) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldEQ(FieldAppointmentID, v))
}

// AppointmentIDNEQ applies the NEQ predicate on the "appointment_id" field.
func AppointmentIDNEQ(v uuid.UUID) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldNEQ(FieldAppointmentID, v))
}

// AppointmentIDIn applies the In predicate on the "appointment_id" field.
func AppointmentIDIn(vs ...uuid.UUID) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldIn(FieldAppointmentID, vs...))
}

// AppointmentIDNotIn applies the NotIn predicate on the "appointment_id" field.
func AppointmentIDNotIn(vs ...uuid.UUID) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldNotIn(FieldAppointmentID, vs...))
}

// AppointmentIDGT applies the GT predicate on the "appointment_id" field.
func AppointmentIDGT(v uuid.UUID) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldGT(FieldAppointmentID, v))
}

// AppointmentIDGTE applies the GTE predicate on the "appointment_id" field.
func AppointmentIDGTE(v uuid.UUID) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldGTE(FieldAppointmentID, v))
}

// AppointmentIDLT applies the LT predicate on the "appointment_id" field.
func AppointmentIDLT(v uuid.UUID) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldLT(FieldAppointmentID, v))
}

// AppointmentIDLTE applies the LTE predicate on the "appointment_id" field.
func AppointmentIDLTE(v uuid.UUID) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldLTE(FieldAppointmentID, v))
}

// AppointmentIDIsNil applies the IsNil predicate on the "appointment_id" field.
func AppointmentIDIsNil() predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldIsNull(FieldAppointmentID))
}

// AppointmentIDNotNil applies the NotNil predicate on the "appointment_id" field.
func AppointmentIDNotNil() predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldNotNull(FieldAppointmentID))
}

// MeetLinkEQ applies the EQ predicate on the "meet_link" field.
func MeetLinkEQ(v string) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldEQ(FieldMeetLink, v))
}

// MeetLinkNEQ applies the NEQ predicate on the "meet_link" field.
func MeetLinkNEQ(v string) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldNEQ(FieldMeetLink, v))
}

// MeetLinkIn applies the In predicate on the "meet_link" field.
func MeetLinkIn(vs ...string) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldIn(FieldMeetLink, vs...))
}

// MeetLinkNotIn applies the NotIn predicate on the "meet_link" field.
func MeetLinkNotIn(vs ...string) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldNotIn(FieldMeetLink, vs...))
}

// MeetLinkGT applies the GT predicate on the "meet_link" field.
func MeetLinkGT(v string) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldGT(FieldMeetLink, v))
}

// MeetLinkGTE applies the GTE predicate on the "meet_link" field.
func MeetLinkGTE(v string) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldGTE(FieldMeetLink, v))
}

// MeetLinkLT applies the LT predicate on the "meet_link" field.
func MeetLinkLT(v string) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldLT(FieldMeetLink, v))
}

// MeetLinkLTE applies the LTE predicate on the "meet_link" field.
func MeetLinkLTE(v string) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldLTE(FieldMeetLink, v))
}

// MeetLinkContains applies the Contains predicate on the "meet_link" field.
func MeetLinkContains(v string) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldContains(FieldMeetLink, v))
}

// MeetLinkHasPrefix applies the HasPrefix predicate on the "meet_link" field.
func MeetLinkHasPrefix(v string) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldHasPrefix(FieldMeetLink, v))
}

// MeetLinkHasSuffix applies the HasSuffix predicate on the "meet_link" field.
func MeetLinkHasSuffix(v string) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldHasSuffix(FieldMeetLink, v))
}

// MeetLinkEqualFold applies the EqualFold predicate on the "meet_link" field.
func MeetLinkEqualFold(v string) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldEqualFold(FieldMeetLink, v))
}

// MeetLinkContainsFold applies the ContainsFold predicate on the "meet_link" field.
func MeetLinkContainsFold(v string) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldContainsFold(FieldMeetLink, v))
}

// CalendarEventIDEQ applies the EQ predicate on the "calendar_event_id" field.
func CalendarEventIDEQ(v string) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldEQ(FieldCalendarEventID, v))
}

// CalendarEventIDNEQ applies the NEQ predicate on the "calendar_event_id" field.
func CalendarEventIDNEQ(v string) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldNEQ(FieldCalendarEventID, v))
}

// CalendarEventIDIn applies the In predicate on the "calendar_event_id" field.
func CalendarEventIDIn(vs ...string) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldIn(FieldCalendarEventID, vs...))
}

// CalendarEventIDNotIn applies the NotIn predicate on the "calendar_event_id" field.
func CalendarEventIDNotIn(vs ...string) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldNotIn(FieldCalendarEventID, vs...))
}

// CalendarEventIDGT applies the GT predicate on the "calendar_event_id" field.
func CalendarEventIDGT(v string) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldGT(FieldCalendarEventID, v))
}

// CalendarEventIDGTE applies the GTE predicate on the "calendar_event_id" field.
func CalendarEventIDGTE(v string) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldGTE(FieldCalendarEventID, v))
}

// CalendarEventIDLT applies the LT predicate on the "calendar_event_id" field.
func CalendarEventIDLT(v string) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldLT(FieldCalendarEventID, v))
}

// CalendarEventIDLTE applies the LTE predicate on the "calendar_event_id" field.
func CalendarEventIDLTE(v string) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldLTE(FieldCalendarEventID, v))
}

// CalendarEventIDContains applies the Contains predicate on the "calendar_event_id" field.
func CalendarEventIDContains(v string) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldContains(FieldCalendarEventID, v))
}

// CalendarEventIDHasPrefix applies the HasPrefix predicate on the "calendar_event_id" field.
func CalendarEventIDHasPrefix(v string) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldHasPrefix(FieldCalendarEventID, v))
}

// CalendarEventIDHasSuffix applies the HasSuffix predicate on the "calendar_event_id" field.
func CalendarEventIDHasSuffix(v string) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldHasSuffix(FieldCalendarEventID, v))
}

// CalendarEventIDIsNil applies the IsNil predicate on the "calendar_event_id" field.
func CalendarEventIDIsNil() predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldIsNull(FieldCalendarEventID))
}

// CalendarEventIDNotNil applies the NotNil predicate on the "calendar_event_id" field.
func CalendarEventIDNotNil() predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldNotNull(FieldCalendarEventID))
}

// CalendarEventIDEqualFold applies the EqualFold predicate on the "calendar_event_id" field.
func CalendarEventIDEqualFold(v string) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldEqualFold(FieldCalendarEventID, v))
}

// CalendarEventIDContainsFold applies the ContainsFold predicate on the "calendar_event_id" field.
func CalendarEventIDContainsFold(v string) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.FieldContainsFold(FieldCalendarEventID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AppointmentMeeting) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AppointmentMeeting) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AppointmentMeeting) predicate.AppointmentMeeting {
	return predicate.AppointmentMeeting(sql.NotPredicates(p))
}
