// Code generated by ent, DO NOT EDIT.

package appointmentreschedule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/curaline/curaline_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldEQ(FieldUpdatedAt, v))
}

// AppointmentID applies equality check predicate on the "appointment_id" field. It's identical to AppointmentIDEQ.
func AppointmentID(v uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldEQ(FieldAppointmentID, v))
}

// OldAvailabilityID applies equality check predicate on the "old_availability_id" field. It's identical to OldAvailabilityIDEQ.
func OldAvailabilityID(v uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldEQ(FieldOldAvailabilityID, v))
}

// NewAvailabilityID applies equality check predicate on the "new_availability_id" field. It's identical to NewAvailabilityIDEQ.
func NewAvailabilityID(v uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldEQ(FieldNewAvailabilityID, v))
}

// RequestedBy applies equality check predicate on the "requested_by" field. It's identical to RequestedByEQ.
func RequestedBy(v uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldEQ(FieldRequestedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldLTE(FieldUpdatedAt, v))
}

// AppointmentIDEQ applies the EQ predicate on the "appointment_id" field.
func AppointmentIDEQ(v uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldEQ(FieldAppointmentID, v))
}

// AppointmentIDNEQ applies the NEQ predicate on the "appointment_id" field.
func AppointmentIDNEQ(v uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldNEQ(FieldAppointmentID, v))
}

// AppointmentIDIn applies the In predicate on the "appointment_id" field.
func AppointmentIDIn(vs ...uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldIn(FieldAppointmentID, vs...))
}

// AppointmentIDNotIn applies the NotIn predicate on the "appointment_id" field.
func AppointmentIDNotIn(vs ...uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldNotIn(FieldAppointmentID, vs...))
}

// AppointmentIDGT applies the GT predicate on the "appointment_id" field.
func AppointmentIDGT(v uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldGT(FieldAppointmentID, v))
}

// AppointmentIDGTE applies the GTE predicate on the "appointment_id" field.
func AppointmentIDGTE(v uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldGTE(FieldAppointmentID, v))
}

// AppointmentIDLT applies the LT predicate on the "appointment_id" field.
func AppointmentIDLT(v uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldLT(FieldAppointmentID, v))
}

// AppointmentIDLTE applies the LTE predicate on the "appointment_id" field.
func AppointmentIDLTE(v uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldLTE(FieldAppointmentID, v))
}

// OldAvailabilityIDEQ applies the EQ predicate on the "old_availability_id" field.
func OldAvailabilityIDEQ(v uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldEQ(FieldOldAvailabilityID, v))
}

// OldAvailabilityIDNEQ applies the NEQ predicate on the "old_availability_id" field.
func OldAvailabilityIDNEQ(v uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldNEQ(FieldOldAvailabilityID, v))
}

// OldAvailabilityIDIn applies the In predicate on the "old_availability_id" field.
func OldAvailabilityIDIn(vs ...uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldIn(FieldOldAvailabilityID, vs...))
}

// OldAvailabilityIDNotIn applies the NotIn predicate on the "old_availability_id" field.
func OldAvailabilityIDNotIn(vs ...uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldNotIn(FieldOldAvailabilityID, vs...))
}

// OldAvailabilityIDGT applies the GT predicate on the "old_availability_id" field.
func OldAvailabilityIDGT(v uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldGT(FieldOldAvailabilityID, v))
}

// OldAvailabilityIDGTE applies the GTE predicate on the "old_availability_id" field.
func OldAvailabilityIDGTE(v uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldGTE(FieldOldAvailabilityID, v))
}

// OldAvailabilityIDLT applies the LT predicate on the "old_availability_id" field.
func OldAvailabilityIDLT(v uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldLT(FieldOldAvailabilityID, v))
}

// OldAvailabilityIDLTE applies the LTE predicate on the "old_availability_id" field.
func OldAvailabilityIDLTE(v uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldLTE(FieldOldAvailabilityID, v))
}

// NewAvailabilityIDEQ applies the EQ predicate on the "new_availability_id" field.
func NewAvailabilityIDEQ(v uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldEQ(FieldNewAvailabilityID, v))
}

// NewAvailabilityIDNEQ applies the NEQ predicate on the "new_availability_id" field.
func NewAvailabilityIDNEQ(v uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldNEQ(FieldNewAvailabilityID, v))
}

// NewAvailabilityIDIn applies the In predicate on the "new_availability_id" field.
func NewAvailabilityIDIn(vs ...uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldIn(FieldNewAvailabilityID, vs...))
}

// NewAvailabilityIDNotIn applies the NotIn predicate on the "new_availability_id" field.
func NewAvailabilityIDNotIn(vs ...uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldNotIn(FieldNewAvailabilityID, vs...))
}

// NewAvailabilityIDGT applies the GT predicate on the "new_availability_id" field.
func NewAvailabilityIDGT(v uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldGT(FieldNewAvailabilityID, v))
}

// NewAvailabilityIDGTE applies the GTE predicate on the "new_availability_id" field.
func NewAvailabilityIDGTE(v uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldGTE(FieldNewAvailabilityID, v))
}

// NewAvailabilityIDLT applies the LT predicate on the "new_availability_id" field.
func NewAvailabilityIDLT(v uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldLT(FieldNewAvailabilityID, v))
}

// NewAvailabilityIDLTE applies the LTE predicate on the "new_availability_id" field.
func NewAvailabilityIDLTE(v uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldLTE(FieldNewAvailabilityID, v))
}

// RequestedByEQ applies the EQ predicate on the "requested_by" field.
func RequestedByEQ(v uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldEQ(FieldRequestedBy, v))
}

// RequestedByNEQ applies the NEQ predicate on the "requested_by" field.
func RequestedByNEQ(v uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldNEQ(FieldRequestedBy, v))
}

// RequestedByIn applies the In predicate on the "requested_by" field.
func RequestedByIn(vs ...uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldIn(FieldRequestedBy, vs...))
}

// RequestedByNotIn applies the NotIn predicate on the "requested_by" field.
func RequestedByNotIn(vs ...uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldNotIn(FieldRequestedBy, vs...))
}

// RequestedByGT applies the GT predicate on the "requested_by" field.
func RequestedByGT(v uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldGT(FieldRequestedBy, v))
}

// RequestedByGTE applies the GTE predicate on the "requested_by" field.
func RequestedByGTE(v uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldGTE(FieldRequestedBy, v))
}

// RequestedByLT applies the LT predicate on the "requested_by" field.
func RequestedByLT(v uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldLT(FieldRequestedBy, v))
}

// RequestedByLTE applies the LTE predicate on the "requested_by" field.
func RequestedByLTE(v uuid.UUID) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldLTE(FieldRequestedBy, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.FieldNotIn(FieldStatus, vs...))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AppointmentReschedule) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AppointmentReschedule) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AppointmentReschedule) predicate.AppointmentReschedule {
	return predicate.AppointmentReschedule(sql.NotPredicates(p))
}
