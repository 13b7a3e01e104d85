// Code generated by ent, DO NOT EDIT.

package appointmentevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/curaline/curaline_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// AppointmentID applies equality check predicate on the "appointment_id" field. It's identical to AppointmentIDEQ.
func AppointmentID(v uuid.UUID) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldEQ(FieldAppointmentID, v))
}

// ChangedBy applies equality check predicate on the "changed_by" field. It's identical to ChangedByEQ.
func ChangedBy(v uuid.UUID) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldEQ(FieldChangedBy, v))
}

// ActorRole applies equality check predicate on the "actor_role" field. It's identical to ActorRoleEQ.
func ActorRole(v string) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldEQ(FieldActorRole, v))
}

// Note applies equality check predicate on the "note" field. It's identical to NoteEQ.
func Note(v string) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldEQ(FieldNote, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// AppointmentIDEQ applies the EQ predicate on the "appointment_id" field.
func AppointmentIDEQ(v uuid.UUID) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldEQ(FieldAppointmentID, v))
}

// AppointmentIDNEQ applies the NEQ predicate on the "appointment_id" field.
func AppointmentIDNEQ(v uuid.UUID) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldNEQ(FieldAppointmentID, v))
}

// AppointmentIDIn applies the In predicate on the "appointment_id" field.
func AppointmentIDIn(vs ...uuid.UUID) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldIn(FieldAppointmentID, vs...))
}

// AppointmentIDNotIn applies the NotIn predicate on the "appointment_id" field.
func AppointmentIDNotIn(vs ...uuid.UUID) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldNotIn(FieldAppointmentID, vs...))
}

// AppointmentIDGT applies the GT predicate on the "appointment_id" field.
func AppointmentIDGT(v uuid.UUID) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldGT(FieldAppointmentID, v))
}

// AppointmentIDGTE applies the GTE predicate on the "appointment_id" field.
func AppointmentIDGTE(v uuid.UUID) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldGTE(FieldAppointmentID, v))
}

// AppointmentIDLT applies the LT predicate on the "appointment_id" field.
func AppointmentIDLT(v uuid.UUID) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldLT(FieldAppointmentID, v))
}

// AppointmentIDLTE applies the LTE predicate on the "appointment_id" field.
func AppointmentIDLTE(v uuid.UUID) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldLTE(FieldAppointmentID, v))
}

// OldStatusEQ applies the EQ predicate on the "old_status" field.
func OldStatusEQ(v OldStatus) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldEQ(FieldOldStatus, v))
}

// OldStatusNEQ applies the NEQ predicate on the "old_status" field.
func OldStatusNEQ(v OldStatus) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldNEQ(FieldOldStatus, v))
}

// OldStatusIn applies the In predicate on the "old_status" field.
func OldStatusIn(vs ...OldStatus) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldIn(FieldOldStatus, vs...))
}

// OldStatusNotIn applies the NotIn predicate on the "old_status" field.
func OldStatusNotIn(vs ...OldStatus) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldNotIn(FieldOldStatus, vs...))
}

// OldStatusIsNil applies the IsNil predicate on the "old_status" field.
func OldStatusIsNil() predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldIsNull(FieldOldStatus))
}

// OldStatusNotNil applies the NotNil predicate on the "old_status" field.
func OldStatusNotNil() predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldNotNull(FieldOldStatus))
}

// NewStatusEQ applies the EQ predicate on the "new_status" field.
func NewStatusEQ(v NewStatus) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldEQ(FieldNewStatus, v))
}

// NewStatusNEQ applies the NEQ predicate on the "new_status" field.
func NewStatusNEQ(v NewStatus) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldNEQ(FieldNewStatus, v))
}

// NewStatusIn applies the In predicate on the "new_status" field.
func NewStatusIn(vs ...NewStatus) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldIn(FieldNewStatus, vs...))
}

// NewStatusNotIn applies the NotIn predicate on the "new_status" field.
func NewStatusNotIn(vs ...NewStatus) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldNotIn(FieldNewStatus, vs...))
}

// ChangedByEQ applies the EQ predicate on the "changed_by" field.
func ChangedByEQ(v uuid.UUID) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldEQ(FieldChangedBy, v))
}

// ChangedByNEQ applies the NEQ predicate on the "changed_by" field.
func ChangedByNEQ(v uuid.UUID) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldNEQ(FieldChangedBy, v))
}

// ChangedByIn applies the In predicate on the "changed_by" field.
func ChangedByIn(vs ...uuid.UUID) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldIn(FieldChangedBy, vs...))
}

// ChangedByNotIn applies the NotIn predicate on the "changed_by" field.
func ChangedByNotIn(vs ...uuid.UUID) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldNotIn(FieldChangedBy, vs...))
}

// ChangedByGT applies the GT predicate on the "changed_by" field.
func ChangedByGT(v uuid.UUID) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldGT(FieldChangedBy, v))
}

// ChangedByGTE applies the GTE predicate on the "changed_by" field.
func ChangedByGTE(v uuid.UUID) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldGTE(FieldChangedBy, v))
}

// ChangedByLT applies the LT predicate on the "changed_by" field.
func ChangedByLT(v uuid.UUID) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldLT(FieldChangedBy, v))
}

// ChangedByLTE applies the LTE predicate on the "changed_by" field.
func ChangedByLTE(v uuid.UUID) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldLTE(FieldChangedBy, v))
}

// ActorRoleEQ applies the EQ predicate on the "actor_role" field.
func ActorRoleEQ(v string) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldEQ(FieldActorRole, v))
}

// ActorRoleNEQ applies the NEQ predicate on the "actor_role" field.
func ActorRoleNEQ(v string) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldNEQ(FieldActorRole, v))
}

// ActorRoleIn applies the In predicate on the "actor_role" field.
func ActorRoleIn(vs ...string) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldIn(FieldActorRole, vs...))
}

// ActorRoleNotIn applies the NotIn predicate on the "actor_role" field.
func ActorRoleNotIn(vs ...string) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldNotIn(FieldActorRole, vs...))
}

// ActorRoleGT applies the GT predicate on the "actor_role" field.
func ActorRoleGT(v string) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldGT(FieldActorRole, v))
}

// ActorRoleGTE applies the GTE predicate on the "actor_role" field.
func ActorRoleGTE(v string) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldGTE(FieldActorRole, v))
}

// ActorRoleLT applies the LT predicate on the "actor_role" field.
func ActorRoleLT(v string) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldLT(FieldActorRole, v))
}

// ActorRoleLTE applies the LTE predicate on the "actor_role" field.
func ActorRoleLTE(v string) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldLTE(FieldActorRole, v))
}

// ActorRoleContains applies the Contains predicate on the "actor_role" field.
func ActorRoleContains(v string) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldContains(FieldActorRole, v))
}

// ActorRoleHasPrefix applies the HasPrefix predicate on the "actor_role" field.
func ActorRoleHasPrefix(v string) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldHasPrefix(FieldActorRole, v))
}

// ActorRoleHasSuffix applies the HasSuffix predicate on the "actor_role" field.
func ActorRoleHasSuffix(v string) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldHasSuffix(FieldActorRole, v))
}

// ActorRoleEqualFold applies the EqualFold predicate on the "actor_role" field.
func ActorRoleEqualFold(v string) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldEqualFold(FieldActorRole, v))
}

// ActorRoleContainsFold applies the ContainsFold predicate on the "actor_role" field.
func ActorRoleContainsFold(v string) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldContainsFold(FieldActorRole, v))
}

// NoteEQ applies the EQ predicate on the "note" field.
func NoteEQ(v string) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldEQ(FieldNote, v))
}

// NoteNEQ applies the NEQ predicate on the "note" field.
func NoteNEQ(v string) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldNEQ(FieldNote, v))
}

// NoteIn applies the In predicate on the "note" field.
func NoteIn(vs ...string) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldIn(FieldNote, vs...))
}

// NoteNotIn applies the NotIn predicate on the "note" field.
func NoteNotIn(vs ...string) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldNotIn(FieldNote, vs...))
}

// NoteGT applies the GT predicate on the "note" field.
func NoteGT(v string) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldGT(FieldNote, v))
}

// NoteGTE applies the GTE predicate on the "note" field.
func NoteGTE(v string) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldGTE(FieldNote, v))
}

// NoteLT applies the LT predicate on the "note" field.
func NoteLT(v string) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldLT(FieldNote, v))
}

// NoteLTE applies the LTE predicate on the "note" field.
func NoteLTE(v string) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldLTE(FieldNote, v))
}

// NoteContains applies the Contains predicate on the "note" field.
func NoteContains(v string) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldContains(FieldNote, v))
}

// NoteHasPrefix applies the HasPrefix predicate on the "note" field.
func NoteHasPrefix(v string) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldHasPrefix(FieldNote, v))
}

// NoteHasSuffix applies the HasSuffix predicate on the "note" field.
func NoteHasSuffix(v string) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldHasSuffix(FieldNote, v))
}

// NoteIsNil applies the IsNil predicate on the "note" field.
func NoteIsNil() predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldIsNull(FieldNote))
}

// NoteNotNil applies the NotNil predicate on the "note" field.
func NoteNotNil() predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldNotNull(FieldNote))
}

// NoteEqualFold applies the EqualFold predicate on the "note" field.
func NoteEqualFold(v string) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldEqualFold(FieldNote, v))
}

// NoteContainsFold applies the ContainsFold predicate on the "note" field.
func NoteContainsFold(v string) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.FieldContainsFold(FieldNote, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AppointmentEvent) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AppointmentEvent) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AppointmentEvent) predicate.AppointmentEvent {
	return predicate.AppointmentEvent(sql.NotPredicates(p))
}
