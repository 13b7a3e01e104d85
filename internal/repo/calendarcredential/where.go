// Code generated by ent, DO NOT EDIT.

package calendarcredential

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/curaline/curaline_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldEQ(FieldUpdatedAt, v))
}

// DoctorID applies equality check predicate on the "doctor_id" field. It's identical to DoctorIDEQ.
func DoctorID(v uuid.UUID) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldEQ(FieldDoctorID, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldEQ(FieldProvider, v))
}

// RefreshToken applies equality check predicate on the "refresh_token" field. It's identical to RefreshTokenEQ.
func RefreshToken(v string) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldEQ(FieldRefreshToken, v))
}

// ProviderEmail applies equality check predicate on the "provider_email" field. It's identical to ProviderEmailEQ.
func ProviderEmail(v string) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldEQ(FieldProviderEmail, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldLTE(FieldUpdatedAt, v))
}

// DoctorIDEQ applies the EQ predicate on the "doctor_id" field.
func DoctorIDEQ(v uuid.UUID) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldEQ(FieldDoctorID, v))
}

// DoctorIDNEQ applies the NEQ predicate on the "doctor_id" field.
func DoctorIDNEQ(v uuid.UUID) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldNEQ(FieldDoctorID, v))
}

// DoctorIDIn applies the In predicate on the "doctor_id" field.
func DoctorIDIn(vs ...uuid.UUID) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldIn(FieldDoctorID, vs...))
}

// DoctorIDNotIn applies the NotIn predicate on the "doctor_id" field.
func DoctorIDNotIn(vs ...uuid.UUID) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldNotIn(FieldDoctorID, vs...))
}

// DoctorIDGT applies the GT predicate on the "doctor_id" field.
func DoctorIDGT(v uuid.UUID) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldGT(FieldDoctorID, v))
}

// DoctorIDGTE applies the GTE predicate on the "doctor_id" field.
func DoctorIDGTE(v uuid.UUID) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldGTE(FieldDoctorID, v))
}

// DoctorIDLT applies the LT predicate on the "doctor_id" field.
func DoctorIDLT(v uuid.UUID) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldLT(FieldDoctorID, v))
}

// DoctorIDLTE applies the LTE predicate on the "doctor_id" field.
func DoctorIDLTE(v uuid.UUID) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldLTE(FieldDoctorID, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldContainsFold(FieldProvider, v))
}

// RefreshTokenEQ applies the EQ predicate on the "refresh_token" field.
func RefreshTokenEQ(v string) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldEQ(FieldRefreshToken, v))
}

// RefreshTokenNEQ applies the NEQ predicate on the "refresh_token" field.
func RefreshTokenNEQ(v string) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldNEQ(FieldRefreshToken, v))
}

// RefreshTokenIn applies the In predicate on the "refresh_token" field.
func RefreshTokenIn(vs ...string) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldIn(FieldRefreshToken, vs...))
}

// RefreshTokenNotIn applies the NotIn predicate on the "refresh_token" field.
func RefreshTokenNotIn(vs ...string) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldNotIn(FieldRefreshToken, vs...))
}

// RefreshTokenGT applies the GT predicate on the "refresh_token" field.
func RefreshTokenGT(v string) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldGT(FieldRefreshToken, v))
}

// RefreshTokenGTE applies the GTE predicate on the "refresh_token" field.
func RefreshTokenGTE(v string) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldGTE(FieldRefreshToken, v))
}

// RefreshTokenLT applies the LT predicate on the "refresh_token" field.
func RefreshTokenLT(v string) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldLT(FieldRefreshToken, v))
}

// RefreshTokenLTE applies the LTE predicate on the "refresh_token" field.
func RefreshTokenLTE(v string) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldLTE(FieldRefreshToken, v))
}

// RefreshTokenContains applies the Contains predicate on the "refresh_token" field.
func RefreshTokenContains(v string) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldContains(FieldRefreshToken, v))
}

// RefreshTokenHasPrefix applies the HasPrefix predicate on the "refresh_token" field.
func RefreshTokenHasPrefix(v string) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldHasPrefix(FieldRefreshToken, v))
}

// RefreshTokenHasSuffix applies the HasSuffix predicate on the "refresh_token" field.
func RefreshTokenHasSuffix(v string) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldHasSuffix(FieldRefreshToken, v))
}

// RefreshTokenEqualFold applies the EqualFold predicate on the "refresh_token" field.
func RefreshTokenEqualFold(v string) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldEqualFold(FieldRefreshToken, v))
}

// RefreshTokenContainsFold applies the ContainsFold predicate on the "refresh_token" field.
func RefreshTokenContainsFold(v string) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldContainsFold(FieldRefreshToken, v))
}

// ProviderEmailEQ applies the EQ predicate on the "provider_email" field.
func ProviderEmailEQ(v string) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldEQ(FieldProviderEmail, v))
}

// ProviderEmailNEQ applies the NEQ predicate on the "provider_email" field.
func ProviderEmailNEQ(v string) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldNEQ(FieldProviderEmail, v))
}

// ProviderEmailIn applies the In predicate on the "provider_email" field.
func ProviderEmailIn(vs ...string) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldIn(FieldProviderEmail, vs...))
}

// ProviderEmailNotIn applies the NotIn predicate on the "provider_email" field.
func ProviderEmailNotIn(vs ...string) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldNotIn(FieldProviderEmail, vs...))
}

// ProviderEmailGT applies the GT predicate on the "provider_email" field.
func ProviderEmailGT(v string) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldGT(FieldProviderEmail, v))
}

// ProviderEmailGTE applies the GTE predicate on the "provider_email" field.
func ProviderEmailGTE(v string) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldGTE(FieldProviderEmail, v))
}

// ProviderEmailLT applies the LT predicate on the "provider_email" field.
func ProviderEmailLT(v string) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldLT(FieldProviderEmail, v))
}

// ProviderEmailLTE applies the LTE predicate on the "provider_email" field.
func ProviderEmailLTE(v string) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldLTE(FieldProviderEmail, v))
}

// ProviderEmailContains applies the Contains predicate on the "provider_email" field.
func ProviderEmailContains(v string) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldContains(FieldProviderEmail, v))
}

// ProviderEmailHasPrefix applies the HasPrefix predicate on the "provider_email" field.
func ProviderEmailHasPrefix(v string) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldHasPrefix(FieldProviderEmail, v))
}

// ProviderEmailHasSuffix applies the HasSuffix predicate on the "provider_email" field.
func ProviderEmailHasSuffix(v string) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldHasSuffix(FieldProviderEmail, v))
}

// ProviderEmailIsNil applies the IsNil predicate on the "provider_email" field.
func ProviderEmailIsNil() predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldIsNull(FieldProviderEmail))
}

// ProviderEmailNotNil applies the NotNil predicate on the "provider_email" field.
func ProviderEmailNotNil() predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldNotNull(FieldProviderEmail))
}

// ProviderEmailEqualFold applies the EqualFold predicate on the "provider_email" field.
func ProviderEmailEqualFold(v string) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldEqualFold(FieldProviderEmail, v))
}

// ProviderEmailContainsFold applies the ContainsFold predicate on the "provider_email" field.
func ProviderEmailContainsFold(v string) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.FieldContainsFold(FieldProviderEmail, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CalendarCredential) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CalendarCredential) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CalendarCredential) predicate.CalendarCredential {
	return predicate.CalendarCredential(sql.NotPredicates(p))
}
