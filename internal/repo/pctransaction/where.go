// Code generated by ent, DO NOT EDIT.

package pctransaction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/niramoy/niramoy_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldEQ(FieldCreatedAt, v))
}

// ReferrerID applies equality check predicate on the "referrer_id" field. It's identical to ReferrerIDEQ.
func ReferrerID(v uuid.UUID) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldEQ(FieldReferrerID, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldEQ(FieldPatientID, v))
}

// TotalAmount applies equality check predicate on the "total_amount" field. It's identical to TotalAmountEQ.
func TotalAmount(v int64) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldEQ(FieldTotalAmount, v))
}

// CommissionAmount applies equality check predicate on the "commission_amount" field. It's identical to CommissionAmountEQ.
func CommissionAmount(v int64) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldEQ(FieldCommissionAmount, v))
}

// AdminShare applies equality check predicate on the "admin_share" field. It's identical to AdminShareEQ.
func AdminShare(v int64) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldEQ(FieldAdminShare, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldEQ(FieldDescription, v))
}

// OccurredAt applies equality check predicate on the "occurred_at" field. It's identical to OccurredAtEQ.
func OccurredAt(v time.Time) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldEQ(FieldOccurredAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldLTE(FieldCreatedAt, v))
}

// ReferrerIDEQ applies the EQ predicate on the "referrer_id" field.
func ReferrerIDEQ(v uuid.UUID) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldEQ(FieldReferrerID, v))
}

// ReferrerIDNEQ applies the NEQ predicate on the "referrer_id" field.
func ReferrerIDNEQ(v uuid.UUID) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldNEQ(FieldReferrerID, v))
}

// ReferrerIDIn applies the In predicate on the "referrer_id" field.
func ReferrerIDIn(vs ...uuid.UUID) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldIn(FieldReferrerID, vs...))
}

// ReferrerIDNotIn applies the NotIn predicate on the "referrer_id" field.
func ReferrerIDNotIn(vs ...uuid.UUID) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldNotIn(FieldReferrerID, vs...))
}

// ReferrerIDGT applies the GT predicate on the "referrer_id" field.
func ReferrerIDGT(v uuid.UUID) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldGT(FieldReferrerID, v))
}

// ReferrerIDGTE applies the GTE predicate on the "referrer_id" field.
func ReferrerIDGTE(v uuid.UUID) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldGTE(FieldReferrerID, v))
}

// ReferrerIDLT applies the LT predicate on the "referrer_id" field.
func ReferrerIDLT(v uuid.UUID) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldLT(FieldReferrerID, v))
}

// ReferrerIDLTE applies the LTE predicate on the "referrer_id" field.
func ReferrerIDLTE(v uuid.UUID) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldLTE(FieldReferrerID, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v uuid.UUID) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v uuid.UUID) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v uuid.UUID) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v uuid.UUID) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldLTE(FieldPatientID, v))
}

// PatientIDIsNil applies the IsNil predicate on the "patient_id" field.
func PatientIDIsNil() predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldIsNull(FieldPatientID))
}

// PatientIDNotNil applies the NotNil predicate on the "patient_id" field.
func PatientIDNotNil() predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldNotNull(FieldPatientID))
}

// TotalAmountEQ applies the EQ predicate on the "total_amount" field.
func TotalAmountEQ(v int64) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldEQ(FieldTotalAmount, v))
}

// TotalAmountNEQ applies the NEQ predicate on the "total_amount" field.
func TotalAmountNEQ(v int64) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldNEQ(FieldTotalAmount, v))
}

// TotalAmountIn applies the In predicate on the "total_amount" field.
func TotalAmountIn(vs ...int64) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldIn(FieldTotalAmount, vs...))
}

// TotalAmountNotIn applies the NotIn predicate on the "total_amount" field.
func TotalAmountNotIn(vs ...int64) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldNotIn(FieldTotalAmount, vs...))
}

// TotalAmountGT applies the GT predicate on the "total_amount" field.
func TotalAmountGT(v int64) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldGT(FieldTotalAmount, v))
}

// TotalAmountGTE applies the GTE predicate on the "total_amount" field.
func TotalAmountGTE(v int64) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldGTE(FieldTotalAmount, v))
}

// TotalAmountLT applies the LT predicate on the "total_amount" field.
func TotalAmountLT(v int64) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldLT(FieldTotalAmount, v))
}

// TotalAmountLTE applies the LTE predicate on the "total_amount" field.
func TotalAmountLTE(v int64) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldLTE(FieldTotalAmount, v))
}

// CommissionAmountEQ applies the EQ predicate on the "commission_amount" field.
func CommissionAmountEQ(v int64) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldEQ(FieldCommissionAmount, v))
}

// CommissionAmountNEQ applies the NEQ predicate on the "commission_amount" field.
func CommissionAmountNEQ(v int64) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldNEQ(FieldCommissionAmount, v))
}

// CommissionAmountIn applies the In predicate on the "commission_amount" field.
func CommissionAmountIn(vs ...int64) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldIn(FieldCommissionAmount, vs...))
}

// CommissionAmountNotIn applies the NotIn predicate on the "commission_amount" field.
func CommissionAmountNotIn(vs ...int64) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldNotIn(FieldCommissionAmount, vs...))
}

// CommissionAmountGT applies the GT predicate on the "commission_amount" field.
func CommissionAmountGT(v int64) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldGT(FieldCommissionAmount, v))
}

// CommissionAmountGTE applies the GTE predicate on the "commission_amount" field.
func CommissionAmountGTE(v int64) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldGTE(FieldCommissionAmount, v))
}

// CommissionAmountLT applies the LT predicate on the "commission_amount" field.
func CommissionAmountLT(v int64) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldLT(FieldCommissionAmount, v))
}

// CommissionAmountLTE applies the LTE predicate on the "commission_amount" field.
func CommissionAmountLTE(v int64) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldLTE(FieldCommissionAmount, v))
}

// AdminShareEQ applies the EQ predicate on the "admin_share" field.
func AdminShareEQ(v int64) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldEQ(FieldAdminShare, v))
}

// AdminShareNEQ applies the NEQ predicate on the "admin_share" field.
func AdminShareNEQ(v int64) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldNEQ(FieldAdminShare, v))
}

// AdminShareIn applies the In predicate on the "admin_share" field.
func AdminShareIn(vs ...int64) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldIn(FieldAdminShare, vs...))
}

// AdminShareNotIn applies the NotIn predicate on the "admin_share" field.
func AdminShareNotIn(vs ...int64) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldNotIn(FieldAdminShare, vs...))
}

// AdminShareGT applies the GT predicate on the "admin_share" field.
func AdminShareGT(v int64) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldGT(FieldAdminShare, v))
}

// AdminShareGTE applies the GTE predicate on the "admin_share" field.
func AdminShareGTE(v int64) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldGTE(FieldAdminShare, v))
}

// AdminShareLT applies the LT predicate on the "admin_share" field.
func AdminShareLT(v int64) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldLT(FieldAdminShare, v))
}

// AdminShareLTE applies the LTE predicate on the "admin_share" field.
func AdminShareLTE(v int64) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldLTE(FieldAdminShare, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldContainsFold(FieldDescription, v))
}

// OccurredAtEQ applies the EQ predicate on the "occurred_at" field.
func OccurredAtEQ(v time.Time) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldEQ(FieldOccurredAt, v))
}

// OccurredAtNEQ applies the NEQ predicate on the "occurred_at" field.
func OccurredAtNEQ(v time.Time) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldNEQ(FieldOccurredAt, v))
}

// OccurredAtIn applies the In predicate on the "occurred_at" field.
func OccurredAtIn(vs ...time.Time) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldIn(FieldOccurredAt, vs...))
}

// OccurredAtNotIn applies the NotIn predicate on the "occurred_at" field.
func OccurredAtNotIn(vs ...time.Time) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldNotIn(FieldOccurredAt, vs...))
}

// OccurredAtGT applies the GT predicate on the "occurred_at" field.
func OccurredAtGT(v time.Time) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldGT(FieldOccurredAt, v))
}

// OccurredAtGTE applies the GTE predicate on the "occurred_at" field.
func OccurredAtGTE(v time.Time) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldGTE(FieldOccurredAt, v))
}

// OccurredAtLT applies the LT predicate on the "occurred_at" field.
func OccurredAtLT(v time.Time) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldLT(FieldOccurredAt, v))
}

// OccurredAtLTE applies the LTE predicate on the "occurred_at" field.
func OccurredAtLTE(v time.Time) predicate.PCTransaction {
	return predicate.PCTransaction(sql.FieldLTE(FieldOccurredAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PCTransaction) predicate.PCTransaction {
	return predicate.PCTransaction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PCTransaction) predicate.PCTransaction {
	return predicate.PCTransaction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PCTransaction) predicate.PCTransaction {
	return predicate.PCTransaction(sql.NotPredicates(p))
}
