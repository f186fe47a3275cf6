// Code generated by ent, DO NOT EDIT.

package pharmacysale

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/niramoy/niramoy_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldEQ(FieldUpdatedAt, v))
}

// SaleNumber applies equality check predicate on the "sale_number" field. It's identical to SaleNumberEQ.
func SaleNumber(v string) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldEQ(FieldSaleNumber, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldEQ(FieldPatientID, v))
}

// PrescriptionID applies equality check predicate on the "prescription_id" field. It's identical to PrescriptionIDEQ.
func PrescriptionID(v uuid.UUID) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldEQ(FieldPrescriptionID, v))
}

// TotalAmount applies equality check predicate on the "total_amount" field. It's identical to TotalAmountEQ.
func TotalAmount(v int64) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldEQ(FieldTotalAmount, v))
}

// AmountPaid applies equality check predicate on the "amount_paid" field. It's identical to AmountPaidEQ.
func AmountPaid(v int64) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldEQ(FieldAmountPaid, v))
}

// SoldBy applies equality check predicate on the "sold_by" field. It's identical to SoldByEQ.
func SoldBy(v uuid.UUID) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldEQ(FieldSoldBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldLTE(FieldUpdatedAt, v))
}

// SaleNumberEQ applies the EQ predicate on the "sale_number" field.
func SaleNumberEQ(v string) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldEQ(FieldSaleNumber, v))
}

// SaleNumberNEQ applies the NEQ predicate on the "sale_number" field.
func SaleNumberNEQ(v string) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldNEQ(FieldSaleNumber, v))
}

// SaleNumberIn applies the In predicate on the "sale_number" field.
func SaleNumberIn(vs ...string) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldIn(FieldSaleNumber, vs...))
}

// SaleNumberNotIn applies the NotIn predicate on the "sale_number" field.
func SaleNumberNotIn(vs ...string) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldNotIn(FieldSaleNumber, vs...))
}

// SaleNumberGT applies the GT predicate on the "sale_number" field.
func SaleNumberGT(v string) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldGT(FieldSaleNumber, v))
}

// SaleNumberGTE applies the GTE predicate on the "sale_number" field.
func SaleNumberGTE(v string) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldGTE(FieldSaleNumber, v))
}

// SaleNumberLT applies the LT predicate on the "sale_number" field.
func SaleNumberLT(v string) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldLT(FieldSaleNumber, v))
}

// SaleNumberLTE applies the LTE predicate on the "sale_number" field.
func SaleNumberLTE(v string) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldLTE(FieldSaleNumber, v))
}

// SaleNumberContains applies the Contains predicate on the "sale_number" field.
func SaleNumberContains(v string) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldContains(FieldSaleNumber, v))
}

// SaleNumberHasPrefix applies the HasPrefix predicate on the "sale_number" field.
func SaleNumberHasPrefix(v string) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldHasPrefix(FieldSaleNumber, v))
}

// SaleNumberHasSuffix applies the HasSuffix predicate on the "sale_number" field.
func SaleNumberHasSuffix(v string) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldHasSuffix(FieldSaleNumber, v))
}

// SaleNumberEqualFold applies the EqualFold predicate on the "sale_number" field.
func SaleNumberEqualFold(v string) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldEqualFold(FieldSaleNumber, v))
}

// SaleNumberContainsFold applies the ContainsFold predicate on the "sale_number" field.
func SaleNumberContainsFold(v string) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldContainsFold(FieldSaleNumber, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v uuid.UUID) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v uuid.UUID) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v uuid.UUID) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v uuid.UUID) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldLTE(FieldPatientID, v))
}

// PatientIDIsNil applies the IsNil predicate on the "patient_id" field.
func PatientIDIsNil() predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldIsNull(FieldPatientID))
}

// PatientIDNotNil applies the NotNil predicate on the "patient_id" field.
func PatientIDNotNil() predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldNotNull(FieldPatientID))
}

// PrescriptionIDEQ applies the EQ predicate on the "prescription_id" field.
func PrescriptionIDEQ(v uuid.UUID) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldEQ(FieldPrescriptionID, v))
}

// PrescriptionIDNEQ applies the NEQ predicate on the "prescription_id" field.
func PrescriptionIDNEQ(v uuid.UUID) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldNEQ(FieldPrescriptionID, v))
}

// PrescriptionIDIn applies the In predicate on the "prescription_id" field.
func PrescriptionIDIn(vs ...uuid.UUID) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldIn(FieldPrescriptionID, vs...))
}

// PrescriptionIDNotIn applies the NotIn predicate on the "prescription_id" field.
func PrescriptionIDNotIn(vs ...uuid.UUID) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldNotIn(FieldPrescriptionID, vs...))
}

// PrescriptionIDGT applies the GT predicate on the "prescription_id" field.
func PrescriptionIDGT(v uuid.UUID) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldGT(FieldPrescriptionID, v))
}

// PrescriptionIDGTE applies the GTE predicate on the "prescription_id" field.
func PrescriptionIDGTE(v uuid.UUID) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldGTE(FieldPrescriptionID, v))
}

// PrescriptionIDLT applies the LT predicate on the "prescription_id" field.
func PrescriptionIDLT(v uuid.UUID) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldLT(FieldPrescriptionID, v))
}

// PrescriptionIDLTE applies the LTE predicate on the "prescription_id" field.
func PrescriptionIDLTE(v uuid.UUID) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldLTE(FieldPrescriptionID, v))
}

// PrescriptionIDIsNil applies the IsNil predicate on the "prescription_id" field.
func PrescriptionIDIsNil() predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldIsNull(FieldPrescriptionID))
}

// PrescriptionIDNotNil applies the NotNil predicate on the "prescription_id" field.
func PrescriptionIDNotNil() predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldNotNull(FieldPrescriptionID))
}

// TotalAmountEQ applies the EQ predicate on the "total_amount" field.
func TotalAmountEQ(v int64) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldEQ(FieldTotalAmount, v))
}

// TotalAmountNEQ applies the NEQ predicate on the "total_amount" field.
func TotalAmountNEQ(v int64) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldNEQ(FieldTotalAmount, v))
}

// TotalAmountIn applies the In predicate on the "total_amount" field.
func TotalAmountIn(vs ...int64) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldIn(FieldTotalAmount, vs...))
}

// TotalAmountNotIn applies the NotIn predicate on the "total_amount" field.
func TotalAmountNotIn(vs ...int64) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldNotIn(FieldTotalAmount, vs...))
}

// TotalAmountGT applies the GT predicate on the "total_amount" field.
func TotalAmountGT(v int64) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldGT(FieldTotalAmount, v))
}

// TotalAmountGTE applies the GTE predicate on the "total_amount" field.
func TotalAmountGTE(v int64) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldGTE(FieldTotalAmount, v))
}

// TotalAmountLT applies the LT predicate on the "total_amount" field.
func TotalAmountLT(v int64) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldLT(FieldTotalAmount, v))
}

// TotalAmountLTE applies the LTE predicate on the "total_amount" field.
func TotalAmountLTE(v int64) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldLTE(FieldTotalAmount, v))
}

// AmountPaidEQ applies the EQ predicate on the "amount_paid" field.
func AmountPaidEQ(v int64) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldEQ(FieldAmountPaid, v))
}

// AmountPaidNEQ applies the NEQ predicate on the "amount_paid" field.
func AmountPaidNEQ(v int64) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldNEQ(FieldAmountPaid, v))
}

// AmountPaidIn applies the In predicate on the "amount_paid" field.
func AmountPaidIn(vs ...int64) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldIn(FieldAmountPaid, vs...))
}

// AmountPaidNotIn applies the NotIn predicate on the "amount_paid" field.
func AmountPaidNotIn(vs ...int64) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldNotIn(FieldAmountPaid, vs...))
}

// AmountPaidGT applies the GT predicate on the "amount_paid" field.
func AmountPaidGT(v int64) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldGT(FieldAmountPaid, v))
}

// AmountPaidGTE applies the GTE predicate on the "amount_paid" field.
func AmountPaidGTE(v int64) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldGTE(FieldAmountPaid, v))
}

// AmountPaidLT applies the LT predicate on the "amount_paid" field.
func AmountPaidLT(v int64) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldLT(FieldAmountPaid, v))
}

// AmountPaidLTE applies the LTE predicate on the "amount_paid" field.
func AmountPaidLTE(v int64) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldLTE(FieldAmountPaid, v))
}

// SoldByEQ applies the EQ predicate on the "sold_by" field.
func SoldByEQ(v uuid.UUID) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldEQ(FieldSoldBy, v))
}

// SoldByNEQ applies the NEQ predicate on the "sold_by" field.
func SoldByNEQ(v uuid.UUID) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldNEQ(FieldSoldBy, v))
}

// SoldByIn applies the In predicate on the "sold_by" field.
func SoldByIn(vs ...uuid.UUID) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldIn(FieldSoldBy, vs...))
}

// SoldByNotIn applies the NotIn predicate on the "sold_by" field.
func SoldByNotIn(vs ...uuid.UUID) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldNotIn(FieldSoldBy, vs...))
}

// SoldByGT applies the GT predicate on the "sold_by" field.
func SoldByGT(v uuid.UUID) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldGT(FieldSoldBy, v))
}

// SoldByGTE applies the GTE predicate on the "sold_by" field.
func SoldByGTE(v uuid.UUID) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldGTE(FieldSoldBy, v))
}

// SoldByLT applies the LT predicate on the "sold_by" field.
func SoldByLT(v uuid.UUID) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldLT(FieldSoldBy, v))
}

// SoldByLTE applies the LTE predicate on the "sold_by" field.
func SoldByLTE(v uuid.UUID) predicate.PharmacySale {
	return predicate.PharmacySale(sql.FieldLTE(FieldSoldBy, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PharmacySale) predicate.PharmacySale {
	return predicate.PharmacySale(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PharmacySale) predicate.PharmacySale {
	return predicate.PharmacySale(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PharmacySale) predicate.PharmacySale {
	return predicate.PharmacySale(sql.NotPredicates(p))
}
