// Code generated by ent, DO NOT EDIT.

package laborder

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/niramoy/niramoy_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldEQ(FieldUpdatedAt, v))
}

// OrderNumber applies equality check predicate on the "order_number" field. It's identical to OrderNumberEQ.
func OrderNumber(v string) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldEQ(FieldOrderNumber, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldEQ(FieldPatientID, v))
}

// OrderedBy applies equality check predicate on the "ordered_by" field. It's identical to OrderedByEQ.
func OrderedBy(v uuid.UUID) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldEQ(FieldOrderedBy, v))
}

// PrescriptionID applies equality check predicate on the "prescription_id" field. It's identical to PrescriptionIDEQ.
func PrescriptionID(v uuid.UUID) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldEQ(FieldPrescriptionID, v))
}

// TotalAmount applies equality check predicate on the "total_amount" field. It's identical to TotalAmountEQ.
func TotalAmount(v int64) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldEQ(FieldTotalAmount, v))
}

// AmountPaid applies equality check predicate on the "amount_paid" field. It's identical to AmountPaidEQ.
func AmountPaid(v int64) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldEQ(FieldAmountPaid, v))
}

// SampleCollectedAt applies equality check predicate on the "sample_collected_at" field. It's identical to SampleCollectedAtEQ.
func SampleCollectedAt(v time.Time) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldEQ(FieldSampleCollectedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldEQ(FieldCompletedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldLTE(FieldUpdatedAt, v))
}

// OrderNumberEQ applies the EQ predicate on the "order_number" field.
func OrderNumberEQ(v string) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldEQ(FieldOrderNumber, v))
}

// OrderNumberNEQ applies the NEQ predicate on the "order_number" field.
func OrderNumberNEQ(v string) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldNEQ(FieldOrderNumber, v))
}

// OrderNumberIn applies the In predicate on the "order_number" field.
func OrderNumberIn(vs ...string) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldIn(FieldOrderNumber, vs...))
}

// OrderNumberNotIn applies the NotIn predicate on the "order_number" field.
func OrderNumberNotIn(vs ...string) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldNotIn(FieldOrderNumber, vs...))
}

// OrderNumberGT applies the GT predicate on the "order_number" field.
func OrderNumberGT(v string) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldGT(FieldOrderNumber, v))
}

// OrderNumberGTE applies the GTE predicate on the "order_number" field.
func OrderNumberGTE(v string) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldGTE(FieldOrderNumber, v))
}

// OrderNumberLT applies the LT predicate on the "order_number" field.
func OrderNumberLT(v string) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldLT(FieldOrderNumber, v))
}

// OrderNumberLTE applies the LTE predicate on the "order_number" field.
func OrderNumberLTE(v string) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldLTE(FieldOrderNumber, v))
}

// OrderNumberContains applies the Contains predicate on the "order_number" field.
func OrderNumberContains(v string) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldContains(FieldOrderNumber, v))
}

// OrderNumberHasPrefix applies the HasPrefix predicate on the "order_number" field.
func OrderNumberHasPrefix(v string) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldHasPrefix(FieldOrderNumber, v))
}

// OrderNumberHasSuffix applies the HasSuffix predicate on the "order_number" field.
func OrderNumberHasSuffix(v string) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldHasSuffix(FieldOrderNumber, v))
}

// OrderNumberEqualFold applies the EqualFold predicate on the "order_number" field.
func OrderNumberEqualFold(v string) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldEqualFold(FieldOrderNumber, v))
}

// OrderNumberContainsFold applies the ContainsFold predicate on the "order_number" field.
func OrderNumberContainsFold(v string) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldContainsFold(FieldOrderNumber, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v uuid.UUID) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v uuid.UUID) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v uuid.UUID) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v uuid.UUID) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldLTE(FieldPatientID, v))
}

// OrderedByEQ applies the EQ predicate on the "ordered_by" field.
func OrderedByEQ(v uuid.UUID) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldEQ(FieldOrderedBy, v))
}

// OrderedByNEQ applies the NEQ predicate on the "ordered_by" field.
func OrderedByNEQ(v uuid.UUID) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldNEQ(FieldOrderedBy, v))
}

// OrderedByIn applies the In predicate on the "ordered_by" field.
func OrderedByIn(vs ...uuid.UUID) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldIn(FieldOrderedBy, vs...))
}

// OrderedByNotIn applies the NotIn predicate on the "ordered_by" field.
func OrderedByNotIn(vs ...uuid.UUID) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldNotIn(FieldOrderedBy, vs...))
}

// OrderedByGT applies the GT predicate on the "ordered_by" field.
func OrderedByGT(v uuid.UUID) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldGT(FieldOrderedBy, v))
}

// OrderedByGTE applies the GTE predicate on the "ordered_by" field.
func OrderedByGTE(v uuid.UUID) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldGTE(FieldOrderedBy, v))
}

// OrderedByLT applies the LT predicate on the "ordered_by" field.
func OrderedByLT(v uuid.UUID) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldLT(FieldOrderedBy, v))
}

// OrderedByLTE applies the LTE predicate on the "ordered_by" field.
func OrderedByLTE(v uuid.UUID) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldLTE(FieldOrderedBy, v))
}

// OrderedByIsNil applies the IsNil predicate on the "ordered_by" field.
func OrderedByIsNil() predicate.LabOrder {
	return predicate.LabOrder(sql.FieldIsNull(FieldOrderedBy))
}

// OrderedByNotNil applies the NotNil predicate on the "ordered_by" field.
func OrderedByNotNil() predicate.LabOrder {
	return predicate.LabOrder(sql.FieldNotNull(FieldOrderedBy))
}

// PrescriptionIDEQ applies the EQ predicate on the "prescription_id" field.
func PrescriptionIDEQ(v uuid.UUID) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldEQ(FieldPrescriptionID, v))
}

// PrescriptionIDNEQ applies the NEQ predicate on the "prescription_id" field.
func PrescriptionIDNEQ(v uuid.UUID) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldNEQ(FieldPrescriptionID, v))
}

// PrescriptionIDIn applies the In predicate on the "prescription_id" field.
func PrescriptionIDIn(vs ...uuid.UUID) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldIn(FieldPrescriptionID, vs...))
}

// PrescriptionIDNotIn applies the NotIn predicate on the "prescription_id" field.
func PrescriptionIDNotIn(vs ...uuid.UUID) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldNotIn(FieldPrescriptionID, vs...))
}

// PrescriptionIDGT applies the GT predicate on the "prescription_id" field.
func PrescriptionIDGT(v uuid.UUID) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldGT(FieldPrescriptionID, v))
}

// PrescriptionIDGTE applies the GTE predicate on the "prescription_id" field.
func PrescriptionIDGTE(v uuid.UUID) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldGTE(FieldPrescriptionID, v))
}

// PrescriptionIDLT applies the LT predicate on the "prescription_id" field.
func PrescriptionIDLT(v uuid.UUID) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldLT(FieldPrescriptionID, v))
}

// PrescriptionIDLTE applies the LTE predicate on the "prescription_id" field.
func PrescriptionIDLTE(v uuid.UUID) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldLTE(FieldPrescriptionID, v))
}

// PrescriptionIDIsNil applies the IsNil predicate on the "prescription_id" field.
func PrescriptionIDIsNil() predicate.LabOrder {
	return predicate.LabOrder(sql.FieldIsNull(FieldPrescriptionID))
}

// PrescriptionIDNotNil applies the NotNil predicate on the "prescription_id" field.
func PrescriptionIDNotNil() predicate.LabOrder {
	return predicate.LabOrder(sql.FieldNotNull(FieldPrescriptionID))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldNotIn(FieldStatus, vs...))
}

// TotalAmountEQ applies the EQ predicate on the "total_amount" field.
func TotalAmountEQ(v int64) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldEQ(FieldTotalAmount, v))
}

// TotalAmountNEQ applies the NEQ predicate on the "total_amount" field.
func TotalAmountNEQ(v int64) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldNEQ(FieldTotalAmount, v))
}

// TotalAmountIn applies the In predicate on the "total_amount" field.
func TotalAmountIn(vs ...int64) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldIn(FieldTotalAmount, vs...))
}

// TotalAmountNotIn applies the NotIn predicate on the "total_amount" field.
func TotalAmountNotIn(vs ...int64) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldNotIn(FieldTotalAmount, vs...))
}

// TotalAmountGT applies the GT predicate on the "total_amount" field.
func TotalAmountGT(v int64) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldGT(FieldTotalAmount, v))
}

// TotalAmountGTE applies the GTE predicate on the "total_amount" field.
func TotalAmountGTE(v int64) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldGTE(FieldTotalAmount, v))
}

// TotalAmountLT applies the LT predicate on the "total_amount" field.
func TotalAmountLT(v int64) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldLT(FieldTotalAmount, v))
}

// TotalAmountLTE applies the LTE predicate on the "total_amount" field.
func TotalAmountLTE(v int64) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldLTE(FieldTotalAmount, v))
}

// AmountPaidEQ applies the EQ predicate on the "amount_paid" field.
func AmountPaidEQ(v int64) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldEQ(FieldAmountPaid, v))
}

// AmountPaidNEQ applies the NEQ predicate on the "amount_paid" field.
func AmountPaidNEQ(v int64) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldNEQ(FieldAmountPaid, v))
}

// AmountPaidIn applies the In predicate on the "amount_paid" field.
func AmountPaidIn(vs ...int64) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldIn(FieldAmountPaid, vs...))
}

// AmountPaidNotIn applies the NotIn predicate on the "amount_paid" field.
func AmountPaidNotIn(vs ...int64) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldNotIn(FieldAmountPaid, vs...))
}

// AmountPaidGT applies the GT predicate on the "amount_paid" field.
func AmountPaidGT(v int64) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldGT(FieldAmountPaid, v))
}

// AmountPaidGTE applies the GTE predicate on the "amount_paid" field.
func AmountPaidGTE(v int64) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldGTE(FieldAmountPaid, v))
}

// AmountPaidLT applies the LT predicate on the "amount_paid" field.
func AmountPaidLT(v int64) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldLT(FieldAmountPaid, v))
}

// AmountPaidLTE applies the LTE predicate on the "amount_paid" field.
func AmountPaidLTE(v int64) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldLTE(FieldAmountPaid, v))
}

// SampleCollectedAtEQ applies the EQ predicate on the "sample_collected_at" field.
func SampleCollectedAtEQ(v time.Time) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldEQ(FieldSampleCollectedAt, v))
}

// SampleCollectedAtNEQ applies the NEQ predicate on the "sample_collected_at" field.
func SampleCollectedAtNEQ(v time.Time) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldNEQ(FieldSampleCollectedAt, v))
}

// SampleCollectedAtIn applies the In predicate on the "sample_collected_at" field.
func SampleCollectedAtIn(vs ...time.Time) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldIn(FieldSampleCollectedAt, vs...))
}

// SampleCollectedAtNotIn applies the NotIn predicate on the "sample_collected_at" field.
func SampleCollectedAtNotIn(vs ...time.Time) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldNotIn(FieldSampleCollectedAt, vs...))
}

// SampleCollectedAtGT applies the GT predicate on the "sample_collected_at" field.
func SampleCollectedAtGT(v time.Time) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldGT(FieldSampleCollectedAt, v))
}

// SampleCollectedAtGTE applies the GTE predicate on the "sample_collected_at" field.
func SampleCollectedAtGTE(v time.Time) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldGTE(FieldSampleCollectedAt, v))
}

// SampleCollectedAtLT applies the LT predicate on the "sample_collected_at" field.
func SampleCollectedAtLT(v time.Time) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldLT(FieldSampleCollectedAt, v))
}

// SampleCollectedAtLTE applies the LTE predicate on the "sample_collected_at" field.
func SampleCollectedAtLTE(v time.Time) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldLTE(FieldSampleCollectedAt, v))
}

// SampleCollectedAtIsNil applies the IsNil predicate on the "sample_collected_at" field.
func SampleCollectedAtIsNil() predicate.LabOrder {
	return predicate.LabOrder(sql.FieldIsNull(FieldSampleCollectedAt))
}

// SampleCollectedAtNotNil applies the NotNil predicate on the "sample_collected_at" field.
func SampleCollectedAtNotNil() predicate.LabOrder {
	return predicate.LabOrder(sql.FieldNotNull(FieldSampleCollectedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.LabOrder {
	return predicate.LabOrder(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.LabOrder {
	return predicate.LabOrder(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.LabOrder {
	return predicate.LabOrder(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LabOrder) predicate.LabOrder {
	return predicate.LabOrder(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LabOrder) predicate.LabOrder {
	return predicate.LabOrder(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LabOrder) predicate.LabOrder {
	return predicate.LabOrder(sql.NotPredicates(p))
}
