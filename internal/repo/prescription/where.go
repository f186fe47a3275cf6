// Code generated by ent, DO NOT EDIT.

package prescription

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/niramoy/niramoy_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldUpdatedAt, v))
}

// PrescriptionNumber applies equality check predicate on the "prescription_number" field. It's identical to PrescriptionNumberEQ.
func PrescriptionNumber(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldPrescriptionNumber, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldPatientID, v))
}

// DoctorID applies equality check predicate on the "doctor_id" field. It's identical to DoctorIDEQ.
func DoctorID(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldDoctorID, v))
}

// AppointmentID applies equality check predicate on the "appointment_id" field. It's identical to AppointmentIDEQ.
func AppointmentID(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldAppointmentID, v))
}

// Diagnosis applies equality check predicate on the "diagnosis" field. It's identical to DiagnosisEQ.
func Diagnosis(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldDiagnosis, v))
}

// Advice applies equality check predicate on the "advice" field. It's identical to AdviceEQ.
func Advice(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldAdvice, v))
}

// FollowUpDate applies equality check predicate on the "follow_up_date" field. It's identical to FollowUpDateEQ.
func FollowUpDate(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldFollowUpDate, v))
}

// PrintedAt applies equality check predicate on the "printed_at" field. It's identical to PrintedAtEQ.
func PrintedAt(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldPrintedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldUpdatedAt, v))
}

// PrescriptionNumberEQ applies the EQ predicate on the "prescription_number" field.
func PrescriptionNumberEQ(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldPrescriptionNumber, v))
}

// PrescriptionNumberNEQ applies the NEQ predicate on the "prescription_number" field.
func PrescriptionNumberNEQ(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldPrescriptionNumber, v))
}

// PrescriptionNumberIn applies the In predicate on the "prescription_number" field.
func PrescriptionNumberIn(vs ...string) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldPrescriptionNumber, vs...))
}

// PrescriptionNumberNotIn applies the NotIn predicate on the "prescription_number" field.
func PrescriptionNumberNotIn(vs ...string) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldPrescriptionNumber, vs...))
}

// PrescriptionNumberGT applies the GT predicate on the "prescription_number" field.
func PrescriptionNumberGT(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldPrescriptionNumber, v))
}

// PrescriptionNumberGTE applies the GTE predicate on the "prescription_number" field.
func PrescriptionNumberGTE(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldPrescriptionNumber, v))
}

// PrescriptionNumberLT applies the LT predicate on the "prescription_number" field.
func PrescriptionNumberLT(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldPrescriptionNumber, v))
}

// PrescriptionNumberLTE applies the LTE predicate on the "prescription_number" field.
func PrescriptionNumberLTE(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldPrescriptionNumber, v))
}

// PrescriptionNumberContains applies the Contains predicate on the "prescription_number" field.
func PrescriptionNumberContains(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldContains(FieldPrescriptionNumber, v))
}

// PrescriptionNumberHasPrefix applies the HasPrefix predicate on the "prescription_number" field.
func PrescriptionNumberHasPrefix(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldHasPrefix(FieldPrescriptionNumber, v))
}

// PrescriptionNumberHasSuffix applies the HasSuffix predicate on the "prescription_number" field.
func PrescriptionNumberHasSuffix(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldHasSuffix(FieldPrescriptionNumber, v))
}

// PrescriptionNumberEqualFold applies the EqualFold predicate on the "prescription_number" field.
func PrescriptionNumberEqualFold(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEqualFold(FieldPrescriptionNumber, v))
}

// PrescriptionNumberContainsFold applies the ContainsFold predicate on the "prescription_number" field.
func PrescriptionNumberContainsFold(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldContainsFold(FieldPrescriptionNumber, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldPatientID, v))
}

// DoctorIDEQ applies the EQ predicate on the "doctor_id" field.
func DoctorIDEQ(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldDoctorID, v))
}

// DoctorIDNEQ applies the NEQ predicate on the "doctor_id" field.
func DoctorIDNEQ(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldDoctorID, v))
}

// DoctorIDIn applies the In predicate on the "doctor_id" field.
func DoctorIDIn(vs ...uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldDoctorID, vs...))
}

// DoctorIDNotIn applies the NotIn predicate on the "doctor_id" field.
func DoctorIDNotIn(vs ...uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldDoctorID, vs...))
}

// DoctorIDGT applies the GT predicate on the "doctor_id" field.
func DoctorIDGT(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldDoctorID, v))
}

// DoctorIDGTE applies the GTE predicate on the "doctor_id" field.
func DoctorIDGTE(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldDoctorID, v))
}

// DoctorIDLT applies the LT predicate on the "doctor_id" field.
func DoctorIDLT(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldDoctorID, v))
}

// DoctorIDLTE applies the LTE predicate on the "doctor_id" field.
func DoctorIDLTE(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldDoctorID, v))
}

// AppointmentIDEQ applies the EQ predicate on the "appointment_id" field.
func AppointmentIDEQ(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldAppointmentID, v))
}

// AppointmentIDNEQ applies the NEQ predicate on the "appointment_id" field.
func AppointmentIDNEQ(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldAppointmentID, v))
}

// AppointmentIDIn applies the In predicate on the "appointment_id" field.
func AppointmentIDIn(vs ...uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldAppointmentID, vs...))
}

// AppointmentIDNotIn applies the NotIn predicate on the "appointment_id" field.
func AppointmentIDNotIn(vs ...uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldAppointmentID, vs...))
}

// AppointmentIDGT applies the GT predicate on the "appointment_id" field.
func AppointmentIDGT(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldAppointmentID, v))
}

// AppointmentIDGTE applies the GTE predicate on the "appointment_id" field.
func AppointmentIDGTE(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldAppointmentID, v))
}

// AppointmentIDLT applies the LT predicate on the "appointment_id" field.
func AppointmentIDLT(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldAppointmentID, v))
}

// AppointmentIDLTE applies the LTE predicate on the "appointment_id" field.
func AppointmentIDLTE(v uuid.UUID) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldAppointmentID, v))
}

// AppointmentIDIsNil applies the IsNil predicate on the "appointment_id" field.
func AppointmentIDIsNil() predicate.Prescription {
	return predicate.Prescription(sql.FieldIsNull(FieldAppointmentID))
}

// AppointmentIDNotNil applies the NotNil predicate on the "appointment_id" field.
func AppointmentIDNotNil() predicate.Prescription {
	return predicate.Prescription(sql.FieldNotNull(FieldAppointmentID))
}

// DiagnosisEQ applies the EQ predicate on the "diagnosis" field.
func DiagnosisEQ(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldDiagnosis, v))
}

// DiagnosisNEQ applies the NEQ predicate on the "diagnosis" field.
func DiagnosisNEQ(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldDiagnosis, v))
}

// DiagnosisIn applies the In predicate on the "diagnosis" field.
func DiagnosisIn(vs ...string) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldDiagnosis, vs...))
}

// DiagnosisNotIn applies the NotIn predicate on the "diagnosis" field.
func DiagnosisNotIn(vs ...string) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldDiagnosis, vs...))
}

// DiagnosisGT applies the GT predicate on the "diagnosis" field.
func DiagnosisGT(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldDiagnosis, v))
}

// DiagnosisGTE applies the GTE predicate on the "diagnosis" field.
func DiagnosisGTE(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldDiagnosis, v))
}

// DiagnosisLT applies the LT predicate on the "diagnosis" field.
func DiagnosisLT(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldDiagnosis, v))
}

// DiagnosisLTE applies the LTE predicate on the "diagnosis" field.
func DiagnosisLTE(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldDiagnosis, v))
}

// DiagnosisContains applies the Contains predicate on the "diagnosis" field.
func DiagnosisContains(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldContains(FieldDiagnosis, v))
}

// DiagnosisHasPrefix applies the HasPrefix predicate on the "diagnosis" field.
func DiagnosisHasPrefix(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldHasPrefix(FieldDiagnosis, v))
}

// DiagnosisHasSuffix applies the HasSuffix predicate on the "diagnosis" field.
func DiagnosisHasSuffix(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldHasSuffix(FieldDiagnosis, v))
}

// DiagnosisEqualFold applies the EqualFold predicate on the "diagnosis" field.
func DiagnosisEqualFold(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEqualFold(FieldDiagnosis, v))
}

// DiagnosisContainsFold applies the ContainsFold predicate on the "diagnosis" field.
func DiagnosisContainsFold(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldContainsFold(FieldDiagnosis, v))
}

// AdviceEQ applies the EQ predicate on the "advice" field.
func AdviceEQ(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldAdvice, v))
}

// AdviceNEQ applies the NEQ predicate on the "advice" field.
func AdviceNEQ(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldAdvice, v))
}

// AdviceIn applies the In predicate on the "advice" field.
func AdviceIn(vs ...string) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldAdvice, vs...))
}

// AdviceNotIn applies the NotIn predicate on the "advice" field.
func AdviceNotIn(vs ...string) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldAdvice, vs...))
}

// AdviceGT applies the GT predicate on the "advice" field.
func AdviceGT(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldAdvice, v))
}

// AdviceGTE applies the GTE predicate on the "advice" field.
func AdviceGTE(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldAdvice, v))
}

// AdviceLT applies the LT predicate on the "advice" field.
func AdviceLT(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldAdvice, v))
}

// AdviceLTE applies the LTE predicate on the "advice" field.
func AdviceLTE(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldAdvice, v))
}

// AdviceContains applies the Contains predicate on the "advice" field.
func AdviceContains(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldContains(FieldAdvice, v))
}

// AdviceHasPrefix applies the HasPrefix predicate on the "advice" field.
func AdviceHasPrefix(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldHasPrefix(FieldAdvice, v))
}

// AdviceHasSuffix applies the HasSuffix predicate on the "advice" field.
func AdviceHasSuffix(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldHasSuffix(FieldAdvice, v))
}

// AdviceIsNil applies the IsNil predicate on the "advice" field.
func AdviceIsNil() predicate.Prescription {
	return predicate.Prescription(sql.FieldIsNull(FieldAdvice))
}

// AdviceNotNil applies the NotNil predicate on the "advice" field.
func AdviceNotNil() predicate.Prescription {
	return predicate.Prescription(sql.FieldNotNull(FieldAdvice))
}

// AdviceEqualFold applies the EqualFold predicate on the "advice" field.
func AdviceEqualFold(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldEqualFold(FieldAdvice, v))
}

// AdviceContainsFold applies the ContainsFold predicate on the "advice" field.
func AdviceContainsFold(v string) predicate.Prescription {
	return predicate.Prescription(sql.FieldContainsFold(FieldAdvice, v))
}

// FollowUpDateEQ applies the EQ predicate on the "follow_up_date" field.
func FollowUpDateEQ(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldFollowUpDate, v))
}

// FollowUpDateNEQ applies the NEQ predicate on the "follow_up_date" field.
func FollowUpDateNEQ(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldFollowUpDate, v))
}

// FollowUpDateIn applies the In predicate on the "follow_up_date" field.
func FollowUpDateIn(vs ...time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldFollowUpDate, vs...))
}

// FollowUpDateNotIn applies the NotIn predicate on the "follow_up_date" field.
func FollowUpDateNotIn(vs ...time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldFollowUpDate, vs...))
}

// FollowUpDateGT applies the GT predicate on the "follow_up_date" field.
func FollowUpDateGT(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldFollowUpDate, v))
}

// FollowUpDateGTE applies the GTE predicate on the "follow_up_date" field.
func FollowUpDateGTE(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldFollowUpDate, v))
}

// FollowUpDateLT applies the LT predicate on the "follow_up_date" field.
func FollowUpDateLT(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldFollowUpDate, v))
}

// FollowUpDateLTE applies the LTE predicate on the "follow_up_date" field.
func FollowUpDateLTE(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldFollowUpDate, v))
}

// FollowUpDateIsNil applies the IsNil predicate on the "follow_up_date" field.
func FollowUpDateIsNil() predicate.Prescription {
	return predicate.Prescription(sql.FieldIsNull(FieldFollowUpDate))
}

// FollowUpDateNotNil applies the NotNil predicate on the "follow_up_date" field.
func FollowUpDateNotNil() predicate.Prescription {
	return predicate.Prescription(sql.FieldNotNull(FieldFollowUpDate))
}

// PrintedAtEQ applies the EQ predicate on the "printed_at" field.
func PrintedAtEQ(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldEQ(FieldPrintedAt, v))
}

// PrintedAtNEQ applies the NEQ predicate on the "printed_at" field.
func PrintedAtNEQ(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldNEQ(FieldPrintedAt, v))
}

// PrintedAtIn applies the In predicate on the "printed_at" field.
func PrintedAtIn(vs ...time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldIn(FieldPrintedAt, vs...))
}

// PrintedAtNotIn applies the NotIn predicate on the "printed_at" field.
func PrintedAtNotIn(vs ...time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldNotIn(FieldPrintedAt, vs...))
}

// PrintedAtGT applies the GT predicate on the "printed_at" field.
func PrintedAtGT(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldGT(FieldPrintedAt, v))
}

// PrintedAtGTE applies the GTE predicate on the "printed_at" field.
func PrintedAtGTE(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldGTE(FieldPrintedAt, v))
}

// PrintedAtLT applies the LT predicate on the "printed_at" field.
func PrintedAtLT(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldLT(FieldPrintedAt, v))
}

// PrintedAtLTE applies the LTE predicate on the "printed_at" field.
func PrintedAtLTE(v time.Time) predicate.Prescription {
	return predicate.Prescription(sql.FieldLTE(FieldPrintedAt, v))
}

// PrintedAtIsNil applies the IsNil predicate on the "printed_at" field.
func PrintedAtIsNil() predicate.Prescription {
	return predicate.Prescription(sql.FieldIsNull(FieldPrintedAt))
}

// PrintedAtNotNil applies the NotNil predicate on the "printed_at" field.
func PrintedAtNotNil() predicate.Prescription {
	return predicate.Prescription(sql.FieldNotNull(FieldPrintedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Prescription) predicate.Prescription {
	return predicate.Prescription(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Prescription) predicate.Prescription {
	return predicate.Prescription(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Prescription) predicate.Prescription {
	return predicate.Prescription(sql.NotPredicates(p))
}
