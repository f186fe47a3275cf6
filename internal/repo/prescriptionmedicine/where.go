// Code generated by ent, DO NOT EDIT.

package prescriptionmedicine

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/niramoy/niramoy_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldEQ(FieldCreatedAt, v))
}

// PrescriptionID applies equality check predicate on the "prescription_id" field. It's identical to PrescriptionIDEQ.
func PrescriptionID(v uuid.UUID) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldEQ(FieldPrescriptionID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldEQ(FieldName, v))
}

// Dosage applies equality check predicate on the "dosage" field. It's identical to DosageEQ.
func Dosage(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldEQ(FieldDosage, v))
}

// Frequency applies equality check predicate on the "frequency" field. It's identical to FrequencyEQ.
func Frequency(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldEQ(FieldFrequency, v))
}

// Duration applies equality check predicate on the "duration" field. It's identical to DurationEQ.
func Duration(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldEQ(FieldDuration, v))
}

// Instructions applies equality check predicate on the "instructions" field. It's identical to InstructionsEQ.
func Instructions(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldEQ(FieldInstructions, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldLTE(FieldCreatedAt, v))
}

// PrescriptionIDEQ applies the EQ predicate on the "prescription_id" field.
func PrescriptionIDEQ(v uuid.UUID) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldEQ(FieldPrescriptionID, v))
}

// PrescriptionIDNEQ applies the NEQ predicate on the "prescription_id" field.
func PrescriptionIDNEQ(v uuid.UUID) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldNEQ(FieldPrescriptionID, v))
}

// PrescriptionIDIn applies the In predicate on the "prescription_id" field.
func PrescriptionIDIn(vs ...uuid.UUID) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldIn(FieldPrescriptionID, vs...))
}

// PrescriptionIDNotIn applies the NotIn predicate on the "prescription_id" field.
func PrescriptionIDNotIn(vs ...uuid.UUID) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldNotIn(FieldPrescriptionID, vs...))
}

// PrescriptionIDGT applies the GT predicate on the "prescription_id" field.
func PrescriptionIDGT(v uuid.UUID) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldGT(FieldPrescriptionID, v))
}

// PrescriptionIDGTE applies the GTE predicate on the "prescription_id" field.
func PrescriptionIDGTE(v uuid.UUID) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldGTE(FieldPrescriptionID, v))
}

// PrescriptionIDLT applies the LT predicate on the "prescription_id" field.
func PrescriptionIDLT(v uuid.UUID) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldLT(FieldPrescriptionID, v))
}

// PrescriptionIDLTE applies the LTE predicate on the "prescription_id" field.
func PrescriptionIDLTE(v uuid.UUID) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldLTE(FieldPrescriptionID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldContainsFold(FieldName, v))
}

// DosageEQ applies the EQ predicate on the "dosage" field.
func DosageEQ(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldEQ(FieldDosage, v))
}

// DosageNEQ applies the NEQ predicate on the "dosage" field.
func DosageNEQ(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldNEQ(FieldDosage, v))
}

// DosageIn applies the In predicate on the "dosage" field.
func DosageIn(vs ...string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldIn(FieldDosage, vs...))
}

// DosageNotIn applies the NotIn predicate on the "dosage" field.
func DosageNotIn(vs ...string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldNotIn(FieldDosage, vs...))
}

// DosageGT applies the GT predicate on the "dosage" field.
func DosageGT(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldGT(FieldDosage, v))
}

// DosageGTE applies the GTE predicate on the "dosage" field.
func DosageGTE(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldGTE(FieldDosage, v))
}

// DosageLT applies the LT predicate on the "dosage" field.
func DosageLT(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldLT(FieldDosage, v))
}

// DosageLTE applies the LTE predicate on the "dosage" field.
func DosageLTE(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldLTE(FieldDosage, v))
}

// DosageContains applies the Contains predicate on the "dosage" field.
func DosageContains(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldContains(FieldDosage, v))
}

// DosageHasPrefix applies the HasPrefix predicate on the "dosage" field.
func DosageHasPrefix(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldHasPrefix(FieldDosage, v))
}

// DosageHasSuffix applies the HasSuffix predicate on the "dosage" field.
func DosageHasSuffix(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldHasSuffix(FieldDosage, v))
}

// DosageEqualFold applies the EqualFold predicate on the "dosage" field.
func DosageEqualFold(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldEqualFold(FieldDosage, v))
}

// DosageContainsFold applies the ContainsFold predicate on the "dosage" field.
func DosageContainsFold(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldContainsFold(FieldDosage, v))
}

// FrequencyEQ applies the EQ predicate on the "frequency" field.
func FrequencyEQ(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldEQ(FieldFrequency, v))
}

// FrequencyNEQ applies the NEQ predicate on the "frequency" field.
func FrequencyNEQ(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldNEQ(FieldFrequency, v))
}

// FrequencyIn applies the In predicate on the "frequency" field.
func FrequencyIn(vs ...string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldIn(FieldFrequency, vs...))
}

// FrequencyNotIn applies the NotIn predicate on the "frequency" field.
func FrequencyNotIn(vs ...string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldNotIn(FieldFrequency, vs...))
}

// FrequencyGT applies the GT predicate on the "frequency" field.
func FrequencyGT(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldGT(FieldFrequency, v))
}

// FrequencyGTE applies the GTE predicate on the "frequency" field.
func FrequencyGTE(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldGTE(FieldFrequency, v))
}

// FrequencyLT applies the LT predicate on the "frequency" field.
func FrequencyLT(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldLT(FieldFrequency, v))
}

// FrequencyLTE applies the LTE predicate on the "frequency" field.
func FrequencyLTE(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldLTE(FieldFrequency, v))
}

// FrequencyContains applies the Contains predicate on the "frequency" field.
func FrequencyContains(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldContains(FieldFrequency, v))
}

// FrequencyHasPrefix applies the HasPrefix predicate on the "frequency" field.
func FrequencyHasPrefix(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldHasPrefix(FieldFrequency, v))
}

// FrequencyHasSuffix applies the HasSuffix predicate on the "frequency" field.
func FrequencyHasSuffix(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldHasSuffix(FieldFrequency, v))
}

// FrequencyEqualFold applies the EqualFold predicate on the "frequency" field.
func FrequencyEqualFold(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldEqualFold(FieldFrequency, v))
}

// FrequencyContainsFold applies the ContainsFold predicate on the "frequency" field.
func FrequencyContainsFold(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldContainsFold(FieldFrequency, v))
}

// DurationEQ applies the EQ predicate on the "duration" field.
func DurationEQ(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldEQ(FieldDuration, v))
}

// DurationNEQ applies the NEQ predicate on the "duration" field.
func DurationNEQ(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldNEQ(FieldDuration, v))
}

// DurationIn applies the In predicate on the "duration" field.
func DurationIn(vs ...string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldIn(FieldDuration, vs...))
}

// DurationNotIn applies the NotIn predicate on the "duration" field.
func DurationNotIn(vs ...string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldNotIn(FieldDuration, vs...))
}

// DurationGT applies the GT predicate on the "duration" field.
func DurationGT(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldGT(FieldDuration, v))
}

// DurationGTE applies the GTE predicate on the "duration" field.
func DurationGTE(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldGTE(FieldDuration, v))
}

// DurationLT applies the LT predicate on the "duration" field.
func DurationLT(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldLT(FieldDuration, v))
}

// DurationLTE applies the LTE predicate on the "duration" field.
func DurationLTE(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldLTE(FieldDuration, v))
}

// DurationContains applies the Contains predicate on the "duration" field.
func DurationContains(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldContains(FieldDuration, v))
}

// DurationHasPrefix applies the HasPrefix predicate on the "duration" field.
func DurationHasPrefix(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldHasPrefix(FieldDuration, v))
}

// DurationHasSuffix applies the HasSuffix predicate on the "duration" field.
func DurationHasSuffix(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldHasSuffix(FieldDuration, v))
}

// DurationEqualFold applies the EqualFold predicate on the "duration" field.
func DurationEqualFold(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldEqualFold(FieldDuration, v))
}

// DurationContainsFold applies the ContainsFold predicate on the "duration" field.
func DurationContainsFold(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldContainsFold(FieldDuration, v))
}

// InstructionsEQ applies the EQ predicate on the "instructions" field.
func InstructionsEQ(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldEQ(FieldInstructions, v))
}

// InstructionsNEQ applies the NEQ predicate on the "instructions" field.
func InstructionsNEQ(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldNEQ(FieldInstructions, v))
}

// InstructionsIn applies the In predicate on the "instructions" field.
func InstructionsIn(vs ...string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldIn(FieldInstructions, vs...))
}

// InstructionsNotIn applies the NotIn predicate on the "instructions" field.
func InstructionsNotIn(vs ...string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldNotIn(FieldInstructions, vs...))
}

// InstructionsGT applies the GT predicate on the "instructions" field.
func InstructionsGT(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldGT(FieldInstructions, v))
}

// InstructionsGTE applies the GTE predicate on the "instructions" field.
func InstructionsGTE(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldGTE(FieldInstructions, v))
}

// InstructionsLT applies the LT predicate on the "instructions" field.
func InstructionsLT(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldLT(FieldInstructions, v))
}

// InstructionsLTE applies the LTE predicate on the "instructions" field.
func InstructionsLTE(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldLTE(FieldInstructions, v))
}

// InstructionsContains applies the Contains predicate on the "instructions" field.
func InstructionsContains(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldContains(FieldInstructions, v))
}

// InstructionsHasPrefix applies the HasPrefix predicate on the "instructions" field.
func InstructionsHasPrefix(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldHasPrefix(FieldInstructions, v))
}

// InstructionsHasSuffix applies the HasSuffix predicate on the "instructions" field.
func InstructionsHasSuffix(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldHasSuffix(FieldInstructions, v))
}

// InstructionsIsNil applies the IsNil predicate on the "instructions" field.
func InstructionsIsNil() predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldIsNull(FieldInstructions))
}

// InstructionsNotNil applies the NotNil predicate on the "instructions" field.
func InstructionsNotNil() predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldNotNull(FieldInstructions))
}

// InstructionsEqualFold applies the EqualFold predicate on the "instructions" field.
func InstructionsEqualFold(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldEqualFold(FieldInstructions, v))
}

// InstructionsContainsFold applies the ContainsFold predicate on the "instructions" field.
func InstructionsContainsFold(v string) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.FieldContainsFold(FieldInstructions, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PrescriptionMedicine) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PrescriptionMedicine) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PrescriptionMedicine) predicate.PrescriptionMedicine {
	return predicate.PrescriptionMedicine(sql.NotPredicates(p))
}
