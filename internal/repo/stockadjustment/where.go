// Code generated by ent, DO NOT EDIT.

package stockadjustment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/niramoy/niramoy_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldEQ(FieldCreatedAt, v))
}

// DrugID applies equality check predicate on the "drug_id" field. It's identical to DrugIDEQ.
func DrugID(v uuid.UUID) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldEQ(FieldDrugID, v))
}

// Delta applies equality check predicate on the "delta" field. It's identical to DeltaEQ.
func Delta(v int) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldEQ(FieldDelta, v))
}

// Note applies equality check predicate on the "note" field. It's identical to NoteEQ.
func Note(v string) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldEQ(FieldNote, v))
}

// AdjustedBy applies equality check predicate on the "adjusted_by" field. It's identical to AdjustedByEQ.
func AdjustedBy(v uuid.UUID) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldEQ(FieldAdjustedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldLTE(FieldCreatedAt, v))
}

// DrugIDEQ applies the EQ predicate on the "drug_id" field.
func DrugIDEQ(v uuid.UUID) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldEQ(FieldDrugID, v))
}

// DrugIDNEQ applies the NEQ predicate on the "drug_id" field.
func DrugIDNEQ(v uuid.UUID) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldNEQ(FieldDrugID, v))
}

// DrugIDIn applies the In predicate on the "drug_id" field.
func DrugIDIn(vs ...uuid.UUID) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldIn(FieldDrugID, vs...))
}

// DrugIDNotIn applies the NotIn predicate on the "drug_id" field.
func DrugIDNotIn(vs ...uuid.UUID) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldNotIn(FieldDrugID, vs...))
}

// DrugIDGT applies the GT predicate on the "drug_id" field.
func DrugIDGT(v uuid.UUID) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldGT(FieldDrugID, v))
}

// DrugIDGTE applies the GTE predicate on the "drug_id" field.
func DrugIDGTE(v uuid.UUID) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldGTE(FieldDrugID, v))
}

// DrugIDLT applies the LT predicate on the "drug_id" field.
func DrugIDLT(v uuid.UUID) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldLT(FieldDrugID, v))
}

// DrugIDLTE applies the LTE predicate on the "drug_id" field.
func DrugIDLTE(v uuid.UUID) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldLTE(FieldDrugID, v))
}

// DeltaEQ applies the EQ predicate on the "delta" field.
func DeltaEQ(v int) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldEQ(FieldDelta, v))
}

// DeltaNEQ applies the NEQ predicate on the "delta" field.
func DeltaNEQ(v int) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldNEQ(FieldDelta, v))
}

// DeltaIn applies the In predicate on the "delta" field.
func DeltaIn(vs ...int) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldIn(FieldDelta, vs...))
}

// DeltaNotIn applies the NotIn predicate on the "delta" field.
func DeltaNotIn(vs ...int) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldNotIn(FieldDelta, vs...))
}

// DeltaGT applies the GT predicate on the "delta" field.
func DeltaGT(v int) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldGT(FieldDelta, v))
}

// DeltaGTE applies the GTE predicate on the "delta" field.
func DeltaGTE(v int) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldGTE(FieldDelta, v))
}

// DeltaLT applies the LT predicate on the "delta" field.
func DeltaLT(v int) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldLT(FieldDelta, v))
}

// DeltaLTE applies the LTE predicate on the "delta" field.
func DeltaLTE(v int) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldLTE(FieldDelta, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v Reason) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v Reason) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...Reason) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...Reason) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldNotIn(FieldReason, vs...))
}

// NoteEQ applies the EQ predicate on the "note" field.
func NoteEQ(v string) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldEQ(FieldNote, v))
}

// NoteNEQ applies the NEQ predicate on the "note" field.
func NoteNEQ(v string) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldNEQ(FieldNote, v))
}

// NoteIn applies the In predicate on the "note" field.
func NoteIn(vs ...string) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldIn(FieldNote, vs...))
}

// NoteNotIn applies the NotIn predicate on the "note" field.
func NoteNotIn(vs ...string) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldNotIn(FieldNote, vs...))
}

// NoteGT applies the GT predicate on the "note" field.
func NoteGT(v string) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldGT(FieldNote, v))
}

// NoteGTE applies the GTE predicate on the "note" field.
func NoteGTE(v string) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldGTE(FieldNote, v))
}

// NoteLT applies the LT predicate on the "note" field.
func NoteLT(v string) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldLT(FieldNote, v))
}

// NoteLTE applies the LTE predicate on the "note" field.
func NoteLTE(v string) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldLTE(FieldNote, v))
}

// NoteContains applies the Contains predicate on the "note" field.
func NoteContains(v string) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldContains(FieldNote, v))
}

// NoteHasPrefix applies the HasPrefix predicate on the "note" field.
func NoteHasPrefix(v string) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldHasPrefix(FieldNote, v))
}

// NoteHasSuffix applies the HasSuffix predicate on the "note" field.
func NoteHasSuffix(v string) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldHasSuffix(FieldNote, v))
}

// NoteIsNil applies the IsNil predicate on the "note" field.
func NoteIsNil() predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldIsNull(FieldNote))
}

// NoteNotNil applies the NotNil predicate on the "note" field.
func NoteNotNil() predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldNotNull(FieldNote))
}

// NoteEqualFold applies the EqualFold predicate on the "note" field.
func NoteEqualFold(v string) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldEqualFold(FieldNote, v))
}

// NoteContainsFold applies the ContainsFold predicate on the "note" field.
func NoteContainsFold(v string) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldContainsFold(FieldNote, v))
}

// AdjustedByEQ applies the EQ predicate on the "adjusted_by" field.
func AdjustedByEQ(v uuid.UUID) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldEQ(FieldAdjustedBy, v))
}

// AdjustedByNEQ applies the NEQ predicate on the "adjusted_by" field.
func AdjustedByNEQ(v uuid.UUID) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldNEQ(FieldAdjustedBy, v))
}

// AdjustedByIn applies the In predicate on the "adjusted_by" field.
func AdjustedByIn(vs ...uuid.UUID) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldIn(FieldAdjustedBy, vs...))
}

// AdjustedByNotIn applies the NotIn predicate on the "adjusted_by" field.
func AdjustedByNotIn(vs ...uuid.UUID) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldNotIn(FieldAdjustedBy, vs...))
}

// AdjustedByGT applies the GT predicate on the "adjusted_by" field.
func AdjustedByGT(v uuid.UUID) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldGT(FieldAdjustedBy, v))
}

// AdjustedByGTE applies the GTE predicate on the "adjusted_by" field.
func AdjustedByGTE(v uuid.UUID) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldGTE(FieldAdjustedBy, v))
}

// AdjustedByLT applies the LT predicate on the "adjusted_by" field.
func AdjustedByLT(v uuid.UUID) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldLT(FieldAdjustedBy, v))
}

// AdjustedByLTE applies the LTE predicate on the "adjusted_by" field.
func AdjustedByLTE(v uuid.UUID) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldLTE(FieldAdjustedBy, v))
}

// AdjustedByIsNil applies the IsNil predicate on the "adjusted_by" field.
func AdjustedByIsNil() predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldIsNull(FieldAdjustedBy))
}

// AdjustedByNotNil applies the NotNil predicate on the "adjusted_by" field.
func AdjustedByNotNil() predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.FieldNotNull(FieldAdjustedBy))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StockAdjustment) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StockAdjustment) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StockAdjustment) predicate.StockAdjustment {
	return predicate.StockAdjustment(sql.NotPredicates(p))
}
