// Code generated by ent, DO NOT EDIT.

package labresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/niramoy/niramoy_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldUpdatedAt, v))
}

// OrderID applies equality check predicate on the "order_id" field. It's identical to OrderIDEQ.
func OrderID(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldOrderID, v))
}

// TestID applies equality check predicate on the "test_id" field. It's identical to TestIDEQ.
func TestID(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldTestID, v))
}

// Price applies equality check predicate on the "price" field. It's identical to PriceEQ.
func Price(v int64) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldPrice, v))
}

// ResultValue applies equality check predicate on the "result_value" field. It's identical to ResultValueEQ.
func ResultValue(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldResultValue, v))
}

// Unit applies equality check predicate on the "unit" field. It's identical to UnitEQ.
func Unit(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldUnit, v))
}

// Abnormal applies equality check predicate on the "abnormal" field. It's identical to AbnormalEQ.
func Abnormal(v bool) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldAbnormal, v))
}

// EnteredBy applies equality check predicate on the "entered_by" field. It's identical to EnteredByEQ.
func EnteredBy(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldEnteredBy, v))
}

// VerifiedBy applies equality check predicate on the "verified_by" field. It's identical to VerifiedByEQ.
func VerifiedBy(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldVerifiedBy, v))
}

// VerifiedAt applies equality check predicate on the "verified_at" field. It's identical to VerifiedAtEQ.
func VerifiedAt(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldVerifiedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldUpdatedAt, v))
}

// OrderIDEQ applies the EQ predicate on the "order_id" field.
func OrderIDEQ(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldOrderID, v))
}

// OrderIDNEQ applies the NEQ predicate on the "order_id" field.
func OrderIDNEQ(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldOrderID, v))
}

// OrderIDIn applies the In predicate on the "order_id" field.
func OrderIDIn(vs ...uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldOrderID, vs...))
}

// OrderIDNotIn applies the NotIn predicate on the "order_id" field.
func OrderIDNotIn(vs ...uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldOrderID, vs...))
}

// OrderIDGT applies the GT predicate on the "order_id" field.
func OrderIDGT(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldOrderID, v))
}

// OrderIDGTE applies the GTE predicate on the "order_id" field.
func OrderIDGTE(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldOrderID, v))
}

// OrderIDLT applies the LT predicate on the "order_id" field.
func OrderIDLT(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldOrderID, v))
}

// OrderIDLTE applies the LTE predicate on the "order_id" field.
func OrderIDLTE(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldOrderID, v))
}

// TestIDEQ applies the EQ predicate on the "test_id" field.
func TestIDEQ(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldTestID, v))
}

// TestIDNEQ applies the NEQ predicate on the "test_id" field.
func TestIDNEQ(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldTestID, v))
}

// TestIDIn applies the In predicate on the "test_id" field.
func TestIDIn(vs ...uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldTestID, vs...))
}

// TestIDNotIn applies the NotIn predicate on the "test_id" field.
func TestIDNotIn(vs ...uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldTestID, vs...))
}

// TestIDGT applies the GT predicate on the "test_id" field.
func TestIDGT(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldTestID, v))
}

// TestIDGTE applies the GTE predicate on the "test_id" field.
func TestIDGTE(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldTestID, v))
}

// TestIDLT applies the LT predicate on the "test_id" field.
func TestIDLT(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldTestID, v))
}

// TestIDLTE applies the LTE predicate on the "test_id" field.
func TestIDLTE(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldTestID, v))
}

// PriceEQ applies the EQ predicate on the "price" field.
func PriceEQ(v int64) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldPrice, v))
}

// PriceNEQ applies the NEQ predicate on the "price" field.
func PriceNEQ(v int64) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldPrice, v))
}

// PriceIn applies the In predicate on the "price" field.
func PriceIn(vs ...int64) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldPrice, vs...))
}

// PriceNotIn applies the NotIn predicate on the "price" field.
func PriceNotIn(vs ...int64) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldPrice, vs...))
}

// PriceGT applies the GT predicate on the "price" field.
func PriceGT(v int64) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldPrice, v))
}

// PriceGTE applies the GTE predicate on the "price" field.
func PriceGTE(v int64) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldPrice, v))
}

// PriceLT applies the LT predicate on the "price" field.
func PriceLT(v int64) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldPrice, v))
}

// PriceLTE applies the LTE predicate on the "price" field.
func PriceLTE(v int64) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldPrice, v))
}

// ResultValueEQ applies the EQ predicate on the "result_value" field.
func ResultValueEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldResultValue, v))
}

// ResultValueNEQ applies the NEQ predicate on the "result_value" field.
func ResultValueNEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldResultValue, v))
}

// ResultValueIn applies the In predicate on the "result_value" field.
func ResultValueIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldResultValue, vs...))
}

// ResultValueNotIn applies the NotIn predicate on the "result_value" field.
func ResultValueNotIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldResultValue, vs...))
}

// ResultValueGT applies the GT predicate on the "result_value" field.
func ResultValueGT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldResultValue, v))
}

// ResultValueGTE applies the GTE predicate on the "result_value" field.
func ResultValueGTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldResultValue, v))
}

// ResultValueLT applies the LT predicate on the "result_value" field.
func ResultValueLT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldResultValue, v))
}

// ResultValueLTE applies the LTE predicate on the "result_value" field.
func ResultValueLTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldResultValue, v))
}

// ResultValueContains applies the Contains predicate on the "result_value" field.
func ResultValueContains(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContains(FieldResultValue, v))
}

// ResultValueHasPrefix applies the HasPrefix predicate on the "result_value" field.
func ResultValueHasPrefix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasPrefix(FieldResultValue, v))
}

// ResultValueHasSuffix applies the HasSuffix predicate on the "result_value" field.
func ResultValueHasSuffix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasSuffix(FieldResultValue, v))
}

// ResultValueIsNil applies the IsNil predicate on the "result_value" field.
func ResultValueIsNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldIsNull(FieldResultValue))
}

// ResultValueNotNil applies the NotNil predicate on the "result_value" field.
func ResultValueNotNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldNotNull(FieldResultValue))
}

// ResultValueEqualFold applies the EqualFold predicate on the "result_value" field.
func ResultValueEqualFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEqualFold(FieldResultValue, v))
}

// ResultValueContainsFold applies the ContainsFold predicate on the "result_value" field.
func ResultValueContainsFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContainsFold(FieldResultValue, v))
}

// UnitEQ applies the EQ predicate on the "unit" field.
func UnitEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldUnit, v))
}

// UnitNEQ applies the NEQ predicate on the "unit" field.
func UnitNEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldUnit, v))
}

// UnitIn applies the In predicate on the "unit" field.
func UnitIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldUnit, vs...))
}

// UnitNotIn applies the NotIn predicate on the "unit" field.
func UnitNotIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldUnit, vs...))
}

// UnitGT applies the GT predicate on the "unit" field.
func UnitGT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldUnit, v))
}

// UnitGTE applies the GTE predicate on the "unit" field.
func UnitGTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldUnit, v))
}

// UnitLT applies the LT predicate on the "unit" field.
func UnitLT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldUnit, v))
}

// UnitLTE applies the LTE predicate on the "unit" field.
func UnitLTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldUnit, v))
}

// UnitContains applies the Contains predicate on the "unit" field.
func UnitContains(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContains(FieldUnit, v))
}

// UnitHasPrefix applies the HasPrefix predicate on the "unit" field.
func UnitHasPrefix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasPrefix(FieldUnit, v))
}

// UnitHasSuffix applies the HasSuffix predicate on the "unit" field.
func UnitHasSuffix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasSuffix(FieldUnit, v))
}

// UnitIsNil applies the IsNil predicate on the "unit" field.
func UnitIsNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldIsNull(FieldUnit))
}

// UnitNotNil applies the NotNil predicate on the "unit" field.
func UnitNotNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldNotNull(FieldUnit))
}

// UnitEqualFold applies the EqualFold predicate on the "unit" field.
func UnitEqualFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEqualFold(FieldUnit, v))
}

// UnitContainsFold applies the ContainsFold predicate on the "unit" field.
func UnitContainsFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContainsFold(FieldUnit, v))
}

// AbnormalEQ applies the EQ predicate on the "abnormal" field.
func AbnormalEQ(v bool) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldAbnormal, v))
}

// AbnormalNEQ applies the NEQ predicate on the "abnormal" field.
func AbnormalNEQ(v bool) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldAbnormal, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldStatus, vs...))
}

// EnteredByEQ applies the EQ predicate on the "entered_by" field.
func EnteredByEQ(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldEnteredBy, v))
}

// EnteredByNEQ applies the NEQ predicate on the "entered_by" field.
func EnteredByNEQ(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldEnteredBy, v))
}

// EnteredByIn applies the In predicate on the "entered_by" field.
func EnteredByIn(vs ...uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldEnteredBy, vs...))
}

// EnteredByNotIn applies the NotIn predicate on the "entered_by" field.
func EnteredByNotIn(vs ...uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldEnteredBy, vs...))
}

// EnteredByGT applies the GT predicate on the "entered_by" field.
func EnteredByGT(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldEnteredBy, v))
}

// EnteredByGTE applies the GTE predicate on the "entered_by" field.
func EnteredByGTE(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldEnteredBy, v))
}

// EnteredByLT applies the LT predicate on the "entered_by" field.
func EnteredByLT(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldEnteredBy, v))
}

// EnteredByLTE applies the LTE predicate on the "entered_by" field.
func EnteredByLTE(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldEnteredBy, v))
}

// EnteredByIsNil applies the IsNil predicate on the "entered_by" field.
func EnteredByIsNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldIsNull(FieldEnteredBy))
}

// EnteredByNotNil applies the NotNil predicate on the "entered_by" field.
func EnteredByNotNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldNotNull(FieldEnteredBy))
}

// VerifiedByEQ applies the EQ predicate on the "verified_by" field.
func VerifiedByEQ(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldVerifiedBy, v))
}

// VerifiedByNEQ applies the NEQ predicate on the "verified_by" field.
func VerifiedByNEQ(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldVerifiedBy, v))
}

// VerifiedByIn applies the In predicate on the "verified_by" field.
func VerifiedByIn(vs ...uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldVerifiedBy, vs...))
}

// VerifiedByNotIn applies the NotIn predicate on the "verified_by" field.
func VerifiedByNotIn(vs ...uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldVerifiedBy, vs...))
}

// VerifiedByGT applies the GT predicate on the "verified_by" field.
func VerifiedByGT(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldVerifiedBy, v))
}

// VerifiedByGTE applies the GTE predicate on the "verified_by" field.
func VerifiedByGTE(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldVerifiedBy, v))
}

// VerifiedByLT applies the LT predicate on the "verified_by" field.
func VerifiedByLT(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldVerifiedBy, v))
}

// VerifiedByLTE applies the LTE predicate on the "verified_by" field.
func VerifiedByLTE(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldVerifiedBy, v))
}

// VerifiedByIsNil applies the IsNil predicate on the "verified_by" field.
func VerifiedByIsNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldIsNull(FieldVerifiedBy))
}

// VerifiedByNotNil applies the NotNil predicate on the "verified_by" field.
func VerifiedByNotNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldNotNull(FieldVerifiedBy))
}

// VerifiedAtEQ applies the EQ predicate on the "verified_at" field.
func VerifiedAtEQ(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldVerifiedAt, v))
}

// VerifiedAtNEQ applies the NEQ predicate on the "verified_at" field.
func VerifiedAtNEQ(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldVerifiedAt, v))
}

// VerifiedAtIn applies the In predicate on the "verified_at" field.
func VerifiedAtIn(vs ...time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldVerifiedAt, vs...))
}

// VerifiedAtNotIn applies the NotIn predicate on the "verified_at" field.
func VerifiedAtNotIn(vs ...time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldVerifiedAt, vs...))
}

// VerifiedAtGT applies the GT predicate on the "verified_at" field.
func VerifiedAtGT(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldVerifiedAt, v))
}

// VerifiedAtGTE applies the GTE predicate on the "verified_at" field.
func VerifiedAtGTE(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldVerifiedAt, v))
}

// VerifiedAtLT applies the LT predicate on the "verified_at" field.
func VerifiedAtLT(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldVerifiedAt, v))
}

// VerifiedAtLTE applies the LTE predicate on the "verified_at" field.
func VerifiedAtLTE(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldVerifiedAt, v))
}

// VerifiedAtIsNil applies the IsNil predicate on the "verified_at" field.
func VerifiedAtIsNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldIsNull(FieldVerifiedAt))
}

// VerifiedAtNotNil applies the NotNil predicate on the "verified_at" field.
func VerifiedAtNotNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldNotNull(FieldVerifiedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LabResult) predicate.LabResult {
	return predicate.LabResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LabResult) predicate.LabResult {
	return predicate.LabResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LabResult) predicate.LabResult {
	return predicate.LabResult(sql.NotPredicates(p))
}
