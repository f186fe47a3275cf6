// Code generated by ent, DO NOT EDIT.

package labtest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/niramoy/niramoy_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.LabTest {
	return predicate.LabTest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.LabTest {
	return predicate.LabTest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.LabTest {
	return predicate.LabTest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.LabTest {
	return predicate.LabTest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.LabTest {
	return predicate.LabTest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.LabTest {
	return predicate.LabTest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.LabTest {
	return predicate.LabTest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.LabTest {
	return predicate.LabTest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.LabTest {
	return predicate.LabTest(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LabTest {
	return predicate.LabTest(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LabTest {
	return predicate.LabTest(sql.FieldEQ(FieldUpdatedAt, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldEQ(FieldName, v))
}

// Code applies equality check predicate on the "code" field. It's identical to CodeEQ.
func Code(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldEQ(FieldCode, v))
}

// Price applies equality check predicate on the "price" field. It's identical to PriceEQ.
func Price(v int64) predicate.LabTest {
	return predicate.LabTest(sql.FieldEQ(FieldPrice, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldEQ(FieldCategory, v))
}

// SampleType applies equality check predicate on the "sample_type" field. It's identical to SampleTypeEQ.
func SampleType(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldEQ(FieldSampleType, v))
}

// NormalRange applies equality check predicate on the "normal_range" field. It's identical to NormalRangeEQ.
func NormalRange(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldEQ(FieldNormalRange, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.LabTest {
	return predicate.LabTest(sql.FieldEQ(FieldActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LabTest {
	return predicate.LabTest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LabTest {
	return predicate.LabTest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LabTest {
	return predicate.LabTest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LabTest {
	return predicate.LabTest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LabTest {
	return predicate.LabTest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LabTest {
	return predicate.LabTest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LabTest {
	return predicate.LabTest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LabTest {
	return predicate.LabTest(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LabTest {
	return predicate.LabTest(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LabTest {
	return predicate.LabTest(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LabTest {
	return predicate.LabTest(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LabTest {
	return predicate.LabTest(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LabTest {
	return predicate.LabTest(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LabTest {
	return predicate.LabTest(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LabTest {
	return predicate.LabTest(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LabTest {
	return predicate.LabTest(sql.FieldLTE(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.LabTest {
	return predicate.LabTest(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.LabTest {
	return predicate.LabTest(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldContainsFold(FieldName, v))
}

// CodeEQ applies the EQ predicate on the "code" field.
func CodeEQ(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldEQ(FieldCode, v))
}

// CodeNEQ applies the NEQ predicate on the "code" field.
func CodeNEQ(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldNEQ(FieldCode, v))
}

// CodeIn applies the In predicate on the "code" field.
func CodeIn(vs ...string) predicate.LabTest {
	return predicate.LabTest(sql.FieldIn(FieldCode, vs...))
}

// CodeNotIn applies the NotIn predicate on the "code" field.
func CodeNotIn(vs ...string) predicate.LabTest {
	return predicate.LabTest(sql.FieldNotIn(FieldCode, vs...))
}

// CodeGT applies the GT predicate on the "code" field.
func CodeGT(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldGT(FieldCode, v))
}

// CodeGTE applies the GTE predicate on the "code" field.
func CodeGTE(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldGTE(FieldCode, v))
}

// CodeLT applies the LT predicate on the "code" field.
func CodeLT(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldLT(FieldCode, v))
}

// CodeLTE applies the LTE predicate on the "code" field.
func CodeLTE(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldLTE(FieldCode, v))
}

// CodeContains applies the Contains predicate on the "code" field.
func CodeContains(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldContains(FieldCode, v))
}

// CodeHasPrefix applies the HasPrefix predicate on the "code" field.
func CodeHasPrefix(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldHasPrefix(FieldCode, v))
}

// CodeHasSuffix applies the HasSuffix predicate on the "code" field.
func CodeHasSuffix(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldHasSuffix(FieldCode, v))
}

// CodeEqualFold applies the EqualFold predicate on the "code" field.
func CodeEqualFold(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldEqualFold(FieldCode, v))
}

// CodeContainsFold applies the ContainsFold predicate on the "code" field.
func CodeContainsFold(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldContainsFold(FieldCode, v))
}

// PriceEQ applies the EQ predicate on the "price" field.
func PriceEQ(v int64) predicate.LabTest {
	return predicate.LabTest(sql.FieldEQ(FieldPrice, v))
}

// PriceNEQ applies the NEQ predicate on the "price" field.
func PriceNEQ(v int64) predicate.LabTest {
	return predicate.LabTest(sql.FieldNEQ(FieldPrice, v))
}

// PriceIn applies the In predicate on the "price" field.
func PriceIn(vs ...int64) predicate.LabTest {
	return predicate.LabTest(sql.FieldIn(FieldPrice, vs...))
}

// PriceNotIn applies the NotIn predicate on the "price" field.
func PriceNotIn(vs ...int64) predicate.LabTest {
	return predicate.LabTest(sql.FieldNotIn(FieldPrice, vs...))
}

// PriceGT applies the GT predicate on the "price" field.
func PriceGT(v int64) predicate.LabTest {
	return predicate.LabTest(sql.FieldGT(FieldPrice, v))
}

// PriceGTE applies the GTE predicate on the "price" field.
func PriceGTE(v int64) predicate.LabTest {
	return predicate.LabTest(sql.FieldGTE(FieldPrice, v))
}

// PriceLT applies the LT predicate on the "price" field.
func PriceLT(v int64) predicate.LabTest {
	return predicate.LabTest(sql.FieldLT(FieldPrice, v))
}

// PriceLTE applies the LTE predicate on the "price" field.
func PriceLTE(v int64) predicate.LabTest {
	return predicate.LabTest(sql.FieldLTE(FieldPrice, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.LabTest {
	return predicate.LabTest(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.LabTest {
	return predicate.LabTest(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.LabTest {
	return predicate.LabTest(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.LabTest {
	return predicate.LabTest(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldContainsFold(FieldCategory, v))
}

// SampleTypeEQ applies the EQ predicate on the "sample_type" field.
func SampleTypeEQ(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldEQ(FieldSampleType, v))
}

// SampleTypeNEQ applies the NEQ predicate on the "sample_type" field.
func SampleTypeNEQ(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldNEQ(FieldSampleType, v))
}

// SampleTypeIn applies the In predicate on the "sample_type" field.
func SampleTypeIn(vs ...string) predicate.LabTest {
	return predicate.LabTest(sql.FieldIn(FieldSampleType, vs...))
}

// SampleTypeNotIn applies the NotIn predicate on the "sample_type" field.
func SampleTypeNotIn(vs ...string) predicate.LabTest {
	return predicate.LabTest(sql.FieldNotIn(FieldSampleType, vs...))
}

// SampleTypeGT applies the GT predicate on the "sample_type" field.
func SampleTypeGT(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldGT(FieldSampleType, v))
}

// SampleTypeGTE applies the GTE predicate on the "sample_type" field.
func SampleTypeGTE(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldGTE(FieldSampleType, v))
}

// SampleTypeLT applies the LT predicate on the "sample_type" field.
func SampleTypeLT(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldLT(FieldSampleType, v))
}

// SampleTypeLTE applies the LTE predicate on the "sample_type" field.
func SampleTypeLTE(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldLTE(FieldSampleType, v))
}

// SampleTypeContains applies the Contains predicate on the "sample_type" field.
func SampleTypeContains(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldContains(FieldSampleType, v))
}

// SampleTypeHasPrefix applies the HasPrefix predicate on the "sample_type" field.
func SampleTypeHasPrefix(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldHasPrefix(FieldSampleType, v))
}

// SampleTypeHasSuffix applies the HasSuffix predicate on the "sample_type" field.
func SampleTypeHasSuffix(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldHasSuffix(FieldSampleType, v))
}

// SampleTypeIsNil applies the IsNil predicate on the "sample_type" field.
func SampleTypeIsNil() predicate.LabTest {
	return predicate.LabTest(sql.FieldIsNull(FieldSampleType))
}

// SampleTypeNotNil applies the NotNil predicate on the "sample_type" field.
func SampleTypeNotNil() predicate.LabTest {
	return predicate.LabTest(sql.FieldNotNull(FieldSampleType))
}

// SampleTypeEqualFold applies the EqualFold predicate on the "sample_type" field.
func SampleTypeEqualFold(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldEqualFold(FieldSampleType, v))
}

// SampleTypeContainsFold applies the ContainsFold predicate on the "sample_type" field.
func SampleTypeContainsFold(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldContainsFold(FieldSampleType, v))
}

// NormalRangeEQ applies the EQ predicate on the "normal_range" field.
func NormalRangeEQ(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldEQ(FieldNormalRange, v))
}

// NormalRangeNEQ applies the NEQ predicate on the "normal_range" field.
func NormalRangeNEQ(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldNEQ(FieldNormalRange, v))
}

// NormalRangeIn applies the In predicate on the "normal_range" field.
func NormalRangeIn(vs ...string) predicate.LabTest {
	return predicate.LabTest(sql.FieldIn(FieldNormalRange, vs...))
}

// NormalRangeNotIn applies the NotIn predicate on the "normal_range" field.
func NormalRangeNotIn(vs ...string) predicate.LabTest {
	return predicate.LabTest(sql.FieldNotIn(FieldNormalRange, vs...))
}

// NormalRangeGT applies the GT predicate on the "normal_range" field.
func NormalRangeGT(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldGT(FieldNormalRange, v))
}

// NormalRangeGTE applies the GTE predicate on the "normal_range" field.
func NormalRangeGTE(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldGTE(FieldNormalRange, v))
}

// NormalRangeLT applies the LT predicate on the "normal_range" field.
func NormalRangeLT(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldLT(FieldNormalRange, v))
}

// NormalRangeLTE applies the LTE predicate on the "normal_range" field.
func NormalRangeLTE(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldLTE(FieldNormalRange, v))
}

// NormalRangeContains applies the Contains predicate on the "normal_range" field.
func NormalRangeContains(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldContains(FieldNormalRange, v))
}

// NormalRangeHasPrefix applies the HasPrefix predicate on the "normal_range" field.
func NormalRangeHasPrefix(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldHasPrefix(FieldNormalRange, v))
}

// NormalRangeHasSuffix applies the HasSuffix predicate on the "normal_range" field.
func NormalRangeHasSuffix(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldHasSuffix(FieldNormalRange, v))
}

// NormalRangeIsNil applies the IsNil predicate on the "normal_range" field.
func NormalRangeIsNil() predicate.LabTest {
	return predicate.LabTest(sql.FieldIsNull(FieldNormalRange))
}

// NormalRangeNotNil applies the NotNil predicate on the "normal_range" field.
func NormalRangeNotNil() predicate.LabTest {
	return predicate.LabTest(sql.FieldNotNull(FieldNormalRange))
}

// NormalRangeEqualFold applies the EqualFold predicate on the "normal_range" field.
func NormalRangeEqualFold(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldEqualFold(FieldNormalRange, v))
}

// NormalRangeContainsFold applies the ContainsFold predicate on the "normal_range" field.
func NormalRangeContainsFold(v string) predicate.LabTest {
	return predicate.LabTest(sql.FieldContainsFold(FieldNormalRange, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.LabTest {
	return predicate.LabTest(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.LabTest {
	return predicate.LabTest(sql.FieldNEQ(FieldActive, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LabTest) predicate.LabTest {
	return predicate.LabTest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LabTest) predicate.LabTest {
	return predicate.LabTest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LabTest) predicate.LabTest {
	return predicate.LabTest(sql.NotPredicates(p))
}
