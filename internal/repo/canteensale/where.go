// Code generated by ent, DO NOT EDIT.

package canteensale

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/niramoy/niramoy_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldEQ(FieldUpdatedAt, v))
}

// SaleNumber applies equality check predicate on the "sale_number" field. It's identical to SaleNumberEQ.
func SaleNumber(v string) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldEQ(FieldSaleNumber, v))
}

// TotalAmount applies equality check predicate on the "total_amount" field. It's identical to TotalAmountEQ.
func TotalAmount(v int64) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldEQ(FieldTotalAmount, v))
}

// AmountPaid applies equality check predicate on the "amount_paid" field. It's identical to AmountPaidEQ.
func AmountPaid(v int64) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldEQ(FieldAmountPaid, v))
}

// SoldBy applies equality check predicate on the "sold_by" field. It's identical to SoldByEQ.
func SoldBy(v uuid.UUID) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldEQ(FieldSoldBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldLTE(FieldUpdatedAt, v))
}

// SaleNumberEQ applies the EQ predicate on the "sale_number" field.
func SaleNumberEQ(v string) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldEQ(FieldSaleNumber, v))
}

// SaleNumberNEQ applies the NEQ predicate on the "sale_number" field.
func SaleNumberNEQ(v string) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldNEQ(FieldSaleNumber, v))
}

// SaleNumberIn applies the In predicate on the "sale_number" field.
func SaleNumberIn(vs ...string) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldIn(FieldSaleNumber, vs...))
}

// SaleNumberNotIn applies the NotIn predicate on the "sale_number" field.
func SaleNumberNotIn(vs ...string) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldNotIn(FieldSaleNumber, vs...))
}

// SaleNumberGT applies the GT predicate on the "sale_number" field.
func SaleNumberGT(v string) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldGT(FieldSaleNumber, v))
}

// SaleNumberGTE applies the GTE predicate on the "sale_number" field.
func SaleNumberGTE(v string) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldGTE(FieldSaleNumber, v))
}

// SaleNumberLT applies the LT predicate on the "sale_number" field.
func SaleNumberLT(v string) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldLT(FieldSaleNumber, v))
}

// SaleNumberLTE applies the LTE predicate on the "sale_number" field.
func SaleNumberLTE(v string) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldLTE(FieldSaleNumber, v))
}

// SaleNumberContains applies the Contains predicate on the "sale_number" field.
func SaleNumberContains(v string) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldContains(FieldSaleNumber, v))
}

// SaleNumberHasPrefix applies the HasPrefix predicate on the "sale_number" field.
func SaleNumberHasPrefix(v string) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldHasPrefix(FieldSaleNumber, v))
}

// SaleNumberHasSuffix applies the HasSuffix predicate on the "sale_number" field.
func SaleNumberHasSuffix(v string) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldHasSuffix(FieldSaleNumber, v))
}

// SaleNumberEqualFold applies the EqualFold predicate on the "sale_number" field.
func SaleNumberEqualFold(v string) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldEqualFold(FieldSaleNumber, v))
}

// SaleNumberContainsFold applies the ContainsFold predicate on the "sale_number" field.
func SaleNumberContainsFold(v string) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldContainsFold(FieldSaleNumber, v))
}

// TotalAmountEQ applies the EQ predicate on the "total_amount" field.
func TotalAmountEQ(v int64) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldEQ(FieldTotalAmount, v))
}

// TotalAmountNEQ applies the NEQ predicate on the "total_amount" field.
func TotalAmountNEQ(v int64) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldNEQ(FieldTotalAmount, v))
}

// TotalAmountIn applies the In predicate on the "total_amount" field.
func TotalAmountIn(vs ...int64) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldIn(FieldTotalAmount, vs...))
}

// TotalAmountNotIn applies the NotIn predicate on the "total_amount" field.
func TotalAmountNotIn(vs ...int64) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldNotIn(FieldTotalAmount, vs...))
}

// TotalAmountGT applies the GT predicate on the "total_amount" field.
func TotalAmountGT(v int64) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldGT(FieldTotalAmount, v))
}

// TotalAmountGTE applies the GTE predicate on the "total_amount" field.
func TotalAmountGTE(v int64) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldGTE(FieldTotalAmount, v))
}

// TotalAmountLT applies the LT predicate on the "total_amount" field.
func TotalAmountLT(v int64) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldLT(FieldTotalAmount, v))
}

// TotalAmountLTE applies the LTE predicate on the "total_amount" field.
func TotalAmountLTE(v int64) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldLTE(FieldTotalAmount, v))
}

// AmountPaidEQ applies the EQ predicate on the "amount_paid" field.
func AmountPaidEQ(v int64) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldEQ(FieldAmountPaid, v))
}

// AmountPaidNEQ applies the NEQ predicate on the "amount_paid" field.
func AmountPaidNEQ(v int64) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldNEQ(FieldAmountPaid, v))
}

// AmountPaidIn applies the In predicate on the "amount_paid" field.
func AmountPaidIn(vs ...int64) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldIn(FieldAmountPaid, vs...))
}

// AmountPaidNotIn applies the NotIn predicate on the "amount_paid" field.
func AmountPaidNotIn(vs ...int64) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldNotIn(FieldAmountPaid, vs...))
}

// AmountPaidGT applies the GT predicate on the "amount_paid" field.
func AmountPaidGT(v int64) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldGT(FieldAmountPaid, v))
}

// AmountPaidGTE applies the GTE predicate on the "amount_paid" field.
func AmountPaidGTE(v int64) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldGTE(FieldAmountPaid, v))
}

// AmountPaidLT applies the LT predicate on the "amount_paid" field.
func AmountPaidLT(v int64) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldLT(FieldAmountPaid, v))
}

// AmountPaidLTE applies the LTE predicate on the "amount_paid" field.
func AmountPaidLTE(v int64) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldLTE(FieldAmountPaid, v))
}

// SoldByEQ applies the EQ predicate on the "sold_by" field.
func SoldByEQ(v uuid.UUID) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldEQ(FieldSoldBy, v))
}

// SoldByNEQ applies the NEQ predicate on the "sold_by" field.
func SoldByNEQ(v uuid.UUID) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldNEQ(FieldSoldBy, v))
}

// SoldByIn applies the In predicate on the "sold_by" field.
func SoldByIn(vs ...uuid.UUID) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldIn(FieldSoldBy, vs...))
}

// SoldByNotIn applies the NotIn predicate on the "sold_by" field.
func SoldByNotIn(vs ...uuid.UUID) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldNotIn(FieldSoldBy, vs...))
}

// SoldByGT applies the GT predicate on the "sold_by" field.
func SoldByGT(v uuid.UUID) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldGT(FieldSoldBy, v))
}

// SoldByGTE applies the GTE predicate on the "sold_by" field.
func SoldByGTE(v uuid.UUID) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldGTE(FieldSoldBy, v))
}

// SoldByLT applies the LT predicate on the "sold_by" field.
func SoldByLT(v uuid.UUID) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldLT(FieldSoldBy, v))
}

// SoldByLTE applies the LTE predicate on the "sold_by" field.
func SoldByLTE(v uuid.UUID) predicate.CanteenSale {
	return predicate.CanteenSale(sql.FieldLTE(FieldSoldBy, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CanteenSale) predicate.CanteenSale {
	return predicate.CanteenSale(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CanteenSale) predicate.CanteenSale {
	return predicate.CanteenSale(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CanteenSale) predicate.CanteenSale {
	return predicate.CanteenSale(sql.NotPredicates(p))
}
