// Code generated by ent, DO NOT EDIT.

package canteensaleitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/niramoy/niramoy_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldEQ(FieldCreatedAt, v))
}

// SaleID applies equality check predicate on the "sale_id" field. It's identical to SaleIDEQ.
func SaleID(v uuid.UUID) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldEQ(FieldSaleID, v))
}

// ItemID applies equality check predicate on the "item_id" field. It's identical to ItemIDEQ.
func ItemID(v uuid.UUID) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldEQ(FieldItemID, v))
}

// Quantity applies equality check predicate on the "quantity" field. It's identical to QuantityEQ.
func Quantity(v int) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldEQ(FieldQuantity, v))
}

// UnitPrice applies equality check predicate on the "unit_price" field. It's identical to UnitPriceEQ.
func UnitPrice(v int64) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldEQ(FieldUnitPrice, v))
}

// Subtotal applies equality check predicate on the "subtotal" field. It's identical to SubtotalEQ.
func Subtotal(v int64) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldEQ(FieldSubtotal, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldLTE(FieldCreatedAt, v))
}

// SaleIDEQ applies the EQ predicate on the "sale_id" field.
func SaleIDEQ(v uuid.UUID) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldEQ(FieldSaleID, v))
}

// SaleIDNEQ applies the NEQ predicate on the "sale_id" field.
func SaleIDNEQ(v uuid.UUID) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldNEQ(FieldSaleID, v))
}

// SaleIDIn applies the In predicate on the "sale_id" field.
func SaleIDIn(vs ...uuid.UUID) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldIn(FieldSaleID, vs...))
}

// SaleIDNotIn applies the NotIn predicate on the "sale_id" field.
func SaleIDNotIn(vs ...uuid.UUID) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldNotIn(FieldSaleID, vs...))
}

// SaleIDGT applies the GT predicate on the "sale_id" field.
func SaleIDGT(v uuid.UUID) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldGT(FieldSaleID, v))
}

// SaleIDGTE applies the GTE predicate on the "sale_id" field.
func SaleIDGTE(v uuid.UUID) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldGTE(FieldSaleID, v))
}

// SaleIDLT applies the LT predicate on the "sale_id" field.
func SaleIDLT(v uuid.UUID) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldLT(FieldSaleID, v))
}

// SaleIDLTE applies the LTE predicate on the "sale_id" field.
func SaleIDLTE(v uuid.UUID) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldLTE(FieldSaleID, v))
}

// ItemIDEQ applies the EQ predicate on the "item_id" field.
func ItemIDEQ(v uuid.UUID) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldEQ(FieldItemID, v))
}

// ItemIDNEQ applies the NEQ predicate on the "item_id" field.
func ItemIDNEQ(v uuid.UUID) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldNEQ(FieldItemID, v))
}

// ItemIDIn applies the In predicate on the "item_id" field.
func ItemIDIn(vs ...uuid.UUID) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldIn(FieldItemID, vs...))
}

// ItemIDNotIn applies the NotIn predicate on the "item_id" field.
func ItemIDNotIn(vs ...uuid.UUID) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldNotIn(FieldItemID, vs...))
}

// ItemIDGT applies the GT predicate on the "item_id" field.
func ItemIDGT(v uuid.UUID) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldGT(FieldItemID, v))
}

// ItemIDGTE applies the GTE predicate on the "item_id" field.
func ItemIDGTE(v uuid.UUID) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldGTE(FieldItemID, v))
}

// ItemIDLT applies the LT predicate on the "item_id" field.
func ItemIDLT(v uuid.UUID) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldLT(FieldItemID, v))
}

// ItemIDLTE applies the LTE predicate on the "item_id" field.
func ItemIDLTE(v uuid.UUID) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldLTE(FieldItemID, v))
}

// QuantityEQ applies the EQ predicate on the "quantity" field.
func QuantityEQ(v int) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldEQ(FieldQuantity, v))
}

// QuantityNEQ applies the NEQ predicate on the "quantity" field.
func QuantityNEQ(v int) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldNEQ(FieldQuantity, v))
}

// QuantityIn applies the In predicate on the "quantity" field.
func QuantityIn(vs ...int) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldIn(FieldQuantity, vs...))
}

// QuantityNotIn applies the NotIn predicate on the "quantity" field.
func QuantityNotIn(vs ...int) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldNotIn(FieldQuantity, vs...))
}

// QuantityGT applies the GT predicate on the "quantity" field.
func QuantityGT(v int) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldGT(FieldQuantity, v))
}

// QuantityGTE applies the GTE predicate on the "quantity" field.
func QuantityGTE(v int) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldGTE(FieldQuantity, v))
}

// QuantityLT applies the LT predicate on the "quantity" field.
func QuantityLT(v int) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldLT(FieldQuantity, v))
}

// QuantityLTE applies the LTE predicate on the "quantity" field.
func QuantityLTE(v int) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldLTE(FieldQuantity, v))
}

// UnitPriceEQ applies the EQ predicate on the "unit_price" field.
func UnitPriceEQ(v int64) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldEQ(FieldUnitPrice, v))
}

// UnitPriceNEQ applies the NEQ predicate on the "unit_price" field.
func UnitPriceNEQ(v int64) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldNEQ(FieldUnitPrice, v))
}

// UnitPriceIn applies the In predicate on the "unit_price" field.
func UnitPriceIn(vs ...int64) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldIn(FieldUnitPrice, vs...))
}

// UnitPriceNotIn applies the NotIn predicate on the "unit_price" field.
func UnitPriceNotIn(vs ...int64) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldNotIn(FieldUnitPrice, vs...))
}

// UnitPriceGT applies the GT predicate on the "unit_price" field.
func UnitPriceGT(v int64) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldGT(FieldUnitPrice, v))
}

// UnitPriceGTE applies the GTE predicate on the "unit_price" field.
func UnitPriceGTE(v int64) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldGTE(FieldUnitPrice, v))
}

// UnitPriceLT applies the LT predicate on the "unit_price" field.
func UnitPriceLT(v int64) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldLT(FieldUnitPrice, v))
}

// UnitPriceLTE applies the LTE predicate on the "unit_price" field.
func UnitPriceLTE(v int64) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldLTE(FieldUnitPrice, v))
}

// SubtotalEQ applies the EQ predicate on the "subtotal" field.
func SubtotalEQ(v int64) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldEQ(FieldSubtotal, v))
}

// SubtotalNEQ applies the NEQ predicate on the "subtotal" field.
func SubtotalNEQ(v int64) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldNEQ(FieldSubtotal, v))
}

// SubtotalIn applies the In predicate on the "subtotal" field.
func SubtotalIn(vs ...int64) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldIn(FieldSubtotal, vs...))
}

// SubtotalNotIn applies the NotIn predicate on the "subtotal" field.
func SubtotalNotIn(vs ...int64) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldNotIn(FieldSubtotal, vs...))
}

// SubtotalGT applies the GT predicate on the "subtotal" field.
func SubtotalGT(v int64) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldGT(FieldSubtotal, v))
}

// SubtotalGTE applies the GTE predicate on the "subtotal" field.
func SubtotalGTE(v int64) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldGTE(FieldSubtotal, v))
}

// SubtotalLT applies the LT predicate on the "subtotal" field.
func SubtotalLT(v int64) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldLT(FieldSubtotal, v))
}

// SubtotalLTE applies the LTE predicate on the "subtotal" field.
func SubtotalLTE(v int64) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.FieldLTE(FieldSubtotal, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CanteenSaleItem) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CanteenSaleItem) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CanteenSaleItem) predicate.CanteenSaleItem {
	return predicate.CanteenSaleItem(sql.NotPredicates(p))
}
