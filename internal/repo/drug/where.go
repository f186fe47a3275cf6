// Code generated by ent, DO NOT EDIT.

package drug

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/niramoy/niramoy_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Drug {
	return predicate.Drug(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Drug {
	return predicate.Drug(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Drug {
	return predicate.Drug(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Drug {
	return predicate.Drug(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Drug {
	return predicate.Drug(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Drug {
	return predicate.Drug(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Drug {
	return predicate.Drug(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Drug {
	return predicate.Drug(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Drug {
	return predicate.Drug(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Drug {
	return predicate.Drug(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Drug {
	return predicate.Drug(sql.FieldEQ(FieldUpdatedAt, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Drug {
	return predicate.Drug(sql.FieldEQ(FieldName, v))
}

// GenericName applies equality check predicate on the "generic_name" field. It's identical to GenericNameEQ.
func GenericName(v string) predicate.Drug {
	return predicate.Drug(sql.FieldEQ(FieldGenericName, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Drug {
	return predicate.Drug(sql.FieldEQ(FieldCategory, v))
}

// Manufacturer applies equality check predicate on the "manufacturer" field. It's identical to ManufacturerEQ.
func Manufacturer(v string) predicate.Drug {
	return predicate.Drug(sql.FieldEQ(FieldManufacturer, v))
}

// BatchNumber applies equality check predicate on the "batch_number" field. It's identical to BatchNumberEQ.
func BatchNumber(v string) predicate.Drug {
	return predicate.Drug(sql.FieldEQ(FieldBatchNumber, v))
}

// UnitPrice applies equality check predicate on the "unit_price" field. It's identical to UnitPriceEQ.
func UnitPrice(v int64) predicate.Drug {
	return predicate.Drug(sql.FieldEQ(FieldUnitPrice, v))
}

// StockQuantity applies equality check predicate on the "stock_quantity" field. It's identical to StockQuantityEQ.
func StockQuantity(v int) predicate.Drug {
	return predicate.Drug(sql.FieldEQ(FieldStockQuantity, v))
}

// ReorderLevel applies equality check predicate on the "reorder_level" field. It's identical to ReorderLevelEQ.
func ReorderLevel(v int) predicate.Drug {
	return predicate.Drug(sql.FieldEQ(FieldReorderLevel, v))
}

// ExpiryDate applies equality check predicate on the "expiry_date" field. It's identical to ExpiryDateEQ.
func ExpiryDate(v time.Time) predicate.Drug {
	return predicate.Drug(sql.FieldEQ(FieldExpiryDate, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.Drug {
	return predicate.Drug(sql.FieldEQ(FieldActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Drug {
	return predicate.Drug(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Drug {
	return predicate.Drug(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Drug {
	return predicate.Drug(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Drug {
	return predicate.Drug(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Drug {
	return predicate.Drug(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Drug {
	return predicate.Drug(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Drug {
	return predicate.Drug(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Drug {
	return predicate.Drug(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Drug {
	return predicate.Drug(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Drug {
	return predicate.Drug(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Drug {
	return predicate.Drug(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Drug {
	return predicate.Drug(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Drug {
	return predicate.Drug(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Drug {
	return predicate.Drug(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Drug {
	return predicate.Drug(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Drug {
	return predicate.Drug(sql.FieldLTE(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Drug {
	return predicate.Drug(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Drug {
	return predicate.Drug(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Drug {
	return predicate.Drug(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Drug {
	return predicate.Drug(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Drug {
	return predicate.Drug(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Drug {
	return predicate.Drug(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Drug {
	return predicate.Drug(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Drug {
	return predicate.Drug(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Drug {
	return predicate.Drug(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Drug {
	return predicate.Drug(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Drug {
	return predicate.Drug(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Drug {
	return predicate.Drug(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Drug {
	return predicate.Drug(sql.FieldContainsFold(FieldName, v))
}

// GenericNameEQ applies the EQ predicate on the "generic_name" field.
func GenericNameEQ(v string) predicate.Drug {
	return predicate.Drug(sql.FieldEQ(FieldGenericName, v))
}

// GenericNameNEQ applies the NEQ predicate on the "generic_name" field.
func GenericNameNEQ(v string) predicate.Drug {
	return predicate.Drug(sql.FieldNEQ(FieldGenericName, v))
}

// GenericNameIn applies the In predicate on the "generic_name" field.
func GenericNameIn(vs ...string) predicate.Drug {
	return predicate.Drug(sql.FieldIn(FieldGenericName, vs...))
}

// GenericNameNotIn applies the NotIn predicate on the "generic_name" field.
func GenericNameNotIn(vs ...string) predicate.Drug {
	return predicate.Drug(sql.FieldNotIn(FieldGenericName, vs...))
}

// GenericNameGT applies the GT predicate on the "generic_name" field.
func GenericNameGT(v string) predicate.Drug {
	return predicate.Drug(sql.FieldGT(FieldGenericName, v))
}

// GenericNameGTE applies the GTE predicate on the "generic_name" field.
func GenericNameGTE(v string) predicate.Drug {
	return predicate.Drug(sql.FieldGTE(FieldGenericName, v))
}

// GenericNameLT applies the LT predicate on the "generic_name" field.
func GenericNameLT(v string) predicate.Drug {
	return predicate.Drug(sql.FieldLT(FieldGenericName, v))
}

// GenericNameLTE applies the LTE predicate on the "generic_name" field.
func GenericNameLTE(v string) predicate.Drug {
	return predicate.Drug(sql.FieldLTE(FieldGenericName, v))
}

// GenericNameContains applies the Contains predicate on the "generic_name" field.
func GenericNameContains(v string) predicate.Drug {
	return predicate.Drug(sql.FieldContains(FieldGenericName, v))
}

// GenericNameHasPrefix applies the HasPrefix predicate on the "generic_name" field.
func GenericNameHasPrefix(v string) predicate.Drug {
	return predicate.Drug(sql.FieldHasPrefix(FieldGenericName, v))
}

// GenericNameHasSuffix applies the HasSuffix predicate on the "generic_name" field.
func GenericNameHasSuffix(v string) predicate.Drug {
	return predicate.Drug(sql.FieldHasSuffix(FieldGenericName, v))
}

// GenericNameIsNil applies the IsNil predicate on the "generic_name" field.
func GenericNameIsNil() predicate.Drug {
	return predicate.Drug(sql.FieldIsNull(FieldGenericName))
}

// GenericNameNotNil applies the NotNil predicate on the "generic_name" field.
func GenericNameNotNil() predicate.Drug {
	return predicate.Drug(sql.FieldNotNull(FieldGenericName))
}

// GenericNameEqualFold applies the EqualFold predicate on the "generic_name" field.
func GenericNameEqualFold(v string) predicate.Drug {
	return predicate.Drug(sql.FieldEqualFold(FieldGenericName, v))
}

// GenericNameContainsFold applies the ContainsFold predicate on the "generic_name" field.
func GenericNameContainsFold(v string) predicate.Drug {
	return predicate.Drug(sql.FieldContainsFold(FieldGenericName, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Drug {
	return predicate.Drug(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Drug {
	return predicate.Drug(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Drug {
	return predicate.Drug(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Drug {
	return predicate.Drug(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Drug {
	return predicate.Drug(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Drug {
	return predicate.Drug(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Drug {
	return predicate.Drug(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Drug {
	return predicate.Drug(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Drug {
	return predicate.Drug(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Drug {
	return predicate.Drug(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Drug {
	return predicate.Drug(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.Drug {
	return predicate.Drug(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.Drug {
	return predicate.Drug(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Drug {
	return predicate.Drug(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Drug {
	return predicate.Drug(sql.FieldContainsFold(FieldCategory, v))
}

// ManufacturerEQ applies the EQ predicate on the "manufacturer" field.
func ManufacturerEQ(v string) predicate.Drug {
	return predicate.Drug(sql.FieldEQ(FieldManufacturer, v))
}

// ManufacturerNEQ applies the NEQ predicate on the "manufacturer" field.
func ManufacturerNEQ(v string) predicate.Drug {
	return predicate.Drug(sql.FieldNEQ(FieldManufacturer, v))
}

// ManufacturerIn applies the In predicate on the "manufacturer" field.
func ManufacturerIn(vs ...string) predicate.Drug {
	return predicate.Drug(sql.FieldIn(FieldManufacturer, vs...))
}

// ManufacturerNotIn applies the NotIn predicate on the "manufacturer" field.
func ManufacturerNotIn(vs ...string) predicate.Drug {
	return predicate.Drug(sql.FieldNotIn(FieldManufacturer, vs...))
}

// ManufacturerGT applies the GT predicate on the "manufacturer" field.
func ManufacturerGT(v string) predicate.Drug {
	return predicate.Drug(sql.FieldGT(FieldManufacturer, v))
}

// ManufacturerGTE applies the GTE predicate on the "manufacturer" field.
func ManufacturerGTE(v string) predicate.Drug {
	return predicate.Drug(sql.FieldGTE(FieldManufacturer, v))
}

// ManufacturerLT applies the LT predicate on the "manufacturer" field.
func ManufacturerLT(v string) predicate.Drug {
	return predicate.Drug(sql.FieldLT(FieldManufacturer, v))
}

// ManufacturerLTE applies the LTE predicate on the "manufacturer" field.
func ManufacturerLTE(v string) predicate.Drug {
	return predicate.Drug(sql.FieldLTE(FieldManufacturer, v))
}

// ManufacturerContains applies the Contains predicate on the "manufacturer" field.
func ManufacturerContains(v string) predicate.Drug {
	return predicate.Drug(sql.FieldContains(FieldManufacturer, v))
}

// ManufacturerHasPrefix applies the HasPrefix predicate on the "manufacturer" field.
func ManufacturerHasPrefix(v string) predicate.Drug {
	return predicate.Drug(sql.FieldHasPrefix(FieldManufacturer, v))
}

// ManufacturerHasSuffix applies the HasSuffix predicate on the "manufacturer" field.
func ManufacturerHasSuffix(v string) predicate.Drug {
	return predicate.Drug(sql.FieldHasSuffix(FieldManufacturer, v))
}

// ManufacturerIsNil applies the IsNil predicate on the "manufacturer" field.
func ManufacturerIsNil() predicate.Drug {
	return predicate.Drug(sql.FieldIsNull(FieldManufacturer))
}

// ManufacturerNotNil applies the NotNil predicate on the "manufacturer" field.
func ManufacturerNotNil() predicate.Drug {
	return predicate.Drug(sql.FieldNotNull(FieldManufacturer))
}

// ManufacturerEqualFold applies the EqualFold predicate on the "manufacturer" field.
func ManufacturerEqualFold(v string) predicate.Drug {
	return predicate.Drug(sql.FieldEqualFold(FieldManufacturer, v))
}

// ManufacturerContainsFold applies the ContainsFold predicate on the "manufacturer" field.
func ManufacturerContainsFold(v string) predicate.Drug {
	return predicate.Drug(sql.FieldContainsFold(FieldManufacturer, v))
}

// BatchNumberEQ applies the EQ predicate on the "batch_number" field.
func BatchNumberEQ(v string) predicate.Drug {
	return predicate.Drug(sql.FieldEQ(FieldBatchNumber, v))
}

// BatchNumberNEQ applies the NEQ predicate on the "batch_number" field.
func BatchNumberNEQ(v string) predicate.Drug {
	return predicate.Drug(sql.FieldNEQ(FieldBatchNumber, v))
}

// BatchNumberIn applies the In predicate on the "batch_number" field.
func BatchNumberIn(vs ...string) predicate.Drug {
	return predicate.Drug(sql.FieldIn(FieldBatchNumber, vs...))
}

// BatchNumberNotIn applies the NotIn predicate on the "batch_number" field.
func BatchNumberNotIn(vs ...string) predicate.Drug {
	return predicate.Drug(sql.FieldNotIn(FieldBatchNumber, vs...))
}

// BatchNumberGT applies the GT predicate on the "batch_number" field.
func BatchNumberGT(v string) predicate.Drug {
	return predicate.Drug(sql.FieldGT(FieldBatchNumber, v))
}

// BatchNumberGTE applies the GTE predicate on the "batch_number" field.
func BatchNumberGTE(v string) predicate.Drug {
	return predicate.Drug(sql.FieldGTE(FieldBatchNumber, v))
}

// BatchNumberLT applies the LT predicate on the "batch_number" field.
func BatchNumberLT(v string) predicate.Drug {
	return predicate.Drug(sql.FieldLT(FieldBatchNumber, v))
}

// BatchNumberLTE applies the LTE predicate on the "batch_number" field.
func BatchNumberLTE(v string) predicate.Drug {
	return predicate.Drug(sql.FieldLTE(FieldBatchNumber, v))
}

// BatchNumberContains applies the Contains predicate on the "batch_number" field.
func BatchNumberContains(v string) predicate.Drug {
	return predicate.Drug(sql.FieldContains(FieldBatchNumber, v))
}

// BatchNumberHasPrefix applies the HasPrefix predicate on the "batch_number" field.
func BatchNumberHasPrefix(v string) predicate.Drug {
	return predicate.Drug(sql.FieldHasPrefix(FieldBatchNumber, v))
}

// BatchNumberHasSuffix applies the HasSuffix predicate on the "batch_number" field.
func BatchNumberHasSuffix(v string) predicate.Drug {
	return predicate.Drug(sql.FieldHasSuffix(FieldBatchNumber, v))
}

// BatchNumberIsNil applies the IsNil predicate on the "batch_number" field.
func BatchNumberIsNil() predicate.Drug {
	return predicate.Drug(sql.FieldIsNull(FieldBatchNumber))
}

// BatchNumberNotNil applies the NotNil predicate on the "batch_number" field.
func BatchNumberNotNil() predicate.Drug {
	return predicate.Drug(sql.FieldNotNull(FieldBatchNumber))
}

// BatchNumberEqualFold applies the EqualFold predicate on the "batch_number" field.
func BatchNumberEqualFold(v string) predicate.Drug {
	return predicate.Drug(sql.FieldEqualFold(FieldBatchNumber, v))
}

// BatchNumberContainsFold applies the ContainsFold predicate on the "batch_number" field.
func BatchNumberContainsFold(v string) predicate.Drug {
	return predicate.Drug(sql.FieldContainsFold(FieldBatchNumber, v))
}

// UnitPriceEQ applies the EQ predicate on the "unit_price" field.
func UnitPriceEQ(v int64) predicate.Drug {
	return predicate.Drug(sql.FieldEQ(FieldUnitPrice, v))
}

// UnitPriceNEQ applies the NEQ predicate on the "unit_price" field.
func UnitPriceNEQ(v int64) predicate.Drug {
	return predicate.Drug(sql.FieldNEQ(FieldUnitPrice, v))
}

// UnitPriceIn applies the In predicate on the "unit_price" field.
func UnitPriceIn(vs ...int64) predicate.Drug {
	return predicate.Drug(sql.FieldIn(FieldUnitPrice, vs...))
}

// UnitPriceNotIn applies the NotIn predicate on the "unit_price" field.
func UnitPriceNotIn(vs ...int64) predicate.Drug {
	return predicate.Drug(sql.FieldNotIn(FieldUnitPrice, vs...))
}

// UnitPriceGT applies the GT predicate on the "unit_price" field.
func UnitPriceGT(v int64) predicate.Drug {
	return predicate.Drug(sql.FieldGT(FieldUnitPrice, v))
}

// UnitPriceGTE applies the GTE predicate on the "unit_price" field.
func UnitPriceGTE(v int64) predicate.Drug {
	return predicate.Drug(sql.FieldGTE(FieldUnitPrice, v))
}

// UnitPriceLT applies the LT predicate on the "unit_price" field.
func UnitPriceLT(v int64) predicate.Drug {
	return predicate.Drug(sql.FieldLT(FieldUnitPrice, v))
}

// UnitPriceLTE applies the LTE predicate on the "unit_price" field.
func UnitPriceLTE(v int64) predicate.Drug {
	return predicate.Drug(sql.FieldLTE(FieldUnitPrice, v))
}

// StockQuantityEQ applies the EQ predicate on the "stock_quantity" field.
func StockQuantityEQ(v int) predicate.Drug {
	return predicate.Drug(sql.FieldEQ(FieldStockQuantity, v))
}

// StockQuantityNEQ applies the NEQ predicate on the "stock_quantity" field.
func StockQuantityNEQ(v int) predicate.Drug {
	return predicate.Drug(sql.FieldNEQ(FieldStockQuantity, v))
}

// StockQuantityIn applies the In predicate on the "stock_quantity" field.
func StockQuantityIn(vs ...int) predicate.Drug {
	return predicate.Drug(sql.FieldIn(FieldStockQuantity, vs...))
}

// StockQuantityNotIn applies the NotIn predicate on the "stock_quantity" field.
func StockQuantityNotIn(vs ...int) predicate.Drug {
	return predicate.Drug(sql.FieldNotIn(FieldStockQuantity, vs...))
}

// StockQuantityGT applies the GT predicate on the "stock_quantity" field.
func StockQuantityGT(v int) predicate.Drug {
	return predicate.Drug(sql.FieldGT(FieldStockQuantity, v))
}

// StockQuantityGTE applies the GTE predicate on the "stock_quantity" field.
func StockQuantityGTE(v int) predicate.Drug {
	return predicate.Drug(sql.FieldGTE(FieldStockQuantity, v))
}

// StockQuantityLT applies the LT predicate on the "stock_quantity" field.
func StockQuantityLT(v int) predicate.Drug {
	return predicate.Drug(sql.FieldLT(FieldStockQuantity, v))
}

// StockQuantityLTE applies the LTE predicate on the "stock_quantity" field.
func StockQuantityLTE(v int) predicate.Drug {
	return predicate.Drug(sql.FieldLTE(FieldStockQuantity, v))
}

// ReorderLevelEQ applies the EQ predicate on the "reorder_level" field.
func ReorderLevelEQ(v int) predicate.Drug {
	return predicate.Drug(sql.FieldEQ(FieldReorderLevel, v))
}

// ReorderLevelNEQ applies the NEQ predicate on the "reorder_level" field.
func ReorderLevelNEQ(v int) predicate.Drug {
	return predicate.Drug(sql.FieldNEQ(FieldReorderLevel, v))
}

// ReorderLevelIn applies the In predicate on the "reorder_level" field.
func ReorderLevelIn(vs ...int) predicate.Drug {
	return predicate.Drug(sql.FieldIn(FieldReorderLevel, vs...))
}

// ReorderLevelNotIn applies the NotIn predicate on the "reorder_level" field.
func ReorderLevelNotIn(vs ...int) predicate.Drug {
	return predicate.Drug(sql.FieldNotIn(FieldReorderLevel, vs...))
}

// ReorderLevelGT applies the GT predicate on the "reorder_level" field.
func ReorderLevelGT(v int) predicate.Drug {
	return predicate.Drug(sql.FieldGT(FieldReorderLevel, v))
}

// ReorderLevelGTE applies the GTE predicate on the "reorder_level" field.
func ReorderLevelGTE(v int) predicate.Drug {
	return predicate.Drug(sql.FieldGTE(FieldReorderLevel, v))
}

// ReorderLevelLT applies the LT predicate on the "reorder_level" field.
func ReorderLevelLT(v int) predicate.Drug {
	return predicate.Drug(sql.FieldLT(FieldReorderLevel, v))
}

// ReorderLevelLTE applies the LTE predicate on the "reorder_level" field.
func ReorderLevelLTE(v int) predicate.Drug {
	return predicate.Drug(sql.FieldLTE(FieldReorderLevel, v))
}

// ExpiryDateEQ applies the EQ predicate on the "expiry_date" field.
func ExpiryDateEQ(v time.Time) predicate.Drug {
	return predicate.Drug(sql.FieldEQ(FieldExpiryDate, v))
}

// ExpiryDateNEQ applies the NEQ predicate on the "expiry_date" field.
func ExpiryDateNEQ(v time.Time) predicate.Drug {
	return predicate.Drug(sql.FieldNEQ(FieldExpiryDate, v))
}

// ExpiryDateIn applies the In predicate on the "expiry_date" field.
func ExpiryDateIn(vs ...time.Time) predicate.Drug {
	return predicate.Drug(sql.FieldIn(FieldExpiryDate, vs...))
}

// ExpiryDateNotIn applies the NotIn predicate on the "expiry_date" field.
func ExpiryDateNotIn(vs ...time.Time) predicate.Drug {
	return predicate.Drug(sql.FieldNotIn(FieldExpiryDate, vs...))
}

// ExpiryDateGT applies the GT predicate on the "expiry_date" field.
func ExpiryDateGT(v time.Time) predicate.Drug {
	return predicate.Drug(sql.FieldGT(FieldExpiryDate, v))
}

// ExpiryDateGTE applies the GTE predicate on the "expiry_date" field.
func ExpiryDateGTE(v time.Time) predicate.Drug {
	return predicate.Drug(sql.FieldGTE(FieldExpiryDate, v))
}

// ExpiryDateLT applies the LT predicate on the "expiry_date" field.
func ExpiryDateLT(v time.Time) predicate.Drug {
	return predicate.Drug(sql.FieldLT(FieldExpiryDate, v))
}

// ExpiryDateLTE applies the LTE predicate on the "expiry_date" field.
func ExpiryDateLTE(v time.Time) predicate.Drug {
	return predicate.Drug(sql.FieldLTE(FieldExpiryDate, v))
}

// ExpiryDateIsNil applies the IsNil predicate on the "expiry_date" field.
func ExpiryDateIsNil() predicate.Drug {
	return predicate.Drug(sql.FieldIsNull(FieldExpiryDate))
}

// ExpiryDateNotNil applies the NotNil predicate on the "expiry_date" field.
func ExpiryDateNotNil() predicate.Drug {
	return predicate.Drug(sql.FieldNotNull(FieldExpiryDate))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.Drug {
	return predicate.Drug(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.Drug {
	return predicate.Drug(sql.FieldNEQ(FieldActive, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Drug) predicate.Drug {
	return predicate.Drug(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Drug) predicate.Drug {
	return predicate.Drug(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Drug) predicate.Drug {
	return predicate.Drug(sql.NotPredicates(p))
}
