// Code generated by ent, DO NOT EDIT.

package canteensale

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the canteensale type in the database.
	Label = "canteen_sale"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldSaleNumber holds the string denoting the sale_number field in the database.
	FieldSaleNumber = "sale_number"
	// FieldTotalAmount holds the string denoting the total_amount field in the database.
	FieldTotalAmount = "total_amount"
	// FieldAmountPaid holds the string denoting the amount_paid field in the database.
	FieldAmountPaid = "amount_paid"
	// FieldSoldBy holds the string denoting the sold_by field in the database.
	FieldSoldBy = "sold_by"
	// Table holds the table name of the canteensale in the database.
	Table = "canteen_sales"
)

// Columns holds all SQL columns for canteensale fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldSaleNumber,
	FieldTotalAmount,
	FieldAmountPaid,
	FieldSoldBy,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// SaleNumberValidator is a validator for the "sale_number" field. It is called by the builders before save.
	SaleNumberValidator func(string) error
	// TotalAmountValidator is a validator for the "total_amount" field. It is called by the builders before save.
	TotalAmountValidator func(int64) error
	// DefaultAmountPaid holds the default value on creation for the "amount_paid" field.
	DefaultAmountPaid int64
	// AmountPaidValidator is a validator for the "amount_paid" field. It is called by the builders before save.
	AmountPaidValidator func(int64) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the CanteenSale queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// BySaleNumber orders the results by the sale_number field.
func BySaleNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSaleNumber, opts...).ToFunc()
}

// ByTotalAmount orders the results by the total_amount field.
func ByTotalAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalAmount, opts...).ToFunc()
}

// ByAmountPaid orders the results by the amount_paid field.
func ByAmountPaid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmountPaid, opts...).ToFunc()
}

// BySoldBy orders the results by the sold_by field.
func BySoldBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSoldBy, opts...).ToFunc()
}
