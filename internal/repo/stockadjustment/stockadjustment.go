// Code generated by ent, DO NOT EDIT.

package stockadjustment

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the stockadjustment type in the database.
	Label = "stock_adjustment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldDrugID holds the string denoting the drug_id field in the database.
	FieldDrugID = "drug_id"
	// FieldDelta holds the string denoting the delta field in the database.
	FieldDelta = "delta"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldNote holds the string denoting the note field in the database.
	FieldNote = "note"
	// FieldAdjustedBy holds the string denoting the adjusted_by field in the database.
	FieldAdjustedBy = "adjusted_by"
	// Table holds the table name of the stockadjustment in the database.
	Table = "stock_adjustments"
)

// Columns holds all SQL columns for stockadjustment fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldDrugID,
	FieldDelta,
	FieldReason,
	FieldNote,
	FieldAdjustedBy,
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
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Reason defines the type for the "reason" enum field.
type Reason string

// Reason values.
const (
	ReasonPurchase   Reason = "purchase"
	ReasonSale       Reason = "sale"
	ReasonExpired    Reason = "expired"
	ReasonDamaged    Reason = "damaged"
	ReasonCorrection Reason = "correction"
)

func (r Reason) String() string {
	return string(r)
}

// ReasonValidator is a validator for the "reason" field enum values. It is called by the builders before save.
func ReasonValidator(r Reason) error {
	switch r {
	case ReasonPurchase, ReasonSale, ReasonExpired, ReasonDamaged, ReasonCorrection:
		return nil
	default:
		return fmt.Errorf("stockadjustment: invalid enum value for reason field: %q", r)
	}
}

// OrderOption defines the ordering options for the StockAdjustment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDrugID orders the results by the drug_id field.
func ByDrugID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDrugID, opts...).ToFunc()
}

// ByDelta orders the results by the delta field.
func ByDelta(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDelta, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByNote orders the results by the note field.
func ByNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNote, opts...).ToFunc()
}

// ByAdjustedBy orders the results by the adjusted_by field.
func ByAdjustedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdjustedBy, opts...).ToFunc()
}
