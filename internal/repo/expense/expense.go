// Code generated by ent, DO NOT EDIT.

package expense

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the expense type in the database.
	Label = "expense"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldExpenseType holds the string denoting the expense_type field in the database.
	FieldExpenseType = "expense_type"
	// FieldAmount holds the string denoting the amount field in the database.
	FieldAmount = "amount"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldRecordedBy holds the string denoting the recorded_by field in the database.
	FieldRecordedBy = "recorded_by"
	// FieldIncurredAt holds the string denoting the incurred_at field in the database.
	FieldIncurredAt = "incurred_at"
	// Table holds the table name of the expense in the database.
	Table = "expenses"
)

// Columns holds all SQL columns for expense fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldExpenseType,
	FieldAmount,
	FieldDescription,
	FieldRecordedBy,
	FieldIncurredAt,
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
	// AmountValidator is a validator for the "amount" field. It is called by the builders before save.
	AmountValidator func(int64) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// ExpenseType defines the type for the "expense_type" enum field.
type ExpenseType string

// ExpenseType values.
const (
	ExpenseTypeSalary      ExpenseType = "salary"
	ExpenseTypeUtility     ExpenseType = "utility"
	ExpenseTypeSupplies    ExpenseType = "supplies"
	ExpenseTypeMaintenance ExpenseType = "maintenance"
	ExpenseTypeOther       ExpenseType = "other"
)

func (et ExpenseType) String() string {
	return string(et)
}

// ExpenseTypeValidator is a validator for the "expense_type" field enum values. It is called by the builders before save.
func ExpenseTypeValidator(et ExpenseType) error {
	switch et {
	case ExpenseTypeSalary, ExpenseTypeUtility, ExpenseTypeSupplies, ExpenseTypeMaintenance, ExpenseTypeOther:
		return nil
	default:
		return fmt.Errorf("expense: invalid enum value for expense_type field: %q", et)
	}
}

// OrderOption defines the ordering options for the Expense queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByExpenseType orders the results by the expense_type field.
func ByExpenseType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpenseType, opts...).ToFunc()
}

// ByAmount orders the results by the amount field.
func ByAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmount, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByRecordedBy orders the results by the recorded_by field.
func ByRecordedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordedBy, opts...).ToFunc()
}

// ByIncurredAt orders the results by the incurred_at field.
func ByIncurredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIncurredAt, opts...).ToFunc()
}
