// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/niramoy/niramoy_backend/internal/repo/canteensale"
)

// CanteenSale is the model entity for the CanteenSale schema.
type CanteenSale struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Human-readable "CN<yyyymmdd><seq>"
	SaleNumber string `json:"sale_number,omitempty"`
	// TotalAmount holds the value of the "total_amount" field.
	TotalAmount int64 `json:"total_amount,omitempty"`
	// AmountPaid holds the value of the "amount_paid" field.
	AmountPaid int64 `json:"amount_paid,omitempty"`
	// FK → staffs.id
	SoldBy       uuid.UUID `json:"sold_by,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CanteenSale) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case canteensale.FieldTotalAmount, canteensale.FieldAmountPaid:
			values[i] = new(sql.NullInt64)
		case canteensale.FieldSaleNumber:
			values[i] = new(sql.NullString)
		case canteensale.FieldCreatedAt, canteensale.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case canteensale.FieldID, canteensale.FieldSoldBy:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CanteenSale fields.
func (_m *CanteenSale) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case canteensale.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case canteensale.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case canteensale.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case canteensale.FieldSaleNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sale_number", values[i])
			} else if value.Valid {
				_m.SaleNumber = value.String
			}
		case canteensale.FieldTotalAmount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_amount", values[i])
			} else if value.Valid {
				_m.TotalAmount = value.Int64
			}
		case canteensale.FieldAmountPaid:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field amount_paid", values[i])
			} else if value.Valid {
				_m.AmountPaid = value.Int64
			}
		case canteensale.FieldSoldBy:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field sold_by", values[i])
			} else if value != nil {
				_m.SoldBy = *value
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CanteenSale.
// This includes values selected through modifiers, order, etc.
func (_m *CanteenSale) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CanteenSale.
// Note that you need to call CanteenSale.Unwrap() before calling this method if this CanteenSale
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CanteenSale) Update() *CanteenSaleUpdateOne {
	return NewCanteenSaleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CanteenSale entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CanteenSale) Unwrap() *CanteenSale {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: CanteenSale is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CanteenSale) String() string {
	var builder strings.Builder
	builder.WriteString("CanteenSale(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("sale_number=")
	builder.WriteString(_m.SaleNumber)
	builder.WriteString(", ")
	builder.WriteString("total_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalAmount))
	builder.WriteString(", ")
	builder.WriteString("amount_paid=")
	builder.WriteString(fmt.Sprintf("%v", _m.AmountPaid))
	builder.WriteString(", ")
	builder.WriteString("sold_by=")
	builder.WriteString(fmt.Sprintf("%v", _m.SoldBy))
	builder.WriteByte(')')
	return builder.String()
}

// CanteenSales is a parsable slice of CanteenSale.
type CanteenSales []*CanteenSale
