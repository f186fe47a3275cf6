// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/niramoy/niramoy_backend/internal/repo/saleitem"
)

// SaleItem is the model entity for the SaleItem schema.
type SaleItem struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → pharmacy_sales.id
	SaleID uuid.UUID `json:"sale_id,omitempty"`
	// FK → drugs.id
	DrugID uuid.UUID `json:"drug_id,omitempty"`
	// Quantity holds the value of the "quantity" field.
	Quantity int `json:"quantity,omitempty"`
	// Snapshotted at sale time
	UnitPrice int64 `json:"unit_price,omitempty"`
	// Subtotal holds the value of the "subtotal" field.
	Subtotal     int64 `json:"subtotal,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SaleItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case saleitem.FieldQuantity, saleitem.FieldUnitPrice, saleitem.FieldSubtotal:
			values[i] = new(sql.NullInt64)
		case saleitem.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case saleitem.FieldID, saleitem.FieldSaleID, saleitem.FieldDrugID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SaleItem fields.
func (_m *SaleItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case saleitem.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case saleitem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case saleitem.FieldSaleID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field sale_id", values[i])
			} else if value != nil {
				_m.SaleID = *value
			}
		case saleitem.FieldDrugID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field drug_id", values[i])
			} else if value != nil {
				_m.DrugID = *value
			}
		case saleitem.FieldQuantity:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quantity", values[i])
			} else if value.Valid {
				_m.Quantity = int(value.Int64)
			}
		case saleitem.FieldUnitPrice:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field unit_price", values[i])
			} else if value.Valid {
				_m.UnitPrice = value.Int64
			}
		case saleitem.FieldSubtotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field subtotal", values[i])
			} else if value.Valid {
				_m.Subtotal = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SaleItem.
// This includes values selected through modifiers, order, etc.
func (_m *SaleItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SaleItem.
// Note that you need to call SaleItem.Unwrap() before calling this method if this SaleItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SaleItem) Update() *SaleItemUpdateOne {
	return NewSaleItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SaleItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SaleItem) Unwrap() *SaleItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: SaleItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SaleItem) String() string {
	var builder strings.Builder
	builder.WriteString("SaleItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("sale_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SaleID))
	builder.WriteString(", ")
	builder.WriteString("drug_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DrugID))
	builder.WriteString(", ")
	builder.WriteString("quantity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Quantity))
	builder.WriteString(", ")
	builder.WriteString("unit_price=")
	builder.WriteString(fmt.Sprintf("%v", _m.UnitPrice))
	builder.WriteString(", ")
	builder.WriteString("subtotal=")
	builder.WriteString(fmt.Sprintf("%v", _m.Subtotal))
	builder.WriteByte(')')
	return builder.String()
}

// SaleItems is a parsable slice of SaleItem.
type SaleItems []*SaleItem
