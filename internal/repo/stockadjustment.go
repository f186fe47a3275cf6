// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/niramoy/niramoy_backend/internal/repo/stockadjustment"
)

// StockAdjustment is the model entity for the StockAdjustment schema.
type StockAdjustment struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → drugs.id
	DrugID uuid.UUID `json:"drug_id,omitempty"`
	// Signed quantity change; negative for sales and write-offs
	Delta int `json:"delta,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason stockadjustment.Reason `json:"reason,omitempty"`
	// Note holds the value of the "note" field.
	Note *string `json:"note,omitempty"`
	// FK → staffs.id; nil when applied by the sale path
	AdjustedBy   *uuid.UUID `json:"adjusted_by,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StockAdjustment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stockadjustment.FieldAdjustedBy:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case stockadjustment.FieldDelta:
			values[i] = new(sql.NullInt64)
		case stockadjustment.FieldReason, stockadjustment.FieldNote:
			values[i] = new(sql.NullString)
		case stockadjustment.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case stockadjustment.FieldID, stockadjustment.FieldDrugID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StockAdjustment fields.
func (_m *StockAdjustment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stockadjustment.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case stockadjustment.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case stockadjustment.FieldDrugID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field drug_id", values[i])
			} else if value != nil {
				_m.DrugID = *value
			}
		case stockadjustment.FieldDelta:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field delta", values[i])
			} else if value.Valid {
				_m.Delta = int(value.Int64)
			}
		case stockadjustment.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = stockadjustment.Reason(value.String)
			}
		case stockadjustment.FieldNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field note", values[i])
			} else if value.Valid {
				_m.Note = new(string)
				*_m.Note = value.String
			}
		case stockadjustment.FieldAdjustedBy:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field adjusted_by", values[i])
			} else if value.Valid {
				_m.AdjustedBy = new(uuid.UUID)
				*_m.AdjustedBy = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StockAdjustment.
// This includes values selected through modifiers, order, etc.
func (_m *StockAdjustment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StockAdjustment.
// Note that you need to call StockAdjustment.Unwrap() before calling this method if this StockAdjustment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StockAdjustment) Update() *StockAdjustmentUpdateOne {
	return NewStockAdjustmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StockAdjustment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StockAdjustment) Unwrap() *StockAdjustment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: StockAdjustment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StockAdjustment) String() string {
	var builder strings.Builder
	builder.WriteString("StockAdjustment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("drug_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DrugID))
	builder.WriteString(", ")
	builder.WriteString("delta=")
	builder.WriteString(fmt.Sprintf("%v", _m.Delta))
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(fmt.Sprintf("%v", _m.Reason))
	builder.WriteString(", ")
	if v := _m.Note; v != nil {
		builder.WriteString("note=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AdjustedBy; v != nil {
		builder.WriteString("adjusted_by=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// StockAdjustments is a parsable slice of StockAdjustment.
type StockAdjustments []*StockAdjustment
