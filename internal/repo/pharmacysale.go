// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/niramoy/niramoy_backend/internal/repo/pharmacysale"
)

// PharmacySale is the model entity for the PharmacySale schema.
type PharmacySale struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Human-readable "PH<yyyymmdd><seq>"
	SaleNumber string `json:"sale_number,omitempty"`
	// FK → patients.id; nil for walk-in customers
	PatientID *uuid.UUID `json:"patient_id,omitempty"`
	// FK → prescriptions.id
	PrescriptionID *uuid.UUID `json:"prescription_id,omitempty"`
	// TotalAmount holds the value of the "total_amount" field.
	TotalAmount int64 `json:"total_amount,omitempty"`
	// AmountPaid holds the value of the "amount_paid" field.
	AmountPaid int64 `json:"amount_paid,omitempty"`
	// FK → staffs.id
	SoldBy       uuid.UUID `json:"sold_by,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PharmacySale) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pharmacysale.FieldPatientID, pharmacysale.FieldPrescriptionID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case pharmacysale.FieldTotalAmount, pharmacysale.FieldAmountPaid:
			values[i] = new(sql.NullInt64)
		case pharmacysale.FieldSaleNumber:
			values[i] = new(sql.NullString)
		case pharmacysale.FieldCreatedAt, pharmacysale.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case pharmacysale.FieldID, pharmacysale.FieldSoldBy:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PharmacySale fields.
func (_m *PharmacySale) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pharmacysale.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case pharmacysale.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case pharmacysale.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case pharmacysale.FieldSaleNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sale_number", values[i])
			} else if value.Valid {
				_m.SaleNumber = value.String
			}
		case pharmacysale.FieldPatientID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value.Valid {
				_m.PatientID = new(uuid.UUID)
				*_m.PatientID = *value.S.(*uuid.UUID)
			}
		case pharmacysale.FieldPrescriptionID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field prescription_id", values[i])
			} else if value.Valid {
				_m.PrescriptionID = new(uuid.UUID)
				*_m.PrescriptionID = *value.S.(*uuid.UUID)
			}
		case pharmacysale.FieldTotalAmount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_amount", values[i])
			} else if value.Valid {
				_m.TotalAmount = value.Int64
			}
		case pharmacysale.FieldAmountPaid:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field amount_paid", values[i])
			} else if value.Valid {
				_m.AmountPaid = value.Int64
			}
		case pharmacysale.FieldSoldBy:
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

// Value returns the ent.Value that was dynamically selected and assigned to the PharmacySale.
// This includes values selected through modifiers, order, etc.
func (_m *PharmacySale) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PharmacySale.
// Note that you need to call PharmacySale.Unwrap() before calling this method if this PharmacySale
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PharmacySale) Update() *PharmacySaleUpdateOne {
	return NewPharmacySaleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PharmacySale entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PharmacySale) Unwrap() *PharmacySale {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: PharmacySale is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PharmacySale) String() string {
	var builder strings.Builder
	builder.WriteString("PharmacySale(")
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
	if v := _m.PatientID; v != nil {
		builder.WriteString("patient_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PrescriptionID; v != nil {
		builder.WriteString("prescription_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
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

// PharmacySales is a parsable slice of PharmacySale.
type PharmacySales []*PharmacySale
