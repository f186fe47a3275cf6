// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/niramoy/niramoy_backend/internal/repo/laborder"
)

// LabOrder is the model entity for the LabOrder schema.
type LabOrder struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Human-readable "LAB<yyyymmdd><seq>"
	OrderNumber string `json:"order_number,omitempty"`
	// FK → patients.id
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// FK → staffs.id; nil for externally referred orders
	OrderedBy *uuid.UUID `json:"ordered_by,omitempty"`
	// FK → prescriptions.id
	PrescriptionID *uuid.UUID `json:"prescription_id,omitempty"`
	// Status holds the value of the "status" field.
	Status laborder.Status `json:"status,omitempty"`
	// TotalAmount holds the value of the "total_amount" field.
	TotalAmount int64 `json:"total_amount,omitempty"`
	// AmountPaid holds the value of the "amount_paid" field.
	AmountPaid int64 `json:"amount_paid,omitempty"`
	// SampleCollectedAt holds the value of the "sample_collected_at" field.
	SampleCollectedAt *time.Time `json:"sample_collected_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LabOrder) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case laborder.FieldOrderedBy, laborder.FieldPrescriptionID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case laborder.FieldTotalAmount, laborder.FieldAmountPaid:
			values[i] = new(sql.NullInt64)
		case laborder.FieldOrderNumber, laborder.FieldStatus:
			values[i] = new(sql.NullString)
		case laborder.FieldCreatedAt, laborder.FieldUpdatedAt, laborder.FieldSampleCollectedAt, laborder.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		case laborder.FieldID, laborder.FieldPatientID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LabOrder fields.
func (_m *LabOrder) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case laborder.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case laborder.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case laborder.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case laborder.FieldOrderNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field order_number", values[i])
			} else if value.Valid {
				_m.OrderNumber = value.String
			}
		case laborder.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case laborder.FieldOrderedBy:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field ordered_by", values[i])
			} else if value.Valid {
				_m.OrderedBy = new(uuid.UUID)
				*_m.OrderedBy = *value.S.(*uuid.UUID)
			}
		case laborder.FieldPrescriptionID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field prescription_id", values[i])
			} else if value.Valid {
				_m.PrescriptionID = new(uuid.UUID)
				*_m.PrescriptionID = *value.S.(*uuid.UUID)
			}
		case laborder.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = laborder.Status(value.String)
			}
		case laborder.FieldTotalAmount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_amount", values[i])
			} else if value.Valid {
				_m.TotalAmount = value.Int64
			}
		case laborder.FieldAmountPaid:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field amount_paid", values[i])
			} else if value.Valid {
				_m.AmountPaid = value.Int64
			}
		case laborder.FieldSampleCollectedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field sample_collected_at", values[i])
			} else if value.Valid {
				_m.SampleCollectedAt = new(time.Time)
				*_m.SampleCollectedAt = value.Time
			}
		case laborder.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LabOrder.
// This includes values selected through modifiers, order, etc.
func (_m *LabOrder) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LabOrder.
// Note that you need to call LabOrder.Unwrap() before calling this method if this LabOrder
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LabOrder) Update() *LabOrderUpdateOne {
	return NewLabOrderClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LabOrder entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LabOrder) Unwrap() *LabOrder {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: LabOrder is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LabOrder) String() string {
	var builder strings.Builder
	builder.WriteString("LabOrder(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("order_number=")
	builder.WriteString(_m.OrderNumber)
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteString(", ")
	if v := _m.OrderedBy; v != nil {
		builder.WriteString("ordered_by=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PrescriptionID; v != nil {
		builder.WriteString("prescription_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("total_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalAmount))
	builder.WriteString(", ")
	builder.WriteString("amount_paid=")
	builder.WriteString(fmt.Sprintf("%v", _m.AmountPaid))
	builder.WriteString(", ")
	if v := _m.SampleCollectedAt; v != nil {
		builder.WriteString("sample_collected_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// LabOrders is a parsable slice of LabOrder.
type LabOrders []*LabOrder
