// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/niramoy/niramoy_backend/internal/repo/labresult"
)

// LabResult is the model entity for the LabResult schema.
type LabResult struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → lab_orders.id
	OrderID uuid.UUID `json:"order_id,omitempty"`
	// FK → lab_tests.id
	TestID uuid.UUID `json:"test_id,omitempty"`
	// Snapshotted from the catalog at order time
	Price int64 `json:"price,omitempty"`
	// ResultValue holds the value of the "result_value" field.
	ResultValue *string `json:"result_value,omitempty"`
	// Unit holds the value of the "unit" field.
	Unit *string `json:"unit,omitempty"`
	// Abnormal holds the value of the "abnormal" field.
	Abnormal bool `json:"abnormal,omitempty"`
	// Status holds the value of the "status" field.
	Status labresult.Status `json:"status,omitempty"`
	// FK → staffs.id
	EnteredBy *uuid.UUID `json:"entered_by,omitempty"`
	// FK → staffs.id
	VerifiedBy *uuid.UUID `json:"verified_by,omitempty"`
	// VerifiedAt holds the value of the "verified_at" field.
	VerifiedAt   *time.Time `json:"verified_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LabResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case labresult.FieldEnteredBy, labresult.FieldVerifiedBy:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case labresult.FieldAbnormal:
			values[i] = new(sql.NullBool)
		case labresult.FieldPrice:
			values[i] = new(sql.NullInt64)
		case labresult.FieldResultValue, labresult.FieldUnit, labresult.FieldStatus:
			values[i] = new(sql.NullString)
		case labresult.FieldCreatedAt, labresult.FieldUpdatedAt, labresult.FieldVerifiedAt:
			values[i] = new(sql.NullTime)
		case labresult.FieldID, labresult.FieldOrderID, labresult.FieldTestID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LabResult fields.
func (_m *LabResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case labresult.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case labresult.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case labresult.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case labresult.FieldOrderID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field order_id", values[i])
			} else if value != nil {
				_m.OrderID = *value
			}
		case labresult.FieldTestID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field test_id", values[i])
			} else if value != nil {
				_m.TestID = *value
			}
		case labresult.FieldPrice:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field price", values[i])
			} else if value.Valid {
				_m.Price = value.Int64
			}
		case labresult.FieldResultValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result_value", values[i])
			} else if value.Valid {
				_m.ResultValue = new(string)
				*_m.ResultValue = value.String
			}
		case labresult.FieldUnit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit", values[i])
			} else if value.Valid {
				_m.Unit = new(string)
				*_m.Unit = value.String
			}
		case labresult.FieldAbnormal:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field abnormal", values[i])
			} else if value.Valid {
				_m.Abnormal = value.Bool
			}
		case labresult.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = labresult.Status(value.String)
			}
		case labresult.FieldEnteredBy:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field entered_by", values[i])
			} else if value.Valid {
				_m.EnteredBy = new(uuid.UUID)
				*_m.EnteredBy = *value.S.(*uuid.UUID)
			}
		case labresult.FieldVerifiedBy:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field verified_by", values[i])
			} else if value.Valid {
				_m.VerifiedBy = new(uuid.UUID)
				*_m.VerifiedBy = *value.S.(*uuid.UUID)
			}
		case labresult.FieldVerifiedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field verified_at", values[i])
			} else if value.Valid {
				_m.VerifiedAt = new(time.Time)
				*_m.VerifiedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LabResult.
// This includes values selected through modifiers, order, etc.
func (_m *LabResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LabResult.
// Note that you need to call LabResult.Unwrap() before calling this method if this LabResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LabResult) Update() *LabResultUpdateOne {
	return NewLabResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LabResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LabResult) Unwrap() *LabResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: LabResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LabResult) String() string {
	var builder strings.Builder
	builder.WriteString("LabResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("order_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OrderID))
	builder.WriteString(", ")
	builder.WriteString("test_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TestID))
	builder.WriteString(", ")
	builder.WriteString("price=")
	builder.WriteString(fmt.Sprintf("%v", _m.Price))
	builder.WriteString(", ")
	if v := _m.ResultValue; v != nil {
		builder.WriteString("result_value=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Unit; v != nil {
		builder.WriteString("unit=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("abnormal=")
	builder.WriteString(fmt.Sprintf("%v", _m.Abnormal))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.EnteredBy; v != nil {
		builder.WriteString("entered_by=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.VerifiedBy; v != nil {
		builder.WriteString("verified_by=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.VerifiedAt; v != nil {
		builder.WriteString("verified_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// LabResults is a parsable slice of LabResult.
type LabResults []*LabResult
