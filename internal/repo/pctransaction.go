// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/niramoy/niramoy_backend/internal/repo/pctransaction"
)

// PCTransaction is the model entity for the PCTransaction schema.
type PCTransaction struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → staffs.id, the commission payee
	ReferrerID uuid.UUID `json:"referrer_id,omitempty"`
	// FK → patients.id
	PatientID *uuid.UUID `json:"patient_id,omitempty"`
	// Gross referred amount
	TotalAmount int64 `json:"total_amount,omitempty"`
	// Paid out to the referrer; an expense in aggregation
	CommissionAmount int64 `json:"commission_amount,omitempty"`
	// Retained by the hospital; added to net income
	AdminShare int64 `json:"admin_share,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// Business date of the referral
	OccurredAt   time.Time `json:"occurred_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PCTransaction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pctransaction.FieldPatientID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case pctransaction.FieldTotalAmount, pctransaction.FieldCommissionAmount, pctransaction.FieldAdminShare:
			values[i] = new(sql.NullInt64)
		case pctransaction.FieldDescription:
			values[i] = new(sql.NullString)
		case pctransaction.FieldCreatedAt, pctransaction.FieldOccurredAt:
			values[i] = new(sql.NullTime)
		case pctransaction.FieldID, pctransaction.FieldReferrerID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PCTransaction fields.
func (_m *PCTransaction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pctransaction.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case pctransaction.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case pctransaction.FieldReferrerID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field referrer_id", values[i])
			} else if value != nil {
				_m.ReferrerID = *value
			}
		case pctransaction.FieldPatientID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value.Valid {
				_m.PatientID = new(uuid.UUID)
				*_m.PatientID = *value.S.(*uuid.UUID)
			}
		case pctransaction.FieldTotalAmount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_amount", values[i])
			} else if value.Valid {
				_m.TotalAmount = value.Int64
			}
		case pctransaction.FieldCommissionAmount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field commission_amount", values[i])
			} else if value.Valid {
				_m.CommissionAmount = value.Int64
			}
		case pctransaction.FieldAdminShare:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field admin_share", values[i])
			} else if value.Valid {
				_m.AdminShare = value.Int64
			}
		case pctransaction.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case pctransaction.FieldOccurredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field occurred_at", values[i])
			} else if value.Valid {
				_m.OccurredAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PCTransaction.
// This includes values selected through modifiers, order, etc.
func (_m *PCTransaction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PCTransaction.
// Note that you need to call PCTransaction.Unwrap() before calling this method if this PCTransaction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PCTransaction) Update() *PCTransactionUpdateOne {
	return NewPCTransactionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PCTransaction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PCTransaction) Unwrap() *PCTransaction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: PCTransaction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PCTransaction) String() string {
	var builder strings.Builder
	builder.WriteString("PCTransaction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("referrer_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReferrerID))
	builder.WriteString(", ")
	if v := _m.PatientID; v != nil {
		builder.WriteString("patient_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("total_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalAmount))
	builder.WriteString(", ")
	builder.WriteString("commission_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.CommissionAmount))
	builder.WriteString(", ")
	builder.WriteString("admin_share=")
	builder.WriteString(fmt.Sprintf("%v", _m.AdminShare))
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("occurred_at=")
	builder.WriteString(_m.OccurredAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PCTransactions is a parsable slice of PCTransaction.
type PCTransactions []*PCTransaction
