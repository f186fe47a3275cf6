// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/niramoy/niramoy_backend/internal/repo/doctorschedule"
)

// DoctorSchedule is the model entity for the DoctorSchedule schema.
type DoctorSchedule struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → staffs.id
	DoctorID uuid.UUID `json:"doctor_id,omitempty"`
	// 0=Sunday .. 6=Saturday, matching time.Weekday
	Weekday int `json:"weekday,omitempty"`
	// Local wall clock "15:04"
	StartTime string `json:"start_time,omitempty"`
	// EndTime holds the value of the "end_time" field.
	EndTime string `json:"end_time,omitempty"`
	// MaxPatients holds the value of the "max_patients" field.
	MaxPatients int `json:"max_patients,omitempty"`
	// ConsultationMinutes holds the value of the "consultation_minutes" field.
	ConsultationMinutes int `json:"consultation_minutes,omitempty"`
	// RoomNumber holds the value of the "room_number" field.
	RoomNumber *string `json:"room_number,omitempty"`
	// Active holds the value of the "active" field.
	Active       bool `json:"active,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DoctorSchedule) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case doctorschedule.FieldActive:
			values[i] = new(sql.NullBool)
		case doctorschedule.FieldWeekday, doctorschedule.FieldMaxPatients, doctorschedule.FieldConsultationMinutes:
			values[i] = new(sql.NullInt64)
		case doctorschedule.FieldStartTime, doctorschedule.FieldEndTime, doctorschedule.FieldRoomNumber:
			values[i] = new(sql.NullString)
		case doctorschedule.FieldCreatedAt, doctorschedule.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case doctorschedule.FieldID, doctorschedule.FieldDoctorID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DoctorSchedule fields.
func (_m *DoctorSchedule) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case doctorschedule.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case doctorschedule.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case doctorschedule.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case doctorschedule.FieldDoctorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field doctor_id", values[i])
			} else if value != nil {
				_m.DoctorID = *value
			}
		case doctorschedule.FieldWeekday:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field weekday", values[i])
			} else if value.Valid {
				_m.Weekday = int(value.Int64)
			}
		case doctorschedule.FieldStartTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				_m.StartTime = value.String
			}
		case doctorschedule.FieldEndTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field end_time", values[i])
			} else if value.Valid {
				_m.EndTime = value.String
			}
		case doctorschedule.FieldMaxPatients:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_patients", values[i])
			} else if value.Valid {
				_m.MaxPatients = int(value.Int64)
			}
		case doctorschedule.FieldConsultationMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field consultation_minutes", values[i])
			} else if value.Valid {
				_m.ConsultationMinutes = int(value.Int64)
			}
		case doctorschedule.FieldRoomNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field room_number", values[i])
			} else if value.Valid {
				_m.RoomNumber = new(string)
				*_m.RoomNumber = value.String
			}
		case doctorschedule.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DoctorSchedule.
// This includes values selected through modifiers, order, etc.
func (_m *DoctorSchedule) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DoctorSchedule.
// Note that you need to call DoctorSchedule.Unwrap() before calling this method if this DoctorSchedule
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DoctorSchedule) Update() *DoctorScheduleUpdateOne {
	return NewDoctorScheduleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DoctorSchedule entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DoctorSchedule) Unwrap() *DoctorSchedule {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: DoctorSchedule is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DoctorSchedule) String() string {
	var builder strings.Builder
	builder.WriteString("DoctorSchedule(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("doctor_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DoctorID))
	builder.WriteString(", ")
	builder.WriteString("weekday=")
	builder.WriteString(fmt.Sprintf("%v", _m.Weekday))
	builder.WriteString(", ")
	builder.WriteString("start_time=")
	builder.WriteString(_m.StartTime)
	builder.WriteString(", ")
	builder.WriteString("end_time=")
	builder.WriteString(_m.EndTime)
	builder.WriteString(", ")
	builder.WriteString("max_patients=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxPatients))
	builder.WriteString(", ")
	builder.WriteString("consultation_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConsultationMinutes))
	builder.WriteString(", ")
	if v := _m.RoomNumber; v != nil {
		builder.WriteString("room_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteByte(')')
	return builder.String()
}

// DoctorSchedules is a parsable slice of DoctorSchedule.
type DoctorSchedules []*DoctorSchedule
