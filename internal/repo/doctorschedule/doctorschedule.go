// Code generated by ent, DO NOT EDIT.

package doctorschedule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the doctorschedule type in the database.
	Label = "doctor_schedule"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDoctorID holds the string denoting the doctor_id field in the database.
	FieldDoctorID = "doctor_id"
	// FieldWeekday holds the string denoting the weekday field in the database.
	FieldWeekday = "weekday"
	// FieldStartTime holds the string denoting the start_time field in the database.
	FieldStartTime = "start_time"
	// FieldEndTime holds the string denoting the end_time field in the database.
	FieldEndTime = "end_time"
	// FieldMaxPatients holds the string denoting the max_patients field in the database.
	FieldMaxPatients = "max_patients"
	// FieldConsultationMinutes holds the string denoting the consultation_minutes field in the database.
	FieldConsultationMinutes = "consultation_minutes"
	// FieldRoomNumber holds the string denoting the room_number field in the database.
	FieldRoomNumber = "room_number"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// Table holds the table name of the doctorschedule in the database.
	Table = "doctor_schedules"
)

// Columns holds all SQL columns for doctorschedule fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDoctorID,
	FieldWeekday,
	FieldStartTime,
	FieldEndTime,
	FieldMaxPatients,
	FieldConsultationMinutes,
	FieldRoomNumber,
	FieldActive,
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
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// WeekdayValidator is a validator for the "weekday" field. It is called by the builders before save.
	WeekdayValidator func(int) error
	// StartTimeValidator is a validator for the "start_time" field. It is called by the builders before save.
	StartTimeValidator func(string) error
	// EndTimeValidator is a validator for the "end_time" field. It is called by the builders before save.
	EndTimeValidator func(string) error
	// DefaultMaxPatients holds the default value on creation for the "max_patients" field.
	DefaultMaxPatients int
	// MaxPatientsValidator is a validator for the "max_patients" field. It is called by the builders before save.
	MaxPatientsValidator func(int) error
	// DefaultConsultationMinutes holds the default value on creation for the "consultation_minutes" field.
	DefaultConsultationMinutes int
	// ConsultationMinutesValidator is a validator for the "consultation_minutes" field. It is called by the builders before save.
	ConsultationMinutesValidator func(int) error
	// RoomNumberValidator is a validator for the "room_number" field. It is called by the builders before save.
	RoomNumberValidator func(string) error
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the DoctorSchedule queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDoctorID orders the results by the doctor_id field.
func ByDoctorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDoctorID, opts...).ToFunc()
}

// ByWeekday orders the results by the weekday field.
func ByWeekday(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeekday, opts...).ToFunc()
}

// ByStartTime orders the results by the start_time field.
func ByStartTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartTime, opts...).ToFunc()
}

// ByEndTime orders the results by the end_time field.
func ByEndTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndTime, opts...).ToFunc()
}

// ByMaxPatients orders the results by the max_patients field.
func ByMaxPatients(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxPatients, opts...).ToFunc()
}

// ByConsultationMinutes orders the results by the consultation_minutes field.
func ByConsultationMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsultationMinutes, opts...).ToFunc()
}

// ByRoomNumber orders the results by the room_number field.
func ByRoomNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoomNumber, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}
