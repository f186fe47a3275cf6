// Code generated by ent, DO NOT EDIT.

package doctorschedule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/niramoy/niramoy_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldEQ(FieldUpdatedAt, v))
}

// DoctorID applies equality check predicate on the "doctor_id" field. It's identical to DoctorIDEQ.
func DoctorID(v uuid.UUID) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldEQ(FieldDoctorID, v))
}

// Weekday applies equality check predicate on the "weekday" field. It's identical to WeekdayEQ.
func Weekday(v int) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldEQ(FieldWeekday, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v string) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldEQ(FieldStartTime, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v string) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldEQ(FieldEndTime, v))
}

// MaxPatients applies equality check predicate on the "max_patients" field. It's identical to MaxPatientsEQ.
func MaxPatients(v int) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldEQ(FieldMaxPatients, v))
}

// ConsultationMinutes applies equality check predicate on the "consultation_minutes" field. It's identical to ConsultationMinutesEQ.
func ConsultationMinutes(v int) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldEQ(FieldConsultationMinutes, v))
}

// RoomNumber applies equality check predicate on the "room_number" field. It's identical to RoomNumberEQ.
func RoomNumber(v string) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldEQ(FieldRoomNumber, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldEQ(FieldActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldLTE(FieldUpdatedAt, v))
}

// DoctorIDEQ applies the EQ predicate on the "doctor_id" field.
func DoctorIDEQ(v uuid.UUID) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldEQ(FieldDoctorID, v))
}

// DoctorIDNEQ applies the NEQ predicate on the "doctor_id" field.
func DoctorIDNEQ(v uuid.UUID) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldNEQ(FieldDoctorID, v))
}

// DoctorIDIn applies the In predicate on the "doctor_id" field.
func DoctorIDIn(vs ...uuid.UUID) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldIn(FieldDoctorID, vs...))
}

// DoctorIDNotIn applies the NotIn predicate on the "doctor_id" field.
func DoctorIDNotIn(vs ...uuid.UUID) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldNotIn(FieldDoctorID, vs...))
}

// DoctorIDGT applies the GT predicate on the "doctor_id" field.
func DoctorIDGT(v uuid.UUID) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldGT(FieldDoctorID, v))
}

// DoctorIDGTE applies the GTE predicate on the "doctor_id" field.
func DoctorIDGTE(v uuid.UUID) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldGTE(FieldDoctorID, v))
}

// DoctorIDLT applies the LT predicate on the "doctor_id" field.
func DoctorIDLT(v uuid.UUID) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldLT(FieldDoctorID, v))
}

// DoctorIDLTE applies the LTE predicate on the "doctor_id" field.
func DoctorIDLTE(v uuid.UUID) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldLTE(FieldDoctorID, v))
}

// WeekdayEQ applies the EQ predicate on the "weekday" field.
func WeekdayEQ(v int) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldEQ(FieldWeekday, v))
}

// WeekdayNEQ applies the NEQ predicate on the "weekday" field.
func WeekdayNEQ(v int) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldNEQ(FieldWeekday, v))
}

// WeekdayIn applies the In predicate on the "weekday" field.
func WeekdayIn(vs ...int) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldIn(FieldWeekday, vs...))
}

// WeekdayNotIn applies the NotIn predicate on the "weekday" field.
func WeekdayNotIn(vs ...int) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldNotIn(FieldWeekday, vs...))
}

// WeekdayGT applies the GT predicate on the "weekday" field.
func WeekdayGT(v int) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldGT(FieldWeekday, v))
}

// WeekdayGTE applies the GTE predicate on the "weekday" field.
func WeekdayGTE(v int) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldGTE(FieldWeekday, v))
}

// WeekdayLT applies the LT predicate on the "weekday" field.
func WeekdayLT(v int) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldLT(FieldWeekday, v))
}

// WeekdayLTE applies the LTE predicate on the "weekday" field.
func WeekdayLTE(v int) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldLTE(FieldWeekday, v))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v string) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v string) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...string) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...string) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v string) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v string) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v string) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v string) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldLTE(FieldStartTime, v))
}

// StartTimeContains applies the Contains predicate on the "start_time" field.
func StartTimeContains(v string) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldContains(FieldStartTime, v))
}

// StartTimeHasPrefix applies the HasPrefix predicate on the "start_time" field.
func StartTimeHasPrefix(v string) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldHasPrefix(FieldStartTime, v))
}

// StartTimeHasSuffix applies the HasSuffix predicate on the "start_time" field.
func StartTimeHasSuffix(v string) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldHasSuffix(FieldStartTime, v))
}

// StartTimeEqualFold applies the EqualFold predicate on the "start_time" field.
func StartTimeEqualFold(v string) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldEqualFold(FieldStartTime, v))
}

// StartTimeContainsFold applies the ContainsFold predicate on the "start_time" field.
func StartTimeContainsFold(v string) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldContainsFold(FieldStartTime, v))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v string) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v string) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...string) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...string) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v string) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v string) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v string) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v string) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldLTE(FieldEndTime, v))
}

// EndTimeContains applies the Contains predicate on the "end_time" field.
func EndTimeContains(v string) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldContains(FieldEndTime, v))
}

// EndTimeHasPrefix applies the HasPrefix predicate on the "end_time" field.
func EndTimeHasPrefix(v string) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldHasPrefix(FieldEndTime, v))
}

// EndTimeHasSuffix applies the HasSuffix predicate on the "end_time" field.
func EndTimeHasSuffix(v string) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldHasSuffix(FieldEndTime, v))
}

// EndTimeEqualFold applies the EqualFold predicate on the "end_time" field.
func EndTimeEqualFold(v string) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldEqualFold(FieldEndTime, v))
}

// EndTimeContainsFold applies the ContainsFold predicate on the "end_time" field.
func EndTimeContainsFold(v string) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldContainsFold(FieldEndTime, v))
}

// MaxPatientsEQ applies the EQ predicate on the "max_patients" field.
func MaxPatientsEQ(v int) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldEQ(FieldMaxPatients, v))
}

// MaxPatientsNEQ applies the NEQ predicate on the "max_patients" field.
func MaxPatientsNEQ(v int) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldNEQ(FieldMaxPatients, v))
}

// MaxPatientsIn applies the In predicate on the "max_patients" field.
func MaxPatientsIn(vs ...int) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldIn(FieldMaxPatients, vs...))
}

// MaxPatientsNotIn applies the NotIn predicate on the "max_patients" field.
func MaxPatientsNotIn(vs ...int) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldNotIn(FieldMaxPatients, vs...))
}

// MaxPatientsGT applies the GT predicate on the "max_patients" field.
func MaxPatientsGT(v int) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldGT(FieldMaxPatients, v))
}

// MaxPatientsGTE applies the GTE predicate on the "max_patients" field.
func MaxPatientsGTE(v int) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldGTE(FieldMaxPatients, v))
}

// MaxPatientsLT applies the LT predicate on the "max_patients" field.
func MaxPatientsLT(v int) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldLT(FieldMaxPatients, v))
}

// MaxPatientsLTE applies the LTE predicate on the "max_patients" field.
func MaxPatientsLTE(v int) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldLTE(FieldMaxPatients, v))
}

// ConsultationMinutesEQ applies the EQ predicate on the "consultation_minutes" field.
func ConsultationMinutesEQ(v int) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldEQ(FieldConsultationMinutes, v))
}

// ConsultationMinutesNEQ applies the NEQ predicate on the "consultation_minutes" field.
func ConsultationMinutesNEQ(v int) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldNEQ(FieldConsultationMinutes, v))
}

// ConsultationMinutesIn applies the In predicate on the "consultation_minutes" field.
func ConsultationMinutesIn(vs ...int) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldIn(FieldConsultationMinutes, vs...))
}

// ConsultationMinutesNotIn applies the NotIn predicate on the "consultation_minutes" field.
func ConsultationMinutesNotIn(vs ...int) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldNotIn(FieldConsultationMinutes, vs...))
}

// ConsultationMinutesGT applies the GT predicate on the "consultation_minutes" field.
func ConsultationMinutesGT(v int) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldGT(FieldConsultationMinutes, v))
}

// ConsultationMinutesGTE applies the GTE predicate on the "consultation_minutes" field.
func ConsultationMinutesGTE(v int) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldGTE(FieldConsultationMinutes, v))
}

// ConsultationMinutesLT applies the LT predicate on the "consultation_minutes" field.
func ConsultationMinutesLT(v int) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldLT(FieldConsultationMinutes, v))
}

// ConsultationMinutesLTE applies the LTE predicate on the "consultation_minutes" field.
func ConsultationMinutesLTE(v int) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldLTE(FieldConsultationMinutes, v))
}

// RoomNumberEQ applies the EQ predicate on the "room_number" field.
func RoomNumberEQ(v string) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldEQ(FieldRoomNumber, v))
}

// RoomNumberNEQ applies the NEQ predicate on the "room_number" field.
func RoomNumberNEQ(v string) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldNEQ(FieldRoomNumber, v))
}

// RoomNumberIn applies the In predicate on the "room_number" field.
func RoomNumberIn(vs ...string) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldIn(FieldRoomNumber, vs...))
}

// RoomNumberNotIn applies the NotIn predicate on the "room_number" field.
func RoomNumberNotIn(vs ...string) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldNotIn(FieldRoomNumber, vs...))
}

// RoomNumberGT applies the GT predicate on the "room_number" field.
func RoomNumberGT(v string) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldGT(FieldRoomNumber, v))
}

// RoomNumberGTE applies the GTE predicate on the "room_number" field.
func RoomNumberGTE(v string) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldGTE(FieldRoomNumber, v))
}

// RoomNumberLT applies the LT predicate on the "room_number" field.
func RoomNumberLT(v string) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldLT(FieldRoomNumber, v))
}

// RoomNumberLTE applies the LTE predicate on the "room_number" field.
func RoomNumberLTE(v string) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldLTE(FieldRoomNumber, v))
}

// RoomNumberContains applies the Contains predicate on the "room_number" field.
func RoomNumberContains(v string) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldContains(FieldRoomNumber, v))
}

// RoomNumberHasPrefix applies the HasPrefix predicate on the "room_number" field.
func RoomNumberHasPrefix(v string) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldHasPrefix(FieldRoomNumber, v))
}

// RoomNumberHasSuffix applies the HasSuffix predicate on the "room_number" field.
func RoomNumberHasSuffix(v string) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldHasSuffix(FieldRoomNumber, v))
}

// RoomNumberIsNil applies the IsNil predicate on the "room_number" field.
func RoomNumberIsNil() predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldIsNull(FieldRoomNumber))
}

// RoomNumberNotNil applies the NotNil predicate on the "room_number" field.
func RoomNumberNotNil() predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldNotNull(FieldRoomNumber))
}

// RoomNumberEqualFold applies the EqualFold predicate on the "room_number" field.
func RoomNumberEqualFold(v string) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldEqualFold(FieldRoomNumber, v))
}

// RoomNumberContainsFold applies the ContainsFold predicate on the "room_number" field.
func RoomNumberContainsFold(v string) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldContainsFold(FieldRoomNumber, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.FieldNEQ(FieldActive, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DoctorSchedule) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DoctorSchedule) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DoctorSchedule) predicate.DoctorSchedule {
	return predicate.DoctorSchedule(sql.NotPredicates(p))
}
