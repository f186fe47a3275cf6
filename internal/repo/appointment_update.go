// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/niramoy/niramoy_backend/internal/repo/appointment"
	"github.com/niramoy/niramoy_backend/internal/repo/predicate"
)

// AppointmentUpdate is the builder for updating Appointment entities.
type AppointmentUpdate struct {
	config
	hooks    []Hook
	mutation *AppointmentMutation
}

// Where appends a list predicates to the AppointmentUpdate builder.
func (_u *AppointmentUpdate) Where(ps ...predicate.Appointment) *AppointmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppointmentUpdate) SetUpdatedAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAppointmentNumber sets the "appointment_number" field.
func (_u *AppointmentUpdate) SetAppointmentNumber(v string) *AppointmentUpdate {
	_u.mutation.SetAppointmentNumber(v)
	return _u
}

// SetNillableAppointmentNumber sets the "appointment_number" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableAppointmentNumber(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetAppointmentNumber(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *AppointmentUpdate) SetPatientID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillablePatientID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *AppointmentUpdate) SetDoctorID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableDoctorID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetAppointmentDate sets the "appointment_date" field.
func (_u *AppointmentUpdate) SetAppointmentDate(v time.Time) *AppointmentUpdate {
	_u.mutation.SetAppointmentDate(v)
	return _u
}

// SetNillableAppointmentDate sets the "appointment_date" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableAppointmentDate(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetAppointmentDate(*v)
	}
	return _u
}

// SetSerialNumber sets the "serial_number" field.
func (_u *AppointmentUpdate) SetSerialNumber(v int) *AppointmentUpdate {
	_u.mutation.ResetSerialNumber()
	_u.mutation.SetSerialNumber(v)
	return _u
}

// SetNillableSerialNumber sets the "serial_number" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableSerialNumber(v *int) *AppointmentUpdate {
	if v != nil {
		_u.SetSerialNumber(*v)
	}
	return _u
}

// AddSerialNumber adds value to the "serial_number" field.
func (_u *AppointmentUpdate) AddSerialNumber(v int) *AppointmentUpdate {
	_u.mutation.AddSerialNumber(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AppointmentUpdate) SetStatus(v appointment.Status) *AppointmentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableStatus(v *appointment.Status) *AppointmentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *AppointmentUpdate) SetReason(v string) *AppointmentUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableReason(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *AppointmentUpdate) ClearReason() *AppointmentUpdate {
	_u.mutation.ClearReason()
	return _u
}

// SetRoomNumber sets the "room_number" field.
func (_u *AppointmentUpdate) SetRoomNumber(v string) *AppointmentUpdate {
	_u.mutation.SetRoomNumber(v)
	return _u
}

// SetNillableRoomNumber sets the "room_number" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableRoomNumber(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetRoomNumber(*v)
	}
	return _u
}

// ClearRoomNumber clears the value of the "room_number" field.
func (_u *AppointmentUpdate) ClearRoomNumber() *AppointmentUpdate {
	_u.mutation.ClearRoomNumber()
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *AppointmentUpdate) SetTotalAmount(v int64) *AppointmentUpdate {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableTotalAmount(v *int64) *AppointmentUpdate {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *AppointmentUpdate) AddTotalAmount(v int64) *AppointmentUpdate {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// SetAmountPaid sets the "amount_paid" field.
func (_u *AppointmentUpdate) SetAmountPaid(v int64) *AppointmentUpdate {
	_u.mutation.ResetAmountPaid()
	_u.mutation.SetAmountPaid(v)
	return _u
}

// SetNillableAmountPaid sets the "amount_paid" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableAmountPaid(v *int64) *AppointmentUpdate {
	if v != nil {
		_u.SetAmountPaid(*v)
	}
	return _u
}

// AddAmountPaid adds value to the "amount_paid" field.
func (_u *AppointmentUpdate) AddAmountPaid(v int64) *AppointmentUpdate {
	_u.mutation.AddAmountPaid(v)
	return _u
}

// SetCheckedInAt sets the "checked_in_at" field.
func (_u *AppointmentUpdate) SetCheckedInAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetCheckedInAt(v)
	return _u
}

// SetNillableCheckedInAt sets the "checked_in_at" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableCheckedInAt(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetCheckedInAt(*v)
	}
	return _u
}

// ClearCheckedInAt clears the value of the "checked_in_at" field.
func (_u *AppointmentUpdate) ClearCheckedInAt() *AppointmentUpdate {
	_u.mutation.ClearCheckedInAt()
	return _u
}

// SetCalledAt sets the "called_at" field.
func (_u *AppointmentUpdate) SetCalledAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetCalledAt(v)
	return _u
}

// SetNillableCalledAt sets the "called_at" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableCalledAt(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetCalledAt(*v)
	}
	return _u
}

// ClearCalledAt clears the value of the "called_at" field.
func (_u *AppointmentUpdate) ClearCalledAt() *AppointmentUpdate {
	_u.mutation.ClearCalledAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AppointmentUpdate) SetStartedAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableStartedAt(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AppointmentUpdate) ClearStartedAt() *AppointmentUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AppointmentUpdate) SetCompletedAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableCompletedAt(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AppointmentUpdate) ClearCompletedAt() *AppointmentUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *AppointmentUpdate) SetCancelledAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableCancelledAt(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *AppointmentUpdate) ClearCancelledAt() *AppointmentUpdate {
	_u.mutation.ClearCancelledAt()
	return _u
}

// SetNoShowAt sets the "no_show_at" field.
func (_u *AppointmentUpdate) SetNoShowAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetNoShowAt(v)
	return _u
}

// SetNillableNoShowAt sets the "no_show_at" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableNoShowAt(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetNoShowAt(*v)
	}
	return _u
}

// ClearNoShowAt clears the value of the "no_show_at" field.
func (_u *AppointmentUpdate) ClearNoShowAt() *AppointmentUpdate {
	_u.mutation.ClearNoShowAt()
	return _u
}

// SetCancellationReason sets the "cancellation_reason" field.
func (_u *AppointmentUpdate) SetCancellationReason(v string) *AppointmentUpdate {
	_u.mutation.SetCancellationReason(v)
	return _u
}

// SetNillableCancellationReason sets the "cancellation_reason" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableCancellationReason(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetCancellationReason(*v)
	}
	return _u
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (_u *AppointmentUpdate) ClearCancellationReason() *AppointmentUpdate {
	_u.mutation.ClearCancellationReason()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *AppointmentUpdate) SetCreatedBy(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableCreatedBy(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *AppointmentUpdate) ClearCreatedBy() *AppointmentUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// Mutation returns the AppointmentMutation object of the builder.
func (_u *AppointmentUpdate) Mutation() *AppointmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AppointmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AppointmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppointmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appointment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentUpdate) check() error {
	if v, ok := _u.mutation.AppointmentNumber(); ok {
		if err := appointment.AppointmentNumberValidator(v); err != nil {
			return &ValidationError{Name: "appointment_number", err: fmt.Errorf(`repo: validator failed for field "Appointment.appointment_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SerialNumber(); ok {
		if err := appointment.SerialNumberValidator(v); err != nil {
			return &ValidationError{Name: "serial_number", err: fmt.Errorf(`repo: validator failed for field "Appointment.serial_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RoomNumber(); ok {
		if err := appointment.RoomNumberValidator(v); err != nil {
			return &ValidationError{Name: "room_number", err: fmt.Errorf(`repo: validator failed for field "Appointment.room_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AmountPaid(); ok {
		if err := appointment.AmountPaidValidator(v); err != nil {
			return &ValidationError{Name: "amount_paid", err: fmt.Errorf(`repo: validator failed for field "Appointment.amount_paid": %w`, err)}
		}
	}
	return nil
}

func (_u *AppointmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointment.Table, appointment.Columns, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AppointmentNumber(); ok {
		_spec.SetField(appointment.FieldAppointmentNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(appointment.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(appointment.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.AppointmentDate(); ok {
		_spec.SetField(appointment.FieldAppointmentDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SerialNumber(); ok {
		_spec.SetField(appointment.FieldSerialNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSerialNumber(); ok {
		_spec.AddField(appointment.FieldSerialNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(appointment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(appointment.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(appointment.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.RoomNumber(); ok {
		_spec.SetField(appointment.FieldRoomNumber, field.TypeString, value)
	}
	if _u.mutation.RoomNumberCleared() {
		_spec.ClearField(appointment.FieldRoomNumber, field.TypeString)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(appointment.FieldTotalAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(appointment.FieldTotalAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AmountPaid(); ok {
		_spec.SetField(appointment.FieldAmountPaid, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmountPaid(); ok {
		_spec.AddField(appointment.FieldAmountPaid, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CheckedInAt(); ok {
		_spec.SetField(appointment.FieldCheckedInAt, field.TypeTime, value)
	}
	if _u.mutation.CheckedInAtCleared() {
		_spec.ClearField(appointment.FieldCheckedInAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CalledAt(); ok {
		_spec.SetField(appointment.FieldCalledAt, field.TypeTime, value)
	}
	if _u.mutation.CalledAtCleared() {
		_spec.ClearField(appointment.FieldCalledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(appointment.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(appointment.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(appointment.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(appointment.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(appointment.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(appointment.FieldCancelledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NoShowAt(); ok {
		_spec.SetField(appointment.FieldNoShowAt, field.TypeTime, value)
	}
	if _u.mutation.NoShowAtCleared() {
		_spec.ClearField(appointment.FieldNoShowAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancellationReason(); ok {
		_spec.SetField(appointment.FieldCancellationReason, field.TypeString, value)
	}
	if _u.mutation.CancellationReasonCleared() {
		_spec.ClearField(appointment.FieldCancellationReason, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(appointment.FieldCreatedBy, field.TypeUUID, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(appointment.FieldCreatedBy, field.TypeUUID)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AppointmentUpdateOne is the builder for updating a single Appointment entity.
type AppointmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AppointmentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppointmentUpdateOne) SetUpdatedAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAppointmentNumber sets the "appointment_number" field.
func (_u *AppointmentUpdateOne) SetAppointmentNumber(v string) *AppointmentUpdateOne {
	_u.mutation.SetAppointmentNumber(v)
	return _u
}

// SetNillableAppointmentNumber sets the "appointment_number" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableAppointmentNumber(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetAppointmentNumber(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *AppointmentUpdateOne) SetPatientID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillablePatientID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *AppointmentUpdateOne) SetDoctorID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableDoctorID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetAppointmentDate sets the "appointment_date" field.
func (_u *AppointmentUpdateOne) SetAppointmentDate(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetAppointmentDate(v)
	return _u
}

// SetNillableAppointmentDate sets the "appointment_date" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableAppointmentDate(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetAppointmentDate(*v)
	}
	return _u
}

// SetSerialNumber sets the "serial_number" field.
func (_u *AppointmentUpdateOne) SetSerialNumber(v int) *AppointmentUpdateOne {
	_u.mutation.ResetSerialNumber()
	_u.mutation.SetSerialNumber(v)
	return _u
}

// SetNillableSerialNumber sets the "serial_number" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableSerialNumber(v *int) *AppointmentUpdateOne {
	if v != nil {
		_u.SetSerialNumber(*v)
	}
	return _u
}

// AddSerialNumber adds value to the "serial_number" field.
func (_u *AppointmentUpdateOne) AddSerialNumber(v int) *AppointmentUpdateOne {
	_u.mutation.AddSerialNumber(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AppointmentUpdateOne) SetStatus(v appointment.Status) *AppointmentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableStatus(v *appointment.Status) *AppointmentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *AppointmentUpdateOne) SetReason(v string) *AppointmentUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableReason(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *AppointmentUpdateOne) ClearReason() *AppointmentUpdateOne {
	_u.mutation.ClearReason()
	return _u
}

// SetRoomNumber sets the "room_number" field.
func (_u *AppointmentUpdateOne) SetRoomNumber(v string) *AppointmentUpdateOne {
	_u.mutation.SetRoomNumber(v)
	return _u
}

// SetNillableRoomNumber sets the "room_number" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableRoomNumber(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetRoomNumber(*v)
	}
	return _u
}

// ClearRoomNumber clears the value of the "room_number" field.
func (_u *AppointmentUpdateOne) ClearRoomNumber() *AppointmentUpdateOne {
	_u.mutation.ClearRoomNumber()
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *AppointmentUpdateOne) SetTotalAmount(v int64) *AppointmentUpdateOne {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableTotalAmount(v *int64) *AppointmentUpdateOne {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *AppointmentUpdateOne) AddTotalAmount(v int64) *AppointmentUpdateOne {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// SetAmountPaid sets the "amount_paid" field.
func (_u *AppointmentUpdateOne) SetAmountPaid(v int64) *AppointmentUpdateOne {
	_u.mutation.ResetAmountPaid()
	_u.mutation.SetAmountPaid(v)
	return _u
}

// SetNillableAmountPaid sets the "amount_paid" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableAmountPaid(v *int64) *AppointmentUpdateOne {
	if v != nil {
		_u.SetAmountPaid(*v)
	}
	return _u
}

// AddAmountPaid adds value to the "amount_paid" field.
func (_u *AppointmentUpdateOne) AddAmountPaid(v int64) *AppointmentUpdateOne {
	_u.mutation.AddAmountPaid(v)
	return _u
}

// SetCheckedInAt sets the "checked_in_at" field.
func (_u *AppointmentUpdateOne) SetCheckedInAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetCheckedInAt(v)
	return _u
}

// SetNillableCheckedInAt sets the "checked_in_at" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableCheckedInAt(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetCheckedInAt(*v)
	}
	return _u
}

// ClearCheckedInAt clears the value of the "checked_in_at" field.
func (_u *AppointmentUpdateOne) ClearCheckedInAt() *AppointmentUpdateOne {
	_u.mutation.ClearCheckedInAt()
	return _u
}

// SetCalledAt sets the "called_at" field.
func (_u *AppointmentUpdateOne) SetCalledAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetCalledAt(v)
	return _u
}

// SetNillableCalledAt sets the "called_at" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableCalledAt(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetCalledAt(*v)
	}
	return _u
}

// ClearCalledAt clears the value of the "called_at" field.
func (_u *AppointmentUpdateOne) ClearCalledAt() *AppointmentUpdateOne {
	_u.mutation.ClearCalledAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AppointmentUpdateOne) SetStartedAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableStartedAt(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AppointmentUpdateOne) ClearStartedAt() *AppointmentUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AppointmentUpdateOne) SetCompletedAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableCompletedAt(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AppointmentUpdateOne) ClearCompletedAt() *AppointmentUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *AppointmentUpdateOne) SetCancelledAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableCancelledAt(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *AppointmentUpdateOne) ClearCancelledAt() *AppointmentUpdateOne {
	_u.mutation.ClearCancelledAt()
	return _u
}

// SetNoShowAt sets the "no_show_at" field.
func (_u *AppointmentUpdateOne) SetNoShowAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetNoShowAt(v)
	return _u
}

// SetNillableNoShowAt sets the "no_show_at" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableNoShowAt(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetNoShowAt(*v)
	}
	return _u
}

// ClearNoShowAt clears the value of the "no_show_at" field.
func (_u *AppointmentUpdateOne) ClearNoShowAt() *AppointmentUpdateOne {
	_u.mutation.ClearNoShowAt()
	return _u
}

// SetCancellationReason sets the "cancellation_reason" field.
func (_u *AppointmentUpdateOne) SetCancellationReason(v string) *AppointmentUpdateOne {
	_u.mutation.SetCancellationReason(v)
	return _u
}

// SetNillableCancellationReason sets the "cancellation_reason" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableCancellationReason(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetCancellationReason(*v)
	}
	return _u
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (_u *AppointmentUpdateOne) ClearCancellationReason() *AppointmentUpdateOne {
	_u.mutation.ClearCancellationReason()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *AppointmentUpdateOne) SetCreatedBy(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableCreatedBy(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *AppointmentUpdateOne) ClearCreatedBy() *AppointmentUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// Mutation returns the AppointmentMutation object of the builder.
func (_u *AppointmentUpdateOne) Mutation() *AppointmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the AppointmentUpdate builder.
func (_u *AppointmentUpdateOne) Where(ps ...predicate.Appointment) *AppointmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AppointmentUpdateOne) Select(field string, fields ...string) *AppointmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Appointment entity.
func (_u *AppointmentUpdateOne) Save(ctx context.Context) (*Appointment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentUpdateOne) SaveX(ctx context.Context) *Appointment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AppointmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppointmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appointment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentUpdateOne) check() error {
	if v, ok := _u.mutation.AppointmentNumber(); ok {
		if err := appointment.AppointmentNumberValidator(v); err != nil {
			return &ValidationError{Name: "appointment_number", err: fmt.Errorf(`repo: validator failed for field "Appointment.appointment_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SerialNumber(); ok {
		if err := appointment.SerialNumberValidator(v); err != nil {
			return &ValidationError{Name: "serial_number", err: fmt.Errorf(`repo: validator failed for field "Appointment.serial_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RoomNumber(); ok {
		if err := appointment.RoomNumberValidator(v); err != nil {
			return &ValidationError{Name: "room_number", err: fmt.Errorf(`repo: validator failed for field "Appointment.room_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AmountPaid(); ok {
		if err := appointment.AmountPaidValidator(v); err != nil {
			return &ValidationError{Name: "amount_paid", err: fmt.Errorf(`repo: validator failed for field "Appointment.amount_paid": %w`, err)}
		}
	}
	return nil
}

func (_u *AppointmentUpdateOne) sqlSave(ctx context.Context) (_node *Appointment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointment.Table, appointment.Columns, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Appointment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, appointment.FieldID)
		for _, f := range fields {
			if !appointment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != appointment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AppointmentNumber(); ok {
		_spec.SetField(appointment.FieldAppointmentNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(appointment.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(appointment.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.AppointmentDate(); ok {
		_spec.SetField(appointment.FieldAppointmentDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SerialNumber(); ok {
		_spec.SetField(appointment.FieldSerialNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSerialNumber(); ok {
		_spec.AddField(appointment.FieldSerialNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(appointment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(appointment.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(appointment.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.RoomNumber(); ok {
		_spec.SetField(appointment.FieldRoomNumber, field.TypeString, value)
	}
	if _u.mutation.RoomNumberCleared() {
		_spec.ClearField(appointment.FieldRoomNumber, field.TypeString)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(appointment.FieldTotalAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(appointment.FieldTotalAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AmountPaid(); ok {
		_spec.SetField(appointment.FieldAmountPaid, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmountPaid(); ok {
		_spec.AddField(appointment.FieldAmountPaid, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CheckedInAt(); ok {
		_spec.SetField(appointment.FieldCheckedInAt, field.TypeTime, value)
	}
	if _u.mutation.CheckedInAtCleared() {
		_spec.ClearField(appointment.FieldCheckedInAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CalledAt(); ok {
		_spec.SetField(appointment.FieldCalledAt, field.TypeTime, value)
	}
	if _u.mutation.CalledAtCleared() {
		_spec.ClearField(appointment.FieldCalledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(appointment.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(appointment.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(appointment.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(appointment.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(appointment.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(appointment.FieldCancelledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NoShowAt(); ok {
		_spec.SetField(appointment.FieldNoShowAt, field.TypeTime, value)
	}
	if _u.mutation.NoShowAtCleared() {
		_spec.ClearField(appointment.FieldNoShowAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancellationReason(); ok {
		_spec.SetField(appointment.FieldCancellationReason, field.TypeString, value)
	}
	if _u.mutation.CancellationReasonCleared() {
		_spec.ClearField(appointment.FieldCancellationReason, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(appointment.FieldCreatedBy, field.TypeUUID, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(appointment.FieldCreatedBy, field.TypeUUID)
	}
	_node = &Appointment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
