// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/niramoy/niramoy_backend/internal/repo/appointment"
	"github.com/niramoy/niramoy_backend/internal/repo/canteenitem"
	"github.com/niramoy/niramoy_backend/internal/repo/canteensale"
	"github.com/niramoy/niramoy_backend/internal/repo/canteensaleitem"
	"github.com/niramoy/niramoy_backend/internal/repo/doctoravailability"
	"github.com/niramoy/niramoy_backend/internal/repo/doctorschedule"
	"github.com/niramoy/niramoy_backend/internal/repo/drug"
	"github.com/niramoy/niramoy_backend/internal/repo/expense"
	"github.com/niramoy/niramoy_backend/internal/repo/income"
	"github.com/niramoy/niramoy_backend/internal/repo/laborder"
	"github.com/niramoy/niramoy_backend/internal/repo/labresult"
	"github.com/niramoy/niramoy_backend/internal/repo/labtest"
	"github.com/niramoy/niramoy_backend/internal/repo/patient"
	"github.com/niramoy/niramoy_backend/internal/repo/pctransaction"
	"github.com/niramoy/niramoy_backend/internal/repo/pharmacysale"
	"github.com/niramoy/niramoy_backend/internal/repo/predicate"
	"github.com/niramoy/niramoy_backend/internal/repo/prescription"
	"github.com/niramoy/niramoy_backend/internal/repo/prescriptionmedicine"
	"github.com/niramoy/niramoy_backend/internal/repo/saleitem"
	"github.com/niramoy/niramoy_backend/internal/repo/staff"
	"github.com/niramoy/niramoy_backend/internal/repo/stockadjustment"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAppointment          = "Appointment"
	TypeCanteenItem          = "CanteenItem"
	TypeCanteenSale          = "CanteenSale"
	TypeCanteenSaleItem      = "CanteenSaleItem"
	TypeDoctorAvailability   = "DoctorAvailability"
	TypeDoctorSchedule       = "DoctorSchedule"
	TypeDrug                 = "Drug"
	TypeExpense              = "Expense"
	TypeIncome               = "Income"
	TypeLabOrder             = "LabOrder"
	TypeLabResult            = "LabResult"
	TypeLabTest              = "LabTest"
	TypePCTransaction        = "PCTransaction"
	TypePatient              = "Patient"
	TypePharmacySale         = "PharmacySale"
	TypePrescription         = "Prescription"
	TypePrescriptionMedicine = "PrescriptionMedicine"
	TypeSaleItem             = "SaleItem"
	TypeStaff                = "Staff"
	TypeStockAdjustment      = "StockAdjustment"
)

// AppointmentMutation represents an operation that mutates the Appointment nodes in the graph.
type AppointmentMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	created_at          *time.Time
	updated_at          *time.Time
	appointment_number  *string
	patient_id          *uuid.UUID
	doctor_id           *uuid.UUID
	appointment_date    *time.Time
	serial_number       *int
	addserial_number    *int
	status              *appointment.Status
	reason              *string
	room_number         *string
	total_amount        *int64
	addtotal_amount     *int64
	amount_paid         *int64
	addamount_paid      *int64
	checked_in_at       *time.Time
	called_at           *time.Time
	started_at          *time.Time
	completed_at        *time.Time
	cancelled_at        *time.Time
	no_show_at          *time.Time
	cancellation_reason *string
	created_by          *uuid.UUID
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Appointment, error)
	predicates          []predicate.Appointment
}

var _ ent.Mutation = (*AppointmentMutation)(nil)

// appointmentOption allows management of the mutation configuration using functional options.
type appointmentOption func(*AppointmentMutation)

// newAppointmentMutation creates new mutation for the Appointment entity.
func newAppointmentMutation(c config, op Op, opts ...appointmentOption) *AppointmentMutation {
	m := &AppointmentMutation{
		config:        c,
		op:            op,
		typ:           TypeAppointment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAppointmentID sets the ID field of the mutation.
func withAppointmentID(id uuid.UUID) appointmentOption {
	return func(m *AppointmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Appointment
		)
		m.oldValue = func(ctx context.Context) (*Appointment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Appointment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAppointment sets the old Appointment of the mutation.
func withAppointment(node *Appointment) appointmentOption {
	return func(m *AppointmentMutation) {
		m.oldValue = func(context.Context) (*Appointment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AppointmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AppointmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Appointment entities.
func (m *AppointmentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AppointmentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AppointmentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Appointment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AppointmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AppointmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AppointmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AppointmentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AppointmentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AppointmentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetAppointmentNumber sets the "appointment_number" field.
func (m *AppointmentMutation) SetAppointmentNumber(s string) {
	m.appointment_number = &s
}

// AppointmentNumber returns the value of the "appointment_number" field in the mutation.
func (m *AppointmentMutation) AppointmentNumber() (r string, exists bool) {
	v := m.appointment_number
	if v == nil {
		return
	}
	return *v, true
}

// OldAppointmentNumber returns the old "appointment_number" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldAppointmentNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppointmentNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppointmentNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppointmentNumber: %w", err)
	}
	return oldValue.AppointmentNumber, nil
}

// ResetAppointmentNumber resets all changes to the "appointment_number" field.
func (m *AppointmentMutation) ResetAppointmentNumber() {
	m.appointment_number = nil
}

// SetPatientID sets the "patient_id" field.
func (m *AppointmentMutation) SetPatientID(u uuid.UUID) {
	m.patient_id = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *AppointmentMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *AppointmentMutation) ResetPatientID() {
	m.patient_id = nil
}

// SetDoctorID sets the "doctor_id" field.
func (m *AppointmentMutation) SetDoctorID(u uuid.UUID) {
	m.doctor_id = &u
}

// DoctorID returns the value of the "doctor_id" field in the mutation.
func (m *AppointmentMutation) DoctorID() (r uuid.UUID, exists bool) {
	v := m.doctor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDoctorID returns the old "doctor_id" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldDoctorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoctorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoctorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoctorID: %w", err)
	}
	return oldValue.DoctorID, nil
}

// ResetDoctorID resets all changes to the "doctor_id" field.
func (m *AppointmentMutation) ResetDoctorID() {
	m.doctor_id = nil
}

// SetAppointmentDate sets the "appointment_date" field.
func (m *AppointmentMutation) SetAppointmentDate(t time.Time) {
	m.appointment_date = &t
}

// AppointmentDate returns the value of the "appointment_date" field in the mutation.
func (m *AppointmentMutation) AppointmentDate() (r time.Time, exists bool) {
	v := m.appointment_date
	if v == nil {
		return
	}
	return *v, true
}

// OldAppointmentDate returns the old "appointment_date" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldAppointmentDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppointmentDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppointmentDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppointmentDate: %w", err)
	}
	return oldValue.AppointmentDate, nil
}

// ResetAppointmentDate resets all changes to the "appointment_date" field.
func (m *AppointmentMutation) ResetAppointmentDate() {
	m.appointment_date = nil
}

// SetSerialNumber sets the "serial_number" field.
func (m *AppointmentMutation) SetSerialNumber(i int) {
	m.serial_number = &i
	m.addserial_number = nil
}

// SerialNumber returns the value of the "serial_number" field in the mutation.
func (m *AppointmentMutation) SerialNumber() (r int, exists bool) {
	v := m.serial_number
	if v == nil {
		return
	}
	return *v, true
}

// OldSerialNumber returns the old "serial_number" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldSerialNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSerialNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSerialNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSerialNumber: %w", err)
	}
	return oldValue.SerialNumber, nil
}

// AddSerialNumber adds i to the "serial_number" field.
func (m *AppointmentMutation) AddSerialNumber(i int) {
	if m.addserial_number != nil {
		*m.addserial_number += i
	} else {
		m.addserial_number = &i
	}
}

// AddedSerialNumber returns the value that was added to the "serial_number" field in this mutation.
func (m *AppointmentMutation) AddedSerialNumber() (r int, exists bool) {
	v := m.addserial_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetSerialNumber resets all changes to the "serial_number" field.
func (m *AppointmentMutation) ResetSerialNumber() {
	m.serial_number = nil
	m.addserial_number = nil
}

// SetStatus sets the "status" field.
func (m *AppointmentMutation) SetStatus(a appointment.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AppointmentMutation) Status() (r appointment.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldStatus(ctx context.Context) (v appointment.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AppointmentMutation) ResetStatus() {
	m.status = nil
}

// SetReason sets the "reason" field.
func (m *AppointmentMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *AppointmentMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *AppointmentMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[appointment.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *AppointmentMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[appointment.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *AppointmentMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, appointment.FieldReason)
}

// SetRoomNumber sets the "room_number" field.
func (m *AppointmentMutation) SetRoomNumber(s string) {
	m.room_number = &s
}

// RoomNumber returns the value of the "room_number" field in the mutation.
func (m *AppointmentMutation) RoomNumber() (r string, exists bool) {
	v := m.room_number
	if v == nil {
		return
	}
	return *v, true
}

// OldRoomNumber returns the old "room_number" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldRoomNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoomNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoomNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoomNumber: %w", err)
	}
	return oldValue.RoomNumber, nil
}

// ClearRoomNumber clears the value of the "room_number" field.
func (m *AppointmentMutation) ClearRoomNumber() {
	m.room_number = nil
	m.clearedFields[appointment.FieldRoomNumber] = struct{}{}
}

// RoomNumberCleared returns if the "room_number" field was cleared in this mutation.
func (m *AppointmentMutation) RoomNumberCleared() bool {
	_, ok := m.clearedFields[appointment.FieldRoomNumber]
	return ok
}

// ResetRoomNumber resets all changes to the "room_number" field.
func (m *AppointmentMutation) ResetRoomNumber() {
	m.room_number = nil
	delete(m.clearedFields, appointment.FieldRoomNumber)
}

// SetTotalAmount sets the "total_amount" field.
func (m *AppointmentMutation) SetTotalAmount(i int64) {
	m.total_amount = &i
	m.addtotal_amount = nil
}

// TotalAmount returns the value of the "total_amount" field in the mutation.
func (m *AppointmentMutation) TotalAmount() (r int64, exists bool) {
	v := m.total_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAmount returns the old "total_amount" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldTotalAmount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAmount: %w", err)
	}
	return oldValue.TotalAmount, nil
}

// AddTotalAmount adds i to the "total_amount" field.
func (m *AppointmentMutation) AddTotalAmount(i int64) {
	if m.addtotal_amount != nil {
		*m.addtotal_amount += i
	} else {
		m.addtotal_amount = &i
	}
}

// AddedTotalAmount returns the value that was added to the "total_amount" field in this mutation.
func (m *AppointmentMutation) AddedTotalAmount() (r int64, exists bool) {
	v := m.addtotal_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalAmount resets all changes to the "total_amount" field.
func (m *AppointmentMutation) ResetTotalAmount() {
	m.total_amount = nil
	m.addtotal_amount = nil
}

// SetAmountPaid sets the "amount_paid" field.
func (m *AppointmentMutation) SetAmountPaid(i int64) {
	m.amount_paid = &i
	m.addamount_paid = nil
}

// AmountPaid returns the value of the "amount_paid" field in the mutation.
func (m *AppointmentMutation) AmountPaid() (r int64, exists bool) {
	v := m.amount_paid
	if v == nil {
		return
	}
	return *v, true
}

// OldAmountPaid returns the old "amount_paid" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldAmountPaid(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmountPaid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmountPaid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmountPaid: %w", err)
	}
	return oldValue.AmountPaid, nil
}

// AddAmountPaid adds i to the "amount_paid" field.
func (m *AppointmentMutation) AddAmountPaid(i int64) {
	if m.addamount_paid != nil {
		*m.addamount_paid += i
	} else {
		m.addamount_paid = &i
	}
}

// AddedAmountPaid returns the value that was added to the "amount_paid" field in this mutation.
func (m *AppointmentMutation) AddedAmountPaid() (r int64, exists bool) {
	v := m.addamount_paid
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmountPaid resets all changes to the "amount_paid" field.
func (m *AppointmentMutation) ResetAmountPaid() {
	m.amount_paid = nil
	m.addamount_paid = nil
}

// SetCheckedInAt sets the "checked_in_at" field.
func (m *AppointmentMutation) SetCheckedInAt(t time.Time) {
	m.checked_in_at = &t
}

// CheckedInAt returns the value of the "checked_in_at" field in the mutation.
func (m *AppointmentMutation) CheckedInAt() (r time.Time, exists bool) {
	v := m.checked_in_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckedInAt returns the old "checked_in_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldCheckedInAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckedInAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckedInAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckedInAt: %w", err)
	}
	return oldValue.CheckedInAt, nil
}

// ClearCheckedInAt clears the value of the "checked_in_at" field.
func (m *AppointmentMutation) ClearCheckedInAt() {
	m.checked_in_at = nil
	m.clearedFields[appointment.FieldCheckedInAt] = struct{}{}
}

// CheckedInAtCleared returns if the "checked_in_at" field was cleared in this mutation.
func (m *AppointmentMutation) CheckedInAtCleared() bool {
	_, ok := m.clearedFields[appointment.FieldCheckedInAt]
	return ok
}

// ResetCheckedInAt resets all changes to the "checked_in_at" field.
func (m *AppointmentMutation) ResetCheckedInAt() {
	m.checked_in_at = nil
	delete(m.clearedFields, appointment.FieldCheckedInAt)
}

// SetCalledAt sets the "called_at" field.
func (m *AppointmentMutation) SetCalledAt(t time.Time) {
	m.called_at = &t
}

// CalledAt returns the value of the "called_at" field in the mutation.
func (m *AppointmentMutation) CalledAt() (r time.Time, exists bool) {
	v := m.called_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCalledAt returns the old "called_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldCalledAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCalledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCalledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCalledAt: %w", err)
	}
	return oldValue.CalledAt, nil
}

// ClearCalledAt clears the value of the "called_at" field.
func (m *AppointmentMutation) ClearCalledAt() {
	m.called_at = nil
	m.clearedFields[appointment.FieldCalledAt] = struct{}{}
}

// CalledAtCleared returns if the "called_at" field was cleared in this mutation.
func (m *AppointmentMutation) CalledAtCleared() bool {
	_, ok := m.clearedFields[appointment.FieldCalledAt]
	return ok
}

// ResetCalledAt resets all changes to the "called_at" field.
func (m *AppointmentMutation) ResetCalledAt() {
	m.called_at = nil
	delete(m.clearedFields, appointment.FieldCalledAt)
}

// SetStartedAt sets the "started_at" field.
func (m *AppointmentMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AppointmentMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *AppointmentMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[appointment.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *AppointmentMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[appointment.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AppointmentMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, appointment.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *AppointmentMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *AppointmentMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *AppointmentMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[appointment.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *AppointmentMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[appointment.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *AppointmentMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, appointment.FieldCompletedAt)
}

// SetCancelledAt sets the "cancelled_at" field.
func (m *AppointmentMutation) SetCancelledAt(t time.Time) {
	m.cancelled_at = &t
}

// CancelledAt returns the value of the "cancelled_at" field in the mutation.
func (m *AppointmentMutation) CancelledAt() (r time.Time, exists bool) {
	v := m.cancelled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelledAt returns the old "cancelled_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldCancelledAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelledAt: %w", err)
	}
	return oldValue.CancelledAt, nil
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (m *AppointmentMutation) ClearCancelledAt() {
	m.cancelled_at = nil
	m.clearedFields[appointment.FieldCancelledAt] = struct{}{}
}

// CancelledAtCleared returns if the "cancelled_at" field was cleared in this mutation.
func (m *AppointmentMutation) CancelledAtCleared() bool {
	_, ok := m.clearedFields[appointment.FieldCancelledAt]
	return ok
}

// ResetCancelledAt resets all changes to the "cancelled_at" field.
func (m *AppointmentMutation) ResetCancelledAt() {
	m.cancelled_at = nil
	delete(m.clearedFields, appointment.FieldCancelledAt)
}

// SetNoShowAt sets the "no_show_at" field.
func (m *AppointmentMutation) SetNoShowAt(t time.Time) {
	m.no_show_at = &t
}

// NoShowAt returns the value of the "no_show_at" field in the mutation.
func (m *AppointmentMutation) NoShowAt() (r time.Time, exists bool) {
	v := m.no_show_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNoShowAt returns the old "no_show_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldNoShowAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNoShowAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNoShowAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNoShowAt: %w", err)
	}
	return oldValue.NoShowAt, nil
}

// ClearNoShowAt clears the value of the "no_show_at" field.
func (m *AppointmentMutation) ClearNoShowAt() {
	m.no_show_at = nil
	m.clearedFields[appointment.FieldNoShowAt] = struct{}{}
}

// NoShowAtCleared returns if the "no_show_at" field was cleared in this mutation.
func (m *AppointmentMutation) NoShowAtCleared() bool {
	_, ok := m.clearedFields[appointment.FieldNoShowAt]
	return ok
}

// ResetNoShowAt resets all changes to the "no_show_at" field.
func (m *AppointmentMutation) ResetNoShowAt() {
	m.no_show_at = nil
	delete(m.clearedFields, appointment.FieldNoShowAt)
}

// SetCancellationReason sets the "cancellation_reason" field.
func (m *AppointmentMutation) SetCancellationReason(s string) {
	m.cancellation_reason = &s
}

// CancellationReason returns the value of the "cancellation_reason" field in the mutation.
func (m *AppointmentMutation) CancellationReason() (r string, exists bool) {
	v := m.cancellation_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldCancellationReason returns the old "cancellation_reason" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldCancellationReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancellationReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancellationReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancellationReason: %w", err)
	}
	return oldValue.CancellationReason, nil
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (m *AppointmentMutation) ClearCancellationReason() {
	m.cancellation_reason = nil
	m.clearedFields[appointment.FieldCancellationReason] = struct{}{}
}

// CancellationReasonCleared returns if the "cancellation_reason" field was cleared in this mutation.
func (m *AppointmentMutation) CancellationReasonCleared() bool {
	_, ok := m.clearedFields[appointment.FieldCancellationReason]
	return ok
}

// ResetCancellationReason resets all changes to the "cancellation_reason" field.
func (m *AppointmentMutation) ResetCancellationReason() {
	m.cancellation_reason = nil
	delete(m.clearedFields, appointment.FieldCancellationReason)
}

// SetCreatedBy sets the "created_by" field.
func (m *AppointmentMutation) SetCreatedBy(u uuid.UUID) {
	m.created_by = &u
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *AppointmentMutation) CreatedBy() (r uuid.UUID, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldCreatedBy(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *AppointmentMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[appointment.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *AppointmentMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[appointment.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *AppointmentMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, appointment.FieldCreatedBy)
}

// Where appends a list predicates to the AppointmentMutation builder.
func (m *AppointmentMutation) Where(ps ...predicate.Appointment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AppointmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AppointmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Appointment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AppointmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AppointmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Appointment).
func (m *AppointmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AppointmentMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.created_at != nil {
		fields = append(fields, appointment.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, appointment.FieldUpdatedAt)
	}
	if m.appointment_number != nil {
		fields = append(fields, appointment.FieldAppointmentNumber)
	}
	if m.patient_id != nil {
		fields = append(fields, appointment.FieldPatientID)
	}
	if m.doctor_id != nil {
		fields = append(fields, appointment.FieldDoctorID)
	}
	if m.appointment_date != nil {
		fields = append(fields, appointment.FieldAppointmentDate)
	}
	if m.serial_number != nil {
		fields = append(fields, appointment.FieldSerialNumber)
	}
	if m.status != nil {
		fields = append(fields, appointment.FieldStatus)
	}
	if m.reason != nil {
		fields = append(fields, appointment.FieldReason)
	}
	if m.room_number != nil {
		fields = append(fields, appointment.FieldRoomNumber)
	}
	if m.total_amount != nil {
		fields = append(fields, appointment.FieldTotalAmount)
	}
	if m.amount_paid != nil {
		fields = append(fields, appointment.FieldAmountPaid)
	}
	if m.checked_in_at != nil {
		fields = append(fields, appointment.FieldCheckedInAt)
	}
	if m.called_at != nil {
		fields = append(fields, appointment.FieldCalledAt)
	}
	if m.started_at != nil {
		fields = append(fields, appointment.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, appointment.FieldCompletedAt)
	}
	if m.cancelled_at != nil {
		fields = append(fields, appointment.FieldCancelledAt)
	}
	if m.no_show_at != nil {
		fields = append(fields, appointment.FieldNoShowAt)
	}
	if m.cancellation_reason != nil {
		fields = append(fields, appointment.FieldCancellationReason)
	}
	if m.created_by != nil {
		fields = append(fields, appointment.FieldCreatedBy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AppointmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case appointment.FieldCreatedAt:
		return m.CreatedAt()
	case appointment.FieldUpdatedAt:
		return m.UpdatedAt()
	case appointment.FieldAppointmentNumber:
		return m.AppointmentNumber()
	case appointment.FieldPatientID:
		return m.PatientID()
	case appointment.FieldDoctorID:
		return m.DoctorID()
	case appointment.FieldAppointmentDate:
		return m.AppointmentDate()
	case appointment.FieldSerialNumber:
		return m.SerialNumber()
	case appointment.FieldStatus:
		return m.Status()
	case appointment.FieldReason:
		return m.Reason()
	case appointment.FieldRoomNumber:
		return m.RoomNumber()
	case appointment.FieldTotalAmount:
		return m.TotalAmount()
	case appointment.FieldAmountPaid:
		return m.AmountPaid()
	case appointment.FieldCheckedInAt:
		return m.CheckedInAt()
	case appointment.FieldCalledAt:
		return m.CalledAt()
	case appointment.FieldStartedAt:
		return m.StartedAt()
	case appointment.FieldCompletedAt:
		return m.CompletedAt()
	case appointment.FieldCancelledAt:
		return m.CancelledAt()
	case appointment.FieldNoShowAt:
		return m.NoShowAt()
	case appointment.FieldCancellationReason:
		return m.CancellationReason()
	case appointment.FieldCreatedBy:
		return m.CreatedBy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AppointmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case appointment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case appointment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case appointment.FieldAppointmentNumber:
		return m.OldAppointmentNumber(ctx)
	case appointment.FieldPatientID:
		return m.OldPatientID(ctx)
	case appointment.FieldDoctorID:
		return m.OldDoctorID(ctx)
	case appointment.FieldAppointmentDate:
		return m.OldAppointmentDate(ctx)
	case appointment.FieldSerialNumber:
		return m.OldSerialNumber(ctx)
	case appointment.FieldStatus:
		return m.OldStatus(ctx)
	case appointment.FieldReason:
		return m.OldReason(ctx)
	case appointment.FieldRoomNumber:
		return m.OldRoomNumber(ctx)
	case appointment.FieldTotalAmount:
		return m.OldTotalAmount(ctx)
	case appointment.FieldAmountPaid:
		return m.OldAmountPaid(ctx)
	case appointment.FieldCheckedInAt:
		return m.OldCheckedInAt(ctx)
	case appointment.FieldCalledAt:
		return m.OldCalledAt(ctx)
	case appointment.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case appointment.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case appointment.FieldCancelledAt:
		return m.OldCancelledAt(ctx)
	case appointment.FieldNoShowAt:
		return m.OldNoShowAt(ctx)
	case appointment.FieldCancellationReason:
		return m.OldCancellationReason(ctx)
	case appointment.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	}
	return nil, fmt.Errorf("unknown Appointment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AppointmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case appointment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case appointment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case appointment.FieldAppointmentNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppointmentNumber(v)
		return nil
	case appointment.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case appointment.FieldDoctorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoctorID(v)
		return nil
	case appointment.FieldAppointmentDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppointmentDate(v)
		return nil
	case appointment.FieldSerialNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSerialNumber(v)
		return nil
	case appointment.FieldStatus:
		v, ok := value.(appointment.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case appointment.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case appointment.FieldRoomNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoomNumber(v)
		return nil
	case appointment.FieldTotalAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAmount(v)
		return nil
	case appointment.FieldAmountPaid:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmountPaid(v)
		return nil
	case appointment.FieldCheckedInAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckedInAt(v)
		return nil
	case appointment.FieldCalledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCalledAt(v)
		return nil
	case appointment.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case appointment.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case appointment.FieldCancelledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelledAt(v)
		return nil
	case appointment.FieldNoShowAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNoShowAt(v)
		return nil
	case appointment.FieldCancellationReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancellationReason(v)
		return nil
	case appointment.FieldCreatedBy:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	}
	return fmt.Errorf("unknown Appointment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AppointmentMutation) AddedFields() []string {
	var fields []string
	if m.addserial_number != nil {
		fields = append(fields, appointment.FieldSerialNumber)
	}
	if m.addtotal_amount != nil {
		fields = append(fields, appointment.FieldTotalAmount)
	}
	if m.addamount_paid != nil {
		fields = append(fields, appointment.FieldAmountPaid)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AppointmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case appointment.FieldSerialNumber:
		return m.AddedSerialNumber()
	case appointment.FieldTotalAmount:
		return m.AddedTotalAmount()
	case appointment.FieldAmountPaid:
		return m.AddedAmountPaid()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AppointmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case appointment.FieldSerialNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSerialNumber(v)
		return nil
	case appointment.FieldTotalAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalAmount(v)
		return nil
	case appointment.FieldAmountPaid:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmountPaid(v)
		return nil
	}
	return fmt.Errorf("unknown Appointment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AppointmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(appointment.FieldReason) {
		fields = append(fields, appointment.FieldReason)
	}
	if m.FieldCleared(appointment.FieldRoomNumber) {
		fields = append(fields, appointment.FieldRoomNumber)
	}
	if m.FieldCleared(appointment.FieldCheckedInAt) {
		fields = append(fields, appointment.FieldCheckedInAt)
	}
	if m.FieldCleared(appointment.FieldCalledAt) {
		fields = append(fields, appointment.FieldCalledAt)
	}
	if m.FieldCleared(appointment.FieldStartedAt) {
		fields = append(fields, appointment.FieldStartedAt)
	}
	if m.FieldCleared(appointment.FieldCompletedAt) {
		fields = append(fields, appointment.FieldCompletedAt)
	}
	if m.FieldCleared(appointment.FieldCancelledAt) {
		fields = append(fields, appointment.FieldCancelledAt)
	}
	if m.FieldCleared(appointment.FieldNoShowAt) {
		fields = append(fields, appointment.FieldNoShowAt)
	}
	if m.FieldCleared(appointment.FieldCancellationReason) {
		fields = append(fields, appointment.FieldCancellationReason)
	}
	if m.FieldCleared(appointment.FieldCreatedBy) {
		fields = append(fields, appointment.FieldCreatedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AppointmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AppointmentMutation) ClearField(name string) error {
	switch name {
	case appointment.FieldReason:
		m.ClearReason()
		return nil
	case appointment.FieldRoomNumber:
		m.ClearRoomNumber()
		return nil
	case appointment.FieldCheckedInAt:
		m.ClearCheckedInAt()
		return nil
	case appointment.FieldCalledAt:
		m.ClearCalledAt()
		return nil
	case appointment.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case appointment.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case appointment.FieldCancelledAt:
		m.ClearCancelledAt()
		return nil
	case appointment.FieldNoShowAt:
		m.ClearNoShowAt()
		return nil
	case appointment.FieldCancellationReason:
		m.ClearCancellationReason()
		return nil
	case appointment.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown Appointment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AppointmentMutation) ResetField(name string) error {
	switch name {
	case appointment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case appointment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case appointment.FieldAppointmentNumber:
		m.ResetAppointmentNumber()
		return nil
	case appointment.FieldPatientID:
		m.ResetPatientID()
		return nil
	case appointment.FieldDoctorID:
		m.ResetDoctorID()
		return nil
	case appointment.FieldAppointmentDate:
		m.ResetAppointmentDate()
		return nil
	case appointment.FieldSerialNumber:
		m.ResetSerialNumber()
		return nil
	case appointment.FieldStatus:
		m.ResetStatus()
		return nil
	case appointment.FieldReason:
		m.ResetReason()
		return nil
	case appointment.FieldRoomNumber:
		m.ResetRoomNumber()
		return nil
	case appointment.FieldTotalAmount:
		m.ResetTotalAmount()
		return nil
	case appointment.FieldAmountPaid:
		m.ResetAmountPaid()
		return nil
	case appointment.FieldCheckedInAt:
		m.ResetCheckedInAt()
		return nil
	case appointment.FieldCalledAt:
		m.ResetCalledAt()
		return nil
	case appointment.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case appointment.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case appointment.FieldCancelledAt:
		m.ResetCancelledAt()
		return nil
	case appointment.FieldNoShowAt:
		m.ResetNoShowAt()
		return nil
	case appointment.FieldCancellationReason:
		m.ResetCancellationReason()
		return nil
	case appointment.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown Appointment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AppointmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AppointmentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AppointmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AppointmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AppointmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AppointmentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AppointmentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Appointment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AppointmentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Appointment edge %s", name)
}

// CanteenItemMutation represents an operation that mutates the CanteenItem nodes in the graph.
type CanteenItemMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	name          *string
	category      *string
	price         *int64
	addprice      *int64
	available     *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*CanteenItem, error)
	predicates    []predicate.CanteenItem
}

var _ ent.Mutation = (*CanteenItemMutation)(nil)

// canteenitemOption allows management of the mutation configuration using functional options.
type canteenitemOption func(*CanteenItemMutation)

// newCanteenItemMutation creates new mutation for the CanteenItem entity.
func newCanteenItemMutation(c config, op Op, opts ...canteenitemOption) *CanteenItemMutation {
	m := &CanteenItemMutation{
		config:        c,
		op:            op,
		typ:           TypeCanteenItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCanteenItemID sets the ID field of the mutation.
func withCanteenItemID(id uuid.UUID) canteenitemOption {
	return func(m *CanteenItemMutation) {
		var (
			err   error
			once  sync.Once
			value *CanteenItem
		)
		m.oldValue = func(ctx context.Context) (*CanteenItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CanteenItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCanteenItem sets the old CanteenItem of the mutation.
func withCanteenItem(node *CanteenItem) canteenitemOption {
	return func(m *CanteenItemMutation) {
		m.oldValue = func(context.Context) (*CanteenItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CanteenItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CanteenItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CanteenItem entities.
func (m *CanteenItemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CanteenItemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CanteenItemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CanteenItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *CanteenItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CanteenItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CanteenItem entity.
// If the CanteenItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CanteenItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CanteenItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CanteenItemMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CanteenItemMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CanteenItem entity.
// If the CanteenItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CanteenItemMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CanteenItemMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *CanteenItemMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CanteenItemMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the CanteenItem entity.
// If the CanteenItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CanteenItemMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CanteenItemMutation) ResetName() {
	m.name = nil
}

// SetCategory sets the "category" field.
func (m *CanteenItemMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *CanteenItemMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the CanteenItem entity.
// If the CanteenItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CanteenItemMutation) OldCategory(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *CanteenItemMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[canteenitem.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *CanteenItemMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[canteenitem.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *CanteenItemMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, canteenitem.FieldCategory)
}

// SetPrice sets the "price" field.
func (m *CanteenItemMutation) SetPrice(i int64) {
	m.price = &i
	m.addprice = nil
}

// Price returns the value of the "price" field in the mutation.
func (m *CanteenItemMutation) Price() (r int64, exists bool) {
	v := m.price
	if v == nil {
		return
	}
	return *v, true
}

// OldPrice returns the old "price" field's value of the CanteenItem entity.
// If the CanteenItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CanteenItemMutation) OldPrice(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrice: %w", err)
	}
	return oldValue.Price, nil
}

// AddPrice adds i to the "price" field.
func (m *CanteenItemMutation) AddPrice(i int64) {
	if m.addprice != nil {
		*m.addprice += i
	} else {
		m.addprice = &i
	}
}

// AddedPrice returns the value that was added to the "price" field in this mutation.
func (m *CanteenItemMutation) AddedPrice() (r int64, exists bool) {
	v := m.addprice
	if v == nil {
		return
	}
	return *v, true
}

// ResetPrice resets all changes to the "price" field.
func (m *CanteenItemMutation) ResetPrice() {
	m.price = nil
	m.addprice = nil
}

// SetAvailable sets the "available" field.
func (m *CanteenItemMutation) SetAvailable(b bool) {
	m.available = &b
}

// Available returns the value of the "available" field in the mutation.
func (m *CanteenItemMutation) Available() (r bool, exists bool) {
	v := m.available
	if v == nil {
		return
	}
	return *v, true
}

// OldAvailable returns the old "available" field's value of the CanteenItem entity.
// If the CanteenItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CanteenItemMutation) OldAvailable(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvailable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvailable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvailable: %w", err)
	}
	return oldValue.Available, nil
}

// ResetAvailable resets all changes to the "available" field.
func (m *CanteenItemMutation) ResetAvailable() {
	m.available = nil
}

// Where appends a list predicates to the CanteenItemMutation builder.
func (m *CanteenItemMutation) Where(ps ...predicate.CanteenItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CanteenItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CanteenItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CanteenItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CanteenItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CanteenItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CanteenItem).
func (m *CanteenItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CanteenItemMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, canteenitem.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, canteenitem.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, canteenitem.FieldName)
	}
	if m.category != nil {
		fields = append(fields, canteenitem.FieldCategory)
	}
	if m.price != nil {
		fields = append(fields, canteenitem.FieldPrice)
	}
	if m.available != nil {
		fields = append(fields, canteenitem.FieldAvailable)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CanteenItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case canteenitem.FieldCreatedAt:
		return m.CreatedAt()
	case canteenitem.FieldUpdatedAt:
		return m.UpdatedAt()
	case canteenitem.FieldName:
		return m.Name()
	case canteenitem.FieldCategory:
		return m.Category()
	case canteenitem.FieldPrice:
		return m.Price()
	case canteenitem.FieldAvailable:
		return m.Available()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CanteenItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case canteenitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case canteenitem.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case canteenitem.FieldName:
		return m.OldName(ctx)
	case canteenitem.FieldCategory:
		return m.OldCategory(ctx)
	case canteenitem.FieldPrice:
		return m.OldPrice(ctx)
	case canteenitem.FieldAvailable:
		return m.OldAvailable(ctx)
	}
	return nil, fmt.Errorf("unknown CanteenItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CanteenItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case canteenitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case canteenitem.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case canteenitem.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case canteenitem.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case canteenitem.FieldPrice:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrice(v)
		return nil
	case canteenitem.FieldAvailable:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvailable(v)
		return nil
	}
	return fmt.Errorf("unknown CanteenItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CanteenItemMutation) AddedFields() []string {
	var fields []string
	if m.addprice != nil {
		fields = append(fields, canteenitem.FieldPrice)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CanteenItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case canteenitem.FieldPrice:
		return m.AddedPrice()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CanteenItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case canteenitem.FieldPrice:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrice(v)
		return nil
	}
	return fmt.Errorf("unknown CanteenItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CanteenItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(canteenitem.FieldCategory) {
		fields = append(fields, canteenitem.FieldCategory)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CanteenItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CanteenItemMutation) ClearField(name string) error {
	switch name {
	case canteenitem.FieldCategory:
		m.ClearCategory()
		return nil
	}
	return fmt.Errorf("unknown CanteenItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CanteenItemMutation) ResetField(name string) error {
	switch name {
	case canteenitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case canteenitem.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case canteenitem.FieldName:
		m.ResetName()
		return nil
	case canteenitem.FieldCategory:
		m.ResetCategory()
		return nil
	case canteenitem.FieldPrice:
		m.ResetPrice()
		return nil
	case canteenitem.FieldAvailable:
		m.ResetAvailable()
		return nil
	}
	return fmt.Errorf("unknown CanteenItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CanteenItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CanteenItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CanteenItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CanteenItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CanteenItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CanteenItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CanteenItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CanteenItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CanteenItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CanteenItem edge %s", name)
}

// CanteenSaleMutation represents an operation that mutates the CanteenSale nodes in the graph.
type CanteenSaleMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	created_at      *time.Time
	updated_at      *time.Time
	sale_number     *string
	total_amount    *int64
	addtotal_amount *int64
	amount_paid     *int64
	addamount_paid  *int64
	sold_by         *uuid.UUID
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*CanteenSale, error)
	predicates      []predicate.CanteenSale
}

var _ ent.Mutation = (*CanteenSaleMutation)(nil)

// canteensaleOption allows management of the mutation configuration using functional options.
type canteensaleOption func(*CanteenSaleMutation)

// newCanteenSaleMutation creates new mutation for the CanteenSale entity.
func newCanteenSaleMutation(c config, op Op, opts ...canteensaleOption) *CanteenSaleMutation {
	m := &CanteenSaleMutation{
		config:        c,
		op:            op,
		typ:           TypeCanteenSale,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCanteenSaleID sets the ID field of the mutation.
func withCanteenSaleID(id uuid.UUID) canteensaleOption {
	return func(m *CanteenSaleMutation) {
		var (
			err   error
			once  sync.Once
			value *CanteenSale
		)
		m.oldValue = func(ctx context.Context) (*CanteenSale, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CanteenSale.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCanteenSale sets the old CanteenSale of the mutation.
func withCanteenSale(node *CanteenSale) canteensaleOption {
	return func(m *CanteenSaleMutation) {
		m.oldValue = func(context.Context) (*CanteenSale, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CanteenSaleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CanteenSaleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CanteenSale entities.
func (m *CanteenSaleMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CanteenSaleMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CanteenSaleMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CanteenSale.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *CanteenSaleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CanteenSaleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CanteenSale entity.
// If the CanteenSale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CanteenSaleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CanteenSaleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CanteenSaleMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CanteenSaleMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CanteenSale entity.
// If the CanteenSale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CanteenSaleMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CanteenSaleMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSaleNumber sets the "sale_number" field.
func (m *CanteenSaleMutation) SetSaleNumber(s string) {
	m.sale_number = &s
}

// SaleNumber returns the value of the "sale_number" field in the mutation.
func (m *CanteenSaleMutation) SaleNumber() (r string, exists bool) {
	v := m.sale_number
	if v == nil {
		return
	}
	return *v, true
}

// OldSaleNumber returns the old "sale_number" field's value of the CanteenSale entity.
// If the CanteenSale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CanteenSaleMutation) OldSaleNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSaleNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSaleNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSaleNumber: %w", err)
	}
	return oldValue.SaleNumber, nil
}

// ResetSaleNumber resets all changes to the "sale_number" field.
func (m *CanteenSaleMutation) ResetSaleNumber() {
	m.sale_number = nil
}

// SetTotalAmount sets the "total_amount" field.
func (m *CanteenSaleMutation) SetTotalAmount(i int64) {
	m.total_amount = &i
	m.addtotal_amount = nil
}

// TotalAmount returns the value of the "total_amount" field in the mutation.
func (m *CanteenSaleMutation) TotalAmount() (r int64, exists bool) {
	v := m.total_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAmount returns the old "total_amount" field's value of the CanteenSale entity.
// If the CanteenSale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CanteenSaleMutation) OldTotalAmount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAmount: %w", err)
	}
	return oldValue.TotalAmount, nil
}

// AddTotalAmount adds i to the "total_amount" field.
func (m *CanteenSaleMutation) AddTotalAmount(i int64) {
	if m.addtotal_amount != nil {
		*m.addtotal_amount += i
	} else {
		m.addtotal_amount = &i
	}
}

// AddedTotalAmount returns the value that was added to the "total_amount" field in this mutation.
func (m *CanteenSaleMutation) AddedTotalAmount() (r int64, exists bool) {
	v := m.addtotal_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalAmount resets all changes to the "total_amount" field.
func (m *CanteenSaleMutation) ResetTotalAmount() {
	m.total_amount = nil
	m.addtotal_amount = nil
}

// SetAmountPaid sets the "amount_paid" field.
func (m *CanteenSaleMutation) SetAmountPaid(i int64) {
	m.amount_paid = &i
	m.addamount_paid = nil
}

// AmountPaid returns the value of the "amount_paid" field in the mutation.
func (m *CanteenSaleMutation) AmountPaid() (r int64, exists bool) {
	v := m.amount_paid
	if v == nil {
		return
	}
	return *v, true
}

// OldAmountPaid returns the old "amount_paid" field's value of the CanteenSale entity.
// If the CanteenSale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CanteenSaleMutation) OldAmountPaid(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmountPaid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmountPaid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmountPaid: %w", err)
	}
	return oldValue.AmountPaid, nil
}

// AddAmountPaid adds i to the "amount_paid" field.
func (m *CanteenSaleMutation) AddAmountPaid(i int64) {
	if m.addamount_paid != nil {
		*m.addamount_paid += i
	} else {
		m.addamount_paid = &i
	}
}

// AddedAmountPaid returns the value that was added to the "amount_paid" field in this mutation.
func (m *CanteenSaleMutation) AddedAmountPaid() (r int64, exists bool) {
	v := m.addamount_paid
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmountPaid resets all changes to the "amount_paid" field.
func (m *CanteenSaleMutation) ResetAmountPaid() {
	m.amount_paid = nil
	m.addamount_paid = nil
}

// SetSoldBy sets the "sold_by" field.
func (m *CanteenSaleMutation) SetSoldBy(u uuid.UUID) {
	m.sold_by = &u
}

// SoldBy returns the value of the "sold_by" field in the mutation.
func (m *CanteenSaleMutation) SoldBy() (r uuid.UUID, exists bool) {
	v := m.sold_by
	if v == nil {
		return
	}
	return *v, true
}

// OldSoldBy returns the old "sold_by" field's value of the CanteenSale entity.
// If the CanteenSale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CanteenSaleMutation) OldSoldBy(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSoldBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSoldBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSoldBy: %w", err)
	}
	return oldValue.SoldBy, nil
}

// ResetSoldBy resets all changes to the "sold_by" field.
func (m *CanteenSaleMutation) ResetSoldBy() {
	m.sold_by = nil
}

// Where appends a list predicates to the CanteenSaleMutation builder.
func (m *CanteenSaleMutation) Where(ps ...predicate.CanteenSale) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CanteenSaleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CanteenSaleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CanteenSale, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CanteenSaleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CanteenSaleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CanteenSale).
func (m *CanteenSaleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CanteenSaleMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, canteensale.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, canteensale.FieldUpdatedAt)
	}
	if m.sale_number != nil {
		fields = append(fields, canteensale.FieldSaleNumber)
	}
	if m.total_amount != nil {
		fields = append(fields, canteensale.FieldTotalAmount)
	}
	if m.amount_paid != nil {
		fields = append(fields, canteensale.FieldAmountPaid)
	}
	if m.sold_by != nil {
		fields = append(fields, canteensale.FieldSoldBy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CanteenSaleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case canteensale.FieldCreatedAt:
		return m.CreatedAt()
	case canteensale.FieldUpdatedAt:
		return m.UpdatedAt()
	case canteensale.FieldSaleNumber:
		return m.SaleNumber()
	case canteensale.FieldTotalAmount:
		return m.TotalAmount()
	case canteensale.FieldAmountPaid:
		return m.AmountPaid()
	case canteensale.FieldSoldBy:
		return m.SoldBy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CanteenSaleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case canteensale.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case canteensale.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case canteensale.FieldSaleNumber:
		return m.OldSaleNumber(ctx)
	case canteensale.FieldTotalAmount:
		return m.OldTotalAmount(ctx)
	case canteensale.FieldAmountPaid:
		return m.OldAmountPaid(ctx)
	case canteensale.FieldSoldBy:
		return m.OldSoldBy(ctx)
	}
	return nil, fmt.Errorf("unknown CanteenSale field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CanteenSaleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case canteensale.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case canteensale.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case canteensale.FieldSaleNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSaleNumber(v)
		return nil
	case canteensale.FieldTotalAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAmount(v)
		return nil
	case canteensale.FieldAmountPaid:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmountPaid(v)
		return nil
	case canteensale.FieldSoldBy:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSoldBy(v)
		return nil
	}
	return fmt.Errorf("unknown CanteenSale field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CanteenSaleMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_amount != nil {
		fields = append(fields, canteensale.FieldTotalAmount)
	}
	if m.addamount_paid != nil {
		fields = append(fields, canteensale.FieldAmountPaid)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CanteenSaleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case canteensale.FieldTotalAmount:
		return m.AddedTotalAmount()
	case canteensale.FieldAmountPaid:
		return m.AddedAmountPaid()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CanteenSaleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case canteensale.FieldTotalAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalAmount(v)
		return nil
	case canteensale.FieldAmountPaid:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmountPaid(v)
		return nil
	}
	return fmt.Errorf("unknown CanteenSale numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CanteenSaleMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CanteenSaleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CanteenSaleMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CanteenSale nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CanteenSaleMutation) ResetField(name string) error {
	switch name {
	case canteensale.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case canteensale.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case canteensale.FieldSaleNumber:
		m.ResetSaleNumber()
		return nil
	case canteensale.FieldTotalAmount:
		m.ResetTotalAmount()
		return nil
	case canteensale.FieldAmountPaid:
		m.ResetAmountPaid()
		return nil
	case canteensale.FieldSoldBy:
		m.ResetSoldBy()
		return nil
	}
	return fmt.Errorf("unknown CanteenSale field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CanteenSaleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CanteenSaleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CanteenSaleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CanteenSaleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CanteenSaleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CanteenSaleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CanteenSaleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CanteenSale unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CanteenSaleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CanteenSale edge %s", name)
}

// CanteenSaleItemMutation represents an operation that mutates the CanteenSaleItem nodes in the graph.
type CanteenSaleItemMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	sale_id       *uuid.UUID
	item_id       *uuid.UUID
	quantity      *int
	addquantity   *int
	unit_price    *int64
	addunit_price *int64
	subtotal      *int64
	addsubtotal   *int64
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*CanteenSaleItem, error)
	predicates    []predicate.CanteenSaleItem
}

var _ ent.Mutation = (*CanteenSaleItemMutation)(nil)

// canteensaleitemOption allows management of the mutation configuration using functional options.
type canteensaleitemOption func(*CanteenSaleItemMutation)

// newCanteenSaleItemMutation creates new mutation for the CanteenSaleItem entity.
func newCanteenSaleItemMutation(c config, op Op, opts ...canteensaleitemOption) *CanteenSaleItemMutation {
	m := &CanteenSaleItemMutation{
		config:        c,
		op:            op,
		typ:           TypeCanteenSaleItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCanteenSaleItemID sets the ID field of the mutation.
func withCanteenSaleItemID(id uuid.UUID) canteensaleitemOption {
	return func(m *CanteenSaleItemMutation) {
		var (
			err   error
			once  sync.Once
			value *CanteenSaleItem
		)
		m.oldValue = func(ctx context.Context) (*CanteenSaleItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CanteenSaleItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCanteenSaleItem sets the old CanteenSaleItem of the mutation.
func withCanteenSaleItem(node *CanteenSaleItem) canteensaleitemOption {
	return func(m *CanteenSaleItemMutation) {
		m.oldValue = func(context.Context) (*CanteenSaleItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CanteenSaleItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CanteenSaleItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CanteenSaleItem entities.
func (m *CanteenSaleItemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CanteenSaleItemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CanteenSaleItemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CanteenSaleItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *CanteenSaleItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CanteenSaleItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CanteenSaleItem entity.
// If the CanteenSaleItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CanteenSaleItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CanteenSaleItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetSaleID sets the "sale_id" field.
func (m *CanteenSaleItemMutation) SetSaleID(u uuid.UUID) {
	m.sale_id = &u
}

// SaleID returns the value of the "sale_id" field in the mutation.
func (m *CanteenSaleItemMutation) SaleID() (r uuid.UUID, exists bool) {
	v := m.sale_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSaleID returns the old "sale_id" field's value of the CanteenSaleItem entity.
// If the CanteenSaleItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CanteenSaleItemMutation) OldSaleID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSaleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSaleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSaleID: %w", err)
	}
	return oldValue.SaleID, nil
}

// ResetSaleID resets all changes to the "sale_id" field.
func (m *CanteenSaleItemMutation) ResetSaleID() {
	m.sale_id = nil
}

// SetItemID sets the "item_id" field.
func (m *CanteenSaleItemMutation) SetItemID(u uuid.UUID) {
	m.item_id = &u
}

// ItemID returns the value of the "item_id" field in the mutation.
func (m *CanteenSaleItemMutation) ItemID() (r uuid.UUID, exists bool) {
	v := m.item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldItemID returns the old "item_id" field's value of the CanteenSaleItem entity.
// If the CanteenSaleItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CanteenSaleItemMutation) OldItemID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemID: %w", err)
	}
	return oldValue.ItemID, nil
}

// ResetItemID resets all changes to the "item_id" field.
func (m *CanteenSaleItemMutation) ResetItemID() {
	m.item_id = nil
}

// SetQuantity sets the "quantity" field.
func (m *CanteenSaleItemMutation) SetQuantity(i int) {
	m.quantity = &i
	m.addquantity = nil
}

// Quantity returns the value of the "quantity" field in the mutation.
func (m *CanteenSaleItemMutation) Quantity() (r int, exists bool) {
	v := m.quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantity returns the old "quantity" field's value of the CanteenSaleItem entity.
// If the CanteenSaleItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CanteenSaleItemMutation) OldQuantity(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantity: %w", err)
	}
	return oldValue.Quantity, nil
}

// AddQuantity adds i to the "quantity" field.
func (m *CanteenSaleItemMutation) AddQuantity(i int) {
	if m.addquantity != nil {
		*m.addquantity += i
	} else {
		m.addquantity = &i
	}
}

// AddedQuantity returns the value that was added to the "quantity" field in this mutation.
func (m *CanteenSaleItemMutation) AddedQuantity() (r int, exists bool) {
	v := m.addquantity
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuantity resets all changes to the "quantity" field.
func (m *CanteenSaleItemMutation) ResetQuantity() {
	m.quantity = nil
	m.addquantity = nil
}

// SetUnitPrice sets the "unit_price" field.
func (m *CanteenSaleItemMutation) SetUnitPrice(i int64) {
	m.unit_price = &i
	m.addunit_price = nil
}

// UnitPrice returns the value of the "unit_price" field in the mutation.
func (m *CanteenSaleItemMutation) UnitPrice() (r int64, exists bool) {
	v := m.unit_price
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitPrice returns the old "unit_price" field's value of the CanteenSaleItem entity.
// If the CanteenSaleItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CanteenSaleItemMutation) OldUnitPrice(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitPrice: %w", err)
	}
	return oldValue.UnitPrice, nil
}

// AddUnitPrice adds i to the "unit_price" field.
func (m *CanteenSaleItemMutation) AddUnitPrice(i int64) {
	if m.addunit_price != nil {
		*m.addunit_price += i
	} else {
		m.addunit_price = &i
	}
}

// AddedUnitPrice returns the value that was added to the "unit_price" field in this mutation.
func (m *CanteenSaleItemMutation) AddedUnitPrice() (r int64, exists bool) {
	v := m.addunit_price
	if v == nil {
		return
	}
	return *v, true
}

// ResetUnitPrice resets all changes to the "unit_price" field.
func (m *CanteenSaleItemMutation) ResetUnitPrice() {
	m.unit_price = nil
	m.addunit_price = nil
}

// SetSubtotal sets the "subtotal" field.
func (m *CanteenSaleItemMutation) SetSubtotal(i int64) {
	m.subtotal = &i
	m.addsubtotal = nil
}

// Subtotal returns the value of the "subtotal" field in the mutation.
func (m *CanteenSaleItemMutation) Subtotal() (r int64, exists bool) {
	v := m.subtotal
	if v == nil {
		return
	}
	return *v, true
}

// OldSubtotal returns the old "subtotal" field's value of the CanteenSaleItem entity.
// If the CanteenSaleItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CanteenSaleItemMutation) OldSubtotal(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubtotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubtotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubtotal: %w", err)
	}
	return oldValue.Subtotal, nil
}

// AddSubtotal adds i to the "subtotal" field.
func (m *CanteenSaleItemMutation) AddSubtotal(i int64) {
	if m.addsubtotal != nil {
		*m.addsubtotal += i
	} else {
		m.addsubtotal = &i
	}
}

// AddedSubtotal returns the value that was added to the "subtotal" field in this mutation.
func (m *CanteenSaleItemMutation) AddedSubtotal() (r int64, exists bool) {
	v := m.addsubtotal
	if v == nil {
		return
	}
	return *v, true
}

// ResetSubtotal resets all changes to the "subtotal" field.
func (m *CanteenSaleItemMutation) ResetSubtotal() {
	m.subtotal = nil
	m.addsubtotal = nil
}

// Where appends a list predicates to the CanteenSaleItemMutation builder.
func (m *CanteenSaleItemMutation) Where(ps ...predicate.CanteenSaleItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CanteenSaleItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CanteenSaleItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CanteenSaleItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CanteenSaleItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CanteenSaleItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CanteenSaleItem).
func (m *CanteenSaleItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CanteenSaleItemMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, canteensaleitem.FieldCreatedAt)
	}
	if m.sale_id != nil {
		fields = append(fields, canteensaleitem.FieldSaleID)
	}
	if m.item_id != nil {
		fields = append(fields, canteensaleitem.FieldItemID)
	}
	if m.quantity != nil {
		fields = append(fields, canteensaleitem.FieldQuantity)
	}
	if m.unit_price != nil {
		fields = append(fields, canteensaleitem.FieldUnitPrice)
	}
	if m.subtotal != nil {
		fields = append(fields, canteensaleitem.FieldSubtotal)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CanteenSaleItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case canteensaleitem.FieldCreatedAt:
		return m.CreatedAt()
	case canteensaleitem.FieldSaleID:
		return m.SaleID()
	case canteensaleitem.FieldItemID:
		return m.ItemID()
	case canteensaleitem.FieldQuantity:
		return m.Quantity()
	case canteensaleitem.FieldUnitPrice:
		return m.UnitPrice()
	case canteensaleitem.FieldSubtotal:
		return m.Subtotal()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CanteenSaleItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case canteensaleitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case canteensaleitem.FieldSaleID:
		return m.OldSaleID(ctx)
	case canteensaleitem.FieldItemID:
		return m.OldItemID(ctx)
	case canteensaleitem.FieldQuantity:
		return m.OldQuantity(ctx)
	case canteensaleitem.FieldUnitPrice:
		return m.OldUnitPrice(ctx)
	case canteensaleitem.FieldSubtotal:
		return m.OldSubtotal(ctx)
	}
	return nil, fmt.Errorf("unknown CanteenSaleItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CanteenSaleItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case canteensaleitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case canteensaleitem.FieldSaleID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSaleID(v)
		return nil
	case canteensaleitem.FieldItemID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemID(v)
		return nil
	case canteensaleitem.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantity(v)
		return nil
	case canteensaleitem.FieldUnitPrice:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitPrice(v)
		return nil
	case canteensaleitem.FieldSubtotal:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubtotal(v)
		return nil
	}
	return fmt.Errorf("unknown CanteenSaleItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CanteenSaleItemMutation) AddedFields() []string {
	var fields []string
	if m.addquantity != nil {
		fields = append(fields, canteensaleitem.FieldQuantity)
	}
	if m.addunit_price != nil {
		fields = append(fields, canteensaleitem.FieldUnitPrice)
	}
	if m.addsubtotal != nil {
		fields = append(fields, canteensaleitem.FieldSubtotal)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CanteenSaleItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case canteensaleitem.FieldQuantity:
		return m.AddedQuantity()
	case canteensaleitem.FieldUnitPrice:
		return m.AddedUnitPrice()
	case canteensaleitem.FieldSubtotal:
		return m.AddedSubtotal()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CanteenSaleItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case canteensaleitem.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantity(v)
		return nil
	case canteensaleitem.FieldUnitPrice:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUnitPrice(v)
		return nil
	case canteensaleitem.FieldSubtotal:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSubtotal(v)
		return nil
	}
	return fmt.Errorf("unknown CanteenSaleItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CanteenSaleItemMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CanteenSaleItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CanteenSaleItemMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CanteenSaleItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CanteenSaleItemMutation) ResetField(name string) error {
	switch name {
	case canteensaleitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case canteensaleitem.FieldSaleID:
		m.ResetSaleID()
		return nil
	case canteensaleitem.FieldItemID:
		m.ResetItemID()
		return nil
	case canteensaleitem.FieldQuantity:
		m.ResetQuantity()
		return nil
	case canteensaleitem.FieldUnitPrice:
		m.ResetUnitPrice()
		return nil
	case canteensaleitem.FieldSubtotal:
		m.ResetSubtotal()
		return nil
	}
	return fmt.Errorf("unknown CanteenSaleItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CanteenSaleItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CanteenSaleItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CanteenSaleItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CanteenSaleItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CanteenSaleItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CanteenSaleItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CanteenSaleItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CanteenSaleItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CanteenSaleItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CanteenSaleItem edge %s", name)
}

// DoctorAvailabilityMutation represents an operation that mutates the DoctorAvailability nodes in the graph.
type DoctorAvailabilityMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	doctor_id     *uuid.UUID
	date          *time.Time
	available     *bool
	reason        *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*DoctorAvailability, error)
	predicates    []predicate.DoctorAvailability
}

var _ ent.Mutation = (*DoctorAvailabilityMutation)(nil)

// doctoravailabilityOption allows management of the mutation configuration using functional options.
type doctoravailabilityOption func(*DoctorAvailabilityMutation)

// newDoctorAvailabilityMutation creates new mutation for the DoctorAvailability entity.
func newDoctorAvailabilityMutation(c config, op Op, opts ...doctoravailabilityOption) *DoctorAvailabilityMutation {
	m := &DoctorAvailabilityMutation{
		config:        c,
		op:            op,
		typ:           TypeDoctorAvailability,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDoctorAvailabilityID sets the ID field of the mutation.
func withDoctorAvailabilityID(id uuid.UUID) doctoravailabilityOption {
	return func(m *DoctorAvailabilityMutation) {
		var (
			err   error
			once  sync.Once
			value *DoctorAvailability
		)
		m.oldValue = func(ctx context.Context) (*DoctorAvailability, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DoctorAvailability.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDoctorAvailability sets the old DoctorAvailability of the mutation.
func withDoctorAvailability(node *DoctorAvailability) doctoravailabilityOption {
	return func(m *DoctorAvailabilityMutation) {
		m.oldValue = func(context.Context) (*DoctorAvailability, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DoctorAvailabilityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DoctorAvailabilityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DoctorAvailability entities.
func (m *DoctorAvailabilityMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DoctorAvailabilityMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DoctorAvailabilityMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DoctorAvailability.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DoctorAvailabilityMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DoctorAvailabilityMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DoctorAvailability entity.
// If the DoctorAvailability object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorAvailabilityMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DoctorAvailabilityMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DoctorAvailabilityMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DoctorAvailabilityMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DoctorAvailability entity.
// If the DoctorAvailability object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorAvailabilityMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DoctorAvailabilityMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDoctorID sets the "doctor_id" field.
func (m *DoctorAvailabilityMutation) SetDoctorID(u uuid.UUID) {
	m.doctor_id = &u
}

// DoctorID returns the value of the "doctor_id" field in the mutation.
func (m *DoctorAvailabilityMutation) DoctorID() (r uuid.UUID, exists bool) {
	v := m.doctor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDoctorID returns the old "doctor_id" field's value of the DoctorAvailability entity.
// If the DoctorAvailability object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorAvailabilityMutation) OldDoctorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoctorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoctorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoctorID: %w", err)
	}
	return oldValue.DoctorID, nil
}

// ResetDoctorID resets all changes to the "doctor_id" field.
func (m *DoctorAvailabilityMutation) ResetDoctorID() {
	m.doctor_id = nil
}

// SetDate sets the "date" field.
func (m *DoctorAvailabilityMutation) SetDate(t time.Time) {
	m.date = &t
}

// Date returns the value of the "date" field in the mutation.
func (m *DoctorAvailabilityMutation) Date() (r time.Time, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the DoctorAvailability entity.
// If the DoctorAvailability object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorAvailabilityMutation) OldDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *DoctorAvailabilityMutation) ResetDate() {
	m.date = nil
}

// SetAvailable sets the "available" field.
func (m *DoctorAvailabilityMutation) SetAvailable(b bool) {
	m.available = &b
}

// Available returns the value of the "available" field in the mutation.
func (m *DoctorAvailabilityMutation) Available() (r bool, exists bool) {
	v := m.available
	if v == nil {
		return
	}
	return *v, true
}

// OldAvailable returns the old "available" field's value of the DoctorAvailability entity.
// If the DoctorAvailability object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorAvailabilityMutation) OldAvailable(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvailable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvailable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvailable: %w", err)
	}
	return oldValue.Available, nil
}

// ResetAvailable resets all changes to the "available" field.
func (m *DoctorAvailabilityMutation) ResetAvailable() {
	m.available = nil
}

// SetReason sets the "reason" field.
func (m *DoctorAvailabilityMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *DoctorAvailabilityMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the DoctorAvailability entity.
// If the DoctorAvailability object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorAvailabilityMutation) OldReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *DoctorAvailabilityMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[doctoravailability.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *DoctorAvailabilityMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[doctoravailability.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *DoctorAvailabilityMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, doctoravailability.FieldReason)
}

// Where appends a list predicates to the DoctorAvailabilityMutation builder.
func (m *DoctorAvailabilityMutation) Where(ps ...predicate.DoctorAvailability) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DoctorAvailabilityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DoctorAvailabilityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DoctorAvailability, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DoctorAvailabilityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DoctorAvailabilityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DoctorAvailability).
func (m *DoctorAvailabilityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DoctorAvailabilityMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, doctoravailability.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, doctoravailability.FieldUpdatedAt)
	}
	if m.doctor_id != nil {
		fields = append(fields, doctoravailability.FieldDoctorID)
	}
	if m.date != nil {
		fields = append(fields, doctoravailability.FieldDate)
	}
	if m.available != nil {
		fields = append(fields, doctoravailability.FieldAvailable)
	}
	if m.reason != nil {
		fields = append(fields, doctoravailability.FieldReason)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DoctorAvailabilityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case doctoravailability.FieldCreatedAt:
		return m.CreatedAt()
	case doctoravailability.FieldUpdatedAt:
		return m.UpdatedAt()
	case doctoravailability.FieldDoctorID:
		return m.DoctorID()
	case doctoravailability.FieldDate:
		return m.Date()
	case doctoravailability.FieldAvailable:
		return m.Available()
	case doctoravailability.FieldReason:
		return m.Reason()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DoctorAvailabilityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case doctoravailability.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case doctoravailability.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case doctoravailability.FieldDoctorID:
		return m.OldDoctorID(ctx)
	case doctoravailability.FieldDate:
		return m.OldDate(ctx)
	case doctoravailability.FieldAvailable:
		return m.OldAvailable(ctx)
	case doctoravailability.FieldReason:
		return m.OldReason(ctx)
	}
	return nil, fmt.Errorf("unknown DoctorAvailability field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DoctorAvailabilityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case doctoravailability.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case doctoravailability.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case doctoravailability.FieldDoctorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoctorID(v)
		return nil
	case doctoravailability.FieldDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case doctoravailability.FieldAvailable:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvailable(v)
		return nil
	case doctoravailability.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	}
	return fmt.Errorf("unknown DoctorAvailability field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DoctorAvailabilityMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DoctorAvailabilityMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DoctorAvailabilityMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DoctorAvailability numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DoctorAvailabilityMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(doctoravailability.FieldReason) {
		fields = append(fields, doctoravailability.FieldReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DoctorAvailabilityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DoctorAvailabilityMutation) ClearField(name string) error {
	switch name {
	case doctoravailability.FieldReason:
		m.ClearReason()
		return nil
	}
	return fmt.Errorf("unknown DoctorAvailability nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DoctorAvailabilityMutation) ResetField(name string) error {
	switch name {
	case doctoravailability.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case doctoravailability.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case doctoravailability.FieldDoctorID:
		m.ResetDoctorID()
		return nil
	case doctoravailability.FieldDate:
		m.ResetDate()
		return nil
	case doctoravailability.FieldAvailable:
		m.ResetAvailable()
		return nil
	case doctoravailability.FieldReason:
		m.ResetReason()
		return nil
	}
	return fmt.Errorf("unknown DoctorAvailability field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DoctorAvailabilityMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DoctorAvailabilityMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DoctorAvailabilityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DoctorAvailabilityMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DoctorAvailabilityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DoctorAvailabilityMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DoctorAvailabilityMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DoctorAvailability unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DoctorAvailabilityMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DoctorAvailability edge %s", name)
}

// DoctorScheduleMutation represents an operation that mutates the DoctorSchedule nodes in the graph.
type DoctorScheduleMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	created_at              *time.Time
	updated_at              *time.Time
	doctor_id               *uuid.UUID
	weekday                 *int
	addweekday              *int
	start_time              *string
	end_time                *string
	max_patients            *int
	addmax_patients         *int
	consultation_minutes    *int
	addconsultation_minutes *int
	room_number             *string
	active                  *bool
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*DoctorSchedule, error)
	predicates              []predicate.DoctorSchedule
}

var _ ent.Mutation = (*DoctorScheduleMutation)(nil)

// doctorscheduleOption allows management of the mutation configuration using functional options.
type doctorscheduleOption func(*DoctorScheduleMutation)

// newDoctorScheduleMutation creates new mutation for the DoctorSchedule entity.
func newDoctorScheduleMutation(c config, op Op, opts ...doctorscheduleOption) *DoctorScheduleMutation {
	m := &DoctorScheduleMutation{
		config:        c,
		op:            op,
		typ:           TypeDoctorSchedule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDoctorScheduleID sets the ID field of the mutation.
func withDoctorScheduleID(id uuid.UUID) doctorscheduleOption {
	return func(m *DoctorScheduleMutation) {
		var (
			err   error
			once  sync.Once
			value *DoctorSchedule
		)
		m.oldValue = func(ctx context.Context) (*DoctorSchedule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DoctorSchedule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDoctorSchedule sets the old DoctorSchedule of the mutation.
func withDoctorSchedule(node *DoctorSchedule) doctorscheduleOption {
	return func(m *DoctorScheduleMutation) {
		m.oldValue = func(context.Context) (*DoctorSchedule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DoctorScheduleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DoctorScheduleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DoctorSchedule entities.
func (m *DoctorScheduleMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DoctorScheduleMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DoctorScheduleMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DoctorSchedule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DoctorScheduleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DoctorScheduleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DoctorSchedule entity.
// If the DoctorSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorScheduleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DoctorScheduleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DoctorScheduleMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DoctorScheduleMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DoctorSchedule entity.
// If the DoctorSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorScheduleMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DoctorScheduleMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDoctorID sets the "doctor_id" field.
func (m *DoctorScheduleMutation) SetDoctorID(u uuid.UUID) {
	m.doctor_id = &u
}

// DoctorID returns the value of the "doctor_id" field in the mutation.
func (m *DoctorScheduleMutation) DoctorID() (r uuid.UUID, exists bool) {
	v := m.doctor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDoctorID returns the old "doctor_id" field's value of the DoctorSchedule entity.
// If the DoctorSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorScheduleMutation) OldDoctorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoctorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoctorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoctorID: %w", err)
	}
	return oldValue.DoctorID, nil
}

// ResetDoctorID resets all changes to the "doctor_id" field.
func (m *DoctorScheduleMutation) ResetDoctorID() {
	m.doctor_id = nil
}

// SetWeekday sets the "weekday" field.
func (m *DoctorScheduleMutation) SetWeekday(i int) {
	m.weekday = &i
	m.addweekday = nil
}

// Weekday returns the value of the "weekday" field in the mutation.
func (m *DoctorScheduleMutation) Weekday() (r int, exists bool) {
	v := m.weekday
	if v == nil {
		return
	}
	return *v, true
}

// OldWeekday returns the old "weekday" field's value of the DoctorSchedule entity.
// If the DoctorSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorScheduleMutation) OldWeekday(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeekday is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeekday requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeekday: %w", err)
	}
	return oldValue.Weekday, nil
}

// AddWeekday adds i to the "weekday" field.
func (m *DoctorScheduleMutation) AddWeekday(i int) {
	if m.addweekday != nil {
		*m.addweekday += i
	} else {
		m.addweekday = &i
	}
}

// AddedWeekday returns the value that was added to the "weekday" field in this mutation.
func (m *DoctorScheduleMutation) AddedWeekday() (r int, exists bool) {
	v := m.addweekday
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeekday resets all changes to the "weekday" field.
func (m *DoctorScheduleMutation) ResetWeekday() {
	m.weekday = nil
	m.addweekday = nil
}

// SetStartTime sets the "start_time" field.
func (m *DoctorScheduleMutation) SetStartTime(s string) {
	m.start_time = &s
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *DoctorScheduleMutation) StartTime() (r string, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the DoctorSchedule entity.
// If the DoctorSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorScheduleMutation) OldStartTime(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *DoctorScheduleMutation) ResetStartTime() {
	m.start_time = nil
}

// SetEndTime sets the "end_time" field.
func (m *DoctorScheduleMutation) SetEndTime(s string) {
	m.end_time = &s
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *DoctorScheduleMutation) EndTime() (r string, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the DoctorSchedule entity.
// If the DoctorSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorScheduleMutation) OldEndTime(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *DoctorScheduleMutation) ResetEndTime() {
	m.end_time = nil
}

// SetMaxPatients sets the "max_patients" field.
func (m *DoctorScheduleMutation) SetMaxPatients(i int) {
	m.max_patients = &i
	m.addmax_patients = nil
}

// MaxPatients returns the value of the "max_patients" field in the mutation.
func (m *DoctorScheduleMutation) MaxPatients() (r int, exists bool) {
	v := m.max_patients
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxPatients returns the old "max_patients" field's value of the DoctorSchedule entity.
// If the DoctorSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorScheduleMutation) OldMaxPatients(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxPatients is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxPatients requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxPatients: %w", err)
	}
	return oldValue.MaxPatients, nil
}

// AddMaxPatients adds i to the "max_patients" field.
func (m *DoctorScheduleMutation) AddMaxPatients(i int) {
	if m.addmax_patients != nil {
		*m.addmax_patients += i
	} else {
		m.addmax_patients = &i
	}
}

// AddedMaxPatients returns the value that was added to the "max_patients" field in this mutation.
func (m *DoctorScheduleMutation) AddedMaxPatients() (r int, exists bool) {
	v := m.addmax_patients
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxPatients resets all changes to the "max_patients" field.
func (m *DoctorScheduleMutation) ResetMaxPatients() {
	m.max_patients = nil
	m.addmax_patients = nil
}

// SetConsultationMinutes sets the "consultation_minutes" field.
func (m *DoctorScheduleMutation) SetConsultationMinutes(i int) {
	m.consultation_minutes = &i
	m.addconsultation_minutes = nil
}

// ConsultationMinutes returns the value of the "consultation_minutes" field in the mutation.
func (m *DoctorScheduleMutation) ConsultationMinutes() (r int, exists bool) {
	v := m.consultation_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldConsultationMinutes returns the old "consultation_minutes" field's value of the DoctorSchedule entity.
// If the DoctorSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorScheduleMutation) OldConsultationMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsultationMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsultationMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsultationMinutes: %w", err)
	}
	return oldValue.ConsultationMinutes, nil
}

// AddConsultationMinutes adds i to the "consultation_minutes" field.
func (m *DoctorScheduleMutation) AddConsultationMinutes(i int) {
	if m.addconsultation_minutes != nil {
		*m.addconsultation_minutes += i
	} else {
		m.addconsultation_minutes = &i
	}
}

// AddedConsultationMinutes returns the value that was added to the "consultation_minutes" field in this mutation.
func (m *DoctorScheduleMutation) AddedConsultationMinutes() (r int, exists bool) {
	v := m.addconsultation_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetConsultationMinutes resets all changes to the "consultation_minutes" field.
func (m *DoctorScheduleMutation) ResetConsultationMinutes() {
	m.consultation_minutes = nil
	m.addconsultation_minutes = nil
}

// SetRoomNumber sets the "room_number" field.
func (m *DoctorScheduleMutation) SetRoomNumber(s string) {
	m.room_number = &s
}

// RoomNumber returns the value of the "room_number" field in the mutation.
func (m *DoctorScheduleMutation) RoomNumber() (r string, exists bool) {
	v := m.room_number
	if v == nil {
		return
	}
	return *v, true
}

// OldRoomNumber returns the old "room_number" field's value of the DoctorSchedule entity.
// If the DoctorSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorScheduleMutation) OldRoomNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoomNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoomNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoomNumber: %w", err)
	}
	return oldValue.RoomNumber, nil
}

// ClearRoomNumber clears the value of the "room_number" field.
func (m *DoctorScheduleMutation) ClearRoomNumber() {
	m.room_number = nil
	m.clearedFields[doctorschedule.FieldRoomNumber] = struct{}{}
}

// RoomNumberCleared returns if the "room_number" field was cleared in this mutation.
func (m *DoctorScheduleMutation) RoomNumberCleared() bool {
	_, ok := m.clearedFields[doctorschedule.FieldRoomNumber]
	return ok
}

// ResetRoomNumber resets all changes to the "room_number" field.
func (m *DoctorScheduleMutation) ResetRoomNumber() {
	m.room_number = nil
	delete(m.clearedFields, doctorschedule.FieldRoomNumber)
}

// SetActive sets the "active" field.
func (m *DoctorScheduleMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *DoctorScheduleMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the DoctorSchedule entity.
// If the DoctorSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorScheduleMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *DoctorScheduleMutation) ResetActive() {
	m.active = nil
}

// Where appends a list predicates to the DoctorScheduleMutation builder.
func (m *DoctorScheduleMutation) Where(ps ...predicate.DoctorSchedule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DoctorScheduleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DoctorScheduleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DoctorSchedule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DoctorScheduleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DoctorScheduleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DoctorSchedule).
func (m *DoctorScheduleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DoctorScheduleMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, doctorschedule.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, doctorschedule.FieldUpdatedAt)
	}
	if m.doctor_id != nil {
		fields = append(fields, doctorschedule.FieldDoctorID)
	}
	if m.weekday != nil {
		fields = append(fields, doctorschedule.FieldWeekday)
	}
	if m.start_time != nil {
		fields = append(fields, doctorschedule.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, doctorschedule.FieldEndTime)
	}
	if m.max_patients != nil {
		fields = append(fields, doctorschedule.FieldMaxPatients)
	}
	if m.consultation_minutes != nil {
		fields = append(fields, doctorschedule.FieldConsultationMinutes)
	}
	if m.room_number != nil {
		fields = append(fields, doctorschedule.FieldRoomNumber)
	}
	if m.active != nil {
		fields = append(fields, doctorschedule.FieldActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DoctorScheduleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case doctorschedule.FieldCreatedAt:
		return m.CreatedAt()
	case doctorschedule.FieldUpdatedAt:
		return m.UpdatedAt()
	case doctorschedule.FieldDoctorID:
		return m.DoctorID()
	case doctorschedule.FieldWeekday:
		return m.Weekday()
	case doctorschedule.FieldStartTime:
		return m.StartTime()
	case doctorschedule.FieldEndTime:
		return m.EndTime()
	case doctorschedule.FieldMaxPatients:
		return m.MaxPatients()
	case doctorschedule.FieldConsultationMinutes:
		return m.ConsultationMinutes()
	case doctorschedule.FieldRoomNumber:
		return m.RoomNumber()
	case doctorschedule.FieldActive:
		return m.Active()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DoctorScheduleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case doctorschedule.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case doctorschedule.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case doctorschedule.FieldDoctorID:
		return m.OldDoctorID(ctx)
	case doctorschedule.FieldWeekday:
		return m.OldWeekday(ctx)
	case doctorschedule.FieldStartTime:
		return m.OldStartTime(ctx)
	case doctorschedule.FieldEndTime:
		return m.OldEndTime(ctx)
	case doctorschedule.FieldMaxPatients:
		return m.OldMaxPatients(ctx)
	case doctorschedule.FieldConsultationMinutes:
		return m.OldConsultationMinutes(ctx)
	case doctorschedule.FieldRoomNumber:
		return m.OldRoomNumber(ctx)
	case doctorschedule.FieldActive:
		return m.OldActive(ctx)
	}
	return nil, fmt.Errorf("unknown DoctorSchedule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DoctorScheduleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case doctorschedule.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case doctorschedule.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case doctorschedule.FieldDoctorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoctorID(v)
		return nil
	case doctorschedule.FieldWeekday:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeekday(v)
		return nil
	case doctorschedule.FieldStartTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case doctorschedule.FieldEndTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case doctorschedule.FieldMaxPatients:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxPatients(v)
		return nil
	case doctorschedule.FieldConsultationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsultationMinutes(v)
		return nil
	case doctorschedule.FieldRoomNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoomNumber(v)
		return nil
	case doctorschedule.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	}
	return fmt.Errorf("unknown DoctorSchedule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DoctorScheduleMutation) AddedFields() []string {
	var fields []string
	if m.addweekday != nil {
		fields = append(fields, doctorschedule.FieldWeekday)
	}
	if m.addmax_patients != nil {
		fields = append(fields, doctorschedule.FieldMaxPatients)
	}
	if m.addconsultation_minutes != nil {
		fields = append(fields, doctorschedule.FieldConsultationMinutes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DoctorScheduleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case doctorschedule.FieldWeekday:
		return m.AddedWeekday()
	case doctorschedule.FieldMaxPatients:
		return m.AddedMaxPatients()
	case doctorschedule.FieldConsultationMinutes:
		return m.AddedConsultationMinutes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DoctorScheduleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case doctorschedule.FieldWeekday:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeekday(v)
		return nil
	case doctorschedule.FieldMaxPatients:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxPatients(v)
		return nil
	case doctorschedule.FieldConsultationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsultationMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown DoctorSchedule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DoctorScheduleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(doctorschedule.FieldRoomNumber) {
		fields = append(fields, doctorschedule.FieldRoomNumber)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DoctorScheduleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DoctorScheduleMutation) ClearField(name string) error {
	switch name {
	case doctorschedule.FieldRoomNumber:
		m.ClearRoomNumber()
		return nil
	}
	return fmt.Errorf("unknown DoctorSchedule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DoctorScheduleMutation) ResetField(name string) error {
	switch name {
	case doctorschedule.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case doctorschedule.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case doctorschedule.FieldDoctorID:
		m.ResetDoctorID()
		return nil
	case doctorschedule.FieldWeekday:
		m.ResetWeekday()
		return nil
	case doctorschedule.FieldStartTime:
		m.ResetStartTime()
		return nil
	case doctorschedule.FieldEndTime:
		m.ResetEndTime()
		return nil
	case doctorschedule.FieldMaxPatients:
		m.ResetMaxPatients()
		return nil
	case doctorschedule.FieldConsultationMinutes:
		m.ResetConsultationMinutes()
		return nil
	case doctorschedule.FieldRoomNumber:
		m.ResetRoomNumber()
		return nil
	case doctorschedule.FieldActive:
		m.ResetActive()
		return nil
	}
	return fmt.Errorf("unknown DoctorSchedule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DoctorScheduleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DoctorScheduleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DoctorScheduleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DoctorScheduleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DoctorScheduleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DoctorScheduleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DoctorScheduleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DoctorSchedule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DoctorScheduleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DoctorSchedule edge %s", name)
}

// DrugMutation represents an operation that mutates the Drug nodes in the graph.
type DrugMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	created_at        *time.Time
	updated_at        *time.Time
	name              *string
	generic_name      *string
	category          *string
	manufacturer      *string
	batch_number      *string
	unit_price        *int64
	addunit_price     *int64
	stock_quantity    *int
	addstock_quantity *int
	reorder_level     *int
	addreorder_level  *int
	expiry_date       *time.Time
	active            *bool
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Drug, error)
	predicates        []predicate.Drug
}

var _ ent.Mutation = (*DrugMutation)(nil)

// drugOption allows management of the mutation configuration using functional options.
type drugOption func(*DrugMutation)

// newDrugMutation creates new mutation for the Drug entity.
func newDrugMutation(c config, op Op, opts ...drugOption) *DrugMutation {
	m := &DrugMutation{
		config:        c,
		op:            op,
		typ:           TypeDrug,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDrugID sets the ID field of the mutation.
func withDrugID(id uuid.UUID) drugOption {
	return func(m *DrugMutation) {
		var (
			err   error
			once  sync.Once
			value *Drug
		)
		m.oldValue = func(ctx context.Context) (*Drug, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Drug.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDrug sets the old Drug of the mutation.
func withDrug(node *Drug) drugOption {
	return func(m *DrugMutation) {
		m.oldValue = func(context.Context) (*Drug, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DrugMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DrugMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Drug entities.
func (m *DrugMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DrugMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DrugMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Drug.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DrugMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DrugMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Drug entity.
// If the Drug object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrugMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DrugMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DrugMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DrugMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Drug entity.
// If the Drug object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrugMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DrugMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *DrugMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *DrugMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Drug entity.
// If the Drug object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrugMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *DrugMutation) ResetName() {
	m.name = nil
}

// SetGenericName sets the "generic_name" field.
func (m *DrugMutation) SetGenericName(s string) {
	m.generic_name = &s
}

// GenericName returns the value of the "generic_name" field in the mutation.
func (m *DrugMutation) GenericName() (r string, exists bool) {
	v := m.generic_name
	if v == nil {
		return
	}
	return *v, true
}

// OldGenericName returns the old "generic_name" field's value of the Drug entity.
// If the Drug object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrugMutation) OldGenericName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGenericName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGenericName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGenericName: %w", err)
	}
	return oldValue.GenericName, nil
}

// ClearGenericName clears the value of the "generic_name" field.
func (m *DrugMutation) ClearGenericName() {
	m.generic_name = nil
	m.clearedFields[drug.FieldGenericName] = struct{}{}
}

// GenericNameCleared returns if the "generic_name" field was cleared in this mutation.
func (m *DrugMutation) GenericNameCleared() bool {
	_, ok := m.clearedFields[drug.FieldGenericName]
	return ok
}

// ResetGenericName resets all changes to the "generic_name" field.
func (m *DrugMutation) ResetGenericName() {
	m.generic_name = nil
	delete(m.clearedFields, drug.FieldGenericName)
}

// SetCategory sets the "category" field.
func (m *DrugMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *DrugMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Drug entity.
// If the Drug object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrugMutation) OldCategory(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *DrugMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[drug.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *DrugMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[drug.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *DrugMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, drug.FieldCategory)
}

// SetManufacturer sets the "manufacturer" field.
func (m *DrugMutation) SetManufacturer(s string) {
	m.manufacturer = &s
}

// Manufacturer returns the value of the "manufacturer" field in the mutation.
func (m *DrugMutation) Manufacturer() (r string, exists bool) {
	v := m.manufacturer
	if v == nil {
		return
	}
	return *v, true
}

// OldManufacturer returns the old "manufacturer" field's value of the Drug entity.
// If the Drug object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrugMutation) OldManufacturer(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldManufacturer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldManufacturer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldManufacturer: %w", err)
	}
	return oldValue.Manufacturer, nil
}

// ClearManufacturer clears the value of the "manufacturer" field.
func (m *DrugMutation) ClearManufacturer() {
	m.manufacturer = nil
	m.clearedFields[drug.FieldManufacturer] = struct{}{}
}

// ManufacturerCleared returns if the "manufacturer" field was cleared in this mutation.
func (m *DrugMutation) ManufacturerCleared() bool {
	_, ok := m.clearedFields[drug.FieldManufacturer]
	return ok
}

// ResetManufacturer resets all changes to the "manufacturer" field.
func (m *DrugMutation) ResetManufacturer() {
	m.manufacturer = nil
	delete(m.clearedFields, drug.FieldManufacturer)
}

// SetBatchNumber sets the "batch_number" field.
func (m *DrugMutation) SetBatchNumber(s string) {
	m.batch_number = &s
}

// BatchNumber returns the value of the "batch_number" field in the mutation.
func (m *DrugMutation) BatchNumber() (r string, exists bool) {
	v := m.batch_number
	if v == nil {
		return
	}
	return *v, true
}

// OldBatchNumber returns the old "batch_number" field's value of the Drug entity.
// If the Drug object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrugMutation) OldBatchNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatchNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatchNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatchNumber: %w", err)
	}
	return oldValue.BatchNumber, nil
}

// ClearBatchNumber clears the value of the "batch_number" field.
func (m *DrugMutation) ClearBatchNumber() {
	m.batch_number = nil
	m.clearedFields[drug.FieldBatchNumber] = struct{}{}
}

// BatchNumberCleared returns if the "batch_number" field was cleared in this mutation.
func (m *DrugMutation) BatchNumberCleared() bool {
	_, ok := m.clearedFields[drug.FieldBatchNumber]
	return ok
}

// ResetBatchNumber resets all changes to the "batch_number" field.
func (m *DrugMutation) ResetBatchNumber() {
	m.batch_number = nil
	delete(m.clearedFields, drug.FieldBatchNumber)
}

// SetUnitPrice sets the "unit_price" field.
func (m *DrugMutation) SetUnitPrice(i int64) {
	m.unit_price = &i
	m.addunit_price = nil
}

// UnitPrice returns the value of the "unit_price" field in the mutation.
func (m *DrugMutation) UnitPrice() (r int64, exists bool) {
	v := m.unit_price
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitPrice returns the old "unit_price" field's value of the Drug entity.
// If the Drug object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrugMutation) OldUnitPrice(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitPrice: %w", err)
	}
	return oldValue.UnitPrice, nil
}

// AddUnitPrice adds i to the "unit_price" field.
func (m *DrugMutation) AddUnitPrice(i int64) {
	if m.addunit_price != nil {
		*m.addunit_price += i
	} else {
		m.addunit_price = &i
	}
}

// AddedUnitPrice returns the value that was added to the "unit_price" field in this mutation.
func (m *DrugMutation) AddedUnitPrice() (r int64, exists bool) {
	v := m.addunit_price
	if v == nil {
		return
	}
	return *v, true
}

// ResetUnitPrice resets all changes to the "unit_price" field.
func (m *DrugMutation) ResetUnitPrice() {
	m.unit_price = nil
	m.addunit_price = nil
}

// SetStockQuantity sets the "stock_quantity" field.
func (m *DrugMutation) SetStockQuantity(i int) {
	m.stock_quantity = &i
	m.addstock_quantity = nil
}

// StockQuantity returns the value of the "stock_quantity" field in the mutation.
func (m *DrugMutation) StockQuantity() (r int, exists bool) {
	v := m.stock_quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldStockQuantity returns the old "stock_quantity" field's value of the Drug entity.
// If the Drug object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrugMutation) OldStockQuantity(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStockQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStockQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStockQuantity: %w", err)
	}
	return oldValue.StockQuantity, nil
}

// AddStockQuantity adds i to the "stock_quantity" field.
func (m *DrugMutation) AddStockQuantity(i int) {
	if m.addstock_quantity != nil {
		*m.addstock_quantity += i
	} else {
		m.addstock_quantity = &i
	}
}

// AddedStockQuantity returns the value that was added to the "stock_quantity" field in this mutation.
func (m *DrugMutation) AddedStockQuantity() (r int, exists bool) {
	v := m.addstock_quantity
	if v == nil {
		return
	}
	return *v, true
}

// ResetStockQuantity resets all changes to the "stock_quantity" field.
func (m *DrugMutation) ResetStockQuantity() {
	m.stock_quantity = nil
	m.addstock_quantity = nil
}

// SetReorderLevel sets the "reorder_level" field.
func (m *DrugMutation) SetReorderLevel(i int) {
	m.reorder_level = &i
	m.addreorder_level = nil
}

// ReorderLevel returns the value of the "reorder_level" field in the mutation.
func (m *DrugMutation) ReorderLevel() (r int, exists bool) {
	v := m.reorder_level
	if v == nil {
		return
	}
	return *v, true
}

// OldReorderLevel returns the old "reorder_level" field's value of the Drug entity.
// If the Drug object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrugMutation) OldReorderLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReorderLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReorderLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReorderLevel: %w", err)
	}
	return oldValue.ReorderLevel, nil
}

// AddReorderLevel adds i to the "reorder_level" field.
func (m *DrugMutation) AddReorderLevel(i int) {
	if m.addreorder_level != nil {
		*m.addreorder_level += i
	} else {
		m.addreorder_level = &i
	}
}

// AddedReorderLevel returns the value that was added to the "reorder_level" field in this mutation.
func (m *DrugMutation) AddedReorderLevel() (r int, exists bool) {
	v := m.addreorder_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetReorderLevel resets all changes to the "reorder_level" field.
func (m *DrugMutation) ResetReorderLevel() {
	m.reorder_level = nil
	m.addreorder_level = nil
}

// SetExpiryDate sets the "expiry_date" field.
func (m *DrugMutation) SetExpiryDate(t time.Time) {
	m.expiry_date = &t
}

// ExpiryDate returns the value of the "expiry_date" field in the mutation.
func (m *DrugMutation) ExpiryDate() (r time.Time, exists bool) {
	v := m.expiry_date
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiryDate returns the old "expiry_date" field's value of the Drug entity.
// If the Drug object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrugMutation) OldExpiryDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiryDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiryDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiryDate: %w", err)
	}
	return oldValue.ExpiryDate, nil
}

// ClearExpiryDate clears the value of the "expiry_date" field.
func (m *DrugMutation) ClearExpiryDate() {
	m.expiry_date = nil
	m.clearedFields[drug.FieldExpiryDate] = struct{}{}
}

// ExpiryDateCleared returns if the "expiry_date" field was cleared in this mutation.
func (m *DrugMutation) ExpiryDateCleared() bool {
	_, ok := m.clearedFields[drug.FieldExpiryDate]
	return ok
}

// ResetExpiryDate resets all changes to the "expiry_date" field.
func (m *DrugMutation) ResetExpiryDate() {
	m.expiry_date = nil
	delete(m.clearedFields, drug.FieldExpiryDate)
}

// SetActive sets the "active" field.
func (m *DrugMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *DrugMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Drug entity.
// If the Drug object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrugMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *DrugMutation) ResetActive() {
	m.active = nil
}

// Where appends a list predicates to the DrugMutation builder.
func (m *DrugMutation) Where(ps ...predicate.Drug) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DrugMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DrugMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Drug, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DrugMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DrugMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Drug).
func (m *DrugMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DrugMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.created_at != nil {
		fields = append(fields, drug.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, drug.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, drug.FieldName)
	}
	if m.generic_name != nil {
		fields = append(fields, drug.FieldGenericName)
	}
	if m.category != nil {
		fields = append(fields, drug.FieldCategory)
	}
	if m.manufacturer != nil {
		fields = append(fields, drug.FieldManufacturer)
	}
	if m.batch_number != nil {
		fields = append(fields, drug.FieldBatchNumber)
	}
	if m.unit_price != nil {
		fields = append(fields, drug.FieldUnitPrice)
	}
	if m.stock_quantity != nil {
		fields = append(fields, drug.FieldStockQuantity)
	}
	if m.reorder_level != nil {
		fields = append(fields, drug.FieldReorderLevel)
	}
	if m.expiry_date != nil {
		fields = append(fields, drug.FieldExpiryDate)
	}
	if m.active != nil {
		fields = append(fields, drug.FieldActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DrugMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case drug.FieldCreatedAt:
		return m.CreatedAt()
	case drug.FieldUpdatedAt:
		return m.UpdatedAt()
	case drug.FieldName:
		return m.Name()
	case drug.FieldGenericName:
		return m.GenericName()
	case drug.FieldCategory:
		return m.Category()
	case drug.FieldManufacturer:
		return m.Manufacturer()
	case drug.FieldBatchNumber:
		return m.BatchNumber()
	case drug.FieldUnitPrice:
		return m.UnitPrice()
	case drug.FieldStockQuantity:
		return m.StockQuantity()
	case drug.FieldReorderLevel:
		return m.ReorderLevel()
	case drug.FieldExpiryDate:
		return m.ExpiryDate()
	case drug.FieldActive:
		return m.Active()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DrugMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case drug.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case drug.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case drug.FieldName:
		return m.OldName(ctx)
	case drug.FieldGenericName:
		return m.OldGenericName(ctx)
	case drug.FieldCategory:
		return m.OldCategory(ctx)
	case drug.FieldManufacturer:
		return m.OldManufacturer(ctx)
	case drug.FieldBatchNumber:
		return m.OldBatchNumber(ctx)
	case drug.FieldUnitPrice:
		return m.OldUnitPrice(ctx)
	case drug.FieldStockQuantity:
		return m.OldStockQuantity(ctx)
	case drug.FieldReorderLevel:
		return m.OldReorderLevel(ctx)
	case drug.FieldExpiryDate:
		return m.OldExpiryDate(ctx)
	case drug.FieldActive:
		return m.OldActive(ctx)
	}
	return nil, fmt.Errorf("unknown Drug field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DrugMutation) SetField(name string, value ent.Value) error {
	switch name {
	case drug.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case drug.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case drug.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case drug.FieldGenericName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGenericName(v)
		return nil
	case drug.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case drug.FieldManufacturer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetManufacturer(v)
		return nil
	case drug.FieldBatchNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatchNumber(v)
		return nil
	case drug.FieldUnitPrice:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitPrice(v)
		return nil
	case drug.FieldStockQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStockQuantity(v)
		return nil
	case drug.FieldReorderLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReorderLevel(v)
		return nil
	case drug.FieldExpiryDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiryDate(v)
		return nil
	case drug.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	}
	return fmt.Errorf("unknown Drug field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DrugMutation) AddedFields() []string {
	var fields []string
	if m.addunit_price != nil {
		fields = append(fields, drug.FieldUnitPrice)
	}
	if m.addstock_quantity != nil {
		fields = append(fields, drug.FieldStockQuantity)
	}
	if m.addreorder_level != nil {
		fields = append(fields, drug.FieldReorderLevel)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DrugMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case drug.FieldUnitPrice:
		return m.AddedUnitPrice()
	case drug.FieldStockQuantity:
		return m.AddedStockQuantity()
	case drug.FieldReorderLevel:
		return m.AddedReorderLevel()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DrugMutation) AddField(name string, value ent.Value) error {
	switch name {
	case drug.FieldUnitPrice:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUnitPrice(v)
		return nil
	case drug.FieldStockQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStockQuantity(v)
		return nil
	case drug.FieldReorderLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReorderLevel(v)
		return nil
	}
	return fmt.Errorf("unknown Drug numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DrugMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(drug.FieldGenericName) {
		fields = append(fields, drug.FieldGenericName)
	}
	if m.FieldCleared(drug.FieldCategory) {
		fields = append(fields, drug.FieldCategory)
	}
	if m.FieldCleared(drug.FieldManufacturer) {
		fields = append(fields, drug.FieldManufacturer)
	}
	if m.FieldCleared(drug.FieldBatchNumber) {
		fields = append(fields, drug.FieldBatchNumber)
	}
	if m.FieldCleared(drug.FieldExpiryDate) {
		fields = append(fields, drug.FieldExpiryDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DrugMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DrugMutation) ClearField(name string) error {
	switch name {
	case drug.FieldGenericName:
		m.ClearGenericName()
		return nil
	case drug.FieldCategory:
		m.ClearCategory()
		return nil
	case drug.FieldManufacturer:
		m.ClearManufacturer()
		return nil
	case drug.FieldBatchNumber:
		m.ClearBatchNumber()
		return nil
	case drug.FieldExpiryDate:
		m.ClearExpiryDate()
		return nil
	}
	return fmt.Errorf("unknown Drug nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DrugMutation) ResetField(name string) error {
	switch name {
	case drug.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case drug.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case drug.FieldName:
		m.ResetName()
		return nil
	case drug.FieldGenericName:
		m.ResetGenericName()
		return nil
	case drug.FieldCategory:
		m.ResetCategory()
		return nil
	case drug.FieldManufacturer:
		m.ResetManufacturer()
		return nil
	case drug.FieldBatchNumber:
		m.ResetBatchNumber()
		return nil
	case drug.FieldUnitPrice:
		m.ResetUnitPrice()
		return nil
	case drug.FieldStockQuantity:
		m.ResetStockQuantity()
		return nil
	case drug.FieldReorderLevel:
		m.ResetReorderLevel()
		return nil
	case drug.FieldExpiryDate:
		m.ResetExpiryDate()
		return nil
	case drug.FieldActive:
		m.ResetActive()
		return nil
	}
	return fmt.Errorf("unknown Drug field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DrugMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DrugMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DrugMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DrugMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DrugMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DrugMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DrugMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Drug unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DrugMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Drug edge %s", name)
}

// ExpenseMutation represents an operation that mutates the Expense nodes in the graph.
type ExpenseMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	expense_type  *expense.ExpenseType
	amount        *int64
	addamount     *int64
	description   *string
	recorded_by   *uuid.UUID
	incurred_at   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Expense, error)
	predicates    []predicate.Expense
}

var _ ent.Mutation = (*ExpenseMutation)(nil)

// expenseOption allows management of the mutation configuration using functional options.
type expenseOption func(*ExpenseMutation)

// newExpenseMutation creates new mutation for the Expense entity.
func newExpenseMutation(c config, op Op, opts ...expenseOption) *ExpenseMutation {
	m := &ExpenseMutation{
		config:        c,
		op:            op,
		typ:           TypeExpense,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExpenseID sets the ID field of the mutation.
func withExpenseID(id uuid.UUID) expenseOption {
	return func(m *ExpenseMutation) {
		var (
			err   error
			once  sync.Once
			value *Expense
		)
		m.oldValue = func(ctx context.Context) (*Expense, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Expense.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExpense sets the old Expense of the mutation.
func withExpense(node *Expense) expenseOption {
	return func(m *ExpenseMutation) {
		m.oldValue = func(context.Context) (*Expense, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExpenseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExpenseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Expense entities.
func (m *ExpenseMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExpenseMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExpenseMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Expense.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ExpenseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExpenseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Expense entity.
// If the Expense object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExpenseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExpenseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetExpenseType sets the "expense_type" field.
func (m *ExpenseMutation) SetExpenseType(et expense.ExpenseType) {
	m.expense_type = &et
}

// ExpenseType returns the value of the "expense_type" field in the mutation.
func (m *ExpenseMutation) ExpenseType() (r expense.ExpenseType, exists bool) {
	v := m.expense_type
	if v == nil {
		return
	}
	return *v, true
}

// OldExpenseType returns the old "expense_type" field's value of the Expense entity.
// If the Expense object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExpenseMutation) OldExpenseType(ctx context.Context) (v expense.ExpenseType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpenseType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpenseType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpenseType: %w", err)
	}
	return oldValue.ExpenseType, nil
}

// ResetExpenseType resets all changes to the "expense_type" field.
func (m *ExpenseMutation) ResetExpenseType() {
	m.expense_type = nil
}

// SetAmount sets the "amount" field.
func (m *ExpenseMutation) SetAmount(i int64) {
	m.amount = &i
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *ExpenseMutation) Amount() (r int64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the Expense entity.
// If the Expense object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExpenseMutation) OldAmount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds i to the "amount" field.
func (m *ExpenseMutation) AddAmount(i int64) {
	if m.addamount != nil {
		*m.addamount += i
	} else {
		m.addamount = &i
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *ExpenseMutation) AddedAmount() (r int64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *ExpenseMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetDescription sets the "description" field.
func (m *ExpenseMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ExpenseMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Expense entity.
// If the Expense object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExpenseMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ExpenseMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[expense.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ExpenseMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[expense.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ExpenseMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, expense.FieldDescription)
}

// SetRecordedBy sets the "recorded_by" field.
func (m *ExpenseMutation) SetRecordedBy(u uuid.UUID) {
	m.recorded_by = &u
}

// RecordedBy returns the value of the "recorded_by" field in the mutation.
func (m *ExpenseMutation) RecordedBy() (r uuid.UUID, exists bool) {
	v := m.recorded_by
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordedBy returns the old "recorded_by" field's value of the Expense entity.
// If the Expense object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExpenseMutation) OldRecordedBy(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordedBy: %w", err)
	}
	return oldValue.RecordedBy, nil
}

// ClearRecordedBy clears the value of the "recorded_by" field.
func (m *ExpenseMutation) ClearRecordedBy() {
	m.recorded_by = nil
	m.clearedFields[expense.FieldRecordedBy] = struct{}{}
}

// RecordedByCleared returns if the "recorded_by" field was cleared in this mutation.
func (m *ExpenseMutation) RecordedByCleared() bool {
	_, ok := m.clearedFields[expense.FieldRecordedBy]
	return ok
}

// ResetRecordedBy resets all changes to the "recorded_by" field.
func (m *ExpenseMutation) ResetRecordedBy() {
	m.recorded_by = nil
	delete(m.clearedFields, expense.FieldRecordedBy)
}

// SetIncurredAt sets the "incurred_at" field.
func (m *ExpenseMutation) SetIncurredAt(t time.Time) {
	m.incurred_at = &t
}

// IncurredAt returns the value of the "incurred_at" field in the mutation.
func (m *ExpenseMutation) IncurredAt() (r time.Time, exists bool) {
	v := m.incurred_at
	if v == nil {
		return
	}
	return *v, true
}

// OldIncurredAt returns the old "incurred_at" field's value of the Expense entity.
// If the Expense object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExpenseMutation) OldIncurredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncurredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncurredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncurredAt: %w", err)
	}
	return oldValue.IncurredAt, nil
}

// ResetIncurredAt resets all changes to the "incurred_at" field.
func (m *ExpenseMutation) ResetIncurredAt() {
	m.incurred_at = nil
}

// Where appends a list predicates to the ExpenseMutation builder.
func (m *ExpenseMutation) Where(ps ...predicate.Expense) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExpenseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExpenseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Expense, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExpenseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExpenseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Expense).
func (m *ExpenseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExpenseMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, expense.FieldCreatedAt)
	}
	if m.expense_type != nil {
		fields = append(fields, expense.FieldExpenseType)
	}
	if m.amount != nil {
		fields = append(fields, expense.FieldAmount)
	}
	if m.description != nil {
		fields = append(fields, expense.FieldDescription)
	}
	if m.recorded_by != nil {
		fields = append(fields, expense.FieldRecordedBy)
	}
	if m.incurred_at != nil {
		fields = append(fields, expense.FieldIncurredAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExpenseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case expense.FieldCreatedAt:
		return m.CreatedAt()
	case expense.FieldExpenseType:
		return m.ExpenseType()
	case expense.FieldAmount:
		return m.Amount()
	case expense.FieldDescription:
		return m.Description()
	case expense.FieldRecordedBy:
		return m.RecordedBy()
	case expense.FieldIncurredAt:
		return m.IncurredAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExpenseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case expense.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case expense.FieldExpenseType:
		return m.OldExpenseType(ctx)
	case expense.FieldAmount:
		return m.OldAmount(ctx)
	case expense.FieldDescription:
		return m.OldDescription(ctx)
	case expense.FieldRecordedBy:
		return m.OldRecordedBy(ctx)
	case expense.FieldIncurredAt:
		return m.OldIncurredAt(ctx)
	}
	return nil, fmt.Errorf("unknown Expense field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExpenseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case expense.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case expense.FieldExpenseType:
		v, ok := value.(expense.ExpenseType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpenseType(v)
		return nil
	case expense.FieldAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case expense.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case expense.FieldRecordedBy:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordedBy(v)
		return nil
	case expense.FieldIncurredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncurredAt(v)
		return nil
	}
	return fmt.Errorf("unknown Expense field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExpenseMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, expense.FieldAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExpenseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case expense.FieldAmount:
		return m.AddedAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExpenseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case expense.FieldAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	}
	return fmt.Errorf("unknown Expense numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExpenseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(expense.FieldDescription) {
		fields = append(fields, expense.FieldDescription)
	}
	if m.FieldCleared(expense.FieldRecordedBy) {
		fields = append(fields, expense.FieldRecordedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExpenseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExpenseMutation) ClearField(name string) error {
	switch name {
	case expense.FieldDescription:
		m.ClearDescription()
		return nil
	case expense.FieldRecordedBy:
		m.ClearRecordedBy()
		return nil
	}
	return fmt.Errorf("unknown Expense nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExpenseMutation) ResetField(name string) error {
	switch name {
	case expense.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case expense.FieldExpenseType:
		m.ResetExpenseType()
		return nil
	case expense.FieldAmount:
		m.ResetAmount()
		return nil
	case expense.FieldDescription:
		m.ResetDescription()
		return nil
	case expense.FieldRecordedBy:
		m.ResetRecordedBy()
		return nil
	case expense.FieldIncurredAt:
		m.ResetIncurredAt()
		return nil
	}
	return fmt.Errorf("unknown Expense field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExpenseMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExpenseMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExpenseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExpenseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExpenseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExpenseMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExpenseMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Expense unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExpenseMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Expense edge %s", name)
}

// IncomeMutation represents an operation that mutates the Income nodes in the graph.
type IncomeMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	source        *income.Source
	amount        *int64
	addamount     *int64
	description   *string
	reference_id  *uuid.UUID
	received_by   *uuid.UUID
	received_at   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Income, error)
	predicates    []predicate.Income
}

var _ ent.Mutation = (*IncomeMutation)(nil)

// incomeOption allows management of the mutation configuration using functional options.
type incomeOption func(*IncomeMutation)

// newIncomeMutation creates new mutation for the Income entity.
func newIncomeMutation(c config, op Op, opts ...incomeOption) *IncomeMutation {
	m := &IncomeMutation{
		config:        c,
		op:            op,
		typ:           TypeIncome,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIncomeID sets the ID field of the mutation.
func withIncomeID(id uuid.UUID) incomeOption {
	return func(m *IncomeMutation) {
		var (
			err   error
			once  sync.Once
			value *Income
		)
		m.oldValue = func(ctx context.Context) (*Income, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Income.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIncome sets the old Income of the mutation.
func withIncome(node *Income) incomeOption {
	return func(m *IncomeMutation) {
		m.oldValue = func(context.Context) (*Income, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IncomeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IncomeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Income entities.
func (m *IncomeMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IncomeMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IncomeMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Income.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *IncomeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IncomeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Income entity.
// If the Income object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncomeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *IncomeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetSource sets the "source" field.
func (m *IncomeMutation) SetSource(i income.Source) {
	m.source = &i
}

// Source returns the value of the "source" field in the mutation.
func (m *IncomeMutation) Source() (r income.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Income entity.
// If the Income object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncomeMutation) OldSource(ctx context.Context) (v income.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *IncomeMutation) ResetSource() {
	m.source = nil
}

// SetAmount sets the "amount" field.
func (m *IncomeMutation) SetAmount(i int64) {
	m.amount = &i
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *IncomeMutation) Amount() (r int64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the Income entity.
// If the Income object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncomeMutation) OldAmount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds i to the "amount" field.
func (m *IncomeMutation) AddAmount(i int64) {
	if m.addamount != nil {
		*m.addamount += i
	} else {
		m.addamount = &i
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *IncomeMutation) AddedAmount() (r int64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *IncomeMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetDescription sets the "description" field.
func (m *IncomeMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *IncomeMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Income entity.
// If the Income object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncomeMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *IncomeMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[income.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *IncomeMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[income.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *IncomeMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, income.FieldDescription)
}

// SetReferenceID sets the "reference_id" field.
func (m *IncomeMutation) SetReferenceID(u uuid.UUID) {
	m.reference_id = &u
}

// ReferenceID returns the value of the "reference_id" field in the mutation.
func (m *IncomeMutation) ReferenceID() (r uuid.UUID, exists bool) {
	v := m.reference_id
	if v == nil {
		return
	}
	return *v, true
}

// OldReferenceID returns the old "reference_id" field's value of the Income entity.
// If the Income object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncomeMutation) OldReferenceID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReferenceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReferenceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReferenceID: %w", err)
	}
	return oldValue.ReferenceID, nil
}

// ClearReferenceID clears the value of the "reference_id" field.
func (m *IncomeMutation) ClearReferenceID() {
	m.reference_id = nil
	m.clearedFields[income.FieldReferenceID] = struct{}{}
}

// ReferenceIDCleared returns if the "reference_id" field was cleared in this mutation.
func (m *IncomeMutation) ReferenceIDCleared() bool {
	_, ok := m.clearedFields[income.FieldReferenceID]
	return ok
}

// ResetReferenceID resets all changes to the "reference_id" field.
func (m *IncomeMutation) ResetReferenceID() {
	m.reference_id = nil
	delete(m.clearedFields, income.FieldReferenceID)
}

// SetReceivedBy sets the "received_by" field.
func (m *IncomeMutation) SetReceivedBy(u uuid.UUID) {
	m.received_by = &u
}

// ReceivedBy returns the value of the "received_by" field in the mutation.
func (m *IncomeMutation) ReceivedBy() (r uuid.UUID, exists bool) {
	v := m.received_by
	if v == nil {
		return
	}
	return *v, true
}

// OldReceivedBy returns the old "received_by" field's value of the Income entity.
// If the Income object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncomeMutation) OldReceivedBy(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceivedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceivedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceivedBy: %w", err)
	}
	return oldValue.ReceivedBy, nil
}

// ClearReceivedBy clears the value of the "received_by" field.
func (m *IncomeMutation) ClearReceivedBy() {
	m.received_by = nil
	m.clearedFields[income.FieldReceivedBy] = struct{}{}
}

// ReceivedByCleared returns if the "received_by" field was cleared in this mutation.
func (m *IncomeMutation) ReceivedByCleared() bool {
	_, ok := m.clearedFields[income.FieldReceivedBy]
	return ok
}

// ResetReceivedBy resets all changes to the "received_by" field.
func (m *IncomeMutation) ResetReceivedBy() {
	m.received_by = nil
	delete(m.clearedFields, income.FieldReceivedBy)
}

// SetReceivedAt sets the "received_at" field.
func (m *IncomeMutation) SetReceivedAt(t time.Time) {
	m.received_at = &t
}

// ReceivedAt returns the value of the "received_at" field in the mutation.
func (m *IncomeMutation) ReceivedAt() (r time.Time, exists bool) {
	v := m.received_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReceivedAt returns the old "received_at" field's value of the Income entity.
// If the Income object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncomeMutation) OldReceivedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceivedAt: %w", err)
	}
	return oldValue.ReceivedAt, nil
}

// ResetReceivedAt resets all changes to the "received_at" field.
func (m *IncomeMutation) ResetReceivedAt() {
	m.received_at = nil
}

// Where appends a list predicates to the IncomeMutation builder.
func (m *IncomeMutation) Where(ps ...predicate.Income) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IncomeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IncomeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Income, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IncomeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IncomeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Income).
func (m *IncomeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IncomeMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, income.FieldCreatedAt)
	}
	if m.source != nil {
		fields = append(fields, income.FieldSource)
	}
	if m.amount != nil {
		fields = append(fields, income.FieldAmount)
	}
	if m.description != nil {
		fields = append(fields, income.FieldDescription)
	}
	if m.reference_id != nil {
		fields = append(fields, income.FieldReferenceID)
	}
	if m.received_by != nil {
		fields = append(fields, income.FieldReceivedBy)
	}
	if m.received_at != nil {
		fields = append(fields, income.FieldReceivedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IncomeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case income.FieldCreatedAt:
		return m.CreatedAt()
	case income.FieldSource:
		return m.Source()
	case income.FieldAmount:
		return m.Amount()
	case income.FieldDescription:
		return m.Description()
	case income.FieldReferenceID:
		return m.ReferenceID()
	case income.FieldReceivedBy:
		return m.ReceivedBy()
	case income.FieldReceivedAt:
		return m.ReceivedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IncomeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case income.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case income.FieldSource:
		return m.OldSource(ctx)
	case income.FieldAmount:
		return m.OldAmount(ctx)
	case income.FieldDescription:
		return m.OldDescription(ctx)
	case income.FieldReferenceID:
		return m.OldReferenceID(ctx)
	case income.FieldReceivedBy:
		return m.OldReceivedBy(ctx)
	case income.FieldReceivedAt:
		return m.OldReceivedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Income field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IncomeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case income.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case income.FieldSource:
		v, ok := value.(income.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case income.FieldAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case income.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case income.FieldReferenceID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReferenceID(v)
		return nil
	case income.FieldReceivedBy:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceivedBy(v)
		return nil
	case income.FieldReceivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceivedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Income field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IncomeMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, income.FieldAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IncomeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case income.FieldAmount:
		return m.AddedAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IncomeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case income.FieldAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	}
	return fmt.Errorf("unknown Income numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IncomeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(income.FieldDescription) {
		fields = append(fields, income.FieldDescription)
	}
	if m.FieldCleared(income.FieldReferenceID) {
		fields = append(fields, income.FieldReferenceID)
	}
	if m.FieldCleared(income.FieldReceivedBy) {
		fields = append(fields, income.FieldReceivedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IncomeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IncomeMutation) ClearField(name string) error {
	switch name {
	case income.FieldDescription:
		m.ClearDescription()
		return nil
	case income.FieldReferenceID:
		m.ClearReferenceID()
		return nil
	case income.FieldReceivedBy:
		m.ClearReceivedBy()
		return nil
	}
	return fmt.Errorf("unknown Income nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IncomeMutation) ResetField(name string) error {
	switch name {
	case income.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case income.FieldSource:
		m.ResetSource()
		return nil
	case income.FieldAmount:
		m.ResetAmount()
		return nil
	case income.FieldDescription:
		m.ResetDescription()
		return nil
	case income.FieldReferenceID:
		m.ResetReferenceID()
		return nil
	case income.FieldReceivedBy:
		m.ResetReceivedBy()
		return nil
	case income.FieldReceivedAt:
		m.ResetReceivedAt()
		return nil
	}
	return fmt.Errorf("unknown Income field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IncomeMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IncomeMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IncomeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IncomeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IncomeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IncomeMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IncomeMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Income unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IncomeMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Income edge %s", name)
}

// LabOrderMutation represents an operation that mutates the LabOrder nodes in the graph.
type LabOrderMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	created_at          *time.Time
	updated_at          *time.Time
	order_number        *string
	patient_id          *uuid.UUID
	ordered_by          *uuid.UUID
	prescription_id     *uuid.UUID
	status              *laborder.Status
	total_amount        *int64
	addtotal_amount     *int64
	amount_paid         *int64
	addamount_paid      *int64
	sample_collected_at *time.Time
	completed_at        *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*LabOrder, error)
	predicates          []predicate.LabOrder
}

var _ ent.Mutation = (*LabOrderMutation)(nil)

// laborderOption allows management of the mutation configuration using functional options.
type laborderOption func(*LabOrderMutation)

// newLabOrderMutation creates new mutation for the LabOrder entity.
func newLabOrderMutation(c config, op Op, opts ...laborderOption) *LabOrderMutation {
	m := &LabOrderMutation{
		config:        c,
		op:            op,
		typ:           TypeLabOrder,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLabOrderID sets the ID field of the mutation.
func withLabOrderID(id uuid.UUID) laborderOption {
	return func(m *LabOrderMutation) {
		var (
			err   error
			once  sync.Once
			value *LabOrder
		)
		m.oldValue = func(ctx context.Context) (*LabOrder, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LabOrder.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLabOrder sets the old LabOrder of the mutation.
func withLabOrder(node *LabOrder) laborderOption {
	return func(m *LabOrderMutation) {
		m.oldValue = func(context.Context) (*LabOrder, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LabOrderMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LabOrderMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LabOrder entities.
func (m *LabOrderMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LabOrderMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LabOrderMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LabOrder.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *LabOrderMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LabOrderMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LabOrder entity.
// If the LabOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabOrderMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LabOrderMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LabOrderMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LabOrderMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the LabOrder entity.
// If the LabOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabOrderMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LabOrderMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetOrderNumber sets the "order_number" field.
func (m *LabOrderMutation) SetOrderNumber(s string) {
	m.order_number = &s
}

// OrderNumber returns the value of the "order_number" field in the mutation.
func (m *LabOrderMutation) OrderNumber() (r string, exists bool) {
	v := m.order_number
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderNumber returns the old "order_number" field's value of the LabOrder entity.
// If the LabOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabOrderMutation) OldOrderNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderNumber: %w", err)
	}
	return oldValue.OrderNumber, nil
}

// ResetOrderNumber resets all changes to the "order_number" field.
func (m *LabOrderMutation) ResetOrderNumber() {
	m.order_number = nil
}

// SetPatientID sets the "patient_id" field.
func (m *LabOrderMutation) SetPatientID(u uuid.UUID) {
	m.patient_id = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *LabOrderMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the LabOrder entity.
// If the LabOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabOrderMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *LabOrderMutation) ResetPatientID() {
	m.patient_id = nil
}

// SetOrderedBy sets the "ordered_by" field.
func (m *LabOrderMutation) SetOrderedBy(u uuid.UUID) {
	m.ordered_by = &u
}

// OrderedBy returns the value of the "ordered_by" field in the mutation.
func (m *LabOrderMutation) OrderedBy() (r uuid.UUID, exists bool) {
	v := m.ordered_by
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderedBy returns the old "ordered_by" field's value of the LabOrder entity.
// If the LabOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabOrderMutation) OldOrderedBy(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderedBy: %w", err)
	}
	return oldValue.OrderedBy, nil
}

// ClearOrderedBy clears the value of the "ordered_by" field.
func (m *LabOrderMutation) ClearOrderedBy() {
	m.ordered_by = nil
	m.clearedFields[laborder.FieldOrderedBy] = struct{}{}
}

// OrderedByCleared returns if the "ordered_by" field was cleared in this mutation.
func (m *LabOrderMutation) OrderedByCleared() bool {
	_, ok := m.clearedFields[laborder.FieldOrderedBy]
	return ok
}

// ResetOrderedBy resets all changes to the "ordered_by" field.
func (m *LabOrderMutation) ResetOrderedBy() {
	m.ordered_by = nil
	delete(m.clearedFields, laborder.FieldOrderedBy)
}

// SetPrescriptionID sets the "prescription_id" field.
func (m *LabOrderMutation) SetPrescriptionID(u uuid.UUID) {
	m.prescription_id = &u
}

// PrescriptionID returns the value of the "prescription_id" field in the mutation.
func (m *LabOrderMutation) PrescriptionID() (r uuid.UUID, exists bool) {
	v := m.prescription_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPrescriptionID returns the old "prescription_id" field's value of the LabOrder entity.
// If the LabOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabOrderMutation) OldPrescriptionID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrescriptionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrescriptionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrescriptionID: %w", err)
	}
	return oldValue.PrescriptionID, nil
}

// ClearPrescriptionID clears the value of the "prescription_id" field.
func (m *LabOrderMutation) ClearPrescriptionID() {
	m.prescription_id = nil
	m.clearedFields[laborder.FieldPrescriptionID] = struct{}{}
}

// PrescriptionIDCleared returns if the "prescription_id" field was cleared in this mutation.
func (m *LabOrderMutation) PrescriptionIDCleared() bool {
	_, ok := m.clearedFields[laborder.FieldPrescriptionID]
	return ok
}

// ResetPrescriptionID resets all changes to the "prescription_id" field.
func (m *LabOrderMutation) ResetPrescriptionID() {
	m.prescription_id = nil
	delete(m.clearedFields, laborder.FieldPrescriptionID)
}

// SetStatus sets the "status" field.
func (m *LabOrderMutation) SetStatus(l laborder.Status) {
	m.status = &l
}

// Status returns the value of the "status" field in the mutation.
func (m *LabOrderMutation) Status() (r laborder.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the LabOrder entity.
// If the LabOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabOrderMutation) OldStatus(ctx context.Context) (v laborder.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *LabOrderMutation) ResetStatus() {
	m.status = nil
}

// SetTotalAmount sets the "total_amount" field.
func (m *LabOrderMutation) SetTotalAmount(i int64) {
	m.total_amount = &i
	m.addtotal_amount = nil
}

// TotalAmount returns the value of the "total_amount" field in the mutation.
func (m *LabOrderMutation) TotalAmount() (r int64, exists bool) {
	v := m.total_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAmount returns the old "total_amount" field's value of the LabOrder entity.
// If the LabOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabOrderMutation) OldTotalAmount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAmount: %w", err)
	}
	return oldValue.TotalAmount, nil
}

// AddTotalAmount adds i to the "total_amount" field.
func (m *LabOrderMutation) AddTotalAmount(i int64) {
	if m.addtotal_amount != nil {
		*m.addtotal_amount += i
	} else {
		m.addtotal_amount = &i
	}
}

// AddedTotalAmount returns the value that was added to the "total_amount" field in this mutation.
func (m *LabOrderMutation) AddedTotalAmount() (r int64, exists bool) {
	v := m.addtotal_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalAmount resets all changes to the "total_amount" field.
func (m *LabOrderMutation) ResetTotalAmount() {
	m.total_amount = nil
	m.addtotal_amount = nil
}

// SetAmountPaid sets the "amount_paid" field.
func (m *LabOrderMutation) SetAmountPaid(i int64) {
	m.amount_paid = &i
	m.addamount_paid = nil
}

// AmountPaid returns the value of the "amount_paid" field in the mutation.
func (m *LabOrderMutation) AmountPaid() (r int64, exists bool) {
	v := m.amount_paid
	if v == nil {
		return
	}
	return *v, true
}

// OldAmountPaid returns the old "amount_paid" field's value of the LabOrder entity.
// If the LabOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabOrderMutation) OldAmountPaid(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmountPaid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmountPaid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmountPaid: %w", err)
	}
	return oldValue.AmountPaid, nil
}

// AddAmountPaid adds i to the "amount_paid" field.
func (m *LabOrderMutation) AddAmountPaid(i int64) {
	if m.addamount_paid != nil {
		*m.addamount_paid += i
	} else {
		m.addamount_paid = &i
	}
}

// AddedAmountPaid returns the value that was added to the "amount_paid" field in this mutation.
func (m *LabOrderMutation) AddedAmountPaid() (r int64, exists bool) {
	v := m.addamount_paid
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmountPaid resets all changes to the "amount_paid" field.
func (m *LabOrderMutation) ResetAmountPaid() {
	m.amount_paid = nil
	m.addamount_paid = nil
}

// SetSampleCollectedAt sets the "sample_collected_at" field.
func (m *LabOrderMutation) SetSampleCollectedAt(t time.Time) {
	m.sample_collected_at = &t
}

// SampleCollectedAt returns the value of the "sample_collected_at" field in the mutation.
func (m *LabOrderMutation) SampleCollectedAt() (r time.Time, exists bool) {
	v := m.sample_collected_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSampleCollectedAt returns the old "sample_collected_at" field's value of the LabOrder entity.
// If the LabOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabOrderMutation) OldSampleCollectedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSampleCollectedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSampleCollectedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSampleCollectedAt: %w", err)
	}
	return oldValue.SampleCollectedAt, nil
}

// ClearSampleCollectedAt clears the value of the "sample_collected_at" field.
func (m *LabOrderMutation) ClearSampleCollectedAt() {
	m.sample_collected_at = nil
	m.clearedFields[laborder.FieldSampleCollectedAt] = struct{}{}
}

// SampleCollectedAtCleared returns if the "sample_collected_at" field was cleared in this mutation.
func (m *LabOrderMutation) SampleCollectedAtCleared() bool {
	_, ok := m.clearedFields[laborder.FieldSampleCollectedAt]
	return ok
}

// ResetSampleCollectedAt resets all changes to the "sample_collected_at" field.
func (m *LabOrderMutation) ResetSampleCollectedAt() {
	m.sample_collected_at = nil
	delete(m.clearedFields, laborder.FieldSampleCollectedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *LabOrderMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *LabOrderMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the LabOrder entity.
// If the LabOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabOrderMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *LabOrderMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[laborder.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *LabOrderMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[laborder.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *LabOrderMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, laborder.FieldCompletedAt)
}

// Where appends a list predicates to the LabOrderMutation builder.
func (m *LabOrderMutation) Where(ps ...predicate.LabOrder) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LabOrderMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LabOrderMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LabOrder, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LabOrderMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LabOrderMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LabOrder).
func (m *LabOrderMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LabOrderMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.created_at != nil {
		fields = append(fields, laborder.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, laborder.FieldUpdatedAt)
	}
	if m.order_number != nil {
		fields = append(fields, laborder.FieldOrderNumber)
	}
	if m.patient_id != nil {
		fields = append(fields, laborder.FieldPatientID)
	}
	if m.ordered_by != nil {
		fields = append(fields, laborder.FieldOrderedBy)
	}
	if m.prescription_id != nil {
		fields = append(fields, laborder.FieldPrescriptionID)
	}
	if m.status != nil {
		fields = append(fields, laborder.FieldStatus)
	}
	if m.total_amount != nil {
		fields = append(fields, laborder.FieldTotalAmount)
	}
	if m.amount_paid != nil {
		fields = append(fields, laborder.FieldAmountPaid)
	}
	if m.sample_collected_at != nil {
		fields = append(fields, laborder.FieldSampleCollectedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, laborder.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LabOrderMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case laborder.FieldCreatedAt:
		return m.CreatedAt()
	case laborder.FieldUpdatedAt:
		return m.UpdatedAt()
	case laborder.FieldOrderNumber:
		return m.OrderNumber()
	case laborder.FieldPatientID:
		return m.PatientID()
	case laborder.FieldOrderedBy:
		return m.OrderedBy()
	case laborder.FieldPrescriptionID:
		return m.PrescriptionID()
	case laborder.FieldStatus:
		return m.Status()
	case laborder.FieldTotalAmount:
		return m.TotalAmount()
	case laborder.FieldAmountPaid:
		return m.AmountPaid()
	case laborder.FieldSampleCollectedAt:
		return m.SampleCollectedAt()
	case laborder.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LabOrderMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case laborder.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case laborder.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case laborder.FieldOrderNumber:
		return m.OldOrderNumber(ctx)
	case laborder.FieldPatientID:
		return m.OldPatientID(ctx)
	case laborder.FieldOrderedBy:
		return m.OldOrderedBy(ctx)
	case laborder.FieldPrescriptionID:
		return m.OldPrescriptionID(ctx)
	case laborder.FieldStatus:
		return m.OldStatus(ctx)
	case laborder.FieldTotalAmount:
		return m.OldTotalAmount(ctx)
	case laborder.FieldAmountPaid:
		return m.OldAmountPaid(ctx)
	case laborder.FieldSampleCollectedAt:
		return m.OldSampleCollectedAt(ctx)
	case laborder.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LabOrder field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LabOrderMutation) SetField(name string, value ent.Value) error {
	switch name {
	case laborder.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case laborder.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case laborder.FieldOrderNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderNumber(v)
		return nil
	case laborder.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case laborder.FieldOrderedBy:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderedBy(v)
		return nil
	case laborder.FieldPrescriptionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrescriptionID(v)
		return nil
	case laborder.FieldStatus:
		v, ok := value.(laborder.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case laborder.FieldTotalAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAmount(v)
		return nil
	case laborder.FieldAmountPaid:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmountPaid(v)
		return nil
	case laborder.FieldSampleCollectedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSampleCollectedAt(v)
		return nil
	case laborder.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LabOrder field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LabOrderMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_amount != nil {
		fields = append(fields, laborder.FieldTotalAmount)
	}
	if m.addamount_paid != nil {
		fields = append(fields, laborder.FieldAmountPaid)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LabOrderMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case laborder.FieldTotalAmount:
		return m.AddedTotalAmount()
	case laborder.FieldAmountPaid:
		return m.AddedAmountPaid()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LabOrderMutation) AddField(name string, value ent.Value) error {
	switch name {
	case laborder.FieldTotalAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalAmount(v)
		return nil
	case laborder.FieldAmountPaid:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmountPaid(v)
		return nil
	}
	return fmt.Errorf("unknown LabOrder numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LabOrderMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(laborder.FieldOrderedBy) {
		fields = append(fields, laborder.FieldOrderedBy)
	}
	if m.FieldCleared(laborder.FieldPrescriptionID) {
		fields = append(fields, laborder.FieldPrescriptionID)
	}
	if m.FieldCleared(laborder.FieldSampleCollectedAt) {
		fields = append(fields, laborder.FieldSampleCollectedAt)
	}
	if m.FieldCleared(laborder.FieldCompletedAt) {
		fields = append(fields, laborder.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LabOrderMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LabOrderMutation) ClearField(name string) error {
	switch name {
	case laborder.FieldOrderedBy:
		m.ClearOrderedBy()
		return nil
	case laborder.FieldPrescriptionID:
		m.ClearPrescriptionID()
		return nil
	case laborder.FieldSampleCollectedAt:
		m.ClearSampleCollectedAt()
		return nil
	case laborder.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown LabOrder nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LabOrderMutation) ResetField(name string) error {
	switch name {
	case laborder.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case laborder.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case laborder.FieldOrderNumber:
		m.ResetOrderNumber()
		return nil
	case laborder.FieldPatientID:
		m.ResetPatientID()
		return nil
	case laborder.FieldOrderedBy:
		m.ResetOrderedBy()
		return nil
	case laborder.FieldPrescriptionID:
		m.ResetPrescriptionID()
		return nil
	case laborder.FieldStatus:
		m.ResetStatus()
		return nil
	case laborder.FieldTotalAmount:
		m.ResetTotalAmount()
		return nil
	case laborder.FieldAmountPaid:
		m.ResetAmountPaid()
		return nil
	case laborder.FieldSampleCollectedAt:
		m.ResetSampleCollectedAt()
		return nil
	case laborder.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown LabOrder field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LabOrderMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LabOrderMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LabOrderMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LabOrderMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LabOrderMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LabOrderMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LabOrderMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LabOrder unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LabOrderMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LabOrder edge %s", name)
}

// LabResultMutation represents an operation that mutates the LabResult nodes in the graph.
type LabResultMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	order_id      *uuid.UUID
	test_id       *uuid.UUID
	price         *int64
	addprice      *int64
	result_value  *string
	unit          *string
	abnormal      *bool
	status        *labresult.Status
	entered_by    *uuid.UUID
	verified_by   *uuid.UUID
	verified_at   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*LabResult, error)
	predicates    []predicate.LabResult
}

var _ ent.Mutation = (*LabResultMutation)(nil)

// labresultOption allows management of the mutation configuration using functional options.
type labresultOption func(*LabResultMutation)

// newLabResultMutation creates new mutation for the LabResult entity.
func newLabResultMutation(c config, op Op, opts ...labresultOption) *LabResultMutation {
	m := &LabResultMutation{
		config:        c,
		op:            op,
		typ:           TypeLabResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLabResultID sets the ID field of the mutation.
func withLabResultID(id uuid.UUID) labresultOption {
	return func(m *LabResultMutation) {
		var (
			err   error
			once  sync.Once
			value *LabResult
		)
		m.oldValue = func(ctx context.Context) (*LabResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LabResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLabResult sets the old LabResult of the mutation.
func withLabResult(node *LabResult) labresultOption {
	return func(m *LabResultMutation) {
		m.oldValue = func(context.Context) (*LabResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LabResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LabResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LabResult entities.
func (m *LabResultMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LabResultMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LabResultMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LabResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *LabResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LabResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LabResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LabResultMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LabResultMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LabResultMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetOrderID sets the "order_id" field.
func (m *LabResultMutation) SetOrderID(u uuid.UUID) {
	m.order_id = &u
}

// OrderID returns the value of the "order_id" field in the mutation.
func (m *LabResultMutation) OrderID() (r uuid.UUID, exists bool) {
	v := m.order_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderID returns the old "order_id" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldOrderID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderID: %w", err)
	}
	return oldValue.OrderID, nil
}

// ResetOrderID resets all changes to the "order_id" field.
func (m *LabResultMutation) ResetOrderID() {
	m.order_id = nil
}

// SetTestID sets the "test_id" field.
func (m *LabResultMutation) SetTestID(u uuid.UUID) {
	m.test_id = &u
}

// TestID returns the value of the "test_id" field in the mutation.
func (m *LabResultMutation) TestID() (r uuid.UUID, exists bool) {
	v := m.test_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTestID returns the old "test_id" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldTestID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestID: %w", err)
	}
	return oldValue.TestID, nil
}

// ResetTestID resets all changes to the "test_id" field.
func (m *LabResultMutation) ResetTestID() {
	m.test_id = nil
}

// SetPrice sets the "price" field.
func (m *LabResultMutation) SetPrice(i int64) {
	m.price = &i
	m.addprice = nil
}

// Price returns the value of the "price" field in the mutation.
func (m *LabResultMutation) Price() (r int64, exists bool) {
	v := m.price
	if v == nil {
		return
	}
	return *v, true
}

// OldPrice returns the old "price" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldPrice(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrice: %w", err)
	}
	return oldValue.Price, nil
}

// AddPrice adds i to the "price" field.
func (m *LabResultMutation) AddPrice(i int64) {
	if m.addprice != nil {
		*m.addprice += i
	} else {
		m.addprice = &i
	}
}

// AddedPrice returns the value that was added to the "price" field in this mutation.
func (m *LabResultMutation) AddedPrice() (r int64, exists bool) {
	v := m.addprice
	if v == nil {
		return
	}
	return *v, true
}

// ResetPrice resets all changes to the "price" field.
func (m *LabResultMutation) ResetPrice() {
	m.price = nil
	m.addprice = nil
}

// SetResultValue sets the "result_value" field.
func (m *LabResultMutation) SetResultValue(s string) {
	m.result_value = &s
}

// ResultValue returns the value of the "result_value" field in the mutation.
func (m *LabResultMutation) ResultValue() (r string, exists bool) {
	v := m.result_value
	if v == nil {
		return
	}
	return *v, true
}

// OldResultValue returns the old "result_value" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldResultValue(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultValue: %w", err)
	}
	return oldValue.ResultValue, nil
}

// ClearResultValue clears the value of the "result_value" field.
func (m *LabResultMutation) ClearResultValue() {
	m.result_value = nil
	m.clearedFields[labresult.FieldResultValue] = struct{}{}
}

// ResultValueCleared returns if the "result_value" field was cleared in this mutation.
func (m *LabResultMutation) ResultValueCleared() bool {
	_, ok := m.clearedFields[labresult.FieldResultValue]
	return ok
}

// ResetResultValue resets all changes to the "result_value" field.
func (m *LabResultMutation) ResetResultValue() {
	m.result_value = nil
	delete(m.clearedFields, labresult.FieldResultValue)
}

// SetUnit sets the "unit" field.
func (m *LabResultMutation) SetUnit(s string) {
	m.unit = &s
}

// Unit returns the value of the "unit" field in the mutation.
func (m *LabResultMutation) Unit() (r string, exists bool) {
	v := m.unit
	if v == nil {
		return
	}
	return *v, true
}

// OldUnit returns the old "unit" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldUnit(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnit: %w", err)
	}
	return oldValue.Unit, nil
}

// ClearUnit clears the value of the "unit" field.
func (m *LabResultMutation) ClearUnit() {
	m.unit = nil
	m.clearedFields[labresult.FieldUnit] = struct{}{}
}

// UnitCleared returns if the "unit" field was cleared in this mutation.
func (m *LabResultMutation) UnitCleared() bool {
	_, ok := m.clearedFields[labresult.FieldUnit]
	return ok
}

// ResetUnit resets all changes to the "unit" field.
func (m *LabResultMutation) ResetUnit() {
	m.unit = nil
	delete(m.clearedFields, labresult.FieldUnit)
}

// SetAbnormal sets the "abnormal" field.
func (m *LabResultMutation) SetAbnormal(b bool) {
	m.abnormal = &b
}

// Abnormal returns the value of the "abnormal" field in the mutation.
func (m *LabResultMutation) Abnormal() (r bool, exists bool) {
	v := m.abnormal
	if v == nil {
		return
	}
	return *v, true
}

// OldAbnormal returns the old "abnormal" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldAbnormal(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAbnormal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAbnormal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAbnormal: %w", err)
	}
	return oldValue.Abnormal, nil
}

// ResetAbnormal resets all changes to the "abnormal" field.
func (m *LabResultMutation) ResetAbnormal() {
	m.abnormal = nil
}

// SetStatus sets the "status" field.
func (m *LabResultMutation) SetStatus(l labresult.Status) {
	m.status = &l
}

// Status returns the value of the "status" field in the mutation.
func (m *LabResultMutation) Status() (r labresult.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldStatus(ctx context.Context) (v labresult.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *LabResultMutation) ResetStatus() {
	m.status = nil
}

// SetEnteredBy sets the "entered_by" field.
func (m *LabResultMutation) SetEnteredBy(u uuid.UUID) {
	m.entered_by = &u
}

// EnteredBy returns the value of the "entered_by" field in the mutation.
func (m *LabResultMutation) EnteredBy() (r uuid.UUID, exists bool) {
	v := m.entered_by
	if v == nil {
		return
	}
	return *v, true
}

// OldEnteredBy returns the old "entered_by" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldEnteredBy(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnteredBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnteredBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnteredBy: %w", err)
	}
	return oldValue.EnteredBy, nil
}

// ClearEnteredBy clears the value of the "entered_by" field.
func (m *LabResultMutation) ClearEnteredBy() {
	m.entered_by = nil
	m.clearedFields[labresult.FieldEnteredBy] = struct{}{}
}

// EnteredByCleared returns if the "entered_by" field was cleared in this mutation.
func (m *LabResultMutation) EnteredByCleared() bool {
	_, ok := m.clearedFields[labresult.FieldEnteredBy]
	return ok
}

// ResetEnteredBy resets all changes to the "entered_by" field.
func (m *LabResultMutation) ResetEnteredBy() {
	m.entered_by = nil
	delete(m.clearedFields, labresult.FieldEnteredBy)
}

// SetVerifiedBy sets the "verified_by" field.
func (m *LabResultMutation) SetVerifiedBy(u uuid.UUID) {
	m.verified_by = &u
}

// VerifiedBy returns the value of the "verified_by" field in the mutation.
func (m *LabResultMutation) VerifiedBy() (r uuid.UUID, exists bool) {
	v := m.verified_by
	if v == nil {
		return
	}
	return *v, true
}

// OldVerifiedBy returns the old "verified_by" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldVerifiedBy(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerifiedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerifiedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerifiedBy: %w", err)
	}
	return oldValue.VerifiedBy, nil
}

// ClearVerifiedBy clears the value of the "verified_by" field.
func (m *LabResultMutation) ClearVerifiedBy() {
	m.verified_by = nil
	m.clearedFields[labresult.FieldVerifiedBy] = struct{}{}
}

// VerifiedByCleared returns if the "verified_by" field was cleared in this mutation.
func (m *LabResultMutation) VerifiedByCleared() bool {
	_, ok := m.clearedFields[labresult.FieldVerifiedBy]
	return ok
}

// ResetVerifiedBy resets all changes to the "verified_by" field.
func (m *LabResultMutation) ResetVerifiedBy() {
	m.verified_by = nil
	delete(m.clearedFields, labresult.FieldVerifiedBy)
}

// SetVerifiedAt sets the "verified_at" field.
func (m *LabResultMutation) SetVerifiedAt(t time.Time) {
	m.verified_at = &t
}

// VerifiedAt returns the value of the "verified_at" field in the mutation.
func (m *LabResultMutation) VerifiedAt() (r time.Time, exists bool) {
	v := m.verified_at
	if v == nil {
		return
	}
	return *v, true
}

// OldVerifiedAt returns the old "verified_at" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldVerifiedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerifiedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerifiedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerifiedAt: %w", err)
	}
	return oldValue.VerifiedAt, nil
}

// ClearVerifiedAt clears the value of the "verified_at" field.
func (m *LabResultMutation) ClearVerifiedAt() {
	m.verified_at = nil
	m.clearedFields[labresult.FieldVerifiedAt] = struct{}{}
}

// VerifiedAtCleared returns if the "verified_at" field was cleared in this mutation.
func (m *LabResultMutation) VerifiedAtCleared() bool {
	_, ok := m.clearedFields[labresult.FieldVerifiedAt]
	return ok
}

// ResetVerifiedAt resets all changes to the "verified_at" field.
func (m *LabResultMutation) ResetVerifiedAt() {
	m.verified_at = nil
	delete(m.clearedFields, labresult.FieldVerifiedAt)
}

// Where appends a list predicates to the LabResultMutation builder.
func (m *LabResultMutation) Where(ps ...predicate.LabResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LabResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LabResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LabResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LabResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LabResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LabResult).
func (m *LabResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LabResultMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.created_at != nil {
		fields = append(fields, labresult.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, labresult.FieldUpdatedAt)
	}
	if m.order_id != nil {
		fields = append(fields, labresult.FieldOrderID)
	}
	if m.test_id != nil {
		fields = append(fields, labresult.FieldTestID)
	}
	if m.price != nil {
		fields = append(fields, labresult.FieldPrice)
	}
	if m.result_value != nil {
		fields = append(fields, labresult.FieldResultValue)
	}
	if m.unit != nil {
		fields = append(fields, labresult.FieldUnit)
	}
	if m.abnormal != nil {
		fields = append(fields, labresult.FieldAbnormal)
	}
	if m.status != nil {
		fields = append(fields, labresult.FieldStatus)
	}
	if m.entered_by != nil {
		fields = append(fields, labresult.FieldEnteredBy)
	}
	if m.verified_by != nil {
		fields = append(fields, labresult.FieldVerifiedBy)
	}
	if m.verified_at != nil {
		fields = append(fields, labresult.FieldVerifiedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LabResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case labresult.FieldCreatedAt:
		return m.CreatedAt()
	case labresult.FieldUpdatedAt:
		return m.UpdatedAt()
	case labresult.FieldOrderID:
		return m.OrderID()
	case labresult.FieldTestID:
		return m.TestID()
	case labresult.FieldPrice:
		return m.Price()
	case labresult.FieldResultValue:
		return m.ResultValue()
	case labresult.FieldUnit:
		return m.Unit()
	case labresult.FieldAbnormal:
		return m.Abnormal()
	case labresult.FieldStatus:
		return m.Status()
	case labresult.FieldEnteredBy:
		return m.EnteredBy()
	case labresult.FieldVerifiedBy:
		return m.VerifiedBy()
	case labresult.FieldVerifiedAt:
		return m.VerifiedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LabResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case labresult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case labresult.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case labresult.FieldOrderID:
		return m.OldOrderID(ctx)
	case labresult.FieldTestID:
		return m.OldTestID(ctx)
	case labresult.FieldPrice:
		return m.OldPrice(ctx)
	case labresult.FieldResultValue:
		return m.OldResultValue(ctx)
	case labresult.FieldUnit:
		return m.OldUnit(ctx)
	case labresult.FieldAbnormal:
		return m.OldAbnormal(ctx)
	case labresult.FieldStatus:
		return m.OldStatus(ctx)
	case labresult.FieldEnteredBy:
		return m.OldEnteredBy(ctx)
	case labresult.FieldVerifiedBy:
		return m.OldVerifiedBy(ctx)
	case labresult.FieldVerifiedAt:
		return m.OldVerifiedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LabResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LabResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case labresult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case labresult.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case labresult.FieldOrderID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderID(v)
		return nil
	case labresult.FieldTestID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestID(v)
		return nil
	case labresult.FieldPrice:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrice(v)
		return nil
	case labresult.FieldResultValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultValue(v)
		return nil
	case labresult.FieldUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnit(v)
		return nil
	case labresult.FieldAbnormal:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAbnormal(v)
		return nil
	case labresult.FieldStatus:
		v, ok := value.(labresult.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case labresult.FieldEnteredBy:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnteredBy(v)
		return nil
	case labresult.FieldVerifiedBy:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerifiedBy(v)
		return nil
	case labresult.FieldVerifiedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerifiedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LabResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LabResultMutation) AddedFields() []string {
	var fields []string
	if m.addprice != nil {
		fields = append(fields, labresult.FieldPrice)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LabResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case labresult.FieldPrice:
		return m.AddedPrice()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LabResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case labresult.FieldPrice:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrice(v)
		return nil
	}
	return fmt.Errorf("unknown LabResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LabResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(labresult.FieldResultValue) {
		fields = append(fields, labresult.FieldResultValue)
	}
	if m.FieldCleared(labresult.FieldUnit) {
		fields = append(fields, labresult.FieldUnit)
	}
	if m.FieldCleared(labresult.FieldEnteredBy) {
		fields = append(fields, labresult.FieldEnteredBy)
	}
	if m.FieldCleared(labresult.FieldVerifiedBy) {
		fields = append(fields, labresult.FieldVerifiedBy)
	}
	if m.FieldCleared(labresult.FieldVerifiedAt) {
		fields = append(fields, labresult.FieldVerifiedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LabResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LabResultMutation) ClearField(name string) error {
	switch name {
	case labresult.FieldResultValue:
		m.ClearResultValue()
		return nil
	case labresult.FieldUnit:
		m.ClearUnit()
		return nil
	case labresult.FieldEnteredBy:
		m.ClearEnteredBy()
		return nil
	case labresult.FieldVerifiedBy:
		m.ClearVerifiedBy()
		return nil
	case labresult.FieldVerifiedAt:
		m.ClearVerifiedAt()
		return nil
	}
	return fmt.Errorf("unknown LabResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LabResultMutation) ResetField(name string) error {
	switch name {
	case labresult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case labresult.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case labresult.FieldOrderID:
		m.ResetOrderID()
		return nil
	case labresult.FieldTestID:
		m.ResetTestID()
		return nil
	case labresult.FieldPrice:
		m.ResetPrice()
		return nil
	case labresult.FieldResultValue:
		m.ResetResultValue()
		return nil
	case labresult.FieldUnit:
		m.ResetUnit()
		return nil
	case labresult.FieldAbnormal:
		m.ResetAbnormal()
		return nil
	case labresult.FieldStatus:
		m.ResetStatus()
		return nil
	case labresult.FieldEnteredBy:
		m.ResetEnteredBy()
		return nil
	case labresult.FieldVerifiedBy:
		m.ResetVerifiedBy()
		return nil
	case labresult.FieldVerifiedAt:
		m.ResetVerifiedAt()
		return nil
	}
	return fmt.Errorf("unknown LabResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LabResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LabResultMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LabResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LabResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LabResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LabResultMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LabResultMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LabResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LabResultMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LabResult edge %s", name)
}

// LabTestMutation represents an operation that mutates the LabTest nodes in the graph.
type LabTestMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	name          *string
	code          *string
	price         *int64
	addprice      *int64
	category      *string
	sample_type   *string
	normal_range  *string
	active        *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*LabTest, error)
	predicates    []predicate.LabTest
}

var _ ent.Mutation = (*LabTestMutation)(nil)

// labtestOption allows management of the mutation configuration using functional options.
type labtestOption func(*LabTestMutation)

// newLabTestMutation creates new mutation for the LabTest entity.
func newLabTestMutation(c config, op Op, opts ...labtestOption) *LabTestMutation {
	m := &LabTestMutation{
		config:        c,
		op:            op,
		typ:           TypeLabTest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLabTestID sets the ID field of the mutation.
func withLabTestID(id uuid.UUID) labtestOption {
	return func(m *LabTestMutation) {
		var (
			err   error
			once  sync.Once
			value *LabTest
		)
		m.oldValue = func(ctx context.Context) (*LabTest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LabTest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLabTest sets the old LabTest of the mutation.
func withLabTest(node *LabTest) labtestOption {
	return func(m *LabTestMutation) {
		m.oldValue = func(context.Context) (*LabTest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LabTestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LabTestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LabTest entities.
func (m *LabTestMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LabTestMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LabTestMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LabTest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *LabTestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LabTestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LabTest entity.
// If the LabTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabTestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LabTestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LabTestMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LabTestMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the LabTest entity.
// If the LabTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabTestMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LabTestMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *LabTestMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *LabTestMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the LabTest entity.
// If the LabTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabTestMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *LabTestMutation) ResetName() {
	m.name = nil
}

// SetCode sets the "code" field.
func (m *LabTestMutation) SetCode(s string) {
	m.code = &s
}

// Code returns the value of the "code" field in the mutation.
func (m *LabTestMutation) Code() (r string, exists bool) {
	v := m.code
	if v == nil {
		return
	}
	return *v, true
}

// OldCode returns the old "code" field's value of the LabTest entity.
// If the LabTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabTestMutation) OldCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCode: %w", err)
	}
	return oldValue.Code, nil
}

// ResetCode resets all changes to the "code" field.
func (m *LabTestMutation) ResetCode() {
	m.code = nil
}

// SetPrice sets the "price" field.
func (m *LabTestMutation) SetPrice(i int64) {
	m.price = &i
	m.addprice = nil
}

// Price returns the value of the "price" field in the mutation.
func (m *LabTestMutation) Price() (r int64, exists bool) {
	v := m.price
	if v == nil {
		return
	}
	return *v, true
}

// OldPrice returns the old "price" field's value of the LabTest entity.
// If the LabTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabTestMutation) OldPrice(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrice: %w", err)
	}
	return oldValue.Price, nil
}

// AddPrice adds i to the "price" field.
func (m *LabTestMutation) AddPrice(i int64) {
	if m.addprice != nil {
		*m.addprice += i
	} else {
		m.addprice = &i
	}
}

// AddedPrice returns the value that was added to the "price" field in this mutation.
func (m *LabTestMutation) AddedPrice() (r int64, exists bool) {
	v := m.addprice
	if v == nil {
		return
	}
	return *v, true
}

// ResetPrice resets all changes to the "price" field.
func (m *LabTestMutation) ResetPrice() {
	m.price = nil
	m.addprice = nil
}

// SetCategory sets the "category" field.
func (m *LabTestMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *LabTestMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the LabTest entity.
// If the LabTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabTestMutation) OldCategory(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *LabTestMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[labtest.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *LabTestMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[labtest.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *LabTestMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, labtest.FieldCategory)
}

// SetSampleType sets the "sample_type" field.
func (m *LabTestMutation) SetSampleType(s string) {
	m.sample_type = &s
}

// SampleType returns the value of the "sample_type" field in the mutation.
func (m *LabTestMutation) SampleType() (r string, exists bool) {
	v := m.sample_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSampleType returns the old "sample_type" field's value of the LabTest entity.
// If the LabTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabTestMutation) OldSampleType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSampleType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSampleType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSampleType: %w", err)
	}
	return oldValue.SampleType, nil
}

// ClearSampleType clears the value of the "sample_type" field.
func (m *LabTestMutation) ClearSampleType() {
	m.sample_type = nil
	m.clearedFields[labtest.FieldSampleType] = struct{}{}
}

// SampleTypeCleared returns if the "sample_type" field was cleared in this mutation.
func (m *LabTestMutation) SampleTypeCleared() bool {
	_, ok := m.clearedFields[labtest.FieldSampleType]
	return ok
}

// ResetSampleType resets all changes to the "sample_type" field.
func (m *LabTestMutation) ResetSampleType() {
	m.sample_type = nil
	delete(m.clearedFields, labtest.FieldSampleType)
}

// SetNormalRange sets the "normal_range" field.
func (m *LabTestMutation) SetNormalRange(s string) {
	m.normal_range = &s
}

// NormalRange returns the value of the "normal_range" field in the mutation.
func (m *LabTestMutation) NormalRange() (r string, exists bool) {
	v := m.normal_range
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalRange returns the old "normal_range" field's value of the LabTest entity.
// If the LabTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabTestMutation) OldNormalRange(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalRange is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalRange requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalRange: %w", err)
	}
	return oldValue.NormalRange, nil
}

// ClearNormalRange clears the value of the "normal_range" field.
func (m *LabTestMutation) ClearNormalRange() {
	m.normal_range = nil
	m.clearedFields[labtest.FieldNormalRange] = struct{}{}
}

// NormalRangeCleared returns if the "normal_range" field was cleared in this mutation.
func (m *LabTestMutation) NormalRangeCleared() bool {
	_, ok := m.clearedFields[labtest.FieldNormalRange]
	return ok
}

// ResetNormalRange resets all changes to the "normal_range" field.
func (m *LabTestMutation) ResetNormalRange() {
	m.normal_range = nil
	delete(m.clearedFields, labtest.FieldNormalRange)
}

// SetActive sets the "active" field.
func (m *LabTestMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *LabTestMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the LabTest entity.
// If the LabTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabTestMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *LabTestMutation) ResetActive() {
	m.active = nil
}

// Where appends a list predicates to the LabTestMutation builder.
func (m *LabTestMutation) Where(ps ...predicate.LabTest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LabTestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LabTestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LabTest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LabTestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LabTestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LabTest).
func (m *LabTestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LabTestMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, labtest.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, labtest.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, labtest.FieldName)
	}
	if m.code != nil {
		fields = append(fields, labtest.FieldCode)
	}
	if m.price != nil {
		fields = append(fields, labtest.FieldPrice)
	}
	if m.category != nil {
		fields = append(fields, labtest.FieldCategory)
	}
	if m.sample_type != nil {
		fields = append(fields, labtest.FieldSampleType)
	}
	if m.normal_range != nil {
		fields = append(fields, labtest.FieldNormalRange)
	}
	if m.active != nil {
		fields = append(fields, labtest.FieldActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LabTestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case labtest.FieldCreatedAt:
		return m.CreatedAt()
	case labtest.FieldUpdatedAt:
		return m.UpdatedAt()
	case labtest.FieldName:
		return m.Name()
	case labtest.FieldCode:
		return m.Code()
	case labtest.FieldPrice:
		return m.Price()
	case labtest.FieldCategory:
		return m.Category()
	case labtest.FieldSampleType:
		return m.SampleType()
	case labtest.FieldNormalRange:
		return m.NormalRange()
	case labtest.FieldActive:
		return m.Active()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LabTestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case labtest.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case labtest.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case labtest.FieldName:
		return m.OldName(ctx)
	case labtest.FieldCode:
		return m.OldCode(ctx)
	case labtest.FieldPrice:
		return m.OldPrice(ctx)
	case labtest.FieldCategory:
		return m.OldCategory(ctx)
	case labtest.FieldSampleType:
		return m.OldSampleType(ctx)
	case labtest.FieldNormalRange:
		return m.OldNormalRange(ctx)
	case labtest.FieldActive:
		return m.OldActive(ctx)
	}
	return nil, fmt.Errorf("unknown LabTest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LabTestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case labtest.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case labtest.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case labtest.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case labtest.FieldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCode(v)
		return nil
	case labtest.FieldPrice:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrice(v)
		return nil
	case labtest.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case labtest.FieldSampleType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSampleType(v)
		return nil
	case labtest.FieldNormalRange:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalRange(v)
		return nil
	case labtest.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	}
	return fmt.Errorf("unknown LabTest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LabTestMutation) AddedFields() []string {
	var fields []string
	if m.addprice != nil {
		fields = append(fields, labtest.FieldPrice)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LabTestMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case labtest.FieldPrice:
		return m.AddedPrice()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LabTestMutation) AddField(name string, value ent.Value) error {
	switch name {
	case labtest.FieldPrice:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrice(v)
		return nil
	}
	return fmt.Errorf("unknown LabTest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LabTestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(labtest.FieldCategory) {
		fields = append(fields, labtest.FieldCategory)
	}
	if m.FieldCleared(labtest.FieldSampleType) {
		fields = append(fields, labtest.FieldSampleType)
	}
	if m.FieldCleared(labtest.FieldNormalRange) {
		fields = append(fields, labtest.FieldNormalRange)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LabTestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LabTestMutation) ClearField(name string) error {
	switch name {
	case labtest.FieldCategory:
		m.ClearCategory()
		return nil
	case labtest.FieldSampleType:
		m.ClearSampleType()
		return nil
	case labtest.FieldNormalRange:
		m.ClearNormalRange()
		return nil
	}
	return fmt.Errorf("unknown LabTest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LabTestMutation) ResetField(name string) error {
	switch name {
	case labtest.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case labtest.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case labtest.FieldName:
		m.ResetName()
		return nil
	case labtest.FieldCode:
		m.ResetCode()
		return nil
	case labtest.FieldPrice:
		m.ResetPrice()
		return nil
	case labtest.FieldCategory:
		m.ResetCategory()
		return nil
	case labtest.FieldSampleType:
		m.ResetSampleType()
		return nil
	case labtest.FieldNormalRange:
		m.ResetNormalRange()
		return nil
	case labtest.FieldActive:
		m.ResetActive()
		return nil
	}
	return fmt.Errorf("unknown LabTest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LabTestMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LabTestMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LabTestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LabTestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LabTestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LabTestMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LabTestMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LabTest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LabTestMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LabTest edge %s", name)
}

// PCTransactionMutation represents an operation that mutates the PCTransaction nodes in the graph.
type PCTransactionMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	created_at           *time.Time
	referrer_id          *uuid.UUID
	patient_id           *uuid.UUID
	total_amount         *int64
	addtotal_amount      *int64
	commission_amount    *int64
	addcommission_amount *int64
	admin_share          *int64
	addadmin_share       *int64
	description          *string
	occurred_at          *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*PCTransaction, error)
	predicates           []predicate.PCTransaction
}

var _ ent.Mutation = (*PCTransactionMutation)(nil)

// pctransactionOption allows management of the mutation configuration using functional options.
type pctransactionOption func(*PCTransactionMutation)

// newPCTransactionMutation creates new mutation for the PCTransaction entity.
func newPCTransactionMutation(c config, op Op, opts ...pctransactionOption) *PCTransactionMutation {
	m := &PCTransactionMutation{
		config:        c,
		op:            op,
		typ:           TypePCTransaction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPCTransactionID sets the ID field of the mutation.
func withPCTransactionID(id uuid.UUID) pctransactionOption {
	return func(m *PCTransactionMutation) {
		var (
			err   error
			once  sync.Once
			value *PCTransaction
		)
		m.oldValue = func(ctx context.Context) (*PCTransaction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PCTransaction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPCTransaction sets the old PCTransaction of the mutation.
func withPCTransaction(node *PCTransaction) pctransactionOption {
	return func(m *PCTransactionMutation) {
		m.oldValue = func(context.Context) (*PCTransaction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PCTransactionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PCTransactionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PCTransaction entities.
func (m *PCTransactionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PCTransactionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PCTransactionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PCTransaction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PCTransactionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PCTransactionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PCTransaction entity.
// If the PCTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PCTransactionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PCTransactionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetReferrerID sets the "referrer_id" field.
func (m *PCTransactionMutation) SetReferrerID(u uuid.UUID) {
	m.referrer_id = &u
}

// ReferrerID returns the value of the "referrer_id" field in the mutation.
func (m *PCTransactionMutation) ReferrerID() (r uuid.UUID, exists bool) {
	v := m.referrer_id
	if v == nil {
		return
	}
	return *v, true
}

// OldReferrerID returns the old "referrer_id" field's value of the PCTransaction entity.
// If the PCTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PCTransactionMutation) OldReferrerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReferrerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReferrerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReferrerID: %w", err)
	}
	return oldValue.ReferrerID, nil
}

// ResetReferrerID resets all changes to the "referrer_id" field.
func (m *PCTransactionMutation) ResetReferrerID() {
	m.referrer_id = nil
}

// SetPatientID sets the "patient_id" field.
func (m *PCTransactionMutation) SetPatientID(u uuid.UUID) {
	m.patient_id = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *PCTransactionMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the PCTransaction entity.
// If the PCTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PCTransactionMutation) OldPatientID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ClearPatientID clears the value of the "patient_id" field.
func (m *PCTransactionMutation) ClearPatientID() {
	m.patient_id = nil
	m.clearedFields[pctransaction.FieldPatientID] = struct{}{}
}

// PatientIDCleared returns if the "patient_id" field was cleared in this mutation.
func (m *PCTransactionMutation) PatientIDCleared() bool {
	_, ok := m.clearedFields[pctransaction.FieldPatientID]
	return ok
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *PCTransactionMutation) ResetPatientID() {
	m.patient_id = nil
	delete(m.clearedFields, pctransaction.FieldPatientID)
}

// SetTotalAmount sets the "total_amount" field.
func (m *PCTransactionMutation) SetTotalAmount(i int64) {
	m.total_amount = &i
	m.addtotal_amount = nil
}

// TotalAmount returns the value of the "total_amount" field in the mutation.
func (m *PCTransactionMutation) TotalAmount() (r int64, exists bool) {
	v := m.total_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAmount returns the old "total_amount" field's value of the PCTransaction entity.
// If the PCTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PCTransactionMutation) OldTotalAmount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAmount: %w", err)
	}
	return oldValue.TotalAmount, nil
}

// AddTotalAmount adds i to the "total_amount" field.
func (m *PCTransactionMutation) AddTotalAmount(i int64) {
	if m.addtotal_amount != nil {
		*m.addtotal_amount += i
	} else {
		m.addtotal_amount = &i
	}
}

// AddedTotalAmount returns the value that was added to the "total_amount" field in this mutation.
func (m *PCTransactionMutation) AddedTotalAmount() (r int64, exists bool) {
	v := m.addtotal_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalAmount resets all changes to the "total_amount" field.
func (m *PCTransactionMutation) ResetTotalAmount() {
	m.total_amount = nil
	m.addtotal_amount = nil
}

// SetCommissionAmount sets the "commission_amount" field.
func (m *PCTransactionMutation) SetCommissionAmount(i int64) {
	m.commission_amount = &i
	m.addcommission_amount = nil
}

// CommissionAmount returns the value of the "commission_amount" field in the mutation.
func (m *PCTransactionMutation) CommissionAmount() (r int64, exists bool) {
	v := m.commission_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldCommissionAmount returns the old "commission_amount" field's value of the PCTransaction entity.
// If the PCTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PCTransactionMutation) OldCommissionAmount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommissionAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommissionAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommissionAmount: %w", err)
	}
	return oldValue.CommissionAmount, nil
}

// AddCommissionAmount adds i to the "commission_amount" field.
func (m *PCTransactionMutation) AddCommissionAmount(i int64) {
	if m.addcommission_amount != nil {
		*m.addcommission_amount += i
	} else {
		m.addcommission_amount = &i
	}
}

// AddedCommissionAmount returns the value that was added to the "commission_amount" field in this mutation.
func (m *PCTransactionMutation) AddedCommissionAmount() (r int64, exists bool) {
	v := m.addcommission_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetCommissionAmount resets all changes to the "commission_amount" field.
func (m *PCTransactionMutation) ResetCommissionAmount() {
	m.commission_amount = nil
	m.addcommission_amount = nil
}

// SetAdminShare sets the "admin_share" field.
func (m *PCTransactionMutation) SetAdminShare(i int64) {
	m.admin_share = &i
	m.addadmin_share = nil
}

// AdminShare returns the value of the "admin_share" field in the mutation.
func (m *PCTransactionMutation) AdminShare() (r int64, exists bool) {
	v := m.admin_share
	if v == nil {
		return
	}
	return *v, true
}

// OldAdminShare returns the old "admin_share" field's value of the PCTransaction entity.
// If the PCTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PCTransactionMutation) OldAdminShare(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdminShare is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdminShare requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdminShare: %w", err)
	}
	return oldValue.AdminShare, nil
}

// AddAdminShare adds i to the "admin_share" field.
func (m *PCTransactionMutation) AddAdminShare(i int64) {
	if m.addadmin_share != nil {
		*m.addadmin_share += i
	} else {
		m.addadmin_share = &i
	}
}

// AddedAdminShare returns the value that was added to the "admin_share" field in this mutation.
func (m *PCTransactionMutation) AddedAdminShare() (r int64, exists bool) {
	v := m.addadmin_share
	if v == nil {
		return
	}
	return *v, true
}

// ResetAdminShare resets all changes to the "admin_share" field.
func (m *PCTransactionMutation) ResetAdminShare() {
	m.admin_share = nil
	m.addadmin_share = nil
}

// SetDescription sets the "description" field.
func (m *PCTransactionMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *PCTransactionMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the PCTransaction entity.
// If the PCTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PCTransactionMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *PCTransactionMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[pctransaction.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *PCTransactionMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[pctransaction.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *PCTransactionMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, pctransaction.FieldDescription)
}

// SetOccurredAt sets the "occurred_at" field.
func (m *PCTransactionMutation) SetOccurredAt(t time.Time) {
	m.occurred_at = &t
}

// OccurredAt returns the value of the "occurred_at" field in the mutation.
func (m *PCTransactionMutation) OccurredAt() (r time.Time, exists bool) {
	v := m.occurred_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurredAt returns the old "occurred_at" field's value of the PCTransaction entity.
// If the PCTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PCTransactionMutation) OldOccurredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurredAt: %w", err)
	}
	return oldValue.OccurredAt, nil
}

// ResetOccurredAt resets all changes to the "occurred_at" field.
func (m *PCTransactionMutation) ResetOccurredAt() {
	m.occurred_at = nil
}

// Where appends a list predicates to the PCTransactionMutation builder.
func (m *PCTransactionMutation) Where(ps ...predicate.PCTransaction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PCTransactionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PCTransactionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PCTransaction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PCTransactionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PCTransactionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PCTransaction).
func (m *PCTransactionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PCTransactionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, pctransaction.FieldCreatedAt)
	}
	if m.referrer_id != nil {
		fields = append(fields, pctransaction.FieldReferrerID)
	}
	if m.patient_id != nil {
		fields = append(fields, pctransaction.FieldPatientID)
	}
	if m.total_amount != nil {
		fields = append(fields, pctransaction.FieldTotalAmount)
	}
	if m.commission_amount != nil {
		fields = append(fields, pctransaction.FieldCommissionAmount)
	}
	if m.admin_share != nil {
		fields = append(fields, pctransaction.FieldAdminShare)
	}
	if m.description != nil {
		fields = append(fields, pctransaction.FieldDescription)
	}
	if m.occurred_at != nil {
		fields = append(fields, pctransaction.FieldOccurredAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PCTransactionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pctransaction.FieldCreatedAt:
		return m.CreatedAt()
	case pctransaction.FieldReferrerID:
		return m.ReferrerID()
	case pctransaction.FieldPatientID:
		return m.PatientID()
	case pctransaction.FieldTotalAmount:
		return m.TotalAmount()
	case pctransaction.FieldCommissionAmount:
		return m.CommissionAmount()
	case pctransaction.FieldAdminShare:
		return m.AdminShare()
	case pctransaction.FieldDescription:
		return m.Description()
	case pctransaction.FieldOccurredAt:
		return m.OccurredAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PCTransactionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pctransaction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case pctransaction.FieldReferrerID:
		return m.OldReferrerID(ctx)
	case pctransaction.FieldPatientID:
		return m.OldPatientID(ctx)
	case pctransaction.FieldTotalAmount:
		return m.OldTotalAmount(ctx)
	case pctransaction.FieldCommissionAmount:
		return m.OldCommissionAmount(ctx)
	case pctransaction.FieldAdminShare:
		return m.OldAdminShare(ctx)
	case pctransaction.FieldDescription:
		return m.OldDescription(ctx)
	case pctransaction.FieldOccurredAt:
		return m.OldOccurredAt(ctx)
	}
	return nil, fmt.Errorf("unknown PCTransaction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PCTransactionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pctransaction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case pctransaction.FieldReferrerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReferrerID(v)
		return nil
	case pctransaction.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case pctransaction.FieldTotalAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAmount(v)
		return nil
	case pctransaction.FieldCommissionAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommissionAmount(v)
		return nil
	case pctransaction.FieldAdminShare:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdminShare(v)
		return nil
	case pctransaction.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case pctransaction.FieldOccurredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurredAt(v)
		return nil
	}
	return fmt.Errorf("unknown PCTransaction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PCTransactionMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_amount != nil {
		fields = append(fields, pctransaction.FieldTotalAmount)
	}
	if m.addcommission_amount != nil {
		fields = append(fields, pctransaction.FieldCommissionAmount)
	}
	if m.addadmin_share != nil {
		fields = append(fields, pctransaction.FieldAdminShare)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PCTransactionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pctransaction.FieldTotalAmount:
		return m.AddedTotalAmount()
	case pctransaction.FieldCommissionAmount:
		return m.AddedCommissionAmount()
	case pctransaction.FieldAdminShare:
		return m.AddedAdminShare()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PCTransactionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pctransaction.FieldTotalAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalAmount(v)
		return nil
	case pctransaction.FieldCommissionAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCommissionAmount(v)
		return nil
	case pctransaction.FieldAdminShare:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAdminShare(v)
		return nil
	}
	return fmt.Errorf("unknown PCTransaction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PCTransactionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pctransaction.FieldPatientID) {
		fields = append(fields, pctransaction.FieldPatientID)
	}
	if m.FieldCleared(pctransaction.FieldDescription) {
		fields = append(fields, pctransaction.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PCTransactionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PCTransactionMutation) ClearField(name string) error {
	switch name {
	case pctransaction.FieldPatientID:
		m.ClearPatientID()
		return nil
	case pctransaction.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown PCTransaction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PCTransactionMutation) ResetField(name string) error {
	switch name {
	case pctransaction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case pctransaction.FieldReferrerID:
		m.ResetReferrerID()
		return nil
	case pctransaction.FieldPatientID:
		m.ResetPatientID()
		return nil
	case pctransaction.FieldTotalAmount:
		m.ResetTotalAmount()
		return nil
	case pctransaction.FieldCommissionAmount:
		m.ResetCommissionAmount()
		return nil
	case pctransaction.FieldAdminShare:
		m.ResetAdminShare()
		return nil
	case pctransaction.FieldDescription:
		m.ResetDescription()
		return nil
	case pctransaction.FieldOccurredAt:
		m.ResetOccurredAt()
		return nil
	}
	return fmt.Errorf("unknown PCTransaction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PCTransactionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PCTransactionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PCTransactionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PCTransactionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PCTransactionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PCTransactionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PCTransactionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PCTransaction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PCTransactionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PCTransaction edge %s", name)
}

// PatientMutation represents an operation that mutates the Patient nodes in the graph.
type PatientMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	created_at        *time.Time
	updated_at        *time.Time
	deleted_at        *time.Time
	first_name        *string
	last_name         *string
	phone             *string
	email             *string
	date_of_birth     *time.Time
	gender            *patient.Gender
	blood_group       *string
	address           *string
	emergency_contact *string
	medical_notes     *string
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Patient, error)
	predicates        []predicate.Patient
}

var _ ent.Mutation = (*PatientMutation)(nil)

// patientOption allows management of the mutation configuration using functional options.
type patientOption func(*PatientMutation)

// newPatientMutation creates new mutation for the Patient entity.
func newPatientMutation(c config, op Op, opts ...patientOption) *PatientMutation {
	m := &PatientMutation{
		config:        c,
		op:            op,
		typ:           TypePatient,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPatientID sets the ID field of the mutation.
func withPatientID(id uuid.UUID) patientOption {
	return func(m *PatientMutation) {
		var (
			err   error
			once  sync.Once
			value *Patient
		)
		m.oldValue = func(ctx context.Context) (*Patient, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Patient.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPatient sets the old Patient of the mutation.
func withPatient(node *Patient) patientOption {
	return func(m *PatientMutation) {
		m.oldValue = func(context.Context) (*Patient, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PatientMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PatientMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Patient entities.
func (m *PatientMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PatientMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PatientMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Patient.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PatientMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PatientMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PatientMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PatientMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PatientMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PatientMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *PatientMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *PatientMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *PatientMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[patient.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *PatientMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[patient.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *PatientMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, patient.FieldDeletedAt)
}

// SetFirstName sets the "first_name" field.
func (m *PatientMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *PatientMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldFirstName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *PatientMutation) ResetFirstName() {
	m.first_name = nil
}

// SetLastName sets the "last_name" field.
func (m *PatientMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *PatientMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldLastName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ResetLastName resets all changes to the "last_name" field.
func (m *PatientMutation) ResetLastName() {
	m.last_name = nil
}

// SetPhone sets the "phone" field.
func (m *PatientMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *PatientMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ResetPhone resets all changes to the "phone" field.
func (m *PatientMutation) ResetPhone() {
	m.phone = nil
}

// SetEmail sets the "email" field.
func (m *PatientMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *PatientMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *PatientMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[patient.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *PatientMutation) EmailCleared() bool {
	_, ok := m.clearedFields[patient.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *PatientMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, patient.FieldEmail)
}

// SetDateOfBirth sets the "date_of_birth" field.
func (m *PatientMutation) SetDateOfBirth(t time.Time) {
	m.date_of_birth = &t
}

// DateOfBirth returns the value of the "date_of_birth" field in the mutation.
func (m *PatientMutation) DateOfBirth() (r time.Time, exists bool) {
	v := m.date_of_birth
	if v == nil {
		return
	}
	return *v, true
}

// OldDateOfBirth returns the old "date_of_birth" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldDateOfBirth(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateOfBirth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateOfBirth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateOfBirth: %w", err)
	}
	return oldValue.DateOfBirth, nil
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (m *PatientMutation) ClearDateOfBirth() {
	m.date_of_birth = nil
	m.clearedFields[patient.FieldDateOfBirth] = struct{}{}
}

// DateOfBirthCleared returns if the "date_of_birth" field was cleared in this mutation.
func (m *PatientMutation) DateOfBirthCleared() bool {
	_, ok := m.clearedFields[patient.FieldDateOfBirth]
	return ok
}

// ResetDateOfBirth resets all changes to the "date_of_birth" field.
func (m *PatientMutation) ResetDateOfBirth() {
	m.date_of_birth = nil
	delete(m.clearedFields, patient.FieldDateOfBirth)
}

// SetGender sets the "gender" field.
func (m *PatientMutation) SetGender(pa patient.Gender) {
	m.gender = &pa
}

// Gender returns the value of the "gender" field in the mutation.
func (m *PatientMutation) Gender() (r patient.Gender, exists bool) {
	v := m.gender
	if v == nil {
		return
	}
	return *v, true
}

// OldGender returns the old "gender" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldGender(ctx context.Context) (v *patient.Gender, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGender is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGender requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGender: %w", err)
	}
	return oldValue.Gender, nil
}

// ClearGender clears the value of the "gender" field.
func (m *PatientMutation) ClearGender() {
	m.gender = nil
	m.clearedFields[patient.FieldGender] = struct{}{}
}

// GenderCleared returns if the "gender" field was cleared in this mutation.
func (m *PatientMutation) GenderCleared() bool {
	_, ok := m.clearedFields[patient.FieldGender]
	return ok
}

// ResetGender resets all changes to the "gender" field.
func (m *PatientMutation) ResetGender() {
	m.gender = nil
	delete(m.clearedFields, patient.FieldGender)
}

// SetBloodGroup sets the "blood_group" field.
func (m *PatientMutation) SetBloodGroup(s string) {
	m.blood_group = &s
}

// BloodGroup returns the value of the "blood_group" field in the mutation.
func (m *PatientMutation) BloodGroup() (r string, exists bool) {
	v := m.blood_group
	if v == nil {
		return
	}
	return *v, true
}

// OldBloodGroup returns the old "blood_group" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldBloodGroup(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBloodGroup is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBloodGroup requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBloodGroup: %w", err)
	}
	return oldValue.BloodGroup, nil
}

// ClearBloodGroup clears the value of the "blood_group" field.
func (m *PatientMutation) ClearBloodGroup() {
	m.blood_group = nil
	m.clearedFields[patient.FieldBloodGroup] = struct{}{}
}

// BloodGroupCleared returns if the "blood_group" field was cleared in this mutation.
func (m *PatientMutation) BloodGroupCleared() bool {
	_, ok := m.clearedFields[patient.FieldBloodGroup]
	return ok
}

// ResetBloodGroup resets all changes to the "blood_group" field.
func (m *PatientMutation) ResetBloodGroup() {
	m.blood_group = nil
	delete(m.clearedFields, patient.FieldBloodGroup)
}

// SetAddress sets the "address" field.
func (m *PatientMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *PatientMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ClearAddress clears the value of the "address" field.
func (m *PatientMutation) ClearAddress() {
	m.address = nil
	m.clearedFields[patient.FieldAddress] = struct{}{}
}

// AddressCleared returns if the "address" field was cleared in this mutation.
func (m *PatientMutation) AddressCleared() bool {
	_, ok := m.clearedFields[patient.FieldAddress]
	return ok
}

// ResetAddress resets all changes to the "address" field.
func (m *PatientMutation) ResetAddress() {
	m.address = nil
	delete(m.clearedFields, patient.FieldAddress)
}

// SetEmergencyContact sets the "emergency_contact" field.
func (m *PatientMutation) SetEmergencyContact(s string) {
	m.emergency_contact = &s
}

// EmergencyContact returns the value of the "emergency_contact" field in the mutation.
func (m *PatientMutation) EmergencyContact() (r string, exists bool) {
	v := m.emergency_contact
	if v == nil {
		return
	}
	return *v, true
}

// OldEmergencyContact returns the old "emergency_contact" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldEmergencyContact(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmergencyContact is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmergencyContact requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmergencyContact: %w", err)
	}
	return oldValue.EmergencyContact, nil
}

// ClearEmergencyContact clears the value of the "emergency_contact" field.
func (m *PatientMutation) ClearEmergencyContact() {
	m.emergency_contact = nil
	m.clearedFields[patient.FieldEmergencyContact] = struct{}{}
}

// EmergencyContactCleared returns if the "emergency_contact" field was cleared in this mutation.
func (m *PatientMutation) EmergencyContactCleared() bool {
	_, ok := m.clearedFields[patient.FieldEmergencyContact]
	return ok
}

// ResetEmergencyContact resets all changes to the "emergency_contact" field.
func (m *PatientMutation) ResetEmergencyContact() {
	m.emergency_contact = nil
	delete(m.clearedFields, patient.FieldEmergencyContact)
}

// SetMedicalNotes sets the "medical_notes" field.
func (m *PatientMutation) SetMedicalNotes(s string) {
	m.medical_notes = &s
}

// MedicalNotes returns the value of the "medical_notes" field in the mutation.
func (m *PatientMutation) MedicalNotes() (r string, exists bool) {
	v := m.medical_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldMedicalNotes returns the old "medical_notes" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldMedicalNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMedicalNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMedicalNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMedicalNotes: %w", err)
	}
	return oldValue.MedicalNotes, nil
}

// ClearMedicalNotes clears the value of the "medical_notes" field.
func (m *PatientMutation) ClearMedicalNotes() {
	m.medical_notes = nil
	m.clearedFields[patient.FieldMedicalNotes] = struct{}{}
}

// MedicalNotesCleared returns if the "medical_notes" field was cleared in this mutation.
func (m *PatientMutation) MedicalNotesCleared() bool {
	_, ok := m.clearedFields[patient.FieldMedicalNotes]
	return ok
}

// ResetMedicalNotes resets all changes to the "medical_notes" field.
func (m *PatientMutation) ResetMedicalNotes() {
	m.medical_notes = nil
	delete(m.clearedFields, patient.FieldMedicalNotes)
}

// Where appends a list predicates to the PatientMutation builder.
func (m *PatientMutation) Where(ps ...predicate.Patient) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PatientMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PatientMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Patient, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PatientMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PatientMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Patient).
func (m *PatientMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PatientMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.created_at != nil {
		fields = append(fields, patient.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, patient.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, patient.FieldDeletedAt)
	}
	if m.first_name != nil {
		fields = append(fields, patient.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, patient.FieldLastName)
	}
	if m.phone != nil {
		fields = append(fields, patient.FieldPhone)
	}
	if m.email != nil {
		fields = append(fields, patient.FieldEmail)
	}
	if m.date_of_birth != nil {
		fields = append(fields, patient.FieldDateOfBirth)
	}
	if m.gender != nil {
		fields = append(fields, patient.FieldGender)
	}
	if m.blood_group != nil {
		fields = append(fields, patient.FieldBloodGroup)
	}
	if m.address != nil {
		fields = append(fields, patient.FieldAddress)
	}
	if m.emergency_contact != nil {
		fields = append(fields, patient.FieldEmergencyContact)
	}
	if m.medical_notes != nil {
		fields = append(fields, patient.FieldMedicalNotes)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PatientMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case patient.FieldCreatedAt:
		return m.CreatedAt()
	case patient.FieldUpdatedAt:
		return m.UpdatedAt()
	case patient.FieldDeletedAt:
		return m.DeletedAt()
	case patient.FieldFirstName:
		return m.FirstName()
	case patient.FieldLastName:
		return m.LastName()
	case patient.FieldPhone:
		return m.Phone()
	case patient.FieldEmail:
		return m.Email()
	case patient.FieldDateOfBirth:
		return m.DateOfBirth()
	case patient.FieldGender:
		return m.Gender()
	case patient.FieldBloodGroup:
		return m.BloodGroup()
	case patient.FieldAddress:
		return m.Address()
	case patient.FieldEmergencyContact:
		return m.EmergencyContact()
	case patient.FieldMedicalNotes:
		return m.MedicalNotes()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PatientMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case patient.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case patient.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case patient.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case patient.FieldFirstName:
		return m.OldFirstName(ctx)
	case patient.FieldLastName:
		return m.OldLastName(ctx)
	case patient.FieldPhone:
		return m.OldPhone(ctx)
	case patient.FieldEmail:
		return m.OldEmail(ctx)
	case patient.FieldDateOfBirth:
		return m.OldDateOfBirth(ctx)
	case patient.FieldGender:
		return m.OldGender(ctx)
	case patient.FieldBloodGroup:
		return m.OldBloodGroup(ctx)
	case patient.FieldAddress:
		return m.OldAddress(ctx)
	case patient.FieldEmergencyContact:
		return m.OldEmergencyContact(ctx)
	case patient.FieldMedicalNotes:
		return m.OldMedicalNotes(ctx)
	}
	return nil, fmt.Errorf("unknown Patient field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientMutation) SetField(name string, value ent.Value) error {
	switch name {
	case patient.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case patient.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case patient.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case patient.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case patient.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case patient.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case patient.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case patient.FieldDateOfBirth:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateOfBirth(v)
		return nil
	case patient.FieldGender:
		v, ok := value.(patient.Gender)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGender(v)
		return nil
	case patient.FieldBloodGroup:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBloodGroup(v)
		return nil
	case patient.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case patient.FieldEmergencyContact:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmergencyContact(v)
		return nil
	case patient.FieldMedicalNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMedicalNotes(v)
		return nil
	}
	return fmt.Errorf("unknown Patient field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PatientMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PatientMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Patient numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PatientMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(patient.FieldDeletedAt) {
		fields = append(fields, patient.FieldDeletedAt)
	}
	if m.FieldCleared(patient.FieldEmail) {
		fields = append(fields, patient.FieldEmail)
	}
	if m.FieldCleared(patient.FieldDateOfBirth) {
		fields = append(fields, patient.FieldDateOfBirth)
	}
	if m.FieldCleared(patient.FieldGender) {
		fields = append(fields, patient.FieldGender)
	}
	if m.FieldCleared(patient.FieldBloodGroup) {
		fields = append(fields, patient.FieldBloodGroup)
	}
	if m.FieldCleared(patient.FieldAddress) {
		fields = append(fields, patient.FieldAddress)
	}
	if m.FieldCleared(patient.FieldEmergencyContact) {
		fields = append(fields, patient.FieldEmergencyContact)
	}
	if m.FieldCleared(patient.FieldMedicalNotes) {
		fields = append(fields, patient.FieldMedicalNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PatientMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PatientMutation) ClearField(name string) error {
	switch name {
	case patient.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case patient.FieldEmail:
		m.ClearEmail()
		return nil
	case patient.FieldDateOfBirth:
		m.ClearDateOfBirth()
		return nil
	case patient.FieldGender:
		m.ClearGender()
		return nil
	case patient.FieldBloodGroup:
		m.ClearBloodGroup()
		return nil
	case patient.FieldAddress:
		m.ClearAddress()
		return nil
	case patient.FieldEmergencyContact:
		m.ClearEmergencyContact()
		return nil
	case patient.FieldMedicalNotes:
		m.ClearMedicalNotes()
		return nil
	}
	return fmt.Errorf("unknown Patient nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PatientMutation) ResetField(name string) error {
	switch name {
	case patient.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case patient.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case patient.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case patient.FieldFirstName:
		m.ResetFirstName()
		return nil
	case patient.FieldLastName:
		m.ResetLastName()
		return nil
	case patient.FieldPhone:
		m.ResetPhone()
		return nil
	case patient.FieldEmail:
		m.ResetEmail()
		return nil
	case patient.FieldDateOfBirth:
		m.ResetDateOfBirth()
		return nil
	case patient.FieldGender:
		m.ResetGender()
		return nil
	case patient.FieldBloodGroup:
		m.ResetBloodGroup()
		return nil
	case patient.FieldAddress:
		m.ResetAddress()
		return nil
	case patient.FieldEmergencyContact:
		m.ResetEmergencyContact()
		return nil
	case patient.FieldMedicalNotes:
		m.ResetMedicalNotes()
		return nil
	}
	return fmt.Errorf("unknown Patient field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PatientMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PatientMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PatientMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PatientMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PatientMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PatientMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PatientMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Patient unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PatientMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Patient edge %s", name)
}

// PharmacySaleMutation represents an operation that mutates the PharmacySale nodes in the graph.
type PharmacySaleMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	created_at      *time.Time
	updated_at      *time.Time
	sale_number     *string
	patient_id      *uuid.UUID
	prescription_id *uuid.UUID
	total_amount    *int64
	addtotal_amount *int64
	amount_paid     *int64
	addamount_paid  *int64
	sold_by         *uuid.UUID
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*PharmacySale, error)
	predicates      []predicate.PharmacySale
}

var _ ent.Mutation = (*PharmacySaleMutation)(nil)

// pharmacysaleOption allows management of the mutation configuration using functional options.
type pharmacysaleOption func(*PharmacySaleMutation)

// newPharmacySaleMutation creates new mutation for the PharmacySale entity.
func newPharmacySaleMutation(c config, op Op, opts ...pharmacysaleOption) *PharmacySaleMutation {
	m := &PharmacySaleMutation{
		config:        c,
		op:            op,
		typ:           TypePharmacySale,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPharmacySaleID sets the ID field of the mutation.
func withPharmacySaleID(id uuid.UUID) pharmacysaleOption {
	return func(m *PharmacySaleMutation) {
		var (
			err   error
			once  sync.Once
			value *PharmacySale
		)
		m.oldValue = func(ctx context.Context) (*PharmacySale, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PharmacySale.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPharmacySale sets the old PharmacySale of the mutation.
func withPharmacySale(node *PharmacySale) pharmacysaleOption {
	return func(m *PharmacySaleMutation) {
		m.oldValue = func(context.Context) (*PharmacySale, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PharmacySaleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PharmacySaleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PharmacySale entities.
func (m *PharmacySaleMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PharmacySaleMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PharmacySaleMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PharmacySale.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PharmacySaleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PharmacySaleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PharmacySale entity.
// If the PharmacySale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PharmacySaleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PharmacySaleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PharmacySaleMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PharmacySaleMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PharmacySale entity.
// If the PharmacySale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PharmacySaleMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PharmacySaleMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSaleNumber sets the "sale_number" field.
func (m *PharmacySaleMutation) SetSaleNumber(s string) {
	m.sale_number = &s
}

// SaleNumber returns the value of the "sale_number" field in the mutation.
func (m *PharmacySaleMutation) SaleNumber() (r string, exists bool) {
	v := m.sale_number
	if v == nil {
		return
	}
	return *v, true
}

// OldSaleNumber returns the old "sale_number" field's value of the PharmacySale entity.
// If the PharmacySale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PharmacySaleMutation) OldSaleNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSaleNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSaleNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSaleNumber: %w", err)
	}
	return oldValue.SaleNumber, nil
}

// ResetSaleNumber resets all changes to the "sale_number" field.
func (m *PharmacySaleMutation) ResetSaleNumber() {
	m.sale_number = nil
}

// SetPatientID sets the "patient_id" field.
func (m *PharmacySaleMutation) SetPatientID(u uuid.UUID) {
	m.patient_id = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *PharmacySaleMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the PharmacySale entity.
// If the PharmacySale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PharmacySaleMutation) OldPatientID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ClearPatientID clears the value of the "patient_id" field.
func (m *PharmacySaleMutation) ClearPatientID() {
	m.patient_id = nil
	m.clearedFields[pharmacysale.FieldPatientID] = struct{}{}
}

// PatientIDCleared returns if the "patient_id" field was cleared in this mutation.
func (m *PharmacySaleMutation) PatientIDCleared() bool {
	_, ok := m.clearedFields[pharmacysale.FieldPatientID]
	return ok
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *PharmacySaleMutation) ResetPatientID() {
	m.patient_id = nil
	delete(m.clearedFields, pharmacysale.FieldPatientID)
}

// SetPrescriptionID sets the "prescription_id" field.
func (m *PharmacySaleMutation) SetPrescriptionID(u uuid.UUID) {
	m.prescription_id = &u
}

// PrescriptionID returns the value of the "prescription_id" field in the mutation.
func (m *PharmacySaleMutation) PrescriptionID() (r uuid.UUID, exists bool) {
	v := m.prescription_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPrescriptionID returns the old "prescription_id" field's value of the PharmacySale entity.
// If the PharmacySale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PharmacySaleMutation) OldPrescriptionID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrescriptionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrescriptionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrescriptionID: %w", err)
	}
	return oldValue.PrescriptionID, nil
}

// ClearPrescriptionID clears the value of the "prescription_id" field.
func (m *PharmacySaleMutation) ClearPrescriptionID() {
	m.prescription_id = nil
	m.clearedFields[pharmacysale.FieldPrescriptionID] = struct{}{}
}

// PrescriptionIDCleared returns if the "prescription_id" field was cleared in this mutation.
func (m *PharmacySaleMutation) PrescriptionIDCleared() bool {
	_, ok := m.clearedFields[pharmacysale.FieldPrescriptionID]
	return ok
}

// ResetPrescriptionID resets all changes to the "prescription_id" field.
func (m *PharmacySaleMutation) ResetPrescriptionID() {
	m.prescription_id = nil
	delete(m.clearedFields, pharmacysale.FieldPrescriptionID)
}

// SetTotalAmount sets the "total_amount" field.
func (m *PharmacySaleMutation) SetTotalAmount(i int64) {
	m.total_amount = &i
	m.addtotal_amount = nil
}

// TotalAmount returns the value of the "total_amount" field in the mutation.
func (m *PharmacySaleMutation) TotalAmount() (r int64, exists bool) {
	v := m.total_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAmount returns the old "total_amount" field's value of the PharmacySale entity.
// If the PharmacySale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PharmacySaleMutation) OldTotalAmount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAmount: %w", err)
	}
	return oldValue.TotalAmount, nil
}

// AddTotalAmount adds i to the "total_amount" field.
func (m *PharmacySaleMutation) AddTotalAmount(i int64) {
	if m.addtotal_amount != nil {
		*m.addtotal_amount += i
	} else {
		m.addtotal_amount = &i
	}
}

// AddedTotalAmount returns the value that was added to the "total_amount" field in this mutation.
func (m *PharmacySaleMutation) AddedTotalAmount() (r int64, exists bool) {
	v := m.addtotal_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalAmount resets all changes to the "total_amount" field.
func (m *PharmacySaleMutation) ResetTotalAmount() {
	m.total_amount = nil
	m.addtotal_amount = nil
}

// SetAmountPaid sets the "amount_paid" field.
func (m *PharmacySaleMutation) SetAmountPaid(i int64) {
	m.amount_paid = &i
	m.addamount_paid = nil
}

// AmountPaid returns the value of the "amount_paid" field in the mutation.
func (m *PharmacySaleMutation) AmountPaid() (r int64, exists bool) {
	v := m.amount_paid
	if v == nil {
		return
	}
	return *v, true
}

// OldAmountPaid returns the old "amount_paid" field's value of the PharmacySale entity.
// If the PharmacySale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PharmacySaleMutation) OldAmountPaid(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmountPaid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmountPaid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmountPaid: %w", err)
	}
	return oldValue.AmountPaid, nil
}

// AddAmountPaid adds i to the "amount_paid" field.
func (m *PharmacySaleMutation) AddAmountPaid(i int64) {
	if m.addamount_paid != nil {
		*m.addamount_paid += i
	} else {
		m.addamount_paid = &i
	}
}

// AddedAmountPaid returns the value that was added to the "amount_paid" field in this mutation.
func (m *PharmacySaleMutation) AddedAmountPaid() (r int64, exists bool) {
	v := m.addamount_paid
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmountPaid resets all changes to the "amount_paid" field.
func (m *PharmacySaleMutation) ResetAmountPaid() {
	m.amount_paid = nil
	m.addamount_paid = nil
}

// SetSoldBy sets the "sold_by" field.
func (m *PharmacySaleMutation) SetSoldBy(u uuid.UUID) {
	m.sold_by = &u
}

// SoldBy returns the value of the "sold_by" field in the mutation.
func (m *PharmacySaleMutation) SoldBy() (r uuid.UUID, exists bool) {
	v := m.sold_by
	if v == nil {
		return
	}
	return *v, true
}

// OldSoldBy returns the old "sold_by" field's value of the PharmacySale entity.
// If the PharmacySale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PharmacySaleMutation) OldSoldBy(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSoldBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSoldBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSoldBy: %w", err)
	}
	return oldValue.SoldBy, nil
}

// ResetSoldBy resets all changes to the "sold_by" field.
func (m *PharmacySaleMutation) ResetSoldBy() {
	m.sold_by = nil
}

// Where appends a list predicates to the PharmacySaleMutation builder.
func (m *PharmacySaleMutation) Where(ps ...predicate.PharmacySale) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PharmacySaleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PharmacySaleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PharmacySale, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PharmacySaleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PharmacySaleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PharmacySale).
func (m *PharmacySaleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PharmacySaleMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, pharmacysale.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, pharmacysale.FieldUpdatedAt)
	}
	if m.sale_number != nil {
		fields = append(fields, pharmacysale.FieldSaleNumber)
	}
	if m.patient_id != nil {
		fields = append(fields, pharmacysale.FieldPatientID)
	}
	if m.prescription_id != nil {
		fields = append(fields, pharmacysale.FieldPrescriptionID)
	}
	if m.total_amount != nil {
		fields = append(fields, pharmacysale.FieldTotalAmount)
	}
	if m.amount_paid != nil {
		fields = append(fields, pharmacysale.FieldAmountPaid)
	}
	if m.sold_by != nil {
		fields = append(fields, pharmacysale.FieldSoldBy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PharmacySaleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pharmacysale.FieldCreatedAt:
		return m.CreatedAt()
	case pharmacysale.FieldUpdatedAt:
		return m.UpdatedAt()
	case pharmacysale.FieldSaleNumber:
		return m.SaleNumber()
	case pharmacysale.FieldPatientID:
		return m.PatientID()
	case pharmacysale.FieldPrescriptionID:
		return m.PrescriptionID()
	case pharmacysale.FieldTotalAmount:
		return m.TotalAmount()
	case pharmacysale.FieldAmountPaid:
		return m.AmountPaid()
	case pharmacysale.FieldSoldBy:
		return m.SoldBy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PharmacySaleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pharmacysale.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case pharmacysale.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case pharmacysale.FieldSaleNumber:
		return m.OldSaleNumber(ctx)
	case pharmacysale.FieldPatientID:
		return m.OldPatientID(ctx)
	case pharmacysale.FieldPrescriptionID:
		return m.OldPrescriptionID(ctx)
	case pharmacysale.FieldTotalAmount:
		return m.OldTotalAmount(ctx)
	case pharmacysale.FieldAmountPaid:
		return m.OldAmountPaid(ctx)
	case pharmacysale.FieldSoldBy:
		return m.OldSoldBy(ctx)
	}
	return nil, fmt.Errorf("unknown PharmacySale field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PharmacySaleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pharmacysale.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case pharmacysale.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case pharmacysale.FieldSaleNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSaleNumber(v)
		return nil
	case pharmacysale.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case pharmacysale.FieldPrescriptionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrescriptionID(v)
		return nil
	case pharmacysale.FieldTotalAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAmount(v)
		return nil
	case pharmacysale.FieldAmountPaid:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmountPaid(v)
		return nil
	case pharmacysale.FieldSoldBy:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSoldBy(v)
		return nil
	}
	return fmt.Errorf("unknown PharmacySale field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PharmacySaleMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_amount != nil {
		fields = append(fields, pharmacysale.FieldTotalAmount)
	}
	if m.addamount_paid != nil {
		fields = append(fields, pharmacysale.FieldAmountPaid)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PharmacySaleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pharmacysale.FieldTotalAmount:
		return m.AddedTotalAmount()
	case pharmacysale.FieldAmountPaid:
		return m.AddedAmountPaid()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PharmacySaleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pharmacysale.FieldTotalAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalAmount(v)
		return nil
	case pharmacysale.FieldAmountPaid:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmountPaid(v)
		return nil
	}
	return fmt.Errorf("unknown PharmacySale numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PharmacySaleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pharmacysale.FieldPatientID) {
		fields = append(fields, pharmacysale.FieldPatientID)
	}
	if m.FieldCleared(pharmacysale.FieldPrescriptionID) {
		fields = append(fields, pharmacysale.FieldPrescriptionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PharmacySaleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PharmacySaleMutation) ClearField(name string) error {
	switch name {
	case pharmacysale.FieldPatientID:
		m.ClearPatientID()
		return nil
	case pharmacysale.FieldPrescriptionID:
		m.ClearPrescriptionID()
		return nil
	}
	return fmt.Errorf("unknown PharmacySale nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PharmacySaleMutation) ResetField(name string) error {
	switch name {
	case pharmacysale.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case pharmacysale.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case pharmacysale.FieldSaleNumber:
		m.ResetSaleNumber()
		return nil
	case pharmacysale.FieldPatientID:
		m.ResetPatientID()
		return nil
	case pharmacysale.FieldPrescriptionID:
		m.ResetPrescriptionID()
		return nil
	case pharmacysale.FieldTotalAmount:
		m.ResetTotalAmount()
		return nil
	case pharmacysale.FieldAmountPaid:
		m.ResetAmountPaid()
		return nil
	case pharmacysale.FieldSoldBy:
		m.ResetSoldBy()
		return nil
	}
	return fmt.Errorf("unknown PharmacySale field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PharmacySaleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PharmacySaleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PharmacySaleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PharmacySaleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PharmacySaleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PharmacySaleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PharmacySaleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PharmacySale unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PharmacySaleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PharmacySale edge %s", name)
}

// PrescriptionMutation represents an operation that mutates the Prescription nodes in the graph.
type PrescriptionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	created_at          *time.Time
	updated_at          *time.Time
	prescription_number *string
	patient_id          *uuid.UUID
	doctor_id           *uuid.UUID
	appointment_id      *uuid.UUID
	diagnosis           *string
	advice              *string
	follow_up_date      *time.Time
	printed_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Prescription, error)
	predicates          []predicate.Prescription
}

var _ ent.Mutation = (*PrescriptionMutation)(nil)

// prescriptionOption allows management of the mutation configuration using functional options.
type prescriptionOption func(*PrescriptionMutation)

// newPrescriptionMutation creates new mutation for the Prescription entity.
func newPrescriptionMutation(c config, op Op, opts ...prescriptionOption) *PrescriptionMutation {
	m := &PrescriptionMutation{
		config:        c,
		op:            op,
		typ:           TypePrescription,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPrescriptionID sets the ID field of the mutation.
func withPrescriptionID(id uuid.UUID) prescriptionOption {
	return func(m *PrescriptionMutation) {
		var (
			err   error
			once  sync.Once
			value *Prescription
		)
		m.oldValue = func(ctx context.Context) (*Prescription, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Prescription.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPrescription sets the old Prescription of the mutation.
func withPrescription(node *Prescription) prescriptionOption {
	return func(m *PrescriptionMutation) {
		m.oldValue = func(context.Context) (*Prescription, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PrescriptionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PrescriptionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Prescription entities.
func (m *PrescriptionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PrescriptionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PrescriptionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Prescription.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PrescriptionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PrescriptionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Prescription entity.
// If the Prescription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrescriptionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PrescriptionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PrescriptionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PrescriptionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Prescription entity.
// If the Prescription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrescriptionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PrescriptionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPrescriptionNumber sets the "prescription_number" field.
func (m *PrescriptionMutation) SetPrescriptionNumber(s string) {
	m.prescription_number = &s
}

// PrescriptionNumber returns the value of the "prescription_number" field in the mutation.
func (m *PrescriptionMutation) PrescriptionNumber() (r string, exists bool) {
	v := m.prescription_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPrescriptionNumber returns the old "prescription_number" field's value of the Prescription entity.
// If the Prescription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrescriptionMutation) OldPrescriptionNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrescriptionNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrescriptionNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrescriptionNumber: %w", err)
	}
	return oldValue.PrescriptionNumber, nil
}

// ResetPrescriptionNumber resets all changes to the "prescription_number" field.
func (m *PrescriptionMutation) ResetPrescriptionNumber() {
	m.prescription_number = nil
}

// SetPatientID sets the "patient_id" field.
func (m *PrescriptionMutation) SetPatientID(u uuid.UUID) {
	m.patient_id = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *PrescriptionMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the Prescription entity.
// If the Prescription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrescriptionMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *PrescriptionMutation) ResetPatientID() {
	m.patient_id = nil
}

// SetDoctorID sets the "doctor_id" field.
func (m *PrescriptionMutation) SetDoctorID(u uuid.UUID) {
	m.doctor_id = &u
}

// DoctorID returns the value of the "doctor_id" field in the mutation.
func (m *PrescriptionMutation) DoctorID() (r uuid.UUID, exists bool) {
	v := m.doctor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDoctorID returns the old "doctor_id" field's value of the Prescription entity.
// If the Prescription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrescriptionMutation) OldDoctorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoctorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoctorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoctorID: %w", err)
	}
	return oldValue.DoctorID, nil
}

// ResetDoctorID resets all changes to the "doctor_id" field.
func (m *PrescriptionMutation) ResetDoctorID() {
	m.doctor_id = nil
}

// SetAppointmentID sets the "appointment_id" field.
func (m *PrescriptionMutation) SetAppointmentID(u uuid.UUID) {
	m.appointment_id = &u
}

// AppointmentID returns the value of the "appointment_id" field in the mutation.
func (m *PrescriptionMutation) AppointmentID() (r uuid.UUID, exists bool) {
	v := m.appointment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAppointmentID returns the old "appointment_id" field's value of the Prescription entity.
// If the Prescription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrescriptionMutation) OldAppointmentID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppointmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppointmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppointmentID: %w", err)
	}
	return oldValue.AppointmentID, nil
}

// ClearAppointmentID clears the value of the "appointment_id" field.
func (m *PrescriptionMutation) ClearAppointmentID() {
	m.appointment_id = nil
	m.clearedFields[prescription.FieldAppointmentID] = struct{}{}
}

// AppointmentIDCleared returns if the "appointment_id" field was cleared in this mutation.
func (m *PrescriptionMutation) AppointmentIDCleared() bool {
	_, ok := m.clearedFields[prescription.FieldAppointmentID]
	return ok
}

// ResetAppointmentID resets all changes to the "appointment_id" field.
func (m *PrescriptionMutation) ResetAppointmentID() {
	m.appointment_id = nil
	delete(m.clearedFields, prescription.FieldAppointmentID)
}

// SetDiagnosis sets the "diagnosis" field.
func (m *PrescriptionMutation) SetDiagnosis(s string) {
	m.diagnosis = &s
}

// Diagnosis returns the value of the "diagnosis" field in the mutation.
func (m *PrescriptionMutation) Diagnosis() (r string, exists bool) {
	v := m.diagnosis
	if v == nil {
		return
	}
	return *v, true
}

// OldDiagnosis returns the old "diagnosis" field's value of the Prescription entity.
// If the Prescription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrescriptionMutation) OldDiagnosis(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiagnosis is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiagnosis requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiagnosis: %w", err)
	}
	return oldValue.Diagnosis, nil
}

// ResetDiagnosis resets all changes to the "diagnosis" field.
func (m *PrescriptionMutation) ResetDiagnosis() {
	m.diagnosis = nil
}

// SetAdvice sets the "advice" field.
func (m *PrescriptionMutation) SetAdvice(s string) {
	m.advice = &s
}

// Advice returns the value of the "advice" field in the mutation.
func (m *PrescriptionMutation) Advice() (r string, exists bool) {
	v := m.advice
	if v == nil {
		return
	}
	return *v, true
}

// OldAdvice returns the old "advice" field's value of the Prescription entity.
// If the Prescription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrescriptionMutation) OldAdvice(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdvice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdvice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdvice: %w", err)
	}
	return oldValue.Advice, nil
}

// ClearAdvice clears the value of the "advice" field.
func (m *PrescriptionMutation) ClearAdvice() {
	m.advice = nil
	m.clearedFields[prescription.FieldAdvice] = struct{}{}
}

// AdviceCleared returns if the "advice" field was cleared in this mutation.
func (m *PrescriptionMutation) AdviceCleared() bool {
	_, ok := m.clearedFields[prescription.FieldAdvice]
	return ok
}

// ResetAdvice resets all changes to the "advice" field.
func (m *PrescriptionMutation) ResetAdvice() {
	m.advice = nil
	delete(m.clearedFields, prescription.FieldAdvice)
}

// SetFollowUpDate sets the "follow_up_date" field.
func (m *PrescriptionMutation) SetFollowUpDate(t time.Time) {
	m.follow_up_date = &t
}

// FollowUpDate returns the value of the "follow_up_date" field in the mutation.
func (m *PrescriptionMutation) FollowUpDate() (r time.Time, exists bool) {
	v := m.follow_up_date
	if v == nil {
		return
	}
	return *v, true
}

// OldFollowUpDate returns the old "follow_up_date" field's value of the Prescription entity.
// If the Prescription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrescriptionMutation) OldFollowUpDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFollowUpDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFollowUpDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFollowUpDate: %w", err)
	}
	return oldValue.FollowUpDate, nil
}

// ClearFollowUpDate clears the value of the "follow_up_date" field.
func (m *PrescriptionMutation) ClearFollowUpDate() {
	m.follow_up_date = nil
	m.clearedFields[prescription.FieldFollowUpDate] = struct{}{}
}

// FollowUpDateCleared returns if the "follow_up_date" field was cleared in this mutation.
func (m *PrescriptionMutation) FollowUpDateCleared() bool {
	_, ok := m.clearedFields[prescription.FieldFollowUpDate]
	return ok
}

// ResetFollowUpDate resets all changes to the "follow_up_date" field.
func (m *PrescriptionMutation) ResetFollowUpDate() {
	m.follow_up_date = nil
	delete(m.clearedFields, prescription.FieldFollowUpDate)
}

// SetPrintedAt sets the "printed_at" field.
func (m *PrescriptionMutation) SetPrintedAt(t time.Time) {
	m.printed_at = &t
}

// PrintedAt returns the value of the "printed_at" field in the mutation.
func (m *PrescriptionMutation) PrintedAt() (r time.Time, exists bool) {
	v := m.printed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPrintedAt returns the old "printed_at" field's value of the Prescription entity.
// If the Prescription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrescriptionMutation) OldPrintedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrintedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrintedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrintedAt: %w", err)
	}
	return oldValue.PrintedAt, nil
}

// ClearPrintedAt clears the value of the "printed_at" field.
func (m *PrescriptionMutation) ClearPrintedAt() {
	m.printed_at = nil
	m.clearedFields[prescription.FieldPrintedAt] = struct{}{}
}

// PrintedAtCleared returns if the "printed_at" field was cleared in this mutation.
func (m *PrescriptionMutation) PrintedAtCleared() bool {
	_, ok := m.clearedFields[prescription.FieldPrintedAt]
	return ok
}

// ResetPrintedAt resets all changes to the "printed_at" field.
func (m *PrescriptionMutation) ResetPrintedAt() {
	m.printed_at = nil
	delete(m.clearedFields, prescription.FieldPrintedAt)
}

// Where appends a list predicates to the PrescriptionMutation builder.
func (m *PrescriptionMutation) Where(ps ...predicate.Prescription) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PrescriptionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PrescriptionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Prescription, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PrescriptionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PrescriptionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Prescription).
func (m *PrescriptionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PrescriptionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, prescription.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, prescription.FieldUpdatedAt)
	}
	if m.prescription_number != nil {
		fields = append(fields, prescription.FieldPrescriptionNumber)
	}
	if m.patient_id != nil {
		fields = append(fields, prescription.FieldPatientID)
	}
	if m.doctor_id != nil {
		fields = append(fields, prescription.FieldDoctorID)
	}
	if m.appointment_id != nil {
		fields = append(fields, prescription.FieldAppointmentID)
	}
	if m.diagnosis != nil {
		fields = append(fields, prescription.FieldDiagnosis)
	}
	if m.advice != nil {
		fields = append(fields, prescription.FieldAdvice)
	}
	if m.follow_up_date != nil {
		fields = append(fields, prescription.FieldFollowUpDate)
	}
	if m.printed_at != nil {
		fields = append(fields, prescription.FieldPrintedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PrescriptionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case prescription.FieldCreatedAt:
		return m.CreatedAt()
	case prescription.FieldUpdatedAt:
		return m.UpdatedAt()
	case prescription.FieldPrescriptionNumber:
		return m.PrescriptionNumber()
	case prescription.FieldPatientID:
		return m.PatientID()
	case prescription.FieldDoctorID:
		return m.DoctorID()
	case prescription.FieldAppointmentID:
		return m.AppointmentID()
	case prescription.FieldDiagnosis:
		return m.Diagnosis()
	case prescription.FieldAdvice:
		return m.Advice()
	case prescription.FieldFollowUpDate:
		return m.FollowUpDate()
	case prescription.FieldPrintedAt:
		return m.PrintedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PrescriptionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case prescription.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case prescription.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case prescription.FieldPrescriptionNumber:
		return m.OldPrescriptionNumber(ctx)
	case prescription.FieldPatientID:
		return m.OldPatientID(ctx)
	case prescription.FieldDoctorID:
		return m.OldDoctorID(ctx)
	case prescription.FieldAppointmentID:
		return m.OldAppointmentID(ctx)
	case prescription.FieldDiagnosis:
		return m.OldDiagnosis(ctx)
	case prescription.FieldAdvice:
		return m.OldAdvice(ctx)
	case prescription.FieldFollowUpDate:
		return m.OldFollowUpDate(ctx)
	case prescription.FieldPrintedAt:
		return m.OldPrintedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Prescription field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PrescriptionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case prescription.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case prescription.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case prescription.FieldPrescriptionNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrescriptionNumber(v)
		return nil
	case prescription.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case prescription.FieldDoctorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoctorID(v)
		return nil
	case prescription.FieldAppointmentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppointmentID(v)
		return nil
	case prescription.FieldDiagnosis:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiagnosis(v)
		return nil
	case prescription.FieldAdvice:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdvice(v)
		return nil
	case prescription.FieldFollowUpDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFollowUpDate(v)
		return nil
	case prescription.FieldPrintedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrintedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Prescription field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PrescriptionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PrescriptionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PrescriptionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Prescription numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PrescriptionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(prescription.FieldAppointmentID) {
		fields = append(fields, prescription.FieldAppointmentID)
	}
	if m.FieldCleared(prescription.FieldAdvice) {
		fields = append(fields, prescription.FieldAdvice)
	}
	if m.FieldCleared(prescription.FieldFollowUpDate) {
		fields = append(fields, prescription.FieldFollowUpDate)
	}
	if m.FieldCleared(prescription.FieldPrintedAt) {
		fields = append(fields, prescription.FieldPrintedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PrescriptionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PrescriptionMutation) ClearField(name string) error {
	switch name {
	case prescription.FieldAppointmentID:
		m.ClearAppointmentID()
		return nil
	case prescription.FieldAdvice:
		m.ClearAdvice()
		return nil
	case prescription.FieldFollowUpDate:
		m.ClearFollowUpDate()
		return nil
	case prescription.FieldPrintedAt:
		m.ClearPrintedAt()
		return nil
	}
	return fmt.Errorf("unknown Prescription nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PrescriptionMutation) ResetField(name string) error {
	switch name {
	case prescription.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case prescription.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case prescription.FieldPrescriptionNumber:
		m.ResetPrescriptionNumber()
		return nil
	case prescription.FieldPatientID:
		m.ResetPatientID()
		return nil
	case prescription.FieldDoctorID:
		m.ResetDoctorID()
		return nil
	case prescription.FieldAppointmentID:
		m.ResetAppointmentID()
		return nil
	case prescription.FieldDiagnosis:
		m.ResetDiagnosis()
		return nil
	case prescription.FieldAdvice:
		m.ResetAdvice()
		return nil
	case prescription.FieldFollowUpDate:
		m.ResetFollowUpDate()
		return nil
	case prescription.FieldPrintedAt:
		m.ResetPrintedAt()
		return nil
	}
	return fmt.Errorf("unknown Prescription field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PrescriptionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PrescriptionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PrescriptionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PrescriptionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PrescriptionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PrescriptionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PrescriptionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Prescription unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PrescriptionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Prescription edge %s", name)
}

// PrescriptionMedicineMutation represents an operation that mutates the PrescriptionMedicine nodes in the graph.
type PrescriptionMedicineMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	created_at      *time.Time
	prescription_id *uuid.UUID
	name            *string
	dosage          *string
	frequency       *string
	duration        *string
	instructions    *string
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*PrescriptionMedicine, error)
	predicates      []predicate.PrescriptionMedicine
}

var _ ent.Mutation = (*PrescriptionMedicineMutation)(nil)

// prescriptionmedicineOption allows management of the mutation configuration using functional options.
type prescriptionmedicineOption func(*PrescriptionMedicineMutation)

// newPrescriptionMedicineMutation creates new mutation for the PrescriptionMedicine entity.
func newPrescriptionMedicineMutation(c config, op Op, opts ...prescriptionmedicineOption) *PrescriptionMedicineMutation {
	m := &PrescriptionMedicineMutation{
		config:        c,
		op:            op,
		typ:           TypePrescriptionMedicine,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPrescriptionMedicineID sets the ID field of the mutation.
func withPrescriptionMedicineID(id uuid.UUID) prescriptionmedicineOption {
	return func(m *PrescriptionMedicineMutation) {
		var (
			err   error
			once  sync.Once
			value *PrescriptionMedicine
		)
		m.oldValue = func(ctx context.Context) (*PrescriptionMedicine, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PrescriptionMedicine.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPrescriptionMedicine sets the old PrescriptionMedicine of the mutation.
func withPrescriptionMedicine(node *PrescriptionMedicine) prescriptionmedicineOption {
	return func(m *PrescriptionMedicineMutation) {
		m.oldValue = func(context.Context) (*PrescriptionMedicine, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PrescriptionMedicineMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PrescriptionMedicineMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PrescriptionMedicine entities.
func (m *PrescriptionMedicineMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PrescriptionMedicineMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PrescriptionMedicineMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PrescriptionMedicine.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PrescriptionMedicineMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PrescriptionMedicineMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PrescriptionMedicine entity.
// If the PrescriptionMedicine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrescriptionMedicineMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PrescriptionMedicineMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetPrescriptionID sets the "prescription_id" field.
func (m *PrescriptionMedicineMutation) SetPrescriptionID(u uuid.UUID) {
	m.prescription_id = &u
}

// PrescriptionID returns the value of the "prescription_id" field in the mutation.
func (m *PrescriptionMedicineMutation) PrescriptionID() (r uuid.UUID, exists bool) {
	v := m.prescription_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPrescriptionID returns the old "prescription_id" field's value of the PrescriptionMedicine entity.
// If the PrescriptionMedicine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrescriptionMedicineMutation) OldPrescriptionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrescriptionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrescriptionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrescriptionID: %w", err)
	}
	return oldValue.PrescriptionID, nil
}

// ResetPrescriptionID resets all changes to the "prescription_id" field.
func (m *PrescriptionMedicineMutation) ResetPrescriptionID() {
	m.prescription_id = nil
}

// SetName sets the "name" field.
func (m *PrescriptionMedicineMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PrescriptionMedicineMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the PrescriptionMedicine entity.
// If the PrescriptionMedicine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrescriptionMedicineMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PrescriptionMedicineMutation) ResetName() {
	m.name = nil
}

// SetDosage sets the "dosage" field.
func (m *PrescriptionMedicineMutation) SetDosage(s string) {
	m.dosage = &s
}

// Dosage returns the value of the "dosage" field in the mutation.
func (m *PrescriptionMedicineMutation) Dosage() (r string, exists bool) {
	v := m.dosage
	if v == nil {
		return
	}
	return *v, true
}

// OldDosage returns the old "dosage" field's value of the PrescriptionMedicine entity.
// If the PrescriptionMedicine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrescriptionMedicineMutation) OldDosage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDosage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDosage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDosage: %w", err)
	}
	return oldValue.Dosage, nil
}

// ResetDosage resets all changes to the "dosage" field.
func (m *PrescriptionMedicineMutation) ResetDosage() {
	m.dosage = nil
}

// SetFrequency sets the "frequency" field.
func (m *PrescriptionMedicineMutation) SetFrequency(s string) {
	m.frequency = &s
}

// Frequency returns the value of the "frequency" field in the mutation.
func (m *PrescriptionMedicineMutation) Frequency() (r string, exists bool) {
	v := m.frequency
	if v == nil {
		return
	}
	return *v, true
}

// OldFrequency returns the old "frequency" field's value of the PrescriptionMedicine entity.
// If the PrescriptionMedicine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrescriptionMedicineMutation) OldFrequency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFrequency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFrequency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFrequency: %w", err)
	}
	return oldValue.Frequency, nil
}

// ResetFrequency resets all changes to the "frequency" field.
func (m *PrescriptionMedicineMutation) ResetFrequency() {
	m.frequency = nil
}

// SetDuration sets the "duration" field.
func (m *PrescriptionMedicineMutation) SetDuration(s string) {
	m.duration = &s
}

// Duration returns the value of the "duration" field in the mutation.
func (m *PrescriptionMedicineMutation) Duration() (r string, exists bool) {
	v := m.duration
	if v == nil {
		return
	}
	return *v, true
}

// OldDuration returns the old "duration" field's value of the PrescriptionMedicine entity.
// If the PrescriptionMedicine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrescriptionMedicineMutation) OldDuration(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDuration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDuration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDuration: %w", err)
	}
	return oldValue.Duration, nil
}

// ResetDuration resets all changes to the "duration" field.
func (m *PrescriptionMedicineMutation) ResetDuration() {
	m.duration = nil
}

// SetInstructions sets the "instructions" field.
func (m *PrescriptionMedicineMutation) SetInstructions(s string) {
	m.instructions = &s
}

// Instructions returns the value of the "instructions" field in the mutation.
func (m *PrescriptionMedicineMutation) Instructions() (r string, exists bool) {
	v := m.instructions
	if v == nil {
		return
	}
	return *v, true
}

// OldInstructions returns the old "instructions" field's value of the PrescriptionMedicine entity.
// If the PrescriptionMedicine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrescriptionMedicineMutation) OldInstructions(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstructions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstructions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstructions: %w", err)
	}
	return oldValue.Instructions, nil
}

// ClearInstructions clears the value of the "instructions" field.
func (m *PrescriptionMedicineMutation) ClearInstructions() {
	m.instructions = nil
	m.clearedFields[prescriptionmedicine.FieldInstructions] = struct{}{}
}

// InstructionsCleared returns if the "instructions" field was cleared in this mutation.
func (m *PrescriptionMedicineMutation) InstructionsCleared() bool {
	_, ok := m.clearedFields[prescriptionmedicine.FieldInstructions]
	return ok
}

// ResetInstructions resets all changes to the "instructions" field.
func (m *PrescriptionMedicineMutation) ResetInstructions() {
	m.instructions = nil
	delete(m.clearedFields, prescriptionmedicine.FieldInstructions)
}

// Where appends a list predicates to the PrescriptionMedicineMutation builder.
func (m *PrescriptionMedicineMutation) Where(ps ...predicate.PrescriptionMedicine) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PrescriptionMedicineMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PrescriptionMedicineMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PrescriptionMedicine, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PrescriptionMedicineMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PrescriptionMedicineMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PrescriptionMedicine).
func (m *PrescriptionMedicineMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PrescriptionMedicineMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, prescriptionmedicine.FieldCreatedAt)
	}
	if m.prescription_id != nil {
		fields = append(fields, prescriptionmedicine.FieldPrescriptionID)
	}
	if m.name != nil {
		fields = append(fields, prescriptionmedicine.FieldName)
	}
	if m.dosage != nil {
		fields = append(fields, prescriptionmedicine.FieldDosage)
	}
	if m.frequency != nil {
		fields = append(fields, prescriptionmedicine.FieldFrequency)
	}
	if m.duration != nil {
		fields = append(fields, prescriptionmedicine.FieldDuration)
	}
	if m.instructions != nil {
		fields = append(fields, prescriptionmedicine.FieldInstructions)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PrescriptionMedicineMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case prescriptionmedicine.FieldCreatedAt:
		return m.CreatedAt()
	case prescriptionmedicine.FieldPrescriptionID:
		return m.PrescriptionID()
	case prescriptionmedicine.FieldName:
		return m.Name()
	case prescriptionmedicine.FieldDosage:
		return m.Dosage()
	case prescriptionmedicine.FieldFrequency:
		return m.Frequency()
	case prescriptionmedicine.FieldDuration:
		return m.Duration()
	case prescriptionmedicine.FieldInstructions:
		return m.Instructions()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PrescriptionMedicineMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case prescriptionmedicine.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case prescriptionmedicine.FieldPrescriptionID:
		return m.OldPrescriptionID(ctx)
	case prescriptionmedicine.FieldName:
		return m.OldName(ctx)
	case prescriptionmedicine.FieldDosage:
		return m.OldDosage(ctx)
	case prescriptionmedicine.FieldFrequency:
		return m.OldFrequency(ctx)
	case prescriptionmedicine.FieldDuration:
		return m.OldDuration(ctx)
	case prescriptionmedicine.FieldInstructions:
		return m.OldInstructions(ctx)
	}
	return nil, fmt.Errorf("unknown PrescriptionMedicine field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PrescriptionMedicineMutation) SetField(name string, value ent.Value) error {
	switch name {
	case prescriptionmedicine.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case prescriptionmedicine.FieldPrescriptionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrescriptionID(v)
		return nil
	case prescriptionmedicine.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case prescriptionmedicine.FieldDosage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDosage(v)
		return nil
	case prescriptionmedicine.FieldFrequency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFrequency(v)
		return nil
	case prescriptionmedicine.FieldDuration:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDuration(v)
		return nil
	case prescriptionmedicine.FieldInstructions:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstructions(v)
		return nil
	}
	return fmt.Errorf("unknown PrescriptionMedicine field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PrescriptionMedicineMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PrescriptionMedicineMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PrescriptionMedicineMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PrescriptionMedicine numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PrescriptionMedicineMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(prescriptionmedicine.FieldInstructions) {
		fields = append(fields, prescriptionmedicine.FieldInstructions)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PrescriptionMedicineMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PrescriptionMedicineMutation) ClearField(name string) error {
	switch name {
	case prescriptionmedicine.FieldInstructions:
		m.ClearInstructions()
		return nil
	}
	return fmt.Errorf("unknown PrescriptionMedicine nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PrescriptionMedicineMutation) ResetField(name string) error {
	switch name {
	case prescriptionmedicine.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case prescriptionmedicine.FieldPrescriptionID:
		m.ResetPrescriptionID()
		return nil
	case prescriptionmedicine.FieldName:
		m.ResetName()
		return nil
	case prescriptionmedicine.FieldDosage:
		m.ResetDosage()
		return nil
	case prescriptionmedicine.FieldFrequency:
		m.ResetFrequency()
		return nil
	case prescriptionmedicine.FieldDuration:
		m.ResetDuration()
		return nil
	case prescriptionmedicine.FieldInstructions:
		m.ResetInstructions()
		return nil
	}
	return fmt.Errorf("unknown PrescriptionMedicine field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PrescriptionMedicineMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PrescriptionMedicineMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PrescriptionMedicineMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PrescriptionMedicineMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PrescriptionMedicineMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PrescriptionMedicineMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PrescriptionMedicineMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PrescriptionMedicine unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PrescriptionMedicineMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PrescriptionMedicine edge %s", name)
}

// SaleItemMutation represents an operation that mutates the SaleItem nodes in the graph.
type SaleItemMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	sale_id       *uuid.UUID
	drug_id       *uuid.UUID
	quantity      *int
	addquantity   *int
	unit_price    *int64
	addunit_price *int64
	subtotal      *int64
	addsubtotal   *int64
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*SaleItem, error)
	predicates    []predicate.SaleItem
}

var _ ent.Mutation = (*SaleItemMutation)(nil)

// saleitemOption allows management of the mutation configuration using functional options.
type saleitemOption func(*SaleItemMutation)

// newSaleItemMutation creates new mutation for the SaleItem entity.
func newSaleItemMutation(c config, op Op, opts ...saleitemOption) *SaleItemMutation {
	m := &SaleItemMutation{
		config:        c,
		op:            op,
		typ:           TypeSaleItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSaleItemID sets the ID field of the mutation.
func withSaleItemID(id uuid.UUID) saleitemOption {
	return func(m *SaleItemMutation) {
		var (
			err   error
			once  sync.Once
			value *SaleItem
		)
		m.oldValue = func(ctx context.Context) (*SaleItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SaleItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSaleItem sets the old SaleItem of the mutation.
func withSaleItem(node *SaleItem) saleitemOption {
	return func(m *SaleItemMutation) {
		m.oldValue = func(context.Context) (*SaleItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SaleItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SaleItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SaleItem entities.
func (m *SaleItemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SaleItemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SaleItemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SaleItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SaleItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SaleItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SaleItem entity.
// If the SaleItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SaleItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SaleItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetSaleID sets the "sale_id" field.
func (m *SaleItemMutation) SetSaleID(u uuid.UUID) {
	m.sale_id = &u
}

// SaleID returns the value of the "sale_id" field in the mutation.
func (m *SaleItemMutation) SaleID() (r uuid.UUID, exists bool) {
	v := m.sale_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSaleID returns the old "sale_id" field's value of the SaleItem entity.
// If the SaleItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SaleItemMutation) OldSaleID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSaleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSaleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSaleID: %w", err)
	}
	return oldValue.SaleID, nil
}

// ResetSaleID resets all changes to the "sale_id" field.
func (m *SaleItemMutation) ResetSaleID() {
	m.sale_id = nil
}

// SetDrugID sets the "drug_id" field.
func (m *SaleItemMutation) SetDrugID(u uuid.UUID) {
	m.drug_id = &u
}

// DrugID returns the value of the "drug_id" field in the mutation.
func (m *SaleItemMutation) DrugID() (r uuid.UUID, exists bool) {
	v := m.drug_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDrugID returns the old "drug_id" field's value of the SaleItem entity.
// If the SaleItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SaleItemMutation) OldDrugID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDrugID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDrugID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDrugID: %w", err)
	}
	return oldValue.DrugID, nil
}

// ResetDrugID resets all changes to the "drug_id" field.
func (m *SaleItemMutation) ResetDrugID() {
	m.drug_id = nil
}

// SetQuantity sets the "quantity" field.
func (m *SaleItemMutation) SetQuantity(i int) {
	m.quantity = &i
	m.addquantity = nil
}

// Quantity returns the value of the "quantity" field in the mutation.
func (m *SaleItemMutation) Quantity() (r int, exists bool) {
	v := m.quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantity returns the old "quantity" field's value of the SaleItem entity.
// If the SaleItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SaleItemMutation) OldQuantity(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantity: %w", err)
	}
	return oldValue.Quantity, nil
}

// AddQuantity adds i to the "quantity" field.
func (m *SaleItemMutation) AddQuantity(i int) {
	if m.addquantity != nil {
		*m.addquantity += i
	} else {
		m.addquantity = &i
	}
}

// AddedQuantity returns the value that was added to the "quantity" field in this mutation.
func (m *SaleItemMutation) AddedQuantity() (r int, exists bool) {
	v := m.addquantity
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuantity resets all changes to the "quantity" field.
func (m *SaleItemMutation) ResetQuantity() {
	m.quantity = nil
	m.addquantity = nil
}

// SetUnitPrice sets the "unit_price" field.
func (m *SaleItemMutation) SetUnitPrice(i int64) {
	m.unit_price = &i
	m.addunit_price = nil
}

// UnitPrice returns the value of the "unit_price" field in the mutation.
func (m *SaleItemMutation) UnitPrice() (r int64, exists bool) {
	v := m.unit_price
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitPrice returns the old "unit_price" field's value of the SaleItem entity.
// If the SaleItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SaleItemMutation) OldUnitPrice(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitPrice: %w", err)
	}
	return oldValue.UnitPrice, nil
}

// AddUnitPrice adds i to the "unit_price" field.
func (m *SaleItemMutation) AddUnitPrice(i int64) {
	if m.addunit_price != nil {
		*m.addunit_price += i
	} else {
		m.addunit_price = &i
	}
}

// AddedUnitPrice returns the value that was added to the "unit_price" field in this mutation.
func (m *SaleItemMutation) AddedUnitPrice() (r int64, exists bool) {
	v := m.addunit_price
	if v == nil {
		return
	}
	return *v, true
}

// ResetUnitPrice resets all changes to the "unit_price" field.
func (m *SaleItemMutation) ResetUnitPrice() {
	m.unit_price = nil
	m.addunit_price = nil
}

// SetSubtotal sets the "subtotal" field.
func (m *SaleItemMutation) SetSubtotal(i int64) {
	m.subtotal = &i
	m.addsubtotal = nil
}

// Subtotal returns the value of the "subtotal" field in the mutation.
func (m *SaleItemMutation) Subtotal() (r int64, exists bool) {
	v := m.subtotal
	if v == nil {
		return
	}
	return *v, true
}

// OldSubtotal returns the old "subtotal" field's value of the SaleItem entity.
// If the SaleItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SaleItemMutation) OldSubtotal(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubtotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubtotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubtotal: %w", err)
	}
	return oldValue.Subtotal, nil
}

// AddSubtotal adds i to the "subtotal" field.
func (m *SaleItemMutation) AddSubtotal(i int64) {
	if m.addsubtotal != nil {
		*m.addsubtotal += i
	} else {
		m.addsubtotal = &i
	}
}

// AddedSubtotal returns the value that was added to the "subtotal" field in this mutation.
func (m *SaleItemMutation) AddedSubtotal() (r int64, exists bool) {
	v := m.addsubtotal
	if v == nil {
		return
	}
	return *v, true
}

// ResetSubtotal resets all changes to the "subtotal" field.
func (m *SaleItemMutation) ResetSubtotal() {
	m.subtotal = nil
	m.addsubtotal = nil
}

// Where appends a list predicates to the SaleItemMutation builder.
func (m *SaleItemMutation) Where(ps ...predicate.SaleItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SaleItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SaleItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SaleItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SaleItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SaleItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SaleItem).
func (m *SaleItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SaleItemMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, saleitem.FieldCreatedAt)
	}
	if m.sale_id != nil {
		fields = append(fields, saleitem.FieldSaleID)
	}
	if m.drug_id != nil {
		fields = append(fields, saleitem.FieldDrugID)
	}
	if m.quantity != nil {
		fields = append(fields, saleitem.FieldQuantity)
	}
	if m.unit_price != nil {
		fields = append(fields, saleitem.FieldUnitPrice)
	}
	if m.subtotal != nil {
		fields = append(fields, saleitem.FieldSubtotal)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SaleItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case saleitem.FieldCreatedAt:
		return m.CreatedAt()
	case saleitem.FieldSaleID:
		return m.SaleID()
	case saleitem.FieldDrugID:
		return m.DrugID()
	case saleitem.FieldQuantity:
		return m.Quantity()
	case saleitem.FieldUnitPrice:
		return m.UnitPrice()
	case saleitem.FieldSubtotal:
		return m.Subtotal()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SaleItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case saleitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case saleitem.FieldSaleID:
		return m.OldSaleID(ctx)
	case saleitem.FieldDrugID:
		return m.OldDrugID(ctx)
	case saleitem.FieldQuantity:
		return m.OldQuantity(ctx)
	case saleitem.FieldUnitPrice:
		return m.OldUnitPrice(ctx)
	case saleitem.FieldSubtotal:
		return m.OldSubtotal(ctx)
	}
	return nil, fmt.Errorf("unknown SaleItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SaleItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case saleitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case saleitem.FieldSaleID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSaleID(v)
		return nil
	case saleitem.FieldDrugID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDrugID(v)
		return nil
	case saleitem.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantity(v)
		return nil
	case saleitem.FieldUnitPrice:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitPrice(v)
		return nil
	case saleitem.FieldSubtotal:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubtotal(v)
		return nil
	}
	return fmt.Errorf("unknown SaleItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SaleItemMutation) AddedFields() []string {
	var fields []string
	if m.addquantity != nil {
		fields = append(fields, saleitem.FieldQuantity)
	}
	if m.addunit_price != nil {
		fields = append(fields, saleitem.FieldUnitPrice)
	}
	if m.addsubtotal != nil {
		fields = append(fields, saleitem.FieldSubtotal)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SaleItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case saleitem.FieldQuantity:
		return m.AddedQuantity()
	case saleitem.FieldUnitPrice:
		return m.AddedUnitPrice()
	case saleitem.FieldSubtotal:
		return m.AddedSubtotal()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SaleItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case saleitem.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantity(v)
		return nil
	case saleitem.FieldUnitPrice:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUnitPrice(v)
		return nil
	case saleitem.FieldSubtotal:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSubtotal(v)
		return nil
	}
	return fmt.Errorf("unknown SaleItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SaleItemMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SaleItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SaleItemMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SaleItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SaleItemMutation) ResetField(name string) error {
	switch name {
	case saleitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case saleitem.FieldSaleID:
		m.ResetSaleID()
		return nil
	case saleitem.FieldDrugID:
		m.ResetDrugID()
		return nil
	case saleitem.FieldQuantity:
		m.ResetQuantity()
		return nil
	case saleitem.FieldUnitPrice:
		m.ResetUnitPrice()
		return nil
	case saleitem.FieldSubtotal:
		m.ResetSubtotal()
		return nil
	}
	return fmt.Errorf("unknown SaleItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SaleItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SaleItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SaleItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SaleItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SaleItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SaleItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SaleItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SaleItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SaleItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SaleItem edge %s", name)
}

// StaffMutation represents an operation that mutates the Staff nodes in the graph.
type StaffMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	created_at               *time.Time
	updated_at               *time.Time
	deleted_at               *time.Time
	first_name               *string
	last_name                *string
	phone                    *string
	email                    *string
	password_hash            *string
	must_change_password     *bool
	role                     *staff.Role
	specialization           *string
	license_number           *string
	consultation_fee         *int64
	addconsultation_fee      *int64
	status                   *staff.Status
	last_login_at            *time.Time
	failed_login_attempts    *int
	addfailed_login_attempts *int
	locked_until             *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*Staff, error)
	predicates               []predicate.Staff
}

var _ ent.Mutation = (*StaffMutation)(nil)

// staffOption allows management of the mutation configuration using functional options.
type staffOption func(*StaffMutation)

// newStaffMutation creates new mutation for the Staff entity.
func newStaffMutation(c config, op Op, opts ...staffOption) *StaffMutation {
	m := &StaffMutation{
		config:        c,
		op:            op,
		typ:           TypeStaff,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStaffID sets the ID field of the mutation.
func withStaffID(id uuid.UUID) staffOption {
	return func(m *StaffMutation) {
		var (
			err   error
			once  sync.Once
			value *Staff
		)
		m.oldValue = func(ctx context.Context) (*Staff, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Staff.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStaff sets the old Staff of the mutation.
func withStaff(node *Staff) staffOption {
	return func(m *StaffMutation) {
		m.oldValue = func(context.Context) (*Staff, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StaffMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StaffMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Staff entities.
func (m *StaffMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StaffMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StaffMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Staff.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *StaffMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StaffMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Staff entity.
// If the Staff object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StaffMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StaffMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StaffMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Staff entity.
// If the Staff object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StaffMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *StaffMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *StaffMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Staff entity.
// If the Staff object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *StaffMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[staff.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *StaffMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[staff.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *StaffMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, staff.FieldDeletedAt)
}

// SetFirstName sets the "first_name" field.
func (m *StaffMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *StaffMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the Staff entity.
// If the Staff object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffMutation) OldFirstName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *StaffMutation) ResetFirstName() {
	m.first_name = nil
}

// SetLastName sets the "last_name" field.
func (m *StaffMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *StaffMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the Staff entity.
// If the Staff object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffMutation) OldLastName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ResetLastName resets all changes to the "last_name" field.
func (m *StaffMutation) ResetLastName() {
	m.last_name = nil
}

// SetPhone sets the "phone" field.
func (m *StaffMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *StaffMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Staff entity.
// If the Staff object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ResetPhone resets all changes to the "phone" field.
func (m *StaffMutation) ResetPhone() {
	m.phone = nil
}

// SetEmail sets the "email" field.
func (m *StaffMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *StaffMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Staff entity.
// If the Staff object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffMutation) OldEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *StaffMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[staff.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *StaffMutation) EmailCleared() bool {
	_, ok := m.clearedFields[staff.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *StaffMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, staff.FieldEmail)
}

// SetPasswordHash sets the "password_hash" field.
func (m *StaffMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *StaffMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the Staff entity.
// If the Staff object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *StaffMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetMustChangePassword sets the "must_change_password" field.
func (m *StaffMutation) SetMustChangePassword(b bool) {
	m.must_change_password = &b
}

// MustChangePassword returns the value of the "must_change_password" field in the mutation.
func (m *StaffMutation) MustChangePassword() (r bool, exists bool) {
	v := m.must_change_password
	if v == nil {
		return
	}
	return *v, true
}

// OldMustChangePassword returns the old "must_change_password" field's value of the Staff entity.
// If the Staff object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffMutation) OldMustChangePassword(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMustChangePassword is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMustChangePassword requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMustChangePassword: %w", err)
	}
	return oldValue.MustChangePassword, nil
}

// ResetMustChangePassword resets all changes to the "must_change_password" field.
func (m *StaffMutation) ResetMustChangePassword() {
	m.must_change_password = nil
}

// SetRole sets the "role" field.
func (m *StaffMutation) SetRole(s staff.Role) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *StaffMutation) Role() (r staff.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Staff entity.
// If the Staff object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffMutation) OldRole(ctx context.Context) (v staff.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *StaffMutation) ResetRole() {
	m.role = nil
}

// SetSpecialization sets the "specialization" field.
func (m *StaffMutation) SetSpecialization(s string) {
	m.specialization = &s
}

// Specialization returns the value of the "specialization" field in the mutation.
func (m *StaffMutation) Specialization() (r string, exists bool) {
	v := m.specialization
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecialization returns the old "specialization" field's value of the Staff entity.
// If the Staff object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffMutation) OldSpecialization(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecialization is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecialization requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecialization: %w", err)
	}
	return oldValue.Specialization, nil
}

// ClearSpecialization clears the value of the "specialization" field.
func (m *StaffMutation) ClearSpecialization() {
	m.specialization = nil
	m.clearedFields[staff.FieldSpecialization] = struct{}{}
}

// SpecializationCleared returns if the "specialization" field was cleared in this mutation.
func (m *StaffMutation) SpecializationCleared() bool {
	_, ok := m.clearedFields[staff.FieldSpecialization]
	return ok
}

// ResetSpecialization resets all changes to the "specialization" field.
func (m *StaffMutation) ResetSpecialization() {
	m.specialization = nil
	delete(m.clearedFields, staff.FieldSpecialization)
}

// SetLicenseNumber sets the "license_number" field.
func (m *StaffMutation) SetLicenseNumber(s string) {
	m.license_number = &s
}

// LicenseNumber returns the value of the "license_number" field in the mutation.
func (m *StaffMutation) LicenseNumber() (r string, exists bool) {
	v := m.license_number
	if v == nil {
		return
	}
	return *v, true
}

// OldLicenseNumber returns the old "license_number" field's value of the Staff entity.
// If the Staff object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffMutation) OldLicenseNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLicenseNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLicenseNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLicenseNumber: %w", err)
	}
	return oldValue.LicenseNumber, nil
}

// ClearLicenseNumber clears the value of the "license_number" field.
func (m *StaffMutation) ClearLicenseNumber() {
	m.license_number = nil
	m.clearedFields[staff.FieldLicenseNumber] = struct{}{}
}

// LicenseNumberCleared returns if the "license_number" field was cleared in this mutation.
func (m *StaffMutation) LicenseNumberCleared() bool {
	_, ok := m.clearedFields[staff.FieldLicenseNumber]
	return ok
}

// ResetLicenseNumber resets all changes to the "license_number" field.
func (m *StaffMutation) ResetLicenseNumber() {
	m.license_number = nil
	delete(m.clearedFields, staff.FieldLicenseNumber)
}

// SetConsultationFee sets the "consultation_fee" field.
func (m *StaffMutation) SetConsultationFee(i int64) {
	m.consultation_fee = &i
	m.addconsultation_fee = nil
}

// ConsultationFee returns the value of the "consultation_fee" field in the mutation.
func (m *StaffMutation) ConsultationFee() (r int64, exists bool) {
	v := m.consultation_fee
	if v == nil {
		return
	}
	return *v, true
}

// OldConsultationFee returns the old "consultation_fee" field's value of the Staff entity.
// If the Staff object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffMutation) OldConsultationFee(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsultationFee is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsultationFee requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsultationFee: %w", err)
	}
	return oldValue.ConsultationFee, nil
}

// AddConsultationFee adds i to the "consultation_fee" field.
func (m *StaffMutation) AddConsultationFee(i int64) {
	if m.addconsultation_fee != nil {
		*m.addconsultation_fee += i
	} else {
		m.addconsultation_fee = &i
	}
}

// AddedConsultationFee returns the value that was added to the "consultation_fee" field in this mutation.
func (m *StaffMutation) AddedConsultationFee() (r int64, exists bool) {
	v := m.addconsultation_fee
	if v == nil {
		return
	}
	return *v, true
}

// ResetConsultationFee resets all changes to the "consultation_fee" field.
func (m *StaffMutation) ResetConsultationFee() {
	m.consultation_fee = nil
	m.addconsultation_fee = nil
}

// SetStatus sets the "status" field.
func (m *StaffMutation) SetStatus(s staff.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *StaffMutation) Status() (r staff.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Staff entity.
// If the Staff object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffMutation) OldStatus(ctx context.Context) (v staff.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *StaffMutation) ResetStatus() {
	m.status = nil
}

// SetLastLoginAt sets the "last_login_at" field.
func (m *StaffMutation) SetLastLoginAt(t time.Time) {
	m.last_login_at = &t
}

// LastLoginAt returns the value of the "last_login_at" field in the mutation.
func (m *StaffMutation) LastLoginAt() (r time.Time, exists bool) {
	v := m.last_login_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLoginAt returns the old "last_login_at" field's value of the Staff entity.
// If the Staff object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffMutation) OldLastLoginAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLoginAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLoginAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLoginAt: %w", err)
	}
	return oldValue.LastLoginAt, nil
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (m *StaffMutation) ClearLastLoginAt() {
	m.last_login_at = nil
	m.clearedFields[staff.FieldLastLoginAt] = struct{}{}
}

// LastLoginAtCleared returns if the "last_login_at" field was cleared in this mutation.
func (m *StaffMutation) LastLoginAtCleared() bool {
	_, ok := m.clearedFields[staff.FieldLastLoginAt]
	return ok
}

// ResetLastLoginAt resets all changes to the "last_login_at" field.
func (m *StaffMutation) ResetLastLoginAt() {
	m.last_login_at = nil
	delete(m.clearedFields, staff.FieldLastLoginAt)
}

// SetFailedLoginAttempts sets the "failed_login_attempts" field.
func (m *StaffMutation) SetFailedLoginAttempts(i int) {
	m.failed_login_attempts = &i
	m.addfailed_login_attempts = nil
}

// FailedLoginAttempts returns the value of the "failed_login_attempts" field in the mutation.
func (m *StaffMutation) FailedLoginAttempts() (r int, exists bool) {
	v := m.failed_login_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedLoginAttempts returns the old "failed_login_attempts" field's value of the Staff entity.
// If the Staff object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffMutation) OldFailedLoginAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedLoginAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedLoginAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedLoginAttempts: %w", err)
	}
	return oldValue.FailedLoginAttempts, nil
}

// AddFailedLoginAttempts adds i to the "failed_login_attempts" field.
func (m *StaffMutation) AddFailedLoginAttempts(i int) {
	if m.addfailed_login_attempts != nil {
		*m.addfailed_login_attempts += i
	} else {
		m.addfailed_login_attempts = &i
	}
}

// AddedFailedLoginAttempts returns the value that was added to the "failed_login_attempts" field in this mutation.
func (m *StaffMutation) AddedFailedLoginAttempts() (r int, exists bool) {
	v := m.addfailed_login_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailedLoginAttempts resets all changes to the "failed_login_attempts" field.
func (m *StaffMutation) ResetFailedLoginAttempts() {
	m.failed_login_attempts = nil
	m.addfailed_login_attempts = nil
}

// SetLockedUntil sets the "locked_until" field.
func (m *StaffMutation) SetLockedUntil(t time.Time) {
	m.locked_until = &t
}

// LockedUntil returns the value of the "locked_until" field in the mutation.
func (m *StaffMutation) LockedUntil() (r time.Time, exists bool) {
	v := m.locked_until
	if v == nil {
		return
	}
	return *v, true
}

// OldLockedUntil returns the old "locked_until" field's value of the Staff entity.
// If the Staff object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffMutation) OldLockedUntil(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockedUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockedUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockedUntil: %w", err)
	}
	return oldValue.LockedUntil, nil
}

// ClearLockedUntil clears the value of the "locked_until" field.
func (m *StaffMutation) ClearLockedUntil() {
	m.locked_until = nil
	m.clearedFields[staff.FieldLockedUntil] = struct{}{}
}

// LockedUntilCleared returns if the "locked_until" field was cleared in this mutation.
func (m *StaffMutation) LockedUntilCleared() bool {
	_, ok := m.clearedFields[staff.FieldLockedUntil]
	return ok
}

// ResetLockedUntil resets all changes to the "locked_until" field.
func (m *StaffMutation) ResetLockedUntil() {
	m.locked_until = nil
	delete(m.clearedFields, staff.FieldLockedUntil)
}

// Where appends a list predicates to the StaffMutation builder.
func (m *StaffMutation) Where(ps ...predicate.Staff) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StaffMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StaffMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Staff, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StaffMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StaffMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Staff).
func (m *StaffMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StaffMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.created_at != nil {
		fields = append(fields, staff.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, staff.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, staff.FieldDeletedAt)
	}
	if m.first_name != nil {
		fields = append(fields, staff.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, staff.FieldLastName)
	}
	if m.phone != nil {
		fields = append(fields, staff.FieldPhone)
	}
	if m.email != nil {
		fields = append(fields, staff.FieldEmail)
	}
	if m.password_hash != nil {
		fields = append(fields, staff.FieldPasswordHash)
	}
	if m.must_change_password != nil {
		fields = append(fields, staff.FieldMustChangePassword)
	}
	if m.role != nil {
		fields = append(fields, staff.FieldRole)
	}
	if m.specialization != nil {
		fields = append(fields, staff.FieldSpecialization)
	}
	if m.license_number != nil {
		fields = append(fields, staff.FieldLicenseNumber)
	}
	if m.consultation_fee != nil {
		fields = append(fields, staff.FieldConsultationFee)
	}
	if m.status != nil {
		fields = append(fields, staff.FieldStatus)
	}
	if m.last_login_at != nil {
		fields = append(fields, staff.FieldLastLoginAt)
	}
	if m.failed_login_attempts != nil {
		fields = append(fields, staff.FieldFailedLoginAttempts)
	}
	if m.locked_until != nil {
		fields = append(fields, staff.FieldLockedUntil)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StaffMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case staff.FieldCreatedAt:
		return m.CreatedAt()
	case staff.FieldUpdatedAt:
		return m.UpdatedAt()
	case staff.FieldDeletedAt:
		return m.DeletedAt()
	case staff.FieldFirstName:
		return m.FirstName()
	case staff.FieldLastName:
		return m.LastName()
	case staff.FieldPhone:
		return m.Phone()
	case staff.FieldEmail:
		return m.Email()
	case staff.FieldPasswordHash:
		return m.PasswordHash()
	case staff.FieldMustChangePassword:
		return m.MustChangePassword()
	case staff.FieldRole:
		return m.Role()
	case staff.FieldSpecialization:
		return m.Specialization()
	case staff.FieldLicenseNumber:
		return m.LicenseNumber()
	case staff.FieldConsultationFee:
		return m.ConsultationFee()
	case staff.FieldStatus:
		return m.Status()
	case staff.FieldLastLoginAt:
		return m.LastLoginAt()
	case staff.FieldFailedLoginAttempts:
		return m.FailedLoginAttempts()
	case staff.FieldLockedUntil:
		return m.LockedUntil()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StaffMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case staff.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case staff.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case staff.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case staff.FieldFirstName:
		return m.OldFirstName(ctx)
	case staff.FieldLastName:
		return m.OldLastName(ctx)
	case staff.FieldPhone:
		return m.OldPhone(ctx)
	case staff.FieldEmail:
		return m.OldEmail(ctx)
	case staff.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case staff.FieldMustChangePassword:
		return m.OldMustChangePassword(ctx)
	case staff.FieldRole:
		return m.OldRole(ctx)
	case staff.FieldSpecialization:
		return m.OldSpecialization(ctx)
	case staff.FieldLicenseNumber:
		return m.OldLicenseNumber(ctx)
	case staff.FieldConsultationFee:
		return m.OldConsultationFee(ctx)
	case staff.FieldStatus:
		return m.OldStatus(ctx)
	case staff.FieldLastLoginAt:
		return m.OldLastLoginAt(ctx)
	case staff.FieldFailedLoginAttempts:
		return m.OldFailedLoginAttempts(ctx)
	case staff.FieldLockedUntil:
		return m.OldLockedUntil(ctx)
	}
	return nil, fmt.Errorf("unknown Staff field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StaffMutation) SetField(name string, value ent.Value) error {
	switch name {
	case staff.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case staff.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case staff.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case staff.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case staff.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case staff.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case staff.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case staff.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case staff.FieldMustChangePassword:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMustChangePassword(v)
		return nil
	case staff.FieldRole:
		v, ok := value.(staff.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case staff.FieldSpecialization:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecialization(v)
		return nil
	case staff.FieldLicenseNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLicenseNumber(v)
		return nil
	case staff.FieldConsultationFee:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsultationFee(v)
		return nil
	case staff.FieldStatus:
		v, ok := value.(staff.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case staff.FieldLastLoginAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLoginAt(v)
		return nil
	case staff.FieldFailedLoginAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedLoginAttempts(v)
		return nil
	case staff.FieldLockedUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockedUntil(v)
		return nil
	}
	return fmt.Errorf("unknown Staff field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StaffMutation) AddedFields() []string {
	var fields []string
	if m.addconsultation_fee != nil {
		fields = append(fields, staff.FieldConsultationFee)
	}
	if m.addfailed_login_attempts != nil {
		fields = append(fields, staff.FieldFailedLoginAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StaffMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case staff.FieldConsultationFee:
		return m.AddedConsultationFee()
	case staff.FieldFailedLoginAttempts:
		return m.AddedFailedLoginAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StaffMutation) AddField(name string, value ent.Value) error {
	switch name {
	case staff.FieldConsultationFee:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsultationFee(v)
		return nil
	case staff.FieldFailedLoginAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailedLoginAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown Staff numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StaffMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(staff.FieldDeletedAt) {
		fields = append(fields, staff.FieldDeletedAt)
	}
	if m.FieldCleared(staff.FieldEmail) {
		fields = append(fields, staff.FieldEmail)
	}
	if m.FieldCleared(staff.FieldSpecialization) {
		fields = append(fields, staff.FieldSpecialization)
	}
	if m.FieldCleared(staff.FieldLicenseNumber) {
		fields = append(fields, staff.FieldLicenseNumber)
	}
	if m.FieldCleared(staff.FieldLastLoginAt) {
		fields = append(fields, staff.FieldLastLoginAt)
	}
	if m.FieldCleared(staff.FieldLockedUntil) {
		fields = append(fields, staff.FieldLockedUntil)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StaffMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StaffMutation) ClearField(name string) error {
	switch name {
	case staff.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case staff.FieldEmail:
		m.ClearEmail()
		return nil
	case staff.FieldSpecialization:
		m.ClearSpecialization()
		return nil
	case staff.FieldLicenseNumber:
		m.ClearLicenseNumber()
		return nil
	case staff.FieldLastLoginAt:
		m.ClearLastLoginAt()
		return nil
	case staff.FieldLockedUntil:
		m.ClearLockedUntil()
		return nil
	}
	return fmt.Errorf("unknown Staff nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StaffMutation) ResetField(name string) error {
	switch name {
	case staff.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case staff.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case staff.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case staff.FieldFirstName:
		m.ResetFirstName()
		return nil
	case staff.FieldLastName:
		m.ResetLastName()
		return nil
	case staff.FieldPhone:
		m.ResetPhone()
		return nil
	case staff.FieldEmail:
		m.ResetEmail()
		return nil
	case staff.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case staff.FieldMustChangePassword:
		m.ResetMustChangePassword()
		return nil
	case staff.FieldRole:
		m.ResetRole()
		return nil
	case staff.FieldSpecialization:
		m.ResetSpecialization()
		return nil
	case staff.FieldLicenseNumber:
		m.ResetLicenseNumber()
		return nil
	case staff.FieldConsultationFee:
		m.ResetConsultationFee()
		return nil
	case staff.FieldStatus:
		m.ResetStatus()
		return nil
	case staff.FieldLastLoginAt:
		m.ResetLastLoginAt()
		return nil
	case staff.FieldFailedLoginAttempts:
		m.ResetFailedLoginAttempts()
		return nil
	case staff.FieldLockedUntil:
		m.ResetLockedUntil()
		return nil
	}
	return fmt.Errorf("unknown Staff field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StaffMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StaffMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StaffMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StaffMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StaffMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StaffMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StaffMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Staff unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StaffMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Staff edge %s", name)
}

// StockAdjustmentMutation represents an operation that mutates the StockAdjustment nodes in the graph.
type StockAdjustmentMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	drug_id       *uuid.UUID
	delta         *int
	adddelta      *int
	reason        *stockadjustment.Reason
	note          *string
	adjusted_by   *uuid.UUID
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*StockAdjustment, error)
	predicates    []predicate.StockAdjustment
}

var _ ent.Mutation = (*StockAdjustmentMutation)(nil)

// stockadjustmentOption allows management of the mutation configuration using functional options.
type stockadjustmentOption func(*StockAdjustmentMutation)

// newStockAdjustmentMutation creates new mutation for the StockAdjustment entity.
func newStockAdjustmentMutation(c config, op Op, opts ...stockadjustmentOption) *StockAdjustmentMutation {
	m := &StockAdjustmentMutation{
		config:        c,
		op:            op,
		typ:           TypeStockAdjustment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStockAdjustmentID sets the ID field of the mutation.
func withStockAdjustmentID(id uuid.UUID) stockadjustmentOption {
	return func(m *StockAdjustmentMutation) {
		var (
			err   error
			once  sync.Once
			value *StockAdjustment
		)
		m.oldValue = func(ctx context.Context) (*StockAdjustment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StockAdjustment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStockAdjustment sets the old StockAdjustment of the mutation.
func withStockAdjustment(node *StockAdjustment) stockadjustmentOption {
	return func(m *StockAdjustmentMutation) {
		m.oldValue = func(context.Context) (*StockAdjustment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StockAdjustmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StockAdjustmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StockAdjustment entities.
func (m *StockAdjustmentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StockAdjustmentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StockAdjustmentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StockAdjustment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *StockAdjustmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StockAdjustmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StockAdjustment entity.
// If the StockAdjustment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StockAdjustmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StockAdjustmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetDrugID sets the "drug_id" field.
func (m *StockAdjustmentMutation) SetDrugID(u uuid.UUID) {
	m.drug_id = &u
}

// DrugID returns the value of the "drug_id" field in the mutation.
func (m *StockAdjustmentMutation) DrugID() (r uuid.UUID, exists bool) {
	v := m.drug_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDrugID returns the old "drug_id" field's value of the StockAdjustment entity.
// If the StockAdjustment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StockAdjustmentMutation) OldDrugID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDrugID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDrugID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDrugID: %w", err)
	}
	return oldValue.DrugID, nil
}

// ResetDrugID resets all changes to the "drug_id" field.
func (m *StockAdjustmentMutation) ResetDrugID() {
	m.drug_id = nil
}

// SetDelta sets the "delta" field.
func (m *StockAdjustmentMutation) SetDelta(i int) {
	m.delta = &i
	m.adddelta = nil
}

// Delta returns the value of the "delta" field in the mutation.
func (m *StockAdjustmentMutation) Delta() (r int, exists bool) {
	v := m.delta
	if v == nil {
		return
	}
	return *v, true
}

// OldDelta returns the old "delta" field's value of the StockAdjustment entity.
// If the StockAdjustment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StockAdjustmentMutation) OldDelta(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDelta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDelta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDelta: %w", err)
	}
	return oldValue.Delta, nil
}

// AddDelta adds i to the "delta" field.
func (m *StockAdjustmentMutation) AddDelta(i int) {
	if m.adddelta != nil {
		*m.adddelta += i
	} else {
		m.adddelta = &i
	}
}

// AddedDelta returns the value that was added to the "delta" field in this mutation.
func (m *StockAdjustmentMutation) AddedDelta() (r int, exists bool) {
	v := m.adddelta
	if v == nil {
		return
	}
	return *v, true
}

// ResetDelta resets all changes to the "delta" field.
func (m *StockAdjustmentMutation) ResetDelta() {
	m.delta = nil
	m.adddelta = nil
}

// SetReason sets the "reason" field.
func (m *StockAdjustmentMutation) SetReason(s stockadjustment.Reason) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *StockAdjustmentMutation) Reason() (r stockadjustment.Reason, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the StockAdjustment entity.
// If the StockAdjustment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StockAdjustmentMutation) OldReason(ctx context.Context) (v stockadjustment.Reason, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *StockAdjustmentMutation) ResetReason() {
	m.reason = nil
}

// SetNote sets the "note" field.
func (m *StockAdjustmentMutation) SetNote(s string) {
	m.note = &s
}

// Note returns the value of the "note" field in the mutation.
func (m *StockAdjustmentMutation) Note() (r string, exists bool) {
	v := m.note
	if v == nil {
		return
	}
	return *v, true
}

// OldNote returns the old "note" field's value of the StockAdjustment entity.
// If the StockAdjustment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StockAdjustmentMutation) OldNote(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNote: %w", err)
	}
	return oldValue.Note, nil
}

// ClearNote clears the value of the "note" field.
func (m *StockAdjustmentMutation) ClearNote() {
	m.note = nil
	m.clearedFields[stockadjustment.FieldNote] = struct{}{}
}

// NoteCleared returns if the "note" field was cleared in this mutation.
func (m *StockAdjustmentMutation) NoteCleared() bool {
	_, ok := m.clearedFields[stockadjustment.FieldNote]
	return ok
}

// ResetNote resets all changes to the "note" field.
func (m *StockAdjustmentMutation) ResetNote() {
	m.note = nil
	delete(m.clearedFields, stockadjustment.FieldNote)
}

// SetAdjustedBy sets the "adjusted_by" field.
func (m *StockAdjustmentMutation) SetAdjustedBy(u uuid.UUID) {
	m.adjusted_by = &u
}

// AdjustedBy returns the value of the "adjusted_by" field in the mutation.
func (m *StockAdjustmentMutation) AdjustedBy() (r uuid.UUID, exists bool) {
	v := m.adjusted_by
	if v == nil {
		return
	}
	return *v, true
}

// OldAdjustedBy returns the old "adjusted_by" field's value of the StockAdjustment entity.
// If the StockAdjustment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StockAdjustmentMutation) OldAdjustedBy(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdjustedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdjustedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdjustedBy: %w", err)
	}
	return oldValue.AdjustedBy, nil
}

// ClearAdjustedBy clears the value of the "adjusted_by" field.
func (m *StockAdjustmentMutation) ClearAdjustedBy() {
	m.adjusted_by = nil
	m.clearedFields[stockadjustment.FieldAdjustedBy] = struct{}{}
}

// AdjustedByCleared returns if the "adjusted_by" field was cleared in this mutation.
func (m *StockAdjustmentMutation) AdjustedByCleared() bool {
	_, ok := m.clearedFields[stockadjustment.FieldAdjustedBy]
	return ok
}

// ResetAdjustedBy resets all changes to the "adjusted_by" field.
func (m *StockAdjustmentMutation) ResetAdjustedBy() {
	m.adjusted_by = nil
	delete(m.clearedFields, stockadjustment.FieldAdjustedBy)
}

// Where appends a list predicates to the StockAdjustmentMutation builder.
func (m *StockAdjustmentMutation) Where(ps ...predicate.StockAdjustment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StockAdjustmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StockAdjustmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StockAdjustment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StockAdjustmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StockAdjustmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StockAdjustment).
func (m *StockAdjustmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StockAdjustmentMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, stockadjustment.FieldCreatedAt)
	}
	if m.drug_id != nil {
		fields = append(fields, stockadjustment.FieldDrugID)
	}
	if m.delta != nil {
		fields = append(fields, stockadjustment.FieldDelta)
	}
	if m.reason != nil {
		fields = append(fields, stockadjustment.FieldReason)
	}
	if m.note != nil {
		fields = append(fields, stockadjustment.FieldNote)
	}
	if m.adjusted_by != nil {
		fields = append(fields, stockadjustment.FieldAdjustedBy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StockAdjustmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stockadjustment.FieldCreatedAt:
		return m.CreatedAt()
	case stockadjustment.FieldDrugID:
		return m.DrugID()
	case stockadjustment.FieldDelta:
		return m.Delta()
	case stockadjustment.FieldReason:
		return m.Reason()
	case stockadjustment.FieldNote:
		return m.Note()
	case stockadjustment.FieldAdjustedBy:
		return m.AdjustedBy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StockAdjustmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stockadjustment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case stockadjustment.FieldDrugID:
		return m.OldDrugID(ctx)
	case stockadjustment.FieldDelta:
		return m.OldDelta(ctx)
	case stockadjustment.FieldReason:
		return m.OldReason(ctx)
	case stockadjustment.FieldNote:
		return m.OldNote(ctx)
	case stockadjustment.FieldAdjustedBy:
		return m.OldAdjustedBy(ctx)
	}
	return nil, fmt.Errorf("unknown StockAdjustment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StockAdjustmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stockadjustment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case stockadjustment.FieldDrugID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDrugID(v)
		return nil
	case stockadjustment.FieldDelta:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDelta(v)
		return nil
	case stockadjustment.FieldReason:
		v, ok := value.(stockadjustment.Reason)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case stockadjustment.FieldNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNote(v)
		return nil
	case stockadjustment.FieldAdjustedBy:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdjustedBy(v)
		return nil
	}
	return fmt.Errorf("unknown StockAdjustment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StockAdjustmentMutation) AddedFields() []string {
	var fields []string
	if m.adddelta != nil {
		fields = append(fields, stockadjustment.FieldDelta)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StockAdjustmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case stockadjustment.FieldDelta:
		return m.AddedDelta()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StockAdjustmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case stockadjustment.FieldDelta:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDelta(v)
		return nil
	}
	return fmt.Errorf("unknown StockAdjustment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StockAdjustmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stockadjustment.FieldNote) {
		fields = append(fields, stockadjustment.FieldNote)
	}
	if m.FieldCleared(stockadjustment.FieldAdjustedBy) {
		fields = append(fields, stockadjustment.FieldAdjustedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StockAdjustmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StockAdjustmentMutation) ClearField(name string) error {
	switch name {
	case stockadjustment.FieldNote:
		m.ClearNote()
		return nil
	case stockadjustment.FieldAdjustedBy:
		m.ClearAdjustedBy()
		return nil
	}
	return fmt.Errorf("unknown StockAdjustment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StockAdjustmentMutation) ResetField(name string) error {
	switch name {
	case stockadjustment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case stockadjustment.FieldDrugID:
		m.ResetDrugID()
		return nil
	case stockadjustment.FieldDelta:
		m.ResetDelta()
		return nil
	case stockadjustment.FieldReason:
		m.ResetReason()
		return nil
	case stockadjustment.FieldNote:
		m.ResetNote()
		return nil
	case stockadjustment.FieldAdjustedBy:
		m.ResetAdjustedBy()
		return nil
	}
	return fmt.Errorf("unknown StockAdjustment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StockAdjustmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StockAdjustmentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StockAdjustmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StockAdjustmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StockAdjustmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StockAdjustmentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StockAdjustmentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StockAdjustment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StockAdjustmentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StockAdjustment edge %s", name)
}
