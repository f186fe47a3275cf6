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
	"github.com/niramoy/niramoy_backend/internal/repo/predicate"
	"github.com/niramoy/niramoy_backend/internal/repo/prescription"
)

// PrescriptionUpdate is the builder for updating Prescription entities.
type PrescriptionUpdate struct {
	config
	hooks    []Hook
	mutation *PrescriptionMutation
}

// Where appends a list predicates to the PrescriptionUpdate builder.
func (_u *PrescriptionUpdate) Where(ps ...predicate.Prescription) *PrescriptionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PrescriptionUpdate) SetUpdatedAt(v time.Time) *PrescriptionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPrescriptionNumber sets the "prescription_number" field.
func (_u *PrescriptionUpdate) SetPrescriptionNumber(v string) *PrescriptionUpdate {
	_u.mutation.SetPrescriptionNumber(v)
	return _u
}

// SetNillablePrescriptionNumber sets the "prescription_number" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillablePrescriptionNumber(v *string) *PrescriptionUpdate {
	if v != nil {
		_u.SetPrescriptionNumber(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *PrescriptionUpdate) SetPatientID(v uuid.UUID) *PrescriptionUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillablePatientID(v *uuid.UUID) *PrescriptionUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *PrescriptionUpdate) SetDoctorID(v uuid.UUID) *PrescriptionUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableDoctorID(v *uuid.UUID) *PrescriptionUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetAppointmentID sets the "appointment_id" field.
func (_u *PrescriptionUpdate) SetAppointmentID(v uuid.UUID) *PrescriptionUpdate {
	_u.mutation.SetAppointmentID(v)
	return _u
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableAppointmentID(v *uuid.UUID) *PrescriptionUpdate {
	if v != nil {
		_u.SetAppointmentID(*v)
	}
	return _u
}

// ClearAppointmentID clears the value of the "appointment_id" field.
func (_u *PrescriptionUpdate) ClearAppointmentID() *PrescriptionUpdate {
	_u.mutation.ClearAppointmentID()
	return _u
}

// SetDiagnosis sets the "diagnosis" field.
func (_u *PrescriptionUpdate) SetDiagnosis(v string) *PrescriptionUpdate {
	_u.mutation.SetDiagnosis(v)
	return _u
}

// SetNillableDiagnosis sets the "diagnosis" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableDiagnosis(v *string) *PrescriptionUpdate {
	if v != nil {
		_u.SetDiagnosis(*v)
	}
	return _u
}

// SetAdvice sets the "advice" field.
func (_u *PrescriptionUpdate) SetAdvice(v string) *PrescriptionUpdate {
	_u.mutation.SetAdvice(v)
	return _u
}

// SetNillableAdvice sets the "advice" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableAdvice(v *string) *PrescriptionUpdate {
	if v != nil {
		_u.SetAdvice(*v)
	}
	return _u
}

// ClearAdvice clears the value of the "advice" field.
func (_u *PrescriptionUpdate) ClearAdvice() *PrescriptionUpdate {
	_u.mutation.ClearAdvice()
	return _u
}

// SetFollowUpDate sets the "follow_up_date" field.
func (_u *PrescriptionUpdate) SetFollowUpDate(v time.Time) *PrescriptionUpdate {
	_u.mutation.SetFollowUpDate(v)
	return _u
}

// SetNillableFollowUpDate sets the "follow_up_date" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableFollowUpDate(v *time.Time) *PrescriptionUpdate {
	if v != nil {
		_u.SetFollowUpDate(*v)
	}
	return _u
}

// ClearFollowUpDate clears the value of the "follow_up_date" field.
func (_u *PrescriptionUpdate) ClearFollowUpDate() *PrescriptionUpdate {
	_u.mutation.ClearFollowUpDate()
	return _u
}

// SetPrintedAt sets the "printed_at" field.
func (_u *PrescriptionUpdate) SetPrintedAt(v time.Time) *PrescriptionUpdate {
	_u.mutation.SetPrintedAt(v)
	return _u
}

// SetNillablePrintedAt sets the "printed_at" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillablePrintedAt(v *time.Time) *PrescriptionUpdate {
	if v != nil {
		_u.SetPrintedAt(*v)
	}
	return _u
}

// ClearPrintedAt clears the value of the "printed_at" field.
func (_u *PrescriptionUpdate) ClearPrintedAt() *PrescriptionUpdate {
	_u.mutation.ClearPrintedAt()
	return _u
}

// Mutation returns the PrescriptionMutation object of the builder.
func (_u *PrescriptionUpdate) Mutation() *PrescriptionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PrescriptionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PrescriptionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PrescriptionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PrescriptionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PrescriptionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := prescription.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PrescriptionUpdate) check() error {
	if v, ok := _u.mutation.PrescriptionNumber(); ok {
		if err := prescription.PrescriptionNumberValidator(v); err != nil {
			return &ValidationError{Name: "prescription_number", err: fmt.Errorf(`repo: validator failed for field "Prescription.prescription_number": %w`, err)}
		}
	}
	return nil
}

func (_u *PrescriptionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prescription.Table, prescription.Columns, sqlgraph.NewFieldSpec(prescription.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(prescription.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PrescriptionNumber(); ok {
		_spec.SetField(prescription.FieldPrescriptionNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(prescription.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(prescription.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.AppointmentID(); ok {
		_spec.SetField(prescription.FieldAppointmentID, field.TypeUUID, value)
	}
	if _u.mutation.AppointmentIDCleared() {
		_spec.ClearField(prescription.FieldAppointmentID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Diagnosis(); ok {
		_spec.SetField(prescription.FieldDiagnosis, field.TypeString, value)
	}
	if value, ok := _u.mutation.Advice(); ok {
		_spec.SetField(prescription.FieldAdvice, field.TypeString, value)
	}
	if _u.mutation.AdviceCleared() {
		_spec.ClearField(prescription.FieldAdvice, field.TypeString)
	}
	if value, ok := _u.mutation.FollowUpDate(); ok {
		_spec.SetField(prescription.FieldFollowUpDate, field.TypeTime, value)
	}
	if _u.mutation.FollowUpDateCleared() {
		_spec.ClearField(prescription.FieldFollowUpDate, field.TypeTime)
	}
	if value, ok := _u.mutation.PrintedAt(); ok {
		_spec.SetField(prescription.FieldPrintedAt, field.TypeTime, value)
	}
	if _u.mutation.PrintedAtCleared() {
		_spec.ClearField(prescription.FieldPrintedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prescription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PrescriptionUpdateOne is the builder for updating a single Prescription entity.
type PrescriptionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PrescriptionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PrescriptionUpdateOne) SetUpdatedAt(v time.Time) *PrescriptionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPrescriptionNumber sets the "prescription_number" field.
func (_u *PrescriptionUpdateOne) SetPrescriptionNumber(v string) *PrescriptionUpdateOne {
	_u.mutation.SetPrescriptionNumber(v)
	return _u
}

// SetNillablePrescriptionNumber sets the "prescription_number" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillablePrescriptionNumber(v *string) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetPrescriptionNumber(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *PrescriptionUpdateOne) SetPatientID(v uuid.UUID) *PrescriptionUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillablePatientID(v *uuid.UUID) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *PrescriptionUpdateOne) SetDoctorID(v uuid.UUID) *PrescriptionUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableDoctorID(v *uuid.UUID) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetAppointmentID sets the "appointment_id" field.
func (_u *PrescriptionUpdateOne) SetAppointmentID(v uuid.UUID) *PrescriptionUpdateOne {
	_u.mutation.SetAppointmentID(v)
	return _u
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableAppointmentID(v *uuid.UUID) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetAppointmentID(*v)
	}
	return _u
}

// ClearAppointmentID clears the value of the "appointment_id" field.
func (_u *PrescriptionUpdateOne) ClearAppointmentID() *PrescriptionUpdateOne {
	_u.mutation.ClearAppointmentID()
	return _u
}

// SetDiagnosis sets the "diagnosis" field.
func (_u *PrescriptionUpdateOne) SetDiagnosis(v string) *PrescriptionUpdateOne {
	_u.mutation.SetDiagnosis(v)
	return _u
}

// SetNillableDiagnosis sets the "diagnosis" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableDiagnosis(v *string) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetDiagnosis(*v)
	}
	return _u
}

// SetAdvice sets the "advice" field.
func (_u *PrescriptionUpdateOne) SetAdvice(v string) *PrescriptionUpdateOne {
	_u.mutation.SetAdvice(v)
	return _u
}

// SetNillableAdvice sets the "advice" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableAdvice(v *string) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetAdvice(*v)
	}
	return _u
}

// ClearAdvice clears the value of the "advice" field.
func (_u *PrescriptionUpdateOne) ClearAdvice() *PrescriptionUpdateOne {
	_u.mutation.ClearAdvice()
	return _u
}

// SetFollowUpDate sets the "follow_up_date" field.
func (_u *PrescriptionUpdateOne) SetFollowUpDate(v time.Time) *PrescriptionUpdateOne {
	_u.mutation.SetFollowUpDate(v)
	return _u
}

// SetNillableFollowUpDate sets the "follow_up_date" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableFollowUpDate(v *time.Time) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetFollowUpDate(*v)
	}
	return _u
}

// ClearFollowUpDate clears the value of the "follow_up_date" field.
func (_u *PrescriptionUpdateOne) ClearFollowUpDate() *PrescriptionUpdateOne {
	_u.mutation.ClearFollowUpDate()
	return _u
}

// SetPrintedAt sets the "printed_at" field.
func (_u *PrescriptionUpdateOne) SetPrintedAt(v time.Time) *PrescriptionUpdateOne {
	_u.mutation.SetPrintedAt(v)
	return _u
}

// SetNillablePrintedAt sets the "printed_at" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillablePrintedAt(v *time.Time) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetPrintedAt(*v)
	}
	return _u
}

// ClearPrintedAt clears the value of the "printed_at" field.
func (_u *PrescriptionUpdateOne) ClearPrintedAt() *PrescriptionUpdateOne {
	_u.mutation.ClearPrintedAt()
	return _u
}

// Mutation returns the PrescriptionMutation object of the builder.
func (_u *PrescriptionUpdateOne) Mutation() *PrescriptionMutation {
	return _u.mutation
}

// Where appends a list predicates to the PrescriptionUpdate builder.
func (_u *PrescriptionUpdateOne) Where(ps ...predicate.Prescription) *PrescriptionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PrescriptionUpdateOne) Select(field string, fields ...string) *PrescriptionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Prescription entity.
func (_u *PrescriptionUpdateOne) Save(ctx context.Context) (*Prescription, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PrescriptionUpdateOne) SaveX(ctx context.Context) *Prescription {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PrescriptionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PrescriptionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PrescriptionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := prescription.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PrescriptionUpdateOne) check() error {
	if v, ok := _u.mutation.PrescriptionNumber(); ok {
		if err := prescription.PrescriptionNumberValidator(v); err != nil {
			return &ValidationError{Name: "prescription_number", err: fmt.Errorf(`repo: validator failed for field "Prescription.prescription_number": %w`, err)}
		}
	}
	return nil
}

func (_u *PrescriptionUpdateOne) sqlSave(ctx context.Context) (_node *Prescription, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prescription.Table, prescription.Columns, sqlgraph.NewFieldSpec(prescription.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Prescription.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, prescription.FieldID)
		for _, f := range fields {
			if !prescription.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != prescription.FieldID {
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
		_spec.SetField(prescription.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PrescriptionNumber(); ok {
		_spec.SetField(prescription.FieldPrescriptionNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(prescription.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(prescription.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.AppointmentID(); ok {
		_spec.SetField(prescription.FieldAppointmentID, field.TypeUUID, value)
	}
	if _u.mutation.AppointmentIDCleared() {
		_spec.ClearField(prescription.FieldAppointmentID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Diagnosis(); ok {
		_spec.SetField(prescription.FieldDiagnosis, field.TypeString, value)
	}
	if value, ok := _u.mutation.Advice(); ok {
		_spec.SetField(prescription.FieldAdvice, field.TypeString, value)
	}
	if _u.mutation.AdviceCleared() {
		_spec.ClearField(prescription.FieldAdvice, field.TypeString)
	}
	if value, ok := _u.mutation.FollowUpDate(); ok {
		_spec.SetField(prescription.FieldFollowUpDate, field.TypeTime, value)
	}
	if _u.mutation.FollowUpDateCleared() {
		_spec.ClearField(prescription.FieldFollowUpDate, field.TypeTime)
	}
	if value, ok := _u.mutation.PrintedAt(); ok {
		_spec.SetField(prescription.FieldPrintedAt, field.TypeTime, value)
	}
	if _u.mutation.PrintedAtCleared() {
		_spec.ClearField(prescription.FieldPrintedAt, field.TypeTime)
	}
	_node = &Prescription{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prescription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
