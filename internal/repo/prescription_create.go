// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/niramoy/niramoy_backend/internal/repo/prescription"
)

// PrescriptionCreate is the builder for creating a Prescription entity.
type PrescriptionCreate struct {
	config
	mutation *PrescriptionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PrescriptionCreate) SetCreatedAt(v time.Time) *PrescriptionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableCreatedAt(v *time.Time) *PrescriptionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PrescriptionCreate) SetUpdatedAt(v time.Time) *PrescriptionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableUpdatedAt(v *time.Time) *PrescriptionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPrescriptionNumber sets the "prescription_number" field.
func (_c *PrescriptionCreate) SetPrescriptionNumber(v string) *PrescriptionCreate {
	_c.mutation.SetPrescriptionNumber(v)
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *PrescriptionCreate) SetPatientID(v uuid.UUID) *PrescriptionCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *PrescriptionCreate) SetDoctorID(v uuid.UUID) *PrescriptionCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetAppointmentID sets the "appointment_id" field.
func (_c *PrescriptionCreate) SetAppointmentID(v uuid.UUID) *PrescriptionCreate {
	_c.mutation.SetAppointmentID(v)
	return _c
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableAppointmentID(v *uuid.UUID) *PrescriptionCreate {
	if v != nil {
		_c.SetAppointmentID(*v)
	}
	return _c
}

// SetDiagnosis sets the "diagnosis" field.
func (_c *PrescriptionCreate) SetDiagnosis(v string) *PrescriptionCreate {
	_c.mutation.SetDiagnosis(v)
	return _c
}

// SetAdvice sets the "advice" field.
func (_c *PrescriptionCreate) SetAdvice(v string) *PrescriptionCreate {
	_c.mutation.SetAdvice(v)
	return _c
}

// SetNillableAdvice sets the "advice" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableAdvice(v *string) *PrescriptionCreate {
	if v != nil {
		_c.SetAdvice(*v)
	}
	return _c
}

// SetFollowUpDate sets the "follow_up_date" field.
func (_c *PrescriptionCreate) SetFollowUpDate(v time.Time) *PrescriptionCreate {
	_c.mutation.SetFollowUpDate(v)
	return _c
}

// SetNillableFollowUpDate sets the "follow_up_date" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableFollowUpDate(v *time.Time) *PrescriptionCreate {
	if v != nil {
		_c.SetFollowUpDate(*v)
	}
	return _c
}

// SetPrintedAt sets the "printed_at" field.
func (_c *PrescriptionCreate) SetPrintedAt(v time.Time) *PrescriptionCreate {
	_c.mutation.SetPrintedAt(v)
	return _c
}

// SetNillablePrintedAt sets the "printed_at" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillablePrintedAt(v *time.Time) *PrescriptionCreate {
	if v != nil {
		_c.SetPrintedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PrescriptionCreate) SetID(v uuid.UUID) *PrescriptionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableID(v *uuid.UUID) *PrescriptionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the PrescriptionMutation object of the builder.
func (_c *PrescriptionCreate) Mutation() *PrescriptionMutation {
	return _c.mutation
}

// Save creates the Prescription in the database.
func (_c *PrescriptionCreate) Save(ctx context.Context) (*Prescription, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PrescriptionCreate) SaveX(ctx context.Context) *Prescription {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PrescriptionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PrescriptionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PrescriptionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := prescription.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := prescription.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := prescription.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PrescriptionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Prescription.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Prescription.updated_at"`)}
	}
	if _, ok := _c.mutation.PrescriptionNumber(); !ok {
		return &ValidationError{Name: "prescription_number", err: errors.New(`repo: missing required field "Prescription.prescription_number"`)}
	}
	if v, ok := _c.mutation.PrescriptionNumber(); ok {
		if err := prescription.PrescriptionNumberValidator(v); err != nil {
			return &ValidationError{Name: "prescription_number", err: fmt.Errorf(`repo: validator failed for field "Prescription.prescription_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "Prescription.patient_id"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`repo: missing required field "Prescription.doctor_id"`)}
	}
	if _, ok := _c.mutation.Diagnosis(); !ok {
		return &ValidationError{Name: "diagnosis", err: errors.New(`repo: missing required field "Prescription.diagnosis"`)}
	}
	return nil
}

func (_c *PrescriptionCreate) sqlSave(ctx context.Context) (*Prescription, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PrescriptionCreate) createSpec() (*Prescription, *sqlgraph.CreateSpec) {
	var (
		_node = &Prescription{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(prescription.Table, sqlgraph.NewFieldSpec(prescription.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(prescription.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(prescription.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.PrescriptionNumber(); ok {
		_spec.SetField(prescription.FieldPrescriptionNumber, field.TypeString, value)
		_node.PrescriptionNumber = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(prescription.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.DoctorID(); ok {
		_spec.SetField(prescription.FieldDoctorID, field.TypeUUID, value)
		_node.DoctorID = value
	}
	if value, ok := _c.mutation.AppointmentID(); ok {
		_spec.SetField(prescription.FieldAppointmentID, field.TypeUUID, value)
		_node.AppointmentID = &value
	}
	if value, ok := _c.mutation.Diagnosis(); ok {
		_spec.SetField(prescription.FieldDiagnosis, field.TypeString, value)
		_node.Diagnosis = value
	}
	if value, ok := _c.mutation.Advice(); ok {
		_spec.SetField(prescription.FieldAdvice, field.TypeString, value)
		_node.Advice = &value
	}
	if value, ok := _c.mutation.FollowUpDate(); ok {
		_spec.SetField(prescription.FieldFollowUpDate, field.TypeTime, value)
		_node.FollowUpDate = &value
	}
	if value, ok := _c.mutation.PrintedAt(); ok {
		_spec.SetField(prescription.FieldPrintedAt, field.TypeTime, value)
		_node.PrintedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Prescription.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PrescriptionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PrescriptionCreate) OnConflict(opts ...sql.ConflictOption) *PrescriptionUpsertOne {
	_c.conflict = opts
	return &PrescriptionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Prescription.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PrescriptionCreate) OnConflictColumns(columns ...string) *PrescriptionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PrescriptionUpsertOne{
		create: _c,
	}
}

type (
	// PrescriptionUpsertOne is the builder for "upsert"-ing
	//  one Prescription node.
	PrescriptionUpsertOne struct {
		create *PrescriptionCreate
	}

	// PrescriptionUpsert is the "OnConflict" setter.
	PrescriptionUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PrescriptionUpsert) SetUpdatedAt(v time.Time) *PrescriptionUpsert {
	u.Set(prescription.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdateUpdatedAt() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldUpdatedAt)
	return u
}

// SetPrescriptionNumber sets the "prescription_number" field.
func (u *PrescriptionUpsert) SetPrescriptionNumber(v string) *PrescriptionUpsert {
	u.Set(prescription.FieldPrescriptionNumber, v)
	return u
}

// UpdatePrescriptionNumber sets the "prescription_number" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdatePrescriptionNumber() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldPrescriptionNumber)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *PrescriptionUpsert) SetPatientID(v uuid.UUID) *PrescriptionUpsert {
	u.Set(prescription.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdatePatientID() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldPatientID)
	return u
}

// SetDoctorID sets the "doctor_id" field.
func (u *PrescriptionUpsert) SetDoctorID(v uuid.UUID) *PrescriptionUpsert {
	u.Set(prescription.FieldDoctorID, v)
	return u
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdateDoctorID() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldDoctorID)
	return u
}

// SetAppointmentID sets the "appointment_id" field.
func (u *PrescriptionUpsert) SetAppointmentID(v uuid.UUID) *PrescriptionUpsert {
	u.Set(prescription.FieldAppointmentID, v)
	return u
}

// UpdateAppointmentID sets the "appointment_id" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdateAppointmentID() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldAppointmentID)
	return u
}

// ClearAppointmentID clears the value of the "appointment_id" field.
func (u *PrescriptionUpsert) ClearAppointmentID() *PrescriptionUpsert {
	u.SetNull(prescription.FieldAppointmentID)
	return u
}

// SetDiagnosis sets the "diagnosis" field.
func (u *PrescriptionUpsert) SetDiagnosis(v string) *PrescriptionUpsert {
	u.Set(prescription.FieldDiagnosis, v)
	return u
}

// UpdateDiagnosis sets the "diagnosis" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdateDiagnosis() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldDiagnosis)
	return u
}

// SetAdvice sets the "advice" field.
func (u *PrescriptionUpsert) SetAdvice(v string) *PrescriptionUpsert {
	u.Set(prescription.FieldAdvice, v)
	return u
}

// UpdateAdvice sets the "advice" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdateAdvice() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldAdvice)
	return u
}

// ClearAdvice clears the value of the "advice" field.
func (u *PrescriptionUpsert) ClearAdvice() *PrescriptionUpsert {
	u.SetNull(prescription.FieldAdvice)
	return u
}

// SetFollowUpDate sets the "follow_up_date" field.
func (u *PrescriptionUpsert) SetFollowUpDate(v time.Time) *PrescriptionUpsert {
	u.Set(prescription.FieldFollowUpDate, v)
	return u
}

// UpdateFollowUpDate sets the "follow_up_date" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdateFollowUpDate() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldFollowUpDate)
	return u
}

// ClearFollowUpDate clears the value of the "follow_up_date" field.
func (u *PrescriptionUpsert) ClearFollowUpDate() *PrescriptionUpsert {
	u.SetNull(prescription.FieldFollowUpDate)
	return u
}

// SetPrintedAt sets the "printed_at" field.
func (u *PrescriptionUpsert) SetPrintedAt(v time.Time) *PrescriptionUpsert {
	u.Set(prescription.FieldPrintedAt, v)
	return u
}

// UpdatePrintedAt sets the "printed_at" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdatePrintedAt() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldPrintedAt)
	return u
}

// ClearPrintedAt clears the value of the "printed_at" field.
func (u *PrescriptionUpsert) ClearPrintedAt() *PrescriptionUpsert {
	u.SetNull(prescription.FieldPrintedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Prescription.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(prescription.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PrescriptionUpsertOne) UpdateNewValues() *PrescriptionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(prescription.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(prescription.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Prescription.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PrescriptionUpsertOne) Ignore() *PrescriptionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PrescriptionUpsertOne) DoNothing() *PrescriptionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PrescriptionCreate.OnConflict
// documentation for more info.
func (u *PrescriptionUpsertOne) Update(set func(*PrescriptionUpsert)) *PrescriptionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PrescriptionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PrescriptionUpsertOne) SetUpdatedAt(v time.Time) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdateUpdatedAt() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPrescriptionNumber sets the "prescription_number" field.
func (u *PrescriptionUpsertOne) SetPrescriptionNumber(v string) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetPrescriptionNumber(v)
	})
}

// UpdatePrescriptionNumber sets the "prescription_number" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdatePrescriptionNumber() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdatePrescriptionNumber()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *PrescriptionUpsertOne) SetPatientID(v uuid.UUID) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdatePatientID() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdatePatientID()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *PrescriptionUpsertOne) SetDoctorID(v uuid.UUID) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdateDoctorID() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateDoctorID()
	})
}

// SetAppointmentID sets the "appointment_id" field.
func (u *PrescriptionUpsertOne) SetAppointmentID(v uuid.UUID) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetAppointmentID(v)
	})
}

// UpdateAppointmentID sets the "appointment_id" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdateAppointmentID() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateAppointmentID()
	})
}

// ClearAppointmentID clears the value of the "appointment_id" field.
func (u *PrescriptionUpsertOne) ClearAppointmentID() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.ClearAppointmentID()
	})
}

// SetDiagnosis sets the "diagnosis" field.
func (u *PrescriptionUpsertOne) SetDiagnosis(v string) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetDiagnosis(v)
	})
}

// UpdateDiagnosis sets the "diagnosis" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdateDiagnosis() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateDiagnosis()
	})
}

// SetAdvice sets the "advice" field.
func (u *PrescriptionUpsertOne) SetAdvice(v string) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetAdvice(v)
	})
}

// UpdateAdvice sets the "advice" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdateAdvice() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateAdvice()
	})
}

// ClearAdvice clears the value of the "advice" field.
func (u *PrescriptionUpsertOne) ClearAdvice() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.ClearAdvice()
	})
}

// SetFollowUpDate sets the "follow_up_date" field.
func (u *PrescriptionUpsertOne) SetFollowUpDate(v time.Time) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetFollowUpDate(v)
	})
}

// UpdateFollowUpDate sets the "follow_up_date" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdateFollowUpDate() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateFollowUpDate()
	})
}

// ClearFollowUpDate clears the value of the "follow_up_date" field.
func (u *PrescriptionUpsertOne) ClearFollowUpDate() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.ClearFollowUpDate()
	})
}

// SetPrintedAt sets the "printed_at" field.
func (u *PrescriptionUpsertOne) SetPrintedAt(v time.Time) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetPrintedAt(v)
	})
}

// UpdatePrintedAt sets the "printed_at" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdatePrintedAt() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdatePrintedAt()
	})
}

// ClearPrintedAt clears the value of the "printed_at" field.
func (u *PrescriptionUpsertOne) ClearPrintedAt() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.ClearPrintedAt()
	})
}

// Exec executes the query.
func (u *PrescriptionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PrescriptionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PrescriptionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PrescriptionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PrescriptionUpsertOne.ID is not supported by MySQL driver. Use PrescriptionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PrescriptionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PrescriptionCreateBulk is the builder for creating many Prescription entities in bulk.
type PrescriptionCreateBulk struct {
	config
	err      error
	builders []*PrescriptionCreate
	conflict []sql.ConflictOption
}

// Save creates the Prescription entities in the database.
func (_c *PrescriptionCreateBulk) Save(ctx context.Context) ([]*Prescription, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Prescription, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PrescriptionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PrescriptionCreateBulk) SaveX(ctx context.Context) []*Prescription {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PrescriptionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PrescriptionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Prescription.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PrescriptionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PrescriptionCreateBulk) OnConflict(opts ...sql.ConflictOption) *PrescriptionUpsertBulk {
	_c.conflict = opts
	return &PrescriptionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Prescription.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PrescriptionCreateBulk) OnConflictColumns(columns ...string) *PrescriptionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PrescriptionUpsertBulk{
		create: _c,
	}
}

// PrescriptionUpsertBulk is the builder for "upsert"-ing
// a bulk of Prescription nodes.
type PrescriptionUpsertBulk struct {
	create *PrescriptionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Prescription.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(prescription.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PrescriptionUpsertBulk) UpdateNewValues() *PrescriptionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(prescription.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(prescription.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Prescription.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PrescriptionUpsertBulk) Ignore() *PrescriptionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PrescriptionUpsertBulk) DoNothing() *PrescriptionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PrescriptionCreateBulk.OnConflict
// documentation for more info.
func (u *PrescriptionUpsertBulk) Update(set func(*PrescriptionUpsert)) *PrescriptionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PrescriptionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PrescriptionUpsertBulk) SetUpdatedAt(v time.Time) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdateUpdatedAt() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPrescriptionNumber sets the "prescription_number" field.
func (u *PrescriptionUpsertBulk) SetPrescriptionNumber(v string) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetPrescriptionNumber(v)
	})
}

// UpdatePrescriptionNumber sets the "prescription_number" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdatePrescriptionNumber() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdatePrescriptionNumber()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *PrescriptionUpsertBulk) SetPatientID(v uuid.UUID) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdatePatientID() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdatePatientID()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *PrescriptionUpsertBulk) SetDoctorID(v uuid.UUID) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdateDoctorID() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateDoctorID()
	})
}

// SetAppointmentID sets the "appointment_id" field.
func (u *PrescriptionUpsertBulk) SetAppointmentID(v uuid.UUID) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetAppointmentID(v)
	})
}

// UpdateAppointmentID sets the "appointment_id" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdateAppointmentID() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateAppointmentID()
	})
}

// ClearAppointmentID clears the value of the "appointment_id" field.
func (u *PrescriptionUpsertBulk) ClearAppointmentID() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.ClearAppointmentID()
	})
}

// SetDiagnosis sets the "diagnosis" field.
func (u *PrescriptionUpsertBulk) SetDiagnosis(v string) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetDiagnosis(v)
	})
}

// UpdateDiagnosis sets the "diagnosis" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdateDiagnosis() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateDiagnosis()
	})
}

// SetAdvice sets the "advice" field.
func (u *PrescriptionUpsertBulk) SetAdvice(v string) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetAdvice(v)
	})
}

// UpdateAdvice sets the "advice" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdateAdvice() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateAdvice()
	})
}

// ClearAdvice clears the value of the "advice" field.
func (u *PrescriptionUpsertBulk) ClearAdvice() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.ClearAdvice()
	})
}

// SetFollowUpDate sets the "follow_up_date" field.
func (u *PrescriptionUpsertBulk) SetFollowUpDate(v time.Time) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetFollowUpDate(v)
	})
}

// UpdateFollowUpDate sets the "follow_up_date" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdateFollowUpDate() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateFollowUpDate()
	})
}

// ClearFollowUpDate clears the value of the "follow_up_date" field.
func (u *PrescriptionUpsertBulk) ClearFollowUpDate() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.ClearFollowUpDate()
	})
}

// SetPrintedAt sets the "printed_at" field.
func (u *PrescriptionUpsertBulk) SetPrintedAt(v time.Time) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetPrintedAt(v)
	})
}

// UpdatePrintedAt sets the "printed_at" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdatePrintedAt() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdatePrintedAt()
	})
}

// ClearPrintedAt clears the value of the "printed_at" field.
func (u *PrescriptionUpsertBulk) ClearPrintedAt() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.ClearPrintedAt()
	})
}

// Exec executes the query.
func (u *PrescriptionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PrescriptionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PrescriptionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PrescriptionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
