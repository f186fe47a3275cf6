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
	"github.com/niramoy/niramoy_backend/internal/repo/laborder"
)

// LabOrderCreate is the builder for creating a LabOrder entity.
type LabOrderCreate struct {
	config
	mutation *LabOrderMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *LabOrderCreate) SetCreatedAt(v time.Time) *LabOrderCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LabOrderCreate) SetNillableCreatedAt(v *time.Time) *LabOrderCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LabOrderCreate) SetUpdatedAt(v time.Time) *LabOrderCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LabOrderCreate) SetNillableUpdatedAt(v *time.Time) *LabOrderCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetOrderNumber sets the "order_number" field.
func (_c *LabOrderCreate) SetOrderNumber(v string) *LabOrderCreate {
	_c.mutation.SetOrderNumber(v)
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *LabOrderCreate) SetPatientID(v uuid.UUID) *LabOrderCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetOrderedBy sets the "ordered_by" field.
func (_c *LabOrderCreate) SetOrderedBy(v uuid.UUID) *LabOrderCreate {
	_c.mutation.SetOrderedBy(v)
	return _c
}

// SetNillableOrderedBy sets the "ordered_by" field if the given value is not nil.
func (_c *LabOrderCreate) SetNillableOrderedBy(v *uuid.UUID) *LabOrderCreate {
	if v != nil {
		_c.SetOrderedBy(*v)
	}
	return _c
}

// SetPrescriptionID sets the "prescription_id" field.
func (_c *LabOrderCreate) SetPrescriptionID(v uuid.UUID) *LabOrderCreate {
	_c.mutation.SetPrescriptionID(v)
	return _c
}

// SetNillablePrescriptionID sets the "prescription_id" field if the given value is not nil.
func (_c *LabOrderCreate) SetNillablePrescriptionID(v *uuid.UUID) *LabOrderCreate {
	if v != nil {
		_c.SetPrescriptionID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *LabOrderCreate) SetStatus(v laborder.Status) *LabOrderCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *LabOrderCreate) SetNillableStatus(v *laborder.Status) *LabOrderCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTotalAmount sets the "total_amount" field.
func (_c *LabOrderCreate) SetTotalAmount(v int64) *LabOrderCreate {
	_c.mutation.SetTotalAmount(v)
	return _c
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_c *LabOrderCreate) SetNillableTotalAmount(v *int64) *LabOrderCreate {
	if v != nil {
		_c.SetTotalAmount(*v)
	}
	return _c
}

// SetAmountPaid sets the "amount_paid" field.
func (_c *LabOrderCreate) SetAmountPaid(v int64) *LabOrderCreate {
	_c.mutation.SetAmountPaid(v)
	return _c
}

// SetNillableAmountPaid sets the "amount_paid" field if the given value is not nil.
func (_c *LabOrderCreate) SetNillableAmountPaid(v *int64) *LabOrderCreate {
	if v != nil {
		_c.SetAmountPaid(*v)
	}
	return _c
}

// SetSampleCollectedAt sets the "sample_collected_at" field.
func (_c *LabOrderCreate) SetSampleCollectedAt(v time.Time) *LabOrderCreate {
	_c.mutation.SetSampleCollectedAt(v)
	return _c
}

// SetNillableSampleCollectedAt sets the "sample_collected_at" field if the given value is not nil.
func (_c *LabOrderCreate) SetNillableSampleCollectedAt(v *time.Time) *LabOrderCreate {
	if v != nil {
		_c.SetSampleCollectedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *LabOrderCreate) SetCompletedAt(v time.Time) *LabOrderCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *LabOrderCreate) SetNillableCompletedAt(v *time.Time) *LabOrderCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LabOrderCreate) SetID(v uuid.UUID) *LabOrderCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LabOrderCreate) SetNillableID(v *uuid.UUID) *LabOrderCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the LabOrderMutation object of the builder.
func (_c *LabOrderCreate) Mutation() *LabOrderMutation {
	return _c.mutation
}

// Save creates the LabOrder in the database.
func (_c *LabOrderCreate) Save(ctx context.Context) (*LabOrder, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LabOrderCreate) SaveX(ctx context.Context) *LabOrder {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LabOrderCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LabOrderCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LabOrderCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := laborder.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := laborder.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := laborder.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TotalAmount(); !ok {
		v := laborder.DefaultTotalAmount
		_c.mutation.SetTotalAmount(v)
	}
	if _, ok := _c.mutation.AmountPaid(); !ok {
		v := laborder.DefaultAmountPaid
		_c.mutation.SetAmountPaid(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := laborder.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LabOrderCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "LabOrder.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "LabOrder.updated_at"`)}
	}
	if _, ok := _c.mutation.OrderNumber(); !ok {
		return &ValidationError{Name: "order_number", err: errors.New(`repo: missing required field "LabOrder.order_number"`)}
	}
	if v, ok := _c.mutation.OrderNumber(); ok {
		if err := laborder.OrderNumberValidator(v); err != nil {
			return &ValidationError{Name: "order_number", err: fmt.Errorf(`repo: validator failed for field "LabOrder.order_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "LabOrder.patient_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "LabOrder.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := laborder.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "LabOrder.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalAmount(); !ok {
		return &ValidationError{Name: "total_amount", err: errors.New(`repo: missing required field "LabOrder.total_amount"`)}
	}
	if v, ok := _c.mutation.TotalAmount(); ok {
		if err := laborder.TotalAmountValidator(v); err != nil {
			return &ValidationError{Name: "total_amount", err: fmt.Errorf(`repo: validator failed for field "LabOrder.total_amount": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AmountPaid(); !ok {
		return &ValidationError{Name: "amount_paid", err: errors.New(`repo: missing required field "LabOrder.amount_paid"`)}
	}
	if v, ok := _c.mutation.AmountPaid(); ok {
		if err := laborder.AmountPaidValidator(v); err != nil {
			return &ValidationError{Name: "amount_paid", err: fmt.Errorf(`repo: validator failed for field "LabOrder.amount_paid": %w`, err)}
		}
	}
	return nil
}

func (_c *LabOrderCreate) sqlSave(ctx context.Context) (*LabOrder, error) {
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

func (_c *LabOrderCreate) createSpec() (*LabOrder, *sqlgraph.CreateSpec) {
	var (
		_node = &LabOrder{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(laborder.Table, sqlgraph.NewFieldSpec(laborder.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(laborder.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(laborder.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.OrderNumber(); ok {
		_spec.SetField(laborder.FieldOrderNumber, field.TypeString, value)
		_node.OrderNumber = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(laborder.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.OrderedBy(); ok {
		_spec.SetField(laborder.FieldOrderedBy, field.TypeUUID, value)
		_node.OrderedBy = &value
	}
	if value, ok := _c.mutation.PrescriptionID(); ok {
		_spec.SetField(laborder.FieldPrescriptionID, field.TypeUUID, value)
		_node.PrescriptionID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(laborder.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TotalAmount(); ok {
		_spec.SetField(laborder.FieldTotalAmount, field.TypeInt64, value)
		_node.TotalAmount = value
	}
	if value, ok := _c.mutation.AmountPaid(); ok {
		_spec.SetField(laborder.FieldAmountPaid, field.TypeInt64, value)
		_node.AmountPaid = value
	}
	if value, ok := _c.mutation.SampleCollectedAt(); ok {
		_spec.SetField(laborder.FieldSampleCollectedAt, field.TypeTime, value)
		_node.SampleCollectedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(laborder.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LabOrder.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LabOrderUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *LabOrderCreate) OnConflict(opts ...sql.ConflictOption) *LabOrderUpsertOne {
	_c.conflict = opts
	return &LabOrderUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LabOrder.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LabOrderCreate) OnConflictColumns(columns ...string) *LabOrderUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LabOrderUpsertOne{
		create: _c,
	}
}

type (
	// LabOrderUpsertOne is the builder for "upsert"-ing
	//  one LabOrder node.
	LabOrderUpsertOne struct {
		create *LabOrderCreate
	}

	// LabOrderUpsert is the "OnConflict" setter.
	LabOrderUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *LabOrderUpsert) SetUpdatedAt(v time.Time) *LabOrderUpsert {
	u.Set(laborder.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LabOrderUpsert) UpdateUpdatedAt() *LabOrderUpsert {
	u.SetExcluded(laborder.FieldUpdatedAt)
	return u
}

// SetOrderNumber sets the "order_number" field.
func (u *LabOrderUpsert) SetOrderNumber(v string) *LabOrderUpsert {
	u.Set(laborder.FieldOrderNumber, v)
	return u
}

// UpdateOrderNumber sets the "order_number" field to the value that was provided on create.
func (u *LabOrderUpsert) UpdateOrderNumber() *LabOrderUpsert {
	u.SetExcluded(laborder.FieldOrderNumber)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *LabOrderUpsert) SetPatientID(v uuid.UUID) *LabOrderUpsert {
	u.Set(laborder.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *LabOrderUpsert) UpdatePatientID() *LabOrderUpsert {
	u.SetExcluded(laborder.FieldPatientID)
	return u
}

// SetOrderedBy sets the "ordered_by" field.
func (u *LabOrderUpsert) SetOrderedBy(v uuid.UUID) *LabOrderUpsert {
	u.Set(laborder.FieldOrderedBy, v)
	return u
}

// UpdateOrderedBy sets the "ordered_by" field to the value that was provided on create.
func (u *LabOrderUpsert) UpdateOrderedBy() *LabOrderUpsert {
	u.SetExcluded(laborder.FieldOrderedBy)
	return u
}

// ClearOrderedBy clears the value of the "ordered_by" field.
func (u *LabOrderUpsert) ClearOrderedBy() *LabOrderUpsert {
	u.SetNull(laborder.FieldOrderedBy)
	return u
}

// SetPrescriptionID sets the "prescription_id" field.
func (u *LabOrderUpsert) SetPrescriptionID(v uuid.UUID) *LabOrderUpsert {
	u.Set(laborder.FieldPrescriptionID, v)
	return u
}

// UpdatePrescriptionID sets the "prescription_id" field to the value that was provided on create.
func (u *LabOrderUpsert) UpdatePrescriptionID() *LabOrderUpsert {
	u.SetExcluded(laborder.FieldPrescriptionID)
	return u
}

// ClearPrescriptionID clears the value of the "prescription_id" field.
func (u *LabOrderUpsert) ClearPrescriptionID() *LabOrderUpsert {
	u.SetNull(laborder.FieldPrescriptionID)
	return u
}

// SetStatus sets the "status" field.
func (u *LabOrderUpsert) SetStatus(v laborder.Status) *LabOrderUpsert {
	u.Set(laborder.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *LabOrderUpsert) UpdateStatus() *LabOrderUpsert {
	u.SetExcluded(laborder.FieldStatus)
	return u
}

// SetTotalAmount sets the "total_amount" field.
func (u *LabOrderUpsert) SetTotalAmount(v int64) *LabOrderUpsert {
	u.Set(laborder.FieldTotalAmount, v)
	return u
}

// UpdateTotalAmount sets the "total_amount" field to the value that was provided on create.
func (u *LabOrderUpsert) UpdateTotalAmount() *LabOrderUpsert {
	u.SetExcluded(laborder.FieldTotalAmount)
	return u
}

// AddTotalAmount adds v to the "total_amount" field.
func (u *LabOrderUpsert) AddTotalAmount(v int64) *LabOrderUpsert {
	u.Add(laborder.FieldTotalAmount, v)
	return u
}

// SetAmountPaid sets the "amount_paid" field.
func (u *LabOrderUpsert) SetAmountPaid(v int64) *LabOrderUpsert {
	u.Set(laborder.FieldAmountPaid, v)
	return u
}

// UpdateAmountPaid sets the "amount_paid" field to the value that was provided on create.
func (u *LabOrderUpsert) UpdateAmountPaid() *LabOrderUpsert {
	u.SetExcluded(laborder.FieldAmountPaid)
	return u
}

// AddAmountPaid adds v to the "amount_paid" field.
func (u *LabOrderUpsert) AddAmountPaid(v int64) *LabOrderUpsert {
	u.Add(laborder.FieldAmountPaid, v)
	return u
}

// SetSampleCollectedAt sets the "sample_collected_at" field.
func (u *LabOrderUpsert) SetSampleCollectedAt(v time.Time) *LabOrderUpsert {
	u.Set(laborder.FieldSampleCollectedAt, v)
	return u
}

// UpdateSampleCollectedAt sets the "sample_collected_at" field to the value that was provided on create.
func (u *LabOrderUpsert) UpdateSampleCollectedAt() *LabOrderUpsert {
	u.SetExcluded(laborder.FieldSampleCollectedAt)
	return u
}

// ClearSampleCollectedAt clears the value of the "sample_collected_at" field.
func (u *LabOrderUpsert) ClearSampleCollectedAt() *LabOrderUpsert {
	u.SetNull(laborder.FieldSampleCollectedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *LabOrderUpsert) SetCompletedAt(v time.Time) *LabOrderUpsert {
	u.Set(laborder.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *LabOrderUpsert) UpdateCompletedAt() *LabOrderUpsert {
	u.SetExcluded(laborder.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *LabOrderUpsert) ClearCompletedAt() *LabOrderUpsert {
	u.SetNull(laborder.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.LabOrder.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(laborder.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LabOrderUpsertOne) UpdateNewValues() *LabOrderUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(laborder.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(laborder.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LabOrder.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LabOrderUpsertOne) Ignore() *LabOrderUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LabOrderUpsertOne) DoNothing() *LabOrderUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LabOrderCreate.OnConflict
// documentation for more info.
func (u *LabOrderUpsertOne) Update(set func(*LabOrderUpsert)) *LabOrderUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LabOrderUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LabOrderUpsertOne) SetUpdatedAt(v time.Time) *LabOrderUpsertOne {
	return u.Update(func(s *LabOrderUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LabOrderUpsertOne) UpdateUpdatedAt() *LabOrderUpsertOne {
	return u.Update(func(s *LabOrderUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetOrderNumber sets the "order_number" field.
func (u *LabOrderUpsertOne) SetOrderNumber(v string) *LabOrderUpsertOne {
	return u.Update(func(s *LabOrderUpsert) {
		s.SetOrderNumber(v)
	})
}

// UpdateOrderNumber sets the "order_number" field to the value that was provided on create.
func (u *LabOrderUpsertOne) UpdateOrderNumber() *LabOrderUpsertOne {
	return u.Update(func(s *LabOrderUpsert) {
		s.UpdateOrderNumber()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *LabOrderUpsertOne) SetPatientID(v uuid.UUID) *LabOrderUpsertOne {
	return u.Update(func(s *LabOrderUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *LabOrderUpsertOne) UpdatePatientID() *LabOrderUpsertOne {
	return u.Update(func(s *LabOrderUpsert) {
		s.UpdatePatientID()
	})
}

// SetOrderedBy sets the "ordered_by" field.
func (u *LabOrderUpsertOne) SetOrderedBy(v uuid.UUID) *LabOrderUpsertOne {
	return u.Update(func(s *LabOrderUpsert) {
		s.SetOrderedBy(v)
	})
}

// UpdateOrderedBy sets the "ordered_by" field to the value that was provided on create.
func (u *LabOrderUpsertOne) UpdateOrderedBy() *LabOrderUpsertOne {
	return u.Update(func(s *LabOrderUpsert) {
		s.UpdateOrderedBy()
	})
}

// ClearOrderedBy clears the value of the "ordered_by" field.
func (u *LabOrderUpsertOne) ClearOrderedBy() *LabOrderUpsertOne {
	return u.Update(func(s *LabOrderUpsert) {
		s.ClearOrderedBy()
	})
}

// SetPrescriptionID sets the "prescription_id" field.
func (u *LabOrderUpsertOne) SetPrescriptionID(v uuid.UUID) *LabOrderUpsertOne {
	return u.Update(func(s *LabOrderUpsert) {
		s.SetPrescriptionID(v)
	})
}

// UpdatePrescriptionID sets the "prescription_id" field to the value that was provided on create.
func (u *LabOrderUpsertOne) UpdatePrescriptionID() *LabOrderUpsertOne {
	return u.Update(func(s *LabOrderUpsert) {
		s.UpdatePrescriptionID()
	})
}

// ClearPrescriptionID clears the value of the "prescription_id" field.
func (u *LabOrderUpsertOne) ClearPrescriptionID() *LabOrderUpsertOne {
	return u.Update(func(s *LabOrderUpsert) {
		s.ClearPrescriptionID()
	})
}

// SetStatus sets the "status" field.
func (u *LabOrderUpsertOne) SetStatus(v laborder.Status) *LabOrderUpsertOne {
	return u.Update(func(s *LabOrderUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *LabOrderUpsertOne) UpdateStatus() *LabOrderUpsertOne {
	return u.Update(func(s *LabOrderUpsert) {
		s.UpdateStatus()
	})
}

// SetTotalAmount sets the "total_amount" field.
func (u *LabOrderUpsertOne) SetTotalAmount(v int64) *LabOrderUpsertOne {
	return u.Update(func(s *LabOrderUpsert) {
		s.SetTotalAmount(v)
	})
}

// AddTotalAmount adds v to the "total_amount" field.
func (u *LabOrderUpsertOne) AddTotalAmount(v int64) *LabOrderUpsertOne {
	return u.Update(func(s *LabOrderUpsert) {
		s.AddTotalAmount(v)
	})
}

// UpdateTotalAmount sets the "total_amount" field to the value that was provided on create.
func (u *LabOrderUpsertOne) UpdateTotalAmount() *LabOrderUpsertOne {
	return u.Update(func(s *LabOrderUpsert) {
		s.UpdateTotalAmount()
	})
}

// SetAmountPaid sets the "amount_paid" field.
func (u *LabOrderUpsertOne) SetAmountPaid(v int64) *LabOrderUpsertOne {
	return u.Update(func(s *LabOrderUpsert) {
		s.SetAmountPaid(v)
	})
}

// AddAmountPaid adds v to the "amount_paid" field.
func (u *LabOrderUpsertOne) AddAmountPaid(v int64) *LabOrderUpsertOne {
	return u.Update(func(s *LabOrderUpsert) {
		s.AddAmountPaid(v)
	})
}

// UpdateAmountPaid sets the "amount_paid" field to the value that was provided on create.
func (u *LabOrderUpsertOne) UpdateAmountPaid() *LabOrderUpsertOne {
	return u.Update(func(s *LabOrderUpsert) {
		s.UpdateAmountPaid()
	})
}

// SetSampleCollectedAt sets the "sample_collected_at" field.
func (u *LabOrderUpsertOne) SetSampleCollectedAt(v time.Time) *LabOrderUpsertOne {
	return u.Update(func(s *LabOrderUpsert) {
		s.SetSampleCollectedAt(v)
	})
}

// UpdateSampleCollectedAt sets the "sample_collected_at" field to the value that was provided on create.
func (u *LabOrderUpsertOne) UpdateSampleCollectedAt() *LabOrderUpsertOne {
	return u.Update(func(s *LabOrderUpsert) {
		s.UpdateSampleCollectedAt()
	})
}

// ClearSampleCollectedAt clears the value of the "sample_collected_at" field.
func (u *LabOrderUpsertOne) ClearSampleCollectedAt() *LabOrderUpsertOne {
	return u.Update(func(s *LabOrderUpsert) {
		s.ClearSampleCollectedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *LabOrderUpsertOne) SetCompletedAt(v time.Time) *LabOrderUpsertOne {
	return u.Update(func(s *LabOrderUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *LabOrderUpsertOne) UpdateCompletedAt() *LabOrderUpsertOne {
	return u.Update(func(s *LabOrderUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *LabOrderUpsertOne) ClearCompletedAt() *LabOrderUpsertOne {
	return u.Update(func(s *LabOrderUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *LabOrderUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for LabOrderCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LabOrderUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LabOrderUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: LabOrderUpsertOne.ID is not supported by MySQL driver. Use LabOrderUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LabOrderUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LabOrderCreateBulk is the builder for creating many LabOrder entities in bulk.
type LabOrderCreateBulk struct {
	config
	err      error
	builders []*LabOrderCreate
	conflict []sql.ConflictOption
}

// Save creates the LabOrder entities in the database.
func (_c *LabOrderCreateBulk) Save(ctx context.Context) ([]*LabOrder, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LabOrder, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LabOrderMutation)
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
func (_c *LabOrderCreateBulk) SaveX(ctx context.Context) []*LabOrder {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LabOrderCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LabOrderCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LabOrder.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LabOrderUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *LabOrderCreateBulk) OnConflict(opts ...sql.ConflictOption) *LabOrderUpsertBulk {
	_c.conflict = opts
	return &LabOrderUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LabOrder.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LabOrderCreateBulk) OnConflictColumns(columns ...string) *LabOrderUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LabOrderUpsertBulk{
		create: _c,
	}
}

// LabOrderUpsertBulk is the builder for "upsert"-ing
// a bulk of LabOrder nodes.
type LabOrderUpsertBulk struct {
	create *LabOrderCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LabOrder.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(laborder.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LabOrderUpsertBulk) UpdateNewValues() *LabOrderUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(laborder.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(laborder.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LabOrder.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LabOrderUpsertBulk) Ignore() *LabOrderUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LabOrderUpsertBulk) DoNothing() *LabOrderUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LabOrderCreateBulk.OnConflict
// documentation for more info.
func (u *LabOrderUpsertBulk) Update(set func(*LabOrderUpsert)) *LabOrderUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LabOrderUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LabOrderUpsertBulk) SetUpdatedAt(v time.Time) *LabOrderUpsertBulk {
	return u.Update(func(s *LabOrderUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LabOrderUpsertBulk) UpdateUpdatedAt() *LabOrderUpsertBulk {
	return u.Update(func(s *LabOrderUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetOrderNumber sets the "order_number" field.
func (u *LabOrderUpsertBulk) SetOrderNumber(v string) *LabOrderUpsertBulk {
	return u.Update(func(s *LabOrderUpsert) {
		s.SetOrderNumber(v)
	})
}

// UpdateOrderNumber sets the "order_number" field to the value that was provided on create.
func (u *LabOrderUpsertBulk) UpdateOrderNumber() *LabOrderUpsertBulk {
	return u.Update(func(s *LabOrderUpsert) {
		s.UpdateOrderNumber()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *LabOrderUpsertBulk) SetPatientID(v uuid.UUID) *LabOrderUpsertBulk {
	return u.Update(func(s *LabOrderUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *LabOrderUpsertBulk) UpdatePatientID() *LabOrderUpsertBulk {
	return u.Update(func(s *LabOrderUpsert) {
		s.UpdatePatientID()
	})
}

// SetOrderedBy sets the "ordered_by" field.
func (u *LabOrderUpsertBulk) SetOrderedBy(v uuid.UUID) *LabOrderUpsertBulk {
	return u.Update(func(s *LabOrderUpsert) {
		s.SetOrderedBy(v)
	})
}

// UpdateOrderedBy sets the "ordered_by" field to the value that was provided on create.
func (u *LabOrderUpsertBulk) UpdateOrderedBy() *LabOrderUpsertBulk {
	return u.Update(func(s *LabOrderUpsert) {
		s.UpdateOrderedBy()
	})
}

// ClearOrderedBy clears the value of the "ordered_by" field.
func (u *LabOrderUpsertBulk) ClearOrderedBy() *LabOrderUpsertBulk {
	return u.Update(func(s *LabOrderUpsert) {
		s.ClearOrderedBy()
	})
}

// SetPrescriptionID sets the "prescription_id" field.
func (u *LabOrderUpsertBulk) SetPrescriptionID(v uuid.UUID) *LabOrderUpsertBulk {
	return u.Update(func(s *LabOrderUpsert) {
		s.SetPrescriptionID(v)
	})
}

// UpdatePrescriptionID sets the "prescription_id" field to the value that was provided on create.
func (u *LabOrderUpsertBulk) UpdatePrescriptionID() *LabOrderUpsertBulk {
	return u.Update(func(s *LabOrderUpsert) {
		s.UpdatePrescriptionID()
	})
}

// ClearPrescriptionID clears the value of the "prescription_id" field.
func (u *LabOrderUpsertBulk) ClearPrescriptionID() *LabOrderUpsertBulk {
	return u.Update(func(s *LabOrderUpsert) {
		s.ClearPrescriptionID()
	})
}

// SetStatus sets the "status" field.
func (u *LabOrderUpsertBulk) SetStatus(v laborder.Status) *LabOrderUpsertBulk {
	return u.Update(func(s *LabOrderUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *LabOrderUpsertBulk) UpdateStatus() *LabOrderUpsertBulk {
	return u.Update(func(s *LabOrderUpsert) {
		s.UpdateStatus()
	})
}

// SetTotalAmount sets the "total_amount" field.
func (u *LabOrderUpsertBulk) SetTotalAmount(v int64) *LabOrderUpsertBulk {
	return u.Update(func(s *LabOrderUpsert) {
		s.SetTotalAmount(v)
	})
}

// AddTotalAmount adds v to the "total_amount" field.
func (u *LabOrderUpsertBulk) AddTotalAmount(v int64) *LabOrderUpsertBulk {
	return u.Update(func(s *LabOrderUpsert) {
		s.AddTotalAmount(v)
	})
}

// UpdateTotalAmount sets the "total_amount" field to the value that was provided on create.
func (u *LabOrderUpsertBulk) UpdateTotalAmount() *LabOrderUpsertBulk {
	return u.Update(func(s *LabOrderUpsert) {
		s.UpdateTotalAmount()
	})
}

// SetAmountPaid sets the "amount_paid" field.
func (u *LabOrderUpsertBulk) SetAmountPaid(v int64) *LabOrderUpsertBulk {
	return u.Update(func(s *LabOrderUpsert) {
		s.SetAmountPaid(v)
	})
}

// AddAmountPaid adds v to the "amount_paid" field.
func (u *LabOrderUpsertBulk) AddAmountPaid(v int64) *LabOrderUpsertBulk {
	return u.Update(func(s *LabOrderUpsert) {
		s.AddAmountPaid(v)
	})
}

// UpdateAmountPaid sets the "amount_paid" field to the value that was provided on create.
func (u *LabOrderUpsertBulk) UpdateAmountPaid() *LabOrderUpsertBulk {
	return u.Update(func(s *LabOrderUpsert) {
		s.UpdateAmountPaid()
	})
}

// SetSampleCollectedAt sets the "sample_collected_at" field.
func (u *LabOrderUpsertBulk) SetSampleCollectedAt(v time.Time) *LabOrderUpsertBulk {
	return u.Update(func(s *LabOrderUpsert) {
		s.SetSampleCollectedAt(v)
	})
}

// UpdateSampleCollectedAt sets the "sample_collected_at" field to the value that was provided on create.
func (u *LabOrderUpsertBulk) UpdateSampleCollectedAt() *LabOrderUpsertBulk {
	return u.Update(func(s *LabOrderUpsert) {
		s.UpdateSampleCollectedAt()
	})
}

// ClearSampleCollectedAt clears the value of the "sample_collected_at" field.
func (u *LabOrderUpsertBulk) ClearSampleCollectedAt() *LabOrderUpsertBulk {
	return u.Update(func(s *LabOrderUpsert) {
		s.ClearSampleCollectedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *LabOrderUpsertBulk) SetCompletedAt(v time.Time) *LabOrderUpsertBulk {
	return u.Update(func(s *LabOrderUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *LabOrderUpsertBulk) UpdateCompletedAt() *LabOrderUpsertBulk {
	return u.Update(func(s *LabOrderUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *LabOrderUpsertBulk) ClearCompletedAt() *LabOrderUpsertBulk {
	return u.Update(func(s *LabOrderUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *LabOrderUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the LabOrderCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for LabOrderCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LabOrderUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
