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
	"github.com/niramoy/niramoy_backend/internal/repo/laborder"
	"github.com/niramoy/niramoy_backend/internal/repo/predicate"
)

// LabOrderUpdate is the builder for updating LabOrder entities.
type LabOrderUpdate struct {
	config
	hooks    []Hook
	mutation *LabOrderMutation
}

// Where appends a list predicates to the LabOrderUpdate builder.
func (_u *LabOrderUpdate) Where(ps ...predicate.LabOrder) *LabOrderUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LabOrderUpdate) SetUpdatedAt(v time.Time) *LabOrderUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOrderNumber sets the "order_number" field.
func (_u *LabOrderUpdate) SetOrderNumber(v string) *LabOrderUpdate {
	_u.mutation.SetOrderNumber(v)
	return _u
}

// SetNillableOrderNumber sets the "order_number" field if the given value is not nil.
func (_u *LabOrderUpdate) SetNillableOrderNumber(v *string) *LabOrderUpdate {
	if v != nil {
		_u.SetOrderNumber(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *LabOrderUpdate) SetPatientID(v uuid.UUID) *LabOrderUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *LabOrderUpdate) SetNillablePatientID(v *uuid.UUID) *LabOrderUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetOrderedBy sets the "ordered_by" field.
func (_u *LabOrderUpdate) SetOrderedBy(v uuid.UUID) *LabOrderUpdate {
	_u.mutation.SetOrderedBy(v)
	return _u
}

// SetNillableOrderedBy sets the "ordered_by" field if the given value is not nil.
func (_u *LabOrderUpdate) SetNillableOrderedBy(v *uuid.UUID) *LabOrderUpdate {
	if v != nil {
		_u.SetOrderedBy(*v)
	}
	return _u
}

// ClearOrderedBy clears the value of the "ordered_by" field.
func (_u *LabOrderUpdate) ClearOrderedBy() *LabOrderUpdate {
	_u.mutation.ClearOrderedBy()
	return _u
}

// SetPrescriptionID sets the "prescription_id" field.
func (_u *LabOrderUpdate) SetPrescriptionID(v uuid.UUID) *LabOrderUpdate {
	_u.mutation.SetPrescriptionID(v)
	return _u
}

// SetNillablePrescriptionID sets the "prescription_id" field if the given value is not nil.
func (_u *LabOrderUpdate) SetNillablePrescriptionID(v *uuid.UUID) *LabOrderUpdate {
	if v != nil {
		_u.SetPrescriptionID(*v)
	}
	return _u
}

// ClearPrescriptionID clears the value of the "prescription_id" field.
func (_u *LabOrderUpdate) ClearPrescriptionID() *LabOrderUpdate {
	_u.mutation.ClearPrescriptionID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *LabOrderUpdate) SetStatus(v laborder.Status) *LabOrderUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LabOrderUpdate) SetNillableStatus(v *laborder.Status) *LabOrderUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *LabOrderUpdate) SetTotalAmount(v int64) *LabOrderUpdate {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *LabOrderUpdate) SetNillableTotalAmount(v *int64) *LabOrderUpdate {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *LabOrderUpdate) AddTotalAmount(v int64) *LabOrderUpdate {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// SetAmountPaid sets the "amount_paid" field.
func (_u *LabOrderUpdate) SetAmountPaid(v int64) *LabOrderUpdate {
	_u.mutation.ResetAmountPaid()
	_u.mutation.SetAmountPaid(v)
	return _u
}

// SetNillableAmountPaid sets the "amount_paid" field if the given value is not nil.
func (_u *LabOrderUpdate) SetNillableAmountPaid(v *int64) *LabOrderUpdate {
	if v != nil {
		_u.SetAmountPaid(*v)
	}
	return _u
}

// AddAmountPaid adds value to the "amount_paid" field.
func (_u *LabOrderUpdate) AddAmountPaid(v int64) *LabOrderUpdate {
	_u.mutation.AddAmountPaid(v)
	return _u
}

// SetSampleCollectedAt sets the "sample_collected_at" field.
func (_u *LabOrderUpdate) SetSampleCollectedAt(v time.Time) *LabOrderUpdate {
	_u.mutation.SetSampleCollectedAt(v)
	return _u
}

// SetNillableSampleCollectedAt sets the "sample_collected_at" field if the given value is not nil.
func (_u *LabOrderUpdate) SetNillableSampleCollectedAt(v *time.Time) *LabOrderUpdate {
	if v != nil {
		_u.SetSampleCollectedAt(*v)
	}
	return _u
}

// ClearSampleCollectedAt clears the value of the "sample_collected_at" field.
func (_u *LabOrderUpdate) ClearSampleCollectedAt() *LabOrderUpdate {
	_u.mutation.ClearSampleCollectedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *LabOrderUpdate) SetCompletedAt(v time.Time) *LabOrderUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *LabOrderUpdate) SetNillableCompletedAt(v *time.Time) *LabOrderUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *LabOrderUpdate) ClearCompletedAt() *LabOrderUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the LabOrderMutation object of the builder.
func (_u *LabOrderUpdate) Mutation() *LabOrderMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LabOrderUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LabOrderUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LabOrderUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LabOrderUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LabOrderUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := laborder.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LabOrderUpdate) check() error {
	if v, ok := _u.mutation.OrderNumber(); ok {
		if err := laborder.OrderNumberValidator(v); err != nil {
			return &ValidationError{Name: "order_number", err: fmt.Errorf(`repo: validator failed for field "LabOrder.order_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := laborder.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "LabOrder.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalAmount(); ok {
		if err := laborder.TotalAmountValidator(v); err != nil {
			return &ValidationError{Name: "total_amount", err: fmt.Errorf(`repo: validator failed for field "LabOrder.total_amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AmountPaid(); ok {
		if err := laborder.AmountPaidValidator(v); err != nil {
			return &ValidationError{Name: "amount_paid", err: fmt.Errorf(`repo: validator failed for field "LabOrder.amount_paid": %w`, err)}
		}
	}
	return nil
}

func (_u *LabOrderUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(laborder.Table, laborder.Columns, sqlgraph.NewFieldSpec(laborder.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(laborder.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OrderNumber(); ok {
		_spec.SetField(laborder.FieldOrderNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(laborder.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.OrderedBy(); ok {
		_spec.SetField(laborder.FieldOrderedBy, field.TypeUUID, value)
	}
	if _u.mutation.OrderedByCleared() {
		_spec.ClearField(laborder.FieldOrderedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.PrescriptionID(); ok {
		_spec.SetField(laborder.FieldPrescriptionID, field.TypeUUID, value)
	}
	if _u.mutation.PrescriptionIDCleared() {
		_spec.ClearField(laborder.FieldPrescriptionID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(laborder.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(laborder.FieldTotalAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(laborder.FieldTotalAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AmountPaid(); ok {
		_spec.SetField(laborder.FieldAmountPaid, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmountPaid(); ok {
		_spec.AddField(laborder.FieldAmountPaid, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.SampleCollectedAt(); ok {
		_spec.SetField(laborder.FieldSampleCollectedAt, field.TypeTime, value)
	}
	if _u.mutation.SampleCollectedAtCleared() {
		_spec.ClearField(laborder.FieldSampleCollectedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(laborder.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(laborder.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{laborder.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LabOrderUpdateOne is the builder for updating a single LabOrder entity.
type LabOrderUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LabOrderMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LabOrderUpdateOne) SetUpdatedAt(v time.Time) *LabOrderUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOrderNumber sets the "order_number" field.
func (_u *LabOrderUpdateOne) SetOrderNumber(v string) *LabOrderUpdateOne {
	_u.mutation.SetOrderNumber(v)
	return _u
}

// SetNillableOrderNumber sets the "order_number" field if the given value is not nil.
func (_u *LabOrderUpdateOne) SetNillableOrderNumber(v *string) *LabOrderUpdateOne {
	if v != nil {
		_u.SetOrderNumber(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *LabOrderUpdateOne) SetPatientID(v uuid.UUID) *LabOrderUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *LabOrderUpdateOne) SetNillablePatientID(v *uuid.UUID) *LabOrderUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetOrderedBy sets the "ordered_by" field.
func (_u *LabOrderUpdateOne) SetOrderedBy(v uuid.UUID) *LabOrderUpdateOne {
	_u.mutation.SetOrderedBy(v)
	return _u
}

// SetNillableOrderedBy sets the "ordered_by" field if the given value is not nil.
func (_u *LabOrderUpdateOne) SetNillableOrderedBy(v *uuid.UUID) *LabOrderUpdateOne {
	if v != nil {
		_u.SetOrderedBy(*v)
	}
	return _u
}

// ClearOrderedBy clears the value of the "ordered_by" field.
func (_u *LabOrderUpdateOne) ClearOrderedBy() *LabOrderUpdateOne {
	_u.mutation.ClearOrderedBy()
	return _u
}

// SetPrescriptionID sets the "prescription_id" field.
func (_u *LabOrderUpdateOne) SetPrescriptionID(v uuid.UUID) *LabOrderUpdateOne {
	_u.mutation.SetPrescriptionID(v)
	return _u
}

// SetNillablePrescriptionID sets the "prescription_id" field if the given value is not nil.
func (_u *LabOrderUpdateOne) SetNillablePrescriptionID(v *uuid.UUID) *LabOrderUpdateOne {
	if v != nil {
		_u.SetPrescriptionID(*v)
	}
	return _u
}

// ClearPrescriptionID clears the value of the "prescription_id" field.
func (_u *LabOrderUpdateOne) ClearPrescriptionID() *LabOrderUpdateOne {
	_u.mutation.ClearPrescriptionID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *LabOrderUpdateOne) SetStatus(v laborder.Status) *LabOrderUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LabOrderUpdateOne) SetNillableStatus(v *laborder.Status) *LabOrderUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *LabOrderUpdateOne) SetTotalAmount(v int64) *LabOrderUpdateOne {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *LabOrderUpdateOne) SetNillableTotalAmount(v *int64) *LabOrderUpdateOne {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *LabOrderUpdateOne) AddTotalAmount(v int64) *LabOrderUpdateOne {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// SetAmountPaid sets the "amount_paid" field.
func (_u *LabOrderUpdateOne) SetAmountPaid(v int64) *LabOrderUpdateOne {
	_u.mutation.ResetAmountPaid()
	_u.mutation.SetAmountPaid(v)
	return _u
}

// SetNillableAmountPaid sets the "amount_paid" field if the given value is not nil.
func (_u *LabOrderUpdateOne) SetNillableAmountPaid(v *int64) *LabOrderUpdateOne {
	if v != nil {
		_u.SetAmountPaid(*v)
	}
	return _u
}

// AddAmountPaid adds value to the "amount_paid" field.
func (_u *LabOrderUpdateOne) AddAmountPaid(v int64) *LabOrderUpdateOne {
	_u.mutation.AddAmountPaid(v)
	return _u
}

// SetSampleCollectedAt sets the "sample_collected_at" field.
func (_u *LabOrderUpdateOne) SetSampleCollectedAt(v time.Time) *LabOrderUpdateOne {
	_u.mutation.SetSampleCollectedAt(v)
	return _u
}

// SetNillableSampleCollectedAt sets the "sample_collected_at" field if the given value is not nil.
func (_u *LabOrderUpdateOne) SetNillableSampleCollectedAt(v *time.Time) *LabOrderUpdateOne {
	if v != nil {
		_u.SetSampleCollectedAt(*v)
	}
	return _u
}

// ClearSampleCollectedAt clears the value of the "sample_collected_at" field.
func (_u *LabOrderUpdateOne) ClearSampleCollectedAt() *LabOrderUpdateOne {
	_u.mutation.ClearSampleCollectedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *LabOrderUpdateOne) SetCompletedAt(v time.Time) *LabOrderUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *LabOrderUpdateOne) SetNillableCompletedAt(v *time.Time) *LabOrderUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *LabOrderUpdateOne) ClearCompletedAt() *LabOrderUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the LabOrderMutation object of the builder.
func (_u *LabOrderUpdateOne) Mutation() *LabOrderMutation {
	return _u.mutation
}

// Where appends a list predicates to the LabOrderUpdate builder.
func (_u *LabOrderUpdateOne) Where(ps ...predicate.LabOrder) *LabOrderUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LabOrderUpdateOne) Select(field string, fields ...string) *LabOrderUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LabOrder entity.
func (_u *LabOrderUpdateOne) Save(ctx context.Context) (*LabOrder, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LabOrderUpdateOne) SaveX(ctx context.Context) *LabOrder {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LabOrderUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LabOrderUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LabOrderUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := laborder.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LabOrderUpdateOne) check() error {
	if v, ok := _u.mutation.OrderNumber(); ok {
		if err := laborder.OrderNumberValidator(v); err != nil {
			return &ValidationError{Name: "order_number", err: fmt.Errorf(`repo: validator failed for field "LabOrder.order_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := laborder.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "LabOrder.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalAmount(); ok {
		if err := laborder.TotalAmountValidator(v); err != nil {
			return &ValidationError{Name: "total_amount", err: fmt.Errorf(`repo: validator failed for field "LabOrder.total_amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AmountPaid(); ok {
		if err := laborder.AmountPaidValidator(v); err != nil {
			return &ValidationError{Name: "amount_paid", err: fmt.Errorf(`repo: validator failed for field "LabOrder.amount_paid": %w`, err)}
		}
	}
	return nil
}

func (_u *LabOrderUpdateOne) sqlSave(ctx context.Context) (_node *LabOrder, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(laborder.Table, laborder.Columns, sqlgraph.NewFieldSpec(laborder.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "LabOrder.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, laborder.FieldID)
		for _, f := range fields {
			if !laborder.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != laborder.FieldID {
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
		_spec.SetField(laborder.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OrderNumber(); ok {
		_spec.SetField(laborder.FieldOrderNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(laborder.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.OrderedBy(); ok {
		_spec.SetField(laborder.FieldOrderedBy, field.TypeUUID, value)
	}
	if _u.mutation.OrderedByCleared() {
		_spec.ClearField(laborder.FieldOrderedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.PrescriptionID(); ok {
		_spec.SetField(laborder.FieldPrescriptionID, field.TypeUUID, value)
	}
	if _u.mutation.PrescriptionIDCleared() {
		_spec.ClearField(laborder.FieldPrescriptionID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(laborder.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(laborder.FieldTotalAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(laborder.FieldTotalAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AmountPaid(); ok {
		_spec.SetField(laborder.FieldAmountPaid, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmountPaid(); ok {
		_spec.AddField(laborder.FieldAmountPaid, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.SampleCollectedAt(); ok {
		_spec.SetField(laborder.FieldSampleCollectedAt, field.TypeTime, value)
	}
	if _u.mutation.SampleCollectedAtCleared() {
		_spec.ClearField(laborder.FieldSampleCollectedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(laborder.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(laborder.FieldCompletedAt, field.TypeTime)
	}
	_node = &LabOrder{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{laborder.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
