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
	"github.com/niramoy/niramoy_backend/internal/repo/pharmacysale"
	"github.com/niramoy/niramoy_backend/internal/repo/predicate"
)

// PharmacySaleUpdate is the builder for updating PharmacySale entities.
type PharmacySaleUpdate struct {
	config
	hooks    []Hook
	mutation *PharmacySaleMutation
}

// Where appends a list predicates to the PharmacySaleUpdate builder.
func (_u *PharmacySaleUpdate) Where(ps ...predicate.PharmacySale) *PharmacySaleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PharmacySaleUpdate) SetUpdatedAt(v time.Time) *PharmacySaleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSaleNumber sets the "sale_number" field.
func (_u *PharmacySaleUpdate) SetSaleNumber(v string) *PharmacySaleUpdate {
	_u.mutation.SetSaleNumber(v)
	return _u
}

// SetNillableSaleNumber sets the "sale_number" field if the given value is not nil.
func (_u *PharmacySaleUpdate) SetNillableSaleNumber(v *string) *PharmacySaleUpdate {
	if v != nil {
		_u.SetSaleNumber(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *PharmacySaleUpdate) SetPatientID(v uuid.UUID) *PharmacySaleUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *PharmacySaleUpdate) SetNillablePatientID(v *uuid.UUID) *PharmacySaleUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// ClearPatientID clears the value of the "patient_id" field.
func (_u *PharmacySaleUpdate) ClearPatientID() *PharmacySaleUpdate {
	_u.mutation.ClearPatientID()
	return _u
}

// SetPrescriptionID sets the "prescription_id" field.
func (_u *PharmacySaleUpdate) SetPrescriptionID(v uuid.UUID) *PharmacySaleUpdate {
	_u.mutation.SetPrescriptionID(v)
	return _u
}

// SetNillablePrescriptionID sets the "prescription_id" field if the given value is not nil.
func (_u *PharmacySaleUpdate) SetNillablePrescriptionID(v *uuid.UUID) *PharmacySaleUpdate {
	if v != nil {
		_u.SetPrescriptionID(*v)
	}
	return _u
}

// ClearPrescriptionID clears the value of the "prescription_id" field.
func (_u *PharmacySaleUpdate) ClearPrescriptionID() *PharmacySaleUpdate {
	_u.mutation.ClearPrescriptionID()
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *PharmacySaleUpdate) SetTotalAmount(v int64) *PharmacySaleUpdate {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *PharmacySaleUpdate) SetNillableTotalAmount(v *int64) *PharmacySaleUpdate {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *PharmacySaleUpdate) AddTotalAmount(v int64) *PharmacySaleUpdate {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// SetAmountPaid sets the "amount_paid" field.
func (_u *PharmacySaleUpdate) SetAmountPaid(v int64) *PharmacySaleUpdate {
	_u.mutation.ResetAmountPaid()
	_u.mutation.SetAmountPaid(v)
	return _u
}

// SetNillableAmountPaid sets the "amount_paid" field if the given value is not nil.
func (_u *PharmacySaleUpdate) SetNillableAmountPaid(v *int64) *PharmacySaleUpdate {
	if v != nil {
		_u.SetAmountPaid(*v)
	}
	return _u
}

// AddAmountPaid adds value to the "amount_paid" field.
func (_u *PharmacySaleUpdate) AddAmountPaid(v int64) *PharmacySaleUpdate {
	_u.mutation.AddAmountPaid(v)
	return _u
}

// SetSoldBy sets the "sold_by" field.
func (_u *PharmacySaleUpdate) SetSoldBy(v uuid.UUID) *PharmacySaleUpdate {
	_u.mutation.SetSoldBy(v)
	return _u
}

// SetNillableSoldBy sets the "sold_by" field if the given value is not nil.
func (_u *PharmacySaleUpdate) SetNillableSoldBy(v *uuid.UUID) *PharmacySaleUpdate {
	if v != nil {
		_u.SetSoldBy(*v)
	}
	return _u
}

// Mutation returns the PharmacySaleMutation object of the builder.
func (_u *PharmacySaleUpdate) Mutation() *PharmacySaleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PharmacySaleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PharmacySaleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PharmacySaleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PharmacySaleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PharmacySaleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pharmacysale.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PharmacySaleUpdate) check() error {
	if v, ok := _u.mutation.SaleNumber(); ok {
		if err := pharmacysale.SaleNumberValidator(v); err != nil {
			return &ValidationError{Name: "sale_number", err: fmt.Errorf(`repo: validator failed for field "PharmacySale.sale_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalAmount(); ok {
		if err := pharmacysale.TotalAmountValidator(v); err != nil {
			return &ValidationError{Name: "total_amount", err: fmt.Errorf(`repo: validator failed for field "PharmacySale.total_amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AmountPaid(); ok {
		if err := pharmacysale.AmountPaidValidator(v); err != nil {
			return &ValidationError{Name: "amount_paid", err: fmt.Errorf(`repo: validator failed for field "PharmacySale.amount_paid": %w`, err)}
		}
	}
	return nil
}

func (_u *PharmacySaleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pharmacysale.Table, pharmacysale.Columns, sqlgraph.NewFieldSpec(pharmacysale.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pharmacysale.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SaleNumber(); ok {
		_spec.SetField(pharmacysale.FieldSaleNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(pharmacysale.FieldPatientID, field.TypeUUID, value)
	}
	if _u.mutation.PatientIDCleared() {
		_spec.ClearField(pharmacysale.FieldPatientID, field.TypeUUID)
	}
	if value, ok := _u.mutation.PrescriptionID(); ok {
		_spec.SetField(pharmacysale.FieldPrescriptionID, field.TypeUUID, value)
	}
	if _u.mutation.PrescriptionIDCleared() {
		_spec.ClearField(pharmacysale.FieldPrescriptionID, field.TypeUUID)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(pharmacysale.FieldTotalAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(pharmacysale.FieldTotalAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AmountPaid(); ok {
		_spec.SetField(pharmacysale.FieldAmountPaid, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmountPaid(); ok {
		_spec.AddField(pharmacysale.FieldAmountPaid, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.SoldBy(); ok {
		_spec.SetField(pharmacysale.FieldSoldBy, field.TypeUUID, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pharmacysale.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PharmacySaleUpdateOne is the builder for updating a single PharmacySale entity.
type PharmacySaleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PharmacySaleMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PharmacySaleUpdateOne) SetUpdatedAt(v time.Time) *PharmacySaleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSaleNumber sets the "sale_number" field.
func (_u *PharmacySaleUpdateOne) SetSaleNumber(v string) *PharmacySaleUpdateOne {
	_u.mutation.SetSaleNumber(v)
	return _u
}

// SetNillableSaleNumber sets the "sale_number" field if the given value is not nil.
func (_u *PharmacySaleUpdateOne) SetNillableSaleNumber(v *string) *PharmacySaleUpdateOne {
	if v != nil {
		_u.SetSaleNumber(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *PharmacySaleUpdateOne) SetPatientID(v uuid.UUID) *PharmacySaleUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *PharmacySaleUpdateOne) SetNillablePatientID(v *uuid.UUID) *PharmacySaleUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// ClearPatientID clears the value of the "patient_id" field.
func (_u *PharmacySaleUpdateOne) ClearPatientID() *PharmacySaleUpdateOne {
	_u.mutation.ClearPatientID()
	return _u
}

// SetPrescriptionID sets the "prescription_id" field.
func (_u *PharmacySaleUpdateOne) SetPrescriptionID(v uuid.UUID) *PharmacySaleUpdateOne {
	_u.mutation.SetPrescriptionID(v)
	return _u
}

// SetNillablePrescriptionID sets the "prescription_id" field if the given value is not nil.
func (_u *PharmacySaleUpdateOne) SetNillablePrescriptionID(v *uuid.UUID) *PharmacySaleUpdateOne {
	if v != nil {
		_u.SetPrescriptionID(*v)
	}
	return _u
}

// ClearPrescriptionID clears the value of the "prescription_id" field.
func (_u *PharmacySaleUpdateOne) ClearPrescriptionID() *PharmacySaleUpdateOne {
	_u.mutation.ClearPrescriptionID()
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *PharmacySaleUpdateOne) SetTotalAmount(v int64) *PharmacySaleUpdateOne {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *PharmacySaleUpdateOne) SetNillableTotalAmount(v *int64) *PharmacySaleUpdateOne {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *PharmacySaleUpdateOne) AddTotalAmount(v int64) *PharmacySaleUpdateOne {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// SetAmountPaid sets the "amount_paid" field.
func (_u *PharmacySaleUpdateOne) SetAmountPaid(v int64) *PharmacySaleUpdateOne {
	_u.mutation.ResetAmountPaid()
	_u.mutation.SetAmountPaid(v)
	return _u
}

// SetNillableAmountPaid sets the "amount_paid" field if the given value is not nil.
func (_u *PharmacySaleUpdateOne) SetNillableAmountPaid(v *int64) *PharmacySaleUpdateOne {
	if v != nil {
		_u.SetAmountPaid(*v)
	}
	return _u
}

// AddAmountPaid adds value to the "amount_paid" field.
func (_u *PharmacySaleUpdateOne) AddAmountPaid(v int64) *PharmacySaleUpdateOne {
	_u.mutation.AddAmountPaid(v)
	return _u
}

// SetSoldBy sets the "sold_by" field.
func (_u *PharmacySaleUpdateOne) SetSoldBy(v uuid.UUID) *PharmacySaleUpdateOne {
	_u.mutation.SetSoldBy(v)
	return _u
}

// SetNillableSoldBy sets the "sold_by" field if the given value is not nil.
func (_u *PharmacySaleUpdateOne) SetNillableSoldBy(v *uuid.UUID) *PharmacySaleUpdateOne {
	if v != nil {
		_u.SetSoldBy(*v)
	}
	return _u
}

// Mutation returns the PharmacySaleMutation object of the builder.
func (_u *PharmacySaleUpdateOne) Mutation() *PharmacySaleMutation {
	return _u.mutation
}

// Where appends a list predicates to the PharmacySaleUpdate builder.
func (_u *PharmacySaleUpdateOne) Where(ps ...predicate.PharmacySale) *PharmacySaleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PharmacySaleUpdateOne) Select(field string, fields ...string) *PharmacySaleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PharmacySale entity.
func (_u *PharmacySaleUpdateOne) Save(ctx context.Context) (*PharmacySale, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PharmacySaleUpdateOne) SaveX(ctx context.Context) *PharmacySale {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PharmacySaleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PharmacySaleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PharmacySaleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pharmacysale.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PharmacySaleUpdateOne) check() error {
	if v, ok := _u.mutation.SaleNumber(); ok {
		if err := pharmacysale.SaleNumberValidator(v); err != nil {
			return &ValidationError{Name: "sale_number", err: fmt.Errorf(`repo: validator failed for field "PharmacySale.sale_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalAmount(); ok {
		if err := pharmacysale.TotalAmountValidator(v); err != nil {
			return &ValidationError{Name: "total_amount", err: fmt.Errorf(`repo: validator failed for field "PharmacySale.total_amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AmountPaid(); ok {
		if err := pharmacysale.AmountPaidValidator(v); err != nil {
			return &ValidationError{Name: "amount_paid", err: fmt.Errorf(`repo: validator failed for field "PharmacySale.amount_paid": %w`, err)}
		}
	}
	return nil
}

func (_u *PharmacySaleUpdateOne) sqlSave(ctx context.Context) (_node *PharmacySale, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pharmacysale.Table, pharmacysale.Columns, sqlgraph.NewFieldSpec(pharmacysale.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "PharmacySale.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pharmacysale.FieldID)
		for _, f := range fields {
			if !pharmacysale.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != pharmacysale.FieldID {
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
		_spec.SetField(pharmacysale.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SaleNumber(); ok {
		_spec.SetField(pharmacysale.FieldSaleNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(pharmacysale.FieldPatientID, field.TypeUUID, value)
	}
	if _u.mutation.PatientIDCleared() {
		_spec.ClearField(pharmacysale.FieldPatientID, field.TypeUUID)
	}
	if value, ok := _u.mutation.PrescriptionID(); ok {
		_spec.SetField(pharmacysale.FieldPrescriptionID, field.TypeUUID, value)
	}
	if _u.mutation.PrescriptionIDCleared() {
		_spec.ClearField(pharmacysale.FieldPrescriptionID, field.TypeUUID)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(pharmacysale.FieldTotalAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(pharmacysale.FieldTotalAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AmountPaid(); ok {
		_spec.SetField(pharmacysale.FieldAmountPaid, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmountPaid(); ok {
		_spec.AddField(pharmacysale.FieldAmountPaid, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.SoldBy(); ok {
		_spec.SetField(pharmacysale.FieldSoldBy, field.TypeUUID, value)
	}
	_node = &PharmacySale{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pharmacysale.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
