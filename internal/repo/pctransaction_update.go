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
	"github.com/niramoy/niramoy_backend/internal/repo/pctransaction"
	"github.com/niramoy/niramoy_backend/internal/repo/predicate"
)

// PCTransactionUpdate is the builder for updating PCTransaction entities.
type PCTransactionUpdate struct {
	config
	hooks    []Hook
	mutation *PCTransactionMutation
}

// Where appends a list predicates to the PCTransactionUpdate builder.
func (_u *PCTransactionUpdate) Where(ps ...predicate.PCTransaction) *PCTransactionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReferrerID sets the "referrer_id" field.
func (_u *PCTransactionUpdate) SetReferrerID(v uuid.UUID) *PCTransactionUpdate {
	_u.mutation.SetReferrerID(v)
	return _u
}

// SetNillableReferrerID sets the "referrer_id" field if the given value is not nil.
func (_u *PCTransactionUpdate) SetNillableReferrerID(v *uuid.UUID) *PCTransactionUpdate {
	if v != nil {
		_u.SetReferrerID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *PCTransactionUpdate) SetPatientID(v uuid.UUID) *PCTransactionUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *PCTransactionUpdate) SetNillablePatientID(v *uuid.UUID) *PCTransactionUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// ClearPatientID clears the value of the "patient_id" field.
func (_u *PCTransactionUpdate) ClearPatientID() *PCTransactionUpdate {
	_u.mutation.ClearPatientID()
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *PCTransactionUpdate) SetTotalAmount(v int64) *PCTransactionUpdate {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *PCTransactionUpdate) SetNillableTotalAmount(v *int64) *PCTransactionUpdate {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *PCTransactionUpdate) AddTotalAmount(v int64) *PCTransactionUpdate {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// SetCommissionAmount sets the "commission_amount" field.
func (_u *PCTransactionUpdate) SetCommissionAmount(v int64) *PCTransactionUpdate {
	_u.mutation.ResetCommissionAmount()
	_u.mutation.SetCommissionAmount(v)
	return _u
}

// SetNillableCommissionAmount sets the "commission_amount" field if the given value is not nil.
func (_u *PCTransactionUpdate) SetNillableCommissionAmount(v *int64) *PCTransactionUpdate {
	if v != nil {
		_u.SetCommissionAmount(*v)
	}
	return _u
}

// AddCommissionAmount adds value to the "commission_amount" field.
func (_u *PCTransactionUpdate) AddCommissionAmount(v int64) *PCTransactionUpdate {
	_u.mutation.AddCommissionAmount(v)
	return _u
}

// SetAdminShare sets the "admin_share" field.
func (_u *PCTransactionUpdate) SetAdminShare(v int64) *PCTransactionUpdate {
	_u.mutation.ResetAdminShare()
	_u.mutation.SetAdminShare(v)
	return _u
}

// SetNillableAdminShare sets the "admin_share" field if the given value is not nil.
func (_u *PCTransactionUpdate) SetNillableAdminShare(v *int64) *PCTransactionUpdate {
	if v != nil {
		_u.SetAdminShare(*v)
	}
	return _u
}

// AddAdminShare adds value to the "admin_share" field.
func (_u *PCTransactionUpdate) AddAdminShare(v int64) *PCTransactionUpdate {
	_u.mutation.AddAdminShare(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *PCTransactionUpdate) SetDescription(v string) *PCTransactionUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PCTransactionUpdate) SetNillableDescription(v *string) *PCTransactionUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PCTransactionUpdate) ClearDescription() *PCTransactionUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetOccurredAt sets the "occurred_at" field.
func (_u *PCTransactionUpdate) SetOccurredAt(v time.Time) *PCTransactionUpdate {
	_u.mutation.SetOccurredAt(v)
	return _u
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_u *PCTransactionUpdate) SetNillableOccurredAt(v *time.Time) *PCTransactionUpdate {
	if v != nil {
		_u.SetOccurredAt(*v)
	}
	return _u
}

// Mutation returns the PCTransactionMutation object of the builder.
func (_u *PCTransactionUpdate) Mutation() *PCTransactionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PCTransactionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PCTransactionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PCTransactionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PCTransactionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PCTransactionUpdate) check() error {
	if v, ok := _u.mutation.TotalAmount(); ok {
		if err := pctransaction.TotalAmountValidator(v); err != nil {
			return &ValidationError{Name: "total_amount", err: fmt.Errorf(`repo: validator failed for field "PCTransaction.total_amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CommissionAmount(); ok {
		if err := pctransaction.CommissionAmountValidator(v); err != nil {
			return &ValidationError{Name: "commission_amount", err: fmt.Errorf(`repo: validator failed for field "PCTransaction.commission_amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AdminShare(); ok {
		if err := pctransaction.AdminShareValidator(v); err != nil {
			return &ValidationError{Name: "admin_share", err: fmt.Errorf(`repo: validator failed for field "PCTransaction.admin_share": %w`, err)}
		}
	}
	return nil
}

func (_u *PCTransactionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pctransaction.Table, pctransaction.Columns, sqlgraph.NewFieldSpec(pctransaction.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ReferrerID(); ok {
		_spec.SetField(pctransaction.FieldReferrerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(pctransaction.FieldPatientID, field.TypeUUID, value)
	}
	if _u.mutation.PatientIDCleared() {
		_spec.ClearField(pctransaction.FieldPatientID, field.TypeUUID)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(pctransaction.FieldTotalAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(pctransaction.FieldTotalAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CommissionAmount(); ok {
		_spec.SetField(pctransaction.FieldCommissionAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCommissionAmount(); ok {
		_spec.AddField(pctransaction.FieldCommissionAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AdminShare(); ok {
		_spec.SetField(pctransaction.FieldAdminShare, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAdminShare(); ok {
		_spec.AddField(pctransaction.FieldAdminShare, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(pctransaction.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(pctransaction.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.OccurredAt(); ok {
		_spec.SetField(pctransaction.FieldOccurredAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pctransaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PCTransactionUpdateOne is the builder for updating a single PCTransaction entity.
type PCTransactionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PCTransactionMutation
}

// SetReferrerID sets the "referrer_id" field.
func (_u *PCTransactionUpdateOne) SetReferrerID(v uuid.UUID) *PCTransactionUpdateOne {
	_u.mutation.SetReferrerID(v)
	return _u
}

// SetNillableReferrerID sets the "referrer_id" field if the given value is not nil.
func (_u *PCTransactionUpdateOne) SetNillableReferrerID(v *uuid.UUID) *PCTransactionUpdateOne {
	if v != nil {
		_u.SetReferrerID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *PCTransactionUpdateOne) SetPatientID(v uuid.UUID) *PCTransactionUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *PCTransactionUpdateOne) SetNillablePatientID(v *uuid.UUID) *PCTransactionUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// ClearPatientID clears the value of the "patient_id" field.
func (_u *PCTransactionUpdateOne) ClearPatientID() *PCTransactionUpdateOne {
	_u.mutation.ClearPatientID()
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *PCTransactionUpdateOne) SetTotalAmount(v int64) *PCTransactionUpdateOne {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *PCTransactionUpdateOne) SetNillableTotalAmount(v *int64) *PCTransactionUpdateOne {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *PCTransactionUpdateOne) AddTotalAmount(v int64) *PCTransactionUpdateOne {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// SetCommissionAmount sets the "commission_amount" field.
func (_u *PCTransactionUpdateOne) SetCommissionAmount(v int64) *PCTransactionUpdateOne {
	_u.mutation.ResetCommissionAmount()
	_u.mutation.SetCommissionAmount(v)
	return _u
}

// SetNillableCommissionAmount sets the "commission_amount" field if the given value is not nil.
func (_u *PCTransactionUpdateOne) SetNillableCommissionAmount(v *int64) *PCTransactionUpdateOne {
	if v != nil {
		_u.SetCommissionAmount(*v)
	}
	return _u
}

// AddCommissionAmount adds value to the "commission_amount" field.
func (_u *PCTransactionUpdateOne) AddCommissionAmount(v int64) *PCTransactionUpdateOne {
	_u.mutation.AddCommissionAmount(v)
	return _u
}

// SetAdminShare sets the "admin_share" field.
func (_u *PCTransactionUpdateOne) SetAdminShare(v int64) *PCTransactionUpdateOne {
	_u.mutation.ResetAdminShare()
	_u.mutation.SetAdminShare(v)
	return _u
}

// SetNillableAdminShare sets the "admin_share" field if the given value is not nil.
func (_u *PCTransactionUpdateOne) SetNillableAdminShare(v *int64) *PCTransactionUpdateOne {
	if v != nil {
		_u.SetAdminShare(*v)
	}
	return _u
}

// AddAdminShare adds value to the "admin_share" field.
func (_u *PCTransactionUpdateOne) AddAdminShare(v int64) *PCTransactionUpdateOne {
	_u.mutation.AddAdminShare(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *PCTransactionUpdateOne) SetDescription(v string) *PCTransactionUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PCTransactionUpdateOne) SetNillableDescription(v *string) *PCTransactionUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PCTransactionUpdateOne) ClearDescription() *PCTransactionUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetOccurredAt sets the "occurred_at" field.
func (_u *PCTransactionUpdateOne) SetOccurredAt(v time.Time) *PCTransactionUpdateOne {
	_u.mutation.SetOccurredAt(v)
	return _u
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_u *PCTransactionUpdateOne) SetNillableOccurredAt(v *time.Time) *PCTransactionUpdateOne {
	if v != nil {
		_u.SetOccurredAt(*v)
	}
	return _u
}

// Mutation returns the PCTransactionMutation object of the builder.
func (_u *PCTransactionUpdateOne) Mutation() *PCTransactionMutation {
	return _u.mutation
}

// Where appends a list predicates to the PCTransactionUpdate builder.
func (_u *PCTransactionUpdateOne) Where(ps ...predicate.PCTransaction) *PCTransactionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PCTransactionUpdateOne) Select(field string, fields ...string) *PCTransactionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PCTransaction entity.
func (_u *PCTransactionUpdateOne) Save(ctx context.Context) (*PCTransaction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PCTransactionUpdateOne) SaveX(ctx context.Context) *PCTransaction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PCTransactionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PCTransactionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PCTransactionUpdateOne) check() error {
	if v, ok := _u.mutation.TotalAmount(); ok {
		if err := pctransaction.TotalAmountValidator(v); err != nil {
			return &ValidationError{Name: "total_amount", err: fmt.Errorf(`repo: validator failed for field "PCTransaction.total_amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CommissionAmount(); ok {
		if err := pctransaction.CommissionAmountValidator(v); err != nil {
			return &ValidationError{Name: "commission_amount", err: fmt.Errorf(`repo: validator failed for field "PCTransaction.commission_amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AdminShare(); ok {
		if err := pctransaction.AdminShareValidator(v); err != nil {
			return &ValidationError{Name: "admin_share", err: fmt.Errorf(`repo: validator failed for field "PCTransaction.admin_share": %w`, err)}
		}
	}
	return nil
}

func (_u *PCTransactionUpdateOne) sqlSave(ctx context.Context) (_node *PCTransaction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pctransaction.Table, pctransaction.Columns, sqlgraph.NewFieldSpec(pctransaction.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "PCTransaction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pctransaction.FieldID)
		for _, f := range fields {
			if !pctransaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != pctransaction.FieldID {
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
	if value, ok := _u.mutation.ReferrerID(); ok {
		_spec.SetField(pctransaction.FieldReferrerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(pctransaction.FieldPatientID, field.TypeUUID, value)
	}
	if _u.mutation.PatientIDCleared() {
		_spec.ClearField(pctransaction.FieldPatientID, field.TypeUUID)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(pctransaction.FieldTotalAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(pctransaction.FieldTotalAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CommissionAmount(); ok {
		_spec.SetField(pctransaction.FieldCommissionAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCommissionAmount(); ok {
		_spec.AddField(pctransaction.FieldCommissionAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AdminShare(); ok {
		_spec.SetField(pctransaction.FieldAdminShare, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAdminShare(); ok {
		_spec.AddField(pctransaction.FieldAdminShare, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(pctransaction.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(pctransaction.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.OccurredAt(); ok {
		_spec.SetField(pctransaction.FieldOccurredAt, field.TypeTime, value)
	}
	_node = &PCTransaction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pctransaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
