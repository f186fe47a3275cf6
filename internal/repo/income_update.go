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
	"github.com/niramoy/niramoy_backend/internal/repo/income"
	"github.com/niramoy/niramoy_backend/internal/repo/predicate"
)

// IncomeUpdate is the builder for updating Income entities.
type IncomeUpdate struct {
	config
	hooks    []Hook
	mutation *IncomeMutation
}

// Where appends a list predicates to the IncomeUpdate builder.
func (_u *IncomeUpdate) Where(ps ...predicate.Income) *IncomeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSource sets the "source" field.
func (_u *IncomeUpdate) SetSource(v income.Source) *IncomeUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *IncomeUpdate) SetNillableSource(v *income.Source) *IncomeUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *IncomeUpdate) SetAmount(v int64) *IncomeUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *IncomeUpdate) SetNillableAmount(v *int64) *IncomeUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *IncomeUpdate) AddAmount(v int64) *IncomeUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *IncomeUpdate) SetDescription(v string) *IncomeUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *IncomeUpdate) SetNillableDescription(v *string) *IncomeUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *IncomeUpdate) ClearDescription() *IncomeUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetReferenceID sets the "reference_id" field.
func (_u *IncomeUpdate) SetReferenceID(v uuid.UUID) *IncomeUpdate {
	_u.mutation.SetReferenceID(v)
	return _u
}

// SetNillableReferenceID sets the "reference_id" field if the given value is not nil.
func (_u *IncomeUpdate) SetNillableReferenceID(v *uuid.UUID) *IncomeUpdate {
	if v != nil {
		_u.SetReferenceID(*v)
	}
	return _u
}

// ClearReferenceID clears the value of the "reference_id" field.
func (_u *IncomeUpdate) ClearReferenceID() *IncomeUpdate {
	_u.mutation.ClearReferenceID()
	return _u
}

// SetReceivedBy sets the "received_by" field.
func (_u *IncomeUpdate) SetReceivedBy(v uuid.UUID) *IncomeUpdate {
	_u.mutation.SetReceivedBy(v)
	return _u
}

// SetNillableReceivedBy sets the "received_by" field if the given value is not nil.
func (_u *IncomeUpdate) SetNillableReceivedBy(v *uuid.UUID) *IncomeUpdate {
	if v != nil {
		_u.SetReceivedBy(*v)
	}
	return _u
}

// ClearReceivedBy clears the value of the "received_by" field.
func (_u *IncomeUpdate) ClearReceivedBy() *IncomeUpdate {
	_u.mutation.ClearReceivedBy()
	return _u
}

// SetReceivedAt sets the "received_at" field.
func (_u *IncomeUpdate) SetReceivedAt(v time.Time) *IncomeUpdate {
	_u.mutation.SetReceivedAt(v)
	return _u
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_u *IncomeUpdate) SetNillableReceivedAt(v *time.Time) *IncomeUpdate {
	if v != nil {
		_u.SetReceivedAt(*v)
	}
	return _u
}

// Mutation returns the IncomeMutation object of the builder.
func (_u *IncomeUpdate) Mutation() *IncomeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IncomeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IncomeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IncomeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IncomeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IncomeUpdate) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := income.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`repo: validator failed for field "Income.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Amount(); ok {
		if err := income.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`repo: validator failed for field "Income.amount": %w`, err)}
		}
	}
	return nil
}

func (_u *IncomeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(income.Table, income.Columns, sqlgraph.NewFieldSpec(income.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(income.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(income.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(income.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(income.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(income.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ReferenceID(); ok {
		_spec.SetField(income.FieldReferenceID, field.TypeUUID, value)
	}
	if _u.mutation.ReferenceIDCleared() {
		_spec.ClearField(income.FieldReferenceID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ReceivedBy(); ok {
		_spec.SetField(income.FieldReceivedBy, field.TypeUUID, value)
	}
	if _u.mutation.ReceivedByCleared() {
		_spec.ClearField(income.FieldReceivedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.ReceivedAt(); ok {
		_spec.SetField(income.FieldReceivedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{income.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IncomeUpdateOne is the builder for updating a single Income entity.
type IncomeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IncomeMutation
}

// SetSource sets the "source" field.
func (_u *IncomeUpdateOne) SetSource(v income.Source) *IncomeUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *IncomeUpdateOne) SetNillableSource(v *income.Source) *IncomeUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *IncomeUpdateOne) SetAmount(v int64) *IncomeUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *IncomeUpdateOne) SetNillableAmount(v *int64) *IncomeUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *IncomeUpdateOne) AddAmount(v int64) *IncomeUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *IncomeUpdateOne) SetDescription(v string) *IncomeUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *IncomeUpdateOne) SetNillableDescription(v *string) *IncomeUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *IncomeUpdateOne) ClearDescription() *IncomeUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetReferenceID sets the "reference_id" field.
func (_u *IncomeUpdateOne) SetReferenceID(v uuid.UUID) *IncomeUpdateOne {
	_u.mutation.SetReferenceID(v)
	return _u
}

// SetNillableReferenceID sets the "reference_id" field if the given value is not nil.
func (_u *IncomeUpdateOne) SetNillableReferenceID(v *uuid.UUID) *IncomeUpdateOne {
	if v != nil {
		_u.SetReferenceID(*v)
	}
	return _u
}

// ClearReferenceID clears the value of the "reference_id" field.
func (_u *IncomeUpdateOne) ClearReferenceID() *IncomeUpdateOne {
	_u.mutation.ClearReferenceID()
	return _u
}

// SetReceivedBy sets the "received_by" field.
func (_u *IncomeUpdateOne) SetReceivedBy(v uuid.UUID) *IncomeUpdateOne {
	_u.mutation.SetReceivedBy(v)
	return _u
}

// SetNillableReceivedBy sets the "received_by" field if the given value is not nil.
func (_u *IncomeUpdateOne) SetNillableReceivedBy(v *uuid.UUID) *IncomeUpdateOne {
	if v != nil {
		_u.SetReceivedBy(*v)
	}
	return _u
}

// ClearReceivedBy clears the value of the "received_by" field.
func (_u *IncomeUpdateOne) ClearReceivedBy() *IncomeUpdateOne {
	_u.mutation.ClearReceivedBy()
	return _u
}

// SetReceivedAt sets the "received_at" field.
func (_u *IncomeUpdateOne) SetReceivedAt(v time.Time) *IncomeUpdateOne {
	_u.mutation.SetReceivedAt(v)
	return _u
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_u *IncomeUpdateOne) SetNillableReceivedAt(v *time.Time) *IncomeUpdateOne {
	if v != nil {
		_u.SetReceivedAt(*v)
	}
	return _u
}

// Mutation returns the IncomeMutation object of the builder.
func (_u *IncomeUpdateOne) Mutation() *IncomeMutation {
	return _u.mutation
}

// Where appends a list predicates to the IncomeUpdate builder.
func (_u *IncomeUpdateOne) Where(ps ...predicate.Income) *IncomeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IncomeUpdateOne) Select(field string, fields ...string) *IncomeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Income entity.
func (_u *IncomeUpdateOne) Save(ctx context.Context) (*Income, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IncomeUpdateOne) SaveX(ctx context.Context) *Income {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IncomeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IncomeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IncomeUpdateOne) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := income.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`repo: validator failed for field "Income.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Amount(); ok {
		if err := income.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`repo: validator failed for field "Income.amount": %w`, err)}
		}
	}
	return nil
}

func (_u *IncomeUpdateOne) sqlSave(ctx context.Context) (_node *Income, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(income.Table, income.Columns, sqlgraph.NewFieldSpec(income.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Income.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, income.FieldID)
		for _, f := range fields {
			if !income.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != income.FieldID {
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
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(income.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(income.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(income.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(income.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(income.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ReferenceID(); ok {
		_spec.SetField(income.FieldReferenceID, field.TypeUUID, value)
	}
	if _u.mutation.ReferenceIDCleared() {
		_spec.ClearField(income.FieldReferenceID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ReceivedBy(); ok {
		_spec.SetField(income.FieldReceivedBy, field.TypeUUID, value)
	}
	if _u.mutation.ReceivedByCleared() {
		_spec.ClearField(income.FieldReceivedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.ReceivedAt(); ok {
		_spec.SetField(income.FieldReceivedAt, field.TypeTime, value)
	}
	_node = &Income{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{income.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
