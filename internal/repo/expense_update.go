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
	"github.com/niramoy/niramoy_backend/internal/repo/expense"
	"github.com/niramoy/niramoy_backend/internal/repo/predicate"
)

// ExpenseUpdate is the builder for updating Expense entities.
type ExpenseUpdate struct {
	config
	hooks    []Hook
	mutation *ExpenseMutation
}

// Where appends a list predicates to the ExpenseUpdate builder.
func (_u *ExpenseUpdate) Where(ps ...predicate.Expense) *ExpenseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExpenseType sets the "expense_type" field.
func (_u *ExpenseUpdate) SetExpenseType(v expense.ExpenseType) *ExpenseUpdate {
	_u.mutation.SetExpenseType(v)
	return _u
}

// SetNillableExpenseType sets the "expense_type" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableExpenseType(v *expense.ExpenseType) *ExpenseUpdate {
	if v != nil {
		_u.SetExpenseType(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *ExpenseUpdate) SetAmount(v int64) *ExpenseUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableAmount(v *int64) *ExpenseUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *ExpenseUpdate) AddAmount(v int64) *ExpenseUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *ExpenseUpdate) SetDescription(v string) *ExpenseUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableDescription(v *string) *ExpenseUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ExpenseUpdate) ClearDescription() *ExpenseUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetRecordedBy sets the "recorded_by" field.
func (_u *ExpenseUpdate) SetRecordedBy(v uuid.UUID) *ExpenseUpdate {
	_u.mutation.SetRecordedBy(v)
	return _u
}

// SetNillableRecordedBy sets the "recorded_by" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableRecordedBy(v *uuid.UUID) *ExpenseUpdate {
	if v != nil {
		_u.SetRecordedBy(*v)
	}
	return _u
}

// ClearRecordedBy clears the value of the "recorded_by" field.
func (_u *ExpenseUpdate) ClearRecordedBy() *ExpenseUpdate {
	_u.mutation.ClearRecordedBy()
	return _u
}

// SetIncurredAt sets the "incurred_at" field.
func (_u *ExpenseUpdate) SetIncurredAt(v time.Time) *ExpenseUpdate {
	_u.mutation.SetIncurredAt(v)
	return _u
}

// SetNillableIncurredAt sets the "incurred_at" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableIncurredAt(v *time.Time) *ExpenseUpdate {
	if v != nil {
		_u.SetIncurredAt(*v)
	}
	return _u
}

// Mutation returns the ExpenseMutation object of the builder.
func (_u *ExpenseUpdate) Mutation() *ExpenseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExpenseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExpenseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExpenseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExpenseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExpenseUpdate) check() error {
	if v, ok := _u.mutation.ExpenseType(); ok {
		if err := expense.ExpenseTypeValidator(v); err != nil {
			return &ValidationError{Name: "expense_type", err: fmt.Errorf(`repo: validator failed for field "Expense.expense_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Amount(); ok {
		if err := expense.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`repo: validator failed for field "Expense.amount": %w`, err)}
		}
	}
	return nil
}

func (_u *ExpenseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(expense.Table, expense.Columns, sqlgraph.NewFieldSpec(expense.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExpenseType(); ok {
		_spec.SetField(expense.FieldExpenseType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(expense.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(expense.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(expense.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(expense.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.RecordedBy(); ok {
		_spec.SetField(expense.FieldRecordedBy, field.TypeUUID, value)
	}
	if _u.mutation.RecordedByCleared() {
		_spec.ClearField(expense.FieldRecordedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.IncurredAt(); ok {
		_spec.SetField(expense.FieldIncurredAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{expense.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExpenseUpdateOne is the builder for updating a single Expense entity.
type ExpenseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExpenseMutation
}

// SetExpenseType sets the "expense_type" field.
func (_u *ExpenseUpdateOne) SetExpenseType(v expense.ExpenseType) *ExpenseUpdateOne {
	_u.mutation.SetExpenseType(v)
	return _u
}

// SetNillableExpenseType sets the "expense_type" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableExpenseType(v *expense.ExpenseType) *ExpenseUpdateOne {
	if v != nil {
		_u.SetExpenseType(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *ExpenseUpdateOne) SetAmount(v int64) *ExpenseUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableAmount(v *int64) *ExpenseUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *ExpenseUpdateOne) AddAmount(v int64) *ExpenseUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *ExpenseUpdateOne) SetDescription(v string) *ExpenseUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableDescription(v *string) *ExpenseUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ExpenseUpdateOne) ClearDescription() *ExpenseUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetRecordedBy sets the "recorded_by" field.
func (_u *ExpenseUpdateOne) SetRecordedBy(v uuid.UUID) *ExpenseUpdateOne {
	_u.mutation.SetRecordedBy(v)
	return _u
}

// SetNillableRecordedBy sets the "recorded_by" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableRecordedBy(v *uuid.UUID) *ExpenseUpdateOne {
	if v != nil {
		_u.SetRecordedBy(*v)
	}
	return _u
}

// ClearRecordedBy clears the value of the "recorded_by" field.
func (_u *ExpenseUpdateOne) ClearRecordedBy() *ExpenseUpdateOne {
	_u.mutation.ClearRecordedBy()
	return _u
}

// SetIncurredAt sets the "incurred_at" field.
func (_u *ExpenseUpdateOne) SetIncurredAt(v time.Time) *ExpenseUpdateOne {
	_u.mutation.SetIncurredAt(v)
	return _u
}

// SetNillableIncurredAt sets the "incurred_at" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableIncurredAt(v *time.Time) *ExpenseUpdateOne {
	if v != nil {
		_u.SetIncurredAt(*v)
	}
	return _u
}

// Mutation returns the ExpenseMutation object of the builder.
func (_u *ExpenseUpdateOne) Mutation() *ExpenseMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExpenseUpdate builder.
func (_u *ExpenseUpdateOne) Where(ps ...predicate.Expense) *ExpenseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExpenseUpdateOne) Select(field string, fields ...string) *ExpenseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Expense entity.
func (_u *ExpenseUpdateOne) Save(ctx context.Context) (*Expense, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExpenseUpdateOne) SaveX(ctx context.Context) *Expense {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExpenseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExpenseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExpenseUpdateOne) check() error {
	if v, ok := _u.mutation.ExpenseType(); ok {
		if err := expense.ExpenseTypeValidator(v); err != nil {
			return &ValidationError{Name: "expense_type", err: fmt.Errorf(`repo: validator failed for field "Expense.expense_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Amount(); ok {
		if err := expense.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`repo: validator failed for field "Expense.amount": %w`, err)}
		}
	}
	return nil
}

func (_u *ExpenseUpdateOne) sqlSave(ctx context.Context) (_node *Expense, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(expense.Table, expense.Columns, sqlgraph.NewFieldSpec(expense.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Expense.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, expense.FieldID)
		for _, f := range fields {
			if !expense.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != expense.FieldID {
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
	if value, ok := _u.mutation.ExpenseType(); ok {
		_spec.SetField(expense.FieldExpenseType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(expense.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(expense.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(expense.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(expense.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.RecordedBy(); ok {
		_spec.SetField(expense.FieldRecordedBy, field.TypeUUID, value)
	}
	if _u.mutation.RecordedByCleared() {
		_spec.ClearField(expense.FieldRecordedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.IncurredAt(); ok {
		_spec.SetField(expense.FieldIncurredAt, field.TypeTime, value)
	}
	_node = &Expense{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{expense.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
