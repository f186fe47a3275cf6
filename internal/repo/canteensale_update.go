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
	"github.com/niramoy/niramoy_backend/internal/repo/canteensale"
	"github.com/niramoy/niramoy_backend/internal/repo/predicate"
)

// CanteenSaleUpdate is the builder for updating CanteenSale entities.
type CanteenSaleUpdate struct {
	config
	hooks    []Hook
	mutation *CanteenSaleMutation
}

// Where appends a list predicates to the CanteenSaleUpdate builder.
func (_u *CanteenSaleUpdate) Where(ps ...predicate.CanteenSale) *CanteenSaleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CanteenSaleUpdate) SetUpdatedAt(v time.Time) *CanteenSaleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSaleNumber sets the "sale_number" field.
func (_u *CanteenSaleUpdate) SetSaleNumber(v string) *CanteenSaleUpdate {
	_u.mutation.SetSaleNumber(v)
	return _u
}

// SetNillableSaleNumber sets the "sale_number" field if the given value is not nil.
func (_u *CanteenSaleUpdate) SetNillableSaleNumber(v *string) *CanteenSaleUpdate {
	if v != nil {
		_u.SetSaleNumber(*v)
	}
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *CanteenSaleUpdate) SetTotalAmount(v int64) *CanteenSaleUpdate {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *CanteenSaleUpdate) SetNillableTotalAmount(v *int64) *CanteenSaleUpdate {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *CanteenSaleUpdate) AddTotalAmount(v int64) *CanteenSaleUpdate {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// SetAmountPaid sets the "amount_paid" field.
func (_u *CanteenSaleUpdate) SetAmountPaid(v int64) *CanteenSaleUpdate {
	_u.mutation.ResetAmountPaid()
	_u.mutation.SetAmountPaid(v)
	return _u
}

// SetNillableAmountPaid sets the "amount_paid" field if the given value is not nil.
func (_u *CanteenSaleUpdate) SetNillableAmountPaid(v *int64) *CanteenSaleUpdate {
	if v != nil {
		_u.SetAmountPaid(*v)
	}
	return _u
}

// AddAmountPaid adds value to the "amount_paid" field.
func (_u *CanteenSaleUpdate) AddAmountPaid(v int64) *CanteenSaleUpdate {
	_u.mutation.AddAmountPaid(v)
	return _u
}

// SetSoldBy sets the "sold_by" field.
func (_u *CanteenSaleUpdate) SetSoldBy(v uuid.UUID) *CanteenSaleUpdate {
	_u.mutation.SetSoldBy(v)
	return _u
}

// SetNillableSoldBy sets the "sold_by" field if the given value is not nil.
func (_u *CanteenSaleUpdate) SetNillableSoldBy(v *uuid.UUID) *CanteenSaleUpdate {
	if v != nil {
		_u.SetSoldBy(*v)
	}
	return _u
}

// Mutation returns the CanteenSaleMutation object of the builder.
func (_u *CanteenSaleUpdate) Mutation() *CanteenSaleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CanteenSaleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CanteenSaleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CanteenSaleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CanteenSaleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CanteenSaleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := canteensale.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CanteenSaleUpdate) check() error {
	if v, ok := _u.mutation.SaleNumber(); ok {
		if err := canteensale.SaleNumberValidator(v); err != nil {
			return &ValidationError{Name: "sale_number", err: fmt.Errorf(`repo: validator failed for field "CanteenSale.sale_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalAmount(); ok {
		if err := canteensale.TotalAmountValidator(v); err != nil {
			return &ValidationError{Name: "total_amount", err: fmt.Errorf(`repo: validator failed for field "CanteenSale.total_amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AmountPaid(); ok {
		if err := canteensale.AmountPaidValidator(v); err != nil {
			return &ValidationError{Name: "amount_paid", err: fmt.Errorf(`repo: validator failed for field "CanteenSale.amount_paid": %w`, err)}
		}
	}
	return nil
}

func (_u *CanteenSaleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(canteensale.Table, canteensale.Columns, sqlgraph.NewFieldSpec(canteensale.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(canteensale.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SaleNumber(); ok {
		_spec.SetField(canteensale.FieldSaleNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(canteensale.FieldTotalAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(canteensale.FieldTotalAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AmountPaid(); ok {
		_spec.SetField(canteensale.FieldAmountPaid, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmountPaid(); ok {
		_spec.AddField(canteensale.FieldAmountPaid, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.SoldBy(); ok {
		_spec.SetField(canteensale.FieldSoldBy, field.TypeUUID, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{canteensale.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CanteenSaleUpdateOne is the builder for updating a single CanteenSale entity.
type CanteenSaleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CanteenSaleMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CanteenSaleUpdateOne) SetUpdatedAt(v time.Time) *CanteenSaleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSaleNumber sets the "sale_number" field.
func (_u *CanteenSaleUpdateOne) SetSaleNumber(v string) *CanteenSaleUpdateOne {
	_u.mutation.SetSaleNumber(v)
	return _u
}

// SetNillableSaleNumber sets the "sale_number" field if the given value is not nil.
func (_u *CanteenSaleUpdateOne) SetNillableSaleNumber(v *string) *CanteenSaleUpdateOne {
	if v != nil {
		_u.SetSaleNumber(*v)
	}
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *CanteenSaleUpdateOne) SetTotalAmount(v int64) *CanteenSaleUpdateOne {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *CanteenSaleUpdateOne) SetNillableTotalAmount(v *int64) *CanteenSaleUpdateOne {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *CanteenSaleUpdateOne) AddTotalAmount(v int64) *CanteenSaleUpdateOne {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// SetAmountPaid sets the "amount_paid" field.
func (_u *CanteenSaleUpdateOne) SetAmountPaid(v int64) *CanteenSaleUpdateOne {
	_u.mutation.ResetAmountPaid()
	_u.mutation.SetAmountPaid(v)
	return _u
}

// SetNillableAmountPaid sets the "amount_paid" field if the given value is not nil.
func (_u *CanteenSaleUpdateOne) SetNillableAmountPaid(v *int64) *CanteenSaleUpdateOne {
	if v != nil {
		_u.SetAmountPaid(*v)
	}
	return _u
}

// AddAmountPaid adds value to the "amount_paid" field.
func (_u *CanteenSaleUpdateOne) AddAmountPaid(v int64) *CanteenSaleUpdateOne {
	_u.mutation.AddAmountPaid(v)
	return _u
}

// SetSoldBy sets the "sold_by" field.
func (_u *CanteenSaleUpdateOne) SetSoldBy(v uuid.UUID) *CanteenSaleUpdateOne {
	_u.mutation.SetSoldBy(v)
	return _u
}

// SetNillableSoldBy sets the "sold_by" field if the given value is not nil.
func (_u *CanteenSaleUpdateOne) SetNillableSoldBy(v *uuid.UUID) *CanteenSaleUpdateOne {
	if v != nil {
		_u.SetSoldBy(*v)
	}
	return _u
}

// Mutation returns the CanteenSaleMutation object of the builder.
func (_u *CanteenSaleUpdateOne) Mutation() *CanteenSaleMutation {
	return _u.mutation
}

// Where appends a list predicates to the CanteenSaleUpdate builder.
func (_u *CanteenSaleUpdateOne) Where(ps ...predicate.CanteenSale) *CanteenSaleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CanteenSaleUpdateOne) Select(field string, fields ...string) *CanteenSaleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CanteenSale entity.
func (_u *CanteenSaleUpdateOne) Save(ctx context.Context) (*CanteenSale, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CanteenSaleUpdateOne) SaveX(ctx context.Context) *CanteenSale {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CanteenSaleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CanteenSaleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CanteenSaleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := canteensale.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CanteenSaleUpdateOne) check() error {
	if v, ok := _u.mutation.SaleNumber(); ok {
		if err := canteensale.SaleNumberValidator(v); err != nil {
			return &ValidationError{Name: "sale_number", err: fmt.Errorf(`repo: validator failed for field "CanteenSale.sale_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalAmount(); ok {
		if err := canteensale.TotalAmountValidator(v); err != nil {
			return &ValidationError{Name: "total_amount", err: fmt.Errorf(`repo: validator failed for field "CanteenSale.total_amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AmountPaid(); ok {
		if err := canteensale.AmountPaidValidator(v); err != nil {
			return &ValidationError{Name: "amount_paid", err: fmt.Errorf(`repo: validator failed for field "CanteenSale.amount_paid": %w`, err)}
		}
	}
	return nil
}

func (_u *CanteenSaleUpdateOne) sqlSave(ctx context.Context) (_node *CanteenSale, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(canteensale.Table, canteensale.Columns, sqlgraph.NewFieldSpec(canteensale.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "CanteenSale.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, canteensale.FieldID)
		for _, f := range fields {
			if !canteensale.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != canteensale.FieldID {
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
		_spec.SetField(canteensale.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SaleNumber(); ok {
		_spec.SetField(canteensale.FieldSaleNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(canteensale.FieldTotalAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(canteensale.FieldTotalAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AmountPaid(); ok {
		_spec.SetField(canteensale.FieldAmountPaid, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmountPaid(); ok {
		_spec.AddField(canteensale.FieldAmountPaid, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.SoldBy(); ok {
		_spec.SetField(canteensale.FieldSoldBy, field.TypeUUID, value)
	}
	_node = &CanteenSale{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{canteensale.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
