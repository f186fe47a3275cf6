// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/niramoy/niramoy_backend/internal/repo/canteensaleitem"
	"github.com/niramoy/niramoy_backend/internal/repo/predicate"
)

// CanteenSaleItemUpdate is the builder for updating CanteenSaleItem entities.
type CanteenSaleItemUpdate struct {
	config
	hooks    []Hook
	mutation *CanteenSaleItemMutation
}

// Where appends a list predicates to the CanteenSaleItemUpdate builder.
func (_u *CanteenSaleItemUpdate) Where(ps ...predicate.CanteenSaleItem) *CanteenSaleItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSaleID sets the "sale_id" field.
func (_u *CanteenSaleItemUpdate) SetSaleID(v uuid.UUID) *CanteenSaleItemUpdate {
	_u.mutation.SetSaleID(v)
	return _u
}

// SetNillableSaleID sets the "sale_id" field if the given value is not nil.
func (_u *CanteenSaleItemUpdate) SetNillableSaleID(v *uuid.UUID) *CanteenSaleItemUpdate {
	if v != nil {
		_u.SetSaleID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *CanteenSaleItemUpdate) SetItemID(v uuid.UUID) *CanteenSaleItemUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *CanteenSaleItemUpdate) SetNillableItemID(v *uuid.UUID) *CanteenSaleItemUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *CanteenSaleItemUpdate) SetQuantity(v int) *CanteenSaleItemUpdate {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *CanteenSaleItemUpdate) SetNillableQuantity(v *int) *CanteenSaleItemUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *CanteenSaleItemUpdate) AddQuantity(v int) *CanteenSaleItemUpdate {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *CanteenSaleItemUpdate) SetUnitPrice(v int64) *CanteenSaleItemUpdate {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *CanteenSaleItemUpdate) SetNillableUnitPrice(v *int64) *CanteenSaleItemUpdate {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *CanteenSaleItemUpdate) AddUnitPrice(v int64) *CanteenSaleItemUpdate {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *CanteenSaleItemUpdate) SetSubtotal(v int64) *CanteenSaleItemUpdate {
	_u.mutation.ResetSubtotal()
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *CanteenSaleItemUpdate) SetNillableSubtotal(v *int64) *CanteenSaleItemUpdate {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// AddSubtotal adds value to the "subtotal" field.
func (_u *CanteenSaleItemUpdate) AddSubtotal(v int64) *CanteenSaleItemUpdate {
	_u.mutation.AddSubtotal(v)
	return _u
}

// Mutation returns the CanteenSaleItemMutation object of the builder.
func (_u *CanteenSaleItemUpdate) Mutation() *CanteenSaleItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CanteenSaleItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CanteenSaleItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CanteenSaleItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CanteenSaleItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CanteenSaleItemUpdate) check() error {
	if v, ok := _u.mutation.Quantity(); ok {
		if err := canteensaleitem.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`repo: validator failed for field "CanteenSaleItem.quantity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitPrice(); ok {
		if err := canteensaleitem.UnitPriceValidator(v); err != nil {
			return &ValidationError{Name: "unit_price", err: fmt.Errorf(`repo: validator failed for field "CanteenSaleItem.unit_price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subtotal(); ok {
		if err := canteensaleitem.SubtotalValidator(v); err != nil {
			return &ValidationError{Name: "subtotal", err: fmt.Errorf(`repo: validator failed for field "CanteenSaleItem.subtotal": %w`, err)}
		}
	}
	return nil
}

func (_u *CanteenSaleItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(canteensaleitem.Table, canteensaleitem.Columns, sqlgraph.NewFieldSpec(canteensaleitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SaleID(); ok {
		_spec.SetField(canteensaleitem.FieldSaleID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(canteensaleitem.FieldItemID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(canteensaleitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(canteensaleitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(canteensaleitem.FieldUnitPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(canteensaleitem.FieldUnitPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(canteensaleitem.FieldSubtotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSubtotal(); ok {
		_spec.AddField(canteensaleitem.FieldSubtotal, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{canteensaleitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CanteenSaleItemUpdateOne is the builder for updating a single CanteenSaleItem entity.
type CanteenSaleItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CanteenSaleItemMutation
}

// SetSaleID sets the "sale_id" field.
func (_u *CanteenSaleItemUpdateOne) SetSaleID(v uuid.UUID) *CanteenSaleItemUpdateOne {
	_u.mutation.SetSaleID(v)
	return _u
}

// SetNillableSaleID sets the "sale_id" field if the given value is not nil.
func (_u *CanteenSaleItemUpdateOne) SetNillableSaleID(v *uuid.UUID) *CanteenSaleItemUpdateOne {
	if v != nil {
		_u.SetSaleID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *CanteenSaleItemUpdateOne) SetItemID(v uuid.UUID) *CanteenSaleItemUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *CanteenSaleItemUpdateOne) SetNillableItemID(v *uuid.UUID) *CanteenSaleItemUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *CanteenSaleItemUpdateOne) SetQuantity(v int) *CanteenSaleItemUpdateOne {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *CanteenSaleItemUpdateOne) SetNillableQuantity(v *int) *CanteenSaleItemUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *CanteenSaleItemUpdateOne) AddQuantity(v int) *CanteenSaleItemUpdateOne {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *CanteenSaleItemUpdateOne) SetUnitPrice(v int64) *CanteenSaleItemUpdateOne {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *CanteenSaleItemUpdateOne) SetNillableUnitPrice(v *int64) *CanteenSaleItemUpdateOne {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *CanteenSaleItemUpdateOne) AddUnitPrice(v int64) *CanteenSaleItemUpdateOne {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *CanteenSaleItemUpdateOne) SetSubtotal(v int64) *CanteenSaleItemUpdateOne {
	_u.mutation.ResetSubtotal()
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *CanteenSaleItemUpdateOne) SetNillableSubtotal(v *int64) *CanteenSaleItemUpdateOne {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// AddSubtotal adds value to the "subtotal" field.
func (_u *CanteenSaleItemUpdateOne) AddSubtotal(v int64) *CanteenSaleItemUpdateOne {
	_u.mutation.AddSubtotal(v)
	return _u
}

// Mutation returns the CanteenSaleItemMutation object of the builder.
func (_u *CanteenSaleItemUpdateOne) Mutation() *CanteenSaleItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the CanteenSaleItemUpdate builder.
func (_u *CanteenSaleItemUpdateOne) Where(ps ...predicate.CanteenSaleItem) *CanteenSaleItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CanteenSaleItemUpdateOne) Select(field string, fields ...string) *CanteenSaleItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CanteenSaleItem entity.
func (_u *CanteenSaleItemUpdateOne) Save(ctx context.Context) (*CanteenSaleItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CanteenSaleItemUpdateOne) SaveX(ctx context.Context) *CanteenSaleItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CanteenSaleItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CanteenSaleItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CanteenSaleItemUpdateOne) check() error {
	if v, ok := _u.mutation.Quantity(); ok {
		if err := canteensaleitem.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`repo: validator failed for field "CanteenSaleItem.quantity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitPrice(); ok {
		if err := canteensaleitem.UnitPriceValidator(v); err != nil {
			return &ValidationError{Name: "unit_price", err: fmt.Errorf(`repo: validator failed for field "CanteenSaleItem.unit_price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subtotal(); ok {
		if err := canteensaleitem.SubtotalValidator(v); err != nil {
			return &ValidationError{Name: "subtotal", err: fmt.Errorf(`repo: validator failed for field "CanteenSaleItem.subtotal": %w`, err)}
		}
	}
	return nil
}

func (_u *CanteenSaleItemUpdateOne) sqlSave(ctx context.Context) (_node *CanteenSaleItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(canteensaleitem.Table, canteensaleitem.Columns, sqlgraph.NewFieldSpec(canteensaleitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "CanteenSaleItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, canteensaleitem.FieldID)
		for _, f := range fields {
			if !canteensaleitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != canteensaleitem.FieldID {
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
	if value, ok := _u.mutation.SaleID(); ok {
		_spec.SetField(canteensaleitem.FieldSaleID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(canteensaleitem.FieldItemID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(canteensaleitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(canteensaleitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(canteensaleitem.FieldUnitPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(canteensaleitem.FieldUnitPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(canteensaleitem.FieldSubtotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSubtotal(); ok {
		_spec.AddField(canteensaleitem.FieldSubtotal, field.TypeInt64, value)
	}
	_node = &CanteenSaleItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{canteensaleitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
