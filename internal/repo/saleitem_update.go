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
	"github.com/niramoy/niramoy_backend/internal/repo/predicate"
	"github.com/niramoy/niramoy_backend/internal/repo/saleitem"
)

// SaleItemUpdate is the builder for updating SaleItem entities.
type SaleItemUpdate struct {
	config
	hooks    []Hook
	mutation *SaleItemMutation
}

// Where appends a list predicates to the SaleItemUpdate builder.
func (_u *SaleItemUpdate) Where(ps ...predicate.SaleItem) *SaleItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSaleID sets the "sale_id" field.
func (_u *SaleItemUpdate) SetSaleID(v uuid.UUID) *SaleItemUpdate {
	_u.mutation.SetSaleID(v)
	return _u
}

// SetNillableSaleID sets the "sale_id" field if the given value is not nil.
func (_u *SaleItemUpdate) SetNillableSaleID(v *uuid.UUID) *SaleItemUpdate {
	if v != nil {
		_u.SetSaleID(*v)
	}
	return _u
}

// SetDrugID sets the "drug_id" field.
func (_u *SaleItemUpdate) SetDrugID(v uuid.UUID) *SaleItemUpdate {
	_u.mutation.SetDrugID(v)
	return _u
}

// SetNillableDrugID sets the "drug_id" field if the given value is not nil.
func (_u *SaleItemUpdate) SetNillableDrugID(v *uuid.UUID) *SaleItemUpdate {
	if v != nil {
		_u.SetDrugID(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *SaleItemUpdate) SetQuantity(v int) *SaleItemUpdate {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *SaleItemUpdate) SetNillableQuantity(v *int) *SaleItemUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *SaleItemUpdate) AddQuantity(v int) *SaleItemUpdate {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *SaleItemUpdate) SetUnitPrice(v int64) *SaleItemUpdate {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *SaleItemUpdate) SetNillableUnitPrice(v *int64) *SaleItemUpdate {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *SaleItemUpdate) AddUnitPrice(v int64) *SaleItemUpdate {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *SaleItemUpdate) SetSubtotal(v int64) *SaleItemUpdate {
	_u.mutation.ResetSubtotal()
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *SaleItemUpdate) SetNillableSubtotal(v *int64) *SaleItemUpdate {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// AddSubtotal adds value to the "subtotal" field.
func (_u *SaleItemUpdate) AddSubtotal(v int64) *SaleItemUpdate {
	_u.mutation.AddSubtotal(v)
	return _u
}

// Mutation returns the SaleItemMutation object of the builder.
func (_u *SaleItemUpdate) Mutation() *SaleItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SaleItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SaleItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SaleItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SaleItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SaleItemUpdate) check() error {
	if v, ok := _u.mutation.Quantity(); ok {
		if err := saleitem.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`repo: validator failed for field "SaleItem.quantity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitPrice(); ok {
		if err := saleitem.UnitPriceValidator(v); err != nil {
			return &ValidationError{Name: "unit_price", err: fmt.Errorf(`repo: validator failed for field "SaleItem.unit_price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subtotal(); ok {
		if err := saleitem.SubtotalValidator(v); err != nil {
			return &ValidationError{Name: "subtotal", err: fmt.Errorf(`repo: validator failed for field "SaleItem.subtotal": %w`, err)}
		}
	}
	return nil
}

func (_u *SaleItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(saleitem.Table, saleitem.Columns, sqlgraph.NewFieldSpec(saleitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SaleID(); ok {
		_spec.SetField(saleitem.FieldSaleID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DrugID(); ok {
		_spec.SetField(saleitem.FieldDrugID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(saleitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(saleitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(saleitem.FieldUnitPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(saleitem.FieldUnitPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(saleitem.FieldSubtotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSubtotal(); ok {
		_spec.AddField(saleitem.FieldSubtotal, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{saleitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SaleItemUpdateOne is the builder for updating a single SaleItem entity.
type SaleItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SaleItemMutation
}

// SetSaleID sets the "sale_id" field.
func (_u *SaleItemUpdateOne) SetSaleID(v uuid.UUID) *SaleItemUpdateOne {
	_u.mutation.SetSaleID(v)
	return _u
}

// SetNillableSaleID sets the "sale_id" field if the given value is not nil.
func (_u *SaleItemUpdateOne) SetNillableSaleID(v *uuid.UUID) *SaleItemUpdateOne {
	if v != nil {
		_u.SetSaleID(*v)
	}
	return _u
}

// SetDrugID sets the "drug_id" field.
func (_u *SaleItemUpdateOne) SetDrugID(v uuid.UUID) *SaleItemUpdateOne {
	_u.mutation.SetDrugID(v)
	return _u
}

// SetNillableDrugID sets the "drug_id" field if the given value is not nil.
func (_u *SaleItemUpdateOne) SetNillableDrugID(v *uuid.UUID) *SaleItemUpdateOne {
	if v != nil {
		_u.SetDrugID(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *SaleItemUpdateOne) SetQuantity(v int) *SaleItemUpdateOne {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *SaleItemUpdateOne) SetNillableQuantity(v *int) *SaleItemUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *SaleItemUpdateOne) AddQuantity(v int) *SaleItemUpdateOne {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *SaleItemUpdateOne) SetUnitPrice(v int64) *SaleItemUpdateOne {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *SaleItemUpdateOne) SetNillableUnitPrice(v *int64) *SaleItemUpdateOne {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *SaleItemUpdateOne) AddUnitPrice(v int64) *SaleItemUpdateOne {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *SaleItemUpdateOne) SetSubtotal(v int64) *SaleItemUpdateOne {
	_u.mutation.ResetSubtotal()
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *SaleItemUpdateOne) SetNillableSubtotal(v *int64) *SaleItemUpdateOne {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// AddSubtotal adds value to the "subtotal" field.
func (_u *SaleItemUpdateOne) AddSubtotal(v int64) *SaleItemUpdateOne {
	_u.mutation.AddSubtotal(v)
	return _u
}

// Mutation returns the SaleItemMutation object of the builder.
func (_u *SaleItemUpdateOne) Mutation() *SaleItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the SaleItemUpdate builder.
func (_u *SaleItemUpdateOne) Where(ps ...predicate.SaleItem) *SaleItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SaleItemUpdateOne) Select(field string, fields ...string) *SaleItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SaleItem entity.
func (_u *SaleItemUpdateOne) Save(ctx context.Context) (*SaleItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SaleItemUpdateOne) SaveX(ctx context.Context) *SaleItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SaleItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SaleItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SaleItemUpdateOne) check() error {
	if v, ok := _u.mutation.Quantity(); ok {
		if err := saleitem.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`repo: validator failed for field "SaleItem.quantity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitPrice(); ok {
		if err := saleitem.UnitPriceValidator(v); err != nil {
			return &ValidationError{Name: "unit_price", err: fmt.Errorf(`repo: validator failed for field "SaleItem.unit_price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subtotal(); ok {
		if err := saleitem.SubtotalValidator(v); err != nil {
			return &ValidationError{Name: "subtotal", err: fmt.Errorf(`repo: validator failed for field "SaleItem.subtotal": %w`, err)}
		}
	}
	return nil
}

func (_u *SaleItemUpdateOne) sqlSave(ctx context.Context) (_node *SaleItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(saleitem.Table, saleitem.Columns, sqlgraph.NewFieldSpec(saleitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "SaleItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, saleitem.FieldID)
		for _, f := range fields {
			if !saleitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != saleitem.FieldID {
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
		_spec.SetField(saleitem.FieldSaleID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DrugID(); ok {
		_spec.SetField(saleitem.FieldDrugID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(saleitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(saleitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(saleitem.FieldUnitPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(saleitem.FieldUnitPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(saleitem.FieldSubtotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSubtotal(); ok {
		_spec.AddField(saleitem.FieldSubtotal, field.TypeInt64, value)
	}
	_node = &SaleItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{saleitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
