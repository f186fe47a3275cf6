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
	"github.com/niramoy/niramoy_backend/internal/repo/canteenitem"
	"github.com/niramoy/niramoy_backend/internal/repo/predicate"
)

// CanteenItemUpdate is the builder for updating CanteenItem entities.
type CanteenItemUpdate struct {
	config
	hooks    []Hook
	mutation *CanteenItemMutation
}

// Where appends a list predicates to the CanteenItemUpdate builder.
func (_u *CanteenItemUpdate) Where(ps ...predicate.CanteenItem) *CanteenItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CanteenItemUpdate) SetUpdatedAt(v time.Time) *CanteenItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *CanteenItemUpdate) SetName(v string) *CanteenItemUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CanteenItemUpdate) SetNillableName(v *string) *CanteenItemUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *CanteenItemUpdate) SetCategory(v string) *CanteenItemUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *CanteenItemUpdate) SetNillableCategory(v *string) *CanteenItemUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *CanteenItemUpdate) ClearCategory() *CanteenItemUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetPrice sets the "price" field.
func (_u *CanteenItemUpdate) SetPrice(v int64) *CanteenItemUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *CanteenItemUpdate) SetNillablePrice(v *int64) *CanteenItemUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *CanteenItemUpdate) AddPrice(v int64) *CanteenItemUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// SetAvailable sets the "available" field.
func (_u *CanteenItemUpdate) SetAvailable(v bool) *CanteenItemUpdate {
	_u.mutation.SetAvailable(v)
	return _u
}

// SetNillableAvailable sets the "available" field if the given value is not nil.
func (_u *CanteenItemUpdate) SetNillableAvailable(v *bool) *CanteenItemUpdate {
	if v != nil {
		_u.SetAvailable(*v)
	}
	return _u
}

// Mutation returns the CanteenItemMutation object of the builder.
func (_u *CanteenItemUpdate) Mutation() *CanteenItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CanteenItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CanteenItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CanteenItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CanteenItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CanteenItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := canteenitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CanteenItemUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := canteenitem.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "CanteenItem.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := canteenitem.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`repo: validator failed for field "CanteenItem.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Price(); ok {
		if err := canteenitem.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`repo: validator failed for field "CanteenItem.price": %w`, err)}
		}
	}
	return nil
}

func (_u *CanteenItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(canteenitem.Table, canteenitem.Columns, sqlgraph.NewFieldSpec(canteenitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(canteenitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(canteenitem.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(canteenitem.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(canteenitem.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(canteenitem.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(canteenitem.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Available(); ok {
		_spec.SetField(canteenitem.FieldAvailable, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{canteenitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CanteenItemUpdateOne is the builder for updating a single CanteenItem entity.
type CanteenItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CanteenItemMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CanteenItemUpdateOne) SetUpdatedAt(v time.Time) *CanteenItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *CanteenItemUpdateOne) SetName(v string) *CanteenItemUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CanteenItemUpdateOne) SetNillableName(v *string) *CanteenItemUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *CanteenItemUpdateOne) SetCategory(v string) *CanteenItemUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *CanteenItemUpdateOne) SetNillableCategory(v *string) *CanteenItemUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *CanteenItemUpdateOne) ClearCategory() *CanteenItemUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetPrice sets the "price" field.
func (_u *CanteenItemUpdateOne) SetPrice(v int64) *CanteenItemUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *CanteenItemUpdateOne) SetNillablePrice(v *int64) *CanteenItemUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *CanteenItemUpdateOne) AddPrice(v int64) *CanteenItemUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// SetAvailable sets the "available" field.
func (_u *CanteenItemUpdateOne) SetAvailable(v bool) *CanteenItemUpdateOne {
	_u.mutation.SetAvailable(v)
	return _u
}

// SetNillableAvailable sets the "available" field if the given value is not nil.
func (_u *CanteenItemUpdateOne) SetNillableAvailable(v *bool) *CanteenItemUpdateOne {
	if v != nil {
		_u.SetAvailable(*v)
	}
	return _u
}

// Mutation returns the CanteenItemMutation object of the builder.
func (_u *CanteenItemUpdateOne) Mutation() *CanteenItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the CanteenItemUpdate builder.
func (_u *CanteenItemUpdateOne) Where(ps ...predicate.CanteenItem) *CanteenItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CanteenItemUpdateOne) Select(field string, fields ...string) *CanteenItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CanteenItem entity.
func (_u *CanteenItemUpdateOne) Save(ctx context.Context) (*CanteenItem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CanteenItemUpdateOne) SaveX(ctx context.Context) *CanteenItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CanteenItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CanteenItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CanteenItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := canteenitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CanteenItemUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := canteenitem.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "CanteenItem.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := canteenitem.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`repo: validator failed for field "CanteenItem.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Price(); ok {
		if err := canteenitem.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`repo: validator failed for field "CanteenItem.price": %w`, err)}
		}
	}
	return nil
}

func (_u *CanteenItemUpdateOne) sqlSave(ctx context.Context) (_node *CanteenItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(canteenitem.Table, canteenitem.Columns, sqlgraph.NewFieldSpec(canteenitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "CanteenItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, canteenitem.FieldID)
		for _, f := range fields {
			if !canteenitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != canteenitem.FieldID {
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
		_spec.SetField(canteenitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(canteenitem.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(canteenitem.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(canteenitem.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(canteenitem.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(canteenitem.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Available(); ok {
		_spec.SetField(canteenitem.FieldAvailable, field.TypeBool, value)
	}
	_node = &CanteenItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{canteenitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
