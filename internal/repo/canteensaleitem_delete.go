// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/niramoy/niramoy_backend/internal/repo/canteensaleitem"
	"github.com/niramoy/niramoy_backend/internal/repo/predicate"
)

// CanteenSaleItemDelete is the builder for deleting a CanteenSaleItem entity.
type CanteenSaleItemDelete struct {
	config
	hooks    []Hook
	mutation *CanteenSaleItemMutation
}

// Where appends a list predicates to the CanteenSaleItemDelete builder.
func (_d *CanteenSaleItemDelete) Where(ps ...predicate.CanteenSaleItem) *CanteenSaleItemDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CanteenSaleItemDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CanteenSaleItemDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CanteenSaleItemDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(canteensaleitem.Table, sqlgraph.NewFieldSpec(canteensaleitem.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// CanteenSaleItemDeleteOne is the builder for deleting a single CanteenSaleItem entity.
type CanteenSaleItemDeleteOne struct {
	_d *CanteenSaleItemDelete
}

// Where appends a list predicates to the CanteenSaleItemDelete builder.
func (_d *CanteenSaleItemDeleteOne) Where(ps ...predicate.CanteenSaleItem) *CanteenSaleItemDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CanteenSaleItemDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{canteensaleitem.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CanteenSaleItemDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
