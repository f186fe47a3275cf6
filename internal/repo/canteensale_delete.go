// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/niramoy/niramoy_backend/internal/repo/canteensale"
	"github.com/niramoy/niramoy_backend/internal/repo/predicate"
)

// CanteenSaleDelete is the builder for deleting a CanteenSale entity.
type CanteenSaleDelete struct {
	config
	hooks    []Hook
	mutation *CanteenSaleMutation
}

// Where appends a list predicates to the CanteenSaleDelete builder.
func (_d *CanteenSaleDelete) Where(ps ...predicate.CanteenSale) *CanteenSaleDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CanteenSaleDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CanteenSaleDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CanteenSaleDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(canteensale.Table, sqlgraph.NewFieldSpec(canteensale.FieldID, field.TypeUUID))
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

// CanteenSaleDeleteOne is the builder for deleting a single CanteenSale entity.
type CanteenSaleDeleteOne struct {
	_d *CanteenSaleDelete
}

// Where appends a list predicates to the CanteenSaleDelete builder.
func (_d *CanteenSaleDeleteOne) Where(ps ...predicate.CanteenSale) *CanteenSaleDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CanteenSaleDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{canteensale.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CanteenSaleDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
