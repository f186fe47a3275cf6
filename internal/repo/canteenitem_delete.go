// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/niramoy/niramoy_backend/internal/repo/canteenitem"
	"github.com/niramoy/niramoy_backend/internal/repo/predicate"
)

// CanteenItemDelete is the builder for deleting a CanteenItem entity.
type CanteenItemDelete struct {
	config
	hooks    []Hook
	mutation *CanteenItemMutation
}

// Where appends a list predicates to the CanteenItemDelete builder.
func (_d *CanteenItemDelete) Where(ps ...predicate.CanteenItem) *CanteenItemDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CanteenItemDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CanteenItemDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CanteenItemDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(canteenitem.Table, sqlgraph.NewFieldSpec(canteenitem.FieldID, field.TypeUUID))
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

// CanteenItemDeleteOne is the builder for deleting a single CanteenItem entity.
type CanteenItemDeleteOne struct {
	_d *CanteenItemDelete
}

// Where appends a list predicates to the CanteenItemDelete builder.
func (_d *CanteenItemDeleteOne) Where(ps ...predicate.CanteenItem) *CanteenItemDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CanteenItemDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{canteenitem.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CanteenItemDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
