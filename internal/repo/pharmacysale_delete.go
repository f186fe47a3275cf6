// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/niramoy/niramoy_backend/internal/repo/pharmacysale"
	"github.com/niramoy/niramoy_backend/internal/repo/predicate"
)

// PharmacySaleDelete is the builder for deleting a PharmacySale entity.
type PharmacySaleDelete struct {
	config
	hooks    []Hook
	mutation *PharmacySaleMutation
}

// Where appends a list predicates to the PharmacySaleDelete builder.
func (_d *PharmacySaleDelete) Where(ps ...predicate.PharmacySale) *PharmacySaleDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PharmacySaleDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PharmacySaleDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PharmacySaleDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(pharmacysale.Table, sqlgraph.NewFieldSpec(pharmacysale.FieldID, field.TypeUUID))
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

// PharmacySaleDeleteOne is the builder for deleting a single PharmacySale entity.
type PharmacySaleDeleteOne struct {
	_d *PharmacySaleDelete
}

// Where appends a list predicates to the PharmacySaleDelete builder.
func (_d *PharmacySaleDeleteOne) Where(ps ...predicate.PharmacySale) *PharmacySaleDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PharmacySaleDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{pharmacysale.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PharmacySaleDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
