// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/niramoy/niramoy_backend/internal/repo/predicate"
	"github.com/niramoy/niramoy_backend/internal/repo/prescriptionmedicine"
)

// PrescriptionMedicineDelete is the builder for deleting a PrescriptionMedicine entity.
type PrescriptionMedicineDelete struct {
	config
	hooks    []Hook
	mutation *PrescriptionMedicineMutation
}

// Where appends a list predicates to the PrescriptionMedicineDelete builder.
func (_d *PrescriptionMedicineDelete) Where(ps ...predicate.PrescriptionMedicine) *PrescriptionMedicineDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PrescriptionMedicineDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PrescriptionMedicineDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PrescriptionMedicineDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(prescriptionmedicine.Table, sqlgraph.NewFieldSpec(prescriptionmedicine.FieldID, field.TypeUUID))
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

// PrescriptionMedicineDeleteOne is the builder for deleting a single PrescriptionMedicine entity.
type PrescriptionMedicineDeleteOne struct {
	_d *PrescriptionMedicineDelete
}

// Where appends a list predicates to the PrescriptionMedicineDelete builder.
func (_d *PrescriptionMedicineDeleteOne) Where(ps ...predicate.PrescriptionMedicine) *PrescriptionMedicineDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PrescriptionMedicineDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{prescriptionmedicine.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PrescriptionMedicineDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
