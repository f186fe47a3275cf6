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
	"github.com/niramoy/niramoy_backend/internal/repo/stockadjustment"
)

// StockAdjustmentUpdate is the builder for updating StockAdjustment entities.
type StockAdjustmentUpdate struct {
	config
	hooks    []Hook
	mutation *StockAdjustmentMutation
}

// Where appends a list predicates to the StockAdjustmentUpdate builder.
func (_u *StockAdjustmentUpdate) Where(ps ...predicate.StockAdjustment) *StockAdjustmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDrugID sets the "drug_id" field.
func (_u *StockAdjustmentUpdate) SetDrugID(v uuid.UUID) *StockAdjustmentUpdate {
	_u.mutation.SetDrugID(v)
	return _u
}

// SetNillableDrugID sets the "drug_id" field if the given value is not nil.
func (_u *StockAdjustmentUpdate) SetNillableDrugID(v *uuid.UUID) *StockAdjustmentUpdate {
	if v != nil {
		_u.SetDrugID(*v)
	}
	return _u
}

// SetDelta sets the "delta" field.
func (_u *StockAdjustmentUpdate) SetDelta(v int) *StockAdjustmentUpdate {
	_u.mutation.ResetDelta()
	_u.mutation.SetDelta(v)
	return _u
}

// SetNillableDelta sets the "delta" field if the given value is not nil.
func (_u *StockAdjustmentUpdate) SetNillableDelta(v *int) *StockAdjustmentUpdate {
	if v != nil {
		_u.SetDelta(*v)
	}
	return _u
}

// AddDelta adds value to the "delta" field.
func (_u *StockAdjustmentUpdate) AddDelta(v int) *StockAdjustmentUpdate {
	_u.mutation.AddDelta(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *StockAdjustmentUpdate) SetReason(v stockadjustment.Reason) *StockAdjustmentUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *StockAdjustmentUpdate) SetNillableReason(v *stockadjustment.Reason) *StockAdjustmentUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetNote sets the "note" field.
func (_u *StockAdjustmentUpdate) SetNote(v string) *StockAdjustmentUpdate {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *StockAdjustmentUpdate) SetNillableNote(v *string) *StockAdjustmentUpdate {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *StockAdjustmentUpdate) ClearNote() *StockAdjustmentUpdate {
	_u.mutation.ClearNote()
	return _u
}

// SetAdjustedBy sets the "adjusted_by" field.
func (_u *StockAdjustmentUpdate) SetAdjustedBy(v uuid.UUID) *StockAdjustmentUpdate {
	_u.mutation.SetAdjustedBy(v)
	return _u
}

// SetNillableAdjustedBy sets the "adjusted_by" field if the given value is not nil.
func (_u *StockAdjustmentUpdate) SetNillableAdjustedBy(v *uuid.UUID) *StockAdjustmentUpdate {
	if v != nil {
		_u.SetAdjustedBy(*v)
	}
	return _u
}

// ClearAdjustedBy clears the value of the "adjusted_by" field.
func (_u *StockAdjustmentUpdate) ClearAdjustedBy() *StockAdjustmentUpdate {
	_u.mutation.ClearAdjustedBy()
	return _u
}

// Mutation returns the StockAdjustmentMutation object of the builder.
func (_u *StockAdjustmentUpdate) Mutation() *StockAdjustmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StockAdjustmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StockAdjustmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StockAdjustmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StockAdjustmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StockAdjustmentUpdate) check() error {
	if v, ok := _u.mutation.Reason(); ok {
		if err := stockadjustment.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`repo: validator failed for field "StockAdjustment.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *StockAdjustmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stockadjustment.Table, stockadjustment.Columns, sqlgraph.NewFieldSpec(stockadjustment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DrugID(); ok {
		_spec.SetField(stockadjustment.FieldDrugID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Delta(); ok {
		_spec.SetField(stockadjustment.FieldDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDelta(); ok {
		_spec.AddField(stockadjustment.FieldDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(stockadjustment.FieldReason, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(stockadjustment.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(stockadjustment.FieldNote, field.TypeString)
	}
	if value, ok := _u.mutation.AdjustedBy(); ok {
		_spec.SetField(stockadjustment.FieldAdjustedBy, field.TypeUUID, value)
	}
	if _u.mutation.AdjustedByCleared() {
		_spec.ClearField(stockadjustment.FieldAdjustedBy, field.TypeUUID)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stockadjustment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StockAdjustmentUpdateOne is the builder for updating a single StockAdjustment entity.
type StockAdjustmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StockAdjustmentMutation
}

// SetDrugID sets the "drug_id" field.
func (_u *StockAdjustmentUpdateOne) SetDrugID(v uuid.UUID) *StockAdjustmentUpdateOne {
	_u.mutation.SetDrugID(v)
	return _u
}

// SetNillableDrugID sets the "drug_id" field if the given value is not nil.
func (_u *StockAdjustmentUpdateOne) SetNillableDrugID(v *uuid.UUID) *StockAdjustmentUpdateOne {
	if v != nil {
		_u.SetDrugID(*v)
	}
	return _u
}

// SetDelta sets the "delta" field.
func (_u *StockAdjustmentUpdateOne) SetDelta(v int) *StockAdjustmentUpdateOne {
	_u.mutation.ResetDelta()
	_u.mutation.SetDelta(v)
	return _u
}

// SetNillableDelta sets the "delta" field if the given value is not nil.
func (_u *StockAdjustmentUpdateOne) SetNillableDelta(v *int) *StockAdjustmentUpdateOne {
	if v != nil {
		_u.SetDelta(*v)
	}
	return _u
}

// AddDelta adds value to the "delta" field.
func (_u *StockAdjustmentUpdateOne) AddDelta(v int) *StockAdjustmentUpdateOne {
	_u.mutation.AddDelta(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *StockAdjustmentUpdateOne) SetReason(v stockadjustment.Reason) *StockAdjustmentUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *StockAdjustmentUpdateOne) SetNillableReason(v *stockadjustment.Reason) *StockAdjustmentUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetNote sets the "note" field.
func (_u *StockAdjustmentUpdateOne) SetNote(v string) *StockAdjustmentUpdateOne {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *StockAdjustmentUpdateOne) SetNillableNote(v *string) *StockAdjustmentUpdateOne {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *StockAdjustmentUpdateOne) ClearNote() *StockAdjustmentUpdateOne {
	_u.mutation.ClearNote()
	return _u
}

// SetAdjustedBy sets the "adjusted_by" field.
func (_u *StockAdjustmentUpdateOne) SetAdjustedBy(v uuid.UUID) *StockAdjustmentUpdateOne {
	_u.mutation.SetAdjustedBy(v)
	return _u
}

// SetNillableAdjustedBy sets the "adjusted_by" field if the given value is not nil.
func (_u *StockAdjustmentUpdateOne) SetNillableAdjustedBy(v *uuid.UUID) *StockAdjustmentUpdateOne {
	if v != nil {
		_u.SetAdjustedBy(*v)
	}
	return _u
}

// ClearAdjustedBy clears the value of the "adjusted_by" field.
func (_u *StockAdjustmentUpdateOne) ClearAdjustedBy() *StockAdjustmentUpdateOne {
	_u.mutation.ClearAdjustedBy()
	return _u
}

// Mutation returns the StockAdjustmentMutation object of the builder.
func (_u *StockAdjustmentUpdateOne) Mutation() *StockAdjustmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the StockAdjustmentUpdate builder.
func (_u *StockAdjustmentUpdateOne) Where(ps ...predicate.StockAdjustment) *StockAdjustmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StockAdjustmentUpdateOne) Select(field string, fields ...string) *StockAdjustmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StockAdjustment entity.
func (_u *StockAdjustmentUpdateOne) Save(ctx context.Context) (*StockAdjustment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StockAdjustmentUpdateOne) SaveX(ctx context.Context) *StockAdjustment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StockAdjustmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StockAdjustmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StockAdjustmentUpdateOne) check() error {
	if v, ok := _u.mutation.Reason(); ok {
		if err := stockadjustment.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`repo: validator failed for field "StockAdjustment.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *StockAdjustmentUpdateOne) sqlSave(ctx context.Context) (_node *StockAdjustment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stockadjustment.Table, stockadjustment.Columns, sqlgraph.NewFieldSpec(stockadjustment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "StockAdjustment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stockadjustment.FieldID)
		for _, f := range fields {
			if !stockadjustment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != stockadjustment.FieldID {
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
	if value, ok := _u.mutation.DrugID(); ok {
		_spec.SetField(stockadjustment.FieldDrugID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Delta(); ok {
		_spec.SetField(stockadjustment.FieldDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDelta(); ok {
		_spec.AddField(stockadjustment.FieldDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(stockadjustment.FieldReason, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(stockadjustment.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(stockadjustment.FieldNote, field.TypeString)
	}
	if value, ok := _u.mutation.AdjustedBy(); ok {
		_spec.SetField(stockadjustment.FieldAdjustedBy, field.TypeUUID, value)
	}
	if _u.mutation.AdjustedByCleared() {
		_spec.ClearField(stockadjustment.FieldAdjustedBy, field.TypeUUID)
	}
	_node = &StockAdjustment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stockadjustment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
