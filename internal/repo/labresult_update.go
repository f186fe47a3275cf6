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
	"github.com/niramoy/niramoy_backend/internal/repo/labresult"
	"github.com/niramoy/niramoy_backend/internal/repo/predicate"
)

// LabResultUpdate is the builder for updating LabResult entities.
type LabResultUpdate struct {
	config
	hooks    []Hook
	mutation *LabResultMutation
}

// Where appends a list predicates to the LabResultUpdate builder.
func (_u *LabResultUpdate) Where(ps ...predicate.LabResult) *LabResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LabResultUpdate) SetUpdatedAt(v time.Time) *LabResultUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOrderID sets the "order_id" field.
func (_u *LabResultUpdate) SetOrderID(v uuid.UUID) *LabResultUpdate {
	_u.mutation.SetOrderID(v)
	return _u
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableOrderID(v *uuid.UUID) *LabResultUpdate {
	if v != nil {
		_u.SetOrderID(*v)
	}
	return _u
}

// SetTestID sets the "test_id" field.
func (_u *LabResultUpdate) SetTestID(v uuid.UUID) *LabResultUpdate {
	_u.mutation.SetTestID(v)
	return _u
}

// SetNillableTestID sets the "test_id" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableTestID(v *uuid.UUID) *LabResultUpdate {
	if v != nil {
		_u.SetTestID(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *LabResultUpdate) SetPrice(v int64) *LabResultUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillablePrice(v *int64) *LabResultUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *LabResultUpdate) AddPrice(v int64) *LabResultUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// SetResultValue sets the "result_value" field.
func (_u *LabResultUpdate) SetResultValue(v string) *LabResultUpdate {
	_u.mutation.SetResultValue(v)
	return _u
}

// SetNillableResultValue sets the "result_value" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableResultValue(v *string) *LabResultUpdate {
	if v != nil {
		_u.SetResultValue(*v)
	}
	return _u
}

// ClearResultValue clears the value of the "result_value" field.
func (_u *LabResultUpdate) ClearResultValue() *LabResultUpdate {
	_u.mutation.ClearResultValue()
	return _u
}

// SetUnit sets the "unit" field.
func (_u *LabResultUpdate) SetUnit(v string) *LabResultUpdate {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableUnit(v *string) *LabResultUpdate {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// ClearUnit clears the value of the "unit" field.
func (_u *LabResultUpdate) ClearUnit() *LabResultUpdate {
	_u.mutation.ClearUnit()
	return _u
}

// SetAbnormal sets the "abnormal" field.
func (_u *LabResultUpdate) SetAbnormal(v bool) *LabResultUpdate {
	_u.mutation.SetAbnormal(v)
	return _u
}

// SetNillableAbnormal sets the "abnormal" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableAbnormal(v *bool) *LabResultUpdate {
	if v != nil {
		_u.SetAbnormal(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *LabResultUpdate) SetStatus(v labresult.Status) *LabResultUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableStatus(v *labresult.Status) *LabResultUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEnteredBy sets the "entered_by" field.
func (_u *LabResultUpdate) SetEnteredBy(v uuid.UUID) *LabResultUpdate {
	_u.mutation.SetEnteredBy(v)
	return _u
}

// SetNillableEnteredBy sets the "entered_by" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableEnteredBy(v *uuid.UUID) *LabResultUpdate {
	if v != nil {
		_u.SetEnteredBy(*v)
	}
	return _u
}

// ClearEnteredBy clears the value of the "entered_by" field.
func (_u *LabResultUpdate) ClearEnteredBy() *LabResultUpdate {
	_u.mutation.ClearEnteredBy()
	return _u
}

// SetVerifiedBy sets the "verified_by" field.
func (_u *LabResultUpdate) SetVerifiedBy(v uuid.UUID) *LabResultUpdate {
	_u.mutation.SetVerifiedBy(v)
	return _u
}

// SetNillableVerifiedBy sets the "verified_by" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableVerifiedBy(v *uuid.UUID) *LabResultUpdate {
	if v != nil {
		_u.SetVerifiedBy(*v)
	}
	return _u
}

// ClearVerifiedBy clears the value of the "verified_by" field.
func (_u *LabResultUpdate) ClearVerifiedBy() *LabResultUpdate {
	_u.mutation.ClearVerifiedBy()
	return _u
}

// SetVerifiedAt sets the "verified_at" field.
func (_u *LabResultUpdate) SetVerifiedAt(v time.Time) *LabResultUpdate {
	_u.mutation.SetVerifiedAt(v)
	return _u
}

// SetNillableVerifiedAt sets the "verified_at" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableVerifiedAt(v *time.Time) *LabResultUpdate {
	if v != nil {
		_u.SetVerifiedAt(*v)
	}
	return _u
}

// ClearVerifiedAt clears the value of the "verified_at" field.
func (_u *LabResultUpdate) ClearVerifiedAt() *LabResultUpdate {
	_u.mutation.ClearVerifiedAt()
	return _u
}

// Mutation returns the LabResultMutation object of the builder.
func (_u *LabResultUpdate) Mutation() *LabResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LabResultUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LabResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LabResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LabResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LabResultUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := labresult.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LabResultUpdate) check() error {
	if v, ok := _u.mutation.Price(); ok {
		if err := labresult.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`repo: validator failed for field "LabResult.price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Unit(); ok {
		if err := labresult.UnitValidator(v); err != nil {
			return &ValidationError{Name: "unit", err: fmt.Errorf(`repo: validator failed for field "LabResult.unit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := labresult.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "LabResult.status": %w`, err)}
		}
	}
	return nil
}

func (_u *LabResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(labresult.Table, labresult.Columns, sqlgraph.NewFieldSpec(labresult.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(labresult.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OrderID(); ok {
		_spec.SetField(labresult.FieldOrderID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TestID(); ok {
		_spec.SetField(labresult.FieldTestID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(labresult.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(labresult.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ResultValue(); ok {
		_spec.SetField(labresult.FieldResultValue, field.TypeString, value)
	}
	if _u.mutation.ResultValueCleared() {
		_spec.ClearField(labresult.FieldResultValue, field.TypeString)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(labresult.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.UnitCleared() {
		_spec.ClearField(labresult.FieldUnit, field.TypeString)
	}
	if value, ok := _u.mutation.Abnormal(); ok {
		_spec.SetField(labresult.FieldAbnormal, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(labresult.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EnteredBy(); ok {
		_spec.SetField(labresult.FieldEnteredBy, field.TypeUUID, value)
	}
	if _u.mutation.EnteredByCleared() {
		_spec.ClearField(labresult.FieldEnteredBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.VerifiedBy(); ok {
		_spec.SetField(labresult.FieldVerifiedBy, field.TypeUUID, value)
	}
	if _u.mutation.VerifiedByCleared() {
		_spec.ClearField(labresult.FieldVerifiedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.VerifiedAt(); ok {
		_spec.SetField(labresult.FieldVerifiedAt, field.TypeTime, value)
	}
	if _u.mutation.VerifiedAtCleared() {
		_spec.ClearField(labresult.FieldVerifiedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{labresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LabResultUpdateOne is the builder for updating a single LabResult entity.
type LabResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LabResultMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LabResultUpdateOne) SetUpdatedAt(v time.Time) *LabResultUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOrderID sets the "order_id" field.
func (_u *LabResultUpdateOne) SetOrderID(v uuid.UUID) *LabResultUpdateOne {
	_u.mutation.SetOrderID(v)
	return _u
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableOrderID(v *uuid.UUID) *LabResultUpdateOne {
	if v != nil {
		_u.SetOrderID(*v)
	}
	return _u
}

// SetTestID sets the "test_id" field.
func (_u *LabResultUpdateOne) SetTestID(v uuid.UUID) *LabResultUpdateOne {
	_u.mutation.SetTestID(v)
	return _u
}

// SetNillableTestID sets the "test_id" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableTestID(v *uuid.UUID) *LabResultUpdateOne {
	if v != nil {
		_u.SetTestID(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *LabResultUpdateOne) SetPrice(v int64) *LabResultUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillablePrice(v *int64) *LabResultUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *LabResultUpdateOne) AddPrice(v int64) *LabResultUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// SetResultValue sets the "result_value" field.
func (_u *LabResultUpdateOne) SetResultValue(v string) *LabResultUpdateOne {
	_u.mutation.SetResultValue(v)
	return _u
}

// SetNillableResultValue sets the "result_value" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableResultValue(v *string) *LabResultUpdateOne {
	if v != nil {
		_u.SetResultValue(*v)
	}
	return _u
}

// ClearResultValue clears the value of the "result_value" field.
func (_u *LabResultUpdateOne) ClearResultValue() *LabResultUpdateOne {
	_u.mutation.ClearResultValue()
	return _u
}

// SetUnit sets the "unit" field.
func (_u *LabResultUpdateOne) SetUnit(v string) *LabResultUpdateOne {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableUnit(v *string) *LabResultUpdateOne {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// ClearUnit clears the value of the "unit" field.
func (_u *LabResultUpdateOne) ClearUnit() *LabResultUpdateOne {
	_u.mutation.ClearUnit()
	return _u
}

// SetAbnormal sets the "abnormal" field.
func (_u *LabResultUpdateOne) SetAbnormal(v bool) *LabResultUpdateOne {
	_u.mutation.SetAbnormal(v)
	return _u
}

// SetNillableAbnormal sets the "abnormal" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableAbnormal(v *bool) *LabResultUpdateOne {
	if v != nil {
		_u.SetAbnormal(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *LabResultUpdateOne) SetStatus(v labresult.Status) *LabResultUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableStatus(v *labresult.Status) *LabResultUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEnteredBy sets the "entered_by" field.
func (_u *LabResultUpdateOne) SetEnteredBy(v uuid.UUID) *LabResultUpdateOne {
	_u.mutation.SetEnteredBy(v)
	return _u
}

// SetNillableEnteredBy sets the "entered_by" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableEnteredBy(v *uuid.UUID) *LabResultUpdateOne {
	if v != nil {
		_u.SetEnteredBy(*v)
	}
	return _u
}

// ClearEnteredBy clears the value of the "entered_by" field.
func (_u *LabResultUpdateOne) ClearEnteredBy() *LabResultUpdateOne {
	_u.mutation.ClearEnteredBy()
	return _u
}

// SetVerifiedBy sets the "verified_by" field.
func (_u *LabResultUpdateOne) SetVerifiedBy(v uuid.UUID) *LabResultUpdateOne {
	_u.mutation.SetVerifiedBy(v)
	return _u
}

// SetNillableVerifiedBy sets the "verified_by" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableVerifiedBy(v *uuid.UUID) *LabResultUpdateOne {
	if v != nil {
		_u.SetVerifiedBy(*v)
	}
	return _u
}

// ClearVerifiedBy clears the value of the "verified_by" field.
func (_u *LabResultUpdateOne) ClearVerifiedBy() *LabResultUpdateOne {
	_u.mutation.ClearVerifiedBy()
	return _u
}

// SetVerifiedAt sets the "verified_at" field.
func (_u *LabResultUpdateOne) SetVerifiedAt(v time.Time) *LabResultUpdateOne {
	_u.mutation.SetVerifiedAt(v)
	return _u
}

// SetNillableVerifiedAt sets the "verified_at" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableVerifiedAt(v *time.Time) *LabResultUpdateOne {
	if v != nil {
		_u.SetVerifiedAt(*v)
	}
	return _u
}

// ClearVerifiedAt clears the value of the "verified_at" field.
func (_u *LabResultUpdateOne) ClearVerifiedAt() *LabResultUpdateOne {
	_u.mutation.ClearVerifiedAt()
	return _u
}

// Mutation returns the LabResultMutation object of the builder.
func (_u *LabResultUpdateOne) Mutation() *LabResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the LabResultUpdate builder.
func (_u *LabResultUpdateOne) Where(ps ...predicate.LabResult) *LabResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LabResultUpdateOne) Select(field string, fields ...string) *LabResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LabResult entity.
func (_u *LabResultUpdateOne) Save(ctx context.Context) (*LabResult, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LabResultUpdateOne) SaveX(ctx context.Context) *LabResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LabResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LabResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LabResultUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := labresult.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LabResultUpdateOne) check() error {
	if v, ok := _u.mutation.Price(); ok {
		if err := labresult.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`repo: validator failed for field "LabResult.price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Unit(); ok {
		if err := labresult.UnitValidator(v); err != nil {
			return &ValidationError{Name: "unit", err: fmt.Errorf(`repo: validator failed for field "LabResult.unit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := labresult.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "LabResult.status": %w`, err)}
		}
	}
	return nil
}

func (_u *LabResultUpdateOne) sqlSave(ctx context.Context) (_node *LabResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(labresult.Table, labresult.Columns, sqlgraph.NewFieldSpec(labresult.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "LabResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, labresult.FieldID)
		for _, f := range fields {
			if !labresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != labresult.FieldID {
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
		_spec.SetField(labresult.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OrderID(); ok {
		_spec.SetField(labresult.FieldOrderID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TestID(); ok {
		_spec.SetField(labresult.FieldTestID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(labresult.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(labresult.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ResultValue(); ok {
		_spec.SetField(labresult.FieldResultValue, field.TypeString, value)
	}
	if _u.mutation.ResultValueCleared() {
		_spec.ClearField(labresult.FieldResultValue, field.TypeString)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(labresult.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.UnitCleared() {
		_spec.ClearField(labresult.FieldUnit, field.TypeString)
	}
	if value, ok := _u.mutation.Abnormal(); ok {
		_spec.SetField(labresult.FieldAbnormal, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(labresult.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EnteredBy(); ok {
		_spec.SetField(labresult.FieldEnteredBy, field.TypeUUID, value)
	}
	if _u.mutation.EnteredByCleared() {
		_spec.ClearField(labresult.FieldEnteredBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.VerifiedBy(); ok {
		_spec.SetField(labresult.FieldVerifiedBy, field.TypeUUID, value)
	}
	if _u.mutation.VerifiedByCleared() {
		_spec.ClearField(labresult.FieldVerifiedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.VerifiedAt(); ok {
		_spec.SetField(labresult.FieldVerifiedAt, field.TypeTime, value)
	}
	if _u.mutation.VerifiedAtCleared() {
		_spec.ClearField(labresult.FieldVerifiedAt, field.TypeTime)
	}
	_node = &LabResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{labresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
