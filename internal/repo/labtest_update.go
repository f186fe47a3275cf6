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
	"github.com/niramoy/niramoy_backend/internal/repo/labtest"
	"github.com/niramoy/niramoy_backend/internal/repo/predicate"
)

// LabTestUpdate is the builder for updating LabTest entities.
type LabTestUpdate struct {
	config
	hooks    []Hook
	mutation *LabTestMutation
}

// Where appends a list predicates to the LabTestUpdate builder.
func (_u *LabTestUpdate) Where(ps ...predicate.LabTest) *LabTestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LabTestUpdate) SetUpdatedAt(v time.Time) *LabTestUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *LabTestUpdate) SetName(v string) *LabTestUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LabTestUpdate) SetNillableName(v *string) *LabTestUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *LabTestUpdate) SetCode(v string) *LabTestUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *LabTestUpdate) SetNillableCode(v *string) *LabTestUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *LabTestUpdate) SetPrice(v int64) *LabTestUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *LabTestUpdate) SetNillablePrice(v *int64) *LabTestUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *LabTestUpdate) AddPrice(v int64) *LabTestUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// SetCategory sets the "category" field.
func (_u *LabTestUpdate) SetCategory(v string) *LabTestUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *LabTestUpdate) SetNillableCategory(v *string) *LabTestUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *LabTestUpdate) ClearCategory() *LabTestUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetSampleType sets the "sample_type" field.
func (_u *LabTestUpdate) SetSampleType(v string) *LabTestUpdate {
	_u.mutation.SetSampleType(v)
	return _u
}

// SetNillableSampleType sets the "sample_type" field if the given value is not nil.
func (_u *LabTestUpdate) SetNillableSampleType(v *string) *LabTestUpdate {
	if v != nil {
		_u.SetSampleType(*v)
	}
	return _u
}

// ClearSampleType clears the value of the "sample_type" field.
func (_u *LabTestUpdate) ClearSampleType() *LabTestUpdate {
	_u.mutation.ClearSampleType()
	return _u
}

// SetNormalRange sets the "normal_range" field.
func (_u *LabTestUpdate) SetNormalRange(v string) *LabTestUpdate {
	_u.mutation.SetNormalRange(v)
	return _u
}

// SetNillableNormalRange sets the "normal_range" field if the given value is not nil.
func (_u *LabTestUpdate) SetNillableNormalRange(v *string) *LabTestUpdate {
	if v != nil {
		_u.SetNormalRange(*v)
	}
	return _u
}

// ClearNormalRange clears the value of the "normal_range" field.
func (_u *LabTestUpdate) ClearNormalRange() *LabTestUpdate {
	_u.mutation.ClearNormalRange()
	return _u
}

// SetActive sets the "active" field.
func (_u *LabTestUpdate) SetActive(v bool) *LabTestUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *LabTestUpdate) SetNillableActive(v *bool) *LabTestUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the LabTestMutation object of the builder.
func (_u *LabTestUpdate) Mutation() *LabTestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LabTestUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LabTestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LabTestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LabTestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LabTestUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := labtest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LabTestUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := labtest.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "LabTest.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Code(); ok {
		if err := labtest.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`repo: validator failed for field "LabTest.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Price(); ok {
		if err := labtest.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`repo: validator failed for field "LabTest.price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := labtest.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`repo: validator failed for field "LabTest.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SampleType(); ok {
		if err := labtest.SampleTypeValidator(v); err != nil {
			return &ValidationError{Name: "sample_type", err: fmt.Errorf(`repo: validator failed for field "LabTest.sample_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NormalRange(); ok {
		if err := labtest.NormalRangeValidator(v); err != nil {
			return &ValidationError{Name: "normal_range", err: fmt.Errorf(`repo: validator failed for field "LabTest.normal_range": %w`, err)}
		}
	}
	return nil
}

func (_u *LabTestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(labtest.Table, labtest.Columns, sqlgraph.NewFieldSpec(labtest.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(labtest.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(labtest.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(labtest.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(labtest.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(labtest.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(labtest.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(labtest.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.SampleType(); ok {
		_spec.SetField(labtest.FieldSampleType, field.TypeString, value)
	}
	if _u.mutation.SampleTypeCleared() {
		_spec.ClearField(labtest.FieldSampleType, field.TypeString)
	}
	if value, ok := _u.mutation.NormalRange(); ok {
		_spec.SetField(labtest.FieldNormalRange, field.TypeString, value)
	}
	if _u.mutation.NormalRangeCleared() {
		_spec.ClearField(labtest.FieldNormalRange, field.TypeString)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(labtest.FieldActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{labtest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LabTestUpdateOne is the builder for updating a single LabTest entity.
type LabTestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LabTestMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LabTestUpdateOne) SetUpdatedAt(v time.Time) *LabTestUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *LabTestUpdateOne) SetName(v string) *LabTestUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LabTestUpdateOne) SetNillableName(v *string) *LabTestUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *LabTestUpdateOne) SetCode(v string) *LabTestUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *LabTestUpdateOne) SetNillableCode(v *string) *LabTestUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *LabTestUpdateOne) SetPrice(v int64) *LabTestUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *LabTestUpdateOne) SetNillablePrice(v *int64) *LabTestUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *LabTestUpdateOne) AddPrice(v int64) *LabTestUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// SetCategory sets the "category" field.
func (_u *LabTestUpdateOne) SetCategory(v string) *LabTestUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *LabTestUpdateOne) SetNillableCategory(v *string) *LabTestUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *LabTestUpdateOne) ClearCategory() *LabTestUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetSampleType sets the "sample_type" field.
func (_u *LabTestUpdateOne) SetSampleType(v string) *LabTestUpdateOne {
	_u.mutation.SetSampleType(v)
	return _u
}

// SetNillableSampleType sets the "sample_type" field if the given value is not nil.
func (_u *LabTestUpdateOne) SetNillableSampleType(v *string) *LabTestUpdateOne {
	if v != nil {
		_u.SetSampleType(*v)
	}
	return _u
}

// ClearSampleType clears the value of the "sample_type" field.
func (_u *LabTestUpdateOne) ClearSampleType() *LabTestUpdateOne {
	_u.mutation.ClearSampleType()
	return _u
}

// SetNormalRange sets the "normal_range" field.
func (_u *LabTestUpdateOne) SetNormalRange(v string) *LabTestUpdateOne {
	_u.mutation.SetNormalRange(v)
	return _u
}

// SetNillableNormalRange sets the "normal_range" field if the given value is not nil.
func (_u *LabTestUpdateOne) SetNillableNormalRange(v *string) *LabTestUpdateOne {
	if v != nil {
		_u.SetNormalRange(*v)
	}
	return _u
}

// ClearNormalRange clears the value of the "normal_range" field.
func (_u *LabTestUpdateOne) ClearNormalRange() *LabTestUpdateOne {
	_u.mutation.ClearNormalRange()
	return _u
}

// SetActive sets the "active" field.
func (_u *LabTestUpdateOne) SetActive(v bool) *LabTestUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *LabTestUpdateOne) SetNillableActive(v *bool) *LabTestUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the LabTestMutation object of the builder.
func (_u *LabTestUpdateOne) Mutation() *LabTestMutation {
	return _u.mutation
}

// Where appends a list predicates to the LabTestUpdate builder.
func (_u *LabTestUpdateOne) Where(ps ...predicate.LabTest) *LabTestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LabTestUpdateOne) Select(field string, fields ...string) *LabTestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LabTest entity.
func (_u *LabTestUpdateOne) Save(ctx context.Context) (*LabTest, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LabTestUpdateOne) SaveX(ctx context.Context) *LabTest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LabTestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LabTestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LabTestUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := labtest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LabTestUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := labtest.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "LabTest.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Code(); ok {
		if err := labtest.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`repo: validator failed for field "LabTest.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Price(); ok {
		if err := labtest.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`repo: validator failed for field "LabTest.price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := labtest.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`repo: validator failed for field "LabTest.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SampleType(); ok {
		if err := labtest.SampleTypeValidator(v); err != nil {
			return &ValidationError{Name: "sample_type", err: fmt.Errorf(`repo: validator failed for field "LabTest.sample_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NormalRange(); ok {
		if err := labtest.NormalRangeValidator(v); err != nil {
			return &ValidationError{Name: "normal_range", err: fmt.Errorf(`repo: validator failed for field "LabTest.normal_range": %w`, err)}
		}
	}
	return nil
}

func (_u *LabTestUpdateOne) sqlSave(ctx context.Context) (_node *LabTest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(labtest.Table, labtest.Columns, sqlgraph.NewFieldSpec(labtest.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "LabTest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, labtest.FieldID)
		for _, f := range fields {
			if !labtest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != labtest.FieldID {
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
		_spec.SetField(labtest.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(labtest.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(labtest.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(labtest.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(labtest.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(labtest.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(labtest.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.SampleType(); ok {
		_spec.SetField(labtest.FieldSampleType, field.TypeString, value)
	}
	if _u.mutation.SampleTypeCleared() {
		_spec.ClearField(labtest.FieldSampleType, field.TypeString)
	}
	if value, ok := _u.mutation.NormalRange(); ok {
		_spec.SetField(labtest.FieldNormalRange, field.TypeString, value)
	}
	if _u.mutation.NormalRangeCleared() {
		_spec.ClearField(labtest.FieldNormalRange, field.TypeString)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(labtest.FieldActive, field.TypeBool, value)
	}
	_node = &LabTest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{labtest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
