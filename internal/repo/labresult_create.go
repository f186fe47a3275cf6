// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/niramoy/niramoy_backend/internal/repo/labresult"
)

// LabResultCreate is the builder for creating a LabResult entity.
type LabResultCreate struct {
	config
	mutation *LabResultMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *LabResultCreate) SetCreatedAt(v time.Time) *LabResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableCreatedAt(v *time.Time) *LabResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LabResultCreate) SetUpdatedAt(v time.Time) *LabResultCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableUpdatedAt(v *time.Time) *LabResultCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetOrderID sets the "order_id" field.
func (_c *LabResultCreate) SetOrderID(v uuid.UUID) *LabResultCreate {
	_c.mutation.SetOrderID(v)
	return _c
}

// SetTestID sets the "test_id" field.
func (_c *LabResultCreate) SetTestID(v uuid.UUID) *LabResultCreate {
	_c.mutation.SetTestID(v)
	return _c
}

// SetPrice sets the "price" field.
func (_c *LabResultCreate) SetPrice(v int64) *LabResultCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetResultValue sets the "result_value" field.
func (_c *LabResultCreate) SetResultValue(v string) *LabResultCreate {
	_c.mutation.SetResultValue(v)
	return _c
}

// SetNillableResultValue sets the "result_value" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableResultValue(v *string) *LabResultCreate {
	if v != nil {
		_c.SetResultValue(*v)
	}
	return _c
}

// SetUnit sets the "unit" field.
func (_c *LabResultCreate) SetUnit(v string) *LabResultCreate {
	_c.mutation.SetUnit(v)
	return _c
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableUnit(v *string) *LabResultCreate {
	if v != nil {
		_c.SetUnit(*v)
	}
	return _c
}

// SetAbnormal sets the "abnormal" field.
func (_c *LabResultCreate) SetAbnormal(v bool) *LabResultCreate {
	_c.mutation.SetAbnormal(v)
	return _c
}

// SetNillableAbnormal sets the "abnormal" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableAbnormal(v *bool) *LabResultCreate {
	if v != nil {
		_c.SetAbnormal(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *LabResultCreate) SetStatus(v labresult.Status) *LabResultCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableStatus(v *labresult.Status) *LabResultCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetEnteredBy sets the "entered_by" field.
func (_c *LabResultCreate) SetEnteredBy(v uuid.UUID) *LabResultCreate {
	_c.mutation.SetEnteredBy(v)
	return _c
}

// SetNillableEnteredBy sets the "entered_by" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableEnteredBy(v *uuid.UUID) *LabResultCreate {
	if v != nil {
		_c.SetEnteredBy(*v)
	}
	return _c
}

// SetVerifiedBy sets the "verified_by" field.
func (_c *LabResultCreate) SetVerifiedBy(v uuid.UUID) *LabResultCreate {
	_c.mutation.SetVerifiedBy(v)
	return _c
}

// SetNillableVerifiedBy sets the "verified_by" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableVerifiedBy(v *uuid.UUID) *LabResultCreate {
	if v != nil {
		_c.SetVerifiedBy(*v)
	}
	return _c
}

// SetVerifiedAt sets the "verified_at" field.
func (_c *LabResultCreate) SetVerifiedAt(v time.Time) *LabResultCreate {
	_c.mutation.SetVerifiedAt(v)
	return _c
}

// SetNillableVerifiedAt sets the "verified_at" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableVerifiedAt(v *time.Time) *LabResultCreate {
	if v != nil {
		_c.SetVerifiedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LabResultCreate) SetID(v uuid.UUID) *LabResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableID(v *uuid.UUID) *LabResultCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the LabResultMutation object of the builder.
func (_c *LabResultCreate) Mutation() *LabResultMutation {
	return _c.mutation
}

// Save creates the LabResult in the database.
func (_c *LabResultCreate) Save(ctx context.Context) (*LabResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LabResultCreate) SaveX(ctx context.Context) *LabResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LabResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LabResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LabResultCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := labresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := labresult.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Abnormal(); !ok {
		v := labresult.DefaultAbnormal
		_c.mutation.SetAbnormal(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := labresult.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := labresult.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LabResultCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "LabResult.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "LabResult.updated_at"`)}
	}
	if _, ok := _c.mutation.OrderID(); !ok {
		return &ValidationError{Name: "order_id", err: errors.New(`repo: missing required field "LabResult.order_id"`)}
	}
	if _, ok := _c.mutation.TestID(); !ok {
		return &ValidationError{Name: "test_id", err: errors.New(`repo: missing required field "LabResult.test_id"`)}
	}
	if _, ok := _c.mutation.Price(); !ok {
		return &ValidationError{Name: "price", err: errors.New(`repo: missing required field "LabResult.price"`)}
	}
	if v, ok := _c.mutation.Price(); ok {
		if err := labresult.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`repo: validator failed for field "LabResult.price": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Unit(); ok {
		if err := labresult.UnitValidator(v); err != nil {
			return &ValidationError{Name: "unit", err: fmt.Errorf(`repo: validator failed for field "LabResult.unit": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Abnormal(); !ok {
		return &ValidationError{Name: "abnormal", err: errors.New(`repo: missing required field "LabResult.abnormal"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "LabResult.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := labresult.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "LabResult.status": %w`, err)}
		}
	}
	return nil
}

func (_c *LabResultCreate) sqlSave(ctx context.Context) (*LabResult, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LabResultCreate) createSpec() (*LabResult, *sqlgraph.CreateSpec) {
	var (
		_node = &LabResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(labresult.Table, sqlgraph.NewFieldSpec(labresult.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(labresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(labresult.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.OrderID(); ok {
		_spec.SetField(labresult.FieldOrderID, field.TypeUUID, value)
		_node.OrderID = value
	}
	if value, ok := _c.mutation.TestID(); ok {
		_spec.SetField(labresult.FieldTestID, field.TypeUUID, value)
		_node.TestID = value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(labresult.FieldPrice, field.TypeInt64, value)
		_node.Price = value
	}
	if value, ok := _c.mutation.ResultValue(); ok {
		_spec.SetField(labresult.FieldResultValue, field.TypeString, value)
		_node.ResultValue = &value
	}
	if value, ok := _c.mutation.Unit(); ok {
		_spec.SetField(labresult.FieldUnit, field.TypeString, value)
		_node.Unit = &value
	}
	if value, ok := _c.mutation.Abnormal(); ok {
		_spec.SetField(labresult.FieldAbnormal, field.TypeBool, value)
		_node.Abnormal = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(labresult.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.EnteredBy(); ok {
		_spec.SetField(labresult.FieldEnteredBy, field.TypeUUID, value)
		_node.EnteredBy = &value
	}
	if value, ok := _c.mutation.VerifiedBy(); ok {
		_spec.SetField(labresult.FieldVerifiedBy, field.TypeUUID, value)
		_node.VerifiedBy = &value
	}
	if value, ok := _c.mutation.VerifiedAt(); ok {
		_spec.SetField(labresult.FieldVerifiedAt, field.TypeTime, value)
		_node.VerifiedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LabResult.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LabResultUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *LabResultCreate) OnConflict(opts ...sql.ConflictOption) *LabResultUpsertOne {
	_c.conflict = opts
	return &LabResultUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LabResult.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LabResultCreate) OnConflictColumns(columns ...string) *LabResultUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LabResultUpsertOne{
		create: _c,
	}
}

type (
	// LabResultUpsertOne is the builder for "upsert"-ing
	//  one LabResult node.
	LabResultUpsertOne struct {
		create *LabResultCreate
	}

	// LabResultUpsert is the "OnConflict" setter.
	LabResultUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *LabResultUpsert) SetUpdatedAt(v time.Time) *LabResultUpsert {
	u.Set(labresult.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LabResultUpsert) UpdateUpdatedAt() *LabResultUpsert {
	u.SetExcluded(labresult.FieldUpdatedAt)
	return u
}

// SetOrderID sets the "order_id" field.
func (u *LabResultUpsert) SetOrderID(v uuid.UUID) *LabResultUpsert {
	u.Set(labresult.FieldOrderID, v)
	return u
}

// UpdateOrderID sets the "order_id" field to the value that was provided on create.
func (u *LabResultUpsert) UpdateOrderID() *LabResultUpsert {
	u.SetExcluded(labresult.FieldOrderID)
	return u
}

// SetTestID sets the "test_id" field.
func (u *LabResultUpsert) SetTestID(v uuid.UUID) *LabResultUpsert {
	u.Set(labresult.FieldTestID, v)
	return u
}

// UpdateTestID sets the "test_id" field to the value that was provided on create.
func (u *LabResultUpsert) UpdateTestID() *LabResultUpsert {
	u.SetExcluded(labresult.FieldTestID)
	return u
}

// SetPrice sets the "price" field.
func (u *LabResultUpsert) SetPrice(v int64) *LabResultUpsert {
	u.Set(labresult.FieldPrice, v)
	return u
}

// UpdatePrice sets the "price" field to the value that was provided on create.
func (u *LabResultUpsert) UpdatePrice() *LabResultUpsert {
	u.SetExcluded(labresult.FieldPrice)
	return u
}

// AddPrice adds v to the "price" field.
func (u *LabResultUpsert) AddPrice(v int64) *LabResultUpsert {
	u.Add(labresult.FieldPrice, v)
	return u
}

// SetResultValue sets the "result_value" field.
func (u *LabResultUpsert) SetResultValue(v string) *LabResultUpsert {
	u.Set(labresult.FieldResultValue, v)
	return u
}

// UpdateResultValue sets the "result_value" field to the value that was provided on create.
func (u *LabResultUpsert) UpdateResultValue() *LabResultUpsert {
	u.SetExcluded(labresult.FieldResultValue)
	return u
}

// ClearResultValue clears the value of the "result_value" field.
func (u *LabResultUpsert) ClearResultValue() *LabResultUpsert {
	u.SetNull(labresult.FieldResultValue)
	return u
}

// SetUnit sets the "unit" field.
func (u *LabResultUpsert) SetUnit(v string) *LabResultUpsert {
	u.Set(labresult.FieldUnit, v)
	return u
}

// UpdateUnit sets the "unit" field to the value that was provided on create.
func (u *LabResultUpsert) UpdateUnit() *LabResultUpsert {
	u.SetExcluded(labresult.FieldUnit)
	return u
}

// ClearUnit clears the value of the "unit" field.
func (u *LabResultUpsert) ClearUnit() *LabResultUpsert {
	u.SetNull(labresult.FieldUnit)
	return u
}

// SetAbnormal sets the "abnormal" field.
func (u *LabResultUpsert) SetAbnormal(v bool) *LabResultUpsert {
	u.Set(labresult.FieldAbnormal, v)
	return u
}

// UpdateAbnormal sets the "abnormal" field to the value that was provided on create.
func (u *LabResultUpsert) UpdateAbnormal() *LabResultUpsert {
	u.SetExcluded(labresult.FieldAbnormal)
	return u
}

// SetStatus sets the "status" field.
func (u *LabResultUpsert) SetStatus(v labresult.Status) *LabResultUpsert {
	u.Set(labresult.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *LabResultUpsert) UpdateStatus() *LabResultUpsert {
	u.SetExcluded(labresult.FieldStatus)
	return u
}

// SetEnteredBy sets the "entered_by" field.
func (u *LabResultUpsert) SetEnteredBy(v uuid.UUID) *LabResultUpsert {
	u.Set(labresult.FieldEnteredBy, v)
	return u
}

// UpdateEnteredBy sets the "entered_by" field to the value that was provided on create.
func (u *LabResultUpsert) UpdateEnteredBy() *LabResultUpsert {
	u.SetExcluded(labresult.FieldEnteredBy)
	return u
}

// ClearEnteredBy clears the value of the "entered_by" field.
func (u *LabResultUpsert) ClearEnteredBy() *LabResultUpsert {
	u.SetNull(labresult.FieldEnteredBy)
	return u
}

// SetVerifiedBy sets the "verified_by" field.
func (u *LabResultUpsert) SetVerifiedBy(v uuid.UUID) *LabResultUpsert {
	u.Set(labresult.FieldVerifiedBy, v)
	return u
}

// UpdateVerifiedBy sets the "verified_by" field to the value that was provided on create.
func (u *LabResultUpsert) UpdateVerifiedBy() *LabResultUpsert {
	u.SetExcluded(labresult.FieldVerifiedBy)
	return u
}

// ClearVerifiedBy clears the value of the "verified_by" field.
func (u *LabResultUpsert) ClearVerifiedBy() *LabResultUpsert {
	u.SetNull(labresult.FieldVerifiedBy)
	return u
}

// SetVerifiedAt sets the "verified_at" field.
func (u *LabResultUpsert) SetVerifiedAt(v time.Time) *LabResultUpsert {
	u.Set(labresult.FieldVerifiedAt, v)
	return u
}

// UpdateVerifiedAt sets the "verified_at" field to the value that was provided on create.
func (u *LabResultUpsert) UpdateVerifiedAt() *LabResultUpsert {
	u.SetExcluded(labresult.FieldVerifiedAt)
	return u
}

// ClearVerifiedAt clears the value of the "verified_at" field.
func (u *LabResultUpsert) ClearVerifiedAt() *LabResultUpsert {
	u.SetNull(labresult.FieldVerifiedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.LabResult.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(labresult.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LabResultUpsertOne) UpdateNewValues() *LabResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(labresult.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(labresult.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LabResult.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LabResultUpsertOne) Ignore() *LabResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LabResultUpsertOne) DoNothing() *LabResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LabResultCreate.OnConflict
// documentation for more info.
func (u *LabResultUpsertOne) Update(set func(*LabResultUpsert)) *LabResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LabResultUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LabResultUpsertOne) SetUpdatedAt(v time.Time) *LabResultUpsertOne {
	return u.Update(func(s *LabResultUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LabResultUpsertOne) UpdateUpdatedAt() *LabResultUpsertOne {
	return u.Update(func(s *LabResultUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetOrderID sets the "order_id" field.
func (u *LabResultUpsertOne) SetOrderID(v uuid.UUID) *LabResultUpsertOne {
	return u.Update(func(s *LabResultUpsert) {
		s.SetOrderID(v)
	})
}

// UpdateOrderID sets the "order_id" field to the value that was provided on create.
func (u *LabResultUpsertOne) UpdateOrderID() *LabResultUpsertOne {
	return u.Update(func(s *LabResultUpsert) {
		s.UpdateOrderID()
	})
}

// SetTestID sets the "test_id" field.
func (u *LabResultUpsertOne) SetTestID(v uuid.UUID) *LabResultUpsertOne {
	return u.Update(func(s *LabResultUpsert) {
		s.SetTestID(v)
	})
}

// UpdateTestID sets the "test_id" field to the value that was provided on create.
func (u *LabResultUpsertOne) UpdateTestID() *LabResultUpsertOne {
	return u.Update(func(s *LabResultUpsert) {
		s.UpdateTestID()
	})
}

// SetPrice sets the "price" field.
func (u *LabResultUpsertOne) SetPrice(v int64) *LabResultUpsertOne {
	return u.Update(func(s *LabResultUpsert) {
		s.SetPrice(v)
	})
}

// AddPrice adds v to the "price" field.
func (u *LabResultUpsertOne) AddPrice(v int64) *LabResultUpsertOne {
	return u.Update(func(s *LabResultUpsert) {
		s.AddPrice(v)
	})
}

// UpdatePrice sets the "price" field to the value that was provided on create.
func (u *LabResultUpsertOne) UpdatePrice() *LabResultUpsertOne {
	return u.Update(func(s *LabResultUpsert) {
		s.UpdatePrice()
	})
}

// SetResultValue sets the "result_value" field.
func (u *LabResultUpsertOne) SetResultValue(v string) *LabResultUpsertOne {
	return u.Update(func(s *LabResultUpsert) {
		s.SetResultValue(v)
	})
}

// UpdateResultValue sets the "result_value" field to the value that was provided on create.
func (u *LabResultUpsertOne) UpdateResultValue() *LabResultUpsertOne {
	return u.Update(func(s *LabResultUpsert) {
		s.UpdateResultValue()
	})
}

// ClearResultValue clears the value of the "result_value" field.
func (u *LabResultUpsertOne) ClearResultValue() *LabResultUpsertOne {
	return u.Update(func(s *LabResultUpsert) {
		s.ClearResultValue()
	})
}

// SetUnit sets the "unit" field.
func (u *LabResultUpsertOne) SetUnit(v string) *LabResultUpsertOne {
	return u.Update(func(s *LabResultUpsert) {
		s.SetUnit(v)
	})
}

// UpdateUnit sets the "unit" field to the value that was provided on create.
func (u *LabResultUpsertOne) UpdateUnit() *LabResultUpsertOne {
	return u.Update(func(s *LabResultUpsert) {
		s.UpdateUnit()
	})
}

// ClearUnit clears the value of the "unit" field.
func (u *LabResultUpsertOne) ClearUnit() *LabResultUpsertOne {
	return u.Update(func(s *LabResultUpsert) {
		s.ClearUnit()
	})
}

// SetAbnormal sets the "abnormal" field.
func (u *LabResultUpsertOne) SetAbnormal(v bool) *LabResultUpsertOne {
	return u.Update(func(s *LabResultUpsert) {
		s.SetAbnormal(v)
	})
}

// UpdateAbnormal sets the "abnormal" field to the value that was provided on create.
func (u *LabResultUpsertOne) UpdateAbnormal() *LabResultUpsertOne {
	return u.Update(func(s *LabResultUpsert) {
		s.UpdateAbnormal()
	})
}

// SetStatus sets the "status" field.
func (u *LabResultUpsertOne) SetStatus(v labresult.Status) *LabResultUpsertOne {
	return u.Update(func(s *LabResultUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *LabResultUpsertOne) UpdateStatus() *LabResultUpsertOne {
	return u.Update(func(s *LabResultUpsert) {
		s.UpdateStatus()
	})
}

// SetEnteredBy sets the "entered_by" field.
func (u *LabResultUpsertOne) SetEnteredBy(v uuid.UUID) *LabResultUpsertOne {
	return u.Update(func(s *LabResultUpsert) {
		s.SetEnteredBy(v)
	})
}

// UpdateEnteredBy sets the "entered_by" field to the value that was provided on create.
func (u *LabResultUpsertOne) UpdateEnteredBy() *LabResultUpsertOne {
	return u.Update(func(s *LabResultUpsert) {
		s.UpdateEnteredBy()
	})
}

// ClearEnteredBy clears the value of the "entered_by" field.
func (u *LabResultUpsertOne) ClearEnteredBy() *LabResultUpsertOne {
	return u.Update(func(s *LabResultUpsert) {
		s.ClearEnteredBy()
	})
}

// SetVerifiedBy sets the "verified_by" field.
func (u *LabResultUpsertOne) SetVerifiedBy(v uuid.UUID) *LabResultUpsertOne {
	return u.Update(func(s *LabResultUpsert) {
		s.SetVerifiedBy(v)
	})
}

// UpdateVerifiedBy sets the "verified_by" field to the value that was provided on create.
func (u *LabResultUpsertOne) UpdateVerifiedBy() *LabResultUpsertOne {
	return u.Update(func(s *LabResultUpsert) {
		s.UpdateVerifiedBy()
	})
}

// ClearVerifiedBy clears the value of the "verified_by" field.
func (u *LabResultUpsertOne) ClearVerifiedBy() *LabResultUpsertOne {
	return u.Update(func(s *LabResultUpsert) {
		s.ClearVerifiedBy()
	})
}

// SetVerifiedAt sets the "verified_at" field.
func (u *LabResultUpsertOne) SetVerifiedAt(v time.Time) *LabResultUpsertOne {
	return u.Update(func(s *LabResultUpsert) {
		s.SetVerifiedAt(v)
	})
}

// UpdateVerifiedAt sets the "verified_at" field to the value that was provided on create.
func (u *LabResultUpsertOne) UpdateVerifiedAt() *LabResultUpsertOne {
	return u.Update(func(s *LabResultUpsert) {
		s.UpdateVerifiedAt()
	})
}

// ClearVerifiedAt clears the value of the "verified_at" field.
func (u *LabResultUpsertOne) ClearVerifiedAt() *LabResultUpsertOne {
	return u.Update(func(s *LabResultUpsert) {
		s.ClearVerifiedAt()
	})
}

// Exec executes the query.
func (u *LabResultUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for LabResultCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LabResultUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LabResultUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: LabResultUpsertOne.ID is not supported by MySQL driver. Use LabResultUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LabResultUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LabResultCreateBulk is the builder for creating many LabResult entities in bulk.
type LabResultCreateBulk struct {
	config
	err      error
	builders []*LabResultCreate
	conflict []sql.ConflictOption
}

// Save creates the LabResult entities in the database.
func (_c *LabResultCreateBulk) Save(ctx context.Context) ([]*LabResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LabResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LabResultMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LabResultCreateBulk) SaveX(ctx context.Context) []*LabResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LabResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LabResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LabResult.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LabResultUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *LabResultCreateBulk) OnConflict(opts ...sql.ConflictOption) *LabResultUpsertBulk {
	_c.conflict = opts
	return &LabResultUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LabResult.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LabResultCreateBulk) OnConflictColumns(columns ...string) *LabResultUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LabResultUpsertBulk{
		create: _c,
	}
}

// LabResultUpsertBulk is the builder for "upsert"-ing
// a bulk of LabResult nodes.
type LabResultUpsertBulk struct {
	create *LabResultCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LabResult.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(labresult.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LabResultUpsertBulk) UpdateNewValues() *LabResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(labresult.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(labresult.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LabResult.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LabResultUpsertBulk) Ignore() *LabResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LabResultUpsertBulk) DoNothing() *LabResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LabResultCreateBulk.OnConflict
// documentation for more info.
func (u *LabResultUpsertBulk) Update(set func(*LabResultUpsert)) *LabResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LabResultUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LabResultUpsertBulk) SetUpdatedAt(v time.Time) *LabResultUpsertBulk {
	return u.Update(func(s *LabResultUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LabResultUpsertBulk) UpdateUpdatedAt() *LabResultUpsertBulk {
	return u.Update(func(s *LabResultUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetOrderID sets the "order_id" field.
func (u *LabResultUpsertBulk) SetOrderID(v uuid.UUID) *LabResultUpsertBulk {
	return u.Update(func(s *LabResultUpsert) {
		s.SetOrderID(v)
	})
}

// UpdateOrderID sets the "order_id" field to the value that was provided on create.
func (u *LabResultUpsertBulk) UpdateOrderID() *LabResultUpsertBulk {
	return u.Update(func(s *LabResultUpsert) {
		s.UpdateOrderID()
	})
}

// SetTestID sets the "test_id" field.
func (u *LabResultUpsertBulk) SetTestID(v uuid.UUID) *LabResultUpsertBulk {
	return u.Update(func(s *LabResultUpsert) {
		s.SetTestID(v)
	})
}

// UpdateTestID sets the "test_id" field to the value that was provided on create.
func (u *LabResultUpsertBulk) UpdateTestID() *LabResultUpsertBulk {
	return u.Update(func(s *LabResultUpsert) {
		s.UpdateTestID()
	})
}

// SetPrice sets the "price" field.
func (u *LabResultUpsertBulk) SetPrice(v int64) *LabResultUpsertBulk {
	return u.Update(func(s *LabResultUpsert) {
		s.SetPrice(v)
	})
}

// AddPrice adds v to the "price" field.
func (u *LabResultUpsertBulk) AddPrice(v int64) *LabResultUpsertBulk {
	return u.Update(func(s *LabResultUpsert) {
		s.AddPrice(v)
	})
}

// UpdatePrice sets the "price" field to the value that was provided on create.
func (u *LabResultUpsertBulk) UpdatePrice() *LabResultUpsertBulk {
	return u.Update(func(s *LabResultUpsert) {
		s.UpdatePrice()
	})
}

// SetResultValue sets the "result_value" field.
func (u *LabResultUpsertBulk) SetResultValue(v string) *LabResultUpsertBulk {
	return u.Update(func(s *LabResultUpsert) {
		s.SetResultValue(v)
	})
}

// UpdateResultValue sets the "result_value" field to the value that was provided on create.
func (u *LabResultUpsertBulk) UpdateResultValue() *LabResultUpsertBulk {
	return u.Update(func(s *LabResultUpsert) {
		s.UpdateResultValue()
	})
}

// ClearResultValue clears the value of the "result_value" field.
func (u *LabResultUpsertBulk) ClearResultValue() *LabResultUpsertBulk {
	return u.Update(func(s *LabResultUpsert) {
		s.ClearResultValue()
	})
}

// SetUnit sets the "unit" field.
func (u *LabResultUpsertBulk) SetUnit(v string) *LabResultUpsertBulk {
	return u.Update(func(s *LabResultUpsert) {
		s.SetUnit(v)
	})
}

// UpdateUnit sets the "unit" field to the value that was provided on create.
func (u *LabResultUpsertBulk) UpdateUnit() *LabResultUpsertBulk {
	return u.Update(func(s *LabResultUpsert) {
		s.UpdateUnit()
	})
}

// ClearUnit clears the value of the "unit" field.
func (u *LabResultUpsertBulk) ClearUnit() *LabResultUpsertBulk {
	return u.Update(func(s *LabResultUpsert) {
		s.ClearUnit()
	})
}

// SetAbnormal sets the "abnormal" field.
func (u *LabResultUpsertBulk) SetAbnormal(v bool) *LabResultUpsertBulk {
	return u.Update(func(s *LabResultUpsert) {
		s.SetAbnormal(v)
	})
}

// UpdateAbnormal sets the "abnormal" field to the value that was provided on create.
func (u *LabResultUpsertBulk) UpdateAbnormal() *LabResultUpsertBulk {
	return u.Update(func(s *LabResultUpsert) {
		s.UpdateAbnormal()
	})
}

// SetStatus sets the "status" field.
func (u *LabResultUpsertBulk) SetStatus(v labresult.Status) *LabResultUpsertBulk {
	return u.Update(func(s *LabResultUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *LabResultUpsertBulk) UpdateStatus() *LabResultUpsertBulk {
	return u.Update(func(s *LabResultUpsert) {
		s.UpdateStatus()
	})
}

// SetEnteredBy sets the "entered_by" field.
func (u *LabResultUpsertBulk) SetEnteredBy(v uuid.UUID) *LabResultUpsertBulk {
	return u.Update(func(s *LabResultUpsert) {
		s.SetEnteredBy(v)
	})
}

// UpdateEnteredBy sets the "entered_by" field to the value that was provided on create.
func (u *LabResultUpsertBulk) UpdateEnteredBy() *LabResultUpsertBulk {
	return u.Update(func(s *LabResultUpsert) {
		s.UpdateEnteredBy()
	})
}

// ClearEnteredBy clears the value of the "entered_by" field.
func (u *LabResultUpsertBulk) ClearEnteredBy() *LabResultUpsertBulk {
	return u.Update(func(s *LabResultUpsert) {
		s.ClearEnteredBy()
	})
}

// SetVerifiedBy sets the "verified_by" field.
func (u *LabResultUpsertBulk) SetVerifiedBy(v uuid.UUID) *LabResultUpsertBulk {
	return u.Update(func(s *LabResultUpsert) {
		s.SetVerifiedBy(v)
	})
}

// UpdateVerifiedBy sets the "verified_by" field to the value that was provided on create.
func (u *LabResultUpsertBulk) UpdateVerifiedBy() *LabResultUpsertBulk {
	return u.Update(func(s *LabResultUpsert) {
		s.UpdateVerifiedBy()
	})
}

// ClearVerifiedBy clears the value of the "verified_by" field.
func (u *LabResultUpsertBulk) ClearVerifiedBy() *LabResultUpsertBulk {
	return u.Update(func(s *LabResultUpsert) {
		s.ClearVerifiedBy()
	})
}

// SetVerifiedAt sets the "verified_at" field.
func (u *LabResultUpsertBulk) SetVerifiedAt(v time.Time) *LabResultUpsertBulk {
	return u.Update(func(s *LabResultUpsert) {
		s.SetVerifiedAt(v)
	})
}

// UpdateVerifiedAt sets the "verified_at" field to the value that was provided on create.
func (u *LabResultUpsertBulk) UpdateVerifiedAt() *LabResultUpsertBulk {
	return u.Update(func(s *LabResultUpsert) {
		s.UpdateVerifiedAt()
	})
}

// ClearVerifiedAt clears the value of the "verified_at" field.
func (u *LabResultUpsertBulk) ClearVerifiedAt() *LabResultUpsertBulk {
	return u.Update(func(s *LabResultUpsert) {
		s.ClearVerifiedAt()
	})
}

// Exec executes the query.
func (u *LabResultUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the LabResultCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for LabResultCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LabResultUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
