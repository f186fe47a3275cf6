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
	"github.com/niramoy/niramoy_backend/internal/repo/labtest"
)

// LabTestCreate is the builder for creating a LabTest entity.
type LabTestCreate struct {
	config
	mutation *LabTestMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *LabTestCreate) SetCreatedAt(v time.Time) *LabTestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LabTestCreate) SetNillableCreatedAt(v *time.Time) *LabTestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LabTestCreate) SetUpdatedAt(v time.Time) *LabTestCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LabTestCreate) SetNillableUpdatedAt(v *time.Time) *LabTestCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *LabTestCreate) SetName(v string) *LabTestCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetCode sets the "code" field.
func (_c *LabTestCreate) SetCode(v string) *LabTestCreate {
	_c.mutation.SetCode(v)
	return _c
}

// SetPrice sets the "price" field.
func (_c *LabTestCreate) SetPrice(v int64) *LabTestCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *LabTestCreate) SetCategory(v string) *LabTestCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *LabTestCreate) SetNillableCategory(v *string) *LabTestCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetSampleType sets the "sample_type" field.
func (_c *LabTestCreate) SetSampleType(v string) *LabTestCreate {
	_c.mutation.SetSampleType(v)
	return _c
}

// SetNillableSampleType sets the "sample_type" field if the given value is not nil.
func (_c *LabTestCreate) SetNillableSampleType(v *string) *LabTestCreate {
	if v != nil {
		_c.SetSampleType(*v)
	}
	return _c
}

// SetNormalRange sets the "normal_range" field.
func (_c *LabTestCreate) SetNormalRange(v string) *LabTestCreate {
	_c.mutation.SetNormalRange(v)
	return _c
}

// SetNillableNormalRange sets the "normal_range" field if the given value is not nil.
func (_c *LabTestCreate) SetNillableNormalRange(v *string) *LabTestCreate {
	if v != nil {
		_c.SetNormalRange(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *LabTestCreate) SetActive(v bool) *LabTestCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *LabTestCreate) SetNillableActive(v *bool) *LabTestCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LabTestCreate) SetID(v uuid.UUID) *LabTestCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LabTestCreate) SetNillableID(v *uuid.UUID) *LabTestCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the LabTestMutation object of the builder.
func (_c *LabTestCreate) Mutation() *LabTestMutation {
	return _c.mutation
}

// Save creates the LabTest in the database.
func (_c *LabTestCreate) Save(ctx context.Context) (*LabTest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LabTestCreate) SaveX(ctx context.Context) *LabTest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LabTestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LabTestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LabTestCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := labtest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := labtest.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := labtest.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := labtest.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LabTestCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "LabTest.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "LabTest.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "LabTest.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := labtest.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "LabTest.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Code(); !ok {
		return &ValidationError{Name: "code", err: errors.New(`repo: missing required field "LabTest.code"`)}
	}
	if v, ok := _c.mutation.Code(); ok {
		if err := labtest.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`repo: validator failed for field "LabTest.code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Price(); !ok {
		return &ValidationError{Name: "price", err: errors.New(`repo: missing required field "LabTest.price"`)}
	}
	if v, ok := _c.mutation.Price(); ok {
		if err := labtest.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`repo: validator failed for field "LabTest.price": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := labtest.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`repo: validator failed for field "LabTest.category": %w`, err)}
		}
	}
	if v, ok := _c.mutation.SampleType(); ok {
		if err := labtest.SampleTypeValidator(v); err != nil {
			return &ValidationError{Name: "sample_type", err: fmt.Errorf(`repo: validator failed for field "LabTest.sample_type": %w`, err)}
		}
	}
	if v, ok := _c.mutation.NormalRange(); ok {
		if err := labtest.NormalRangeValidator(v); err != nil {
			return &ValidationError{Name: "normal_range", err: fmt.Errorf(`repo: validator failed for field "LabTest.normal_range": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`repo: missing required field "LabTest.active"`)}
	}
	return nil
}

func (_c *LabTestCreate) sqlSave(ctx context.Context) (*LabTest, error) {
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

func (_c *LabTestCreate) createSpec() (*LabTest, *sqlgraph.CreateSpec) {
	var (
		_node = &LabTest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(labtest.Table, sqlgraph.NewFieldSpec(labtest.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(labtest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(labtest.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(labtest.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Code(); ok {
		_spec.SetField(labtest.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(labtest.FieldPrice, field.TypeInt64, value)
		_node.Price = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(labtest.FieldCategory, field.TypeString, value)
		_node.Category = &value
	}
	if value, ok := _c.mutation.SampleType(); ok {
		_spec.SetField(labtest.FieldSampleType, field.TypeString, value)
		_node.SampleType = &value
	}
	if value, ok := _c.mutation.NormalRange(); ok {
		_spec.SetField(labtest.FieldNormalRange, field.TypeString, value)
		_node.NormalRange = &value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(labtest.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LabTest.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LabTestUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *LabTestCreate) OnConflict(opts ...sql.ConflictOption) *LabTestUpsertOne {
	_c.conflict = opts
	return &LabTestUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LabTest.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LabTestCreate) OnConflictColumns(columns ...string) *LabTestUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LabTestUpsertOne{
		create: _c,
	}
}

type (
	// LabTestUpsertOne is the builder for "upsert"-ing
	//  one LabTest node.
	LabTestUpsertOne struct {
		create *LabTestCreate
	}

	// LabTestUpsert is the "OnConflict" setter.
	LabTestUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *LabTestUpsert) SetUpdatedAt(v time.Time) *LabTestUpsert {
	u.Set(labtest.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LabTestUpsert) UpdateUpdatedAt() *LabTestUpsert {
	u.SetExcluded(labtest.FieldUpdatedAt)
	return u
}

// SetName sets the "name" field.
func (u *LabTestUpsert) SetName(v string) *LabTestUpsert {
	u.Set(labtest.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *LabTestUpsert) UpdateName() *LabTestUpsert {
	u.SetExcluded(labtest.FieldName)
	return u
}

// SetCode sets the "code" field.
func (u *LabTestUpsert) SetCode(v string) *LabTestUpsert {
	u.Set(labtest.FieldCode, v)
	return u
}

// UpdateCode sets the "code" field to the value that was provided on create.
func (u *LabTestUpsert) UpdateCode() *LabTestUpsert {
	u.SetExcluded(labtest.FieldCode)
	return u
}

// SetPrice sets the "price" field.
func (u *LabTestUpsert) SetPrice(v int64) *LabTestUpsert {
	u.Set(labtest.FieldPrice, v)
	return u
}

// UpdatePrice sets the "price" field to the value that was provided on create.
func (u *LabTestUpsert) UpdatePrice() *LabTestUpsert {
	u.SetExcluded(labtest.FieldPrice)
	return u
}

// AddPrice adds v to the "price" field.
func (u *LabTestUpsert) AddPrice(v int64) *LabTestUpsert {
	u.Add(labtest.FieldPrice, v)
	return u
}

// SetCategory sets the "category" field.
func (u *LabTestUpsert) SetCategory(v string) *LabTestUpsert {
	u.Set(labtest.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *LabTestUpsert) UpdateCategory() *LabTestUpsert {
	u.SetExcluded(labtest.FieldCategory)
	return u
}

// ClearCategory clears the value of the "category" field.
func (u *LabTestUpsert) ClearCategory() *LabTestUpsert {
	u.SetNull(labtest.FieldCategory)
	return u
}

// SetSampleType sets the "sample_type" field.
func (u *LabTestUpsert) SetSampleType(v string) *LabTestUpsert {
	u.Set(labtest.FieldSampleType, v)
	return u
}

// UpdateSampleType sets the "sample_type" field to the value that was provided on create.
func (u *LabTestUpsert) UpdateSampleType() *LabTestUpsert {
	u.SetExcluded(labtest.FieldSampleType)
	return u
}

// ClearSampleType clears the value of the "sample_type" field.
func (u *LabTestUpsert) ClearSampleType() *LabTestUpsert {
	u.SetNull(labtest.FieldSampleType)
	return u
}

// SetNormalRange sets the "normal_range" field.
func (u *LabTestUpsert) SetNormalRange(v string) *LabTestUpsert {
	u.Set(labtest.FieldNormalRange, v)
	return u
}

// UpdateNormalRange sets the "normal_range" field to the value that was provided on create.
func (u *LabTestUpsert) UpdateNormalRange() *LabTestUpsert {
	u.SetExcluded(labtest.FieldNormalRange)
	return u
}

// ClearNormalRange clears the value of the "normal_range" field.
func (u *LabTestUpsert) ClearNormalRange() *LabTestUpsert {
	u.SetNull(labtest.FieldNormalRange)
	return u
}

// SetActive sets the "active" field.
func (u *LabTestUpsert) SetActive(v bool) *LabTestUpsert {
	u.Set(labtest.FieldActive, v)
	return u
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *LabTestUpsert) UpdateActive() *LabTestUpsert {
	u.SetExcluded(labtest.FieldActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.LabTest.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(labtest.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LabTestUpsertOne) UpdateNewValues() *LabTestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(labtest.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(labtest.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LabTest.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LabTestUpsertOne) Ignore() *LabTestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LabTestUpsertOne) DoNothing() *LabTestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LabTestCreate.OnConflict
// documentation for more info.
func (u *LabTestUpsertOne) Update(set func(*LabTestUpsert)) *LabTestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LabTestUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LabTestUpsertOne) SetUpdatedAt(v time.Time) *LabTestUpsertOne {
	return u.Update(func(s *LabTestUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LabTestUpsertOne) UpdateUpdatedAt() *LabTestUpsertOne {
	return u.Update(func(s *LabTestUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetName sets the "name" field.
func (u *LabTestUpsertOne) SetName(v string) *LabTestUpsertOne {
	return u.Update(func(s *LabTestUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *LabTestUpsertOne) UpdateName() *LabTestUpsertOne {
	return u.Update(func(s *LabTestUpsert) {
		s.UpdateName()
	})
}

// SetCode sets the "code" field.
func (u *LabTestUpsertOne) SetCode(v string) *LabTestUpsertOne {
	return u.Update(func(s *LabTestUpsert) {
		s.SetCode(v)
	})
}

// UpdateCode sets the "code" field to the value that was provided on create.
func (u *LabTestUpsertOne) UpdateCode() *LabTestUpsertOne {
	return u.Update(func(s *LabTestUpsert) {
		s.UpdateCode()
	})
}

// SetPrice sets the "price" field.
func (u *LabTestUpsertOne) SetPrice(v int64) *LabTestUpsertOne {
	return u.Update(func(s *LabTestUpsert) {
		s.SetPrice(v)
	})
}

// AddPrice adds v to the "price" field.
func (u *LabTestUpsertOne) AddPrice(v int64) *LabTestUpsertOne {
	return u.Update(func(s *LabTestUpsert) {
		s.AddPrice(v)
	})
}

// UpdatePrice sets the "price" field to the value that was provided on create.
func (u *LabTestUpsertOne) UpdatePrice() *LabTestUpsertOne {
	return u.Update(func(s *LabTestUpsert) {
		s.UpdatePrice()
	})
}

// SetCategory sets the "category" field.
func (u *LabTestUpsertOne) SetCategory(v string) *LabTestUpsertOne {
	return u.Update(func(s *LabTestUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *LabTestUpsertOne) UpdateCategory() *LabTestUpsertOne {
	return u.Update(func(s *LabTestUpsert) {
		s.UpdateCategory()
	})
}

// ClearCategory clears the value of the "category" field.
func (u *LabTestUpsertOne) ClearCategory() *LabTestUpsertOne {
	return u.Update(func(s *LabTestUpsert) {
		s.ClearCategory()
	})
}

// SetSampleType sets the "sample_type" field.
func (u *LabTestUpsertOne) SetSampleType(v string) *LabTestUpsertOne {
	return u.Update(func(s *LabTestUpsert) {
		s.SetSampleType(v)
	})
}

// UpdateSampleType sets the "sample_type" field to the value that was provided on create.
func (u *LabTestUpsertOne) UpdateSampleType() *LabTestUpsertOne {
	return u.Update(func(s *LabTestUpsert) {
		s.UpdateSampleType()
	})
}

// ClearSampleType clears the value of the "sample_type" field.
func (u *LabTestUpsertOne) ClearSampleType() *LabTestUpsertOne {
	return u.Update(func(s *LabTestUpsert) {
		s.ClearSampleType()
	})
}

// SetNormalRange sets the "normal_range" field.
func (u *LabTestUpsertOne) SetNormalRange(v string) *LabTestUpsertOne {
	return u.Update(func(s *LabTestUpsert) {
		s.SetNormalRange(v)
	})
}

// UpdateNormalRange sets the "normal_range" field to the value that was provided on create.
func (u *LabTestUpsertOne) UpdateNormalRange() *LabTestUpsertOne {
	return u.Update(func(s *LabTestUpsert) {
		s.UpdateNormalRange()
	})
}

// ClearNormalRange clears the value of the "normal_range" field.
func (u *LabTestUpsertOne) ClearNormalRange() *LabTestUpsertOne {
	return u.Update(func(s *LabTestUpsert) {
		s.ClearNormalRange()
	})
}

// SetActive sets the "active" field.
func (u *LabTestUpsertOne) SetActive(v bool) *LabTestUpsertOne {
	return u.Update(func(s *LabTestUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *LabTestUpsertOne) UpdateActive() *LabTestUpsertOne {
	return u.Update(func(s *LabTestUpsert) {
		s.UpdateActive()
	})
}

// Exec executes the query.
func (u *LabTestUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for LabTestCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LabTestUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LabTestUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: LabTestUpsertOne.ID is not supported by MySQL driver. Use LabTestUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LabTestUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LabTestCreateBulk is the builder for creating many LabTest entities in bulk.
type LabTestCreateBulk struct {
	config
	err      error
	builders []*LabTestCreate
	conflict []sql.ConflictOption
}

// Save creates the LabTest entities in the database.
func (_c *LabTestCreateBulk) Save(ctx context.Context) ([]*LabTest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LabTest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LabTestMutation)
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
func (_c *LabTestCreateBulk) SaveX(ctx context.Context) []*LabTest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LabTestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LabTestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LabTest.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LabTestUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *LabTestCreateBulk) OnConflict(opts ...sql.ConflictOption) *LabTestUpsertBulk {
	_c.conflict = opts
	return &LabTestUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LabTest.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LabTestCreateBulk) OnConflictColumns(columns ...string) *LabTestUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LabTestUpsertBulk{
		create: _c,
	}
}

// LabTestUpsertBulk is the builder for "upsert"-ing
// a bulk of LabTest nodes.
type LabTestUpsertBulk struct {
	create *LabTestCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LabTest.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(labtest.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LabTestUpsertBulk) UpdateNewValues() *LabTestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(labtest.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(labtest.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LabTest.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LabTestUpsertBulk) Ignore() *LabTestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LabTestUpsertBulk) DoNothing() *LabTestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LabTestCreateBulk.OnConflict
// documentation for more info.
func (u *LabTestUpsertBulk) Update(set func(*LabTestUpsert)) *LabTestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LabTestUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LabTestUpsertBulk) SetUpdatedAt(v time.Time) *LabTestUpsertBulk {
	return u.Update(func(s *LabTestUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LabTestUpsertBulk) UpdateUpdatedAt() *LabTestUpsertBulk {
	return u.Update(func(s *LabTestUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetName sets the "name" field.
func (u *LabTestUpsertBulk) SetName(v string) *LabTestUpsertBulk {
	return u.Update(func(s *LabTestUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *LabTestUpsertBulk) UpdateName() *LabTestUpsertBulk {
	return u.Update(func(s *LabTestUpsert) {
		s.UpdateName()
	})
}

// SetCode sets the "code" field.
func (u *LabTestUpsertBulk) SetCode(v string) *LabTestUpsertBulk {
	return u.Update(func(s *LabTestUpsert) {
		s.SetCode(v)
	})
}

// UpdateCode sets the "code" field to the value that was provided on create.
func (u *LabTestUpsertBulk) UpdateCode() *LabTestUpsertBulk {
	return u.Update(func(s *LabTestUpsert) {
		s.UpdateCode()
	})
}

// SetPrice sets the "price" field.
func (u *LabTestUpsertBulk) SetPrice(v int64) *LabTestUpsertBulk {
	return u.Update(func(s *LabTestUpsert) {
		s.SetPrice(v)
	})
}

// AddPrice adds v to the "price" field.
func (u *LabTestUpsertBulk) AddPrice(v int64) *LabTestUpsertBulk {
	return u.Update(func(s *LabTestUpsert) {
		s.AddPrice(v)
	})
}

// UpdatePrice sets the "price" field to the value that was provided on create.
func (u *LabTestUpsertBulk) UpdatePrice() *LabTestUpsertBulk {
	return u.Update(func(s *LabTestUpsert) {
		s.UpdatePrice()
	})
}

// SetCategory sets the "category" field.
func (u *LabTestUpsertBulk) SetCategory(v string) *LabTestUpsertBulk {
	return u.Update(func(s *LabTestUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *LabTestUpsertBulk) UpdateCategory() *LabTestUpsertBulk {
	return u.Update(func(s *LabTestUpsert) {
		s.UpdateCategory()
	})
}

// ClearCategory clears the value of the "category" field.
func (u *LabTestUpsertBulk) ClearCategory() *LabTestUpsertBulk {
	return u.Update(func(s *LabTestUpsert) {
		s.ClearCategory()
	})
}

// SetSampleType sets the "sample_type" field.
func (u *LabTestUpsertBulk) SetSampleType(v string) *LabTestUpsertBulk {
	return u.Update(func(s *LabTestUpsert) {
		s.SetSampleType(v)
	})
}

// UpdateSampleType sets the "sample_type" field to the value that was provided on create.
func (u *LabTestUpsertBulk) UpdateSampleType() *LabTestUpsertBulk {
	return u.Update(func(s *LabTestUpsert) {
		s.UpdateSampleType()
	})
}

// ClearSampleType clears the value of the "sample_type" field.
func (u *LabTestUpsertBulk) ClearSampleType() *LabTestUpsertBulk {
	return u.Update(func(s *LabTestUpsert) {
		s.ClearSampleType()
	})
}

// SetNormalRange sets the "normal_range" field.
func (u *LabTestUpsertBulk) SetNormalRange(v string) *LabTestUpsertBulk {
	return u.Update(func(s *LabTestUpsert) {
		s.SetNormalRange(v)
	})
}

// UpdateNormalRange sets the "normal_range" field to the value that was provided on create.
func (u *LabTestUpsertBulk) UpdateNormalRange() *LabTestUpsertBulk {
	return u.Update(func(s *LabTestUpsert) {
		s.UpdateNormalRange()
	})
}

// ClearNormalRange clears the value of the "normal_range" field.
func (u *LabTestUpsertBulk) ClearNormalRange() *LabTestUpsertBulk {
	return u.Update(func(s *LabTestUpsert) {
		s.ClearNormalRange()
	})
}

// SetActive sets the "active" field.
func (u *LabTestUpsertBulk) SetActive(v bool) *LabTestUpsertBulk {
	return u.Update(func(s *LabTestUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *LabTestUpsertBulk) UpdateActive() *LabTestUpsertBulk {
	return u.Update(func(s *LabTestUpsert) {
		s.UpdateActive()
	})
}

// Exec executes the query.
func (u *LabTestUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the LabTestCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for LabTestCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LabTestUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
