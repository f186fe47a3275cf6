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
	"github.com/niramoy/niramoy_backend/internal/repo/canteenitem"
)

// CanteenItemCreate is the builder for creating a CanteenItem entity.
type CanteenItemCreate struct {
	config
	mutation *CanteenItemMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *CanteenItemCreate) SetCreatedAt(v time.Time) *CanteenItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CanteenItemCreate) SetNillableCreatedAt(v *time.Time) *CanteenItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CanteenItemCreate) SetUpdatedAt(v time.Time) *CanteenItemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CanteenItemCreate) SetNillableUpdatedAt(v *time.Time) *CanteenItemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *CanteenItemCreate) SetName(v string) *CanteenItemCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *CanteenItemCreate) SetCategory(v string) *CanteenItemCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *CanteenItemCreate) SetNillableCategory(v *string) *CanteenItemCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetPrice sets the "price" field.
func (_c *CanteenItemCreate) SetPrice(v int64) *CanteenItemCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetAvailable sets the "available" field.
func (_c *CanteenItemCreate) SetAvailable(v bool) *CanteenItemCreate {
	_c.mutation.SetAvailable(v)
	return _c
}

// SetNillableAvailable sets the "available" field if the given value is not nil.
func (_c *CanteenItemCreate) SetNillableAvailable(v *bool) *CanteenItemCreate {
	if v != nil {
		_c.SetAvailable(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CanteenItemCreate) SetID(v uuid.UUID) *CanteenItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CanteenItemCreate) SetNillableID(v *uuid.UUID) *CanteenItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the CanteenItemMutation object of the builder.
func (_c *CanteenItemCreate) Mutation() *CanteenItemMutation {
	return _c.mutation
}

// Save creates the CanteenItem in the database.
func (_c *CanteenItemCreate) Save(ctx context.Context) (*CanteenItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CanteenItemCreate) SaveX(ctx context.Context) *CanteenItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CanteenItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CanteenItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CanteenItemCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := canteenitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := canteenitem.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Available(); !ok {
		v := canteenitem.DefaultAvailable
		_c.mutation.SetAvailable(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := canteenitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CanteenItemCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "CanteenItem.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "CanteenItem.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "CanteenItem.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := canteenitem.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "CanteenItem.name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := canteenitem.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`repo: validator failed for field "CanteenItem.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Price(); !ok {
		return &ValidationError{Name: "price", err: errors.New(`repo: missing required field "CanteenItem.price"`)}
	}
	if v, ok := _c.mutation.Price(); ok {
		if err := canteenitem.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`repo: validator failed for field "CanteenItem.price": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Available(); !ok {
		return &ValidationError{Name: "available", err: errors.New(`repo: missing required field "CanteenItem.available"`)}
	}
	return nil
}

func (_c *CanteenItemCreate) sqlSave(ctx context.Context) (*CanteenItem, error) {
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

func (_c *CanteenItemCreate) createSpec() (*CanteenItem, *sqlgraph.CreateSpec) {
	var (
		_node = &CanteenItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(canteenitem.Table, sqlgraph.NewFieldSpec(canteenitem.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(canteenitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(canteenitem.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(canteenitem.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(canteenitem.FieldCategory, field.TypeString, value)
		_node.Category = &value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(canteenitem.FieldPrice, field.TypeInt64, value)
		_node.Price = value
	}
	if value, ok := _c.mutation.Available(); ok {
		_spec.SetField(canteenitem.FieldAvailable, field.TypeBool, value)
		_node.Available = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CanteenItem.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CanteenItemUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *CanteenItemCreate) OnConflict(opts ...sql.ConflictOption) *CanteenItemUpsertOne {
	_c.conflict = opts
	return &CanteenItemUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CanteenItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CanteenItemCreate) OnConflictColumns(columns ...string) *CanteenItemUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CanteenItemUpsertOne{
		create: _c,
	}
}

type (
	// CanteenItemUpsertOne is the builder for "upsert"-ing
	//  one CanteenItem node.
	CanteenItemUpsertOne struct {
		create *CanteenItemCreate
	}

	// CanteenItemUpsert is the "OnConflict" setter.
	CanteenItemUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *CanteenItemUpsert) SetUpdatedAt(v time.Time) *CanteenItemUpsert {
	u.Set(canteenitem.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CanteenItemUpsert) UpdateUpdatedAt() *CanteenItemUpsert {
	u.SetExcluded(canteenitem.FieldUpdatedAt)
	return u
}

// SetName sets the "name" field.
func (u *CanteenItemUpsert) SetName(v string) *CanteenItemUpsert {
	u.Set(canteenitem.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CanteenItemUpsert) UpdateName() *CanteenItemUpsert {
	u.SetExcluded(canteenitem.FieldName)
	return u
}

// SetCategory sets the "category" field.
func (u *CanteenItemUpsert) SetCategory(v string) *CanteenItemUpsert {
	u.Set(canteenitem.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *CanteenItemUpsert) UpdateCategory() *CanteenItemUpsert {
	u.SetExcluded(canteenitem.FieldCategory)
	return u
}

// ClearCategory clears the value of the "category" field.
func (u *CanteenItemUpsert) ClearCategory() *CanteenItemUpsert {
	u.SetNull(canteenitem.FieldCategory)
	return u
}

// SetPrice sets the "price" field.
func (u *CanteenItemUpsert) SetPrice(v int64) *CanteenItemUpsert {
	u.Set(canteenitem.FieldPrice, v)
	return u
}

// UpdatePrice sets the "price" field to the value that was provided on create.
func (u *CanteenItemUpsert) UpdatePrice() *CanteenItemUpsert {
	u.SetExcluded(canteenitem.FieldPrice)
	return u
}

// AddPrice adds v to the "price" field.
func (u *CanteenItemUpsert) AddPrice(v int64) *CanteenItemUpsert {
	u.Add(canteenitem.FieldPrice, v)
	return u
}

// SetAvailable sets the "available" field.
func (u *CanteenItemUpsert) SetAvailable(v bool) *CanteenItemUpsert {
	u.Set(canteenitem.FieldAvailable, v)
	return u
}

// UpdateAvailable sets the "available" field to the value that was provided on create.
func (u *CanteenItemUpsert) UpdateAvailable() *CanteenItemUpsert {
	u.SetExcluded(canteenitem.FieldAvailable)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CanteenItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(canteenitem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CanteenItemUpsertOne) UpdateNewValues() *CanteenItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(canteenitem.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(canteenitem.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CanteenItem.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CanteenItemUpsertOne) Ignore() *CanteenItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CanteenItemUpsertOne) DoNothing() *CanteenItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CanteenItemCreate.OnConflict
// documentation for more info.
func (u *CanteenItemUpsertOne) Update(set func(*CanteenItemUpsert)) *CanteenItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CanteenItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CanteenItemUpsertOne) SetUpdatedAt(v time.Time) *CanteenItemUpsertOne {
	return u.Update(func(s *CanteenItemUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CanteenItemUpsertOne) UpdateUpdatedAt() *CanteenItemUpsertOne {
	return u.Update(func(s *CanteenItemUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetName sets the "name" field.
func (u *CanteenItemUpsertOne) SetName(v string) *CanteenItemUpsertOne {
	return u.Update(func(s *CanteenItemUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CanteenItemUpsertOne) UpdateName() *CanteenItemUpsertOne {
	return u.Update(func(s *CanteenItemUpsert) {
		s.UpdateName()
	})
}

// SetCategory sets the "category" field.
func (u *CanteenItemUpsertOne) SetCategory(v string) *CanteenItemUpsertOne {
	return u.Update(func(s *CanteenItemUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *CanteenItemUpsertOne) UpdateCategory() *CanteenItemUpsertOne {
	return u.Update(func(s *CanteenItemUpsert) {
		s.UpdateCategory()
	})
}

// ClearCategory clears the value of the "category" field.
func (u *CanteenItemUpsertOne) ClearCategory() *CanteenItemUpsertOne {
	return u.Update(func(s *CanteenItemUpsert) {
		s.ClearCategory()
	})
}

// SetPrice sets the "price" field.
func (u *CanteenItemUpsertOne) SetPrice(v int64) *CanteenItemUpsertOne {
	return u.Update(func(s *CanteenItemUpsert) {
		s.SetPrice(v)
	})
}

// AddPrice adds v to the "price" field.
func (u *CanteenItemUpsertOne) AddPrice(v int64) *CanteenItemUpsertOne {
	return u.Update(func(s *CanteenItemUpsert) {
		s.AddPrice(v)
	})
}

// UpdatePrice sets the "price" field to the value that was provided on create.
func (u *CanteenItemUpsertOne) UpdatePrice() *CanteenItemUpsertOne {
	return u.Update(func(s *CanteenItemUpsert) {
		s.UpdatePrice()
	})
}

// SetAvailable sets the "available" field.
func (u *CanteenItemUpsertOne) SetAvailable(v bool) *CanteenItemUpsertOne {
	return u.Update(func(s *CanteenItemUpsert) {
		s.SetAvailable(v)
	})
}

// UpdateAvailable sets the "available" field to the value that was provided on create.
func (u *CanteenItemUpsertOne) UpdateAvailable() *CanteenItemUpsertOne {
	return u.Update(func(s *CanteenItemUpsert) {
		s.UpdateAvailable()
	})
}

// Exec executes the query.
func (u *CanteenItemUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for CanteenItemCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CanteenItemUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CanteenItemUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: CanteenItemUpsertOne.ID is not supported by MySQL driver. Use CanteenItemUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CanteenItemUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CanteenItemCreateBulk is the builder for creating many CanteenItem entities in bulk.
type CanteenItemCreateBulk struct {
	config
	err      error
	builders []*CanteenItemCreate
	conflict []sql.ConflictOption
}

// Save creates the CanteenItem entities in the database.
func (_c *CanteenItemCreateBulk) Save(ctx context.Context) ([]*CanteenItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CanteenItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CanteenItemMutation)
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
func (_c *CanteenItemCreateBulk) SaveX(ctx context.Context) []*CanteenItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CanteenItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CanteenItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CanteenItem.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CanteenItemUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *CanteenItemCreateBulk) OnConflict(opts ...sql.ConflictOption) *CanteenItemUpsertBulk {
	_c.conflict = opts
	return &CanteenItemUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CanteenItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CanteenItemCreateBulk) OnConflictColumns(columns ...string) *CanteenItemUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CanteenItemUpsertBulk{
		create: _c,
	}
}

// CanteenItemUpsertBulk is the builder for "upsert"-ing
// a bulk of CanteenItem nodes.
type CanteenItemUpsertBulk struct {
	create *CanteenItemCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CanteenItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(canteenitem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CanteenItemUpsertBulk) UpdateNewValues() *CanteenItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(canteenitem.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(canteenitem.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CanteenItem.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CanteenItemUpsertBulk) Ignore() *CanteenItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CanteenItemUpsertBulk) DoNothing() *CanteenItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CanteenItemCreateBulk.OnConflict
// documentation for more info.
func (u *CanteenItemUpsertBulk) Update(set func(*CanteenItemUpsert)) *CanteenItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CanteenItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CanteenItemUpsertBulk) SetUpdatedAt(v time.Time) *CanteenItemUpsertBulk {
	return u.Update(func(s *CanteenItemUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CanteenItemUpsertBulk) UpdateUpdatedAt() *CanteenItemUpsertBulk {
	return u.Update(func(s *CanteenItemUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetName sets the "name" field.
func (u *CanteenItemUpsertBulk) SetName(v string) *CanteenItemUpsertBulk {
	return u.Update(func(s *CanteenItemUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CanteenItemUpsertBulk) UpdateName() *CanteenItemUpsertBulk {
	return u.Update(func(s *CanteenItemUpsert) {
		s.UpdateName()
	})
}

// SetCategory sets the "category" field.
func (u *CanteenItemUpsertBulk) SetCategory(v string) *CanteenItemUpsertBulk {
	return u.Update(func(s *CanteenItemUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *CanteenItemUpsertBulk) UpdateCategory() *CanteenItemUpsertBulk {
	return u.Update(func(s *CanteenItemUpsert) {
		s.UpdateCategory()
	})
}

// ClearCategory clears the value of the "category" field.
func (u *CanteenItemUpsertBulk) ClearCategory() *CanteenItemUpsertBulk {
	return u.Update(func(s *CanteenItemUpsert) {
		s.ClearCategory()
	})
}

// SetPrice sets the "price" field.
func (u *CanteenItemUpsertBulk) SetPrice(v int64) *CanteenItemUpsertBulk {
	return u.Update(func(s *CanteenItemUpsert) {
		s.SetPrice(v)
	})
}

// AddPrice adds v to the "price" field.
func (u *CanteenItemUpsertBulk) AddPrice(v int64) *CanteenItemUpsertBulk {
	return u.Update(func(s *CanteenItemUpsert) {
		s.AddPrice(v)
	})
}

// UpdatePrice sets the "price" field to the value that was provided on create.
func (u *CanteenItemUpsertBulk) UpdatePrice() *CanteenItemUpsertBulk {
	return u.Update(func(s *CanteenItemUpsert) {
		s.UpdatePrice()
	})
}

// SetAvailable sets the "available" field.
func (u *CanteenItemUpsertBulk) SetAvailable(v bool) *CanteenItemUpsertBulk {
	return u.Update(func(s *CanteenItemUpsert) {
		s.SetAvailable(v)
	})
}

// UpdateAvailable sets the "available" field to the value that was provided on create.
func (u *CanteenItemUpsertBulk) UpdateAvailable() *CanteenItemUpsertBulk {
	return u.Update(func(s *CanteenItemUpsert) {
		s.UpdateAvailable()
	})
}

// Exec executes the query.
func (u *CanteenItemUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the CanteenItemCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for CanteenItemCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CanteenItemUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
