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
	"github.com/niramoy/niramoy_backend/internal/repo/canteensaleitem"
)

// CanteenSaleItemCreate is the builder for creating a CanteenSaleItem entity.
type CanteenSaleItemCreate struct {
	config
	mutation *CanteenSaleItemMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *CanteenSaleItemCreate) SetCreatedAt(v time.Time) *CanteenSaleItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CanteenSaleItemCreate) SetNillableCreatedAt(v *time.Time) *CanteenSaleItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetSaleID sets the "sale_id" field.
func (_c *CanteenSaleItemCreate) SetSaleID(v uuid.UUID) *CanteenSaleItemCreate {
	_c.mutation.SetSaleID(v)
	return _c
}

// SetItemID sets the "item_id" field.
func (_c *CanteenSaleItemCreate) SetItemID(v uuid.UUID) *CanteenSaleItemCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *CanteenSaleItemCreate) SetQuantity(v int) *CanteenSaleItemCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetUnitPrice sets the "unit_price" field.
func (_c *CanteenSaleItemCreate) SetUnitPrice(v int64) *CanteenSaleItemCreate {
	_c.mutation.SetUnitPrice(v)
	return _c
}

// SetSubtotal sets the "subtotal" field.
func (_c *CanteenSaleItemCreate) SetSubtotal(v int64) *CanteenSaleItemCreate {
	_c.mutation.SetSubtotal(v)
	return _c
}

// SetID sets the "id" field.
func (_c *CanteenSaleItemCreate) SetID(v uuid.UUID) *CanteenSaleItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CanteenSaleItemCreate) SetNillableID(v *uuid.UUID) *CanteenSaleItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the CanteenSaleItemMutation object of the builder.
func (_c *CanteenSaleItemCreate) Mutation() *CanteenSaleItemMutation {
	return _c.mutation
}

// Save creates the CanteenSaleItem in the database.
func (_c *CanteenSaleItemCreate) Save(ctx context.Context) (*CanteenSaleItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CanteenSaleItemCreate) SaveX(ctx context.Context) *CanteenSaleItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CanteenSaleItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CanteenSaleItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CanteenSaleItemCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := canteensaleitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := canteensaleitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CanteenSaleItemCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "CanteenSaleItem.created_at"`)}
	}
	if _, ok := _c.mutation.SaleID(); !ok {
		return &ValidationError{Name: "sale_id", err: errors.New(`repo: missing required field "CanteenSaleItem.sale_id"`)}
	}
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`repo: missing required field "CanteenSaleItem.item_id"`)}
	}
	if _, ok := _c.mutation.Quantity(); !ok {
		return &ValidationError{Name: "quantity", err: errors.New(`repo: missing required field "CanteenSaleItem.quantity"`)}
	}
	if v, ok := _c.mutation.Quantity(); ok {
		if err := canteensaleitem.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`repo: validator failed for field "CanteenSaleItem.quantity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UnitPrice(); !ok {
		return &ValidationError{Name: "unit_price", err: errors.New(`repo: missing required field "CanteenSaleItem.unit_price"`)}
	}
	if v, ok := _c.mutation.UnitPrice(); ok {
		if err := canteensaleitem.UnitPriceValidator(v); err != nil {
			return &ValidationError{Name: "unit_price", err: fmt.Errorf(`repo: validator failed for field "CanteenSaleItem.unit_price": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subtotal(); !ok {
		return &ValidationError{Name: "subtotal", err: errors.New(`repo: missing required field "CanteenSaleItem.subtotal"`)}
	}
	if v, ok := _c.mutation.Subtotal(); ok {
		if err := canteensaleitem.SubtotalValidator(v); err != nil {
			return &ValidationError{Name: "subtotal", err: fmt.Errorf(`repo: validator failed for field "CanteenSaleItem.subtotal": %w`, err)}
		}
	}
	return nil
}

func (_c *CanteenSaleItemCreate) sqlSave(ctx context.Context) (*CanteenSaleItem, error) {
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

func (_c *CanteenSaleItemCreate) createSpec() (*CanteenSaleItem, *sqlgraph.CreateSpec) {
	var (
		_node = &CanteenSaleItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(canteensaleitem.Table, sqlgraph.NewFieldSpec(canteensaleitem.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(canteensaleitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.SaleID(); ok {
		_spec.SetField(canteensaleitem.FieldSaleID, field.TypeUUID, value)
		_node.SaleID = value
	}
	if value, ok := _c.mutation.ItemID(); ok {
		_spec.SetField(canteensaleitem.FieldItemID, field.TypeUUID, value)
		_node.ItemID = value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(canteensaleitem.FieldQuantity, field.TypeInt, value)
		_node.Quantity = value
	}
	if value, ok := _c.mutation.UnitPrice(); ok {
		_spec.SetField(canteensaleitem.FieldUnitPrice, field.TypeInt64, value)
		_node.UnitPrice = value
	}
	if value, ok := _c.mutation.Subtotal(); ok {
		_spec.SetField(canteensaleitem.FieldSubtotal, field.TypeInt64, value)
		_node.Subtotal = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CanteenSaleItem.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CanteenSaleItemUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *CanteenSaleItemCreate) OnConflict(opts ...sql.ConflictOption) *CanteenSaleItemUpsertOne {
	_c.conflict = opts
	return &CanteenSaleItemUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CanteenSaleItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CanteenSaleItemCreate) OnConflictColumns(columns ...string) *CanteenSaleItemUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CanteenSaleItemUpsertOne{
		create: _c,
	}
}

type (
	// CanteenSaleItemUpsertOne is the builder for "upsert"-ing
	//  one CanteenSaleItem node.
	CanteenSaleItemUpsertOne struct {
		create *CanteenSaleItemCreate
	}

	// CanteenSaleItemUpsert is the "OnConflict" setter.
	CanteenSaleItemUpsert struct {
		*sql.UpdateSet
	}
)

// SetSaleID sets the "sale_id" field.
func (u *CanteenSaleItemUpsert) SetSaleID(v uuid.UUID) *CanteenSaleItemUpsert {
	u.Set(canteensaleitem.FieldSaleID, v)
	return u
}

// UpdateSaleID sets the "sale_id" field to the value that was provided on create.
func (u *CanteenSaleItemUpsert) UpdateSaleID() *CanteenSaleItemUpsert {
	u.SetExcluded(canteensaleitem.FieldSaleID)
	return u
}

// SetItemID sets the "item_id" field.
func (u *CanteenSaleItemUpsert) SetItemID(v uuid.UUID) *CanteenSaleItemUpsert {
	u.Set(canteensaleitem.FieldItemID, v)
	return u
}

// UpdateItemID sets the "item_id" field to the value that was provided on create.
func (u *CanteenSaleItemUpsert) UpdateItemID() *CanteenSaleItemUpsert {
	u.SetExcluded(canteensaleitem.FieldItemID)
	return u
}

// SetQuantity sets the "quantity" field.
func (u *CanteenSaleItemUpsert) SetQuantity(v int) *CanteenSaleItemUpsert {
	u.Set(canteensaleitem.FieldQuantity, v)
	return u
}

// UpdateQuantity sets the "quantity" field to the value that was provided on create.
func (u *CanteenSaleItemUpsert) UpdateQuantity() *CanteenSaleItemUpsert {
	u.SetExcluded(canteensaleitem.FieldQuantity)
	return u
}

// AddQuantity adds v to the "quantity" field.
func (u *CanteenSaleItemUpsert) AddQuantity(v int) *CanteenSaleItemUpsert {
	u.Add(canteensaleitem.FieldQuantity, v)
	return u
}

// SetUnitPrice sets the "unit_price" field.
func (u *CanteenSaleItemUpsert) SetUnitPrice(v int64) *CanteenSaleItemUpsert {
	u.Set(canteensaleitem.FieldUnitPrice, v)
	return u
}

// UpdateUnitPrice sets the "unit_price" field to the value that was provided on create.
func (u *CanteenSaleItemUpsert) UpdateUnitPrice() *CanteenSaleItemUpsert {
	u.SetExcluded(canteensaleitem.FieldUnitPrice)
	return u
}

// AddUnitPrice adds v to the "unit_price" field.
func (u *CanteenSaleItemUpsert) AddUnitPrice(v int64) *CanteenSaleItemUpsert {
	u.Add(canteensaleitem.FieldUnitPrice, v)
	return u
}

// SetSubtotal sets the "subtotal" field.
func (u *CanteenSaleItemUpsert) SetSubtotal(v int64) *CanteenSaleItemUpsert {
	u.Set(canteensaleitem.FieldSubtotal, v)
	return u
}

// UpdateSubtotal sets the "subtotal" field to the value that was provided on create.
func (u *CanteenSaleItemUpsert) UpdateSubtotal() *CanteenSaleItemUpsert {
	u.SetExcluded(canteensaleitem.FieldSubtotal)
	return u
}

// AddSubtotal adds v to the "subtotal" field.
func (u *CanteenSaleItemUpsert) AddSubtotal(v int64) *CanteenSaleItemUpsert {
	u.Add(canteensaleitem.FieldSubtotal, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CanteenSaleItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(canteensaleitem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CanteenSaleItemUpsertOne) UpdateNewValues() *CanteenSaleItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(canteensaleitem.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(canteensaleitem.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CanteenSaleItem.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CanteenSaleItemUpsertOne) Ignore() *CanteenSaleItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CanteenSaleItemUpsertOne) DoNothing() *CanteenSaleItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CanteenSaleItemCreate.OnConflict
// documentation for more info.
func (u *CanteenSaleItemUpsertOne) Update(set func(*CanteenSaleItemUpsert)) *CanteenSaleItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CanteenSaleItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetSaleID sets the "sale_id" field.
func (u *CanteenSaleItemUpsertOne) SetSaleID(v uuid.UUID) *CanteenSaleItemUpsertOne {
	return u.Update(func(s *CanteenSaleItemUpsert) {
		s.SetSaleID(v)
	})
}

// UpdateSaleID sets the "sale_id" field to the value that was provided on create.
func (u *CanteenSaleItemUpsertOne) UpdateSaleID() *CanteenSaleItemUpsertOne {
	return u.Update(func(s *CanteenSaleItemUpsert) {
		s.UpdateSaleID()
	})
}

// SetItemID sets the "item_id" field.
func (u *CanteenSaleItemUpsertOne) SetItemID(v uuid.UUID) *CanteenSaleItemUpsertOne {
	return u.Update(func(s *CanteenSaleItemUpsert) {
		s.SetItemID(v)
	})
}

// UpdateItemID sets the "item_id" field to the value that was provided on create.
func (u *CanteenSaleItemUpsertOne) UpdateItemID() *CanteenSaleItemUpsertOne {
	return u.Update(func(s *CanteenSaleItemUpsert) {
		s.UpdateItemID()
	})
}

// SetQuantity sets the "quantity" field.
func (u *CanteenSaleItemUpsertOne) SetQuantity(v int) *CanteenSaleItemUpsertOne {
	return u.Update(func(s *CanteenSaleItemUpsert) {
		s.SetQuantity(v)
	})
}

// AddQuantity adds v to the "quantity" field.
func (u *CanteenSaleItemUpsertOne) AddQuantity(v int) *CanteenSaleItemUpsertOne {
	return u.Update(func(s *CanteenSaleItemUpsert) {
		s.AddQuantity(v)
	})
}

// UpdateQuantity sets the "quantity" field to the value that was provided on create.
func (u *CanteenSaleItemUpsertOne) UpdateQuantity() *CanteenSaleItemUpsertOne {
	return u.Update(func(s *CanteenSaleItemUpsert) {
		s.UpdateQuantity()
	})
}

// SetUnitPrice sets the "unit_price" field.
func (u *CanteenSaleItemUpsertOne) SetUnitPrice(v int64) *CanteenSaleItemUpsertOne {
	return u.Update(func(s *CanteenSaleItemUpsert) {
		s.SetUnitPrice(v)
	})
}

// AddUnitPrice adds v to the "unit_price" field.
func (u *CanteenSaleItemUpsertOne) AddUnitPrice(v int64) *CanteenSaleItemUpsertOne {
	return u.Update(func(s *CanteenSaleItemUpsert) {
		s.AddUnitPrice(v)
	})
}

// UpdateUnitPrice sets the "unit_price" field to the value that was provided on create.
func (u *CanteenSaleItemUpsertOne) UpdateUnitPrice() *CanteenSaleItemUpsertOne {
	return u.Update(func(s *CanteenSaleItemUpsert) {
		s.UpdateUnitPrice()
	})
}

// SetSubtotal sets the "subtotal" field.
func (u *CanteenSaleItemUpsertOne) SetSubtotal(v int64) *CanteenSaleItemUpsertOne {
	return u.Update(func(s *CanteenSaleItemUpsert) {
		s.SetSubtotal(v)
	})
}

// AddSubtotal adds v to the "subtotal" field.
func (u *CanteenSaleItemUpsertOne) AddSubtotal(v int64) *CanteenSaleItemUpsertOne {
	return u.Update(func(s *CanteenSaleItemUpsert) {
		s.AddSubtotal(v)
	})
}

// UpdateSubtotal sets the "subtotal" field to the value that was provided on create.
func (u *CanteenSaleItemUpsertOne) UpdateSubtotal() *CanteenSaleItemUpsertOne {
	return u.Update(func(s *CanteenSaleItemUpsert) {
		s.UpdateSubtotal()
	})
}

// Exec executes the query.
func (u *CanteenSaleItemUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for CanteenSaleItemCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CanteenSaleItemUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CanteenSaleItemUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: CanteenSaleItemUpsertOne.ID is not supported by MySQL driver. Use CanteenSaleItemUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CanteenSaleItemUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CanteenSaleItemCreateBulk is the builder for creating many CanteenSaleItem entities in bulk.
type CanteenSaleItemCreateBulk struct {
	config
	err      error
	builders []*CanteenSaleItemCreate
	conflict []sql.ConflictOption
}

// Save creates the CanteenSaleItem entities in the database.
func (_c *CanteenSaleItemCreateBulk) Save(ctx context.Context) ([]*CanteenSaleItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CanteenSaleItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CanteenSaleItemMutation)
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
func (_c *CanteenSaleItemCreateBulk) SaveX(ctx context.Context) []*CanteenSaleItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CanteenSaleItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CanteenSaleItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CanteenSaleItem.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CanteenSaleItemUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *CanteenSaleItemCreateBulk) OnConflict(opts ...sql.ConflictOption) *CanteenSaleItemUpsertBulk {
	_c.conflict = opts
	return &CanteenSaleItemUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CanteenSaleItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CanteenSaleItemCreateBulk) OnConflictColumns(columns ...string) *CanteenSaleItemUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CanteenSaleItemUpsertBulk{
		create: _c,
	}
}

// CanteenSaleItemUpsertBulk is the builder for "upsert"-ing
// a bulk of CanteenSaleItem nodes.
type CanteenSaleItemUpsertBulk struct {
	create *CanteenSaleItemCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CanteenSaleItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(canteensaleitem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CanteenSaleItemUpsertBulk) UpdateNewValues() *CanteenSaleItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(canteensaleitem.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(canteensaleitem.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CanteenSaleItem.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CanteenSaleItemUpsertBulk) Ignore() *CanteenSaleItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CanteenSaleItemUpsertBulk) DoNothing() *CanteenSaleItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CanteenSaleItemCreateBulk.OnConflict
// documentation for more info.
func (u *CanteenSaleItemUpsertBulk) Update(set func(*CanteenSaleItemUpsert)) *CanteenSaleItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CanteenSaleItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetSaleID sets the "sale_id" field.
func (u *CanteenSaleItemUpsertBulk) SetSaleID(v uuid.UUID) *CanteenSaleItemUpsertBulk {
	return u.Update(func(s *CanteenSaleItemUpsert) {
		s.SetSaleID(v)
	})
}

// UpdateSaleID sets the "sale_id" field to the value that was provided on create.
func (u *CanteenSaleItemUpsertBulk) UpdateSaleID() *CanteenSaleItemUpsertBulk {
	return u.Update(func(s *CanteenSaleItemUpsert) {
		s.UpdateSaleID()
	})
}

// SetItemID sets the "item_id" field.
func (u *CanteenSaleItemUpsertBulk) SetItemID(v uuid.UUID) *CanteenSaleItemUpsertBulk {
	return u.Update(func(s *CanteenSaleItemUpsert) {
		s.SetItemID(v)
	})
}

// UpdateItemID sets the "item_id" field to the value that was provided on create.
func (u *CanteenSaleItemUpsertBulk) UpdateItemID() *CanteenSaleItemUpsertBulk {
	return u.Update(func(s *CanteenSaleItemUpsert) {
		s.UpdateItemID()
	})
}

// SetQuantity sets the "quantity" field.
func (u *CanteenSaleItemUpsertBulk) SetQuantity(v int) *CanteenSaleItemUpsertBulk {
	return u.Update(func(s *CanteenSaleItemUpsert) {
		s.SetQuantity(v)
	})
}

// AddQuantity adds v to the "quantity" field.
func (u *CanteenSaleItemUpsertBulk) AddQuantity(v int) *CanteenSaleItemUpsertBulk {
	return u.Update(func(s *CanteenSaleItemUpsert) {
		s.AddQuantity(v)
	})
}

// UpdateQuantity sets the "quantity" field to the value that was provided on create.
func (u *CanteenSaleItemUpsertBulk) UpdateQuantity() *CanteenSaleItemUpsertBulk {
	return u.Update(func(s *CanteenSaleItemUpsert) {
		s.UpdateQuantity()
	})
}

// SetUnitPrice sets the "unit_price" field.
func (u *CanteenSaleItemUpsertBulk) SetUnitPrice(v int64) *CanteenSaleItemUpsertBulk {
	return u.Update(func(s *CanteenSaleItemUpsert) {
		s.SetUnitPrice(v)
	})
}

// AddUnitPrice adds v to the "unit_price" field.
func (u *CanteenSaleItemUpsertBulk) AddUnitPrice(v int64) *CanteenSaleItemUpsertBulk {
	return u.Update(func(s *CanteenSaleItemUpsert) {
		s.AddUnitPrice(v)
	})
}

// UpdateUnitPrice sets the "unit_price" field to the value that was provided on create.
func (u *CanteenSaleItemUpsertBulk) UpdateUnitPrice() *CanteenSaleItemUpsertBulk {
	return u.Update(func(s *CanteenSaleItemUpsert) {
		s.UpdateUnitPrice()
	})
}

// SetSubtotal sets the "subtotal" field.
func (u *CanteenSaleItemUpsertBulk) SetSubtotal(v int64) *CanteenSaleItemUpsertBulk {
	return u.Update(func(s *CanteenSaleItemUpsert) {
		s.SetSubtotal(v)
	})
}

// AddSubtotal adds v to the "subtotal" field.
func (u *CanteenSaleItemUpsertBulk) AddSubtotal(v int64) *CanteenSaleItemUpsertBulk {
	return u.Update(func(s *CanteenSaleItemUpsert) {
		s.AddSubtotal(v)
	})
}

// UpdateSubtotal sets the "subtotal" field to the value that was provided on create.
func (u *CanteenSaleItemUpsertBulk) UpdateSubtotal() *CanteenSaleItemUpsertBulk {
	return u.Update(func(s *CanteenSaleItemUpsert) {
		s.UpdateSubtotal()
	})
}

// Exec executes the query.
func (u *CanteenSaleItemUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the CanteenSaleItemCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for CanteenSaleItemCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CanteenSaleItemUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
