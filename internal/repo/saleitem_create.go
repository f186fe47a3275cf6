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
	"github.com/niramoy/niramoy_backend/internal/repo/saleitem"
)

// SaleItemCreate is the builder for creating a SaleItem entity.
type SaleItemCreate struct {
	config
	mutation *SaleItemMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *SaleItemCreate) SetCreatedAt(v time.Time) *SaleItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SaleItemCreate) SetNillableCreatedAt(v *time.Time) *SaleItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetSaleID sets the "sale_id" field.
func (_c *SaleItemCreate) SetSaleID(v uuid.UUID) *SaleItemCreate {
	_c.mutation.SetSaleID(v)
	return _c
}

// SetDrugID sets the "drug_id" field.
func (_c *SaleItemCreate) SetDrugID(v uuid.UUID) *SaleItemCreate {
	_c.mutation.SetDrugID(v)
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *SaleItemCreate) SetQuantity(v int) *SaleItemCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetUnitPrice sets the "unit_price" field.
func (_c *SaleItemCreate) SetUnitPrice(v int64) *SaleItemCreate {
	_c.mutation.SetUnitPrice(v)
	return _c
}

// SetSubtotal sets the "subtotal" field.
func (_c *SaleItemCreate) SetSubtotal(v int64) *SaleItemCreate {
	_c.mutation.SetSubtotal(v)
	return _c
}

// SetID sets the "id" field.
func (_c *SaleItemCreate) SetID(v uuid.UUID) *SaleItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SaleItemCreate) SetNillableID(v *uuid.UUID) *SaleItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the SaleItemMutation object of the builder.
func (_c *SaleItemCreate) Mutation() *SaleItemMutation {
	return _c.mutation
}

// Save creates the SaleItem in the database.
func (_c *SaleItemCreate) Save(ctx context.Context) (*SaleItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SaleItemCreate) SaveX(ctx context.Context) *SaleItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SaleItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SaleItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SaleItemCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := saleitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := saleitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SaleItemCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "SaleItem.created_at"`)}
	}
	if _, ok := _c.mutation.SaleID(); !ok {
		return &ValidationError{Name: "sale_id", err: errors.New(`repo: missing required field "SaleItem.sale_id"`)}
	}
	if _, ok := _c.mutation.DrugID(); !ok {
		return &ValidationError{Name: "drug_id", err: errors.New(`repo: missing required field "SaleItem.drug_id"`)}
	}
	if _, ok := _c.mutation.Quantity(); !ok {
		return &ValidationError{Name: "quantity", err: errors.New(`repo: missing required field "SaleItem.quantity"`)}
	}
	if v, ok := _c.mutation.Quantity(); ok {
		if err := saleitem.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`repo: validator failed for field "SaleItem.quantity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UnitPrice(); !ok {
		return &ValidationError{Name: "unit_price", err: errors.New(`repo: missing required field "SaleItem.unit_price"`)}
	}
	if v, ok := _c.mutation.UnitPrice(); ok {
		if err := saleitem.UnitPriceValidator(v); err != nil {
			return &ValidationError{Name: "unit_price", err: fmt.Errorf(`repo: validator failed for field "SaleItem.unit_price": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subtotal(); !ok {
		return &ValidationError{Name: "subtotal", err: errors.New(`repo: missing required field "SaleItem.subtotal"`)}
	}
	if v, ok := _c.mutation.Subtotal(); ok {
		if err := saleitem.SubtotalValidator(v); err != nil {
			return &ValidationError{Name: "subtotal", err: fmt.Errorf(`repo: validator failed for field "SaleItem.subtotal": %w`, err)}
		}
	}
	return nil
}

func (_c *SaleItemCreate) sqlSave(ctx context.Context) (*SaleItem, error) {
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

func (_c *SaleItemCreate) createSpec() (*SaleItem, *sqlgraph.CreateSpec) {
	var (
		_node = &SaleItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(saleitem.Table, sqlgraph.NewFieldSpec(saleitem.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(saleitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.SaleID(); ok {
		_spec.SetField(saleitem.FieldSaleID, field.TypeUUID, value)
		_node.SaleID = value
	}
	if value, ok := _c.mutation.DrugID(); ok {
		_spec.SetField(saleitem.FieldDrugID, field.TypeUUID, value)
		_node.DrugID = value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(saleitem.FieldQuantity, field.TypeInt, value)
		_node.Quantity = value
	}
	if value, ok := _c.mutation.UnitPrice(); ok {
		_spec.SetField(saleitem.FieldUnitPrice, field.TypeInt64, value)
		_node.UnitPrice = value
	}
	if value, ok := _c.mutation.Subtotal(); ok {
		_spec.SetField(saleitem.FieldSubtotal, field.TypeInt64, value)
		_node.Subtotal = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SaleItem.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SaleItemUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SaleItemCreate) OnConflict(opts ...sql.ConflictOption) *SaleItemUpsertOne {
	_c.conflict = opts
	return &SaleItemUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SaleItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SaleItemCreate) OnConflictColumns(columns ...string) *SaleItemUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SaleItemUpsertOne{
		create: _c,
	}
}

type (
	// SaleItemUpsertOne is the builder for "upsert"-ing
	//  one SaleItem node.
	SaleItemUpsertOne struct {
		create *SaleItemCreate
	}

	// SaleItemUpsert is the "OnConflict" setter.
	SaleItemUpsert struct {
		*sql.UpdateSet
	}
)

// SetSaleID sets the "sale_id" field.
func (u *SaleItemUpsert) SetSaleID(v uuid.UUID) *SaleItemUpsert {
	u.Set(saleitem.FieldSaleID, v)
	return u
}

// UpdateSaleID sets the "sale_id" field to the value that was provided on create.
func (u *SaleItemUpsert) UpdateSaleID() *SaleItemUpsert {
	u.SetExcluded(saleitem.FieldSaleID)
	return u
}

// SetDrugID sets the "drug_id" field.
func (u *SaleItemUpsert) SetDrugID(v uuid.UUID) *SaleItemUpsert {
	u.Set(saleitem.FieldDrugID, v)
	return u
}

// UpdateDrugID sets the "drug_id" field to the value that was provided on create.
func (u *SaleItemUpsert) UpdateDrugID() *SaleItemUpsert {
	u.SetExcluded(saleitem.FieldDrugID)
	return u
}

// SetQuantity sets the "quantity" field.
func (u *SaleItemUpsert) SetQuantity(v int) *SaleItemUpsert {
	u.Set(saleitem.FieldQuantity, v)
	return u
}

// UpdateQuantity sets the "quantity" field to the value that was provided on create.
func (u *SaleItemUpsert) UpdateQuantity() *SaleItemUpsert {
	u.SetExcluded(saleitem.FieldQuantity)
	return u
}

// AddQuantity adds v to the "quantity" field.
func (u *SaleItemUpsert) AddQuantity(v int) *SaleItemUpsert {
	u.Add(saleitem.FieldQuantity, v)
	return u
}

// SetUnitPrice sets the "unit_price" field.
func (u *SaleItemUpsert) SetUnitPrice(v int64) *SaleItemUpsert {
	u.Set(saleitem.FieldUnitPrice, v)
	return u
}

// UpdateUnitPrice sets the "unit_price" field to the value that was provided on create.
func (u *SaleItemUpsert) UpdateUnitPrice() *SaleItemUpsert {
	u.SetExcluded(saleitem.FieldUnitPrice)
	return u
}

// AddUnitPrice adds v to the "unit_price" field.
func (u *SaleItemUpsert) AddUnitPrice(v int64) *SaleItemUpsert {
	u.Add(saleitem.FieldUnitPrice, v)
	return u
}

// SetSubtotal sets the "subtotal" field.
func (u *SaleItemUpsert) SetSubtotal(v int64) *SaleItemUpsert {
	u.Set(saleitem.FieldSubtotal, v)
	return u
}

// UpdateSubtotal sets the "subtotal" field to the value that was provided on create.
func (u *SaleItemUpsert) UpdateSubtotal() *SaleItemUpsert {
	u.SetExcluded(saleitem.FieldSubtotal)
	return u
}

// AddSubtotal adds v to the "subtotal" field.
func (u *SaleItemUpsert) AddSubtotal(v int64) *SaleItemUpsert {
	u.Add(saleitem.FieldSubtotal, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SaleItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(saleitem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SaleItemUpsertOne) UpdateNewValues() *SaleItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(saleitem.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(saleitem.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SaleItem.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SaleItemUpsertOne) Ignore() *SaleItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SaleItemUpsertOne) DoNothing() *SaleItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SaleItemCreate.OnConflict
// documentation for more info.
func (u *SaleItemUpsertOne) Update(set func(*SaleItemUpsert)) *SaleItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SaleItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetSaleID sets the "sale_id" field.
func (u *SaleItemUpsertOne) SetSaleID(v uuid.UUID) *SaleItemUpsertOne {
	return u.Update(func(s *SaleItemUpsert) {
		s.SetSaleID(v)
	})
}

// UpdateSaleID sets the "sale_id" field to the value that was provided on create.
func (u *SaleItemUpsertOne) UpdateSaleID() *SaleItemUpsertOne {
	return u.Update(func(s *SaleItemUpsert) {
		s.UpdateSaleID()
	})
}

// SetDrugID sets the "drug_id" field.
func (u *SaleItemUpsertOne) SetDrugID(v uuid.UUID) *SaleItemUpsertOne {
	return u.Update(func(s *SaleItemUpsert) {
		s.SetDrugID(v)
	})
}

// UpdateDrugID sets the "drug_id" field to the value that was provided on create.
func (u *SaleItemUpsertOne) UpdateDrugID() *SaleItemUpsertOne {
	return u.Update(func(s *SaleItemUpsert) {
		s.UpdateDrugID()
	})
}

// SetQuantity sets the "quantity" field.
func (u *SaleItemUpsertOne) SetQuantity(v int) *SaleItemUpsertOne {
	return u.Update(func(s *SaleItemUpsert) {
		s.SetQuantity(v)
	})
}

// AddQuantity adds v to the "quantity" field.
func (u *SaleItemUpsertOne) AddQuantity(v int) *SaleItemUpsertOne {
	return u.Update(func(s *SaleItemUpsert) {
		s.AddQuantity(v)
	})
}

// UpdateQuantity sets the "quantity" field to the value that was provided on create.
func (u *SaleItemUpsertOne) UpdateQuantity() *SaleItemUpsertOne {
	return u.Update(func(s *SaleItemUpsert) {
		s.UpdateQuantity()
	})
}

// SetUnitPrice sets the "unit_price" field.
func (u *SaleItemUpsertOne) SetUnitPrice(v int64) *SaleItemUpsertOne {
	return u.Update(func(s *SaleItemUpsert) {
		s.SetUnitPrice(v)
	})
}

// AddUnitPrice adds v to the "unit_price" field.
func (u *SaleItemUpsertOne) AddUnitPrice(v int64) *SaleItemUpsertOne {
	return u.Update(func(s *SaleItemUpsert) {
		s.AddUnitPrice(v)
	})
}

// UpdateUnitPrice sets the "unit_price" field to the value that was provided on create.
func (u *SaleItemUpsertOne) UpdateUnitPrice() *SaleItemUpsertOne {
	return u.Update(func(s *SaleItemUpsert) {
		s.UpdateUnitPrice()
	})
}

// SetSubtotal sets the "subtotal" field.
func (u *SaleItemUpsertOne) SetSubtotal(v int64) *SaleItemUpsertOne {
	return u.Update(func(s *SaleItemUpsert) {
		s.SetSubtotal(v)
	})
}

// AddSubtotal adds v to the "subtotal" field.
func (u *SaleItemUpsertOne) AddSubtotal(v int64) *SaleItemUpsertOne {
	return u.Update(func(s *SaleItemUpsert) {
		s.AddSubtotal(v)
	})
}

// UpdateSubtotal sets the "subtotal" field to the value that was provided on create.
func (u *SaleItemUpsertOne) UpdateSubtotal() *SaleItemUpsertOne {
	return u.Update(func(s *SaleItemUpsert) {
		s.UpdateSubtotal()
	})
}

// Exec executes the query.
func (u *SaleItemUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for SaleItemCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SaleItemUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SaleItemUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: SaleItemUpsertOne.ID is not supported by MySQL driver. Use SaleItemUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SaleItemUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SaleItemCreateBulk is the builder for creating many SaleItem entities in bulk.
type SaleItemCreateBulk struct {
	config
	err      error
	builders []*SaleItemCreate
	conflict []sql.ConflictOption
}

// Save creates the SaleItem entities in the database.
func (_c *SaleItemCreateBulk) Save(ctx context.Context) ([]*SaleItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SaleItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SaleItemMutation)
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
func (_c *SaleItemCreateBulk) SaveX(ctx context.Context) []*SaleItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SaleItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SaleItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SaleItem.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SaleItemUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SaleItemCreateBulk) OnConflict(opts ...sql.ConflictOption) *SaleItemUpsertBulk {
	_c.conflict = opts
	return &SaleItemUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SaleItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SaleItemCreateBulk) OnConflictColumns(columns ...string) *SaleItemUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SaleItemUpsertBulk{
		create: _c,
	}
}

// SaleItemUpsertBulk is the builder for "upsert"-ing
// a bulk of SaleItem nodes.
type SaleItemUpsertBulk struct {
	create *SaleItemCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SaleItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(saleitem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SaleItemUpsertBulk) UpdateNewValues() *SaleItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(saleitem.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(saleitem.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SaleItem.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SaleItemUpsertBulk) Ignore() *SaleItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SaleItemUpsertBulk) DoNothing() *SaleItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SaleItemCreateBulk.OnConflict
// documentation for more info.
func (u *SaleItemUpsertBulk) Update(set func(*SaleItemUpsert)) *SaleItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SaleItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetSaleID sets the "sale_id" field.
func (u *SaleItemUpsertBulk) SetSaleID(v uuid.UUID) *SaleItemUpsertBulk {
	return u.Update(func(s *SaleItemUpsert) {
		s.SetSaleID(v)
	})
}

// UpdateSaleID sets the "sale_id" field to the value that was provided on create.
func (u *SaleItemUpsertBulk) UpdateSaleID() *SaleItemUpsertBulk {
	return u.Update(func(s *SaleItemUpsert) {
		s.UpdateSaleID()
	})
}

// SetDrugID sets the "drug_id" field.
func (u *SaleItemUpsertBulk) SetDrugID(v uuid.UUID) *SaleItemUpsertBulk {
	return u.Update(func(s *SaleItemUpsert) {
		s.SetDrugID(v)
	})
}

// UpdateDrugID sets the "drug_id" field to the value that was provided on create.
func (u *SaleItemUpsertBulk) UpdateDrugID() *SaleItemUpsertBulk {
	return u.Update(func(s *SaleItemUpsert) {
		s.UpdateDrugID()
	})
}

// SetQuantity sets the "quantity" field.
func (u *SaleItemUpsertBulk) SetQuantity(v int) *SaleItemUpsertBulk {
	return u.Update(func(s *SaleItemUpsert) {
		s.SetQuantity(v)
	})
}

// AddQuantity adds v to the "quantity" field.
func (u *SaleItemUpsertBulk) AddQuantity(v int) *SaleItemUpsertBulk {
	return u.Update(func(s *SaleItemUpsert) {
		s.AddQuantity(v)
	})
}

// UpdateQuantity sets the "quantity" field to the value that was provided on create.
func (u *SaleItemUpsertBulk) UpdateQuantity() *SaleItemUpsertBulk {
	return u.Update(func(s *SaleItemUpsert) {
		s.UpdateQuantity()
	})
}

// SetUnitPrice sets the "unit_price" field.
func (u *SaleItemUpsertBulk) SetUnitPrice(v int64) *SaleItemUpsertBulk {
	return u.Update(func(s *SaleItemUpsert) {
		s.SetUnitPrice(v)
	})
}

// AddUnitPrice adds v to the "unit_price" field.
func (u *SaleItemUpsertBulk) AddUnitPrice(v int64) *SaleItemUpsertBulk {
	return u.Update(func(s *SaleItemUpsert) {
		s.AddUnitPrice(v)
	})
}

// UpdateUnitPrice sets the "unit_price" field to the value that was provided on create.
func (u *SaleItemUpsertBulk) UpdateUnitPrice() *SaleItemUpsertBulk {
	return u.Update(func(s *SaleItemUpsert) {
		s.UpdateUnitPrice()
	})
}

// SetSubtotal sets the "subtotal" field.
func (u *SaleItemUpsertBulk) SetSubtotal(v int64) *SaleItemUpsertBulk {
	return u.Update(func(s *SaleItemUpsert) {
		s.SetSubtotal(v)
	})
}

// AddSubtotal adds v to the "subtotal" field.
func (u *SaleItemUpsertBulk) AddSubtotal(v int64) *SaleItemUpsertBulk {
	return u.Update(func(s *SaleItemUpsert) {
		s.AddSubtotal(v)
	})
}

// UpdateSubtotal sets the "subtotal" field to the value that was provided on create.
func (u *SaleItemUpsertBulk) UpdateSubtotal() *SaleItemUpsertBulk {
	return u.Update(func(s *SaleItemUpsert) {
		s.UpdateSubtotal()
	})
}

// Exec executes the query.
func (u *SaleItemUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the SaleItemCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for SaleItemCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SaleItemUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
