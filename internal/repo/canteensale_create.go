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
	"github.com/niramoy/niramoy_backend/internal/repo/canteensale"
)

// CanteenSaleCreate is the builder for creating a CanteenSale entity.
type CanteenSaleCreate struct {
	config
	mutation *CanteenSaleMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *CanteenSaleCreate) SetCreatedAt(v time.Time) *CanteenSaleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CanteenSaleCreate) SetNillableCreatedAt(v *time.Time) *CanteenSaleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CanteenSaleCreate) SetUpdatedAt(v time.Time) *CanteenSaleCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CanteenSaleCreate) SetNillableUpdatedAt(v *time.Time) *CanteenSaleCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSaleNumber sets the "sale_number" field.
func (_c *CanteenSaleCreate) SetSaleNumber(v string) *CanteenSaleCreate {
	_c.mutation.SetSaleNumber(v)
	return _c
}

// SetTotalAmount sets the "total_amount" field.
func (_c *CanteenSaleCreate) SetTotalAmount(v int64) *CanteenSaleCreate {
	_c.mutation.SetTotalAmount(v)
	return _c
}

// SetAmountPaid sets the "amount_paid" field.
func (_c *CanteenSaleCreate) SetAmountPaid(v int64) *CanteenSaleCreate {
	_c.mutation.SetAmountPaid(v)
	return _c
}

// SetNillableAmountPaid sets the "amount_paid" field if the given value is not nil.
func (_c *CanteenSaleCreate) SetNillableAmountPaid(v *int64) *CanteenSaleCreate {
	if v != nil {
		_c.SetAmountPaid(*v)
	}
	return _c
}

// SetSoldBy sets the "sold_by" field.
func (_c *CanteenSaleCreate) SetSoldBy(v uuid.UUID) *CanteenSaleCreate {
	_c.mutation.SetSoldBy(v)
	return _c
}

// SetID sets the "id" field.
func (_c *CanteenSaleCreate) SetID(v uuid.UUID) *CanteenSaleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CanteenSaleCreate) SetNillableID(v *uuid.UUID) *CanteenSaleCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the CanteenSaleMutation object of the builder.
func (_c *CanteenSaleCreate) Mutation() *CanteenSaleMutation {
	return _c.mutation
}

// Save creates the CanteenSale in the database.
func (_c *CanteenSaleCreate) Save(ctx context.Context) (*CanteenSale, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CanteenSaleCreate) SaveX(ctx context.Context) *CanteenSale {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CanteenSaleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CanteenSaleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CanteenSaleCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := canteensale.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := canteensale.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.AmountPaid(); !ok {
		v := canteensale.DefaultAmountPaid
		_c.mutation.SetAmountPaid(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := canteensale.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CanteenSaleCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "CanteenSale.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "CanteenSale.updated_at"`)}
	}
	if _, ok := _c.mutation.SaleNumber(); !ok {
		return &ValidationError{Name: "sale_number", err: errors.New(`repo: missing required field "CanteenSale.sale_number"`)}
	}
	if v, ok := _c.mutation.SaleNumber(); ok {
		if err := canteensale.SaleNumberValidator(v); err != nil {
			return &ValidationError{Name: "sale_number", err: fmt.Errorf(`repo: validator failed for field "CanteenSale.sale_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalAmount(); !ok {
		return &ValidationError{Name: "total_amount", err: errors.New(`repo: missing required field "CanteenSale.total_amount"`)}
	}
	if v, ok := _c.mutation.TotalAmount(); ok {
		if err := canteensale.TotalAmountValidator(v); err != nil {
			return &ValidationError{Name: "total_amount", err: fmt.Errorf(`repo: validator failed for field "CanteenSale.total_amount": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AmountPaid(); !ok {
		return &ValidationError{Name: "amount_paid", err: errors.New(`repo: missing required field "CanteenSale.amount_paid"`)}
	}
	if v, ok := _c.mutation.AmountPaid(); ok {
		if err := canteensale.AmountPaidValidator(v); err != nil {
			return &ValidationError{Name: "amount_paid", err: fmt.Errorf(`repo: validator failed for field "CanteenSale.amount_paid": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SoldBy(); !ok {
		return &ValidationError{Name: "sold_by", err: errors.New(`repo: missing required field "CanteenSale.sold_by"`)}
	}
	return nil
}

func (_c *CanteenSaleCreate) sqlSave(ctx context.Context) (*CanteenSale, error) {
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

func (_c *CanteenSaleCreate) createSpec() (*CanteenSale, *sqlgraph.CreateSpec) {
	var (
		_node = &CanteenSale{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(canteensale.Table, sqlgraph.NewFieldSpec(canteensale.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(canteensale.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(canteensale.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.SaleNumber(); ok {
		_spec.SetField(canteensale.FieldSaleNumber, field.TypeString, value)
		_node.SaleNumber = value
	}
	if value, ok := _c.mutation.TotalAmount(); ok {
		_spec.SetField(canteensale.FieldTotalAmount, field.TypeInt64, value)
		_node.TotalAmount = value
	}
	if value, ok := _c.mutation.AmountPaid(); ok {
		_spec.SetField(canteensale.FieldAmountPaid, field.TypeInt64, value)
		_node.AmountPaid = value
	}
	if value, ok := _c.mutation.SoldBy(); ok {
		_spec.SetField(canteensale.FieldSoldBy, field.TypeUUID, value)
		_node.SoldBy = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CanteenSale.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CanteenSaleUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *CanteenSaleCreate) OnConflict(opts ...sql.ConflictOption) *CanteenSaleUpsertOne {
	_c.conflict = opts
	return &CanteenSaleUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CanteenSale.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CanteenSaleCreate) OnConflictColumns(columns ...string) *CanteenSaleUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CanteenSaleUpsertOne{
		create: _c,
	}
}

type (
	// CanteenSaleUpsertOne is the builder for "upsert"-ing
	//  one CanteenSale node.
	CanteenSaleUpsertOne struct {
		create *CanteenSaleCreate
	}

	// CanteenSaleUpsert is the "OnConflict" setter.
	CanteenSaleUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *CanteenSaleUpsert) SetUpdatedAt(v time.Time) *CanteenSaleUpsert {
	u.Set(canteensale.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CanteenSaleUpsert) UpdateUpdatedAt() *CanteenSaleUpsert {
	u.SetExcluded(canteensale.FieldUpdatedAt)
	return u
}

// SetSaleNumber sets the "sale_number" field.
func (u *CanteenSaleUpsert) SetSaleNumber(v string) *CanteenSaleUpsert {
	u.Set(canteensale.FieldSaleNumber, v)
	return u
}

// UpdateSaleNumber sets the "sale_number" field to the value that was provided on create.
func (u *CanteenSaleUpsert) UpdateSaleNumber() *CanteenSaleUpsert {
	u.SetExcluded(canteensale.FieldSaleNumber)
	return u
}

// SetTotalAmount sets the "total_amount" field.
func (u *CanteenSaleUpsert) SetTotalAmount(v int64) *CanteenSaleUpsert {
	u.Set(canteensale.FieldTotalAmount, v)
	return u
}

// UpdateTotalAmount sets the "total_amount" field to the value that was provided on create.
func (u *CanteenSaleUpsert) UpdateTotalAmount() *CanteenSaleUpsert {
	u.SetExcluded(canteensale.FieldTotalAmount)
	return u
}

// AddTotalAmount adds v to the "total_amount" field.
func (u *CanteenSaleUpsert) AddTotalAmount(v int64) *CanteenSaleUpsert {
	u.Add(canteensale.FieldTotalAmount, v)
	return u
}

// SetAmountPaid sets the "amount_paid" field.
func (u *CanteenSaleUpsert) SetAmountPaid(v int64) *CanteenSaleUpsert {
	u.Set(canteensale.FieldAmountPaid, v)
	return u
}

// UpdateAmountPaid sets the "amount_paid" field to the value that was provided on create.
func (u *CanteenSaleUpsert) UpdateAmountPaid() *CanteenSaleUpsert {
	u.SetExcluded(canteensale.FieldAmountPaid)
	return u
}

// AddAmountPaid adds v to the "amount_paid" field.
func (u *CanteenSaleUpsert) AddAmountPaid(v int64) *CanteenSaleUpsert {
	u.Add(canteensale.FieldAmountPaid, v)
	return u
}

// SetSoldBy sets the "sold_by" field.
func (u *CanteenSaleUpsert) SetSoldBy(v uuid.UUID) *CanteenSaleUpsert {
	u.Set(canteensale.FieldSoldBy, v)
	return u
}

// UpdateSoldBy sets the "sold_by" field to the value that was provided on create.
func (u *CanteenSaleUpsert) UpdateSoldBy() *CanteenSaleUpsert {
	u.SetExcluded(canteensale.FieldSoldBy)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CanteenSale.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(canteensale.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CanteenSaleUpsertOne) UpdateNewValues() *CanteenSaleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(canteensale.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(canteensale.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CanteenSale.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CanteenSaleUpsertOne) Ignore() *CanteenSaleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CanteenSaleUpsertOne) DoNothing() *CanteenSaleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CanteenSaleCreate.OnConflict
// documentation for more info.
func (u *CanteenSaleUpsertOne) Update(set func(*CanteenSaleUpsert)) *CanteenSaleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CanteenSaleUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CanteenSaleUpsertOne) SetUpdatedAt(v time.Time) *CanteenSaleUpsertOne {
	return u.Update(func(s *CanteenSaleUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CanteenSaleUpsertOne) UpdateUpdatedAt() *CanteenSaleUpsertOne {
	return u.Update(func(s *CanteenSaleUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetSaleNumber sets the "sale_number" field.
func (u *CanteenSaleUpsertOne) SetSaleNumber(v string) *CanteenSaleUpsertOne {
	return u.Update(func(s *CanteenSaleUpsert) {
		s.SetSaleNumber(v)
	})
}

// UpdateSaleNumber sets the "sale_number" field to the value that was provided on create.
func (u *CanteenSaleUpsertOne) UpdateSaleNumber() *CanteenSaleUpsertOne {
	return u.Update(func(s *CanteenSaleUpsert) {
		s.UpdateSaleNumber()
	})
}

// SetTotalAmount sets the "total_amount" field.
func (u *CanteenSaleUpsertOne) SetTotalAmount(v int64) *CanteenSaleUpsertOne {
	return u.Update(func(s *CanteenSaleUpsert) {
		s.SetTotalAmount(v)
	})
}

// AddTotalAmount adds v to the "total_amount" field.
func (u *CanteenSaleUpsertOne) AddTotalAmount(v int64) *CanteenSaleUpsertOne {
	return u.Update(func(s *CanteenSaleUpsert) {
		s.AddTotalAmount(v)
	})
}

// UpdateTotalAmount sets the "total_amount" field to the value that was provided on create.
func (u *CanteenSaleUpsertOne) UpdateTotalAmount() *CanteenSaleUpsertOne {
	return u.Update(func(s *CanteenSaleUpsert) {
		s.UpdateTotalAmount()
	})
}

// SetAmountPaid sets the "amount_paid" field.
func (u *CanteenSaleUpsertOne) SetAmountPaid(v int64) *CanteenSaleUpsertOne {
	return u.Update(func(s *CanteenSaleUpsert) {
		s.SetAmountPaid(v)
	})
}

// AddAmountPaid adds v to the "amount_paid" field.
func (u *CanteenSaleUpsertOne) AddAmountPaid(v int64) *CanteenSaleUpsertOne {
	return u.Update(func(s *CanteenSaleUpsert) {
		s.AddAmountPaid(v)
	})
}

// UpdateAmountPaid sets the "amount_paid" field to the value that was provided on create.
func (u *CanteenSaleUpsertOne) UpdateAmountPaid() *CanteenSaleUpsertOne {
	return u.Update(func(s *CanteenSaleUpsert) {
		s.UpdateAmountPaid()
	})
}

// SetSoldBy sets the "sold_by" field.
func (u *CanteenSaleUpsertOne) SetSoldBy(v uuid.UUID) *CanteenSaleUpsertOne {
	return u.Update(func(s *CanteenSaleUpsert) {
		s.SetSoldBy(v)
	})
}

// UpdateSoldBy sets the "sold_by" field to the value that was provided on create.
func (u *CanteenSaleUpsertOne) UpdateSoldBy() *CanteenSaleUpsertOne {
	return u.Update(func(s *CanteenSaleUpsert) {
		s.UpdateSoldBy()
	})
}

// Exec executes the query.
func (u *CanteenSaleUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for CanteenSaleCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CanteenSaleUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CanteenSaleUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: CanteenSaleUpsertOne.ID is not supported by MySQL driver. Use CanteenSaleUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CanteenSaleUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CanteenSaleCreateBulk is the builder for creating many CanteenSale entities in bulk.
type CanteenSaleCreateBulk struct {
	config
	err      error
	builders []*CanteenSaleCreate
	conflict []sql.ConflictOption
}

// Save creates the CanteenSale entities in the database.
func (_c *CanteenSaleCreateBulk) Save(ctx context.Context) ([]*CanteenSale, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CanteenSale, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CanteenSaleMutation)
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
func (_c *CanteenSaleCreateBulk) SaveX(ctx context.Context) []*CanteenSale {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CanteenSaleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CanteenSaleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CanteenSale.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CanteenSaleUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *CanteenSaleCreateBulk) OnConflict(opts ...sql.ConflictOption) *CanteenSaleUpsertBulk {
	_c.conflict = opts
	return &CanteenSaleUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CanteenSale.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CanteenSaleCreateBulk) OnConflictColumns(columns ...string) *CanteenSaleUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CanteenSaleUpsertBulk{
		create: _c,
	}
}

// CanteenSaleUpsertBulk is the builder for "upsert"-ing
// a bulk of CanteenSale nodes.
type CanteenSaleUpsertBulk struct {
	create *CanteenSaleCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CanteenSale.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(canteensale.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CanteenSaleUpsertBulk) UpdateNewValues() *CanteenSaleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(canteensale.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(canteensale.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CanteenSale.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CanteenSaleUpsertBulk) Ignore() *CanteenSaleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CanteenSaleUpsertBulk) DoNothing() *CanteenSaleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CanteenSaleCreateBulk.OnConflict
// documentation for more info.
func (u *CanteenSaleUpsertBulk) Update(set func(*CanteenSaleUpsert)) *CanteenSaleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CanteenSaleUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CanteenSaleUpsertBulk) SetUpdatedAt(v time.Time) *CanteenSaleUpsertBulk {
	return u.Update(func(s *CanteenSaleUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CanteenSaleUpsertBulk) UpdateUpdatedAt() *CanteenSaleUpsertBulk {
	return u.Update(func(s *CanteenSaleUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetSaleNumber sets the "sale_number" field.
func (u *CanteenSaleUpsertBulk) SetSaleNumber(v string) *CanteenSaleUpsertBulk {
	return u.Update(func(s *CanteenSaleUpsert) {
		s.SetSaleNumber(v)
	})
}

// UpdateSaleNumber sets the "sale_number" field to the value that was provided on create.
func (u *CanteenSaleUpsertBulk) UpdateSaleNumber() *CanteenSaleUpsertBulk {
	return u.Update(func(s *CanteenSaleUpsert) {
		s.UpdateSaleNumber()
	})
}

// SetTotalAmount sets the "total_amount" field.
func (u *CanteenSaleUpsertBulk) SetTotalAmount(v int64) *CanteenSaleUpsertBulk {
	return u.Update(func(s *CanteenSaleUpsert) {
		s.SetTotalAmount(v)
	})
}

// AddTotalAmount adds v to the "total_amount" field.
func (u *CanteenSaleUpsertBulk) AddTotalAmount(v int64) *CanteenSaleUpsertBulk {
	return u.Update(func(s *CanteenSaleUpsert) {
		s.AddTotalAmount(v)
	})
}

// UpdateTotalAmount sets the "total_amount" field to the value that was provided on create.
func (u *CanteenSaleUpsertBulk) UpdateTotalAmount() *CanteenSaleUpsertBulk {
	return u.Update(func(s *CanteenSaleUpsert) {
		s.UpdateTotalAmount()
	})
}

// SetAmountPaid sets the "amount_paid" field.
func (u *CanteenSaleUpsertBulk) SetAmountPaid(v int64) *CanteenSaleUpsertBulk {
	return u.Update(func(s *CanteenSaleUpsert) {
		s.SetAmountPaid(v)
	})
}

// AddAmountPaid adds v to the "amount_paid" field.
func (u *CanteenSaleUpsertBulk) AddAmountPaid(v int64) *CanteenSaleUpsertBulk {
	return u.Update(func(s *CanteenSaleUpsert) {
		s.AddAmountPaid(v)
	})
}

// UpdateAmountPaid sets the "amount_paid" field to the value that was provided on create.
func (u *CanteenSaleUpsertBulk) UpdateAmountPaid() *CanteenSaleUpsertBulk {
	return u.Update(func(s *CanteenSaleUpsert) {
		s.UpdateAmountPaid()
	})
}

// SetSoldBy sets the "sold_by" field.
func (u *CanteenSaleUpsertBulk) SetSoldBy(v uuid.UUID) *CanteenSaleUpsertBulk {
	return u.Update(func(s *CanteenSaleUpsert) {
		s.SetSoldBy(v)
	})
}

// UpdateSoldBy sets the "sold_by" field to the value that was provided on create.
func (u *CanteenSaleUpsertBulk) UpdateSoldBy() *CanteenSaleUpsertBulk {
	return u.Update(func(s *CanteenSaleUpsert) {
		s.UpdateSoldBy()
	})
}

// Exec executes the query.
func (u *CanteenSaleUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the CanteenSaleCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for CanteenSaleCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CanteenSaleUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
