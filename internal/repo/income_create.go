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
	"github.com/niramoy/niramoy_backend/internal/repo/income"
)

// IncomeCreate is the builder for creating a Income entity.
type IncomeCreate struct {
	config
	mutation *IncomeMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *IncomeCreate) SetCreatedAt(v time.Time) *IncomeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *IncomeCreate) SetNillableCreatedAt(v *time.Time) *IncomeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *IncomeCreate) SetSource(v income.Source) *IncomeCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetAmount sets the "amount" field.
func (_c *IncomeCreate) SetAmount(v int64) *IncomeCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *IncomeCreate) SetDescription(v string) *IncomeCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *IncomeCreate) SetNillableDescription(v *string) *IncomeCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetReferenceID sets the "reference_id" field.
func (_c *IncomeCreate) SetReferenceID(v uuid.UUID) *IncomeCreate {
	_c.mutation.SetReferenceID(v)
	return _c
}

// SetNillableReferenceID sets the "reference_id" field if the given value is not nil.
func (_c *IncomeCreate) SetNillableReferenceID(v *uuid.UUID) *IncomeCreate {
	if v != nil {
		_c.SetReferenceID(*v)
	}
	return _c
}

// SetReceivedBy sets the "received_by" field.
func (_c *IncomeCreate) SetReceivedBy(v uuid.UUID) *IncomeCreate {
	_c.mutation.SetReceivedBy(v)
	return _c
}

// SetNillableReceivedBy sets the "received_by" field if the given value is not nil.
func (_c *IncomeCreate) SetNillableReceivedBy(v *uuid.UUID) *IncomeCreate {
	if v != nil {
		_c.SetReceivedBy(*v)
	}
	return _c
}

// SetReceivedAt sets the "received_at" field.
func (_c *IncomeCreate) SetReceivedAt(v time.Time) *IncomeCreate {
	_c.mutation.SetReceivedAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *IncomeCreate) SetID(v uuid.UUID) *IncomeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *IncomeCreate) SetNillableID(v *uuid.UUID) *IncomeCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the IncomeMutation object of the builder.
func (_c *IncomeCreate) Mutation() *IncomeMutation {
	return _c.mutation
}

// Save creates the Income in the database.
func (_c *IncomeCreate) Save(ctx context.Context) (*Income, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IncomeCreate) SaveX(ctx context.Context) *Income {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IncomeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IncomeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IncomeCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := income.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := income.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IncomeCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Income.created_at"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`repo: missing required field "Income.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := income.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`repo: validator failed for field "Income.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`repo: missing required field "Income.amount"`)}
	}
	if v, ok := _c.mutation.Amount(); ok {
		if err := income.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`repo: validator failed for field "Income.amount": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		return &ValidationError{Name: "received_at", err: errors.New(`repo: missing required field "Income.received_at"`)}
	}
	return nil
}

func (_c *IncomeCreate) sqlSave(ctx context.Context) (*Income, error) {
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

func (_c *IncomeCreate) createSpec() (*Income, *sqlgraph.CreateSpec) {
	var (
		_node = &Income{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(income.Table, sqlgraph.NewFieldSpec(income.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(income.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(income.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(income.FieldAmount, field.TypeInt64, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(income.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.ReferenceID(); ok {
		_spec.SetField(income.FieldReferenceID, field.TypeUUID, value)
		_node.ReferenceID = &value
	}
	if value, ok := _c.mutation.ReceivedBy(); ok {
		_spec.SetField(income.FieldReceivedBy, field.TypeUUID, value)
		_node.ReceivedBy = &value
	}
	if value, ok := _c.mutation.ReceivedAt(); ok {
		_spec.SetField(income.FieldReceivedAt, field.TypeTime, value)
		_node.ReceivedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Income.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.IncomeUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *IncomeCreate) OnConflict(opts ...sql.ConflictOption) *IncomeUpsertOne {
	_c.conflict = opts
	return &IncomeUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Income.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *IncomeCreate) OnConflictColumns(columns ...string) *IncomeUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &IncomeUpsertOne{
		create: _c,
	}
}

type (
	// IncomeUpsertOne is the builder for "upsert"-ing
	//  one Income node.
	IncomeUpsertOne struct {
		create *IncomeCreate
	}

	// IncomeUpsert is the "OnConflict" setter.
	IncomeUpsert struct {
		*sql.UpdateSet
	}
)

// SetSource sets the "source" field.
func (u *IncomeUpsert) SetSource(v income.Source) *IncomeUpsert {
	u.Set(income.FieldSource, v)
	return u
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *IncomeUpsert) UpdateSource() *IncomeUpsert {
	u.SetExcluded(income.FieldSource)
	return u
}

// SetAmount sets the "amount" field.
func (u *IncomeUpsert) SetAmount(v int64) *IncomeUpsert {
	u.Set(income.FieldAmount, v)
	return u
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *IncomeUpsert) UpdateAmount() *IncomeUpsert {
	u.SetExcluded(income.FieldAmount)
	return u
}

// AddAmount adds v to the "amount" field.
func (u *IncomeUpsert) AddAmount(v int64) *IncomeUpsert {
	u.Add(income.FieldAmount, v)
	return u
}

// SetDescription sets the "description" field.
func (u *IncomeUpsert) SetDescription(v string) *IncomeUpsert {
	u.Set(income.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *IncomeUpsert) UpdateDescription() *IncomeUpsert {
	u.SetExcluded(income.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *IncomeUpsert) ClearDescription() *IncomeUpsert {
	u.SetNull(income.FieldDescription)
	return u
}

// SetReferenceID sets the "reference_id" field.
func (u *IncomeUpsert) SetReferenceID(v uuid.UUID) *IncomeUpsert {
	u.Set(income.FieldReferenceID, v)
	return u
}

// UpdateReferenceID sets the "reference_id" field to the value that was provided on create.
func (u *IncomeUpsert) UpdateReferenceID() *IncomeUpsert {
	u.SetExcluded(income.FieldReferenceID)
	return u
}

// ClearReferenceID clears the value of the "reference_id" field.
func (u *IncomeUpsert) ClearReferenceID() *IncomeUpsert {
	u.SetNull(income.FieldReferenceID)
	return u
}

// SetReceivedBy sets the "received_by" field.
func (u *IncomeUpsert) SetReceivedBy(v uuid.UUID) *IncomeUpsert {
	u.Set(income.FieldReceivedBy, v)
	return u
}

// UpdateReceivedBy sets the "received_by" field to the value that was provided on create.
func (u *IncomeUpsert) UpdateReceivedBy() *IncomeUpsert {
	u.SetExcluded(income.FieldReceivedBy)
	return u
}

// ClearReceivedBy clears the value of the "received_by" field.
func (u *IncomeUpsert) ClearReceivedBy() *IncomeUpsert {
	u.SetNull(income.FieldReceivedBy)
	return u
}

// SetReceivedAt sets the "received_at" field.
func (u *IncomeUpsert) SetReceivedAt(v time.Time) *IncomeUpsert {
	u.Set(income.FieldReceivedAt, v)
	return u
}

// UpdateReceivedAt sets the "received_at" field to the value that was provided on create.
func (u *IncomeUpsert) UpdateReceivedAt() *IncomeUpsert {
	u.SetExcluded(income.FieldReceivedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Income.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(income.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *IncomeUpsertOne) UpdateNewValues() *IncomeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(income.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(income.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Income.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *IncomeUpsertOne) Ignore() *IncomeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *IncomeUpsertOne) DoNothing() *IncomeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the IncomeCreate.OnConflict
// documentation for more info.
func (u *IncomeUpsertOne) Update(set func(*IncomeUpsert)) *IncomeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&IncomeUpsert{UpdateSet: update})
	}))
	return u
}

// SetSource sets the "source" field.
func (u *IncomeUpsertOne) SetSource(v income.Source) *IncomeUpsertOne {
	return u.Update(func(s *IncomeUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *IncomeUpsertOne) UpdateSource() *IncomeUpsertOne {
	return u.Update(func(s *IncomeUpsert) {
		s.UpdateSource()
	})
}

// SetAmount sets the "amount" field.
func (u *IncomeUpsertOne) SetAmount(v int64) *IncomeUpsertOne {
	return u.Update(func(s *IncomeUpsert) {
		s.SetAmount(v)
	})
}

// AddAmount adds v to the "amount" field.
func (u *IncomeUpsertOne) AddAmount(v int64) *IncomeUpsertOne {
	return u.Update(func(s *IncomeUpsert) {
		s.AddAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *IncomeUpsertOne) UpdateAmount() *IncomeUpsertOne {
	return u.Update(func(s *IncomeUpsert) {
		s.UpdateAmount()
	})
}

// SetDescription sets the "description" field.
func (u *IncomeUpsertOne) SetDescription(v string) *IncomeUpsertOne {
	return u.Update(func(s *IncomeUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *IncomeUpsertOne) UpdateDescription() *IncomeUpsertOne {
	return u.Update(func(s *IncomeUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *IncomeUpsertOne) ClearDescription() *IncomeUpsertOne {
	return u.Update(func(s *IncomeUpsert) {
		s.ClearDescription()
	})
}

// SetReferenceID sets the "reference_id" field.
func (u *IncomeUpsertOne) SetReferenceID(v uuid.UUID) *IncomeUpsertOne {
	return u.Update(func(s *IncomeUpsert) {
		s.SetReferenceID(v)
	})
}

// UpdateReferenceID sets the "reference_id" field to the value that was provided on create.
func (u *IncomeUpsertOne) UpdateReferenceID() *IncomeUpsertOne {
	return u.Update(func(s *IncomeUpsert) {
		s.UpdateReferenceID()
	})
}

// ClearReferenceID clears the value of the "reference_id" field.
func (u *IncomeUpsertOne) ClearReferenceID() *IncomeUpsertOne {
	return u.Update(func(s *IncomeUpsert) {
		s.ClearReferenceID()
	})
}

// SetReceivedBy sets the "received_by" field.
func (u *IncomeUpsertOne) SetReceivedBy(v uuid.UUID) *IncomeUpsertOne {
	return u.Update(func(s *IncomeUpsert) {
		s.SetReceivedBy(v)
	})
}

// UpdateReceivedBy sets the "received_by" field to the value that was provided on create.
func (u *IncomeUpsertOne) UpdateReceivedBy() *IncomeUpsertOne {
	return u.Update(func(s *IncomeUpsert) {
		s.UpdateReceivedBy()
	})
}

// ClearReceivedBy clears the value of the "received_by" field.
func (u *IncomeUpsertOne) ClearReceivedBy() *IncomeUpsertOne {
	return u.Update(func(s *IncomeUpsert) {
		s.ClearReceivedBy()
	})
}

// SetReceivedAt sets the "received_at" field.
func (u *IncomeUpsertOne) SetReceivedAt(v time.Time) *IncomeUpsertOne {
	return u.Update(func(s *IncomeUpsert) {
		s.SetReceivedAt(v)
	})
}

// UpdateReceivedAt sets the "received_at" field to the value that was provided on create.
func (u *IncomeUpsertOne) UpdateReceivedAt() *IncomeUpsertOne {
	return u.Update(func(s *IncomeUpsert) {
		s.UpdateReceivedAt()
	})
}

// Exec executes the query.
func (u *IncomeUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for IncomeCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *IncomeUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *IncomeUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: IncomeUpsertOne.ID is not supported by MySQL driver. Use IncomeUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *IncomeUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// IncomeCreateBulk is the builder for creating many Income entities in bulk.
type IncomeCreateBulk struct {
	config
	err      error
	builders []*IncomeCreate
	conflict []sql.ConflictOption
}

// Save creates the Income entities in the database.
func (_c *IncomeCreateBulk) Save(ctx context.Context) ([]*Income, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Income, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IncomeMutation)
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
func (_c *IncomeCreateBulk) SaveX(ctx context.Context) []*Income {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IncomeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IncomeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Income.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.IncomeUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *IncomeCreateBulk) OnConflict(opts ...sql.ConflictOption) *IncomeUpsertBulk {
	_c.conflict = opts
	return &IncomeUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Income.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *IncomeCreateBulk) OnConflictColumns(columns ...string) *IncomeUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &IncomeUpsertBulk{
		create: _c,
	}
}

// IncomeUpsertBulk is the builder for "upsert"-ing
// a bulk of Income nodes.
type IncomeUpsertBulk struct {
	create *IncomeCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Income.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(income.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *IncomeUpsertBulk) UpdateNewValues() *IncomeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(income.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(income.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Income.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *IncomeUpsertBulk) Ignore() *IncomeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *IncomeUpsertBulk) DoNothing() *IncomeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the IncomeCreateBulk.OnConflict
// documentation for more info.
func (u *IncomeUpsertBulk) Update(set func(*IncomeUpsert)) *IncomeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&IncomeUpsert{UpdateSet: update})
	}))
	return u
}

// SetSource sets the "source" field.
func (u *IncomeUpsertBulk) SetSource(v income.Source) *IncomeUpsertBulk {
	return u.Update(func(s *IncomeUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *IncomeUpsertBulk) UpdateSource() *IncomeUpsertBulk {
	return u.Update(func(s *IncomeUpsert) {
		s.UpdateSource()
	})
}

// SetAmount sets the "amount" field.
func (u *IncomeUpsertBulk) SetAmount(v int64) *IncomeUpsertBulk {
	return u.Update(func(s *IncomeUpsert) {
		s.SetAmount(v)
	})
}

// AddAmount adds v to the "amount" field.
func (u *IncomeUpsertBulk) AddAmount(v int64) *IncomeUpsertBulk {
	return u.Update(func(s *IncomeUpsert) {
		s.AddAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *IncomeUpsertBulk) UpdateAmount() *IncomeUpsertBulk {
	return u.Update(func(s *IncomeUpsert) {
		s.UpdateAmount()
	})
}

// SetDescription sets the "description" field.
func (u *IncomeUpsertBulk) SetDescription(v string) *IncomeUpsertBulk {
	return u.Update(func(s *IncomeUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *IncomeUpsertBulk) UpdateDescription() *IncomeUpsertBulk {
	return u.Update(func(s *IncomeUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *IncomeUpsertBulk) ClearDescription() *IncomeUpsertBulk {
	return u.Update(func(s *IncomeUpsert) {
		s.ClearDescription()
	})
}

// SetReferenceID sets the "reference_id" field.
func (u *IncomeUpsertBulk) SetReferenceID(v uuid.UUID) *IncomeUpsertBulk {
	return u.Update(func(s *IncomeUpsert) {
		s.SetReferenceID(v)
	})
}

// UpdateReferenceID sets the "reference_id" field to the value that was provided on create.
func (u *IncomeUpsertBulk) UpdateReferenceID() *IncomeUpsertBulk {
	return u.Update(func(s *IncomeUpsert) {
		s.UpdateReferenceID()
	})
}

// ClearReferenceID clears the value of the "reference_id" field.
func (u *IncomeUpsertBulk) ClearReferenceID() *IncomeUpsertBulk {
	return u.Update(func(s *IncomeUpsert) {
		s.ClearReferenceID()
	})
}

// SetReceivedBy sets the "received_by" field.
func (u *IncomeUpsertBulk) SetReceivedBy(v uuid.UUID) *IncomeUpsertBulk {
	return u.Update(func(s *IncomeUpsert) {
		s.SetReceivedBy(v)
	})
}

// UpdateReceivedBy sets the "received_by" field to the value that was provided on create.
func (u *IncomeUpsertBulk) UpdateReceivedBy() *IncomeUpsertBulk {
	return u.Update(func(s *IncomeUpsert) {
		s.UpdateReceivedBy()
	})
}

// ClearReceivedBy clears the value of the "received_by" field.
func (u *IncomeUpsertBulk) ClearReceivedBy() *IncomeUpsertBulk {
	return u.Update(func(s *IncomeUpsert) {
		s.ClearReceivedBy()
	})
}

// SetReceivedAt sets the "received_at" field.
func (u *IncomeUpsertBulk) SetReceivedAt(v time.Time) *IncomeUpsertBulk {
	return u.Update(func(s *IncomeUpsert) {
		s.SetReceivedAt(v)
	})
}

// UpdateReceivedAt sets the "received_at" field to the value that was provided on create.
func (u *IncomeUpsertBulk) UpdateReceivedAt() *IncomeUpsertBulk {
	return u.Update(func(s *IncomeUpsert) {
		s.UpdateReceivedAt()
	})
}

// Exec executes the query.
func (u *IncomeUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the IncomeCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for IncomeCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *IncomeUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
