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
	"github.com/niramoy/niramoy_backend/internal/repo/stockadjustment"
)

// StockAdjustmentCreate is the builder for creating a StockAdjustment entity.
type StockAdjustmentCreate struct {
	config
	mutation *StockAdjustmentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *StockAdjustmentCreate) SetCreatedAt(v time.Time) *StockAdjustmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StockAdjustmentCreate) SetNillableCreatedAt(v *time.Time) *StockAdjustmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDrugID sets the "drug_id" field.
func (_c *StockAdjustmentCreate) SetDrugID(v uuid.UUID) *StockAdjustmentCreate {
	_c.mutation.SetDrugID(v)
	return _c
}

// SetDelta sets the "delta" field.
func (_c *StockAdjustmentCreate) SetDelta(v int) *StockAdjustmentCreate {
	_c.mutation.SetDelta(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *StockAdjustmentCreate) SetReason(v stockadjustment.Reason) *StockAdjustmentCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNote sets the "note" field.
func (_c *StockAdjustmentCreate) SetNote(v string) *StockAdjustmentCreate {
	_c.mutation.SetNote(v)
	return _c
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_c *StockAdjustmentCreate) SetNillableNote(v *string) *StockAdjustmentCreate {
	if v != nil {
		_c.SetNote(*v)
	}
	return _c
}

// SetAdjustedBy sets the "adjusted_by" field.
func (_c *StockAdjustmentCreate) SetAdjustedBy(v uuid.UUID) *StockAdjustmentCreate {
	_c.mutation.SetAdjustedBy(v)
	return _c
}

// SetNillableAdjustedBy sets the "adjusted_by" field if the given value is not nil.
func (_c *StockAdjustmentCreate) SetNillableAdjustedBy(v *uuid.UUID) *StockAdjustmentCreate {
	if v != nil {
		_c.SetAdjustedBy(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StockAdjustmentCreate) SetID(v uuid.UUID) *StockAdjustmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *StockAdjustmentCreate) SetNillableID(v *uuid.UUID) *StockAdjustmentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the StockAdjustmentMutation object of the builder.
func (_c *StockAdjustmentCreate) Mutation() *StockAdjustmentMutation {
	return _c.mutation
}

// Save creates the StockAdjustment in the database.
func (_c *StockAdjustmentCreate) Save(ctx context.Context) (*StockAdjustment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StockAdjustmentCreate) SaveX(ctx context.Context) *StockAdjustment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StockAdjustmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StockAdjustmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StockAdjustmentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := stockadjustment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := stockadjustment.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StockAdjustmentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "StockAdjustment.created_at"`)}
	}
	if _, ok := _c.mutation.DrugID(); !ok {
		return &ValidationError{Name: "drug_id", err: errors.New(`repo: missing required field "StockAdjustment.drug_id"`)}
	}
	if _, ok := _c.mutation.Delta(); !ok {
		return &ValidationError{Name: "delta", err: errors.New(`repo: missing required field "StockAdjustment.delta"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`repo: missing required field "StockAdjustment.reason"`)}
	}
	if v, ok := _c.mutation.Reason(); ok {
		if err := stockadjustment.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`repo: validator failed for field "StockAdjustment.reason": %w`, err)}
		}
	}
	return nil
}

func (_c *StockAdjustmentCreate) sqlSave(ctx context.Context) (*StockAdjustment, error) {
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

func (_c *StockAdjustmentCreate) createSpec() (*StockAdjustment, *sqlgraph.CreateSpec) {
	var (
		_node = &StockAdjustment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stockadjustment.Table, sqlgraph.NewFieldSpec(stockadjustment.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(stockadjustment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.DrugID(); ok {
		_spec.SetField(stockadjustment.FieldDrugID, field.TypeUUID, value)
		_node.DrugID = value
	}
	if value, ok := _c.mutation.Delta(); ok {
		_spec.SetField(stockadjustment.FieldDelta, field.TypeInt, value)
		_node.Delta = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(stockadjustment.FieldReason, field.TypeEnum, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.Note(); ok {
		_spec.SetField(stockadjustment.FieldNote, field.TypeString, value)
		_node.Note = &value
	}
	if value, ok := _c.mutation.AdjustedBy(); ok {
		_spec.SetField(stockadjustment.FieldAdjustedBy, field.TypeUUID, value)
		_node.AdjustedBy = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StockAdjustment.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StockAdjustmentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *StockAdjustmentCreate) OnConflict(opts ...sql.ConflictOption) *StockAdjustmentUpsertOne {
	_c.conflict = opts
	return &StockAdjustmentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StockAdjustment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StockAdjustmentCreate) OnConflictColumns(columns ...string) *StockAdjustmentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StockAdjustmentUpsertOne{
		create: _c,
	}
}

type (
	// StockAdjustmentUpsertOne is the builder for "upsert"-ing
	//  one StockAdjustment node.
	StockAdjustmentUpsertOne struct {
		create *StockAdjustmentCreate
	}

	// StockAdjustmentUpsert is the "OnConflict" setter.
	StockAdjustmentUpsert struct {
		*sql.UpdateSet
	}
)

// SetDrugID sets the "drug_id" field.
func (u *StockAdjustmentUpsert) SetDrugID(v uuid.UUID) *StockAdjustmentUpsert {
	u.Set(stockadjustment.FieldDrugID, v)
	return u
}

// UpdateDrugID sets the "drug_id" field to the value that was provided on create.
func (u *StockAdjustmentUpsert) UpdateDrugID() *StockAdjustmentUpsert {
	u.SetExcluded(stockadjustment.FieldDrugID)
	return u
}

// SetDelta sets the "delta" field.
func (u *StockAdjustmentUpsert) SetDelta(v int) *StockAdjustmentUpsert {
	u.Set(stockadjustment.FieldDelta, v)
	return u
}

// UpdateDelta sets the "delta" field to the value that was provided on create.
func (u *StockAdjustmentUpsert) UpdateDelta() *StockAdjustmentUpsert {
	u.SetExcluded(stockadjustment.FieldDelta)
	return u
}

// AddDelta adds v to the "delta" field.
func (u *StockAdjustmentUpsert) AddDelta(v int) *StockAdjustmentUpsert {
	u.Add(stockadjustment.FieldDelta, v)
	return u
}

// SetReason sets the "reason" field.
func (u *StockAdjustmentUpsert) SetReason(v stockadjustment.Reason) *StockAdjustmentUpsert {
	u.Set(stockadjustment.FieldReason, v)
	return u
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *StockAdjustmentUpsert) UpdateReason() *StockAdjustmentUpsert {
	u.SetExcluded(stockadjustment.FieldReason)
	return u
}

// SetNote sets the "note" field.
func (u *StockAdjustmentUpsert) SetNote(v string) *StockAdjustmentUpsert {
	u.Set(stockadjustment.FieldNote, v)
	return u
}

// UpdateNote sets the "note" field to the value that was provided on create.
func (u *StockAdjustmentUpsert) UpdateNote() *StockAdjustmentUpsert {
	u.SetExcluded(stockadjustment.FieldNote)
	return u
}

// ClearNote clears the value of the "note" field.
func (u *StockAdjustmentUpsert) ClearNote() *StockAdjustmentUpsert {
	u.SetNull(stockadjustment.FieldNote)
	return u
}

// SetAdjustedBy sets the "adjusted_by" field.
func (u *StockAdjustmentUpsert) SetAdjustedBy(v uuid.UUID) *StockAdjustmentUpsert {
	u.Set(stockadjustment.FieldAdjustedBy, v)
	return u
}

// UpdateAdjustedBy sets the "adjusted_by" field to the value that was provided on create.
func (u *StockAdjustmentUpsert) UpdateAdjustedBy() *StockAdjustmentUpsert {
	u.SetExcluded(stockadjustment.FieldAdjustedBy)
	return u
}

// ClearAdjustedBy clears the value of the "adjusted_by" field.
func (u *StockAdjustmentUpsert) ClearAdjustedBy() *StockAdjustmentUpsert {
	u.SetNull(stockadjustment.FieldAdjustedBy)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.StockAdjustment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stockadjustment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StockAdjustmentUpsertOne) UpdateNewValues() *StockAdjustmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(stockadjustment.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(stockadjustment.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StockAdjustment.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StockAdjustmentUpsertOne) Ignore() *StockAdjustmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StockAdjustmentUpsertOne) DoNothing() *StockAdjustmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StockAdjustmentCreate.OnConflict
// documentation for more info.
func (u *StockAdjustmentUpsertOne) Update(set func(*StockAdjustmentUpsert)) *StockAdjustmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StockAdjustmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetDrugID sets the "drug_id" field.
func (u *StockAdjustmentUpsertOne) SetDrugID(v uuid.UUID) *StockAdjustmentUpsertOne {
	return u.Update(func(s *StockAdjustmentUpsert) {
		s.SetDrugID(v)
	})
}

// UpdateDrugID sets the "drug_id" field to the value that was provided on create.
func (u *StockAdjustmentUpsertOne) UpdateDrugID() *StockAdjustmentUpsertOne {
	return u.Update(func(s *StockAdjustmentUpsert) {
		s.UpdateDrugID()
	})
}

// SetDelta sets the "delta" field.
func (u *StockAdjustmentUpsertOne) SetDelta(v int) *StockAdjustmentUpsertOne {
	return u.Update(func(s *StockAdjustmentUpsert) {
		s.SetDelta(v)
	})
}

// AddDelta adds v to the "delta" field.
func (u *StockAdjustmentUpsertOne) AddDelta(v int) *StockAdjustmentUpsertOne {
	return u.Update(func(s *StockAdjustmentUpsert) {
		s.AddDelta(v)
	})
}

// UpdateDelta sets the "delta" field to the value that was provided on create.
func (u *StockAdjustmentUpsertOne) UpdateDelta() *StockAdjustmentUpsertOne {
	return u.Update(func(s *StockAdjustmentUpsert) {
		s.UpdateDelta()
	})
}

// SetReason sets the "reason" field.
func (u *StockAdjustmentUpsertOne) SetReason(v stockadjustment.Reason) *StockAdjustmentUpsertOne {
	return u.Update(func(s *StockAdjustmentUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *StockAdjustmentUpsertOne) UpdateReason() *StockAdjustmentUpsertOne {
	return u.Update(func(s *StockAdjustmentUpsert) {
		s.UpdateReason()
	})
}

// SetNote sets the "note" field.
func (u *StockAdjustmentUpsertOne) SetNote(v string) *StockAdjustmentUpsertOne {
	return u.Update(func(s *StockAdjustmentUpsert) {
		s.SetNote(v)
	})
}

// UpdateNote sets the "note" field to the value that was provided on create.
func (u *StockAdjustmentUpsertOne) UpdateNote() *StockAdjustmentUpsertOne {
	return u.Update(func(s *StockAdjustmentUpsert) {
		s.UpdateNote()
	})
}

// ClearNote clears the value of the "note" field.
func (u *StockAdjustmentUpsertOne) ClearNote() *StockAdjustmentUpsertOne {
	return u.Update(func(s *StockAdjustmentUpsert) {
		s.ClearNote()
	})
}

// SetAdjustedBy sets the "adjusted_by" field.
func (u *StockAdjustmentUpsertOne) SetAdjustedBy(v uuid.UUID) *StockAdjustmentUpsertOne {
	return u.Update(func(s *StockAdjustmentUpsert) {
		s.SetAdjustedBy(v)
	})
}

// UpdateAdjustedBy sets the "adjusted_by" field to the value that was provided on create.
func (u *StockAdjustmentUpsertOne) UpdateAdjustedBy() *StockAdjustmentUpsertOne {
	return u.Update(func(s *StockAdjustmentUpsert) {
		s.UpdateAdjustedBy()
	})
}

// ClearAdjustedBy clears the value of the "adjusted_by" field.
func (u *StockAdjustmentUpsertOne) ClearAdjustedBy() *StockAdjustmentUpsertOne {
	return u.Update(func(s *StockAdjustmentUpsert) {
		s.ClearAdjustedBy()
	})
}

// Exec executes the query.
func (u *StockAdjustmentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for StockAdjustmentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StockAdjustmentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StockAdjustmentUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: StockAdjustmentUpsertOne.ID is not supported by MySQL driver. Use StockAdjustmentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StockAdjustmentUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StockAdjustmentCreateBulk is the builder for creating many StockAdjustment entities in bulk.
type StockAdjustmentCreateBulk struct {
	config
	err      error
	builders []*StockAdjustmentCreate
	conflict []sql.ConflictOption
}

// Save creates the StockAdjustment entities in the database.
func (_c *StockAdjustmentCreateBulk) Save(ctx context.Context) ([]*StockAdjustment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StockAdjustment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StockAdjustmentMutation)
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
func (_c *StockAdjustmentCreateBulk) SaveX(ctx context.Context) []*StockAdjustment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StockAdjustmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StockAdjustmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StockAdjustment.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StockAdjustmentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *StockAdjustmentCreateBulk) OnConflict(opts ...sql.ConflictOption) *StockAdjustmentUpsertBulk {
	_c.conflict = opts
	return &StockAdjustmentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StockAdjustment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StockAdjustmentCreateBulk) OnConflictColumns(columns ...string) *StockAdjustmentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StockAdjustmentUpsertBulk{
		create: _c,
	}
}

// StockAdjustmentUpsertBulk is the builder for "upsert"-ing
// a bulk of StockAdjustment nodes.
type StockAdjustmentUpsertBulk struct {
	create *StockAdjustmentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StockAdjustment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stockadjustment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StockAdjustmentUpsertBulk) UpdateNewValues() *StockAdjustmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(stockadjustment.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(stockadjustment.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StockAdjustment.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StockAdjustmentUpsertBulk) Ignore() *StockAdjustmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StockAdjustmentUpsertBulk) DoNothing() *StockAdjustmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StockAdjustmentCreateBulk.OnConflict
// documentation for more info.
func (u *StockAdjustmentUpsertBulk) Update(set func(*StockAdjustmentUpsert)) *StockAdjustmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StockAdjustmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetDrugID sets the "drug_id" field.
func (u *StockAdjustmentUpsertBulk) SetDrugID(v uuid.UUID) *StockAdjustmentUpsertBulk {
	return u.Update(func(s *StockAdjustmentUpsert) {
		s.SetDrugID(v)
	})
}

// UpdateDrugID sets the "drug_id" field to the value that was provided on create.
func (u *StockAdjustmentUpsertBulk) UpdateDrugID() *StockAdjustmentUpsertBulk {
	return u.Update(func(s *StockAdjustmentUpsert) {
		s.UpdateDrugID()
	})
}

// SetDelta sets the "delta" field.
func (u *StockAdjustmentUpsertBulk) SetDelta(v int) *StockAdjustmentUpsertBulk {
	return u.Update(func(s *StockAdjustmentUpsert) {
		s.SetDelta(v)
	})
}

// AddDelta adds v to the "delta" field.
func (u *StockAdjustmentUpsertBulk) AddDelta(v int) *StockAdjustmentUpsertBulk {
	return u.Update(func(s *StockAdjustmentUpsert) {
		s.AddDelta(v)
	})
}

// UpdateDelta sets the "delta" field to the value that was provided on create.
func (u *StockAdjustmentUpsertBulk) UpdateDelta() *StockAdjustmentUpsertBulk {
	return u.Update(func(s *StockAdjustmentUpsert) {
		s.UpdateDelta()
	})
}

// SetReason sets the "reason" field.
func (u *StockAdjustmentUpsertBulk) SetReason(v stockadjustment.Reason) *StockAdjustmentUpsertBulk {
	return u.Update(func(s *StockAdjustmentUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *StockAdjustmentUpsertBulk) UpdateReason() *StockAdjustmentUpsertBulk {
	return u.Update(func(s *StockAdjustmentUpsert) {
		s.UpdateReason()
	})
}

// SetNote sets the "note" field.
func (u *StockAdjustmentUpsertBulk) SetNote(v string) *StockAdjustmentUpsertBulk {
	return u.Update(func(s *StockAdjustmentUpsert) {
		s.SetNote(v)
	})
}

// UpdateNote sets the "note" field to the value that was provided on create.
func (u *StockAdjustmentUpsertBulk) UpdateNote() *StockAdjustmentUpsertBulk {
	return u.Update(func(s *StockAdjustmentUpsert) {
		s.UpdateNote()
	})
}

// ClearNote clears the value of the "note" field.
func (u *StockAdjustmentUpsertBulk) ClearNote() *StockAdjustmentUpsertBulk {
	return u.Update(func(s *StockAdjustmentUpsert) {
		s.ClearNote()
	})
}

// SetAdjustedBy sets the "adjusted_by" field.
func (u *StockAdjustmentUpsertBulk) SetAdjustedBy(v uuid.UUID) *StockAdjustmentUpsertBulk {
	return u.Update(func(s *StockAdjustmentUpsert) {
		s.SetAdjustedBy(v)
	})
}

// UpdateAdjustedBy sets the "adjusted_by" field to the value that was provided on create.
func (u *StockAdjustmentUpsertBulk) UpdateAdjustedBy() *StockAdjustmentUpsertBulk {
	return u.Update(func(s *StockAdjustmentUpsert) {
		s.UpdateAdjustedBy()
	})
}

// ClearAdjustedBy clears the value of the "adjusted_by" field.
func (u *StockAdjustmentUpsertBulk) ClearAdjustedBy() *StockAdjustmentUpsertBulk {
	return u.Update(func(s *StockAdjustmentUpsert) {
		s.ClearAdjustedBy()
	})
}

// Exec executes the query.
func (u *StockAdjustmentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the StockAdjustmentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for StockAdjustmentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StockAdjustmentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
