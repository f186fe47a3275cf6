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
	"github.com/niramoy/niramoy_backend/internal/repo/expense"
)

// ExpenseCreate is the builder for creating a Expense entity.
type ExpenseCreate struct {
	config
	mutation *ExpenseMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExpenseCreate) SetCreatedAt(v time.Time) *ExpenseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExpenseCreate) SetNillableCreatedAt(v *time.Time) *ExpenseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetExpenseType sets the "expense_type" field.
func (_c *ExpenseCreate) SetExpenseType(v expense.ExpenseType) *ExpenseCreate {
	_c.mutation.SetExpenseType(v)
	return _c
}

// SetAmount sets the "amount" field.
func (_c *ExpenseCreate) SetAmount(v int64) *ExpenseCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ExpenseCreate) SetDescription(v string) *ExpenseCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ExpenseCreate) SetNillableDescription(v *string) *ExpenseCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetRecordedBy sets the "recorded_by" field.
func (_c *ExpenseCreate) SetRecordedBy(v uuid.UUID) *ExpenseCreate {
	_c.mutation.SetRecordedBy(v)
	return _c
}

// SetNillableRecordedBy sets the "recorded_by" field if the given value is not nil.
func (_c *ExpenseCreate) SetNillableRecordedBy(v *uuid.UUID) *ExpenseCreate {
	if v != nil {
		_c.SetRecordedBy(*v)
	}
	return _c
}

// SetIncurredAt sets the "incurred_at" field.
func (_c *ExpenseCreate) SetIncurredAt(v time.Time) *ExpenseCreate {
	_c.mutation.SetIncurredAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ExpenseCreate) SetID(v uuid.UUID) *ExpenseCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExpenseCreate) SetNillableID(v *uuid.UUID) *ExpenseCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ExpenseMutation object of the builder.
func (_c *ExpenseCreate) Mutation() *ExpenseMutation {
	return _c.mutation
}

// Save creates the Expense in the database.
func (_c *ExpenseCreate) Save(ctx context.Context) (*Expense, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExpenseCreate) SaveX(ctx context.Context) *Expense {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExpenseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExpenseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExpenseCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := expense.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := expense.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExpenseCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Expense.created_at"`)}
	}
	if _, ok := _c.mutation.ExpenseType(); !ok {
		return &ValidationError{Name: "expense_type", err: errors.New(`repo: missing required field "Expense.expense_type"`)}
	}
	if v, ok := _c.mutation.ExpenseType(); ok {
		if err := expense.ExpenseTypeValidator(v); err != nil {
			return &ValidationError{Name: "expense_type", err: fmt.Errorf(`repo: validator failed for field "Expense.expense_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`repo: missing required field "Expense.amount"`)}
	}
	if v, ok := _c.mutation.Amount(); ok {
		if err := expense.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`repo: validator failed for field "Expense.amount": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IncurredAt(); !ok {
		return &ValidationError{Name: "incurred_at", err: errors.New(`repo: missing required field "Expense.incurred_at"`)}
	}
	return nil
}

func (_c *ExpenseCreate) sqlSave(ctx context.Context) (*Expense, error) {
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

func (_c *ExpenseCreate) createSpec() (*Expense, *sqlgraph.CreateSpec) {
	var (
		_node = &Expense{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(expense.Table, sqlgraph.NewFieldSpec(expense.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(expense.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ExpenseType(); ok {
		_spec.SetField(expense.FieldExpenseType, field.TypeEnum, value)
		_node.ExpenseType = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(expense.FieldAmount, field.TypeInt64, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(expense.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.RecordedBy(); ok {
		_spec.SetField(expense.FieldRecordedBy, field.TypeUUID, value)
		_node.RecordedBy = &value
	}
	if value, ok := _c.mutation.IncurredAt(); ok {
		_spec.SetField(expense.FieldIncurredAt, field.TypeTime, value)
		_node.IncurredAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Expense.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExpenseUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ExpenseCreate) OnConflict(opts ...sql.ConflictOption) *ExpenseUpsertOne {
	_c.conflict = opts
	return &ExpenseUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Expense.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExpenseCreate) OnConflictColumns(columns ...string) *ExpenseUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExpenseUpsertOne{
		create: _c,
	}
}

type (
	// ExpenseUpsertOne is the builder for "upsert"-ing
	//  one Expense node.
	ExpenseUpsertOne struct {
		create *ExpenseCreate
	}

	// ExpenseUpsert is the "OnConflict" setter.
	ExpenseUpsert struct {
		*sql.UpdateSet
	}
)

// SetExpenseType sets the "expense_type" field.
func (u *ExpenseUpsert) SetExpenseType(v expense.ExpenseType) *ExpenseUpsert {
	u.Set(expense.FieldExpenseType, v)
	return u
}

// UpdateExpenseType sets the "expense_type" field to the value that was provided on create.
func (u *ExpenseUpsert) UpdateExpenseType() *ExpenseUpsert {
	u.SetExcluded(expense.FieldExpenseType)
	return u
}

// SetAmount sets the "amount" field.
func (u *ExpenseUpsert) SetAmount(v int64) *ExpenseUpsert {
	u.Set(expense.FieldAmount, v)
	return u
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *ExpenseUpsert) UpdateAmount() *ExpenseUpsert {
	u.SetExcluded(expense.FieldAmount)
	return u
}

// AddAmount adds v to the "amount" field.
func (u *ExpenseUpsert) AddAmount(v int64) *ExpenseUpsert {
	u.Add(expense.FieldAmount, v)
	return u
}

// SetDescription sets the "description" field.
func (u *ExpenseUpsert) SetDescription(v string) *ExpenseUpsert {
	u.Set(expense.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ExpenseUpsert) UpdateDescription() *ExpenseUpsert {
	u.SetExcluded(expense.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *ExpenseUpsert) ClearDescription() *ExpenseUpsert {
	u.SetNull(expense.FieldDescription)
	return u
}

// SetRecordedBy sets the "recorded_by" field.
func (u *ExpenseUpsert) SetRecordedBy(v uuid.UUID) *ExpenseUpsert {
	u.Set(expense.FieldRecordedBy, v)
	return u
}

// UpdateRecordedBy sets the "recorded_by" field to the value that was provided on create.
func (u *ExpenseUpsert) UpdateRecordedBy() *ExpenseUpsert {
	u.SetExcluded(expense.FieldRecordedBy)
	return u
}

// ClearRecordedBy clears the value of the "recorded_by" field.
func (u *ExpenseUpsert) ClearRecordedBy() *ExpenseUpsert {
	u.SetNull(expense.FieldRecordedBy)
	return u
}

// SetIncurredAt sets the "incurred_at" field.
func (u *ExpenseUpsert) SetIncurredAt(v time.Time) *ExpenseUpsert {
	u.Set(expense.FieldIncurredAt, v)
	return u
}

// UpdateIncurredAt sets the "incurred_at" field to the value that was provided on create.
func (u *ExpenseUpsert) UpdateIncurredAt() *ExpenseUpsert {
	u.SetExcluded(expense.FieldIncurredAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Expense.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(expense.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExpenseUpsertOne) UpdateNewValues() *ExpenseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(expense.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(expense.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Expense.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExpenseUpsertOne) Ignore() *ExpenseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExpenseUpsertOne) DoNothing() *ExpenseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExpenseCreate.OnConflict
// documentation for more info.
func (u *ExpenseUpsertOne) Update(set func(*ExpenseUpsert)) *ExpenseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExpenseUpsert{UpdateSet: update})
	}))
	return u
}

// SetExpenseType sets the "expense_type" field.
func (u *ExpenseUpsertOne) SetExpenseType(v expense.ExpenseType) *ExpenseUpsertOne {
	return u.Update(func(s *ExpenseUpsert) {
		s.SetExpenseType(v)
	})
}

// UpdateExpenseType sets the "expense_type" field to the value that was provided on create.
func (u *ExpenseUpsertOne) UpdateExpenseType() *ExpenseUpsertOne {
	return u.Update(func(s *ExpenseUpsert) {
		s.UpdateExpenseType()
	})
}

// SetAmount sets the "amount" field.
func (u *ExpenseUpsertOne) SetAmount(v int64) *ExpenseUpsertOne {
	return u.Update(func(s *ExpenseUpsert) {
		s.SetAmount(v)
	})
}

// AddAmount adds v to the "amount" field.
func (u *ExpenseUpsertOne) AddAmount(v int64) *ExpenseUpsertOne {
	return u.Update(func(s *ExpenseUpsert) {
		s.AddAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *ExpenseUpsertOne) UpdateAmount() *ExpenseUpsertOne {
	return u.Update(func(s *ExpenseUpsert) {
		s.UpdateAmount()
	})
}

// SetDescription sets the "description" field.
func (u *ExpenseUpsertOne) SetDescription(v string) *ExpenseUpsertOne {
	return u.Update(func(s *ExpenseUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ExpenseUpsertOne) UpdateDescription() *ExpenseUpsertOne {
	return u.Update(func(s *ExpenseUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ExpenseUpsertOne) ClearDescription() *ExpenseUpsertOne {
	return u.Update(func(s *ExpenseUpsert) {
		s.ClearDescription()
	})
}

// SetRecordedBy sets the "recorded_by" field.
func (u *ExpenseUpsertOne) SetRecordedBy(v uuid.UUID) *ExpenseUpsertOne {
	return u.Update(func(s *ExpenseUpsert) {
		s.SetRecordedBy(v)
	})
}

// UpdateRecordedBy sets the "recorded_by" field to the value that was provided on create.
func (u *ExpenseUpsertOne) UpdateRecordedBy() *ExpenseUpsertOne {
	return u.Update(func(s *ExpenseUpsert) {
		s.UpdateRecordedBy()
	})
}

// ClearRecordedBy clears the value of the "recorded_by" field.
func (u *ExpenseUpsertOne) ClearRecordedBy() *ExpenseUpsertOne {
	return u.Update(func(s *ExpenseUpsert) {
		s.ClearRecordedBy()
	})
}

// SetIncurredAt sets the "incurred_at" field.
func (u *ExpenseUpsertOne) SetIncurredAt(v time.Time) *ExpenseUpsertOne {
	return u.Update(func(s *ExpenseUpsert) {
		s.SetIncurredAt(v)
	})
}

// UpdateIncurredAt sets the "incurred_at" field to the value that was provided on create.
func (u *ExpenseUpsertOne) UpdateIncurredAt() *ExpenseUpsertOne {
	return u.Update(func(s *ExpenseUpsert) {
		s.UpdateIncurredAt()
	})
}

// Exec executes the query.
func (u *ExpenseUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ExpenseCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExpenseUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExpenseUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: ExpenseUpsertOne.ID is not supported by MySQL driver. Use ExpenseUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExpenseUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExpenseCreateBulk is the builder for creating many Expense entities in bulk.
type ExpenseCreateBulk struct {
	config
	err      error
	builders []*ExpenseCreate
	conflict []sql.ConflictOption
}

// Save creates the Expense entities in the database.
func (_c *ExpenseCreateBulk) Save(ctx context.Context) ([]*Expense, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Expense, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExpenseMutation)
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
func (_c *ExpenseCreateBulk) SaveX(ctx context.Context) []*Expense {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExpenseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExpenseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Expense.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExpenseUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ExpenseCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExpenseUpsertBulk {
	_c.conflict = opts
	return &ExpenseUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Expense.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExpenseCreateBulk) OnConflictColumns(columns ...string) *ExpenseUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExpenseUpsertBulk{
		create: _c,
	}
}

// ExpenseUpsertBulk is the builder for "upsert"-ing
// a bulk of Expense nodes.
type ExpenseUpsertBulk struct {
	create *ExpenseCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Expense.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(expense.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExpenseUpsertBulk) UpdateNewValues() *ExpenseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(expense.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(expense.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Expense.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExpenseUpsertBulk) Ignore() *ExpenseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExpenseUpsertBulk) DoNothing() *ExpenseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExpenseCreateBulk.OnConflict
// documentation for more info.
func (u *ExpenseUpsertBulk) Update(set func(*ExpenseUpsert)) *ExpenseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExpenseUpsert{UpdateSet: update})
	}))
	return u
}

// SetExpenseType sets the "expense_type" field.
func (u *ExpenseUpsertBulk) SetExpenseType(v expense.ExpenseType) *ExpenseUpsertBulk {
	return u.Update(func(s *ExpenseUpsert) {
		s.SetExpenseType(v)
	})
}

// UpdateExpenseType sets the "expense_type" field to the value that was provided on create.
func (u *ExpenseUpsertBulk) UpdateExpenseType() *ExpenseUpsertBulk {
	return u.Update(func(s *ExpenseUpsert) {
		s.UpdateExpenseType()
	})
}

// SetAmount sets the "amount" field.
func (u *ExpenseUpsertBulk) SetAmount(v int64) *ExpenseUpsertBulk {
	return u.Update(func(s *ExpenseUpsert) {
		s.SetAmount(v)
	})
}

// AddAmount adds v to the "amount" field.
func (u *ExpenseUpsertBulk) AddAmount(v int64) *ExpenseUpsertBulk {
	return u.Update(func(s *ExpenseUpsert) {
		s.AddAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *ExpenseUpsertBulk) UpdateAmount() *ExpenseUpsertBulk {
	return u.Update(func(s *ExpenseUpsert) {
		s.UpdateAmount()
	})
}

// SetDescription sets the "description" field.
func (u *ExpenseUpsertBulk) SetDescription(v string) *ExpenseUpsertBulk {
	return u.Update(func(s *ExpenseUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ExpenseUpsertBulk) UpdateDescription() *ExpenseUpsertBulk {
	return u.Update(func(s *ExpenseUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ExpenseUpsertBulk) ClearDescription() *ExpenseUpsertBulk {
	return u.Update(func(s *ExpenseUpsert) {
		s.ClearDescription()
	})
}

// SetRecordedBy sets the "recorded_by" field.
func (u *ExpenseUpsertBulk) SetRecordedBy(v uuid.UUID) *ExpenseUpsertBulk {
	return u.Update(func(s *ExpenseUpsert) {
		s.SetRecordedBy(v)
	})
}

// UpdateRecordedBy sets the "recorded_by" field to the value that was provided on create.
func (u *ExpenseUpsertBulk) UpdateRecordedBy() *ExpenseUpsertBulk {
	return u.Update(func(s *ExpenseUpsert) {
		s.UpdateRecordedBy()
	})
}

// ClearRecordedBy clears the value of the "recorded_by" field.
func (u *ExpenseUpsertBulk) ClearRecordedBy() *ExpenseUpsertBulk {
	return u.Update(func(s *ExpenseUpsert) {
		s.ClearRecordedBy()
	})
}

// SetIncurredAt sets the "incurred_at" field.
func (u *ExpenseUpsertBulk) SetIncurredAt(v time.Time) *ExpenseUpsertBulk {
	return u.Update(func(s *ExpenseUpsert) {
		s.SetIncurredAt(v)
	})
}

// UpdateIncurredAt sets the "incurred_at" field to the value that was provided on create.
func (u *ExpenseUpsertBulk) UpdateIncurredAt() *ExpenseUpsertBulk {
	return u.Update(func(s *ExpenseUpsert) {
		s.UpdateIncurredAt()
	})
}

// Exec executes the query.
func (u *ExpenseUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ExpenseCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ExpenseCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExpenseUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
