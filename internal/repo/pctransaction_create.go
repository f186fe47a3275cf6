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
	"github.com/niramoy/niramoy_backend/internal/repo/pctransaction"
)

// PCTransactionCreate is the builder for creating a PCTransaction entity.
type PCTransactionCreate struct {
	config
	mutation *PCTransactionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PCTransactionCreate) SetCreatedAt(v time.Time) *PCTransactionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PCTransactionCreate) SetNillableCreatedAt(v *time.Time) *PCTransactionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetReferrerID sets the "referrer_id" field.
func (_c *PCTransactionCreate) SetReferrerID(v uuid.UUID) *PCTransactionCreate {
	_c.mutation.SetReferrerID(v)
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *PCTransactionCreate) SetPatientID(v uuid.UUID) *PCTransactionCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_c *PCTransactionCreate) SetNillablePatientID(v *uuid.UUID) *PCTransactionCreate {
	if v != nil {
		_c.SetPatientID(*v)
	}
	return _c
}

// SetTotalAmount sets the "total_amount" field.
func (_c *PCTransactionCreate) SetTotalAmount(v int64) *PCTransactionCreate {
	_c.mutation.SetTotalAmount(v)
	return _c
}

// SetCommissionAmount sets the "commission_amount" field.
func (_c *PCTransactionCreate) SetCommissionAmount(v int64) *PCTransactionCreate {
	_c.mutation.SetCommissionAmount(v)
	return _c
}

// SetAdminShare sets the "admin_share" field.
func (_c *PCTransactionCreate) SetAdminShare(v int64) *PCTransactionCreate {
	_c.mutation.SetAdminShare(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *PCTransactionCreate) SetDescription(v string) *PCTransactionCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *PCTransactionCreate) SetNillableDescription(v *string) *PCTransactionCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetOccurredAt sets the "occurred_at" field.
func (_c *PCTransactionCreate) SetOccurredAt(v time.Time) *PCTransactionCreate {
	_c.mutation.SetOccurredAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *PCTransactionCreate) SetID(v uuid.UUID) *PCTransactionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PCTransactionCreate) SetNillableID(v *uuid.UUID) *PCTransactionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the PCTransactionMutation object of the builder.
func (_c *PCTransactionCreate) Mutation() *PCTransactionMutation {
	return _c.mutation
}

// Save creates the PCTransaction in the database.
func (_c *PCTransactionCreate) Save(ctx context.Context) (*PCTransaction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PCTransactionCreate) SaveX(ctx context.Context) *PCTransaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PCTransactionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PCTransactionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PCTransactionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pctransaction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := pctransaction.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PCTransactionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "PCTransaction.created_at"`)}
	}
	if _, ok := _c.mutation.ReferrerID(); !ok {
		return &ValidationError{Name: "referrer_id", err: errors.New(`repo: missing required field "PCTransaction.referrer_id"`)}
	}
	if _, ok := _c.mutation.TotalAmount(); !ok {
		return &ValidationError{Name: "total_amount", err: errors.New(`repo: missing required field "PCTransaction.total_amount"`)}
	}
	if v, ok := _c.mutation.TotalAmount(); ok {
		if err := pctransaction.TotalAmountValidator(v); err != nil {
			return &ValidationError{Name: "total_amount", err: fmt.Errorf(`repo: validator failed for field "PCTransaction.total_amount": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CommissionAmount(); !ok {
		return &ValidationError{Name: "commission_amount", err: errors.New(`repo: missing required field "PCTransaction.commission_amount"`)}
	}
	if v, ok := _c.mutation.CommissionAmount(); ok {
		if err := pctransaction.CommissionAmountValidator(v); err != nil {
			return &ValidationError{Name: "commission_amount", err: fmt.Errorf(`repo: validator failed for field "PCTransaction.commission_amount": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AdminShare(); !ok {
		return &ValidationError{Name: "admin_share", err: errors.New(`repo: missing required field "PCTransaction.admin_share"`)}
	}
	if v, ok := _c.mutation.AdminShare(); ok {
		if err := pctransaction.AdminShareValidator(v); err != nil {
			return &ValidationError{Name: "admin_share", err: fmt.Errorf(`repo: validator failed for field "PCTransaction.admin_share": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OccurredAt(); !ok {
		return &ValidationError{Name: "occurred_at", err: errors.New(`repo: missing required field "PCTransaction.occurred_at"`)}
	}
	return nil
}

func (_c *PCTransactionCreate) sqlSave(ctx context.Context) (*PCTransaction, error) {
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

func (_c *PCTransactionCreate) createSpec() (*PCTransaction, *sqlgraph.CreateSpec) {
	var (
		_node = &PCTransaction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pctransaction.Table, sqlgraph.NewFieldSpec(pctransaction.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pctransaction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ReferrerID(); ok {
		_spec.SetField(pctransaction.FieldReferrerID, field.TypeUUID, value)
		_node.ReferrerID = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(pctransaction.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = &value
	}
	if value, ok := _c.mutation.TotalAmount(); ok {
		_spec.SetField(pctransaction.FieldTotalAmount, field.TypeInt64, value)
		_node.TotalAmount = value
	}
	if value, ok := _c.mutation.CommissionAmount(); ok {
		_spec.SetField(pctransaction.FieldCommissionAmount, field.TypeInt64, value)
		_node.CommissionAmount = value
	}
	if value, ok := _c.mutation.AdminShare(); ok {
		_spec.SetField(pctransaction.FieldAdminShare, field.TypeInt64, value)
		_node.AdminShare = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(pctransaction.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.OccurredAt(); ok {
		_spec.SetField(pctransaction.FieldOccurredAt, field.TypeTime, value)
		_node.OccurredAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PCTransaction.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PCTransactionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PCTransactionCreate) OnConflict(opts ...sql.ConflictOption) *PCTransactionUpsertOne {
	_c.conflict = opts
	return &PCTransactionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PCTransaction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PCTransactionCreate) OnConflictColumns(columns ...string) *PCTransactionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PCTransactionUpsertOne{
		create: _c,
	}
}

type (
	// PCTransactionUpsertOne is the builder for "upsert"-ing
	//  one PCTransaction node.
	PCTransactionUpsertOne struct {
		create *PCTransactionCreate
	}

	// PCTransactionUpsert is the "OnConflict" setter.
	PCTransactionUpsert struct {
		*sql.UpdateSet
	}
)

// SetReferrerID sets the "referrer_id" field.
func (u *PCTransactionUpsert) SetReferrerID(v uuid.UUID) *PCTransactionUpsert {
	u.Set(pctransaction.FieldReferrerID, v)
	return u
}

// UpdateReferrerID sets the "referrer_id" field to the value that was provided on create.
func (u *PCTransactionUpsert) UpdateReferrerID() *PCTransactionUpsert {
	u.SetExcluded(pctransaction.FieldReferrerID)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *PCTransactionUpsert) SetPatientID(v uuid.UUID) *PCTransactionUpsert {
	u.Set(pctransaction.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PCTransactionUpsert) UpdatePatientID() *PCTransactionUpsert {
	u.SetExcluded(pctransaction.FieldPatientID)
	return u
}

// ClearPatientID clears the value of the "patient_id" field.
func (u *PCTransactionUpsert) ClearPatientID() *PCTransactionUpsert {
	u.SetNull(pctransaction.FieldPatientID)
	return u
}

// SetTotalAmount sets the "total_amount" field.
func (u *PCTransactionUpsert) SetTotalAmount(v int64) *PCTransactionUpsert {
	u.Set(pctransaction.FieldTotalAmount, v)
	return u
}

// UpdateTotalAmount sets the "total_amount" field to the value that was provided on create.
func (u *PCTransactionUpsert) UpdateTotalAmount() *PCTransactionUpsert {
	u.SetExcluded(pctransaction.FieldTotalAmount)
	return u
}

// AddTotalAmount adds v to the "total_amount" field.
func (u *PCTransactionUpsert) AddTotalAmount(v int64) *PCTransactionUpsert {
	u.Add(pctransaction.FieldTotalAmount, v)
	return u
}

// SetCommissionAmount sets the "commission_amount" field.
func (u *PCTransactionUpsert) SetCommissionAmount(v int64) *PCTransactionUpsert {
	u.Set(pctransaction.FieldCommissionAmount, v)
	return u
}

// UpdateCommissionAmount sets the "commission_amount" field to the value that was provided on create.
func (u *PCTransactionUpsert) UpdateCommissionAmount() *PCTransactionUpsert {
	u.SetExcluded(pctransaction.FieldCommissionAmount)
	return u
}

// AddCommissionAmount adds v to the "commission_amount" field.
func (u *PCTransactionUpsert) AddCommissionAmount(v int64) *PCTransactionUpsert {
	u.Add(pctransaction.FieldCommissionAmount, v)
	return u
}

// SetAdminShare sets the "admin_share" field.
func (u *PCTransactionUpsert) SetAdminShare(v int64) *PCTransactionUpsert {
	u.Set(pctransaction.FieldAdminShare, v)
	return u
}

// UpdateAdminShare sets the "admin_share" field to the value that was provided on create.
func (u *PCTransactionUpsert) UpdateAdminShare() *PCTransactionUpsert {
	u.SetExcluded(pctransaction.FieldAdminShare)
	return u
}

// AddAdminShare adds v to the "admin_share" field.
func (u *PCTransactionUpsert) AddAdminShare(v int64) *PCTransactionUpsert {
	u.Add(pctransaction.FieldAdminShare, v)
	return u
}

// SetDescription sets the "description" field.
func (u *PCTransactionUpsert) SetDescription(v string) *PCTransactionUpsert {
	u.Set(pctransaction.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *PCTransactionUpsert) UpdateDescription() *PCTransactionUpsert {
	u.SetExcluded(pctransaction.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *PCTransactionUpsert) ClearDescription() *PCTransactionUpsert {
	u.SetNull(pctransaction.FieldDescription)
	return u
}

// SetOccurredAt sets the "occurred_at" field.
func (u *PCTransactionUpsert) SetOccurredAt(v time.Time) *PCTransactionUpsert {
	u.Set(pctransaction.FieldOccurredAt, v)
	return u
}

// UpdateOccurredAt sets the "occurred_at" field to the value that was provided on create.
func (u *PCTransactionUpsert) UpdateOccurredAt() *PCTransactionUpsert {
	u.SetExcluded(pctransaction.FieldOccurredAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PCTransaction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pctransaction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PCTransactionUpsertOne) UpdateNewValues() *PCTransactionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(pctransaction.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(pctransaction.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PCTransaction.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PCTransactionUpsertOne) Ignore() *PCTransactionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PCTransactionUpsertOne) DoNothing() *PCTransactionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PCTransactionCreate.OnConflict
// documentation for more info.
func (u *PCTransactionUpsertOne) Update(set func(*PCTransactionUpsert)) *PCTransactionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PCTransactionUpsert{UpdateSet: update})
	}))
	return u
}

// SetReferrerID sets the "referrer_id" field.
func (u *PCTransactionUpsertOne) SetReferrerID(v uuid.UUID) *PCTransactionUpsertOne {
	return u.Update(func(s *PCTransactionUpsert) {
		s.SetReferrerID(v)
	})
}

// UpdateReferrerID sets the "referrer_id" field to the value that was provided on create.
func (u *PCTransactionUpsertOne) UpdateReferrerID() *PCTransactionUpsertOne {
	return u.Update(func(s *PCTransactionUpsert) {
		s.UpdateReferrerID()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *PCTransactionUpsertOne) SetPatientID(v uuid.UUID) *PCTransactionUpsertOne {
	return u.Update(func(s *PCTransactionUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PCTransactionUpsertOne) UpdatePatientID() *PCTransactionUpsertOne {
	return u.Update(func(s *PCTransactionUpsert) {
		s.UpdatePatientID()
	})
}

// ClearPatientID clears the value of the "patient_id" field.
func (u *PCTransactionUpsertOne) ClearPatientID() *PCTransactionUpsertOne {
	return u.Update(func(s *PCTransactionUpsert) {
		s.ClearPatientID()
	})
}

// SetTotalAmount sets the "total_amount" field.
func (u *PCTransactionUpsertOne) SetTotalAmount(v int64) *PCTransactionUpsertOne {
	return u.Update(func(s *PCTransactionUpsert) {
		s.SetTotalAmount(v)
	})
}

// AddTotalAmount adds v to the "total_amount" field.
func (u *PCTransactionUpsertOne) AddTotalAmount(v int64) *PCTransactionUpsertOne {
	return u.Update(func(s *PCTransactionUpsert) {
		s.AddTotalAmount(v)
	})
}

// UpdateTotalAmount sets the "total_amount" field to the value that was provided on create.
func (u *PCTransactionUpsertOne) UpdateTotalAmount() *PCTransactionUpsertOne {
	return u.Update(func(s *PCTransactionUpsert) {
		s.UpdateTotalAmount()
	})
}

// SetCommissionAmount sets the "commission_amount" field.
func (u *PCTransactionUpsertOne) SetCommissionAmount(v int64) *PCTransactionUpsertOne {
	return u.Update(func(s *PCTransactionUpsert) {
		s.SetCommissionAmount(v)
	})
}

// AddCommissionAmount adds v to the "commission_amount" field.
func (u *PCTransactionUpsertOne) AddCommissionAmount(v int64) *PCTransactionUpsertOne {
	return u.Update(func(s *PCTransactionUpsert) {
		s.AddCommissionAmount(v)
	})
}

// UpdateCommissionAmount sets the "commission_amount" field to the value that was provided on create.
func (u *PCTransactionUpsertOne) UpdateCommissionAmount() *PCTransactionUpsertOne {
	return u.Update(func(s *PCTransactionUpsert) {
		s.UpdateCommissionAmount()
	})
}

// SetAdminShare sets the "admin_share" field.
func (u *PCTransactionUpsertOne) SetAdminShare(v int64) *PCTransactionUpsertOne {
	return u.Update(func(s *PCTransactionUpsert) {
		s.SetAdminShare(v)
	})
}

// AddAdminShare adds v to the "admin_share" field.
func (u *PCTransactionUpsertOne) AddAdminShare(v int64) *PCTransactionUpsertOne {
	return u.Update(func(s *PCTransactionUpsert) {
		s.AddAdminShare(v)
	})
}

// UpdateAdminShare sets the "admin_share" field to the value that was provided on create.
func (u *PCTransactionUpsertOne) UpdateAdminShare() *PCTransactionUpsertOne {
	return u.Update(func(s *PCTransactionUpsert) {
		s.UpdateAdminShare()
	})
}

// SetDescription sets the "description" field.
func (u *PCTransactionUpsertOne) SetDescription(v string) *PCTransactionUpsertOne {
	return u.Update(func(s *PCTransactionUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *PCTransactionUpsertOne) UpdateDescription() *PCTransactionUpsertOne {
	return u.Update(func(s *PCTransactionUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *PCTransactionUpsertOne) ClearDescription() *PCTransactionUpsertOne {
	return u.Update(func(s *PCTransactionUpsert) {
		s.ClearDescription()
	})
}

// SetOccurredAt sets the "occurred_at" field.
func (u *PCTransactionUpsertOne) SetOccurredAt(v time.Time) *PCTransactionUpsertOne {
	return u.Update(func(s *PCTransactionUpsert) {
		s.SetOccurredAt(v)
	})
}

// UpdateOccurredAt sets the "occurred_at" field to the value that was provided on create.
func (u *PCTransactionUpsertOne) UpdateOccurredAt() *PCTransactionUpsertOne {
	return u.Update(func(s *PCTransactionUpsert) {
		s.UpdateOccurredAt()
	})
}

// Exec executes the query.
func (u *PCTransactionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PCTransactionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PCTransactionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PCTransactionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PCTransactionUpsertOne.ID is not supported by MySQL driver. Use PCTransactionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PCTransactionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PCTransactionCreateBulk is the builder for creating many PCTransaction entities in bulk.
type PCTransactionCreateBulk struct {
	config
	err      error
	builders []*PCTransactionCreate
	conflict []sql.ConflictOption
}

// Save creates the PCTransaction entities in the database.
func (_c *PCTransactionCreateBulk) Save(ctx context.Context) ([]*PCTransaction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PCTransaction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PCTransactionMutation)
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
func (_c *PCTransactionCreateBulk) SaveX(ctx context.Context) []*PCTransaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PCTransactionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PCTransactionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PCTransaction.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PCTransactionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PCTransactionCreateBulk) OnConflict(opts ...sql.ConflictOption) *PCTransactionUpsertBulk {
	_c.conflict = opts
	return &PCTransactionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PCTransaction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PCTransactionCreateBulk) OnConflictColumns(columns ...string) *PCTransactionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PCTransactionUpsertBulk{
		create: _c,
	}
}

// PCTransactionUpsertBulk is the builder for "upsert"-ing
// a bulk of PCTransaction nodes.
type PCTransactionUpsertBulk struct {
	create *PCTransactionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PCTransaction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pctransaction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PCTransactionUpsertBulk) UpdateNewValues() *PCTransactionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(pctransaction.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(pctransaction.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PCTransaction.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PCTransactionUpsertBulk) Ignore() *PCTransactionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PCTransactionUpsertBulk) DoNothing() *PCTransactionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PCTransactionCreateBulk.OnConflict
// documentation for more info.
func (u *PCTransactionUpsertBulk) Update(set func(*PCTransactionUpsert)) *PCTransactionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PCTransactionUpsert{UpdateSet: update})
	}))
	return u
}

// SetReferrerID sets the "referrer_id" field.
func (u *PCTransactionUpsertBulk) SetReferrerID(v uuid.UUID) *PCTransactionUpsertBulk {
	return u.Update(func(s *PCTransactionUpsert) {
		s.SetReferrerID(v)
	})
}

// UpdateReferrerID sets the "referrer_id" field to the value that was provided on create.
func (u *PCTransactionUpsertBulk) UpdateReferrerID() *PCTransactionUpsertBulk {
	return u.Update(func(s *PCTransactionUpsert) {
		s.UpdateReferrerID()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *PCTransactionUpsertBulk) SetPatientID(v uuid.UUID) *PCTransactionUpsertBulk {
	return u.Update(func(s *PCTransactionUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PCTransactionUpsertBulk) UpdatePatientID() *PCTransactionUpsertBulk {
	return u.Update(func(s *PCTransactionUpsert) {
		s.UpdatePatientID()
	})
}

// ClearPatientID clears the value of the "patient_id" field.
func (u *PCTransactionUpsertBulk) ClearPatientID() *PCTransactionUpsertBulk {
	return u.Update(func(s *PCTransactionUpsert) {
		s.ClearPatientID()
	})
}

// SetTotalAmount sets the "total_amount" field.
func (u *PCTransactionUpsertBulk) SetTotalAmount(v int64) *PCTransactionUpsertBulk {
	return u.Update(func(s *PCTransactionUpsert) {
		s.SetTotalAmount(v)
	})
}

// AddTotalAmount adds v to the "total_amount" field.
func (u *PCTransactionUpsertBulk) AddTotalAmount(v int64) *PCTransactionUpsertBulk {
	return u.Update(func(s *PCTransactionUpsert) {
		s.AddTotalAmount(v)
	})
}

// UpdateTotalAmount sets the "total_amount" field to the value that was provided on create.
func (u *PCTransactionUpsertBulk) UpdateTotalAmount() *PCTransactionUpsertBulk {
	return u.Update(func(s *PCTransactionUpsert) {
		s.UpdateTotalAmount()
	})
}

// SetCommissionAmount sets the "commission_amount" field.
func (u *PCTransactionUpsertBulk) SetCommissionAmount(v int64) *PCTransactionUpsertBulk {
	return u.Update(func(s *PCTransactionUpsert) {
		s.SetCommissionAmount(v)
	})
}

// AddCommissionAmount adds v to the "commission_amount" field.
func (u *PCTransactionUpsertBulk) AddCommissionAmount(v int64) *PCTransactionUpsertBulk {
	return u.Update(func(s *PCTransactionUpsert) {
		s.AddCommissionAmount(v)
	})
}

// UpdateCommissionAmount sets the "commission_amount" field to the value that was provided on create.
func (u *PCTransactionUpsertBulk) UpdateCommissionAmount() *PCTransactionUpsertBulk {
	return u.Update(func(s *PCTransactionUpsert) {
		s.UpdateCommissionAmount()
	})
}

// SetAdminShare sets the "admin_share" field.
func (u *PCTransactionUpsertBulk) SetAdminShare(v int64) *PCTransactionUpsertBulk {
	return u.Update(func(s *PCTransactionUpsert) {
		s.SetAdminShare(v)
	})
}

// AddAdminShare adds v to the "admin_share" field.
func (u *PCTransactionUpsertBulk) AddAdminShare(v int64) *PCTransactionUpsertBulk {
	return u.Update(func(s *PCTransactionUpsert) {
		s.AddAdminShare(v)
	})
}

// UpdateAdminShare sets the "admin_share" field to the value that was provided on create.
func (u *PCTransactionUpsertBulk) UpdateAdminShare() *PCTransactionUpsertBulk {
	return u.Update(func(s *PCTransactionUpsert) {
		s.UpdateAdminShare()
	})
}

// SetDescription sets the "description" field.
func (u *PCTransactionUpsertBulk) SetDescription(v string) *PCTransactionUpsertBulk {
	return u.Update(func(s *PCTransactionUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *PCTransactionUpsertBulk) UpdateDescription() *PCTransactionUpsertBulk {
	return u.Update(func(s *PCTransactionUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *PCTransactionUpsertBulk) ClearDescription() *PCTransactionUpsertBulk {
	return u.Update(func(s *PCTransactionUpsert) {
		s.ClearDescription()
	})
}

// SetOccurredAt sets the "occurred_at" field.
func (u *PCTransactionUpsertBulk) SetOccurredAt(v time.Time) *PCTransactionUpsertBulk {
	return u.Update(func(s *PCTransactionUpsert) {
		s.SetOccurredAt(v)
	})
}

// UpdateOccurredAt sets the "occurred_at" field to the value that was provided on create.
func (u *PCTransactionUpsertBulk) UpdateOccurredAt() *PCTransactionUpsertBulk {
	return u.Update(func(s *PCTransactionUpsert) {
		s.UpdateOccurredAt()
	})
}

// Exec executes the query.
func (u *PCTransactionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PCTransactionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PCTransactionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PCTransactionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
