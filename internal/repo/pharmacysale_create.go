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
	"github.com/niramoy/niramoy_backend/internal/repo/pharmacysale"
)

// PharmacySaleCreate is the builder for creating a PharmacySale entity.
type PharmacySaleCreate struct {
	config
	mutation *PharmacySaleMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PharmacySaleCreate) SetCreatedAt(v time.Time) *PharmacySaleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PharmacySaleCreate) SetNillableCreatedAt(v *time.Time) *PharmacySaleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PharmacySaleCreate) SetUpdatedAt(v time.Time) *PharmacySaleCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PharmacySaleCreate) SetNillableUpdatedAt(v *time.Time) *PharmacySaleCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSaleNumber sets the "sale_number" field.
func (_c *PharmacySaleCreate) SetSaleNumber(v string) *PharmacySaleCreate {
	_c.mutation.SetSaleNumber(v)
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *PharmacySaleCreate) SetPatientID(v uuid.UUID) *PharmacySaleCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_c *PharmacySaleCreate) SetNillablePatientID(v *uuid.UUID) *PharmacySaleCreate {
	if v != nil {
		_c.SetPatientID(*v)
	}
	return _c
}

// SetPrescriptionID sets the "prescription_id" field.
func (_c *PharmacySaleCreate) SetPrescriptionID(v uuid.UUID) *PharmacySaleCreate {
	_c.mutation.SetPrescriptionID(v)
	return _c
}

// SetNillablePrescriptionID sets the "prescription_id" field if the given value is not nil.
func (_c *PharmacySaleCreate) SetNillablePrescriptionID(v *uuid.UUID) *PharmacySaleCreate {
	if v != nil {
		_c.SetPrescriptionID(*v)
	}
	return _c
}

// SetTotalAmount sets the "total_amount" field.
func (_c *PharmacySaleCreate) SetTotalAmount(v int64) *PharmacySaleCreate {
	_c.mutation.SetTotalAmount(v)
	return _c
}

// SetAmountPaid sets the "amount_paid" field.
func (_c *PharmacySaleCreate) SetAmountPaid(v int64) *PharmacySaleCreate {
	_c.mutation.SetAmountPaid(v)
	return _c
}

// SetNillableAmountPaid sets the "amount_paid" field if the given value is not nil.
func (_c *PharmacySaleCreate) SetNillableAmountPaid(v *int64) *PharmacySaleCreate {
	if v != nil {
		_c.SetAmountPaid(*v)
	}
	return _c
}

// SetSoldBy sets the "sold_by" field.
func (_c *PharmacySaleCreate) SetSoldBy(v uuid.UUID) *PharmacySaleCreate {
	_c.mutation.SetSoldBy(v)
	return _c
}

// SetID sets the "id" field.
func (_c *PharmacySaleCreate) SetID(v uuid.UUID) *PharmacySaleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PharmacySaleCreate) SetNillableID(v *uuid.UUID) *PharmacySaleCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the PharmacySaleMutation object of the builder.
func (_c *PharmacySaleCreate) Mutation() *PharmacySaleMutation {
	return _c.mutation
}

// Save creates the PharmacySale in the database.
func (_c *PharmacySaleCreate) Save(ctx context.Context) (*PharmacySale, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PharmacySaleCreate) SaveX(ctx context.Context) *PharmacySale {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PharmacySaleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PharmacySaleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PharmacySaleCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pharmacysale.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := pharmacysale.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.AmountPaid(); !ok {
		v := pharmacysale.DefaultAmountPaid
		_c.mutation.SetAmountPaid(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := pharmacysale.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PharmacySaleCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "PharmacySale.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "PharmacySale.updated_at"`)}
	}
	if _, ok := _c.mutation.SaleNumber(); !ok {
		return &ValidationError{Name: "sale_number", err: errors.New(`repo: missing required field "PharmacySale.sale_number"`)}
	}
	if v, ok := _c.mutation.SaleNumber(); ok {
		if err := pharmacysale.SaleNumberValidator(v); err != nil {
			return &ValidationError{Name: "sale_number", err: fmt.Errorf(`repo: validator failed for field "PharmacySale.sale_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalAmount(); !ok {
		return &ValidationError{Name: "total_amount", err: errors.New(`repo: missing required field "PharmacySale.total_amount"`)}
	}
	if v, ok := _c.mutation.TotalAmount(); ok {
		if err := pharmacysale.TotalAmountValidator(v); err != nil {
			return &ValidationError{Name: "total_amount", err: fmt.Errorf(`repo: validator failed for field "PharmacySale.total_amount": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AmountPaid(); !ok {
		return &ValidationError{Name: "amount_paid", err: errors.New(`repo: missing required field "PharmacySale.amount_paid"`)}
	}
	if v, ok := _c.mutation.AmountPaid(); ok {
		if err := pharmacysale.AmountPaidValidator(v); err != nil {
			return &ValidationError{Name: "amount_paid", err: fmt.Errorf(`repo: validator failed for field "PharmacySale.amount_paid": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SoldBy(); !ok {
		return &ValidationError{Name: "sold_by", err: errors.New(`repo: missing required field "PharmacySale.sold_by"`)}
	}
	return nil
}

func (_c *PharmacySaleCreate) sqlSave(ctx context.Context) (*PharmacySale, error) {
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

func (_c *PharmacySaleCreate) createSpec() (*PharmacySale, *sqlgraph.CreateSpec) {
	var (
		_node = &PharmacySale{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pharmacysale.Table, sqlgraph.NewFieldSpec(pharmacysale.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pharmacysale.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(pharmacysale.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.SaleNumber(); ok {
		_spec.SetField(pharmacysale.FieldSaleNumber, field.TypeString, value)
		_node.SaleNumber = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(pharmacysale.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = &value
	}
	if value, ok := _c.mutation.PrescriptionID(); ok {
		_spec.SetField(pharmacysale.FieldPrescriptionID, field.TypeUUID, value)
		_node.PrescriptionID = &value
	}
	if value, ok := _c.mutation.TotalAmount(); ok {
		_spec.SetField(pharmacysale.FieldTotalAmount, field.TypeInt64, value)
		_node.TotalAmount = value
	}
	if value, ok := _c.mutation.AmountPaid(); ok {
		_spec.SetField(pharmacysale.FieldAmountPaid, field.TypeInt64, value)
		_node.AmountPaid = value
	}
	if value, ok := _c.mutation.SoldBy(); ok {
		_spec.SetField(pharmacysale.FieldSoldBy, field.TypeUUID, value)
		_node.SoldBy = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PharmacySale.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PharmacySaleUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PharmacySaleCreate) OnConflict(opts ...sql.ConflictOption) *PharmacySaleUpsertOne {
	_c.conflict = opts
	return &PharmacySaleUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PharmacySale.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PharmacySaleCreate) OnConflictColumns(columns ...string) *PharmacySaleUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PharmacySaleUpsertOne{
		create: _c,
	}
}

type (
	// PharmacySaleUpsertOne is the builder for "upsert"-ing
	//  one PharmacySale node.
	PharmacySaleUpsertOne struct {
		create *PharmacySaleCreate
	}

	// PharmacySaleUpsert is the "OnConflict" setter.
	PharmacySaleUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PharmacySaleUpsert) SetUpdatedAt(v time.Time) *PharmacySaleUpsert {
	u.Set(pharmacysale.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PharmacySaleUpsert) UpdateUpdatedAt() *PharmacySaleUpsert {
	u.SetExcluded(pharmacysale.FieldUpdatedAt)
	return u
}

// SetSaleNumber sets the "sale_number" field.
func (u *PharmacySaleUpsert) SetSaleNumber(v string) *PharmacySaleUpsert {
	u.Set(pharmacysale.FieldSaleNumber, v)
	return u
}

// UpdateSaleNumber sets the "sale_number" field to the value that was provided on create.
func (u *PharmacySaleUpsert) UpdateSaleNumber() *PharmacySaleUpsert {
	u.SetExcluded(pharmacysale.FieldSaleNumber)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *PharmacySaleUpsert) SetPatientID(v uuid.UUID) *PharmacySaleUpsert {
	u.Set(pharmacysale.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PharmacySaleUpsert) UpdatePatientID() *PharmacySaleUpsert {
	u.SetExcluded(pharmacysale.FieldPatientID)
	return u
}

// ClearPatientID clears the value of the "patient_id" field.
func (u *PharmacySaleUpsert) ClearPatientID() *PharmacySaleUpsert {
	u.SetNull(pharmacysale.FieldPatientID)
	return u
}

// SetPrescriptionID sets the "prescription_id" field.
func (u *PharmacySaleUpsert) SetPrescriptionID(v uuid.UUID) *PharmacySaleUpsert {
	u.Set(pharmacysale.FieldPrescriptionID, v)
	return u
}

// UpdatePrescriptionID sets the "prescription_id" field to the value that was provided on create.
func (u *PharmacySaleUpsert) UpdatePrescriptionID() *PharmacySaleUpsert {
	u.SetExcluded(pharmacysale.FieldPrescriptionID)
	return u
}

// ClearPrescriptionID clears the value of the "prescription_id" field.
func (u *PharmacySaleUpsert) ClearPrescriptionID() *PharmacySaleUpsert {
	u.SetNull(pharmacysale.FieldPrescriptionID)
	return u
}

// SetTotalAmount sets the "total_amount" field.
func (u *PharmacySaleUpsert) SetTotalAmount(v int64) *PharmacySaleUpsert {
	u.Set(pharmacysale.FieldTotalAmount, v)
	return u
}

// UpdateTotalAmount sets the "total_amount" field to the value that was provided on create.
func (u *PharmacySaleUpsert) UpdateTotalAmount() *PharmacySaleUpsert {
	u.SetExcluded(pharmacysale.FieldTotalAmount)
	return u
}

// AddTotalAmount adds v to the "total_amount" field.
func (u *PharmacySaleUpsert) AddTotalAmount(v int64) *PharmacySaleUpsert {
	u.Add(pharmacysale.FieldTotalAmount, v)
	return u
}

// SetAmountPaid sets the "amount_paid" field.
func (u *PharmacySaleUpsert) SetAmountPaid(v int64) *PharmacySaleUpsert {
	u.Set(pharmacysale.FieldAmountPaid, v)
	return u
}

// UpdateAmountPaid sets the "amount_paid" field to the value that was provided on create.
func (u *PharmacySaleUpsert) UpdateAmountPaid() *PharmacySaleUpsert {
	u.SetExcluded(pharmacysale.FieldAmountPaid)
	return u
}

// AddAmountPaid adds v to the "amount_paid" field.
func (u *PharmacySaleUpsert) AddAmountPaid(v int64) *PharmacySaleUpsert {
	u.Add(pharmacysale.FieldAmountPaid, v)
	return u
}

// SetSoldBy sets the "sold_by" field.
func (u *PharmacySaleUpsert) SetSoldBy(v uuid.UUID) *PharmacySaleUpsert {
	u.Set(pharmacysale.FieldSoldBy, v)
	return u
}

// UpdateSoldBy sets the "sold_by" field to the value that was provided on create.
func (u *PharmacySaleUpsert) UpdateSoldBy() *PharmacySaleUpsert {
	u.SetExcluded(pharmacysale.FieldSoldBy)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PharmacySale.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pharmacysale.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PharmacySaleUpsertOne) UpdateNewValues() *PharmacySaleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(pharmacysale.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(pharmacysale.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PharmacySale.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PharmacySaleUpsertOne) Ignore() *PharmacySaleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PharmacySaleUpsertOne) DoNothing() *PharmacySaleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PharmacySaleCreate.OnConflict
// documentation for more info.
func (u *PharmacySaleUpsertOne) Update(set func(*PharmacySaleUpsert)) *PharmacySaleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PharmacySaleUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PharmacySaleUpsertOne) SetUpdatedAt(v time.Time) *PharmacySaleUpsertOne {
	return u.Update(func(s *PharmacySaleUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PharmacySaleUpsertOne) UpdateUpdatedAt() *PharmacySaleUpsertOne {
	return u.Update(func(s *PharmacySaleUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetSaleNumber sets the "sale_number" field.
func (u *PharmacySaleUpsertOne) SetSaleNumber(v string) *PharmacySaleUpsertOne {
	return u.Update(func(s *PharmacySaleUpsert) {
		s.SetSaleNumber(v)
	})
}

// UpdateSaleNumber sets the "sale_number" field to the value that was provided on create.
func (u *PharmacySaleUpsertOne) UpdateSaleNumber() *PharmacySaleUpsertOne {
	return u.Update(func(s *PharmacySaleUpsert) {
		s.UpdateSaleNumber()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *PharmacySaleUpsertOne) SetPatientID(v uuid.UUID) *PharmacySaleUpsertOne {
	return u.Update(func(s *PharmacySaleUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PharmacySaleUpsertOne) UpdatePatientID() *PharmacySaleUpsertOne {
	return u.Update(func(s *PharmacySaleUpsert) {
		s.UpdatePatientID()
	})
}

// ClearPatientID clears the value of the "patient_id" field.
func (u *PharmacySaleUpsertOne) ClearPatientID() *PharmacySaleUpsertOne {
	return u.Update(func(s *PharmacySaleUpsert) {
		s.ClearPatientID()
	})
}

// SetPrescriptionID sets the "prescription_id" field.
func (u *PharmacySaleUpsertOne) SetPrescriptionID(v uuid.UUID) *PharmacySaleUpsertOne {
	return u.Update(func(s *PharmacySaleUpsert) {
		s.SetPrescriptionID(v)
	})
}

// UpdatePrescriptionID sets the "prescription_id" field to the value that was provided on create.
func (u *PharmacySaleUpsertOne) UpdatePrescriptionID() *PharmacySaleUpsertOne {
	return u.Update(func(s *PharmacySaleUpsert) {
		s.UpdatePrescriptionID()
	})
}

// ClearPrescriptionID clears the value of the "prescription_id" field.
func (u *PharmacySaleUpsertOne) ClearPrescriptionID() *PharmacySaleUpsertOne {
	return u.Update(func(s *PharmacySaleUpsert) {
		s.ClearPrescriptionID()
	})
}

// SetTotalAmount sets the "total_amount" field.
func (u *PharmacySaleUpsertOne) SetTotalAmount(v int64) *PharmacySaleUpsertOne {
	return u.Update(func(s *PharmacySaleUpsert) {
		s.SetTotalAmount(v)
	})
}

// AddTotalAmount adds v to the "total_amount" field.
func (u *PharmacySaleUpsertOne) AddTotalAmount(v int64) *PharmacySaleUpsertOne {
	return u.Update(func(s *PharmacySaleUpsert) {
		s.AddTotalAmount(v)
	})
}

// UpdateTotalAmount sets the "total_amount" field to the value that was provided on create.
func (u *PharmacySaleUpsertOne) UpdateTotalAmount() *PharmacySaleUpsertOne {
	return u.Update(func(s *PharmacySaleUpsert) {
		s.UpdateTotalAmount()
	})
}

// SetAmountPaid sets the "amount_paid" field.
func (u *PharmacySaleUpsertOne) SetAmountPaid(v int64) *PharmacySaleUpsertOne {
	return u.Update(func(s *PharmacySaleUpsert) {
		s.SetAmountPaid(v)
	})
}

// AddAmountPaid adds v to the "amount_paid" field.
func (u *PharmacySaleUpsertOne) AddAmountPaid(v int64) *PharmacySaleUpsertOne {
	return u.Update(func(s *PharmacySaleUpsert) {
		s.AddAmountPaid(v)
	})
}

// UpdateAmountPaid sets the "amount_paid" field to the value that was provided on create.
func (u *PharmacySaleUpsertOne) UpdateAmountPaid() *PharmacySaleUpsertOne {
	return u.Update(func(s *PharmacySaleUpsert) {
		s.UpdateAmountPaid()
	})
}

// SetSoldBy sets the "sold_by" field.
func (u *PharmacySaleUpsertOne) SetSoldBy(v uuid.UUID) *PharmacySaleUpsertOne {
	return u.Update(func(s *PharmacySaleUpsert) {
		s.SetSoldBy(v)
	})
}

// UpdateSoldBy sets the "sold_by" field to the value that was provided on create.
func (u *PharmacySaleUpsertOne) UpdateSoldBy() *PharmacySaleUpsertOne {
	return u.Update(func(s *PharmacySaleUpsert) {
		s.UpdateSoldBy()
	})
}

// Exec executes the query.
func (u *PharmacySaleUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PharmacySaleCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PharmacySaleUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PharmacySaleUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PharmacySaleUpsertOne.ID is not supported by MySQL driver. Use PharmacySaleUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PharmacySaleUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PharmacySaleCreateBulk is the builder for creating many PharmacySale entities in bulk.
type PharmacySaleCreateBulk struct {
	config
	err      error
	builders []*PharmacySaleCreate
	conflict []sql.ConflictOption
}

// Save creates the PharmacySale entities in the database.
func (_c *PharmacySaleCreateBulk) Save(ctx context.Context) ([]*PharmacySale, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PharmacySale, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PharmacySaleMutation)
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
func (_c *PharmacySaleCreateBulk) SaveX(ctx context.Context) []*PharmacySale {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PharmacySaleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PharmacySaleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PharmacySale.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PharmacySaleUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PharmacySaleCreateBulk) OnConflict(opts ...sql.ConflictOption) *PharmacySaleUpsertBulk {
	_c.conflict = opts
	return &PharmacySaleUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PharmacySale.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PharmacySaleCreateBulk) OnConflictColumns(columns ...string) *PharmacySaleUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PharmacySaleUpsertBulk{
		create: _c,
	}
}

// PharmacySaleUpsertBulk is the builder for "upsert"-ing
// a bulk of PharmacySale nodes.
type PharmacySaleUpsertBulk struct {
	create *PharmacySaleCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PharmacySale.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pharmacysale.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PharmacySaleUpsertBulk) UpdateNewValues() *PharmacySaleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(pharmacysale.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(pharmacysale.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PharmacySale.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PharmacySaleUpsertBulk) Ignore() *PharmacySaleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PharmacySaleUpsertBulk) DoNothing() *PharmacySaleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PharmacySaleCreateBulk.OnConflict
// documentation for more info.
func (u *PharmacySaleUpsertBulk) Update(set func(*PharmacySaleUpsert)) *PharmacySaleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PharmacySaleUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PharmacySaleUpsertBulk) SetUpdatedAt(v time.Time) *PharmacySaleUpsertBulk {
	return u.Update(func(s *PharmacySaleUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PharmacySaleUpsertBulk) UpdateUpdatedAt() *PharmacySaleUpsertBulk {
	return u.Update(func(s *PharmacySaleUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetSaleNumber sets the "sale_number" field.
func (u *PharmacySaleUpsertBulk) SetSaleNumber(v string) *PharmacySaleUpsertBulk {
	return u.Update(func(s *PharmacySaleUpsert) {
		s.SetSaleNumber(v)
	})
}

// UpdateSaleNumber sets the "sale_number" field to the value that was provided on create.
func (u *PharmacySaleUpsertBulk) UpdateSaleNumber() *PharmacySaleUpsertBulk {
	return u.Update(func(s *PharmacySaleUpsert) {
		s.UpdateSaleNumber()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *PharmacySaleUpsertBulk) SetPatientID(v uuid.UUID) *PharmacySaleUpsertBulk {
	return u.Update(func(s *PharmacySaleUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PharmacySaleUpsertBulk) UpdatePatientID() *PharmacySaleUpsertBulk {
	return u.Update(func(s *PharmacySaleUpsert) {
		s.UpdatePatientID()
	})
}

// ClearPatientID clears the value of the "patient_id" field.
func (u *PharmacySaleUpsertBulk) ClearPatientID() *PharmacySaleUpsertBulk {
	return u.Update(func(s *PharmacySaleUpsert) {
		s.ClearPatientID()
	})
}

// SetPrescriptionID sets the "prescription_id" field.
func (u *PharmacySaleUpsertBulk) SetPrescriptionID(v uuid.UUID) *PharmacySaleUpsertBulk {
	return u.Update(func(s *PharmacySaleUpsert) {
		s.SetPrescriptionID(v)
	})
}

// UpdatePrescriptionID sets the "prescription_id" field to the value that was provided on create.
func (u *PharmacySaleUpsertBulk) UpdatePrescriptionID() *PharmacySaleUpsertBulk {
	return u.Update(func(s *PharmacySaleUpsert) {
		s.UpdatePrescriptionID()
	})
}

// ClearPrescriptionID clears the value of the "prescription_id" field.
func (u *PharmacySaleUpsertBulk) ClearPrescriptionID() *PharmacySaleUpsertBulk {
	return u.Update(func(s *PharmacySaleUpsert) {
		s.ClearPrescriptionID()
	})
}

// SetTotalAmount sets the "total_amount" field.
func (u *PharmacySaleUpsertBulk) SetTotalAmount(v int64) *PharmacySaleUpsertBulk {
	return u.Update(func(s *PharmacySaleUpsert) {
		s.SetTotalAmount(v)
	})
}

// AddTotalAmount adds v to the "total_amount" field.
func (u *PharmacySaleUpsertBulk) AddTotalAmount(v int64) *PharmacySaleUpsertBulk {
	return u.Update(func(s *PharmacySaleUpsert) {
		s.AddTotalAmount(v)
	})
}

// UpdateTotalAmount sets the "total_amount" field to the value that was provided on create.
func (u *PharmacySaleUpsertBulk) UpdateTotalAmount() *PharmacySaleUpsertBulk {
	return u.Update(func(s *PharmacySaleUpsert) {
		s.UpdateTotalAmount()
	})
}

// SetAmountPaid sets the "amount_paid" field.
func (u *PharmacySaleUpsertBulk) SetAmountPaid(v int64) *PharmacySaleUpsertBulk {
	return u.Update(func(s *PharmacySaleUpsert) {
		s.SetAmountPaid(v)
	})
}

// AddAmountPaid adds v to the "amount_paid" field.
func (u *PharmacySaleUpsertBulk) AddAmountPaid(v int64) *PharmacySaleUpsertBulk {
	return u.Update(func(s *PharmacySaleUpsert) {
		s.AddAmountPaid(v)
	})
}

// UpdateAmountPaid sets the "amount_paid" field to the value that was provided on create.
func (u *PharmacySaleUpsertBulk) UpdateAmountPaid() *PharmacySaleUpsertBulk {
	return u.Update(func(s *PharmacySaleUpsert) {
		s.UpdateAmountPaid()
	})
}

// SetSoldBy sets the "sold_by" field.
func (u *PharmacySaleUpsertBulk) SetSoldBy(v uuid.UUID) *PharmacySaleUpsertBulk {
	return u.Update(func(s *PharmacySaleUpsert) {
		s.SetSoldBy(v)
	})
}

// UpdateSoldBy sets the "sold_by" field to the value that was provided on create.
func (u *PharmacySaleUpsertBulk) UpdateSoldBy() *PharmacySaleUpsertBulk {
	return u.Update(func(s *PharmacySaleUpsert) {
		s.UpdateSoldBy()
	})
}

// Exec executes the query.
func (u *PharmacySaleUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PharmacySaleCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PharmacySaleCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PharmacySaleUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
