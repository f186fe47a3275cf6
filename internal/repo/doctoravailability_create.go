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
	"github.com/niramoy/niramoy_backend/internal/repo/doctoravailability"
)

// DoctorAvailabilityCreate is the builder for creating a DoctorAvailability entity.
type DoctorAvailabilityCreate struct {
	config
	mutation *DoctorAvailabilityMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *DoctorAvailabilityCreate) SetCreatedAt(v time.Time) *DoctorAvailabilityCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DoctorAvailabilityCreate) SetNillableCreatedAt(v *time.Time) *DoctorAvailabilityCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DoctorAvailabilityCreate) SetUpdatedAt(v time.Time) *DoctorAvailabilityCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DoctorAvailabilityCreate) SetNillableUpdatedAt(v *time.Time) *DoctorAvailabilityCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *DoctorAvailabilityCreate) SetDoctorID(v uuid.UUID) *DoctorAvailabilityCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *DoctorAvailabilityCreate) SetDate(v time.Time) *DoctorAvailabilityCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetAvailable sets the "available" field.
func (_c *DoctorAvailabilityCreate) SetAvailable(v bool) *DoctorAvailabilityCreate {
	_c.mutation.SetAvailable(v)
	return _c
}

// SetNillableAvailable sets the "available" field if the given value is not nil.
func (_c *DoctorAvailabilityCreate) SetNillableAvailable(v *bool) *DoctorAvailabilityCreate {
	if v != nil {
		_c.SetAvailable(*v)
	}
	return _c
}

// SetReason sets the "reason" field.
func (_c *DoctorAvailabilityCreate) SetReason(v string) *DoctorAvailabilityCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *DoctorAvailabilityCreate) SetNillableReason(v *string) *DoctorAvailabilityCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DoctorAvailabilityCreate) SetID(v uuid.UUID) *DoctorAvailabilityCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DoctorAvailabilityCreate) SetNillableID(v *uuid.UUID) *DoctorAvailabilityCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the DoctorAvailabilityMutation object of the builder.
func (_c *DoctorAvailabilityCreate) Mutation() *DoctorAvailabilityMutation {
	return _c.mutation
}

// Save creates the DoctorAvailability in the database.
func (_c *DoctorAvailabilityCreate) Save(ctx context.Context) (*DoctorAvailability, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DoctorAvailabilityCreate) SaveX(ctx context.Context) *DoctorAvailability {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DoctorAvailabilityCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DoctorAvailabilityCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DoctorAvailabilityCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := doctoravailability.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := doctoravailability.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Available(); !ok {
		v := doctoravailability.DefaultAvailable
		_c.mutation.SetAvailable(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := doctoravailability.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DoctorAvailabilityCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "DoctorAvailability.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "DoctorAvailability.updated_at"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`repo: missing required field "DoctorAvailability.doctor_id"`)}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`repo: missing required field "DoctorAvailability.date"`)}
	}
	if _, ok := _c.mutation.Available(); !ok {
		return &ValidationError{Name: "available", err: errors.New(`repo: missing required field "DoctorAvailability.available"`)}
	}
	if v, ok := _c.mutation.Reason(); ok {
		if err := doctoravailability.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`repo: validator failed for field "DoctorAvailability.reason": %w`, err)}
		}
	}
	return nil
}

func (_c *DoctorAvailabilityCreate) sqlSave(ctx context.Context) (*DoctorAvailability, error) {
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

func (_c *DoctorAvailabilityCreate) createSpec() (*DoctorAvailability, *sqlgraph.CreateSpec) {
	var (
		_node = &DoctorAvailability{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(doctoravailability.Table, sqlgraph.NewFieldSpec(doctoravailability.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(doctoravailability.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(doctoravailability.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DoctorID(); ok {
		_spec.SetField(doctoravailability.FieldDoctorID, field.TypeUUID, value)
		_node.DoctorID = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(doctoravailability.FieldDate, field.TypeTime, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.Available(); ok {
		_spec.SetField(doctoravailability.FieldAvailable, field.TypeBool, value)
		_node.Available = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(doctoravailability.FieldReason, field.TypeString, value)
		_node.Reason = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DoctorAvailability.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DoctorAvailabilityUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DoctorAvailabilityCreate) OnConflict(opts ...sql.ConflictOption) *DoctorAvailabilityUpsertOne {
	_c.conflict = opts
	return &DoctorAvailabilityUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DoctorAvailability.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DoctorAvailabilityCreate) OnConflictColumns(columns ...string) *DoctorAvailabilityUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DoctorAvailabilityUpsertOne{
		create: _c,
	}
}

type (
	// DoctorAvailabilityUpsertOne is the builder for "upsert"-ing
	//  one DoctorAvailability node.
	DoctorAvailabilityUpsertOne struct {
		create *DoctorAvailabilityCreate
	}

	// DoctorAvailabilityUpsert is the "OnConflict" setter.
	DoctorAvailabilityUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *DoctorAvailabilityUpsert) SetUpdatedAt(v time.Time) *DoctorAvailabilityUpsert {
	u.Set(doctoravailability.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DoctorAvailabilityUpsert) UpdateUpdatedAt() *DoctorAvailabilityUpsert {
	u.SetExcluded(doctoravailability.FieldUpdatedAt)
	return u
}

// SetDoctorID sets the "doctor_id" field.
func (u *DoctorAvailabilityUpsert) SetDoctorID(v uuid.UUID) *DoctorAvailabilityUpsert {
	u.Set(doctoravailability.FieldDoctorID, v)
	return u
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *DoctorAvailabilityUpsert) UpdateDoctorID() *DoctorAvailabilityUpsert {
	u.SetExcluded(doctoravailability.FieldDoctorID)
	return u
}

// SetDate sets the "date" field.
func (u *DoctorAvailabilityUpsert) SetDate(v time.Time) *DoctorAvailabilityUpsert {
	u.Set(doctoravailability.FieldDate, v)
	return u
}

// UpdateDate sets the "date" field to the value that was provided on create.
func (u *DoctorAvailabilityUpsert) UpdateDate() *DoctorAvailabilityUpsert {
	u.SetExcluded(doctoravailability.FieldDate)
	return u
}

// SetAvailable sets the "available" field.
func (u *DoctorAvailabilityUpsert) SetAvailable(v bool) *DoctorAvailabilityUpsert {
	u.Set(doctoravailability.FieldAvailable, v)
	return u
}

// UpdateAvailable sets the "available" field to the value that was provided on create.
func (u *DoctorAvailabilityUpsert) UpdateAvailable() *DoctorAvailabilityUpsert {
	u.SetExcluded(doctoravailability.FieldAvailable)
	return u
}

// SetReason sets the "reason" field.
func (u *DoctorAvailabilityUpsert) SetReason(v string) *DoctorAvailabilityUpsert {
	u.Set(doctoravailability.FieldReason, v)
	return u
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *DoctorAvailabilityUpsert) UpdateReason() *DoctorAvailabilityUpsert {
	u.SetExcluded(doctoravailability.FieldReason)
	return u
}

// ClearReason clears the value of the "reason" field.
func (u *DoctorAvailabilityUpsert) ClearReason() *DoctorAvailabilityUpsert {
	u.SetNull(doctoravailability.FieldReason)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.DoctorAvailability.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(doctoravailability.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DoctorAvailabilityUpsertOne) UpdateNewValues() *DoctorAvailabilityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(doctoravailability.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(doctoravailability.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DoctorAvailability.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DoctorAvailabilityUpsertOne) Ignore() *DoctorAvailabilityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DoctorAvailabilityUpsertOne) DoNothing() *DoctorAvailabilityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DoctorAvailabilityCreate.OnConflict
// documentation for more info.
func (u *DoctorAvailabilityUpsertOne) Update(set func(*DoctorAvailabilityUpsert)) *DoctorAvailabilityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DoctorAvailabilityUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DoctorAvailabilityUpsertOne) SetUpdatedAt(v time.Time) *DoctorAvailabilityUpsertOne {
	return u.Update(func(s *DoctorAvailabilityUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DoctorAvailabilityUpsertOne) UpdateUpdatedAt() *DoctorAvailabilityUpsertOne {
	return u.Update(func(s *DoctorAvailabilityUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *DoctorAvailabilityUpsertOne) SetDoctorID(v uuid.UUID) *DoctorAvailabilityUpsertOne {
	return u.Update(func(s *DoctorAvailabilityUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *DoctorAvailabilityUpsertOne) UpdateDoctorID() *DoctorAvailabilityUpsertOne {
	return u.Update(func(s *DoctorAvailabilityUpsert) {
		s.UpdateDoctorID()
	})
}

// SetDate sets the "date" field.
func (u *DoctorAvailabilityUpsertOne) SetDate(v time.Time) *DoctorAvailabilityUpsertOne {
	return u.Update(func(s *DoctorAvailabilityUpsert) {
		s.SetDate(v)
	})
}

// UpdateDate sets the "date" field to the value that was provided on create.
func (u *DoctorAvailabilityUpsertOne) UpdateDate() *DoctorAvailabilityUpsertOne {
	return u.Update(func(s *DoctorAvailabilityUpsert) {
		s.UpdateDate()
	})
}

// SetAvailable sets the "available" field.
func (u *DoctorAvailabilityUpsertOne) SetAvailable(v bool) *DoctorAvailabilityUpsertOne {
	return u.Update(func(s *DoctorAvailabilityUpsert) {
		s.SetAvailable(v)
	})
}

// UpdateAvailable sets the "available" field to the value that was provided on create.
func (u *DoctorAvailabilityUpsertOne) UpdateAvailable() *DoctorAvailabilityUpsertOne {
	return u.Update(func(s *DoctorAvailabilityUpsert) {
		s.UpdateAvailable()
	})
}

// SetReason sets the "reason" field.
func (u *DoctorAvailabilityUpsertOne) SetReason(v string) *DoctorAvailabilityUpsertOne {
	return u.Update(func(s *DoctorAvailabilityUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *DoctorAvailabilityUpsertOne) UpdateReason() *DoctorAvailabilityUpsertOne {
	return u.Update(func(s *DoctorAvailabilityUpsert) {
		s.UpdateReason()
	})
}

// ClearReason clears the value of the "reason" field.
func (u *DoctorAvailabilityUpsertOne) ClearReason() *DoctorAvailabilityUpsertOne {
	return u.Update(func(s *DoctorAvailabilityUpsert) {
		s.ClearReason()
	})
}

// Exec executes the query.
func (u *DoctorAvailabilityUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DoctorAvailabilityCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DoctorAvailabilityUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DoctorAvailabilityUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: DoctorAvailabilityUpsertOne.ID is not supported by MySQL driver. Use DoctorAvailabilityUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DoctorAvailabilityUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DoctorAvailabilityCreateBulk is the builder for creating many DoctorAvailability entities in bulk.
type DoctorAvailabilityCreateBulk struct {
	config
	err      error
	builders []*DoctorAvailabilityCreate
	conflict []sql.ConflictOption
}

// Save creates the DoctorAvailability entities in the database.
func (_c *DoctorAvailabilityCreateBulk) Save(ctx context.Context) ([]*DoctorAvailability, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DoctorAvailability, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DoctorAvailabilityMutation)
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
func (_c *DoctorAvailabilityCreateBulk) SaveX(ctx context.Context) []*DoctorAvailability {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DoctorAvailabilityCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DoctorAvailabilityCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DoctorAvailability.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DoctorAvailabilityUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DoctorAvailabilityCreateBulk) OnConflict(opts ...sql.ConflictOption) *DoctorAvailabilityUpsertBulk {
	_c.conflict = opts
	return &DoctorAvailabilityUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DoctorAvailability.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DoctorAvailabilityCreateBulk) OnConflictColumns(columns ...string) *DoctorAvailabilityUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DoctorAvailabilityUpsertBulk{
		create: _c,
	}
}

// DoctorAvailabilityUpsertBulk is the builder for "upsert"-ing
// a bulk of DoctorAvailability nodes.
type DoctorAvailabilityUpsertBulk struct {
	create *DoctorAvailabilityCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DoctorAvailability.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(doctoravailability.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DoctorAvailabilityUpsertBulk) UpdateNewValues() *DoctorAvailabilityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(doctoravailability.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(doctoravailability.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DoctorAvailability.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DoctorAvailabilityUpsertBulk) Ignore() *DoctorAvailabilityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DoctorAvailabilityUpsertBulk) DoNothing() *DoctorAvailabilityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DoctorAvailabilityCreateBulk.OnConflict
// documentation for more info.
func (u *DoctorAvailabilityUpsertBulk) Update(set func(*DoctorAvailabilityUpsert)) *DoctorAvailabilityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DoctorAvailabilityUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DoctorAvailabilityUpsertBulk) SetUpdatedAt(v time.Time) *DoctorAvailabilityUpsertBulk {
	return u.Update(func(s *DoctorAvailabilityUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DoctorAvailabilityUpsertBulk) UpdateUpdatedAt() *DoctorAvailabilityUpsertBulk {
	return u.Update(func(s *DoctorAvailabilityUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *DoctorAvailabilityUpsertBulk) SetDoctorID(v uuid.UUID) *DoctorAvailabilityUpsertBulk {
	return u.Update(func(s *DoctorAvailabilityUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *DoctorAvailabilityUpsertBulk) UpdateDoctorID() *DoctorAvailabilityUpsertBulk {
	return u.Update(func(s *DoctorAvailabilityUpsert) {
		s.UpdateDoctorID()
	})
}

// SetDate sets the "date" field.
func (u *DoctorAvailabilityUpsertBulk) SetDate(v time.Time) *DoctorAvailabilityUpsertBulk {
	return u.Update(func(s *DoctorAvailabilityUpsert) {
		s.SetDate(v)
	})
}

// UpdateDate sets the "date" field to the value that was provided on create.
func (u *DoctorAvailabilityUpsertBulk) UpdateDate() *DoctorAvailabilityUpsertBulk {
	return u.Update(func(s *DoctorAvailabilityUpsert) {
		s.UpdateDate()
	})
}

// SetAvailable sets the "available" field.
func (u *DoctorAvailabilityUpsertBulk) SetAvailable(v bool) *DoctorAvailabilityUpsertBulk {
	return u.Update(func(s *DoctorAvailabilityUpsert) {
		s.SetAvailable(v)
	})
}

// UpdateAvailable sets the "available" field to the value that was provided on create.
func (u *DoctorAvailabilityUpsertBulk) UpdateAvailable() *DoctorAvailabilityUpsertBulk {
	return u.Update(func(s *DoctorAvailabilityUpsert) {
		s.UpdateAvailable()
	})
}

// SetReason sets the "reason" field.
func (u *DoctorAvailabilityUpsertBulk) SetReason(v string) *DoctorAvailabilityUpsertBulk {
	return u.Update(func(s *DoctorAvailabilityUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *DoctorAvailabilityUpsertBulk) UpdateReason() *DoctorAvailabilityUpsertBulk {
	return u.Update(func(s *DoctorAvailabilityUpsert) {
		s.UpdateReason()
	})
}

// ClearReason clears the value of the "reason" field.
func (u *DoctorAvailabilityUpsertBulk) ClearReason() *DoctorAvailabilityUpsertBulk {
	return u.Update(func(s *DoctorAvailabilityUpsert) {
		s.ClearReason()
	})
}

// Exec executes the query.
func (u *DoctorAvailabilityUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the DoctorAvailabilityCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DoctorAvailabilityCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DoctorAvailabilityUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
