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
	"github.com/niramoy/niramoy_backend/internal/repo/prescriptionmedicine"
)

// PrescriptionMedicineCreate is the builder for creating a PrescriptionMedicine entity.
type PrescriptionMedicineCreate struct {
	config
	mutation *PrescriptionMedicineMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PrescriptionMedicineCreate) SetCreatedAt(v time.Time) *PrescriptionMedicineCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PrescriptionMedicineCreate) SetNillableCreatedAt(v *time.Time) *PrescriptionMedicineCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetPrescriptionID sets the "prescription_id" field.
func (_c *PrescriptionMedicineCreate) SetPrescriptionID(v uuid.UUID) *PrescriptionMedicineCreate {
	_c.mutation.SetPrescriptionID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *PrescriptionMedicineCreate) SetName(v string) *PrescriptionMedicineCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDosage sets the "dosage" field.
func (_c *PrescriptionMedicineCreate) SetDosage(v string) *PrescriptionMedicineCreate {
	_c.mutation.SetDosage(v)
	return _c
}

// SetFrequency sets the "frequency" field.
func (_c *PrescriptionMedicineCreate) SetFrequency(v string) *PrescriptionMedicineCreate {
	_c.mutation.SetFrequency(v)
	return _c
}

// SetDuration sets the "duration" field.
func (_c *PrescriptionMedicineCreate) SetDuration(v string) *PrescriptionMedicineCreate {
	_c.mutation.SetDuration(v)
	return _c
}

// SetInstructions sets the "instructions" field.
func (_c *PrescriptionMedicineCreate) SetInstructions(v string) *PrescriptionMedicineCreate {
	_c.mutation.SetInstructions(v)
	return _c
}

// SetNillableInstructions sets the "instructions" field if the given value is not nil.
func (_c *PrescriptionMedicineCreate) SetNillableInstructions(v *string) *PrescriptionMedicineCreate {
	if v != nil {
		_c.SetInstructions(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PrescriptionMedicineCreate) SetID(v uuid.UUID) *PrescriptionMedicineCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PrescriptionMedicineCreate) SetNillableID(v *uuid.UUID) *PrescriptionMedicineCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the PrescriptionMedicineMutation object of the builder.
func (_c *PrescriptionMedicineCreate) Mutation() *PrescriptionMedicineMutation {
	return _c.mutation
}

// Save creates the PrescriptionMedicine in the database.
func (_c *PrescriptionMedicineCreate) Save(ctx context.Context) (*PrescriptionMedicine, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PrescriptionMedicineCreate) SaveX(ctx context.Context) *PrescriptionMedicine {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PrescriptionMedicineCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PrescriptionMedicineCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PrescriptionMedicineCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := prescriptionmedicine.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := prescriptionmedicine.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PrescriptionMedicineCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "PrescriptionMedicine.created_at"`)}
	}
	if _, ok := _c.mutation.PrescriptionID(); !ok {
		return &ValidationError{Name: "prescription_id", err: errors.New(`repo: missing required field "PrescriptionMedicine.prescription_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "PrescriptionMedicine.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := prescriptionmedicine.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "PrescriptionMedicine.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Dosage(); !ok {
		return &ValidationError{Name: "dosage", err: errors.New(`repo: missing required field "PrescriptionMedicine.dosage"`)}
	}
	if v, ok := _c.mutation.Dosage(); ok {
		if err := prescriptionmedicine.DosageValidator(v); err != nil {
			return &ValidationError{Name: "dosage", err: fmt.Errorf(`repo: validator failed for field "PrescriptionMedicine.dosage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Frequency(); !ok {
		return &ValidationError{Name: "frequency", err: errors.New(`repo: missing required field "PrescriptionMedicine.frequency"`)}
	}
	if v, ok := _c.mutation.Frequency(); ok {
		if err := prescriptionmedicine.FrequencyValidator(v); err != nil {
			return &ValidationError{Name: "frequency", err: fmt.Errorf(`repo: validator failed for field "PrescriptionMedicine.frequency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Duration(); !ok {
		return &ValidationError{Name: "duration", err: errors.New(`repo: missing required field "PrescriptionMedicine.duration"`)}
	}
	if v, ok := _c.mutation.Duration(); ok {
		if err := prescriptionmedicine.DurationValidator(v); err != nil {
			return &ValidationError{Name: "duration", err: fmt.Errorf(`repo: validator failed for field "PrescriptionMedicine.duration": %w`, err)}
		}
	}
	return nil
}

func (_c *PrescriptionMedicineCreate) sqlSave(ctx context.Context) (*PrescriptionMedicine, error) {
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

func (_c *PrescriptionMedicineCreate) createSpec() (*PrescriptionMedicine, *sqlgraph.CreateSpec) {
	var (
		_node = &PrescriptionMedicine{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(prescriptionmedicine.Table, sqlgraph.NewFieldSpec(prescriptionmedicine.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(prescriptionmedicine.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.PrescriptionID(); ok {
		_spec.SetField(prescriptionmedicine.FieldPrescriptionID, field.TypeUUID, value)
		_node.PrescriptionID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(prescriptionmedicine.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Dosage(); ok {
		_spec.SetField(prescriptionmedicine.FieldDosage, field.TypeString, value)
		_node.Dosage = value
	}
	if value, ok := _c.mutation.Frequency(); ok {
		_spec.SetField(prescriptionmedicine.FieldFrequency, field.TypeString, value)
		_node.Frequency = value
	}
	if value, ok := _c.mutation.Duration(); ok {
		_spec.SetField(prescriptionmedicine.FieldDuration, field.TypeString, value)
		_node.Duration = value
	}
	if value, ok := _c.mutation.Instructions(); ok {
		_spec.SetField(prescriptionmedicine.FieldInstructions, field.TypeString, value)
		_node.Instructions = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PrescriptionMedicine.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PrescriptionMedicineUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PrescriptionMedicineCreate) OnConflict(opts ...sql.ConflictOption) *PrescriptionMedicineUpsertOne {
	_c.conflict = opts
	return &PrescriptionMedicineUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PrescriptionMedicine.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PrescriptionMedicineCreate) OnConflictColumns(columns ...string) *PrescriptionMedicineUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PrescriptionMedicineUpsertOne{
		create: _c,
	}
}

type (
	// PrescriptionMedicineUpsertOne is the builder for "upsert"-ing
	//  one PrescriptionMedicine node.
	PrescriptionMedicineUpsertOne struct {
		create *PrescriptionMedicineCreate
	}

	// PrescriptionMedicineUpsert is the "OnConflict" setter.
	PrescriptionMedicineUpsert struct {
		*sql.UpdateSet
	}
)

// SetPrescriptionID sets the "prescription_id" field.
func (u *PrescriptionMedicineUpsert) SetPrescriptionID(v uuid.UUID) *PrescriptionMedicineUpsert {
	u.Set(prescriptionmedicine.FieldPrescriptionID, v)
	return u
}

// UpdatePrescriptionID sets the "prescription_id" field to the value that was provided on create.
func (u *PrescriptionMedicineUpsert) UpdatePrescriptionID() *PrescriptionMedicineUpsert {
	u.SetExcluded(prescriptionmedicine.FieldPrescriptionID)
	return u
}

// SetName sets the "name" field.
func (u *PrescriptionMedicineUpsert) SetName(v string) *PrescriptionMedicineUpsert {
	u.Set(prescriptionmedicine.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PrescriptionMedicineUpsert) UpdateName() *PrescriptionMedicineUpsert {
	u.SetExcluded(prescriptionmedicine.FieldName)
	return u
}

// SetDosage sets the "dosage" field.
func (u *PrescriptionMedicineUpsert) SetDosage(v string) *PrescriptionMedicineUpsert {
	u.Set(prescriptionmedicine.FieldDosage, v)
	return u
}

// UpdateDosage sets the "dosage" field to the value that was provided on create.
func (u *PrescriptionMedicineUpsert) UpdateDosage() *PrescriptionMedicineUpsert {
	u.SetExcluded(prescriptionmedicine.FieldDosage)
	return u
}

// SetFrequency sets the "frequency" field.
func (u *PrescriptionMedicineUpsert) SetFrequency(v string) *PrescriptionMedicineUpsert {
	u.Set(prescriptionmedicine.FieldFrequency, v)
	return u
}

// UpdateFrequency sets the "frequency" field to the value that was provided on create.
func (u *PrescriptionMedicineUpsert) UpdateFrequency() *PrescriptionMedicineUpsert {
	u.SetExcluded(prescriptionmedicine.FieldFrequency)
	return u
}

// SetDuration sets the "duration" field.
func (u *PrescriptionMedicineUpsert) SetDuration(v string) *PrescriptionMedicineUpsert {
	u.Set(prescriptionmedicine.FieldDuration, v)
	return u
}

// UpdateDuration sets the "duration" field to the value that was provided on create.
func (u *PrescriptionMedicineUpsert) UpdateDuration() *PrescriptionMedicineUpsert {
	u.SetExcluded(prescriptionmedicine.FieldDuration)
	return u
}

// SetInstructions sets the "instructions" field.
func (u *PrescriptionMedicineUpsert) SetInstructions(v string) *PrescriptionMedicineUpsert {
	u.Set(prescriptionmedicine.FieldInstructions, v)
	return u
}

// UpdateInstructions sets the "instructions" field to the value that was provided on create.
func (u *PrescriptionMedicineUpsert) UpdateInstructions() *PrescriptionMedicineUpsert {
	u.SetExcluded(prescriptionmedicine.FieldInstructions)
	return u
}

// ClearInstructions clears the value of the "instructions" field.
func (u *PrescriptionMedicineUpsert) ClearInstructions() *PrescriptionMedicineUpsert {
	u.SetNull(prescriptionmedicine.FieldInstructions)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PrescriptionMedicine.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(prescriptionmedicine.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PrescriptionMedicineUpsertOne) UpdateNewValues() *PrescriptionMedicineUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(prescriptionmedicine.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(prescriptionmedicine.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PrescriptionMedicine.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PrescriptionMedicineUpsertOne) Ignore() *PrescriptionMedicineUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PrescriptionMedicineUpsertOne) DoNothing() *PrescriptionMedicineUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PrescriptionMedicineCreate.OnConflict
// documentation for more info.
func (u *PrescriptionMedicineUpsertOne) Update(set func(*PrescriptionMedicineUpsert)) *PrescriptionMedicineUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PrescriptionMedicineUpsert{UpdateSet: update})
	}))
	return u
}

// SetPrescriptionID sets the "prescription_id" field.
func (u *PrescriptionMedicineUpsertOne) SetPrescriptionID(v uuid.UUID) *PrescriptionMedicineUpsertOne {
	return u.Update(func(s *PrescriptionMedicineUpsert) {
		s.SetPrescriptionID(v)
	})
}

// UpdatePrescriptionID sets the "prescription_id" field to the value that was provided on create.
func (u *PrescriptionMedicineUpsertOne) UpdatePrescriptionID() *PrescriptionMedicineUpsertOne {
	return u.Update(func(s *PrescriptionMedicineUpsert) {
		s.UpdatePrescriptionID()
	})
}

// SetName sets the "name" field.
func (u *PrescriptionMedicineUpsertOne) SetName(v string) *PrescriptionMedicineUpsertOne {
	return u.Update(func(s *PrescriptionMedicineUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PrescriptionMedicineUpsertOne) UpdateName() *PrescriptionMedicineUpsertOne {
	return u.Update(func(s *PrescriptionMedicineUpsert) {
		s.UpdateName()
	})
}

// SetDosage sets the "dosage" field.
func (u *PrescriptionMedicineUpsertOne) SetDosage(v string) *PrescriptionMedicineUpsertOne {
	return u.Update(func(s *PrescriptionMedicineUpsert) {
		s.SetDosage(v)
	})
}

// UpdateDosage sets the "dosage" field to the value that was provided on create.
func (u *PrescriptionMedicineUpsertOne) UpdateDosage() *PrescriptionMedicineUpsertOne {
	return u.Update(func(s *PrescriptionMedicineUpsert) {
		s.UpdateDosage()
	})
}

// SetFrequency sets the "frequency" field.
func (u *PrescriptionMedicineUpsertOne) SetFrequency(v string) *PrescriptionMedicineUpsertOne {
	return u.Update(func(s *PrescriptionMedicineUpsert) {
		s.SetFrequency(v)
	})
}

// UpdateFrequency sets the "frequency" field to the value that was provided on create.
func (u *PrescriptionMedicineUpsertOne) UpdateFrequency() *PrescriptionMedicineUpsertOne {
	return u.Update(func(s *PrescriptionMedicineUpsert) {
		s.UpdateFrequency()
	})
}

// SetDuration sets the "duration" field.
func (u *PrescriptionMedicineUpsertOne) SetDuration(v string) *PrescriptionMedicineUpsertOne {
	return u.Update(func(s *PrescriptionMedicineUpsert) {
		s.SetDuration(v)
	})
}

// UpdateDuration sets the "duration" field to the value that was provided on create.
func (u *PrescriptionMedicineUpsertOne) UpdateDuration() *PrescriptionMedicineUpsertOne {
	return u.Update(func(s *PrescriptionMedicineUpsert) {
		s.UpdateDuration()
	})
}

// SetInstructions sets the "instructions" field.
func (u *PrescriptionMedicineUpsertOne) SetInstructions(v string) *PrescriptionMedicineUpsertOne {
	return u.Update(func(s *PrescriptionMedicineUpsert) {
		s.SetInstructions(v)
	})
}

// UpdateInstructions sets the "instructions" field to the value that was provided on create.
func (u *PrescriptionMedicineUpsertOne) UpdateInstructions() *PrescriptionMedicineUpsertOne {
	return u.Update(func(s *PrescriptionMedicineUpsert) {
		s.UpdateInstructions()
	})
}

// ClearInstructions clears the value of the "instructions" field.
func (u *PrescriptionMedicineUpsertOne) ClearInstructions() *PrescriptionMedicineUpsertOne {
	return u.Update(func(s *PrescriptionMedicineUpsert) {
		s.ClearInstructions()
	})
}

// Exec executes the query.
func (u *PrescriptionMedicineUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PrescriptionMedicineCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PrescriptionMedicineUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PrescriptionMedicineUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PrescriptionMedicineUpsertOne.ID is not supported by MySQL driver. Use PrescriptionMedicineUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PrescriptionMedicineUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PrescriptionMedicineCreateBulk is the builder for creating many PrescriptionMedicine entities in bulk.
type PrescriptionMedicineCreateBulk struct {
	config
	err      error
	builders []*PrescriptionMedicineCreate
	conflict []sql.ConflictOption
}

// Save creates the PrescriptionMedicine entities in the database.
func (_c *PrescriptionMedicineCreateBulk) Save(ctx context.Context) ([]*PrescriptionMedicine, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PrescriptionMedicine, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PrescriptionMedicineMutation)
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
func (_c *PrescriptionMedicineCreateBulk) SaveX(ctx context.Context) []*PrescriptionMedicine {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PrescriptionMedicineCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PrescriptionMedicineCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PrescriptionMedicine.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PrescriptionMedicineUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PrescriptionMedicineCreateBulk) OnConflict(opts ...sql.ConflictOption) *PrescriptionMedicineUpsertBulk {
	_c.conflict = opts
	return &PrescriptionMedicineUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PrescriptionMedicine.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PrescriptionMedicineCreateBulk) OnConflictColumns(columns ...string) *PrescriptionMedicineUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PrescriptionMedicineUpsertBulk{
		create: _c,
	}
}

// PrescriptionMedicineUpsertBulk is the builder for "upsert"-ing
// a bulk of PrescriptionMedicine nodes.
type PrescriptionMedicineUpsertBulk struct {
	create *PrescriptionMedicineCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PrescriptionMedicine.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(prescriptionmedicine.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PrescriptionMedicineUpsertBulk) UpdateNewValues() *PrescriptionMedicineUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(prescriptionmedicine.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(prescriptionmedicine.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PrescriptionMedicine.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PrescriptionMedicineUpsertBulk) Ignore() *PrescriptionMedicineUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PrescriptionMedicineUpsertBulk) DoNothing() *PrescriptionMedicineUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PrescriptionMedicineCreateBulk.OnConflict
// documentation for more info.
func (u *PrescriptionMedicineUpsertBulk) Update(set func(*PrescriptionMedicineUpsert)) *PrescriptionMedicineUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PrescriptionMedicineUpsert{UpdateSet: update})
	}))
	return u
}

// SetPrescriptionID sets the "prescription_id" field.
func (u *PrescriptionMedicineUpsertBulk) SetPrescriptionID(v uuid.UUID) *PrescriptionMedicineUpsertBulk {
	return u.Update(func(s *PrescriptionMedicineUpsert) {
		s.SetPrescriptionID(v)
	})
}

// UpdatePrescriptionID sets the "prescription_id" field to the value that was provided on create.
func (u *PrescriptionMedicineUpsertBulk) UpdatePrescriptionID() *PrescriptionMedicineUpsertBulk {
	return u.Update(func(s *PrescriptionMedicineUpsert) {
		s.UpdatePrescriptionID()
	})
}

// SetName sets the "name" field.
func (u *PrescriptionMedicineUpsertBulk) SetName(v string) *PrescriptionMedicineUpsertBulk {
	return u.Update(func(s *PrescriptionMedicineUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PrescriptionMedicineUpsertBulk) UpdateName() *PrescriptionMedicineUpsertBulk {
	return u.Update(func(s *PrescriptionMedicineUpsert) {
		s.UpdateName()
	})
}

// SetDosage sets the "dosage" field.
func (u *PrescriptionMedicineUpsertBulk) SetDosage(v string) *PrescriptionMedicineUpsertBulk {
	return u.Update(func(s *PrescriptionMedicineUpsert) {
		s.SetDosage(v)
	})
}

// UpdateDosage sets the "dosage" field to the value that was provided on create.
func (u *PrescriptionMedicineUpsertBulk) UpdateDosage() *PrescriptionMedicineUpsertBulk {
	return u.Update(func(s *PrescriptionMedicineUpsert) {
		s.UpdateDosage()
	})
}

// SetFrequency sets the "frequency" field.
func (u *PrescriptionMedicineUpsertBulk) SetFrequency(v string) *PrescriptionMedicineUpsertBulk {
	return u.Update(func(s *PrescriptionMedicineUpsert) {
		s.SetFrequency(v)
	})
}

// UpdateFrequency sets the "frequency" field to the value that was provided on create.
func (u *PrescriptionMedicineUpsertBulk) UpdateFrequency() *PrescriptionMedicineUpsertBulk {
	return u.Update(func(s *PrescriptionMedicineUpsert) {
		s.UpdateFrequency()
	})
}

// SetDuration sets the "duration" field.
func (u *PrescriptionMedicineUpsertBulk) SetDuration(v string) *PrescriptionMedicineUpsertBulk {
	return u.Update(func(s *PrescriptionMedicineUpsert) {
		s.SetDuration(v)
	})
}

// UpdateDuration sets the "duration" field to the value that was provided on create.
func (u *PrescriptionMedicineUpsertBulk) UpdateDuration() *PrescriptionMedicineUpsertBulk {
	return u.Update(func(s *PrescriptionMedicineUpsert) {
		s.UpdateDuration()
	})
}

// SetInstructions sets the "instructions" field.
func (u *PrescriptionMedicineUpsertBulk) SetInstructions(v string) *PrescriptionMedicineUpsertBulk {
	return u.Update(func(s *PrescriptionMedicineUpsert) {
		s.SetInstructions(v)
	})
}

// UpdateInstructions sets the "instructions" field to the value that was provided on create.
func (u *PrescriptionMedicineUpsertBulk) UpdateInstructions() *PrescriptionMedicineUpsertBulk {
	return u.Update(func(s *PrescriptionMedicineUpsert) {
		s.UpdateInstructions()
	})
}

// ClearInstructions clears the value of the "instructions" field.
func (u *PrescriptionMedicineUpsertBulk) ClearInstructions() *PrescriptionMedicineUpsertBulk {
	return u.Update(func(s *PrescriptionMedicineUpsert) {
		s.ClearInstructions()
	})
}

// Exec executes the query.
func (u *PrescriptionMedicineUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PrescriptionMedicineCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PrescriptionMedicineCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PrescriptionMedicineUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
