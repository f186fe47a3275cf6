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
	"github.com/niramoy/niramoy_backend/internal/repo/drug"
)

// DrugCreate is the builder for creating a Drug entity.
type DrugCreate struct {
	config
	mutation *DrugMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *DrugCreate) SetCreatedAt(v time.Time) *DrugCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DrugCreate) SetNillableCreatedAt(v *time.Time) *DrugCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DrugCreate) SetUpdatedAt(v time.Time) *DrugCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DrugCreate) SetNillableUpdatedAt(v *time.Time) *DrugCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *DrugCreate) SetName(v string) *DrugCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetGenericName sets the "generic_name" field.
func (_c *DrugCreate) SetGenericName(v string) *DrugCreate {
	_c.mutation.SetGenericName(v)
	return _c
}

// SetNillableGenericName sets the "generic_name" field if the given value is not nil.
func (_c *DrugCreate) SetNillableGenericName(v *string) *DrugCreate {
	if v != nil {
		_c.SetGenericName(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *DrugCreate) SetCategory(v string) *DrugCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *DrugCreate) SetNillableCategory(v *string) *DrugCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetManufacturer sets the "manufacturer" field.
func (_c *DrugCreate) SetManufacturer(v string) *DrugCreate {
	_c.mutation.SetManufacturer(v)
	return _c
}

// SetNillableManufacturer sets the "manufacturer" field if the given value is not nil.
func (_c *DrugCreate) SetNillableManufacturer(v *string) *DrugCreate {
	if v != nil {
		_c.SetManufacturer(*v)
	}
	return _c
}

// SetBatchNumber sets the "batch_number" field.
func (_c *DrugCreate) SetBatchNumber(v string) *DrugCreate {
	_c.mutation.SetBatchNumber(v)
	return _c
}

// SetNillableBatchNumber sets the "batch_number" field if the given value is not nil.
func (_c *DrugCreate) SetNillableBatchNumber(v *string) *DrugCreate {
	if v != nil {
		_c.SetBatchNumber(*v)
	}
	return _c
}

// SetUnitPrice sets the "unit_price" field.
func (_c *DrugCreate) SetUnitPrice(v int64) *DrugCreate {
	_c.mutation.SetUnitPrice(v)
	return _c
}

// SetStockQuantity sets the "stock_quantity" field.
func (_c *DrugCreate) SetStockQuantity(v int) *DrugCreate {
	_c.mutation.SetStockQuantity(v)
	return _c
}

// SetNillableStockQuantity sets the "stock_quantity" field if the given value is not nil.
func (_c *DrugCreate) SetNillableStockQuantity(v *int) *DrugCreate {
	if v != nil {
		_c.SetStockQuantity(*v)
	}
	return _c
}

// SetReorderLevel sets the "reorder_level" field.
func (_c *DrugCreate) SetReorderLevel(v int) *DrugCreate {
	_c.mutation.SetReorderLevel(v)
	return _c
}

// SetNillableReorderLevel sets the "reorder_level" field if the given value is not nil.
func (_c *DrugCreate) SetNillableReorderLevel(v *int) *DrugCreate {
	if v != nil {
		_c.SetReorderLevel(*v)
	}
	return _c
}

// SetExpiryDate sets the "expiry_date" field.
func (_c *DrugCreate) SetExpiryDate(v time.Time) *DrugCreate {
	_c.mutation.SetExpiryDate(v)
	return _c
}

// SetNillableExpiryDate sets the "expiry_date" field if the given value is not nil.
func (_c *DrugCreate) SetNillableExpiryDate(v *time.Time) *DrugCreate {
	if v != nil {
		_c.SetExpiryDate(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *DrugCreate) SetActive(v bool) *DrugCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *DrugCreate) SetNillableActive(v *bool) *DrugCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DrugCreate) SetID(v uuid.UUID) *DrugCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DrugCreate) SetNillableID(v *uuid.UUID) *DrugCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the DrugMutation object of the builder.
func (_c *DrugCreate) Mutation() *DrugMutation {
	return _c.mutation
}

// Save creates the Drug in the database.
func (_c *DrugCreate) Save(ctx context.Context) (*Drug, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DrugCreate) SaveX(ctx context.Context) *Drug {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DrugCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DrugCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DrugCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := drug.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := drug.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.StockQuantity(); !ok {
		v := drug.DefaultStockQuantity
		_c.mutation.SetStockQuantity(v)
	}
	if _, ok := _c.mutation.ReorderLevel(); !ok {
		v := drug.DefaultReorderLevel
		_c.mutation.SetReorderLevel(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := drug.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := drug.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DrugCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Drug.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Drug.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "Drug.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := drug.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Drug.name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.GenericName(); ok {
		if err := drug.GenericNameValidator(v); err != nil {
			return &ValidationError{Name: "generic_name", err: fmt.Errorf(`repo: validator failed for field "Drug.generic_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := drug.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`repo: validator failed for field "Drug.category": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Manufacturer(); ok {
		if err := drug.ManufacturerValidator(v); err != nil {
			return &ValidationError{Name: "manufacturer", err: fmt.Errorf(`repo: validator failed for field "Drug.manufacturer": %w`, err)}
		}
	}
	if v, ok := _c.mutation.BatchNumber(); ok {
		if err := drug.BatchNumberValidator(v); err != nil {
			return &ValidationError{Name: "batch_number", err: fmt.Errorf(`repo: validator failed for field "Drug.batch_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UnitPrice(); !ok {
		return &ValidationError{Name: "unit_price", err: errors.New(`repo: missing required field "Drug.unit_price"`)}
	}
	if v, ok := _c.mutation.UnitPrice(); ok {
		if err := drug.UnitPriceValidator(v); err != nil {
			return &ValidationError{Name: "unit_price", err: fmt.Errorf(`repo: validator failed for field "Drug.unit_price": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StockQuantity(); !ok {
		return &ValidationError{Name: "stock_quantity", err: errors.New(`repo: missing required field "Drug.stock_quantity"`)}
	}
	if v, ok := _c.mutation.StockQuantity(); ok {
		if err := drug.StockQuantityValidator(v); err != nil {
			return &ValidationError{Name: "stock_quantity", err: fmt.Errorf(`repo: validator failed for field "Drug.stock_quantity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReorderLevel(); !ok {
		return &ValidationError{Name: "reorder_level", err: errors.New(`repo: missing required field "Drug.reorder_level"`)}
	}
	if v, ok := _c.mutation.ReorderLevel(); ok {
		if err := drug.ReorderLevelValidator(v); err != nil {
			return &ValidationError{Name: "reorder_level", err: fmt.Errorf(`repo: validator failed for field "Drug.reorder_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`repo: missing required field "Drug.active"`)}
	}
	return nil
}

func (_c *DrugCreate) sqlSave(ctx context.Context) (*Drug, error) {
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

func (_c *DrugCreate) createSpec() (*Drug, *sqlgraph.CreateSpec) {
	var (
		_node = &Drug{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(drug.Table, sqlgraph.NewFieldSpec(drug.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(drug.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(drug.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(drug.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.GenericName(); ok {
		_spec.SetField(drug.FieldGenericName, field.TypeString, value)
		_node.GenericName = &value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(drug.FieldCategory, field.TypeString, value)
		_node.Category = &value
	}
	if value, ok := _c.mutation.Manufacturer(); ok {
		_spec.SetField(drug.FieldManufacturer, field.TypeString, value)
		_node.Manufacturer = &value
	}
	if value, ok := _c.mutation.BatchNumber(); ok {
		_spec.SetField(drug.FieldBatchNumber, field.TypeString, value)
		_node.BatchNumber = &value
	}
	if value, ok := _c.mutation.UnitPrice(); ok {
		_spec.SetField(drug.FieldUnitPrice, field.TypeInt64, value)
		_node.UnitPrice = value
	}
	if value, ok := _c.mutation.StockQuantity(); ok {
		_spec.SetField(drug.FieldStockQuantity, field.TypeInt, value)
		_node.StockQuantity = value
	}
	if value, ok := _c.mutation.ReorderLevel(); ok {
		_spec.SetField(drug.FieldReorderLevel, field.TypeInt, value)
		_node.ReorderLevel = value
	}
	if value, ok := _c.mutation.ExpiryDate(); ok {
		_spec.SetField(drug.FieldExpiryDate, field.TypeTime, value)
		_node.ExpiryDate = &value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(drug.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Drug.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DrugUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DrugCreate) OnConflict(opts ...sql.ConflictOption) *DrugUpsertOne {
	_c.conflict = opts
	return &DrugUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Drug.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DrugCreate) OnConflictColumns(columns ...string) *DrugUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DrugUpsertOne{
		create: _c,
	}
}

type (
	// DrugUpsertOne is the builder for "upsert"-ing
	//  one Drug node.
	DrugUpsertOne struct {
		create *DrugCreate
	}

	// DrugUpsert is the "OnConflict" setter.
	DrugUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *DrugUpsert) SetUpdatedAt(v time.Time) *DrugUpsert {
	u.Set(drug.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DrugUpsert) UpdateUpdatedAt() *DrugUpsert {
	u.SetExcluded(drug.FieldUpdatedAt)
	return u
}

// SetName sets the "name" field.
func (u *DrugUpsert) SetName(v string) *DrugUpsert {
	u.Set(drug.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *DrugUpsert) UpdateName() *DrugUpsert {
	u.SetExcluded(drug.FieldName)
	return u
}

// SetGenericName sets the "generic_name" field.
func (u *DrugUpsert) SetGenericName(v string) *DrugUpsert {
	u.Set(drug.FieldGenericName, v)
	return u
}

// UpdateGenericName sets the "generic_name" field to the value that was provided on create.
func (u *DrugUpsert) UpdateGenericName() *DrugUpsert {
	u.SetExcluded(drug.FieldGenericName)
	return u
}

// ClearGenericName clears the value of the "generic_name" field.
func (u *DrugUpsert) ClearGenericName() *DrugUpsert {
	u.SetNull(drug.FieldGenericName)
	return u
}

// SetCategory sets the "category" field.
func (u *DrugUpsert) SetCategory(v string) *DrugUpsert {
	u.Set(drug.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *DrugUpsert) UpdateCategory() *DrugUpsert {
	u.SetExcluded(drug.FieldCategory)
	return u
}

// ClearCategory clears the value of the "category" field.
func (u *DrugUpsert) ClearCategory() *DrugUpsert {
	u.SetNull(drug.FieldCategory)
	return u
}

// SetManufacturer sets the "manufacturer" field.
func (u *DrugUpsert) SetManufacturer(v string) *DrugUpsert {
	u.Set(drug.FieldManufacturer, v)
	return u
}

// UpdateManufacturer sets the "manufacturer" field to the value that was provided on create.
func (u *DrugUpsert) UpdateManufacturer() *DrugUpsert {
	u.SetExcluded(drug.FieldManufacturer)
	return u
}

// ClearManufacturer clears the value of the "manufacturer" field.
func (u *DrugUpsert) ClearManufacturer() *DrugUpsert {
	u.SetNull(drug.FieldManufacturer)
	return u
}

// SetBatchNumber sets the "batch_number" field.
func (u *DrugUpsert) SetBatchNumber(v string) *DrugUpsert {
	u.Set(drug.FieldBatchNumber, v)
	return u
}

// UpdateBatchNumber sets the "batch_number" field to the value that was provided on create.
func (u *DrugUpsert) UpdateBatchNumber() *DrugUpsert {
	u.SetExcluded(drug.FieldBatchNumber)
	return u
}

// ClearBatchNumber clears the value of the "batch_number" field.
func (u *DrugUpsert) ClearBatchNumber() *DrugUpsert {
	u.SetNull(drug.FieldBatchNumber)
	return u
}

// SetUnitPrice sets the "unit_price" field.
func (u *DrugUpsert) SetUnitPrice(v int64) *DrugUpsert {
	u.Set(drug.FieldUnitPrice, v)
	return u
}

// UpdateUnitPrice sets the "unit_price" field to the value that was provided on create.
func (u *DrugUpsert) UpdateUnitPrice() *DrugUpsert {
	u.SetExcluded(drug.FieldUnitPrice)
	return u
}

// AddUnitPrice adds v to the "unit_price" field.
func (u *DrugUpsert) AddUnitPrice(v int64) *DrugUpsert {
	u.Add(drug.FieldUnitPrice, v)
	return u
}

// SetStockQuantity sets the "stock_quantity" field.
func (u *DrugUpsert) SetStockQuantity(v int) *DrugUpsert {
	u.Set(drug.FieldStockQuantity, v)
	return u
}

// UpdateStockQuantity sets the "stock_quantity" field to the value that was provided on create.
func (u *DrugUpsert) UpdateStockQuantity() *DrugUpsert {
	u.SetExcluded(drug.FieldStockQuantity)
	return u
}

// AddStockQuantity adds v to the "stock_quantity" field.
func (u *DrugUpsert) AddStockQuantity(v int) *DrugUpsert {
	u.Add(drug.FieldStockQuantity, v)
	return u
}

// SetReorderLevel sets the "reorder_level" field.
func (u *DrugUpsert) SetReorderLevel(v int) *DrugUpsert {
	u.Set(drug.FieldReorderLevel, v)
	return u
}

// UpdateReorderLevel sets the "reorder_level" field to the value that was provided on create.
func (u *DrugUpsert) UpdateReorderLevel() *DrugUpsert {
	u.SetExcluded(drug.FieldReorderLevel)
	return u
}

// AddReorderLevel adds v to the "reorder_level" field.
func (u *DrugUpsert) AddReorderLevel(v int) *DrugUpsert {
	u.Add(drug.FieldReorderLevel, v)
	return u
}

// SetExpiryDate sets the "expiry_date" field.
func (u *DrugUpsert) SetExpiryDate(v time.Time) *DrugUpsert {
	u.Set(drug.FieldExpiryDate, v)
	return u
}

// UpdateExpiryDate sets the "expiry_date" field to the value that was provided on create.
func (u *DrugUpsert) UpdateExpiryDate() *DrugUpsert {
	u.SetExcluded(drug.FieldExpiryDate)
	return u
}

// ClearExpiryDate clears the value of the "expiry_date" field.
func (u *DrugUpsert) ClearExpiryDate() *DrugUpsert {
	u.SetNull(drug.FieldExpiryDate)
	return u
}

// SetActive sets the "active" field.
func (u *DrugUpsert) SetActive(v bool) *DrugUpsert {
	u.Set(drug.FieldActive, v)
	return u
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *DrugUpsert) UpdateActive() *DrugUpsert {
	u.SetExcluded(drug.FieldActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Drug.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(drug.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DrugUpsertOne) UpdateNewValues() *DrugUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(drug.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(drug.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Drug.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DrugUpsertOne) Ignore() *DrugUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DrugUpsertOne) DoNothing() *DrugUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DrugCreate.OnConflict
// documentation for more info.
func (u *DrugUpsertOne) Update(set func(*DrugUpsert)) *DrugUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DrugUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DrugUpsertOne) SetUpdatedAt(v time.Time) *DrugUpsertOne {
	return u.Update(func(s *DrugUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DrugUpsertOne) UpdateUpdatedAt() *DrugUpsertOne {
	return u.Update(func(s *DrugUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetName sets the "name" field.
func (u *DrugUpsertOne) SetName(v string) *DrugUpsertOne {
	return u.Update(func(s *DrugUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *DrugUpsertOne) UpdateName() *DrugUpsertOne {
	return u.Update(func(s *DrugUpsert) {
		s.UpdateName()
	})
}

// SetGenericName sets the "generic_name" field.
func (u *DrugUpsertOne) SetGenericName(v string) *DrugUpsertOne {
	return u.Update(func(s *DrugUpsert) {
		s.SetGenericName(v)
	})
}

// UpdateGenericName sets the "generic_name" field to the value that was provided on create.
func (u *DrugUpsertOne) UpdateGenericName() *DrugUpsertOne {
	return u.Update(func(s *DrugUpsert) {
		s.UpdateGenericName()
	})
}

// ClearGenericName clears the value of the "generic_name" field.
func (u *DrugUpsertOne) ClearGenericName() *DrugUpsertOne {
	return u.Update(func(s *DrugUpsert) {
		s.ClearGenericName()
	})
}

// SetCategory sets the "category" field.
func (u *DrugUpsertOne) SetCategory(v string) *DrugUpsertOne {
	return u.Update(func(s *DrugUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *DrugUpsertOne) UpdateCategory() *DrugUpsertOne {
	return u.Update(func(s *DrugUpsert) {
		s.UpdateCategory()
	})
}

// ClearCategory clears the value of the "category" field.
func (u *DrugUpsertOne) ClearCategory() *DrugUpsertOne {
	return u.Update(func(s *DrugUpsert) {
		s.ClearCategory()
	})
}

// SetManufacturer sets the "manufacturer" field.
func (u *DrugUpsertOne) SetManufacturer(v string) *DrugUpsertOne {
	return u.Update(func(s *DrugUpsert) {
		s.SetManufacturer(v)
	})
}

// UpdateManufacturer sets the "manufacturer" field to the value that was provided on create.
func (u *DrugUpsertOne) UpdateManufacturer() *DrugUpsertOne {
	return u.Update(func(s *DrugUpsert) {
		s.UpdateManufacturer()
	})
}

// ClearManufacturer clears the value of the "manufacturer" field.
func (u *DrugUpsertOne) ClearManufacturer() *DrugUpsertOne {
	return u.Update(func(s *DrugUpsert) {
		s.ClearManufacturer()
	})
}

// SetBatchNumber sets the "batch_number" field.
func (u *DrugUpsertOne) SetBatchNumber(v string) *DrugUpsertOne {
	return u.Update(func(s *DrugUpsert) {
		s.SetBatchNumber(v)
	})
}

// UpdateBatchNumber sets the "batch_number" field to the value that was provided on create.
func (u *DrugUpsertOne) UpdateBatchNumber() *DrugUpsertOne {
	return u.Update(func(s *DrugUpsert) {
		s.UpdateBatchNumber()
	})
}

// ClearBatchNumber clears the value of the "batch_number" field.
func (u *DrugUpsertOne) ClearBatchNumber() *DrugUpsertOne {
	return u.Update(func(s *DrugUpsert) {
		s.ClearBatchNumber()
	})
}

// SetUnitPrice sets the "unit_price" field.
func (u *DrugUpsertOne) SetUnitPrice(v int64) *DrugUpsertOne {
	return u.Update(func(s *DrugUpsert) {
		s.SetUnitPrice(v)
	})
}

// AddUnitPrice adds v to the "unit_price" field.
func (u *DrugUpsertOne) AddUnitPrice(v int64) *DrugUpsertOne {
	return u.Update(func(s *DrugUpsert) {
		s.AddUnitPrice(v)
	})
}

// UpdateUnitPrice sets the "unit_price" field to the value that was provided on create.
func (u *DrugUpsertOne) UpdateUnitPrice() *DrugUpsertOne {
	return u.Update(func(s *DrugUpsert) {
		s.UpdateUnitPrice()
	})
}

// SetStockQuantity sets the "stock_quantity" field.
func (u *DrugUpsertOne) SetStockQuantity(v int) *DrugUpsertOne {
	return u.Update(func(s *DrugUpsert) {
		s.SetStockQuantity(v)
	})
}

// AddStockQuantity adds v to the "stock_quantity" field.
func (u *DrugUpsertOne) AddStockQuantity(v int) *DrugUpsertOne {
	return u.Update(func(s *DrugUpsert) {
		s.AddStockQuantity(v)
	})
}

// UpdateStockQuantity sets the "stock_quantity" field to the value that was provided on create.
func (u *DrugUpsertOne) UpdateStockQuantity() *DrugUpsertOne {
	return u.Update(func(s *DrugUpsert) {
		s.UpdateStockQuantity()
	})
}

// SetReorderLevel sets the "reorder_level" field.
func (u *DrugUpsertOne) SetReorderLevel(v int) *DrugUpsertOne {
	return u.Update(func(s *DrugUpsert) {
		s.SetReorderLevel(v)
	})
}

// AddReorderLevel adds v to the "reorder_level" field.
func (u *DrugUpsertOne) AddReorderLevel(v int) *DrugUpsertOne {
	return u.Update(func(s *DrugUpsert) {
		s.AddReorderLevel(v)
	})
}

// UpdateReorderLevel sets the "reorder_level" field to the value that was provided on create.
func (u *DrugUpsertOne) UpdateReorderLevel() *DrugUpsertOne {
	return u.Update(func(s *DrugUpsert) {
		s.UpdateReorderLevel()
	})
}

// SetExpiryDate sets the "expiry_date" field.
func (u *DrugUpsertOne) SetExpiryDate(v time.Time) *DrugUpsertOne {
	return u.Update(func(s *DrugUpsert) {
		s.SetExpiryDate(v)
	})
}

// UpdateExpiryDate sets the "expiry_date" field to the value that was provided on create.
func (u *DrugUpsertOne) UpdateExpiryDate() *DrugUpsertOne {
	return u.Update(func(s *DrugUpsert) {
		s.UpdateExpiryDate()
	})
}

// ClearExpiryDate clears the value of the "expiry_date" field.
func (u *DrugUpsertOne) ClearExpiryDate() *DrugUpsertOne {
	return u.Update(func(s *DrugUpsert) {
		s.ClearExpiryDate()
	})
}

// SetActive sets the "active" field.
func (u *DrugUpsertOne) SetActive(v bool) *DrugUpsertOne {
	return u.Update(func(s *DrugUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *DrugUpsertOne) UpdateActive() *DrugUpsertOne {
	return u.Update(func(s *DrugUpsert) {
		s.UpdateActive()
	})
}

// Exec executes the query.
func (u *DrugUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DrugCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DrugUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DrugUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: DrugUpsertOne.ID is not supported by MySQL driver. Use DrugUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DrugUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DrugCreateBulk is the builder for creating many Drug entities in bulk.
type DrugCreateBulk struct {
	config
	err      error
	builders []*DrugCreate
	conflict []sql.ConflictOption
}

// Save creates the Drug entities in the database.
func (_c *DrugCreateBulk) Save(ctx context.Context) ([]*Drug, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Drug, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DrugMutation)
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
func (_c *DrugCreateBulk) SaveX(ctx context.Context) []*Drug {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DrugCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DrugCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Drug.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DrugUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DrugCreateBulk) OnConflict(opts ...sql.ConflictOption) *DrugUpsertBulk {
	_c.conflict = opts
	return &DrugUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Drug.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DrugCreateBulk) OnConflictColumns(columns ...string) *DrugUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DrugUpsertBulk{
		create: _c,
	}
}

// DrugUpsertBulk is the builder for "upsert"-ing
// a bulk of Drug nodes.
type DrugUpsertBulk struct {
	create *DrugCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Drug.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(drug.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DrugUpsertBulk) UpdateNewValues() *DrugUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(drug.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(drug.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Drug.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DrugUpsertBulk) Ignore() *DrugUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DrugUpsertBulk) DoNothing() *DrugUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DrugCreateBulk.OnConflict
// documentation for more info.
func (u *DrugUpsertBulk) Update(set func(*DrugUpsert)) *DrugUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DrugUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DrugUpsertBulk) SetUpdatedAt(v time.Time) *DrugUpsertBulk {
	return u.Update(func(s *DrugUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DrugUpsertBulk) UpdateUpdatedAt() *DrugUpsertBulk {
	return u.Update(func(s *DrugUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetName sets the "name" field.
func (u *DrugUpsertBulk) SetName(v string) *DrugUpsertBulk {
	return u.Update(func(s *DrugUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *DrugUpsertBulk) UpdateName() *DrugUpsertBulk {
	return u.Update(func(s *DrugUpsert) {
		s.UpdateName()
	})
}

// SetGenericName sets the "generic_name" field.
func (u *DrugUpsertBulk) SetGenericName(v string) *DrugUpsertBulk {
	return u.Update(func(s *DrugUpsert) {
		s.SetGenericName(v)
	})
}

// UpdateGenericName sets the "generic_name" field to the value that was provided on create.
func (u *DrugUpsertBulk) UpdateGenericName() *DrugUpsertBulk {
	return u.Update(func(s *DrugUpsert) {
		s.UpdateGenericName()
	})
}

// ClearGenericName clears the value of the "generic_name" field.
func (u *DrugUpsertBulk) ClearGenericName() *DrugUpsertBulk {
	return u.Update(func(s *DrugUpsert) {
		s.ClearGenericName()
	})
}

// SetCategory sets the "category" field.
func (u *DrugUpsertBulk) SetCategory(v string) *DrugUpsertBulk {
	return u.Update(func(s *DrugUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *DrugUpsertBulk) UpdateCategory() *DrugUpsertBulk {
	return u.Update(func(s *DrugUpsert) {
		s.UpdateCategory()
	})
}

// ClearCategory clears the value of the "category" field.
func (u *DrugUpsertBulk) ClearCategory() *DrugUpsertBulk {
	return u.Update(func(s *DrugUpsert) {
		s.ClearCategory()
	})
}

// SetManufacturer sets the "manufacturer" field.
func (u *DrugUpsertBulk) SetManufacturer(v string) *DrugUpsertBulk {
	return u.Update(func(s *DrugUpsert) {
		s.SetManufacturer(v)
	})
}

// UpdateManufacturer sets the "manufacturer" field to the value that was provided on create.
func (u *DrugUpsertBulk) UpdateManufacturer() *DrugUpsertBulk {
	return u.Update(func(s *DrugUpsert) {
		s.UpdateManufacturer()
	})
}

// ClearManufacturer clears the value of the "manufacturer" field.
func (u *DrugUpsertBulk) ClearManufacturer() *DrugUpsertBulk {
	return u.Update(func(s *DrugUpsert) {
		s.ClearManufacturer()
	})
}

// SetBatchNumber sets the "batch_number" field.
func (u *DrugUpsertBulk) SetBatchNumber(v string) *DrugUpsertBulk {
	return u.Update(func(s *DrugUpsert) {
		s.SetBatchNumber(v)
	})
}

// UpdateBatchNumber sets the "batch_number" field to the value that was provided on create.
func (u *DrugUpsertBulk) UpdateBatchNumber() *DrugUpsertBulk {
	return u.Update(func(s *DrugUpsert) {
		s.UpdateBatchNumber()
	})
}

// ClearBatchNumber clears the value of the "batch_number" field.
func (u *DrugUpsertBulk) ClearBatchNumber() *DrugUpsertBulk {
	return u.Update(func(s *DrugUpsert) {
		s.ClearBatchNumber()
	})
}

// SetUnitPrice sets the "unit_price" field.
func (u *DrugUpsertBulk) SetUnitPrice(v int64) *DrugUpsertBulk {
	return u.Update(func(s *DrugUpsert) {
		s.SetUnitPrice(v)
	})
}

// AddUnitPrice adds v to the "unit_price" field.
func (u *DrugUpsertBulk) AddUnitPrice(v int64) *DrugUpsertBulk {
	return u.Update(func(s *DrugUpsert) {
		s.AddUnitPrice(v)
	})
}

// UpdateUnitPrice sets the "unit_price" field to the value that was provided on create.
func (u *DrugUpsertBulk) UpdateUnitPrice() *DrugUpsertBulk {
	return u.Update(func(s *DrugUpsert) {
		s.UpdateUnitPrice()
	})
}

// SetStockQuantity sets the "stock_quantity" field.
func (u *DrugUpsertBulk) SetStockQuantity(v int) *DrugUpsertBulk {
	return u.Update(func(s *DrugUpsert) {
		s.SetStockQuantity(v)
	})
}

// AddStockQuantity adds v to the "stock_quantity" field.
func (u *DrugUpsertBulk) AddStockQuantity(v int) *DrugUpsertBulk {
	return u.Update(func(s *DrugUpsert) {
		s.AddStockQuantity(v)
	})
}

// UpdateStockQuantity sets the "stock_quantity" field to the value that was provided on create.
func (u *DrugUpsertBulk) UpdateStockQuantity() *DrugUpsertBulk {
	return u.Update(func(s *DrugUpsert) {
		s.UpdateStockQuantity()
	})
}

// SetReorderLevel sets the "reorder_level" field.
func (u *DrugUpsertBulk) SetReorderLevel(v int) *DrugUpsertBulk {
	return u.Update(func(s *DrugUpsert) {
		s.SetReorderLevel(v)
	})
}

// AddReorderLevel adds v to the "reorder_level" field.
func (u *DrugUpsertBulk) AddReorderLevel(v int) *DrugUpsertBulk {
	return u.Update(func(s *DrugUpsert) {
		s.AddReorderLevel(v)
	})
}

// UpdateReorderLevel sets the "reorder_level" field to the value that was provided on create.
func (u *DrugUpsertBulk) UpdateReorderLevel() *DrugUpsertBulk {
	return u.Update(func(s *DrugUpsert) {
		s.UpdateReorderLevel()
	})
}

// SetExpiryDate sets the "expiry_date" field.
func (u *DrugUpsertBulk) SetExpiryDate(v time.Time) *DrugUpsertBulk {
	return u.Update(func(s *DrugUpsert) {
		s.SetExpiryDate(v)
	})
}

// UpdateExpiryDate sets the "expiry_date" field to the value that was provided on create.
func (u *DrugUpsertBulk) UpdateExpiryDate() *DrugUpsertBulk {
	return u.Update(func(s *DrugUpsert) {
		s.UpdateExpiryDate()
	})
}

// ClearExpiryDate clears the value of the "expiry_date" field.
func (u *DrugUpsertBulk) ClearExpiryDate() *DrugUpsertBulk {
	return u.Update(func(s *DrugUpsert) {
		s.ClearExpiryDate()
	})
}

// SetActive sets the "active" field.
func (u *DrugUpsertBulk) SetActive(v bool) *DrugUpsertBulk {
	return u.Update(func(s *DrugUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *DrugUpsertBulk) UpdateActive() *DrugUpsertBulk {
	return u.Update(func(s *DrugUpsert) {
		s.UpdateActive()
	})
}

// Exec executes the query.
func (u *DrugUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the DrugCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DrugCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DrugUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
