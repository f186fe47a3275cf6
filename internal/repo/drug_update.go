// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/niramoy/niramoy_backend/internal/repo/drug"
	"github.com/niramoy/niramoy_backend/internal/repo/predicate"
)

// DrugUpdate is the builder for updating Drug entities.
type DrugUpdate struct {
	config
	hooks    []Hook
	mutation *DrugMutation
}

// Where appends a list predicates to the DrugUpdate builder.
func (_u *DrugUpdate) Where(ps ...predicate.Drug) *DrugUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DrugUpdate) SetUpdatedAt(v time.Time) *DrugUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *DrugUpdate) SetName(v string) *DrugUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DrugUpdate) SetNillableName(v *string) *DrugUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetGenericName sets the "generic_name" field.
func (_u *DrugUpdate) SetGenericName(v string) *DrugUpdate {
	_u.mutation.SetGenericName(v)
	return _u
}

// SetNillableGenericName sets the "generic_name" field if the given value is not nil.
func (_u *DrugUpdate) SetNillableGenericName(v *string) *DrugUpdate {
	if v != nil {
		_u.SetGenericName(*v)
	}
	return _u
}

// ClearGenericName clears the value of the "generic_name" field.
func (_u *DrugUpdate) ClearGenericName() *DrugUpdate {
	_u.mutation.ClearGenericName()
	return _u
}

// SetCategory sets the "category" field.
func (_u *DrugUpdate) SetCategory(v string) *DrugUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *DrugUpdate) SetNillableCategory(v *string) *DrugUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *DrugUpdate) ClearCategory() *DrugUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetManufacturer sets the "manufacturer" field.
func (_u *DrugUpdate) SetManufacturer(v string) *DrugUpdate {
	_u.mutation.SetManufacturer(v)
	return _u
}

// SetNillableManufacturer sets the "manufacturer" field if the given value is not nil.
func (_u *DrugUpdate) SetNillableManufacturer(v *string) *DrugUpdate {
	if v != nil {
		_u.SetManufacturer(*v)
	}
	return _u
}

// ClearManufacturer clears the value of the "manufacturer" field.
func (_u *DrugUpdate) ClearManufacturer() *DrugUpdate {
	_u.mutation.ClearManufacturer()
	return _u
}

// SetBatchNumber sets the "batch_number" field.
func (_u *DrugUpdate) SetBatchNumber(v string) *DrugUpdate {
	_u.mutation.SetBatchNumber(v)
	return _u
}

// SetNillableBatchNumber sets the "batch_number" field if the given value is not nil.
func (_u *DrugUpdate) SetNillableBatchNumber(v *string) *DrugUpdate {
	if v != nil {
		_u.SetBatchNumber(*v)
	}
	return _u
}

// ClearBatchNumber clears the value of the "batch_number" field.
func (_u *DrugUpdate) ClearBatchNumber() *DrugUpdate {
	_u.mutation.ClearBatchNumber()
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *DrugUpdate) SetUnitPrice(v int64) *DrugUpdate {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *DrugUpdate) SetNillableUnitPrice(v *int64) *DrugUpdate {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *DrugUpdate) AddUnitPrice(v int64) *DrugUpdate {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// SetStockQuantity sets the "stock_quantity" field.
func (_u *DrugUpdate) SetStockQuantity(v int) *DrugUpdate {
	_u.mutation.ResetStockQuantity()
	_u.mutation.SetStockQuantity(v)
	return _u
}

// SetNillableStockQuantity sets the "stock_quantity" field if the given value is not nil.
func (_u *DrugUpdate) SetNillableStockQuantity(v *int) *DrugUpdate {
	if v != nil {
		_u.SetStockQuantity(*v)
	}
	return _u
}

// AddStockQuantity adds value to the "stock_quantity" field.
func (_u *DrugUpdate) AddStockQuantity(v int) *DrugUpdate {
	_u.mutation.AddStockQuantity(v)
	return _u
}

// SetReorderLevel sets the "reorder_level" field.
func (_u *DrugUpdate) SetReorderLevel(v int) *DrugUpdate {
	_u.mutation.ResetReorderLevel()
	_u.mutation.SetReorderLevel(v)
	return _u
}

// SetNillableReorderLevel sets the "reorder_level" field if the given value is not nil.
func (_u *DrugUpdate) SetNillableReorderLevel(v *int) *DrugUpdate {
	if v != nil {
		_u.SetReorderLevel(*v)
	}
	return _u
}

// AddReorderLevel adds value to the "reorder_level" field.
func (_u *DrugUpdate) AddReorderLevel(v int) *DrugUpdate {
	_u.mutation.AddReorderLevel(v)
	return _u
}

// SetExpiryDate sets the "expiry_date" field.
func (_u *DrugUpdate) SetExpiryDate(v time.Time) *DrugUpdate {
	_u.mutation.SetExpiryDate(v)
	return _u
}

// SetNillableExpiryDate sets the "expiry_date" field if the given value is not nil.
func (_u *DrugUpdate) SetNillableExpiryDate(v *time.Time) *DrugUpdate {
	if v != nil {
		_u.SetExpiryDate(*v)
	}
	return _u
}

// ClearExpiryDate clears the value of the "expiry_date" field.
func (_u *DrugUpdate) ClearExpiryDate() *DrugUpdate {
	_u.mutation.ClearExpiryDate()
	return _u
}

// SetActive sets the "active" field.
func (_u *DrugUpdate) SetActive(v bool) *DrugUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *DrugUpdate) SetNillableActive(v *bool) *DrugUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the DrugMutation object of the builder.
func (_u *DrugUpdate) Mutation() *DrugMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DrugUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DrugUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DrugUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DrugUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DrugUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := drug.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DrugUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := drug.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Drug.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GenericName(); ok {
		if err := drug.GenericNameValidator(v); err != nil {
			return &ValidationError{Name: "generic_name", err: fmt.Errorf(`repo: validator failed for field "Drug.generic_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := drug.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`repo: validator failed for field "Drug.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Manufacturer(); ok {
		if err := drug.ManufacturerValidator(v); err != nil {
			return &ValidationError{Name: "manufacturer", err: fmt.Errorf(`repo: validator failed for field "Drug.manufacturer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BatchNumber(); ok {
		if err := drug.BatchNumberValidator(v); err != nil {
			return &ValidationError{Name: "batch_number", err: fmt.Errorf(`repo: validator failed for field "Drug.batch_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitPrice(); ok {
		if err := drug.UnitPriceValidator(v); err != nil {
			return &ValidationError{Name: "unit_price", err: fmt.Errorf(`repo: validator failed for field "Drug.unit_price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StockQuantity(); ok {
		if err := drug.StockQuantityValidator(v); err != nil {
			return &ValidationError{Name: "stock_quantity", err: fmt.Errorf(`repo: validator failed for field "Drug.stock_quantity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReorderLevel(); ok {
		if err := drug.ReorderLevelValidator(v); err != nil {
			return &ValidationError{Name: "reorder_level", err: fmt.Errorf(`repo: validator failed for field "Drug.reorder_level": %w`, err)}
		}
	}
	return nil
}

func (_u *DrugUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(drug.Table, drug.Columns, sqlgraph.NewFieldSpec(drug.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(drug.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(drug.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.GenericName(); ok {
		_spec.SetField(drug.FieldGenericName, field.TypeString, value)
	}
	if _u.mutation.GenericNameCleared() {
		_spec.ClearField(drug.FieldGenericName, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(drug.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(drug.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Manufacturer(); ok {
		_spec.SetField(drug.FieldManufacturer, field.TypeString, value)
	}
	if _u.mutation.ManufacturerCleared() {
		_spec.ClearField(drug.FieldManufacturer, field.TypeString)
	}
	if value, ok := _u.mutation.BatchNumber(); ok {
		_spec.SetField(drug.FieldBatchNumber, field.TypeString, value)
	}
	if _u.mutation.BatchNumberCleared() {
		_spec.ClearField(drug.FieldBatchNumber, field.TypeString)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(drug.FieldUnitPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(drug.FieldUnitPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.StockQuantity(); ok {
		_spec.SetField(drug.FieldStockQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStockQuantity(); ok {
		_spec.AddField(drug.FieldStockQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReorderLevel(); ok {
		_spec.SetField(drug.FieldReorderLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReorderLevel(); ok {
		_spec.AddField(drug.FieldReorderLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpiryDate(); ok {
		_spec.SetField(drug.FieldExpiryDate, field.TypeTime, value)
	}
	if _u.mutation.ExpiryDateCleared() {
		_spec.ClearField(drug.FieldExpiryDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(drug.FieldActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{drug.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DrugUpdateOne is the builder for updating a single Drug entity.
type DrugUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DrugMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DrugUpdateOne) SetUpdatedAt(v time.Time) *DrugUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *DrugUpdateOne) SetName(v string) *DrugUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DrugUpdateOne) SetNillableName(v *string) *DrugUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetGenericName sets the "generic_name" field.
func (_u *DrugUpdateOne) SetGenericName(v string) *DrugUpdateOne {
	_u.mutation.SetGenericName(v)
	return _u
}

// SetNillableGenericName sets the "generic_name" field if the given value is not nil.
func (_u *DrugUpdateOne) SetNillableGenericName(v *string) *DrugUpdateOne {
	if v != nil {
		_u.SetGenericName(*v)
	}
	return _u
}

// ClearGenericName clears the value of the "generic_name" field.
func (_u *DrugUpdateOne) ClearGenericName() *DrugUpdateOne {
	_u.mutation.ClearGenericName()
	return _u
}

// SetCategory sets the "category" field.
func (_u *DrugUpdateOne) SetCategory(v string) *DrugUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *DrugUpdateOne) SetNillableCategory(v *string) *DrugUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *DrugUpdateOne) ClearCategory() *DrugUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetManufacturer sets the "manufacturer" field.
func (_u *DrugUpdateOne) SetManufacturer(v string) *DrugUpdateOne {
	_u.mutation.SetManufacturer(v)
	return _u
}

// SetNillableManufacturer sets the "manufacturer" field if the given value is not nil.
func (_u *DrugUpdateOne) SetNillableManufacturer(v *string) *DrugUpdateOne {
	if v != nil {
		_u.SetManufacturer(*v)
	}
	return _u
}

// ClearManufacturer clears the value of the "manufacturer" field.
func (_u *DrugUpdateOne) ClearManufacturer() *DrugUpdateOne {
	_u.mutation.ClearManufacturer()
	return _u
}

// SetBatchNumber sets the "batch_number" field.
func (_u *DrugUpdateOne) SetBatchNumber(v string) *DrugUpdateOne {
	_u.mutation.SetBatchNumber(v)
	return _u
}

// SetNillableBatchNumber sets the "batch_number" field if the given value is not nil.
func (_u *DrugUpdateOne) SetNillableBatchNumber(v *string) *DrugUpdateOne {
	if v != nil {
		_u.SetBatchNumber(*v)
	}
	return _u
}

// ClearBatchNumber clears the value of the "batch_number" field.
func (_u *DrugUpdateOne) ClearBatchNumber() *DrugUpdateOne {
	_u.mutation.ClearBatchNumber()
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *DrugUpdateOne) SetUnitPrice(v int64) *DrugUpdateOne {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *DrugUpdateOne) SetNillableUnitPrice(v *int64) *DrugUpdateOne {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *DrugUpdateOne) AddUnitPrice(v int64) *DrugUpdateOne {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// SetStockQuantity sets the "stock_quantity" field.
func (_u *DrugUpdateOne) SetStockQuantity(v int) *DrugUpdateOne {
	_u.mutation.ResetStockQuantity()
	_u.mutation.SetStockQuantity(v)
	return _u
}

// SetNillableStockQuantity sets the "stock_quantity" field if the given value is not nil.
func (_u *DrugUpdateOne) SetNillableStockQuantity(v *int) *DrugUpdateOne {
	if v != nil {
		_u.SetStockQuantity(*v)
	}
	return _u
}

// AddStockQuantity adds value to the "stock_quantity" field.
func (_u *DrugUpdateOne) AddStockQuantity(v int) *DrugUpdateOne {
	_u.mutation.AddStockQuantity(v)
	return _u
}

// SetReorderLevel sets the "reorder_level" field.
func (_u *DrugUpdateOne) SetReorderLevel(v int) *DrugUpdateOne {
	_u.mutation.ResetReorderLevel()
	_u.mutation.SetReorderLevel(v)
	return _u
}

// SetNillableReorderLevel sets the "reorder_level" field if the given value is not nil.
func (_u *DrugUpdateOne) SetNillableReorderLevel(v *int) *DrugUpdateOne {
	if v != nil {
		_u.SetReorderLevel(*v)
	}
	return _u
}

// AddReorderLevel adds value to the "reorder_level" field.
func (_u *DrugUpdateOne) AddReorderLevel(v int) *DrugUpdateOne {
	_u.mutation.AddReorderLevel(v)
	return _u
}

// SetExpiryDate sets the "expiry_date" field.
func (_u *DrugUpdateOne) SetExpiryDate(v time.Time) *DrugUpdateOne {
	_u.mutation.SetExpiryDate(v)
	return _u
}

// SetNillableExpiryDate sets the "expiry_date" field if the given value is not nil.
func (_u *DrugUpdateOne) SetNillableExpiryDate(v *time.Time) *DrugUpdateOne {
	if v != nil {
		_u.SetExpiryDate(*v)
	}
	return _u
}

// ClearExpiryDate clears the value of the "expiry_date" field.
func (_u *DrugUpdateOne) ClearExpiryDate() *DrugUpdateOne {
	_u.mutation.ClearExpiryDate()
	return _u
}

// SetActive sets the "active" field.
func (_u *DrugUpdateOne) SetActive(v bool) *DrugUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *DrugUpdateOne) SetNillableActive(v *bool) *DrugUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the DrugMutation object of the builder.
func (_u *DrugUpdateOne) Mutation() *DrugMutation {
	return _u.mutation
}

// Where appends a list predicates to the DrugUpdate builder.
func (_u *DrugUpdateOne) Where(ps ...predicate.Drug) *DrugUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DrugUpdateOne) Select(field string, fields ...string) *DrugUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Drug entity.
func (_u *DrugUpdateOne) Save(ctx context.Context) (*Drug, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DrugUpdateOne) SaveX(ctx context.Context) *Drug {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DrugUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DrugUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DrugUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := drug.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DrugUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := drug.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Drug.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GenericName(); ok {
		if err := drug.GenericNameValidator(v); err != nil {
			return &ValidationError{Name: "generic_name", err: fmt.Errorf(`repo: validator failed for field "Drug.generic_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := drug.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`repo: validator failed for field "Drug.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Manufacturer(); ok {
		if err := drug.ManufacturerValidator(v); err != nil {
			return &ValidationError{Name: "manufacturer", err: fmt.Errorf(`repo: validator failed for field "Drug.manufacturer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BatchNumber(); ok {
		if err := drug.BatchNumberValidator(v); err != nil {
			return &ValidationError{Name: "batch_number", err: fmt.Errorf(`repo: validator failed for field "Drug.batch_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitPrice(); ok {
		if err := drug.UnitPriceValidator(v); err != nil {
			return &ValidationError{Name: "unit_price", err: fmt.Errorf(`repo: validator failed for field "Drug.unit_price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StockQuantity(); ok {
		if err := drug.StockQuantityValidator(v); err != nil {
			return &ValidationError{Name: "stock_quantity", err: fmt.Errorf(`repo: validator failed for field "Drug.stock_quantity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReorderLevel(); ok {
		if err := drug.ReorderLevelValidator(v); err != nil {
			return &ValidationError{Name: "reorder_level", err: fmt.Errorf(`repo: validator failed for field "Drug.reorder_level": %w`, err)}
		}
	}
	return nil
}

func (_u *DrugUpdateOne) sqlSave(ctx context.Context) (_node *Drug, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(drug.Table, drug.Columns, sqlgraph.NewFieldSpec(drug.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Drug.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, drug.FieldID)
		for _, f := range fields {
			if !drug.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != drug.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(drug.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(drug.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.GenericName(); ok {
		_spec.SetField(drug.FieldGenericName, field.TypeString, value)
	}
	if _u.mutation.GenericNameCleared() {
		_spec.ClearField(drug.FieldGenericName, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(drug.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(drug.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Manufacturer(); ok {
		_spec.SetField(drug.FieldManufacturer, field.TypeString, value)
	}
	if _u.mutation.ManufacturerCleared() {
		_spec.ClearField(drug.FieldManufacturer, field.TypeString)
	}
	if value, ok := _u.mutation.BatchNumber(); ok {
		_spec.SetField(drug.FieldBatchNumber, field.TypeString, value)
	}
	if _u.mutation.BatchNumberCleared() {
		_spec.ClearField(drug.FieldBatchNumber, field.TypeString)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(drug.FieldUnitPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(drug.FieldUnitPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.StockQuantity(); ok {
		_spec.SetField(drug.FieldStockQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStockQuantity(); ok {
		_spec.AddField(drug.FieldStockQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReorderLevel(); ok {
		_spec.SetField(drug.FieldReorderLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReorderLevel(); ok {
		_spec.AddField(drug.FieldReorderLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpiryDate(); ok {
		_spec.SetField(drug.FieldExpiryDate, field.TypeTime, value)
	}
	if _u.mutation.ExpiryDateCleared() {
		_spec.ClearField(drug.FieldExpiryDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(drug.FieldActive, field.TypeBool, value)
	}
	_node = &Drug{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{drug.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
