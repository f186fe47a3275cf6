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
	"github.com/google/uuid"
	"github.com/niramoy/niramoy_backend/internal/repo/doctoravailability"
	"github.com/niramoy/niramoy_backend/internal/repo/predicate"
)

// DoctorAvailabilityUpdate is the builder for updating DoctorAvailability entities.
type DoctorAvailabilityUpdate struct {
	config
	hooks    []Hook
	mutation *DoctorAvailabilityMutation
}

// Where appends a list predicates to the DoctorAvailabilityUpdate builder.
func (_u *DoctorAvailabilityUpdate) Where(ps ...predicate.DoctorAvailability) *DoctorAvailabilityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorAvailabilityUpdate) SetUpdatedAt(v time.Time) *DoctorAvailabilityUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *DoctorAvailabilityUpdate) SetDoctorID(v uuid.UUID) *DoctorAvailabilityUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *DoctorAvailabilityUpdate) SetNillableDoctorID(v *uuid.UUID) *DoctorAvailabilityUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *DoctorAvailabilityUpdate) SetDate(v time.Time) *DoctorAvailabilityUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *DoctorAvailabilityUpdate) SetNillableDate(v *time.Time) *DoctorAvailabilityUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetAvailable sets the "available" field.
func (_u *DoctorAvailabilityUpdate) SetAvailable(v bool) *DoctorAvailabilityUpdate {
	_u.mutation.SetAvailable(v)
	return _u
}

// SetNillableAvailable sets the "available" field if the given value is not nil.
func (_u *DoctorAvailabilityUpdate) SetNillableAvailable(v *bool) *DoctorAvailabilityUpdate {
	if v != nil {
		_u.SetAvailable(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *DoctorAvailabilityUpdate) SetReason(v string) *DoctorAvailabilityUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *DoctorAvailabilityUpdate) SetNillableReason(v *string) *DoctorAvailabilityUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *DoctorAvailabilityUpdate) ClearReason() *DoctorAvailabilityUpdate {
	_u.mutation.ClearReason()
	return _u
}

// Mutation returns the DoctorAvailabilityMutation object of the builder.
func (_u *DoctorAvailabilityUpdate) Mutation() *DoctorAvailabilityMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DoctorAvailabilityUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorAvailabilityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DoctorAvailabilityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorAvailabilityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorAvailabilityUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctoravailability.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorAvailabilityUpdate) check() error {
	if v, ok := _u.mutation.Reason(); ok {
		if err := doctoravailability.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`repo: validator failed for field "DoctorAvailability.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *DoctorAvailabilityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctoravailability.Table, doctoravailability.Columns, sqlgraph.NewFieldSpec(doctoravailability.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(doctoravailability.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(doctoravailability.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(doctoravailability.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Available(); ok {
		_spec.SetField(doctoravailability.FieldAvailable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(doctoravailability.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(doctoravailability.FieldReason, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctoravailability.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DoctorAvailabilityUpdateOne is the builder for updating a single DoctorAvailability entity.
type DoctorAvailabilityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DoctorAvailabilityMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorAvailabilityUpdateOne) SetUpdatedAt(v time.Time) *DoctorAvailabilityUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *DoctorAvailabilityUpdateOne) SetDoctorID(v uuid.UUID) *DoctorAvailabilityUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *DoctorAvailabilityUpdateOne) SetNillableDoctorID(v *uuid.UUID) *DoctorAvailabilityUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *DoctorAvailabilityUpdateOne) SetDate(v time.Time) *DoctorAvailabilityUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *DoctorAvailabilityUpdateOne) SetNillableDate(v *time.Time) *DoctorAvailabilityUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetAvailable sets the "available" field.
func (_u *DoctorAvailabilityUpdateOne) SetAvailable(v bool) *DoctorAvailabilityUpdateOne {
	_u.mutation.SetAvailable(v)
	return _u
}

// SetNillableAvailable sets the "available" field if the given value is not nil.
func (_u *DoctorAvailabilityUpdateOne) SetNillableAvailable(v *bool) *DoctorAvailabilityUpdateOne {
	if v != nil {
		_u.SetAvailable(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *DoctorAvailabilityUpdateOne) SetReason(v string) *DoctorAvailabilityUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *DoctorAvailabilityUpdateOne) SetNillableReason(v *string) *DoctorAvailabilityUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *DoctorAvailabilityUpdateOne) ClearReason() *DoctorAvailabilityUpdateOne {
	_u.mutation.ClearReason()
	return _u
}

// Mutation returns the DoctorAvailabilityMutation object of the builder.
func (_u *DoctorAvailabilityUpdateOne) Mutation() *DoctorAvailabilityMutation {
	return _u.mutation
}

// Where appends a list predicates to the DoctorAvailabilityUpdate builder.
func (_u *DoctorAvailabilityUpdateOne) Where(ps ...predicate.DoctorAvailability) *DoctorAvailabilityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DoctorAvailabilityUpdateOne) Select(field string, fields ...string) *DoctorAvailabilityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DoctorAvailability entity.
func (_u *DoctorAvailabilityUpdateOne) Save(ctx context.Context) (*DoctorAvailability, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorAvailabilityUpdateOne) SaveX(ctx context.Context) *DoctorAvailability {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DoctorAvailabilityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorAvailabilityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorAvailabilityUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctoravailability.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorAvailabilityUpdateOne) check() error {
	if v, ok := _u.mutation.Reason(); ok {
		if err := doctoravailability.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`repo: validator failed for field "DoctorAvailability.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *DoctorAvailabilityUpdateOne) sqlSave(ctx context.Context) (_node *DoctorAvailability, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctoravailability.Table, doctoravailability.Columns, sqlgraph.NewFieldSpec(doctoravailability.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "DoctorAvailability.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, doctoravailability.FieldID)
		for _, f := range fields {
			if !doctoravailability.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != doctoravailability.FieldID {
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
		_spec.SetField(doctoravailability.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(doctoravailability.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(doctoravailability.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Available(); ok {
		_spec.SetField(doctoravailability.FieldAvailable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(doctoravailability.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(doctoravailability.FieldReason, field.TypeString)
	}
	_node = &DoctorAvailability{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctoravailability.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
