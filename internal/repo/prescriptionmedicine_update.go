// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/niramoy/niramoy_backend/internal/repo/predicate"
	"github.com/niramoy/niramoy_backend/internal/repo/prescriptionmedicine"
)

// PrescriptionMedicineUpdate is the builder for updating PrescriptionMedicine entities.
type PrescriptionMedicineUpdate struct {
	config
	hooks    []Hook
	mutation *PrescriptionMedicineMutation
}

// Where appends a list predicates to the PrescriptionMedicineUpdate builder.
func (_u *PrescriptionMedicineUpdate) Where(ps ...predicate.PrescriptionMedicine) *PrescriptionMedicineUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPrescriptionID sets the "prescription_id" field.
func (_u *PrescriptionMedicineUpdate) SetPrescriptionID(v uuid.UUID) *PrescriptionMedicineUpdate {
	_u.mutation.SetPrescriptionID(v)
	return _u
}

// SetNillablePrescriptionID sets the "prescription_id" field if the given value is not nil.
func (_u *PrescriptionMedicineUpdate) SetNillablePrescriptionID(v *uuid.UUID) *PrescriptionMedicineUpdate {
	if v != nil {
		_u.SetPrescriptionID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *PrescriptionMedicineUpdate) SetName(v string) *PrescriptionMedicineUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PrescriptionMedicineUpdate) SetNillableName(v *string) *PrescriptionMedicineUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDosage sets the "dosage" field.
func (_u *PrescriptionMedicineUpdate) SetDosage(v string) *PrescriptionMedicineUpdate {
	_u.mutation.SetDosage(v)
	return _u
}

// SetNillableDosage sets the "dosage" field if the given value is not nil.
func (_u *PrescriptionMedicineUpdate) SetNillableDosage(v *string) *PrescriptionMedicineUpdate {
	if v != nil {
		_u.SetDosage(*v)
	}
	return _u
}

// SetFrequency sets the "frequency" field.
func (_u *PrescriptionMedicineUpdate) SetFrequency(v string) *PrescriptionMedicineUpdate {
	_u.mutation.SetFrequency(v)
	return _u
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_u *PrescriptionMedicineUpdate) SetNillableFrequency(v *string) *PrescriptionMedicineUpdate {
	if v != nil {
		_u.SetFrequency(*v)
	}
	return _u
}

// SetDuration sets the "duration" field.
func (_u *PrescriptionMedicineUpdate) SetDuration(v string) *PrescriptionMedicineUpdate {
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *PrescriptionMedicineUpdate) SetNillableDuration(v *string) *PrescriptionMedicineUpdate {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// SetInstructions sets the "instructions" field.
func (_u *PrescriptionMedicineUpdate) SetInstructions(v string) *PrescriptionMedicineUpdate {
	_u.mutation.SetInstructions(v)
	return _u
}

// SetNillableInstructions sets the "instructions" field if the given value is not nil.
func (_u *PrescriptionMedicineUpdate) SetNillableInstructions(v *string) *PrescriptionMedicineUpdate {
	if v != nil {
		_u.SetInstructions(*v)
	}
	return _u
}

// ClearInstructions clears the value of the "instructions" field.
func (_u *PrescriptionMedicineUpdate) ClearInstructions() *PrescriptionMedicineUpdate {
	_u.mutation.ClearInstructions()
	return _u
}

// Mutation returns the PrescriptionMedicineMutation object of the builder.
func (_u *PrescriptionMedicineUpdate) Mutation() *PrescriptionMedicineMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PrescriptionMedicineUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PrescriptionMedicineUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PrescriptionMedicineUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PrescriptionMedicineUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PrescriptionMedicineUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := prescriptionmedicine.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "PrescriptionMedicine.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Dosage(); ok {
		if err := prescriptionmedicine.DosageValidator(v); err != nil {
			return &ValidationError{Name: "dosage", err: fmt.Errorf(`repo: validator failed for field "PrescriptionMedicine.dosage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Frequency(); ok {
		if err := prescriptionmedicine.FrequencyValidator(v); err != nil {
			return &ValidationError{Name: "frequency", err: fmt.Errorf(`repo: validator failed for field "PrescriptionMedicine.frequency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Duration(); ok {
		if err := prescriptionmedicine.DurationValidator(v); err != nil {
			return &ValidationError{Name: "duration", err: fmt.Errorf(`repo: validator failed for field "PrescriptionMedicine.duration": %w`, err)}
		}
	}
	return nil
}

func (_u *PrescriptionMedicineUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prescriptionmedicine.Table, prescriptionmedicine.Columns, sqlgraph.NewFieldSpec(prescriptionmedicine.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PrescriptionID(); ok {
		_spec.SetField(prescriptionmedicine.FieldPrescriptionID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(prescriptionmedicine.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Dosage(); ok {
		_spec.SetField(prescriptionmedicine.FieldDosage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Frequency(); ok {
		_spec.SetField(prescriptionmedicine.FieldFrequency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(prescriptionmedicine.FieldDuration, field.TypeString, value)
	}
	if value, ok := _u.mutation.Instructions(); ok {
		_spec.SetField(prescriptionmedicine.FieldInstructions, field.TypeString, value)
	}
	if _u.mutation.InstructionsCleared() {
		_spec.ClearField(prescriptionmedicine.FieldInstructions, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prescriptionmedicine.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PrescriptionMedicineUpdateOne is the builder for updating a single PrescriptionMedicine entity.
type PrescriptionMedicineUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PrescriptionMedicineMutation
}

// SetPrescriptionID sets the "prescription_id" field.
func (_u *PrescriptionMedicineUpdateOne) SetPrescriptionID(v uuid.UUID) *PrescriptionMedicineUpdateOne {
	_u.mutation.SetPrescriptionID(v)
	return _u
}

// SetNillablePrescriptionID sets the "prescription_id" field if the given value is not nil.
func (_u *PrescriptionMedicineUpdateOne) SetNillablePrescriptionID(v *uuid.UUID) *PrescriptionMedicineUpdateOne {
	if v != nil {
		_u.SetPrescriptionID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *PrescriptionMedicineUpdateOne) SetName(v string) *PrescriptionMedicineUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PrescriptionMedicineUpdateOne) SetNillableName(v *string) *PrescriptionMedicineUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDosage sets the "dosage" field.
func (_u *PrescriptionMedicineUpdateOne) SetDosage(v string) *PrescriptionMedicineUpdateOne {
	_u.mutation.SetDosage(v)
	return _u
}

// SetNillableDosage sets the "dosage" field if the given value is not nil.
func (_u *PrescriptionMedicineUpdateOne) SetNillableDosage(v *string) *PrescriptionMedicineUpdateOne {
	if v != nil {
		_u.SetDosage(*v)
	}
	return _u
}

// SetFrequency sets the "frequency" field.
func (_u *PrescriptionMedicineUpdateOne) SetFrequency(v string) *PrescriptionMedicineUpdateOne {
	_u.mutation.SetFrequency(v)
	return _u
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_u *PrescriptionMedicineUpdateOne) SetNillableFrequency(v *string) *PrescriptionMedicineUpdateOne {
	if v != nil {
		_u.SetFrequency(*v)
	}
	return _u
}

// SetDuration sets the "duration" field.
func (_u *PrescriptionMedicineUpdateOne) SetDuration(v string) *PrescriptionMedicineUpdateOne {
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *PrescriptionMedicineUpdateOne) SetNillableDuration(v *string) *PrescriptionMedicineUpdateOne {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// SetInstructions sets the "instructions" field.
func (_u *PrescriptionMedicineUpdateOne) SetInstructions(v string) *PrescriptionMedicineUpdateOne {
	_u.mutation.SetInstructions(v)
	return _u
}

// SetNillableInstructions sets the "instructions" field if the given value is not nil.
func (_u *PrescriptionMedicineUpdateOne) SetNillableInstructions(v *string) *PrescriptionMedicineUpdateOne {
	if v != nil {
		_u.SetInstructions(*v)
	}
	return _u
}

// ClearInstructions clears the value of the "instructions" field.
func (_u *PrescriptionMedicineUpdateOne) ClearInstructions() *PrescriptionMedicineUpdateOne {
	_u.mutation.ClearInstructions()
	return _u
}

// Mutation returns the PrescriptionMedicineMutation object of the builder.
func (_u *PrescriptionMedicineUpdateOne) Mutation() *PrescriptionMedicineMutation {
	return _u.mutation
}

// Where appends a list predicates to the PrescriptionMedicineUpdate builder.
func (_u *PrescriptionMedicineUpdateOne) Where(ps ...predicate.PrescriptionMedicine) *PrescriptionMedicineUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PrescriptionMedicineUpdateOne) Select(field string, fields ...string) *PrescriptionMedicineUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PrescriptionMedicine entity.
func (_u *PrescriptionMedicineUpdateOne) Save(ctx context.Context) (*PrescriptionMedicine, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PrescriptionMedicineUpdateOne) SaveX(ctx context.Context) *PrescriptionMedicine {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PrescriptionMedicineUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PrescriptionMedicineUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PrescriptionMedicineUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := prescriptionmedicine.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "PrescriptionMedicine.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Dosage(); ok {
		if err := prescriptionmedicine.DosageValidator(v); err != nil {
			return &ValidationError{Name: "dosage", err: fmt.Errorf(`repo: validator failed for field "PrescriptionMedicine.dosage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Frequency(); ok {
		if err := prescriptionmedicine.FrequencyValidator(v); err != nil {
			return &ValidationError{Name: "frequency", err: fmt.Errorf(`repo: validator failed for field "PrescriptionMedicine.frequency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Duration(); ok {
		if err := prescriptionmedicine.DurationValidator(v); err != nil {
			return &ValidationError{Name: "duration", err: fmt.Errorf(`repo: validator failed for field "PrescriptionMedicine.duration": %w`, err)}
		}
	}
	return nil
}

func (_u *PrescriptionMedicineUpdateOne) sqlSave(ctx context.Context) (_node *PrescriptionMedicine, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prescriptionmedicine.Table, prescriptionmedicine.Columns, sqlgraph.NewFieldSpec(prescriptionmedicine.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "PrescriptionMedicine.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, prescriptionmedicine.FieldID)
		for _, f := range fields {
			if !prescriptionmedicine.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != prescriptionmedicine.FieldID {
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
	if value, ok := _u.mutation.PrescriptionID(); ok {
		_spec.SetField(prescriptionmedicine.FieldPrescriptionID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(prescriptionmedicine.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Dosage(); ok {
		_spec.SetField(prescriptionmedicine.FieldDosage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Frequency(); ok {
		_spec.SetField(prescriptionmedicine.FieldFrequency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(prescriptionmedicine.FieldDuration, field.TypeString, value)
	}
	if value, ok := _u.mutation.Instructions(); ok {
		_spec.SetField(prescriptionmedicine.FieldInstructions, field.TypeString, value)
	}
	if _u.mutation.InstructionsCleared() {
		_spec.ClearField(prescriptionmedicine.FieldInstructions, field.TypeString)
	}
	_node = &PrescriptionMedicine{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prescriptionmedicine.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
