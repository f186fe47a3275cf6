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
	"github.com/niramoy/niramoy_backend/internal/repo/doctorschedule"
	"github.com/niramoy/niramoy_backend/internal/repo/predicate"
)

// DoctorScheduleUpdate is the builder for updating DoctorSchedule entities.
type DoctorScheduleUpdate struct {
	config
	hooks    []Hook
	mutation *DoctorScheduleMutation
}

// Where appends a list predicates to the DoctorScheduleUpdate builder.
func (_u *DoctorScheduleUpdate) Where(ps ...predicate.DoctorSchedule) *DoctorScheduleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorScheduleUpdate) SetUpdatedAt(v time.Time) *DoctorScheduleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *DoctorScheduleUpdate) SetDoctorID(v uuid.UUID) *DoctorScheduleUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *DoctorScheduleUpdate) SetNillableDoctorID(v *uuid.UUID) *DoctorScheduleUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetWeekday sets the "weekday" field.
func (_u *DoctorScheduleUpdate) SetWeekday(v int) *DoctorScheduleUpdate {
	_u.mutation.ResetWeekday()
	_u.mutation.SetWeekday(v)
	return _u
}

// SetNillableWeekday sets the "weekday" field if the given value is not nil.
func (_u *DoctorScheduleUpdate) SetNillableWeekday(v *int) *DoctorScheduleUpdate {
	if v != nil {
		_u.SetWeekday(*v)
	}
	return _u
}

// AddWeekday adds value to the "weekday" field.
func (_u *DoctorScheduleUpdate) AddWeekday(v int) *DoctorScheduleUpdate {
	_u.mutation.AddWeekday(v)
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *DoctorScheduleUpdate) SetStartTime(v string) *DoctorScheduleUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *DoctorScheduleUpdate) SetNillableStartTime(v *string) *DoctorScheduleUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *DoctorScheduleUpdate) SetEndTime(v string) *DoctorScheduleUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *DoctorScheduleUpdate) SetNillableEndTime(v *string) *DoctorScheduleUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetMaxPatients sets the "max_patients" field.
func (_u *DoctorScheduleUpdate) SetMaxPatients(v int) *DoctorScheduleUpdate {
	_u.mutation.ResetMaxPatients()
	_u.mutation.SetMaxPatients(v)
	return _u
}

// SetNillableMaxPatients sets the "max_patients" field if the given value is not nil.
func (_u *DoctorScheduleUpdate) SetNillableMaxPatients(v *int) *DoctorScheduleUpdate {
	if v != nil {
		_u.SetMaxPatients(*v)
	}
	return _u
}

// AddMaxPatients adds value to the "max_patients" field.
func (_u *DoctorScheduleUpdate) AddMaxPatients(v int) *DoctorScheduleUpdate {
	_u.mutation.AddMaxPatients(v)
	return _u
}

// SetConsultationMinutes sets the "consultation_minutes" field.
func (_u *DoctorScheduleUpdate) SetConsultationMinutes(v int) *DoctorScheduleUpdate {
	_u.mutation.ResetConsultationMinutes()
	_u.mutation.SetConsultationMinutes(v)
	return _u
}

// SetNillableConsultationMinutes sets the "consultation_minutes" field if the given value is not nil.
func (_u *DoctorScheduleUpdate) SetNillableConsultationMinutes(v *int) *DoctorScheduleUpdate {
	if v != nil {
		_u.SetConsultationMinutes(*v)
	}
	return _u
}

// AddConsultationMinutes adds value to the "consultation_minutes" field.
func (_u *DoctorScheduleUpdate) AddConsultationMinutes(v int) *DoctorScheduleUpdate {
	_u.mutation.AddConsultationMinutes(v)
	return _u
}

// SetRoomNumber sets the "room_number" field.
func (_u *DoctorScheduleUpdate) SetRoomNumber(v string) *DoctorScheduleUpdate {
	_u.mutation.SetRoomNumber(v)
	return _u
}

// SetNillableRoomNumber sets the "room_number" field if the given value is not nil.
func (_u *DoctorScheduleUpdate) SetNillableRoomNumber(v *string) *DoctorScheduleUpdate {
	if v != nil {
		_u.SetRoomNumber(*v)
	}
	return _u
}

// ClearRoomNumber clears the value of the "room_number" field.
func (_u *DoctorScheduleUpdate) ClearRoomNumber() *DoctorScheduleUpdate {
	_u.mutation.ClearRoomNumber()
	return _u
}

// SetActive sets the "active" field.
func (_u *DoctorScheduleUpdate) SetActive(v bool) *DoctorScheduleUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *DoctorScheduleUpdate) SetNillableActive(v *bool) *DoctorScheduleUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the DoctorScheduleMutation object of the builder.
func (_u *DoctorScheduleUpdate) Mutation() *DoctorScheduleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DoctorScheduleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorScheduleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DoctorScheduleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorScheduleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorScheduleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctorschedule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorScheduleUpdate) check() error {
	if v, ok := _u.mutation.Weekday(); ok {
		if err := doctorschedule.WeekdayValidator(v); err != nil {
			return &ValidationError{Name: "weekday", err: fmt.Errorf(`repo: validator failed for field "DoctorSchedule.weekday": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StartTime(); ok {
		if err := doctorschedule.StartTimeValidator(v); err != nil {
			return &ValidationError{Name: "start_time", err: fmt.Errorf(`repo: validator failed for field "DoctorSchedule.start_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndTime(); ok {
		if err := doctorschedule.EndTimeValidator(v); err != nil {
			return &ValidationError{Name: "end_time", err: fmt.Errorf(`repo: validator failed for field "DoctorSchedule.end_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxPatients(); ok {
		if err := doctorschedule.MaxPatientsValidator(v); err != nil {
			return &ValidationError{Name: "max_patients", err: fmt.Errorf(`repo: validator failed for field "DoctorSchedule.max_patients": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConsultationMinutes(); ok {
		if err := doctorschedule.ConsultationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "consultation_minutes", err: fmt.Errorf(`repo: validator failed for field "DoctorSchedule.consultation_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RoomNumber(); ok {
		if err := doctorschedule.RoomNumberValidator(v); err != nil {
			return &ValidationError{Name: "room_number", err: fmt.Errorf(`repo: validator failed for field "DoctorSchedule.room_number": %w`, err)}
		}
	}
	return nil
}

func (_u *DoctorScheduleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctorschedule.Table, doctorschedule.Columns, sqlgraph.NewFieldSpec(doctorschedule.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(doctorschedule.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(doctorschedule.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Weekday(); ok {
		_spec.SetField(doctorschedule.FieldWeekday, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeekday(); ok {
		_spec.AddField(doctorschedule.FieldWeekday, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(doctorschedule.FieldStartTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(doctorschedule.FieldEndTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.MaxPatients(); ok {
		_spec.SetField(doctorschedule.FieldMaxPatients, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxPatients(); ok {
		_spec.AddField(doctorschedule.FieldMaxPatients, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConsultationMinutes(); ok {
		_spec.SetField(doctorschedule.FieldConsultationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsultationMinutes(); ok {
		_spec.AddField(doctorschedule.FieldConsultationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RoomNumber(); ok {
		_spec.SetField(doctorschedule.FieldRoomNumber, field.TypeString, value)
	}
	if _u.mutation.RoomNumberCleared() {
		_spec.ClearField(doctorschedule.FieldRoomNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(doctorschedule.FieldActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctorschedule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DoctorScheduleUpdateOne is the builder for updating a single DoctorSchedule entity.
type DoctorScheduleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DoctorScheduleMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorScheduleUpdateOne) SetUpdatedAt(v time.Time) *DoctorScheduleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *DoctorScheduleUpdateOne) SetDoctorID(v uuid.UUID) *DoctorScheduleUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *DoctorScheduleUpdateOne) SetNillableDoctorID(v *uuid.UUID) *DoctorScheduleUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetWeekday sets the "weekday" field.
func (_u *DoctorScheduleUpdateOne) SetWeekday(v int) *DoctorScheduleUpdateOne {
	_u.mutation.ResetWeekday()
	_u.mutation.SetWeekday(v)
	return _u
}

// SetNillableWeekday sets the "weekday" field if the given value is not nil.
func (_u *DoctorScheduleUpdateOne) SetNillableWeekday(v *int) *DoctorScheduleUpdateOne {
	if v != nil {
		_u.SetWeekday(*v)
	}
	return _u
}

// AddWeekday adds value to the "weekday" field.
func (_u *DoctorScheduleUpdateOne) AddWeekday(v int) *DoctorScheduleUpdateOne {
	_u.mutation.AddWeekday(v)
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *DoctorScheduleUpdateOne) SetStartTime(v string) *DoctorScheduleUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *DoctorScheduleUpdateOne) SetNillableStartTime(v *string) *DoctorScheduleUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *DoctorScheduleUpdateOne) SetEndTime(v string) *DoctorScheduleUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *DoctorScheduleUpdateOne) SetNillableEndTime(v *string) *DoctorScheduleUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetMaxPatients sets the "max_patients" field.
func (_u *DoctorScheduleUpdateOne) SetMaxPatients(v int) *DoctorScheduleUpdateOne {
	_u.mutation.ResetMaxPatients()
	_u.mutation.SetMaxPatients(v)
	return _u
}

// SetNillableMaxPatients sets the "max_patients" field if the given value is not nil.
func (_u *DoctorScheduleUpdateOne) SetNillableMaxPatients(v *int) *DoctorScheduleUpdateOne {
	if v != nil {
		_u.SetMaxPatients(*v)
	}
	return _u
}

// AddMaxPatients adds value to the "max_patients" field.
func (_u *DoctorScheduleUpdateOne) AddMaxPatients(v int) *DoctorScheduleUpdateOne {
	_u.mutation.AddMaxPatients(v)
	return _u
}

// SetConsultationMinutes sets the "consultation_minutes" field.
func (_u *DoctorScheduleUpdateOne) SetConsultationMinutes(v int) *DoctorScheduleUpdateOne {
	_u.mutation.ResetConsultationMinutes()
	_u.mutation.SetConsultationMinutes(v)
	return _u
}

// SetNillableConsultationMinutes sets the "consultation_minutes" field if the given value is not nil.
func (_u *DoctorScheduleUpdateOne) SetNillableConsultationMinutes(v *int) *DoctorScheduleUpdateOne {
	if v != nil {
		_u.SetConsultationMinutes(*v)
	}
	return _u
}

// AddConsultationMinutes adds value to the "consultation_minutes" field.
func (_u *DoctorScheduleUpdateOne) AddConsultationMinutes(v int) *DoctorScheduleUpdateOne {
	_u.mutation.AddConsultationMinutes(v)
	return _u
}

// SetRoomNumber sets the "room_number" field.
func (_u *DoctorScheduleUpdateOne) SetRoomNumber(v string) *DoctorScheduleUpdateOne {
	_u.mutation.SetRoomNumber(v)
	return _u
}

// SetNillableRoomNumber sets the "room_number" field if the given value is not nil.
func (_u *DoctorScheduleUpdateOne) SetNillableRoomNumber(v *string) *DoctorScheduleUpdateOne {
	if v != nil {
		_u.SetRoomNumber(*v)
	}
	return _u
}

// ClearRoomNumber clears the value of the "room_number" field.
func (_u *DoctorScheduleUpdateOne) ClearRoomNumber() *DoctorScheduleUpdateOne {
	_u.mutation.ClearRoomNumber()
	return _u
}

// SetActive sets the "active" field.
func (_u *DoctorScheduleUpdateOne) SetActive(v bool) *DoctorScheduleUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *DoctorScheduleUpdateOne) SetNillableActive(v *bool) *DoctorScheduleUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the DoctorScheduleMutation object of the builder.
func (_u *DoctorScheduleUpdateOne) Mutation() *DoctorScheduleMutation {
	return _u.mutation
}

// Where appends a list predicates to the DoctorScheduleUpdate builder.
func (_u *DoctorScheduleUpdateOne) Where(ps ...predicate.DoctorSchedule) *DoctorScheduleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DoctorScheduleUpdateOne) Select(field string, fields ...string) *DoctorScheduleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DoctorSchedule entity.
func (_u *DoctorScheduleUpdateOne) Save(ctx context.Context) (*DoctorSchedule, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorScheduleUpdateOne) SaveX(ctx context.Context) *DoctorSchedule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DoctorScheduleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorScheduleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorScheduleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctorschedule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorScheduleUpdateOne) check() error {
	if v, ok := _u.mutation.Weekday(); ok {
		if err := doctorschedule.WeekdayValidator(v); err != nil {
			return &ValidationError{Name: "weekday", err: fmt.Errorf(`repo: validator failed for field "DoctorSchedule.weekday": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StartTime(); ok {
		if err := doctorschedule.StartTimeValidator(v); err != nil {
			return &ValidationError{Name: "start_time", err: fmt.Errorf(`repo: validator failed for field "DoctorSchedule.start_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndTime(); ok {
		if err := doctorschedule.EndTimeValidator(v); err != nil {
			return &ValidationError{Name: "end_time", err: fmt.Errorf(`repo: validator failed for field "DoctorSchedule.end_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxPatients(); ok {
		if err := doctorschedule.MaxPatientsValidator(v); err != nil {
			return &ValidationError{Name: "max_patients", err: fmt.Errorf(`repo: validator failed for field "DoctorSchedule.max_patients": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConsultationMinutes(); ok {
		if err := doctorschedule.ConsultationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "consultation_minutes", err: fmt.Errorf(`repo: validator failed for field "DoctorSchedule.consultation_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RoomNumber(); ok {
		if err := doctorschedule.RoomNumberValidator(v); err != nil {
			return &ValidationError{Name: "room_number", err: fmt.Errorf(`repo: validator failed for field "DoctorSchedule.room_number": %w`, err)}
		}
	}
	return nil
}

func (_u *DoctorScheduleUpdateOne) sqlSave(ctx context.Context) (_node *DoctorSchedule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctorschedule.Table, doctorschedule.Columns, sqlgraph.NewFieldSpec(doctorschedule.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "DoctorSchedule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, doctorschedule.FieldID)
		for _, f := range fields {
			if !doctorschedule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != doctorschedule.FieldID {
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
		_spec.SetField(doctorschedule.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(doctorschedule.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Weekday(); ok {
		_spec.SetField(doctorschedule.FieldWeekday, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeekday(); ok {
		_spec.AddField(doctorschedule.FieldWeekday, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(doctorschedule.FieldStartTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(doctorschedule.FieldEndTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.MaxPatients(); ok {
		_spec.SetField(doctorschedule.FieldMaxPatients, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxPatients(); ok {
		_spec.AddField(doctorschedule.FieldMaxPatients, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConsultationMinutes(); ok {
		_spec.SetField(doctorschedule.FieldConsultationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsultationMinutes(); ok {
		_spec.AddField(doctorschedule.FieldConsultationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RoomNumber(); ok {
		_spec.SetField(doctorschedule.FieldRoomNumber, field.TypeString, value)
	}
	if _u.mutation.RoomNumberCleared() {
		_spec.ClearField(doctorschedule.FieldRoomNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(doctorschedule.FieldActive, field.TypeBool, value)
	}
	_node = &DoctorSchedule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctorschedule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
