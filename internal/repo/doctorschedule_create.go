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
	"github.com/niramoy/niramoy_backend/internal/repo/doctorschedule"
)

// DoctorScheduleCreate is the builder for creating a DoctorSchedule entity.
type DoctorScheduleCreate struct {
	config
	mutation *DoctorScheduleMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *DoctorScheduleCreate) SetCreatedAt(v time.Time) *DoctorScheduleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DoctorScheduleCreate) SetNillableCreatedAt(v *time.Time) *DoctorScheduleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DoctorScheduleCreate) SetUpdatedAt(v time.Time) *DoctorScheduleCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DoctorScheduleCreate) SetNillableUpdatedAt(v *time.Time) *DoctorScheduleCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *DoctorScheduleCreate) SetDoctorID(v uuid.UUID) *DoctorScheduleCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetWeekday sets the "weekday" field.
func (_c *DoctorScheduleCreate) SetWeekday(v int) *DoctorScheduleCreate {
	_c.mutation.SetWeekday(v)
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *DoctorScheduleCreate) SetStartTime(v string) *DoctorScheduleCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *DoctorScheduleCreate) SetEndTime(v string) *DoctorScheduleCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetMaxPatients sets the "max_patients" field.
func (_c *DoctorScheduleCreate) SetMaxPatients(v int) *DoctorScheduleCreate {
	_c.mutation.SetMaxPatients(v)
	return _c
}

// SetNillableMaxPatients sets the "max_patients" field if the given value is not nil.
func (_c *DoctorScheduleCreate) SetNillableMaxPatients(v *int) *DoctorScheduleCreate {
	if v != nil {
		_c.SetMaxPatients(*v)
	}
	return _c
}

// SetConsultationMinutes sets the "consultation_minutes" field.
func (_c *DoctorScheduleCreate) SetConsultationMinutes(v int) *DoctorScheduleCreate {
	_c.mutation.SetConsultationMinutes(v)
	return _c
}

// SetNillableConsultationMinutes sets the "consultation_minutes" field if the given value is not nil.
func (_c *DoctorScheduleCreate) SetNillableConsultationMinutes(v *int) *DoctorScheduleCreate {
	if v != nil {
		_c.SetConsultationMinutes(*v)
	}
	return _c
}

// SetRoomNumber sets the "room_number" field.
func (_c *DoctorScheduleCreate) SetRoomNumber(v string) *DoctorScheduleCreate {
	_c.mutation.SetRoomNumber(v)
	return _c
}

// SetNillableRoomNumber sets the "room_number" field if the given value is not nil.
func (_c *DoctorScheduleCreate) SetNillableRoomNumber(v *string) *DoctorScheduleCreate {
	if v != nil {
		_c.SetRoomNumber(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *DoctorScheduleCreate) SetActive(v bool) *DoctorScheduleCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *DoctorScheduleCreate) SetNillableActive(v *bool) *DoctorScheduleCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DoctorScheduleCreate) SetID(v uuid.UUID) *DoctorScheduleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DoctorScheduleCreate) SetNillableID(v *uuid.UUID) *DoctorScheduleCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the DoctorScheduleMutation object of the builder.
func (_c *DoctorScheduleCreate) Mutation() *DoctorScheduleMutation {
	return _c.mutation
}

// Save creates the DoctorSchedule in the database.
func (_c *DoctorScheduleCreate) Save(ctx context.Context) (*DoctorSchedule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DoctorScheduleCreate) SaveX(ctx context.Context) *DoctorSchedule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DoctorScheduleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DoctorScheduleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DoctorScheduleCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := doctorschedule.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := doctorschedule.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.MaxPatients(); !ok {
		v := doctorschedule.DefaultMaxPatients
		_c.mutation.SetMaxPatients(v)
	}
	if _, ok := _c.mutation.ConsultationMinutes(); !ok {
		v := doctorschedule.DefaultConsultationMinutes
		_c.mutation.SetConsultationMinutes(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := doctorschedule.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := doctorschedule.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DoctorScheduleCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "DoctorSchedule.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "DoctorSchedule.updated_at"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`repo: missing required field "DoctorSchedule.doctor_id"`)}
	}
	if _, ok := _c.mutation.Weekday(); !ok {
		return &ValidationError{Name: "weekday", err: errors.New(`repo: missing required field "DoctorSchedule.weekday"`)}
	}
	if v, ok := _c.mutation.Weekday(); ok {
		if err := doctorschedule.WeekdayValidator(v); err != nil {
			return &ValidationError{Name: "weekday", err: fmt.Errorf(`repo: validator failed for field "DoctorSchedule.weekday": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`repo: missing required field "DoctorSchedule.start_time"`)}
	}
	if v, ok := _c.mutation.StartTime(); ok {
		if err := doctorschedule.StartTimeValidator(v); err != nil {
			return &ValidationError{Name: "start_time", err: fmt.Errorf(`repo: validator failed for field "DoctorSchedule.start_time": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EndTime(); !ok {
		return &ValidationError{Name: "end_time", err: errors.New(`repo: missing required field "DoctorSchedule.end_time"`)}
	}
	if v, ok := _c.mutation.EndTime(); ok {
		if err := doctorschedule.EndTimeValidator(v); err != nil {
			return &ValidationError{Name: "end_time", err: fmt.Errorf(`repo: validator failed for field "DoctorSchedule.end_time": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxPatients(); !ok {
		return &ValidationError{Name: "max_patients", err: errors.New(`repo: missing required field "DoctorSchedule.max_patients"`)}
	}
	if v, ok := _c.mutation.MaxPatients(); ok {
		if err := doctorschedule.MaxPatientsValidator(v); err != nil {
			return &ValidationError{Name: "max_patients", err: fmt.Errorf(`repo: validator failed for field "DoctorSchedule.max_patients": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConsultationMinutes(); !ok {
		return &ValidationError{Name: "consultation_minutes", err: errors.New(`repo: missing required field "DoctorSchedule.consultation_minutes"`)}
	}
	if v, ok := _c.mutation.ConsultationMinutes(); ok {
		if err := doctorschedule.ConsultationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "consultation_minutes", err: fmt.Errorf(`repo: validator failed for field "DoctorSchedule.consultation_minutes": %w`, err)}
		}
	}
	if v, ok := _c.mutation.RoomNumber(); ok {
		if err := doctorschedule.RoomNumberValidator(v); err != nil {
			return &ValidationError{Name: "room_number", err: fmt.Errorf(`repo: validator failed for field "DoctorSchedule.room_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`repo: missing required field "DoctorSchedule.active"`)}
	}
	return nil
}

func (_c *DoctorScheduleCreate) sqlSave(ctx context.Context) (*DoctorSchedule, error) {
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

func (_c *DoctorScheduleCreate) createSpec() (*DoctorSchedule, *sqlgraph.CreateSpec) {
	var (
		_node = &DoctorSchedule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(doctorschedule.Table, sqlgraph.NewFieldSpec(doctorschedule.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(doctorschedule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(doctorschedule.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DoctorID(); ok {
		_spec.SetField(doctorschedule.FieldDoctorID, field.TypeUUID, value)
		_node.DoctorID = value
	}
	if value, ok := _c.mutation.Weekday(); ok {
		_spec.SetField(doctorschedule.FieldWeekday, field.TypeInt, value)
		_node.Weekday = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(doctorschedule.FieldStartTime, field.TypeString, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(doctorschedule.FieldEndTime, field.TypeString, value)
		_node.EndTime = value
	}
	if value, ok := _c.mutation.MaxPatients(); ok {
		_spec.SetField(doctorschedule.FieldMaxPatients, field.TypeInt, value)
		_node.MaxPatients = value
	}
	if value, ok := _c.mutation.ConsultationMinutes(); ok {
		_spec.SetField(doctorschedule.FieldConsultationMinutes, field.TypeInt, value)
		_node.ConsultationMinutes = value
	}
	if value, ok := _c.mutation.RoomNumber(); ok {
		_spec.SetField(doctorschedule.FieldRoomNumber, field.TypeString, value)
		_node.RoomNumber = &value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(doctorschedule.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DoctorSchedule.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DoctorScheduleUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DoctorScheduleCreate) OnConflict(opts ...sql.ConflictOption) *DoctorScheduleUpsertOne {
	_c.conflict = opts
	return &DoctorScheduleUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DoctorSchedule.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DoctorScheduleCreate) OnConflictColumns(columns ...string) *DoctorScheduleUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DoctorScheduleUpsertOne{
		create: _c,
	}
}

type (
	// DoctorScheduleUpsertOne is the builder for "upsert"-ing
	//  one DoctorSchedule node.
	DoctorScheduleUpsertOne struct {
		create *DoctorScheduleCreate
	}

	// DoctorScheduleUpsert is the "OnConflict" setter.
	DoctorScheduleUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *DoctorScheduleUpsert) SetUpdatedAt(v time.Time) *DoctorScheduleUpsert {
	u.Set(doctorschedule.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DoctorScheduleUpsert) UpdateUpdatedAt() *DoctorScheduleUpsert {
	u.SetExcluded(doctorschedule.FieldUpdatedAt)
	return u
}

// SetDoctorID sets the "doctor_id" field.
func (u *DoctorScheduleUpsert) SetDoctorID(v uuid.UUID) *DoctorScheduleUpsert {
	u.Set(doctorschedule.FieldDoctorID, v)
	return u
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *DoctorScheduleUpsert) UpdateDoctorID() *DoctorScheduleUpsert {
	u.SetExcluded(doctorschedule.FieldDoctorID)
	return u
}

// SetWeekday sets the "weekday" field.
func (u *DoctorScheduleUpsert) SetWeekday(v int) *DoctorScheduleUpsert {
	u.Set(doctorschedule.FieldWeekday, v)
	return u
}

// UpdateWeekday sets the "weekday" field to the value that was provided on create.
func (u *DoctorScheduleUpsert) UpdateWeekday() *DoctorScheduleUpsert {
	u.SetExcluded(doctorschedule.FieldWeekday)
	return u
}

// AddWeekday adds v to the "weekday" field.
func (u *DoctorScheduleUpsert) AddWeekday(v int) *DoctorScheduleUpsert {
	u.Add(doctorschedule.FieldWeekday, v)
	return u
}

// SetStartTime sets the "start_time" field.
func (u *DoctorScheduleUpsert) SetStartTime(v string) *DoctorScheduleUpsert {
	u.Set(doctorschedule.FieldStartTime, v)
	return u
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *DoctorScheduleUpsert) UpdateStartTime() *DoctorScheduleUpsert {
	u.SetExcluded(doctorschedule.FieldStartTime)
	return u
}

// SetEndTime sets the "end_time" field.
func (u *DoctorScheduleUpsert) SetEndTime(v string) *DoctorScheduleUpsert {
	u.Set(doctorschedule.FieldEndTime, v)
	return u
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *DoctorScheduleUpsert) UpdateEndTime() *DoctorScheduleUpsert {
	u.SetExcluded(doctorschedule.FieldEndTime)
	return u
}

// SetMaxPatients sets the "max_patients" field.
func (u *DoctorScheduleUpsert) SetMaxPatients(v int) *DoctorScheduleUpsert {
	u.Set(doctorschedule.FieldMaxPatients, v)
	return u
}

// UpdateMaxPatients sets the "max_patients" field to the value that was provided on create.
func (u *DoctorScheduleUpsert) UpdateMaxPatients() *DoctorScheduleUpsert {
	u.SetExcluded(doctorschedule.FieldMaxPatients)
	return u
}

// AddMaxPatients adds v to the "max_patients" field.
func (u *DoctorScheduleUpsert) AddMaxPatients(v int) *DoctorScheduleUpsert {
	u.Add(doctorschedule.FieldMaxPatients, v)
	return u
}

// SetConsultationMinutes sets the "consultation_minutes" field.
func (u *DoctorScheduleUpsert) SetConsultationMinutes(v int) *DoctorScheduleUpsert {
	u.Set(doctorschedule.FieldConsultationMinutes, v)
	return u
}

// UpdateConsultationMinutes sets the "consultation_minutes" field to the value that was provided on create.
func (u *DoctorScheduleUpsert) UpdateConsultationMinutes() *DoctorScheduleUpsert {
	u.SetExcluded(doctorschedule.FieldConsultationMinutes)
	return u
}

// AddConsultationMinutes adds v to the "consultation_minutes" field.
func (u *DoctorScheduleUpsert) AddConsultationMinutes(v int) *DoctorScheduleUpsert {
	u.Add(doctorschedule.FieldConsultationMinutes, v)
	return u
}

// SetRoomNumber sets the "room_number" field.
func (u *DoctorScheduleUpsert) SetRoomNumber(v string) *DoctorScheduleUpsert {
	u.Set(doctorschedule.FieldRoomNumber, v)
	return u
}

// UpdateRoomNumber sets the "room_number" field to the value that was provided on create.
func (u *DoctorScheduleUpsert) UpdateRoomNumber() *DoctorScheduleUpsert {
	u.SetExcluded(doctorschedule.FieldRoomNumber)
	return u
}

// ClearRoomNumber clears the value of the "room_number" field.
func (u *DoctorScheduleUpsert) ClearRoomNumber() *DoctorScheduleUpsert {
	u.SetNull(doctorschedule.FieldRoomNumber)
	return u
}

// SetActive sets the "active" field.
func (u *DoctorScheduleUpsert) SetActive(v bool) *DoctorScheduleUpsert {
	u.Set(doctorschedule.FieldActive, v)
	return u
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *DoctorScheduleUpsert) UpdateActive() *DoctorScheduleUpsert {
	u.SetExcluded(doctorschedule.FieldActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.DoctorSchedule.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(doctorschedule.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DoctorScheduleUpsertOne) UpdateNewValues() *DoctorScheduleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(doctorschedule.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(doctorschedule.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DoctorSchedule.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DoctorScheduleUpsertOne) Ignore() *DoctorScheduleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DoctorScheduleUpsertOne) DoNothing() *DoctorScheduleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DoctorScheduleCreate.OnConflict
// documentation for more info.
func (u *DoctorScheduleUpsertOne) Update(set func(*DoctorScheduleUpsert)) *DoctorScheduleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DoctorScheduleUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DoctorScheduleUpsertOne) SetUpdatedAt(v time.Time) *DoctorScheduleUpsertOne {
	return u.Update(func(s *DoctorScheduleUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DoctorScheduleUpsertOne) UpdateUpdatedAt() *DoctorScheduleUpsertOne {
	return u.Update(func(s *DoctorScheduleUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *DoctorScheduleUpsertOne) SetDoctorID(v uuid.UUID) *DoctorScheduleUpsertOne {
	return u.Update(func(s *DoctorScheduleUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *DoctorScheduleUpsertOne) UpdateDoctorID() *DoctorScheduleUpsertOne {
	return u.Update(func(s *DoctorScheduleUpsert) {
		s.UpdateDoctorID()
	})
}

// SetWeekday sets the "weekday" field.
func (u *DoctorScheduleUpsertOne) SetWeekday(v int) *DoctorScheduleUpsertOne {
	return u.Update(func(s *DoctorScheduleUpsert) {
		s.SetWeekday(v)
	})
}

// AddWeekday adds v to the "weekday" field.
func (u *DoctorScheduleUpsertOne) AddWeekday(v int) *DoctorScheduleUpsertOne {
	return u.Update(func(s *DoctorScheduleUpsert) {
		s.AddWeekday(v)
	})
}

// UpdateWeekday sets the "weekday" field to the value that was provided on create.
func (u *DoctorScheduleUpsertOne) UpdateWeekday() *DoctorScheduleUpsertOne {
	return u.Update(func(s *DoctorScheduleUpsert) {
		s.UpdateWeekday()
	})
}

// SetStartTime sets the "start_time" field.
func (u *DoctorScheduleUpsertOne) SetStartTime(v string) *DoctorScheduleUpsertOne {
	return u.Update(func(s *DoctorScheduleUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *DoctorScheduleUpsertOne) UpdateStartTime() *DoctorScheduleUpsertOne {
	return u.Update(func(s *DoctorScheduleUpsert) {
		s.UpdateStartTime()
	})
}

// SetEndTime sets the "end_time" field.
func (u *DoctorScheduleUpsertOne) SetEndTime(v string) *DoctorScheduleUpsertOne {
	return u.Update(func(s *DoctorScheduleUpsert) {
		s.SetEndTime(v)
	})
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *DoctorScheduleUpsertOne) UpdateEndTime() *DoctorScheduleUpsertOne {
	return u.Update(func(s *DoctorScheduleUpsert) {
		s.UpdateEndTime()
	})
}

// SetMaxPatients sets the "max_patients" field.
func (u *DoctorScheduleUpsertOne) SetMaxPatients(v int) *DoctorScheduleUpsertOne {
	return u.Update(func(s *DoctorScheduleUpsert) {
		s.SetMaxPatients(v)
	})
}

// AddMaxPatients adds v to the "max_patients" field.
func (u *DoctorScheduleUpsertOne) AddMaxPatients(v int) *DoctorScheduleUpsertOne {
	return u.Update(func(s *DoctorScheduleUpsert) {
		s.AddMaxPatients(v)
	})
}

// UpdateMaxPatients sets the "max_patients" field to the value that was provided on create.
func (u *DoctorScheduleUpsertOne) UpdateMaxPatients() *DoctorScheduleUpsertOne {
	return u.Update(func(s *DoctorScheduleUpsert) {
		s.UpdateMaxPatients()
	})
}

// SetConsultationMinutes sets the "consultation_minutes" field.
func (u *DoctorScheduleUpsertOne) SetConsultationMinutes(v int) *DoctorScheduleUpsertOne {
	return u.Update(func(s *DoctorScheduleUpsert) {
		s.SetConsultationMinutes(v)
	})
}

// AddConsultationMinutes adds v to the "consultation_minutes" field.
func (u *DoctorScheduleUpsertOne) AddConsultationMinutes(v int) *DoctorScheduleUpsertOne {
	return u.Update(func(s *DoctorScheduleUpsert) {
		s.AddConsultationMinutes(v)
	})
}

// UpdateConsultationMinutes sets the "consultation_minutes" field to the value that was provided on create.
func (u *DoctorScheduleUpsertOne) UpdateConsultationMinutes() *DoctorScheduleUpsertOne {
	return u.Update(func(s *DoctorScheduleUpsert) {
		s.UpdateConsultationMinutes()
	})
}

// SetRoomNumber sets the "room_number" field.
func (u *DoctorScheduleUpsertOne) SetRoomNumber(v string) *DoctorScheduleUpsertOne {
	return u.Update(func(s *DoctorScheduleUpsert) {
		s.SetRoomNumber(v)
	})
}

// UpdateRoomNumber sets the "room_number" field to the value that was provided on create.
func (u *DoctorScheduleUpsertOne) UpdateRoomNumber() *DoctorScheduleUpsertOne {
	return u.Update(func(s *DoctorScheduleUpsert) {
		s.UpdateRoomNumber()
	})
}

// ClearRoomNumber clears the value of the "room_number" field.
func (u *DoctorScheduleUpsertOne) ClearRoomNumber() *DoctorScheduleUpsertOne {
	return u.Update(func(s *DoctorScheduleUpsert) {
		s.ClearRoomNumber()
	})
}

// SetActive sets the "active" field.
func (u *DoctorScheduleUpsertOne) SetActive(v bool) *DoctorScheduleUpsertOne {
	return u.Update(func(s *DoctorScheduleUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *DoctorScheduleUpsertOne) UpdateActive() *DoctorScheduleUpsertOne {
	return u.Update(func(s *DoctorScheduleUpsert) {
		s.UpdateActive()
	})
}

// Exec executes the query.
func (u *DoctorScheduleUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DoctorScheduleCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DoctorScheduleUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DoctorScheduleUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: DoctorScheduleUpsertOne.ID is not supported by MySQL driver. Use DoctorScheduleUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DoctorScheduleUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DoctorScheduleCreateBulk is the builder for creating many DoctorSchedule entities in bulk.
type DoctorScheduleCreateBulk struct {
	config
	err      error
	builders []*DoctorScheduleCreate
	conflict []sql.ConflictOption
}

// Save creates the DoctorSchedule entities in the database.
func (_c *DoctorScheduleCreateBulk) Save(ctx context.Context) ([]*DoctorSchedule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DoctorSchedule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DoctorScheduleMutation)
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
func (_c *DoctorScheduleCreateBulk) SaveX(ctx context.Context) []*DoctorSchedule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DoctorScheduleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DoctorScheduleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DoctorSchedule.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DoctorScheduleUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DoctorScheduleCreateBulk) OnConflict(opts ...sql.ConflictOption) *DoctorScheduleUpsertBulk {
	_c.conflict = opts
	return &DoctorScheduleUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DoctorSchedule.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DoctorScheduleCreateBulk) OnConflictColumns(columns ...string) *DoctorScheduleUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DoctorScheduleUpsertBulk{
		create: _c,
	}
}

// DoctorScheduleUpsertBulk is the builder for "upsert"-ing
// a bulk of DoctorSchedule nodes.
type DoctorScheduleUpsertBulk struct {
	create *DoctorScheduleCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DoctorSchedule.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(doctorschedule.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DoctorScheduleUpsertBulk) UpdateNewValues() *DoctorScheduleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(doctorschedule.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(doctorschedule.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DoctorSchedule.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DoctorScheduleUpsertBulk) Ignore() *DoctorScheduleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DoctorScheduleUpsertBulk) DoNothing() *DoctorScheduleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DoctorScheduleCreateBulk.OnConflict
// documentation for more info.
func (u *DoctorScheduleUpsertBulk) Update(set func(*DoctorScheduleUpsert)) *DoctorScheduleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DoctorScheduleUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DoctorScheduleUpsertBulk) SetUpdatedAt(v time.Time) *DoctorScheduleUpsertBulk {
	return u.Update(func(s *DoctorScheduleUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DoctorScheduleUpsertBulk) UpdateUpdatedAt() *DoctorScheduleUpsertBulk {
	return u.Update(func(s *DoctorScheduleUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *DoctorScheduleUpsertBulk) SetDoctorID(v uuid.UUID) *DoctorScheduleUpsertBulk {
	return u.Update(func(s *DoctorScheduleUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *DoctorScheduleUpsertBulk) UpdateDoctorID() *DoctorScheduleUpsertBulk {
	return u.Update(func(s *DoctorScheduleUpsert) {
		s.UpdateDoctorID()
	})
}

// SetWeekday sets the "weekday" field.
func (u *DoctorScheduleUpsertBulk) SetWeekday(v int) *DoctorScheduleUpsertBulk {
	return u.Update(func(s *DoctorScheduleUpsert) {
		s.SetWeekday(v)
	})
}

// AddWeekday adds v to the "weekday" field.
func (u *DoctorScheduleUpsertBulk) AddWeekday(v int) *DoctorScheduleUpsertBulk {
	return u.Update(func(s *DoctorScheduleUpsert) {
		s.AddWeekday(v)
	})
}

// UpdateWeekday sets the "weekday" field to the value that was provided on create.
func (u *DoctorScheduleUpsertBulk) UpdateWeekday() *DoctorScheduleUpsertBulk {
	return u.Update(func(s *DoctorScheduleUpsert) {
		s.UpdateWeekday()
	})
}

// SetStartTime sets the "start_time" field.
func (u *DoctorScheduleUpsertBulk) SetStartTime(v string) *DoctorScheduleUpsertBulk {
	return u.Update(func(s *DoctorScheduleUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *DoctorScheduleUpsertBulk) UpdateStartTime() *DoctorScheduleUpsertBulk {
	return u.Update(func(s *DoctorScheduleUpsert) {
		s.UpdateStartTime()
	})
}

// SetEndTime sets the "end_time" field.
func (u *DoctorScheduleUpsertBulk) SetEndTime(v string) *DoctorScheduleUpsertBulk {
	return u.Update(func(s *DoctorScheduleUpsert) {
		s.SetEndTime(v)
	})
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *DoctorScheduleUpsertBulk) UpdateEndTime() *DoctorScheduleUpsertBulk {
	return u.Update(func(s *DoctorScheduleUpsert) {
		s.UpdateEndTime()
	})
}

// SetMaxPatients sets the "max_patients" field.
func (u *DoctorScheduleUpsertBulk) SetMaxPatients(v int) *DoctorScheduleUpsertBulk {
	return u.Update(func(s *DoctorScheduleUpsert) {
		s.SetMaxPatients(v)
	})
}

// AddMaxPatients adds v to the "max_patients" field.
func (u *DoctorScheduleUpsertBulk) AddMaxPatients(v int) *DoctorScheduleUpsertBulk {
	return u.Update(func(s *DoctorScheduleUpsert) {
		s.AddMaxPatients(v)
	})
}

// UpdateMaxPatients sets the "max_patients" field to the value that was provided on create.
func (u *DoctorScheduleUpsertBulk) UpdateMaxPatients() *DoctorScheduleUpsertBulk {
	return u.Update(func(s *DoctorScheduleUpsert) {
		s.UpdateMaxPatients()
	})
}

// SetConsultationMinutes sets the "consultation_minutes" field.
func (u *DoctorScheduleUpsertBulk) SetConsultationMinutes(v int) *DoctorScheduleUpsertBulk {
	return u.Update(func(s *DoctorScheduleUpsert) {
		s.SetConsultationMinutes(v)
	})
}

// AddConsultationMinutes adds v to the "consultation_minutes" field.
func (u *DoctorScheduleUpsertBulk) AddConsultationMinutes(v int) *DoctorScheduleUpsertBulk {
	return u.Update(func(s *DoctorScheduleUpsert) {
		s.AddConsultationMinutes(v)
	})
}

// UpdateConsultationMinutes sets the "consultation_minutes" field to the value that was provided on create.
func (u *DoctorScheduleUpsertBulk) UpdateConsultationMinutes() *DoctorScheduleUpsertBulk {
	return u.Update(func(s *DoctorScheduleUpsert) {
		s.UpdateConsultationMinutes()
	})
}

// SetRoomNumber sets the "room_number" field.
func (u *DoctorScheduleUpsertBulk) SetRoomNumber(v string) *DoctorScheduleUpsertBulk {
	return u.Update(func(s *DoctorScheduleUpsert) {
		s.SetRoomNumber(v)
	})
}

// UpdateRoomNumber sets the "room_number" field to the value that was provided on create.
func (u *DoctorScheduleUpsertBulk) UpdateRoomNumber() *DoctorScheduleUpsertBulk {
	return u.Update(func(s *DoctorScheduleUpsert) {
		s.UpdateRoomNumber()
	})
}

// ClearRoomNumber clears the value of the "room_number" field.
func (u *DoctorScheduleUpsertBulk) ClearRoomNumber() *DoctorScheduleUpsertBulk {
	return u.Update(func(s *DoctorScheduleUpsert) {
		s.ClearRoomNumber()
	})
}

// SetActive sets the "active" field.
func (u *DoctorScheduleUpsertBulk) SetActive(v bool) *DoctorScheduleUpsertBulk {
	return u.Update(func(s *DoctorScheduleUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *DoctorScheduleUpsertBulk) UpdateActive() *DoctorScheduleUpsertBulk {
	return u.Update(func(s *DoctorScheduleUpsert) {
		s.UpdateActive()
	})
}

// Exec executes the query.
func (u *DoctorScheduleUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the DoctorScheduleCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DoctorScheduleCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DoctorScheduleUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
