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
	"github.com/niramoy/niramoy_backend/internal/repo/staff"
)

// StaffCreate is the builder for creating a Staff entity.
type StaffCreate struct {
	config
	mutation *StaffMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *StaffCreate) SetCreatedAt(v time.Time) *StaffCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StaffCreate) SetNillableCreatedAt(v *time.Time) *StaffCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StaffCreate) SetUpdatedAt(v time.Time) *StaffCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StaffCreate) SetNillableUpdatedAt(v *time.Time) *StaffCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *StaffCreate) SetDeletedAt(v time.Time) *StaffCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *StaffCreate) SetNillableDeletedAt(v *time.Time) *StaffCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetFirstName sets the "first_name" field.
func (_c *StaffCreate) SetFirstName(v string) *StaffCreate {
	_c.mutation.SetFirstName(v)
	return _c
}

// SetLastName sets the "last_name" field.
func (_c *StaffCreate) SetLastName(v string) *StaffCreate {
	_c.mutation.SetLastName(v)
	return _c
}

// SetPhone sets the "phone" field.
func (_c *StaffCreate) SetPhone(v string) *StaffCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *StaffCreate) SetEmail(v string) *StaffCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *StaffCreate) SetNillableEmail(v *string) *StaffCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetPasswordHash sets the "password_hash" field.
func (_c *StaffCreate) SetPasswordHash(v string) *StaffCreate {
	_c.mutation.SetPasswordHash(v)
	return _c
}

// SetMustChangePassword sets the "must_change_password" field.
func (_c *StaffCreate) SetMustChangePassword(v bool) *StaffCreate {
	_c.mutation.SetMustChangePassword(v)
	return _c
}

// SetNillableMustChangePassword sets the "must_change_password" field if the given value is not nil.
func (_c *StaffCreate) SetNillableMustChangePassword(v *bool) *StaffCreate {
	if v != nil {
		_c.SetMustChangePassword(*v)
	}
	return _c
}

// SetRole sets the "role" field.
func (_c *StaffCreate) SetRole(v staff.Role) *StaffCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetSpecialization sets the "specialization" field.
func (_c *StaffCreate) SetSpecialization(v string) *StaffCreate {
	_c.mutation.SetSpecialization(v)
	return _c
}

// SetNillableSpecialization sets the "specialization" field if the given value is not nil.
func (_c *StaffCreate) SetNillableSpecialization(v *string) *StaffCreate {
	if v != nil {
		_c.SetSpecialization(*v)
	}
	return _c
}

// SetLicenseNumber sets the "license_number" field.
func (_c *StaffCreate) SetLicenseNumber(v string) *StaffCreate {
	_c.mutation.SetLicenseNumber(v)
	return _c
}

// SetNillableLicenseNumber sets the "license_number" field if the given value is not nil.
func (_c *StaffCreate) SetNillableLicenseNumber(v *string) *StaffCreate {
	if v != nil {
		_c.SetLicenseNumber(*v)
	}
	return _c
}

// SetConsultationFee sets the "consultation_fee" field.
func (_c *StaffCreate) SetConsultationFee(v int64) *StaffCreate {
	_c.mutation.SetConsultationFee(v)
	return _c
}

// SetNillableConsultationFee sets the "consultation_fee" field if the given value is not nil.
func (_c *StaffCreate) SetNillableConsultationFee(v *int64) *StaffCreate {
	if v != nil {
		_c.SetConsultationFee(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *StaffCreate) SetStatus(v staff.Status) *StaffCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *StaffCreate) SetNillableStatus(v *staff.Status) *StaffCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetLastLoginAt sets the "last_login_at" field.
func (_c *StaffCreate) SetLastLoginAt(v time.Time) *StaffCreate {
	_c.mutation.SetLastLoginAt(v)
	return _c
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_c *StaffCreate) SetNillableLastLoginAt(v *time.Time) *StaffCreate {
	if v != nil {
		_c.SetLastLoginAt(*v)
	}
	return _c
}

// SetFailedLoginAttempts sets the "failed_login_attempts" field.
func (_c *StaffCreate) SetFailedLoginAttempts(v int) *StaffCreate {
	_c.mutation.SetFailedLoginAttempts(v)
	return _c
}

// SetNillableFailedLoginAttempts sets the "failed_login_attempts" field if the given value is not nil.
func (_c *StaffCreate) SetNillableFailedLoginAttempts(v *int) *StaffCreate {
	if v != nil {
		_c.SetFailedLoginAttempts(*v)
	}
	return _c
}

// SetLockedUntil sets the "locked_until" field.
func (_c *StaffCreate) SetLockedUntil(v time.Time) *StaffCreate {
	_c.mutation.SetLockedUntil(v)
	return _c
}

// SetNillableLockedUntil sets the "locked_until" field if the given value is not nil.
func (_c *StaffCreate) SetNillableLockedUntil(v *time.Time) *StaffCreate {
	if v != nil {
		_c.SetLockedUntil(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StaffCreate) SetID(v uuid.UUID) *StaffCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *StaffCreate) SetNillableID(v *uuid.UUID) *StaffCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the StaffMutation object of the builder.
func (_c *StaffCreate) Mutation() *StaffMutation {
	return _c.mutation
}

// Save creates the Staff in the database.
func (_c *StaffCreate) Save(ctx context.Context) (*Staff, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StaffCreate) SaveX(ctx context.Context) *Staff {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StaffCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StaffCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StaffCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := staff.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := staff.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.MustChangePassword(); !ok {
		v := staff.DefaultMustChangePassword
		_c.mutation.SetMustChangePassword(v)
	}
	if _, ok := _c.mutation.ConsultationFee(); !ok {
		v := staff.DefaultConsultationFee
		_c.mutation.SetConsultationFee(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := staff.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.FailedLoginAttempts(); !ok {
		v := staff.DefaultFailedLoginAttempts
		_c.mutation.SetFailedLoginAttempts(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := staff.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StaffCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Staff.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Staff.updated_at"`)}
	}
	if _, ok := _c.mutation.FirstName(); !ok {
		return &ValidationError{Name: "first_name", err: errors.New(`repo: missing required field "Staff.first_name"`)}
	}
	if v, ok := _c.mutation.FirstName(); ok {
		if err := staff.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "Staff.first_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastName(); !ok {
		return &ValidationError{Name: "last_name", err: errors.New(`repo: missing required field "Staff.last_name"`)}
	}
	if v, ok := _c.mutation.LastName(); ok {
		if err := staff.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "Staff.last_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Phone(); !ok {
		return &ValidationError{Name: "phone", err: errors.New(`repo: missing required field "Staff.phone"`)}
	}
	if v, ok := _c.mutation.Phone(); ok {
		if err := staff.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Staff.phone": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := staff.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Staff.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PasswordHash(); !ok {
		return &ValidationError{Name: "password_hash", err: errors.New(`repo: missing required field "Staff.password_hash"`)}
	}
	if _, ok := _c.mutation.MustChangePassword(); !ok {
		return &ValidationError{Name: "must_change_password", err: errors.New(`repo: missing required field "Staff.must_change_password"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`repo: missing required field "Staff.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := staff.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`repo: validator failed for field "Staff.role": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Specialization(); ok {
		if err := staff.SpecializationValidator(v); err != nil {
			return &ValidationError{Name: "specialization", err: fmt.Errorf(`repo: validator failed for field "Staff.specialization": %w`, err)}
		}
	}
	if v, ok := _c.mutation.LicenseNumber(); ok {
		if err := staff.LicenseNumberValidator(v); err != nil {
			return &ValidationError{Name: "license_number", err: fmt.Errorf(`repo: validator failed for field "Staff.license_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConsultationFee(); !ok {
		return &ValidationError{Name: "consultation_fee", err: errors.New(`repo: missing required field "Staff.consultation_fee"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Staff.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := staff.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Staff.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FailedLoginAttempts(); !ok {
		return &ValidationError{Name: "failed_login_attempts", err: errors.New(`repo: missing required field "Staff.failed_login_attempts"`)}
	}
	if v, ok := _c.mutation.FailedLoginAttempts(); ok {
		if err := staff.FailedLoginAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "failed_login_attempts", err: fmt.Errorf(`repo: validator failed for field "Staff.failed_login_attempts": %w`, err)}
		}
	}
	return nil
}

func (_c *StaffCreate) sqlSave(ctx context.Context) (*Staff, error) {
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

func (_c *StaffCreate) createSpec() (*Staff, *sqlgraph.CreateSpec) {
	var (
		_node = &Staff{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(staff.Table, sqlgraph.NewFieldSpec(staff.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(staff.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(staff.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(staff.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.FirstName(); ok {
		_spec.SetField(staff.FieldFirstName, field.TypeString, value)
		_node.FirstName = value
	}
	if value, ok := _c.mutation.LastName(); ok {
		_spec.SetField(staff.FieldLastName, field.TypeString, value)
		_node.LastName = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(staff.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(staff.FieldEmail, field.TypeString, value)
		_node.Email = &value
	}
	if value, ok := _c.mutation.PasswordHash(); ok {
		_spec.SetField(staff.FieldPasswordHash, field.TypeString, value)
		_node.PasswordHash = value
	}
	if value, ok := _c.mutation.MustChangePassword(); ok {
		_spec.SetField(staff.FieldMustChangePassword, field.TypeBool, value)
		_node.MustChangePassword = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(staff.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Specialization(); ok {
		_spec.SetField(staff.FieldSpecialization, field.TypeString, value)
		_node.Specialization = &value
	}
	if value, ok := _c.mutation.LicenseNumber(); ok {
		_spec.SetField(staff.FieldLicenseNumber, field.TypeString, value)
		_node.LicenseNumber = &value
	}
	if value, ok := _c.mutation.ConsultationFee(); ok {
		_spec.SetField(staff.FieldConsultationFee, field.TypeInt64, value)
		_node.ConsultationFee = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(staff.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.LastLoginAt(); ok {
		_spec.SetField(staff.FieldLastLoginAt, field.TypeTime, value)
		_node.LastLoginAt = &value
	}
	if value, ok := _c.mutation.FailedLoginAttempts(); ok {
		_spec.SetField(staff.FieldFailedLoginAttempts, field.TypeInt, value)
		_node.FailedLoginAttempts = value
	}
	if value, ok := _c.mutation.LockedUntil(); ok {
		_spec.SetField(staff.FieldLockedUntil, field.TypeTime, value)
		_node.LockedUntil = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Staff.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StaffUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *StaffCreate) OnConflict(opts ...sql.ConflictOption) *StaffUpsertOne {
	_c.conflict = opts
	return &StaffUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Staff.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StaffCreate) OnConflictColumns(columns ...string) *StaffUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StaffUpsertOne{
		create: _c,
	}
}

type (
	// StaffUpsertOne is the builder for "upsert"-ing
	//  one Staff node.
	StaffUpsertOne struct {
		create *StaffCreate
	}

	// StaffUpsert is the "OnConflict" setter.
	StaffUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *StaffUpsert) SetUpdatedAt(v time.Time) *StaffUpsert {
	u.Set(staff.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StaffUpsert) UpdateUpdatedAt() *StaffUpsert {
	u.SetExcluded(staff.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *StaffUpsert) SetDeletedAt(v time.Time) *StaffUpsert {
	u.Set(staff.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *StaffUpsert) UpdateDeletedAt() *StaffUpsert {
	u.SetExcluded(staff.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *StaffUpsert) ClearDeletedAt() *StaffUpsert {
	u.SetNull(staff.FieldDeletedAt)
	return u
}

// SetFirstName sets the "first_name" field.
func (u *StaffUpsert) SetFirstName(v string) *StaffUpsert {
	u.Set(staff.FieldFirstName, v)
	return u
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *StaffUpsert) UpdateFirstName() *StaffUpsert {
	u.SetExcluded(staff.FieldFirstName)
	return u
}

// SetLastName sets the "last_name" field.
func (u *StaffUpsert) SetLastName(v string) *StaffUpsert {
	u.Set(staff.FieldLastName, v)
	return u
}

// UpdateLastName sets the "last_name" field to the value that was provided on create.
func (u *StaffUpsert) UpdateLastName() *StaffUpsert {
	u.SetExcluded(staff.FieldLastName)
	return u
}

// SetPhone sets the "phone" field.
func (u *StaffUpsert) SetPhone(v string) *StaffUpsert {
	u.Set(staff.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *StaffUpsert) UpdatePhone() *StaffUpsert {
	u.SetExcluded(staff.FieldPhone)
	return u
}

// SetEmail sets the "email" field.
func (u *StaffUpsert) SetEmail(v string) *StaffUpsert {
	u.Set(staff.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *StaffUpsert) UpdateEmail() *StaffUpsert {
	u.SetExcluded(staff.FieldEmail)
	return u
}

// ClearEmail clears the value of the "email" field.
func (u *StaffUpsert) ClearEmail() *StaffUpsert {
	u.SetNull(staff.FieldEmail)
	return u
}

// SetPasswordHash sets the "password_hash" field.
func (u *StaffUpsert) SetPasswordHash(v string) *StaffUpsert {
	u.Set(staff.FieldPasswordHash, v)
	return u
}

// UpdatePasswordHash sets the "password_hash" field to the value that was provided on create.
func (u *StaffUpsert) UpdatePasswordHash() *StaffUpsert {
	u.SetExcluded(staff.FieldPasswordHash)
	return u
}

// SetMustChangePassword sets the "must_change_password" field.
func (u *StaffUpsert) SetMustChangePassword(v bool) *StaffUpsert {
	u.Set(staff.FieldMustChangePassword, v)
	return u
}

// UpdateMustChangePassword sets the "must_change_password" field to the value that was provided on create.
func (u *StaffUpsert) UpdateMustChangePassword() *StaffUpsert {
	u.SetExcluded(staff.FieldMustChangePassword)
	return u
}

// SetRole sets the "role" field.
func (u *StaffUpsert) SetRole(v staff.Role) *StaffUpsert {
	u.Set(staff.FieldRole, v)
	return u
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *StaffUpsert) UpdateRole() *StaffUpsert {
	u.SetExcluded(staff.FieldRole)
	return u
}

// SetSpecialization sets the "specialization" field.
func (u *StaffUpsert) SetSpecialization(v string) *StaffUpsert {
	u.Set(staff.FieldSpecialization, v)
	return u
}

// UpdateSpecialization sets the "specialization" field to the value that was provided on create.
func (u *StaffUpsert) UpdateSpecialization() *StaffUpsert {
	u.SetExcluded(staff.FieldSpecialization)
	return u
}

// ClearSpecialization clears the value of the "specialization" field.
func (u *StaffUpsert) ClearSpecialization() *StaffUpsert {
	u.SetNull(staff.FieldSpecialization)
	return u
}

// SetLicenseNumber sets the "license_number" field.
func (u *StaffUpsert) SetLicenseNumber(v string) *StaffUpsert {
	u.Set(staff.FieldLicenseNumber, v)
	return u
}

// UpdateLicenseNumber sets the "license_number" field to the value that was provided on create.
func (u *StaffUpsert) UpdateLicenseNumber() *StaffUpsert {
	u.SetExcluded(staff.FieldLicenseNumber)
	return u
}

// ClearLicenseNumber clears the value of the "license_number" field.
func (u *StaffUpsert) ClearLicenseNumber() *StaffUpsert {
	u.SetNull(staff.FieldLicenseNumber)
	return u
}

// SetConsultationFee sets the "consultation_fee" field.
func (u *StaffUpsert) SetConsultationFee(v int64) *StaffUpsert {
	u.Set(staff.FieldConsultationFee, v)
	return u
}

// UpdateConsultationFee sets the "consultation_fee" field to the value that was provided on create.
func (u *StaffUpsert) UpdateConsultationFee() *StaffUpsert {
	u.SetExcluded(staff.FieldConsultationFee)
	return u
}

// AddConsultationFee adds v to the "consultation_fee" field.
func (u *StaffUpsert) AddConsultationFee(v int64) *StaffUpsert {
	u.Add(staff.FieldConsultationFee, v)
	return u
}

// SetStatus sets the "status" field.
func (u *StaffUpsert) SetStatus(v staff.Status) *StaffUpsert {
	u.Set(staff.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StaffUpsert) UpdateStatus() *StaffUpsert {
	u.SetExcluded(staff.FieldStatus)
	return u
}

// SetLastLoginAt sets the "last_login_at" field.
func (u *StaffUpsert) SetLastLoginAt(v time.Time) *StaffUpsert {
	u.Set(staff.FieldLastLoginAt, v)
	return u
}

// UpdateLastLoginAt sets the "last_login_at" field to the value that was provided on create.
func (u *StaffUpsert) UpdateLastLoginAt() *StaffUpsert {
	u.SetExcluded(staff.FieldLastLoginAt)
	return u
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (u *StaffUpsert) ClearLastLoginAt() *StaffUpsert {
	u.SetNull(staff.FieldLastLoginAt)
	return u
}

// SetFailedLoginAttempts sets the "failed_login_attempts" field.
func (u *StaffUpsert) SetFailedLoginAttempts(v int) *StaffUpsert {
	u.Set(staff.FieldFailedLoginAttempts, v)
	return u
}

// UpdateFailedLoginAttempts sets the "failed_login_attempts" field to the value that was provided on create.
func (u *StaffUpsert) UpdateFailedLoginAttempts() *StaffUpsert {
	u.SetExcluded(staff.FieldFailedLoginAttempts)
	return u
}

// AddFailedLoginAttempts adds v to the "failed_login_attempts" field.
func (u *StaffUpsert) AddFailedLoginAttempts(v int) *StaffUpsert {
	u.Add(staff.FieldFailedLoginAttempts, v)
	return u
}

// SetLockedUntil sets the "locked_until" field.
func (u *StaffUpsert) SetLockedUntil(v time.Time) *StaffUpsert {
	u.Set(staff.FieldLockedUntil, v)
	return u
}

// UpdateLockedUntil sets the "locked_until" field to the value that was provided on create.
func (u *StaffUpsert) UpdateLockedUntil() *StaffUpsert {
	u.SetExcluded(staff.FieldLockedUntil)
	return u
}

// ClearLockedUntil clears the value of the "locked_until" field.
func (u *StaffUpsert) ClearLockedUntil() *StaffUpsert {
	u.SetNull(staff.FieldLockedUntil)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Staff.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(staff.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StaffUpsertOne) UpdateNewValues() *StaffUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(staff.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(staff.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Staff.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StaffUpsertOne) Ignore() *StaffUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StaffUpsertOne) DoNothing() *StaffUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StaffCreate.OnConflict
// documentation for more info.
func (u *StaffUpsertOne) Update(set func(*StaffUpsert)) *StaffUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StaffUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StaffUpsertOne) SetUpdatedAt(v time.Time) *StaffUpsertOne {
	return u.Update(func(s *StaffUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StaffUpsertOne) UpdateUpdatedAt() *StaffUpsertOne {
	return u.Update(func(s *StaffUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *StaffUpsertOne) SetDeletedAt(v time.Time) *StaffUpsertOne {
	return u.Update(func(s *StaffUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *StaffUpsertOne) UpdateDeletedAt() *StaffUpsertOne {
	return u.Update(func(s *StaffUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *StaffUpsertOne) ClearDeletedAt() *StaffUpsertOne {
	return u.Update(func(s *StaffUpsert) {
		s.ClearDeletedAt()
	})
}

// SetFirstName sets the "first_name" field.
func (u *StaffUpsertOne) SetFirstName(v string) *StaffUpsertOne {
	return u.Update(func(s *StaffUpsert) {
		s.SetFirstName(v)
	})
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *StaffUpsertOne) UpdateFirstName() *StaffUpsertOne {
	return u.Update(func(s *StaffUpsert) {
		s.UpdateFirstName()
	})
}

// SetLastName sets the "last_name" field.
func (u *StaffUpsertOne) SetLastName(v string) *StaffUpsertOne {
	return u.Update(func(s *StaffUpsert) {
		s.SetLastName(v)
	})
}

// UpdateLastName sets the "last_name" field to the value that was provided on create.
func (u *StaffUpsertOne) UpdateLastName() *StaffUpsertOne {
	return u.Update(func(s *StaffUpsert) {
		s.UpdateLastName()
	})
}

// SetPhone sets the "phone" field.
func (u *StaffUpsertOne) SetPhone(v string) *StaffUpsertOne {
	return u.Update(func(s *StaffUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *StaffUpsertOne) UpdatePhone() *StaffUpsertOne {
	return u.Update(func(s *StaffUpsert) {
		s.UpdatePhone()
	})
}

// SetEmail sets the "email" field.
func (u *StaffUpsertOne) SetEmail(v string) *StaffUpsertOne {
	return u.Update(func(s *StaffUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *StaffUpsertOne) UpdateEmail() *StaffUpsertOne {
	return u.Update(func(s *StaffUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *StaffUpsertOne) ClearEmail() *StaffUpsertOne {
	return u.Update(func(s *StaffUpsert) {
		s.ClearEmail()
	})
}

// SetPasswordHash sets the "password_hash" field.
func (u *StaffUpsertOne) SetPasswordHash(v string) *StaffUpsertOne {
	return u.Update(func(s *StaffUpsert) {
		s.SetPasswordHash(v)
	})
}

// UpdatePasswordHash sets the "password_hash" field to the value that was provided on create.
func (u *StaffUpsertOne) UpdatePasswordHash() *StaffUpsertOne {
	return u.Update(func(s *StaffUpsert) {
		s.UpdatePasswordHash()
	})
}

// SetMustChangePassword sets the "must_change_password" field.
func (u *StaffUpsertOne) SetMustChangePassword(v bool) *StaffUpsertOne {
	return u.Update(func(s *StaffUpsert) {
		s.SetMustChangePassword(v)
	})
}

// UpdateMustChangePassword sets the "must_change_password" field to the value that was provided on create.
func (u *StaffUpsertOne) UpdateMustChangePassword() *StaffUpsertOne {
	return u.Update(func(s *StaffUpsert) {
		s.UpdateMustChangePassword()
	})
}

// SetRole sets the "role" field.
func (u *StaffUpsertOne) SetRole(v staff.Role) *StaffUpsertOne {
	return u.Update(func(s *StaffUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *StaffUpsertOne) UpdateRole() *StaffUpsertOne {
	return u.Update(func(s *StaffUpsert) {
		s.UpdateRole()
	})
}

// SetSpecialization sets the "specialization" field.
func (u *StaffUpsertOne) SetSpecialization(v string) *StaffUpsertOne {
	return u.Update(func(s *StaffUpsert) {
		s.SetSpecialization(v)
	})
}

// UpdateSpecialization sets the "specialization" field to the value that was provided on create.
func (u *StaffUpsertOne) UpdateSpecialization() *StaffUpsertOne {
	return u.Update(func(s *StaffUpsert) {
		s.UpdateSpecialization()
	})
}

// ClearSpecialization clears the value of the "specialization" field.
func (u *StaffUpsertOne) ClearSpecialization() *StaffUpsertOne {
	return u.Update(func(s *StaffUpsert) {
		s.ClearSpecialization()
	})
}

// SetLicenseNumber sets the "license_number" field.
func (u *StaffUpsertOne) SetLicenseNumber(v string) *StaffUpsertOne {
	return u.Update(func(s *StaffUpsert) {
		s.SetLicenseNumber(v)
	})
}

// UpdateLicenseNumber sets the "license_number" field to the value that was provided on create.
func (u *StaffUpsertOne) UpdateLicenseNumber() *StaffUpsertOne {
	return u.Update(func(s *StaffUpsert) {
		s.UpdateLicenseNumber()
	})
}

// ClearLicenseNumber clears the value of the "license_number" field.
func (u *StaffUpsertOne) ClearLicenseNumber() *StaffUpsertOne {
	return u.Update(func(s *StaffUpsert) {
		s.ClearLicenseNumber()
	})
}

// SetConsultationFee sets the "consultation_fee" field.
func (u *StaffUpsertOne) SetConsultationFee(v int64) *StaffUpsertOne {
	return u.Update(func(s *StaffUpsert) {
		s.SetConsultationFee(v)
	})
}

// AddConsultationFee adds v to the "consultation_fee" field.
func (u *StaffUpsertOne) AddConsultationFee(v int64) *StaffUpsertOne {
	return u.Update(func(s *StaffUpsert) {
		s.AddConsultationFee(v)
	})
}

// UpdateConsultationFee sets the "consultation_fee" field to the value that was provided on create.
func (u *StaffUpsertOne) UpdateConsultationFee() *StaffUpsertOne {
	return u.Update(func(s *StaffUpsert) {
		s.UpdateConsultationFee()
	})
}

// SetStatus sets the "status" field.
func (u *StaffUpsertOne) SetStatus(v staff.Status) *StaffUpsertOne {
	return u.Update(func(s *StaffUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StaffUpsertOne) UpdateStatus() *StaffUpsertOne {
	return u.Update(func(s *StaffUpsert) {
		s.UpdateStatus()
	})
}

// SetLastLoginAt sets the "last_login_at" field.
func (u *StaffUpsertOne) SetLastLoginAt(v time.Time) *StaffUpsertOne {
	return u.Update(func(s *StaffUpsert) {
		s.SetLastLoginAt(v)
	})
}

// UpdateLastLoginAt sets the "last_login_at" field to the value that was provided on create.
func (u *StaffUpsertOne) UpdateLastLoginAt() *StaffUpsertOne {
	return u.Update(func(s *StaffUpsert) {
		s.UpdateLastLoginAt()
	})
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (u *StaffUpsertOne) ClearLastLoginAt() *StaffUpsertOne {
	return u.Update(func(s *StaffUpsert) {
		s.ClearLastLoginAt()
	})
}

// SetFailedLoginAttempts sets the "failed_login_attempts" field.
func (u *StaffUpsertOne) SetFailedLoginAttempts(v int) *StaffUpsertOne {
	return u.Update(func(s *StaffUpsert) {
		s.SetFailedLoginAttempts(v)
	})
}

// AddFailedLoginAttempts adds v to the "failed_login_attempts" field.
func (u *StaffUpsertOne) AddFailedLoginAttempts(v int) *StaffUpsertOne {
	return u.Update(func(s *StaffUpsert) {
		s.AddFailedLoginAttempts(v)
	})
}

// UpdateFailedLoginAttempts sets the "failed_login_attempts" field to the value that was provided on create.
func (u *StaffUpsertOne) UpdateFailedLoginAttempts() *StaffUpsertOne {
	return u.Update(func(s *StaffUpsert) {
		s.UpdateFailedLoginAttempts()
	})
}

// SetLockedUntil sets the "locked_until" field.
func (u *StaffUpsertOne) SetLockedUntil(v time.Time) *StaffUpsertOne {
	return u.Update(func(s *StaffUpsert) {
		s.SetLockedUntil(v)
	})
}

// UpdateLockedUntil sets the "locked_until" field to the value that was provided on create.
func (u *StaffUpsertOne) UpdateLockedUntil() *StaffUpsertOne {
	return u.Update(func(s *StaffUpsert) {
		s.UpdateLockedUntil()
	})
}

// ClearLockedUntil clears the value of the "locked_until" field.
func (u *StaffUpsertOne) ClearLockedUntil() *StaffUpsertOne {
	return u.Update(func(s *StaffUpsert) {
		s.ClearLockedUntil()
	})
}

// Exec executes the query.
func (u *StaffUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for StaffCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StaffUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StaffUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: StaffUpsertOne.ID is not supported by MySQL driver. Use StaffUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StaffUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StaffCreateBulk is the builder for creating many Staff entities in bulk.
type StaffCreateBulk struct {
	config
	err      error
	builders []*StaffCreate
	conflict []sql.ConflictOption
}

// Save creates the Staff entities in the database.
func (_c *StaffCreateBulk) Save(ctx context.Context) ([]*Staff, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Staff, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StaffMutation)
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
func (_c *StaffCreateBulk) SaveX(ctx context.Context) []*Staff {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StaffCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StaffCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Staff.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StaffUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *StaffCreateBulk) OnConflict(opts ...sql.ConflictOption) *StaffUpsertBulk {
	_c.conflict = opts
	return &StaffUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Staff.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StaffCreateBulk) OnConflictColumns(columns ...string) *StaffUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StaffUpsertBulk{
		create: _c,
	}
}

// StaffUpsertBulk is the builder for "upsert"-ing
// a bulk of Staff nodes.
type StaffUpsertBulk struct {
	create *StaffCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Staff.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(staff.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StaffUpsertBulk) UpdateNewValues() *StaffUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(staff.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(staff.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Staff.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StaffUpsertBulk) Ignore() *StaffUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StaffUpsertBulk) DoNothing() *StaffUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StaffCreateBulk.OnConflict
// documentation for more info.
func (u *StaffUpsertBulk) Update(set func(*StaffUpsert)) *StaffUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StaffUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StaffUpsertBulk) SetUpdatedAt(v time.Time) *StaffUpsertBulk {
	return u.Update(func(s *StaffUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StaffUpsertBulk) UpdateUpdatedAt() *StaffUpsertBulk {
	return u.Update(func(s *StaffUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *StaffUpsertBulk) SetDeletedAt(v time.Time) *StaffUpsertBulk {
	return u.Update(func(s *StaffUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *StaffUpsertBulk) UpdateDeletedAt() *StaffUpsertBulk {
	return u.Update(func(s *StaffUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *StaffUpsertBulk) ClearDeletedAt() *StaffUpsertBulk {
	return u.Update(func(s *StaffUpsert) {
		s.ClearDeletedAt()
	})
}

// SetFirstName sets the "first_name" field.
func (u *StaffUpsertBulk) SetFirstName(v string) *StaffUpsertBulk {
	return u.Update(func(s *StaffUpsert) {
		s.SetFirstName(v)
	})
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *StaffUpsertBulk) UpdateFirstName() *StaffUpsertBulk {
	return u.Update(func(s *StaffUpsert) {
		s.UpdateFirstName()
	})
}

// SetLastName sets the "last_name" field.
func (u *StaffUpsertBulk) SetLastName(v string) *StaffUpsertBulk {
	return u.Update(func(s *StaffUpsert) {
		s.SetLastName(v)
	})
}

// UpdateLastName sets the "last_name" field to the value that was provided on create.
func (u *StaffUpsertBulk) UpdateLastName() *StaffUpsertBulk {
	return u.Update(func(s *StaffUpsert) {
		s.UpdateLastName()
	})
}

// SetPhone sets the "phone" field.
func (u *StaffUpsertBulk) SetPhone(v string) *StaffUpsertBulk {
	return u.Update(func(s *StaffUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *StaffUpsertBulk) UpdatePhone() *StaffUpsertBulk {
	return u.Update(func(s *StaffUpsert) {
		s.UpdatePhone()
	})
}

// SetEmail sets the "email" field.
func (u *StaffUpsertBulk) SetEmail(v string) *StaffUpsertBulk {
	return u.Update(func(s *StaffUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *StaffUpsertBulk) UpdateEmail() *StaffUpsertBulk {
	return u.Update(func(s *StaffUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *StaffUpsertBulk) ClearEmail() *StaffUpsertBulk {
	return u.Update(func(s *StaffUpsert) {
		s.ClearEmail()
	})
}

// SetPasswordHash sets the "password_hash" field.
func (u *StaffUpsertBulk) SetPasswordHash(v string) *StaffUpsertBulk {
	return u.Update(func(s *StaffUpsert) {
		s.SetPasswordHash(v)
	})
}

// UpdatePasswordHash sets the "password_hash" field to the value that was provided on create.
func (u *StaffUpsertBulk) UpdatePasswordHash() *StaffUpsertBulk {
	return u.Update(func(s *StaffUpsert) {
		s.UpdatePasswordHash()
	})
}

// SetMustChangePassword sets the "must_change_password" field.
func (u *StaffUpsertBulk) SetMustChangePassword(v bool) *StaffUpsertBulk {
	return u.Update(func(s *StaffUpsert) {
		s.SetMustChangePassword(v)
	})
}

// UpdateMustChangePassword sets the "must_change_password" field to the value that was provided on create.
func (u *StaffUpsertBulk) UpdateMustChangePassword() *StaffUpsertBulk {
	return u.Update(func(s *StaffUpsert) {
		s.UpdateMustChangePassword()
	})
}

// SetRole sets the "role" field.
func (u *StaffUpsertBulk) SetRole(v staff.Role) *StaffUpsertBulk {
	return u.Update(func(s *StaffUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *StaffUpsertBulk) UpdateRole() *StaffUpsertBulk {
	return u.Update(func(s *StaffUpsert) {
		s.UpdateRole()
	})
}

// SetSpecialization sets the "specialization" field.
func (u *StaffUpsertBulk) SetSpecialization(v string) *StaffUpsertBulk {
	return u.Update(func(s *StaffUpsert) {
		s.SetSpecialization(v)
	})
}

// UpdateSpecialization sets the "specialization" field to the value that was provided on create.
func (u *StaffUpsertBulk) UpdateSpecialization() *StaffUpsertBulk {
	return u.Update(func(s *StaffUpsert) {
		s.UpdateSpecialization()
	})
}

// ClearSpecialization clears the value of the "specialization" field.
func (u *StaffUpsertBulk) ClearSpecialization() *StaffUpsertBulk {
	return u.Update(func(s *StaffUpsert) {
		s.ClearSpecialization()
	})
}

// SetLicenseNumber sets the "license_number" field.
func (u *StaffUpsertBulk) SetLicenseNumber(v string) *StaffUpsertBulk {
	return u.Update(func(s *StaffUpsert) {
		s.SetLicenseNumber(v)
	})
}

// UpdateLicenseNumber sets the "license_number" field to the value that was provided on create.
func (u *StaffUpsertBulk) UpdateLicenseNumber() *StaffUpsertBulk {
	return u.Update(func(s *StaffUpsert) {
		s.UpdateLicenseNumber()
	})
}

// ClearLicenseNumber clears the value of the "license_number" field.
func (u *StaffUpsertBulk) ClearLicenseNumber() *StaffUpsertBulk {
	return u.Update(func(s *StaffUpsert) {
		s.ClearLicenseNumber()
	})
}

// SetConsultationFee sets the "consultation_fee" field.
func (u *StaffUpsertBulk) SetConsultationFee(v int64) *StaffUpsertBulk {
	return u.Update(func(s *StaffUpsert) {
		s.SetConsultationFee(v)
	})
}

// AddConsultationFee adds v to the "consultation_fee" field.
func (u *StaffUpsertBulk) AddConsultationFee(v int64) *StaffUpsertBulk {
	return u.Update(func(s *StaffUpsert) {
		s.AddConsultationFee(v)
	})
}

// UpdateConsultationFee sets the "consultation_fee" field to the value that was provided on create.
func (u *StaffUpsertBulk) UpdateConsultationFee() *StaffUpsertBulk {
	return u.Update(func(s *StaffUpsert) {
		s.UpdateConsultationFee()
	})
}

// SetStatus sets the "status" field.
func (u *StaffUpsertBulk) SetStatus(v staff.Status) *StaffUpsertBulk {
	return u.Update(func(s *StaffUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StaffUpsertBulk) UpdateStatus() *StaffUpsertBulk {
	return u.Update(func(s *StaffUpsert) {
		s.UpdateStatus()
	})
}

// SetLastLoginAt sets the "last_login_at" field.
func (u *StaffUpsertBulk) SetLastLoginAt(v time.Time) *StaffUpsertBulk {
	return u.Update(func(s *StaffUpsert) {
		s.SetLastLoginAt(v)
	})
}

// UpdateLastLoginAt sets the "last_login_at" field to the value that was provided on create.
func (u *StaffUpsertBulk) UpdateLastLoginAt() *StaffUpsertBulk {
	return u.Update(func(s *StaffUpsert) {
		s.UpdateLastLoginAt()
	})
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (u *StaffUpsertBulk) ClearLastLoginAt() *StaffUpsertBulk {
	return u.Update(func(s *StaffUpsert) {
		s.ClearLastLoginAt()
	})
}

// SetFailedLoginAttempts sets the "failed_login_attempts" field.
func (u *StaffUpsertBulk) SetFailedLoginAttempts(v int) *StaffUpsertBulk {
	return u.Update(func(s *StaffUpsert) {
		s.SetFailedLoginAttempts(v)
	})
}

// AddFailedLoginAttempts adds v to the "failed_login_attempts" field.
func (u *StaffUpsertBulk) AddFailedLoginAttempts(v int) *StaffUpsertBulk {
	return u.Update(func(s *StaffUpsert) {
		s.AddFailedLoginAttempts(v)
	})
}

// UpdateFailedLoginAttempts sets the "failed_login_attempts" field to the value that was provided on create.
func (u *StaffUpsertBulk) UpdateFailedLoginAttempts() *StaffUpsertBulk {
	return u.Update(func(s *StaffUpsert) {
		s.UpdateFailedLoginAttempts()
	})
}

// SetLockedUntil sets the "locked_until" field.
func (u *StaffUpsertBulk) SetLockedUntil(v time.Time) *StaffUpsertBulk {
	return u.Update(func(s *StaffUpsert) {
		s.SetLockedUntil(v)
	})
}

// UpdateLockedUntil sets the "locked_until" field to the value that was provided on create.
func (u *StaffUpsertBulk) UpdateLockedUntil() *StaffUpsertBulk {
	return u.Update(func(s *StaffUpsert) {
		s.UpdateLockedUntil()
	})
}

// ClearLockedUntil clears the value of the "locked_until" field.
func (u *StaffUpsertBulk) ClearLockedUntil() *StaffUpsertBulk {
	return u.Update(func(s *StaffUpsert) {
		s.ClearLockedUntil()
	})
}

// Exec executes the query.
func (u *StaffUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the StaffCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for StaffCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StaffUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
