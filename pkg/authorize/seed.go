package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the system.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	// System-level policies (domain: sys)
	sysPolicies := []PermissionPolicy{
		// SuperAdmin: god mode
		{RoleSysSuperAdmin, DomainSys, WildcardResource, WildcardAction, EffectAllow},
	}

	// Hospital policies (domain: hospital)
	hospitalPolicies := []PermissionPolicy{
		// Admin: full control over every hospital resource, including
		// staff management, RBAC grants and the finance module.
		{RoleHospitalAdmin, DomainHospital, WildcardResource, WildcardAction, EffectAllow},

		// Receptionist: the front desk. Registers patients, books
		// appointments, drives the queue and takes payments.
		{RoleHospitalReceptionist, DomainHospital, ResourcePatient, ActionManage, EffectAllow},
		{RoleHospitalReceptionist, DomainHospital, ResourceAppointment, ActionManage, EffectAllow},
		{RoleHospitalReceptionist, DomainHospital, ResourceQueue, ActionManage, EffectAllow},
		{RoleHospitalReceptionist, DomainHospital, ResourceQueue, ActionExecute, EffectAllow},
		{RoleHospitalReceptionist, DomainHospital, ResourceSchedule, ActionRead, EffectAllow},
		{RoleHospitalReceptionist, DomainHospital, ResourceSchedule, ActionList, EffectAllow},
		{RoleHospitalReceptionist, DomainHospital, ResourceStaff, ActionList, EffectAllow},
		{RoleHospitalReceptionist, DomainHospital, ResourceIncome, ActionCreate, EffectAllow},

		// Doctor: runs their own queue, reads patient history, writes
		// prescriptions and orders lab work.
		{RoleHospitalDoctor, DomainHospital, ResourcePatient, ActionRead, EffectAllow},
		{RoleHospitalDoctor, DomainHospital, ResourcePatient, ActionList, EffectAllow},
		{RoleHospitalDoctor, DomainHospital, ResourceQueue, ActionRead, EffectAllow},
		{RoleHospitalDoctor, DomainHospital, ResourceQueue, ActionExecute, EffectAllow},
		{RoleHospitalDoctor, DomainHospital, ResourceAppointment, ActionRead, EffectAllow},
		{RoleHospitalDoctor, DomainHospital, ResourceAppointment, ActionList, EffectAllow},
		{RoleHospitalDoctor, DomainHospital, ResourcePrescription, ActionManage, EffectAllow},
		{RoleHospitalDoctor, DomainHospital, ResourceLabOrder, ActionCreate, EffectAllow},
		{RoleHospitalDoctor, DomainHospital, ResourceLabOrder, ActionRead, EffectAllow},
		{RoleHospitalDoctor, DomainHospital, ResourceLabResult, ActionRead, EffectAllow},
		{RoleHospitalDoctor, DomainHospital, ResourceSchedule, ActionRead, EffectAllow},

		// Lab technician: works the order pipeline and enters results.
		{RoleHospitalLabTech, DomainHospital, ResourceLabTest, ActionManage, EffectAllow},
		{RoleHospitalLabTech, DomainHospital, ResourceLabOrder, ActionManage, EffectAllow},
		{RoleHospitalLabTech, DomainHospital, ResourceLabOrder, ActionExecute, EffectAllow},
		{RoleHospitalLabTech, DomainHospital, ResourceLabResult, ActionManage, EffectAllow},
		{RoleHospitalLabTech, DomainHospital, ResourceLabResult, ActionExecute, EffectAllow},
		{RoleHospitalLabTech, DomainHospital, ResourcePatient, ActionRead, EffectAllow},
		{RoleHospitalLabTech, DomainHospital, ResourceIncome, ActionCreate, EffectAllow},

		// Pharmacist: inventory and dispensing.
		{RoleHospitalPharmacist, DomainHospital, ResourceDrug, ActionManage, EffectAllow},
		{RoleHospitalPharmacist, DomainHospital, ResourcePharmacySale, ActionManage, EffectAllow},
		{RoleHospitalPharmacist, DomainHospital, ResourcePrescription, ActionRead, EffectAllow},
		{RoleHospitalPharmacist, DomainHospital, ResourcePatient, ActionRead, EffectAllow},
		{RoleHospitalPharmacist, DomainHospital, ResourceIncome, ActionCreate, EffectAllow},

		// Canteen staff: menu and counter sales.
		{RoleHospitalCanteenStaff, DomainHospital, ResourceCanteenItem, ActionManage, EffectAllow},
		{RoleHospitalCanteenStaff, DomainHospital, ResourceCanteenSale, ActionManage, EffectAllow},
		{RoleHospitalCanteenStaff, DomainHospital, ResourceIncome, ActionCreate, EffectAllow},

		// Display: the waiting-room screen. Read-only access to the
		// now-serving feed, nothing else.
		{RoleHospitalDisplay, DomainHospital, ResourceDisplay, ActionRead, EffectAllow},
		{RoleHospitalDisplay, DomainHospital, ResourceQueue, ActionRead, EffectAllow},
	}

	allPolicies := append(sysPolicies, hospitalPolicies...)

	for _, p := range allPolicies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(allPolicies))
	return nil
}

// AssignStaffRole grants the Casbin role matching a staff member's DB role.
// Call this when creating a staff account or changing its role.
func AssignStaffRole(ctx context.Context, auth IAuthorization, staffID, staffRole string) error {
	role, ok := StaffRoleToRBACRole[staffRole]
	if !ok {
		return ErrInvalidArgs
	}

	_, err := auth.AddRoleForUserInDomain(ctx, GroupSubject(staffID), role, DomainHospital)
	return err
}

// RemoveStaffRole revokes the Casbin role matching a staff member's DB role.
func RemoveStaffRole(ctx context.Context, auth IAuthorization, staffID, staffRole string) error {
	role, ok := StaffRoleToRBACRole[staffRole]
	if !ok {
		return ErrInvalidArgs
	}

	_, err := auth.RemoveRoleForUserInDomain(ctx, GroupSubject(staffID), role, DomainHospital)
	return err
}

// GetStaffRoles returns all hospital roles assigned to a staff member.
func GetStaffRoles(ctx context.Context, auth IAuthorization, staffID string) ([]Role, error) {
	return auth.GetRolesForUserInDomain(ctx, GroupSubject(staffID), DomainHospital)
}

// AssignSuperAdmin grants the system superadmin role.
// Intended for bootstrap (system init) only.
func AssignSuperAdmin(ctx context.Context, auth IAuthorization, staffID string) error {
	_, err := auth.AddRoleForUserInDomain(ctx, GroupSubject(staffID), RoleSysSuperAdmin, DomainSys)
	return err
}
