package authorize

import (
	"testing"
)

func TestIsValidDomain(t *testing.T) {
	tests := []struct {
		name     string
		domain   Domain
		expected bool
	}{
		// Valid domains
		{"sys domain", DomainSys, true},
		{"hospital domain", DomainHospital, true},
		{"wildcard domain", WildcardDomain, true},

		// Invalid domains
		{"empty domain", Domain(""), false},
		{"random string", Domain("random"), false},
		{"legacy scoped domain", Domain("hospital:550e8400-e29b-41d4-a716-446655440000"), false},
		{"casing matters", Domain("Hospital"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidDomain(tt.domain)
			if result != tt.expected {
				t.Errorf("IsValidDomain(%q) = %v, want %v", tt.domain, result, tt.expected)
			}
		})
	}
}

func TestKnownActions(t *testing.T) {
	// Verify all declared actions are in the known map
	actions := []Action{
		ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionList,
		ActionManage, ActionExecute,
		ActionGrant, ActionRevoke,
	}

	for _, a := range actions {
		if _, ok := KnownActions[a]; !ok {
			t.Errorf("action %q missing from KnownActions", a)
		}
	}

	if _, ok := KnownActions[WildcardAction]; ok {
		t.Error("wildcard action should not be in KnownActions")
	}
}

func TestKnownRoles(t *testing.T) {
	roles := []Role{
		RoleSysSuperAdmin,
		RoleHospitalAdmin, RoleHospitalDoctor, RoleHospitalReceptionist,
		RoleHospitalLabTech, RoleHospitalPharmacist, RoleHospitalCanteenStaff,
		RoleHospitalDisplay,
	}

	for _, r := range roles {
		if _, ok := KnownRoles[r]; !ok {
			t.Errorf("role %q missing from KnownRoles", r)
		}
	}
}

func TestStaffRoleToRBACRole(t *testing.T) {
	tests := []struct {
		staffRole string
		want      Role
	}{
		{"admin", RoleHospitalAdmin},
		{"doctor", RoleHospitalDoctor},
		{"receptionist", RoleHospitalReceptionist},
		{"lab_tech", RoleHospitalLabTech},
		{"pharmacist", RoleHospitalPharmacist},
		{"canteen_staff", RoleHospitalCanteenStaff},
		{"display", RoleHospitalDisplay},
	}

	for _, tt := range tests {
		t.Run(tt.staffRole, func(t *testing.T) {
			got, ok := StaffRoleToRBACRole[tt.staffRole]
			if !ok {
				t.Fatalf("no RBAC role mapped for staff role %q", tt.staffRole)
			}
			if got != tt.want {
				t.Errorf("StaffRoleToRBACRole[%q] = %q, want %q", tt.staffRole, got, tt.want)
			}
		})
	}

	// Every mapped role must also be a known role.
	for staffRole, rbacRole := range StaffRoleToRBACRole {
		if _, ok := KnownRoles[rbacRole]; !ok {
			t.Errorf("staff role %q maps to unknown RBAC role %q", staffRole, rbacRole)
		}
	}

	if _, ok := StaffRoleToRBACRole["superadmin"]; ok {
		t.Error("superadmin must not be assignable through the staff role map")
	}
}
