package authorize

type Action string
type Resource string
type Role string
type Domain string

// ----------------------------
// Actions
// ----------------------------

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"

	// Power actions
	ActionManage  Action = "manage"  // CRUD + list
	ActionExecute Action = "execute" // call-next, verify, settle, etc.

	// RBAC-specific actions
	ActionGrant  Action = "grant"
	ActionRevoke Action = "revoke"
)

const (
	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {}, ActionList: {},
	ActionManage: {}, ActionExecute: {},
	ActionGrant: {}, ActionRevoke: {},
}

// ----------------------------
// Resources
// ----------------------------

const (
	WildcardResource Resource = "*"

	// Identity / auth
	ResourceStaff       Resource = "staff"
	ResourceAuthSession Resource = "auth_session"

	// Clinical records
	ResourcePatient      Resource = "patient"
	ResourcePrescription Resource = "prescription"

	// Queue & scheduling
	ResourceAppointment Resource = "appointment"
	ResourceQueue       Resource = "queue"
	ResourceSchedule    Resource = "schedule"
	ResourceDisplay     Resource = "display"

	// Lab
	ResourceLabTest   Resource = "lab_test"
	ResourceLabOrder  Resource = "lab_order"
	ResourceLabResult Resource = "lab_result"

	// Pharmacy
	ResourceDrug         Resource = "drug"
	ResourcePharmacySale Resource = "pharmacy_sale"

	// Canteen
	ResourceCanteenItem Resource = "canteen_item"
	ResourceCanteenSale Resource = "canteen_sale"

	// Finance
	ResourceIncome        Resource = "income"
	ResourceExpense       Resource = "expense"
	ResourcePCTransaction Resource = "pc_transaction"
	ResourceFinanceReport Resource = "finance_report"

	// System / admin
	ResourceSystem Resource = "system"
	ResourceAudit  Resource = "audit"
	ResourceRBAC   Resource = "rbac"
)

var KnownResources = map[Resource]struct{}{
	ResourceStaff: {}, ResourceAuthSession: {},
	ResourcePatient: {}, ResourcePrescription: {},
	ResourceAppointment: {}, ResourceQueue: {}, ResourceSchedule: {}, ResourceDisplay: {},
	ResourceLabTest: {}, ResourceLabOrder: {}, ResourceLabResult: {},
	ResourceDrug: {}, ResourcePharmacySale: {},
	ResourceCanteenItem: {}, ResourceCanteenSale: {},
	ResourceIncome: {}, ResourceExpense: {}, ResourcePCTransaction: {}, ResourceFinanceReport: {},
	ResourceSystem: {}, ResourceAudit: {}, ResourceRBAC: {},
}

// ----------------------------
// Roles
// ----------------------------
//
// These are the "policy subjects" we assign to users via grouping policies.

const (
	WildcardRole Role = "*"

	// System role (domain = sys)
	RoleSysSuperAdmin Role = "role:sys:superadmin"

	// Hospital roles (domain = hospital)
	RoleHospitalAdmin        Role = "role:hospital:admin"
	RoleHospitalDoctor       Role = "role:hospital:doctor"
	RoleHospitalReceptionist Role = "role:hospital:receptionist"
	RoleHospitalLabTech      Role = "role:hospital:lab_tech"
	RoleHospitalPharmacist   Role = "role:hospital:pharmacist"
	RoleHospitalCanteenStaff Role = "role:hospital:canteen_staff"
	RoleHospitalDisplay      Role = "role:hospital:display"
)

var KnownRoles = map[Role]struct{}{
	RoleSysSuperAdmin:        {},
	RoleHospitalAdmin:        {},
	RoleHospitalDoctor:       {},
	RoleHospitalReceptionist: {},
	RoleHospitalLabTech:      {},
	RoleHospitalPharmacist:   {},
	RoleHospitalCanteenStaff: {},
	RoleHospitalDisplay:      {},
}

// StaffRoleToRBACRole maps staffs.role DB values to Casbin roles.
var StaffRoleToRBACRole = map[string]Role{
	"admin":         RoleHospitalAdmin,
	"doctor":        RoleHospitalDoctor,
	"receptionist":  RoleHospitalReceptionist,
	"lab_tech":      RoleHospitalLabTech,
	"pharmacist":    RoleHospitalPharmacist,
	"canteen_staff": RoleHospitalCanteenStaff,
	"display":       RoleHospitalDisplay,
}

// ----------------------------
// Domains
// ----------------------------

const (
	DomainSys Domain = "sys"

	// DomainHospital is the single tenant domain. The deployment serves one
	// hospital; the domain column stays so a multi-site rollout only needs
	// new grouping rows.
	DomainHospital Domain = "hospital"
)

const (
	WildcardDomain Domain = "*"
)

// IsValidDomain checks whether d is a recognised domain string.
func IsValidDomain(d Domain) bool {
	switch d {
	case DomainSys, DomainHospital, WildcardDomain:
		return true
	}
	return false
}

// ----------------------------
// Casbin tuple helpers
// ----------------------------

type PolicyEffect string

const (
	EffectAllow PolicyEffect = "allow"
	EffectDeny  PolicyEffect = "deny"
)

// PolicySubject is the p.sub in Casbin: either a role (preferred) or a user/service id.
type PolicySubject string

// GroupSubject is the g.sub in Casbin: a concrete principal id (user_id or service_id).
type GroupSubject string

// Grouping rows: g, user_id, role, domain
type GroupingPolicy struct {
	Subject GroupSubject
	Role    Role
	Domain  Domain
}

// Permission rows: p, role, domain, resource, action, eft
type PermissionPolicy struct {
	Subject Role
	Domain  Domain
	Object  Resource
	Action  Action
	Effect  PolicyEffect
}
