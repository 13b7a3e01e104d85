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
	ActionManage Action = "manage" // CRUD + list

	// Appointment lifecycle actions
	ActionConfirm  Action = "confirm"
	ActionCancel   Action = "cancel"
	ActionComplete Action = "complete"

	// RBAC-specific actions
	ActionGrant  Action = "grant"
	ActionRevoke Action = "revoke"
)

const (
	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {}, ActionList: {},
	ActionManage:  {},
	ActionConfirm: {}, ActionCancel: {}, ActionComplete: {},
	ActionGrant: {}, ActionRevoke: {},
}

// ----------------------------
// Resources
// ----------------------------

const (
	WildcardResource Resource = "*"

	// Identity / auth
	ResourceUser        Resource = "user"
	ResourceAuthSession Resource = "auth_session"

	// Scheduling
	ResourceAvailabilitySlot Resource = "availability_slot"
	ResourceTimeOff          Resource = "time_off"
	ResourceAppointment      Resource = "appointment"
	ResourceReschedule       Resource = "reschedule"

	// Feedback
	ResourceRating Resource = "rating"

	// Communication
	ResourceConversation Resource = "conversation"
	ResourceMessage      Resource = "message"
	ResourceNotification Resource = "notification"

	// Medical records
	ResourceLabReport          Resource = "lab_report"
	ResourceMedicalHistory     Resource = "medical_history"
	ResourceMedication         Resource = "medication"
	ResourceMedicationProgress Resource = "medication_progress"
	ResourcePrescription       Resource = "prescription"

	// Integrations
	ResourceCalendarCredential Resource = "calendar_credential"

	// System / platform admin
	ResourceSystem Resource = "system"
	ResourceAudit  Resource = "audit"
	ResourceRBAC   Resource = "rbac"
)

var KnownResources = map[Resource]struct{}{
	ResourceUser: {}, ResourceAuthSession: {},
	ResourceAvailabilitySlot: {}, ResourceTimeOff: {}, ResourceAppointment: {}, ResourceReschedule: {},
	ResourceRating:       {},
	ResourceConversation: {}, ResourceMessage: {}, ResourceNotification: {},
	ResourceLabReport: {}, ResourceMedicalHistory: {}, ResourceMedication: {}, ResourceMedicationProgress: {},
	ResourcePrescription: {},
	ResourceCalendarCredential: {},
	ResourceSystem:             {}, ResourceAudit: {}, ResourceRBAC: {},
}

// ----------------------------
// Roles
// ----------------------------
//
// These are the "policy subjects" we assign to users via grouping policies.
// All roles live in the single sys domain: the platform has no tenancy, a
// doctor is a doctor everywhere.

const (
	WildcardRole Role = "*"

	RoleAdmin   Role = "role:sys:admin"
	RoleDoctor  Role = "role:sys:doctor"
	RolePatient Role = "role:sys:patient"
)

var KnownRoles = map[Role]struct{}{
	RoleAdmin:   {},
	RoleDoctor:  {},
	RolePatient: {},
}

// User role strings (stored in DB users.role column and token claims)
const (
	UserRoleAdmin   = "admin"
	UserRoleDoctor  = "doctor"
	UserRolePatient = "patient"
)

// UserRoleToRBACRole maps DB/token role values to Casbin roles.
var UserRoleToRBACRole = map[string]Role{
	UserRoleAdmin:   RoleAdmin,
	UserRoleDoctor:  RoleDoctor,
	UserRolePatient: RolePatient,
}

// ----------------------------
// Domains
// ----------------------------

const (
	DomainSys Domain = "sys"
)

const (
	WildcardDomain Domain = "*"
)

// IsValidDomain checks whether d is a recognised domain string.
func IsValidDomain(d Domain) bool {
	return d == DomainSys || d == WildcardDomain
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
