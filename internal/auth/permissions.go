package auth

// Role is a client-asserted identity tag gating capability checks.
type Role string

// Known role tags. Any other tag is denied every capability.
const (
	// RoleAdmin is the administrator role with every capability granted.
	RoleAdmin Role = "ADM"
	// RoleManager is the gym manager role (gerente).
	RoleManager Role = "GT"
	// RoleEvaluator is the read-only evaluator role (evaluador).
	RoleEvaluator Role = "EV"
)

// Capability is a named permission checked before an operation.
type Capability string

// Capability constants define the available capabilities in the system.
const (
	// CapManageUsers allows reviewing user accounts with full access.
	CapManageUsers Capability = "manage-users"
	// CapViewIncome allows reading income totals and recent records.
	CapViewIncome Capability = "view-income"
	// CapChangeStatus allows changing the system status string.
	CapChangeStatus Capability = "change-status"
	// CapManageControl allows activating the control panel.
	CapManageControl Capability = "manage-control"
)

// PermissionSet is the fixed record of capabilities granted to one role.
type PermissionSet struct {
	ManageUsers   bool
	ViewIncome    bool
	ChangeStatus  bool
	ManageControl bool
}

// grants is the immutable role table, defined at process start and never
// persisted or mutated.
var grants = map[Role]PermissionSet{
	RoleAdmin:     {ManageUsers: true, ViewIncome: true, ChangeStatus: true, ManageControl: true},
	RoleManager:   {ManageUsers: false, ViewIncome: true, ChangeStatus: true, ManageControl: true},
	RoleEvaluator: {ManageUsers: false, ViewIncome: false, ChangeStatus: false, ManageControl: false},
}

// Can reports whether the given role holds the given capability.
// Unknown roles and unknown capabilities are denied. Pure lookup, no side
// effects.
func Can(role Role, capability Capability) bool {
	set, ok := grants[role]
	if !ok {
		return false
	}

	switch capability {
	case CapManageUsers:
		return set.ManageUsers
	case CapViewIncome:
		return set.ViewIncome
	case CapChangeStatus:
		return set.ChangeStatus
	case CapManageControl:
		return set.ManageControl
	default:
		return false
	}
}

// Permissions returns the capability set granted to a role.
// Unknown roles get the zero set.
func Permissions(role Role) PermissionSet {
	return grants[role]
}
