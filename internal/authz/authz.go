package authz

// Principal is the resolved identity and role of a caller. Anonymous callers
// are represented by the absence of a Principal, not a zero value.
type Principal struct {
	UserID uint
	Role   string
}

// Operation names a role-gated action. Each handler consults the same policy
// table, so the allowed-role sets cannot drift between call sites.
type Operation string

const (
	OpUpdateStatus  Operation = "order.update_status"
	OpAssignDriver  Operation = "order.assign_driver"
	OpListAllOrders Operation = "order.list_all"
)

const (
	RoleCustomer = "customer"
	RoleDriver   = "driver"
	RoleKitchen  = "kitchen"
	RoleAdmin    = "admin"
	RoleManager  = "manager"
)

var policy = map[Operation][]string{
	OpUpdateStatus:  {RoleKitchen, RoleDriver, RoleAdmin},
	OpAssignDriver:  {RoleKitchen, RoleAdmin},
	OpListAllOrders: {RoleKitchen, RoleAdmin, RoleManager},
}

// Can reports whether the role may perform the operation.
func Can(role string, op Operation) bool {
	for _, allowed := range policy[op] {
		if role == allowed {
			return true
		}
	}
	return false
}

// ValidRole reports whether the role is in the account-creation allow-list.
func ValidRole(role string) bool {
	switch role {
	case RoleCustomer, RoleDriver, RoleKitchen, RoleAdmin, RoleManager:
		return true
	}
	return false
}
