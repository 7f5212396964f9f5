package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/example/lavash/internal/authz"
)

func TestCan(t *testing.T) {
	cases := []struct {
		role    string
		op      authz.Operation
		allowed bool
	}{
		{authz.RoleKitchen, authz.OpUpdateStatus, true},
		{authz.RoleDriver, authz.OpUpdateStatus, true},
		{authz.RoleAdmin, authz.OpUpdateStatus, true},
		{authz.RoleCustomer, authz.OpUpdateStatus, false},
		{authz.RoleManager, authz.OpUpdateStatus, false},

		{authz.RoleKitchen, authz.OpAssignDriver, true},
		{authz.RoleAdmin, authz.OpAssignDriver, true},
		{authz.RoleDriver, authz.OpAssignDriver, false},
		{authz.RoleCustomer, authz.OpAssignDriver, false},

		{authz.RoleAdmin, authz.OpListAllOrders, true},
		{authz.RoleKitchen, authz.OpListAllOrders, true},
		{authz.RoleManager, authz.OpListAllOrders, true},
		{authz.RoleDriver, authz.OpListAllOrders, false},
		{authz.RoleCustomer, authz.OpListAllOrders, false},

		{"", authz.OpUpdateStatus, false},
		{"burglar", authz.OpAssignDriver, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, authz.Can(tc.role, tc.op), "role %q op %s", tc.role, tc.op)
	}
}

func TestValidRole(t *testing.T) {
	for _, role := range []string{
		authz.RoleCustomer, authz.RoleDriver, authz.RoleKitchen, authz.RoleAdmin, authz.RoleManager,
	} {
		assert.True(t, authz.ValidRole(role), "role %q", role)
	}

	for _, role := range []string{"", "anonymous", "root", "Customer"} {
		assert.False(t, authz.ValidRole(role), "role %q", role)
	}
}
