package authroles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domainauth "github.com/target/storefront-ui/internal/domain/auth"
)

func TestClaimRoleMapper_Map(t *testing.T) {
	m := ClaimRoleMapper{AdminRoles: []string{"admin", "Store-Manager"}}

	tests := []struct {
		name  string
		roles []string
		want  domainauth.Role
	}{
		{name: "no roles", roles: nil, want: domainauth.RoleCustomer},
		{name: "customer only", roles: []string{"customer"}, want: domainauth.RoleCustomer},
		{name: "admin role", roles: []string{"customer", "admin"}, want: domainauth.RoleAdmin},
		{name: "case insensitive", roles: []string{" store-manager "}, want: domainauth.RoleAdmin},
		{name: "blank ignored", roles: []string{"", "  "}, want: domainauth.RoleCustomer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Map(tt.roles))
		})
	}
}

func TestClaimRoleMapper_AllAdmin(t *testing.T) {
	m := ClaimRoleMapper{AllAdmin: true}
	assert.Equal(t, domainauth.RoleAdmin, m.Map(nil))
}
