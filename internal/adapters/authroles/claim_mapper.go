package authroles

import (
	"strings"

	domainauth "github.com/target/storefront-ui/internal/domain/auth"
)

// ClaimRoleMapper maps token role claims by simple membership rules.
// Any authenticated credential is at least a customer; AdminRoles promote to admin.
type ClaimRoleMapper struct {
	AdminRoles []string
	// AllAdmin grants admin to every credential (legacy behaviour).
	AllAdmin bool
}

// Map returns the highest role granted by roles.
func (m ClaimRoleMapper) Map(roles []string) domainauth.Role {
	if m.AllAdmin {
		return domainauth.RoleAdmin
	}
	for _, r := range roles {
		r = strings.ToLower(strings.TrimSpace(r))
		for _, admin := range m.AdminRoles {
			if r != "" && r == strings.ToLower(admin) {
				return domainauth.RoleAdmin
			}
		}
	}
	return domainauth.RoleCustomer
}
