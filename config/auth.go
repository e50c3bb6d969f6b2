package config

import (
	"strings"
	"time"
)

// AuthConfig controls credential cookies and how session roles are derived.
type AuthConfig struct {
	// TokenCookie and RefreshCookie name the cookies holding the credential pair.
	TokenCookie   string `env:"TOKEN_COOKIE"   envDefault:"token"`
	RefreshCookie string `env:"REFRESH_COOKIE" envDefault:"refresh"`

	// TokenTTL is the cookie lifetime set on login or registration.
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"24h"`

	// RoleClaim names the token claim carrying the user's role(s).
	RoleClaim string `env:"ROLE_CLAIM" envDefault:"role"`

	// AdminRoles lists claim values that map to the admin role.
	AdminRoles []string `env:"ADMIN_ROLES" envDefault:"admin" envSeparator:","`

	// EnforceAdminRole requires the admin role for the back office.
	// When false any credential grants admin access.
	EnforceAdminRole bool `env:"ENFORCE_ADMIN_ROLE" envDefault:"true"`
}

// Sanitize applies defaults and normalizes role names.
func (a *AuthConfig) Sanitize() {
	a.TokenCookie = defaultString(a.TokenCookie, "token")
	a.RefreshCookie = defaultString(a.RefreshCookie, "refresh")
	if a.TokenTTL <= 0 {
		a.TokenTTL = 24 * time.Hour
	}
	a.RoleClaim = defaultString(a.RoleClaim, "role")

	roles := make([]string, 0, len(a.AdminRoles))
	for _, r := range a.AdminRoles {
		if r = strings.ToLower(strings.TrimSpace(r)); r != "" {
			roles = append(roles, r)
		}
	}
	if len(roles) == 0 {
		roles = []string{"admin"}
	}
	a.AdminRoles = roles
}
