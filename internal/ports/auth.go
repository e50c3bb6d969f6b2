package ports

// Package ports defines interfaces (hexagonal ports) for auth and selection behavior.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	domainauth "github.com/target/storefront-ui/internal/domain/auth"
)

// TokenClaims is what can be read from a credential token without verifying it.
type TokenClaims struct {
	Subject string
	Email   string
	Name    string
	Roles   []string
}

// ClaimsReader extracts unverified claims from a credential token.
// ok is false for opaque (non-JWT) tokens; that is not an error.
type ClaimsReader interface {
	Read(token string) (claims TokenClaims, ok bool)
}

// RoleMapper maps claim roles to application roles.
type RoleMapper interface {
	Map(roles []string) domainauth.Role
}
