package auth

// Package auth contains simple hand-written test doubles for auth and selection ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"errors"

	domainauth "github.com/target/storefront-ui/internal/domain/auth"
	"github.com/target/storefront-ui/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.ClaimsReader     = (*StaticClaimsReader)(nil)
	_ ports.RoleMapper       = StaticRoleMapper{}
	_ ports.SelectionBackend = FailingSelectionBackend{}
)

// StaticClaimsReader returns canned claims per token. Unknown tokens read as opaque.
type StaticClaimsReader struct {
	ReadFunc func(token string) (ports.TokenClaims, bool)
	Claims   map[string]ports.TokenClaims

	// Calls records every token passed to Read.
	Calls []string
}

// NewStaticClaimsReader creates a reader that knows the given tokens.
func NewStaticClaimsReader(claims map[string]ports.TokenClaims) *StaticClaimsReader {
	return &StaticClaimsReader{Claims: claims}
}

func (r *StaticClaimsReader) Read(token string) (ports.TokenClaims, bool) {
	r.Calls = append(r.Calls, token)
	if r.ReadFunc != nil {
		return r.ReadFunc(token)
	}
	c, ok := r.Claims[token]
	return c, ok
}

// StaticRoleMapper maps roles by simple string membership rules.
type StaticRoleMapper struct {
	AdminRole string
	// Default is returned when AdminRole is absent. Empty means customer.
	Default domainauth.Role
}

func (m StaticRoleMapper) Map(roles []string) domainauth.Role {
	for _, r := range roles {
		if m.AdminRole != "" && r == m.AdminRole {
			return domainauth.RoleAdmin
		}
	}
	if m.Default != "" {
		return m.Default
	}
	return domainauth.RoleCustomer
}

// ErrBackendDown is returned by FailingSelectionBackend.
var ErrBackendDown = errors.New("selection backend unavailable")

// FailingSelectionBackend fails every operation, simulating an unreachable store.
type FailingSelectionBackend struct{}

func (FailingSelectionBackend) Load(context.Context, string, string) ([]byte, bool, error) {
	return nil, false, ErrBackendDown
}

func (FailingSelectionBackend) Save(context.Context, string, string, []byte) error {
	return ErrBackendDown
}

func (FailingSelectionBackend) Delete(context.Context, string, string) error {
	return ErrBackendDown
}

func (FailingSelectionBackend) Clear(context.Context, string) error {
	return ErrBackendDown
}
