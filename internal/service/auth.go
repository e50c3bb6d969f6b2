package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/target/storefront-ui/internal/core"
	domainauth "github.com/target/storefront-ui/internal/domain/auth"
	"github.com/target/storefront-ui/internal/domain/model"
	"github.com/target/storefront-ui/internal/ports"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	API    core.AuthAPI       // Required: store API auth endpoints
	Claims ports.ClaimsReader // Required: unverified token claims reader
	Roles  ports.RoleMapper   // Required: claim roles -> application role
}

// AuthService exchanges credentials with the store API and derives request sessions from tokens.
type AuthService struct {
	api    core.AuthAPI
	claims ports.ClaimsReader
	roles  ports.RoleMapper
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	if opts.API == nil {
		panic("AuthAPI is required")
	}
	if opts.Claims == nil {
		panic("ClaimsReader is required")
	}
	if opts.Roles == nil {
		panic("RoleMapper is required")
	}
	return &AuthService{api: opts.API, claims: opts.Claims, roles: opts.Roles}
}

// Login validates the credentials and exchanges them for a credential token.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (domainauth.Credential, error) {
	req.Normalize()
	if err := validateStruct(req); err != nil {
		return domainauth.Credential{}, err
	}
	cred, err := s.api.Login(ctx, req)
	if err != nil {
		return domainauth.Credential{}, fmt.Errorf("login: %w", err)
	}
	return cred, nil
}

// Register creates a shopper account and signs it in.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (domainauth.Credential, error) {
	req.Normalize()
	if err := validateStruct(req); err != nil {
		return domainauth.Credential{}, err
	}
	cred, err := s.api.Register(ctx, req)
	if err != nil {
		return domainauth.Credential{}, fmt.Errorf("register: %w", err)
	}
	return cred, nil
}

// Logout revokes the credential in ctx with the store API.
// Callers clear local state regardless of the result.
func (s *AuthService) Logout(ctx context.Context) error {
	if domainauth.TokenFromContext(ctx) == "" {
		return nil // Nothing to revoke
	}
	if err := s.api.Logout(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// SessionFor derives the request session from a credential token without any network call.
// Token presence alone authenticates; claims only refine identity and role.
// ok is false only when token is blank.
func (s *AuthService) SessionFor(token string) (*domainauth.Session, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, false
	}
	claims, ok := s.claims.Read(token)
	if !ok {
		// Opaque tokens carry no roles; the mapper decides their default.
		claims = ports.TokenClaims{}
	}
	return &domainauth.Session{
		Token:   token,
		Subject: claims.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
		Role:    s.roles.Map(claims.Roles),
	}, true
}
