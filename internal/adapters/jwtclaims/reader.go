// Package jwtclaims reads claims from JWT credential tokens without verifying them.
// The store API remains the authority; claims only drive which UI region is offered.
package jwtclaims

import (
	"strings"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"github.com/target/storefront-ui/internal/ports"
)

// Reader extracts identity and role claims.
type Reader struct {
	// RoleClaim names the claim carrying roles. Defaults to "role".
	RoleClaim string
}

var _ ports.ClaimsReader = Reader{}

// Read parses the token's payload. Opaque or malformed tokens return ok=false.
func (r Reader) Read(rawToken string) (ports.TokenClaims, bool) {
	rawToken = strings.TrimSpace(rawToken)
	if strings.Count(rawToken, ".") != 2 {
		return ports.TokenClaims{}, false
	}

	unverifiedToken, _, err := jwtlib.NewParser().ParseUnverified(rawToken, jwtlib.MapClaims{})
	if err != nil {
		return ports.TokenClaims{}, false
	}
	claims, ok := unverifiedToken.Claims.(jwtlib.MapClaims)
	if !ok {
		return ports.TokenClaims{}, false
	}

	out := ports.TokenClaims{
		Email: stringClaim(claims, "email"),
		Name:  stringClaim(claims, "name"),
	}
	if sub, subErr := claims.GetSubject(); subErr == nil {
		out.Subject = sub
	}

	roleClaim := r.RoleClaim
	if roleClaim == "" {
		roleClaim = "role"
	}
	out.Roles = roleValues(claims[roleClaim])
	return out, true
}

func stringClaim(claims jwtlib.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// roleValues accepts a single string, a space separated string, or a JSON array.
func roleValues(raw any) []string {
	switch v := raw.(type) {
	case string:
		return strings.Fields(v)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out
	default:
		return nil
	}
}
