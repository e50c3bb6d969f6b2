package jwtclaims

import (
	"testing"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwtlib.MapClaims) string {
	t.Helper()
	tok, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte("not-our-key"))
	require.NoError(t, err)
	return tok
}

func TestReader_Read(t *testing.T) {
	tests := []struct {
		name      string
		claim     string
		claims    jwtlib.MapClaims
		wantRoles []string
	}{
		{
			name:      "single role string",
			claims:    jwtlib.MapClaims{"sub": "u1", "email": "ann@example.com", "role": "admin"},
			wantRoles: []string{"admin"},
		},
		{
			name:      "space separated roles",
			claims:    jwtlib.MapClaims{"sub": "u1", "role": "customer staff"},
			wantRoles: []string{"customer", "staff"},
		},
		{
			name:      "array under custom claim",
			claim:     "roles",
			claims:    jwtlib.MapClaims{"sub": "u1", "roles": []any{"customer", " admin ", 3}},
			wantRoles: []string{"customer", "admin"},
		},
		{
			name:   "no role claim",
			claims: jwtlib.MapClaims{"sub": "u1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Reader{RoleClaim: tt.claim}.Read(signedToken(t, tt.claims))
			require.True(t, ok)
			assert.Equal(t, "u1", got.Subject)
			assert.ElementsMatch(t, tt.wantRoles, got.Roles)
		})
	}
}

func TestReader_ReadsIdentityClaims(t *testing.T) {
	got, ok := Reader{}.Read(signedToken(t, jwtlib.MapClaims{
		"sub":   "42",
		"email": " ann@example.com ",
		"name":  "Ann",
	}))
	require.True(t, ok)
	assert.Equal(t, "42", got.Subject)
	assert.Equal(t, "ann@example.com", got.Email)
	assert.Equal(t, "Ann", got.Name)
}

func TestReader_OpaqueTokens(t *testing.T) {
	for _, tok := range []string{"", "opaque-session-token", "a.b", "not.a.jwt"} {
		_, ok := Reader{}.Read(tok)
		assert.False(t, ok, "token %q", tok)
	}
}
