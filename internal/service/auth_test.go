package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/target/storefront-ui/internal/domain/auth"
	"github.com/target/storefront-ui/internal/domain/model"
	apperrors "github.com/target/storefront-ui/internal/errors"
	"github.com/target/storefront-ui/internal/mocks"
	mockauth "github.com/target/storefront-ui/internal/mocks/auth"
	"github.com/target/storefront-ui/internal/ports"
)

func newTestAuthService(t *testing.T) (*AuthService, *mocks.MockAuthAPI, *mockauth.StaticClaimsReader) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAuthAPI(ctrl)
	claims := mockauth.NewStaticClaimsReader(map[string]ports.TokenClaims{
		"admin-token": {Subject: "1", Email: "root@example.com", Roles: []string{"admin"}},
		"shop-token":  {Subject: "2", Email: "ann@example.com", Name: "Ann", Roles: []string{"customer"}},
	})
	svc := NewAuthService(AuthServiceOptions{
		API:    api,
		Claims: claims,
		Roles:  mockauth.StaticRoleMapper{AdminRole: "admin"},
	})
	return svc, api, claims
}

func TestNewAuthService_PanicsWithoutDeps(t *testing.T) {
	assert.Panics(t, func() { NewAuthService(AuthServiceOptions{}) })
}

func TestAuthService_Login(t *testing.T) {
	svc, api, _ := newTestAuthService(t)
	ctx := context.Background()

	api.EXPECT().
		Login(gomock.Any(), model.LoginRequest{Email: "ann@example.com", Password: "secret1"}).
		Return(domainauth.Credential{Token: "shop-token"}, nil)

	cred, err := svc.Login(ctx, model.LoginRequest{Email: "  Ann@Example.com ", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "shop-token", cred.Token)
}

func TestAuthService_Login_InvalidInputSkipsAPI(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), model.LoginRequest{Email: "nope"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Contains(t, apperrors.FieldErrors(err), "email")
	assert.Contains(t, apperrors.FieldErrors(err), "password")
}

func TestAuthService_Login_APIRejection(t *testing.T) {
	svc, api, _ := newTestAuthService(t)
	api.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(domainauth.Credential{}, apperrors.Unauthorized("Invalid email or password"))

	_, err := svc.Login(context.Background(), model.LoginRequest{Email: "ann@example.com", Password: "wrong-1"})
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
	assert.Equal(t, "Invalid email or password", apperrors.UserMessage(err))
}

func TestAuthService_Register(t *testing.T) {
	svc, api, _ := newTestAuthService(t)
	api.EXPECT().Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req model.RegisterRequest) (domainauth.Credential, error) {
			assert.Equal(t, "Ann", req.Name)
			return domainauth.Credential{Token: "shop-token"}, nil
		})

	cred, err := svc.Register(context.Background(), model.RegisterRequest{
		Name: " Ann ", Email: "ann@example.com", Password: "password1", ConfirmPassword: "password1",
	})
	require.NoError(t, err)
	assert.True(t, cred.Present())
}

func TestAuthService_Logout(t *testing.T) {
	svc, api, _ := newTestAuthService(t)

	// Without a token there is nothing to revoke.
	require.NoError(t, svc.Logout(context.Background()))

	ctx := domainauth.WithSession(context.Background(), &domainauth.Session{Token: "shop-token"})
	api.EXPECT().Logout(gomock.Any()).Return(errors.New("boom"))
	err := svc.Logout(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logout")
}

func TestAuthService_SessionFor(t *testing.T) {
	svc, _, claims := newTestAuthService(t)

	tests := []struct {
		name     string
		token    string
		wantOK   bool
		wantRole domainauth.Role
	}{
		{name: "blank token", token: "  ", wantOK: false},
		{name: "admin claims", token: "admin-token", wantOK: true, wantRole: domainauth.RoleAdmin},
		{name: "customer claims", token: "shop-token", wantOK: true, wantRole: domainauth.RoleCustomer},
		{name: "opaque token", token: "opaque", wantOK: true, wantRole: domainauth.RoleCustomer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess, ok := svc.SessionFor(tt.token)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.Nil(t, sess)
				return
			}
			assert.Equal(t, tt.token, sess.Token)
			assert.Equal(t, tt.wantRole, sess.Role)
		})
	}
	assert.NotContains(t, claims.Calls, "  ")
}
