package storeapi

import (
	"context"
	"net/http"

	"github.com/target/storefront-ui/internal/core"
	domainauth "github.com/target/storefront-ui/internal/domain/auth"
	"github.com/target/storefront-ui/internal/domain/model"
	apperrors "github.com/target/storefront-ui/internal/errors"
)

// AuthAPI implements core.AuthAPI.
type AuthAPI struct{ c *Client }

// NewAuthAPI returns the auth endpoints of c.
func NewAuthAPI(c *Client) *AuthAPI { return &AuthAPI{c: c} }

var _ core.AuthAPI = (*AuthAPI)(nil)

func (a *AuthAPI) Login(ctx context.Context, req model.LoginRequest) (domainauth.Credential, error) {
	return a.credential(ctx, call{op: "auth.login", method: http.MethodPost, path: "/auth/login", body: req})
}

func (a *AuthAPI) Register(ctx context.Context, req model.RegisterRequest) (domainauth.Credential, error) {
	return a.credential(ctx, call{op: "auth.register", method: http.MethodPost, path: "/auth/register", body: req})
}

func (a *AuthAPI) Logout(ctx context.Context) error {
	return a.c.do(ctx, call{op: "auth.logout", method: http.MethodPost, path: "/auth/logout"}, nil)
}

func (a *AuthAPI) credential(ctx context.Context, cl call) (domainauth.Credential, error) {
	var doc any
	cl.raw = &doc
	if err := a.c.do(ctx, cl, nil); err != nil {
		return domainauth.Credential{}, err
	}
	// Token paths are evaluated against the unwrapped payload first, then the whole body.
	data := doc
	if a.c.paths.Data != "@" {
		if v, err := a.c.jems.Evaluate(a.c.paths.Data, doc); err == nil && v != nil {
			data = v
		}
	}
	cred := domainauth.Credential{
		Token:   a.c.stringAt(a.c.paths.Token, data),
		Refresh: a.c.stringAt(a.c.paths.Refresh, data),
	}
	if cred.Token == "" {
		cred.Token = a.c.stringAt(a.c.paths.Token, doc)
		cred.Refresh = a.c.stringAt(a.c.paths.Refresh, doc)
	}
	if !cred.Present() {
		return domainauth.Credential{}, apperrors.Internal("store API did not return a credential token")
	}
	return cred, nil
}
