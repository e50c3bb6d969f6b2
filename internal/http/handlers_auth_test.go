package httpx

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/target/storefront-ui/internal/domain/auth"
	"github.com/target/storefront-ui/internal/domain/model"
	apperrors "github.com/target/storefront-ui/internal/errors"
)

func TestLogin_SetsCookiesAndReturnsToRequestedPage(t *testing.T) {
	h := newRouterHarness(t)
	h.authAPI.EXPECT().
		Login(gomock.Any(), model.LoginRequest{Email: "ops@example.com", Password: "hunter22"}).
		Return(domainauth.Credential{Token: testAdminToken, Refresh: "r-1"}, nil)

	w := h.do(t, browserRequest{
		Method: http.MethodPost,
		Path:   "/login",
		Form: url.Values{
			"email":        {" OPS@example.com "},
			"password":     {"hunter22"},
			"redirect_uri": {"/admin/orders?status=paid"},
		},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/orders?status=paid", w.Header().Get("Location"))
	token := findCookie(w.Result(), "token")
	require.NotNil(t, token)
	assert.Equal(t, testAdminToken, token.Value)
	assert.True(t, token.HttpOnly)
	assert.NotNil(t, findCookie(w.Result(), "refresh"))
}

func TestLogin_CustomerCannotBeSentToBackOffice(t *testing.T) {
	h := newRouterHarness(t)
	h.authAPI.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(domainauth.Credential{Token: testShopperToken}, nil)

	w := h.do(t, browserRequest{
		Method: http.MethodPost,
		Path:   "/login",
		Form:   url.Values{"email": {"ann@example.com"}, "password": {"hunter22"}, "redirect_uri": {"/admin"}},
		HTMX:   true,
	})

	assert.Equal(t, "/shop", w.Header().Get("Hx-Redirect"))
	assert.Nil(t, findCookie(w.Result(), "refresh"), "no refresh cookie without a refresh token")
}

func TestLogin_InvalidFormIsNotSent(t *testing.T) {
	h := newRouterHarness(t)

	w := h.do(t, browserRequest{
		Method: http.MethodPost,
		Path:   "/login",
		Form:   url.Values{"email": {"not-an-email"}, "password": {"x"}},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Enter a valid email address.")
	assert.Contains(t, body, `value="not-an-email"`)
	assert.Nil(t, findCookie(w.Result(), "token"))
}

func TestLogin_RejectedCredentials(t *testing.T) {
	h := newRouterHarness(t)
	h.authAPI.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(domainauth.Credential{}, apperrors.Unauthorized("Invalid email or password."))

	w := h.do(t, browserRequest{
		Method: http.MethodPost,
		Path:   "/login",
		Form:   url.Values{"email": {"ann@example.com"}, "password": {"wrong-pass"}},
		HTMX:   true,
	})

	assert.Equal(t, http.StatusOK, w.Code, "htmx swaps the re-rendered form")
	assert.Contains(t, w.Body.String(), "Invalid email or password.")
	assert.Nil(t, findCookie(w.Result(), "token"))
}

func TestLoginPage_SignedInUserGoesHome(t *testing.T) {
	h := newRouterHarness(t)

	w := h.do(t, browserRequest{Path: "/login", Token: testAdminToken})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))

	w = h.do(t, browserRequest{Path: "/login"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogout_ClearsSelectionScope(t *testing.T) {
	h := newRouterHarness(t)
	h.authAPI.EXPECT().Logout(gomock.Any()).Return(apperrors.Unauthorized("already revoked"))

	scope := "5b1bd5c8-0a3e-4a8e-9c65-0d8c1e6a1f00"
	require.NoError(t, h.selection.SetCurrentProduct(t.Context(), scope, &model.Product{ID: "7"}))
	require.Equal(t, 1, h.backend.Len())

	w := h.do(t, browserRequest{
		Method:   http.MethodPost,
		Path:     "/logout",
		Form:     url.Values{},
		Token:    testShopperToken,
		HTMX:     true,
		PageLoad: scope,
	})

	assert.Equal(t, "/login", w.Header().Get("Hx-Redirect"), "a failed revoke still signs out locally")
	assert.Equal(t, 0, h.backend.Len())
}

func TestAuthStatus(t *testing.T) {
	h := newRouterHarness(t)

	w := h.do(t, browserRequest{Path: "/auth/status"})
	assert.JSONEq(t, `{"authenticated":false}`, w.Body.String())

	w = h.do(t, browserRequest{Path: "/auth/status", Token: testAdminToken})
	var got struct {
		Authenticated bool `json:"authenticated"`
		User          struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.True(t, got.Authenticated)
	assert.Equal(t, "ops@example.com", got.User.Email)
	assert.Equal(t, string(domainauth.RoleAdmin), got.User.Role)
}
