package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	domainauth "github.com/target/storefront-ui/internal/domain/auth"
	"github.com/target/storefront-ui/internal/domain/navigation"
)

func testRoutes(t *testing.T) *navigation.Table {
	t.Helper()
	table, err := navigation.NewTable(
		navigation.Route{Name: "home", Pattern: "/", Region: navigation.RegionPublic},
		navigation.Route{Name: "shop-product", Pattern: "/shop/products/:id", Region: navigation.RegionShopper},
		navigation.Route{Name: "admin-orders", Pattern: "/admin/orders", Region: navigation.RegionAdmin},
	)
	if err != nil {
		t.Fatalf("route table: %v", err)
	}
	return table
}

func namedView(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(name + ":" + r.PathValue(navigation.ParamID)))
	}
}

func newTestViewRouter(t *testing.T) *ViewRouter {
	t.Helper()
	return NewViewRouter(ViewRouterOptions{
		Table: testRoutes(t),
		Guard: NewSessionGuard(SessionGuardOptions{
			Sessions: roleResolver{"boss": domainauth.RoleAdmin},
			Logger:   discardLogger(),
		}),
		Views: map[string]http.HandlerFunc{
			"home":         namedView("home"),
			"shop-product": namedView("shop-product"),
			"admin-orders": namedView("admin-orders"),
		},
		NotFound: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			who := "anonymous"
			if s := GetSessionFromContext(r.Context()); s != nil {
				who = string(s.Role)
			}
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("missing for " + who))
		}),
	})
}

func TestViewRouter_Dispatch(t *testing.T) {
	vr := newTestViewRouter(t)

	tests := []struct {
		name       string
		path       string
		token      string
		wantStatus int
		wantBody   string
	}{
		{name: "public root", path: "/", wantStatus: http.StatusOK, wantBody: "home:"},
		{name: "param exposed as path value", path: "/shop/products/42", token: "ann", wantStatus: http.StatusOK, wantBody: "shop-product:42"},
		{name: "gated without token", path: "/shop/products/42", wantStatus: http.StatusSeeOther},
		{name: "admin route for admin", path: "/admin/orders", token: "boss", wantStatus: http.StatusOK, wantBody: "admin-orders:"},
		{name: "admin route for customer", path: "/admin/orders", token: "ann", wantStatus: http.StatusForbidden},
		{name: "unknown path", path: "/shop/nowhere", wantStatus: http.StatusNotFound, wantBody: "missing for anonymous"},
		{name: "unknown path keeps session", path: "/admin/nowhere", token: "boss", wantStatus: http.StatusNotFound, wantBody: "missing for admin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.token != "" {
				req.AddCookie(&http.Cookie{Name: "token", Value: tt.token})
			}
			w := httptest.NewRecorder()
			vr.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestNewViewRouter_PanicsOnMissingView(t *testing.T) {
	assert.Panics(t, func() {
		NewViewRouter(ViewRouterOptions{
			Table: testRoutes(t),
			Guard: NewSessionGuard(SessionGuardOptions{Sessions: roleResolver{}}),
			Views: map[string]http.HandlerFunc{"home": namedView("home")},
		})
	})
}
