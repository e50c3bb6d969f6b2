package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	domainauth "github.com/target/storefront-ui/internal/domain/auth"
	"github.com/target/storefront-ui/internal/domain/navigation"
)

func TestNewTemplateData_Layout(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/shop/cart", nil)
	ctx := SetSessionInContext(req.Context(), &domainauth.Session{
		Token: "t", Name: "Ann", Email: "ann@example.com", Role: domainauth.RoleCustomer,
	})
	ctx = SetPageLoadInContext(ctx, "scope-1")
	req = req.WithContext(ctx)

	data := NewTemplateData(req, PageMeta{Title: "Cart", CurrentPage: navigation.ViewShopCart, Region: navigation.RegionShopper}).
		WithError("nope").
		WithFieldErrors(map[string]string{"quantity": "Quantity must be a whole number."}).
		With("Extra", 42).
		Build()

	assert.Equal(t, "Cart", data["Title"])
	assert.Equal(t, navigation.ViewShopCart, data["CurrentPage"])
	assert.Equal(t, string(navigation.RegionShopper), data["Region"])
	assert.Equal(t, true, data["IsAuthenticated"])
	assert.Equal(t, false, data["IsAdmin"])
	assert.Equal(t, "scope-1", data["PageLoadID"])
	assert.Equal(t, true, data["Error"])
	assert.Equal(t, "nope", data["ErrorMessage"])
	assert.Equal(t, map[string]string{"quantity": "Quantity must be a whole number."}, data["Errors"])
	assert.Equal(t, 42, data["Extra"])
}

func TestNewTemplateData_Anonymous(t *testing.T) {
	data := NewTemplateData(httptest.NewRequest(http.MethodGet, "/login", nil), PageMeta{Title: "Sign in"}).
		WithFieldErrors(nil).
		Build()

	assert.Equal(t, false, data["IsAuthenticated"])
	assert.Equal(t, string(navigation.RegionPublic), data["Region"], "an empty region is public")
	assert.NotContains(t, data, "User")
	assert.NotContains(t, data, "Errors")
	assert.NotContains(t, data, "CSRFToken")
}

func TestApplyPagination(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/shop/products?q=desk&hx-target=x&page=2", nil)
	data := map[string]any{}
	applyPagination(data, req, PaginationData{Page: 2, PageSize: 12, HasPrev: true, HasNext: true, StartIndex: 13, EndIndex: 24})

	assert.Equal(t, "/shop/products?page=1&page_size=12&q=desk", data["PrevURL"])
	assert.Equal(t, "/shop/products?page=3&page_size=12&q=desk", data["NextURL"])
	assert.Equal(t, 13, data["StartIndex"])
	assert.Equal(t, 24, data["EndIndex"])

	data = map[string]any{}
	applyPagination(data, req, PaginationData{Page: 1, PageSize: 12, BasePath: "/admin/products"})
	assert.NotContains(t, data, "PrevURL")
	assert.NotContains(t, data, "NextURL")
}
