package httpx

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/target/storefront-ui/internal/adapters/memory"
	"github.com/target/storefront-ui/internal/domain/model"
	apperrors "github.com/target/storefront-ui/internal/errors"
	authmocks "github.com/target/storefront-ui/internal/mocks/auth"
	"github.com/target/storefront-ui/internal/service"
)

func selectionRequest(form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/admin/select/product", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func productID(p *model.Product) string { return p.ID }

func TestDecodeSelection(t *testing.T) {
	tests := []struct {
		name      string
		form      url.Values
		wantID    string
		wantField string
	}{
		{name: "valid", form: url.Values{"id": {"7"}, "payload": {`{"id":"7","name":"Desk","price":"249"}`}}, wantID: "7"},
		{name: "id optional", form: url.Values{"payload": {`{"id":"7"}`}}, wantID: "7"},
		{name: "missing payload", form: url.Values{"id": {"7"}}, wantField: "payload"},
		{name: "payload without id", form: url.Values{"payload": {`{"name":"Desk"}`}}, wantField: "id"},
		{name: "mismatched row", form: url.Values{"id": {"8"}, "payload": {`{"id":"7"}`}}, wantField: "id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := decodeSelection(selectionRequest(tt.form), productID)
			if tt.wantField != "" {
				require.Error(t, err)
				assert.True(t, apperrors.IsValidation(err))
				assert.Equal(t, tt.wantField, apperrors.GetField(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, p.ID)
		})
	}
}

func TestDecodeSelection_MalformedJSON(t *testing.T) {
	_, err := decodeSelection(selectionRequest(url.Values{"payload": {"{not json"}}), productID)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "The selection could not be read.", apperrors.UserMessage(err))
}

func TestSelectProduct_BackendDownStillNavigates(t *testing.T) {
	h := &UIHandlers{
		Selection: service.NewSelectionStore(service.SelectionStoreOptions{
			Backend: authmocks.FailingSelectionBackend{},
			Logger:  discardLogger(),
		}),
		Logger: discardLogger(),
	}
	req := selectionRequest(url.Values{"id": {"7"}, "payload": {`{"id":"7"}`}})
	req.Header.Set("Hx-Request", "true")
	req = req.WithContext(SetPageLoadInContext(req.Context(), "5b1bd5c8-0a3e-4a8e-9c65-0d8c1e6a1f03"))
	w := httptest.NewRecorder()

	h.SelectProduct("admin-product")(w, req)

	assert.Contains(t, w.Header().Get("Hx-Location"), "/admin/products/7")
}

func TestSelectProduct_PlainPostSkipsSlot(t *testing.T) {
	backend := memory.NewSelectionBackend(memory.DefaultSelectionBackendConfig())
	h := &UIHandlers{
		Selection: service.NewSelectionStore(service.SelectionStoreOptions{Backend: backend, Logger: discardLogger()}),
		Logger:    discardLogger(),
	}
	scope := "5b1bd5c8-0a3e-4a8e-9c65-0d8c1e6a1f04"
	req := selectionRequest(url.Values{"id": {"7"}, "payload": {`{"id":"7"}`}})
	req = req.WithContext(SetPageLoadInContext(req.Context(), scope))
	w := httptest.NewRecorder()

	h.SelectProduct("admin-product")(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/products/7", w.Header().Get("Location"))
	assert.Equal(t, 0, backend.Len(), "the redirect starts a new page load, so nothing is stored")
}

func TestWithLineIDs(t *testing.T) {
	lines := []model.CartLine{{ID: "l1"}, {ID: "l 2"}}
	plain := httptest.NewRequest(http.MethodPost, "/shop/cart/select", nil)
	htmx := httptest.NewRequest(http.MethodPost, "/shop/cart/select", nil)
	htmx.Header.Set("Hx-Request", "true")

	assert.Equal(t, "/shop/checkout?lines=l1%2Cl+2", withLineIDs(plain, "/shop/checkout", lines))
	assert.Equal(t, "/shop/checkout", withLineIDs(htmx, "/shop/checkout", lines))
	assert.Equal(t, "/shop/cart", withLineIDs(plain, "/shop/cart", nil))

	back := httptest.NewRequest(http.MethodGet, withLineIDs(plain, "/shop/checkout", lines), nil)
	assert.Equal(t, []string{"l1", "l 2"}, lineIDsFromQuery(back))
	assert.Empty(t, lineIDsFromQuery(httptest.NewRequest(http.MethodGet, "/shop/checkout?lines=,%20,", nil)))
}

func TestSelectCategory_InvalidSelectionPlainPost(t *testing.T) {
	h := &UIHandlers{Logger: discardLogger()}
	w := httptest.NewRecorder()

	h.SelectCategory("shop-category")(w, selectionRequest(url.Values{}))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Nothing was selected.")
}
