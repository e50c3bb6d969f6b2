package storeapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/target/storefront-ui/internal/domain/auth"
	"github.com/target/storefront-ui/internal/domain/model"
	apperrors "github.com/target/storefront-ui/internal/errors"
)

type recorded struct {
	Method  string
	Path    string
	RawPath string
	Query   string
	Auth    string
	Body    string
}

// fakeAPI serves canned responses keyed by "METHOD /path" and records requests.
type fakeAPI struct {
	mu        sync.Mutex
	requests  []recorded
	responses map[string]fakeResponse
}

type fakeResponse struct {
	status int
	body   string
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.requests = append(f.requests, recorded{
		Method:  r.Method,
		Path:    r.URL.Path,
		RawPath: r.URL.EscapedPath(),
		Query:   r.URL.RawQuery,
		Auth:    r.Header.Get("Authorization"),
		Body:    string(b),
	})
	resp, ok := f.responses[r.Method+" "+r.URL.Path]
	f.mu.Unlock()
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"no such route"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_, _ = w.Write([]byte(resp.body))
}

func (f *fakeAPI) last(t *testing.T) recorded {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests)
	return f.requests[len(f.requests)-1]
}

func newTestAPI(t *testing.T, responses map[string]fakeResponse, paths Paths) (*API, *fakeAPI) {
	t.Helper()
	fake := &fakeAPI{responses: responses}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	c, err := NewClient(ClientOptions{BaseURL: srv.URL + "/api", Paths: paths, UserAgent: "test"})
	require.NoError(t, err)
	return New(c), fake
}

func sessionCtx(token string) context.Context {
	return domainauth.WithSession(context.Background(), &domainauth.Session{Token: token, Role: domainauth.RoleCustomer})
}

func TestClient_AttachesBearerFromSession(t *testing.T) {
	api, fake := newTestAPI(t, map[string]fakeResponse{
		"GET /api/cart": {status: 200, body: `{"id":"c1","lines":[],"total":"0"}`},
	}, Paths{})

	_, err := api.Cart.Get(sessionCtx("tok-123"))
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", fake.last(t).Auth)

	_, err = api.Cart.Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, fake.last(t).Auth)
}

func TestClient_UnwrapsDataEnvelope(t *testing.T) {
	api, fake := newTestAPI(t, map[string]fakeResponse{
		"GET /api/products/7": {status: 200, body: `{"data":{"id":"7","name":"Mug","price":12.345678901234567890,"stock":3}}`},
	}, Paths{Data: "data"})

	p, err := api.Products.GetByID(sessionCtx("t"), "7")
	require.NoError(t, err)
	assert.Equal(t, "7", p.ID)
	assert.Equal(t, "Mug", p.Name)
	assert.Equal(t, "12.34567890123456789", p.Price.String())
	assert.Equal(t, "/api/products/7", fake.last(t).Path)
}

func TestClient_EscapesIDsOnce(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		path    string
		rawPath string
	}{
		{name: "space and accent", id: "café mug", path: "/api/products/café mug", rawPath: "/api/products/caf%C3%A9%20mug"},
		{name: "slash stays in one segment", id: "a/b", path: "/api/products/a/b", rawPath: "/api/products/a%2Fb"},
		{name: "plain", id: "7", path: "/api/products/7", rawPath: "/api/products/7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, fake := newTestAPI(t, map[string]fakeResponse{
				"GET " + tt.path: {status: 200, body: `{"id":"x"}`},
			}, Paths{})

			_, err := api.Products.GetByID(sessionCtx("t"), tt.id)
			require.NoError(t, err)
			got := fake.last(t)
			assert.Equal(t, tt.path, got.Path)
			assert.Equal(t, tt.rawPath, got.RawPath)
		})
	}
}

func TestClient_ListQuery(t *testing.T) {
	api, fake := newTestAPI(t, map[string]fakeResponse{
		"GET /api/products": {status: 200, body: `[{"id":"1"},{"id":"2"}]`},
	}, Paths{})

	got, err := api.Products.List(sessionCtx("t"), model.ProductListOptions{
		Limit: 20, Offset: 40, Query: " mug ", CategoryID: "3", Sort: "PRICE",
	})
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "category_id=3&limit=20&offset=40&q=mug&sort=price", fake.last(t).Query)
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantCode  apperrors.ErrorCode
		wantMsg   string
		wantField map[string]string
	}{
		{
			name:     "unauthorized with message",
			status:   401,
			body:     `{"message":"token expired"}`,
			wantCode: apperrors.ErrCodeUnauthorized,
			wantMsg:  "token expired",
		},
		{
			name:     "not found with error key",
			status:   404,
			body:     `{"error":"no product"}`,
			wantCode: apperrors.ErrCodeNotFound,
			wantMsg:  "no product",
		},
		{
			name:      "validation with fields",
			status:    422,
			body:      `{"message":"invalid","errors":{"name":["is required"],"price":"must be positive"}}`,
			wantCode:  apperrors.ErrCodeValidation,
			wantMsg:   "invalid",
			wantField: map[string]string{"name": "is required", "price": "must be positive"},
		},
		{
			name:     "non json body",
			status:   503,
			body:     `<html>down</html>`,
			wantCode: apperrors.ErrCodeUnavailable,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, _ := newTestAPI(t, map[string]fakeResponse{
				"POST /api/products": {status: tt.status, body: tt.body},
			}, Paths{})

			_, err := api.Products.Create(sessionCtx("t"), model.ProductRequest{Name: "x"})
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, apperrors.GetCode(err))
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, err.Error())
			}
			if tt.wantField != nil {
				assert.Equal(t, tt.wantField, apperrors.FieldErrors(err))
			}
		})
	}
}

func TestClient_CanceledContext(t *testing.T) {
	api, _ := newTestAPI(t, map[string]fakeResponse{
		"GET /api/cart": {status: 200, body: `{}`},
	}, Paths{})

	ctx, cancel := context.WithCancel(sessionCtx("t"))
	cancel()
	_, err := api.Cart.Get(ctx)
	require.Error(t, err)
	assert.True(t, apperrors.IsCanceled(err))
}

func TestClient_Observer(t *testing.T) {
	fake := &fakeAPI{responses: map[string]fakeResponse{
		"DELETE /products/9": {status: 204},
	}}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	var ops []string
	var errs []error
	c, err := NewClient(ClientOptions{
		BaseURL: srv.URL,
		Observer: func(op string, took time.Duration, callErr error) {
			ops = append(ops, op)
			errs = append(errs, callErr)
			assert.GreaterOrEqual(t, took, time.Duration(0))
		},
	})
	require.NoError(t, err)
	api := New(c)

	require.NoError(t, api.Products.Delete(sessionCtx("t"), "9"))
	require.Error(t, api.Products.Delete(sessionCtx("t"), "10"))

	assert.Equal(t, []string{"products.delete", "products.delete"}, ops)
	assert.NoError(t, errs[0])
	assert.True(t, apperrors.IsNotFound(errs[1]))
}

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient(ClientOptions{BaseURL: "ftp://example.com"})
	assert.Error(t, err)

	_, err = NewClient(ClientOptions{BaseURL: "http://"})
	assert.Error(t, err)

	_, err = NewClient(ClientOptions{BaseURL: "http://example.com", Paths: Paths{Data: "data[["}})
	assert.Error(t, err)

	_, err = NewClient(ClientOptions{BaseURL: "http://example.com"})
	assert.NoError(t, err)
}

func TestAuthAPI_Login(t *testing.T) {
	api, fake := newTestAPI(t, map[string]fakeResponse{
		"POST /api/auth/login": {status: 200, body: `{"data":{"access_token":"abc","refresh_token":"r1"}}`},
	}, Paths{Data: "data", Token: "access_token", Refresh: "refresh_token"})

	cred, err := api.Auth.Login(context.Background(), model.LoginRequest{Email: "a@b.co", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "abc", cred.Token)
	assert.Equal(t, "r1", cred.Refresh)

	var sent map[string]string
	require.NoError(t, json.Unmarshal([]byte(fake.last(t).Body), &sent))
	assert.Equal(t, "a@b.co", sent["email"])
}

func TestAuthAPI_LoginWithoutToken(t *testing.T) {
	api, _ := newTestAPI(t, map[string]fakeResponse{
		"POST /api/auth/login": {status: 200, body: `{"ok":true}`},
	}, Paths{})

	_, err := api.Auth.Login(context.Background(), model.LoginRequest{Email: "a@b.co", Password: "secret1"})
	require.Error(t, err)
	assert.True(t, apperrors.IsInternal(err))
}

func TestAuthAPI_RegisterDoesNotSendConfirmation(t *testing.T) {
	api, fake := newTestAPI(t, map[string]fakeResponse{
		"POST /api/auth/register": {status: 201, body: `{"token":"new"}`},
	}, Paths{})

	cred, err := api.Auth.Register(context.Background(), model.RegisterRequest{
		Name: "Ann", Email: "a@b.co", Password: "password1", ConfirmPassword: "password1",
	})
	require.NoError(t, err)
	assert.Equal(t, "new", cred.Token)
	assert.NotContains(t, fake.last(t).Body, "confirm")
}

func TestCartAPI_Mutations(t *testing.T) {
	cartBody := `{"id":"c1","lines":[{"id":"l1","product_id":"7","unit_price":"2.50","quantity":2}],"total":"5.00"}`
	api, fake := newTestAPI(t, map[string]fakeResponse{
		"POST /api/cart/items":      {status: 200, body: cartBody},
		"PATCH /api/cart/items/l1":  {status: 200, body: cartBody},
		"DELETE /api/cart/items/l1": {status: 200, body: `{"id":"c1","lines":[],"total":"0"}`},
		"POST /api/cart/checkout":   {status: 201, body: `{"id":"o1","number":"SO-1","status":"pending","total":"5.00"}`},
	}, Paths{})
	ctx := sessionCtx("t")

	c, err := api.Cart.AddItem(ctx, model.CartItemRequest{ProductID: "7", Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, c.ItemCount())

	_, err = api.Cart.UpdateItem(ctx, "l1", 3)
	require.NoError(t, err)
	assert.JSONEq(t, `{"quantity":3}`, fake.last(t).Body)

	c, err = api.Cart.RemoveItem(ctx, "l1")
	require.NoError(t, err)
	assert.Empty(t, c.Lines)

	o, err := api.Cart.Checkout(ctx, model.CheckoutRequest{LineIDs: []string{"l1"}, PaymentMethod: model.PaymentCard})
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusPending, o.Status)
}

func TestOrderAPI_UpdateStatus(t *testing.T) {
	api, fake := newTestAPI(t, map[string]fakeResponse{
		"PATCH /api/orders/o 1/status": {status: 200, body: `{"id":"o 1","status":"shipped"}`},
	}, Paths{})

	o, err := api.Orders.UpdateStatus(sessionCtx("t"), "o 1",
		model.UpdateOrderStatusRequest{Status: model.OrderStatusShipped})
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusShipped, o.Status)
	assert.JSONEq(t, `{"status":"shipped"}`, fake.last(t).Body)
}

func TestInsightsAPI_Analytics(t *testing.T) {
	api, fake := newTestAPI(t, map[string]fakeResponse{
		"GET /api/analytics": {status: 200, body: `{"revenue":"100.10","orders_count":3}`},
	}, Paths{})

	s, err := api.Insights.Analytics(sessionCtx("t"), model.Range7Days)
	require.NoError(t, err)
	assert.Equal(t, 3, s.OrdersCount)
	assert.Equal(t, "100.1", s.Revenue.String())
	assert.Equal(t, "range=7d", fake.last(t).Query)
}
