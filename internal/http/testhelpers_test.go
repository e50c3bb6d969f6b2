package httpx

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/target/storefront-ui/internal/adapters/memory"
	"github.com/target/storefront-ui/internal/mocks"
	authmocks "github.com/target/storefront-ui/internal/mocks/auth"
	"github.com/target/storefront-ui/internal/ports"
	"github.com/target/storefront-ui/internal/service"
)

const (
	testShopperToken = "shopper-token"
	testAdminToken   = "admin-token"
	testCSRFToken    = "test-csrf-token"
	testAdminRole    = "storefront-admin"
)

// RequireTemplateRenderer creates a TemplateRenderer for tests, skipping the test if templates are not available.
func RequireTemplateRenderer(t *testing.T) *TemplateRenderer {
	t.Helper()
	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: os.DirFS(TemplatePathFromTest),
	})
	if err != nil {
		t.Skipf("Templates not available, skipping: %v", err)
		return nil
	}
	return tr
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// routerHarness is the full browser stack over mocked store API repositories.
type routerHarness struct {
	handler http.Handler

	authAPI    *mocks.MockAuthAPI
	products   *mocks.MockProductRepository
	categories *mocks.MockCategoryRepository
	orders     *mocks.MockOrderRepository
	customers  *mocks.MockCustomerRepository
	cart       *mocks.MockCartRepository
	account    *mocks.MockAccountRepository
	insights   *mocks.MockInsightsRepository

	backend   *memory.SelectionBackend
	selection *service.SelectionStore
}

func newRouterHarness(t *testing.T) *routerHarness {
	t.Helper()
	if _, err := os.Stat(TemplatePathFromTest); os.IsNotExist(err) {
		t.Skip("Templates not available, skipping router test")
	}

	ctrl := gomock.NewController(t)
	h := &routerHarness{
		authAPI:    mocks.NewMockAuthAPI(ctrl),
		products:   mocks.NewMockProductRepository(ctrl),
		categories: mocks.NewMockCategoryRepository(ctrl),
		orders:     mocks.NewMockOrderRepository(ctrl),
		customers:  mocks.NewMockCustomerRepository(ctrl),
		cart:       mocks.NewMockCartRepository(ctrl),
		account:    mocks.NewMockAccountRepository(ctrl),
		insights:   mocks.NewMockInsightsRepository(ctrl),
		backend:    memory.NewSelectionBackend(memory.DefaultSelectionBackendConfig()),
	}
	logger := discardLogger()

	claims := authmocks.NewStaticClaimsReader(map[string]ports.TokenClaims{
		testShopperToken: {Subject: "c-1", Email: "ann@example.com", Name: "Ann"},
		testAdminToken:   {Subject: "a-1", Email: "ops@example.com", Name: "Ops", Roles: []string{testAdminRole}},
	})
	h.selection = service.NewSelectionStore(service.SelectionStoreOptions{Backend: h.backend, Logger: logger})

	handler, err := NewRouter(RouterServices{
		Auth: service.NewAuthService(service.AuthServiceOptions{
			API:    h.authAPI,
			Claims: claims,
			Roles:  authmocks.StaticRoleMapper{AdminRole: testAdminRole},
		}),
		Catalog: service.NewCatalogService(service.CatalogServiceOptions{
			Products:   h.products,
			Categories: h.categories,
			Logger:     logger,
		}),
		Cart:      service.NewCartService(service.CartServiceOptions{Cart: h.cart, Logger: logger}),
		Orders:    service.NewOrderService(service.OrderServiceOptions{Orders: h.orders, Logger: logger}),
		Customers: service.NewCustomerService(service.CustomerServiceOptions{Customers: h.customers, Orders: h.orders}),
		Account:   service.NewAccountService(h.account),
		Insights: service.NewInsightsService(service.InsightsServiceOptions{
			Insights:  h.insights,
			Orders:    h.orders,
			Customers: h.customers,
			Products:  h.products,
		}),
		Selection:  h.selection,
		TemplateFS: os.DirFS(TemplatePathFromTest),
		Logger:     logger,
	})
	require.NoError(t, err)
	h.handler = handler
	return h
}

// browserRequest describes one request as the browser would send it.
type browserRequest struct {
	Method   string
	Path     string
	Form     url.Values
	Token    string
	HTMX     bool
	PageLoad string
}

func (h *routerHarness) do(t *testing.T, br browserRequest) *httptest.ResponseRecorder {
	t.Helper()
	method := br.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if br.Form != nil {
		body = strings.NewReader(br.Form.Encode())
	}
	req := httptest.NewRequest(method, br.Path, body)
	if br.Form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: testCSRFToken})
	if method != http.MethodGet {
		req.Header.Set(DefaultCSRFHeaderName, testCSRFToken)
	}
	if br.Token != "" {
		req.AddCookie(&http.Cookie{Name: "token", Value: br.Token})
	}
	if br.HTMX {
		req.Header.Set("Hx-Request", "true")
	}
	if br.PageLoad != "" {
		req.Header.Set(HeaderPageLoad, br.PageLoad)
	}

	w := httptest.NewRecorder()
	h.handler.ServeHTTP(w, req)
	return w
}

// ContainsAll checks if a string contains all the given substrings.
func ContainsAll(s string, subs []string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
