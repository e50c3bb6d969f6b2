package httpx

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"regexp"
	"time"

	storefront "github.com/target/storefront-ui"
	"github.com/target/storefront-ui/internal/domain/navigation"
	"github.com/target/storefront-ui/internal/observability/statsd"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth      AuthService      // Required
	Catalog   CatalogService   // Required
	Cart      CartService      // Required
	Orders    OrdersService    // Required
	Customers CustomersService // Required
	Account   AccountService   // Required
	Insights  InsightsService  // Required
	Selection SelectionStore   // Required
	// Routes defaults to navigation.Storefront().
	Routes  *navigation.Table
	Cookies CredentialCookies
	// SummaryInterval paces the cart badge poll and stream.
	SummaryInterval time.Duration
	// Health is probed by /healthz; nil reports healthy.
	Health HealthProbe
	// TemplateFS overrides the template source (tests).
	TemplateFS fs.FS
	Metrics    statsd.Sink
	IsDev      bool         // Development mode: templates and assets are read from disk
	Logger     *slog.Logger // Logger for template and HTTP errors (optional)
}

func (s RouterServices) validate() error {
	switch {
	case s.Auth == nil:
		return errors.New("auth service is required")
	case s.Catalog == nil:
		return errors.New("catalog service is required")
	case s.Cart == nil:
		return errors.New("cart service is required")
	case s.Orders == nil:
		return errors.New("orders service is required")
	case s.Customers == nil:
		return errors.New("customers service is required")
	case s.Account == nil:
		return errors.New("account service is required")
	case s.Insights == nil:
		return errors.New("insights service is required")
	case s.Selection == nil:
		return errors.New("selection store is required")
	}
	return nil
}

// NewRouter creates and configures the storefront handler: table-driven views,
// auth and mutation actions, static assets and health, behind the browser middleware.
func NewRouter(services RouterServices) (http.Handler, error) {
	if err := services.validate(); err != nil {
		return nil, fmt.Errorf("router: %w", err)
	}
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}
	routes := services.Routes
	if routes == nil {
		routes = navigation.Storefront()
	}

	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: templateFS(services),
		Routes:     routes,
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("router: %w", err)
	}

	h := &UIHandlers{
		T:               tr,
		Routes:          routes,
		Auth:            services.Auth,
		Catalog:         services.Catalog,
		Cart:            services.Cart,
		Orders:          services.Orders,
		Customers:       services.Customers,
		Account:         services.Account,
		Insights:        services.Insights,
		Selection:       services.Selection,
		Cookies:         services.Cookies,
		SummaryInterval: services.SummaryInterval,
		Metrics:         services.Metrics,
		IsDev:           services.IsDev,
		Logger:          logger,
	}

	guard := NewSessionGuard(SessionGuardOptions{
		Sessions:    services.Auth,
		TokenCookie: services.Cookies.tokenName(),
		Forbidden:   h.Forbidden,
		Metrics:     services.Metrics,
		Logger:      logger,
	})

	views := NewViewRouter(ViewRouterOptions{
		Table:    routes,
		Guard:    guard,
		Views:    h.views(),
		NotFound: http.HandlerFunc(h.NotFound),
	})

	mux := http.NewServeMux()
	mux.Handle("GET /healthz", healthHandler(services.Health, logger))
	mux.Handle("GET /static/", staticWithFallback(services.IsDev, logger))
	registerAuthRoutes(mux, h, guard)
	registerShopperActions(mux, h, guard)
	registerAdminActions(mux, h, guard)
	mux.Handle("GET /", views)

	var handler http.Handler = mux
	handler = CSRFProtection(CSRFConfig{CookieDomain: services.Cookies.Domain, OnFailure: h.CSRFRejected})(handler)
	handler = PageLoad(handler)
	handler = Logging(logger)(handler)
	handler = Recover(logger)(handler)
	return handler, nil
}

// views maps every route table entry to its handler.
func (h *UIHandlers) views() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		navigation.ViewHome:     h.Home,
		navigation.ViewLogin:    h.LoginPage,
		navigation.ViewRegister: h.RegisterPage,

		navigation.ViewShopHome:       h.ShopHome,
		navigation.ViewShopProducts:   h.ShopProducts,
		navigation.ViewShopProduct:    h.ShopProduct,
		navigation.ViewShopCategories: h.ShopCategories,
		navigation.ViewShopCategory:   h.ShopCategory,
		navigation.ViewShopCart:       h.ShopCart,
		navigation.ViewShopCheckout:   h.ShopCheckout,
		navigation.ViewShopAccount:    h.ShopAccount,
		navigation.ViewShopOrders:     h.ShopOrders,
		navigation.ViewShopOrder:      h.ShopOrder,
		navigation.ViewShopProfile:    h.ShopProfile,
		navigation.ViewShopAbout:      h.InfoPage(navigation.ViewShopAbout, "About us"),
		navigation.ViewShopContact:    h.InfoPage(navigation.ViewShopContact, "Contact"),
		navigation.ViewShopFAQ:        h.InfoPage(navigation.ViewShopFAQ, "FAQ"),

		navigation.ViewAdminDashboard:      h.AdminDashboard,
		navigation.ViewAdminProducts:       h.AdminProducts,
		navigation.ViewAdminProductCreate:  h.AdminProductCreate,
		navigation.ViewAdminProduct:        h.AdminProduct,
		navigation.ViewAdminCategories:     h.AdminCategories,
		navigation.ViewAdminCategoryCreate: h.AdminCategoryCreate,
		navigation.ViewAdminCategory:       h.AdminCategory,
		navigation.ViewAdminOrders:         h.AdminOrders,
		navigation.ViewAdminOrder:          h.AdminOrder,
		navigation.ViewAdminCustomers:      h.AdminCustomers,
		navigation.ViewAdminCustomer:       h.AdminCustomer,
		navigation.ViewAdminAnalytics:      h.AdminAnalytics,
		navigation.ViewAdminSettings:       h.AdminSettings,
	}
}

func registerAuthRoutes(mux *http.ServeMux, h *UIHandlers, guard *SessionGuard) {
	mux.Handle("POST /login", guard.Attach(http.HandlerFunc(h.Login)))
	mux.Handle("POST /register", guard.Attach(http.HandlerFunc(h.Register)))
	mux.Handle("POST /logout", NoStore(http.HandlerFunc(h.Logout)))
	mux.Handle("GET /auth/status", http.HandlerFunc(h.AuthStatus))
}

func registerShopperActions(mux *http.ServeMux, h *UIHandlers, guard *SessionGuard) {
	wrap := guard.Require(navigation.RegionShopper)
	mux.Handle("POST /shop/select/product", wrap(h.SelectProduct(navigation.ViewShopProduct)))
	mux.Handle("POST /shop/select/category", wrap(h.SelectCategory(navigation.ViewShopCategory)))
	mux.Handle("POST /shop/cart/select", wrap(http.HandlerFunc(h.SelectCartLines)))
	mux.Handle("POST /shop/cart/items", wrap(http.HandlerFunc(h.AddToCart)))
	mux.Handle("POST /shop/cart/items/{id}", wrap(http.HandlerFunc(h.UpdateCartItem)))
	mux.Handle("POST /shop/cart/items/{id}/delete", wrap(http.HandlerFunc(h.RemoveCartItem)))
	mux.Handle("GET /shop/cart/summary", wrap(http.HandlerFunc(h.CartSummary)))
	mux.Handle("GET /shop/cart/summary/stream", wrap(http.HandlerFunc(h.CartSummaryStream)))
	mux.Handle("POST /shop/checkout", wrap(http.HandlerFunc(h.PlaceOrder)))
	mux.Handle("POST /shop/account/profile", wrap(http.HandlerFunc(h.UpdateProfile)))
}

func registerAdminActions(mux *http.ServeMux, h *UIHandlers, guard *SessionGuard) {
	wrap := guard.Require(navigation.RegionAdmin)
	mux.Handle("POST /admin/select/product", wrap(h.SelectProduct(navigation.ViewAdminProduct)))
	mux.Handle("POST /admin/select/category", wrap(h.SelectCategory(navigation.ViewAdminCategory)))
	mux.Handle("POST /admin/products", wrap(http.HandlerFunc(h.CreateProduct)))
	mux.Handle("POST /admin/products/{id}", wrap(http.HandlerFunc(h.UpdateProduct)))
	mux.Handle("POST /admin/products/{id}/delete", wrap(http.HandlerFunc(h.DeleteProduct)))
	mux.Handle("POST /admin/categories", wrap(http.HandlerFunc(h.CreateCategory)))
	mux.Handle("POST /admin/categories/{id}", wrap(http.HandlerFunc(h.UpdateCategory)))
	mux.Handle("POST /admin/categories/{id}/delete", wrap(http.HandlerFunc(h.DeleteCategory)))
	mux.Handle("POST /admin/orders/{id}/status", wrap(http.HandlerFunc(h.UpdateOrderStatus)))
	mux.Handle("POST /admin/settings", wrap(http.HandlerFunc(h.UpdateSettings)))
}

// templateFS picks the template source: an explicit override, disk in dev mode, or the embedded copy.
func templateFS(services RouterServices) fs.FS {
	if services.TemplateFS != nil {
		return services.TemplateFS
	}
	if services.IsDev {
		return os.DirFS(TemplatePathFromRoot)
	}
	sub, err := fs.Sub(storefront.TemplateFS, TemplatePathFromRoot)
	if err != nil {
		return os.DirFS(TemplatePathFromRoot)
	}
	return sub
}

// staticWithFallback serves /static/* assets.
// In dev mode (isDev=true), serves from disk for hot reloading.
// In production mode (isDev=false), serves from embedded FS.
func staticWithFallback(isDev bool, logger *slog.Logger) http.Handler {
	if isDev {
		return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.Dir("frontend/static"))))
	}

	staticSub, err := fs.Sub(storefront.StaticFS, "frontend/static")
	if err != nil {
		logger.Error("failed to create sub-filesystem for static assets", "error", err)
		// Fallback to disk serving if embed fails
		return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.Dir("frontend/static"))))
	}
	return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))
}

//nolint:gochecknoglobals // compiled once
var hashedFilePattern = regexp.MustCompile(`\.[a-f0-9]{8}\.(?:js|css)(?:\.map)?$`)

// staticWithCacheHeaders wraps a static file handler to add appropriate cache headers.
func staticWithCacheHeaders(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hashedFilePattern.MatchString(r.URL.Path) {
			// Hashed assets can be cached for a long time (1 year)
			w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		} else {
			w.Header().Set("Cache-Control", "no-cache")
		}
		handler.ServeHTTP(w, r)
	})
}
