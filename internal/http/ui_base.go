package httpx

import (
	"context"
	"html"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	domainauth "github.com/target/storefront-ui/internal/domain/auth"
	"github.com/target/storefront-ui/internal/domain/model"
	"github.com/target/storefront-ui/internal/domain/navigation"
	apperrors "github.com/target/storefront-ui/internal/errors"
	"github.com/target/storefront-ui/internal/http/ui/viewmodel"
	"github.com/target/storefront-ui/internal/observability/metrics"
	"github.com/target/storefront-ui/internal/observability/statsd"
	"github.com/target/storefront-ui/internal/service"
)

const errMsgFixBelow = "Please fix the errors below."

// AuthService is the subset of authentication the UI needs.
type AuthService interface {
	SessionResolver
	Login(ctx context.Context, req model.LoginRequest) (domainauth.Credential, error)
	Register(ctx context.Context, req model.RegisterRequest) (domainauth.Credential, error)
	Logout(ctx context.Context) error
}

// CatalogService is a minimal interface for the product and category views.
type CatalogService interface {
	ListProducts(ctx context.Context, opts model.ProductListOptions) ([]*model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	CreateProduct(ctx context.Context, req model.ProductRequest) (*model.Product, error)
	UpdateProduct(ctx context.Context, id string, req model.ProductRequest) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]*model.Category, error)
	GetCategory(ctx context.Context, id string) (*model.Category, error)
	CreateCategory(ctx context.Context, req model.CategoryRequest) (*model.Category, error)
	UpdateCategory(ctx context.Context, id string, req model.CategoryRequest) (*model.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	CategoryProducts(ctx context.Context, id string, opts model.ProductListOptions) ([]*model.Product, error)
}

// CartService is a minimal interface for the cart and checkout views.
type CartService interface {
	Get(ctx context.Context) (*model.Cart, error)
	Summary(ctx context.Context) (model.CartSummary, error)
	Add(ctx context.Context, req model.CartItemRequest) (*model.Cart, error)
	SetQuantity(ctx context.Context, lineID string, quantity int) (*model.Cart, error)
	Remove(ctx context.Context, lineID string) (*model.Cart, error)
	ResolveLines(ctx context.Context, ids []string) ([]model.CartLine, error)
	Checkout(ctx context.Context, req model.CheckoutRequest) (*model.Order, error)
}

// OrdersService is a minimal interface for back-office order views.
type OrdersService interface {
	List(ctx context.Context, opts model.OrderListOptions) ([]*model.Order, error)
	Get(ctx context.Context, id string) (*model.Order, error)
	UpdateStatus(ctx context.Context, id, status string) (*model.Order, error)
}

// CustomersService is a minimal interface for back-office customer views.
type CustomersService interface {
	List(ctx context.Context, opts model.CustomerListOptions) ([]*model.Customer, error)
	Get(ctx context.Context, id string) (*service.CustomerDetail, error)
}

// AccountService is a minimal interface for the shopper's account views.
type AccountService interface {
	Profile(ctx context.Context) (*model.Profile, error)
	UpdateProfile(ctx context.Context, req model.ProfileRequest) (*model.Profile, error)
	Orders(ctx context.Context, opts model.OrderListOptions) ([]*model.Order, error)
	Order(ctx context.Context, id string) (*model.Order, error)
}

// InsightsService is a minimal interface for dashboard, analytics and settings views.
type InsightsService interface {
	Dashboard(ctx context.Context) (*model.Dashboard, error)
	Analytics(ctx context.Context, r model.AnalyticsRange) (*model.AnalyticsSummary, error)
	Settings(ctx context.Context) (*model.Settings, error)
	UpdateSettings(ctx context.Context, s model.Settings) (*model.Settings, error)
}

// SelectionStore carries selections from one view to the next within a page load.
type SelectionStore interface {
	CurrentProduct(ctx context.Context, scope string) (*model.Product, bool)
	SetCurrentProduct(ctx context.Context, scope string, p *model.Product) error
	CurrentCategory(ctx context.Context, scope string) (*model.Category, bool)
	SetCurrentCategory(ctx context.Context, scope string, c *model.Category) error
	SelectedCartLines(ctx context.Context, scope string) ([]model.CartLine, bool)
	SetSelectedCartLines(ctx context.Context, scope string, lines []model.CartLine) error
	ClearSelectedCartLines(ctx context.Context, scope string) error
	Reset(ctx context.Context, scope string) error
	RecordFallback(slot service.Slot)
}

// Compile-time interface assertions to ensure concrete services satisfy their UI interfaces.
var (
	_ AuthService      = (*service.AuthService)(nil)
	_ CatalogService   = (*service.CatalogService)(nil)
	_ CartService      = (*service.CartService)(nil)
	_ OrdersService    = (*service.OrderService)(nil)
	_ CustomersService = (*service.CustomerService)(nil)
	_ AccountService   = (*service.AccountService)(nil)
	_ InsightsService  = (*service.InsightsService)(nil)
	_ SelectionStore   = (*service.SelectionStore)(nil)
)

// UIHandlers serves browser-facing routes.
type UIHandlers struct {
	T         *TemplateRenderer
	Routes    *navigation.Table
	Auth      AuthService
	Catalog   CatalogService
	Cart      CartService
	Orders    OrdersService
	Customers CustomersService
	Account   AccountService
	Insights  InsightsService
	Selection SelectionStore
	Cookies   CredentialCookies
	// SummaryInterval paces the cart summary stream and the header badge poll.
	SummaryInterval time.Duration
	Metrics         statsd.Sink
	IsDev           bool // Development mode flag for enhanced error reporting
	Logger          *slog.Logger
}

// logger returns the configured logger or falls back to slog.Default().
func (h *UIHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

func (h *UIHandlers) summaryInterval() time.Duration {
	if h.SummaryInterval <= 0 {
		return 30 * time.Second
	}
	return h.SummaryInterval
}

// href resolves a named view; unknown names fall back to the site root.
func (h *UIHandlers) href(name, id string) string {
	routes := h.Routes
	if routes == nil {
		routes = navigation.Storefront()
	}
	p, err := routes.Href(name, id)
	if err != nil {
		h.logger().Error("href failed", "view", name, "error", err)
		return "/"
	}
	return p
}

// getPageParams parses pagination params from URL query with sane defaults.
func getPageParams(q url.Values) (int, int) {
	page := 1
	pageSize := 12
	if p := q.Get("page"); p != "" {
		if n, err := strconv.Atoi(p); err == nil && n > 0 {
			page = n
		}
	}
	if s := q.Get("page_size"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 100 {
			pageSize = n
		}
	}
	return page, pageSize
}

// pageOpts represents pagination options for list views.
type pageOpts struct {
	Page     int
	PageSize int
}

// LimitAndOffset returns limit/offset used for pagination fetches,
// always fetching one extra item to detect next-page availability.
func (p pageOpts) LimitAndOffset() (int, int) {
	page := p.Page
	if page <= 0 {
		page = 1
	}
	pageSize := p.PageSize
	if pageSize <= 0 {
		pageSize = 12
	}
	limit := pageSize + 1
	offset := (page - 1) * pageSize
	return limit, offset
}

// paginate is a generic paginator for limit/offset list endpoints.
func paginate[T any](
	ctx context.Context,
	p pageOpts,
	fetch func(context.Context, int, int) ([]T, error),
) ([]T, PaginationData, error) {
	limit, offset := p.LimitAndOffset()
	items, err := fetch(ctx, limit, offset)
	if err != nil {
		return nil, PaginationData{}, err
	}
	meta := PaginationData{Page: p.Page, PageSize: p.PageSize, HasPrev: p.Page > 1}
	if len(items) > p.PageSize {
		meta.HasNext = true
		items = items[:p.PageSize]
	}
	if len(items) > 0 {
		meta.StartIndex = offset + 1
		meta.EndIndex = offset + len(items)
	}
	return items, meta, nil
}

// triggerToast sends a standardized HX-Trigger payload for toast notifications.
func triggerToast(w http.ResponseWriter, message, toastType string) {
	if w == nil || strings.TrimSpace(message) == "" {
		return
	}
	HTMX(w).Trigger("showToast", map[string]any{
		"message": message,
		"type":    strings.TrimSpace(toastType),
	})
}

// buildPageURL returns a URL with page and page_size set, preserving other query params.
// Whitespace-only values and htmx transport params are dropped.
func buildPageURL(basePath string, q url.Values, p pageOpts) string {
	qq := make(url.Values, len(q))
	for k, v := range q {
		if strings.HasPrefix(k, "hx-") || strings.HasPrefix(k, "hx_") {
			continue
		}
		tmp := make([]string, 0, len(v))
		for _, s := range v {
			if strings.TrimSpace(s) != "" {
				tmp = append(tmp, s)
			}
		}
		if len(tmp) > 0 {
			qq[k] = tmp
		}
	}
	qq.Set("page", strconv.Itoa(p.Page))
	qq.Set("page_size", strconv.Itoa(p.PageSize))
	if enc := qq.Encode(); enc != "" {
		return basePath + "?" + enc
	}
	return basePath
}

// PageMeta contains metadata for page rendering.
type PageMeta struct {
	Title       string
	PageTitle   string
	CurrentPage string
	Region      navigation.Region
}

// meta derives page metadata from the route table entry of a view.
func (h *UIHandlers) meta(view, title string) PageMeta {
	region := navigation.RegionPublic
	if r, ok := h.routes().Lookup(view); ok {
		region = r.Region
	}
	return PageMeta{Title: title, PageTitle: title, CurrentPage: view, Region: region}
}

// buildLayout constructs shared layout metadata from the request/session context.
func buildLayout(r *http.Request, meta PageMeta) viewmodel.Layout {
	region := meta.Region
	if region == "" {
		region = navigation.RegionPublic
	}
	layout := viewmodel.Layout{
		Title:       meta.Title,
		PageTitle:   meta.PageTitle,
		CurrentPage: meta.CurrentPage,
		Region:      string(region),
		CSRFToken:   GetCSRFToken(r),
		PageLoadID:  PageLoadFromContext(r.Context()),
	}

	if session := GetSessionFromContext(r.Context()); session != nil {
		layout.User = &viewmodel.User{
			Name:  session.Name,
			Email: session.Email,
			Role:  string(session.Role),
		}
		layout.IsAuthenticated = true
		layout.IsAdmin = session.IsAdmin()
	}

	return layout
}

// layout builds the shared chrome for typed view models.
func (h *UIHandlers) layout(r *http.Request, meta PageMeta) viewmodel.Layout {
	l := buildLayout(r, meta)
	l.CartPollSeconds = int(h.summaryInterval() / time.Second)
	return l
}

// basePageData constructs the common page data map with user context.
func basePageData(r *http.Request, meta PageMeta) map[string]any {
	return layoutMap(buildLayout(r, meta))
}

func layoutMap(layout viewmodel.Layout) map[string]any {
	data := map[string]any{
		"Title":           layout.Title,
		"PageTitle":       layout.PageTitle,
		"CurrentPage":     layout.CurrentPage,
		"Region":          layout.Region,
		"IsAuthenticated": layout.IsAuthenticated,
		"IsAdmin":         layout.IsAdmin,
		"PageLoadID":      layout.PageLoadID,
		"CartPollSeconds": layout.CartPollSeconds,
	}
	if layout.CSRFToken != "" {
		data["CSRFToken"] = layout.CSRFToken
	}
	if layout.User != nil {
		data["User"] = layout.User
	}
	return data
}

// pageData is basePageData plus handler-level chrome settings.
func (h *UIHandlers) pageData(r *http.Request, meta PageMeta) map[string]any {
	return layoutMap(h.layout(r, meta))
}

// PageSpec defines metadata and an optional fetch for page-specific data.
type PageSpec struct {
	Meta  PageMeta
	Fetch func(ctx context.Context, data map[string]any) error
}

// Page builds base data, optionally fetches content data, and renders.
// Fetch errors are shown inline except for an expired credential, which
// sends the user back to sign in, and a canceled request, which writes nothing.
func (h *UIHandlers) Page(w http.ResponseWriter, r *http.Request, spec PageSpec) {
	data := h.pageData(r, spec.Meta)
	status := http.StatusOK
	if spec.Fetch != nil {
		if err := spec.Fetch(r.Context(), data); err != nil {
			if h.interceptViewError(w, r, err) {
				return
			}
			markPageError(data, err)
			status = pageErrorStatus(r, err)
		}
	}
	h.renderPageStatus(w, r, data, status)
}

// interceptViewError handles the failures that must not render inline.
// It reports whether the response has been dealt with.
func (h *UIHandlers) interceptViewError(w http.ResponseWriter, r *http.Request, err error) bool {
	switch {
	case apperrors.IsCanceled(err) || r.Context().Err() != nil:
		h.logger().DebugContext(r.Context(), "request superseded", "path", r.URL.Path)
		return true
	case apperrors.IsUnauthorized(err):
		region := navigation.RegionPublic
		if m, ok := h.routes().Resolve(r.URL.Path); ok {
			region = m.Route.Region
		}
		metrics.EmitGuardDecision(h.Metrics, string(region), metrics.GuardUnauthorized)
		h.logger().InfoContext(r.Context(), "credential rejected by store API", "path", r.URL.Path)
		h.Cookies.Clear(w, r)
		redirectToLogin(w, r)
		return true
	default:
		return false
	}
}

func (h *UIHandlers) routes() *navigation.Table {
	if h.Routes != nil {
		return h.Routes
	}
	return navigation.Storefront()
}

// pageErrorStatus keeps htmx swaps at 200 so the inline error is shown.
func pageErrorStatus(r *http.Request, err error) int {
	if WantsPartial(r) {
		return http.StatusOK
	}
	return apperrors.HTTPStatus(err)
}

func markPageError(data map[string]any, err error) {
	data["Error"] = true
	if _, ok := data["ErrorMessage"]; ok {
		return
	}
	data["ErrorMessage"] = apperrors.UserMessage(err)
}

// renderPage renders a page with proper HTMX partial support.
func (h *UIHandlers) renderPage(w http.ResponseWriter, r *http.Request, data any) {
	h.renderPageStatus(w, r, data, http.StatusOK)
}

func (h *UIHandlers) renderPageStatus(w http.ResponseWriter, r *http.Request, data any, status int) {
	if !WantsPartial(r) {
		body, err := h.T.ExecuteFragment("layout", data)
		if err != nil {
			h.logAndRenderTemplateError(w, r, err, "full page render")
			return
		}
		h.writeHTML(w, status, body)
		return
	}

	layout := extractLayoutInfo(data)
	content, err := h.T.ExecuteFragment(ContentTemplateFor(layout.CurrentPage), data)
	if err != nil {
		h.logAndRenderTemplateError(w, r, err, "partial content render")
		return
	}

	// Hint client JS to update nav active state based on current path
	SetHXTrigger(w, "nav:activate", map[string]string{"path": r.URL.Path})

	var b strings.Builder
	// A <title> element lets htmx update document.title on partial swaps.
	b.WriteString(`<title>` + html.EscapeString(layout.Title) + `</title>`)
	b.WriteString(`<h1 id="header-title" class="header-title" hx-swap-oob="outerHTML">` +
		html.EscapeString(layout.PageTitle) + `</h1>`)
	b.Write(content)
	h.writeHTML(w, status, []byte(b.String()))
}

func (h *UIHandlers) writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		h.logger().Error("failed to write response", "error", err)
	}
}

func extractLayoutInfo(data any) viewmodel.Layout {
	if provider, ok := data.(viewmodel.LayoutProvider); ok {
		if l := provider.LayoutData(); l != nil {
			return *l
		}
	}

	m, ok := data.(map[string]any)
	if !ok {
		return viewmodel.Layout{}
	}
	layout := viewmodel.Layout{}
	if v, ok := m["Title"].(string); ok {
		layout.Title = v
	}
	if v, ok := m["PageTitle"].(string); ok {
		layout.PageTitle = v
	}
	if v, ok := m["CurrentPage"].(string); ok {
		layout.CurrentPage = v
	}
	return layout
}

// logAndRenderTemplateError logs template errors and renders them in dev mode.
func (h *UIHandlers) logAndRenderTemplateError(w http.ResponseWriter, r *http.Request, err error, context string) {
	h.logger().Error("template rendering failed",
		"error", err,
		"context", context,
		"path", r.URL.Path,
		"method", r.Method,
	)

	if h.IsDev {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		if _, writeErr := w.Write([]byte(`<div class="dev-error"><h2>Template Rendering Error</h2>` +
			`<p><strong>Context:</strong> ` + html.EscapeString(context) + `</p>` +
			`<p><strong>Path:</strong> ` + html.EscapeString(r.URL.Path) + `</p>` +
			`<pre>` + html.EscapeString(err.Error()) + `</pre></div>`)); writeErr != nil {
			h.logger().Error("failed to write template error response", "error", writeErr)
		}
		return
	}

	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// navigate moves the browser to path after a successful POST.
// htmx requests swap the main region and keep the current page load, so
// selection slots written by this request are readable by the next view.
// Plain form posts get a 303, which starts a new page load; callers do not
// write slots for them and carry what the next view needs in path instead.
func (h *UIHandlers) navigate(w http.ResponseWriter, r *http.Request, path string) {
	if !IsHTMX(r) {
		http.Redirect(w, r, path, http.StatusSeeOther)
		return
	}
	loc := HXLocation{Path: path, Target: "#main-content"}
	if scope := PageLoadFromContext(r.Context()); scope != "" {
		loc.Headers = map[string]string{HeaderPageLoad: scope}
	}
	HTMX(w).Location(loc)
}
