package httpx

import (
	"fmt"
	"net/http"

	"github.com/target/storefront-ui/internal/domain/navigation"
)

// ViewRouter dispatches document and htmx GETs through the route table.
// Each route is wrapped once, at construction, by the guard for its region.
type ViewRouter struct {
	table    *navigation.Table
	views    map[string]http.Handler
	notFound http.Handler
}

// ViewRouterOptions groups dependencies for NewViewRouter.
type ViewRouterOptions struct {
	Table    *navigation.Table           // Required: route table
	Guard    *SessionGuard               // Required: region gate
	Views    map[string]http.HandlerFunc // Required: one handler per route name
	NotFound http.Handler                // Optional: unmatched paths
}

// NewViewRouter builds the dispatcher. Every table route must have a view;
// a missing one is a programming error and panics at startup.
func NewViewRouter(opts ViewRouterOptions) *ViewRouter {
	if opts.Table == nil {
		panic("route table is required")
	}
	if opts.Guard == nil {
		panic("SessionGuard is required")
	}
	notFound := opts.NotFound
	if notFound == nil {
		notFound = http.NotFoundHandler()
	}

	views := make(map[string]http.Handler, len(opts.Views))
	for _, route := range opts.Table.Routes() {
		view, ok := opts.Views[route.Name]
		if !ok || view == nil {
			panic(fmt.Sprintf("no view registered for route %q", route.Name))
		}
		views[route.Name] = opts.Guard.Require(route.Region)(view)
	}
	return &ViewRouter{
		table:    opts.Table,
		views:    views,
		notFound: opts.Guard.Attach(notFound),
	}
}

// ServeHTTP resolves the path and serves the matched view with its parameter
// exposed through r.PathValue.
func (vr *ViewRouter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m, ok := vr.table.Resolve(r.URL.Path)
	if !ok {
		vr.notFound.ServeHTTP(w, r)
		return
	}
	for name, value := range m.Params {
		r.SetPathValue(name, value)
	}
	vr.views[m.Route.Name].ServeHTTP(w, r)
}
