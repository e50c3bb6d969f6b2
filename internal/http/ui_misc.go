package httpx

import (
	"net/http"

	"github.com/target/storefront-ui/internal/domain/navigation"
)

// Home is the public landing page. It never calls the store API.
func (h *UIHandlers) Home(w http.ResponseWriter, r *http.Request) {
	data := h.pageData(r, h.meta(navigation.ViewHome, "Welcome"))
	if s := GetSessionFromContext(r.Context()); s != nil {
		data["ContinueURL"] = h.homeFor(s, "")
	}
	h.renderPage(w, r, data)
}

// InfoSection is one block of a static shop page.
type InfoSection struct {
	Heading string
	Body    string
}

//nolint:gochecknoglobals // static read-only page copy
var infoPages = map[string][]InfoSection{
	navigation.ViewShopAbout: {
		{Heading: "Who we are", Body: "An independent shop selling a small, carefully chosen catalog."},
		{Heading: "How we ship", Body: "Orders leave our warehouse within two business days."},
	},
	navigation.ViewShopContact: {
		{Heading: "Email", Body: "Write to us any time and we answer within one business day."},
		{Heading: "Order questions", Body: "Include your order number so we can find it quickly."},
	},
	navigation.ViewShopFAQ: {
		{Heading: "Can I change an order?", Body: "Orders can be changed until they are marked as shipped."},
		{Heading: "Which payment methods do you accept?", Body: "Card, cash on delivery and bank transfer."},
		{Heading: "Do prices include tax?", Body: "Prices are shown as charged; tax is added at checkout where it applies."},
	},
}

// InfoPage renders a static shop page; the view name selects its copy.
func (h *UIHandlers) InfoPage(view, title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := h.pageData(r, h.meta(view, title))
		data["Sections"] = infoPages[view]
		h.renderPage(w, r, data)
	}
}

// NotFound renders the 404 page inside the normal layout.
func (h *UIHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	meta := PageMeta{Title: "Page not found", PageTitle: "Page not found", CurrentPage: PageNotFound}
	if s := GetSessionFromContext(r.Context()); s != nil {
		meta.Region = regionForSession(s.IsAdmin())
	}
	data := h.pageData(r, meta)
	data["Path"] = r.URL.Path
	h.renderPageStatus(w, r, data, http.StatusNotFound)
}

// Forbidden renders the access-denied page for a signed-in user lacking the region's role.
// htmx requests get the fragment with a 200 so the message is swapped in.
func (h *UIHandlers) Forbidden(w http.ResponseWriter, r *http.Request) {
	meta := PageMeta{Title: "Access denied", PageTitle: "Access denied", CurrentPage: PageForbidden}
	if s := GetSessionFromContext(r.Context()); s != nil {
		meta.Region = regionForSession(s.IsAdmin())
		data := h.pageData(r, meta)
		data["HomeURL"] = h.homeFor(s, "")
		status := http.StatusForbidden
		if WantsPartial(r) {
			status = http.StatusOK
		}
		h.renderPageStatus(w, r, data, status)
		return
	}
	h.renderPageStatus(w, r, h.pageData(r, meta), http.StatusForbidden)
}

func regionForSession(admin bool) navigation.Region {
	if admin {
		return navigation.RegionAdmin
	}
	return navigation.RegionShopper
}

// CSRFRejected answers a mutation whose CSRF token is missing or stale.
// htmx callers keep their page and see a toast.
func (h *UIHandlers) CSRFRejected(w http.ResponseWriter, r *http.Request) {
	h.logger().WarnContext(r.Context(), "csrf token rejected", "path", r.URL.Path, "htmx", IsHTMX(r))
	if IsHTMX(r) {
		triggerToast(w, "Your session form expired. Reload the page and try again.", "error")
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Error(w, "Your form expired. Go back, reload the page and try again.", http.StatusForbidden)
}
