package httpx

import (
	"context"
	"net/http"

	"github.com/target/storefront-ui/internal/domain/model"
	"github.com/target/storefront-ui/internal/domain/navigation"
)

// AdminDashboard renders the back-office landing page.
func (h *UIHandlers) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: h.meta(navigation.ViewAdminDashboard, "Dashboard"),
		Fetch: func(ctx context.Context, data map[string]any) error {
			d, err := h.Insights.Dashboard(ctx)
			if err != nil {
				return err
			}
			data["Dashboard"] = d
			return nil
		},
	})
}

// AdminProducts lists products with search, category filter and sort.
// Each row posts its product to the selection endpoint before opening the editor.
func (h *UIHandlers) AdminProducts(w http.ResponseWriter, r *http.Request) {
	HandleList(ListHandlerOpts[*model.Product, model.ProductListOptions]{
		Handler:      h,
		W:            w,
		R:            r,
		FilterParser: parseProductFilter,
		EnrichData:   h.productFilterData,
		Fetcher:      h.fetchProducts,
		PageMeta:     h.meta(navigation.ViewAdminProducts, "Products"),
		ItemsKey:     "Products",
	})
}

// AdminProductCreate renders an empty product form.
func (h *UIHandlers) AdminProductCreate(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: h.meta(navigation.ViewAdminProductCreate, "New product"),
		Fetch: func(ctx context.Context, data map[string]any) error {
			data["Mode"] = string(FormModeCreate)
			data["FormData"] = model.ProductRequestFrom(nil)
			return h.withCategories(ctx, data)
		},
	})
}

// AdminProduct renders the product editor for the selected product.
func (h *UIHandlers) AdminProduct(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue(navigation.ParamID)
	h.Page(w, r, PageSpec{
		Meta: h.meta(navigation.ViewAdminProduct, "Edit product"),
		Fetch: func(ctx context.Context, data map[string]any) error {
			p, err := h.selectedProduct(ctx, id)
			if err != nil {
				return err
			}
			data["Mode"] = string(FormModeEdit)
			data["Product"] = p
			data["ProductID"] = p.ID
			data["FormData"] = model.ProductRequestFrom(p)
			return h.withCategories(ctx, data)
		},
	})
}

func (h *UIHandlers) withCategories(ctx context.Context, data map[string]any) error {
	categories, err := h.Catalog.ListCategories(ctx)
	if err != nil {
		return err
	}
	data["Categories"] = categories
	return nil
}

// AdminCategories lists every category with its product count.
func (h *UIHandlers) AdminCategories(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: h.meta(navigation.ViewAdminCategories, "Categories"),
		Fetch: func(ctx context.Context, data map[string]any) error {
			return h.withCategories(ctx, data)
		},
	})
}

// AdminCategoryCreate renders an empty category form.
func (h *UIHandlers) AdminCategoryCreate(w http.ResponseWriter, r *http.Request) {
	data := h.pageData(r, h.meta(navigation.ViewAdminCategoryCreate, "New category"))
	data["Mode"] = string(FormModeCreate)
	data["FormData"] = model.CategoryRequest{}
	h.renderPage(w, r, data)
}

// AdminCategory renders the category editor for the selected category.
func (h *UIHandlers) AdminCategory(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue(navigation.ParamID)
	h.Page(w, r, PageSpec{
		Meta: h.meta(navigation.ViewAdminCategory, "Edit category"),
		Fetch: func(ctx context.Context, data map[string]any) error {
			c, err := h.selectedCategory(ctx, id)
			if err != nil {
				return err
			}
			data["Mode"] = string(FormModeEdit)
			data["Category"] = c
			data["CategoryID"] = c.ID
			data["FormData"] = model.CategoryRequestFrom(c)
			return nil
		},
	})
}

// AdminOrders lists orders, optionally filtered by status.
func (h *UIHandlers) AdminOrders(w http.ResponseWriter, r *http.Request) {
	HandleList(ListHandlerOpts[*model.Order, model.OrderStatus]{
		Handler:      h,
		W:            w,
		R:            r,
		FilterParser: parseOrderStatusFilter,
		EnrichData: func(_ context.Context, data map[string]any, status model.OrderStatus) error {
			data["Status"] = string(status)
			data["Statuses"] = model.OrderStatuses()
			return nil
		},
		Fetcher: func(ctx context.Context, status model.OrderStatus, b pageBounds) ([]*model.Order, error) {
			return h.Orders.List(ctx, model.OrderListOptions{Limit: b.Limit, Offset: b.Offset, Status: status})
		},
		PageMeta: h.meta(navigation.ViewAdminOrders, "Orders"),
		ItemsKey: "Orders",
	})
}

// AdminOrder shows an order with the status update form.
func (h *UIHandlers) AdminOrder(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue(navigation.ParamID)
	h.Page(w, r, PageSpec{
		Meta: h.meta(navigation.ViewAdminOrder, "Order"),
		Fetch: func(ctx context.Context, data map[string]any) error {
			o, err := h.Orders.Get(ctx, id)
			if err != nil {
				return err
			}
			data["Title"] = "Order " + o.Number
			data["PageTitle"] = "Order " + o.Number
			data["Order"] = o
			data["Statuses"] = model.OrderStatuses()
			return nil
		},
	})
}

// AdminCustomers lists customers with a name or email search.
func (h *UIHandlers) AdminCustomers(w http.ResponseWriter, r *http.Request) {
	HandleList(ListHandlerOpts[*model.Customer, string]{
		Handler:      h,
		W:            w,
		R:            r,
		FilterParser: parseSearchFilter,
		EnrichData: func(_ context.Context, data map[string]any, query string) error {
			data["Query"] = query
			return nil
		},
		Fetcher: func(ctx context.Context, query string, b pageBounds) ([]*model.Customer, error) {
			return h.Customers.List(ctx, model.CustomerListOptions{Limit: b.Limit, Offset: b.Offset, Query: query})
		},
		PageMeta: h.meta(navigation.ViewAdminCustomers, "Customers"),
		ItemsKey: "Customers",
	})
}

// AdminCustomer shows a customer and their recent orders.
func (h *UIHandlers) AdminCustomer(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue(navigation.ParamID)
	h.Page(w, r, PageSpec{
		Meta: h.meta(navigation.ViewAdminCustomer, "Customer"),
		Fetch: func(ctx context.Context, data map[string]any) error {
			d, err := h.Customers.Get(ctx, id)
			if err != nil {
				return err
			}
			data["Title"] = d.Customer.Name
			data["PageTitle"] = d.Customer.Name
			data["Customer"] = d.Customer
			data["Orders"] = d.Orders
			return nil
		},
	})
}

// AdminAnalytics shows sales figures for the requested range (7d, 30d or 90d).
func (h *UIHandlers) AdminAnalytics(w http.ResponseWriter, r *http.Request) {
	rng := model.ParseAnalyticsRange(r.URL.Query().Get("range"))
	h.Page(w, r, PageSpec{
		Meta: h.meta(navigation.ViewAdminAnalytics, "Analytics"),
		Fetch: func(ctx context.Context, data map[string]any) error {
			data["Range"] = string(rng)
			data["Ranges"] = []model.AnalyticsRange{model.Range7Days, model.Range30Days, model.Range90Days}
			a, err := h.Insights.Analytics(ctx, rng)
			if err != nil {
				return err
			}
			data["Analytics"] = a
			if peak, ok := a.PeakDay(); ok {
				data["PeakDay"] = peak
			}
			return nil
		},
	})
}

// AdminSettings renders the store settings form.
func (h *UIHandlers) AdminSettings(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: h.meta(navigation.ViewAdminSettings, "Settings"),
		Fetch: func(ctx context.Context, data map[string]any) error {
			s, err := h.Insights.Settings(ctx)
			if err != nil {
				return err
			}
			data["FormData"] = s
			return nil
		},
	})
}
