package httpx

import (
	"context"
	"net/http"

	"github.com/target/storefront-ui/internal/domain/model"
	"github.com/target/storefront-ui/internal/domain/navigation"
	apperrors "github.com/target/storefront-ui/internal/errors"
	"github.com/target/storefront-ui/internal/http/ui/storefront"
	"github.com/target/storefront-ui/internal/service"
)

const (
	featuredProducts = 8
	recentOrders     = 5
)

// ShopHome shows featured products and the category strip.
func (h *UIHandlers) ShopHome(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: h.meta(navigation.ViewShopHome, "Shop"),
		Fetch: func(ctx context.Context, data map[string]any) error {
			products, err := h.Catalog.ListProducts(ctx, model.ProductListOptions{Limit: featuredProducts, Sort: "created_at", Dir: SortDirDesc})
			if err != nil {
				return err
			}
			categories, err := h.Catalog.ListCategories(ctx)
			if err != nil {
				return err
			}
			data["Products"] = products
			data["Categories"] = categories
			return nil
		},
	})
}

// ShopProducts lists the catalog with search, category filter and sort.
func (h *UIHandlers) ShopProducts(w http.ResponseWriter, r *http.Request) {
	HandleList(ListHandlerOpts[*model.Product, model.ProductListOptions]{
		Handler:      h,
		W:            w,
		R:            r,
		FilterParser: parseProductFilter,
		EnrichData:   h.productFilterData,
		Fetcher:      h.fetchProducts,
		PageMeta:     h.meta(navigation.ViewShopProducts, "Products"),
		ItemsKey:     "Products",
	})
}

func (h *UIHandlers) fetchProducts(ctx context.Context, f model.ProductListOptions, b pageBounds) ([]*model.Product, error) {
	f.Limit, f.Offset = b.Limit, b.Offset
	return h.Catalog.ListProducts(ctx, f)
}

// productFilterData echoes the product filters and loads the category dropdown.
func (h *UIHandlers) productFilterData(ctx context.Context, data map[string]any, f model.ProductListOptions) error {
	data["Query"] = f.Query
	data["CategoryID"] = f.CategoryID
	data["Sort"] = sortValue(f)
	data["Sorts"] = productSortOptions
	categories, err := h.Catalog.ListCategories(ctx)
	if err != nil {
		return err
	}
	data["Categories"] = categories
	return nil
}

// ShopProduct shows one product, reading the current product slot before asking the API.
func (h *UIHandlers) ShopProduct(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue(navigation.ParamID)
	h.Page(w, r, PageSpec{
		Meta: h.meta(navigation.ViewShopProduct, "Product"),
		Fetch: func(ctx context.Context, data map[string]any) error {
			p, err := h.selectedProduct(ctx, id)
			if err != nil {
				return err
			}
			data["Title"] = p.Name
			data["PageTitle"] = p.Name
			data["Product"] = p
			return nil
		},
	})
}

// ShopCategories lists every category.
func (h *UIHandlers) ShopCategories(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: h.meta(navigation.ViewShopCategories, "Categories"),
		Fetch: func(ctx context.Context, data map[string]any) error {
			categories, err := h.Catalog.ListCategories(ctx)
			if err != nil {
				return err
			}
			data["Categories"] = categories
			return nil
		},
	})
}

// ShopCategory shows a category and a page of its products.
func (h *UIHandlers) ShopCategory(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue(navigation.ParamID)
	page, pageSize := getPageParams(r.URL.Query())
	h.Page(w, r, PageSpec{
		Meta: h.meta(navigation.ViewShopCategory, "Category"),
		Fetch: func(ctx context.Context, data map[string]any) error {
			c, err := h.selectedCategory(ctx, id)
			if err != nil {
				return err
			}
			items, pg, err := paginate(ctx, pageOpts{Page: page, PageSize: pageSize},
				func(ctx context.Context, limit, offset int) ([]*model.Product, error) {
					return h.Catalog.CategoryProducts(ctx, c.ID, model.ProductListOptions{Limit: limit, Offset: offset})
				})
			if err != nil {
				return err
			}
			data["Title"] = c.Name
			data["PageTitle"] = c.Name
			data["Category"] = c
			data["Products"] = items
			applyPagination(data, r, pg)
			return nil
		},
	})
}

// ShopCart shows the cart with the lines picked for checkout in this page load.
func (h *UIHandlers) ShopCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	layout := h.layout(r, h.meta(navigation.ViewShopCart, "Cart"))

	cart, err := h.Cart.Get(ctx)
	if err != nil {
		if h.interceptViewError(w, r, err) {
			return
		}
		page := storefront.NewCartPage(layout, nil, nil, false)
		page.Error, page.ErrorMessage = true, apperrors.UserMessage(err)
		h.renderPageStatus(w, r, page, pageErrorStatus(r, err))
		return
	}

	selected, ok := h.Selection.SelectedCartLines(ctx, PageLoadFromContext(ctx))
	if !ok {
		if ids := lineIDsFromQuery(r); len(ids) > 0 {
			selected, ok = cart.LinesByID(ids), true
		}
	}
	h.renderPage(w, r, storefront.NewCartPage(layout, cart, selected, ok))
}

// ShopCheckout shows the checkout form for the selected cart lines.
// Without a selection in this page load the whole cart is offered.
func (h *UIHandlers) ShopCheckout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	layout := h.layout(r, h.meta(navigation.ViewShopCheckout, "Checkout"))

	lines, err := h.checkoutLines(ctx, r)
	if err != nil {
		if h.interceptViewError(w, r, err) {
			return
		}
		page := storefront.NewCheckoutPage(layout, nil, model.CheckoutRequest{})
		page.Error, page.ErrorMessage = true, apperrors.UserMessage(err)
		h.renderPageStatus(w, r, page, pageErrorStatus(r, err))
		return
	}

	form := model.CheckoutRequest{}
	if p, perr := h.Account.Profile(ctx); perr == nil && p != nil {
		form.ShippingAddress = p.Address
	} else if perr != nil {
		h.logger().DebugContext(ctx, "checkout prefill skipped", "error", perr)
	}
	h.renderPage(w, r, storefront.NewCheckoutPage(layout, lines, form))
}

// checkoutLines resolves the selected lines against the current cart.
// The slot wins; plain-form redirects carry the ids in the query instead.
// An empty selection counts as none and offers the whole cart.
func (h *UIHandlers) checkoutLines(ctx context.Context, r *http.Request) ([]model.CartLine, error) {
	if ids := h.selectedLineIDs(ctx, r); len(ids) > 0 {
		return h.Cart.ResolveLines(ctx, ids)
	}
	h.Selection.RecordFallback(service.SlotSelectedCartLines)
	cart, err := h.Cart.Get(ctx)
	if err != nil {
		return nil, err
	}
	return cart.Lines, nil
}

// ShopAccount is the shopper's overview: profile card and latest orders.
func (h *UIHandlers) ShopAccount(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: h.meta(navigation.ViewShopAccount, "My account"),
		Fetch: func(ctx context.Context, data map[string]any) error {
			profile, err := h.Account.Profile(ctx)
			if err != nil {
				return err
			}
			orders, err := h.Account.Orders(ctx, model.OrderListOptions{Limit: recentOrders})
			if err != nil {
				return err
			}
			data["Profile"] = profile
			data["Orders"] = orders
			return nil
		},
	})
}

// ShopOrders lists the shopper's own orders.
func (h *UIHandlers) ShopOrders(w http.ResponseWriter, r *http.Request) {
	HandleList(ListHandlerOpts[*model.Order, struct{}]{
		Handler: h,
		W:       w,
		R:       r,
		Fetcher: func(ctx context.Context, _ struct{}, b pageBounds) ([]*model.Order, error) {
			return h.Account.Orders(ctx, model.OrderListOptions{Limit: b.Limit, Offset: b.Offset})
		},
		PageMeta: h.meta(navigation.ViewShopOrders, "My orders"),
		ItemsKey: "Orders",
	})
}

// ShopOrder shows one of the shopper's orders.
func (h *UIHandlers) ShopOrder(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue(navigation.ParamID)
	h.Page(w, r, PageSpec{
		Meta: h.meta(navigation.ViewShopOrder, "Order"),
		Fetch: func(ctx context.Context, data map[string]any) error {
			o, err := h.Account.Order(ctx, id)
			if err != nil {
				return err
			}
			data["Title"] = "Order " + o.Number
			data["PageTitle"] = "Order " + o.Number
			data["Order"] = o
			return nil
		},
	})
}

// ShopProfile renders the profile form prefilled from the API.
func (h *UIHandlers) ShopProfile(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: h.meta(navigation.ViewShopProfile, "Profile"),
		Fetch: func(ctx context.Context, data map[string]any) error {
			p, err := h.Account.Profile(ctx)
			if err != nil {
				return err
			}
			data["Profile"] = p
			data["FormData"] = model.ProfileRequest{Name: p.Name, Phone: p.Phone, Address: p.Address}
			data["Countries"] = storefront.Countries()
			return nil
		},
	})
}

// selectedProduct returns the current product slot when it holds id, otherwise fetches it
// and refills the slot for the rest of the page load.
func (h *UIHandlers) selectedProduct(ctx context.Context, id string) (*model.Product, error) {
	scope := PageLoadFromContext(ctx)
	if p, ok := h.Selection.CurrentProduct(ctx, scope); ok && p.ID == id {
		return p, nil
	}
	h.Selection.RecordFallback(service.SlotCurrentProduct)
	p, err := h.Catalog.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := h.Selection.SetCurrentProduct(ctx, scope, p); err != nil {
		h.logger().DebugContext(ctx, "product slot not refilled", "error", err)
	}
	return p, nil
}

// selectedCategory is selectedProduct for the current category slot.
func (h *UIHandlers) selectedCategory(ctx context.Context, id string) (*model.Category, error) {
	scope := PageLoadFromContext(ctx)
	if c, ok := h.Selection.CurrentCategory(ctx, scope); ok && c.ID == id {
		return c, nil
	}
	h.Selection.RecordFallback(service.SlotCurrentCategory)
	c, err := h.Catalog.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := h.Selection.SetCurrentCategory(ctx, scope, c); err != nil {
		h.logger().DebugContext(ctx, "category slot not refilled", "error", err)
	}
	return c, nil
}
