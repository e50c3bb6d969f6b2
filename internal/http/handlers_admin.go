package httpx

import (
	"context"
	"net/http"

	"github.com/target/storefront-ui/internal/domain/model"
	"github.com/target/storefront-ui/internal/domain/navigation"
)

// productForms adapts the catalog to the generic form flow.
type productForms struct{ catalog CatalogService }

func (f productForms) Create(ctx context.Context, req model.ProductRequest) (any, error) {
	return f.catalog.CreateProduct(ctx, req)
}

func (f productForms) Update(ctx context.Context, id string, req model.ProductRequest) (any, error) {
	return f.catalog.UpdateProduct(ctx, id, req)
}

type categoryForms struct{ catalog CatalogService }

func (f categoryForms) Create(ctx context.Context, req model.CategoryRequest) (any, error) {
	return f.catalog.CreateCategory(ctx, req)
}

func (f categoryForms) Update(ctx context.Context, id string, req model.CategoryRequest) (any, error) {
	return f.catalog.UpdateCategory(ctx, id, req)
}

// CreateProduct handles POST /admin/products.
func (h *UIHandlers) CreateProduct(w http.ResponseWriter, r *http.Request) {
	h.saveProduct(w, r, FormModeCreate, h.meta(navigation.ViewAdminProductCreate, "New product"))
}

// UpdateProduct handles POST /admin/products/{id}.
func (h *UIHandlers) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	h.saveProduct(w, r, FormModeEdit, h.meta(navigation.ViewAdminProduct, "Edit product"))
}

func (h *UIHandlers) saveProduct(w http.ResponseWriter, r *http.Request, mode FormMode, meta PageMeta) {
	extra := map[string]any{"ProductID": r.PathValue(navigation.ParamID)}
	if categories, err := h.Catalog.ListCategories(r.Context()); err == nil {
		extra["Categories"] = categories
	} else {
		h.logger().WarnContext(r.Context(), "categories unavailable for product form", "error", err)
	}

	HandleForm(FormHandlerOpts[model.ProductRequest]{
		W:         w,
		R:         r,
		Mode:      mode,
		Parser:    parseProductForm,
		Service:   productForms{catalog: h.Catalog},
		Renderer:  h.renderPageStatus,
		PageMeta:  meta,
		ExtraData: extra,
		Intercept: h.interceptViewError,
		OnSuccess: func(w http.ResponseWriter, r *http.Request, saved any) {
			ctx := r.Context()
			if p, ok := saved.(*model.Product); ok && p != nil {
				if err := h.Selection.SetCurrentProduct(ctx, PageLoadFromContext(ctx), p); err != nil {
					h.logger().DebugContext(ctx, "saved product not selected", "error", err)
				}
			}
			triggerToast(w, "Product saved", "success")
			h.navigate(w, r, h.href(navigation.ViewAdminProducts, ""))
		},
	})
}

// DeleteProduct handles POST /admin/products/{id}/delete.
func (h *UIHandlers) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.Catalog.DeleteProduct(r.Context(), r.PathValue(navigation.ParamID)); err != nil {
		if h.interceptViewError(w, r, err) {
			return
		}
		h.actionFailed(w, r, err)
		return
	}
	triggerToast(w, "Product deleted", "success")
	h.navigate(w, r, h.href(navigation.ViewAdminProducts, ""))
}

// CreateCategory handles POST /admin/categories.
func (h *UIHandlers) CreateCategory(w http.ResponseWriter, r *http.Request) {
	h.saveCategory(w, r, FormModeCreate, h.meta(navigation.ViewAdminCategoryCreate, "New category"))
}

// UpdateCategory handles POST /admin/categories/{id}.
func (h *UIHandlers) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	h.saveCategory(w, r, FormModeEdit, h.meta(navigation.ViewAdminCategory, "Edit category"))
}

func (h *UIHandlers) saveCategory(w http.ResponseWriter, r *http.Request, mode FormMode, meta PageMeta) {
	HandleForm(FormHandlerOpts[model.CategoryRequest]{
		W:         w,
		R:         r,
		Mode:      mode,
		Parser:    parseCategoryForm,
		Service:   categoryForms{catalog: h.Catalog},
		Renderer:  h.renderPageStatus,
		PageMeta:  meta,
		ExtraData: map[string]any{"CategoryID": r.PathValue(navigation.ParamID)},
		Intercept: h.interceptViewError,
		OnSuccess: func(w http.ResponseWriter, r *http.Request, saved any) {
			ctx := r.Context()
			if c, ok := saved.(*model.Category); ok && c != nil {
				if err := h.Selection.SetCurrentCategory(ctx, PageLoadFromContext(ctx), c); err != nil {
					h.logger().DebugContext(ctx, "saved category not selected", "error", err)
				}
			}
			triggerToast(w, "Category saved", "success")
			h.navigate(w, r, h.href(navigation.ViewAdminCategories, ""))
		},
	})
}

// DeleteCategory handles POST /admin/categories/{id}/delete.
func (h *UIHandlers) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.Catalog.DeleteCategory(r.Context(), r.PathValue(navigation.ParamID)); err != nil {
		if h.interceptViewError(w, r, err) {
			return
		}
		h.actionFailed(w, r, err)
		return
	}
	triggerToast(w, "Category deleted", "success")
	h.navigate(w, r, h.href(navigation.ViewAdminCategories, ""))
}

// UpdateOrderStatus handles POST /admin/orders/{id}/status.
func (h *UIHandlers) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue(navigation.ParamID)
	o, err := h.Orders.UpdateStatus(r.Context(), id, formValue(r, "status"))
	if err != nil {
		if h.interceptViewError(w, r, err) {
			return
		}
		h.actionFailed(w, r, err)
		return
	}
	triggerToast(w, "Order "+o.Number+" is now "+string(o.Status), "success")
	h.navigate(w, r, h.href(navigation.ViewAdminOrder, o.ID))
}

// UpdateSettings handles POST /admin/settings.
func (h *UIHandlers) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	in, fieldErrors := parseSettingsForm(r)
	meta := h.meta(navigation.ViewAdminSettings, "Settings")
	extra := map[string]any{"FormData": in}
	if len(fieldErrors) > 0 {
		h.renderFormError(ErrorOpts{W: w, R: r, FieldErrors: fieldErrors, PageMeta: meta, Data: extra})
		return
	}
	if _, err := h.Insights.UpdateSettings(r.Context(), in); err != nil {
		if h.interceptViewError(w, r, err) {
			return
		}
		h.renderFormError(ErrorOpts{W: w, R: r, Err: err, PageMeta: meta, Data: extra})
		return
	}
	triggerToast(w, "Settings saved", "success")
	h.navigate(w, r, h.href(navigation.ViewAdminSettings, ""))
}
