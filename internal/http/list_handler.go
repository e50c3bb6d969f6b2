package httpx

import (
	"context"
	"net/http"
	"net/url"
)

// pageBounds is the limit/offset window passed to list fetchers.
// Limit is one more than the page size so the next page can be detected.
type pageBounds struct {
	Limit  int
	Offset int
}

// FilterParser turns query parameters into the filter of a list view.
// Unknown or malformed values are dropped rather than rejected.
type FilterParser[F any] func(url.Values) F

// FilteredFetcher fetches one window of items matching filters.
type FilteredFetcher[T any, F any] func(ctx context.Context, filters F, b pageBounds) ([]T, error)

// DataEnricher adds view-specific data such as filter echoes and dropdown options.
// It runs before the fetch so the filter form survives a failed fetch.
type DataEnricher[F any] func(ctx context.Context, data map[string]any, filters F) error

// ListHandlerOpts contains all options needed for the generic list handler.
// T is the item type, F the filter type.
type ListHandlerOpts[T any, F any] struct {
	Handler *UIHandlers
	W       http.ResponseWriter
	R       *http.Request
	// Fetcher loads a page of items (required).
	Fetcher FilteredFetcher[T, F]
	// FilterParser is optional; the zero F is used without it.
	FilterParser FilterParser[F]
	EnrichData   DataEnricher[F]
	PageMeta     PageMeta
	// ItemsKey is the template data key for the items, e.g. "Orders".
	ItemsKey string
}

// HandleList renders a paginated, filtered list view through Page, so list
// failures get the same inline error and credential handling as any other view.
//
//	HandleList(ListHandlerOpts[*model.Order, model.OrderStatus]{
//	    Handler:      h,
//	    W:            w,
//	    R:            r,
//	    FilterParser: parseOrderStatusFilter,
//	    Fetcher: func(ctx context.Context, s model.OrderStatus, b pageBounds) ([]*model.Order, error) {
//	        return h.Orders.List(ctx, model.OrderListOptions{Limit: b.Limit, Offset: b.Offset, Status: s})
//	    },
//	    PageMeta: h.meta(navigation.ViewAdminOrders, "Orders"),
//	    ItemsKey: "Orders",
//	})
func HandleList[T, F any](opts ListHandlerOpts[T, F]) {
	if !validateListHandlerDeps(opts) {
		return
	}

	q := opts.R.URL.Query()
	page, pageSize := getPageParams(q)
	var filters F
	if opts.FilterParser != nil {
		filters = opts.FilterParser(q)
	}

	opts.Handler.Page(opts.W, opts.R, PageSpec{
		Meta: opts.PageMeta,
		Fetch: func(ctx context.Context, data map[string]any) error {
			if opts.EnrichData != nil {
				if err := opts.EnrichData(ctx, data, filters); err != nil {
					return err
				}
			}
			items, pg, err := paginate(ctx, pageOpts{Page: page, PageSize: pageSize},
				func(ctx context.Context, limit, offset int) ([]T, error) {
					return opts.Fetcher(ctx, filters, pageBounds{Limit: limit, Offset: offset})
				})
			if err != nil {
				return err
			}
			data[opts.ItemsKey] = items
			applyPagination(data, opts.R, pg)
			return nil
		},
	})
}

// validateListHandlerDeps checks required dependencies and returns false if any are nil.
func validateListHandlerDeps[T, F any](opts ListHandlerOpts[T, F]) bool {
	if opts.W == nil || opts.R == nil || opts.Handler == nil || opts.Fetcher == nil || opts.ItemsKey == "" {
		if opts.W != nil {
			http.Error(opts.W, "Internal configuration error", http.StatusInternalServerError)
		}
		return false
	}
	return true
}
