package httpx

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/target/storefront-ui/internal/domain/model"
	"github.com/target/storefront-ui/internal/domain/navigation"
	apperrors "github.com/target/storefront-ui/internal/errors"
)

func testOrders(n int) []*model.Order {
	out := make([]*model.Order, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, &model.Order{
			ID:     fmt.Sprintf("o%d", i),
			Number: fmt.Sprintf("SO-%04d", i),
			Status: model.OrderStatusPaid,
		})
	}
	return out
}

// windowFetcher serves items by limit/offset and records the bounds it was asked for.
func windowFetcher(items []*model.Order, seen *[]pageBounds, gotFilter *model.OrderStatus) FilteredFetcher[*model.Order, model.OrderStatus] {
	return func(_ context.Context, f model.OrderStatus, b pageBounds) ([]*model.Order, error) {
		*seen = append(*seen, b)
		if gotFilter != nil {
			*gotFilter = f
		}
		if b.Offset >= len(items) {
			return nil, nil
		}
		end := b.Offset + b.Limit
		if end > len(items) {
			end = len(items)
		}
		return items[b.Offset:end], nil
	}
}

func newListTestHandlers(t *testing.T) *UIHandlers {
	t.Helper()
	return &UIHandlers{T: RequireTemplateRenderer(t), Logger: discardLogger()}
}

func TestHandleList_PaginatesAndParsesFilter(t *testing.T) {
	h := newListTestHandlers(t)
	var bounds []pageBounds
	var status model.OrderStatus

	req := httptest.NewRequest(http.MethodGet, "/admin/orders?status=paid&page=2&page_size=2", nil)
	w := httptest.NewRecorder()
	HandleList(ListHandlerOpts[*model.Order, model.OrderStatus]{
		Handler:      h,
		W:            w,
		R:            req,
		FilterParser: parseOrderStatusFilter,
		Fetcher:      windowFetcher(testOrders(5), &bounds, &status),
		EnrichData: func(_ context.Context, data map[string]any, s model.OrderStatus) error {
			data["Status"] = string(s)
			data["Statuses"] = model.OrderStatuses()
			return nil
		},
		PageMeta: h.meta(navigation.ViewAdminOrders, "Orders"),
		ItemsKey: "Orders",
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, bounds, 1)
	assert.Equal(t, pageBounds{Limit: 3, Offset: 2}, bounds[0], "one extra row detects the next page")
	assert.Equal(t, model.OrderStatusPaid, status)

	body := w.Body.String()
	assert.True(t, ContainsAll(body, []string{"SO-0003", "SO-0004", "page=3", "page=1"}), body)
	assert.NotContains(t, body, "SO-0005", "the lookahead row is not shown")
}

func TestHandleList_LastPageHasNoNext(t *testing.T) {
	h := newListTestHandlers(t)
	var bounds []pageBounds

	req := httptest.NewRequest(http.MethodGet, "/admin/orders?page_size=10", nil)
	w := httptest.NewRecorder()
	HandleList(ListHandlerOpts[*model.Order, model.OrderStatus]{
		Handler:  h,
		W:        w,
		R:        req,
		Fetcher:  windowFetcher(testOrders(3), &bounds, nil),
		PageMeta: h.meta(navigation.ViewAdminOrders, "Orders"),
		ItemsKey: "Orders",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "page=2")
}

func TestHandleList_FetchErrorRendersInline(t *testing.T) {
	h := newListTestHandlers(t)
	enriched := false

	req := httptest.NewRequest(http.MethodGet, "/admin/orders?status=shipped", nil)
	w := httptest.NewRecorder()
	HandleList(ListHandlerOpts[*model.Order, model.OrderStatus]{
		Handler:      h,
		W:            w,
		R:            req,
		FilterParser: parseOrderStatusFilter,
		Fetcher: func(context.Context, model.OrderStatus, pageBounds) ([]*model.Order, error) {
			return nil, apperrors.Wrap(errors.New("dial tcp: refused"), apperrors.ErrCodeUnavailable, "store api")
		},
		EnrichData: func(_ context.Context, data map[string]any, s model.OrderStatus) error {
			enriched = true
			data["Status"] = string(s)
			data["Statuses"] = model.OrderStatuses()
			return nil
		},
		PageMeta: h.meta(navigation.ViewAdminOrders, "Orders"),
		ItemsKey: "Orders",
	})

	assert.True(t, enriched, "filters are echoed even when the fetch fails")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "temporarily unavailable")
	assert.Contains(t, body, `value="shipped" selected`)
}

func TestHandleList_HTMXErrorKeepsStatusOK(t *testing.T) {
	h := newListTestHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	req.Header.Set("Hx-Request", "true")
	w := httptest.NewRecorder()
	HandleList(ListHandlerOpts[*model.Order, model.OrderStatus]{
		Handler: h,
		W:       w,
		R:       req,
		Fetcher: func(context.Context, model.OrderStatus, pageBounds) ([]*model.Order, error) {
			return nil, errors.New("boom")
		},
		PageMeta: h.meta(navigation.ViewAdminOrders, "Orders"),
		ItemsKey: "Orders",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Something went wrong")
}

func TestHandleList_MissingDependencies(t *testing.T) {
	w := httptest.NewRecorder()
	HandleList(ListHandlerOpts[*model.Order, struct{}]{
		W: w,
		R: httptest.NewRequest(http.MethodGet, "/admin/orders", nil),
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	// Without a writer nothing can be reported, and nothing panics.
	assert.NotPanics(t, func() {
		HandleList(ListHandlerOpts[*model.Order, struct{}]{})
	})
}
