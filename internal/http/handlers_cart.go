package httpx

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/target/storefront-ui/internal/domain/model"
	"github.com/target/storefront-ui/internal/domain/navigation"
	apperrors "github.com/target/storefront-ui/internal/errors"
	"github.com/target/storefront-ui/internal/http/ui/storefront"
	"github.com/target/storefront-ui/internal/observability/metrics"
)

const (
	cartSummaryTemplate = "cart-summary"
	cartChangedEvent    = "cart:changed"
)

// AddToCart puts a product in the cart and refreshes the header badge.
// POST /shop/cart/items.
func (h *UIHandlers) AddToCart(w http.ResponseWriter, r *http.Request) {
	req, fieldErrors := parseCartItemForm(r)
	if len(fieldErrors) > 0 {
		h.actionFailed(w, r, apperrors.ValidationFields(errMsgFixBelow, fieldErrors))
		return
	}
	if _, err := h.Cart.Add(r.Context(), req); err != nil {
		if h.interceptViewError(w, r, err) {
			return
		}
		h.actionFailed(w, r, err)
		return
	}

	if !IsHTMX(r) {
		http.Redirect(w, r, h.href(navigation.ViewShopCart, ""), http.StatusSeeOther)
		return
	}
	HTMX(w).Trigger(cartChangedEvent, nil)
	triggerToast(w, "Added to cart", "success")
	w.WriteHeader(http.StatusNoContent)
}

// UpdateCartItem changes the quantity of one line and re-renders the cart.
// POST /shop/cart/items/{id}.
func (h *UIHandlers) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	qty, msg := parseQuantity(r)
	if msg != "" {
		h.actionFailed(w, r, apperrors.ValidationField("quantity", msg))
		return
	}
	h.mutateCart(w, r, func(ctx context.Context, lineID string) (*model.Cart, error) {
		return h.Cart.SetQuantity(ctx, lineID, qty)
	})
}

// RemoveCartItem drops one line and re-renders the cart.
// POST /shop/cart/items/{id}/delete.
func (h *UIHandlers) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	h.mutateCart(w, r, h.Cart.Remove)
}

func (h *UIHandlers) mutateCart(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, lineID string) (*model.Cart, error),
) {
	ctx := r.Context()
	cart, err := apply(ctx, r.PathValue(navigation.ParamID))
	if err != nil {
		if h.interceptViewError(w, r, err) {
			return
		}
		h.actionFailed(w, r, err)
		return
	}
	if !IsHTMX(r) {
		http.Redirect(w, r, h.href(navigation.ViewShopCart, ""), http.StatusSeeOther)
		return
	}

	selected, ok := h.Selection.SelectedCartLines(ctx, PageLoadFromContext(ctx))
	layout := h.layout(r, h.meta(navigation.ViewShopCart, "Cart"))
	HTMX(w).Trigger(cartChangedEvent, nil)
	h.renderPage(w, r, storefront.NewCartPage(layout, cart, selected, ok))
}

// PlaceOrder checks out the submitted lines and opens the new order.
// POST /shop/checkout.
func (h *UIHandlers) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, fieldErrors := parseCheckoutForm(r)
	if len(fieldErrors) > 0 {
		h.renderCheckoutError(w, r, req, fieldErrors, nil)
		return
	}

	order, err := h.Cart.Checkout(ctx, req)
	if err != nil {
		if h.interceptViewError(w, r, err) {
			return
		}
		h.renderCheckoutError(w, r, req, nil, err)
		return
	}

	if err := h.Selection.ClearSelectedCartLines(ctx, PageLoadFromContext(ctx)); err != nil {
		h.logger().WarnContext(ctx, "cart selection not cleared", "error", err)
	}
	HTMX(w).Trigger(cartChangedEvent, nil)
	triggerToast(w, "Order "+order.Number+" placed", "success")
	h.navigate(w, r, h.href(navigation.ViewShopOrder, order.ID))
}

// renderCheckoutError redraws checkout with the submitted values and the lines still in the cart.
func (h *UIHandlers) renderCheckoutError(
	w http.ResponseWriter,
	r *http.Request,
	req model.CheckoutRequest,
	fieldErrors map[string]string,
	err error,
) {
	ctx := r.Context()
	lines, lerr := h.Cart.ResolveLines(ctx, req.LineIDs)
	if lerr != nil {
		h.logger().WarnContext(ctx, "checkout lines unavailable", "error", lerr)
	}
	page := storefront.NewCheckoutPage(h.layout(r, h.meta(navigation.ViewShopCheckout, "Checkout")), lines, req)

	merged := make(map[string]string, len(fieldErrors))
	for k, v := range fieldErrors {
		merged[k] = v
	}
	for k, v := range apperrors.FieldErrors(err) {
		if _, ok := merged[k]; !ok {
			merged[k] = v
		}
	}
	if field := apperrors.GetField(err); field != "" {
		if _, ok := merged[field]; !ok {
			merged[field] = apperrors.UserMessage(err)
		}
	}
	page.Errors = merged
	page.Error = true
	if len(merged) > 0 {
		page.ErrorMessage = errMsgFixBelow
	} else {
		page.ErrorMessage = apperrors.UserMessage(err)
	}

	status := DetermineErrorStatus(r, err)
	if err == nil && !IsHTMX(r) {
		status = http.StatusUnprocessableEntity
	}
	h.renderPageStatus(w, r, page, status)
}

// UpdateProfile saves the shopper's own profile.
// POST /shop/account/profile.
func (h *UIHandlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	req, fieldErrors := parseProfileForm(r)
	meta := h.meta(navigation.ViewShopProfile, "Profile")
	extra := map[string]any{"FormData": req, "Countries": storefront.Countries()}
	if len(fieldErrors) > 0 {
		h.renderFormError(ErrorOpts{W: w, R: r, FieldErrors: fieldErrors, PageMeta: meta, Data: extra})
		return
	}
	if _, err := h.Account.UpdateProfile(r.Context(), req); err != nil {
		if h.interceptViewError(w, r, err) {
			return
		}
		h.renderFormError(ErrorOpts{W: w, R: r, Err: err, PageMeta: meta, Data: extra})
		return
	}
	triggerToast(w, "Profile saved", "success")
	h.navigate(w, r, h.href(navigation.ViewShopAccount, ""))
}

// CartSummary renders the header badge fragment. The badge polls it while it is on the page.
// GET /shop/cart/summary.
func (h *UIHandlers) CartSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.Cart.Summary(r.Context())
	if err != nil {
		if h.interceptViewError(w, r, err) {
			return
		}
		h.logger().WarnContext(r.Context(), "cart summary unavailable", "error", err)
	}
	body, err := h.T.ExecuteFragment(cartSummaryTemplate, h.cartSummaryData(sum))
	if err != nil {
		h.logAndRenderTemplateError(w, r, err, "cart summary")
		return
	}
	setNoStore(w)
	h.writeHTML(w, http.StatusOK, body)
}

func (h *UIHandlers) cartSummaryData(sum model.CartSummary) map[string]any {
	return map[string]any{
		"Summary": sum,
		"CartURL": h.href(navigation.ViewShopCart, ""),
	}
}

// CartSummaryStream pushes the header badge as server-sent events.
// The loop lives as long as the request: a closed tab or a navigation away cancels it.
// GET /shop/cart/summary/stream.
func (h *UIHandlers) CartSummaryStream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	rc := http.NewResponseController(w)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache, no-store")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	if err := rc.Flush(); err != nil {
		h.logger().WarnContext(ctx, "cart summary stream unsupported", "error", err)
		return
	}

	metrics.EmitSSEStream(h.Metrics, 1)
	defer metrics.EmitSSEStream(h.Metrics, -1)

	ticker := time.NewTicker(h.summaryInterval())
	defer ticker.Stop()

	for {
		if !h.pushCartSummary(ctx, w, rc) {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// pushCartSummary writes one event. It reports whether the stream should continue.
func (h *UIHandlers) pushCartSummary(ctx context.Context, w http.ResponseWriter, rc *http.ResponseController) bool {
	sum, err := h.Cart.Summary(ctx)
	switch {
	case ctx.Err() != nil:
		return false
	case apperrors.IsUnauthorized(err):
		_ = writeSSE(w, "unauthorized", []byte(h.href(navigation.ViewLogin, "")))
		_ = rc.Flush()
		return false
	case err != nil:
		h.logger().DebugContext(ctx, "cart summary skipped", "error", err)
		return true
	}

	body, err := h.T.ExecuteFragment(cartSummaryTemplate, h.cartSummaryData(sum))
	if err != nil {
		h.logger().ErrorContext(ctx, "cart summary render failed", "error", err)
		return false
	}
	if err := writeSSE(w, cartSummaryTemplate, body); err != nil {
		return false
	}
	return rc.Flush() == nil
}

// writeSSE frames data as one event; every line gets its own data field.
func writeSSE(w http.ResponseWriter, event string, data []byte) error {
	var b bytes.Buffer
	fmt.Fprintf(&b, "event: %s\n", event)
	for _, line := range bytes.Split(bytes.TrimRight(data, "\n"), []byte("\n")) {
		b.WriteString("data: ")
		b.Write(line)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	_, err := w.Write(b.Bytes())
	return err
}
