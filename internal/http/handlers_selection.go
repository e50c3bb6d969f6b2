package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/target/storefront-ui/internal/domain/model"
	"github.com/target/storefront-ui/internal/domain/navigation"
	apperrors "github.com/target/storefront-ui/internal/errors"
)

// Selection endpoints store the object the user picked in a list and move on to
// its detail view. List rows post the object as JSON in the "payload" field
// together with its "id".
const (
	selectionPayloadField = "payload"
	selectionIDField      = "id"
)

// decodeSelection reads the posted object and checks that it carries the posted id.
func decodeSelection[T any](r *http.Request, idOf func(*T) string) (*T, error) {
	raw := r.PostFormValue(selectionPayloadField)
	if raw == "" {
		return nil, apperrors.ValidationField(selectionPayloadField, "Nothing was selected.")
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "The selection could not be read.")
	}
	got := idOf(&v)
	if got == "" {
		return nil, apperrors.ValidationField(selectionIDField, "The selection has no identifier.")
	}
	if want := r.PostFormValue(selectionIDField); want != "" && want != got {
		return nil, apperrors.ValidationField(selectionIDField, "The selection does not match the chosen row.")
	}
	return &v, nil
}

// SelectProduct stores the posted product in the current product slot and opens detailView.
func (h *UIHandlers) SelectProduct(detailView string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := decodeSelection(r, func(p *model.Product) string { return p.ID })
		if err != nil {
			h.actionFailed(w, r, err)
			return
		}
		ctx := r.Context()
		if keepsPageLoad(r) {
			if err := h.Selection.SetCurrentProduct(ctx, PageLoadFromContext(ctx), p); err != nil {
				h.logger().WarnContext(ctx, "product selection not stored", "error", err)
			}
		}
		h.navigate(w, r, h.href(detailView, p.ID))
	}
}

// SelectCategory stores the posted category in the current category slot and opens detailView.
func (h *UIHandlers) SelectCategory(detailView string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := decodeSelection(r, func(c *model.Category) string { return c.ID })
		if err != nil {
			h.actionFailed(w, r, err)
			return
		}
		ctx := r.Context()
		if keepsPageLoad(r) {
			if err := h.Selection.SetCurrentCategory(ctx, PageLoadFromContext(ctx), c); err != nil {
				h.logger().WarnContext(ctx, "category selection not stored", "error", err)
			}
		}
		h.navigate(w, r, h.href(detailView, c.ID))
	}
}

// SelectCartLines stores the checked cart lines for checkout.
// With "checkout" set the browser moves on to the checkout view, otherwise back to the cart.
// POST /shop/cart/select.
func (h *UIHandlers) SelectCartLines(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ids := formIDs(r, "line_ids")

	cart, err := h.Cart.Get(ctx)
	if err != nil {
		if h.interceptViewError(w, r, err) {
			return
		}
		h.actionFailed(w, r, err)
		return
	}
	lines := cart.LinesByID(ids)
	checkout := formBool(r, "checkout")
	if checkout && len(lines) == 0 {
		h.actionFailed(w, r, apperrors.ValidationField("line_ids", "Select at least one item to check out."))
		return
	}
	if keepsPageLoad(r) {
		if err := h.Selection.SetSelectedCartLines(ctx, PageLoadFromContext(ctx), lines); err != nil {
			h.logger().WarnContext(ctx, "cart selection not stored", "error", err)
		}
	}

	target := h.href(navigation.ViewShopCart, "")
	if checkout {
		target = h.href(navigation.ViewShopCheckout, "")
	}
	h.navigate(w, r, withLineIDs(r, target, lines))
}

// actionFailed reports a rejected action without replacing the page.
func (h *UIHandlers) actionFailed(w http.ResponseWriter, r *http.Request, err error) {
	h.logger().InfoContext(r.Context(), "action rejected", "path", r.URL.Path, "error", err)
	msg := apperrors.UserMessage(err)
	if IsHTMX(r) {
		triggerToast(w, msg, "error")
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Error(w, msg, apperrors.HTTPStatus(err))
}

// lineIDsParam carries checked cart lines across a plain-form redirect.
const lineIDsParam = "lines"

// keepsPageLoad reports whether the view opened after r stays in r's page load.
// Only htmx navigation does; a plain post is answered with a 303 and the
// following document GET mints a new scope, so slots written for it would never be read.
func keepsPageLoad(r *http.Request) bool {
	return IsHTMX(r)
}

// withLineIDs appends the checked lines to target when the slot cannot carry them.
func withLineIDs(r *http.Request, target string, lines []model.CartLine) string {
	if keepsPageLoad(r) || len(lines) == 0 {
		return target
	}
	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ID)
	}
	return target + "?" + url.Values{lineIDsParam: {strings.Join(ids, ",")}}.Encode()
}

func lineIDsFromQuery(r *http.Request) []string {
	var out []string
	for _, id := range strings.Split(r.URL.Query().Get(lineIDsParam), ",") {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}

// selectedLineIDs returns the checked lines of this page load, or those carried
// by the URL when the slot is missing or empty.
func (h *UIHandlers) selectedLineIDs(ctx context.Context, r *http.Request) []string {
	if selected, ok := h.Selection.SelectedCartLines(ctx, PageLoadFromContext(ctx)); ok && len(selected) > 0 {
		ids := make([]string, 0, len(selected))
		for _, l := range selected {
			ids = append(ids, l.ID)
		}
		return ids
	}
	return lineIDsFromQuery(r)
}
