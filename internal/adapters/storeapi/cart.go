package storeapi

import (
	"context"
	"net/http"

	"github.com/target/storefront-ui/internal/core"
	"github.com/target/storefront-ui/internal/domain/model"
)

// CartAPI implements core.CartRepository.
type CartAPI struct{ c *Client }

// NewCartAPI returns the cart endpoints of c.
func NewCartAPI(c *Client) *CartAPI { return &CartAPI{c: c} }

var _ core.CartRepository = (*CartAPI)(nil)

func (a *CartAPI) cart(ctx context.Context, cl call) (*model.Cart, error) {
	var out model.Cart
	if err := a.c.do(ctx, cl, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *CartAPI) Get(ctx context.Context) (*model.Cart, error) {
	return a.cart(ctx, call{op: "cart.get", method: http.MethodGet, path: "/cart"})
}

func (a *CartAPI) AddItem(ctx context.Context, req model.CartItemRequest) (*model.Cart, error) {
	return a.cart(ctx, call{op: "cart.add", method: http.MethodPost, path: "/cart/items", body: req})
}

func (a *CartAPI) UpdateItem(ctx context.Context, lineID string, quantity int) (*model.Cart, error) {
	body := map[string]int{"quantity": quantity}
	return a.cart(ctx, call{op: "cart.update", method: http.MethodPatch, path: pathID("/cart/items", lineID), body: body})
}

func (a *CartAPI) RemoveItem(ctx context.Context, lineID string) (*model.Cart, error) {
	return a.cart(ctx, call{op: "cart.remove", method: http.MethodDelete, path: pathID("/cart/items", lineID)})
}

func (a *CartAPI) Checkout(ctx context.Context, req model.CheckoutRequest) (*model.Order, error) {
	var out model.Order
	if err := a.c.do(ctx, call{op: "cart.checkout", method: http.MethodPost, path: "/cart/checkout", body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
