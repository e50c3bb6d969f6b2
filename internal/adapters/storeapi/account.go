package storeapi

import (
	"context"
	"net/http"

	"github.com/target/storefront-ui/internal/core"
	"github.com/target/storefront-ui/internal/domain/model"
)

// AccountAPI implements core.AccountRepository.
type AccountAPI struct{ c *Client }

// NewAccountAPI returns the signed-in shopper's account endpoints of c.
func NewAccountAPI(c *Client) *AccountAPI { return &AccountAPI{c: c} }

var _ core.AccountRepository = (*AccountAPI)(nil)

func (a *AccountAPI) Profile(ctx context.Context) (*model.Profile, error) {
	var out model.Profile
	if err := a.c.do(ctx, call{op: "account.profile", method: http.MethodGet, path: "/account/profile"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AccountAPI) UpdateProfile(ctx context.Context, req model.ProfileRequest) (*model.Profile, error) {
	var out model.Profile
	cl := call{op: "account.update_profile", method: http.MethodPut, path: "/account/profile", body: req}
	if err := a.c.do(ctx, cl, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AccountAPI) Orders(ctx context.Context, opts model.OrderListOptions) ([]*model.Order, error) {
	opts.CustomerID = ""
	var out []*model.Order
	cl := call{op: "account.orders", method: http.MethodGet, path: "/account/orders", query: orderQuery(opts)}
	err := a.c.do(ctx, cl, &out)
	return out, err
}

func (a *AccountAPI) Order(ctx context.Context, id string) (*model.Order, error) {
	var out model.Order
	if err := a.c.do(ctx, call{op: "account.order", method: http.MethodGet, path: pathID("/account/orders", id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
