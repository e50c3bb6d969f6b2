package storeapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/target/storefront-ui/internal/core"
	"github.com/target/storefront-ui/internal/domain/model"
)

// OrderAPI implements core.OrderRepository.
type OrderAPI struct{ c *Client }

// NewOrderAPI returns the back-office order endpoints of c.
func NewOrderAPI(c *Client) *OrderAPI { return &OrderAPI{c: c} }

var _ core.OrderRepository = (*OrderAPI)(nil)

func orderQuery(opts model.OrderListOptions) url.Values {
	q := pageQuery(opts.Limit, opts.Offset)
	if opts.Status != "" {
		q.Set("status", string(opts.Status))
	}
	if opts.CustomerID != "" {
		q.Set("customer_id", opts.CustomerID)
	}
	return q
}

func (o *OrderAPI) List(ctx context.Context, opts model.OrderListOptions) ([]*model.Order, error) {
	var out []*model.Order
	err := o.c.do(ctx, call{op: "orders.list", method: http.MethodGet, path: "/orders", query: orderQuery(opts)}, &out)
	return out, err
}

func (o *OrderAPI) GetByID(ctx context.Context, id string) (*model.Order, error) {
	var out model.Order
	if err := o.c.do(ctx, call{op: "orders.get", method: http.MethodGet, path: pathID("/orders", id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (o *OrderAPI) UpdateStatus(
	ctx context.Context,
	id string,
	req model.UpdateOrderStatusRequest,
) (*model.Order, error) {
	var out model.Order
	cl := call{op: "orders.update_status", method: http.MethodPatch, path: pathID("/orders", id) + "/status", body: req}
	if err := o.c.do(ctx, cl, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CustomerAPI implements core.CustomerRepository.
type CustomerAPI struct{ c *Client }

// NewCustomerAPI returns the customer endpoints of c.
func NewCustomerAPI(c *Client) *CustomerAPI { return &CustomerAPI{c: c} }

var _ core.CustomerRepository = (*CustomerAPI)(nil)

func (a *CustomerAPI) List(ctx context.Context, opts model.CustomerListOptions) ([]*model.Customer, error) {
	q := pageQuery(opts.Limit, opts.Offset)
	if opts.Query != "" {
		q.Set("q", opts.Query)
	}
	var out []*model.Customer
	err := a.c.do(ctx, call{op: "customers.list", method: http.MethodGet, path: "/customers", query: q}, &out)
	return out, err
}

func (a *CustomerAPI) GetByID(ctx context.Context, id string) (*model.Customer, error) {
	var out model.Customer
	if err := a.c.do(ctx, call{op: "customers.get", method: http.MethodGet, path: pathID("/customers", id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
