package storeapi

import (
	"context"
	"net/http"

	"github.com/target/storefront-ui/internal/core"
	"github.com/target/storefront-ui/internal/domain/model"
)

// ProductAPI implements core.ProductRepository.
type ProductAPI struct{ c *Client }

// NewProductAPI returns the product endpoints of c.
func NewProductAPI(c *Client) *ProductAPI { return &ProductAPI{c: c} }

var _ core.ProductRepository = (*ProductAPI)(nil)

func (p *ProductAPI) List(ctx context.Context, opts model.ProductListOptions) ([]*model.Product, error) {
	opts.Normalize()
	q := pageQuery(opts.Limit, opts.Offset)
	if opts.Query != "" {
		q.Set("q", opts.Query)
	}
	if opts.CategoryID != "" {
		q.Set("category_id", opts.CategoryID)
	}
	if opts.Sort != "" {
		q.Set("sort", opts.Sort)
		if opts.Dir != "" {
			q.Set("order", opts.Dir)
		}
	}
	var out []*model.Product
	err := p.c.do(ctx, call{op: "products.list", method: http.MethodGet, path: "/products", query: q}, &out)
	return out, err
}

func (p *ProductAPI) GetByID(ctx context.Context, id string) (*model.Product, error) {
	var out model.Product
	if err := p.c.do(ctx, call{op: "products.get", method: http.MethodGet, path: pathID("/products", id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *ProductAPI) Create(ctx context.Context, req model.ProductRequest) (*model.Product, error) {
	var out model.Product
	if err := p.c.do(ctx, call{op: "products.create", method: http.MethodPost, path: "/products", body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *ProductAPI) Update(ctx context.Context, id string, req model.ProductRequest) (*model.Product, error) {
	var out model.Product
	cl := call{op: "products.update", method: http.MethodPut, path: pathID("/products", id), body: req}
	if err := p.c.do(ctx, cl, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *ProductAPI) Delete(ctx context.Context, id string) error {
	return p.c.do(ctx, call{op: "products.delete", method: http.MethodDelete, path: pathID("/products", id)}, nil)
}

// CategoryAPI implements core.CategoryRepository.
type CategoryAPI struct{ c *Client }

// NewCategoryAPI returns the category endpoints of c.
func NewCategoryAPI(c *Client) *CategoryAPI { return &CategoryAPI{c: c} }

var _ core.CategoryRepository = (*CategoryAPI)(nil)

func (a *CategoryAPI) List(ctx context.Context) ([]*model.Category, error) {
	var out []*model.Category
	err := a.c.do(ctx, call{op: "categories.list", method: http.MethodGet, path: "/categories"}, &out)
	return out, err
}

func (a *CategoryAPI) GetByID(ctx context.Context, id string) (*model.Category, error) {
	var out model.Category
	if err := a.c.do(ctx, call{op: "categories.get", method: http.MethodGet, path: pathID("/categories", id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *CategoryAPI) Create(ctx context.Context, req model.CategoryRequest) (*model.Category, error) {
	var out model.Category
	cl := call{op: "categories.create", method: http.MethodPost, path: "/categories", body: req}
	if err := a.c.do(ctx, cl, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *CategoryAPI) Update(ctx context.Context, id string, req model.CategoryRequest) (*model.Category, error) {
	var out model.Category
	cl := call{op: "categories.update", method: http.MethodPut, path: pathID("/categories", id), body: req}
	if err := a.c.do(ctx, cl, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *CategoryAPI) Delete(ctx context.Context, id string) error {
	return a.c.do(ctx, call{op: "categories.delete", method: http.MethodDelete, path: pathID("/categories", id)}, nil)
}
