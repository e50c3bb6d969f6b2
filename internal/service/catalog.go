package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/target/storefront-ui/internal/core"
	"github.com/target/storefront-ui/internal/domain/model"
	apperrors "github.com/target/storefront-ui/internal/errors"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// clampLimit applies the default page size and caps oversized requests.
func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultPageSize
	case limit > maxPageSize:
		return maxPageSize
	default:
		return limit
	}
}

func clampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}

func requireID(kind, id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", apperrors.NotFoundf("%s not found", kind)
	}
	return id, nil
}

// CatalogServiceOptions groups dependencies for CatalogService.
type CatalogServiceOptions struct {
	Products   core.ProductRepository  // Required
	Categories core.CategoryRepository // Required
	Logger     *slog.Logger            // Optional: structured logger
}

// CatalogService serves products and categories to both the shop and the back office.
type CatalogService struct {
	products   core.ProductRepository
	categories core.CategoryRepository
	logger     *slog.Logger
}

// NewCatalogService constructs a new CatalogService.
func NewCatalogService(opts CatalogServiceOptions) *CatalogService {
	if opts.Products == nil {
		panic("ProductRepository is required")
	}
	if opts.Categories == nil {
		panic("CategoryRepository is required")
	}

	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "catalog_service")
	}
	return &CatalogService{products: opts.Products, categories: opts.Categories, logger: logger}
}

// ListProducts returns a page of products.
func (s *CatalogService) ListProducts(ctx context.Context, opts model.ProductListOptions) ([]*model.Product, error) {
	opts.Normalize()
	opts.Limit = clampLimit(opts.Limit)
	opts.Offset = clampOffset(opts.Offset)
	products, err := s.products.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// GetProduct retrieves a product by its ID.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	id, err := requireID("product", id)
	if err != nil {
		return nil, err
	}
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// CreateProduct validates and creates a product.
func (s *CatalogService) CreateProduct(ctx context.Context, req model.ProductRequest) (*model.Product, error) {
	req.Normalize()
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	p, err := s.products.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	if s.logger != nil && p != nil {
		s.logger.DebugContext(ctx, "product created", "id", p.ID)
	}
	return p, nil
}

// UpdateProduct validates and updates a product.
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, req model.ProductRequest) (*model.Product, error) {
	id, err := requireID("product", id)
	if err != nil {
		return nil, err
	}
	req.Normalize()
	if vErr := validateStruct(req); vErr != nil {
		return nil, vErr
	}
	p, err := s.products.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return p, nil
}

// DeleteProduct deletes a product by its ID.
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	id, err := requireID("product", id)
	if err != nil {
		return err
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if s.logger != nil {
		s.logger.DebugContext(ctx, "product deleted", "id", id)
	}
	return nil
}

// ListCategories returns all categories.
func (s *CatalogService) ListCategories(ctx context.Context) ([]*model.Category, error) {
	cats, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}

// GetCategory retrieves a category by its ID.
func (s *CatalogService) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	id, err := requireID("category", id)
	if err != nil {
		return nil, err
	}
	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// CreateCategory validates and creates a category.
func (s *CatalogService) CreateCategory(ctx context.Context, req model.CategoryRequest) (*model.Category, error) {
	req.Normalize()
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	c, err := s.categories.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return c, nil
}

// UpdateCategory validates and updates a category.
func (s *CatalogService) UpdateCategory(
	ctx context.Context,
	id string,
	req model.CategoryRequest,
) (*model.Category, error) {
	id, err := requireID("category", id)
	if err != nil {
		return nil, err
	}
	req.Normalize()
	if vErr := validateStruct(req); vErr != nil {
		return nil, vErr
	}
	c, err := s.categories.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return c, nil
}

// DeleteCategory deletes a category by its ID.
func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	id, err := requireID("category", id)
	if err != nil {
		return err
	}
	if err := s.categories.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// CategoryProducts returns a category with a page of its products.
func (s *CatalogService) CategoryProducts(
	ctx context.Context,
	id string,
	opts model.ProductListOptions,
) ([]*model.Product, error) {
	id, err := requireID("category", id)
	if err != nil {
		return nil, err
	}
	opts.CategoryID = id
	return s.ListProducts(ctx, opts)
}
