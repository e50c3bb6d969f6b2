package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/target/storefront-ui/internal/domain/model"
	apperrors "github.com/target/storefront-ui/internal/errors"
	"github.com/target/storefront-ui/internal/mocks"
	"github.com/target/storefront-ui/internal/testutil"
)

func newTestCatalogService(t *testing.T) (*CatalogService, *mocks.MockProductRepository, *mocks.MockCategoryRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	products := mocks.NewMockProductRepository(ctrl)
	categories := mocks.NewMockCategoryRepository(ctrl)
	return NewCatalogService(CatalogServiceOptions{Products: products, Categories: categories}), products, categories
}

func TestCatalogService_ListProducts_ClampsPaging(t *testing.T) {
	svc, products, _ := newTestCatalogService(t)

	products.EXPECT().
		List(gomock.Any(), model.ProductListOptions{Limit: maxPageSize, Offset: 0, Query: "mug", Sort: "price"}).
		Return([]*model.Product{testutil.NewProduct("1").Build()}, nil)

	got, err := svc.ListProducts(context.Background(), model.ProductListOptions{
		Limit: 500, Offset: -3, Query: " mug ", Sort: "PRICE",
	})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestCatalogService_ListProducts_DefaultLimit(t *testing.T) {
	svc, products, _ := newTestCatalogService(t)
	products.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, opts model.ProductListOptions) ([]*model.Product, error) {
			assert.Equal(t, defaultPageSize, opts.Limit)
			assert.Empty(t, opts.Sort)
			return nil, nil
		})

	_, err := svc.ListProducts(context.Background(), model.ProductListOptions{Sort: "drop table"})
	require.NoError(t, err)
}

func TestCatalogService_GetProduct(t *testing.T) {
	svc, products, _ := newTestCatalogService(t)
	ctx := context.Background()

	_, err := svc.GetProduct(ctx, " ")
	assert.True(t, apperrors.IsNotFound(err))

	products.EXPECT().GetByID(gomock.Any(), "7").Return(nil, apperrors.NotFound("Product not found"))
	_, err = svc.GetProduct(ctx, "7")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCatalogService_CreateProduct(t *testing.T) {
	svc, products, _ := newTestCatalogService(t)
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, model.ProductRequest{Price: decimal.NewFromInt(-1)})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	req := model.ProductRequest{Name: " Mug ", CategoryID: "1", Price: decimal.RequireFromString("9.99"), Stock: 3}
	products.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got model.ProductRequest) (*model.Product, error) {
			assert.Equal(t, "Mug", got.Name)
			return testutil.NewProduct("10").WithName(got.Name).Build(), nil
		})
	p, err := svc.CreateProduct(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "10", p.ID)
}

func TestCatalogService_UpdateAndDeleteProduct(t *testing.T) {
	svc, products, _ := newTestCatalogService(t)
	ctx := context.Background()
	req := model.ProductRequest{Name: "Mug", CategoryID: "1", Price: decimal.NewFromInt(5)}

	products.EXPECT().Update(gomock.Any(), "3", gomock.Any()).Return(testutil.NewProduct("3").Build(), nil)
	_, err := svc.UpdateProduct(ctx, "3", req)
	require.NoError(t, err)

	products.EXPECT().Delete(gomock.Any(), "3").Return(errors.New("conn reset"))
	err = svc.DeleteProduct(ctx, "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delete product")
}

func TestCatalogService_Categories(t *testing.T) {
	svc, products, categories := newTestCatalogService(t)
	ctx := context.Background()

	categories.EXPECT().List(gomock.Any()).Return([]*model.Category{{ID: "1", Name: "Mugs"}}, nil)
	cats, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, 1)

	_, err = svc.CreateCategory(ctx, model.CategoryRequest{Name: "  "})
	assert.True(t, apperrors.IsValidation(err))

	categories.EXPECT().Update(gomock.Any(), "1", model.CategoryRequest{Name: "Cups"}).
		Return(&model.Category{ID: "1", Name: "Cups"}, nil)
	c, err := svc.UpdateCategory(ctx, "1", model.CategoryRequest{Name: " Cups "})
	require.NoError(t, err)
	assert.Equal(t, "Cups", c.Name)

	products.EXPECT().List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, opts model.ProductListOptions) ([]*model.Product, error) {
			assert.Equal(t, "1", opts.CategoryID)
			return nil, nil
		})
	_, err = svc.CategoryProducts(ctx, "1", model.ProductListOptions{CategoryID: "other"})
	require.NoError(t, err)
}
