package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fandresena/gereo-server/internal/domain/entity"
	"github.com/fandresena/gereo-server/internal/domain/enum"
	"github.com/fandresena/gereo-server/internal/domain/repository"
	"github.com/fandresena/gereo-server/pkg/apperror"
	"github.com/fandresena/gereo-server/pkg/pagination"
)

func TestCreateProductWithOpeningStock(t *testing.T) {
	env := newTestEnv(t)

	product, err := env.products.CreateProduct(context.Background(), &CreateProductInput{
		Name:          "Savon liquide",
		PurchasePrice: 3.50,
		SellingPrice:  5.00,
		InitialStock:  12,
		MinStockAlert: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, 12, product.CurrentStock)
	assert.Equal(t, int64(350), product.PurchasePrice)

	// Opening stock arrives as a regular entry movement
	var movement entity.StockMovement
	require.NoError(t, env.db.First(&movement, "product_id = ?", product.ID).Error)
	assert.Equal(t, enum.MovementEntry, movement.MovementType)
	assert.Equal(t, 12, movement.Quantity)
	assert.Equal(t, int64(350), movement.UnitPrice)
}

func TestCreateProductRejectsDuplicateName(t *testing.T) {
	env := newTestEnv(t)
	createProduct(t, env, "Javel 1L", 4)

	_, err := env.products.CreateProduct(context.Background(), &CreateProductInput{
		Name:         "Javel 1L",
		SellingPrice: 2.00,
	})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestUpdateProductNeverTouchesStock(t *testing.T) {
	env := newTestEnv(t)
	product := createProduct(t, env, "Spaghetti 500g", 9)

	updated, err := env.products.UpdateProduct(context.Background(), &UpdateProductInput{
		ID:            product.ID,
		Name:          "Spaghetti 500g",
		SellingPrice:  4.50,
		MinStockAlert: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(450), updated.SellingPrice)
	assert.Equal(t, 9, reloadProduct(t, env, product.ID).CurrentStock)
}

func TestDeleteProductIsSoft(t *testing.T) {
	env := newTestEnv(t)
	product := createProduct(t, env, "Vinaigre", 3)

	require.NoError(t, env.products.DeleteProduct(context.Background(), product.ID))

	_, err := env.products.GetProduct(context.Background(), product.ID)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)

	// The row survives for movement history
	var count int64
	require.NoError(t, env.db.Unscoped().Model(&entity.Product{}).
		Where("id = ?", product.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestListProductsLowStockFilter(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.products.CreateProduct(context.Background(), &CreateProductInput{
		Name:          "Pates",
		SellingPrice:  1.00,
		InitialStock:  2,
		MinStockAlert: 5,
	})
	require.NoError(t, err)

	_, err = env.products.CreateProduct(context.Background(), &CreateProductInput{
		Name:          "Tomates",
		SellingPrice:  1.00,
		InitialStock:  50,
		MinStockAlert: 5,
	})
	require.NoError(t, err)

	result, err := env.products.ListProducts(context.Background(), &repository.ProductFilterParams{
		Pagination: &pagination.PaginationParams{Page: 1, PerPage: 10},
		LowStock:   true,
	})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Pates", result.Items[0].Name)

	low, err := env.products.GetLowStockProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.True(t, low[0].IsLowStock())
}
