package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fandresena/gereo-server/internal/domain/entity"
	"github.com/fandresena/gereo-server/internal/domain/enum"
	infraRepo "github.com/fandresena/gereo-server/internal/infrastructure/repository"
	"github.com/fandresena/gereo-server/pkg/apperror"
)

func createProduct(t *testing.T, env *testEnv, name string, stock int) *entity.Product {
	t.Helper()
	product, err := env.products.CreateProduct(context.Background(), &CreateProductInput{
		Name:          name,
		SellingPrice:  10.00,
		PurchasePrice: 6.00,
		InitialStock:  stock,
	})
	require.NoError(t, err)
	return product
}

func reloadProduct(t *testing.T, env *testEnv, id uuid.UUID) *entity.Product {
	t.Helper()
	var product entity.Product
	require.NoError(t, env.db.First(&product, "id = ?", id).Error)
	return &product
}

func countRows(t *testing.T, env *testEnv, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, env.db.Model(model).Count(&count).Error)
	return count
}

func TestRecordSaleCashSale(t *testing.T) {
	env := newTestEnv(t)
	product := createProduct(t, env, "Savon 200g", 10)

	invoice, err := env.sales.RecordSale(context.Background(), &RecordSaleInput{
		Items: []SaleItemInput{
			{ProductID: product.ID, Quantity: 3, UnitPrice: 10.00},
		},
		TotalAmount: 30.00,
		AmountPaid:  30.00,
	})
	require.NoError(t, err)
	require.NotNil(t, invoice)

	assert.Equal(t, enum.InvoiceStatusPaid, invoice.Status)
	assert.Equal(t, int64(3000), invoice.TotalAmount)
	assert.Equal(t, int64(0), invoice.AmountDue)
	assert.Nil(t, invoice.CustomerID)
	require.Len(t, invoice.Items, 1)
	assert.Equal(t, int64(3000), invoice.Items[0].TotalPrice)

	assert.Equal(t, 7, reloadProduct(t, env, product.ID).CurrentStock)

	var movements []entity.StockMovement
	require.NoError(t, env.db.
		Where("product_id = ? AND movement_type = ?", product.ID, enum.MovementSale).
		Find(&movements).Error)
	require.Len(t, movements, 1)
	assert.Equal(t, -3, movements[0].Quantity)

	// Full payment lands in the cash register
	var cash entity.CashMovement
	require.NoError(t, env.db.First(&cash).Error)
	assert.Equal(t, enum.CashSale, cash.MovementType)
	assert.Equal(t, int64(3000), cash.Amount)
	assert.Equal(t, int64(3000), cash.CurrentBalance)
}

func TestRecordSaleInsufficientStockRollsBack(t *testing.T) {
	env := newTestEnv(t)
	product := createProduct(t, env, "Huile 1L", 7)

	_, err := env.sales.RecordSale(context.Background(), &RecordSaleInput{
		Items: []SaleItemInput{
			{ProductID: product.ID, Quantity: 10, UnitPrice: 10.00},
		},
		TotalAmount: 100.00,
		AmountPaid:  100.00,
	})
	require.Error(t, err)
	assert.True(t, apperror.IsInsufficientStock(err))
	assert.Contains(t, err.Error(), "Huile 1L")

	// Nothing was written
	assert.Equal(t, 7, reloadProduct(t, env, product.ID).CurrentStock)
	assert.Equal(t, int64(0), countRows(t, env, &entity.Invoice{}))
	assert.Equal(t, int64(0), countRows(t, env, &entity.InvoiceItem{}))
	assert.Equal(t, int64(0), countRows(t, env, &entity.CashMovement{}))

	var saleMovements int64
	require.NoError(t, env.db.Model(&entity.StockMovement{}).
		Where("movement_type = ?", enum.MovementSale).
		Count(&saleMovements).Error)
	assert.Equal(t, int64(0), saleMovements)
}

func TestRecordSaleUnknownProductMidCartRollsBack(t *testing.T) {
	env := newTestEnv(t)
	product := createProduct(t, env, "Riz 5kg", 20)

	_, err := env.sales.RecordSale(context.Background(), &RecordSaleInput{
		Items: []SaleItemInput{
			{ProductID: product.ID, Quantity: 2, UnitPrice: 10.00},
			{ProductID: uuid.New(), Quantity: 1, UnitPrice: 5.00},
		},
		TotalAmount: 25.00,
		AmountPaid:  25.00,
	})
	require.Error(t, err)

	// The first line's decrement was rolled back with the rest
	assert.Equal(t, 20, reloadProduct(t, env, product.ID).CurrentStock)
	assert.Equal(t, int64(0), countRows(t, env, &entity.Invoice{}))
	assert.Equal(t, int64(0), countRows(t, env, &entity.InvoiceItem{}))
}

func TestRecordSaleCreditSaleCreatesCustomerDebt(t *testing.T) {
	env := newTestEnv(t)
	product := createProduct(t, env, "Sucre 1kg", 10)

	invoice, err := env.sales.RecordSale(context.Background(), &RecordSaleInput{
		CustomerName: "Rakoto",
		IsCreditSale: true,
		Items: []SaleItemInput{
			{ProductID: product.ID, Quantity: 2, UnitPrice: 5.00},
		},
		TotalAmount: 10.00,
		AmountPaid:  5.00,
	})
	require.NoError(t, err)

	assert.Equal(t, enum.InvoiceStatusUnpaid, invoice.Status)
	assert.Equal(t, int64(500), invoice.AmountDue)
	require.NotNil(t, invoice.CustomerID)

	var customer entity.Customer
	require.NoError(t, env.db.First(&customer, "id = ?", invoice.CustomerID).Error)
	assert.Equal(t, "Rakoto", customer.Name)
	assert.Equal(t, int64(500), customer.TotalDebt)

	// Only the paid part reaches the register
	var cash entity.CashMovement
	require.NoError(t, env.db.First(&cash).Error)
	assert.Equal(t, int64(500), cash.Amount)
}

func TestRecordSaleReusesCustomerByName(t *testing.T) {
	env := newTestEnv(t)
	product := createProduct(t, env, "Farine 1kg", 30)

	sell := func() *entity.Invoice {
		invoice, err := env.sales.RecordSale(context.Background(), &RecordSaleInput{
			CustomerName: "Rasoa",
			IsCreditSale: true,
			Items: []SaleItemInput{
				{ProductID: product.ID, Quantity: 1, UnitPrice: 10.00},
			},
			TotalAmount: 10.00,
			AmountPaid:  0,
		})
		require.NoError(t, err)
		return invoice
	}

	first := sell()
	second := sell()

	require.NotNil(t, first.CustomerID)
	require.NotNil(t, second.CustomerID)
	assert.Equal(t, *first.CustomerID, *second.CustomerID)
	assert.Equal(t, int64(1), countRows(t, env, &entity.Customer{}))

	var customer entity.Customer
	require.NoError(t, env.db.First(&customer, "id = ?", first.CustomerID).Error)
	assert.Equal(t, int64(2000), customer.TotalDebt)
}

func TestRecordSaleStockMatchesMovementSum(t *testing.T) {
	env := newTestEnv(t)
	product := createProduct(t, env, "Lait 1L", 12)

	_, err := env.sales.RecordSale(context.Background(), &RecordSaleInput{
		Items: []SaleItemInput{
			{ProductID: product.ID, Quantity: 5, UnitPrice: 10.00},
		},
		TotalAmount: 50.00,
		AmountPaid:  50.00,
	})
	require.NoError(t, err)

	sum, err := infraRepo.NewStockMovementRepository(env.db).SumQuantity(context.Background(), product.ID)
	require.NoError(t, err)

	assert.Equal(t, 7, sum)
	assert.Equal(t, sum, reloadProduct(t, env, product.ID).CurrentStock)
}

func TestRecordSaleValidation(t *testing.T) {
	env := newTestEnv(t)
	product := createProduct(t, env, "Cafe 250g", 5)

	tests := []struct {
		name  string
		input *RecordSaleInput
	}{
		{
			name:  "empty cart",
			input: &RecordSaleInput{TotalAmount: 10.00, AmountPaid: 10.00},
		},
		{
			name: "zero quantity line",
			input: &RecordSaleInput{
				Items:       []SaleItemInput{{ProductID: product.ID, Quantity: 0, UnitPrice: 10.00}},
				TotalAmount: 0,
			},
		},
		{
			name: "negative paid amount",
			input: &RecordSaleInput{
				Items:       []SaleItemInput{{ProductID: product.ID, Quantity: 1, UnitPrice: 10.00}},
				TotalAmount: 10.00,
				AmountPaid:  -1.00,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.sales.RecordSale(context.Background(), tt.input)
			require.Error(t, err)
			appErr := apperror.GetAppError(err)
			assert.Equal(t, 422, appErr.Code)

			// Validation failures must not touch stock
			assert.Equal(t, 5, reloadProduct(t, env, product.ID).CurrentStock)
		})
	}
}
