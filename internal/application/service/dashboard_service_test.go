package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infraRepo "github.com/fandresena/gereo-server/internal/infrastructure/repository"
)

func newDashboardService(env *testEnv) *DashboardService {
	return NewDashboardService(
		infraRepo.NewProductRepository(env.db),
		infraRepo.NewInvoiceRepository(env.db),
		infraRepo.NewCustomerRepository(env.db),
		infraRepo.NewCashMovementRepository(env.db),
	)
}

func TestDashboardSummaryEmptyDatabase(t *testing.T) {
	env := newTestEnv(t)
	dashboard := newDashboardService(env)

	summary, err := dashboard.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.TodaySalesTotal)
	assert.Equal(t, int64(0), summary.TodayInvoices)
	assert.Equal(t, int64(0), summary.OutstandingDebt)
	assert.Equal(t, int64(0), summary.CashBalance)
	assert.Empty(t, summary.RecentInvoices)
}

func TestDashboardSummaryAfterActivity(t *testing.T) {
	env := newTestEnv(t)
	dashboard := newDashboardService(env)

	product, err := env.products.CreateProduct(context.Background(), &CreateProductInput{
		Name:          "Bonbons",
		SellingPrice:  0.50,
		InitialStock:  4,
		MinStockAlert: 10,
	})
	require.NoError(t, err)

	_, err = env.sales.RecordSale(context.Background(), &RecordSaleInput{
		CustomerName: "Hery",
		IsCreditSale: true,
		Items: []SaleItemInput{
			{ProductID: product.ID, Quantity: 2, UnitPrice: 0.50},
		},
		TotalAmount: 1.00,
		AmountPaid:  0.40,
	})
	require.NoError(t, err)

	summary, err := dashboard.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), summary.TodayInvoices)
	assert.Equal(t, int64(100), summary.TodaySalesTotal)
	assert.Equal(t, int64(60), summary.OutstandingDebt)
	assert.Equal(t, int64(40), summary.CashBalance)
	assert.Equal(t, int64(1), summary.LowStockCount)
	require.Len(t, summary.RecentInvoices, 1)
	require.Len(t, summary.LowStockProducts, 1)
	assert.Equal(t, "Bonbons", summary.LowStockProducts[0].Name)
}
