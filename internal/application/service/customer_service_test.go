package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fandresena/gereo-server/internal/domain/entity"
	"github.com/fandresena/gereo-server/internal/domain/enum"
	"github.com/fandresena/gereo-server/pkg/apperror"
)

func TestCreateCustomer(t *testing.T) {
	env := newTestEnv(t)

	phone := "034 12 345 67"
	customer, err := env.customer.CreateCustomer(context.Background(), &CreateCustomerInput{
		Name:  "  Rabe  ",
		Phone: &phone,
	})
	require.NoError(t, err)
	assert.Equal(t, "Rabe", customer.Name)
	assert.Equal(t, int64(0), customer.TotalDebt)

	_, err = env.customer.CreateCustomer(context.Background(), &CreateCustomerInput{Name: "   "})
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)
}

func TestPayDebtReducesDebtAndFillsRegister(t *testing.T) {
	env := newTestEnv(t)
	product := createProduct(t, env, "Bidon 20L", 10)

	// Build up debt through a credit sale
	invoice, err := env.sales.RecordSale(context.Background(), &RecordSaleInput{
		CustomerName: "Naivo",
		IsCreditSale: true,
		Items: []SaleItemInput{
			{ProductID: product.ID, Quantity: 2, UnitPrice: 15.00},
		},
		TotalAmount: 30.00,
		AmountPaid:  0,
	})
	require.NoError(t, err)
	require.NotNil(t, invoice.CustomerID)

	customer, err := env.customer.PayDebt(context.Background(), *invoice.CustomerID, 12.00)
	require.NoError(t, err)
	assert.Equal(t, int64(1800), customer.TotalDebt)

	var cash entity.CashMovement
	require.NoError(t, env.db.
		Where("movement_type = ?", enum.CashDebtPayment).
		First(&cash).Error)
	assert.Equal(t, int64(1200), cash.Amount)
	assert.Equal(t, int64(1200), cash.CurrentBalance)
}

func TestPayDebtCannotExceedBalance(t *testing.T) {
	env := newTestEnv(t)
	product := createProduct(t, env, "Sac 50kg", 5)

	invoice, err := env.sales.RecordSale(context.Background(), &RecordSaleInput{
		CustomerName: "Fara",
		IsCreditSale: true,
		Items: []SaleItemInput{
			{ProductID: product.ID, Quantity: 1, UnitPrice: 20.00},
		},
		TotalAmount: 20.00,
		AmountPaid:  0,
	})
	require.NoError(t, err)

	_, err = env.customer.PayDebt(context.Background(), *invoice.CustomerID, 25.00)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	// The failed payment left debt and register untouched
	var customer entity.Customer
	require.NoError(t, env.db.First(&customer, "id = ?", invoice.CustomerID).Error)
	assert.Equal(t, int64(2000), customer.TotalDebt)

	var payments int64
	require.NoError(t, env.db.Model(&entity.CashMovement{}).
		Where("movement_type = ?", enum.CashDebtPayment).
		Count(&payments).Error)
	assert.Equal(t, int64(0), payments)
}

func TestPayDebtUnknownCustomer(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.customer.PayDebt(context.Background(), uuid.New(), 5.00)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
