package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fandresena/gereo-server/internal/infrastructure/database"
	infraRepo "github.com/fandresena/gereo-server/internal/infrastructure/repository"
)

// testEnv bundles the services and repositories under test, all backed by
// one in-memory database per test.
type testEnv struct {
	db       *gorm.DB
	products *ProductService
	stock    *StockService
	sales    *SaleService
	customer *CustomerService
	expenses *ExpenseService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db))

	uow := infraRepo.NewUnitOfWork(db)
	productRepo := infraRepo.NewProductRepository(db)
	movementRepo := infraRepo.NewStockMovementRepository(db)
	invoiceRepo := infraRepo.NewInvoiceRepository(db)
	customerRepo := infraRepo.NewCustomerRepository(db)
	expenseRepo := infraRepo.NewExpenseRepository(db)
	cashRepo := infraRepo.NewCashMovementRepository(db)

	return &testEnv{
		db:       db,
		products: NewProductService(uow, productRepo),
		stock:    NewStockService(uow, movementRepo),
		sales:    NewSaleService(uow, invoiceRepo),
		customer: NewCustomerService(uow, customerRepo),
		expenses: NewExpenseService(uow, expenseRepo, cashRepo),
	}
}
