package repository

import (
	"context"

	"gorm.io/gorm"

	domainRepo "github.com/fandresena/gereo-server/internal/domain/repository"
)

// store binds all repositories to one *gorm.DB, which may be the root
// connection or a transaction handle
type store struct {
	db *gorm.DB
}

func newStore(db *gorm.DB) *store {
	return &store{db: db}
}

func (s *store) Products() domainRepo.ProductRepository {
	return NewProductRepository(s.db)
}

func (s *store) Customers() domainRepo.CustomerRepository {
	return NewCustomerRepository(s.db)
}

func (s *store) Invoices() domainRepo.InvoiceRepository {
	return NewInvoiceRepository(s.db)
}

func (s *store) Movements() domainRepo.StockMovementRepository {
	return NewStockMovementRepository(s.db)
}

func (s *store) CashMovements() domainRepo.CashMovementRepository {
	return NewCashMovementRepository(s.db)
}

func (s *store) Expenses() domainRepo.ExpenseRepository {
	return NewExpenseRepository(s.db)
}

type unitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates a unit of work backed by GORM transactions
func NewUnitOfWork(db *gorm.DB) domainRepo.UnitOfWork {
	return &unitOfWork{db: db}
}

// Do runs fn inside a single database transaction. GORM commits when fn
// returns nil and rolls back on error or panic, so every exit path leaves the
// store consistent.
func (u *unitOfWork) Do(ctx context.Context, fn func(tx domainRepo.Store) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(newStore(tx))
	})
}
