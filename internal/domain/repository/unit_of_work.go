package repository

import "context"

// Store bundles the repositories that can take part in a single unit of work.
// Inside UnitOfWork.Do every repository returned by a Store is bound to the
// same transaction.
type Store interface {
	Products() ProductRepository
	Customers() CustomerRepository
	Invoices() InvoiceRepository
	Movements() StockMovementRepository
	CashMovements() CashMovementRepository
	Expenses() ExpenseRepository
}

// UnitOfWork runs a function against a transactional Store. The transaction
// commits when fn returns nil and rolls back on any error or panic, so no
// partial writes can survive a failed unit of work.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(tx Store) error) error
}
