package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/fandresena/gereo-server/internal/domain/entity"
	"github.com/fandresena/gereo-server/pkg/pagination"
)

// CustomerRepository defines customer data access
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	GetByName(ctx context.Context, name string) (*entity.Customer, error)
	GetWithInvoices(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error

	// AddDebt adjusts the customer's outstanding debt by the signed amount in
	// cents (positive for a new credit sale, negative for a repayment).
	AddDebt(ctx context.Context, id uuid.UUID, amount int64) error

	// TotalOutstandingDebt returns the sum of all customer debts in cents.
	TotalOutstandingDebt(ctx context.Context) (int64, error)
}
