package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/fandresena/gereo-server/internal/domain/entity"
	"github.com/fandresena/gereo-server/pkg/pagination"
)

// ProductFilterParams contains filter parameters for listing products
type ProductFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	LowStock   bool
	SortBy     string
	SortOrder  string
}

// ProductRepository defines product data access.
//
// IncrementStock and DecrementStockIfAvailable are the only ways stock is
// mutated; callers must pair every call with a StockMovement row inside the
// same unit of work.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetByName(ctx context.Context, name string) (*entity.Product, error)
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetLowStock(ctx context.Context) ([]entity.Product, error)
	CountLowStock(ctx context.Context) (int64, error)

	// IncrementStock adds qty (positive) to the product's cached stock count.
	IncrementStock(ctx context.Context, id uuid.UUID, qty int) error

	// DecrementStockIfAvailable subtracts qty only when enough stock remains
	// (UPDATE ... WHERE current_stock >= qty). It returns false, without
	// error, when the conditional update matched no row.
	DecrementStockIfAvailable(ctx context.Context, id uuid.UUID, qty int) (bool, error)
}
