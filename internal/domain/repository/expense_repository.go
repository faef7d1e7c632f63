package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/fandresena/gereo-server/internal/domain/entity"
	"github.com/fandresena/gereo-server/pkg/pagination"
)

// ExpenseRepository defines expense data access
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Expense, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
