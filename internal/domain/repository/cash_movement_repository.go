package repository

import (
	"context"

	"github.com/fandresena/gereo-server/internal/domain/entity"
	"github.com/fandresena/gereo-server/pkg/pagination"
)

// CashMovementRepository defines cash register movement data access
type CashMovementRepository interface {
	Create(ctx context.Context, movement *entity.CashMovement) error
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.CashMovement, int64, error)

	// LatestBalance returns the register balance after the most recent
	// movement, or zero when the register has no history yet.
	LatestBalance(ctx context.Context) (int64, error)
}
