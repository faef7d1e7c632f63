package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/fandresena/gereo-server/internal/domain/entity"
)

// MovementRow is a stock movement joined with the name of its product, as
// shown in the stock history screen
type MovementRow struct {
	entity.StockMovement
	ProductName string `json:"product_name"`
}

// StockMovementRepository defines stock movement data access. Movements are
// append-only; there is no update or delete.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	ListWithProduct(ctx context.Context) ([]MovementRow, error)

	// SumQuantity returns the signed sum of all movement quantities for a
	// product, which must always equal the product's cached stock.
	SumQuantity(ctx context.Context, productID uuid.UUID) (int, error)
}
