package request

import (
	"time"

	"github.com/google/uuid"
)

// RecordStockEntryRequest represents a stock entry (restock) request
type RecordStockEntryRequest struct {
	ProductID uuid.UUID  `json:"product_id" binding:"required"`
	Quantity  int        `json:"quantity" binding:"required,min=1"`
	UnitPrice float64    `json:"unit_price" binding:"min=0"`
	Date      *time.Time `json:"date"`
	Notes     *string    `json:"notes"`
}
