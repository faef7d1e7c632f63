package request

import "github.com/google/uuid"

// SaleItemRequest represents one cart line in a sale
type SaleItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
	UnitPrice float64   `json:"unit_price" binding:"min=0"`
}

// RecordSaleRequest represents a checkout request. Amounts are decimal
// currency values; customer_name may be empty for an anonymous cash sale.
type RecordSaleRequest struct {
	CustomerName  string            `json:"customer_name" binding:"max=255"`
	IsCreditSale  bool              `json:"is_credit_sale"`
	Items         []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
	TotalAmount   float64           `json:"total_amount" binding:"min=0"`
	DiscountTotal float64           `json:"discount_total" binding:"min=0"`
	AmountPaid    float64           `json:"amount_paid" binding:"min=0"`
}
