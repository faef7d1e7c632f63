package request

// CreateCustomerRequest represents a customer creation request
type CreateCustomerRequest struct {
	Name    string  `json:"name" binding:"required,min=1,max=255"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
	Address *string `json:"address" binding:"omitempty,max=500"`
}

// UpdateCustomerRequest represents a customer update request. Debt cannot be
// edited here; it only moves through credit sales and repayments.
type UpdateCustomerRequest struct {
	Name    string  `json:"name" binding:"required,min=1,max=255"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
	Address *string `json:"address" binding:"omitempty,max=500"`
}

// PayDebtRequest represents a debt repayment request
type PayDebtRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}
