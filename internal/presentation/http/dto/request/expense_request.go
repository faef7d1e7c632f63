package request

import "time"

// RecordExpenseRequest represents an expense creation request
type RecordExpenseRequest struct {
	Description string     `json:"description" binding:"required,min=1,max=500"`
	Category    string     `json:"category" binding:"omitempty,max=100"`
	Amount      float64    `json:"amount" binding:"required,gt=0"`
	Date        *time.Time `json:"date"`
}
