package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fandresena/gereo-server/internal/domain/enum"
	"github.com/fandresena/gereo-server/pkg/money"
)

// Expense is a simple outgoing cost record
type Expense struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ExpenseDate time.Time `gorm:"not null;index" json:"expense_date"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Category    string    `gorm:"size:100" json:"category"`
	Amount      int64     `gorm:"not null" json:"-"` // Stored in cents
	CreatedAt   time.Time `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Expense model
func (Expense) TableName() string {
	return "expenses"
}

// MarshalJSON converts Expense to JSON with a decimal amount
func (e Expense) MarshalJSON() ([]byte, error) {
	type Alias Expense
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(e),
		Amount: money.FromCents(e.Amount),
	})
}

// CashMovement tracks money entering or leaving the cash register. Amount is
// signed (sales and debt payments positive, expenses negative) and
// CurrentBalance is the register balance after applying it.
type CashMovement struct {
	ID             uuid.UUID             `gorm:"type:uuid;primary_key" json:"id"`
	MovementDate   time.Time             `gorm:"not null;index" json:"movement_date"`
	MovementType   enum.CashMovementType `gorm:"size:20;not null" json:"movement_type"`
	Amount         int64                 `gorm:"not null" json:"-"` // Stored in cents
	ReferenceID    *uuid.UUID            `gorm:"type:uuid" json:"reference_id,omitempty"`
	CurrentBalance int64                 `gorm:"not null" json:"-"` // Stored in cents
	Notes          *string               `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new cash movement
func (cm *CashMovement) BeforeCreate(tx *gorm.DB) error {
	if cm.ID == uuid.Nil {
		cm.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CashMovement model
func (CashMovement) TableName() string {
	return "cash_movements"
}

// MarshalJSON converts CashMovement to JSON with decimal amounts
func (cm CashMovement) MarshalJSON() ([]byte, error) {
	type Alias CashMovement
	return json.Marshal(&struct {
		Alias
		Amount         float64 `json:"amount"`
		CurrentBalance float64 `json:"current_balance"`
	}{
		Alias:          Alias(cm),
		Amount:         money.FromCents(cm.Amount),
		CurrentBalance: money.FromCents(cm.CurrentBalance),
	})
}
