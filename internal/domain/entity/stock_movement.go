package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fandresena/gereo-server/internal/domain/enum"
	"github.com/fandresena/gereo-server/pkg/money"
)

// StockMovement is an immutable record of a signed quantity change against a
// product's stock. Entries carry a positive quantity, sales a negative one.
type StockMovement struct {
	ID           uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	ProductID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"product_id"`
	MovementType enum.MovementType `gorm:"size:20;not null" json:"movement_type"`
	Quantity     int               `gorm:"not null" json:"quantity"`
	UnitPrice    int64             `gorm:"default:0" json:"-"` // Stored in cents
	MovementDate time.Time         `gorm:"not null;index" json:"movement_date"`
	Notes        *string           `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`

	// Relationships
	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new movement
func (m *StockMovement) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StockMovement model
func (StockMovement) TableName() string {
	return "stock_movements"
}

// MarshalJSON converts StockMovement to JSON with a decimal unit price
func (m StockMovement) MarshalJSON() ([]byte, error) {
	type Alias StockMovement
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
	}{
		Alias:     Alias(m),
		UnitPrice: money.FromCents(m.UnitPrice),
	})
}
