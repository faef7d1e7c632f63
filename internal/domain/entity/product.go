package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fandresena/gereo-server/pkg/money"
)

// Product represents an item sold by the shop. CurrentStock is a derived
// cache of the sum of its stock movement quantities; it is only ever mutated
// together with a movement row.
type Product struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name           string         `gorm:"size:255;unique;not null" json:"name"`
	ReferenceCode  string         `gorm:"size:100;index" json:"reference_code"`
	PurchasePrice  int64          `gorm:"default:0" json:"-"` // Stored in cents
	WholesalePrice int64          `gorm:"default:0" json:"-"` // Stored in cents
	SellingPrice   int64          `gorm:"default:0" json:"-"` // Stored in cents
	CurrentStock   int            `gorm:"default:0;check:current_stock >= 0" json:"current_stock"`
	MinStockAlert  int            `gorm:"default:0" json:"min_stock_alert"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Movements []StockMovement `gorm:"foreignKey:ProductID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// IsLowStock reports whether the product is at or below its alert threshold
func (p *Product) IsLowStock() bool {
	return p.CurrentStock <= p.MinStockAlert
}

// MarshalJSON converts Product to JSON with decimal prices
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		PurchasePrice  float64 `json:"purchase_price"`
		WholesalePrice float64 `json:"wholesale_price"`
		SellingPrice   float64 `json:"selling_price"`
	}{
		Alias:          Alias(p),
		PurchasePrice:  money.FromCents(p.PurchasePrice),
		WholesalePrice: money.FromCents(p.WholesalePrice),
		SellingPrice:   money.FromCents(p.SellingPrice),
	})
}
