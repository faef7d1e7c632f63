package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fandresena/gereo-server/internal/domain/enum"
	"github.com/fandresena/gereo-server/pkg/money"
)

// Invoice records one completed sale. It is created exactly once and never
// edited afterwards; its status is fixed at creation from the due amount.
type Invoice struct {
	ID          uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID  *uuid.UUID         `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	InvoiceDate time.Time          `gorm:"not null;index" json:"invoice_date"`
	TotalAmount int64              `gorm:"default:0" json:"-"` // Stored in cents
	Discount    int64              `gorm:"default:0" json:"-"` // Stored in cents
	AmountPaid  int64              `gorm:"default:0" json:"-"` // Stored in cents
	AmountDue   int64              `gorm:"default:0" json:"-"` // Stored in cents
	Status      enum.InvoiceStatus `gorm:"size:20;default:'PAID'" json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`

	// Relationships
	Customer *Customer     `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []InvoiceItem `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// MarshalJSON converts Invoice to JSON with decimal amounts
func (i Invoice) MarshalJSON() ([]byte, error) {
	type Alias Invoice
	return json.Marshal(&struct {
		Alias
		TotalAmount float64 `json:"total_amount"`
		Discount    float64 `json:"discount"`
		AmountPaid  float64 `json:"amount_paid"`
		AmountDue   float64 `json:"amount_due"`
	}{
		Alias:       Alias(i),
		TotalAmount: money.FromCents(i.TotalAmount),
		Discount:    money.FromCents(i.Discount),
		AmountPaid:  money.FromCents(i.AmountPaid),
		AmountDue:   money.FromCents(i.AmountDue),
	})
}

// InvoiceItem is one cart line of an invoice. UnitPrice is the price actually
// charged after discount, TotalPrice is quantity times that price.
type InvoiceItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID  uuid.UUID `gorm:"type:uuid;not null;index" json:"invoice_id"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	UnitPrice  int64     `gorm:"not null" json:"-"` // Stored in cents
	TotalPrice int64     `gorm:"not null" json:"-"` // Stored in cents
	CreatedAt  time.Time `json:"created_at"`

	// Relationships
	Invoice Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new invoice item
func (ii *InvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if ii.ID == uuid.Nil {
		ii.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceItem model
func (InvoiceItem) TableName() string {
	return "invoice_items"
}

// MarshalJSON converts InvoiceItem to JSON with decimal amounts
func (ii InvoiceItem) MarshalJSON() ([]byte, error) {
	type Alias InvoiceItem
	return json.Marshal(&struct {
		Alias
		UnitPrice  float64 `json:"unit_price"`
		TotalPrice float64 `json:"total_price"`
	}{
		Alias:      Alias(ii),
		UnitPrice:  money.FromCents(ii.UnitPrice),
		TotalPrice: money.FromCents(ii.TotalPrice),
	})
}
