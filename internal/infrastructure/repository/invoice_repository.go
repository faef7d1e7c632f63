package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fandresena/gereo-server/internal/domain/entity"
	domainRepo "github.com/fandresena/gereo-server/internal/domain/repository"
	"github.com/fandresena/gereo-server/pkg/pagination"
)

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) domainRepo.InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	// Items are inserted separately so the coordinator controls line order
	return r.db.WithContext(ctx).Omit("Items", "Customer").Create(invoice).Error
}

func (r *invoiceRepository) CreateItem(ctx context.Context, item *entity.InvoiceItem) error {
	return r.db.WithContext(ctx).Omit("Invoice", "Product").Create(item).Error
}

func (r *invoiceRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Items.Product").
		First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *invoiceRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Invoice, int64, error) {
	var invoices []entity.Invoice
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Invoice{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Customer").
		Order("invoice_date DESC").
		Find(&invoices).Error

	return invoices, total, err
}

func (r *invoiceRepository) ListRecent(ctx context.Context, limit int) ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Order("invoice_date DESC").
		Limit(limit).
		Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepository) TotalsForDay(ctx context.Context, day time.Time) (int64, int64, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)

	var result struct {
		Count int64
		Total *int64
	}
	err := r.db.WithContext(ctx).
		Model(&entity.Invoice{}).
		Select("COUNT(*) AS count, SUM(total_amount) AS total").
		Where("invoice_date >= ? AND invoice_date < ?", start, end).
		Scan(&result).Error
	if err != nil {
		return 0, 0, err
	}
	total := int64(0)
	if result.Total != nil {
		total = *result.Total
	}
	return result.Count, total, nil
}
