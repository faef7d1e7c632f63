package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fandresena/gereo-server/internal/domain/entity"
	"github.com/fandresena/gereo-server/pkg/pagination"
)

// InvoiceRepository defines invoice data access. Invoices are immutable after
// creation; there is no update.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	CreateItem(ctx context.Context, item *entity.InvoiceItem) error
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Invoice, int64, error)
	ListRecent(ctx context.Context, limit int) ([]entity.Invoice, error)

	// TotalsForDay returns the invoice count and summed total amount in cents
	// for invoices dated within the given day.
	TotalsForDay(ctx context.Context, day time.Time) (int64, int64, error)
}
