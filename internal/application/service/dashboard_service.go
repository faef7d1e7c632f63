package service

import (
	"context"
	"time"

	"github.com/fandresena/gereo-server/internal/domain/entity"
	"github.com/fandresena/gereo-server/internal/domain/repository"
)

// DashboardService aggregates the figures shown on the home screen
type DashboardService struct {
	productRepo  repository.ProductRepository
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	cashRepo     repository.CashMovementRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	productRepo repository.ProductRepository,
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	cashRepo repository.CashMovementRepository,
) *DashboardService {
	return &DashboardService{
		productRepo:  productRepo,
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		cashRepo:     cashRepo,
	}
}

// DashboardSummary holds the aggregated dashboard figures. Money fields are
// in cents.
type DashboardSummary struct {
	TodaySalesTotal  int64            `json:"today_sales_total"`
	TodayInvoices    int64            `json:"today_invoices"`
	LowStockCount    int64            `json:"low_stock_count"`
	OutstandingDebt  int64            `json:"outstanding_debt"`
	CashBalance      int64            `json:"cash_balance"`
	RecentInvoices   []entity.Invoice `json:"recent_invoices"`
	LowStockProducts []entity.Product `json:"low_stock_products"`
}

// GetSummary computes the dashboard summary for the current day
func (s *DashboardService) GetSummary(ctx context.Context) (*DashboardSummary, error) {
	todayInvoices, todayTotal, err := s.invoiceRepo.TotalsForDay(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	lowStockCount, err := s.productRepo.CountLowStock(ctx)
	if err != nil {
		return nil, err
	}

	lowStock, err := s.productRepo.GetLowStock(ctx)
	if err != nil {
		return nil, err
	}

	debt, err := s.customerRepo.TotalOutstandingDebt(ctx)
	if err != nil {
		return nil, err
	}

	balance, err := s.cashRepo.LatestBalance(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.invoiceRepo.ListRecent(ctx, 10)
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		TodaySalesTotal:  todayTotal,
		TodayInvoices:    todayInvoices,
		LowStockCount:    lowStockCount,
		OutstandingDebt:  debt,
		CashBalance:      balance,
		RecentInvoices:   recent,
		LowStockProducts: lowStock,
	}, nil
}
