package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fandresena/gereo-server/internal/domain/entity"
	"github.com/fandresena/gereo-server/internal/domain/enum"
	"github.com/fandresena/gereo-server/internal/domain/repository"
	"github.com/fandresena/gereo-server/pkg/apperror"
	"github.com/fandresena/gereo-server/pkg/money"
	"github.com/fandresena/gereo-server/pkg/pagination"
)

// SaleService coordinates the sale transaction: one invoice, its line items,
// the matching stock decrements and movements, the customer debt update and
// the cash register entry all commit or roll back together.
type SaleService struct {
	uow         repository.UnitOfWork
	invoiceRepo repository.InvoiceRepository
}

// NewSaleService creates a new sale service
func NewSaleService(uow repository.UnitOfWork, invoiceRepo repository.InvoiceRepository) *SaleService {
	return &SaleService{
		uow:         uow,
		invoiceRepo: invoiceRepo,
	}
}

// SaleItemInput is one cart line. UnitPrice is the price actually charged
// after any line discount.
type SaleItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	UnitPrice float64
}

// RecordSaleInput represents the cart submitted by the sales page
type RecordSaleInput struct {
	CustomerName  string
	IsCreditSale  bool
	Items         []SaleItemInput
	TotalAmount   float64
	DiscountTotal float64
	AmountPaid    float64
}

func (input *RecordSaleInput) validate() error {
	var fieldErrors []apperror.FieldError
	if len(input.Items) == 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "items", Message: "cart must not be empty"})
	}
	for i, item := range input.Items {
		if item.Quantity <= 0 {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: "must be greater than zero",
			})
		}
		if item.UnitPrice < 0 {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fmt.Sprintf("items[%d].unit_price", i),
				Message: "must not be negative",
			})
		}
	}
	if input.TotalAmount < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "total_amount", Message: "must not be negative"})
	}
	if input.AmountPaid < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "amount_paid", Message: "must not be negative"})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// RecordSale persists one sale atomically. On any failure nothing is
// written: no invoice, no items, no stock change, no debt update.
func (s *SaleService) RecordSale(ctx context.Context, input *RecordSaleInput) (*entity.Invoice, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	totalCents := money.ToCents(input.TotalAmount)
	paidCents := money.ToCents(input.AmountPaid)
	dueCents := totalCents - paidCents

	var invoiceID uuid.UUID
	err := s.uow.Do(ctx, func(tx repository.Store) error {
		customerID, err := s.resolveCustomer(ctx, tx, input.CustomerName)
		if err != nil {
			return err
		}

		now := time.Now()
		invoice := &entity.Invoice{
			CustomerID:  customerID,
			InvoiceDate: now,
			TotalAmount: totalCents,
			Discount:    money.ToCents(input.DiscountTotal),
			AmountPaid:  paidCents,
			AmountDue:   dueCents,
			Status:      enum.StatusForDue(dueCents),
		}
		if err := tx.Invoices().Create(ctx, invoice); err != nil {
			return err
		}

		for _, line := range input.Items {
			if err := s.consumeStock(ctx, tx, invoice.ID, now, line); err != nil {
				return err
			}
		}

		if customerID != nil && dueCents > 0 {
			if err := tx.Customers().AddDebt(ctx, *customerID, dueCents); err != nil {
				return err
			}
		}

		if paidCents > 0 {
			if err := s.recordCashIn(ctx, tx, invoice.ID, now, paidCents); err != nil {
				return err
			}
		}

		invoiceID = invoice.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.invoiceRepo.GetWithItems(ctx, invoiceID)
}

// resolveCustomer finds the customer by exact name, creating one with zero
// debt when the name is new. An empty name means an anonymous sale.
func (s *SaleService) resolveCustomer(ctx context.Context, tx repository.Store, name string) (*uuid.UUID, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	customer, err := tx.Customers().GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		customer = &entity.Customer{Name: name}
		if err := tx.Customers().Create(ctx, customer); err != nil {
			return nil, err
		}
	}
	return &customer.ID, nil
}

// consumeStock writes one invoice item, conditionally decrements the
// product's stock and records the matching SALE movement. A failed
// decrement aborts the whole unit of work.
func (s *SaleService) consumeStock(ctx context.Context, tx repository.Store, invoiceID uuid.UUID, now time.Time, line SaleItemInput) error {
	product, err := tx.Products().GetByID(ctx, line.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}

	unitCents := money.ToCents(line.UnitPrice)
	item := &entity.InvoiceItem{
		InvoiceID:  invoiceID,
		ProductID:  line.ProductID,
		Quantity:   line.Quantity,
		UnitPrice:  unitCents,
		TotalPrice: money.LineTotal(line.Quantity, unitCents),
	}
	if err := tx.Invoices().CreateItem(ctx, item); err != nil {
		return err
	}

	ok, err := tx.Products().DecrementStockIfAvailable(ctx, line.ProductID, line.Quantity)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NewInsufficientStockError(product.Name)
	}

	notes := "Invoice " + invoiceID.String()
	return tx.Movements().Create(ctx, &entity.StockMovement{
		ProductID:    line.ProductID,
		MovementType: enum.MovementSale,
		Quantity:     -line.Quantity,
		UnitPrice:    unitCents,
		MovementDate: now,
		Notes:        &notes,
	})
}

func (s *SaleService) recordCashIn(ctx context.Context, tx repository.Store, invoiceID uuid.UUID, now time.Time, paidCents int64) error {
	balance, err := tx.CashMovements().LatestBalance(ctx)
	if err != nil {
		return err
	}
	return tx.CashMovements().Create(ctx, &entity.CashMovement{
		MovementDate:   now,
		MovementType:   enum.CashSale,
		Amount:         paidCents,
		ReferenceID:    &invoiceID,
		CurrentBalance: balance + paidCents,
	})
}

// GetInvoice retrieves an invoice with its items and customer
func (s *SaleService) GetInvoice(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// ListInvoices lists invoices, most recent first
func (s *SaleService) ListInvoices(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Invoice], error) {
	invoices, total, err := s.invoiceRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(invoices, pag), nil
}
