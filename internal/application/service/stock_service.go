package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fandresena/gereo-server/internal/domain/entity"
	"github.com/fandresena/gereo-server/internal/domain/enum"
	"github.com/fandresena/gereo-server/internal/domain/repository"
	"github.com/fandresena/gereo-server/pkg/apperror"
	"github.com/fandresena/gereo-server/pkg/money"
)

// StockService maintains the stock ledger: every change to a product's
// cached stock count is paired with exactly one movement row, inside one
// unit of work.
type StockService struct {
	uow          repository.UnitOfWork
	movementRepo repository.StockMovementRepository
}

// NewStockService creates a new stock service
func NewStockService(uow repository.UnitOfWork, movementRepo repository.StockMovementRepository) *StockService {
	return &StockService{
		uow:          uow,
		movementRepo: movementRepo,
	}
}

// RecordEntryInput represents an inbound stock entry
type RecordEntryInput struct {
	ProductID uuid.UUID
	Quantity  int
	UnitPrice float64
	Date      *time.Time
	Notes     *string
}

// RecordEntry records one inbound stock movement and increments the
// product's stock, atomically. Validation failures are rejected before any
// unit of work is opened.
func (s *StockService) RecordEntry(ctx context.Context, input *RecordEntryInput) (*entity.StockMovement, error) {
	var fieldErrors []apperror.FieldError
	if input.Quantity <= 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "quantity", Message: "must be greater than zero"})
	}
	if input.UnitPrice < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "unit_price", Message: "must not be negative"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	date := time.Now()
	if input.Date != nil {
		date = *input.Date
	}

	movement := &entity.StockMovement{
		ProductID:    input.ProductID,
		MovementType: enum.MovementEntry,
		Quantity:     input.Quantity,
		UnitPrice:    money.ToCents(input.UnitPrice),
		MovementDate: date,
		Notes:        input.Notes,
	}

	err := s.uow.Do(ctx, func(tx repository.Store) error {
		product, err := tx.Products().GetByID(ctx, input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return apperror.NewNotFoundError("Product")
		}

		if err := tx.Movements().Create(ctx, movement); err != nil {
			return err
		}
		return tx.Products().IncrementStock(ctx, input.ProductID, input.Quantity)
	})
	if err != nil {
		return nil, err
	}

	return movement, nil
}

// ListEntries returns all stock movements joined with product names, most
// recent first
func (s *StockService) ListEntries(ctx context.Context) ([]repository.MovementRow, error) {
	return s.movementRepo.ListWithProduct(ctx)
}
